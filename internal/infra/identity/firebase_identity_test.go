package identity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserCreator struct {
	record *auth.UserRecord
	err    error
}

func (f *fakeUserCreator) CreateUser(context.Context, *auth.UserToCreate) (*auth.UserRecord, error) {
	return f.record, f.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseIdentityProvider_SignIn_Success(t *testing.T) {
	var got signInRequest
	var apiKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
		apiKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"localId":"uid-1","email":"user@example.com","idToken":"t"}`))
	}))
	defer server.Close()

	provider := newFirebaseIdentityProvider(&fakeUserCreator{}, "web-key", server.URL, newTestLogger())

	principal, err := provider.SignIn(context.Background(), "user@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", principal.ID)
	assert.Equal(t, "user@example.com", principal.Email)
	assert.Equal(t, "web-key", apiKey)
	assert.True(t, got.ReturnSecureToken)
}

func TestFirebaseIdentityProvider_SignIn_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS"}}`))
	}))
	defer server.Close()

	provider := newFirebaseIdentityProvider(&fakeUserCreator{}, "web-key", server.URL, newTestLogger())

	_, err := provider.SignIn(context.Background(), "user@example.com", "wrong")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestFirebaseIdentityProvider_CreateAccount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		creator := &fakeUserCreator{record: &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "uid-2", Email: "new@example.com"}}}
		provider := newFirebaseIdentityProvider(creator, "web-key", defaultIdentityToolkitURL, newTestLogger())

		principal, err := provider.CreateAccount(context.Background(), "new@example.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "uid-2", principal.ID)
		assert.Equal(t, "new@example.com", principal.Email)
	})

	t.Run("rejected", func(t *testing.T) {
		creator := &fakeUserCreator{err: errors.New("password must be a string at least 6 characters long")}
		provider := newFirebaseIdentityProvider(creator, "web-key", defaultIdentityToolkitURL, newTestLogger())

		_, err := provider.CreateAccount(context.Background(), "new@example.com", "123")

		require.ErrorIs(t, err, domainerrors.ErrCreateAccountFailed)
		var appErr *domainerrors.BaseError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Details(), "at least 6 characters")
	})
}
