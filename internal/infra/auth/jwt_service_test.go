package auth

import (
	"testing"
	"time"

	"pixorva/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = secret
	cfg.Session.TTL = time.Hour

	return cfg
}

func TestJWTService_IssueAndParseSessionToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := jwtService.IssueSessionToken("sid-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	sid, err := jwtService.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", sid)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	_, err = jwtService.ParseSessionToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("first_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("second_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.IssueSessionToken("sid-123")
	require.NoError(t, err)

	_, err = verifier.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	impl := svc.(*jwtService)

	issuedAt := time.Now().Add(-2 * time.Hour)
	impl.now = func() time.Time { return issuedAt }
	token, err := impl.IssueSessionToken("sid-123")
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}
