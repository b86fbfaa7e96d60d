package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestRedirect(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, RedirectWithResult(c, "/seller/dashboard", map[string]string{"id": "prod-1"}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/seller/dashboard", rec.Header().Get(echo.HeaderLocation))

	var body struct {
		Data RedirectPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/seller/dashboard", body.Data.RedirectTo)
	assert.NotNil(t, body.Data.Result)
}

func TestLoading(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Loading(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	assert.JSONEq(t, `{"data":{"state":"loading"},"meta":{"request_id":""}}`, rec.Body.String())
}

func TestError_DetailsDropped(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, wantDetails: true},
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "details"))

			assert.Equal(t, tt.status, rec.Code)
			if tt.wantDetails {
				assert.Contains(t, rec.Body.String(), `"details":"details"`)
			} else {
				assert.NotContains(t, rec.Body.String(), `"details"`)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("app error is written", func(t *testing.T) {
		c, rec := newTestContext()

		err := HandleAppError(c, errors.Wrap(domainerrors.ErrDocumentsRequired, "submit"))

		require.NoError(t, err)
		assert.Equal(t, domainerrors.ErrDocumentsRequired.HTTPCode(), rec.Code)
		assert.Contains(t, rec.Body.String(), "Please upload both documents.")
	})

	t.Run("other errors are passed on", func(t *testing.T) {
		c, rec := newTestContext()

		err := HandleAppError(c, errors.New("boom"))

		require.Error(t, err)
		assert.Equal(t, 0, rec.Body.Len())
	})
}
