package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pixorva/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newServerTestConfig(secure bool) *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.Session = config.SessionConfig{CookieName: "pixorva_session", Secure: secure}

	return cfg
}

func serveOnce(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestNewEchoServer_SessionHeaders(t *testing.T) {
	tests := []struct {
		name     string
		secure   bool
		wantHSTS bool
	}{
		{name: "secure cookie sends hsts", secure: true, wantHSTS: true},
		{name: "plain cookie skips hsts", secure: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEchoServer(newServerTestConfig(tt.secure), slog.New(slog.NewTextHandler(io.Discard, nil)))
			e.GET("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/login", nil)
			req.Header.Set(echo.HeaderXForwardedProto, "https")
			rec := serveOnce(e, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "DENY", rec.Header().Get(echo.HeaderXFrameOptions))
			assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
			assert.Equal(t, tt.wantHSTS, rec.Header().Get(echo.HeaderStrictTransportSecurity) != "")
		})
	}
}

func TestNewEchoServer_CORSWithoutCredentials(t *testing.T) {
	e := newEchoServer(newServerTestConfig(true), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/products", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(echo.HeaderOrigin, "https://elsewhere.example.com")
	rec := serveOnce(e, req)

	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestNewEchoServer_BodyLimit(t *testing.T) {
	e := newEchoServer(newServerTestConfig(false), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/seller/verification", func(c echo.Context) error {
		_, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/seller/verification", http.NoBody)
	req.ContentLength = 4 << 10
	rec := serveOnce(e, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
