package cloudinary

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pixorva/config"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploader(baseURL, cloud, preset string) *UnsignedUploader {
	return NewUnsignedUploader(&config.CloudinaryConfig{
		CloudName:    cloud,
		UploadPreset: preset,
		BaseURL:      baseURL,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newFile(name, content string) *service.MediaFile {
	return &service.MediaFile{
		Name:        name,
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

func TestUnsignedUploader_Success(t *testing.T) {
	var gotPreset, gotFile, gotName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo/upload", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		gotPreset = r.FormValue("upload_preset")
		f, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		gotFile = string(b)
		gotName = header.Filename
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/gst.pdf"}`))
	}))
	defer server.Close()

	url, err := newTestUploader(server.URL, "demo", "unsigned").Upload(context.Background(), newFile("gst.pdf", "gst-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/gst.pdf", url)
	assert.Equal(t, "unsigned", gotPreset)
	assert.Equal(t, "gst-bytes", gotFile)
	assert.Equal(t, "gst.pdf", gotName)
}

func TestUnsignedUploader_MissingSecureURLFails(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		details string
	}{
		{name: "ok status without url", status: http.StatusOK, body: `{"public_id":"x"}`, details: "no secure_url"},
		{name: "rejected preset", status: http.StatusBadRequest, body: `{"error":{"message":"Upload preset must be specified when using unsigned upload"}}`, details: "Upload preset must be specified"},
		{name: "not json", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, details: "unreadable upload response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestUploader(server.URL, "demo", "").Upload(context.Background(), newFile("a.pdf", "a"))

			require.ErrorIs(t, err, domainerrors.ErrUploadFailed)
			var appErr *domainerrors.BaseError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details(), tt.details)
		})
	}
}

func TestUnsignedUploader_SecureURLWinsOverStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/a.pdf"}`))
	}))
	defer server.Close()

	url, err := newTestUploader(server.URL, "demo", "p").Upload(context.Background(), newFile("a.pdf", "a"))

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/a.pdf", url)
}

func TestUnsignedUploader_EmptyCloudNameStillPosts(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid cloud_name"}}`))
	}))
	defer server.Close()

	_, err := newTestUploader(server.URL, "", "").Upload(context.Background(), newFile("a.pdf", "a"))

	require.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	assert.Equal(t, "/v1_1//upload", path)
}

func TestUnsignedUploader_ReadsConfigOnEachUpload(t *testing.T) {
	var path, preset string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		preset = r.FormValue("upload_preset")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/shop/a.pdf"}`))
	}))
	defer server.Close()

	cfg := &config.CloudinaryConfig{BaseURL: server.URL}
	uploader := NewUnsignedUploader(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg.CloudName = "shop"
	cfg.UploadPreset = "sellers"

	_, err := uploader.Upload(context.Background(), newFile("a.pdf", "a"))

	require.NoError(t, err)
	assert.Equal(t, "/v1_1/shop/upload", path)
	assert.Equal(t, "sellers", preset)
}
