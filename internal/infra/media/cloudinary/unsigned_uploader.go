// Package cloudinary uploads media files to Cloudinary.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"pixorva/config"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"
)

const (
	defaultBaseURL       = "https://api.cloudinary.com"
	defaultUploadTimeout = 60 * time.Second
)

// uploadResponse is the subset of the upload API reply we read. Success is decided
// by the presence of secure_url, not by the HTTP status.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UnsignedUploader posts files with an unsigned upload preset.
type UnsignedUploader struct {
	cfg        *config.CloudinaryConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewUnsignedUploader creates the preset uploader. Cloud name and preset are read from cfg
// on every upload and sent as they are, so a missing value surfaces as the endpoint's own rejection.
func NewUnsignedUploader(cfg *config.CloudinaryConfig, logger *slog.Logger) *UnsignedUploader {
	return &UnsignedUploader{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: defaultUploadTimeout,
		},
		logger: logger,
	}
}

// Upload sends one file and returns its secure URL.
func (u *UnsignedUploader) Upload(ctx context.Context, file *service.MediaFile) (string, error) {
	body, contentType, err := u.encode(file)
	if err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint(), body)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		u.logger.Error("Cloudinary upload request failed", slog.String("file", file.Name), slog.Any("error", err))

		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails(fmt.Sprintf("unreadable upload response (status %d)", resp.StatusCode))
	}
	if out.SecureURL == "" {
		reason := out.Error.Message
		if reason == "" {
			reason = fmt.Sprintf("upload response has no secure_url (status %d)", resp.StatusCode)
		}
		u.logger.Warn("Cloudinary rejected upload",
			slog.String("file", file.Name),
			slog.Int("status", resp.StatusCode),
			slog.String("reason", reason),
		)

		return "", domainerrors.ErrUploadFailed.WithDetails(reason)
	}

	return out.SecureURL, nil
}

func (u *UnsignedUploader) endpoint() string {
	baseURL := u.cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return fmt.Sprintf("%s/v1_1/%s/upload", strings.TrimRight(baseURL, "/"), u.cfg.CloudName)
}

func (u *UnsignedUploader) encode(file *service.MediaFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, "", errors.Wrap(err, "failed to read upload content")
	}
	if err := w.WriteField("upload_preset", u.cfg.UploadPreset); err != nil {
		return nil, "", errors.WithStack(err)
	}
	if u.cfg.Folder != "" {
		if err := w.WriteField("folder", u.cfg.Folder); err != nil {
			return nil, "", errors.WithStack(err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return &buf, w.FormDataContentType(), nil
}
