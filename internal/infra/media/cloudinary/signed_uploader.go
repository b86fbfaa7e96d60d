package cloudinary

import (
	"context"
	"log/slog"

	"pixorva/config"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// SignedUploader uploads through the Cloudinary SDK with API credentials.
type SignedUploader struct {
	cld    *cld.Cloudinary
	folder string
	logger *slog.Logger
}

// NewSignedUploader creates an SDK-backed uploader.
func NewSignedUploader(cfg *config.CloudinaryConfig, logger *slog.Logger) (*SignedUploader, error) {
	client, err := cld.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Cloudinary client")
	}
	if cfg.BaseURL != "" {
		client.Config.API.UploadPrefix = cfg.BaseURL
	}

	return &SignedUploader{cld: client, folder: cfg.Folder, logger: logger}, nil
}

// Upload sends one file and returns its secure URL.
func (u *SignedUploader) Upload(ctx context.Context, file *service.MediaFile) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, file.Content, uploader.UploadParams{
		Folder:       u.folder,
		ResourceType: "auto",
	})
	if err != nil {
		u.logger.Error("Cloudinary SDK upload failed", slog.String("file", file.Name), slog.Any("error", err))

		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}
	if res == nil || res.SecureURL == "" {
		reason := "upload response has no secure_url"
		if res != nil && res.Error.Message != "" {
			reason = res.Error.Message
		}

		return "", domainerrors.ErrUploadFailed.WithDetails(reason)
	}

	return res.SecureURL, nil
}
