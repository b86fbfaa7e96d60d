// Package media selects the media uploader from configuration.
package media

import (
	"context"
	"log/slog"

	"pixorva/config"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"
	"pixorva/internal/infra/media/bucket"
	"pixorva/internal/infra/media/cloudinary"

	"go.uber.org/fx"
)

// Params holds dependencies for the media uploader, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaUploader returns the uploader for the configured media driver.
// Cloudinary uses signed SDK uploads when API credentials are set and the unsigned preset otherwise.
func NewMediaUploader(params Params) (service.MediaUploader, error) {
	cfg := params.Config

	switch cfg.Media.Driver {
	case config.MediaDriverCloudinary:
		cld := cfg.Cloudinary
		if cld == nil {
			cld = &config.CloudinaryConfig{}
		}
		if cld.APIKey != "" && cld.APISecret != "" {
			params.Logger.Info("Using Cloudinary signed uploads", slog.String("cloud", cld.CloudName))

			uploader, err := cloudinary.NewSignedUploader(cld, params.Logger)
			if err != nil {
				return nil, err
			}

			return uploader, nil
		}
		params.Logger.Info("Using Cloudinary unsigned preset uploads", slog.String("cloud", cld.CloudName))

		return cloudinary.NewUnsignedUploader(cld, params.Logger), nil

	case config.MediaDriverBucket:
		params.Logger.Info("Using blob bucket uploads", slog.String("bucket", cfg.Media.BucketURL))

		uploader, err := bucket.Open(params.Ctx, params.Lc, cfg.Media.BucketURL, cfg.Media.PublicBaseURL, params.Logger)
		if err != nil {
			return nil, err
		}

		return uploader, nil

	default:
		return nil, errors.Errorf("unsupported media driver %q", cfg.Media.Driver)
	}
}
