package impl

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"pixorva/config"
	"pixorva/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Upload: config.UploadConfig{
			Timeout:     5 * time.Second,
			MaxFileSize: 1 << 20,
		},
	}
}

func newMediaFile(name, content string) *service.MediaFile {
	return &service.MediaFile{
		Name:        name,
		ContentType: "image/png",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}
