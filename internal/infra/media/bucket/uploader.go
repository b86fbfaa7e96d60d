// Package bucket stores media files in a gocloud.dev blob bucket.
package bucket

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"go.uber.org/fx"
)

// Uploader writes each file under a fresh key and returns PublicBaseURL/key.
type Uploader struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Open opens the bucket at bucketURL and closes it when the app stops.
func Open(ctx context.Context, lc fx.Lifecycle, bucketURL, publicBaseURL string, logger *slog.Logger) (*Uploader, error) {
	if bucketURL == "" {
		return nil, errors.New("media bucket url is required for the bucket driver")
	}

	b, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return b.Close()
		},
	})

	return NewUploader(b, publicBaseURL, logger), nil
}

// NewUploader wraps an opened bucket.
func NewUploader(b *blob.Bucket, publicBaseURL string, logger *slog.Logger) *Uploader {
	return &Uploader{
		bucket:        b,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (u *Uploader) Upload(ctx context.Context, file *service.MediaFile) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(file.Name))

	content, contentType, err := sniffContentType(file)
	if err != nil {
		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	err = u.bucket.Upload(ctx, key, content, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"filename": file.Name},
	})
	if err != nil {
		u.logger.Error("Bucket upload failed", slog.String("key", key), slog.Any("error", err))

		return "", domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	return u.publicBaseURL + "/" + key, nil
}

// sniffContentType fills in a missing part header from the first 512 bytes.
func sniffContentType(file *service.MediaFile) (io.Reader, string, error) {
	if file.ContentType != "" {
		return file.Content, file.ContentType, nil
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file.Content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", errors.Wrap(err, "failed to read file header")
	}
	head = head[:n]

	return io.MultiReader(bytes.NewReader(head), file.Content), http.DetectContentType(head), nil
}
