package service

import (
	"context"
	"io"
)

// MediaFile is a single file received from a multipart form.
type MediaFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// MediaUploader stores a file and returns a publicly retrievable URL.
type MediaUploader interface {
	Upload(ctx context.Context, file *MediaFile) (string, error)
}
