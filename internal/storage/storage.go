package storage

import (
	"context"
	"errors"
	"io"
)

var ErrFileNotFound = errors.New("file not found")

// Storage abstracts where uploaded files live. Keys are relative paths like
// "resumes/2b1f...pdf".
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	GetURL(key string) string
	GetSize(ctx context.Context, key string) (int64, error)
}
