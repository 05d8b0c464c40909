package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"techvista_backend/internal/storage"
	"techvista_backend/pkg/apperrors"
)

// UploadPolicy bounds what an endpoint accepts.
type UploadPolicy struct {
	MaxSize      int64
	AllowedTypes []string
}

func (p UploadPolicy) check(file *multipart.FileHeader) error {
	if p.MaxSize > 0 && file.Size > p.MaxSize {
		return apperrors.ErrFileTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	for _, allowed := range p.AllowedTypes {
		if strings.EqualFold(contentType, allowed) {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}

// storeUpload validates the file against the policy and writes it under
// prefix with a random name, returning the storage key.
func storeUpload(ctx context.Context, store storage.Storage, prefix string, file *multipart.FileHeader, policy UploadPolicy) (string, error) {
	if err := policy.check(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := prefix + "/" + uuid.NewString() + ext
	if err := store.Save(ctx, key, src); err != nil {
		return "", apperrors.InternalError(err)
	}
	return key, nil
}
