package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
)

var ErrFileRequired = errors.New("file required")

// 画像を置いて公開URLを返す
type ImageUploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

type UploadUsecase struct {
	uploader ImageUploader
}

func NewUploadUsecase(uploader ImageUploader) *UploadUsecase {
	return &UploadUsecase{uploader: uploader}
}

func (u *UploadUsecase) UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if body == nil || strings.TrimSpace(filename) == "" {
		return "", NewValidationError(ErrFileRequired)
	}
	url, err := u.uploader.Upload(ctx, filename, contentType, body)
	if err != nil {
		return "", NewAdapterError("upload failed", err)
	}
	return url, nil
}
