package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("image storage not configured")

const keyPrefix = "products/"

// 商品画像を GCS に置いて公開URLを返す
type GCSUploader struct {
	client    *gcs.Client
	bucket    string
	cdnDomain string
	tracer    trace.Tracer
}

// credentialsFile が空ならデフォルト認証（ADC）
func NewGCSUploader(ctx context.Context, bucket, cdnDomain, credentialsFile string) (*GCSUploader, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, ErrNotConfigured
	}

	opts := []option.ClientOption{option.WithScopes(gcs.ScopeReadWrite)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCSUploader{
		client:    client,
		bucket:    bucket,
		cdnDomain: cdnDomain,
		tracer:    otel.Tracer("ai-commerce/storage"),
	}, nil
}

func (u *GCSUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := objectKey(filename)

	ctx, span := u.tracer.Start(ctx, "gcs.upload",
		trace.WithAttributes(
			attribute.String("gcs.bucket", u.bucket),
			attribute.String("gcs.key", key),
		),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := u.client.Bucket(u.bucket).Object(key).NewWriter(ctx)
	if ct := resolveContentType(contentType, key); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		span.RecordError(err)
		span.SetStatus(codes.Error, "write")
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "close")
		return "", fmt.Errorf("close writer: %w", err)
	}

	return publicURL(u.bucket, u.cdnDomain, key), nil
}

func (u *GCSUploader) Close() error {
	return u.client.Close()
}

// バケット未設定のときに差し込む。常にエラー。
type Unconfigured struct{}

func (Unconfigured) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	return "", ErrNotConfigured
}

// products/<uuid><拡張子>
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(filename)))
	if len(ext) > 10 {
		ext = ""
	}
	return keyPrefix + uuid.NewString() + ext
}

func publicURL(bucket, cdnDomain, key string) string {
	cdn := strings.TrimSuffix(strings.TrimSpace(cdnDomain), "/")
	if cdn != "" {
		if !strings.HasPrefix(cdn, "http://") && !strings.HasPrefix(cdn, "https://") {
			cdn = "https://" + cdn
		}
		return cdn + "/" + key
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, key)
}

// multipartのヘッダ優先。無い/汎用のときは拡張子で決める。
func resolveContentType(header, key string) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return contentTypeForKey(key)
}

func contentTypeForKey(key string) string {
	s := strings.ToLower(strings.TrimSpace(key))
	switch {
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".jpg"), strings.HasSuffix(s, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(s, ".webp"):
		return "image/webp"
	case strings.HasSuffix(s, ".gif"):
		return "image/gif"
	case strings.HasSuffix(s, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(s, ".avif"):
		return "image/avif"
	default:
		return ""
	}
}
