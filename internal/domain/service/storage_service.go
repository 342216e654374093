package service

import (
	"context"
	"time"
)

// PresignedURL はPresigned URL情報を表します
type PresignedURL struct {
	URL       string
	ExpiresAt time.Time
}

// ExportStorage はメンターのエクスポートを保存するドメインサービスインターフェースです
type ExportStorage interface {
	// PutObject はオブジェクトを保存します
	PutObject(ctx context.Context, objectKey string, data []byte, contentType string) error

	// GenerateGetURL はダウンロード用URLを生成します
	GenerateGetURL(ctx context.Context, objectKey string, expiry time.Duration) (*PresignedURL, error)
}
