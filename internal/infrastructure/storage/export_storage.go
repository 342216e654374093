package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
)

// ExportStorage はメンターのエクスポートをMinIOに保存します
type ExportStorage struct {
	client     *minio.Client
	bucketName string
	now        func() time.Time
}

var _ service.ExportStorage = (*ExportStorage)(nil)

// NewExportStorage は新しいExportStorageを作成します
func NewExportStorage(client *MinIOClient) *ExportStorage {
	return &ExportStorage{
		client:     client.Client(),
		bucketName: client.BucketName(),
		now:        time.Now,
	}
}

// PutObject はオブジェクトを保存します
func (s *ExportStorage) PutObject(ctx context.Context, objectKey string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put export object: %w", err)
	}
	return nil
}

// GenerateGetURL はダウンロード用Presigned URLを生成します（添付ファイルとして保存される）
func (s *ExportStorage) GenerateGetURL(ctx context.Context, objectKey string, expiry time.Duration) (*service.PresignedURL, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, path.Base(objectKey)))

	u, err := s.client.PresignedGetObject(ctx, s.bucketName, objectKey, expiry, reqParams)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned get URL: %w", err)
	}
	return &service.PresignedURL{
		URL:       u.String(),
		ExpiresAt: s.now().Add(expiry),
	}, nil
}
