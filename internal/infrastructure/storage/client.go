package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
)

// ExportPrefix はエクスポートオブジェクトのキー接頭辞です
const ExportPrefix = "exports/"

const exportExpiryRuleID = "expire-mentor-exports"

// ErrBucketNotFound はエクスポート用バケットが存在しない場合のエラーです
var ErrBucketNotFound = errors.New("export bucket does not exist")

// Config はエクスポート先オブジェクトストレージの接続設定です
type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	Region          string
	// RetentionDays を過ぎたエクスポートはバケットのライフサイクルで削除されます。0なら無期限
	RetentionDays int
}

// MinIOClient はメンターエクスポート用バケットを管理します
type MinIOClient struct {
	client *minio.Client
	config Config
}

// NewMinIOClient は新しいMinIOClientを作成します
func NewMinIOClient(cfg Config) (*MinIOClient, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("export bucket name is required")
	}
	if cfg.RetentionDays < 0 {
		return nil, fmt.Errorf("invalid export retention: %d days", cfg.RetentionDays)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinIOClient{client: client, config: cfg}, nil
}

// Client は内部のminio.Clientを返します
func (m *MinIOClient) Client() *minio.Client {
	return m.client
}

// BucketName はエクスポート用バケット名を返します
func (m *MinIOClient) BucketName() string {
	return m.config.BucketName
}

// Health はエクスポート用バケットに到達できるかを確認します
func (m *MinIOClient) Health(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.config.BucketName)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBucketNotFound
	}
	return nil
}

// EnsureBucket はエクスポート用バケットを用意し、保持期間のライフサイクルを適用します
func (m *MinIOClient) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.config.BucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.config.BucketName, minio.MakeBucketOptions{
			Region: m.config.Region,
		}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	policy := exportLifecycle(m.config.RetentionDays)
	if policy == nil {
		return nil
	}
	if err := m.client.SetBucketLifecycle(ctx, m.config.BucketName, policy); err != nil {
		return fmt.Errorf("failed to apply export retention: %w", err)
	}
	return nil
}

// exportLifecycle はエクスポート接頭辞のオブジェクトを期限切れにするルールを返します
func exportLifecycle(retentionDays int) *lifecycle.Configuration {
	if retentionDays <= 0 {
		return nil
	}
	cfg := lifecycle.NewConfiguration()
	cfg.Rules = []lifecycle.Rule{
		{
			ID:         exportExpiryRuleID,
			Status:     "Enabled",
			RuleFilter: lifecycle.Filter{Prefix: ExportPrefix},
			Expiration: lifecycle.Expiration{Days: lifecycle.ExpirationDays(retentionDays)},
		},
	}
	return cfg
}
