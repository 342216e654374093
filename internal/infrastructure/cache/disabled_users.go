package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
)

// DisabledUserStore は無効化されたユーザーを記録し、発行済みトークンを拒否できるようにします
// エントリのTTLはアクセストークンの最大有効期間です（それ以降のトークンは発行時に拒否される）
type DisabledUserStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ service.DisabledUserRegistry = (*DisabledUserStore)(nil)

// NewDisabledUserStore は新しいDisabledUserStoreを作成します
func NewDisabledUserStore(client *redis.Client, tokenTTL time.Duration) *DisabledUserStore {
	return &DisabledUserStore{client: client, ttl: tokenTTL}
}

// MarkDisabled はユーザーを無効化済みとして記録します
func (s *DisabledUserStore) MarkDisabled(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Set(ctx, DisabledUserKey(userID), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark user disabled: %w", err)
	}
	return nil
}

// IsDisabled はユーザーが無効化済みか確認します
func (s *DisabledUserStore) IsDisabled(ctx context.Context, userID uuid.UUID) (bool, error) {
	exists, err := s.client.Exists(ctx, DisabledUserKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check disabled user: %w", err)
	}
	return exists > 0, nil
}
