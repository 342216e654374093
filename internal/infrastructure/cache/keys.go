package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// KeyPrefix はRedisキーのプレフィックスを定義します
type KeyPrefix string

const (
	PrefixDisabledUser KeyPrefix = "user:disabled" // user:disabled:{user_id}
	PrefixRateLimit    KeyPrefix = "ratelimit"     // ratelimit:{type}:{identifier}
)

// DisabledUserKey は無効化ユーザーのキーを生成します
func DisabledUserKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", PrefixDisabledUser, userID.String())
}

// RateLimitKey はレート制限キーを生成します
func RateLimitKey(limitType, identifier string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixRateLimit, limitType, identifier)
}
