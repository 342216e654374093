package repository

import (
	"context"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// AuditLogRepository は監査ログの永続化インターフェースです
type AuditLogRepository interface {
	// Create は監査ログを作成します
	Create(ctx context.Context, log *entity.AuditLog) error
}
