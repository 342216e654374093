package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// AuditService は権限に関わる変更を記録するサービスインターフェースです
type AuditService interface {
	// Log は監査ログを非同期で記録します（失敗しても呼び出し元には影響しない）
	Log(ctx context.Context, entry AuditEntry)
}

// AuditEntry は監査ログの記録に必要な情報を定義します
type AuditEntry struct {
	ActorID      *uuid.UUID
	ActorRole    string
	Action       entity.AuditAction
	ResourceType entity.AuditResourceType
	ResourceID   *uuid.UUID
	Details      map[string]interface{}
	RequestID    string
}
