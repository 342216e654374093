package repository

import (
	"context"
	"encoding/json"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/database"
)

// AuditLogRepository は監査ログリポジトリの実装です
type AuditLogRepository struct {
	*database.BaseRepository
}

var _ repository.AuditLogRepository = (*AuditLogRepository)(nil)

// NewAuditLogRepository は新しいAuditLogRepositoryを作成します
func NewAuditLogRepository(txManager *database.TxManager) *AuditLogRepository {
	return &AuditLogRepository{
		BaseRepository: database.NewBaseRepository(txManager, "audit log"),
	}
}

// Create は監査ログを作成します
func (r *AuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	var details []byte
	if log.Details != nil {
		var err error
		details, err = json.Marshal(log.Details)
		if err != nil {
			return err
		}
	}

	_, err := r.Querier(ctx).Exec(ctx,
		`INSERT INTO audit_logs (id, actor_id, actor_role, action, resource_type, resource_id, details, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		log.ID, log.ActorID, log.ActorRole, string(log.Action), string(log.ResourceType),
		log.ResourceID, details, log.RequestID, log.CreatedAt,
	)
	return r.HandleError(err)
}
