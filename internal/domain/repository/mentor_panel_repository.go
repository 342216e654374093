package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// MentorPanelRepository はメンターパネルリポジトリのインターフェース
type MentorPanelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MentorPanel, error)
	Upsert(ctx context.Context, panel *entity.MentorPanel) error
	Delete(ctx context.Context, id uuid.UUID) error
}
