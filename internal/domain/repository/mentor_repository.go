package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// MentorFilter はメンター一覧の検索条件です
type MentorFilter struct {
	IncludeArchived bool
	// ExcludeHiddenIn を指定すると、その組織に対してHIDDENのメンターを除外します
	ExcludeHiddenIn *uuid.UUID
	// PublicOrOwnedBy を指定すると、公開メンターとそのユーザーが所有するメンターに限定します
	PublicOrOwnedBy *uuid.UUID
	Limit           int
	Offset          int
}

// MentorRepository はメンターリポジトリのインターフェース
type MentorRepository interface {
	// 基本CRUD（メンターは物理削除しない）
	Create(ctx context.Context, mentor *entity.Mentor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Mentor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error)
	Update(ctx context.Context, mentor *entity.Mentor) error

	// 検索
	List(ctx context.Context, filter MentorFilter) ([]*entity.Mentor, error)

	// 一括操作
	ArchiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	ArchiveOwnedByDisabledUsers(ctx context.Context) (int64, error)
}
