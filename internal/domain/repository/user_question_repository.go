package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// UserQuestionRepository は質問リポジトリのインターフェース
type UserQuestionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserQuestion, error)
	Update(ctx context.Context, question *entity.UserQuestion) error
}
