package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// AnswerRepository は回答リポジトリのインターフェース
type AnswerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error)
	FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]*entity.Answer, error)
	Update(ctx context.Context, answer *entity.Answer) error
}
