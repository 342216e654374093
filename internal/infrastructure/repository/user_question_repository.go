package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/database"
)

// UserQuestionRepository は質問リポジトリの実装です
type UserQuestionRepository struct {
	*database.BaseRepository
}

var _ repository.UserQuestionRepository = (*UserQuestionRepository)(nil)

// NewUserQuestionRepository は新しいUserQuestionRepositoryを作成します
func NewUserQuestionRepository(txManager *database.TxManager) *UserQuestionRepository {
	return &UserQuestionRepository{
		BaseRepository: database.NewBaseRepository(txManager, "user question"),
	}
}

// FindByID はIDで質問を検索します
func (r *UserQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserQuestion, error) {
	var q entity.UserQuestion
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT id, mentor_id, question, dismissed, created_at, updated_at FROM user_questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.MentorID, &q.Question, &q.Dismissed, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, r.HandleError(err)
	}
	return &q, nil
}

// Update は質問を更新します
func (r *UserQuestionRepository) Update(ctx context.Context, q *entity.UserQuestion) error {
	tag, err := r.Querier(ctx).Exec(ctx,
		`UPDATE user_questions SET dismissed = $2, updated_at = $3 WHERE id = $1`,
		q.ID, q.Dismissed, q.UpdatedAt,
	)
	if err != nil {
		return r.HandleError(err)
	}
	if tag.RowsAffected() == 0 {
		return r.HandleError(pgx.ErrNoRows)
	}
	return nil
}
