package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/database"
)

const answerColumns = `id, mentor_id, question_id, transcript, markdown, status, web_url, mobile_url, created_at, updated_at`

// AnswerRepository は回答リポジトリの実装です
type AnswerRepository struct {
	*database.BaseRepository
}

var _ repository.AnswerRepository = (*AnswerRepository)(nil)

// NewAnswerRepository は新しいAnswerRepositoryを作成します
func NewAnswerRepository(txManager *database.TxManager) *AnswerRepository {
	return &AnswerRepository{
		BaseRepository: database.NewBaseRepository(txManager, "answer"),
	}
}

// FindByID はIDで回答を検索します
func (r *AnswerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error) {
	a, err := scanAnswer(r.Querier(ctx).QueryRow(ctx, `SELECT `+answerColumns+` FROM answers WHERE id = $1`, id))
	if err != nil {
		return nil, r.HandleError(err)
	}
	return a, nil
}

// FindByMentorID はメンターの回答を全て取得します
func (r *AnswerRepository) FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]*entity.Answer, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+answerColumns+` FROM answers WHERE mentor_id = $1 ORDER BY created_at, id`, mentorID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()

	answers := []*entity.Answer{}
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, r.HandleError(err)
		}
		answers = append(answers, a)
	}
	return answers, r.HandleError(rows.Err())
}

// Update は回答を更新します
func (r *AnswerRepository) Update(ctx context.Context, a *entity.Answer) error {
	tag, err := r.Querier(ctx).Exec(ctx,
		`UPDATE answers SET transcript = $2, markdown = $3, status = $4, web_url = $5, mobile_url = $6, updated_at = $7
		WHERE id = $1`,
		a.ID, a.Transcript, a.Markdown, string(a.Status), a.WebURL, a.MobileURL, a.UpdatedAt,
	)
	if err != nil {
		return r.HandleError(err)
	}
	if tag.RowsAffected() == 0 {
		return r.HandleError(pgx.ErrNoRows)
	}
	return nil
}

func scanAnswer(row pgx.Row) (*entity.Answer, error) {
	var (
		a      entity.Answer
		status string
	)
	if err := row.Scan(&a.ID, &a.MentorID, &a.QuestionID, &a.Transcript, &a.Markdown, &status,
		&a.WebURL, &a.MobileURL, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = entity.AnswerStatus(status)
	return &a, nil
}
