package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/database"
)

// MentorPanelRepository はメンターパネルリポジトリの実装です
type MentorPanelRepository struct {
	*database.BaseRepository
}

var _ repository.MentorPanelRepository = (*MentorPanelRepository)(nil)

// NewMentorPanelRepository は新しいMentorPanelRepositoryを作成します
func NewMentorPanelRepository(txManager *database.TxManager) *MentorPanelRepository {
	return &MentorPanelRepository{
		BaseRepository: database.NewBaseRepository(txManager, "mentor panel"),
	}
}

// FindByID はIDでパネルを検索します
func (r *MentorPanelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MentorPanel, error) {
	var p entity.MentorPanel
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT id, org_id, subject_id, title, subtitle, mentor_ids, created_at, updated_at
		FROM mentor_panels WHERE id = $1`, id,
	).Scan(&p.ID, &p.OrgID, &p.SubjectID, &p.Title, &p.Subtitle, &p.MentorIDs, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, r.HandleError(err)
	}
	return &p, nil
}

// Upsert はパネルを作成または更新します
func (r *MentorPanelRepository) Upsert(ctx context.Context, p *entity.MentorPanel) error {
	mentorIDs := p.MentorIDs
	if mentorIDs == nil {
		mentorIDs = []uuid.UUID{}
	}
	_, err := r.Querier(ctx).Exec(ctx,
		`INSERT INTO mentor_panels (id, org_id, subject_id, title, subtitle, mentor_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			org_id = EXCLUDED.org_id,
			subject_id = EXCLUDED.subject_id,
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			mentor_ids = EXCLUDED.mentor_ids,
			updated_at = EXCLUDED.updated_at`,
		p.ID, p.OrgID, p.SubjectID, p.Title, p.Subtitle, mentorIDs, p.CreatedAt, p.UpdatedAt,
	)
	return r.HandleError(err)
}

// Delete はパネルを削除します
func (r *MentorPanelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.Querier(ctx).Exec(ctx, `DELETE FROM mentor_panels WHERE id = $1`, id)
	if err != nil {
		return r.HandleError(err)
	}
	if tag.RowsAffected() == 0 {
		return r.HandleError(pgx.ErrNoRows)
	}
	return nil
}
