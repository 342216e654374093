package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/database"
)

const (
	mentorColumns = `id, user_id, name, first_name, title, email, allow_contact, mentor_type,
		is_private, direct_link_private, is_archived, is_locked, is_public_approved,
		default_subject_id, subject_ids, created_at, updated_at`

	mentorPermissionTable = "mentor_org_permissions"
)

// MentorRepository はメンターリポジトリの実装です
type MentorRepository struct {
	*database.BaseRepository
}

var _ repository.MentorRepository = (*MentorRepository)(nil)

// NewMentorRepository は新しいMentorRepositoryを作成します
func NewMentorRepository(txManager *database.TxManager) *MentorRepository {
	return &MentorRepository{
		BaseRepository: database.NewBaseRepository(txManager, "mentor"),
	}
}

// Create はメンターを作成します
func (r *MentorRepository) Create(ctx context.Context, m *entity.Mentor) error {
	return r.WithTransaction(ctx, func(ctx context.Context) error {
		q := r.Querier(ctx)
		_, err := q.Exec(ctx,
			`INSERT INTO mentors (`+mentorColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			m.ID, m.UserID, m.Name, m.FirstName, m.Title, m.Email, m.AllowContact, string(m.MentorType),
			m.IsPrivate, m.DirectLinkPrivate, m.IsArchived, m.IsLocked, m.IsPublicApproved,
			m.DefaultSubjectID, subjectIDs(m), m.CreatedAt, m.UpdatedAt,
		)
		if err != nil {
			return r.HandleError(err)
		}
		return r.HandleError(replaceOrgPermissions(ctx, q, mentorPermissionTable, "mentor_id", "org_id", m.ID, m.OrgPermissions))
	})
}

// Update はメンターと組織への委譲権限を更新します
func (r *MentorRepository) Update(ctx context.Context, m *entity.Mentor) error {
	return r.WithTransaction(ctx, func(ctx context.Context) error {
		q := r.Querier(ctx)
		tag, err := q.Exec(ctx,
			`UPDATE mentors SET
				name = $2, first_name = $3, title = $4, email = $5, allow_contact = $6, mentor_type = $7,
				is_private = $8, direct_link_private = $9, is_archived = $10, is_locked = $11,
				is_public_approved = $12, default_subject_id = $13, subject_ids = $14, updated_at = $15
			WHERE id = $1`,
			m.ID, m.Name, m.FirstName, m.Title, m.Email, m.AllowContact, string(m.MentorType),
			m.IsPrivate, m.DirectLinkPrivate, m.IsArchived, m.IsLocked,
			m.IsPublicApproved, m.DefaultSubjectID, subjectIDs(m), m.UpdatedAt,
		)
		if err != nil {
			return r.HandleError(err)
		}
		if tag.RowsAffected() == 0 {
			return r.HandleError(pgx.ErrNoRows)
		}
		return r.HandleError(replaceOrgPermissions(ctx, q, mentorPermissionTable, "mentor_id", "org_id", m.ID, m.OrgPermissions))
	})
}

// FindByID はIDでメンターを検索します
func (r *MentorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mentor, error) {
	return r.findOne(ctx, `SELECT `+mentorColumns+` FROM mentors WHERE id = $1`, id)
}

// FindByUserID はユーザーが所有するメンターを検索します
func (r *MentorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error) {
	return r.findOne(ctx, `SELECT `+mentorColumns+` FROM mentors WHERE user_id = $1`, userID)
}

// List はメンター一覧を取得します
func (r *MentorRepository) List(ctx context.Context, filter repository.MentorFilter) ([]*entity.Mentor, error) {
	q := r.Querier(ctx)
	rows, err := q.Query(ctx,
		`SELECT `+mentorColumns+` FROM mentors
		WHERE ($1 OR NOT is_archived)
		AND ($2::uuid IS NULL OR NOT EXISTS (
			SELECT 1 FROM mentor_org_permissions p
			WHERE p.mentor_id = mentors.id AND p.org_id = $2 AND p.view_permission = 'HIDDEN'))
		AND ($3::uuid IS NULL OR NOT is_private OR user_id = $3)
		ORDER BY name, id
		LIMIT $4 OFFSET $5`,
		filter.IncludeArchived, filter.ExcludeHiddenIn, filter.PublicOrOwnedBy, filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()

	mentors := []*entity.Mentor{}
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, r.HandleError(err)
		}
		mentors = append(mentors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}

	if err := r.attachPermissions(ctx, mentors...); err != nil {
		return nil, err
	}
	return mentors, nil
}

// ArchiveByUserID はユーザーが所有するメンターをアーカイブします
func (r *MentorRepository) ArchiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.Querier(ctx).Exec(ctx,
		`UPDATE mentors SET is_archived = TRUE, updated_at = NOW() WHERE user_id = $1 AND NOT is_archived`,
		userID,
	)
	if err != nil {
		return 0, r.HandleError(err)
	}
	return tag.RowsAffected(), nil
}

// ArchiveOwnedByDisabledUsers は無効化済みユーザーのメンターで未アーカイブのものをアーカイブします
func (r *MentorRepository) ArchiveOwnedByDisabledUsers(ctx context.Context) (int64, error) {
	tag, err := r.Querier(ctx).Exec(ctx,
		`UPDATE mentors m SET is_archived = TRUE, updated_at = NOW()
		FROM users u
		WHERE m.user_id = u.id AND u.is_disabled AND NOT m.is_archived`,
	)
	if err != nil {
		return 0, r.HandleError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *MentorRepository) findOne(ctx context.Context, sql string, arg any) (*entity.Mentor, error) {
	m, err := scanMentor(r.Querier(ctx).QueryRow(ctx, sql, arg))
	if err != nil {
		return nil, r.HandleError(err)
	}
	if err := r.attachPermissions(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MentorRepository) attachPermissions(ctx context.Context, mentors ...*entity.Mentor) error {
	ids := make([]uuid.UUID, 0, len(mentors))
	for _, m := range mentors {
		ids = append(ids, m.ID)
	}
	perms, err := loadOrgPermissions(ctx, r.Querier(ctx), mentorPermissionTable, "mentor_id", "org_id", ids)
	if err != nil {
		return r.HandleError(err)
	}
	for _, m := range mentors {
		m.OrgPermissions = perms[m.ID]
	}
	return nil
}

func scanMentor(row pgx.Row) (*entity.Mentor, error) {
	var (
		m          entity.Mentor
		mentorType string
	)
	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.FirstName, &m.Title, &m.Email, &m.AllowContact, &mentorType,
		&m.IsPrivate, &m.DirectLinkPrivate, &m.IsArchived, &m.IsLocked, &m.IsPublicApproved,
		&m.DefaultSubjectID, &m.SubjectIDs, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.MentorType = entity.MentorType(mentorType)
	return &m, nil
}

func subjectIDs(m *entity.Mentor) []uuid.UUID {
	if m.SubjectIDs == nil {
		return []uuid.UUID{}
	}
	return m.SubjectIDs
}
