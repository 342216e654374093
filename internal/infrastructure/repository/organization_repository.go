package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/database"
)

const organizationPermissionTable = "organization_permissions"

// OrganizationRepository は組織リポジトリの実装です
type OrganizationRepository struct {
	*database.BaseRepository
}

var _ repository.OrganizationRepository = (*OrganizationRepository)(nil)

// NewOrganizationRepository は新しいOrganizationRepositoryを作成します
func NewOrganizationRepository(txManager *database.TxManager) *OrganizationRepository {
	return &OrganizationRepository{
		BaseRepository: database.NewBaseRepository(txManager, "organization"),
	}
}

// Create は組織とメンバー、共有設定を作成します
func (r *OrganizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	return r.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := r.Querier(ctx).Exec(ctx,
			`INSERT INTO organizations (id, name, subdomain, is_private, config, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			org.ID, org.Name, org.Subdomain, org.IsPrivate, config(org), org.CreatedAt, org.UpdatedAt,
		)
		if err != nil {
			return r.HandleError(err)
		}
		return r.saveChildren(ctx, org)
	})
}

// Update は組織を更新します（メンバーと共有設定は全置換）
func (r *OrganizationRepository) Update(ctx context.Context, org *entity.Organization) error {
	return r.WithTransaction(ctx, func(ctx context.Context) error {
		tag, err := r.Querier(ctx).Exec(ctx,
			`UPDATE organizations SET name = $2, subdomain = $3, is_private = $4, config = $5, updated_at = $6
			WHERE id = $1`,
			org.ID, org.Name, org.Subdomain, org.IsPrivate, config(org), org.UpdatedAt,
		)
		if err != nil {
			return r.HandleError(err)
		}
		if tag.RowsAffected() == 0 {
			return r.HandleError(pgx.ErrNoRows)
		}
		return r.saveChildren(ctx, org)
	})
}

// FindByID はIDで組織を検索します
func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	q := r.Querier(ctx)

	var org entity.Organization
	err := q.QueryRow(ctx,
		`SELECT id, name, subdomain, is_private, config, created_at, updated_at FROM organizations WHERE id = $1`, id,
	).Scan(&org.ID, &org.Name, &org.Subdomain, &org.IsPrivate, &org.Config, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		return nil, r.HandleError(err)
	}

	rows, err := q.Query(ctx, `SELECT user_id, role FROM organization_members WHERE org_id = $1 ORDER BY user_id`, id)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			m    entity.Member
			role string
		)
		if err := rows.Scan(&m.UserID, &role); err != nil {
			return nil, r.HandleError(err)
		}
		m.Role = valueobject.OrgRole(role)
		org.Members = append(org.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}

	perms, err := loadOrgPermissions(ctx, q, organizationPermissionTable, "org_id", "target_org_id", []uuid.UUID{id})
	if err != nil {
		return nil, r.HandleError(err)
	}
	org.Permissions = perms[id]
	return &org, nil
}

// ExistsBySubdomain はサブドメインが使用済みかを確認します
func (r *OrganizationRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	var exists bool
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM organizations WHERE subdomain = $1)`, subdomain,
	).Scan(&exists)
	return exists, r.HandleError(err)
}

// FindMembershipsByUserID はユーザーが所属する組織とロールを取得します
func (r *OrganizationRepository) FindMembershipsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.OrgMembership, error) {
	rows, err := r.Querier(ctx).Query(ctx, `SELECT org_id, role FROM organization_members WHERE user_id = $1`, userID)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()

	memberships := []entity.OrgMembership{}
	for rows.Next() {
		var (
			m    entity.OrgMembership
			role string
		)
		if err := rows.Scan(&m.OrgID, &role); err != nil {
			return nil, r.HandleError(err)
		}
		m.Role = valueobject.OrgRole(role)
		memberships = append(memberships, m)
	}
	return memberships, r.HandleError(rows.Err())
}

func (r *OrganizationRepository) saveChildren(ctx context.Context, org *entity.Organization) error {
	q := r.Querier(ctx)

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM organization_members WHERE org_id = $1`, org.ID)
	for _, m := range org.Members {
		batch.Queue(`INSERT INTO organization_members (org_id, user_id, role) VALUES ($1, $2, $3)`,
			org.ID, m.UserID, string(m.Role))
	}
	if err := q.SendBatch(ctx, batch).Close(); err != nil {
		return r.HandleError(err)
	}

	return r.HandleError(replaceOrgPermissions(ctx, q, organizationPermissionTable, "org_id", "target_org_id", org.ID, org.Permissions))
}

func config(org *entity.Organization) map[string]any {
	if org.Config == nil {
		return map[string]any{}
	}
	return org.Config
}
