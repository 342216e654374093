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

const userColumns = `id, email, name, role, is_disabled, created_at, updated_at`

// UserRepository はユーザーリポジトリの実装です
type UserRepository struct {
	*database.BaseRepository
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository は新しいUserRepositoryを作成します
func NewUserRepository(txManager *database.TxManager) *UserRepository {
	return &UserRepository{
		BaseRepository: database.NewBaseRepository(txManager, "user"),
	}
}

// Create はユーザーを作成します
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.Querier(ctx).Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.IsDisabled, user.CreatedAt, user.UpdatedAt,
	)
	return r.HandleError(err)
}

// Update はユーザーを更新します
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	tag, err := r.Querier(ctx).Exec(ctx,
		`UPDATE users SET name = $2, role = $3, is_disabled = $4, updated_at = $5 WHERE id = $1`,
		user.ID, user.Name, string(user.Role), user.IsDisabled, user.UpdatedAt,
	)
	if err != nil {
		return r.HandleError(err)
	}
	if tag.RowsAffected() == 0 {
		return r.HandleError(pgx.ErrNoRows)
	}
	return nil
}

// FindByID はIDでユーザーを検索します
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row := r.Querier(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.scan(row)
}

// FindByEmail はメールアドレスでユーザーを検索します
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.Querier(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return r.scan(row)
}

func (r *UserRepository) scan(row pgx.Row) (*entity.User, error) {
	var (
		u    entity.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &u.IsDisabled, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, r.HandleError(err)
	}
	return entity.ReconstructUser(u.ID, u.Email, u.Name, valueobject.UserRole(role), u.IsDisabled, u.CreatedAt, u.UpdatedAt), nil
}
