package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// PostgreSQLエラーコード
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// BaseRepository はリポジトリの基底構造体
type BaseRepository struct {
	txManager *TxManager
	resource  string
}

// NewBaseRepository は新しいBaseRepositoryを作成する
// resourceはNotFoundエラーのメッセージに使用する
func NewBaseRepository(txManager *TxManager, resource string) *BaseRepository {
	return &BaseRepository{txManager: txManager, resource: resource}
}

// Querier はクエリ実行用のインターフェースを返す
// トランザクション中であればTx、そうでなければPoolを返す
func (r *BaseRepository) Querier(ctx context.Context) Querier {
	return r.txManager.GetQuerier(ctx)
}

// WithTransaction はトランザクション内で関数を実行する
func (r *BaseRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.txManager.WithTransaction(ctx, fn)
}

// HandleError はpgxのエラーをAppErrorに変換する
func (r *BaseRepository) HandleError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NewResourceNotFoundError(r.resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.NewConflictError(r.resource + " already exists")
		case pgForeignKeyViolation:
			return apperror.NewValidationError("referenced record does not exist: "+pgErr.ConstraintName, nil)
		case pgCheckViolation:
			return apperror.NewValidationError("check constraint violation: "+pgErr.ConstraintName, nil)
		}
	}

	return apperror.NewInternalError(err)
}
