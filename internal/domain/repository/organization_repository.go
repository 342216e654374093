package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// OrganizationRepository は組織リポジトリのインターフェース
// メンバーと組織間共有は組織集約の一部として保存されます
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)
	Update(ctx context.Context, org *entity.Organization) error

	// 存在確認
	ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error)

	// FindMembershipsByUserID はユーザーが所属する組織とロールを取得します
	FindMembershipsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.OrgMembership, error)
}
