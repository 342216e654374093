package authz

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// PermissionResolver はリソースのスナップショットを取得し、Evaluatorで判定するサービスインターフェース
// 拒否時はDecision.Err()のAppErrorを返します
type PermissionResolver interface {
	// Memberships は行為者の組織ロールを取得します
	Memberships(ctx context.Context, actor Actor) (Memberships, error)

	// AuthorizeMentor はメンターへの編集系操作を判定し、対象メンターを返します
	// mentorIDがuuid.Nilの場合は行為者自身のメンターを対象とします
	AuthorizeMentor(ctx context.Context, actor Actor, action Action, mentorID uuid.UUID) (*entity.Mentor, error)

	// AuthorizeMentorView はメンターの閲覧を判定し、対象メンターを返します
	AuthorizeMentorView(ctx context.Context, actor Actor, mentorID uuid.UUID, homePage *LeftHomePageData) (*entity.Mentor, error)

	// AuthorizeOrganization は組織への操作を判定し、対象組織を返します
	AuthorizeOrganization(ctx context.Context, actor Actor, action Action, orgID uuid.UUID) (*entity.Organization, error)

	// Authorize は取得済みのリソースに対する操作を判定します
	Authorize(ctx context.Context, actor Actor, action Action, res Resource) error
}
