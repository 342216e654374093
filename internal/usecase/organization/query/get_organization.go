package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// GetOrganizationInput は組織取得の入力を定義します
type GetOrganizationInput struct {
	Actor authz.Actor
	OrgID uuid.UUID
}

// GetOrganizationOutput は組織取得の出力を定義します
type GetOrganizationOutput struct {
	Organization *entity.Organization
	// CanEdit は行為者が組織を編集できるかを示します
	CanEdit bool
}

// GetOrganizationQuery は組織取得クエリです
type GetOrganizationQuery struct {
	resolver authz.PermissionResolver
}

// NewGetOrganizationQuery は新しいGetOrganizationQueryを作成します
func NewGetOrganizationQuery(resolver authz.PermissionResolver) *GetOrganizationQuery {
	return &GetOrganizationQuery{resolver: resolver}
}

// Execute は組織を取得します
func (q *GetOrganizationQuery) Execute(ctx context.Context, input GetOrganizationInput) (*GetOrganizationOutput, error) {
	org, err := q.resolver.AuthorizeOrganization(ctx, input.Actor, authz.ActionViewOrganization, input.OrgID)
	if err != nil {
		return nil, err
	}

	canEdit := q.resolver.Authorize(ctx, input.Actor, authz.ActionEditOrganization, authz.Resource{Organization: org}) == nil

	return &GetOrganizationOutput{Organization: org, CanEdit: canEdit}, nil
}
