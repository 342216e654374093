package response

import (
	"time"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// MemberResponse は組織メンバーレスポンスです
type MemberResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// OrganizationResponse は組織レスポンスです
type OrganizationResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Subdomain   string                  `json:"subdomain"`
	IsPrivate   bool                    `json:"isPrivate"`
	Members     []MemberResponse        `json:"members"`
	Permissions []OrgPermissionResponse `json:"permissions"`
	Config      map[string]any          `json:"config"`
	CanEdit     *bool                   `json:"canEdit,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// ToOrganizationResponse はエンティティからレスポンスに変換します
func ToOrganizationResponse(o *entity.Organization) OrganizationResponse {
	members := make([]MemberResponse, 0, len(o.Members))
	for _, m := range o.Members {
		members = append(members, MemberResponse{
			UserID: m.UserID.String(),
			Role:   string(m.Role),
		})
	}
	config := o.Config
	if config == nil {
		config = map[string]any{}
	}
	return OrganizationResponse{
		ID:          o.ID.String(),
		Name:        o.Name,
		Subdomain:   o.Subdomain,
		IsPrivate:   o.IsPrivate,
		Members:     members,
		Permissions: ToOrgPermissionResponses(o.Permissions),
		Config:      config,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToOrganizationResponseWithAccess は編集可否を含むレスポンスに変換します
func ToOrganizationResponseWithAccess(o *entity.Organization, canEdit bool) OrganizationResponse {
	resp := ToOrganizationResponse(o)
	resp.CanEdit = &canEdit
	return resp
}
