package request

// MemberRequest は組織メンバーの指定です
type MemberRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Role   string `json:"role" validate:"required"`
}

// CreateOrganizationRequest は組織作成リクエストです
// 名前やサブドメインの検証は権限判定の後にユースケースで行います
type CreateOrganizationRequest struct {
	Name      string          `json:"name"`
	Subdomain string          `json:"subdomain"`
	IsPrivate bool            `json:"isPrivate"`
	Members   []MemberRequest `json:"members" validate:"omitempty,dive"`
}

// UpdateOrganizationRequest は組織更新リクエストです
type UpdateOrganizationRequest struct {
	Name        *string                `json:"name"`
	Subdomain   *string                `json:"subdomain"`
	IsPrivate   *bool                  `json:"isPrivate"`
	Members     []MemberRequest        `json:"members" validate:"omitempty,dive"`
	Permissions []OrgPermissionRequest `json:"permissions" validate:"omitempty,dive"`
}

// UpdateOrganizationConfigRequest は組織設定の更新リクエストです
type UpdateOrganizationConfigRequest struct {
	Config map[string]any `json:"config" validate:"required"`
}
