package valueobject

import "errors"

var (
	ErrInvalidOrgRole = errors.New("invalid organization role")
)

// OrgRole は組織内のメンバーシップロールを表す値オブジェクト
// Note: グローバルロール（UserRole）とは独立している
type OrgRole string

const (
	OrgRoleUser           OrgRole = "USER"
	OrgRoleContentManager OrgRole = "CONTENT_MANAGER"
	OrgRoleAdmin          OrgRole = "ADMIN"
)

// NewOrgRole は文字列からOrgRoleを生成します
func NewOrgRole(role string) (OrgRole, error) {
	r := OrgRole(role)
	if !r.IsValid() {
		return "", ErrInvalidOrgRole
	}
	return r, nil
}

// IsValid はロールが有効かを判定します
func (r OrgRole) IsValid() bool {
	switch r {
	case OrgRoleUser, OrgRoleContentManager, OrgRoleAdmin:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (r OrgRole) String() string {
	return string(r)
}

// IsAdmin は組織管理者かを判定します
func (r OrgRole) IsAdmin() bool {
	return r == OrgRoleAdmin
}

// CanEditOrganization は組織の編集が可能かを判定します（ADMIN, CONTENT_MANAGER）
func (r OrgRole) CanEditOrganization() bool {
	return r == OrgRoleAdmin || r == OrgRoleContentManager
}
