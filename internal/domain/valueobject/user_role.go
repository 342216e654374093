package valueobject

import "errors"

var (
	ErrInvalidUserRole = errors.New("invalid user role")
)

// UserRole はユーザーのグローバルロールを表す値オブジェクト
// ロール階層: USER < CONTENT_MANAGER < ADMIN < SUPER_CONTENT_MANAGER < SUPER_ADMIN
// Note: 権限はコンテンツ系と管理系の二軸のため、Rankだけでなく述語で判定すること
type UserRole string

const (
	UserRoleUser                UserRole = "USER"
	UserRoleContentManager      UserRole = "CONTENT_MANAGER"
	UserRoleAdmin               UserRole = "ADMIN"
	UserRoleSuperContentManager UserRole = "SUPER_CONTENT_MANAGER"
	UserRoleSuperAdmin          UserRole = "SUPER_ADMIN"
)

// NewUserRole は文字列からUserRoleを生成します
func NewUserRole(role string) (UserRole, error) {
	r := UserRole(role)
	if !r.IsValid() {
		return "", ErrInvalidUserRole
	}
	return r, nil
}

// IsValid はロールが有効かを判定します
func (r UserRole) IsValid() bool {
	return r.Rank() > 0
}

// String は文字列を返します
func (r UserRole) String() string {
	return string(r)
}

// Rank はロールの順位を返します（比較用）
func (r UserRole) Rank() int {
	switch r {
	case UserRoleSuperAdmin:
		return 5
	case UserRoleSuperContentManager:
		return 4
	case UserRoleAdmin:
		return 3
	case UserRoleContentManager:
		return 2
	case UserRoleUser:
		return 1
	default:
		return 0
	}
}

// IsAtLeast は指定されたロール以上かを判定します
func (r UserRole) IsAtLeast(threshold UserRole) bool {
	return r.IsValid() && r.Rank() >= threshold.Rank()
}

// IsSuperUser はスーパーユーザー（SUPER_ADMIN, SUPER_CONTENT_MANAGER）かを判定します
func (r UserRole) IsSuperUser() bool {
	return r == UserRoleSuperAdmin || r == UserRoleSuperContentManager
}

// IsAdminTier は管理系ロール（ADMIN, SUPER_ADMIN）かを判定します
// SUPER_CONTENT_MANAGERは含まない
func (r UserRole) IsAdminTier() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

// IsContentTier はコンテンツ編集が可能なロールかを判定します
func (r UserRole) IsContentTier() bool {
	switch r {
	case UserRoleContentManager, UserRoleSuperContentManager, UserRoleAdmin, UserRoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsLegacy は旧3段階ロール（USER, CONTENT_MANAGER, ADMIN）に含まれるかを判定します
func (r UserRole) IsLegacy() bool {
	return r == UserRoleUser || r == UserRoleContentManager || r == UserRoleAdmin
}

// AllUserRoles は全ロールを階層順に返します
func AllUserRoles() []UserRole {
	return []UserRole{
		UserRoleUser,
		UserRoleContentManager,
		UserRoleAdmin,
		UserRoleSuperContentManager,
		UserRoleSuperAdmin,
	}
}
