package authz

import (
	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
)

// Memberships は行為者の組織ロールを組織IDごとに保持します
type Memberships map[uuid.UUID]valueobject.OrgRole

// RoleIn は指定組織でのロールを返します
func (m Memberships) RoleIn(orgID uuid.UUID) (valueobject.OrgRole, bool) {
	r, ok := m[orgID]
	return r, ok
}

// DelegatedAccess は組織経由で委譲された権限レベルです
type DelegatedAccess struct {
	View valueobject.PermissionLevel
	Edit valueobject.PermissionLevel
}

// CanView は閲覧可能かを判定します
func (d DelegatedAccess) CanView() bool {
	return d.View.AllowsView() || d.Edit.AllowsEdit()
}

// CanEdit は編集可能かを判定します
func (d DelegatedAccess) CanEdit() bool {
	return d.Edit.AllowsEdit()
}

// ResolveDelegatedAccess は行為者が組織ADMINである組織の権限を畳み込み、最も強いレベルを返します
// 該当する組織がなければ NONE/NONE を返します
func ResolveDelegatedAccess(perms []entity.OrgPermission, memberships Memberships) DelegatedAccess {
	var views, edits []valueobject.PermissionLevel
	for _, p := range perms {
		role, ok := memberships.RoleIn(p.OrgID)
		if !ok || !role.IsAdmin() {
			continue
		}
		views = append(views, p.ViewPermission)
		edits = append(edits, p.EditPermission)
	}
	return DelegatedAccess{
		View: valueobject.MaxPermissionLevel(views...),
		Edit: valueobject.MaxPermissionLevel(edits...),
	}
}
