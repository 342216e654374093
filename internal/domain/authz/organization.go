package authz

import (
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// EvaluateCreateOrganization は組織作成を判定します（スーパーユーザーのみ）
func EvaluateCreateOrganization(actor Actor) Decision {
	if actor.IsAnonymous() {
		return DenyUnauthenticated()
	}
	if !actor.Role.IsSuperUser() {
		return Deny(ReasonCannotCreateOrganization)
	}
	return Allow()
}

// EvaluateOrganizationView は組織の閲覧を判定します
// 非公開組織は、メンバー・スーパーユーザー・共有を受けた組織のADMINのみ閲覧できます
func EvaluateOrganizationView(actor Actor, org *entity.Organization, memberships Memberships) Decision {
	if org == nil {
		return DenyNotFound("organization not found")
	}
	if !org.IsPrivate || actor.Role.IsSuperUser() || org.IsMember(actor.UserID) {
		return Allow()
	}
	if !actor.IsAnonymous() && ResolveDelegatedAccess(org.Permissions, memberships).CanView() {
		return Allow()
	}
	return Deny(ReasonOrganizationPrivate)
}

// EvaluateOrganizationEdit は組織およびその設定の編集を判定します
// 組織CONTENT_MANAGERは組織ADMINと同じ編集権限を持ちます
func EvaluateOrganizationEdit(actor Actor, org *entity.Organization) Decision {
	if actor.IsAnonymous() {
		return DenyUnauthenticated()
	}
	if org == nil {
		return DenyNotFound("organization not found")
	}
	if actor.Role.IsSuperUser() {
		return Allow()
	}
	role, member := org.MemberRole(actor.UserID)
	if member && role.CanEditOrganization() {
		return Allow()
	}
	if !member && org.IsPrivate {
		return Deny(ReasonOrganizationPrivate)
	}
	return Deny(ReasonCannotEditOrganization)
}
