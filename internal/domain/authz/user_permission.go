package authz

import (
	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
)

// CanEditUserPermissions は行為者ロール・対象の現在ロール・要求ロールの組み合わせが許可されるかを判定します
func CanEditUserPermissions(actorRole, targetRole, requestedRole valueobject.UserRole) bool {
	return userPermissionRule(actorRole, targetRole, requestedRole) == ""
}

// userPermissionRule は拒否理由を返します（許可の場合は空文字）
func userPermissionRule(ra, rc, rr valueobject.UserRole) string {
	if !ra.IsAdminTier() {
		return ReasonPermissionsAdminOrSuper
	}
	if ra == valueobject.UserRoleSuperAdmin {
		return ""
	}
	if rr == valueobject.UserRoleSuperAdmin {
		return ReasonGiveSuperAdminOnlySuper
	}
	if rc == valueobject.UserRoleSuperAdmin {
		return ReasonEditSuperAdminOnlySuper
	}
	// ADMINが付与できるのはUSER・CONTENT_MANAGER・ADMINのみ
	if !rr.IsLegacy() {
		return ReasonGiveSuperContentOnlySuper
	}
	return ""
}

// EvaluateUserPermissionEdit はユーザーのグローバルロール変更を判定します
// targetがnilの場合は対象ユーザー不在として扱います
func EvaluateUserPermissionEdit(actor Actor, targetID uuid.UUID, target *entity.User, requested valueobject.UserRole) Decision {
	if actor.IsAnonymous() {
		return DenyUnauthenticated()
	}
	if !actor.Role.IsAdminTier() {
		return Deny(ReasonPermissionsAdminOrSuper)
	}
	if !requested.IsValid() {
		return DenyInvalidInput(ReasonInvalidRole(requested.String()))
	}
	if actor.Role != valueobject.UserRoleSuperAdmin {
		if requested == valueobject.UserRoleSuperAdmin {
			return Deny(ReasonGiveSuperAdminOnlySuper)
		}
		if target != nil && target.Role == valueobject.UserRoleSuperAdmin {
			return Deny(ReasonEditSuperAdminOnlySuper)
		}
	}
	if target == nil {
		return DenyNotFound(ReasonUserNotFound(targetID))
	}
	if reason := userPermissionRule(actor.Role, target.Role, requested); reason != "" {
		return Deny(reason)
	}
	return Allow()
}

// EvaluateLegacyUserPermissionEdit は旧3段階ロールでのロール変更を判定します
// SUPER_*ロールは行為者・対象・要求ロールのいずれでも受け付けません
func EvaluateLegacyUserPermissionEdit(actor Actor, targetID uuid.UUID, target *entity.User, requested valueobject.UserRole) Decision {
	if actor.IsAnonymous() {
		return DenyUnauthenticated()
	}
	if actor.Role != valueobject.UserRoleAdmin {
		return Deny(ReasonLegacyPermissionsAdmin)
	}
	if !requested.IsLegacy() {
		return DenyInvalidInput(ReasonInvalidRole(requested.String()))
	}
	if target == nil {
		return DenyNotFound(ReasonUserNotFound(targetID))
	}
	if !target.Role.IsLegacy() {
		return Deny(ReasonEditSuperAdminOnlySuper)
	}
	return EvaluateUserPermissionEdit(actor, targetID, target, requested)
}
