package authz

import (
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// EvaluateMentorEdit はメンターに対する編集操作を判定します
//
// 判定順:
//  1. 未認証は拒否
//  2. オーナーは許可（ロック中はURL編集のみ以降の判定へ）
//  3. スーパーユーザー / 管理系ロールは許可
//  4. コンテンツ系ロールはメンター編集操作を許可
//  5. 組織ADMINとして委譲されたMANAGE以上の権限があれば許可
func EvaluateMentorEdit(actor Actor, action Action, mentor *entity.Mentor, memberships Memberships) Decision {
	if actor.IsAnonymous() {
		return DenyUnauthenticated()
	}
	if mentor == nil {
		return DenyNotFound(ReasonInvalidMentor)
	}

	if mentor.IsOwnedBy(actor.UserID) && !(mentor.IsLocked && action.IsLockable()) {
		return Allow()
	}
	if actor.Role.IsSuperUser() || actor.Role.IsAdminTier() {
		return Allow()
	}
	if actor.Role.IsContentTier() && action.IsMentorEdit() {
		return Allow()
	}
	if ResolveDelegatedAccess(mentor.OrgPermissions, memberships).CanEdit() {
		return Allow()
	}
	return Deny(mentorEditDenialReason(action))
}

func mentorEditDenialReason(action Action) string {
	switch action {
	case ActionEditMentorPrivacy, ActionEditMentorURL:
		return ReasonCannotUpdateMentor
	default:
		return ReasonCannotEditMentor
	}
}
