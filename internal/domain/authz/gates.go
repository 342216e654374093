package authz

import (
	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// EvaluateDisableUser はユーザー無効化を判定します（管理系ロールのみ）
func EvaluateDisableUser(actor Actor, targetID uuid.UUID, target *entity.User) Decision {
	if actor.IsAnonymous() {
		return DenyUnauthenticated()
	}
	if !actor.Role.IsAdminTier() {
		return Deny(ReasonDisableUserAdminOnly)
	}
	if target == nil {
		return DenyNotFound(ReasonUserNotFound(targetID))
	}
	return Allow()
}

// EvaluateApproveMentor はメンターの公開承認を判定します（管理系ロールのみ）
func EvaluateApproveMentor(actor Actor, mentor *entity.Mentor) Decision {
	if actor.IsAnonymous() {
		return DenyUnauthenticated()
	}
	if !actor.Role.IsAdminTier() {
		return Deny(ReasonApproveMentorAdminOnly)
	}
	if mentor == nil {
		return DenyNotFound(ReasonInvalidMentor)
	}
	return Allow()
}

// EvaluateMentorPanel はメンターパネルの作成・編集・削除を判定します
func EvaluateMentorPanel(actor Actor, action Action) Decision {
	if actor.IsAnonymous() {
		return DenyUnauthenticated()
	}
	if actor.Role.IsContentTier() {
		return Allow()
	}
	if action == ActionDeleteMentorPanel {
		return Deny(ReasonCannotDeleteMentorPanel)
	}
	return Deny(ReasonCannotEditMentorPanel)
}

// EvaluateUserQuestionEdit は質問の編集を判定します
// 質問先メンターのオーナーは自身の質問を編集でき、それ以外はコンテンツ系ロールが必要です
func EvaluateUserQuestionEdit(actor Actor, mentor *entity.Mentor) Decision {
	if actor.IsAnonymous() {
		return DenyUnauthenticated()
	}
	if mentor == nil {
		return DenyNotFound(ReasonInvalidMentor)
	}
	if mentor.IsOwnedBy(actor.UserID) || actor.Role.IsContentTier() {
		return Allow()
	}
	return Deny(ReasonCannotEditMentor)
}
