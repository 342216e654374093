package authz

// Action は権限判定の対象となる操作を表す型
type Action string

const (
	ActionViewMentor                 Action = "view-mentor"
	ActionEditMentorDetails          Action = "edit-mentor-details"
	ActionEditMentorPrivacy          Action = "edit-mentor-privacy"
	ActionEditMentorSubjects         Action = "edit-mentor-subjects"
	ActionEditAnswer                 Action = "edit-answer"
	ActionEditMentorURL              Action = "edit-mentor-url"
	ActionApproveMentorPublicly      Action = "approve-mentor-publicly"
	ActionDisableUser                Action = "disable-user"
	ActionCreateOrganization         Action = "create-organization"
	ActionViewOrganization           Action = "view-organization"
	ActionEditOrganization           Action = "edit-organization"
	ActionEditOrganizationConfig     Action = "edit-organization-config"
	ActionEditUserPermissions        Action = "edit-user-permissions"
	ActionCreateOrEditMentorPanel    Action = "create-or-edit-mentor-panel"
	ActionDeleteMentorPanel          Action = "delete-mentor-panel"
	ActionEditOtherUsersUserQuestion Action = "edit-other-users-user-question"
)

// String は文字列を返します
func (a Action) String() string {
	return string(a)
}

// IsMentorEdit はメンター編集系の操作かを判定します
func (a Action) IsMentorEdit() bool {
	switch a {
	case ActionEditMentorDetails, ActionEditMentorPrivacy, ActionEditMentorSubjects,
		ActionEditAnswer, ActionEditMentorURL:
		return true
	default:
		return false
	}
}

// IsLockable はメンターのロック時にオーナーでも実行できない操作かを判定します
func (a Action) IsLockable() bool {
	return a == ActionEditMentorURL
}
