package authz

import "fmt"

// 拒否理由の文言はクライアントに表示されるため変更しないこと
const (
	ReasonAuthenticationRequired    = "Only authenticated users"
	ReasonCannotUpdateMentor        = "you do not have permission to update this mentor"
	ReasonCannotEditMentor          = "you do not have permission to edit this mentor"
	ReasonNoMentor                  = "you do not have a mentor"
	ReasonInvalidMentor             = "invalid mentor"
	ReasonApproveMentorAdminOnly    = "only admins may approve a mentor"
	ReasonDisableUserAdminOnly      = "only admins may disable a user"
	ReasonLegacyPermissionsAdmin    = "must be an admin to edit user permissions"
	ReasonPermissionsAdminOrSuper   = "must be an admin or super admin to edit user permissions"
	ReasonGiveSuperAdminOnlySuper   = "only super admins can give super admin permissions"
	ReasonEditSuperAdminOnlySuper   = "only super admins can edit a super admins permissions"
	ReasonGiveSuperContentOnlySuper = "only super admins can give super content manager permissions"
	ReasonCannotCreateOrganization  = "you do not have permission to create an organization"
	ReasonCannotEditOrganization    = "you do not have permission to edit organization"
	ReasonOrganizationPrivate       = "organization is private and you do not have permission to access"
	ReasonMentorPrivate             = "mentor is private and you do not have permission to access"
	ReasonMentorHomePageOnly        = "mentor can only be accessed via homepage"
	ReasonCannotEditMentorPanel     = "you do not have permission to add or edit mentorpanel"
	ReasonCannotDeleteMentorPanel   = "you do not have permission to edit mentorpanel"
)

// ReasonUserNotFound は対象ユーザーが存在しない場合の理由を返します
func ReasonUserNotFound(id fmt.Stringer) string {
	return fmt.Sprintf("could not find user for id %s", id)
}

// ReasonInvalidRole は不正なロール指定の理由を返します
func ReasonInvalidRole(role string) string {
	return fmt.Sprintf("invalid role %q", role)
}
