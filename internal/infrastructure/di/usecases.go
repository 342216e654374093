package di

import (
	"time"

	mentorcmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/command"
	mentorqry "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/query"
	panelcmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentorpanel/command"
	orgcmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/organization/command"
	orgqry "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/organization/query"
	usercmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/user/command"
	uqcmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/userquestion/command"
)

// MentorUseCases はメンター関連のUseCaseを保持します
type MentorUseCases struct {
	// Commands
	EnsureMentor   *mentorcmd.EnsureMentorCommand
	UpdateDetails  *mentorcmd.UpdateMentorDetailsCommand
	UpdatePrivacy  *mentorcmd.UpdateMentorPrivacyCommand
	UpdateSubjects *mentorcmd.UpdateMentorSubjectsCommand
	UpdateAnswer   *mentorcmd.UpdateAnswerCommand
	Approve        *mentorcmd.ApproveMentorCommand
	Export         *mentorcmd.ExportMentorCommand

	// Queries
	GetMentor               *mentorqry.GetMentorQuery
	ListOrganizationMentors *mentorqry.ListOrganizationMentorsQuery
}

// NewMentorUseCases は新しいMentorUseCasesを作成します
func NewMentorUseCases(c *Container, exportURLExpiry time.Duration) *MentorUseCases {
	return &MentorUseCases{
		EnsureMentor:   mentorcmd.NewEnsureMentorCommand(c.UserRepo, c.MentorRepo),
		UpdateDetails:  mentorcmd.NewUpdateMentorDetailsCommand(c.MentorRepo, c.PermissionResolver),
		UpdatePrivacy:  mentorcmd.NewUpdateMentorPrivacyCommand(c.MentorRepo, c.PermissionResolver, c.AuditService),
		UpdateSubjects: mentorcmd.NewUpdateMentorSubjectsCommand(c.MentorRepo, c.PermissionResolver),
		UpdateAnswer:   mentorcmd.NewUpdateAnswerCommand(c.AnswerRepo, c.PermissionResolver),
		Approve:        mentorcmd.NewApproveMentorCommand(c.MentorRepo, c.PermissionResolver, c.AuditService),
		Export: mentorcmd.NewExportMentorCommand(
			c.AnswerRepo, c.PermissionResolver, c.ExportStorage, c.AuditService, exportURLExpiry,
		),

		GetMentor:               mentorqry.NewGetMentorQuery(c.PermissionResolver),
		ListOrganizationMentors: mentorqry.NewListOrganizationMentorsQuery(c.MentorRepo, c.PermissionResolver, c.Evaluator),
	}
}

// UserUseCases はユーザー管理のUseCaseを保持します
type UserUseCases struct {
	UpdatePermissions *usercmd.UpdateUserPermissionsCommand
	Disable           *usercmd.DisableUserCommand
}

// NewUserUseCases は新しいUserUseCasesを作成します
func NewUserUseCases(c *Container) *UserUseCases {
	return &UserUseCases{
		UpdatePermissions: usercmd.NewUpdateUserPermissionsCommand(c.UserRepo, c.PermissionResolver, c.AuditService),
		Disable: usercmd.NewDisableUserCommand(
			c.UserRepo, c.MentorRepo, c.TxManager, c.PermissionResolver, c.DisabledUsers, c.AuditService,
		),
	}
}

// OrganizationUseCases は組織関連のUseCaseを保持します
type OrganizationUseCases struct {
	// Commands
	Create       *orgcmd.CreateOrganizationCommand
	Update       *orgcmd.UpdateOrganizationCommand
	UpdateConfig *orgcmd.UpdateOrganizationConfigCommand

	// Queries
	Get *orgqry.GetOrganizationQuery
}

// NewOrganizationUseCases は新しいOrganizationUseCasesを作成します
func NewOrganizationUseCases(c *Container) *OrganizationUseCases {
	return &OrganizationUseCases{
		Create:       orgcmd.NewCreateOrganizationCommand(c.OrganizationRepo, c.PermissionResolver, c.AuditService),
		Update:       orgcmd.NewUpdateOrganizationCommand(c.OrganizationRepo, c.PermissionResolver, c.AuditService),
		UpdateConfig: orgcmd.NewUpdateOrganizationConfigCommand(c.OrganizationRepo, c.PermissionResolver, c.AuditService),
		Get:          orgqry.NewGetOrganizationQuery(c.PermissionResolver),
	}
}

// MentorPanelUseCases はメンターパネルのUseCaseを保持します
type MentorPanelUseCases struct {
	Save   *panelcmd.SaveMentorPanelCommand
	Delete *panelcmd.DeleteMentorPanelCommand
}

// NewMentorPanelUseCases は新しいMentorPanelUseCasesを作成します
func NewMentorPanelUseCases(c *Container) *MentorPanelUseCases {
	return &MentorPanelUseCases{
		Save:   panelcmd.NewSaveMentorPanelCommand(c.MentorPanelRepo, c.PermissionResolver, c.AuditService),
		Delete: panelcmd.NewDeleteMentorPanelCommand(c.MentorPanelRepo, c.PermissionResolver, c.AuditService),
	}
}

// UserQuestionUseCases はユーザー質問のUseCaseを保持します
type UserQuestionUseCases struct {
	SetDismissed *uqcmd.SetUserQuestionDismissedCommand
}

// NewUserQuestionUseCases は新しいUserQuestionUseCasesを作成します
func NewUserQuestionUseCases(c *Container) *UserQuestionUseCases {
	return &UserQuestionUseCases{
		SetDismissed: uqcmd.NewSetUserQuestionDismissedCommand(c.UserQuestionRepo, c.MentorRepo, c.PermissionResolver),
	}
}
