package di

import (
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/handler"
)

// Handlers はアプリケーションのハンドラーを保持します
type Handlers struct {
	Health       *handler.HealthHandler
	Mentor       *handler.MentorHandler
	User         *handler.UserHandler
	Organization *handler.OrganizationHandler
	MentorPanel  *handler.MentorPanelHandler
	UserQuestion *handler.UserQuestionHandler
}

// NewHandlers はContainerから全てのハンドラーを初期化します
func NewHandlers(c *Container) *Handlers {
	// Health Handler
	healthHandler := handler.NewHealthHandler()
	if c.PgClient != nil {
		healthHandler.RegisterChecker("postgres", c.PgClient)
	}
	if c.RedisClient != nil {
		healthHandler.RegisterChecker("redis", c.RedisClient)
	}
	if c.MinIOClient != nil {
		healthHandler.RegisterChecker("storage", c.MinIOClient)
	}

	return &Handlers{
		Health: healthHandler,
		Mentor: handler.NewMentorHandler(
			c.Mentor.EnsureMentor,
			c.Mentor.UpdateDetails,
			c.Mentor.UpdatePrivacy,
			c.Mentor.UpdateSubjects,
			c.Mentor.UpdateAnswer,
			c.Mentor.Approve,
			c.Mentor.Export,
			c.Mentor.GetMentor,
			c.Mentor.ListOrganizationMentors,
		),
		User: handler.NewUserHandler(
			c.User.UpdatePermissions,
			c.User.Disable,
		),
		Organization: handler.NewOrganizationHandler(
			c.Organization.Create,
			c.Organization.Update,
			c.Organization.UpdateConfig,
			c.Organization.Get,
		),
		MentorPanel: handler.NewMentorPanelHandler(
			c.MentorPanel.Save,
			c.MentorPanel.Delete,
		),
		UserQuestion: handler.NewUserQuestionHandler(c.UserQuestion.SetDismissed),
	}
}
