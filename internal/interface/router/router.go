package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/di"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/middleware"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/presenter"
)

// Router はルート定義を管理します
type Router struct {
	echo           *echo.Echo
	handlers       *di.Handlers
	middlewares    *di.Middlewares
	metricsHandler http.Handler
}

// NewRouter は新しいRouterを作成します
func NewRouter(e *echo.Echo, handlers *di.Handlers, middlewares *di.Middlewares, metricsHandler http.Handler) *Router {
	return &Router{
		echo:           e,
		handlers:       handlers,
		middlewares:    middlewares,
		metricsHandler: metricsHandler,
	}
}

// Setup は全てのルートを設定します
func (r *Router) Setup() {
	r.setupOperationalRoutes()
	r.setupAPIRoutes()
}

// setupOperationalRoutes はヘルスチェックとメトリクスのルートを設定します
func (r *Router) setupOperationalRoutes() {
	if r.handlers.Health != nil {
		r.echo.GET("/health", r.handlers.Health.Check)
		r.echo.GET("/ready", r.handlers.Health.Ready)
	}
	if r.metricsHandler != nil {
		r.echo.GET("/metrics", echo.WrapHandler(r.metricsHandler))
	}
}

// setupAPIRoutes はAPIルートを設定します
func (r *Router) setupAPIRoutes() {
	api := r.echo.Group("/api/v1")

	api.GET("/", func(c echo.Context) error {
		return presenter.OK(c, map[string]string{
			"message": "Mentor API v1",
		})
	})

	r.setupMentorRoutes(api)
	r.setupUserRoutes(api)
	r.setupOrganizationRoutes(api)
	r.setupMentorPanelRoutes(api)
	r.setupUserQuestionRoutes(api)
}

func (r *Router) read() echo.MiddlewareFunc {
	return r.middlewares.RateLimit.ByActor(middleware.RateLimitAPIRead)
}

func (r *Router) write() echo.MiddlewareFunc {
	return r.middlewares.RateLimit.ByActor(middleware.RateLimitAPIWrite)
}

// setupMentorRoutes はメンター関連ルートを設定します
func (r *Router) setupMentorRoutes(api *echo.Group) {
	h := r.handlers.Mentor

	// 初回ログイン時のメンター作成
	meGroup := api.Group("/me", middleware.RequireAuth())
	meGroup.POST("/mentor", h.EnsureMentor, r.write())

	mentors := api.Group("/mentors")
	mentors.GET("/:id", h.GetMentor, r.read())
	mentors.PATCH("/:id/details", h.UpdateDetails, r.write())
	mentors.PATCH("/:id/privacy", h.UpdatePrivacy, r.write())
	mentors.PUT("/:id/subjects", h.UpdateSubjects, r.write())
	mentors.PATCH("/:id/answers/:answerId", h.UpdateAnswer, r.write())
	mentors.POST("/:id/approve", h.Approve, r.write())
	mentors.POST("/:id/export", h.Export,
		r.middlewares.RateLimit.ByActor(middleware.RateLimitExport))
}

// setupUserRoutes はユーザー管理ルートを設定します
func (r *Router) setupUserRoutes(api *echo.Group) {
	users := api.Group("/users")
	users.PATCH("/:id/role", r.handlers.User.UpdateRole, r.write())
	users.PATCH("/:id/legacy-role", r.handlers.User.UpdateLegacyRole, r.write())
	users.POST("/:id/disable", r.handlers.User.Disable, r.write())
}

// setupOrganizationRoutes は組織関連ルートを設定します
func (r *Router) setupOrganizationRoutes(api *echo.Group) {
	h := r.handlers.Organization

	orgs := api.Group("/organizations")
	orgs.POST("", h.CreateOrganization, r.write())
	orgs.GET("/:id", h.GetOrganization, r.read())
	orgs.GET("/:id/mentors", r.handlers.Mentor.ListOrganizationMentors, r.read())
	orgs.PATCH("/:id", h.UpdateOrganization, r.write())
	orgs.PUT("/:id/config", h.UpdateOrganizationConfig, r.write())
}

// setupMentorPanelRoutes はメンターパネル関連ルートを設定します
func (r *Router) setupMentorPanelRoutes(api *echo.Group) {
	panels := api.Group("/mentor-panels")
	panels.PUT("", r.handlers.MentorPanel.Save, r.write())
	panels.DELETE("/:id", r.handlers.MentorPanel.Delete, r.write())
}

// setupUserQuestionRoutes はユーザー質問関連ルートを設定します
func (r *Router) setupUserQuestionRoutes(api *echo.Group) {
	api.PATCH("/user-questions/:id/dismissed", r.handlers.UserQuestion.SetDismissed, r.write())
}
