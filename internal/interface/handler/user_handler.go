package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/request"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/response"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/middleware"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/presenter"
	usercmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/user/command"
)

// UserHandler はユーザー管理のHTTPハンドラーです
type UserHandler struct {
	updatePermissionsCmd *usercmd.UpdateUserPermissionsCommand
	disableUserCmd       *usercmd.DisableUserCommand
}

// NewUserHandler は新しいUserHandlerを作成します
func NewUserHandler(
	updatePermissionsCmd *usercmd.UpdateUserPermissionsCommand,
	disableUserCmd *usercmd.DisableUserCommand,
) *UserHandler {
	return &UserHandler{
		updatePermissionsCmd: updatePermissionsCmd,
		disableUserCmd:       disableUserCmd,
	}
}

// UpdateRole はユーザーのグローバルロールを変更します
// @Summary ユーザーロール変更
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ユーザーID"
// @Param body body request.UpdateUserRoleRequest true "新しいロール"
// @Router /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	return h.updateRole(c, false)
}

// UpdateLegacyRole は旧3段階ロールのエンドポイントでロールを変更します
// @Summary ユーザーロール変更 (旧)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ユーザーID"
// @Router /users/{id}/legacy-role [patch]
func (h *UserHandler) UpdateLegacyRole(c echo.Context) error {
	return h.updateRole(c, true)
}

func (h *UserHandler) updateRole(c echo.Context, legacy bool) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req request.UpdateUserRoleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.updatePermissionsCmd.Execute(c.Request().Context(), usercmd.UpdateUserPermissionsInput{
		Actor:  middleware.GetActor(c),
		UserID: userID,
		Role:   req.Role,
		Legacy: legacy,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.UserRoleChangeResponse{
		User:         response.ToUserResponse(output.User),
		PreviousRole: string(output.PreviousRole),
	})
}

// Disable はユーザーを無効化し、所有するメンターをアーカイブします
// @Summary ユーザー無効化
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ユーザーID"
// @Router /users/{id}/disable [post]
func (h *UserHandler) Disable(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.disableUserCmd.Execute(c.Request().Context(), usercmd.DisableUserInput{
		Actor:  middleware.GetActor(c),
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.DisableUserResponse{
		User:            response.ToUserResponse(output.User),
		ArchivedMentors: output.ArchivedMentors,
	})
}
