package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/request"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/response"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/middleware"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/presenter"
	panelcmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentorpanel/command"
)

// MentorPanelHandler はメンターパネルのHTTPハンドラーです
type MentorPanelHandler struct {
	savePanelCmd   *panelcmd.SaveMentorPanelCommand
	deletePanelCmd *panelcmd.DeleteMentorPanelCommand
}

// NewMentorPanelHandler は新しいMentorPanelHandlerを作成します
func NewMentorPanelHandler(
	savePanelCmd *panelcmd.SaveMentorPanelCommand,
	deletePanelCmd *panelcmd.DeleteMentorPanelCommand,
) *MentorPanelHandler {
	return &MentorPanelHandler{
		savePanelCmd:   savePanelCmd,
		deletePanelCmd: deletePanelCmd,
	}
}

// Save はメンターパネルを作成または更新します
// @Summary メンターパネル保存
// @Tags MentorPanels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body request.SaveMentorPanelRequest true "パネル"
// @Router /mentor-panels [put]
func (h *MentorPanelHandler) Save(c echo.Context) error {
	var req request.SaveMentorPanelRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	mentorIDs, err := parseIDs("mentorIds", req.MentorIDs)
	if err != nil {
		return err
	}

	output, err := h.savePanelCmd.Execute(c.Request().Context(), panelcmd.SaveMentorPanelInput{
		Actor:     middleware.GetActor(c),
		ID:        optionalID(req.ID),
		OrgID:     optionalID(req.OrgID),
		SubjectID: optionalID(req.SubjectID),
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		MentorIDs: mentorIDs,
	})
	if err != nil {
		return err
	}

	if output.Created {
		return presenter.Created(c, response.ToMentorPanelResponse(output.Panel))
	}
	return presenter.OK(c, response.ToMentorPanelResponse(output.Panel))
}

// Delete はメンターパネルを削除します
// @Summary メンターパネル削除
// @Tags MentorPanels
// @Security BearerAuth
// @Param id path string true "パネルID"
// @Router /mentor-panels/{id} [delete]
func (h *MentorPanelHandler) Delete(c echo.Context) error {
	panelID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deletePanelCmd.Execute(c.Request().Context(), panelcmd.DeleteMentorPanelInput{
		Actor:   middleware.GetActor(c),
		PanelID: panelID,
	}); err != nil {
		return err
	}

	return presenter.NoContent(c)
}
