package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/request"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/dto/response"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/middleware"
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/presenter"
	uqcmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/userquestion/command"
)

// UserQuestionHandler はユーザー質問のHTTPハンドラーです
type UserQuestionHandler struct {
	setDismissedCmd *uqcmd.SetUserQuestionDismissedCommand
}

// NewUserQuestionHandler は新しいUserQuestionHandlerを作成します
func NewUserQuestionHandler(setDismissedCmd *uqcmd.SetUserQuestionDismissedCommand) *UserQuestionHandler {
	return &UserQuestionHandler{setDismissedCmd: setDismissedCmd}
}

// SetDismissed はユーザー質問の非表示状態を切り替えます
// @Summary ユーザー質問の非表示設定
// @Tags UserQuestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "質問ID"
// @Router /user-questions/{id}/dismissed [patch]
func (h *UserQuestionHandler) SetDismissed(c echo.Context) error {
	questionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req request.SetUserQuestionDismissedRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.setDismissedCmd.Execute(c.Request().Context(), uqcmd.SetUserQuestionDismissedInput{
		Actor:      middleware.GetActor(c),
		QuestionID: questionID,
		Dismissed:  req.Dismissed,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToUserQuestionResponse(output.Question))
}
