package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// UpdateAnswerInput は回答更新の入力を定義します
type UpdateAnswerInput struct {
	Actor      authz.Actor
	MentorID   uuid.UUID
	AnswerID   uuid.UUID
	Transcript *string
	Markdown   *string
	Status     *string
	WebURL     *string
	MobileURL  *string
}

// changesMedia は動画URLの変更を含むかを判定します
func (in UpdateAnswerInput) changesMedia() bool {
	return in.WebURL != nil || in.MobileURL != nil
}

// UpdateAnswerOutput は回答更新の出力を定義します
type UpdateAnswerOutput struct {
	Answer *entity.Answer
}

// UpdateAnswerCommand は回答更新コマンドです
type UpdateAnswerCommand struct {
	answerRepo repository.AnswerRepository
	resolver   authz.PermissionResolver
}

// NewUpdateAnswerCommand は新しいUpdateAnswerCommandを作成します
func NewUpdateAnswerCommand(
	answerRepo repository.AnswerRepository,
	resolver authz.PermissionResolver,
) *UpdateAnswerCommand {
	return &UpdateAnswerCommand{
		answerRepo: answerRepo,
		resolver:   resolver,
	}
}

// Execute は回答を更新します
// 動画URLの変更はロックされたメンターのオーナーには許可されません
func (c *UpdateAnswerCommand) Execute(ctx context.Context, input UpdateAnswerInput) (*UpdateAnswerOutput, error) {
	// 1. 入力のバリデーション
	var status *entity.AnswerStatus
	if input.Status != nil {
		s := entity.AnswerStatus(*input.Status)
		if !s.IsValid() {
			return nil, apperror.NewValidationError("invalid answer status", nil)
		}
		status = &s
	}

	// 2. 権限チェック
	mentor, err := c.resolver.AuthorizeMentor(ctx, input.Actor, authz.ActionEditAnswer, input.MentorID)
	if err != nil {
		return nil, err
	}
	if input.changesMedia() {
		if err := c.resolver.Authorize(ctx, input.Actor, authz.ActionEditMentorURL, authz.Resource{Mentor: mentor}); err != nil {
			return nil, err
		}
	}

	// 3. 回答の取得（他のメンターの回答は存在しないものとして扱う）
	answer, err := c.answerRepo.FindByID(ctx, input.AnswerID)
	if err != nil {
		return nil, err
	}
	if answer.MentorID != mentor.ID {
		return nil, apperror.NewResourceNotFoundError("answer")
	}

	// 4. 更新
	answer.UpdateText(input.Transcript, input.Markdown, status)
	if input.changesMedia() {
		answer.UpdateMediaURLs(input.WebURL, input.MobileURL)
	}
	if err := c.answerRepo.Update(ctx, answer); err != nil {
		return nil, err
	}

	return &UpdateAnswerOutput{Answer: answer}, nil
}
