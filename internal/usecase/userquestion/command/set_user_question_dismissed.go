package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// SetUserQuestionDismissedInput は質問の却下設定の入力を定義します
type SetUserQuestionDismissedInput struct {
	Actor      authz.Actor
	QuestionID uuid.UUID
	Dismissed  bool
}

// SetUserQuestionDismissedOutput は質問の却下設定の出力を定義します
type SetUserQuestionDismissedOutput struct {
	Question *entity.UserQuestion
}

// SetUserQuestionDismissedCommand は質問の却下設定コマンドです
type SetUserQuestionDismissedCommand struct {
	questionRepo repository.UserQuestionRepository
	mentorRepo   repository.MentorRepository
	resolver     authz.PermissionResolver
}

// NewSetUserQuestionDismissedCommand は新しいSetUserQuestionDismissedCommandを作成します
func NewSetUserQuestionDismissedCommand(
	questionRepo repository.UserQuestionRepository,
	mentorRepo repository.MentorRepository,
	resolver authz.PermissionResolver,
) *SetUserQuestionDismissedCommand {
	return &SetUserQuestionDismissedCommand{
		questionRepo: questionRepo,
		mentorRepo:   mentorRepo,
		resolver:     resolver,
	}
}

// Execute は質問の却下状態を設定します
// 質問が向けられたメンターのオーナーかコンテンツ系ロールのみ変更できます
func (c *SetUserQuestionDismissedCommand) Execute(ctx context.Context, input SetUserQuestionDismissedInput) (*SetUserQuestionDismissedOutput, error) {
	if input.Actor.IsAnonymous() {
		return nil, authz.DenyUnauthenticated().Err()
	}

	question, err := c.questionRepo.FindByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}

	mentor, err := c.mentorRepo.FindByID(ctx, question.MentorID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}

	if err := c.resolver.Authorize(ctx, input.Actor, authz.ActionEditOtherUsersUserQuestion, authz.Resource{Mentor: mentor}); err != nil {
		return nil, err
	}

	question.SetDismissed(input.Dismissed)
	if err := c.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}

	return &SetUserQuestionDismissedOutput{Question: question}, nil
}
