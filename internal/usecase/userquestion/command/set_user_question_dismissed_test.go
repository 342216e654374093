package command_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/internal/usecase/userquestion/command"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

func TestSetUserQuestionDismissedCommand_Execute_MentorOwner_Success(t *testing.T) {
	ctx := context.Background()
	questionRepo := mocks.NewMockUserQuestionRepository(t)
	mentorRepo := mocks.NewMockMentorRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)

	actor := authz.NewActor(uuid.New(), valueobject.UserRoleUser)
	mentor := entity.NewMentor(actor.UserID, "Clint Anderson")
	question := &entity.UserQuestion{ID: uuid.New(), MentorID: mentor.ID, Question: "why?"}

	questionRepo.On("FindByID", ctx, question.ID).Return(question, nil)
	mentorRepo.On("FindByID", ctx, mentor.ID).Return(mentor, nil)
	resolver.On("Authorize", ctx, actor, authz.ActionEditOtherUsersUserQuestion, authz.Resource{Mentor: mentor}).Return(nil)
	questionRepo.On("Update", ctx, question).Return(nil)

	cmd := command.NewSetUserQuestionDismissedCommand(questionRepo, mentorRepo, resolver)
	output, err := cmd.Execute(ctx, command.SetUserQuestionDismissedInput{Actor: actor, QuestionID: question.ID, Dismissed: true})

	require.NoError(t, err)
	assert.True(t, output.Question.Dismissed)
}

func TestSetUserQuestionDismissedCommand_Execute_OtherUser_Denied(t *testing.T) {
	ctx := context.Background()
	questionRepo := mocks.NewMockUserQuestionRepository(t)
	mentorRepo := mocks.NewMockMentorRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)

	actor := authz.NewActor(uuid.New(), valueobject.UserRoleUser)
	mentor := entity.NewMentor(uuid.New(), "Clint Anderson")
	question := &entity.UserQuestion{ID: uuid.New(), MentorID: mentor.ID}

	questionRepo.On("FindByID", ctx, question.ID).Return(question, nil)
	mentorRepo.On("FindByID", ctx, mentor.ID).Return(mentor, nil)
	resolver.On("Authorize", ctx, actor, authz.ActionEditOtherUsersUserQuestion, authz.Resource{Mentor: mentor}).
		Return(authz.Deny(authz.ReasonCannotEditMentor).Err())

	cmd := command.NewSetUserQuestionDismissedCommand(questionRepo, mentorRepo, resolver)
	_, err := cmd.Execute(ctx, command.SetUserQuestionDismissedInput{Actor: actor, QuestionID: question.ID, Dismissed: true})

	assert.True(t, apperror.IsForbidden(err))
	assert.False(t, question.Dismissed)
	questionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetUserQuestionDismissedCommand_Execute_Anonymous_Unauthorized(t *testing.T) {
	ctx := context.Background()
	cmd := command.NewSetUserQuestionDismissedCommand(
		mocks.NewMockUserQuestionRepository(t),
		mocks.NewMockMentorRepository(t),
		mocks.NewMockPermissionResolver(t),
	)

	_, err := cmd.Execute(ctx, command.SetUserQuestionDismissedInput{Actor: authz.Anonymous(), QuestionID: uuid.New()})

	assert.True(t, apperror.IsUnauthorized(err))
}
