package command_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/command"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

type updateAnswerTestDeps struct {
	answerRepo *mocks.MockAnswerRepository
	resolver   *mocks.MockPermissionResolver
}

func newUpdateAnswerTestDeps(t *testing.T) *updateAnswerTestDeps {
	t.Helper()
	return &updateAnswerTestDeps{
		answerRepo: mocks.NewMockAnswerRepository(t),
		resolver:   mocks.NewMockPermissionResolver(t),
	}
}

func (d *updateAnswerTestDeps) newCommand() *command.UpdateAnswerCommand {
	return command.NewUpdateAnswerCommand(d.answerRepo, d.resolver)
}

func TestUpdateAnswerCommand_Execute_TranscriptOnly_SkipsURLCheck(t *testing.T) {
	ctx := context.Background()
	deps := newUpdateAnswerTestDeps(t)
	actor := newTestActor(valueobject.UserRoleUser)
	mentor := newTestMentor(actor.UserID)
	answer := entity.NewAnswer(mentor.ID, uuid.New())

	deps.resolver.On("AuthorizeMentor", ctx, actor, authz.ActionEditAnswer, mentor.ID).Return(mentor, nil)
	deps.answerRepo.On("FindByID", ctx, answer.ID).Return(answer, nil)
	deps.answerRepo.On("Update", ctx, answer).Return(nil)

	output, err := deps.newCommand().Execute(ctx, command.UpdateAnswerInput{
		Actor:      actor,
		MentorID:   mentor.ID,
		AnswerID:   answer.ID,
		Transcript: strPtr("I joined the Navy in 1998."),
		Status:     strPtr("COMPLETE"),
	})

	require.NoError(t, err)
	assert.Equal(t, "I joined the Navy in 1998.", output.Answer.Transcript)
	assert.Equal(t, entity.AnswerStatusComplete, output.Answer.Status)
	deps.resolver.AssertNotCalled(t, "Authorize")
}

func TestUpdateAnswerCommand_Execute_URLChangeOnLockedMentor_Denied(t *testing.T) {
	ctx := context.Background()
	deps := newUpdateAnswerTestDeps(t)
	actor := newTestActor(valueobject.UserRoleUser)
	mentor := newTestMentor(actor.UserID)
	mentor.IsLocked = true

	deps.resolver.On("AuthorizeMentor", ctx, actor, authz.ActionEditAnswer, mentor.ID).Return(mentor, nil)
	deps.resolver.On("Authorize", ctx, actor, authz.ActionEditMentorURL, authz.Resource{Mentor: mentor}).
		Return(authz.Deny(authz.ReasonCannotUpdateMentor).Err())

	_, err := deps.newCommand().Execute(ctx, command.UpdateAnswerInput{
		Actor:    actor,
		MentorID: mentor.ID,
		AnswerID: uuid.New(),
		WebURL:   strPtr("https://example.com/video.mp4"),
	})

	assert.Equal(t, apperror.CodeForbidden, codeOf(err))
	deps.answerRepo.AssertNotCalled(t, "FindByID")
}

func TestUpdateAnswerCommand_Execute_AnswerOfAnotherMentor_NotFound(t *testing.T) {
	ctx := context.Background()
	deps := newUpdateAnswerTestDeps(t)
	actor := newTestActor(valueobject.UserRoleUser)
	mentor := newTestMentor(actor.UserID)
	foreign := entity.NewAnswer(uuid.New(), uuid.New())

	deps.resolver.On("AuthorizeMentor", ctx, actor, authz.ActionEditAnswer, mentor.ID).Return(mentor, nil)
	deps.answerRepo.On("FindByID", ctx, foreign.ID).Return(foreign, nil)

	_, err := deps.newCommand().Execute(ctx, command.UpdateAnswerInput{
		Actor:      actor,
		MentorID:   mentor.ID,
		AnswerID:   foreign.ID,
		Transcript: strPtr("hijack"),
	})

	assert.Equal(t, apperror.CodeNotFound, codeOf(err))
	deps.answerRepo.AssertNotCalled(t, "Update")
}

func TestUpdateAnswerCommand_Execute_InvalidStatus_ValidationError(t *testing.T) {
	deps := newUpdateAnswerTestDeps(t)

	_, err := deps.newCommand().Execute(context.Background(), command.UpdateAnswerInput{
		Actor:  newTestActor(valueobject.UserRoleUser),
		Status: strPtr("DONE"),
	})

	assert.Equal(t, apperror.CodeValidationError, codeOf(err))
}
