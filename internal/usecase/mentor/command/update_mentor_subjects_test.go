package command_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/command"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

func TestUpdateMentorSubjectsCommand_Execute_DeduplicatesAndKeepsDefault(t *testing.T) {
	ctx := context.Background()
	mentorRepo := mocks.NewMockMentorRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)
	actor := newTestActor(valueobject.UserRoleUser)
	mentor := newTestMentor(actor.UserID)

	s1, s2 := uuid.New(), uuid.New()
	resolver.On("AuthorizeMentor", ctx, actor, authz.ActionEditMentorSubjects, mentor.ID).Return(mentor, nil)
	mentorRepo.On("Update", ctx, mentor).Return(nil)

	output, err := command.NewUpdateMentorSubjectsCommand(mentorRepo, resolver).Execute(ctx, command.UpdateMentorSubjectsInput{
		Actor:            actor,
		MentorID:         mentor.ID,
		SubjectIDs:       []uuid.UUID{s1, s2, s1},
		DefaultSubjectID: &s2,
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{s1, s2}, output.Mentor.SubjectIDs)
	require.NotNil(t, output.Mentor.DefaultSubjectID)
	assert.Equal(t, s2, *output.Mentor.DefaultSubjectID)
}

func TestUpdateMentorSubjectsCommand_Execute_DefaultNotInSubjects_Cleared(t *testing.T) {
	ctx := context.Background()
	mentorRepo := mocks.NewMockMentorRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)
	actor := newTestActor(valueobject.UserRoleContentManager)
	mentor := newTestMentor(uuid.New())

	stray := uuid.New()
	resolver.On("AuthorizeMentor", ctx, actor, authz.ActionEditMentorSubjects, mentor.ID).Return(mentor, nil)
	mentorRepo.On("Update", ctx, mentor).Return(nil)

	output, err := command.NewUpdateMentorSubjectsCommand(mentorRepo, resolver).Execute(ctx, command.UpdateMentorSubjectsInput{
		Actor:            actor,
		MentorID:         mentor.ID,
		SubjectIDs:       []uuid.UUID{uuid.New()},
		DefaultSubjectID: &stray,
	})

	require.NoError(t, err)
	assert.Nil(t, output.Mentor.DefaultSubjectID)
}

func TestUpdateMentorSubjectsCommand_Execute_Denied_NoWrite(t *testing.T) {
	ctx := context.Background()
	mentorRepo := mocks.NewMockMentorRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)
	actor := newTestActor(valueobject.UserRoleUser)
	mentorID := uuid.New()

	resolver.On("AuthorizeMentor", ctx, actor, authz.ActionEditMentorSubjects, mentorID).
		Return(nil, authz.Deny(authz.ReasonCannotEditMentor).Err())

	output, err := command.NewUpdateMentorSubjectsCommand(mentorRepo, resolver).Execute(ctx, command.UpdateMentorSubjectsInput{
		Actor:      actor,
		MentorID:   mentorID,
		SubjectIDs: []uuid.UUID{uuid.New()},
	})

	assert.Nil(t, output)
	assert.Equal(t, apperror.CodeForbidden, codeOf(err))
	mentorRepo.AssertNotCalled(t, "Update")
}
