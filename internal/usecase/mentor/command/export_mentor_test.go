package command_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/command"
)

func TestExportMentorCommand_Execute_WritesJSONAndReturnsURL(t *testing.T) {
	ctx := context.Background()
	answerRepo := mocks.NewMockAnswerRepository(t)
	resolver := mocks.NewMockPermissionResolver(t)
	storage := mocks.NewMockExportStorage(t)
	audit := mocks.NewMockAuditService(t)
	actor := newTestActor(valueobject.UserRoleUser)
	mentor := newTestMentor(actor.UserID)
	answer := entity.NewAnswer(mentor.ID, uuid.New())
	answer.Transcript = "hello"
	expires := time.Now().Add(time.Minute)

	resolver.On("AuthorizeMentor", ctx, actor, authz.ActionEditMentorDetails, mentor.ID).Return(mentor, nil)
	answerRepo.On("FindByMentorID", ctx, mentor.ID).Return([]*entity.Answer{answer}, nil)
	storage.On("PutObject", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "exports/"+mentor.ID.String()+"/")
	}), mock.MatchedBy(func(data []byte) bool {
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return false
		}
		answers, ok := doc["answers"].([]any)
		return ok && len(answers) == 1
	}), "application/json").Return(nil)
	storage.On("GenerateGetURL", ctx, mock.Anything, time.Minute).
		Return(&service.PresignedURL{URL: "https://storage/exports/x", ExpiresAt: expires}, nil)
	audit.On("Log", ctx, mock.Anything).Return()

	cmd := command.NewExportMentorCommand(answerRepo, resolver, storage, audit, time.Minute)
	output, err := cmd.Execute(ctx, command.ExportMentorInput{Actor: actor, MentorID: mentor.ID})

	require.NoError(t, err)
	assert.Equal(t, "https://storage/exports/x", output.DownloadURL)
	assert.Equal(t, expires, output.ExpiresAt)
}

func TestExportMentorCommand_Execute_Denied_NoStorageWrite(t *testing.T) {
	ctx := context.Background()
	resolver := mocks.NewMockPermissionResolver(t)
	storage := mocks.NewMockExportStorage(t)
	actor := newTestActor(valueobject.UserRoleUser)
	mentorID := uuid.New()

	resolver.On("AuthorizeMentor", ctx, actor, authz.ActionEditMentorDetails, mentorID).
		Return(nil, authz.Deny(authz.ReasonCannotEditMentor).Err())

	cmd := command.NewExportMentorCommand(mocks.NewMockAnswerRepository(t), resolver, storage, mocks.NewMockAuditService(t), 0)
	_, err := cmd.Execute(ctx, command.ExportMentorInput{Actor: actor, MentorID: mentorID})

	require.Error(t, err)
	storage.AssertNotCalled(t, "PutObject")
}
