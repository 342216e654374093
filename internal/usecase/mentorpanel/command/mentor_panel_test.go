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
	"github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentorpanel/command"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

type panelTestDeps struct {
	panelRepo *mocks.MockMentorPanelRepository
	resolver  *mocks.MockPermissionResolver
	audit     *mocks.MockAuditService
}

func newPanelTestDeps(t *testing.T) *panelTestDeps {
	t.Helper()
	return &panelTestDeps{
		panelRepo: mocks.NewMockMentorPanelRepository(t),
		resolver:  mocks.NewMockPermissionResolver(t),
		audit:     mocks.NewMockAuditService(t),
	}
}

func TestSaveMentorPanelCommand_Execute_Create(t *testing.T) {
	ctx := context.Background()
	deps := newPanelTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleContentManager)
	m1, m2 := uuid.New(), uuid.New()

	deps.resolver.On("Authorize", ctx, actor, authz.ActionCreateOrEditMentorPanel, authz.Resource{}).Return(nil)
	deps.panelRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.MentorPanel")).Return(nil)
	deps.audit.On("Log", ctx, mock.Anything).Return()

	cmd := command.NewSaveMentorPanelCommand(deps.panelRepo, deps.resolver, deps.audit)
	output, err := cmd.Execute(ctx, command.SaveMentorPanelInput{
		Actor:     actor,
		Title:     " Careers ",
		MentorIDs: []uuid.UUID{m1, m2, m1},
	})

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, "Careers", output.Panel.Title)
	assert.Equal(t, []uuid.UUID{m1, m2}, output.Panel.MentorIDs)
}

func TestSaveMentorPanelCommand_Execute_UpdateExisting(t *testing.T) {
	ctx := context.Background()
	deps := newPanelTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleAdmin)
	panel := entity.NewMentorPanel("Old", "", nil)

	deps.resolver.On("Authorize", ctx, actor, authz.ActionCreateOrEditMentorPanel, authz.Resource{}).Return(nil)
	deps.panelRepo.On("FindByID", ctx, panel.ID).Return(panel, nil)
	deps.panelRepo.On("Upsert", ctx, panel).Return(nil)
	deps.audit.On("Log", ctx, mock.Anything).Return()

	cmd := command.NewSaveMentorPanelCommand(deps.panelRepo, deps.resolver, deps.audit)
	output, err := cmd.Execute(ctx, command.SaveMentorPanelInput{Actor: actor, ID: &panel.ID, Title: "New"})

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, "New", output.Panel.Title)
}

func TestSaveMentorPanelCommand_Execute_User_Denied(t *testing.T) {
	ctx := context.Background()
	deps := newPanelTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleUser)

	deps.resolver.On("Authorize", ctx, actor, authz.ActionCreateOrEditMentorPanel, authz.Resource{}).
		Return(authz.Deny(authz.ReasonCannotEditMentorPanel).Err())

	cmd := command.NewSaveMentorPanelCommand(deps.panelRepo, deps.resolver, deps.audit)
	_, err := cmd.Execute(ctx, command.SaveMentorPanelInput{Actor: actor, Title: "x"})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "you do not have permission to add or edit mentorpanel", appErr.Message)
}

func TestSaveMentorPanelCommand_Execute_EmptyTitle_ValidationError(t *testing.T) {
	ctx := context.Background()
	deps := newPanelTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleContentManager)

	deps.resolver.On("Authorize", ctx, actor, authz.ActionCreateOrEditMentorPanel, authz.Resource{}).Return(nil)

	cmd := command.NewSaveMentorPanelCommand(deps.panelRepo, deps.resolver, deps.audit)
	_, err := cmd.Execute(ctx, command.SaveMentorPanelInput{Actor: actor, Title: "  "})

	assert.Equal(t, apperror.CodeValidationError, apperror.CodeOf(err))
}

func TestDeleteMentorPanelCommand_Execute(t *testing.T) {
	ctx := context.Background()
	deps := newPanelTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleSuperContentManager)
	panel := entity.NewMentorPanel("Careers", "", nil)

	deps.resolver.On("Authorize", ctx, actor, authz.ActionDeleteMentorPanel, authz.Resource{}).Return(nil)
	deps.panelRepo.On("FindByID", ctx, panel.ID).Return(panel, nil)
	deps.panelRepo.On("Delete", ctx, panel.ID).Return(nil)
	deps.audit.On("Log", ctx, mock.Anything).Return()

	cmd := command.NewDeleteMentorPanelCommand(deps.panelRepo, deps.resolver, deps.audit)
	err := cmd.Execute(ctx, command.DeleteMentorPanelInput{Actor: actor, PanelID: panel.ID})

	require.NoError(t, err)
}

func TestDeleteMentorPanelCommand_Execute_User_Denied(t *testing.T) {
	ctx := context.Background()
	deps := newPanelTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleUser)

	deps.resolver.On("Authorize", ctx, actor, authz.ActionDeleteMentorPanel, authz.Resource{}).
		Return(authz.Deny(authz.ReasonCannotDeleteMentorPanel).Err())

	cmd := command.NewDeleteMentorPanelCommand(deps.panelRepo, deps.resolver, deps.audit)
	err := cmd.Execute(ctx, command.DeleteMentorPanelInput{Actor: actor, PanelID: uuid.New()})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "you do not have permission to edit mentorpanel", appErr.Message)
	deps.panelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
