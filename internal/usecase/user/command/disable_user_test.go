package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/internal/usecase/user/command"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

type disableUserTestDeps struct {
	userRepo   *mocks.MockUserRepository
	mentorRepo *mocks.MockMentorRepository
	txManager  *mocks.MockTransactionManager
	resolver   *mocks.MockPermissionResolver
	registry   *mocks.MockDisabledUserRegistry
	audit      *mocks.MockAuditService
}

func newDisableUserTestDeps(t *testing.T) *disableUserTestDeps {
	t.Helper()
	return &disableUserTestDeps{
		userRepo:   mocks.NewMockUserRepository(t),
		mentorRepo: mocks.NewMockMentorRepository(t),
		txManager:  mocks.NewMockTransactionManager(t),
		resolver:   mocks.NewMockPermissionResolver(t),
		registry:   mocks.NewMockDisabledUserRegistry(t),
		audit:      mocks.NewMockAuditService(t),
	}
}

func (d *disableUserTestDeps) newCommand() *command.DisableUserCommand {
	return command.NewDisableUserCommand(d.userRepo, d.mentorRepo, d.txManager, d.resolver, d.registry, d.audit)
}

func TestDisableUserCommand_Execute_Admin_DisablesAndArchivesMentors(t *testing.T) {
	ctx := context.Background()
	deps := newDisableUserTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleAdmin)
	target := entity.NewUser("u@example.com", "u")
	res := authz.Resource{TargetUserID: target.ID, TargetUser: target}

	deps.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	deps.resolver.On("Authorize", ctx, actor, authz.ActionDisableUser, res).Return(nil)
	deps.userRepo.On("Update", ctx, target).Return(nil)
	deps.mentorRepo.On("ArchiveByUserID", ctx, target.ID).Return(int64(1), nil)
	deps.registry.On("MarkDisabled", ctx, target.ID).Return(nil)
	deps.audit.On("Log", ctx, mock.Anything).Return()

	output, err := deps.newCommand().Execute(ctx, command.DisableUserInput{Actor: actor, UserID: target.ID})

	require.NoError(t, err)
	assert.True(t, output.User.IsDisabled)
	assert.Equal(t, int64(1), output.ArchivedMentors)
}

func TestDisableUserCommand_Execute_ContentManager_Forbidden(t *testing.T) {
	ctx := context.Background()
	deps := newDisableUserTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleContentManager)
	target := entity.NewUser("u@example.com", "u")

	deps.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	deps.resolver.On("Authorize", ctx, actor, authz.ActionDisableUser, mock.Anything).
		Return(authz.Deny(authz.ReasonDisableUserAdminOnly).Err())

	_, err := deps.newCommand().Execute(ctx, command.DisableUserInput{Actor: actor, UserID: target.ID})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "only admins may disable a user", appErr.Message)
	assert.False(t, target.IsDisabled)
	deps.mentorRepo.AssertNotCalled(t, "ArchiveByUserID", mock.Anything, mock.Anything)
}

func TestDisableUserCommand_Execute_ArchiveFailure_ReturnsError(t *testing.T) {
	ctx := context.Background()
	deps := newDisableUserTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleSuperAdmin)
	target := entity.NewUser("u@example.com", "u")

	deps.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	deps.resolver.On("Authorize", ctx, actor, authz.ActionDisableUser, mock.Anything).Return(nil)
	deps.userRepo.On("Update", ctx, target).Return(nil)
	deps.mentorRepo.On("ArchiveByUserID", ctx, target.ID).Return(int64(0), errors.New("db down"))

	_, err := deps.newCommand().Execute(ctx, command.DisableUserInput{Actor: actor, UserID: target.ID})

	require.Error(t, err)
	deps.registry.AssertNotCalled(t, "MarkDisabled", mock.Anything, mock.Anything)
}

func TestDisableUserCommand_Execute_RegistryFailure_StillSucceeds(t *testing.T) {
	ctx := context.Background()
	deps := newDisableUserTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleAdmin)
	target := entity.NewUser("u@example.com", "u")

	deps.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	deps.resolver.On("Authorize", ctx, actor, authz.ActionDisableUser, mock.Anything).Return(nil)
	deps.userRepo.On("Update", ctx, target).Return(nil)
	deps.mentorRepo.On("ArchiveByUserID", ctx, target.ID).Return(int64(0), nil)
	deps.registry.On("MarkDisabled", ctx, target.ID).Return(errors.New("redis down"))
	deps.audit.On("Log", ctx, mock.Anything).Return()

	output, err := deps.newCommand().Execute(ctx, command.DisableUserInput{Actor: actor, UserID: target.ID})

	require.NoError(t, err)
	assert.True(t, output.User.IsDisabled)
}
