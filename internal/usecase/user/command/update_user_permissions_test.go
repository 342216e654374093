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
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/internal/testutil/mocks"
	"github.com/mentorpal/mentor-graphql-sub001/internal/usecase/user/command"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

type updateUserPermissionsTestDeps struct {
	userRepo *mocks.MockUserRepository
	resolver *mocks.MockPermissionResolver
	audit    *mocks.MockAuditService
}

func newUpdateUserPermissionsTestDeps(t *testing.T) *updateUserPermissionsTestDeps {
	t.Helper()
	return &updateUserPermissionsTestDeps{
		userRepo: mocks.NewMockUserRepository(t),
		resolver: mocks.NewMockPermissionResolver(t),
		audit:    mocks.NewMockAuditService(t),
	}
}

func (d *updateUserPermissionsTestDeps) newCommand() *command.UpdateUserPermissionsCommand {
	return command.NewUpdateUserPermissionsCommand(d.userRepo, d.resolver, d.audit)
}

func TestUpdateUserPermissionsCommand_Execute_AdminPromotesUser_Success(t *testing.T) {
	ctx := context.Background()
	deps := newUpdateUserPermissionsTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleAdmin)
	target := entity.NewUser("u@example.com", "u")

	deps.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
	deps.resolver.On("Authorize", ctx, actor, authz.ActionEditUserPermissions, authz.Resource{
		TargetUserID:  target.ID,
		TargetUser:    target,
		RequestedRole: valueobject.UserRoleContentManager,
	}).Return(nil)
	deps.userRepo.On("Update", ctx, target).Return(nil)
	deps.audit.On("Log", ctx, mock.MatchedBy(func(e service.AuditEntry) bool {
		return e.Action == entity.AuditActionUserRoleChange &&
			e.Details["from"] == "USER" && e.Details["to"] == "CONTENT_MANAGER"
	})).Return()

	output, err := deps.newCommand().Execute(ctx, command.UpdateUserPermissionsInput{
		Actor:  actor,
		UserID: target.ID,
		Role:   "CONTENT_MANAGER",
	})

	require.NoError(t, err)
	assert.Equal(t, valueobject.UserRoleContentManager, output.User.Role)
	assert.Equal(t, valueobject.UserRoleUser, output.PreviousRole)
}

func TestUpdateUserPermissionsCommand_Execute_MissingTarget_NotFoundFromEvaluator(t *testing.T) {
	ctx := context.Background()
	deps := newUpdateUserPermissionsTestDeps(t)
	actor := authz.NewActor(uuid.New(), valueobject.UserRoleAdmin)
	missing := uuid.New()

	deps.userRepo.On("FindByID", ctx, missing).Return(nil, apperror.NewResourceNotFoundError("user"))
	deps.resolver.On("Authorize", ctx, actor, authz.ActionEditUserPermissions, authz.Resource{
		TargetUserID:  missing,
		TargetUser:    (*entity.User)(nil),
		RequestedRole: valueobject.UserRoleUser,
		Legacy:        true,
	}).Return(authz.DenyNotFound(authz.ReasonUserNotFound(missing)).Err())

	_, err := deps.newCommand().Execute(ctx, command.UpdateUserPermissionsInput{
		Actor:  actor,
		UserID: missing,
		Role:   "USER",
		Legacy: true,
	})

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	assert.Equal(t, "could not find user for id "+missing.String(), appErr.Message)
	deps.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateUserPermissionsCommand_Execute_Anonymous_SkipsLookup(t *testing.T) {
	ctx := context.Background()
	deps := newUpdateUserPermissionsTestDeps(t)
	userID := uuid.New()

	deps.resolver.On("Authorize", ctx, authz.Anonymous(), authz.ActionEditUserPermissions, mock.Anything).
		Return(authz.DenyUnauthenticated().Err())

	_, err := deps.newCommand().Execute(ctx, command.UpdateUserPermissionsInput{
		Actor:  authz.Anonymous(),
		UserID: userID,
		Role:   "ADMIN",
	})

	assert.True(t, apperror.IsUnauthorized(err))
	deps.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
