package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// UpdateUserPermissionsInput はユーザーのロール変更の入力を定義します
type UpdateUserPermissionsInput struct {
	Actor  authz.Actor
	UserID uuid.UUID
	Role   string
	// Legacyは旧3段階ロールのエンドポイントからの呼び出しを示します
	Legacy bool
}

// UpdateUserPermissionsOutput はユーザーのロール変更の出力を定義します
type UpdateUserPermissionsOutput struct {
	User         *entity.User
	PreviousRole valueobject.UserRole
}

// UpdateUserPermissionsCommand はユーザーのロール変更コマンドです
type UpdateUserPermissionsCommand struct {
	userRepo     repository.UserRepository
	resolver     authz.PermissionResolver
	auditService service.AuditService
}

// NewUpdateUserPermissionsCommand は新しいUpdateUserPermissionsCommandを作成します
func NewUpdateUserPermissionsCommand(
	userRepo repository.UserRepository,
	resolver authz.PermissionResolver,
	auditService service.AuditService,
) *UpdateUserPermissionsCommand {
	return &UpdateUserPermissionsCommand{
		userRepo:     userRepo,
		resolver:     resolver,
		auditService: auditService,
	}
}

// Execute はユーザーのグローバルロールを変更します
func (c *UpdateUserPermissionsCommand) Execute(ctx context.Context, input UpdateUserPermissionsInput) (*UpdateUserPermissionsOutput, error) {
	// 1. 対象ユーザーの取得（不在の判定は権限チェックに委ねる）
	var target *entity.User
	if !input.Actor.IsAnonymous() {
		u, err := c.userRepo.FindByID(ctx, input.UserID)
		if err != nil && !apperror.IsNotFound(err) {
			return nil, err
		}
		target = u
	}

	// 2. 権限チェック
	requested := valueobject.UserRole(input.Role)
	if err := c.resolver.Authorize(ctx, input.Actor, authz.ActionEditUserPermissions, authz.Resource{
		TargetUserID:  input.UserID,
		TargetUser:    target,
		RequestedRole: requested,
		Legacy:        input.Legacy,
	}); err != nil {
		return nil, err
	}

	// 3. ロール変更
	previous := target.Role
	target.ChangeRole(requested)
	if err := c.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	c.auditService.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionUserRoleChange,
		ResourceType: entity.AuditResourceUser,
		ResourceID:   &target.ID,
		Details: map[string]interface{}{
			"from":   previous.String(),
			"to":     requested.String(),
			"legacy": input.Legacy,
		},
	})

	return &UpdateUserPermissionsOutput{User: target, PreviousRole: previous}, nil
}
