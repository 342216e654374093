package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/logger"
)

// DisableUserInput はユーザー無効化の入力を定義します
type DisableUserInput struct {
	Actor  authz.Actor
	UserID uuid.UUID
}

// DisableUserOutput はユーザー無効化の出力を定義します
type DisableUserOutput struct {
	User            *entity.User
	ArchivedMentors int64
}

// DisableUserCommand はユーザー無効化コマンドです
type DisableUserCommand struct {
	userRepo     repository.UserRepository
	mentorRepo   repository.MentorRepository
	txManager    repository.TransactionManager
	resolver     authz.PermissionResolver
	registry     service.DisabledUserRegistry
	auditService service.AuditService
}

// NewDisableUserCommand は新しいDisableUserCommandを作成します
func NewDisableUserCommand(
	userRepo repository.UserRepository,
	mentorRepo repository.MentorRepository,
	txManager repository.TransactionManager,
	resolver authz.PermissionResolver,
	registry service.DisabledUserRegistry,
	auditService service.AuditService,
) *DisableUserCommand {
	return &DisableUserCommand{
		userRepo:     userRepo,
		mentorRepo:   mentorRepo,
		txManager:    txManager,
		resolver:     resolver,
		registry:     registry,
		auditService: auditService,
	}
}

// Execute はユーザーを無効化し、所有するメンターを全てアーカイブします
func (c *DisableUserCommand) Execute(ctx context.Context, input DisableUserInput) (*DisableUserOutput, error) {
	// 1. 対象ユーザーの取得
	var target *entity.User
	if !input.Actor.IsAnonymous() {
		u, err := c.userRepo.FindByID(ctx, input.UserID)
		if err != nil && !apperror.IsNotFound(err) {
			return nil, err
		}
		target = u
	}

	// 2. 権限チェック
	if err := c.resolver.Authorize(ctx, input.Actor, authz.ActionDisableUser, authz.Resource{
		TargetUserID: input.UserID,
		TargetUser:   target,
	}); err != nil {
		return nil, err
	}

	// 3. 無効化とメンターのアーカイブを同一トランザクションで実行
	var archived int64
	err := c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		target.Disable()
		if err := c.userRepo.Update(ctx, target); err != nil {
			return err
		}
		n, err := c.mentorRepo.ArchiveByUserID(ctx, target.ID)
		if err != nil {
			return err
		}
		archived = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. 発行済みトークンの拒否（失敗してもDB上の無効化は確定済み）
	if err := c.registry.MarkDisabled(ctx, target.ID); err != nil {
		logger.WithError(ctx, err).Warn("failed to register disabled user", "user_id", target.ID.String())
	}

	c.auditService.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionUserDisable,
		ResourceType: entity.AuditResourceUser,
		ResourceID:   &target.ID,
		Details:      map[string]interface{}{"archived_mentors": archived},
	})

	return &DisableUserOutput{User: target, ArchivedMentors: archived}, nil
}
