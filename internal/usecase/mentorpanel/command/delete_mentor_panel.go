package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
)

// DeleteMentorPanelInput はメンターパネル削除の入力を定義します
type DeleteMentorPanelInput struct {
	Actor   authz.Actor
	PanelID uuid.UUID
}

// DeleteMentorPanelCommand はメンターパネル削除コマンドです
type DeleteMentorPanelCommand struct {
	panelRepo    repository.MentorPanelRepository
	resolver     authz.PermissionResolver
	auditService service.AuditService
}

// NewDeleteMentorPanelCommand は新しいDeleteMentorPanelCommandを作成します
func NewDeleteMentorPanelCommand(
	panelRepo repository.MentorPanelRepository,
	resolver authz.PermissionResolver,
	auditService service.AuditService,
) *DeleteMentorPanelCommand {
	return &DeleteMentorPanelCommand{
		panelRepo:    panelRepo,
		resolver:     resolver,
		auditService: auditService,
	}
}

// Execute はメンターパネルを削除します
func (c *DeleteMentorPanelCommand) Execute(ctx context.Context, input DeleteMentorPanelInput) error {
	if err := c.resolver.Authorize(ctx, input.Actor, authz.ActionDeleteMentorPanel, authz.Resource{}); err != nil {
		return err
	}

	if _, err := c.panelRepo.FindByID(ctx, input.PanelID); err != nil {
		return err
	}
	if err := c.panelRepo.Delete(ctx, input.PanelID); err != nil {
		return err
	}

	c.auditService.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionMentorPanelDelete,
		ResourceType: entity.AuditResourceMentorPanel,
		ResourceID:   &input.PanelID,
	})

	return nil
}
