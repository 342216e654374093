package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
)

// UpdateOrganizationConfigInput は組織設定更新の入力を定義します
type UpdateOrganizationConfigInput struct {
	Actor  authz.Actor
	OrgID  uuid.UUID
	Config map[string]any
}

// UpdateOrganizationConfigOutput は組織設定更新の出力を定義します
type UpdateOrganizationConfigOutput struct {
	Organization *entity.Organization
}

// UpdateOrganizationConfigCommand は組織設定更新コマンドです
type UpdateOrganizationConfigCommand struct {
	orgRepo      repository.OrganizationRepository
	resolver     authz.PermissionResolver
	auditService service.AuditService
}

// NewUpdateOrganizationConfigCommand は新しいUpdateOrganizationConfigCommandを作成します
func NewUpdateOrganizationConfigCommand(
	orgRepo repository.OrganizationRepository,
	resolver authz.PermissionResolver,
	auditService service.AuditService,
) *UpdateOrganizationConfigCommand {
	return &UpdateOrganizationConfigCommand{
		orgRepo:      orgRepo,
		resolver:     resolver,
		auditService: auditService,
	}
}

// Execute は組織設定をマージ更新します
func (c *UpdateOrganizationConfigCommand) Execute(ctx context.Context, input UpdateOrganizationConfigInput) (*UpdateOrganizationConfigOutput, error) {
	org, err := c.resolver.AuthorizeOrganization(ctx, input.Actor, authz.ActionEditOrganizationConfig, input.OrgID)
	if err != nil {
		return nil, err
	}

	org.UpdateConfig(input.Config)
	if err := c.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(input.Config))
	for k := range input.Config {
		keys = append(keys, k)
	}
	c.auditService.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionOrganizationUpdate,
		ResourceType: entity.AuditResourceOrganization,
		ResourceID:   &org.ID,
		Details:      map[string]interface{}{"config_keys": keys},
	})

	return &UpdateOrganizationConfigOutput{Organization: org}, nil
}
