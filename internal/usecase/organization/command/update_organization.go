package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	mentorcmd "github.com/mentorpal/mentor-graphql-sub001/internal/usecase/mentor/command"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// UpdateOrganizationInput は組織更新の入力を定義します
// nilのフィールドは変更しません
type UpdateOrganizationInput struct {
	Actor       authz.Actor
	OrgID       uuid.UUID
	Name        *string
	Subdomain   *string
	IsPrivate   *bool
	Members     []MemberInput
	Permissions []mentorcmd.OrgPermissionInput
}

// UpdateOrganizationOutput は組織更新の出力を定義します
type UpdateOrganizationOutput struct {
	Organization *entity.Organization
}

// UpdateOrganizationCommand は組織更新コマンドです
type UpdateOrganizationCommand struct {
	orgRepo      repository.OrganizationRepository
	resolver     authz.PermissionResolver
	auditService service.AuditService
}

// NewUpdateOrganizationCommand は新しいUpdateOrganizationCommandを作成します
func NewUpdateOrganizationCommand(
	orgRepo repository.OrganizationRepository,
	resolver authz.PermissionResolver,
	auditService service.AuditService,
) *UpdateOrganizationCommand {
	return &UpdateOrganizationCommand{
		orgRepo:      orgRepo,
		resolver:     resolver,
		auditService: auditService,
	}
}

// Execute は組織の基本情報、メンバー、組織間共有設定を更新します
func (c *UpdateOrganizationCommand) Execute(ctx context.Context, input UpdateOrganizationInput) (*UpdateOrganizationOutput, error) {
	// 1. 権限チェック
	org, err := c.resolver.AuthorizeOrganization(ctx, input.Actor, authz.ActionEditOrganization, input.OrgID)
	if err != nil {
		return nil, err
	}

	// 2. 名前・サブドメイン
	changed := []string{}
	if input.Name != nil || input.Subdomain != nil {
		name, subdomain := org.Name, org.Subdomain
		if input.Name != nil {
			name = *input.Name
		}
		if input.Subdomain != nil {
			subdomain = *input.Subdomain
		}
		previousSubdomain := org.Subdomain
		if err := org.Rename(name, subdomain); err != nil {
			return nil, apperror.NewValidationError(err.Error(), nil)
		}
		if org.Subdomain != previousSubdomain {
			exists, err := c.orgRepo.ExistsBySubdomain(ctx, org.Subdomain)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, apperror.NewConflictError("subdomain is already in use")
			}
		}
		changed = append(changed, "name")
	}

	// 3. 公開設定
	if input.IsPrivate != nil {
		org.SetPrivate(*input.IsPrivate)
		changed = append(changed, "isPrivate")
	}

	// 4. メンバー
	if input.Members != nil {
		if err := org.ReplaceMembers(toMembers(input.Members)); err != nil {
			return nil, apperror.NewValidationError(err.Error(), nil)
		}
		changed = append(changed, "members")
	}

	// 5. 組織間共有
	if input.Permissions != nil {
		perms, err := mentorcmd.ToOrgPermissions(input.Permissions)
		if err != nil {
			return nil, err
		}
		org.SetPermissions(perms)
		changed = append(changed, "permissions")
	}

	if err := c.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	c.auditService.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionOrganizationUpdate,
		ResourceType: entity.AuditResourceOrganization,
		ResourceID:   &org.ID,
		Details:      map[string]interface{}{"changed": changed},
	})

	return &UpdateOrganizationOutput{Organization: org}, nil
}
