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

// MemberInput は組織メンバーの入力です
type MemberInput struct {
	UserID uuid.UUID
	Role   string
}

// toMembers は入力をMemberに変換します
func toMembers(inputs []MemberInput) []entity.Member {
	members := make([]entity.Member, 0, len(inputs))
	for _, in := range inputs {
		members = append(members, entity.Member{UserID: in.UserID, Role: valueobject.OrgRole(in.Role)})
	}
	return members
}

// CreateOrganizationInput は組織作成の入力を定義します
type CreateOrganizationInput struct {
	Actor     authz.Actor
	Name      string
	Subdomain string
	IsPrivate bool
	Members   []MemberInput
}

// CreateOrganizationOutput は組織作成の出力を定義します
type CreateOrganizationOutput struct {
	Organization *entity.Organization
}

// CreateOrganizationCommand は組織作成コマンドです
type CreateOrganizationCommand struct {
	orgRepo      repository.OrganizationRepository
	resolver     authz.PermissionResolver
	auditService service.AuditService
}

// NewCreateOrganizationCommand は新しいCreateOrganizationCommandを作成します
func NewCreateOrganizationCommand(
	orgRepo repository.OrganizationRepository,
	resolver authz.PermissionResolver,
	auditService service.AuditService,
) *CreateOrganizationCommand {
	return &CreateOrganizationCommand{
		orgRepo:      orgRepo,
		resolver:     resolver,
		auditService: auditService,
	}
}

// Execute は組織を作成します
func (c *CreateOrganizationCommand) Execute(ctx context.Context, input CreateOrganizationInput) (*CreateOrganizationOutput, error) {
	// 1. 権限チェック（入力検証より先に行う）
	if err := c.resolver.Authorize(ctx, input.Actor, authz.ActionCreateOrganization, authz.Resource{}); err != nil {
		return nil, err
	}

	// 2. 組織エンティティ作成
	org, err := entity.NewOrganization(input.Name, input.Subdomain, input.IsPrivate, toMembers(input.Members))
	if err != nil {
		return nil, apperror.NewValidationError(err.Error(), nil)
	}

	// 3. サブドメイン重複チェック
	exists, err := c.orgRepo.ExistsBySubdomain(ctx, org.Subdomain)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("subdomain is already in use")
	}

	if err := c.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	c.auditService.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionOrganizationCreate,
		ResourceType: entity.AuditResourceOrganization,
		ResourceID:   &org.ID,
		Details:      map[string]interface{}{"subdomain": org.Subdomain},
	})

	return &CreateOrganizationOutput{Organization: org}, nil
}
