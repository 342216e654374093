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

// OrgPermissionInput は組織への委譲権限の入力です
type OrgPermissionInput struct {
	OrgID          uuid.UUID
	ViewPermission string
	EditPermission string
}

// ToOrgPermissions は入力を検証してOrgPermissionに変換します
func ToOrgPermissions(inputs []OrgPermissionInput) ([]entity.OrgPermission, error) {
	perms := make([]entity.OrgPermission, 0, len(inputs))
	seen := make(map[uuid.UUID]struct{}, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in.OrgID]; ok {
			return nil, apperror.NewValidationError("organization listed more than once in permissions", nil)
		}
		seen[in.OrgID] = struct{}{}
		p, err := entity.NewOrgPermission(
			in.OrgID,
			valueobject.PermissionLevel(in.ViewPermission),
			valueobject.PermissionLevel(in.EditPermission),
		)
		if err != nil {
			return nil, apperror.NewValidationError(err.Error(), nil)
		}
		perms = append(perms, p)
	}
	return perms, nil
}

// UpdateMentorPrivacyInput はメンター公開設定更新の入力を定義します
type UpdateMentorPrivacyInput struct {
	Actor             authz.Actor
	MentorID          uuid.UUID
	IsPrivate         bool
	DirectLinkPrivate bool
	OrgPermissions    []OrgPermissionInput
}

// UpdateMentorPrivacyOutput はメンター公開設定更新の出力を定義します
type UpdateMentorPrivacyOutput struct {
	Mentor *entity.Mentor
}

// UpdateMentorPrivacyCommand はメンター公開設定更新コマンドです
type UpdateMentorPrivacyCommand struct {
	mentorRepo   repository.MentorRepository
	resolver     authz.PermissionResolver
	auditService service.AuditService
}

// NewUpdateMentorPrivacyCommand は新しいUpdateMentorPrivacyCommandを作成します
func NewUpdateMentorPrivacyCommand(
	mentorRepo repository.MentorRepository,
	resolver authz.PermissionResolver,
	auditService service.AuditService,
) *UpdateMentorPrivacyCommand {
	return &UpdateMentorPrivacyCommand{
		mentorRepo:   mentorRepo,
		resolver:     resolver,
		auditService: auditService,
	}
}

// Execute はメンターの公開設定と組織権限を更新します
func (c *UpdateMentorPrivacyCommand) Execute(ctx context.Context, input UpdateMentorPrivacyInput) (*UpdateMentorPrivacyOutput, error) {
	// 1. 入力のバリデーション
	perms, err := ToOrgPermissions(input.OrgPermissions)
	if err != nil {
		return nil, err
	}

	// 2. 権限チェック
	mentor, err := c.resolver.AuthorizeMentor(ctx, input.Actor, authz.ActionEditMentorPrivacy, input.MentorID)
	if err != nil {
		return nil, err
	}

	// 3. 更新
	mentor.UpdatePrivacy(input.IsPrivate, input.DirectLinkPrivate, perms)
	if err := c.mentorRepo.Update(ctx, mentor); err != nil {
		return nil, err
	}

	c.auditService.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionMentorPrivacy,
		ResourceType: entity.AuditResourceMentor,
		ResourceID:   &mentor.ID,
		Details: map[string]interface{}{
			"is_private":          mentor.IsPrivate,
			"direct_link_private": mentor.DirectLinkPrivate,
			"org_permissions":     len(perms),
		},
	})

	return &UpdateMentorPrivacyOutput{Mentor: mentor}, nil
}
