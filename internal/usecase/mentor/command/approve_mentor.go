package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// ApproveMentorInput はメンター公開承認の入力を定義します
type ApproveMentorInput struct {
	Actor    authz.Actor
	MentorID uuid.UUID
	Approved bool
}

// ApproveMentorOutput はメンター公開承認の出力を定義します
type ApproveMentorOutput struct {
	Mentor *entity.Mentor
}

// ApproveMentorCommand はメンター公開承認コマンドです
type ApproveMentorCommand struct {
	mentorRepo   repository.MentorRepository
	resolver     authz.PermissionResolver
	auditService service.AuditService
}

// NewApproveMentorCommand は新しいApproveMentorCommandを作成します
func NewApproveMentorCommand(
	mentorRepo repository.MentorRepository,
	resolver authz.PermissionResolver,
	auditService service.AuditService,
) *ApproveMentorCommand {
	return &ApproveMentorCommand{
		mentorRepo:   mentorRepo,
		resolver:     resolver,
		auditService: auditService,
	}
}

// Execute はメンターの公開承認を設定します
func (c *ApproveMentorCommand) Execute(ctx context.Context, input ApproveMentorInput) (*ApproveMentorOutput, error) {
	// 1. メンターの取得（不在の判定は権限チェックに委ねる）
	mentor, err := c.mentorRepo.FindByID(ctx, input.MentorID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}

	// 2. 権限チェック
	if err := c.resolver.Authorize(ctx, input.Actor, authz.ActionApproveMentorPublicly, authz.Resource{Mentor: mentor}); err != nil {
		return nil, err
	}

	// 3. 更新
	mentor.ApprovePublic(input.Approved)
	if err := c.mentorRepo.Update(ctx, mentor); err != nil {
		return nil, err
	}

	c.auditService.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionMentorApprove,
		ResourceType: entity.AuditResourceMentor,
		ResourceID:   &mentor.ID,
		Details:      map[string]interface{}{"approved": input.Approved},
	})

	return &ApproveMentorOutput{Mentor: mentor}, nil
}
