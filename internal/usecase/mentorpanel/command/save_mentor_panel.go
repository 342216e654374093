package command

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/service"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// SaveMentorPanelInput はメンターパネル保存の入力を定義します
// IDがnilの場合は新規作成します
type SaveMentorPanelInput struct {
	Actor     authz.Actor
	ID        *uuid.UUID
	OrgID     *uuid.UUID
	SubjectID *uuid.UUID
	Title     string
	Subtitle  string
	MentorIDs []uuid.UUID
}

// SaveMentorPanelOutput はメンターパネル保存の出力を定義します
type SaveMentorPanelOutput struct {
	Panel   *entity.MentorPanel
	Created bool
}

// SaveMentorPanelCommand はメンターパネル保存コマンドです
type SaveMentorPanelCommand struct {
	panelRepo    repository.MentorPanelRepository
	resolver     authz.PermissionResolver
	auditService service.AuditService
}

// NewSaveMentorPanelCommand は新しいSaveMentorPanelCommandを作成します
func NewSaveMentorPanelCommand(
	panelRepo repository.MentorPanelRepository,
	resolver authz.PermissionResolver,
	auditService service.AuditService,
) *SaveMentorPanelCommand {
	return &SaveMentorPanelCommand{
		panelRepo:    panelRepo,
		resolver:     resolver,
		auditService: auditService,
	}
}

// Execute はメンターパネルを作成または更新します
func (c *SaveMentorPanelCommand) Execute(ctx context.Context, input SaveMentorPanelInput) (*SaveMentorPanelOutput, error) {
	if err := c.resolver.Authorize(ctx, input.Actor, authz.ActionCreateOrEditMentorPanel, authz.Resource{}); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewValidationError("title is required", []apperror.FieldError{
			{Field: "title", Message: "required"},
		})
	}

	var panel *entity.MentorPanel
	created := false
	if input.ID != nil {
		p, err := c.panelRepo.FindByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		panel = p
	} else {
		panel = entity.NewMentorPanel(title, input.Subtitle, nil)
		created = true
	}
	panel.Update(input.OrgID, input.SubjectID, title, input.Subtitle, dedupe(input.MentorIDs))

	if err := c.panelRepo.Upsert(ctx, panel); err != nil {
		return nil, err
	}

	c.auditService.Log(ctx, service.AuditEntry{
		ActorID:      &input.Actor.UserID,
		ActorRole:    input.Actor.Role.String(),
		Action:       entity.AuditActionMentorPanelSave,
		ResourceType: entity.AuditResourceMentorPanel,
		ResourceID:   &panel.ID,
		Details:      map[string]interface{}{"created": created, "mentors": len(panel.MentorIDs)},
	})

	return &SaveMentorPanelOutput{Panel: panel, Created: created}, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
