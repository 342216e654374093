package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
)

// UpdateMentorSubjectsInput はメンター科目更新の入力を定義します
type UpdateMentorSubjectsInput struct {
	Actor            authz.Actor
	MentorID         uuid.UUID
	SubjectIDs       []uuid.UUID
	DefaultSubjectID *uuid.UUID
}

// UpdateMentorSubjectsOutput はメンター科目更新の出力を定義します
type UpdateMentorSubjectsOutput struct {
	Mentor *entity.Mentor
}

// UpdateMentorSubjectsCommand はメンター科目更新コマンドです
type UpdateMentorSubjectsCommand struct {
	mentorRepo repository.MentorRepository
	resolver   authz.PermissionResolver
}

// NewUpdateMentorSubjectsCommand は新しいUpdateMentorSubjectsCommandを作成します
func NewUpdateMentorSubjectsCommand(
	mentorRepo repository.MentorRepository,
	resolver authz.PermissionResolver,
) *UpdateMentorSubjectsCommand {
	return &UpdateMentorSubjectsCommand{
		mentorRepo: mentorRepo,
		resolver:   resolver,
	}
}

// Execute はメンターの科目を置き換えます
func (c *UpdateMentorSubjectsCommand) Execute(ctx context.Context, input UpdateMentorSubjectsInput) (*UpdateMentorSubjectsOutput, error) {
	mentor, err := c.resolver.AuthorizeMentor(ctx, input.Actor, authz.ActionEditMentorSubjects, input.MentorID)
	if err != nil {
		return nil, err
	}

	// 重複を除いて順序を保持
	subjects := make([]uuid.UUID, 0, len(input.SubjectIDs))
	seen := make(map[uuid.UUID]struct{}, len(input.SubjectIDs))
	for _, id := range input.SubjectIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		subjects = append(subjects, id)
	}

	mentor.SetSubjects(subjects, input.DefaultSubjectID)
	if err := c.mentorRepo.Update(ctx, mentor); err != nil {
		return nil, err
	}

	return &UpdateMentorSubjectsOutput{Mentor: mentor}, nil
}
