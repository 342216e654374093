package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// UpdateMentorDetailsInput はメンター基本情報更新の入力を定義します
type UpdateMentorDetailsInput struct {
	Actor authz.Actor
	// MentorIDが未指定の場合は行為者自身のメンターを更新します
	MentorID     uuid.UUID
	Name         *string
	FirstName    *string
	Title        *string
	Email        *string
	AllowContact *bool
	MentorType   *string
}

// UpdateMentorDetailsOutput はメンター基本情報更新の出力を定義します
type UpdateMentorDetailsOutput struct {
	Mentor *entity.Mentor
}

// UpdateMentorDetailsCommand はメンター基本情報更新コマンドです
type UpdateMentorDetailsCommand struct {
	mentorRepo repository.MentorRepository
	resolver   authz.PermissionResolver
}

// NewUpdateMentorDetailsCommand は新しいUpdateMentorDetailsCommandを作成します
func NewUpdateMentorDetailsCommand(
	mentorRepo repository.MentorRepository,
	resolver authz.PermissionResolver,
) *UpdateMentorDetailsCommand {
	return &UpdateMentorDetailsCommand{
		mentorRepo: mentorRepo,
		resolver:   resolver,
	}
}

// Execute はメンター基本情報を更新します
func (c *UpdateMentorDetailsCommand) Execute(ctx context.Context, input UpdateMentorDetailsInput) (*UpdateMentorDetailsOutput, error) {
	// 1. 権限チェック
	mentor, err := c.resolver.AuthorizeMentor(ctx, input.Actor, authz.ActionEditMentorDetails, input.MentorID)
	if err != nil {
		return nil, err
	}

	// 2. 入力のバリデーション
	details := entity.MentorDetails{
		Name:         input.Name,
		FirstName:    input.FirstName,
		Title:        input.Title,
		Email:        input.Email,
		AllowContact: input.AllowContact,
	}
	if input.MentorType != nil {
		mt := entity.MentorType(*input.MentorType)
		if !mt.IsValid() {
			return nil, apperror.NewValidationError("invalid mentor type", nil)
		}
		details.MentorType = &mt
	}

	// 3. 更新
	mentor.UpdateDetails(details)
	if err := c.mentorRepo.Update(ctx, mentor); err != nil {
		return nil, err
	}

	return &UpdateMentorDetailsOutput{Mentor: mentor}, nil
}
