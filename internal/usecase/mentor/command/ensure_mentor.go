package command

import (
	"context"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/repository"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

// EnsureMentorInput は初回ログイン時のメンター作成の入力を定義します
type EnsureMentorInput struct {
	Actor authz.Actor
}

// EnsureMentorOutput は初回ログイン時のメンター作成の出力を定義します
type EnsureMentorOutput struct {
	Mentor  *entity.Mentor
	Created bool
}

// EnsureMentorCommand は行為者のメンターが無ければ作成するコマンドです
type EnsureMentorCommand struct {
	userRepo   repository.UserRepository
	mentorRepo repository.MentorRepository
}

// NewEnsureMentorCommand は新しいEnsureMentorCommandを作成します
func NewEnsureMentorCommand(
	userRepo repository.UserRepository,
	mentorRepo repository.MentorRepository,
) *EnsureMentorCommand {
	return &EnsureMentorCommand{
		userRepo:   userRepo,
		mentorRepo: mentorRepo,
	}
}

// Execute は行為者のメンターを返し、存在しなければ作成します
func (c *EnsureMentorCommand) Execute(ctx context.Context, input EnsureMentorInput) (*EnsureMentorOutput, error) {
	if input.Actor.IsAnonymous() {
		return nil, authz.DenyUnauthenticated().Err()
	}

	// 1. 既存メンターの確認
	mentor, err := c.mentorRepo.FindByUserID(ctx, input.Actor.UserID)
	if err == nil {
		return &EnsureMentorOutput{Mentor: mentor}, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	// 2. ユーザー名を初期値としてメンターを作成
	user, err := c.userRepo.FindByID(ctx, input.Actor.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsDisabled {
		return nil, apperror.NewForbiddenError("user is disabled")
	}
	mentor = entity.NewMentor(user.ID, user.Name)
	mentor.Email = user.Email
	if err := c.mentorRepo.Create(ctx, mentor); err != nil {
		return nil, err
	}

	return &EnsureMentorOutput{Mentor: mentor, Created: true}, nil
}
