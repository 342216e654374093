package command_test

import (
	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/authz"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
)

func newTestActor(role valueobject.UserRole) authz.Actor {
	return authz.NewActor(uuid.New(), role)
}

func newTestMentor(ownerID uuid.UUID) *entity.Mentor {
	return entity.NewMentor(ownerID, "Clint Anderson")
}

func strPtr(s string) *string {
	return &s
}

func codeOf(err error) apperror.ErrorCode {
	return apperror.CodeOf(err)
}
