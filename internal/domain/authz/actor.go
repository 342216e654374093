package authz

import (
	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
)

// Actor はリクエストの行為者を表します
// 検証済みトークンからリクエストごとに導出され、永続化されません
type Actor struct {
	UserID uuid.UUID
	Role   valueobject.UserRole
}

// Anonymous は未認証の行為者を返します
func Anonymous() Actor {
	return Actor{}
}

// NewActor は認証済みの行為者を生成します
func NewActor(userID uuid.UUID, role valueobject.UserRole) Actor {
	return Actor{UserID: userID, Role: role}
}

// IsAnonymous は未認証かを判定します
func (a Actor) IsAnonymous() bool {
	return a.UserID == uuid.Nil
}

// Is は指定ユーザー本人かを判定します
func (a Actor) Is(userID uuid.UUID) bool {
	return !a.IsAnonymous() && a.UserID == userID
}
