package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
)

// User はユーザーエンティティを定義します
// Note: 無効化されたユーザーは物理削除されず、IsDisabledで表現します
type User struct {
	ID         uuid.UUID
	Email      string
	Name       string
	Role       valueobject.UserRole
	IsDisabled bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser は新しいユーザーを作成します（初期ロールはUSER）
func NewUser(email string, name string) *User {
	now := time.Now()
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Role:      valueobject.UserRoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReconstructUser はDBからユーザーを復元します
func ReconstructUser(
	id uuid.UUID,
	email string,
	name string,
	role valueobject.UserRole,
	isDisabled bool,
	createdAt time.Time,
	updatedAt time.Time,
) *User {
	return &User{
		ID:         id,
		Email:      email,
		Name:       name,
		Role:       role,
		IsDisabled: isDisabled,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// ChangeRole はグローバルロールを変更します
func (u *User) ChangeRole(role valueobject.UserRole) {
	u.Role = role
	u.UpdatedAt = time.Now()
}

// Disable はユーザーを無効化します
func (u *User) Disable() {
	u.IsDisabled = true
	u.UpdatedAt = time.Now()
}

// IsActive はユーザーが有効かを判定します
func (u *User) IsActive() bool {
	return !u.IsDisabled
}
