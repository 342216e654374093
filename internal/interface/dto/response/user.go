package response

import (
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// UserResponse はユーザーレスポンスです
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsDisabled bool   `json:"isDisabled"`
}

// UserRoleChangeResponse はロール変更のレスポンスです
type UserRoleChangeResponse struct {
	User         UserResponse `json:"user"`
	PreviousRole string       `json:"previousRole"`
}

// DisableUserResponse はユーザー無効化のレスポンスです
type DisableUserResponse struct {
	User            UserResponse `json:"user"`
	ArchivedMentors int64        `json:"archivedMentors"`
}

// ToUserResponse はエンティティからレスポンスに変換します
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		IsDisabled: u.IsDisabled,
	}
}
