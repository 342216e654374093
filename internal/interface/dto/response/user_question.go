package response

import (
	"time"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// UserQuestionResponse はユーザー質問レスポンスです
type UserQuestionResponse struct {
	ID        string    `json:"id"`
	MentorID  string    `json:"mentorId"`
	Question  string    `json:"question"`
	Dismissed bool      `json:"dismissed"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserQuestionResponse はエンティティからレスポンスに変換します
func ToUserQuestionResponse(q *entity.UserQuestion) UserQuestionResponse {
	return UserQuestionResponse{
		ID:        q.ID.String(),
		MentorID:  q.MentorID.String(),
		Question:  q.Question,
		Dismissed: q.Dismissed,
		UpdatedAt: q.UpdatedAt,
	}
}
