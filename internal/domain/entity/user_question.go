package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserQuestion は閲覧者がメンターに投げた質問
type UserQuestion struct {
	ID        uuid.UUID
	MentorID  uuid.UUID
	Question  string
	Dismissed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetDismissed は却下状態を設定します
func (q *UserQuestion) SetDismissed(dismissed bool) {
	q.Dismissed = dismissed
	q.UpdatedAt = time.Now()
}
