package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnswerStatus は回答の状態を定義します
type AnswerStatus string

const (
	AnswerStatusNone       AnswerStatus = "NONE"
	AnswerStatusIncomplete AnswerStatus = "INCOMPLETE"
	AnswerStatusComplete   AnswerStatus = "COMPLETE"
	AnswerStatusSkip       AnswerStatus = "SKIP"
)

// IsValid は状態が有効かを判定します
func (s AnswerStatus) IsValid() bool {
	switch s {
	case AnswerStatusNone, AnswerStatusIncomplete, AnswerStatusComplete, AnswerStatusSkip:
		return true
	default:
		return false
	}
}

// Answer はメンターの質問に対する回答エンティティ
type Answer struct {
	ID         uuid.UUID
	MentorID   uuid.UUID
	QuestionID uuid.UUID
	Transcript string
	Markdown   string
	Status     AnswerStatus
	WebURL     string
	MobileURL  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAnswer は新しい回答を作成します
func NewAnswer(mentorID, questionID uuid.UUID) *Answer {
	now := time.Now()
	return &Answer{
		ID:         uuid.New(),
		MentorID:   mentorID,
		QuestionID: questionID,
		Status:     AnswerStatusNone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UpdateText は文字起こしと状態を更新します
func (a *Answer) UpdateText(transcript, markdown *string, status *AnswerStatus) {
	if transcript != nil {
		a.Transcript = *transcript
	}
	if markdown != nil {
		a.Markdown = *markdown
	}
	if status != nil {
		a.Status = *status
	}
	a.UpdatedAt = time.Now()
}

// UpdateMediaURLs は動画URLを更新します
func (a *Answer) UpdateMediaURLs(webURL, mobileURL *string) {
	if webURL != nil {
		a.WebURL = *webURL
	}
	if mobileURL != nil {
		a.MobileURL = *mobileURL
	}
	a.UpdatedAt = time.Now()
}
