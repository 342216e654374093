package entity

import (
	"time"

	"github.com/google/uuid"
)

// MentorPanel は複数メンターをまとめたパネル
type MentorPanel struct {
	ID        uuid.UUID
	OrgID     *uuid.UUID
	SubjectID *uuid.UUID
	Title     string
	Subtitle  string
	MentorIDs []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMentorPanel は新しいパネルを作成します
func NewMentorPanel(title, subtitle string, mentorIDs []uuid.UUID) *MentorPanel {
	now := time.Now()
	return &MentorPanel{
		ID:        uuid.New(),
		Title:     title,
		Subtitle:  subtitle,
		MentorIDs: mentorIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update はパネル内容を置き換えます
func (p *MentorPanel) Update(orgID, subjectID *uuid.UUID, title, subtitle string, mentorIDs []uuid.UUID) {
	p.OrgID = orgID
	p.SubjectID = subjectID
	p.Title = title
	p.Subtitle = subtitle
	p.MentorIDs = mentorIDs
	p.UpdatedAt = time.Now()
}
