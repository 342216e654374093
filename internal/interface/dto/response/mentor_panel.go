package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// MentorPanelResponse はメンターパネルレスポンスです
type MentorPanelResponse struct {
	ID        string    `json:"id"`
	OrgID     *string   `json:"orgId,omitempty"`
	SubjectID *string   `json:"subjectId,omitempty"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	MentorIDs []string  `json:"mentorIds"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToMentorPanelResponse はエンティティからレスポンスに変換します
func ToMentorPanelResponse(p *entity.MentorPanel) MentorPanelResponse {
	mentorIDs := make([]string, 0, len(p.MentorIDs))
	for _, id := range p.MentorIDs {
		mentorIDs = append(mentorIDs, id.String())
	}
	return MentorPanelResponse{
		ID:        p.ID.String(),
		OrgID:     optionalID(p.OrgID),
		SubjectID: optionalID(p.SubjectID),
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		MentorIDs: mentorIDs,
		UpdatedAt: p.UpdatedAt,
	}
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
