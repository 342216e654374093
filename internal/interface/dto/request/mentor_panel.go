package request

// SaveMentorPanelRequest はメンターパネルの作成・更新リクエストです
type SaveMentorPanelRequest struct {
	ID        *string  `json:"id" validate:"omitempty,uuid"`
	OrgID     *string  `json:"orgId" validate:"omitempty,uuid"`
	SubjectID *string  `json:"subjectId" validate:"omitempty,uuid"`
	Title     string   `json:"title" validate:"max=200"`
	Subtitle  string   `json:"subtitle" validate:"max=500"`
	MentorIDs []string `json:"mentorIds" validate:"omitempty,dive,uuid"`
}
