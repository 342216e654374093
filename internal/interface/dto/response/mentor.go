package response

import (
	"time"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
)

// OrgPermissionResponse は組織ごとの公開範囲レスポンスです
type OrgPermissionResponse struct {
	OrgID          string `json:"orgId"`
	ViewPermission string `json:"viewPermission"`
	EditPermission string `json:"editPermission"`
}

// MentorResponse はメンターレスポンスです
type MentorResponse struct {
	ID                string                  `json:"id"`
	UserID            string                  `json:"userId"`
	Name              string                  `json:"name"`
	FirstName         string                  `json:"firstName"`
	Title             string                  `json:"title"`
	Email             string                  `json:"email,omitempty"`
	AllowContact      bool                    `json:"allowContact"`
	MentorType        string                  `json:"mentorType"`
	IsPrivate         bool                    `json:"isPrivate"`
	DirectLinkPrivate bool                    `json:"directLinkPrivate"`
	IsArchived        bool                    `json:"isArchived"`
	IsLocked          bool                    `json:"isLocked"`
	IsPublicApproved  bool                    `json:"isPublicApproved"`
	DefaultSubjectID  *string                 `json:"defaultSubjectId,omitempty"`
	SubjectIDs        []string                `json:"subjectIds"`
	OrgPermissions    []OrgPermissionResponse `json:"orgPermissions"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

// AnswerResponse は回答レスポンスです
type AnswerResponse struct {
	ID         string    `json:"id"`
	MentorID   string    `json:"mentorId"`
	QuestionID string    `json:"questionId"`
	Transcript string    `json:"transcript"`
	Markdown   string    `json:"markdown"`
	Status     string    `json:"status"`
	WebURL     string    `json:"webUrl,omitempty"`
	MobileURL  string    `json:"mobileUrl,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MentorExportResponse はメンターエクスポートのレスポンスです
type MentorExportResponse struct {
	ObjectKey   string    `json:"objectKey"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// EnsureMentorResponse は初回ログイン時のメンター作成レスポンスです
type EnsureMentorResponse struct {
	Mentor  MentorResponse `json:"mentor"`
	Created bool           `json:"created"`
}

// ToMentorResponse はエンティティからレスポンスに変換します
func ToMentorResponse(m *entity.Mentor) MentorResponse {
	resp := MentorResponse{
		ID:                m.ID.String(),
		UserID:            m.UserID.String(),
		Name:              m.Name,
		FirstName:         m.FirstName,
		Title:             m.Title,
		Email:             m.Email,
		AllowContact:      m.AllowContact,
		MentorType:        string(m.MentorType),
		IsPrivate:         m.IsPrivate,
		DirectLinkPrivate: m.DirectLinkPrivate,
		IsArchived:        m.IsArchived,
		IsLocked:          m.IsLocked,
		IsPublicApproved:  m.IsPublicApproved,
		SubjectIDs:        make([]string, 0, len(m.SubjectIDs)),
		OrgPermissions:    ToOrgPermissionResponses(m.OrgPermissions),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.DefaultSubjectID != nil {
		id := m.DefaultSubjectID.String()
		resp.DefaultSubjectID = &id
	}
	for _, id := range m.SubjectIDs {
		resp.SubjectIDs = append(resp.SubjectIDs, id.String())
	}
	return resp
}

// ToMentorResponses はエンティティのスライスからレスポンスに変換します
func ToMentorResponses(mentors []*entity.Mentor) []MentorResponse {
	out := make([]MentorResponse, 0, len(mentors))
	for _, m := range mentors {
		out = append(out, ToMentorResponse(m))
	}
	return out
}

// ToOrgPermissionResponses は公開範囲をレスポンスに変換します
func ToOrgPermissionResponses(perms []entity.OrgPermission) []OrgPermissionResponse {
	out := make([]OrgPermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, OrgPermissionResponse{
			OrgID:          p.OrgID.String(),
			ViewPermission: string(p.ViewPermission),
			EditPermission: string(p.EditPermission),
		})
	}
	return out
}

// ToAnswerResponse はエンティティからレスポンスに変換します
func ToAnswerResponse(a *entity.Answer) AnswerResponse {
	return AnswerResponse{
		ID:         a.ID.String(),
		MentorID:   a.MentorID.String(),
		QuestionID: a.QuestionID.String(),
		Transcript: a.Transcript,
		Markdown:   a.Markdown,
		Status:     string(a.Status),
		WebURL:     a.WebURL,
		MobileURL:  a.MobileURL,
		UpdatedAt:  a.UpdatedAt,
	}
}
