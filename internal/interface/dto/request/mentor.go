package request

// UpdateMentorDetailsRequest はメンター基本情報の更新リクエストです
type UpdateMentorDetailsRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=200"`
	FirstName    *string `json:"firstName" validate:"omitempty,max=100"`
	Title        *string `json:"title" validate:"omitempty,max=200"`
	Email        *string `json:"email" validate:"omitempty,email,max=255"`
	AllowContact *bool   `json:"allowContact"`
	MentorType   *string `json:"mentorType" validate:"omitempty,oneof=VIDEO CHAT"`
}

// OrgPermissionRequest は組織ごとの公開範囲の指定です
type OrgPermissionRequest struct {
	OrgID          string `json:"orgId" validate:"required,uuid"`
	ViewPermission string `json:"viewPermission" validate:"required"`
	EditPermission string `json:"editPermission" validate:"required"`
}

// UpdateMentorPrivacyRequest はメンターの公開設定の更新リクエストです
type UpdateMentorPrivacyRequest struct {
	IsPrivate         bool                   `json:"isPrivate"`
	DirectLinkPrivate bool                   `json:"directLinkPrivate"`
	OrgPermissions    []OrgPermissionRequest `json:"orgPermissions" validate:"omitempty,dive"`
}

// UpdateMentorSubjectsRequest はメンターの科目の更新リクエストです
type UpdateMentorSubjectsRequest struct {
	SubjectIDs       []string `json:"subjectIds" validate:"omitempty,dive,uuid"`
	DefaultSubjectID *string  `json:"defaultSubjectId" validate:"omitempty,uuid"`
}

// UpdateAnswerRequest は回答の更新リクエストです
type UpdateAnswerRequest struct {
	Transcript *string `json:"transcript"`
	Markdown   *string `json:"markdown"`
	Status     *string `json:"status" validate:"omitempty,oneof=NONE INCOMPLETE COMPLETE SKIP"`
	WebURL     *string `json:"webUrl" validate:"omitempty,url"`
	MobileURL  *string `json:"mobileUrl" validate:"omitempty,url"`
}

// ApproveMentorRequest はメンターの公開承認リクエストです
type ApproveMentorRequest struct {
	Approved bool `json:"approved"`
}
