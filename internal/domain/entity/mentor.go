package entity

import (
	"time"

	"github.com/google/uuid"
)

// MentorType はメンターの回答形式を定義します
type MentorType string

const (
	MentorTypeVideo MentorType = "VIDEO"
	MentorTypeChat  MentorType = "CHAT"
)

// IsValid は形式が有効かを判定します
func (t MentorType) IsValid() bool {
	return t == MentorTypeVideo || t == MentorTypeChat
}

// Mentor はメンターエンティティ（集約ルート）
// Note: メンターは物理削除されません。所有ユーザーの無効化時にアーカイブされます
type Mentor struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	FirstName         string
	Title             string
	Email             string
	AllowContact      bool
	MentorType        MentorType
	IsPrivate         bool
	DirectLinkPrivate bool
	IsArchived        bool
	IsLocked          bool
	IsPublicApproved  bool
	DefaultSubjectID  *uuid.UUID
	SubjectIDs        []uuid.UUID
	OrgPermissions    []OrgPermission
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewMentor は初回ログイン時のメンターを作成します
func NewMentor(userID uuid.UUID, name string) *Mentor {
	now := time.Now()
	return &Mentor{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		MentorType: MentorTypeVideo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsOwnedBy は指定ユーザーがオーナーかを判定します
func (m *Mentor) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && m.UserID == userID
}

// MentorDetails はメンターの基本情報の更新内容です
type MentorDetails struct {
	Name         *string
	FirstName    *string
	Title        *string
	Email        *string
	AllowContact *bool
	MentorType   *MentorType
}

// UpdateDetails は基本情報を更新します（nilの項目は変更しない）
func (m *Mentor) UpdateDetails(d MentorDetails) {
	if d.Name != nil {
		m.Name = *d.Name
	}
	if d.FirstName != nil {
		m.FirstName = *d.FirstName
	}
	if d.Title != nil {
		m.Title = *d.Title
	}
	if d.Email != nil {
		m.Email = *d.Email
	}
	if d.AllowContact != nil {
		m.AllowContact = *d.AllowContact
	}
	if d.MentorType != nil {
		m.MentorType = *d.MentorType
	}
	m.UpdatedAt = time.Now()
}

// UpdatePrivacy は公開設定と組織権限を更新します
func (m *Mentor) UpdatePrivacy(isPrivate, directLinkPrivate bool, perms []OrgPermission) {
	m.IsPrivate = isPrivate
	m.DirectLinkPrivate = directLinkPrivate
	m.OrgPermissions = perms
	m.UpdatedAt = time.Now()
}

// SetSubjects は科目を設定します
// デフォルト科目が一覧に含まれない場合は解除します
func (m *Mentor) SetSubjects(subjectIDs []uuid.UUID, defaultSubjectID *uuid.UUID) {
	m.SubjectIDs = subjectIDs
	m.DefaultSubjectID = nil
	if defaultSubjectID != nil {
		for _, id := range subjectIDs {
			if id == *defaultSubjectID {
				d := *defaultSubjectID
				m.DefaultSubjectID = &d
				break
			}
		}
	}
	m.UpdatedAt = time.Now()
}

// ApprovePublic は公開承認を設定します
func (m *Mentor) ApprovePublic(approved bool) {
	m.IsPublicApproved = approved
	m.UpdatedAt = time.Now()
}

// Archive はメンターをアーカイブします
func (m *Mentor) Archive() {
	m.IsArchived = true
	m.UpdatedAt = time.Now()
}

// OrgPermissionFor は指定組織への委譲権限を返します
func (m *Mentor) OrgPermissionFor(orgID uuid.UUID) (OrgPermission, bool) {
	return FindOrgPermission(m.OrgPermissions, orgID)
}
