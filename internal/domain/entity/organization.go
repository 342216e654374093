package entity

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
)

var (
	ErrOrganizationNameEmpty = errors.New("organization name cannot be empty")
	ErrInvalidSubdomain      = errors.New("subdomain must be 3-20 lowercase letters or digits")
	ErrDuplicateOrgMember    = errors.New("user is listed more than once in members")

	subdomainPattern = regexp.MustCompile(`^[a-z0-9]{3,20}$`)
)

// Member は組織メンバーを表します
type Member struct {
	UserID uuid.UUID
	Role   valueobject.OrgRole
}

// OrgMembership はユーザー側から見た組織への所属です
type OrgMembership struct {
	OrgID uuid.UUID
	Role  valueobject.OrgRole
}

// Organization は組織エンティティ（集約ルート）
type Organization struct {
	ID          uuid.UUID
	Name        string
	Subdomain   string
	IsPrivate   bool
	Members     []Member
	Permissions []OrgPermission
	Config      map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrganization は新しい組織を作成します
func NewOrganization(name, subdomain string, isPrivate bool, members []Member) (*Organization, error) {
	now := time.Now()
	o := &Organization{
		ID:        uuid.New(),
		IsPrivate: isPrivate,
		Config:    map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := o.Rename(name, subdomain); err != nil {
		return nil, err
	}
	if err := o.ReplaceMembers(members); err != nil {
		return nil, err
	}
	return o, nil
}

// Rename は名前とサブドメインを変更します
func (o *Organization) Rename(name, subdomain string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrOrganizationNameEmpty
	}
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	if !subdomainPattern.MatchString(subdomain) {
		return ErrInvalidSubdomain
	}
	o.Name = name
	o.Subdomain = subdomain
	o.UpdatedAt = time.Now()
	return nil
}

// ReplaceMembers はメンバー一覧を置き換えます
func (o *Organization) ReplaceMembers(members []Member) error {
	seen := make(map[uuid.UUID]struct{}, len(members))
	for _, m := range members {
		if !m.Role.IsValid() {
			return valueobject.ErrInvalidOrgRole
		}
		if _, ok := seen[m.UserID]; ok {
			return ErrDuplicateOrgMember
		}
		seen[m.UserID] = struct{}{}
	}
	o.Members = members
	o.UpdatedAt = time.Now()
	return nil
}

// SetPrivate は公開設定を変更します
func (o *Organization) SetPrivate(isPrivate bool) {
	o.IsPrivate = isPrivate
	o.UpdatedAt = time.Now()
}

// SetPermissions は組織間共有の権限を設定します
func (o *Organization) SetPermissions(perms []OrgPermission) {
	o.Permissions = perms
	o.UpdatedAt = time.Now()
}

// UpdateConfig は設定をマージします（nil値のキーは削除）
func (o *Organization) UpdateConfig(patch map[string]any) {
	if o.Config == nil {
		o.Config = map[string]any{}
	}
	for k, v := range patch {
		if v == nil {
			delete(o.Config, k)
			continue
		}
		o.Config[k] = v
	}
	o.UpdatedAt = time.Now()
}

// MemberRole は指定ユーザーの組織ロールを返します
func (o *Organization) MemberRole(userID uuid.UUID) (valueobject.OrgRole, bool) {
	if userID == uuid.Nil {
		return "", false
	}
	for _, m := range o.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// IsMember は指定ユーザーがメンバーかを判定します
func (o *Organization) IsMember(userID uuid.UUID) bool {
	_, ok := o.MemberRole(userID)
	return ok
}
