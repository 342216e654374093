package entity

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
)

var (
	ErrOrgPermissionMissingOrg = errors.New("organization permission requires an org id")
)

// OrgPermission は組織に委譲された閲覧・編集権限を表します
// メンターまたは組織（組織間共有）に付与されます
type OrgPermission struct {
	OrgID          uuid.UUID
	ViewPermission valueobject.PermissionLevel
	EditPermission valueobject.PermissionLevel
}

// NewOrgPermission は新しいOrgPermissionを作成します
func NewOrgPermission(orgID uuid.UUID, view, edit valueobject.PermissionLevel) (OrgPermission, error) {
	if orgID == uuid.Nil {
		return OrgPermission{}, ErrOrgPermissionMissingOrg
	}
	if !view.IsValid() || !edit.IsValid() {
		return OrgPermission{}, valueobject.ErrInvalidPermissionLevel
	}
	return OrgPermission{OrgID: orgID, ViewPermission: view, EditPermission: edit}, nil
}

// FindOrgPermission は指定組織のエントリを返します
func FindOrgPermission(perms []OrgPermission, orgID uuid.UUID) (OrgPermission, bool) {
	for _, p := range perms {
		if p.OrgID == orgID {
			return p, true
		}
	}
	return OrgPermission{}, false
}
