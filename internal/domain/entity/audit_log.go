package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction は監査ログのアクション種別を定義します
type AuditAction string

const (
	AuditActionUserRoleChange AuditAction = "user.role_change"
	AuditActionUserDisable    AuditAction = "user.disable"

	AuditActionMentorApprove AuditAction = "mentor.approve"
	AuditActionMentorPrivacy AuditAction = "mentor.privacy_change"
	AuditActionMentorExport  AuditAction = "mentor.export"

	AuditActionOrganizationCreate AuditAction = "organization.create"
	AuditActionOrganizationUpdate AuditAction = "organization.update"

	AuditActionMentorPanelSave   AuditAction = "mentor_panel.save"
	AuditActionMentorPanelDelete AuditAction = "mentor_panel.delete"
)

// AuditResourceType はリソースの種類を定義します
type AuditResourceType string

const (
	AuditResourceUser         AuditResourceType = "user"
	AuditResourceMentor       AuditResourceType = "mentor"
	AuditResourceOrganization AuditResourceType = "organization"
	AuditResourceMentorPanel  AuditResourceType = "mentor_panel"
)

// AuditLog は監査ログエントリを表します
type AuditLog struct {
	ID           uuid.UUID
	ActorID      *uuid.UUID
	ActorRole    string
	Action       AuditAction
	ResourceType AuditResourceType
	ResourceID   *uuid.UUID
	Details      map[string]interface{}
	RequestID    string
	CreatedAt    time.Time
}
