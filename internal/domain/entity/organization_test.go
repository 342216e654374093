package entity

import (
	"testing"

	"github.com/google/uuid"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
)

func TestOrganization_NewOrganization_NormalizesSubdomain(t *testing.T) {
	org, err := NewOrganization("USC", " USC ", true, nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if org.Subdomain != "usc" {
		t.Errorf("got subdomain %q, want %q", org.Subdomain, "usc")
	}
	if !org.IsPrivate {
		t.Error("expected private org")
	}
}

func TestOrganization_NewOrganization_InvalidInput(t *testing.T) {
	if _, err := NewOrganization("  ", "usc", false, nil); err != ErrOrganizationNameEmpty {
		t.Errorf("expected ErrOrganizationNameEmpty, got: %v", err)
	}
	if _, err := NewOrganization("USC", "u-s-c", false, nil); err != ErrInvalidSubdomain {
		t.Errorf("expected ErrInvalidSubdomain, got: %v", err)
	}
}

func TestOrganization_ReplaceMembers_RejectsDuplicatesAndBadRoles(t *testing.T) {
	org, _ := NewOrganization("CSUF", "csuf", false, nil)
	u := uuid.New()

	err := org.ReplaceMembers([]Member{
		{UserID: u, Role: valueobject.OrgRoleAdmin},
		{UserID: u, Role: valueobject.OrgRoleUser},
	})
	if err != ErrDuplicateOrgMember {
		t.Errorf("expected ErrDuplicateOrgMember, got: %v", err)
	}

	err = org.ReplaceMembers([]Member{{UserID: u, Role: "OWNER"}})
	if err != valueobject.ErrInvalidOrgRole {
		t.Errorf("expected ErrInvalidOrgRole, got: %v", err)
	}
}

func TestOrganization_MemberRole(t *testing.T) {
	admin, user := uuid.New(), uuid.New()
	org, _ := NewOrganization("CSUF", "csuf", false, []Member{
		{UserID: admin, Role: valueobject.OrgRoleAdmin},
		{UserID: user, Role: valueobject.OrgRoleUser},
	})

	if r, ok := org.MemberRole(admin); !ok || r != valueobject.OrgRoleAdmin {
		t.Errorf("got %q, %v", r, ok)
	}
	if org.IsMember(uuid.New()) {
		t.Error("stranger should not be a member")
	}
	if org.IsMember(uuid.Nil) {
		t.Error("nil user should not be a member")
	}
}

func TestOrganization_UpdateConfig_MergesAndDeletes(t *testing.T) {
	org, _ := NewOrganization("CSUF", "csuf", false, nil)
	org.UpdateConfig(map[string]any{"styleHeaderTitle": "CSUF", "urlGraphql": "/graphql"})

	org.UpdateConfig(map[string]any{"urlGraphql": nil, "styleHeaderColor": "#fff"})

	if _, ok := org.Config["urlGraphql"]; ok {
		t.Error("expected urlGraphql to be removed")
	}
	if org.Config["styleHeaderTitle"] != "CSUF" || org.Config["styleHeaderColor"] != "#fff" {
		t.Errorf("unexpected config: %v", org.Config)
	}
}
