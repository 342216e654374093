package valueobject

import (
	"testing"
)

func TestNewUserRole_ValidRoles_ReturnsRole(t *testing.T) {
	for _, s := range []string{"USER", "CONTENT_MANAGER", "ADMIN", "SUPER_CONTENT_MANAGER", "SUPER_ADMIN"} {
		r, err := NewUserRole(s)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", s, err)
		}
		if r.String() != s {
			t.Errorf("got %q, want %q", r.String(), s)
		}
	}
}

func TestNewUserRole_Unknown_ReturnsErrInvalidUserRole(t *testing.T) {
	for _, s := range []string{"", "admin", "OWNER", "SUPERADMIN"} {
		if _, err := NewUserRole(s); err != ErrInvalidUserRole {
			t.Errorf("%q: expected ErrInvalidUserRole, got: %v", s, err)
		}
	}
}

func TestUserRole_Rank_IsStrictlyOrdered(t *testing.T) {
	roles := AllUserRoles()
	for i := 1; i < len(roles); i++ {
		if roles[i-1].Rank() >= roles[i].Rank() {
			t.Errorf("%s should rank below %s", roles[i-1], roles[i])
		}
	}
}

func TestUserRole_IsAtLeast(t *testing.T) {
	if !UserRoleSuperContentManager.IsAtLeast(UserRoleAdmin) {
		t.Error("SUPER_CONTENT_MANAGER should be at least ADMIN by rank")
	}
	if UserRoleContentManager.IsAtLeast(UserRoleAdmin) {
		t.Error("CONTENT_MANAGER should not be at least ADMIN")
	}
	if UserRole("bogus").IsAtLeast(UserRole("other")) {
		t.Error("invalid role should never satisfy IsAtLeast")
	}
}

func TestUserRole_Predicates(t *testing.T) {
	tests := []struct {
		role    UserRole
		super   bool
		admin   bool
		content bool
		legacy  bool
	}{
		{UserRoleUser, false, false, false, true},
		{UserRoleContentManager, false, false, true, true},
		{UserRoleAdmin, false, true, true, true},
		{UserRoleSuperContentManager, true, false, true, false},
		{UserRoleSuperAdmin, true, true, true, false},
		{UserRole(""), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.IsSuperUser(); got != tt.super {
				t.Errorf("IsSuperUser() = %v, want %v", got, tt.super)
			}
			if got := tt.role.IsAdminTier(); got != tt.admin {
				t.Errorf("IsAdminTier() = %v, want %v", got, tt.admin)
			}
			if got := tt.role.IsContentTier(); got != tt.content {
				t.Errorf("IsContentTier() = %v, want %v", got, tt.content)
			}
			if got := tt.role.IsLegacy(); got != tt.legacy {
				t.Errorf("IsLegacy() = %v, want %v", got, tt.legacy)
			}
		})
	}
}
