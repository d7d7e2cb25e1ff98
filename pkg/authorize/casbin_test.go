package authorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// createTestEnforcer creates an in-memory Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	// Create temp directory for test files
	tmpDir := t.TempDir()

	// Write model config
	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _
g2 = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub, r.dom) || g2(r.sub, p.sub)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || keyMatch(r.act, p.act))
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	// Write empty policy file
	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	// Create adapter with file
	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		e := createTestEnforcer(t)
		auth, err := NewAuthorization(e)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-123"

	// Add role to user
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RolePractitioner, DomainSys)
	if err != nil {
		t.Fatalf("Failed to add role: %v", err)
	}

	// Add permission to role
	_, err = auth.AddPermission(ctx, RolePractitioner, DomainSys, ResourcePrescription, ActionManage, EffectAllow)
	if err != nil {
		t.Fatalf("Failed to add permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "allowed action for role",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourcePrescription,
			action:   ActionManage,
			want:     true,
		},
		{
			name:     "denied action without permission",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceAudit,
			action:   ActionRead,
			want:     false,
		},
		{
			name:     "denied for user without role",
			subject:  GroupSubject("user-456"),
			domain:   DomainSys,
			resource: ResourcePrescription,
			action:   ActionManage,
			want:     false,
		},
		{
			name:     "unknown resource rejected",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: Resource("unknown"),
			action:   ActionRead,
			wantErr:  true,
		},
		{
			name:     "unknown action rejected",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourcePrescription,
			action:   Action("unknown"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-123"

	auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RolePractitioner, DomainSys)
	auth.AddPermission(ctx, RolePractitioner, DomainSys, ResourcePatient, ActionManage, EffectAllow)

	t.Run("allowed", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainSys, ResourcePatient, ActionManage)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainSys, ResourceAudit, ActionDelete)
		if err != ErrForbidden {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})
}

func TestPlatformAdminBypass(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	adminID := "admin-1"
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(adminID), RolePlatformAdmin, DomainSys)
	if err != nil {
		t.Fatalf("Failed to add admin role: %v", err)
	}
	auth.AddPermission(ctx, RolePlatformAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow)

	allowed, err := auth.Enforce(ctx, GroupSubject(adminID), DomainSys, ResourceUser, ActionDelete)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !allowed {
		t.Error("Expected platform admin to be allowed")
	}
}

func TestRoleManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-123"

	t.Run("add role", func(t *testing.T) {
		added, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleGuardian, DomainSys)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !added {
			t.Error("Expected role to be added")
		}
	})

	t.Run("get roles", func(t *testing.T) {
		roles, err := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainSys)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(roles) != 1 {
			t.Fatalf("Expected 1 role, got %d", len(roles))
		}
		if roles[0] != RoleGuardian {
			t.Errorf("Expected role %q, got %q", RoleGuardian, roles[0])
		}
	})

	t.Run("remove role", func(t *testing.T) {
		removed, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), RoleGuardian, DomainSys)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !removed {
			t.Error("Expected role to be removed")
		}

		roles, _ := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainSys)
		if len(roles) != 0 {
			t.Errorf("Expected no roles, got %d", len(roles))
		}
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), Role("invalid-role"), DomainSys)
		if err == nil {
			t.Error("Expected error for invalid role")
		}
	})
}

func TestPermissionManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	t.Run("add permission", func(t *testing.T) {
		added, err := auth.AddPermission(ctx, RoleGuardian, DomainSys, ResourceTestItem, ActionRead, EffectAllow)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !added {
			t.Error("Expected permission to be added")
		}
	})

	t.Run("remove permission", func(t *testing.T) {
		removed, err := auth.RemovePermission(ctx, RoleGuardian, DomainSys, ResourceTestItem, ActionRead, EffectAllow)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !removed {
			t.Error("Expected permission to be removed")
		}
	})

	t.Run("invalid effect rejected", func(t *testing.T) {
		_, err := auth.AddPermission(ctx, RolePlatformAdmin, DomainSys, ResourceUser, ActionRead, PolicyEffect("invalid"))
		if err == nil {
			t.Error("Expected error for invalid effect")
		}
	})
}
