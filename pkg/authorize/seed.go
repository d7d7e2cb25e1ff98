package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Platform admin: god mode
		{RolePlatformAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Practitioner: full control over clinical records. Row-level
		// ownership (my patient, my prescription) is the services' job.
		{RolePractitioner, DomainSys, ResourcePatient, ActionManage, EffectAllow},
		{RolePractitioner, DomainSys, ResourcePatientAccount, ActionManage, EffectAllow},
		{RolePractitioner, DomainSys, ResourcePrescription, ActionManage, EffectAllow},
		{RolePractitioner, DomainSys, ResourcePassation, ActionManage, EffectAllow},
		{RolePractitioner, DomainSys, ResourcePassation, ActionExecute, EffectAllow},
		{RolePractitioner, DomainSys, ResourceBilan, ActionManage, EffectAllow},
		{RolePractitioner, DomainSys, ResourceBilan, ActionValidate, EffectAllow},
		{RolePractitioner, DomainSys, ResourceBilan, ActionExport, EffectAllow},
		{RolePractitioner, DomainSys, ResourceTest, ActionRead, EffectAllow},
		{RolePractitioner, DomainSys, ResourceTest, ActionList, EffectAllow},
		{RolePractitioner, DomainSys, ResourceTestItem, ActionRead, EffectAllow},
		{RolePractitioner, DomainSys, ResourceTestItem, ActionList, EffectAllow},

		// Guardian: takes the prescribed test and reads the catalog items
		// shown during a passation. No access to bilans or other patients.
		{RoleGuardian, DomainSys, ResourcePassation, ActionExecute, EffectAllow},
		{RoleGuardian, DomainSys, ResourcePassation, ActionRead, EffectAllow},
		{RoleGuardian, DomainSys, ResourceTestItem, ActionRead, EffectAllow},
		{RoleGuardian, DomainSys, ResourceTestItem, ActionList, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignPractitionerRole grants the clinical role to a new practitioner.
func AssignPractitionerRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePractitioner, DomainSys)
	return err
}

// AssignGuardianRole grants the test-taking role to an activated patient
// account. The subject is the patient id.
func AssignGuardianRole(ctx context.Context, auth IAuthorization, patientID string) error {
	subject := GroupSubject(patientID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleGuardian, DomainSys)
	return err
}

// AssignSystemRole assigns a system-level role to a user.
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RolePlatformAdmin, RolePractitioner, RoleGuardian:
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a system-level role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
