package rbac

import "github.com/google/uuid"

// Principal is the authenticated actor a decision is being made for.
// It is constructed by the hosting application's session layer and
// replaced wholesale on login and logout; the engine never mutates it.
type Principal struct {
	// ID uniquely identifies the user account.
	ID uuid.UUID

	// Role is the principal's single primary role.
	Role Role

	// OrganizationID is the principal's home tenant. uuid.Nil means the
	// principal has no organization membership.
	OrganizationID uuid.UUID

	// IsActive reports whether the account is enabled. Inactive
	// principals fail every decision.
	IsActive bool
}
