package rbac

import "errors"

// Domain errors for catalog construction and reload.
var (
	// ErrUnknownRole is returned when a grant source yields a role outside the closed set.
	ErrUnknownRole = errors.New("rbac.unknown_role")

	// ErrUnknownResource is returned when a grant source yields an unrecognized resource.
	ErrUnknownResource = errors.New("rbac.unknown_resource")

	// ErrUnknownAction is returned when a grant source yields an unrecognized action.
	ErrUnknownAction = errors.New("rbac.unknown_action")

	// ErrInvalidGrant is returned when a serialized grant cannot be parsed.
	ErrInvalidGrant = errors.New("rbac.invalid_grant")
)
