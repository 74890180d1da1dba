package gate

import (
	"github.com/google/uuid"

	"github.com/benefithub/authkit/pkg/rbac"
)

// Option supplies one gate condition or tweaks combination semantics.
type Option func(*requirement)

// requirement collects the conditions actually supplied to a gate.
// Omitted conditions are never evaluated and never count toward the
// combination.
type requirement struct {
	hasPermission bool
	resource      rbac.Resource
	action        rbac.Action

	hasRole bool
	role    rbac.Role

	anyRoles []rbac.Role

	hasOrg bool
	orgID  uuid.UUID

	predicate func(*rbac.Principal) bool

	requireAll bool
}

func newRequirement(opts []Option) requirement {
	var req requirement
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// WithPermission requires a (resource, action) grant.
func WithPermission(resource rbac.Resource, action rbac.Action) Option {
	return func(req *requirement) {
		req.hasPermission = true
		req.resource = resource
		req.action = action
	}
}

// WithRole requires exactly the given role.
func WithRole(role rbac.Role) Option {
	return func(req *requirement) {
		req.hasRole = true
		req.role = role
	}
}

// WithAnyRole requires at least one of the given roles.
func WithAnyRole(roles ...rbac.Role) Option {
	return func(req *requirement) {
		req.anyRoles = append(req.anyRoles, roles...)
	}
}

// WithOrganization requires access to the given organization's data.
func WithOrganization(orgID uuid.UUID) Option {
	return func(req *requirement) {
		req.hasOrg = true
		req.orgID = orgID
	}
}

// WithPredicate supplies a custom boolean condition as an escape hatch.
// Nil predicates are ignored.
func WithPredicate(fn func(*rbac.Principal) bool) Option {
	return func(req *requirement) {
		if fn != nil {
			req.predicate = fn
		}
	}
}

// RequireAll switches the combination of supplied conditions from OR to
// AND. With a single supplied condition the flag has no effect.
func RequireAll() Option {
	return func(req *requirement) {
		req.requireAll = true
	}
}
