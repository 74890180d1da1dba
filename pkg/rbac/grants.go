package rbac

import (
	"fmt"
	"strings"
)

// Resource identifies a protected resource type. The zero value is
// ResourceUnknown, which fails every permission check.
type Resource string

const (
	ResourceUnknown       Resource = ""
	ResourceEmployees     Resource = "employees"
	ResourceEmployers     Resource = "employers"
	ResourcePlans         Resource = "plans"
	ResourceEnrollments   Resource = "enrollments"
	ResourceClaims        Resource = "claims"
	ResourceReports       Resource = "reports"
	ResourceUsers         Resource = "users"
	ResourceRoles         Resource = "roles"
	ResourceOrganizations Resource = "organizations"
	ResourceSettings      Resource = "settings"
	ResourceBilling       Resource = "billing"
)

// Action identifies an operation on a resource. The zero value is
// ActionUnknown, which fails every permission check.
type Action string

const (
	ActionUnknown Action = ""
	ActionCreate  Action = "create"
	ActionRead    Action = "read"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionExport  Action = "export"
	ActionImport  Action = "import"
	ActionManage  Action = "manage"
	ActionViewAll Action = "view_all"
	ActionViewOwn Action = "view_own"
)

var allResources = map[Resource]struct{}{
	ResourceEmployees:     {},
	ResourceEmployers:     {},
	ResourcePlans:         {},
	ResourceEnrollments:   {},
	ResourceClaims:        {},
	ResourceReports:       {},
	ResourceUsers:         {},
	ResourceRoles:         {},
	ResourceOrganizations: {},
	ResourceSettings:      {},
	ResourceBilling:       {},
}

var allActions = map[Action]struct{}{
	ActionCreate:  {},
	ActionRead:    {},
	ActionUpdate:  {},
	ActionDelete:  {},
	ActionApprove: {},
	ActionReject:  {},
	ActionExport:  {},
	ActionImport:  {},
	ActionManage:  {},
	ActionViewAll: {},
	ActionViewOwn: {},
}

// ParseResource normalizes an external resource string.
// Unrecognized input maps to ResourceUnknown.
func ParseResource(s string) Resource {
	r := Resource(s)
	if _, ok := allResources[r]; ok {
		return r
	}
	return ResourceUnknown
}

// ParseAction normalizes an external action string.
// Unrecognized input maps to ActionUnknown.
func ParseAction(s string) Action {
	a := Action(s)
	if _, ok := allActions[a]; ok {
		return a
	}
	return ActionUnknown
}

// Valid reports whether the resource belongs to the closed set.
func (r Resource) Valid() bool {
	_, ok := allResources[r]
	return ok
}

// Valid reports whether the action belongs to the closed set.
func (a Action) Valid() bool {
	_, ok := allActions[a]
	return ok
}

// grantDelimiter separates resource and action in the serialized grant form.
const grantDelimiter = "."

// Grant authorizes a single action on a resource.
type Grant struct {
	Resource Resource
	Action   Action
}

// Satisfies reports whether the grant covers the requested resource and
// action. A manage grant covers every action on its resource except the
// scope actions view_all and view_own, which must be granted explicitly.
func (g Grant) Satisfies(resource Resource, action Action) bool {
	if g.Resource != resource {
		return false
	}
	if g.Action == action {
		return true
	}
	if g.Action == ActionManage {
		return action != ActionViewAll && action != ActionViewOwn
	}
	return false
}

// String returns the serialized "resource.action" form used by external
// grant sources.
func (g Grant) String() string {
	return string(g.Resource) + grantDelimiter + string(g.Action)
}

// ParseGrant parses the serialized "resource.action" form. Both parts must
// belong to their closed sets.
func ParseGrant(s string) (Grant, error) {
	resource, action, ok := strings.Cut(s, grantDelimiter)
	if !ok {
		return Grant{}, fmt.Errorf("%w: %q", ErrInvalidGrant, s)
	}

	r := ParseResource(resource)
	if r == ResourceUnknown {
		return Grant{}, fmt.Errorf("%w: %q", ErrUnknownResource, resource)
	}

	a := ParseAction(action)
	if a == ActionUnknown {
		return Grant{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	return Grant{Resource: r, Action: a}, nil
}
