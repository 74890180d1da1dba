package rbac

import "github.com/google/uuid"

// OrgRelationshipFunc answers whether the organization identified by
// targetOrgID is managed by the broker organization brokerOrgID. The
// broker -> employer relationship is domain data owned by the hosting
// application and injected here; absent a func, broker cross-tenant
// access is denied.
type OrgRelationshipFunc func(brokerOrgID, targetOrgID uuid.UUID) bool

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithOrgRelationship injects the broker-manages-organization lookup.
func WithOrgRelationship(fn OrgRelationshipFunc) EngineOption {
	return func(e *Engine) {
		e.orgRel = fn
	}
}

// Engine evaluates authorization decisions for principals against the
// current catalog snapshot. Every operation is a total function with a
// default-deny result; malformed or unknown identifiers fail checks
// rather than raising errors.
type Engine struct {
	catalog *Catalog
	orgRel  OrgRelationshipFunc
}

// NewEngine creates an Engine bound to a catalog.
func NewEngine(catalog *Catalog, opts ...EngineOption) *Engine {
	e := &Engine{catalog: catalog}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the engine's catalog, e.g. for version-keyed memoization
// of derived results.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// usable reports whether the principal can hold any authority at all.
func usable(p *Principal) bool {
	return p != nil && p.IsActive
}

// HasPermission reports whether the principal may perform action on
// resource. super_admin passes unconditionally. Otherwise the principal's
// grant set must contain the exact (resource, action) pair or a manage
// grant on the resource; manage does not cover the view_all/view_own
// scope actions.
func (e *Engine) HasPermission(p *Principal, resource Resource, action Action) bool {
	if !usable(p) {
		return false
	}
	if p.Role == RoleSuperAdmin {
		return true
	}
	if resource == ResourceUnknown || action == ActionUnknown {
		return false
	}

	for _, g := range e.catalog.GrantsFor(p.Role) {
		if g.Satisfies(resource, action) {
			return true
		}
	}
	return false
}

// HasRole reports whether the principal holds exactly the given role.
func (e *Engine) HasRole(p *Principal, role Role) bool {
	if !usable(p) || role == RoleUnknown {
		return false
	}
	return p.Role == role
}

// HasAnyRole reports whether the principal holds at least one of the
// given roles.
func (e *Engine) HasAnyRole(p *Principal, roles ...Role) bool {
	for _, role := range roles {
		if e.HasRole(p, role) {
			return true
		}
	}
	return false
}

// CanAccessOrganization reports whether the principal may act on the given
// organization's data: super_admin always, anyone within their home
// tenant, and broker-family roles for organizations managed by their
// broker tenant (per the injected relationship lookup).
func (e *Engine) CanAccessOrganization(p *Principal, orgID uuid.UUID) bool {
	if !usable(p) {
		return false
	}
	if p.Role == RoleSuperAdmin {
		return true
	}
	if orgID == uuid.Nil {
		return false
	}
	if p.OrganizationID == orgID {
		return true
	}
	if p.Role.IsBroker() && e.orgRel != nil && p.OrganizationID != uuid.Nil {
		return e.orgRel(p.OrganizationID, orgID)
	}
	return false
}

// CanAssignRole reports whether the principal may assign targetRole to
// another user. super_admin always may. Everyone else needs both a
// strictly higher hierarchy level than the target role and a create or
// manage grant on the roles resource; a high level alone is insufficient.
func (e *Engine) CanAssignRole(p *Principal, targetRole Role) bool {
	if !usable(p) {
		return false
	}
	if p.Role == RoleSuperAdmin {
		return true
	}
	if targetRole == RoleUnknown {
		return false
	}
	if p.Role.Level() <= targetRole.Level() {
		return false
	}
	return e.HasPermission(p, ResourceRoles, ActionCreate) ||
		e.HasPermission(p, ResourceRoles, ActionManage)
}

// CanManageUser reports whether the principal may manage the target user
// account. Self-management is always denied, for every role including
// super_admin; a self-service profile path is a separate concern outside
// this engine.
func (e *Engine) CanManageUser(p *Principal, targetUserID uuid.UUID) bool {
	if !usable(p) {
		return false
	}
	if targetUserID == p.ID {
		return false
	}
	return e.HasPermission(p, ResourceUsers, ActionManage) ||
		e.HasPermission(p, ResourceUsers, ActionUpdate)
}

// PermissionLevel returns the principal's hierarchy level, 0 for no
// principal.
func (e *Engine) PermissionLevel(p *Principal) int {
	if p == nil {
		return 0
	}
	return p.Role.Level()
}
