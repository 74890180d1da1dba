// Package rbac implements the permission-evaluation core for the benefits
// administration platform: a fixed set of roles with a numeric hierarchy,
// a role -> grant catalog, and an engine of pure authorization decisions.
//
// The package is deliberately fail-closed. Unknown roles, resources and
// actions carry zero authority; every decision function is total and
// returns a boolean rather than an error, so menus and gates always
// resolve to a definite render decision.
//
// Key concepts:
//
//   - Principal: the authenticated actor a decision is made for, supplied
//     by the hosting application's session layer
//   - Grant: a (resource, action) pair authorized for a role
//   - Catalog: an immutable snapshot of role -> grants, reloadable only by
//     an atomic whole-table swap
//   - Engine: the decision surface (HasPermission, HasRole, HasAnyRole,
//     CanAccessOrganization, CanAssignRole, CanManageUser)
//
// Basic usage:
//
//	source := rbac.NewInMemGrantSource(rbac.DefaultGrants())
//	catalog, err := rbac.NewCatalog(ctx, source)
//	if err != nil {
//	    // handle configuration error
//	}
//
//	eng := rbac.NewEngine(catalog)
//
//	p := &rbac.Principal{
//	    ID:       uuid.New(),
//	    Role:     rbac.RoleBrokerUser,
//	    IsActive: true,
//	}
//
//	if eng.HasPermission(p, rbac.ResourceEmployees, rbac.ActionRead) {
//	    // show the employee list
//	}
//
// Multi-tenant scoping is decided per call from the principal's home
// organization and role. The broker -> employer relationship is domain
// data owned by the hosting application; inject it with
// WithOrgRelationship:
//
//	eng := rbac.NewEngine(catalog, rbac.WithOrgRelationship(func(brokerOrg, targetOrg uuid.UUID) bool {
//	    return employerDirectory.ManagedBy(targetOrg, brokerOrg)
//	}))
package rbac
