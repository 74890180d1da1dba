// Package gate provides the two boundary primitives protecting UI
// surfaces: a content gate (render or fall back) and a route guard
// (pass through, redirect, or deny), both built on one shared
// evaluation core.
//
// A gate is configured from optional, composable conditions: a required
// (resource, action) permission, a single required role, an "any of"
// role set, a required organization, and an escape-hatch custom
// predicate. Only supplied conditions are evaluated; with none supplied
// the gate degrades to a bare authentication check. Multiple conditions
// combine with OR by default, or with AND when RequireAll is set.
//
// Decisions are pure values separate from their side effects, so they
// are unit-testable without an HTTP harness:
//
//	d := gate.Evaluate(eng, p, false,
//	    gate.WithRole(rbac.RoleBrokerAdmin),
//	    gate.WithPermission(rbac.ResourceReports, rbac.ActionViewAll),
//	    gate.RequireAll(),
//	)
//	if d.Allowed() {
//	    // render
//	}
//
// The route guard additionally tracks the principal lifecycle states
// Loading, Unauthenticated, Unauthorized and Authorized. Loading means
// "no decision yet" and is never treated as a denial.
package gate
