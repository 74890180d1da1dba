package gate

import "github.com/benefithub/authkit/pkg/rbac"

// Evaluate runs the shared gate evaluation core. loading=true means the
// principal has not resolved yet and yields StatusLoading, never a
// denial. With a resolved nil or inactive principal the result is
// StatusUnauthenticated. Otherwise each supplied condition is evaluated
// and the booleans combine with OR, or with AND when RequireAll was
// supplied; zero supplied conditions degrade to the bare authentication
// check, which at this point has already passed.
func Evaluate(eng *rbac.Engine, p *rbac.Principal, loading bool, opts ...Option) Decision {
	if loading {
		return Decision{Status: StatusLoading}
	}
	if p == nil || !p.IsActive {
		return Decision{Status: StatusUnauthenticated}
	}

	req := newRequirement(opts)

	type outcome struct {
		cond Condition
		ok   bool
	}
	var results []outcome

	if req.hasPermission {
		results = append(results, outcome{ConditionPermission, eng.HasPermission(p, req.resource, req.action)})
	}
	if req.hasRole {
		results = append(results, outcome{ConditionRole, eng.HasRole(p, req.role)})
	}
	if len(req.anyRoles) > 0 {
		results = append(results, outcome{ConditionAnyRole, eng.HasAnyRole(p, req.anyRoles...)})
	}
	if req.hasOrg {
		results = append(results, outcome{ConditionOrganization, eng.CanAccessOrganization(p, req.orgID)})
	}
	if req.predicate != nil {
		results = append(results, outcome{ConditionPredicate, req.predicate(p)})
	}

	if len(results) == 0 {
		return Decision{Status: StatusAuthorized}
	}

	allowed := req.requireAll
	var failed []Condition
	for _, r := range results {
		if !r.ok {
			failed = append(failed, r.cond)
		}
		if req.requireAll {
			allowed = allowed && r.ok
		} else {
			allowed = allowed || r.ok
		}
	}

	if !allowed {
		return Decision{Status: StatusUnauthorized, Failed: failed}
	}
	return Decision{Status: StatusAuthorized}
}
