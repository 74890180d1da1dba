package navtree

import "github.com/benefithub/authkit/pkg/rbac"

// Node is one entry in the navigation tree. Zero-valued requirement
// fields mean "no requirement of that kind"; setting either half of the
// (Resource, Action) pair declares a permission requirement, and a pair
// with an unknown half denies for every principal.
type Node struct {
	ID    string
	Label string
	Path  string

	// Role, if set, requires the principal to hold exactly this role.
	Role rbac.Role

	// AnyRole, if non-empty, requires the principal to hold at least one
	// of the listed roles.
	AnyRole []rbac.Role

	// Resource and Action, if either is set, require the corresponding
	// permission grant.
	Resource rbac.Resource
	Action   rbac.Action

	Children []Node
}

// Filter returns a copy of the tree containing only the nodes the
// principal may see. The input is never modified. A node that fails its
// own requirements is dropped together with its subtree; a node whose
// children all get pruned is dropped even when its own requirements pass.
func Filter(eng *rbac.Engine, p *rbac.Principal, nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if !visible(eng, p, n) {
			continue
		}

		filtered := Filter(eng, p, n.Children)
		if len(n.Children) > 0 && len(filtered) == 0 {
			continue
		}

		n.Children = filtered
		out = append(out, n)
	}
	return out
}

// visible evaluates the node's own requirements. Every requirement kind
// present must pass; a node with no requirements is visible to anyone,
// authenticated or not.
func visible(eng *rbac.Engine, p *rbac.Principal, n Node) bool {
	if n.Role != rbac.RoleUnknown && !eng.HasRole(p, n.Role) {
		return false
	}
	if len(n.AnyRole) > 0 && !eng.HasAnyRole(p, n.AnyRole...) {
		return false
	}
	if (n.Resource != rbac.ResourceUnknown || n.Action != rbac.ActionUnknown) &&
		!eng.HasPermission(p, n.Resource, n.Action) {
		return false
	}
	return true
}
