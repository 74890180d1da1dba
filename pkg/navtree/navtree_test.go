package navtree_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benefithub/authkit/pkg/navtree"
	"github.com/benefithub/authkit/pkg/rbac"
)

func newEngine(t *testing.T) *rbac.Engine {
	t.Helper()

	source := rbac.NewInMemGrantSource(rbac.DefaultGrants())
	catalog, err := rbac.NewCatalog(context.Background(), source)
	require.NoError(t, err)
	return rbac.NewEngine(catalog)
}

func principal(role rbac.Role) *rbac.Principal {
	return &rbac.Principal{
		ID:             uuid.New(),
		Role:           role,
		OrganizationID: uuid.New(),
		IsActive:       true,
	}
}

// consoleTree mirrors the shape of the hosting application's sidebar.
func consoleTree() []navtree.Node {
	return []navtree.Node{
		{
			ID:    "dashboard",
			Label: "Dashboard",
			Path:  "/",
		},
		{
			ID:       "employees",
			Label:    "Employees",
			Path:     "/employees",
			Resource: rbac.ResourceEmployees,
			Action:   rbac.ActionRead,
			Children: []navtree.Node{
				{
					ID:       "employees-import",
					Label:    "Census Import",
					Path:     "/employees/import",
					Resource: rbac.ResourceEmployees,
					Action:   rbac.ActionImport,
				},
				{
					ID:       "employees-list",
					Label:    "Directory",
					Path:     "/employees/list",
					Resource: rbac.ResourceEmployees,
					Action:   rbac.ActionRead,
				},
			},
		},
		{
			ID:    "admin",
			Label: "Administration",
			Children: []navtree.Node{
				{
					ID:       "admin-users",
					Label:    "Users",
					Path:     "/admin/users",
					Resource: rbac.ResourceUsers,
					Action:   rbac.ActionUpdate,
				},
				{
					ID:      "admin-orgs",
					Label:   "Organizations",
					Path:    "/admin/orgs",
					AnyRole: []rbac.Role{rbac.RoleSuperAdmin},
				},
			},
		},
	}
}

func nodeIDs(nodes []navtree.Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestFilter_ByRole(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	t.Run("broker admin sees admin branch without orgs", func(t *testing.T) {
		t.Parallel()

		got := navtree.Filter(eng, principal(rbac.RoleBrokerAdmin), consoleTree())
		assert.Equal(t, []string{"dashboard", "employees", "admin"}, nodeIDs(got))

		admin := got[2]
		assert.Equal(t, []string{"admin-users"}, nodeIDs(admin.Children))
	})

	t.Run("employee keeps only requirement-free and granted nodes", func(t *testing.T) {
		t.Parallel()

		got := navtree.Filter(eng, principal(rbac.RoleEmployee), consoleTree())
		// employees requires employees.read; the employee role only has
		// employees.view_own, so the whole branch disappears, and the
		// admin header dies with its children.
		assert.Equal(t, []string{"dashboard"}, nodeIDs(got))
	})

	t.Run("super admin sees everything", func(t *testing.T) {
		t.Parallel()

		got := navtree.Filter(eng, principal(rbac.RoleSuperAdmin), consoleTree())
		assert.Equal(t, []string{"dashboard", "employees", "admin"}, nodeIDs(got))
		assert.Equal(t, []string{"employees-import", "employees-list"}, nodeIDs(got[1].Children))
		assert.Equal(t, []string{"admin-users", "admin-orgs"}, nodeIDs(got[2].Children))
	})

	t.Run("nil principal sees only unrestricted nodes", func(t *testing.T) {
		t.Parallel()

		got := navtree.Filter(eng, nil, consoleTree())
		assert.Equal(t, []string{"dashboard"}, nodeIDs(got))
	})
}

func TestFilter_ParentPredicateAuthoritative(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	// The parent requires a role the principal lacks; its child would be
	// visible on its own. The parent's own predicate wins and the whole
	// branch is hidden.
	tree := []navtree.Node{
		{
			ID:   "carrier",
			Role: rbac.RoleCarrierAdmin,
			Children: []navtree.Node{
				{ID: "plans", Resource: rbac.ResourcePlans, Action: rbac.ActionRead},
			},
		},
	}

	got := navtree.Filter(eng, principal(rbac.RoleBrokerAdmin), tree)
	assert.Empty(t, got)
}

func TestFilter_ConjunctiveRequirements(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	// Node requires both a role and a permission; broker_admin holds the
	// permission but not the role.
	tree := []navtree.Node{
		{
			ID:       "billing",
			Role:     rbac.RoleSuperAdmin,
			Resource: rbac.ResourceEmployees,
			Action:   rbac.ActionRead,
		},
	}

	assert.Empty(t, navtree.Filter(eng, principal(rbac.RoleBrokerAdmin), tree))
	assert.Len(t, navtree.Filter(eng, principal(rbac.RoleSuperAdmin), tree), 1)
}

func TestFilter_MalformedRequirementDeniesEveryone(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	// Nav config arrives from the hosting application and may carry
	// misspelled identifiers. A half-set or unrecognized requirement is
	// still a requirement and hides the node for every principal.
	tree := []navtree.Node{
		{
			ID:       "billing-admin",
			Resource: rbac.ParseResource("bills"),
			Action:   rbac.ActionManage,
		},
		{
			ID:       "claims-review",
			Resource: rbac.ResourceClaims,
			Action:   rbac.ParseAction("adjudicate"),
		},
		{
			ID:     "action-only",
			Action: rbac.ActionRead,
		},
	}

	for _, role := range []rbac.Role{
		rbac.RoleEmployee,
		rbac.RoleBrokerAdmin,
		rbac.RoleCarrierAdmin,
	} {
		assert.Empty(t, navtree.Filter(eng, principal(role), tree), "role %s", role)
	}
}

func TestFilter_LeafWithoutChildrenSurvives(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	// A childless node is a leaf, not a dead header; the child-survival
	// rule only applies to nodes that had children before filtering.
	tree := []navtree.Node{{ID: "dashboard"}}
	assert.Len(t, navtree.Filter(eng, principal(rbac.RoleEmployee), tree), 1)
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)
	p := principal(rbac.RoleBrokerUser)

	once := navtree.Filter(eng, p, consoleTree())
	twice := navtree.Filter(eng, p, once)
	assert.Equal(t, once, twice)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	tree := consoleTree()
	want := consoleTree()

	_ = navtree.Filter(eng, principal(rbac.RoleEmployee), tree)
	assert.Equal(t, want, tree)
}
