package gate_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benefithub/authkit/pkg/gate"
	"github.com/benefithub/authkit/pkg/rbac"
)

func newEngine(t *testing.T, opts ...rbac.EngineOption) *rbac.Engine {
	t.Helper()

	source := rbac.NewInMemGrantSource(rbac.DefaultGrants())
	catalog, err := rbac.NewCatalog(context.Background(), source)
	require.NoError(t, err)
	return rbac.NewEngine(catalog, opts...)
}

func principal(role rbac.Role) *rbac.Principal {
	return &rbac.Principal{
		ID:             uuid.New(),
		Role:           role,
		OrganizationID: uuid.New(),
		IsActive:       true,
	}
}

func TestEvaluate_BareAuthenticationCheck(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	d := gate.Evaluate(eng, principal(rbac.RoleEmployee), false)
	assert.Equal(t, gate.StatusAuthorized, d.Status)
	assert.True(t, d.Allowed())

	d = gate.Evaluate(eng, nil, false)
	assert.Equal(t, gate.StatusUnauthenticated, d.Status)
}

func TestEvaluate_Loading(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	// Loading never denies, even when conditions would fail.
	d := gate.Evaluate(eng, nil, true, gate.WithRole(rbac.RoleSuperAdmin))
	assert.Equal(t, gate.StatusLoading, d.Status)
	assert.False(t, d.Allowed())
}

func TestEvaluate_InactivePrincipal(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	p := principal(rbac.RoleSuperAdmin)
	p.IsActive = false

	d := gate.Evaluate(eng, p, false)
	assert.Equal(t, gate.StatusUnauthenticated, d.Status)
}

func TestEvaluate_SingleConditionIgnoresRequireAll(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	// broker_user holds only employees read/update in the default matrix;
	// employees.create must be denied under both combinator settings.
	p := principal(rbac.RoleBrokerUser)

	withOr := gate.Evaluate(eng, p, false,
		gate.WithPermission(rbac.ResourceEmployees, rbac.ActionCreate))
	withAnd := gate.Evaluate(eng, p, false,
		gate.WithPermission(rbac.ResourceEmployees, rbac.ActionCreate),
		gate.RequireAll())

	assert.Equal(t, gate.StatusUnauthorized, withOr.Status)
	assert.Equal(t, gate.StatusUnauthorized, withAnd.Status)

	grantedOr := gate.Evaluate(eng, p, false,
		gate.WithPermission(rbac.ResourceEmployees, rbac.ActionRead))
	grantedAnd := gate.Evaluate(eng, p, false,
		gate.WithPermission(rbac.ResourceEmployees, rbac.ActionRead),
		gate.RequireAll())

	assert.True(t, grantedOr.Allowed())
	assert.True(t, grantedAnd.Allowed())
}

func TestEvaluate_RequireAllSemantics(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	// broker_admin holds reports.view_all in the default matrix, so the
	// conjunction passes for broker_admin...
	d := gate.Evaluate(eng, principal(rbac.RoleBrokerAdmin), false,
		gate.WithRole(rbac.RoleBrokerAdmin),
		gate.WithPermission(rbac.ResourceReports, rbac.ActionViewAll),
		gate.RequireAll(),
	)
	assert.True(t, d.Allowed())

	// ...and fails for a broker_user impersonating the role requirement
	// only: AND means a single failing condition denies.
	d = gate.Evaluate(eng, principal(rbac.RoleBrokerUser), false,
		gate.WithRole(rbac.RoleBrokerUser),
		gate.WithPermission(rbac.ResourceReports, rbac.ActionViewAll),
		gate.RequireAll(),
	)
	assert.Equal(t, gate.StatusUnauthorized, d.Status)
	assert.Equal(t, []gate.Condition{gate.ConditionPermission}, d.Failed)
}

func TestEvaluate_RequireAllDeniesPartialHolder(t *testing.T) {
	t.Parallel()

	// A broker_admin without the reports.view_all grant: role passes,
	// permission fails, AND denies.
	table := map[rbac.Role][]rbac.Grant{
		rbac.RoleBrokerAdmin: {
			{Resource: rbac.ResourceReports, Action: rbac.ActionRead},
		},
	}
	source := rbac.NewInMemGrantSource(table)
	catalog, err := rbac.NewCatalog(context.Background(), source)
	require.NoError(t, err)
	eng := rbac.NewEngine(catalog)

	d := gate.Evaluate(eng, principal(rbac.RoleBrokerAdmin), false,
		gate.WithRole(rbac.RoleBrokerAdmin),
		gate.WithPermission(rbac.ResourceReports, rbac.ActionViewAll),
		gate.RequireAll(),
	)
	assert.Equal(t, gate.StatusUnauthorized, d.Status)
}

func TestEvaluate_OrSemantics(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)

	// Either condition suffices under OR.
	d := gate.Evaluate(eng, principal(rbac.RoleCarrierAdmin), false,
		gate.WithRole(rbac.RoleSuperAdmin),
		gate.WithPermission(rbac.ResourceClaims, rbac.ActionApprove),
	)
	assert.True(t, d.Allowed())

	// Neither passes: denied, and every supplied kind is reported.
	d = gate.Evaluate(eng, principal(rbac.RoleEmployee), false,
		gate.WithRole(rbac.RoleSuperAdmin),
		gate.WithPermission(rbac.ResourceClaims, rbac.ActionApprove),
	)
	assert.Equal(t, gate.StatusUnauthorized, d.Status)
	assert.ElementsMatch(t, []gate.Condition{gate.ConditionRole, gate.ConditionPermission}, d.Failed)
}

func TestEvaluate_AnyRoleAndOrganization(t *testing.T) {
	t.Parallel()

	org := uuid.New()
	eng := newEngine(t)

	p := principal(rbac.RoleEmployerHR)
	p.OrganizationID = org

	d := gate.Evaluate(eng, p, false,
		gate.WithAnyRole(rbac.RoleEmployerAdmin, rbac.RoleEmployerHR),
		gate.WithOrganization(org),
		gate.RequireAll(),
	)
	assert.True(t, d.Allowed())

	d = gate.Evaluate(eng, p, false,
		gate.WithAnyRole(rbac.RoleEmployerAdmin, rbac.RoleEmployerHR),
		gate.WithOrganization(uuid.New()),
		gate.RequireAll(),
	)
	assert.Equal(t, gate.StatusUnauthorized, d.Status)
	assert.Equal(t, []gate.Condition{gate.ConditionOrganization}, d.Failed)
}

func TestEvaluate_CustomPredicate(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)
	p := principal(rbac.RoleEmployee)

	d := gate.Evaluate(eng, p, false,
		gate.WithPredicate(func(q *rbac.Principal) bool { return q.ID == p.ID }),
	)
	assert.True(t, d.Allowed())

	d = gate.Evaluate(eng, p, false,
		gate.WithPredicate(func(*rbac.Principal) bool { return false }),
	)
	assert.Equal(t, gate.StatusUnauthorized, d.Status)
	assert.Equal(t, []gate.Condition{gate.ConditionPredicate}, d.Failed)
}

func TestDecision_DenialMessage(t *testing.T) {
	t.Parallel()

	d := gate.Decision{
		Status: gate.StatusUnauthorized,
		Failed: []gate.Condition{gate.ConditionRole, gate.ConditionPermission},
	}
	assert.Equal(t, "access denied: unmet role, permission requirement(s)", d.DenialMessage())

	assert.Empty(t, gate.Decision{Status: gate.StatusAuthorized}.DenialMessage())
	assert.Equal(t, "access denied",
		gate.Decision{Status: gate.StatusUnauthorized}.DenialMessage())
}
