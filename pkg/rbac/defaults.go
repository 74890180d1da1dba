package rbac

// DefaultGrants returns the benefits-domain permission matrix shipped with
// the platform. Hosting applications may pass it to NewInMemGrantSource as
// the static catalog configuration or use it as a seed for an external
// grant store.
//
// The super_admin row is the explicit full-wildcard set; the engine also
// short-circuits super_admin to allow, so the row mainly serves catalog
// introspection (serializing the grant set to a client, seeding stores).
func DefaultGrants() map[Role][]Grant {
	full := func(r Resource) []Grant {
		return []Grant{
			{r, ActionCreate}, {r, ActionRead}, {r, ActionUpdate},
			{r, ActionDelete}, {r, ActionManage},
		}
	}

	superAdmin := []Grant{}
	for _, r := range []Resource{
		ResourceEmployees, ResourceEmployers, ResourcePlans,
		ResourceEnrollments, ResourceClaims, ResourceUsers, ResourceRoles,
		ResourceOrganizations, ResourceSettings,
	} {
		superAdmin = append(superAdmin, full(r)...)
	}
	superAdmin = append(superAdmin,
		Grant{ResourceReports, ActionRead},
		Grant{ResourceReports, ActionExport},
		Grant{ResourceReports, ActionViewAll},
		Grant{ResourceBilling, ActionRead},
		Grant{ResourceBilling, ActionUpdate},
		Grant{ResourceBilling, ActionManage},
	)

	return map[Role][]Grant{
		RoleSuperAdmin: superAdmin,
		RoleBrokerAdmin: {
			{ResourceEmployees, ActionCreate}, {ResourceEmployees, ActionRead},
			{ResourceEmployees, ActionUpdate}, {ResourceEmployees, ActionDelete},
			{ResourceEmployees, ActionImport},
			{ResourceEmployers, ActionCreate}, {ResourceEmployers, ActionRead},
			{ResourceEmployers, ActionUpdate}, {ResourceEmployers, ActionDelete},
			{ResourcePlans, ActionCreate}, {ResourcePlans, ActionRead},
			{ResourcePlans, ActionUpdate}, {ResourcePlans, ActionDelete},
			{ResourceEnrollments, ActionRead}, {ResourceEnrollments, ActionUpdate},
			{ResourceEnrollments, ActionExport},
			{ResourceUsers, ActionCreate}, {ResourceUsers, ActionRead},
			{ResourceUsers, ActionUpdate},
			{ResourceOrganizations, ActionRead},
			{ResourceReports, ActionRead}, {ResourceReports, ActionExport},
			{ResourceReports, ActionViewAll},
			{ResourceSettings, ActionRead}, {ResourceSettings, ActionUpdate},
		},
		RoleBrokerUser: {
			{ResourceEmployees, ActionRead}, {ResourceEmployees, ActionUpdate},
			{ResourceEmployers, ActionRead}, {ResourceEmployers, ActionUpdate},
			{ResourcePlans, ActionRead},
			{ResourceEnrollments, ActionRead}, {ResourceEnrollments, ActionUpdate},
			{ResourceReports, ActionRead}, {ResourceReports, ActionViewOwn},
		},
		RoleEmployerAdmin: {
			{ResourceEmployees, ActionCreate}, {ResourceEmployees, ActionRead},
			{ResourceEmployees, ActionUpdate},
			{ResourcePlans, ActionRead},
			{ResourceEnrollments, ActionRead},
			{ResourceClaims, ActionRead},
			{ResourceUsers, ActionCreate}, {ResourceUsers, ActionRead},
			{ResourceUsers, ActionUpdate},
			{ResourceReports, ActionRead}, {ResourceReports, ActionViewOwn},
			{ResourceSettings, ActionRead}, {ResourceSettings, ActionUpdate},
		},
		RoleEmployerHR: {
			{ResourceEmployees, ActionRead}, {ResourceEmployees, ActionUpdate},
			{ResourcePlans, ActionRead},
			{ResourceEnrollments, ActionRead},
			{ResourceReports, ActionRead}, {ResourceReports, ActionViewOwn},
		},
		RoleEmployee: {
			{ResourceEmployees, ActionViewOwn},
			{ResourcePlans, ActionRead},
			{ResourceEnrollments, ActionViewOwn}, {ResourceEnrollments, ActionUpdate},
			{ResourceClaims, ActionCreate}, {ResourceClaims, ActionViewOwn},
		},
		RoleCarrierAdmin: {
			{ResourcePlans, ActionCreate}, {ResourcePlans, ActionRead},
			{ResourcePlans, ActionUpdate}, {ResourcePlans, ActionDelete},
			{ResourceEnrollments, ActionRead},
			{ResourceClaims, ActionRead}, {ResourceClaims, ActionApprove},
			{ResourceClaims, ActionReject},
			{ResourceReports, ActionRead}, {ResourceReports, ActionViewAll},
		},
		RoleCarrierUser: {
			{ResourcePlans, ActionRead},
			{ResourceEnrollments, ActionRead},
			{ResourceClaims, ActionRead},
			{ResourceReports, ActionRead},
		},
		RoleReadonlyUser: {
			{ResourceEmployees, ActionRead},
			{ResourceEmployers, ActionRead},
			{ResourcePlans, ActionRead},
			{ResourceEnrollments, ActionRead},
			{ResourceReports, ActionRead},
		},
	}
}
