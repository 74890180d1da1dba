package rbac

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgx connection behavior the Postgres grant
// source needs. *pgxpool.Pool and *pgx.Conn both satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// grantQuery reads the flattened permission matrix maintained by the
// administrative backend.
const grantQuery = `SELECT role, resource, action FROM role_permission_matrix ORDER BY role, resource, action`

// pgGrantSource loads the grant table from the role_permission_matrix
// table in Postgres.
type pgGrantSource struct {
	db Querier
}

// NewPGGrantSource creates a GrantSource backed by a Postgres connection
// or pool.
func NewPGGrantSource(db Querier) GrantSource {
	return &pgGrantSource{db: db}
}

// Load reads and validates every matrix row. Rows with identifiers
// outside the closed sets fail the whole load so a corrupted matrix never
// half-applies.
func (s *pgGrantSource) Load(ctx context.Context) (map[Role][]Grant, error) {
	rows, err := s.db.Query(ctx, grantQuery)
	if err != nil {
		return nil, fmt.Errorf("query grant matrix: %w", err)
	}
	defer rows.Close()

	table := make(map[Role][]Grant)
	for rows.Next() {
		var roleName, resourceName, actionName string
		if err := rows.Scan(&roleName, &resourceName, &actionName); err != nil {
			return nil, fmt.Errorf("scan grant row: %w", err)
		}

		role := ParseRole(roleName)
		if role == RoleUnknown {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRole, roleName)
		}
		resource := ParseResource(resourceName)
		if resource == ResourceUnknown {
			return nil, fmt.Errorf("%w: %q (role %s)", ErrUnknownResource, resourceName, roleName)
		}
		action := ParseAction(actionName)
		if action == ActionUnknown {
			return nil, fmt.Errorf("%w: %q (role %s, resource %s)", ErrUnknownAction, actionName, roleName, resourceName)
		}

		table[role] = append(table[role], Grant{Resource: resource, Action: action})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read grant matrix: %w", err)
	}

	return table, nil
}
