package rbac

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// redisGrantSource loads the grant table from a Redis hash. Each hash
// field is a role name; the value is a whitespace-separated list of
// serialized grants, e.g. "employees.read employees.update reports.view_all".
type redisGrantSource struct {
	client *redis.Client
	key    string
}

// NewRedisGrantSource creates a GrantSource that reads the grant table
// from the Redis hash stored under key.
func NewRedisGrantSource(client *redis.Client, key string) GrantSource {
	return &redisGrantSource{client: client, key: key}
}

// Load fetches the hash and parses every grant. Any unrecognized
// identifier fails the whole load.
func (s *redisGrantSource) Load(ctx context.Context) (map[Role][]Grant, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch grant hash %s: %w", s.key, err)
	}

	table := make(map[Role][]Grant, len(fields))
	for roleName, grantList := range fields {
		role := ParseRole(roleName)
		if role == RoleUnknown {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRole, roleName)
		}

		var grants []Grant
		for _, token := range strings.Fields(grantList) {
			g, err := ParseGrant(token)
			if err != nil {
				return nil, fmt.Errorf("role %s: %w", roleName, err)
			}
			grants = append(grants, g)
		}
		table[role] = grants
	}

	return table, nil
}
