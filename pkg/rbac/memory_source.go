package rbac

import (
	"context"
	"fmt"
	"sync"
)

// inMemGrantSource is a GrantSource backed by a static in-memory table.
// It is thread-safe and makes defensive copies to prevent external
// modifications.
type inMemGrantSource struct {
	mu    sync.RWMutex
	table map[Role][]Grant
}

// NewInMemGrantSource creates an in-memory grant source from a static
// table. The input is deep-copied so the caller cannot mutate a published
// snapshot afterwards.
func NewInMemGrantSource(table map[Role][]Grant) GrantSource {
	return &inMemGrantSource{table: copyGrantTable(table)}
}

// Load validates the table against the closed role, resource and action
// sets and returns it. The returned map is safe to read but should not be
// modified; the catalog copies it before publishing.
func (s *inMemGrantSource) Load(ctx context.Context) (map[Role][]Grant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for role, grants := range s.table {
		if !role.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}
		for _, g := range grants {
			if !g.Resource.Valid() {
				return nil, fmt.Errorf("%w: %q (role %s)", ErrUnknownResource, g.Resource, role)
			}
			if !g.Action.Valid() {
				return nil, fmt.Errorf("%w: %q (role %s)", ErrUnknownAction, g.Action, role)
			}
		}
	}

	return s.table, nil
}
