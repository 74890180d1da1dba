package rbac

import (
	"context"
	"sync"
	"sync/atomic"
)

// GrantSource defines the interface for providing the role -> grants table.
type GrantSource interface {
	// Load returns the complete grant table.
	Load(ctx context.Context) (map[Role][]Grant, error)
}

// Catalog holds the process-wide role -> grants table. The table is loaded
// once at construction and treated as immutable; Reload replaces the whole
// table atomically so readers never observe a partial update.
type Catalog struct {
	source GrantSource

	// mu serializes Reload. Readers go through the atomic pointer and
	// never take the lock.
	mu      sync.Mutex
	table   atomic.Pointer[map[Role][]Grant]
	version atomic.Uint64
}

// NewCatalog creates a Catalog and performs the initial load from source.
func NewCatalog(ctx context.Context, source GrantSource) (*Catalog, error) {
	c := &Catalog{source: source}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload loads a fresh table from the source and swaps it in atomically.
// On source failure the previous table stays in place and the error is
// returned to the caller.
func (c *Catalog) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	loaded, err := c.source.Load(ctx)
	if err != nil {
		return err
	}

	table := copyGrantTable(loaded)
	c.table.Store(&table)
	c.version.Add(1)
	return nil
}

// GrantsFor returns the grant set for the role from the current snapshot.
// Unknown roles yield nil (no authority). The returned slice is shared
// with the snapshot and must not be modified.
func (c *Catalog) GrantsFor(role Role) []Grant {
	t := c.table.Load()
	if t == nil {
		return nil
	}
	return (*t)[role]
}

// Version returns a counter incremented on every successful reload.
// Callers memoizing derived results (such as filtered menus) can key on it
// to observe catalog snapshots.
func (c *Catalog) Version() uint64 {
	return c.version.Load()
}

// copyGrantTable deep-copies a grant table so later mutations of the
// source's map cannot leak into a published snapshot.
func copyGrantTable(src map[Role][]Grant) map[Role][]Grant {
	dst := make(map[Role][]Grant, len(src))
	for role, grants := range src {
		cp := make([]Grant, len(grants))
		copy(cp, grants)
		dst[role] = cp
	}
	return dst
}
