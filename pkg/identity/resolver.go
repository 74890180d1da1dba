package identity

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/benefithub/authkit/pkg/rbac"
)

// Provider is the external session collaborator supplying the current
// principal. A nil principal with loading=false means "resolved: not
// authenticated"; loading=true means no decision exists yet.
type Provider interface {
	Resolve(ctx context.Context) (p *rbac.Principal, loading bool, err error)
}

// GrantFetcher derives the grant set for a role. It may suspend on the
// permission API or any other collaborator; failures are surfaced on the
// snapshot, never thrown across the authorization boundary.
type GrantFetcher func(ctx context.Context, role rbac.Role) ([]rbac.Grant, error)

// CatalogFetcher adapts a catalog into a GrantFetcher for hosts whose
// grant sets come straight from the static catalog.
func CatalogFetcher(c *rbac.Catalog) GrantFetcher {
	return func(ctx context.Context, role rbac.Role) ([]rbac.Grant, error) {
		return c.GrantsFor(role), nil
	}
}

// Snapshot is the resolver's current view of the principal and its
// derived grants.
type Snapshot struct {
	// Principal is nil when nobody is authenticated.
	Principal *rbac.Principal

	// Grants is the derived permission set. Empty while loading or after
	// a derivation failure.
	Grants []rbac.Grant

	// Err records a derivation failure as a recoverable error state.
	Err error

	// Ready is false while a derivation is in flight.
	Ready bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for derivation failures.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver owns the current principal snapshot and the single in-flight
// grant derivation.
type Resolver struct {
	fetch GrantFetcher
	log   *slog.Logger

	// mu guards gen; writers re-check gen under mu before publishing so
	// a superseded derivation never lands.
	mu      sync.Mutex
	gen     uint64
	current atomic.Pointer[Snapshot]
}

// NewResolver creates a Resolver using fetch to derive grant sets.
func NewResolver(fetch GrantFetcher, opts ...Option) *Resolver {
	r := &Resolver{
		fetch: fetch,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.current.Store(&Snapshot{Ready: true})
	return r
}

// Snapshot returns the current snapshot.
func (r *Resolver) Snapshot() Snapshot {
	return *r.current.Load()
}

// Principal yields the resolved principal for gate evaluation. While a
// derivation is pending it reports loading; after a derivation failure
// it reports no principal (fail-closed) until Refresh succeeds.
func (r *Resolver) Principal(ctx context.Context) (*rbac.Principal, bool) {
	snap := r.current.Load()
	if !snap.Ready {
		return nil, true
	}
	if snap.Err != nil {
		return nil, false
	}
	return snap.Principal, false
}

// SetPrincipal replaces the current principal wholesale and starts
// deriving its grant set. A nil principal (logout) resolves immediately.
// The derivation runs until done or ctx is cancelled; a cancelled or
// superseded derivation is discarded without being applied.
func (r *Resolver) SetPrincipal(ctx context.Context, p *rbac.Principal) {
	r.mu.Lock()
	r.gen++
	gen := r.gen

	if p == nil {
		r.current.Store(&Snapshot{Ready: true})
		r.mu.Unlock()
		return
	}

	pc := *p
	r.current.Store(&Snapshot{Principal: &pc})
	r.mu.Unlock()

	go r.derive(ctx, gen, pc)
}

// Refresh re-derives the grant set for the current principal, e.g. after
// the host signalled a permission change or wants to retry a failed
// derivation.
func (r *Resolver) Refresh(ctx context.Context) {
	snap := r.current.Load()
	r.SetPrincipal(ctx, snap.Principal)
}

func (r *Resolver) derive(ctx context.Context, gen uint64, p rbac.Principal) {
	grants, err := r.fetch(ctx, p.Role)
	if ctx.Err() != nil {
		// The hosting surface was torn down; discard the result.
		return
	}

	snap := &Snapshot{Principal: &p, Grants: grants, Ready: true}
	if err != nil {
		snap.Grants = nil
		snap.Err = errors.Join(ErrGrantDerivation, err)
		r.log.ErrorContext(ctx, "grant derivation failed",
			slog.String("role", p.Role.String()),
			slog.Any("error", err))
	}

	r.mu.Lock()
	if gen == r.gen {
		r.current.Store(snap)
	}
	r.mu.Unlock()
}

// Observe pulls the current principal from the provider and applies it.
// A loading provider leaves the snapshot untouched; a provider failure
// clears the principal and records the error (fail-closed).
func (r *Resolver) Observe(ctx context.Context, provider Provider) error {
	p, loading, err := provider.Resolve(ctx)
	if err != nil {
		wrapped := errors.Join(ErrProviderFailure, err)
		r.mu.Lock()
		r.gen++
		r.current.Store(&Snapshot{Err: wrapped, Ready: true})
		r.mu.Unlock()
		return wrapped
	}
	if loading {
		return nil
	}

	r.SetPrincipal(ctx, p)
	return nil
}
