// Package identity bridges the external session collaborator and the
// authorization core. It owns the one asynchronous operation at the
// core's boundary: deriving a principal's grant set.
//
// The Resolver keeps a single current Snapshot. Setting a new principal
// starts one in-flight derivation; a newer principal supersedes any
// pending one (last-write-wins), so a stale result is never applied
// after the principal has changed. Cancelling the supplied context
// discards a pending result without touching shared state.
//
// A derivation failure is recorded on the snapshot as a recoverable
// error state and the principal is treated as holding no grants
// (fail-closed); the hosting application reads Snapshot().Err to offer
// a retry instead of silently granting or crashing.
package identity
