// Package navtree filters a navigation tree down to the nodes a principal
// is authorized to see.
//
// The tree is supplied by the hosting application's UI configuration.
// Filter is a pure projection: it never mutates the input, is idempotent,
// and yields the same output for the same (principal, tree, catalog
// snapshot) triple, so results are safe to memoize on the catalog version.
//
// A node may require a single role, any of a role set, a (resource,
// action) permission, or any combination; every requirement present on a
// node must pass. A node whose children are all pruned is pruned itself,
// so no dead menu headers survive.
package navtree
