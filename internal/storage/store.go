// Package storage provides the in-memory persistence substrate for mock
// domain entities.
package storage

// Store is a prefix-keyed key/value store. The prefix groups entities of
// one type ("gid://shopify/Cart/", "connection@<owner>", ...) and the id
// addresses a single entity within the group.
//
// The store enforces no referential integrity; consistency across entity
// types is the caller's responsibility.
type Store interface {
	// Set stores or replaces the entity under (prefix, id). A nil value is
	// stored as-is.
	Set(prefix, id string, value any)

	// Get returns the entity under (prefix, id), or nil if absent.
	Get(prefix, id string) any

	// Has reports whether an entity exists under (prefix, id).
	Has(prefix, id string) bool

	// Delete removes the entity under (prefix, id). It reports whether an
	// entity was present.
	Delete(prefix, id string) bool

	// List returns all entities under prefix in insertion order. When limit
	// is positive the result is the slice [offset, offset+limit); otherwise
	// the full list is returned.
	List(prefix string, offset, limit int) []any

	// Clear removes every entity under every prefix.
	Clear()
}
