package storage

// MemoryStore is the in-memory implementation of Store. It is not safe for
// concurrent use: the mock subsystem it backs is single-threaded by design,
// and callers own test isolation via Clear.
type MemoryStore struct {
	buckets map[string]*bucket
}

type bucket struct {
	order  []string
	values map[string]any
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*bucket)}
}

// Set stores or replaces the entity under (prefix, id).
func (s *MemoryStore) Set(prefix, id string, value any) {
	b := s.buckets[prefix]
	if b == nil {
		b = &bucket{values: make(map[string]any)}
		s.buckets[prefix] = b
	}
	if _, exists := b.values[id]; !exists {
		b.order = append(b.order, id)
	}
	b.values[id] = value
}

// Get returns the entity under (prefix, id), or nil if absent.
func (s *MemoryStore) Get(prefix, id string) any {
	if b := s.buckets[prefix]; b != nil {
		return b.values[id]
	}
	return nil
}

// Has reports whether an entity exists under (prefix, id).
func (s *MemoryStore) Has(prefix, id string) bool {
	if b := s.buckets[prefix]; b != nil {
		_, ok := b.values[id]
		return ok
	}
	return false
}

// Delete removes the entity under (prefix, id), reporting whether it existed.
func (s *MemoryStore) Delete(prefix, id string) bool {
	b := s.buckets[prefix]
	if b == nil {
		return false
	}
	if _, ok := b.values[id]; !ok {
		return false
	}
	delete(b.values, id)
	for i, key := range b.order {
		if key == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns entities under prefix in insertion order, sliced by
// offset/limit when limit is positive.
func (s *MemoryStore) List(prefix string, offset, limit int) []any {
	b := s.buckets[prefix]
	if b == nil {
		return nil
	}
	keys := b.order
	if limit > 0 {
		if offset >= len(keys) {
			return nil
		}
		end := offset + limit
		if end > len(keys) {
			end = len(keys)
		}
		keys = keys[offset:end]
	}
	out := make([]any, 0, len(keys))
	for _, key := range keys {
		out = append(out, b.values[key])
	}
	return out
}

// Clear removes all entities under all prefixes.
func (s *MemoryStore) Clear() {
	s.buckets = make(map[string]*bucket)
}

var _ Store = (*MemoryStore)(nil)
