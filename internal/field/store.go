package field

// Store owns the combined option set for one field: the caller-configured
// options plus any values discovered in the bound value that were absent
// from the configured list (stale defaults, externally written values,
// free-text creations).
//
// Invariant: no two options share a key. Configured options always precede
// discovered ones; discovered options keep insertion order.
type Store[T any] struct {
	adapter    Adapter[T]
	configured []T
	discovered []T
}

// NewStore builds a store over the configured options, seeded with whatever
// the initial bound value references outside that list.
func NewStore[T any](adapter Adapter[T], configured []T, initial Value[T]) *Store[T] {
	copied := make([]T, len(configured))
	copy(copied, configured)
	s := &Store[T]{adapter: adapter, configured: copied}
	s.Reconcile(initial)
	return s
}

// Reconcile folds a bound value into the discovered set. Entries whose key
// is already present anywhere in the option set are skipped, so calling it
// repeatedly with an unchanged value inserts nothing. It runs on every
// observed change to the bound value, not only at initialization.
func (s *Store[T]) Reconcile(v Value[T]) {
	for _, item := range v.Items() {
		s.Register(item)
	}
}

// Register appends one item to the discovered set unless its key is already
// present. Reports whether the item was added.
func (s *Store[T]) Register(item T) bool {
	if s.containsKey(s.adapter.Key(item)) {
		return false
	}
	s.discovered = append(s.discovered, item)
	return true
}

// Contains reports whether an item with the same key is in the option set.
func (s *Store[T]) Contains(item T) bool {
	return s.containsKey(s.adapter.Key(item))
}

func (s *Store[T]) containsKey(key string) bool {
	for _, opt := range s.configured {
		if s.adapter.Key(opt) == key {
			return true
		}
	}
	for _, opt := range s.discovered {
		if s.adapter.Key(opt) == key {
			return true
		}
	}
	return false
}

// Options returns the combined option set: configured first, then
// discovered in insertion order.
func (s *Store[T]) Options() []T {
	combined := make([]T, 0, len(s.configured)+len(s.discovered))
	combined = append(combined, s.configured...)
	combined = append(combined, s.discovered...)
	return combined
}

// SetConfigured replaces the configured options. Discovered entries whose
// key now appears in the configured list are dropped to keep keys unique.
func (s *Store[T]) SetConfigured(configured []T) {
	copied := make([]T, len(configured))
	copy(copied, configured)
	s.configured = copied

	kept := s.discovered[:0]
	for _, item := range s.discovered {
		key := s.adapter.Key(item)
		shadowed := false
		for _, opt := range s.configured {
			if s.adapter.Key(opt) == key {
				shadowed = true
				break
			}
		}
		if !shadowed {
			kept = append(kept, item)
		}
	}
	s.discovered = kept
}

// Discovered returns the discovered options (for testing).
func (s *Store[T]) Discovered() []T {
	copied := make([]T, len(s.discovered))
	copy(copied, s.discovered)
	return copied
}
