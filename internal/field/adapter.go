// Package field implements the object-value selection engine behind the
// fieldkit components: the combined option set, free-text item creation,
// commit semantics and value rendering for single and multi select fields.
//
// Items are opaque to the engine. Identity and display are resolved through
// a caller-supplied Adapter; two items are the same iff their keys are equal.
package field

// Adapter resolves identity and display for an opaque item type.
type Adapter[T any] struct {
	// Key returns a stable identity string for an item. Used for equality,
	// deduplication and filtering. Required.
	Key func(T) string
	// Label returns the display text for an item. Required.
	Label func(T) string
}

// SameItem reports whether two items share a key.
func (a Adapter[T]) SameItem(x, y T) bool {
	return a.Key(x) == a.Key(y)
}
