package field

type valueShape int

const (
	shapeNone valueShape = iota
	shapeSingle
	shapeMulti
)

// Value is a field's committed selection: nothing, a single item, or an
// ordered sequence of items. The zero Value is the empty selection, and
// every read path treats it as a defined empty case.
type Value[T any] struct {
	shape valueShape
	items []T
}

// None returns the empty selection.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Single wraps one item as a single-select value.
func Single[T any](item T) Value[T] {
	return Value[T]{shape: shapeSingle, items: []T{item}}
}

// Multi wraps an ordered sequence as a multi-select value. The slice is
// copied. Multi(nil) is a present-but-empty sequence, distinct from None.
func Multi[T any](items []T) Value[T] {
	copied := make([]T, len(items))
	copy(copied, items)
	return Value[T]{shape: shapeMulti, items: copied}
}

// IsNone reports whether no selection is present.
func (v Value[T]) IsNone() bool {
	return v.shape == shapeNone
}

// IsMulti reports whether the value is a sequence.
func (v Value[T]) IsMulti() bool {
	return v.shape == shapeMulti
}

// Item returns the single selected item. ok is false for None and for
// multi-select values.
func (v Value[T]) Item() (item T, ok bool) {
	if v.shape != shapeSingle {
		var zero T
		return zero, false
	}
	return v.items[0], true
}

// Items normalizes the value into a sequence: nil for None, a one-element
// slice for a single selection, a copy of the sequence otherwise.
func (v Value[T]) Items() []T {
	if v.shape == shapeNone {
		return nil
	}
	copied := make([]T, len(v.items))
	copy(copied, v.items)
	return copied
}

// Len returns the number of selected items.
func (v Value[T]) Len() int {
	return len(v.items)
}
