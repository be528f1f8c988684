package field

type optionKind int

const (
	optionExisting optionKind = iota
	optionProvisional
)

// Option is one dropdown entry: either an existing item, or a provisional
// "create new item" marker synthesized from the current text input.
//
// The provisional form is transient. It lives only inside the filtered list
// for the current keystroke, is resolved into a real item before anything is
// committed, and is never stored in the option set or the bound value.
type Option[T any] struct {
	kind optionKind
	item T
	text string
}

// Existing wraps an item from the option set.
func Existing[T any](item T) Option[T] {
	return Option[T]{kind: optionExisting, item: item}
}

// ProvisionalCreate marks raw input text as a pending new item.
func ProvisionalCreate[T any](text string) Option[T] {
	return Option[T]{kind: optionProvisional, text: text}
}

// IsProvisional reports whether the option is a pending create marker.
func (o Option[T]) IsProvisional() bool {
	return o.kind == optionProvisional
}

// Item returns the wrapped item. ok is false for provisional options.
func (o Option[T]) Item() (item T, ok bool) {
	if o.kind != optionExisting {
		var zero T
		return zero, false
	}
	return o.item, true
}

// Text returns the raw input text of a provisional option. Empty for
// existing options.
func (o Option[T]) Text() string {
	if o.kind != optionProvisional {
		return ""
	}
	return o.text
}

// OptionLabel returns the display text for an option: the adapter label for
// existing items, the raw input text for provisional ones.
func OptionLabel[T any](a Adapter[T], o Option[T]) string {
	if item, ok := o.Item(); ok {
		return a.Label(item)
	}
	return o.Text()
}

// Existings wraps a slice of items. Convenience for building commit payloads.
func Existings[T any](items []T) []Option[T] {
	opts := make([]Option[T], len(items))
	for i, item := range items {
		opts[i] = Existing(item)
	}
	return opts
}
