package field

import (
	"strings"

	apperrors "fieldkit/internal/errors"
)

// Factory converts raw text into items when free-text entry is enabled.
type Factory[T any] struct {
	// NewItem builds an item from the text the user typed. Required when
	// free-text entry is enabled; resolving a provisional option without it
	// is a configuration error, never a silent drop.
	NewItem func(string) T
}

// Enabled reports whether a converter is available.
func (f Factory[T]) Enabled() bool {
	return f.NewItem != nil
}

// Resolve canonicalizes a dropdown option into a persistable item. Existing
// options pass through; provisional ones are built via NewItem. This is the
// single conversion step shared by every trigger path (keyboard create,
// raw-string payload, programmatic commit).
func (f Factory[T]) Resolve(o Option[T]) (T, error) {
	if item, ok := o.Item(); ok {
		return item, nil
	}
	if f.NewItem == nil {
		var zero T
		return zero, apperrors.New(apperrors.CodeConfigurationError,
			"free-text entry enabled without an item factory", nil)
	}
	return f.NewItem(o.Text()), nil
}

// InjectCreateOption prepends one provisional create option to the filtered
// list when the input would produce a genuinely new item. No option is
// produced for empty input or when some filtered option's label matches the
// input exactly, ignoring case.
func InjectCreateOption[T any](adapter Adapter[T], filtered []Option[T], input string) []Option[T] {
	input = strings.TrimSpace(input)
	if input == "" {
		return filtered
	}
	for _, opt := range filtered {
		if strings.EqualFold(OptionLabel(adapter, opt), input) {
			return filtered
		}
	}
	injected := make([]Option[T], 0, len(filtered)+1)
	injected = append(injected, ProvisionalCreate[T](input))
	injected = append(injected, filtered...)
	return injected
}
