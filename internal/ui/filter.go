package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"fieldkit/internal/field"
)

// FilterFunc narrows the option set for the current input text. The result
// keeps item order semantics defined by the implementation; labels come
// from the adapter.
type FilterFunc[T any] func(adapter field.Adapter[T], options []T, input string) []T

// SubstringFilter keeps options whose label contains the input,
// case-insensitive, preserving option-set order. Empty input keeps
// everything. This is the default filter.
func SubstringFilter[T any](adapter field.Adapter[T], options []T, input string) []T {
	input = strings.ToLower(input)
	if input == "" {
		return options
	}
	var matched []T
	for _, opt := range options {
		if strings.Contains(strings.ToLower(adapter.Label(opt)), input) {
			matched = append(matched, opt)
		}
	}
	return matched
}

// FuzzyFilter ranks options by fuzzy match quality against the input.
// Empty input or a query nothing matches keeps the full set in order.
func FuzzyFilter[T any](adapter field.Adapter[T], options []T, input string) []T {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" || len(options) == 0 {
		return options
	}
	targets := make([]string, len(options))
	for i, opt := range options {
		targets[i] = strings.ToLower(adapter.Label(opt))
	}
	matches := fuzzy.Find(input, targets)
	if len(matches) == 0 {
		return nil
	}
	ranked := make([]T, 0, len(matches))
	for _, match := range matches {
		if match.Index >= 0 && match.Index < len(options) {
			ranked = append(ranked, options[match.Index])
		}
	}
	return ranked
}
