package field

import "github.com/charmbracelet/lipgloss"

// ChipProps is per-token visual decoration. Nil colors and false flags mean
// "unset"; see MergeChipProps for override precedence.
type ChipProps struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Bold       bool
}

// MergeChipProps overlays widget-supplied state props on caller decoration.
// The widget wins for every field it sets: a non-nil color replaces the
// caller's, Bold can be forced on but not off. This keeps selection and
// flash states visible no matter what the caller decorates with.
func MergeChipProps(caller, widget ChipProps) ChipProps {
	merged := caller
	if widget.Foreground != nil {
		merged.Foreground = widget.Foreground
	}
	if widget.Background != nil {
		merged.Background = widget.Background
	}
	if widget.Bold {
		merged.Bold = true
	}
	return merged
}

// Token is one visual unit of a rendered value: a chip in multi mode, the
// bare label in single mode.
type Token struct {
	Label     string
	Props     ChipProps
	Removable bool
}

// Renderer turns bound values into visual tokens.
type Renderer[T any] struct {
	Adapter Adapter[T]
	// ChipProps optionally decorates one token; the widget's own state
	// props are merged on top of it (widget wins on conflicts).
	ChipProps func(item T, index int) ChipProps
	// ViewOnly suppresses removal affordances on every token.
	ViewOnly bool
}

// RenderValue produces tokens for the bound value, in value order. A multi
// value yields one token per element. A single value yields exactly one
// token; None yields one token with an empty label, never an error.
func (r Renderer[T]) RenderValue(v Value[T]) []Token {
	if v.IsMulti() {
		items := v.Items()
		tokens := make([]Token, len(items))
		for i, item := range items {
			tokens[i] = Token{
				Label:     r.Adapter.Label(item),
				Props:     r.decorate(item, i),
				Removable: !r.ViewOnly,
			}
		}
		return tokens
	}

	item, ok := v.Item()
	if !ok {
		return []Token{{}}
	}
	return []Token{{Label: r.Adapter.Label(item), Props: r.decorate(item, 0)}}
}

// Label returns the single-select display text: the item label, or the
// empty string when nothing is selected.
func (r Renderer[T]) Label(v Value[T]) string {
	item, ok := v.Item()
	if !ok {
		return ""
	}
	return r.Adapter.Label(item)
}

func (r Renderer[T]) decorate(item T, index int) ChipProps {
	if r.ChipProps == nil {
		return ChipProps{}
	}
	return r.ChipProps(item, index)
}
