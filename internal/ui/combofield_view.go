package ui

import (
	"fmt"
	"strings"

	"fieldkit/internal/field"
)

// View implements tea.Model.
func (c ComboField[T]) View() string {
	if c.Config.Variant == field.VariantPlain {
		return c.viewPlain()
	}

	var b strings.Builder

	// Build input view - may include inline ghost text
	var inputView string
	ghostText := c.GhostText()
	if ghostText != "" && c.focused {
		// First ghost char sits inside an inverted block cursor; the rest
		// renders grey after it.
		typed := c.textInput.Value()
		prompt := "> "
		ghostRunes := []rune(ghostText)
		cursorWithChar := styleGhostCursor().Render(string(ghostRunes[0]))
		rest := ""
		if len(ghostRunes) > 1 {
			rest = string(ghostRunes[1:])
		}
		inputView = prompt + typed + cursorWithChar + styleGhostText().Render(rest)
	} else {
		inputView = c.textInput.View()
	}

	if !c.Config.HideTrailingAction {
		inputView += styleTrailingAction().Render(" ▾")
	}

	// c.Width is the desired visual width including border; the border adds
	// 2 chars outside it.
	inputStyle := styleFieldInput().Width(c.Width - 2)
	if c.focused {
		inputStyle = styleFieldInputFocused().Width(c.Width - 2)
	}
	b.WriteString(inputStyle.Render(inputView))

	if c.state != ComboFieldIdle {
		b.WriteString("\n")
		if len(c.filtered) == 0 {
			b.WriteString(styleDropdownNoMatch().Render("  No matches"))
		} else {
			b.WriteString(c.viewDropdown())
		}
	}

	if c.errText != "" {
		b.WriteString("\n")
		b.WriteString(styleFieldError().Render("⚠ " + c.errText))
	}

	return b.String()
}

// viewPlain renders the inline view-only variant: the value label with a
// decorative underline, no input chrome, no dropdown.
func (c ComboField[T]) viewPlain() string {
	label := c.valueLabel()
	if label == "" {
		return styleViewEmpty().Render("—")
	}
	return styleViewValue(!c.Config.HideUnderline).Render(label)
}

func (c ComboField[T]) viewDropdown() string {
	var b strings.Builder

	if c.scrollOffset > 0 {
		b.WriteString(styleDropdownHint().Render("  ▲ more above"))
		b.WriteString("\n")
	}

	endIndex := c.scrollOffset + c.MaxVisible
	if endIndex > len(c.filtered) {
		endIndex = len(c.filtered)
	}

	for i := c.scrollOffset; i < endIndex; i++ {
		opt := c.filtered[i]
		b.WriteString(c.viewOption(opt, i == c.highlightIndex))
		if i < endIndex-1 {
			b.WriteString("\n")
		}
	}

	if endIndex < len(c.filtered) {
		b.WriteString("\n")
		b.WriteString(styleDropdownHint().Render("  ▼ more below"))
	}

	return b.String()
}

func (c ComboField[T]) viewOption(opt field.Option[T], highlighted bool) string {
	label := field.OptionLabel(c.adapter, opt)
	if opt.IsProvisional() {
		label = fmt.Sprintf(c.NewItemLabel, label)
		if highlighted {
			return styleDropdownCreate().PaddingLeft(1).Render("▸ " + label)
		}
		return styleDropdownCreate().PaddingLeft(2).Render(label)
	}
	if highlighted {
		return styleDropdownHighlight().Render("▸ " + label)
	}
	return styleDropdownOption().Render("  " + label)
}
