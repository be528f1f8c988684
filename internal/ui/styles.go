package ui

import (
	"github.com/charmbracelet/lipgloss"

	"fieldkit/internal/ui/theme"
)

// Field widget styles. Styles are built per render so a theme switch takes
// effect immediately.

func styleFieldInput() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderDim()).
		Padding(0, 1)
}

func styleFieldInputFocused() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Secondary()).
		Padding(0, 1)
}

func styleDropdownOption() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text()).
		PaddingLeft(2)
}

func styleDropdownHighlight() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true).
		PaddingLeft(1)
}

func styleDropdownCreate() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Primary()).
		Italic(true)
}

func styleDropdownNoMatch() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().BorderNormal()).
		Italic(true)
}

func styleDropdownHint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleGhostText() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

// styleGhostCursor: dark text on grey background (inverted block cursor)
func styleGhostCursor() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Background()).
		Background(theme.Current().TextMuted())
}

// View-only variant styles. The underline is decorative and scoped to the
// value text; chips are rendered with their normal pill styles.

func styleViewValue(underline bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(theme.Current().Text())
	if underline {
		s = s.Underline(true)
	}
	return s
}

func styleViewEmpty() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted()).
		Italic(true)
}

func styleTrailingAction() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleFieldError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error())
}
