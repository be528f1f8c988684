// Package theme provides the semantic color system for fieldkit widgets.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors used by the field widgets. All methods
// return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	Primary() lipgloss.AdaptiveColor   // main accent (focused borders)
	Secondary() lipgloss.AdaptiveColor // secondary accent (highlights, ghost cursor)

	Error() lipgloss.AdaptiveColor   // validation messages
	Warning() lipgloss.AdaptiveColor // duplicate flash
	Info() lipgloss.AdaptiveColor    // chip fill

	Text() lipgloss.AdaptiveColor      // primary text
	TextMuted() lipgloss.AdaptiveColor // hints, ghost text, placeholders

	Background() lipgloss.AdaptiveColor          // main background
	BackgroundSecondary() lipgloss.AdaptiveColor // highlighted chips

	BorderNormal() lipgloss.AdaptiveColor // default borders
	BorderDim() lipgloss.AdaptiveColor    // unfocused borders
}
