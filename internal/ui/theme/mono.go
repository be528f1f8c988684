package theme

import "github.com/charmbracelet/lipgloss"

// MonoTheme is a high-contrast near-monochrome palette for terminals with
// limited color support.
type MonoTheme struct{}

func (t MonoTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
}

func (t MonoTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#E6E6E6"}
}

func (t MonoTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#8B0000", Dark: "#FF6B6B"}
}

func (t MonoTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#5C4500", Dark: "#FFD166"}
}

func (t MonoTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#3C3C3C", Dark: "#C9C9C9"}
}

func (t MonoTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F2F2F2"}
}

func (t MonoTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#6E6E6E", Dark: "#8A8A8A"}
}

func (t MonoTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}
}

func (t MonoTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#EBEBEB", Dark: "#262626"}
}

func (t MonoTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#707070"}
}

func (t MonoTheme) BorderDim() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#D6D6D6", Dark: "#3D3D3D"}
}
