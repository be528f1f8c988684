package theme

import "github.com/charmbracelet/lipgloss"

// Slate is the default fieldkit palette: cool greys with a teal accent.
var slate = struct {
	Bg        string
	BgRaised  string
	Fg        string
	FgDim     string
	Teal      string
	Amber     string
	Red       string
	Cyan      string
	Line      string
	LineDim   string
	LightBg   string
	LightFg   string
	LightDim  string
	LightLine string
}{
	Bg:        "#20242C",
	BgRaised:  "#2B303B",
	Fg:        "#D5DAE2",
	FgDim:     "#7B8496",
	Teal:      "#5CC8B4",
	Amber:     "#E0AF68",
	Red:       "#E06C75",
	Cyan:      "#6FB7D4",
	Line:      "#4A5261",
	LineDim:   "#343B47",
	LightBg:   "#F4F4F2",
	LightFg:   "#30343C",
	LightDim:  "#878D99",
	LightLine: "#C8CCD4",
}

// SlateTheme implements Theme with the slate palette.
type SlateTheme struct{}

func (t SlateTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#0E7E6B", Dark: slate.Teal}
}

func (t SlateTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#5E4FA2", Dark: "#A08CD6"}
}

func (t SlateTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#B3364A", Dark: slate.Red}
}

func (t SlateTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#A3681C", Dark: slate.Amber}
}

func (t SlateTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#2D6F8E", Dark: slate.Cyan}
}

func (t SlateTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: slate.LightFg, Dark: slate.Fg}
}

func (t SlateTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: slate.LightDim, Dark: slate.FgDim}
}

func (t SlateTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: slate.LightBg, Dark: slate.Bg}
}

func (t SlateTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#E2E0EE", Dark: slate.BgRaised}
}

func (t SlateTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: slate.LightLine, Dark: slate.Line}
}

func (t SlateTheme) BorderDim() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#DDDFE4", Dark: slate.LineDim}
}
