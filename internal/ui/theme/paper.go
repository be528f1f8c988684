package theme

import "github.com/charmbracelet/lipgloss"

// Paper is a warm light-first palette with ink accents.
var paper = struct {
	Bg      string
	BgTint  string
	Ink     string
	InkDim  string
	Blue    string
	Plum    string
	Rust    string
	Ochre   string
	Sea     string
	Line    string
	LineDim string
	DarkBg  string
	DarkFg  string
}{
	Bg:      "#FAF7F0",
	BgTint:  "#EFEAE0",
	Ink:     "#3A3732",
	InkDim:  "#8C8679",
	Blue:    "#3E6B8F",
	Plum:    "#7A5383",
	Rust:    "#A84B3C",
	Ochre:   "#9A7424",
	Sea:     "#3D7D72",
	Line:    "#C9C2B3",
	LineDim: "#E3DDD0",
	DarkBg:  "#2A2722",
	DarkFg:  "#E8E3D8",
}

// PaperTheme implements Theme with the paper palette.
type PaperTheme struct{}

func (t PaperTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.Blue, Dark: "#7FA7C9"}
}

func (t PaperTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.Plum, Dark: "#B18ABA"}
}

func (t PaperTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.Rust, Dark: "#D08A7D"}
}

func (t PaperTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.Ochre, Dark: "#C9A558"}
}

func (t PaperTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.Sea, Dark: "#7FB5AB"}
}

func (t PaperTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.Ink, Dark: paper.DarkFg}
}

func (t PaperTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.InkDim, Dark: "#9B958A"}
}

func (t PaperTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.Bg, Dark: paper.DarkBg}
}

func (t PaperTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.BgTint, Dark: "#3A362E"}
}

func (t PaperTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.Line, Dark: "#57524A"}
}

func (t PaperTheme) BorderDim() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: paper.LineDim, Dark: "#403C35"}
}
