package theme

// Registration order matters: the first registered theme is the default.
func init() {
	RegisterTheme("slate", SlateTheme{})
	RegisterTheme("paper", PaperTheme{})
	RegisterTheme("mono", MonoTheme{})
}
