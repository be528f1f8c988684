package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fieldkit/internal/field"
	"fieldkit/internal/ui/theme"
)

// ChipListState represents the current mode of the chip list.
type ChipListState int

const (
	// ChipListInput - normal mode, cursor after chips.
	ChipListInput ChipListState = iota
	// ChipListNavigation - navigating chips with arrows.
	ChipListNavigation
)

// ChipNavExitReason indicates why chip navigation mode was exited.
type ChipNavExitReason int

const (
	// ChipNavExitRight - → pressed past last chip.
	ChipNavExitRight ChipNavExitReason = iota
	// ChipNavExitEscape - Esc pressed.
	ChipNavExitEscape
	// ChipNavExitTab - Tab pressed.
	ChipNavExitTab
	// ChipNavExitTyping - letter key pressed (Character field has the key).
	ChipNavExitTyping
)

// ChipRemovedMsg is sent when a chip is deleted via navigation.
type ChipRemovedMsg[T any] struct {
	Item  T
	Index int
}

// ChipNavExitMsg signals the chip list wants to exit navigation mode.
type ChipNavExitMsg struct {
	Reason    ChipNavExitReason
	Character rune // for ExitTyping: the key that was pressed
}

// chipFlashClearMsg is sent to clear the flash state.
type chipFlashClearMsg struct{}

// ChipList renders an ordered list of selected items as pill chips, with
// arrow-key navigation and removal. It displays whatever items its parent
// hands it; the parent owns the canonical value.
type ChipList[T any] struct {
	adapter field.Adapter[T]

	// Width is the available width for word wrapping (default 40).
	Width int
	// ChipProps optionally decorates chips; navigation and flash states are
	// merged on top and win on conflicts.
	ChipProps func(item T, index int) field.ChipProps
	// ViewOnly suppresses navigation, removal and state styling.
	ViewOnly bool

	items      []T
	state      ChipListState
	navIndex   int // highlighted chip index (-1 = none)
	focused    bool
	flashIndex int // chip to flash for duplicate (-1 = none)
}

// NewChipList creates an empty chip list.
func NewChipList[T any](adapter field.Adapter[T]) ChipList[T] {
	return ChipList[T]{
		adapter:    adapter,
		Width:      40,
		state:      ChipListInput,
		navIndex:   -1,
		flashIndex: -1,
	}
}

// WithWidth sets the available width for word wrapping.
func (c ChipList[T]) WithWidth(w int) ChipList[T] {
	c.Width = w
	return c
}

// Update handles messages and returns updated state.
func (c ChipList[T]) Update(msg tea.Msg) (ChipList[T], tea.Cmd) {
	switch msg := msg.(type) {
	case chipFlashClearMsg:
		c.flashIndex = -1
		return c, nil

	case tea.KeyMsg:
		if c.state == ChipListNavigation && !c.ViewOnly {
			return c.handleNavigationKey(msg)
		}
	}

	return c, nil
}

func (c ChipList[T]) handleNavigationKey(msg tea.KeyMsg) (ChipList[T], tea.Cmd) {
	switch msg.Type {
	case tea.KeyLeft:
		if c.navIndex > 0 {
			c.navIndex--
		}
		return c, nil

	case tea.KeyRight:
		if c.navIndex < len(c.items)-1 {
			c.navIndex++
			return c, nil
		}
		// Past last chip - exit navigation
		c.exitNav()
		return c, func() tea.Msg {
			return ChipNavExitMsg{Reason: ChipNavExitRight}
		}

	case tea.KeyDown:
		// Down exits chip nav back to the text box (chips sit above input)
		c.exitNav()
		return c, func() tea.Msg {
			return ChipNavExitMsg{Reason: ChipNavExitRight}
		}

	case tea.KeyBackspace, tea.KeyDelete:
		if len(c.items) == 0 || c.navIndex < 0 || c.navIndex >= len(c.items) {
			return c, nil
		}
		removed := c.items[c.navIndex]
		removedIndex := c.navIndex

		c.items = append(c.items[:c.navIndex], c.items[c.navIndex+1:]...)
		if len(c.items) == 0 {
			c.exitNav()
		} else if c.navIndex >= len(c.items) {
			c.navIndex = len(c.items) - 1
		}
		// Otherwise stay at the same index; the next chip slid into place.

		return c, func() tea.Msg {
			return ChipRemovedMsg[T]{Item: removed, Index: removedIndex}
		}

	case tea.KeyEsc:
		c.exitNav()
		return c, func() tea.Msg {
			return ChipNavExitMsg{Reason: ChipNavExitEscape}
		}

	case tea.KeyTab:
		c.exitNav()
		return c, func() tea.Msg {
			return ChipNavExitMsg{Reason: ChipNavExitTab}
		}

	case tea.KeyRunes:
		// Letter key - exit and pass the character along
		if len(msg.Runes) > 0 {
			c.exitNav()
			char := msg.Runes[0]
			return c, func() tea.Msg {
				return ChipNavExitMsg{Reason: ChipNavExitTyping, Character: char}
			}
		}
	}

	return c, nil
}

func (c *ChipList[T]) exitNav() {
	c.state = ChipListInput
	c.navIndex = -1
}

// View renders the chip list with word wrapping.
func (c ChipList[T]) View() string {
	if len(c.items) == 0 {
		return ""
	}
	return wrapStyled(c.RenderChips(), c.Width)
}

// RenderChips returns styled chip strings without word wrapping, one per
// item in value order. Caller decoration applies first, then navigation
// and flash state props on top.
func (c ChipList[T]) RenderChips() []string {
	renderer := field.Renderer[T]{
		Adapter:   c.adapter,
		ChipProps: c.ChipProps,
		ViewOnly:  c.ViewOnly,
	}
	tokens := renderer.RenderValue(field.Multi(c.items))

	t := theme.Current()
	result := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		props := field.MergeChipProps(field.ChipProps{
			Foreground: t.Background(),
			Background: t.Info(),
		}, tok.Props)

		removeMarker := false
		if !c.ViewOnly {
			switch {
			case c.flashIndex == i:
				props = field.MergeChipProps(props, field.ChipProps{
					Foreground: t.Text(),
					Background: t.Warning(),
					Bold:       true,
				})
			case c.state == ChipListNavigation && i == c.navIndex:
				props = field.MergeChipProps(props, field.ChipProps{
					Foreground: t.Text(),
					Background: t.BackgroundSecondary(),
					Bold:       true,
				})
				removeMarker = tok.Removable
			}
		}

		label := tok.Label
		if removeMarker {
			label = "✕ " + label
		}
		result = append(result, renderPill(label, props))
	}
	return result
}

// SetItems replaces the displayed items. Navigation state is clamped.
func (c *ChipList[T]) SetItems(items []T) {
	copied := make([]T, len(items))
	copy(copied, items)
	c.items = copied
	if c.navIndex >= len(c.items) {
		if len(c.items) == 0 {
			c.exitNav()
		} else {
			c.navIndex = len(c.items) - 1
		}
	}
	if c.flashIndex >= len(c.items) {
		c.flashIndex = -1
	}
}

// Items returns a copy of the displayed items.
func (c ChipList[T]) Items() []T {
	copied := make([]T, len(c.items))
	copy(copied, c.items)
	return copied
}

// Contains reports whether an item with the same key is displayed.
func (c ChipList[T]) Contains(item T) bool {
	key := c.adapter.Key(item)
	for _, it := range c.items {
		if c.adapter.Key(it) == key {
			return true
		}
	}
	return false
}

// Flash highlights the chip with the given key to signal a duplicate.
// Returns false if no chip matches.
func (c *ChipList[T]) Flash(item T) bool {
	key := c.adapter.Key(item)
	for i, it := range c.items {
		if c.adapter.Key(it) == key {
			c.flashIndex = i
			return true
		}
	}
	return false
}

// EnterNavigation enters chip navigation mode, highlighting the last chip.
// Returns false if there are no chips to navigate or the list is view-only.
func (c *ChipList[T]) EnterNavigation() bool {
	if len(c.items) == 0 || c.ViewOnly {
		return false
	}
	c.state = ChipListNavigation
	c.navIndex = len(c.items) - 1
	return true
}

// ExitNavigation exits chip navigation mode.
func (c *ChipList[T]) ExitNavigation() {
	c.exitNav()
}

// InNavigationMode returns true if in chip navigation mode.
func (c ChipList[T]) InNavigationMode() bool {
	return c.state == ChipListNavigation
}

// HighlightedItem returns the currently highlighted chip item.
// ok is false outside navigation mode.
func (c ChipList[T]) HighlightedItem() (item T, ok bool) {
	if c.state != ChipListNavigation || c.navIndex < 0 || c.navIndex >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[c.navIndex], true
}

// Focus focuses the chip list.
func (c *ChipList[T]) Focus() {
	c.focused = true
}

// Blur removes focus and exits navigation mode.
func (c *ChipList[T]) Blur() {
	c.focused = false
	c.exitNav()
}

// NavIndex returns the current navigation index (for testing).
func (c ChipList[T]) NavIndex() int {
	return c.navIndex
}

// FlashIndex returns the current flash index (for testing).
func (c ChipList[T]) FlashIndex() int {
	return c.flashIndex
}

// FlashCmd returns a command that clears the duplicate flash after a delay.
func FlashCmd() tea.Cmd {
	return tea.Tick(flashDuration, func(_ time.Time) tea.Msg {
		return chipFlashClearMsg{}
	})
}

const flashDuration = 150 * time.Millisecond

// Powerline characters for pill-shaped chips
const (
	pillLeft  = "\ue0b6" // left half-circle
	pillRight = "\ue0b4" // right half-circle
)

// renderPill renders a label as a pill-shaped chip using powerline glyphs:
// curved caps in the fill color around the styled label text.
func renderPill(label string, props field.ChipProps) string {
	fill := props.Background
	if fill == nil {
		fill = theme.Current().Info()
	}

	capStyle := lipgloss.NewStyle().Foreground(fill)
	labelStyle := lipgloss.NewStyle().Background(fill)
	if props.Foreground != nil {
		labelStyle = labelStyle.Foreground(props.Foreground)
	}
	if props.Bold {
		labelStyle = labelStyle.Bold(true)
	}

	return capStyle.Render(pillLeft) + labelStyle.Render(label) + capStyle.Render(pillRight)
}

// wrapStyled word-wraps pre-styled elements to the given width, joining
// with spaces and measuring via lipgloss so escapes don't count.
func wrapStyled(elements []string, width int) string {
	if width <= 0 || len(elements) == 0 {
		return strings.Join(elements, " ")
	}

	var lines []string
	var currentLine []string
	currentWidth := 0

	for _, elem := range elements {
		elemWidth := lipgloss.Width(elem)
		spaceNeeded := elemWidth
		if len(currentLine) > 0 {
			spaceNeeded++ // +1 for the space separator
		}

		if currentWidth+spaceNeeded > width && len(currentLine) > 0 {
			lines = append(lines, strings.Join(currentLine, " "))
			currentLine = []string{elem}
			currentWidth = elemWidth
		} else {
			currentLine = append(currentLine, elem)
			currentWidth += spaceNeeded
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}

	return strings.Join(lines, "\n")
}
