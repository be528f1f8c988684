package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fieldkit/internal/field"
)

// ComboFieldState represents the current state of the combo field.
type ComboFieldState int

const (
	// ComboFieldIdle - focused, dropdown closed.
	ComboFieldIdle ComboFieldState = iota
	// ComboFieldBrowsing - dropdown open with full list.
	ComboFieldBrowsing
	// ComboFieldFiltering - dropdown open with filtered list.
	ComboFieldFiltering
)

// ComboFieldEnterSelectedMsg is sent when Enter confirms a selection.
// The component stays focused for additional input.
type ComboFieldEnterSelectedMsg[T any] struct {
	Option field.Option[T]
	// Value is the committed bound value when the field is bound; the zero
	// Value otherwise.
	Value field.Value[T]
}

// ComboFieldTabSelectedMsg is sent when Tab confirms a selection.
// Signals that the parent should advance to the next field after processing.
type ComboFieldTabSelectedMsg[T any] struct {
	Option field.Option[T]
	Value  field.Value[T]
}

// ComboFieldClearedMsg is sent when the selection is cleared.
type ComboFieldClearedMsg[T any] struct {
	Value field.Value[T]
}

// FieldErrorMsg carries a configuration or commit error out of a field.
type FieldErrorMsg struct {
	Err error
}

// ComboField is a single-select object-valued autocomplete field. Options
// come from an option store that reconciles the bound value on every
// update, so selections outside the configured list stay selectable and
// renderable. Free-text creation goes through the provisional-option
// pipeline; nothing is committed without canonicalization.
type ComboField[T any] struct {
	adapter field.Adapter[T]
	store   *field.Store[T]
	binding *field.Binding[T]
	factory field.Factory[T]

	transform func(field.Value[T]) field.Value[T]

	// Configuration. Config is the effective configuration derived from the
	// caller's baseConfig and the current view-mode flags; deriving it fresh
	// on every change keeps view-only toggleable at runtime.
	Config       field.WidgetConfig
	baseConfig   field.WidgetConfig
	viewOnly     bool
	noUnderline  bool
	Placeholder  string
	Width        int
	MaxVisible   int
	AllowNew     bool
	NewItemLabel string // e.g. "New label: %s"
	Filter       FilterFunc[T]

	// State
	state          ComboFieldState
	textInput      textinput.Model
	current        field.Value[T]
	filtered       []field.Option[T]
	highlightIndex int
	scrollOffset   int
	focused        bool
	errText        string
}

// NewComboField creates an unbound combo field over the given options.
func NewComboField[T any](adapter field.Adapter[T], options []T) ComboField[T] {
	ti := textinput.New()
	ti.CharLimit = 100

	c := ComboField[T]{
		adapter:      adapter,
		store:        field.NewStore(adapter, options, field.None[T]()),
		Placeholder:  "",
		Width:        40,
		MaxVisible:   5,
		AllowNew:     false,
		NewItemLabel: "New item added: %s",
		Filter:       SubstringFilter[T],
		state:        ComboFieldIdle,
		textInput:    ti,
	}
	c.textInput.Width = c.Width - 4 // account for border padding
	c.refilter()
	return c
}

// Bind attaches a bound-value holder. The store is reseeded from the
// current value and selections are committed through the pipeline.
func (c ComboField[T]) Bind(b *field.Binding[T]) ComboField[T] {
	c.binding = b
	c.store.Reconcile(b.Current())
	c.current = b.Current()
	c.textInput.SetValue(c.valueLabel())
	return c
}

// WithFreeSolo enables creating new items from raw text. label formats the
// create row, e.g. "New label: %s".
func (c ComboField[T]) WithFreeSolo(newItem func(string) T, label string) ComboField[T] {
	c.AllowNew = true
	c.factory = field.Factory[T]{NewItem: newItem}
	if label != "" {
		c.NewItemLabel = label
	}
	return c
}

// WithTransform installs a hook applied to every resolved value right
// before commit.
func (c ComboField[T]) WithTransform(fn func(field.Value[T]) field.Value[T]) ComboField[T] {
	c.transform = fn
	return c
}

// WithConfig replaces the caller configuration.
func (c ComboField[T]) WithConfig(cfg field.WidgetConfig) ComboField[T] {
	c.baseConfig = cfg
	c.Config = field.ApplyViewMode(c.baseConfig, c.viewOnly, c.noUnderline)
	return c
}

// WithViewOnly switches the view-only display mode on or off. The forced
// defaults are derived from the pristine caller configuration each time, so
// toggling off restores the editable state.
func (c ComboField[T]) WithViewOnly(viewOnly, disableUnderline bool) ComboField[T] {
	c.viewOnly = viewOnly
	c.noUnderline = disableUnderline
	c.Config = field.ApplyViewMode(c.baseConfig, c.viewOnly, c.noUnderline)
	return c
}

// WithPlaceholder sets the placeholder text.
func (c ComboField[T]) WithPlaceholder(s string) ComboField[T] {
	c.Placeholder = s
	c.textInput.Placeholder = s
	return c
}

// WithWidth sets the display width.
func (c ComboField[T]) WithWidth(w int) ComboField[T] {
	c.Width = w
	c.textInput.Width = w - 4
	return c
}

// WithMaxVisible sets the maximum visible items in the dropdown.
func (c ComboField[T]) WithMaxVisible(n int) ComboField[T] {
	c.MaxVisible = n
	return c
}

// WithFilter replaces the option filter.
func (c ComboField[T]) WithFilter(f FilterFunc[T]) ComboField[T] {
	c.Filter = f
	return c
}

// Init implements tea.Model.
func (c ComboField[T]) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns updated state.
func (c ComboField[T]) Update(msg tea.Msg) (ComboField[T], tea.Cmd) {
	c.syncBound()

	if c.Config.Disabled || c.Config.ReadOnly {
		// Read-only fields render but never mutate.
		return c, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	c.textInput, cmd = c.textInput.Update(msg)
	return c, cmd
}

// syncBound is the explicit watched-value diff check: on every update the
// bound value is reconciled into the store, and an externally written value
// replaces the display. Reconciliation is idempotent, so running it on
// unchanged values is safe.
func (c *ComboField[T]) syncBound() {
	if c.binding == nil {
		return
	}
	v := c.binding.Current()
	c.store.Reconcile(v)
	if !c.sameValue(v, c.current) {
		c.current = v
		if c.state == ComboFieldIdle {
			c.textInput.SetValue(c.valueLabel())
		}
	}
}

func (c ComboField[T]) sameValue(a, b field.Value[T]) bool {
	if a.IsNone() != b.IsNone() || a.Len() != b.Len() {
		return false
	}
	ai, bi := a.Items(), b.Items()
	for i := range ai {
		if c.adapter.Key(ai[i]) != c.adapter.Key(bi[i]) {
			return false
		}
	}
	return true
}

func (c ComboField[T]) handleKeyMsg(msg tea.KeyMsg) (ComboField[T], tea.Cmd) {
	if msg.Type == tea.KeyCtrlX {
		return c.clearSelection()
	}
	switch c.state {
	case ComboFieldIdle:
		return c.handleIdleKey(msg)
	case ComboFieldBrowsing:
		return c.handleBrowsingKey(msg)
	case ComboFieldFiltering:
		return c.handleFilteringKey(msg)
	}
	return c, nil
}

func (c ComboField[T]) handleIdleKey(msg tea.KeyMsg) (ComboField[T], tea.Cmd) {
	switch msg.Type {
	case tea.KeyDown:
		// Open dropdown with full list
		c.state = ComboFieldBrowsing
		c.filtered = field.Existings(c.store.Options())
		c.highlightCurrentValue()
		return c, nil

	case tea.KeyEnter, tea.KeyTab:
		// Keep current value, confirm field
		return c, nil

	case tea.KeyEsc:
		// Two-stage escape: typed text different from the value reverts first
		if c.textInput.Value() != c.valueLabel() {
			c.textInput.SetValue(c.valueLabel())
			return c, nil
		}
		return c, nil

	default:
		// Typing opens the filtered dropdown
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
			// Typing over a committed selection replaces it, IntelliSense style
			if label := c.valueLabel(); label != "" && c.textInput.Value() == label {
				c.textInput.SetValue("")
			}
			oldValue := c.textInput.Value()
			var cmd tea.Cmd
			c.textInput, cmd = c.textInput.Update(msg)
			if c.textInput.Value() != oldValue {
				c.state = ComboFieldFiltering
				c.refilter()
			}
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.textInput, cmd = c.textInput.Update(msg)
	return c, cmd
}

func (c ComboField[T]) handleBrowsingKey(msg tea.KeyMsg) (ComboField[T], tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if c.highlightIndex > 0 {
			c.highlightIndex--
			c.adjustScrollOffset()
		}
		return c, nil

	case tea.KeyDown:
		if c.highlightIndex < len(c.filtered)-1 {
			c.highlightIndex++
			c.adjustScrollOffset()
		}
		return c, nil

	case tea.KeyEnter:
		return c.selectHighlighted(false)

	case tea.KeyTab:
		return c.selectHighlighted(true)

	case tea.KeyEsc:
		c.state = ComboFieldIdle
		return c, nil

	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
			c.state = ComboFieldFiltering
			var cmd tea.Cmd
			c.textInput, cmd = c.textInput.Update(msg)
			c.refilter()
			return c, cmd
		}
	}

	return c, nil
}

func (c ComboField[T]) handleFilteringKey(msg tea.KeyMsg) (ComboField[T], tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if c.highlightIndex > 0 {
			c.highlightIndex--
			c.adjustScrollOffset()
		}
		return c, nil

	case tea.KeyDown:
		if c.highlightIndex < len(c.filtered)-1 {
			c.highlightIndex++
			c.adjustScrollOffset()
		}
		return c, nil

	case tea.KeyEnter:
		return c.selectHighlighted(false)

	case tea.KeyTab:
		return c.selectHighlighted(true)

	case tea.KeyEsc:
		// First Esc: close dropdown, keep typed text
		c.state = ComboFieldIdle
		return c, nil

	case tea.KeyDelete:
		// Delete with ghost text visible rejects the autocomplete so the
		// typed text stands on its own.
		if c.HasGhostText() {
			c.highlightIndex = -1
			return c, nil
		}
		return c, nil

	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
			var cmd tea.Cmd
			c.textInput, cmd = c.textInput.Update(msg)
			c.refilter()
			return c, cmd
		}
	}

	return c, nil
}

// selectHighlighted commits the highlighted option through the pipeline.
func (c ComboField[T]) selectHighlighted(viaTab bool) (ComboField[T], tea.Cmd) {
	if len(c.filtered) == 0 || c.highlightIndex < 0 || c.highlightIndex >= len(c.filtered) {
		c.state = ComboFieldIdle
		return c, nil
	}
	opt := c.filtered[c.highlightIndex]

	var committed field.Value[T]
	if c.binding != nil {
		reason := field.ReasonSelect
		if opt.IsProvisional() {
			reason = field.ReasonCreate
		}
		v, err := c.pipeline().Commit(reason, []field.Option[T]{opt})
		if err != nil {
			c.state = ComboFieldIdle
			return c, func() tea.Msg { return FieldErrorMsg{Err: err} }
		}
		committed = v
		c.current = v
		c.textInput.SetValue(c.valueLabel())
	} else {
		// Unbound fields just surface the option; a parent owns the value.
		c.textInput.SetValue(field.OptionLabel(c.adapter, opt))
	}

	c.state = ComboFieldIdle
	if viaTab {
		return c, func() tea.Msg {
			return ComboFieldTabSelectedMsg[T]{Option: opt, Value: committed}
		}
	}
	return c, func() tea.Msg {
		return ComboFieldEnterSelectedMsg[T]{Option: opt, Value: committed}
	}
}

func (c ComboField[T]) clearSelection() (ComboField[T], tea.Cmd) {
	if c.Config.DisableClearable {
		return c, nil
	}
	c.textInput.SetValue("")
	c.state = ComboFieldIdle
	if c.binding == nil {
		return c, nil
	}
	v, err := c.pipeline().Commit(field.ReasonClear, nil)
	if err != nil {
		return c, func() tea.Msg { return FieldErrorMsg{Err: err} }
	}
	c.current = v
	return c, func() tea.Msg { return ComboFieldClearedMsg[T]{Value: v} }
}

func (c *ComboField[T]) pipeline() *field.Pipeline[T] {
	p := &field.Pipeline[T]{
		Adapter:   c.adapter,
		Factory:   c.factory,
		Store:     c.store,
		Transform: c.transform,
	}
	if c.binding != nil {
		p.Sink = c.binding
	}
	return p
}

// refilter rebuilds the filtered list for the current input, injecting the
// provisional create row when free-text entry applies.
func (c *ComboField[T]) refilter() {
	input := c.textInput.Value()
	matched := c.Filter(c.adapter, c.store.Options(), input)
	c.filtered = field.Existings(matched)
	if c.AllowNew {
		c.filtered = field.InjectCreateOption(c.adapter, c.filtered, input)
	}
	c.scrollOffset = 0
	c.highlightDefault(input)
}

// highlightDefault picks the exact label match when there is one, otherwise
// the first existing option, otherwise the create row.
func (c *ComboField[T]) highlightDefault(input string) {
	input = strings.TrimSpace(input)
	firstExisting := -1
	for i, opt := range c.filtered {
		if opt.IsProvisional() {
			continue
		}
		if firstExisting == -1 {
			firstExisting = i
		}
		if strings.EqualFold(field.OptionLabel(c.adapter, opt), input) {
			c.highlightIndex = i
			return
		}
	}
	if firstExisting >= 0 {
		c.highlightIndex = firstExisting
		return
	}
	c.highlightIndex = 0
}

func (c *ComboField[T]) highlightCurrentValue() {
	item, ok := c.current.Item()
	if !ok {
		c.highlightIndex = 0
		c.scrollOffset = 0
		return
	}
	key := c.adapter.Key(item)
	for i, opt := range c.filtered {
		if existing, isItem := opt.Item(); isItem && c.adapter.Key(existing) == key {
			c.highlightIndex = i
			c.adjustScrollOffset()
			return
		}
	}
	c.highlightIndex = 0 // value not in list
	c.scrollOffset = 0
}

// adjustScrollOffset keeps the highlighted item inside the dropdown window.
func (c *ComboField[T]) adjustScrollOffset() {
	if c.highlightIndex < c.scrollOffset {
		c.scrollOffset = c.highlightIndex
	}
	if c.highlightIndex >= c.scrollOffset+c.MaxVisible {
		c.scrollOffset = c.highlightIndex - c.MaxVisible + 1
	}
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}
	maxOffset := len(c.filtered) - c.MaxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.scrollOffset > maxOffset {
		c.scrollOffset = maxOffset
	}
}

// Value returns the current bound value.
func (c ComboField[T]) Value() field.Value[T] {
	if c.binding != nil {
		return c.binding.Current()
	}
	return c.current
}

func (c ComboField[T]) valueLabel() string {
	return field.Renderer[T]{Adapter: c.adapter}.Label(c.current)
}

// SetOptions replaces the configured options.
func (c *ComboField[T]) SetOptions(options []T) {
	c.store.SetConfigured(options)
	c.refilter()
}

// SetText replaces the input text (used by parents composing fields).
func (c *ComboField[T]) SetText(s string) {
	c.textInput.SetValue(s)
}

// SetError sets the validation message rendered under the field. An empty
// message clears it.
func (c *ComboField[T]) SetError(msg string) {
	c.errText = msg
}

// ErrorText returns the current validation message (for testing).
func (c ComboField[T]) ErrorText() string {
	return c.errText
}

// Store exposes the option store (shared with parents and tests).
func (c ComboField[T]) Store() *field.Store[T] {
	return c.store
}

// Focus focuses the combo field and returns a blink command.
func (c *ComboField[T]) Focus() tea.Cmd {
	c.focused = true
	return c.textInput.Focus()
}

// Blur removes focus from the combo field.
func (c *ComboField[T]) Blur() {
	c.focused = false
	c.state = ComboFieldIdle
	c.textInput.Blur()
}

// Focused returns whether the combo field is focused.
func (c ComboField[T]) Focused() bool {
	return c.focused
}

// IsDropdownOpen returns whether the dropdown is currently visible.
func (c ComboField[T]) IsDropdownOpen() bool {
	return c.state != ComboFieldIdle
}

// State returns the current state for testing.
func (c ComboField[T]) State() ComboFieldState {
	return c.state
}

// Filtered returns the current filtered options for testing.
func (c ComboField[T]) Filtered() []field.Option[T] {
	return c.filtered
}

// HighlightIndex returns the current highlight index for testing.
func (c ComboField[T]) HighlightIndex() int {
	return c.highlightIndex
}

// InputValue returns the current text input value for testing.
func (c ComboField[T]) InputValue() string {
	return c.textInput.Value()
}

// GhostText returns the inline completion for the highlighted option, or ""
// when no completion applies.
func (c ComboField[T]) GhostText() string {
	if c.state != ComboFieldFiltering {
		return ""
	}
	if c.highlightIndex < 0 || c.highlightIndex >= len(c.filtered) {
		return ""
	}
	opt := c.filtered[c.highlightIndex]
	if opt.IsProvisional() {
		return ""
	}

	typed := c.textInput.Value()
	if typed == "" {
		return ""
	}
	highlighted := field.OptionLabel(c.adapter, opt)
	if !strings.HasPrefix(strings.ToLower(highlighted), strings.ToLower(typed)) {
		return ""
	}
	return highlighted[len(typed):]
}

// HasGhostText returns whether ghost text is currently visible.
func (c ComboField[T]) HasGhostText() bool {
	return c.GhostText() != ""
}
