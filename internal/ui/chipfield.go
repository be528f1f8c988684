package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fieldkit/internal/field"
)

// ChipFieldItemAddedMsg is sent when an item is added to the selection.
type ChipFieldItemAddedMsg[T any] struct {
	Item  T
	IsNew bool // true if created from free text (for toast)
}

// ChipFieldTabMsg signals Tab was pressed (for field navigation).
type ChipFieldTabMsg struct{}

// ChipField composes ChipList + ComboField into a multi-select autocomplete
// field with tokenizing chips. The bound value owns the selection; every
// user action is normalized through the commit pipeline, and externally
// written values are reconciled back into chips and dropdown on the next
// update.
type ChipField[T any] struct {
	adapter field.Adapter[T]
	store   *field.Store[T]
	binding *field.Binding[T]
	factory field.Factory[T]

	transform func(field.Value[T]) field.Value[T]

	chips ChipList[T]
	combo ComboField[T]

	// Configuration. Config is derived from baseConfig and the view-mode
	// flags so view-only can be toggled off again at runtime.
	Config      field.WidgetConfig
	baseConfig  field.WidgetConfig
	viewOnly    bool
	noUnderline bool
	Width       int

	focused bool
}

// NewChipField creates a multi-select field over the configured options,
// bound to the given value holder.
func NewChipField[T any](adapter field.Adapter[T], options []T, binding *field.Binding[T]) ChipField[T] {
	store := field.NewStore(adapter, options, binding.Current())

	c := ChipField[T]{
		adapter: adapter,
		store:   store,
		binding: binding,
		chips:   NewChipList(adapter),
		combo:   NewComboField(adapter, nil),
		Width:   50,
	}
	c.chips.SetItems(binding.Current().Items())
	c.syncAvailable()
	return c.WithWidth(c.Width)
}

// WithWidth sets the display width.
func (c ChipField[T]) WithWidth(w int) ChipField[T] {
	c.Width = w
	c.chips = c.chips.WithWidth(w)
	c.combo = c.combo.WithWidth(w)
	return c
}

// WithMaxVisible sets the maximum visible items in the dropdown.
func (c ChipField[T]) WithMaxVisible(n int) ChipField[T] {
	c.combo = c.combo.WithMaxVisible(n)
	return c
}

// WithPlaceholder sets the placeholder text.
func (c ChipField[T]) WithPlaceholder(s string) ChipField[T] {
	c.combo = c.combo.WithPlaceholder(s)
	return c
}

// WithFreeSolo enables creating new items from raw text.
func (c ChipField[T]) WithFreeSolo(newItem func(string) T, label string) ChipField[T] {
	c.factory = field.Factory[T]{NewItem: newItem}
	c.combo = c.combo.WithFreeSolo(newItem, label)
	return c
}

// WithTransform installs a hook applied to every resolved sequence right
// before commit.
func (c ChipField[T]) WithTransform(fn func(field.Value[T]) field.Value[T]) ChipField[T] {
	c.transform = fn
	return c
}

// WithChipProps installs per-chip caller decoration.
func (c ChipField[T]) WithChipProps(fn func(item T, index int) field.ChipProps) ChipField[T] {
	c.chips.ChipProps = fn
	return c
}

// WithFilter replaces the dropdown option filter.
func (c ChipField[T]) WithFilter(f FilterFunc[T]) ChipField[T] {
	c.combo = c.combo.WithFilter(f)
	return c
}

// WithConfig replaces the caller configuration.
func (c ChipField[T]) WithConfig(cfg field.WidgetConfig) ChipField[T] {
	c.baseConfig = cfg
	return c.applyConfig()
}

// WithViewOnly switches the view-only display mode on or off. Toggling off
// restores the editable state from the pristine caller configuration.
func (c ChipField[T]) WithViewOnly(viewOnly, disableUnderline bool) ChipField[T] {
	c.viewOnly = viewOnly
	c.noUnderline = disableUnderline
	return c.applyConfig()
}

func (c ChipField[T]) applyConfig() ChipField[T] {
	cfg := field.ApplyViewMode(c.baseConfig, c.viewOnly, c.noUnderline)
	c.Config = cfg
	c.chips.ViewOnly = cfg.ReadOnly || cfg.Disabled
	c.combo = c.combo.WithConfig(cfg)
	return c
}

// Init implements tea.Model.
func (c ChipField[T]) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns updated state.
func (c ChipField[T]) Update(msg tea.Msg) (ChipField[T], tea.Cmd) {
	c.syncBound()

	if _, ok := msg.(chipFlashClearMsg); ok {
		c.chips, _ = c.chips.Update(msg)
		return c, nil
	}

	if c.Config.Disabled || c.Config.ReadOnly {
		return c, nil
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case ChipNavExitMsg:
		switch msg.Reason {
		case ChipNavExitTyping:
			// Forward the character to the combo input
			var cmd tea.Cmd
			c.combo, cmd = c.combo.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{msg.Character}})
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case ChipNavExitTab:
			return c, func() tea.Msg { return ChipFieldTabMsg{} }
		}
		return c, tea.Batch(cmds...)

	case ChipRemovedMsg[T]:
		// The navigation branch commits when the chip list shrinks, so by
		// the time this notification comes back through the program loop
		// the binding already holds the remaining sequence. The message is
		// informational for parent models; committing here again would
		// write a removal twice and run the transform twice.
		return c, nil

	case ComboFieldEnterSelectedMsg[T]:
		return c.handleSelection(msg.Option, false)

	case ComboFieldTabSelectedMsg[T]:
		return c.handleSelection(msg.Option, true)
	}

	// In chip nav mode, route to the chip list. A removal is committed
	// right away so the next sync does not resurrect the chip from the
	// still-unchanged bound value.
	if c.chips.InNavigationMode() {
		before := c.chips.Items()
		var cmd tea.Cmd
		c.chips, cmd = c.chips.Update(msg)
		if len(c.chips.Items()) != len(before) {
			if _, err := c.pipeline().Commit(field.ReasonRemove, field.Existings(c.chips.Items())); err != nil {
				return c, func() tea.Msg { return FieldErrorMsg{Err: err} }
			}
			c.syncAvailable()
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return c, tea.Batch(cmds...)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// ↑ enters chip nav when the input is empty (chips sit above input)
		if keyMsg.Type == tea.KeyUp &&
			c.combo.InputValue() == "" &&
			!c.combo.IsDropdownOpen() &&
			len(c.chips.Items()) > 0 {
			c.chips.EnterNavigation()
			return c, nil
		}

		if keyMsg.Type == tea.KeyTab {
			return c.handleTab()
		}

		if keyMsg.Type == tea.KeyCtrlX {
			return c.clearAll()
		}
	}

	var cmd tea.Cmd
	c.combo, cmd = c.combo.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return c, tea.Batch(cmds...)
}

// syncBound reconciles an externally written bound value into the store,
// chips and dropdown. Idempotent for unchanged values.
func (c *ChipField[T]) syncBound() {
	v := c.binding.Current()
	c.store.Reconcile(v)
	if !sameKeys(c.adapter, v.Items(), c.chips.Items()) {
		c.chips.SetItems(v.Items())
		c.syncAvailable()
	}
}

func (c ChipField[T]) handleSelection(opt field.Option[T], viaTab bool) (ChipField[T], tea.Cmd) {
	var cmds []tea.Cmd
	tabCmd := func() {
		if viaTab {
			cmds = append(cmds, func() tea.Msg { return ChipFieldTabMsg{} })
		}
	}

	// Duplicate existing selection: flash the chip, commit nothing.
	if item, ok := opt.Item(); ok && c.chips.Contains(item) {
		c.chips.Flash(item)
		c.combo.SetText("")
		cmds = append(cmds, FlashCmd())
		tabCmd()
		return c, tea.Batch(cmds...)
	}

	reason := field.ReasonSelect
	if opt.IsProvisional() {
		reason = field.ReasonCreate
	}
	payload := append(field.Existings(c.binding.Current().Items()), opt)
	v, err := c.pipeline().Commit(reason, payload)
	if err != nil {
		return c, func() tea.Msg { return FieldErrorMsg{Err: err} }
	}

	c.chips.SetItems(v.Items())
	c.combo.SetText("")
	c.syncAvailable()

	items := v.Items()
	if len(items) > 0 {
		added := items[len(items)-1]
		isNew := opt.IsProvisional()
		cmds = append(cmds, func() tea.Msg {
			return ChipFieldItemAddedMsg[T]{Item: added, IsNew: isNew}
		})
	}
	tabCmd()
	return c, tea.Batch(cmds...)
}

func (c ChipField[T]) handleTab() (ChipField[T], tea.Cmd) {
	// Dropdown open: forward Tab so the combo selects its highlight (this
	// keeps ghost-text completion correct); it comes back as a TabSelected
	// message which also advances focus.
	if c.combo.IsDropdownOpen() {
		var cmd tea.Cmd
		c.combo, cmd = c.combo.Update(tea.KeyMsg{Type: tea.KeyTab})
		return c, cmd
	}

	// Dropdown closed with pending text: add it as a chip before moving on.
	input := strings.TrimSpace(c.combo.InputValue())
	if input != "" {
		if opt, ok := c.optionForText(input); ok {
			return c.handleSelection(opt, true)
		}
	}

	return c, func() tea.Msg { return ChipFieldTabMsg{} }
}

// optionForText maps pending input to an option: an exact case-insensitive
// label match wins, otherwise free text becomes a provisional create.
func (c ChipField[T]) optionForText(input string) (field.Option[T], bool) {
	for _, item := range c.store.Options() {
		if strings.EqualFold(c.adapter.Label(item), input) {
			return field.Existing(item), true
		}
	}
	if c.combo.AllowNew {
		return field.ProvisionalCreate[T](input), true
	}
	return field.Option[T]{}, false
}

func (c ChipField[T]) clearAll() (ChipField[T], tea.Cmd) {
	if c.Config.DisableClearable {
		return c, nil
	}
	v, err := c.pipeline().Commit(field.ReasonClear, nil)
	if err != nil {
		return c, func() tea.Msg { return FieldErrorMsg{Err: err} }
	}
	c.chips.SetItems(v.Items())
	c.combo.SetText("")
	c.syncAvailable()
	return c, nil
}

func (c *ChipField[T]) pipeline() *field.Pipeline[T] {
	return &field.Pipeline[T]{
		Adapter:   c.adapter,
		Factory:   c.factory,
		Store:     c.store,
		Sink:      c.binding,
		Transform: c.transform,
		Multiple:  true,
	}
}

// syncAvailable narrows the dropdown to options not already selected.
func (c *ChipField[T]) syncAvailable() {
	selected := make(map[string]struct{})
	for _, item := range c.binding.Current().Items() {
		selected[c.adapter.Key(item)] = struct{}{}
	}
	var available []T
	for _, opt := range c.store.Options() {
		if _, taken := selected[c.adapter.Key(opt)]; !taken {
			available = append(available, opt)
		}
	}
	c.combo.SetOptions(available)
}

// View renders chips and input together, word-wrapped to the field width.
func (c ChipField[T]) View() string {
	viewOnly := c.Config.ReadOnly || c.Config.Disabled

	var elements []string
	chips := c.chips.RenderChips()
	if len(chips) == 0 {
		elements = append(elements, styleViewEmpty().Render("No items"))
	} else {
		elements = append(elements, chips...)
	}

	if !viewOnly {
		// Input box stays visible during chip nav for visual continuity
		elements = append(elements, c.combo.View())
	}

	return wrapStyled(elements, c.Width)
}

// Value returns the current bound value.
func (c ChipField[T]) Value() field.Value[T] {
	return c.binding.Current()
}

// SetOptions replaces the configured options.
func (c *ChipField[T]) SetOptions(options []T) {
	c.store.SetConfigured(options)
	c.syncAvailable()
}

// Store exposes the combined option store (for testing).
func (c ChipField[T]) Store() *field.Store[T] {
	return c.store
}

// Focus focuses the chip field.
func (c *ChipField[T]) Focus() tea.Cmd {
	c.focused = true
	return c.combo.Focus()
}

// Blur removes focus from the chip field.
func (c *ChipField[T]) Blur() {
	c.focused = false
	c.chips.Blur()
	c.combo.Blur()
}

// Focused returns whether the chip field is focused.
func (c ChipField[T]) Focused() bool {
	return c.focused
}

// InChipNavMode returns whether chip navigation is active.
func (c ChipField[T]) InChipNavMode() bool {
	return c.chips.InNavigationMode()
}

// IsDropdownOpen returns whether the dropdown is visible.
func (c ChipField[T]) IsDropdownOpen() bool {
	return c.combo.IsDropdownOpen()
}

// ChipCount returns the number of selected chips.
func (c ChipField[T]) ChipCount() int {
	return len(c.chips.Items())
}

// InputValue returns the current input text (for testing).
func (c ChipField[T]) InputValue() string {
	return c.combo.InputValue()
}

// FlashIndex returns the flash index (for testing).
func (c ChipField[T]) FlashIndex() int {
	return c.chips.FlashIndex()
}

func sameKeys[T any](adapter field.Adapter[T], a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if adapter.Key(a[i]) != adapter.Key(b[i]) {
			return false
		}
	}
	return true
}
