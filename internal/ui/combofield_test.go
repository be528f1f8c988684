package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"fieldkit/internal/field"
)

// tag is the item type used across the ui tests.
type tag struct {
	ID   string
	Name string
}

func tagAdapter() field.Adapter[tag] {
	return field.Adapter[tag]{
		Key:   func(t tag) string { return t.ID },
		Label: func(t tag) string { return t.Name },
	}
}

func testTags() []tag {
	return []tag{
		{ID: "1", Name: "Alice"},
		{ID: "2", Name: "Bob"},
		{ID: "3", Name: "Carlos"},
	}
}

func newTag(text string) tag {
	return tag{ID: "new-" + text, Name: text}
}

// collectMsgs executes a command tree and returns the produced messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, collectMsgs(sub)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func typeString[T any](c ComboField[T], s string) (ComboField[T], tea.Cmd) {
	var cmd tea.Cmd
	for _, r := range s {
		c, cmd = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return c, cmd
}

func TestNewComboField(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		c := NewComboField(tagAdapter(), nil)
		if c.Width != 40 {
			t.Errorf("expected default width 40, got %d", c.Width)
		}
		if c.MaxVisible != 5 {
			t.Errorf("expected default MaxVisible 5, got %d", c.MaxVisible)
		}
		if c.AllowNew {
			t.Error("expected AllowNew to be false by default")
		}
		if c.state != ComboFieldIdle {
			t.Errorf("expected initial state ComboFieldIdle, got %v", c.state)
		}
		if c.focused {
			t.Error("expected focused to be false initially")
		}
	})

	t.Run("WithOptions", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags())
		if got := len(c.store.Options()); got != 3 {
			t.Errorf("expected 3 options, got %d", got)
		}
		if len(c.filtered) != 3 {
			t.Errorf("expected 3 filtered options, got %d", len(c.filtered))
		}
	})
}

func TestComboFieldBuilders(t *testing.T) {
	t.Run("WithPlaceholder", func(t *testing.T) {
		c := NewComboField(tagAdapter(), nil).WithPlaceholder("Select...")
		if c.Placeholder != "Select..." {
			t.Errorf("expected placeholder 'Select...', got %s", c.Placeholder)
		}
	})

	t.Run("WithWidth", func(t *testing.T) {
		c := NewComboField(tagAdapter(), nil).WithWidth(60)
		if c.Width != 60 {
			t.Errorf("expected width 60, got %d", c.Width)
		}
	})

	t.Run("WithMaxVisible", func(t *testing.T) {
		c := NewComboField(tagAdapter(), nil).WithMaxVisible(10)
		if c.MaxVisible != 10 {
			t.Errorf("expected MaxVisible 10, got %d", c.MaxVisible)
		}
	})

	t.Run("WithFreeSolo", func(t *testing.T) {
		c := NewComboField(tagAdapter(), nil).WithFreeSolo(newTag, "New tag: %s")
		if !c.AllowNew {
			t.Error("expected AllowNew to be true")
		}
		if c.NewItemLabel != "New tag: %s" {
			t.Errorf("expected NewItemLabel 'New tag: %%s', got %s", c.NewItemLabel)
		}
	})
}

func TestComboFieldBind(t *testing.T) {
	t.Run("SeedsDisplayFromValue", func(t *testing.T) {
		b := field.NewBinding(field.Single(tag{ID: "2", Name: "Bob"}))
		c := NewComboField(tagAdapter(), testTags()).Bind(b)
		if c.InputValue() != "Bob" {
			t.Errorf("expected input 'Bob', got %q", c.InputValue())
		}
	})

	t.Run("ValueOutsideConfiguredOptionsStaysSelectable", func(t *testing.T) {
		ghost := tag{ID: "99", Name: "Legacy"}
		b := field.NewBinding(field.Single(ghost))
		c := NewComboField(tagAdapter(), testTags()).Bind(b)

		if c.InputValue() != "Legacy" {
			t.Errorf("expected input 'Legacy', got %q", c.InputValue())
		}
		if !c.store.Contains(ghost) {
			t.Error("expected bound value to be reconciled into the option store")
		}
		// It appears after the configured options.
		opts := c.store.Options()
		if opts[len(opts)-1].ID != "99" {
			t.Errorf("expected discovered option last, got %+v", opts)
		}
	})
}

func TestComboFieldStateTransitions(t *testing.T) {
	t.Run("IdleToBrowsing_OnDownArrow", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags())
		c.Focus()

		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyDown})

		if c.state != ComboFieldBrowsing {
			t.Errorf("expected state ComboFieldBrowsing, got %v", c.state)
		}
		if len(c.filtered) != 3 {
			t.Errorf("expected 3 filtered options (full list), got %d", len(c.filtered))
		}
	})

	t.Run("IdleToFiltering_OnTyping", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags())
		c.Focus()

		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

		if c.state != ComboFieldFiltering {
			t.Errorf("expected state ComboFieldFiltering, got %v", c.state)
		}
	})

	t.Run("EscClosesDropdown", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags())
		c.Focus()
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyDown})

		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyEsc})

		if c.state != ComboFieldIdle {
			t.Errorf("expected state ComboFieldIdle after Esc, got %v", c.state)
		}
	})

	t.Run("TypingFiltersOptions", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags())
		c.Focus()

		c, _ = typeString(c, "bo")

		if len(c.filtered) != 1 {
			t.Fatalf("expected 1 filtered option for 'bo', got %d", len(c.filtered))
		}
		if got := field.OptionLabel(tagAdapter(), c.filtered[0]); got != "Bob" {
			t.Errorf("expected 'Bob', got %q", got)
		}
	})
}

func TestComboFieldSelection(t *testing.T) {
	t.Run("EnterCommitsHighlightedToBoundValue", func(t *testing.T) {
		b := field.NewBinding(field.None[tag]())
		c := NewComboField(tagAdapter(), testTags()).Bind(b)
		c.Focus()

		c, _ = typeString(c, "ali")
		c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})

		item, ok := b.Current().Item()
		if !ok || item.ID != "1" {
			t.Fatalf("expected bound value Alice, got %+v (ok=%v)", item, ok)
		}
		if c.InputValue() != "Alice" {
			t.Errorf("expected input reset to 'Alice', got %q", c.InputValue())
		}
		if c.state != ComboFieldIdle {
			t.Errorf("expected state ComboFieldIdle after selection, got %v", c.state)
		}

		msgs := collectMsgs(cmd)
		found := false
		for _, msg := range msgs {
			if sel, ok := msg.(ComboFieldEnterSelectedMsg[tag]); ok {
				found = true
				if got, _ := sel.Option.Item(); got.ID != "1" {
					t.Errorf("expected selected option Alice, got %+v", got)
				}
			}
		}
		if !found {
			t.Error("expected ComboFieldEnterSelectedMsg")
		}
	})

	t.Run("TabSelectionEmitsTabMsg", func(t *testing.T) {
		b := field.NewBinding(field.None[tag]())
		c := NewComboField(tagAdapter(), testTags()).Bind(b)
		c.Focus()

		c, _ = typeString(c, "car")
		_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyTab})

		var tabbed bool
		for _, msg := range collectMsgs(cmd) {
			if _, ok := msg.(ComboFieldTabSelectedMsg[tag]); ok {
				tabbed = true
			}
		}
		if !tabbed {
			t.Error("expected ComboFieldTabSelectedMsg")
		}
		if item, ok := b.Current().Item(); !ok || item.Name != "Carlos" {
			t.Errorf("expected Carlos committed, got %+v", item)
		}
	})

	t.Run("SelectingReplacesPreviousSingleValue", func(t *testing.T) {
		b := field.NewBinding(field.Single(tag{ID: "1", Name: "Alice"}))
		c := NewComboField(tagAdapter(), testTags()).Bind(b)
		c.Focus()

		c, _ = typeString(c, "bob")
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyEnter})

		item, _ := b.Current().Item()
		if item.ID != "2" {
			t.Errorf("expected Bob to replace Alice, got %+v", item)
		}
		if b.Current().Len() != 1 {
			t.Errorf("expected single value, got len %d", b.Current().Len())
		}
	})

	t.Run("UnboundSelectionOnlySurfacesOption", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags())
		c.Focus()

		c, cmd := typeString(c, "ali")
		c, cmd = c.Update(tea.KeyMsg{Type: tea.KeyEnter})
		_ = cmd

		if !c.Value().IsNone() {
			t.Error("unbound field must not accumulate a value")
		}
		if c.InputValue() != "Alice" {
			t.Errorf("expected input 'Alice', got %q", c.InputValue())
		}
	})
}

func TestComboFieldFreeSolo(t *testing.T) {
	t.Run("CreateRowAppearsForUnmatchedText", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags()).WithFreeSolo(newTag, "New tag: %s")
		c.Focus()

		c, _ = typeString(c, "zed")

		if len(c.filtered) != 1 {
			t.Fatalf("expected only the create row, got %d options", len(c.filtered))
		}
		if !c.filtered[0].IsProvisional() {
			t.Error("expected a provisional create row")
		}
	})

	t.Run("NoCreateRowForExactMatch", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags()).WithFreeSolo(newTag, "New tag: %s")
		c.Focus()

		c, _ = typeString(c, "alice")

		for _, opt := range c.filtered {
			if opt.IsProvisional() {
				t.Error("exact label match must suppress the create row")
			}
		}
	})

	t.Run("EnterOnCreateRowCommitsNewItem", func(t *testing.T) {
		b := field.NewBinding(field.None[tag]())
		c := NewComboField(tagAdapter(), testTags()).
			WithFreeSolo(newTag, "New tag: %s").
			Bind(b)
		c.Focus()

		c, _ = typeString(c, "Zed")
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyEnter})

		item, ok := b.Current().Item()
		if !ok {
			t.Fatal("expected a committed value")
		}
		if item.ID != "new-Zed" || item.Name != "Zed" {
			t.Errorf("expected factory item {new-Zed Zed}, got %+v", item)
		}
		// The created item joins the option store.
		if !c.store.Contains(item) {
			t.Error("expected created item registered in the store")
		}
	})

	t.Run("FreeSoloWithoutFactoryReportsConfigurationError", func(t *testing.T) {
		b := field.NewBinding(field.None[tag]())
		c := NewComboField(tagAdapter(), testTags()).Bind(b)
		c.AllowNew = true // misconfigured: no item factory
		c.Focus()

		c, _ = typeString(c, "zed")
		_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})

		var errMsg *FieldErrorMsg
		for _, msg := range collectMsgs(cmd) {
			if em, ok := msg.(FieldErrorMsg); ok {
				errMsg = &em
			}
		}
		if errMsg == nil {
			t.Fatal("expected FieldErrorMsg")
		}
		if !b.Current().IsNone() {
			t.Error("failed resolution must not commit anything")
		}
	})
}

func TestComboFieldClear(t *testing.T) {
	t.Run("CtrlXClearsBoundValue", func(t *testing.T) {
		b := field.NewBinding(field.Single(tag{ID: "1", Name: "Alice"}))
		c := NewComboField(tagAdapter(), testTags()).Bind(b)
		c.Focus()

		c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

		if !b.Current().IsNone() {
			t.Error("expected cleared bound value")
		}
		if c.InputValue() != "" {
			t.Errorf("expected empty input, got %q", c.InputValue())
		}
		var cleared bool
		for _, msg := range collectMsgs(cmd) {
			if _, ok := msg.(ComboFieldClearedMsg[tag]); ok {
				cleared = true
			}
		}
		if !cleared {
			t.Error("expected ComboFieldClearedMsg")
		}
	})

	t.Run("DisableClearableBlocksCtrlX", func(t *testing.T) {
		b := field.NewBinding(field.Single(tag{ID: "1", Name: "Alice"}))
		c := NewComboField(tagAdapter(), testTags()).
			WithConfig(field.WidgetConfig{}.WithDisableClearable(true)).
			Bind(b)
		c.Focus()

		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

		if b.Current().IsNone() {
			t.Error("disableClearable must keep the value")
		}
		if c.InputValue() != "Alice" {
			t.Errorf("expected input unchanged, got %q", c.InputValue())
		}
	})
}

func TestComboFieldViewOnly(t *testing.T) {
	t.Run("KeysNeverMutateBoundValue", func(t *testing.T) {
		b := field.NewBinding(field.Single(tag{ID: "1", Name: "Alice"}))
		c := NewComboField(tagAdapter(), testTags()).
			Bind(b).
			WithViewOnly(true, false)
		c.Focus()

		c, _ = typeString(c, "bob")
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyEnter})
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

		item, ok := b.Current().Item()
		if !ok || item.Name != "Alice" {
			t.Errorf("view-only field mutated the bound value: %+v", item)
		}
		if c.state != ComboFieldIdle {
			t.Errorf("view-only field must stay idle, got %v", c.state)
		}
	})

	t.Run("ExplicitClearableOverrideSurvivesViewOnly", func(t *testing.T) {
		cfg := field.WidgetConfig{}.WithDisableClearable(false)
		got := field.ApplyViewMode(cfg, true, false)
		if got.DisableClearable {
			t.Error("explicit caller override must win over the view-only default")
		}
	})

	t.Run("ToggleOffRestoresEditableState", func(t *testing.T) {
		b := field.NewBinding(field.None[tag]())
		c := NewComboField(tagAdapter(), testTags()).
			Bind(b).
			WithViewOnly(true, false).
			WithViewOnly(false, false)
		c.Focus()

		if c.Config.ReadOnly || c.Config.Disabled {
			t.Errorf("config still forced after toggling off: %+v", c.Config)
		}
		if c.Config.Variant != field.VariantOutlined {
			t.Error("expected the outlined variant back")
		}
		if c.Config.HideTrailingAction {
			t.Error("trailing action must come back in edit mode")
		}

		c, _ = typeString(c, "al")
		if c.State() != ComboFieldFiltering {
			t.Error("field must accept input again after leaving view-only")
		}
	})

	t.Run("UnderlineComesBackAfterToggle", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags()).
			WithViewOnly(true, true).
			WithViewOnly(true, false)
		if c.Config.HideUnderline {
			t.Error("underline must return once its suppression is dropped")
		}
	})

	t.Run("CallerConfigSurvivesRoundTrip", func(t *testing.T) {
		cfg := field.WidgetConfig{}.WithDisableClearable(true)
		c := NewComboField(tagAdapter(), testTags()).
			WithConfig(cfg).
			WithViewOnly(true, false).
			WithViewOnly(false, false)
		if c.Config != cfg {
			t.Errorf("caller config lost in the round trip: %+v", c.Config)
		}
	})
}

func TestComboFieldSyncBound(t *testing.T) {
	t.Run("ExternalWriteRefreshesDisplay", func(t *testing.T) {
		b := field.NewBinding(field.Single(tag{ID: "1", Name: "Alice"}))
		c := NewComboField(tagAdapter(), testTags()).Bind(b)
		c.Focus()

		// Value is written from outside the component.
		b.Commit(field.Single(tag{ID: "3", Name: "Carlos"}))

		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyLeft})

		if c.InputValue() != "Carlos" {
			t.Errorf("expected display refreshed to 'Carlos', got %q", c.InputValue())
		}
	})

	t.Run("ExternalDiscoveredItemJoinsStore", func(t *testing.T) {
		b := field.NewBinding(field.None[tag]())
		c := NewComboField(tagAdapter(), testTags()).Bind(b)
		c.Focus()

		ext := tag{ID: "42", Name: "External"}
		b.Commit(field.Single(ext))
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyLeft})

		if !c.store.Contains(ext) {
			t.Error("expected externally written item reconciled into store")
		}
	})
}

func TestComboFieldGhostText(t *testing.T) {
	t.Run("PrefixMatchShowsCompletion", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags())
		c.Focus()

		c, _ = typeString(c, "Al")

		if got := c.GhostText(); got != "ice" {
			t.Errorf("expected ghost text 'ice', got %q", got)
		}
	})

	t.Run("NoGhostForNonPrefixMatch", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags())
		c.Focus()

		c, _ = typeString(c, "li") // substring match, not prefix

		if c.HasGhostText() {
			t.Errorf("expected no ghost text, got %q", c.GhostText())
		}
	})

	t.Run("NoGhostForCreateRow", func(t *testing.T) {
		c := NewComboField(tagAdapter(), testTags()).WithFreeSolo(newTag, "New tag: %s")
		c.Focus()

		c, _ = typeString(c, "zz")

		if c.HasGhostText() {
			t.Error("provisional create row must not produce ghost text")
		}
	})
}

func TestComboFieldTransform(t *testing.T) {
	t.Run("AppliedOnceBeforeCommit", func(t *testing.T) {
		calls := 0
		upper := func(v field.Value[tag]) field.Value[tag] {
			calls++
			item, ok := v.Item()
			if !ok {
				return v
			}
			item.Name = strings.ToUpper(item.Name)
			return field.Single(item)
		}

		b := field.NewBinding(field.None[tag]())
		c := NewComboField(tagAdapter(), testTags()).
			WithTransform(upper).
			Bind(b)
		c.Focus()

		c, _ = typeString(c, "ali")
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyEnter})

		if calls != 1 {
			t.Errorf("expected transform called once, got %d", calls)
		}
		item, _ := b.Current().Item()
		if item.Name != "ALICE" {
			t.Errorf("expected transformed label 'ALICE', got %q", item.Name)
		}
	})
}
