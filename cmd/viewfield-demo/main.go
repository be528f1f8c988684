// Demo program for the view-only display mode. Toggling view mode at
// runtime shows the same bound values flipping between editable widgets
// and inline read-only rendering.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fieldkit/internal/config"
	"fieldkit/internal/field"
	"fieldkit/internal/ui"
	"fieldkit/internal/ui/theme"
)

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

type model struct {
	combo        ui.ComboField[tag]
	chips        ui.ChipField[tag]
	comboBinding *field.Binding[tag]
	chipBinding  *field.Binding[tag]

	viewOnly  bool
	underline bool
	focusChip bool
	quit      bool
}

func initialModel() model {
	options := []tag{
		{ID: "1", Name: "backend"},
		{ID: "2", Name: "frontend"},
		{ID: "3", Name: "api"},
		{ID: "4", Name: "bug"},
	}

	comboBinding := field.NewBinding(field.Single(options[0]))
	chipBinding := field.NewBinding(field.Multi(options[1:3]))

	width := config.GetInt(config.KeyFieldWidth)
	underline := config.GetBool(config.KeyViewOnlyUnderline)
	viewOnly := config.GetBool(config.KeyViewOnly)

	m := model{
		comboBinding: comboBinding,
		chipBinding:  chipBinding,
		viewOnly:     viewOnly,
		underline:    underline,
	}
	m.combo = ui.NewComboField(tagAdapter(), options).
		Bind(comboBinding).
		WithWidth(width)
	m.chips = ui.NewChipField(tagAdapter(), options, chipBinding).
		WithWidth(width)
	m.applyMode()
	m.combo.Focus()
	return m
}

func (m *model) applyMode() {
	m.combo = m.combo.WithViewOnly(m.viewOnly, !m.underline)
	m.chips = m.chips.WithViewOnly(m.viewOnly, !m.underline)
}

func (m model) Init() tea.Cmd {
	return nil
}

// Messages are routed to the focused widget only. Both fields carry the
// same item type, so fanning selection messages out to both would commit
// one field's selection into the other.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.viewOnly || (!m.combo.IsDropdownOpen() && m.combo.InputValue() == "") {
				m.quit = true
				return m, tea.Quit
			}

		case "v":
			if m.viewOnly || m.combo.InputValue() == "" {
				m.viewOnly = !m.viewOnly
				m.applyMode()
				return m, nil
			}

		case "u":
			if m.viewOnly {
				m.underline = !m.underline
				m.applyMode()
				return m, nil
			}

		case "tab":
			// Tab in the idle combo advances focus; the chip field emits
			// ChipFieldTabMsg itself after handling pending text.
			if !m.focusChip && !m.combo.IsDropdownOpen() {
				m.focusTo(true)
				return m, nil
			}
		}

	case ui.ChipFieldTabMsg:
		m.focusTo(false)
		return m, nil

	case ui.ComboFieldTabSelectedMsg[tag]:
		// From the chip field's inner combo this is part of a selection and
		// must reach the chip field; from the standalone combo it is just
		// the signal to advance focus.
		if !m.focusChip {
			m.focusTo(true)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focusChip {
		m.chips, cmd = m.chips.Update(msg)
	} else {
		m.combo, cmd = m.combo.Update(msg)
	}
	return m, cmd
}

func (m *model) focusTo(chip bool) {
	m.focusChip = chip
	if chip {
		m.combo.Blur()
		m.chips.Focus()
	} else {
		m.chips.Blur()
		m.combo.Focus()
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

func (m model) View() string {
	if m.quit {
		return ""
	}

	mode := "edit"
	if m.viewOnly {
		mode = "view-only"
		if !m.underline {
			mode += ", no underline"
		}
	}

	s := titleStyle.Render("View Mode Demo") + "  " + labelStyle.Render("("+mode+")")
	s += "\n\n"
	s += labelStyle.Render("Category:") + "\n"
	s += m.combo.View()
	s += "\n\n"
	s += labelStyle.Render("Labels:") + "\n"
	s += m.chips.View()
	s += "\n"

	s += helpStyle.Render("\nv toggle view-only • u toggle underline (view-only) • q quit")
	return s
}

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if name := config.GetString(config.KeyTheme); name != "" {
		_ = theme.SetTheme(name)
	}

	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
