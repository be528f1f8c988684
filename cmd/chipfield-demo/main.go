// Demo program to visually test the multi-select ChipField component.
// Labels are loaded from and persisted to a SQLite store, so items created
// through free-text entry survive restarts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fieldkit/internal/config"
	"fieldkit/internal/debug"
	"fieldkit/internal/field"
	"fieldkit/internal/labelstore"
	"fieldkit/internal/ui"
	"fieldkit/internal/ui/theme"
)

func labelAdapter() field.Adapter[labelstore.Label] {
	return field.Adapter[labelstore.Label]{
		Key:   func(l labelstore.Label) string { return l.ID },
		Label: func(l labelstore.Label) string { return l.Name },
	}
}

type model struct {
	chips   ui.ChipField[labelstore.Label]
	binding *field.Binding[labelstore.Label]
	store   *labelstore.Store

	status string
	quit   bool
}

func initialModel(store *labelstore.Store, options []labelstore.Label) model {
	binding := field.NewBinding(field.Multi[labelstore.Label](nil))

	newLabel := func(text string) labelstore.Label {
		// Persist immediately; the committed item carries the stored id.
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		l, err := store.Add(ctx, text)
		if err != nil {
			debug.Logf("persist label %q: %v", text, err)
			return labelstore.Label{ID: "unsaved:" + text, Name: text}
		}
		return l
	}

	chips := ui.NewChipField(labelAdapter(), options, binding).
		WithWidth(config.GetInt(config.KeyFieldWidth)).
		WithMaxVisible(config.GetInt(config.KeyFieldMaxVisible)).
		WithPlaceholder("Add label...").
		WithFreeSolo(newLabel, "New label: %s")
	chips.Focus()

	return model{
		chips:   chips,
		binding: binding,
		store:   store,
	}
}

func (m model) Init() tea.Cmd {
	return m.chips.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit

		case "q":
			if !m.chips.IsDropdownOpen() && !m.chips.InChipNavMode() && m.chips.InputValue() == "" {
				m.quit = true
				return m, tea.Quit
			}
		}

	case ui.ChipFieldItemAddedMsg[labelstore.Label]:
		m.status = "added " + msg.Item.Name
		if msg.IsNew {
			m.status += " (saved)"
		}

	case ui.ChipRemovedMsg[labelstore.Label]:
		m.status = "removed " + msg.Item.Name

	case ui.FieldErrorMsg:
		m.status = "error: " + msg.Err.Error()
	}

	var cmd tea.Cmd
	m.chips, cmd = m.chips.Update(msg)
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))
)

func (m model) View() string {
	if m.quit {
		return ""
	}

	s := titleStyle.Render("ChipField Demo")
	s += "\n\n"
	s += "Labels:\n"
	s += m.chips.View()
	s += "\n\n"

	s += fmt.Sprintf("Selected: %d\n", m.binding.Current().Len())
	if m.status != "" {
		s += statusStyle.Render(m.status) + "\n"
	}

	s += helpStyle.Render("\n↓ open • ↑ chip nav • Backspace remove • ctrl+x clear all • q quit")
	return s
}

func defaultLabelsPath() string {
	if p := config.GetString(config.KeyLabelsPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "labels.db"
	}
	return filepath.Join(home, ".fieldkit", "labels.db")
}

func main() {
	debugFlag := flag.Bool("debug", false, "write debug log")
	dbFlag := flag.String("db", "", "label database path (overrides config)")
	flag.Parse()

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "debug init: %v\n", err)
	}
	defer debug.Close()

	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if name := config.GetString(config.KeyTheme); name != "" {
		_ = theme.SetTheme(name)
	}

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = defaultLabelsPath()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create db directory: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	store, err := labelstore.Open(ctx, dbPath)
	if err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "open label store: %v\n", err)
		os.Exit(1)
	}
	if err := store.Seed(ctx, []string{"backend", "frontend", "api", "bug", "docs"}); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "seed labels: %v\n", err)
		os.Exit(1)
	}
	options, err := store.List(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load labels: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close()
	}()

	p := tea.NewProgram(initialModel(store, options))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
