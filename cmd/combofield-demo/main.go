// Demo program to visually test the single-select ComboField component.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"fieldkit/internal/config"
	"fieldkit/internal/debug"
	"fieldkit/internal/field"
	"fieldkit/internal/ui"
	"fieldkit/internal/ui/theme"
)

type person struct {
	ID   string
	Name string
}

func personAdapter() field.Adapter[person] {
	return field.Adapter[person]{
		Key:   func(p person) string { return p.ID },
		Label: func(p person) string { return p.Name },
	}
}

const helpMarkdown = `# ComboField Demo

| Key | Action |
| --- | ------ |
| ↓ | open dropdown |
| type | filter options |
| Enter / Tab | select highlighted |
| Esc | close dropdown |
| ctrl+x | clear selection |
| y | copy selected id |
| t | cycle theme |
| ? | toggle this help |
| q | quit |

Typing a name that matches nothing offers a *create* row; selecting it
runs the new value through the item factory before it is committed.
`

type model struct {
	combo   ui.ComboField[person]
	binding *field.Binding[person]

	// errs mirrors the nested validation map a surrounding form would own.
	errs map[string]any

	status   string
	showHelp bool
	helpText string
	quit     bool
}

func initialModel(fuzzyRank bool) model {
	options := []person{
		{ID: uuid.NewString(), Name: "Alice"},
		{ID: uuid.NewString(), Name: "Bob"},
		{ID: uuid.NewString(), Name: "Carlos"},
		{ID: uuid.NewString(), Name: "Diana"},
		{ID: uuid.NewString(), Name: "Edward"},
		{ID: uuid.NewString(), Name: "Fiona"},
		{ID: uuid.NewString(), Name: "George"},
	}

	binding := field.NewBinding(field.None[person]())

	newPerson := func(text string) person {
		return person{ID: uuid.NewString(), Name: text}
	}

	// Names are normalized before every commit.
	titleCase := func(v field.Value[person]) field.Value[person] {
		p, ok := v.Item()
		if !ok {
			return v
		}
		p.Name = strings.ToUpper(p.Name[:1]) + p.Name[1:]
		return field.Single(p)
	}

	combo := ui.NewComboField(personAdapter(), options).
		Bind(binding).
		WithPlaceholder("Select or type name...").
		WithWidth(config.GetInt(config.KeyFieldWidth)).
		WithMaxVisible(config.GetInt(config.KeyFieldMaxVisible)).
		WithFreeSolo(newPerson, "New assignee: %s").
		WithTransform(titleCase)
	if fuzzyRank {
		combo = combo.WithFilter(ui.FuzzyFilter[person])
	}
	combo.Focus()

	return model{
		combo:   combo,
		binding: binding,
	}
}

func (m model) Init() tea.Cmd {
	return m.combo.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit

		case "q":
			if !m.combo.IsDropdownOpen() && m.combo.InputValue() == "" {
				m.quit = true
				return m, tea.Quit
			}

		case "?":
			m.showHelp = !m.showHelp
			if m.showHelp && m.helpText == "" {
				m.helpText = renderHelp()
			}
			return m, nil

		case "t":
			if !m.combo.IsDropdownOpen() && m.combo.InputValue() == "" {
				name := theme.CycleTheme()
				m.status = "theme: " + name
				return m, nil
			}

		case "y":
			if p, ok := m.binding.Current().Item(); ok && !m.combo.IsDropdownOpen() {
				if err := clipboard.WriteAll(p.ID); err == nil {
					m.status = "copied " + p.ID
				} else {
					m.status = "clipboard unavailable"
				}
				return m, nil
			}
		}

	case ui.ComboFieldEnterSelectedMsg[person]:
		if p, ok := m.binding.Current().Item(); ok {
			debug.Logf("selected %s (%s)", p.Name, p.ID)
			m.status = "selected " + p.Name
			if msg.Option.IsProvisional() {
				m.status += " (new)"
			}
		}
		m.errs = nil

	case ui.ComboFieldClearedMsg[person]:
		m.status = "cleared"
		m.errs = nil

	case ui.FieldErrorMsg:
		m.errs = map[string]any{"assignee": msg.Err}
	}

	var cmd tea.Cmd
	m.combo, cmd = m.combo.Update(msg)
	if errMsg, ok := field.Lookup(m.errs, "assignee"); ok {
		m.combo.SetError(errMsg)
	} else {
		m.combo.SetError("")
	}
	return m, cmd
}

func renderHelp() string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimSpace(out)
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
	if m.showHelp {
		return m.helpText + helpStyle.Render("\n\n? to close")
	}

	s := titleStyle.Render("ComboField Demo")
	s += "\n\n"
	s += "Assignee:\n"
	s += m.combo.View()
	s += "\n\n"

	if m.status != "" {
		s += statusStyle.Render(m.status) + "\n"
	}

	s += helpStyle.Render("\n↓ open • type to filter • Enter select • ctrl+x clear • ? help • q quit")
	return s
}

func main() {
	debugFlag := flag.Bool("debug", false, "write debug log")
	fuzzyFlag := flag.Bool("fuzzy", false, "rank dropdown options with fuzzy matching")
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

	p := tea.NewProgram(initialModel(*fuzzyFlag))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
