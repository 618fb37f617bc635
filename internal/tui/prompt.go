// Package tui provides terminal user interface components for devserver
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Choice represents a port-conflict resolution choice
type Choice int

const (
	// ChoiceKill terminates the occupying process and retries.
	ChoiceKill Choice = iota
	// ChoiceScan uses the next available port instead.
	ChoiceScan
	// ChoiceExit aborts startup.
	ChoiceExit
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// conflictItem implements list.Item for a resolution option
type conflictItem struct {
	choice Choice
	label  string
	detail string
}

func (i conflictItem) Title() string       { return i.label }
func (i conflictItem) Description() string { return i.detail }
func (i conflictItem) FilterValue() string { return i.label }

var conflictItems = []conflictItem{
	{ChoiceKill, "Kill existing server and start new one", "Sends SIGTERM to the process on the port"},
	{ChoiceScan, "Find and use an alternative port", "Scans forward for the next free port"},
	{ChoiceExit, "Exit", "Leave the existing server alone"},
}

// promptModel is the bubbletea model for the conflict prompt
type promptModel struct {
	list   list.Model
	port   int
	choice Choice
	chosen bool
}

func newPromptModel(port int) promptModel {
	items := make([]list.Item, len(conflictItems))
	for i, it := range conflictItems {
		items[i] = it
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 60, 12)
	l.Title = fmt.Sprintf("Port %d is already in use", port)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = titleStyle

	return promptModel{list: l, port: port, choice: ChoiceExit}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "1", "2", "3":
			m.choice = conflictItems[msg.String()[0]-'1'].choice
			m.chosen = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(conflictItem); ok {
				m.choice = item.choice
				m.chosen = true
				return m, tea.Quit
			}

		case "q", "esc", "ctrl+c":
			m.choice = ChoiceExit
			m.chosen = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.chosen {
		return ""
	}

	help := helpStyle.Render("[1-3] Choose  [enter] Select  [q] Exit")
	return m.list.View() + "\n" + help
}

// ResolveConflict presents the three-way conflict prompt and returns the
// operator's choice.
func ResolveConflict(port int) (Choice, error) {
	p := tea.NewProgram(newPromptModel(port))
	final, err := p.Run()
	if err != nil {
		return ChoiceExit, err
	}

	m, ok := final.(promptModel)
	if !ok || !m.chosen {
		return ChoiceExit, nil
	}
	return m.choice, nil
}
