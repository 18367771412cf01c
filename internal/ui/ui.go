package ui

import (
	"fmt"

	"github.com/amdecker/tapedeck/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the candidate picker state.
type Model struct {
	list     list.Model
	selected *models.Track
	quitting bool
	width    int
	height   int
	help     help.Model
	keys     keyMap
}

// NewModel creates a picker over an ambiguous resolution's candidates,
// preserving catalog order.
func NewModel(candidates []models.Track) *Model {
	items := make([]list.Item, 0, len(candidates))
	for _, track := range candidates {
		items = append(items, trackItem{track: track})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Pick a track"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return &Model{
		list: l,
		help: help.New(),
		keys: newKeyMap(),
	}
}

// Init implements tea.Model; the picker needs no initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the picker state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.enter):
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				track := item.track
				m.selected = &track
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.quit):
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the candidate list with contextual help.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	return fmt.Sprintf("%s\n%s\n%s",
		styles.title.Render("Multiple matches found"),
		m.list.View(),
		styles.help.Render(m.help.View(m.keys)),
	)
}

// Selected returns the chosen track, or nil when the picker was cancelled.
func (m *Model) Selected() *models.Track {
	return m.selected
}

// Pick runs the picker program and returns the user's selection.
func Pick(candidates []models.Track) (*models.Track, error) {
	final, err := tea.NewProgram(NewModel(candidates), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run picker: %w", err)
	}

	if m, ok := final.(*Model); ok {
		return m.Selected(), nil
	}

	return nil, nil
}
