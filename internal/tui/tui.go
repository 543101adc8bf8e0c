// Package tui implements the interactive entry picker.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stefanclaw/wwt/internal/store"
	"github.com/stefanclaw/wwt/internal/update"
)

// Options configures the picker.
type Options struct {
	Store       *store.Store
	Version     string
	CheckUpdate bool
}

// UpdateCheckMsg carries the result of a background update check.
type UpdateCheckMsg struct {
	Result *update.Result
	Err    error
}

// entryItem adapts a store entry to the list. Filtering runs against the
// description, the same field Store.Find matches on.
type entryItem struct {
	entry store.Entry
}

func (i entryItem) Title() string       { return i.entry.Name }
func (i entryItem) Description() string { return i.entry.Description }
func (i entryItem) FilterValue() string { return i.entry.Description }

// Model is the Bubble Tea model for the picker.
type Model struct {
	options  Options
	list     list.Model
	choice   string
	quitting bool
}

// New creates a picker over all store entries.
func New(opts Options) Model {
	entries := opts.Store.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = selectedTitleStyle
	d.Styles.SelectedDesc = selectedDescStyle

	l := list.New(items, d, 0, 0)
	l.Title = "wwt - what was that?"
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.StatusMessageLifetime = 10 * time.Second

	return Model{options: opts, list: l}
}

func (m Model) Init() tea.Cmd {
	// Background update check (only for release builds)
	if m.options.CheckUpdate && m.options.Version != "" && m.options.Version != "dev" {
		return m.checkForUpdate()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			// While typing a filter, enter applies it; the list handles that.
			if m.list.FilterState() == list.Filtering {
				break
			}
			if item, ok := m.list.SelectedItem().(entryItem); ok {
				m.choice = item.entry.Name
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case UpdateCheckMsg:
		if msg.Err == nil && msg.Result != nil && msg.Result.UpdateAvailable {
			notice := fmt.Sprintf("Update available: v%s (run wwt --update)", msg.Result.LatestVersion)
			return m, m.list.NewStatusMessage(statusMessageStyle.Render(notice))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return docStyle.Render(m.list.View())
}

// Choice returns the name of the selected entry, or "" if nothing was chosen.
func (m Model) Choice() string { return m.choice }

func (m Model) checkForUpdate() tea.Cmd {
	version := m.options.Version
	return func() tea.Msg {
		res, err := update.Check(context.Background(), version)
		return UpdateCheckMsg{Result: res, Err: err}
	}
}
