package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stefanclaw/wwt/internal/store"
	"github.com/stefanclaw/wwt/internal/update"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	s.Set("ls", "list files")
	s.Set("cat", "concatenate and print")

	m := New(Options{Store: s})
	newM, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return newM.(Model)
}

func TestSelectOnEnter(t *testing.T) {
	m := newTestModel(t)

	newM, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := newM.(Model)

	// Entries are listed sorted by name; the cursor starts on the first one.
	if model.Choice() != "cat" {
		t.Errorf("Choice() = %q, want cat", model.Choice())
	}
	if cmd == nil {
		t.Fatal("enter should quit the picker")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter should produce a quit message")
	}
}

func TestCtrlCQuitsWithoutChoice(t *testing.T) {
	m := newTestModel(t)

	newM, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model := newM.(Model)

	if model.Choice() != "" {
		t.Errorf("Choice() = %q, want empty after ctrl+c", model.Choice())
	}
	if cmd == nil {
		t.Fatal("ctrl+c should quit the picker")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce a quit message")
	}
	if model.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestFilterMatchesDescriptions(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	s.Set("grep", "search text")

	item := entryItem{entry: s.Entries()[0]}
	if item.FilterValue() != "search text" {
		t.Errorf("FilterValue() = %q, want the description", item.FilterValue())
	}
	if item.Title() != "grep" {
		t.Errorf("Title() = %q, want grep", item.Title())
	}
}

func TestNoUpdateCheckForDevBuilds(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	m := New(Options{Store: s, Version: "dev", CheckUpdate: true})
	if m.Init() != nil {
		t.Error("dev builds should not check for updates")
	}

	m = New(Options{Store: s, Version: "1.2.3", CheckUpdate: false})
	if m.Init() != nil {
		t.Error("update check disabled in config should not run")
	}
}

func TestUpdateNotice(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(UpdateCheckMsg{
		Result: &update.Result{CurrentVersion: "1.0.0", LatestVersion: "1.1.0", UpdateAvailable: true},
	})
	if cmd == nil {
		t.Error("an available update should surface a status message")
	}

	_, cmd = m.Update(UpdateCheckMsg{
		Result: &update.Result{CurrentVersion: "1.1.0", LatestVersion: "1.1.0"},
	})
	if cmd != nil {
		t.Error("no notice expected when already up to date")
	}
}
