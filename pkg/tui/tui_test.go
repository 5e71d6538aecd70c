package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/james-see/midipatterns/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestMenuItems(t *testing.T) {
	m := New(nil, t.TempDir())

	titles := make([]string, len(m.items))
	for i, it := range m.items {
		titles[i] = it.Title
	}
	assert.Equal(t, []string{"All generators", "drums", "chords", "arpeggio", "velocity-triad", "Exit"}, titles)
	assert.Contains(t, m.items[4].Description, "not yet implemented")
}

func TestMenuNavigation(t *testing.T) {
	m := New(nil, t.TempDir())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.menuIndex)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.menuIndex)
	assert.Contains(t, m.View(), "chords")
}

func TestGenerateFlow(t *testing.T) {
	base := t.TempDir()
	m := New(nil, base)
	m.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	// pick "arpeggio"
	for i := 0; i < 3; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateFolder, m.state)
	assert.Equal(t, "arpeggio", m.selected.Title)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateGenerating, m.state)
	require.NotNil(t, cmd)
	assert.Equal(t, filepath.Join(base, "music_2024-01-02_03-04-05"), m.folder)

	msg := m.performGeneration()()
	done, ok := msg.(generationDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	next, _ := m.Update(done)
	m = next.(Model)
	assert.Equal(t, StateResult, m.state)
	assert.Contains(t, m.View(), "arpeggio.mid (32 notes)")

	_, err := os.Stat(filepath.Join(m.folder, "arpeggio.mid"))
	assert.NoError(t, err)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateMenu, m.state)
}

func TestFolderEscape(t *testing.T) {
	m := New(nil, t.TempDir())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateFolder, m.state)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateMenu, m.state)
}

func TestResultShowsPlaceholder(t *testing.T) {
	base := t.TempDir()
	m := New(nil, base)
	m.selected = m.items[4]
	m.folder = filepath.Join(base, "triad")

	done := m.performGeneration()().(generationDoneMsg)
	require.NoError(t, done.err)

	next, _ := m.Update(done)
	view := next.(Model).View()
	assert.True(t, strings.Contains(view, "velocity-triad: not yet implemented"))
}

func TestExit(t *testing.T) {
	m := New(nil, t.TempDir())
	m.menuIndex = len(m.items) - 1

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
