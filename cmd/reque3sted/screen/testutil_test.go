package screen

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mking11/reque3sted/cmd/reque3sted/ui"
	"github.com/Mking11/reque3sted/internal/profile"
	"github.com/Mking11/reque3sted/internal/store"
	"github.com/Mking11/reque3sted/internal/types"
)

// newTestModel builds a screen model over an instant in-memory store
// preloaded with the demo fixtures.
func newTestModel() Model {
	mem := store.NewMemoryStore(store.NoLatency())
	mem.Preload(store.DemoUsers()...)
	return New(mem, ui.NewStyles(ui.LightTheme()))
}

// typeString feeds runes into the model one keypress at a time and
// returns the final model.
func typeString(m Model, s string) Model {
	for _, r := range s {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// press sends a single special key.
func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

// fetched builds the completion message for a successful load.
func fetched(u *types.User) tea.Msg {
	return completionMsg{ev: profile.UserFetched{User: u}}
}
