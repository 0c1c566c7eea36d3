package screen

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mking11/reque3sted/internal/profile"
)

// storeTimeout bounds a single store call issued from the screen.
const storeTimeout = 30 * time.Second

// runEffect turns a reducer effect into a tea.Cmd. The command runs
// the store call off the update loop via profile.ExecuteEffect and
// returns the completion event as a message. Superseded effects are
// not cancelled: when two loads race, the last completion to arrive
// wins.
func (m Model) runEffect(eff profile.Effect) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		return completionMsg{ev: profile.ExecuteEffect(ctx, m.store, eff)}
	}
}
