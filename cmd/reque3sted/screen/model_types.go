package screen

import (
	"github.com/Mking11/reque3sted/internal/profile"
)

// viewState determines which part of the screen is focused/active.
type viewState int

const (
	// promptView asks for a user ID to load.
	promptView viewState = iota
	// profileView shows the loaded profile with an editable name.
	profileView
)

// Messages for tea updates
type (
	// completionMsg carries an effect-completion event back into the
	// reducer. Produced by the commands in commands.go.
	completionMsg struct {
		ev profile.Event
	}
)
