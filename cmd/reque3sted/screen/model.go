// Package screen provides the interactive TUI for the reque3sted
// profile editor. The Bubble Tea update loop feeds user gestures into
// the pure reducer in internal/profile and executes the resulting
// store effects as commands; Bubble Tea's serialized message handling
// guarantees every event applies against the current state.
package screen

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mking11/reque3sted/cmd/reque3sted/ui"
	"github.com/Mking11/reque3sted/internal/logging"
	"github.com/Mking11/reque3sted/internal/profile"
	"github.com/Mking11/reque3sted/internal/store"
)

// Model is the main model for the profile screen.
type Model struct {
	// UI components
	idInput   textinput.Model
	nameInput textinput.Model
	spinner   spinner.Model
	styles    ui.Styles

	// State
	view     viewState
	state    profile.UIState
	loadedID int64
	width    int
	height   int
	quitting bool

	// Backend
	store store.UserStore
}

// New creates the screen model over the given store.
func New(st store.UserStore, styles ui.Styles) Model {
	id := textinput.New()
	id.Placeholder = "user id"
	id.CharLimit = 12
	id.Width = 20
	id.Focus()

	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64
	name.Width = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		idInput:   id,
		nameInput: name,
		spinner:   sp,
		styles:    styles,
		view:      promptView,
		state:     profile.Initial(),
		store:     st,
	}
}

// State exposes the current reducer state, mainly for tests.
func (m Model) State() profile.UIState {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	logging.UI("profile screen started")
	return textinput.Blink
}

// dispatch runs ev through the reducer and schedules any resulting
// effect plus the spinner tick that accompanies a loading phase.
func (m Model) dispatch(ev profile.Event) (Model, tea.Cmd) {
	next, eff := profile.Apply(m.state, ev)
	m.state = next

	if eff == nil {
		return m, nil
	}
	return m, tea.Batch(m.runEffect(eff), m.spinner.Tick)
}

// Run starts the interactive profile screen and blocks until the user
// quits.
func Run(st store.UserStore, theme ui.Theme) error {
	p := tea.NewProgram(New(st, ui.NewStyles(theme)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("profile screen failed: %w", err)
	}
	return nil
}
