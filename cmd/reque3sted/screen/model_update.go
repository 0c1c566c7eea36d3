package screen

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mking11/reque3sted/internal/profile"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEsc:
			if m.view == profileView {
				// Back to the ID prompt; the screen session state
				// persists so a reload keeps the last error cleared
				// behavior intact.
				m.view = promptView
				m.idInput.Focus()
				m.nameInput.Blur()
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}

		switch m.view {
		case promptView:
			if msg.Type == tea.KeyEnter {
				return m.handleLoadSubmit()
			}
			var cmd tea.Cmd
			m.idInput, cmd = m.idInput.Update(msg)
			return m, cmd

		case profileView:
			switch msg.Type {
			case tea.KeyCtrlS:
				// Save the currently loaded (possibly edited) user.
				return m.dispatch(profile.SaveUser{})

			case tea.KeyCtrlR:
				// Reload the same record.
				if m.loadedID != 0 {
					return m.dispatch(profile.LoadUser{UserID: m.loadedID})
				}
				return m, nil
			}

			// Everything else edits the name field. Each change is an
			// UpdateUserName event so IsSaved tracks edits exactly.
			if m.state.IsLoading {
				return m, nil
			}
			before := m.nameInput.Value()
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			if after := m.nameInput.Value(); after != before {
				var dispatchCmd tea.Cmd
				m, dispatchCmd = m.dispatch(profile.UpdateUserName{Name: after})
				return m, tea.Batch(cmd, dispatchCmd)
			}
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state.IsLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case completionMsg:
		var cmd tea.Cmd
		m, cmd = m.dispatch(msg.ev)

		// A finished fetch lands on the profile view with the name
		// editor synced to whatever came back.
		if fetched, ok := msg.ev.(profile.UserFetched); ok {
			m.view = profileView
			m.idInput.Blur()
			if fetched.User != nil {
				m.nameInput.SetValue(fetched.User.Name)
				m.nameInput.CursorEnd()
			} else {
				m.nameInput.SetValue("")
			}
			m.nameInput.Focus()
		}
		if _, ok := msg.ev.(profile.FetchFailed); ok {
			// Stay on the prompt so the user can retry; a failed
			// reload from the profile view routes back here too, so
			// focus must follow the view.
			m.view = promptView
			m.idInput.Focus()
			m.nameInput.Blur()
		}
		return m, cmd
	}

	return m, nil
}

// handleLoadSubmit parses the ID prompt and kicks off a load.
func (m Model) handleLoadSubmit() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.idInput.Value())
	if raw == "" {
		return m, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Not a number; keep the prompt as-is. Presence is the only
		// check the screen performs.
		return m, nil
	}
	m.loadedID = id
	return m.dispatch(profile.LoadUser{UserID: id})
}
