package screen

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("reque3sted · profile"))
	b.WriteString("\n\n")

	if m.state.Err != "" {
		b.WriteString(m.styles.ErrorBanner.Render(m.state.Err))
		b.WriteString("\n\n")
	}

	switch m.view {
	case promptView:
		b.WriteString(m.styles.Title.Render("Load a profile"))
		b.WriteString("\n")
		b.WriteString(m.styles.Prompt.Render("ID: "))
		b.WriteString(m.idInput.View())
		b.WriteString("\n")
		if m.state.IsLoading {
			b.WriteString("\n")
			b.WriteString(m.spinner.View())
			b.WriteString(m.styles.Muted.Render(" loading..."))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("enter load · esc quit"))

	case profileView:
		b.WriteString(m.renderProfile())
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("ctrl+s save · ctrl+r reload · esc back"))
	}

	return b.String()
}

func (m Model) renderProfile() string {
	var b strings.Builder

	if m.state.IsLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" working..."))
		b.WriteString("\n\n")
	}

	u := m.state.User
	if u == nil {
		b.WriteString(m.styles.Muted.Render("No user found."))
		b.WriteString("\n")
		return b.String()
	}

	var card strings.Builder
	card.WriteString(m.styles.Label.Render("ID"))
	card.WriteString(m.styles.Value.Render(fmt.Sprintf("%d", u.ID)))
	card.WriteString("\n")
	card.WriteString(m.styles.Label.Render("Name"))
	card.WriteString(m.nameInput.View())
	card.WriteString("\n")
	card.WriteString(m.styles.Label.Render("Age"))
	card.WriteString(m.styles.Value.Render(fmt.Sprintf("%d", u.Age)))
	card.WriteString("\n")
	card.WriteString(m.styles.Label.Render("Gender"))
	card.WriteString(m.styles.Value.Render(u.Gender))

	b.WriteString(m.styles.Card.Render(card.String()))
	b.WriteString("\n")

	if m.state.IsSaved {
		b.WriteString(m.styles.SavedBadge.Render("saved"))
		b.WriteString("\n")
	}
	return b.String()
}
