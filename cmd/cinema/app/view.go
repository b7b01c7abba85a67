package app

import (
	"strings"

	"isitcinema/cmd/cinema/ui"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current page.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body, help string
	switch m.page {
	case PageLanding:
		body = m.viewLanding()
		help = "tab: focus • enter: go • ctrl+c: quit"
	case PageLoading:
		body = m.viewLoading()
		help = "esc: back"
	case PageMovie:
		body = m.viewMovie()
		help = "↑/↓: scroll • tab: vibe check • esc: back"
	case PageRoast:
		body = m.viewRoast()
		help = "esc: back"
	case PageError:
		body = m.viewError()
		help = "enter/esc: home"
	}

	return m.styles.Content.Render(body) + "\n" + m.styles.Footer.Render(help)
}

func (m Model) contentWidth() int {
	return ui.ContentWidth(m.width, m.cfg.UI.MaxWidth)
}

func (m Model) viewLanding() string {
	var sb strings.Builder
	sb.WriteString(ui.Logo(m.styles))
	sb.WriteString("\n\n")

	// The cycler text stands in for a placeholder until the box is used.
	field := m.search.View()
	if st := m.placeholder.State(); !st.Suspended && m.search.Value() == "" {
		field = m.styles.Placeholder.Render(st.DisplayText) + m.styles.Cursor.Render("▌")
	}
	box := m.styles.Input
	if m.focus == focusSearch {
		box = m.styles.InputFocused
	}
	sb.WriteString(box.Width(m.contentWidth() - 4).Render(field))
	sb.WriteString("\n")

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.RenderButton("Movie Summary", m.focus == focusMovieButton),
		" ",
		m.styles.RenderButton("Roast my letterboxd", m.focus == focusRoastButton),
	))
	return sb.String()
}

func (m Model) viewLoading() string {
	return m.spinner.View() + " " + m.styles.Subtitle.Render(MsgLoading)
}

// movieBody is the scrollable part of the movie page.
func (m Model) movieBody() string {
	d := m.details
	w := m.contentWidth()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(d.Title()))
	sb.WriteString("\n")
	if d.Director != "" {
		sb.WriteString(m.styles.Muted.Render("Directed by " + d.Director))
		sb.WriteString("\n")
	}
	if line := d.GenreLine(); line != "" {
		sb.WriteString(m.styles.Body.Render(line))
		sb.WriteString("\n")
	}
	if d.BackdropURL != "" {
		sb.WriteString(m.styles.Muted.Render("Backdrop: " + d.BackdropURL))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Heading.Render("Synopsis"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Body.Width(w).Render(d.Synopsis))
	sb.WriteString("\n")

	sb.WriteString(m.styles.Heading.Render("Letterboxd Take"))
	sb.WriteString("\n")
	sb.WriteString(m.markdown.Render(d.Review, w, m.styles.Theme.IsDark))
	sb.WriteString("\n")

	sb.WriteString(m.styles.Heading.Render("What people talk about"))
	sb.WriteString("\n")
	sb.WriteString(ui.RenderChart(m.styles, m.chart, w))
	return sb.String()
}

func (m *Model) syncViewport() {
	m.viewport.SetContent(m.movieBody())
}

func (m Model) viewMovie() string {
	var sb strings.Builder
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(m.contentWidth()))
	sb.WriteString("\n")

	sb.WriteString(m.styles.Heading.Render("Vibe check this movie"))
	sb.WriteString("\n")
	input := m.styles.Input
	if m.vibeFocus == vibeFocusInput {
		input = m.styles.InputFocused
	}
	submit := "Submit"
	if m.vibeStatus == vibeLoading {
		submit = "Checking..."
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		input.Render(m.vibe.View()),
		" ",
		m.styles.RenderButton(submit, m.vibeFocus == vibeFocusSubmit),
	))
	sb.WriteString("\n")

	switch {
	case m.vibeErr != "":
		sb.WriteString(m.styles.Error.Render(m.vibeErr))
	case m.vibeStatus == vibeLoading:
		sb.WriteString(m.spinner.View() + " " + m.styles.Muted.Render(MsgVibeLoading))
	case m.vibeStatus == vibeDone:
		sb.WriteString(m.styles.Bold.Render("Results for " + m.vibeUser))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Body.Width(m.contentWidth()).Render(m.vibeResult))
	}
	return sb.String()
}

func (m Model) viewRoast() string {
	st := m.reveal.State()
	static, animated := m.typewriter.Lines(st)

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("THE ROAST OF " + m.roastUser))
	sb.WriteString("\n\n")

	w := m.contentWidth()
	if static != "" {
		sb.WriteString(m.styles.Muted.Width(w).Render(static))
		sb.WriteString("\n\n")
	}

	text := animated
	if !st.Done {
		text += m.styles.Cursor.Render("▌")
	}
	if st.RevealComplete {
		sb.WriteString(m.styles.Roast.Width(w - 3).Render(text))
	} else {
		sb.WriteString(m.styles.Body.Width(w).Render(text))
	}

	if st.Waiting() {
		sb.WriteString("\n\n")
		sb.WriteString(m.spinner.View())
	}
	return sb.String()
}

func (m Model) viewError() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Error.Render("Error"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Body.Render(m.errMsg))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Bold.Render("This page got a 0% on Rotten Tomatoes"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("And trust us, that's not good. Try again later!"))
	return sb.String()
}
