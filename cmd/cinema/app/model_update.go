package app

import (
	"context"
	"errors"
	"strings"

	"isitcinema/cmd/cinema/ui"
	"isitcinema/internal/animation"
	"isitcinema/internal/logging"
	"isitcinema/internal/movie"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// vibeFormHeight is the number of rows below the movie viewport.
const vibeFormHeight = 8

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		// The view reads runner state directly; just keep listening.
		return m, m.waitForFrame()

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case movieLoadedMsg:
		return m.handleMovieLoaded(msg)

	case roastLoadedMsg:
		return m.handleRoastLoaded(msg)

	case tasteLoadedMsg:
		return m.handleTasteLoaded(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			m.Shutdown()
			return m, tea.Quit
		}
		switch m.page {
		case PageLanding:
			return m.updateLanding(msg)
		case PageLoading:
			if msg.Type == tea.KeyEsc {
				m.enterLanding()
			}
			return m, nil
		case PageMovie:
			return m.updateMovie(msg)
		case PageRoast:
			if msg.Type == tea.KeyEsc || (msg.Type == tea.KeyEnter && m.reveal.State().Done) {
				m.enterLanding()
			}
			return m, nil
		case PageError:
			if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
				m.enterLanding()
			}
			return m, nil
		}
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	switch m.page {
	case PageLanding:
		m.search, cmd = m.search.Update(msg)
	case PageMovie:
		m.vibe, cmd = m.vibe.Update(msg)
	}
	return m, cmd
}

// busy reports whether the spinner should keep ticking.
func (m Model) busy() bool {
	switch m.page {
	case PageLoading:
		return true
	case PageRoast:
		return m.reveal != nil && !m.reveal.State().Done
	case PageMovie:
		return m.vibeStatus == vibeLoading
	}
	return false
}

func (m Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		return m, m.setLandingFocus((m.focus + 1) % 4)
	case tea.KeyShiftTab:
		return m, m.setLandingFocus((m.focus + 3) % 4)
	case tea.KeyEsc:
		return m, m.setLandingFocus(focusNone)
	case tea.KeyEnter:
		q := m.search.Value()
		if strings.TrimSpace(q) == "" {
			return m, nil
		}
		switch m.focus {
		case focusMovieButton:
			return m, m.startMovie(q)
		case focusRoastButton:
			return m, m.startRoast(q)
		default:
			if movie.LooksLikeFilm(q) {
				return m, m.startMovie(q)
			}
			return m, m.startRoast(q)
		}
	}

	var cmds []tea.Cmd
	if m.focus != focusSearch {
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
			return m, nil
		}
		cmds = append(cmds, m.setLandingFocus(focusSearch))
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// setLandingFocus moves keyboard focus. Focusing the search box freezes the
// placeholder; leaving it resumes the placeholder only when the box is empty.
func (m *Model) setLandingFocus(f landingFocus) tea.Cmd {
	m.focus = f
	suspended := m.placeholder.State().Suspended

	if f == focusSearch {
		if !suspended {
			m.placeholder.Dispatch(animation.Focus())
		}
		return m.search.Focus()
	}

	m.search.Blur()
	if suspended && m.search.Value() == "" {
		m.placeholder.Dispatch(animation.Blur())
	}
	return nil
}

func (m Model) updateMovie(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		if m.vibeFocus == vibeFocusInput {
			return m, m.setVibeFocus(vibeFocusSubmit)
		}
		return m, m.setVibeFocus(vibeFocusInput)
	case tea.KeyShiftTab:
		if m.vibeFocus == vibeFocusSubmit {
			return m, m.setVibeFocus(vibeFocusInput)
		}
		return m, m.setVibeFocus(vibeFocusSubmit)
	case tea.KeyEsc:
		if m.vibeFocus != vibeFocusNone {
			return m, m.setVibeFocus(vibeFocusNone)
		}
		m.enterLanding()
		return m, nil
	case tea.KeyEnter:
		if m.vibeFocus == vibeFocusNone {
			return m, m.setVibeFocus(vibeFocusInput)
		}
		cmd := m.submitVibe()
		if cmd == nil {
			return m, nil
		}
		return m, tea.Batch(cmd, m.spinner.Tick)
	}

	if m.vibeFocus == vibeFocusInput {
		if m.vibeStatus == vibeLoading {
			// The form is disabled while a check is running.
			return m, nil
		}
		var cmd tea.Cmd
		m.vibe, cmd = m.vibe.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) setVibeFocus(f vibeFocus) tea.Cmd {
	m.vibeFocus = f
	if f == vibeFocusInput {
		return m.vibe.Focus()
	}
	m.vibe.Blur()
	return nil
}

func (m Model) handleMovieLoaded(msg movieLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq || m.page != PageLoading {
		logging.UIDebug("Dropping stale movie result (seq=%d, current=%d)", msg.seq, m.seq)
		return m, nil
	}
	if msg.err != nil {
		logFetchError("movie details", msg.err)
		m.showError(MsgMovieFailed)
		return m, nil
	}
	m.showMovie(msg.details)
	return m, nil
}

func (m Model) handleRoastLoaded(msg roastLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq || m.page != PageRoast {
		logging.UIDebug("Dropping stale roast result (seq=%d, current=%d)", msg.seq, m.seq)
		return m, nil
	}
	if msg.err != nil {
		logFetchError("roast", msg.err)
		m.showError(MsgRoastFailed)
		return m, nil
	}
	m.reveal.Dispatch(animation.Data(msg.text))
	return m, nil
}

func (m Model) handleTasteLoaded(msg tasteLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.vibeSeq || m.page != PageMovie {
		return m, nil
	}
	if msg.err != nil {
		logFetchError("taste", msg.err)
		m.vibeStatus = vibeFailed
		m.vibeErr = MsgVibeFailed
		return m, nil
	}
	m.vibeStatus = vibeDone
	m.vibeResult = msg.text
	if strings.TrimSpace(m.vibeResult) == "" {
		m.vibeResult = movie.NoTaste
	}
	return m, nil
}

func logFetchError(what string, err error) {
	if errors.Is(err, context.Canceled) {
		logging.UIDebug("%s request cancelled", what)
		return
	}
	logging.UI("%s request failed: %v", what, err)
}

func (m *Model) resize(w, h int) {
	if w > 0 {
		m.width = w
	}
	if h > 0 {
		m.height = h
	}
	cw := ui.ContentWidth(m.width, m.cfg.UI.MaxWidth)
	m.search.Width = cw - 6
	m.viewport.Width = cw
	vh := m.height - vibeFormHeight - 4
	if vh < 5 {
		vh = 5
	}
	m.viewport.Height = vh
	if m.page == PageMovie {
		m.syncViewport()
	}
}
