package app

import (
	"context"
	"strings"

	"isitcinema/cmd/cinema/ui"
	"isitcinema/internal/animation"
	"isitcinema/internal/config"
	"isitcinema/internal/logging"
	"isitcinema/internal/movie"

	tea "github.com/charmbracelet/bubbletea"
)

// leavePage stops the current page's animation and cancels its requests.
// Results that arrive afterwards are dropped by the seq checks.
func (m *Model) leavePage() {
	if m.placeholder != nil {
		m.placeholder.Stop()
	}
	if m.reveal != nil {
		m.reveal.Stop()
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.vibeCancel != nil {
		m.vibeCancel()
		m.vibeCancel = nil
	}
	m.seq++
	m.vibeSeq++
}

func (m *Model) setPage(p Page) {
	if m.page != p {
		logging.UI("Page %s -> %s", m.page, p)
	}
	m.page = p
}

// enterLanding resets the landing page and starts a fresh placeholder cycle.
func (m *Model) enterLanding() {
	m.leavePage()
	m.setPage(PageLanding)

	m.search.SetValue("")
	m.search.Blur()
	m.focus = focusNone

	m.placeholder = animation.NewRunner[animation.CyclerState](m.cycler, m.sched, m.cycler.Initial())
	m.placeholder.OnChange(frameNotifier[animation.CyclerState](m.frames))
	m.placeholder.Start()
	logging.AnimationDebug("Placeholder cycle started (%d phrases)", len(m.cycler.Phrases()))
}

// newRequest cancels any previous page request and returns a context for
// the next one.
func (m *Model) newRequest() (context.Context, int) {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.seq++
	return ctx, m.seq
}

// startMovie shows the loading page and fetches details for query.
func (m *Model) startMovie(query string) tea.Cmd {
	m.leavePage()
	m.setPage(PageLoading)
	ctx, seq := m.newRequest()
	logging.UIDebug("Fetching movie %q (seq=%d)", query, seq)
	return tea.Batch(m.spinner.Tick, fetchMovie(m.backend, ctx, seq, query))
}

// startRoast enters the roast page, starts the reveal and fetches the roast
// alongside it.
func (m *Model) startRoast(query string) tea.Cmd {
	m.leavePage()
	m.setPage(PageRoast)
	m.roastUser = ui.RoastTitle(query)
	m.typewriter = m.nextScript

	m.reveal = animation.NewRunner[animation.RoastState](m.typewriter, m.sched, m.typewriter.Initial())
	m.reveal.OnChange(frameNotifier[animation.RoastState](m.frames))
	m.reveal.Start()
	logging.AnimationDebug("Roast reveal started for %s", m.roastUser)

	ctx, seq := m.newRequest()
	logging.UIDebug("Fetching roast for %q (seq=%d)", query, seq)
	return tea.Batch(m.spinner.Tick, fetchRoast(m.backend, ctx, seq, query))
}

func (m *Model) showError(msg string) {
	m.leavePage()
	m.setPage(PageError)
	m.errMsg = msg
}

// showMovie switches to the movie page with loaded details.
func (m *Model) showMovie(d movie.Details) {
	m.setPage(PageMovie)
	m.details = d
	m.chart = movie.NewChart(m.cfg.GetAxisPolicy(), d.Aspects)

	m.vibe.SetValue("")
	m.vibe.Blur()
	m.vibeFocus = vibeFocusNone
	m.vibeStatus = vibeIdle
	m.vibeUser = ""
	m.vibeResult = ""
	m.vibeErr = ""

	m.viewport.GotoTop()
	m.syncViewport()
}

// submitVibe validates the vibe form and fetches the taste match.
func (m *Model) submitVibe() tea.Cmd {
	if m.vibeStatus == vibeLoading {
		return nil
	}
	user := strings.TrimSpace(m.vibe.Value())
	if user == "" {
		m.vibeErr = MsgVibeEmpty
		return nil
	}

	if m.vibeCancel != nil {
		m.vibeCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.vibeCancel = cancel
	m.vibeSeq++

	m.vibeStatus = vibeLoading
	m.vibeUser = user
	m.vibeErr = ""
	m.vibeResult = ""
	logging.UIDebug("Vibe check %q for %s (seq=%d)", user, m.details.FilmURL, m.vibeSeq)
	return fetchTaste(m.backend, ctx, m.vibeSeq, m.details.FilmURL, user)
}

// applyConfig swaps in a reloaded config. Theme and chart policy apply
// immediately; animation settings apply the next time their page starts.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.cfg = cfg
	m.styles = ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	m.spinner.Style = m.styles.Spinner

	if c, err := cfg.NewCycler(); err == nil {
		m.cycler = c
	} else {
		logging.ConfigError("Keeping placeholder animation: %v", err)
	}
	if tw, err := cfg.NewTypewriter(); err == nil {
		m.nextScript = tw
	} else {
		logging.ConfigError("Keeping roast animation: %v", err)
	}

	if m.page == PageMovie {
		m.chart = movie.NewChart(cfg.GetAxisPolicy(), m.details.Aspects)
		m.syncViewport()
	}
	m.resize(m.width, m.height)
}

func fetchMovie(b Backend, ctx context.Context, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		d, err := b.MovieDetails(ctx, query)
		return movieLoadedMsg{seq: seq, details: d, err: err}
	}
}

func fetchRoast(b Backend, ctx context.Context, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		text, err := b.Roast(ctx, query)
		return roastLoadedMsg{seq: seq, text: text, err: err}
	}
}

func fetchTaste(b Backend, ctx context.Context, seq int, filmURL, user string) tea.Cmd {
	return func() tea.Msg {
		text, err := b.Taste(ctx, filmURL, user)
		return tasteLoadedMsg{seq: seq, text: text, err: err}
	}
}
