package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"isitcinema/internal/animation"
	"isitcinema/internal/config"
	"isitcinema/internal/movie"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresBackend(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestLandingStartsWithFirstPhrase(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{})

	assert.Equal(t, PageLanding, m.Page())
	st := m.placeholder.State()
	assert.Equal(t, animation.ModePausing, st.Mode)
	assert.Equal(t, animation.DefaultPlaceholders[0], st.DisplayText)

	view := m.View()
	assert.Contains(t, view, "Is it Cinema?")
	assert.Contains(t, view, animation.DefaultPlaceholders[0])
	assert.Contains(t, view, "Movie Summary")
	assert.Contains(t, view, "Roast my letterboxd")
}

func TestPlaceholderAnimates(t *testing.T) {
	m, sched := newTestModel(t, &fakeBackend{})
	first := animation.DefaultPlaceholders[0]

	sched.Advance(animation.DefaultPlaceholderPause)
	assert.Equal(t, animation.ModeDeleting, m.placeholder.State().Mode)

	sched.Advance(animation.DefaultTypingSpeed / 2)
	assert.Equal(t, first[:len(first)-1], m.placeholder.State().DisplayText)
	assert.Contains(t, m.View(), first[:len(first)-1])
}

func TestFocusFreezesPlaceholder(t *testing.T) {
	m, sched := newTestModel(t, &fakeBackend{})
	sched.Advance(animation.DefaultPlaceholderPause + time.Second)
	before := m.placeholder.State()

	m = update(t, m, runes("h"))
	assert.Equal(t, focusSearch, m.focus)
	assert.True(t, m.placeholder.State().Suspended)
	assert.False(t, m.placeholder.Armed())

	sched.Advance(10 * time.Second)
	frozen := m.placeholder.State()
	assert.Equal(t, before.DisplayText, frozen.DisplayText)
	assert.Equal(t, before.Mode, frozen.Mode)

	// Leaving a non-empty box keeps the placeholder frozen.
	m = update(t, m, key(tea.KeyEsc))
	assert.Equal(t, focusNone, m.focus)
	assert.True(t, m.placeholder.State().Suspended)

	// Clearing the box and leaving it resumes from where it stopped.
	m = update(t, m, key(tea.KeyTab))
	require.Equal(t, focusSearch, m.focus)
	m = update(t, m, key(tea.KeyBackspace))
	require.Empty(t, m.search.Value())
	m = update(t, m, key(tea.KeyEsc))

	resumed := m.placeholder.State()
	assert.False(t, resumed.Suspended)
	assert.True(t, m.placeholder.Armed())
	assert.Equal(t, before.DisplayText, resumed.DisplayText)
}

func TestEmptyInputNeverNavigates(t *testing.T) {
	b := &fakeBackend{}
	m, _ := newTestModel(t, b)

	m, cmd := updateCmd(t, m, key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, PageLanding, m.Page())

	m = update(t, m, runes("   "))
	for i := 0; i < 3; i++ {
		m = update(t, m, key(tea.KeyTab))
		m = update(t, m, key(tea.KeyEnter))
		assert.Equal(t, PageLanding, m.Page())
	}
	assert.Empty(t, b.calls)
}

func TestMovieFlow(t *testing.T) {
	b := &fakeBackend{details: heat}
	m, _ := newTestModel(t, b)
	landing := m.placeholder

	m = update(t, m, runes("heat"))
	m = update(t, m, key(tea.KeyTab))
	require.Equal(t, focusMovieButton, m.focus)

	m, cmd := updateCmd(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, PageLoading, m.Page())
	assert.True(t, landing.Stopped(), "leaving landing stops the placeholder")
	assert.Contains(t, m.View(), MsgLoading)

	msg := fetchMovie(b, context.Background(), m.seq, "heat")()
	m = update(t, m, msg)
	require.Equal(t, PageMovie, m.Page())
	assert.Equal(t, []string{"movie:heat"}, b.calls)

	view := m.View()
	assert.Contains(t, view, "Heat (1995)")
	assert.Contains(t, view, "Directed by Michael Mann")
	assert.Contains(t, view, "Crime, Drama")
	assert.Contains(t, view, "Backdrop: https://img.example/heat.jpg")
	assert.Contains(t, view, "Letterboxd Take")
	assert.Contains(t, view, "Story")
	assert.Contains(t, view, "Vibe check this movie")
	assert.Equal(t, float64(99), m.chart.UpperBound())
}

func TestMovieFailureShowsError(t *testing.T) {
	for name, err := range map[string]error{
		"network": errors.New("connection refused"),
		"http":    errors.New("http 500"),
	} {
		t.Run(name, func(t *testing.T) {
			m, _ := newTestModel(t, &fakeBackend{})
			m = update(t, m, runes("letterboxd.com/film/heat/"))
			m = update(t, m, key(tea.KeyEnter))

			m = update(t, m, movieLoadedMsg{seq: m.seq, err: err})
			require.Equal(t, PageError, m.Page())
			view := m.View()
			assert.Contains(t, view, MsgMovieFailed)
			assert.Contains(t, view, "This page got a 0% on Rotten Tomatoes")

			m = update(t, m, key(tea.KeyEsc))
			assert.Equal(t, PageLanding, m.Page())
		})
	}
}

func TestStaleResultIsDropped(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{})
	m = update(t, m, runes("letterboxd.com/film/heat/"))
	m = update(t, m, key(tea.KeyEnter))
	stale := m.seq

	m = update(t, m, key(tea.KeyEsc))
	require.Equal(t, PageLanding, m.Page())

	m = update(t, m, movieLoadedMsg{seq: stale, details: heat})
	assert.Equal(t, PageLanding, m.Page())
}

func TestLeavingPageCancelsRequest(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{})
	ctx, _ := m.newRequest()
	require.NoError(t, ctx.Err())

	m.enterLanding()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestRoastFlow(t *testing.T) {
	b := &fakeBackend{roast: "Short roast."}
	m, sched := newTestModel(t, b)

	m = update(t, m, runes("testuser"))
	m, cmd := updateCmd(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.Equal(t, PageRoast, m.Page())
	assert.Contains(t, m.View(), "THE ROAST OF TESTUSER")

	// The scripted phrases play out, then the reveal waits for data.
	for i := 0; !m.reveal.State().Waiting(); i++ {
		require.Less(t, i, 1000)
		require.True(t, sched.Step())
	}
	assert.False(t, m.reveal.Armed())
	assert.Contains(t, m.View(), animation.DefaultScript.Negative)

	m = update(t, m, fetchRoast(b, context.Background(), m.seq, "testuser")())
	assert.Equal(t, []string{"roast:testuser"}, b.calls)

	for i := 0; !m.reveal.State().Done; i++ {
		require.Less(t, i, 100)
		require.True(t, sched.Step())
	}
	st := m.reveal.State()
	assert.Equal(t, "Short roast.", st.DisplayText)
	assert.Contains(t, m.View(), "Short roast.")
	assert.Equal(t, 0, sched.Pending())

	m = update(t, m, key(tea.KeyEnter))
	assert.Equal(t, PageLanding, m.Page())
}

func TestRoastFailureShowsError(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{})
	m = update(t, m, runes("testuser"))
	m = update(t, m, key(tea.KeyEnter))
	reveal := m.reveal

	m = update(t, m, roastLoadedMsg{seq: m.seq, err: errors.New("boom")})
	require.Equal(t, PageError, m.Page())
	assert.Contains(t, m.View(), MsgRoastFailed)
	assert.True(t, reveal.Stopped())
}

func TestVibeCheck(t *testing.T) {
	b := &fakeBackend{details: heat, taste: "You will love it."}
	m, _ := newTestModel(t, b)
	m = toMovie(t, m, heat)
	require.Equal(t, PageMovie, m.Page())

	// Enter focuses the form; an empty submit is rejected.
	m = update(t, m, key(tea.KeyEnter))
	require.Equal(t, vibeFocusInput, m.vibeFocus)
	m, cmd := updateCmd(t, m, key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), MsgVibeEmpty)

	m = update(t, m, runes("someone"))
	m, cmd = updateCmd(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, vibeLoading, m.vibeStatus)
	assert.Contains(t, m.View(), MsgVibeLoading)
	assert.Contains(t, m.View(), "Checking...")

	msg := fetchTaste(b, context.Background(), m.vibeSeq, m.details.FilmURL, "someone")()
	m = update(t, m, msg)
	assert.Equal(t, vibeDone, m.vibeStatus)
	view := m.View()
	assert.Contains(t, view, "Results for someone")
	assert.Contains(t, view, "You will love it.")
	assert.Contains(t, b.calls, "taste:https://letterboxd.com/film/heat/:someone")
}

func TestVibeCheckFailure(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{})
	m = toMovie(t, m, heat)
	m = update(t, m, key(tea.KeyEnter))
	m = update(t, m, runes("someone"))
	m = update(t, m, key(tea.KeyEnter))

	m = update(t, m, tasteLoadedMsg{seq: m.vibeSeq, err: errors.New("http 502")})
	assert.Equal(t, PageMovie, m.Page(), "vibe failures stay inline")
	assert.Contains(t, m.View(), MsgVibeFailed)
}

func TestVibeCheckEmptyTaste(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{})
	m = toMovie(t, m, heat)
	m = update(t, m, key(tea.KeyEnter))
	m = update(t, m, runes("someone"))
	m = update(t, m, key(tea.KeyEnter))

	m = update(t, m, tasteLoadedMsg{seq: m.vibeSeq, text: ""})
	assert.Equal(t, movie.NoTaste, m.vibeResult)
}

func TestMovieEscReturnsToFreshLanding(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{})
	m = toMovie(t, m, heat)

	m = update(t, m, key(tea.KeyEsc))
	require.Equal(t, PageLanding, m.Page())
	st := m.placeholder.State()
	assert.Equal(t, 0, st.PhraseIndex)
	assert.Equal(t, animation.DefaultPlaceholders[0], st.DisplayText)
	assert.Empty(t, m.search.Value())
}

func TestCtrlCQuits(t *testing.T) {
	m, sched := newTestModel(t, &fakeBackend{})
	landing := m.placeholder

	m, cmd := updateCmd(t, m, key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, landing.Stopped())
	assert.Equal(t, 0, sched.Pending())
	assert.Empty(t, m.View())
}

func TestConfigReloadAppliesChartPolicy(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{})
	m = toMovie(t, m, heat)
	require.Equal(t, movie.PolicyPadded, m.chart.Policy)

	cfg := config.DefaultConfig()
	cfg.Chart.AxisPolicy = string(movie.PolicyPercent)
	cfg.UI.Theme = config.ThemeDark
	m = update(t, m, ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, movie.PolicyPercent, m.chart.Policy)
	assert.True(t, m.styles.Theme.IsDark)
	assert.Contains(t, m.View(), "85%")
}

func TestFrameNotifierCoalesces(t *testing.T) {
	frames := make(chan struct{}, 1)
	notify := frameNotifier[animation.CyclerState](frames)

	notify(animation.CyclerState{})
	notify(animation.CyclerState{})
	assert.Len(t, frames, 1)
}

func TestFrameMsgKeepsListening(t *testing.T) {
	m, _ := newTestModel(t, &fakeBackend{})
	_, cmd := updateCmd(t, m, frameMsg{})
	assert.NotNil(t, cmd)
}
