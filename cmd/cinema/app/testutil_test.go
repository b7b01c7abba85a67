package app

import (
	"context"
	"sync"
	"testing"

	"isitcinema/internal/animation"
	"isitcinema/internal/config"
	"isitcinema/internal/movie"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// fakeBackend returns canned results and records calls.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	details    movie.Details
	detailsErr error
	roast      string
	roastErr   error
	taste      string
	tasteErr   error
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) MovieDetails(ctx context.Context, film string) (movie.Details, error) {
	f.record("movie:" + film)
	return f.details, f.detailsErr
}

func (f *fakeBackend) Roast(ctx context.Context, username string) (string, error) {
	f.record("roast:" + username)
	return f.roast, f.roastErr
}

func (f *fakeBackend) Taste(ctx context.Context, film, username string) (string, error) {
	f.record("taste:" + film + ":" + username)
	return f.taste, f.tasteErr
}

var heat = movie.Details{
	Name:        "Heat",
	Director:    "Michael Mann",
	Year:        "1995",
	Genres:      []string{"Crime", "Drama"},
	BackdropURL: "https://img.example/heat.jpg",
	Synopsis:    "A group of professional bank robbers start to feel the heat.",
	Review:      "Cinema.",
	Aspects:     []movie.Aspect{{Label: "Story", Positive: 85, Negative: 90}},
	FilmURL:     "https://letterboxd.com/film/heat/",
}

// newTestModel builds a model on a virtual clock with a sized window.
func newTestModel(t *testing.T, b *fakeBackend) (Model, *animation.ManualScheduler) {
	t.Helper()
	t.Setenv("CINEMA_DARK_MODE", "")
	sched := animation.NewManualScheduler()
	m, err := New(Options{Config: config.DefaultConfig(), Backend: b, Scheduler: sched})
	require.NoError(t, err)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})
	return m, sched
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := updateCmd(t, m, msg)
	return next
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update must return app.Model")
	return nm, cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

// toMovie drives the landing page into the movie page with d loaded.
func toMovie(t *testing.T, m Model, d movie.Details) Model {
	t.Helper()
	m = update(t, m, runes("letterboxd.com/film/heat/"))
	m, cmd := updateCmd(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.Equal(t, PageLoading, m.Page())
	return update(t, m, movieLoadedMsg{seq: m.seq, details: d})
}
