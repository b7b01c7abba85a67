// Package app implements the interactive terminal client: a bubbletea
// program with a landing page, a loading screen, the movie page, the roast
// page and an error page.
package app

import (
	"context"

	"isitcinema/cmd/cinema/ui"
	"isitcinema/internal/animation"
	"isitcinema/internal/config"
	"isitcinema/internal/movie"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Page is one screen of the client.
type Page int

const (
	PageLanding Page = iota
	PageLoading
	PageMovie
	PageRoast
	PageError
)

func (p Page) String() string {
	switch p {
	case PageLanding:
		return "landing"
	case PageLoading:
		return "loading"
	case PageMovie:
		return "movie"
	case PageRoast:
		return "roast"
	case PageError:
		return "error"
	default:
		return "unknown"
	}
}

// User-facing failure text.
const (
	MsgMovieFailed = "Failed to fetch movie data"
	MsgRoastFailed = "Failed to fetch roast"
	MsgVibeFailed  = "Failed to get vibe check. Please try again."
	MsgVibeEmpty   = "Please enter a username"
	MsgLoading     = "Go to the lobby..."
	MsgVibeLoading = "Checking the vibes..."
)

// Backend is the subset of the API client the pages use.
type Backend interface {
	MovieDetails(ctx context.Context, film string) (movie.Details, error)
	Roast(ctx context.Context, username string) (string, error)
	Taste(ctx context.Context, film, username string) (string, error)
}

// landing focus ring
type landingFocus int

const (
	focusNone landingFocus = iota
	focusSearch
	focusMovieButton
	focusRoastButton
)

// movie page focus ring
type vibeFocus int

const (
	vibeFocusNone vibeFocus = iota
	vibeFocusInput
	vibeFocusSubmit
)

type vibeStatus int

const (
	vibeIdle vibeStatus = iota
	vibeLoading
	vibeDone
	vibeFailed
)

// Messages
type (
	// frameMsg signals that a running animation changed state.
	frameMsg struct{}

	movieLoadedMsg struct {
		seq     int
		details movie.Details
		err     error
	}

	roastLoadedMsg struct {
		seq  int
		text string
		err  error
	}

	tasteLoadedMsg struct {
		seq  int
		text string
		err  error
	}

	// ConfigReloadedMsg delivers a config reloaded from disk.
	ConfigReloadedMsg struct {
		Config *config.Config
	}
)

// Model is the bubbletea model for the whole client.
type Model struct {
	page   Page
	width  int
	height int

	cfg      *config.Config
	styles   ui.Styles
	markdown *ui.Markdown
	backend  Backend
	sched    animation.Scheduler

	// Animation frames are coalesced: runners do a non-blocking send.
	frames chan struct{}

	// Landing
	search      textinput.Model
	focus       landingFocus
	cycler      *animation.Cycler
	placeholder *animation.Runner[animation.CyclerState]

	// Loading
	spinner spinner.Model

	// In-flight page request. seq discards stale results.
	seq    int
	cancel context.CancelFunc

	// Movie
	details  movie.Details
	chart    movie.Chart
	viewport viewport.Model

	vibe       textinput.Model
	vibeFocus  vibeFocus
	vibeStatus vibeStatus
	vibeUser   string
	vibeResult string
	vibeErr    string
	vibeSeq    int
	vibeCancel context.CancelFunc

	// Roast
	roastUser  string
	nextScript *animation.Typewriter // latest configured machine
	typewriter *animation.Typewriter // machine behind reveal
	reveal     *animation.Runner[animation.RoastState]

	// Error
	errMsg string

	quitting bool
}
