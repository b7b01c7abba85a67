package app

import (
	"fmt"

	"isitcinema/cmd/cinema/ui"
	"isitcinema/internal/animation"
	"isitcinema/internal/config"
	"isitcinema/internal/logging"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a Model.
type Options struct {
	Config  *config.Config
	Backend Backend
	// Scheduler drives the text animations. Defaults to a TimerScheduler.
	Scheduler animation.Scheduler
}

// New builds the client model positioned on the landing page.
func New(opts Options) (Model, error) {
	if opts.Backend == nil {
		return Model{}, fmt.Errorf("app: backend is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = animation.NewTimerScheduler()
	}

	cycler, err := cfg.NewCycler()
	if err != nil {
		return Model{}, fmt.Errorf("app: placeholder animation: %w", err)
	}
	tw, err := cfg.NewTypewriter()
	if err != nil {
		return Model{}, fmt.Errorf("app: roast animation: %w", err)
	}

	search := textinput.New()
	search.Prompt = ""
	search.CharLimit = 200
	search.Width = 60

	vibe := textinput.New()
	vibe.Prompt = ""
	vibe.Placeholder = "Enter letterboxd username"
	vibe.CharLimit = 64
	vibe.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	sp.Style = styles.Spinner

	m := Model{
		cfg:        cfg,
		styles:     styles,
		markdown:   ui.NewMarkdown(32),
		backend:    opts.Backend,
		sched:      sched,
		frames:     make(chan struct{}, 1),
		search:     search,
		cycler:     cycler,
		spinner:    sp,
		viewport:   viewport.New(ui.DefaultWidth, 20),
		vibe:       vibe,
		nextScript: tw,
		width:      ui.DefaultWidth,
		height:     24,
	}
	m.enterLanding()
	return m, nil
}

// Init starts the frame listener and the cursor blink.
func (m Model) Init() tea.Cmd {
	logging.UI("Client started on %s", m.page)
	return tea.Batch(
		m.waitForFrame(),
		textinput.Blink,
	)
}

// Page returns the current page.
func (m Model) Page() Page { return m.page }

// waitForFrame listens for animation updates
func (m Model) waitForFrame() tea.Cmd {
	frames := m.frames
	return func() tea.Msg {
		if _, ok := <-frames; !ok {
			return nil
		}
		return frameMsg{}
	}
}

// frameNotifier returns a non-blocking frame signal for a runner's OnChange.
// It runs on the scheduler's goroutine.
func frameNotifier[S any](frames chan struct{}) func(S) {
	return func(S) {
		select {
		case frames <- struct{}{}:
		default:
			// A frame is already pending; the view reads the latest state.
		}
	}
}

// Shutdown stops every animation and cancels in-flight requests.
func (m *Model) Shutdown() {
	m.leavePage()
	if m.placeholder != nil {
		m.placeholder.Stop()
	}
}
