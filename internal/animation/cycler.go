package animation

import (
	"errors"
	"time"
	"unicode/utf8"
)

const (
	// DefaultTypingSpeed is the base speed; one rune is typed or deleted
	// every half of it.
	DefaultTypingSpeed = 120 * time.Millisecond

	// DefaultPlaceholderPause is how long a fully typed phrase stays up.
	DefaultPlaceholderPause = 3000 * time.Millisecond
)

// DefaultPlaceholders are the landing page hints.
var DefaultPlaceholders = []string{
	"Enter a letterboxd url...",
	"Should you really watch that movie?",
	"Enter your letterboxd username...",
	"I won't be too harsh, I promise...",
	"Just kidding, I'm going to be brutal",
}

// ErrNoPhrases is returned when a Cycler is built without phrases.
var ErrNoPhrases = errors.New("animation: phrase list is empty")

// CyclerMode is the placeholder machine's position in its cycle.
type CyclerMode int

const (
	ModeTyping CyclerMode = iota
	ModePausing
	ModeDeleting
)

func (m CyclerMode) String() string {
	switch m {
	case ModeTyping:
		return "typing"
	case ModePausing:
		return "pausing"
	case ModeDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// CyclerState is the placeholder animation state.
// DisplayText is always a prefix of the phrase at PhraseIndex.
type CyclerState struct {
	DisplayText string
	Mode        CyclerMode
	PhraseIndex int
	TypingSpeed time.Duration
	Suspended   bool
}

// Deleting reports whether runes are being removed.
func (s CyclerState) Deleting() bool { return s.Mode == ModeDeleting }

// Cycler types, holds and deletes each phrase in turn, forever.
type Cycler struct {
	phrases []string
	speed   time.Duration
	pause   time.Duration
}

// CyclerOption customizes a Cycler.
type CyclerOption func(*Cycler)

// WithTypingSpeed overrides the base typing speed.
func WithTypingSpeed(d time.Duration) CyclerOption {
	return func(c *Cycler) {
		if d > 0 {
			c.speed = d
		}
	}
}

// WithPause overrides how long a full phrase is held.
func WithPause(d time.Duration) CyclerOption {
	return func(c *Cycler) {
		if d > 0 {
			c.pause = d
		}
	}
}

// NewCycler builds a placeholder machine over phrases.
func NewCycler(phrases []string, opts ...CyclerOption) (*Cycler, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	c := &Cycler{
		phrases: append([]string(nil), phrases...),
		speed:   DefaultTypingSpeed,
		pause:   DefaultPlaceholderPause,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Phrases returns a copy of the phrase list.
func (c *Cycler) Phrases() []string {
	return append([]string(nil), c.phrases...)
}

// Initial shows the first phrase in full, waiting to be deleted.
func (c *Cycler) Initial() CyclerState {
	return CyclerState{
		DisplayText: c.phrases[0],
		Mode:        ModePausing,
		PhraseIndex: 0,
		TypingSpeed: c.speed,
	}
}

// Transition applies ev to s.
func (c *Cycler) Transition(s CyclerState, ev Event) CyclerState {
	switch ev.Kind {
	case EventFocus:
		s.Suspended = true
		return s
	case EventBlur:
		s.Suspended = false
		return s
	case EventTick:
	default:
		return s
	}

	if s.Suspended {
		return s
	}

	switch s.Mode {
	case ModeTyping:
		full := []rune(c.phrases[s.PhraseIndex])
		n := utf8.RuneCountInString(s.DisplayText)
		if n < len(full) {
			n++
			s.DisplayText = string(full[:n])
		}
		if n >= len(full) {
			s.Mode = ModePausing
		}

	case ModePausing:
		s.Mode = ModeDeleting

	case ModeDeleting:
		text := []rune(s.DisplayText)
		if len(text) > 0 {
			s.DisplayText = string(text[:len(text)-1])
		}
		if s.DisplayText == "" {
			s.PhraseIndex = (s.PhraseIndex + 1) % len(c.phrases)
			s.TypingSpeed = c.speed
			s.Mode = ModeTyping
		}
	}
	return s
}

// NextDelay returns the delay before the next tick; none while suspended.
func (c *Cycler) NextDelay(s CyclerState) (time.Duration, bool) {
	if s.Suspended {
		return 0, false
	}
	if s.Mode == ModePausing {
		return c.pause, true
	}
	return s.TypingSpeed / 2, true
}
