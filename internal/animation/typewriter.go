package animation

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultTypeDelay is the per-rune delay while typing.
	DefaultTypeDelay = 50 * time.Millisecond
	// DefaultDeleteDelay is the per-rune delay while deleting.
	DefaultDeleteDelay = 30 * time.Millisecond
	// DefaultPhrasePause is the hold after a scripted phrase is complete.
	DefaultPhrasePause = 1500 * time.Millisecond
)

// Script is the scripted part of a roast reveal. Positive and Negative both
// start with Base; only the tail after Base is deleted.
type Script struct {
	Base     string `yaml:"base" json:"base"`
	Positive string `yaml:"positive" json:"positive"`
	Negative string `yaml:"negative" json:"negative"`
}

// DefaultScript is the reveal used by the roast page.
var DefaultScript = Script{
	Base:     "Your letterboxd account movie preferences are ",
	Positive: "Your letterboxd account movie preferences are insightful, masterful, inspiring...",
	Negative: "Your letterboxd account movie preferences are predictable, derivative, exhausting...",
}

// Validate checks that both phrases extend Base.
func (s Script) Validate() error {
	if !strings.HasPrefix(s.Positive, s.Base) {
		return fmt.Errorf("animation: positive phrase %q does not start with base %q", s.Positive, s.Base)
	}
	if !strings.HasPrefix(s.Negative, s.Base) {
		return fmt.Errorf("animation: negative phrase %q does not start with base %q", s.Negative, s.Base)
	}
	return nil
}

// Phase is a segment of the roast reveal. Phases only move forward.
type Phase int

const (
	PhaseTypingPositive Phase = iota
	PhaseDeleting
	PhaseTypingNegative
	PhaseTypingRoast
)

func (p Phase) String() string {
	switch p {
	case PhaseTypingPositive:
		return "typing_positive"
	case PhaseDeleting:
		return "deleting"
	case PhaseTypingNegative:
		return "typing_negative"
	case PhaseTypingRoast:
		return "typing_roast"
	default:
		return "unknown"
	}
}

// RoastState is the reveal state. Cursor counts runes of the active phase's
// source: Positive, then Positive again while deleting, then Negative, then
// the roast.
type RoastState struct {
	Phase          Phase
	Cursor         int
	DisplayText    string
	RevealComplete bool

	Roast     string
	DataReady bool
	Done      bool
}

// Waiting reports whether the reveal is stalled on missing roast content.
func (s RoastState) Waiting() bool {
	return s.Phase == PhaseTypingRoast && !s.DataReady
}

// Typewriter is the roast reveal machine.
type Typewriter struct {
	script   Script
	base     []rune
	positive []rune
	negative []rune

	typeDelay   time.Duration
	deleteDelay time.Duration
	pause       time.Duration
}

// TypewriterOption customizes a Typewriter.
type TypewriterOption func(*Typewriter)

// WithDelays overrides the typing, deleting and pause delays. Non-positive
// values keep the defaults.
func WithDelays(typing, deleting, pause time.Duration) TypewriterOption {
	return func(t *Typewriter) {
		if typing > 0 {
			t.typeDelay = typing
		}
		if deleting > 0 {
			t.deleteDelay = deleting
		}
		if pause > 0 {
			t.pause = pause
		}
	}
}

// NewTypewriter validates script and builds the machine.
func NewTypewriter(script Script, opts ...TypewriterOption) (*Typewriter, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	t := &Typewriter{
		script:      script,
		base:        []rune(script.Base),
		positive:    []rune(script.Positive),
		negative:    []rune(script.Negative),
		typeDelay:   DefaultTypeDelay,
		deleteDelay: DefaultDeleteDelay,
		pause:       DefaultPhrasePause,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Script returns the script the machine was built with.
func (t *Typewriter) Script() Script { return t.script }

// Initial is the state on entering the roast page.
func (t *Typewriter) Initial() RoastState {
	return RoastState{Phase: PhaseTypingPositive}
}

// Lines splits s into the static line shown above the reveal and the
// animated line. The static line is empty until the reveal is complete.
func (t *Typewriter) Lines(s RoastState) (static, animated string) {
	if s.RevealComplete {
		return t.script.Negative, s.DisplayText
	}
	return "", s.DisplayText
}

// Transition applies ev to s.
func (t *Typewriter) Transition(s RoastState, ev Event) RoastState {
	switch ev.Kind {
	case EventData:
		// Roast content is consumed once.
		if !s.DataReady {
			s.Roast = ev.Text
			s.DataReady = true
		}
		return s
	case EventTick:
	default:
		return s
	}

	if s.Done {
		return s
	}

	switch s.Phase {
	case PhaseTypingPositive:
		if s.Cursor < len(t.positive) {
			s.Cursor++
			s.DisplayText = string(t.positive[:s.Cursor])
		} else {
			s.Phase = PhaseDeleting
		}

	case PhaseDeleting:
		if s.Cursor > len(t.base) {
			s.Cursor--
			s.DisplayText = string(t.positive[:s.Cursor])
		}
		if s.Cursor <= len(t.base) {
			s.Cursor = len(t.base)
			s.DisplayText = string(t.base)
			s.Phase = PhaseTypingNegative
		}

	case PhaseTypingNegative:
		if s.Cursor < len(t.negative) {
			s.Cursor++
			s.DisplayText = string(t.negative[:s.Cursor])
		} else {
			s.Phase = PhaseTypingRoast
			s.Cursor = 0
			s.DisplayText = ""
			s.RevealComplete = true
		}

	case PhaseTypingRoast:
		if !s.DataReady {
			return s
		}
		roast := []rune(s.Roast)
		if s.Cursor < len(roast) {
			s.Cursor++
			s.DisplayText = string(roast[:s.Cursor])
		}
		if s.Cursor >= len(roast) {
			s.Done = true
		}
	}
	return s
}

// NextDelay returns the delay before the next tick. Nothing is armed once
// the reveal is done or while waiting for roast content.
func (t *Typewriter) NextDelay(s RoastState) (time.Duration, bool) {
	if s.Done {
		return 0, false
	}
	switch s.Phase {
	case PhaseTypingPositive:
		if s.Cursor < len(t.positive) {
			return t.typeDelay, true
		}
		return t.pause, true
	case PhaseDeleting:
		return t.deleteDelay, true
	case PhaseTypingNegative:
		if s.Cursor < len(t.negative) {
			return t.typeDelay, true
		}
		return t.pause, true
	case PhaseTypingRoast:
		if !s.DataReady {
			return 0, false
		}
		return t.typeDelay, true
	}
	return 0, false
}
