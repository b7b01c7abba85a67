package animation

import (
	"sync"
	"time"
)

// Token identifies one scheduled callback. The zero Token is never issued.
type Token uint64

// Scheduler runs single-shot callbacks after a delay.
//
// A callback fires at most once, no earlier than its delay, and never after
// Cancel returned for its token.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Token
	Cancel(tok Token)
}

// TimerScheduler is a Scheduler backed by time.AfterFunc. Callbacks run on
// timer goroutines.
type TimerScheduler struct {
	mu     sync.Mutex
	next   Token
	timers map[Token]*time.Timer
}

// NewTimerScheduler creates a scheduler with no pending timers.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[Token]*time.Timer),
	}
}

// Schedule arms a timer that calls fn after delay.
func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	tok := s.next
	// The callback takes the lock, so it cannot observe the map before the
	// timer is recorded below.
	s.timers[tok] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		_, live := s.timers[tok]
		delete(s.timers, tok)
		s.mu.Unlock()

		if live {
			fn()
		}
	})
	return tok
}

// Cancel stops the timer for tok. Unknown or already fired tokens are ignored.
func (s *TimerScheduler) Cancel(tok Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[tok]; ok {
		t.Stop()
		delete(s.timers, tok)
	}
}

// Pending returns the number of armed timers.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close cancels every armed timer.
func (s *TimerScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for tok, t := range s.timers {
		t.Stop()
		delete(s.timers, tok)
	}
}

// ManualScheduler is a Scheduler on a virtual clock. Nothing fires until
// Advance or Step moves the clock. It is safe to schedule from inside a
// callback.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	next    Token
	pending []manualEntry
}

type manualEntry struct {
	tok Token
	at  time.Duration
	fn  func()
}

// NewManualScheduler creates a virtual clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule registers fn to fire once the clock reaches now+delay.
func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	if delay < 0 {
		delay = 0
	}
	s.next++
	s.pending = append(s.pending, manualEntry{tok: s.next, at: s.now + delay, fn: fn})
	return s.next
}

// Cancel removes tok from the pending set.
func (s *ManualScheduler) Cancel(tok Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.pending {
		if e.tok == tok {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Now returns the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of callbacks waiting to fire.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Until returns the time left before the earliest pending callback.
func (s *ManualScheduler) Until() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.earliest()
	if !ok {
		return 0, false
	}
	return e.at - s.now, true
}

// Advance moves the clock forward by d, firing every callback that falls due
// in order, including ones scheduled by earlier callbacks in the same window.
// It returns the number of callbacks fired.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	fired := 0
	for {
		s.mu.Lock()
		e, ok := s.earliest()
		if !ok || e.at > target {
			s.now = target
			s.mu.Unlock()
			return fired
		}
		s.remove(e.tok)
		s.now = e.at
		s.mu.Unlock()

		e.fn()
		fired++
	}
}

// Step jumps the clock to the earliest pending callback and fires it.
// It reports false when nothing is pending.
func (s *ManualScheduler) Step() bool {
	s.mu.Lock()
	e, ok := s.earliest()
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.remove(e.tok)
	s.now = e.at
	s.mu.Unlock()

	e.fn()
	return true
}

func (s *ManualScheduler) earliest() (manualEntry, bool) {
	if len(s.pending) == 0 {
		return manualEntry{}, false
	}
	best := s.pending[0]
	for _, e := range s.pending[1:] {
		if e.at < best.at || (e.at == best.at && e.tok < best.tok) {
			best = e
		}
	}
	return best, true
}

func (s *ManualScheduler) remove(tok Token) {
	for i, e := range s.pending {
		if e.tok == tok {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
