package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRunner_StopCancelsPendingTimer(t *testing.T) {
	_, r, sched := newCyclerRunner(t, []string{"abc"})
	r.Start()
	require.Equal(t, 1, sched.Pending())

	before := r.State()
	r.Stop()

	assert.True(t, r.Stopped())
	assert.False(t, r.Armed())
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(time.Hour)
	assert.Equal(t, before, r.State())

	// Events after Stop are dropped.
	r.Dispatch(Focus())
	assert.False(t, r.State().Suspended)
}

func TestRunner_SinglePendingTimer(t *testing.T) {
	_, r, sched := newCyclerRunner(t, []string{"abc"})
	r.Start()
	r.Start()
	assert.Equal(t, 1, sched.Pending())

	for i := 0; i < 5; i++ {
		r.Dispatch(Blur())
		assert.Equal(t, 1, sched.Pending())
	}
	for i := 0; i < 50; i++ {
		require.True(t, sched.Step())
		assert.Equal(t, 1, sched.Pending())
	}
}

func TestRunner_DispatchKeepsTimerWhenDelayUnchanged(t *testing.T) {
	_, r, sched := newCyclerRunner(t, []string{"abc"})
	r.Start()

	sched.Advance(DefaultPlaceholderPause / 2)
	r.Dispatch(Blur())
	fired := sched.Advance(DefaultPlaceholderPause / 2)
	assert.Equal(t, 1, fired)
	assert.Equal(t, ModeDeleting, r.State().Mode)
}

func TestRunner_DispatchBeforeStartDoesNotArm(t *testing.T) {
	_, r, sched := newTypewriterRunner(t, DefaultScript)

	r.Dispatch(Data("early"))
	assert.Equal(t, 0, sched.Pending())
	assert.True(t, r.State().DataReady)

	r.Start()
	assert.Equal(t, 1, sched.Pending())
}

func TestRunner_StaleCallbackIgnored(t *testing.T) {
	c, err := NewCycler([]string{"abc"})
	require.NoError(t, err)

	// A scheduler that never cancels, so a superseded callback still fires.
	sched := &leakyScheduler{inner: NewManualScheduler()}
	r := NewRunner[CyclerState](c, sched, c.Initial())
	r.Start()
	r.Dispatch(Focus())
	r.Dispatch(Blur()) // re-arms; the first callback is now stale

	fired := sched.inner.Advance(DefaultPlaceholderPause)
	assert.Equal(t, 2, fired)
	assert.Equal(t, ModeDeleting, r.State().Mode, "only one transition should apply")
}

func TestRunner_RealTimers(t *testing.T) {
	defer goleak.VerifyNone(t)

	tw, err := NewTypewriter(DefaultScript, WithDelays(time.Millisecond, time.Millisecond, time.Millisecond))
	require.NoError(t, err)

	sched := NewTimerScheduler()
	defer sched.Close()

	done := make(chan RoastState, 1)
	r := NewRunner[RoastState](tw, sched, tw.Initial())
	r.OnChange(func(s RoastState) {
		if s.Done {
			select {
			case done <- s:
			default:
			}
		}
	})
	r.Start()
	r.Dispatch(Data("Short roast."))

	select {
	case s := <-done:
		assert.Equal(t, "Short roast.", s.DisplayText)
	case <-time.After(10 * time.Second):
		t.Fatal("typewriter did not finish")
	}
	r.Stop()
	assert.Equal(t, 0, sched.Pending())
}

type leakyScheduler struct {
	inner *ManualScheduler
}

func (l *leakyScheduler) Schedule(d time.Duration, fn func()) Token { return l.inner.Schedule(d, fn) }
func (l *leakyScheduler) Cancel(Token)                              {}
