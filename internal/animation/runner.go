package animation

import "sync"

// Runner owns the state of one animation instance and keeps at most one
// timer armed for it.
//
// Every state write happens under the runner's lock, either from the
// scheduler callback or from Dispatch. After Stop returns no further write
// happens, even if a timer callback was already in flight.
type Runner[S any] struct {
	mu       sync.Mutex
	machine  Machine[S]
	sched    Scheduler
	state    S
	token    Token
	armed    bool
	gen      uint64
	started  bool
	stopped  bool
	onChange func(S)
}

// NewRunner binds a machine and its initial state to a scheduler.
func NewRunner[S any](m Machine[S], sched Scheduler, initial S) *Runner[S] {
	return &Runner[S]{
		machine: m,
		sched:   sched,
		state:   initial,
	}
}

// OnChange registers fn to be called with a snapshot after every transition.
// fn runs outside the runner's lock.
func (r *Runner[S]) OnChange(fn func(S)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// Start arms the first timer. Calling Start twice, or after Stop, is a no-op.
func (r *Runner[S]) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || r.stopped {
		return
	}
	r.started = true
	r.arm()
}

// Dispatch applies ev to the state. Once the runner has started, the pending
// timer is kept when the new state asks for the same delay as the old one;
// otherwise it is re-armed from the new state.
func (r *Runner[S]) Dispatch(ev Event) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	prevDelay, prevOK := r.machine.NextDelay(r.state)
	r.state = r.machine.Transition(r.state, ev)
	snapshot := r.state
	if r.started {
		delay, ok := r.machine.NextDelay(r.state)
		if !r.armed || !prevOK || !ok || delay != prevDelay {
			r.arm()
		}
	}
	cb := r.onChange
	r.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Stop cancels the pending timer. The state stays readable.
func (r *Runner[S]) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	r.disarm()
	r.gen++
}

// State returns a snapshot of the current state.
func (r *Runner[S]) State() S {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Armed reports whether a timer is pending.
func (r *Runner[S]) Armed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.armed
}

// Stopped reports whether Stop has been called.
func (r *Runner[S]) Stopped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopped
}

// arm schedules the next tick. Caller holds r.mu.
func (r *Runner[S]) arm() {
	r.disarm()
	delay, ok := r.machine.NextDelay(r.state)
	if !ok {
		return
	}
	r.gen++
	gen := r.gen
	r.token = r.sched.Schedule(delay, func() { r.fire(gen) })
	r.armed = true
}

// disarm cancels the pending tick. Caller holds r.mu.
func (r *Runner[S]) disarm() {
	if !r.armed {
		return
	}
	r.sched.Cancel(r.token)
	r.armed = false
	r.gen++
}

func (r *Runner[S]) fire(gen uint64) {
	r.mu.Lock()
	if r.stopped || gen != r.gen {
		r.mu.Unlock()
		return
	}
	r.armed = false
	r.state = r.machine.Transition(r.state, Tick())
	snapshot := r.state
	r.arm()
	cb := r.onChange
	r.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}
