// Package animation drives the text animations of the Is it Cinema? client.
//
// Two machines live here:
//
//   - Cycler rotates the landing-page placeholder text (type, pause, delete).
//   - Typewriter reveals a roast: a scripted positive phrase, a partial
//     delete back to the shared base, a scripted negative phrase, then the
//     roast text fetched from the backend.
//
// Both machines are pure: Transition maps (state, event) to the next state
// and NextDelay says when the next tick is due. A Runner owns one instance's
// state, applies events and keeps at most one timer armed on an injected
// Scheduler. TimerScheduler runs on real timers; ManualScheduler is a virtual
// clock for tests.
package animation
