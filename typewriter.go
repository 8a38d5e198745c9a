package novel

import "time"

// DefaultTypingSpeed is the delay between revealed characters.
const DefaultTypingSpeed = 20 * time.Millisecond

// TypeOut reveals styled content one character per tick.
//
// Each call to SetContent with new text (or a new generation) starts a fresh
// reveal: the previous tick timer is stopped before the count is reset, so a
// stale tick can never touch the new reveal. The completion callback of a
// reveal runs exactly once, either from the last natural tick or from
// Finish, whichever comes first.
type TypeOut struct {
	sched *Scheduler
	speed time.Duration

	content    Span
	plain      string
	generation int
	total      int
	shown      int
	done       bool
	started    bool

	timer  *Timer
	onDone func()
}

// NewTypeOut creates a typewriter ticking on sched. A non-positive speed
// uses DefaultTypingSpeed.
func NewTypeOut(sched *Scheduler, speed time.Duration) *TypeOut {
	if speed <= 0 {
		speed = DefaultTypingSpeed
	}
	return &TypeOut{sched: sched, speed: speed}
}

// SetSpeed changes the tick interval. A running reveal picks it up on its
// next restart.
func (t *TypeOut) SetSpeed(speed time.Duration) {
	if speed > 0 {
		t.speed = speed
	}
}

// SetContent installs content for reveal. When the flattened text and the
// generation both match the current reveal this is a no-op; otherwise the
// reveal restarts from zero and onDone will be called once it completes.
// Empty content completes immediately.
func (t *TypeOut) SetContent(content Span, generation int, onDone func()) {
	plain := content.PlainText()
	if t.started && plain == t.plain && generation == t.generation {
		t.content = content
		return
	}
	t.timer.Stop()
	t.timer = nil

	t.started = true
	t.content = content
	t.plain = plain
	t.generation = generation
	t.total = content.Len()
	t.shown = 0
	t.done = false
	t.onDone = onDone

	if t.total == 0 {
		t.complete()
		return
	}
	t.timer = t.sched.Every(t.speed, t.tick)
}

func (t *TypeOut) tick() {
	if t.done {
		t.timer.Stop()
		return
	}
	t.shown++
	if t.shown >= t.total {
		t.shown = t.total
		t.complete()
	}
}

// Finish reveals everything at once. Calling it again, or after the reveal
// has completed on its own, does nothing.
func (t *TypeOut) Finish() {
	if !t.started || t.done {
		return
	}
	t.shown = t.total
	t.complete()
}

func (t *TypeOut) complete() {
	t.timer.Stop()
	t.timer = nil
	t.done = true
	if fn := t.onDone; fn != nil {
		t.onDone = nil
		fn()
	}
}

// Stop cancels the tick timer without completing. Used when the owner goes
// away.
func (t *TypeOut) Stop() {
	t.timer.Stop()
	t.timer = nil
	t.onDone = nil
}

// Clear stops any reveal and drops the content, as if none had been set.
func (t *TypeOut) Clear() {
	t.timer.Stop()
	*t = TypeOut{sched: t.sched, speed: t.speed}
}

// Done reports whether the current content is fully revealed.
func (t *TypeOut) Done() bool { return t.done }

// Shown returns how many characters are currently revealed.
func (t *TypeOut) Shown() int { return t.shown }

// Total returns the length of the current content.
func (t *TypeOut) Total() int { return t.total }

// Visible returns the revealed part of the content.
func (t *TypeOut) Visible() Span {
	if t.shown >= t.total {
		return t.content
	}
	return t.content.Truncate(t.shown)
}
