package novel

import "time"

// Scheduler runs timers against frame time instead of the wall clock. The
// owner calls Advance once per Update with the frame's delta; callbacks run
// synchronously inside Advance, on the game loop goroutine. It is not safe
// for concurrent use.
type Scheduler struct {
	now    time.Duration
	timers []*Timer
	seq    uint64
}

// Timer is a pending callback created by AfterFunc or Every.
type Timer struct {
	s        *Scheduler
	due      time.Duration
	interval time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

// NewScheduler returns a scheduler at time zero.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Now returns the accumulated frame time.
func (s *Scheduler) Now() time.Duration { return s.now }

// AfterFunc calls fn once, d after the current time.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	return s.add(d, 0, fn)
}

// Every calls fn every d until the timer is stopped. d must be positive.
func (s *Scheduler) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, interval time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{s: s, due: s.now + d, interval: interval, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward by dt, firing every timer that falls due in
// order of due time (ties in creation order). Interval timers fire once per
// elapsed period. Timers created or stopped by callbacks take effect
// immediately.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			t.stopped = true
		}
		t.fn()
	}
	s.now = target
	s.compact()
}

func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// StopAll cancels every pending timer.
func (s *Scheduler) StopAll() {
	for _, t := range s.timers {
		t.stopped = true
	}
	s.compact()
}

// Stop cancels the timer. It reports whether the timer was still pending.
// Stopping a nil timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool { return t != nil && !t.stopped }
