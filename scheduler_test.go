package novel

import (
	"testing"
	"time"
)

func TestSchedulerAfterFunc(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.AfterFunc(50*time.Millisecond, func() { fired++ })

	s.Advance(49 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired = %d before due, want 0", fired)
	}
	s.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d at due, want 1", fired)
	}
	s.Advance(time.Second)
	if fired != 1 {
		t.Errorf("fired = %d after due, want 1", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerEveryCatchesUp(t *testing.T) {
	s := NewScheduler()
	n := 0
	s.Every(10*time.Millisecond, func() { n++ })
	s.Advance(35 * time.Millisecond)
	if n != 3 {
		t.Errorf("ticks = %d, want 3", n)
	}
	if s.Now() != 35*time.Millisecond {
		t.Errorf("Now = %v, want 35ms", s.Now())
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	s.AfterFunc(20*time.Millisecond, func() { got = append(got, "c") })
	s.Advance(time.Second)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSchedulerStopFromCallback(t *testing.T) {
	s := NewScheduler()
	var late *Timer
	fired := false
	s.AfterFunc(10*time.Millisecond, func() { late.Stop() })
	late = s.AfterFunc(20*time.Millisecond, func() { fired = true })
	s.Advance(time.Second)
	if fired {
		t.Error("timer stopped by an earlier callback still fired")
	}
}

func TestSchedulerCallbackSchedulesWithinAdvance(t *testing.T) {
	s := NewScheduler()
	var at time.Duration
	s.AfterFunc(10*time.Millisecond, func() {
		s.AfterFunc(10*time.Millisecond, func() { at = s.Now() })
	})
	s.Advance(25 * time.Millisecond)
	if at != 20*time.Millisecond {
		t.Errorf("nested timer fired at %v, want 20ms", at)
	}
}

func TestSchedulerStopAll(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.AfterFunc(time.Millisecond, func() { fired = true })
	tm := s.Every(time.Millisecond, func() { fired = true })
	s.StopAll()
	s.Advance(time.Second)
	if fired {
		t.Error("callback fired after StopAll")
	}
	if tm.Active() {
		t.Error("timer Active after StopAll")
	}
}

func TestTimerNilSafe(t *testing.T) {
	var tm *Timer
	if tm.Stop() {
		t.Error("nil Stop = true, want false")
	}
	if tm.Active() {
		t.Error("nil Active = true, want false")
	}
}
