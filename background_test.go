package novel

import (
	"testing"
	"time"
)

func newTestBackground(url string) (*Background, *Scheduler) {
	s := NewScheduler()
	return NewBackground(s, url, BackgroundOptions{}), s
}

func TestBackgroundInitial(t *testing.T) {
	bg, _ := newTestBackground("a.png")
	if bg.Current() != "a.png" || bg.Previous() != "" || bg.Transitioning() {
		t.Errorf("got current=%q previous=%q transitioning=%v", bg.Current(), bg.Previous(), bg.Transitioning())
	}
	if bg.Opacity() != 1 {
		t.Errorf("Opacity() = %f, want 1", bg.Opacity())
	}
}

func TestBackgroundSameURLNoop(t *testing.T) {
	bg, _ := newTestBackground("a.png")
	bg.SetURL("a.png")
	if bg.Transitioning() {
		t.Error("setting the shown URL started a transition")
	}
}

func TestBackgroundTransitionTiming(t *testing.T) {
	bg, s := newTestBackground("a.png")
	bg.SetURL("b.png")
	if !bg.Transitioning() || bg.Current() != "a.png" {
		t.Fatalf("after SetURL: transitioning=%v current=%q", bg.Transitioning(), bg.Current())
	}

	s.Advance(49 * time.Millisecond)
	if bg.Current() != "a.png" {
		t.Fatalf("swapped early: current=%q", bg.Current())
	}
	s.Advance(time.Millisecond)
	if bg.Current() != "b.png" || bg.Previous() != "a.png" || bg.Transitioning() {
		t.Fatalf("after swap: current=%q previous=%q transitioning=%v", bg.Current(), bg.Previous(), bg.Transitioning())
	}
	if bg.Opacity() != 0 {
		t.Errorf("Opacity() = %f at swap, want 0", bg.Opacity())
	}

	bg.Update(0.3)
	if o := bg.Opacity(); o <= 0 || o >= 1 {
		t.Errorf("Opacity() = %f mid fade", o)
	}

	s.Advance(601 * time.Millisecond)
	if bg.Previous() != "" || bg.Opacity() != 1 {
		t.Errorf("after fade: previous=%q opacity=%f", bg.Previous(), bg.Opacity())
	}
}

func TestBackgroundRapidChanges(t *testing.T) {
	bg, s := newTestBackground("a.png")
	bg.SetURL("b.png")
	s.Advance(20 * time.Millisecond)
	bg.SetURL("c.png")
	bg.SetURL("c.png")

	s.Advance(40 * time.Millisecond)
	if bg.Current() != "a.png" {
		t.Fatalf("first swap timer still fired: current=%q", bg.Current())
	}
	s.Advance(10 * time.Millisecond)
	if bg.Current() != "c.png" || bg.Previous() != "a.png" {
		t.Errorf("current=%q previous=%q, want c.png over a.png", bg.Current(), bg.Previous())
	}
}

func TestBackgroundChangeDuringFade(t *testing.T) {
	bg, s := newTestBackground("a.png")
	bg.SetURL("b.png")
	s.Advance(100 * time.Millisecond)
	bg.SetURL("c.png")
	s.Advance(time.Second)
	if bg.Current() != "c.png" || bg.Previous() != "" {
		t.Errorf("current=%q previous=%q", bg.Current(), bg.Previous())
	}
}

func TestBackgroundStop(t *testing.T) {
	bg, s := newTestBackground("a.png")
	bg.SetURL("b.png")
	bg.Stop()
	s.Advance(time.Second)
	if bg.Current() != "a.png" {
		t.Errorf("current=%q after Stop, want a.png", bg.Current())
	}
}

func TestBackgroundOptionsDefaults(t *testing.T) {
	got := BackgroundOptions{Blur: 2}.withDefaults()
	want := DefaultBackgroundOptions()
	want.Blur = 2
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}
}
