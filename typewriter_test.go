package novel

import (
	"testing"
	"time"
)

func newTestTypeOut() (*Scheduler, *TypeOut) {
	s := NewScheduler()
	return s, NewTypeOut(s, 20*time.Millisecond)
}

func TestTypeOutReveal(t *testing.T) {
	s, ty := newTestTypeOut()
	done := 0
	ty.SetContent(TextSpan("Hello"), 1, func() { done++ })

	if ty.Shown() != 0 || ty.Total() != 5 {
		t.Fatalf("Shown/Total = %d/%d, want 0/5", ty.Shown(), ty.Total())
	}
	s.Advance(60 * time.Millisecond)
	if got := ty.Visible().PlainText(); got != "Hel" {
		t.Errorf("Visible = %q, want %q", got, "Hel")
	}
	if ty.Done() {
		t.Error("Done before the last character")
	}
	s.Advance(40 * time.Millisecond)
	if !ty.Done() {
		t.Error("Done = false after every character")
	}
	if done != 1 {
		t.Errorf("onDone calls = %d, want 1", done)
	}
	s.Advance(time.Second)
	if done != 1 {
		t.Errorf("onDone calls = %d after extra time, want 1", done)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d after completion, want 0", s.Pending())
	}
}

func TestTypeOutFinishOnce(t *testing.T) {
	s, ty := newTestTypeOut()
	done := 0
	ty.SetContent(TextSpan("Hello"), 1, func() { done++ })
	s.Advance(20 * time.Millisecond)

	ty.Finish()
	ty.Finish()
	s.Advance(time.Second)

	if done != 1 {
		t.Errorf("onDone calls = %d, want 1", done)
	}
	if got := ty.Visible().PlainText(); got != "Hello" {
		t.Errorf("Visible = %q, want %q", got, "Hello")
	}
}

func TestTypeOutSameContentNoRestart(t *testing.T) {
	s, ty := newTestTypeOut()
	ty.SetContent(TextSpan("Hello"), 1, nil)
	s.Advance(40 * time.Millisecond)
	ty.SetContent(TextSpan("Hello"), 1, nil)
	if ty.Shown() != 2 {
		t.Errorf("Shown = %d after identical SetContent, want 2", ty.Shown())
	}
}

func TestTypeOutNewGenerationRestarts(t *testing.T) {
	s, ty := newTestTypeOut()
	first := 0
	ty.SetContent(TextSpan("Hello"), 1, func() { first++ })
	s.Advance(40 * time.Millisecond)

	second := 0
	ty.SetContent(TextSpan("Hello"), 2, func() { second++ })
	if ty.Shown() != 0 {
		t.Fatalf("Shown = %d after new generation, want 0", ty.Shown())
	}
	s.Advance(time.Second)
	if first != 0 {
		t.Errorf("stale onDone called %d times, want 0", first)
	}
	if second != 1 {
		t.Errorf("onDone calls = %d, want 1", second)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0 (old ticker must be stopped)", s.Pending())
	}
}

func TestTypeOutEmptyCompletesImmediately(t *testing.T) {
	_, ty := newTestTypeOut()
	done := false
	ty.SetContent(Span{Kind: SpanGroup}, 1, func() { done = true })
	if !done || !ty.Done() {
		t.Error("empty content did not complete immediately")
	}
}

func TestTypeOutKeepsStructure(t *testing.T) {
	s, ty := newTestTypeOut()
	ty.SetContent(FormatInline("ab **cd**"), 1, nil)
	s.Advance(80 * time.Millisecond)

	v := ty.Visible()
	if got := v.PlainText(); got != "ab c" {
		t.Fatalf("Visible = %q, want %q", got, "ab c")
	}
	bold := false
	for _, c := range v.Children {
		if c.Kind == SpanBold {
			bold = true
		}
	}
	if !bold {
		t.Error("partial reveal dropped the bold wrapper")
	}
}

func TestTypeOutStop(t *testing.T) {
	s, ty := newTestTypeOut()
	called := false
	ty.SetContent(TextSpan("Hello"), 1, func() { called = true })
	ty.Stop()
	s.Advance(time.Second)
	if called {
		t.Error("onDone called after Stop")
	}
	if ty.Shown() != 0 {
		t.Errorf("Shown = %d after Stop, want 0", ty.Shown())
	}
}
