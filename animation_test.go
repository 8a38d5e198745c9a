package novel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenFadeReachesTarget(t *testing.T) {
	alpha := 0.0
	g := TweenFade(&alpha, 1, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if g.Done {
		t.Fatal("Done after half the duration")
	}
	if math.Abs(alpha-0.5) > 0.01 {
		t.Errorf("alpha = %f, want ~0.5", alpha)
	}
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(alpha-1) > 0.001 {
		t.Errorf("alpha = %f, want 1", alpha)
	}
}

func TestTweenGroupZeroDurationJumps(t *testing.T) {
	x := 3.0
	g := (&TweenGroup{}).Add(&x, 7, 0, ease.Linear)
	if x != 7 {
		t.Errorf("x = %f, want 7", x)
	}
	g.Update(0.1)
	if x != 7 {
		t.Errorf("x = %f after update, want 7", x)
	}
}

func TestTweenGroupMultipleFields(t *testing.T) {
	x, y := 0.0, 10.0
	g := &TweenGroup{}
	g.Add(&x, 100, 0.5, ease.Linear)
	g.Add(&y, 0, 1.0, nil)

	g.Update(0.5)
	if g.Done {
		t.Fatal("group done before its slowest tween")
	}
	if math.Abs(x-100) > 0.5 {
		t.Errorf("x = %f, want ~100", x)
	}
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}
	if math.Abs(y) > 0.01 {
		t.Errorf("y = %f, want ~0", y)
	}
}

func TestTweenGroupFinish(t *testing.T) {
	x := 0.0
	g := TweenFade(&x, 42, 10, ease.InOutQuad)
	g.Update(0.1)
	g.Finish()
	if !g.Done {
		t.Error("expected Done after Finish")
	}
	if math.Abs(x-42) > 0.001 {
		t.Errorf("x = %f, want 42", x)
	}
}

func TestTweenGroupNilSafe(t *testing.T) {
	var g *TweenGroup
	g.Update(1)
	g.Finish()
}

func TestKeyframeLoopStaysInRange(t *testing.T) {
	k := NewKeyframeLoop([]float64{1, 0.97, 1.03, 1}, 0.3)
	if k.Value != 1 {
		t.Errorf("initial Value = %f, want 1", k.Value)
	}
	for i := 0; i < 100; i++ {
		k.Update(1.0 / 60)
		if k.Value < 0.969 || k.Value > 1.031 {
			t.Fatalf("step %d: Value = %f out of range", i, k.Value)
		}
	}
}

func TestKeyframeLoopDegenerate(t *testing.T) {
	k := NewKeyframeLoop([]float64{2}, 1)
	k.Update(0.5)
	if k.Value != 2 {
		t.Errorf("Value = %f, want 2", k.Value)
	}
	k = NewKeyframeLoop(nil, 1)
	k.Update(0.5)
	if k.Value != 0 {
		t.Errorf("Value = %f, want 0", k.Value)
	}
}
