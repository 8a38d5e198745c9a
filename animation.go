package novel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a set of float64 fields toward their targets, each with
// its own duration and easing. Call Update(dt) every frame; values are
// written straight into the fields.
//
// There is no global animation manager: each portrait and the background own
// their groups and advance them from Update.
type TweenGroup struct {
	tweens []*gween.Tween
	fields []*float64
	Done   bool
}

// Add animates *field from its current value to `to`. A zero duration jumps
// immediately.
func (g *TweenGroup) Add(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if duration <= 0 {
		*field = to
		return g
	}
	if fn == nil {
		fn = ease.Linear
	}
	g.tweens = append(g.tweens, gween.New(float32(*field), float32(to), duration, fn))
	g.fields = append(g.fields, field)
	g.Done = false
	return g
}

// Update advances all tweens by dt seconds and writes the values back.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Finish jumps every field to its end value.
func (g *TweenGroup) Finish() {
	if g == nil {
		return
	}
	for i, tw := range g.tweens {
		val, _ := tw.Set(math.MaxFloat32)
		*g.fields[i] = float64(val)
	}
	g.Done = true
}

// TweenFade creates a group that animates a single alpha-like field.
func TweenFade(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	return g.Add(field, to, duration, fn)
}

// --- Keyframes ---

// KeyframeLoop plays a looping sequence of values spread evenly over one
// period, easing in and out between neighbours. It backs the talking
// squish-and-stretch.
type KeyframeLoop struct {
	seq   *gween.Sequence
	Value float64
}

// NewKeyframeLoop builds a loop through values (at least two) lasting period
// seconds per cycle.
func NewKeyframeLoop(values []float64, period float32) *KeyframeLoop {
	if len(values) < 2 || period <= 0 {
		v := 0.0
		if len(values) > 0 {
			v = values[0]
		}
		return &KeyframeLoop{Value: v}
	}
	step := period / float32(len(values)-1)
	tweens := make([]*gween.Tween, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		tweens = append(tweens, gween.New(float32(values[i-1]), float32(values[i]), step, ease.InOutQuad))
	}
	seq := gween.NewSequence(tweens...)
	seq.SetLoop(-1)
	return &KeyframeLoop{seq: seq, Value: values[0]}
}

// Update advances the loop by dt seconds.
func (k *KeyframeLoop) Update(dt float32) {
	if k == nil || k.seq == nil {
		return
	}
	v, _, _ := k.seq.Update(dt)
	k.Value = float64(v)
}
