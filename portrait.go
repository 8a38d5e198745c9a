package novel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Pose is the animation state of a portrait.
type Pose uint8

const (
	PoseAbsent  Pose = iota // off stage, transparent
	PoseIdle                // on stage, dimmed
	PoseTalking             // on stage, full brightness, taller
)

func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseTalking:
		return "talking"
	default:
		return "absent"
	}
}

// Portrait highlight tints.
var (
	HighlightHovered = ColorWhite
	HighlightIdle    = Gray(225)
	HighlightGhost   = Gray(200).WithAlpha(0.9)
)

// PortraitState is the animated part of a portrait. Positions are viewport
// percentages: X is the horizontal center in vw, Bottom and Height are vh.
type PortraitState struct {
	X          float64
	Bottom     float64
	Height     float64
	Opacity    float64
	Brightness float64
	Rotation   float64 // degrees, clockwise
	ScaleY     float64
}

// poseTransition is the target of a pose and the timing for each property.
type poseTransition struct {
	to                      PortraitState
	xDur, opacityDur, other float32
	xEase, opacityEase      ease.TweenFunc
}

func poseTarget(pose Pose, p Placement, layout StageLayout) poseTransition {
	hm := layout.HeightMultiplier(p.Speaking, p.Ghost)
	if p.Ghost {
		ghostX, offscreen, tilt := 10.0, -20.0, 15.0
		if p.Side == GhostRight {
			ghostX, offscreen, tilt = 90, 120, -15
		}
		tr := poseTransition{xDur: 0.4, opacityDur: 0.4, other: 0.4, xEase: ease.OutQuad, opacityEase: ease.OutQuad}
		switch pose {
		case PoseAbsent:
			tr.to = PortraitState{X: offscreen, Bottom: layout.PortraitY, Height: talkingHeightVH * hm * 0.8,
				Opacity: 0, Brightness: 0.7, Rotation: tilt * 1.5, ScaleY: 1}
			tr.xEase = ease.InQuad
			tr.opacityDur = 0.3
		case PoseTalking:
			tr.to = PortraitState{X: ghostX, Bottom: layout.PortraitY, Height: talkingHeightVH * hm * 0.8,
				Opacity: 0.85, Brightness: 0.9, Rotation: tilt, ScaleY: 1}
		default:
			tr.to = PortraitState{X: ghostX, Bottom: layout.PortraitY, Height: idleHeightVH * hm * 0.8,
				Opacity: 0.85, Brightness: 0.7, Rotation: tilt, ScaleY: 1}
		}
		return tr
	}

	baseX := float64(p.EffectiveX())
	switch pose {
	case PoseAbsent:
		return poseTransition{
			to: PortraitState{X: 150, Bottom: layout.PortraitY, Height: idleHeightVH * hm,
				Opacity: 0, Brightness: 0.8, ScaleY: 1},
			xDur: 0.5, opacityDur: 0.5, other: 0.5, xEase: ease.InQuad, opacityEase: ease.OutQuad,
		}
	case PoseTalking:
		return poseTransition{
			to: PortraitState{X: baseX, Bottom: layout.PortraitY, Height: talkingHeightVH * hm,
				Opacity: 1, Brightness: 1, ScaleY: 1},
			xDur: 0.3, opacityDur: 0.3, other: 0.3, xEase: ease.InQuad, opacityEase: ease.OutQuad,
		}
	default:
		return poseTransition{
			to: PortraitState{X: baseX, Bottom: layout.PortraitY, Height: idleHeightVH * hm,
				Opacity: 1, Brightness: 0.8, ScaleY: 1},
			xDur: 0.3, opacityDur: 0.3, other: 0.3, xEase: ease.InQuad, opacityEase: ease.OutQuad,
		}
	}
}

// TalkParams is the per-actor variance of the talking squish-and-stretch.
type TalkParams struct {
	Squish   float64 // lowest scaleY, about 0.97
	Stretch  float64 // highest scaleY, about 1.03
	Duration float64 // seconds per cycle, 0.3-0.4
}

// TalkParamsFor derives talking parameters from an actor ID. The same ID
// always yields the same parameters: the ID's character codes are summed and
// pushed through a sine hash.
func TalkParamsFor(id string) TalkParams {
	seed := 0.0
	for _, r := range id {
		seed += float64(r)
	}
	r1 := math.Mod(math.Sin(seed)*10000, 1)
	r2 := math.Mod(math.Sin(seed+1)*10000, 1)
	return TalkParams{
		Squish:   0.97 + (r1*0.01 - 0.005),
		Stretch:  1.03 + (r2*0.01 - 0.005),
		Duration: 0.3 + r1*0.1,
	}
}

// Portrait is one actor on stage. It animates between poses and crossfades
// its image when the resolved URL or tint changes. Image layers:
//
//	previous  the last processed image, blurred, fading 1 -> 0
//	backing   the processed image, blurred, fading in to 1
//	main      the processed image, crisp, fading in to 0.75
type Portrait struct {
	Key       string
	Actor     *Actor
	Placement Placement
	Pose      Pose
	State     PortraitState

	move  *TweenGroup
	scale *TweenGroup
	talk  *KeyframeLoop

	url       string
	tint      Color
	processed *ebiten.Image
	blurred   *ebiten.Image
	prev      *ebiten.Image
	prevAlpha float64
	backAlpha float64
	mainAlpha float64
	fades     *TweenGroup
	prevFade  *TweenGroup
	aspect    float64
}

// NewPortrait creates a portrait parked at its absent position.
func NewPortrait(key string, p Placement, layout StageLayout) *Portrait {
	pt := &Portrait{
		Key:       key,
		Actor:     p.Actor,
		Placement: p,
		Pose:      PoseAbsent,
		aspect:    9.0 / 16.0,
	}
	pt.State = poseTarget(PoseAbsent, p, layout).to
	return pt
}

// SetPose retargets the portrait. Placement changes while staying in the
// same pose also retarget (an actor sliding to a new slot).
func (pt *Portrait) SetPose(pose Pose, p Placement, layout StageLayout) {
	if pose == pt.Pose && p == pt.Placement && pt.move != nil {
		return
	}
	pt.Pose = pose
	pt.Placement = p
	tr := poseTarget(pose, p, layout)
	g := &TweenGroup{}
	g.Add(&pt.State.X, tr.to.X, tr.xDur, tr.xEase)
	g.Add(&pt.State.Opacity, tr.to.Opacity, tr.opacityDur, tr.opacityEase)
	g.Add(&pt.State.Bottom, tr.to.Bottom, tr.other, ease.OutQuad)
	g.Add(&pt.State.Height, tr.to.Height, tr.other, ease.OutQuad)
	g.Add(&pt.State.Brightness, tr.to.Brightness, tr.other, ease.OutQuad)
	g.Add(&pt.State.Rotation, tr.to.Rotation, tr.other, ease.OutQuad)
	pt.move = g
}

// SetTalking starts or stops the squish-and-stretch loop.
func (pt *Portrait) SetTalking(on bool) {
	switch {
	case on && pt.talk == nil:
		id := ""
		if pt.Actor != nil {
			id = pt.Actor.ID
		}
		tp := TalkParamsFor(id)
		pt.talk = NewKeyframeLoop([]float64{1, tp.Squish, tp.Stretch, 1}, float32(tp.Duration))
		pt.scale = nil
	case !on && pt.talk != nil:
		pt.talk = nil
		pt.scale = (&TweenGroup{}).Add(&pt.State.ScaleY, 1, 0.15, ease.OutQuad)
	}
}

// Talking reports whether the squish loop is running.
func (pt *Portrait) Talking() bool { return pt.talk != nil }

// Settled reports whether the pose animation has finished.
func (pt *Portrait) Settled() bool { return pt.move == nil || pt.move.Done }

// Gone reports whether an absent portrait has finished leaving.
func (pt *Portrait) Gone() bool { return pt.Pose == PoseAbsent && pt.Settled() }

// Update advances all animations by dt seconds.
func (pt *Portrait) Update(dt float32) {
	pt.move.Update(dt)
	pt.fades.Update(dt)
	pt.prevFade.Update(dt)
	if pt.prevFade != nil && pt.prevFade.Done {
		pt.prev = nil
		pt.prevFade = nil
	}
	if pt.talk != nil {
		pt.talk.Update(dt)
		pt.State.ScaleY = pt.talk.Value
	} else {
		pt.scale.Update(dt)
	}
}

// SetImage points the portrait at a new source URL and highlight tint.
// The processed image is rebuilt by Resolve once the source is loaded.
func (pt *Portrait) SetImage(url string, tint Color) {
	if url == pt.url && tint == pt.tint {
		return
	}
	if url != pt.url && pt.processed != nil {
		// New source: keep the old processed image only for the crossfade.
		pt.prev = pt.processed
		pt.prevAlpha = 1
		pt.prevFade = TweenFade(&pt.prevAlpha, 0, 0.5, ease.Linear)
		pt.processed = nil
		pt.blurred = nil
	}
	if url != pt.url {
		pt.backAlpha, pt.mainAlpha = 0, 0
		pt.fades = nil
	}
	pt.url = url
	pt.tint = tint
}

// URL returns the source image URL.
func (pt *Portrait) URL() string { return pt.url }

// Resolve fetches the processed image from assets, starting the fade-in the
// first time an image for the current URL becomes available.
func (pt *Portrait) Resolve(assets *AssetCache, blur *BlurFilter) {
	if pt.url == "" || assets == nil {
		return
	}
	img := assets.Tinted(pt.url, pt.tint)
	if img == nil || img == pt.processed {
		return
	}
	if src := assets.Image(pt.url); src != nil {
		if b := src.Bounds(); b.Dx() > 0 && b.Dy() > 0 {
			pt.aspect = float64(b.Dx()) / float64(b.Dy())
		}
	}
	first := pt.processed == nil
	pt.processed = img
	pt.blurred = blurredCopy(img, blur)
	if first && pt.fades == nil {
		g := &TweenGroup{}
		g.Add(&pt.backAlpha, 1, 0.5, ease.Linear)
		g.Add(&pt.mainAlpha, 0.75, 0.5, ease.Linear)
		pt.fades = g
	}
}

func blurredCopy(img *ebiten.Image, blur *BlurFilter) *ebiten.Image {
	if blur == nil {
		return img
	}
	b := img.Bounds()
	dst := ebiten.NewImage(b.Dx(), b.Dy())
	blur.Apply(img, dst)
	return dst
}

// Bounds returns the portrait's on-screen rectangle for a screen of w x h
// pixels, ignoring rotation and squish.
func (pt *Portrait) Bounds(w, h int) Rect {
	ph := pt.State.Height / 100 * float64(h)
	pw := ph * pt.aspect
	cx := pt.State.X / 100 * float64(w)
	bottom := float64(h) - pt.State.Bottom/100*float64(h)
	return Rect{X: cx - pw/2, Y: bottom - ph, Width: pw, Height: ph}
}

// Draw renders the three image layers onto screen.
func (pt *Portrait) Draw(screen *ebiten.Image) {
	if pt.State.Opacity <= 0 {
		return
	}
	sb := screen.Bounds()
	r := pt.Bounds(sb.Dx(), sb.Dy())
	if pt.prev != nil && pt.prev != pt.processed {
		pt.drawLayer(screen, pt.prev, r, pt.prevAlpha)
	}
	if pt.blurred != nil {
		pt.drawLayer(screen, pt.blurred, r, pt.backAlpha)
	}
	if pt.processed != nil {
		pt.drawLayer(screen, pt.processed, r, pt.mainAlpha)
	}
}

func (pt *Portrait) drawLayer(screen, img *ebiten.Image, r Rect, alpha float64) {
	if alpha <= 0 {
		return
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	var op ebiten.DrawImageOptions
	// Pivot at bottom center for rotation and squish.
	op.GeoM.Translate(-iw/2, -ih)
	op.GeoM.Scale(r.Width/iw, r.Height/ih*pt.State.ScaleY)
	if pt.State.Rotation != 0 {
		op.GeoM.Rotate(pt.State.Rotation * math.Pi / 180)
	}
	op.GeoM.Translate(r.X+r.Width/2, r.Y+r.Height)
	br := float32(pt.State.Brightness)
	a := float32(alpha * pt.State.Opacity)
	op.ColorScale.Scale(br*a, br*a, br*a, a)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &op)
}
