package novel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTexture is a persistent offscreen canvas. Portraits use one per
// processed image; the stage uses one as the scratch target for filters.
type RenderTexture struct {
	image *ebiten.Image
	w, h  int
}

// NewRenderTexture creates an offscreen canvas of the given size.
func NewRenderTexture(w, h int) *RenderTexture {
	return &RenderTexture{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image.
func (rt *RenderTexture) Image() *ebiten.Image { return rt.image }

// Width returns the texture width in pixels.
func (rt *RenderTexture) Width() int { return rt.w }

// Height returns the texture height in pixels.
func (rt *RenderTexture) Height() int { return rt.h }

// Clear fills the texture with transparent black.
func (rt *RenderTexture) Clear() { rt.image.Clear() }

// FillBlend covers the whole texture with c using the given blend mode.
// Unlike ebiten.Image.Fill, which replaces pixels, this composites.
func (rt *RenderTexture) FillBlend(c Color, blend BlendMode) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(rt.w), float64(rt.h))
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.Blend = blend.EbitenBlend()
	rt.image.DrawImage(whitePixel(), &op)
}

// DrawImageAt draws src at (x, y) with the given blend mode.
func (rt *RenderTexture) DrawImageAt(src *ebiten.Image, x, y float64, blend BlendMode) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.Blend = blend.EbitenBlend()
	rt.image.DrawImage(src, &op)
}

// DrawOpts controls how an image is placed by DrawImageColored and by the
// stage when it composites portraits and backgrounds.
type DrawOpts struct {
	// X and Y are the draw position in pixels.
	X, Y float64
	// ScaleX and ScaleY are scale factors. Zero defaults to 1.0.
	ScaleX, ScaleY float64
	// Rotation is the rotation in radians (clockwise).
	Rotation float64
	// PivotX and PivotY are the transform origin for scale and rotation.
	PivotX, PivotY float64
	// Color is a multiplicative tint. Zero value defaults to white (no tint).
	Color Color
	// Alpha is the opacity multiplier. Zero means fully transparent only
	// when AlphaSet is true; otherwise it defaults to 1.
	Alpha    float64
	AlphaSet bool
	// BlendMode selects the compositing operation.
	BlendMode BlendMode
}

// DrawImageColored draws img with full transform, color and alpha.
func (rt *RenderTexture) DrawImageColored(img *ebiten.Image, opts DrawOpts) {
	var op ebiten.DrawImageOptions
	applyDrawOpts(&op, opts)
	rt.image.DrawImage(img, &op)
}

// Resize deallocates the old image and creates a new one when the size
// changes.
func (rt *RenderTexture) Resize(width, height int) {
	if rt.image != nil && rt.w == width && rt.h == height {
		return
	}
	if rt.image != nil {
		rt.image.Deallocate()
	}
	rt.image = ebiten.NewImage(width, height)
	rt.w = width
	rt.h = height
}

// Dispose deallocates the underlying image.
func (rt *RenderTexture) Dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
}

// applyDrawOpts configures an ebiten.DrawImageOptions from DrawOpts.
func applyDrawOpts(op *ebiten.DrawImageOptions, opts DrawOpts) {
	op.GeoM.Translate(-opts.PivotX, -opts.PivotY)
	sx, sy := opts.ScaleX, opts.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	op.GeoM.Scale(sx, sy)
	if opts.Rotation != 0 {
		op.GeoM.Rotate(opts.Rotation)
	}
	op.GeoM.Translate(opts.X+opts.PivotX, opts.Y+opts.PivotY)

	alpha := opts.Alpha
	if !opts.AlphaSet && alpha == 0 {
		alpha = 1
	}
	c := opts.Color
	if c == (Color{}) {
		c = ColorWhite
	}
	op.ColorScale.Scale(
		float32(c.R*c.A*alpha),
		float32(c.G*c.A*alpha),
		float32(c.B*c.A*alpha),
		float32(c.A*alpha),
	)
	op.Blend = opts.BlendMode.EbitenBlend()
	op.Filter = ebiten.FilterLinear
}

var whitePixelImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImg == nil {
		whitePixelImg = ebiten.NewImage(1, 1)
		whitePixelImg.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImg
}

// --- Tint ---

// TintImage returns a copy of src multiplied by tint with src's own alpha
// preserved: the image is drawn, a solid tint is multiplied over it, and the
// result is clipped back to the source's alpha.
func TintImage(src *ebiten.Image, tint Color) *ebiten.Image {
	b := src.Bounds()
	rt := NewRenderTexture(b.Dx(), b.Dy())
	rt.DrawImageAt(src, 0, 0, BlendNormal)
	rt.FillBlend(tint, BlendMultiply)
	rt.DrawImageAt(src, 0, 0, BlendMask)
	return rt.Image()
}
