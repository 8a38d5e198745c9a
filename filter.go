package novel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is a full-image effect used for the background and portrait
// layers.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
}

// --- Kage shader sources ---
// Ebitengine uses premultiplied alpha; the shader un-premultiplies before
// applying the matrix and re-premultiplies the result.

const colorMatrixShaderSrc = `//kage:unit pixels
package main

var Matrix [20]float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	r := Matrix[0]*c.r + Matrix[1]*c.g + Matrix[2]*c.b + Matrix[3]*c.a + Matrix[4]
	g := Matrix[5]*c.r + Matrix[6]*c.g + Matrix[7]*c.b + Matrix[8]*c.a + Matrix[9]
	b := Matrix[10]*c.r + Matrix[11]*c.g + Matrix[12]*c.b + Matrix[13]*c.a + Matrix[14]
	a := Matrix[15]*c.r + Matrix[16]*c.g + Matrix[17]*c.b + Matrix[18]*c.a + Matrix[19]
	r = clamp(r, 0, 1)
	g = clamp(g, 0, 1)
	b = clamp(b, 0, 1)
	a = clamp(a, 0, 1)
	return vec4(r*a, g*a, b*a, a)
}
`

// Compiled lazily on the game loop goroutine.
var colorMatrixShader *ebiten.Shader

func ensureColorMatrixShader() *ebiten.Shader {
	if colorMatrixShader == nil {
		s, err := ebiten.NewShader([]byte(colorMatrixShaderSrc))
		if err != nil {
			panic("novel: failed to compile color matrix shader: " + err.Error())
		}
		colorMatrixShader = s
	}
	return colorMatrixShader
}

// --- ColorMatrixFilter ---

// ColorMatrixFilter applies a 4x5 color matrix in row-major order:
// [R_r, R_g, R_b, R_a, R_offset, G_r, ...].
type ColorMatrixFilter struct {
	Matrix      [20]float64
	uniforms    map[string]any
	matrixF32   [20]float32
	matrixSlice []float32
	shaderOp    ebiten.DrawRectShaderOptions
}

// NewColorMatrixFilter creates a filter initialized to the identity.
func NewColorMatrixFilter() *ColorMatrixFilter {
	f := &ColorMatrixFilter{uniforms: make(map[string]any, 1)}
	f.matrixSlice = f.matrixF32[:]
	f.uniforms["Matrix"] = f.matrixSlice
	f.SetBrightnessContrast(1, 1)
	return f
}

// SetBrightnessContrast builds the matrix for a brightness multiplier
// followed by a contrast around mid-gray, the same order CSS applies
// "brightness(b) contrast(c)". b = c = 1 is the identity.
func (f *ColorMatrixFilter) SetBrightnessContrast(b, c float64) {
	k := b * c
	t := (1 - c) / 2
	f.Matrix = [20]float64{
		k, 0, 0, 0, t,
		0, k, 0, 0, t,
		0, 0, k, 0, t,
		0, 0, 0, 1, 0,
	}
}

// Apply renders the color matrix transformation from src into dst.
func (f *ColorMatrixFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureColorMatrixShader()
	for i, v := range f.Matrix {
		f.matrixF32[i] = float32(v)
	}
	bounds := src.Bounds()
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}

// --- BlurFilter ---

// BlurFilter is a Kawase-style blur: the image is halved log2(radius) times
// and scaled back up, letting linear filtering do the smoothing.
type BlurFilter struct {
	Radius float64
	temps  []*ebiten.Image
	imgOp  ebiten.DrawImageOptions
}

// NewBlurFilter creates a blur filter with the given radius in pixels.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{Radius: math.Max(0, radius)}
}

func (f *BlurFilter) passes() int {
	if f.Radius <= 1 {
		if f.Radius > 0 {
			return 1
		}
		return 0
	}
	return int(math.Ceil(math.Log2(f.Radius)))
}

// Apply renders the blurred src into dst, stretching to dst's size.
func (f *BlurFilter) Apply(src, dst *ebiten.Image) {
	passes := f.passes()
	if passes == 0 {
		f.scaleInto(src, dst, ebiten.FilterNearest)
		return
	}

	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}
	for i := passes; i < len(f.temps); i++ {
		if f.temps[i] != nil {
			f.temps[i].Deallocate()
		}
	}
	f.temps = f.temps[:passes]

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	current := src
	for i := range passes {
		w, h = max(w/2, 1), max(h/2, 1)
		t := f.temps[i]
		if t == nil || t.Bounds().Dx() != w || t.Bounds().Dy() != h {
			if t != nil {
				t.Deallocate()
			}
			t = ebiten.NewImage(w, h)
			f.temps[i] = t
		} else {
			t.Clear()
		}
		f.scaleInto(current, t, ebiten.FilterLinear)
		current = t
	}
	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.scaleInto(current, f.temps[i], ebiten.FilterLinear)
		current = f.temps[i]
	}
	f.scaleInto(current, dst, ebiten.FilterLinear)
}

func (f *BlurFilter) scaleInto(src, dst *ebiten.Image, filter ebiten.Filter) {
	op := &f.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sb, db := src.Bounds(), dst.Bounds()
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	op.Filter = filter
	dst.DrawImage(src, op)
}

// --- Chains ---

// FilterChain applies filters in order, ping-ponging between two scratch
// images sized to the source.
type FilterChain struct {
	Filters []Filter
	a, b    *RenderTexture
}

// Apply runs every filter from src and leaves the result in dst.
func (c *FilterChain) Apply(src, dst *ebiten.Image) {
	if len(c.Filters) == 0 {
		dst.DrawImage(src, nil)
		return
	}
	sb := src.Bounds()
	if c.a == nil {
		c.a = NewRenderTexture(sb.Dx(), sb.Dy())
		c.b = NewRenderTexture(sb.Dx(), sb.Dy())
	}
	c.a.Resize(sb.Dx(), sb.Dy())
	c.b.Resize(sb.Dx(), sb.Dy())

	in := src
	for i, flt := range c.Filters {
		if i == len(c.Filters)-1 {
			flt.Apply(in, dst)
			return
		}
		out := c.a
		if in == c.a.Image() {
			out = c.b
		}
		out.Clear()
		flt.Apply(in, out.Image())
		in = out.Image()
	}
}
