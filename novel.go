package novel

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Gray returns an opaque gray with all channels set to v/255.
func Gray(v uint8) Color {
	f := float64(v) / 255
	return Color{f, f, f, 1}
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is
// optional). Malformed input returns ok=false.
func ParseHexColor(s string) (c Color, ok bool) {
	r, g, b, a, ok := parseHexBytes(s)
	if !ok {
		return Color{}, false
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func parseHexBytes(s string) (r, g, b, a uint8, ok bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return 0, 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, 0, false
	}
	a = 255
	if len(hex) == 8 {
		a = uint8(v)
		v >>= 8
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), a, true
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel255(c.R), channel255(c.G), channel255(c.B))
}

// WithAlpha returns a copy of c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// AdjustColor moves each channel of a "#rrggbb" color toward white by amount
// (0..1) of its distance to 255. Negative amounts subtract that fraction
// instead, so -0.25 darkens by a quarter of the distance to 255. Results are
// rounded and clamped to [0, 255]. Unparseable input is returned unchanged.
func AdjustColor(hex string, amount float64) string {
	r, g, b, _, ok := parseHexBytes(hex)
	if !ok {
		return hex
	}
	adj := func(v uint8) uint8 {
		n := float64(v)
		n = math.Round(n + (255-n)*amount)
		return uint8(math.Max(0, math.Min(255, n)))
	}
	return fmt.Sprintf("#%02x%02x%02x", adj(r), adj(g), adj(b))
}

func channel255(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point. Stage coordinates are percentages of the viewport
// (x in vw, y in vh) unless noted otherwise.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in screen pixels with the origin at the
// top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// BlendMode selects a compositing operation used while building portraits.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over
	BlendMultiply                  // source * destination; only darkens
	BlendMask                      // keep destination where source is opaque (destination-in)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendMask:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorZero,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// --- Logging ---

var logger = slog.Default()

// SetLogger replaces the logger used for recoverable failures (image and
// audio loads, rejected continuations) and cursor tracing. Passing nil
// restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}
