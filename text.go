package novel

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Fonts ---

// fontVariant selects a face within a family.
type fontVariant uint8

const (
	variantRegular fontVariant = iota
	variantBold
	variantItalic
	variantBoldItalic
)

// fontFamily holds the four variants of one family. Missing variants fall
// back to regular.
type fontFamily [4]*text.GoTextFaceSource

func (f fontFamily) source(v fontVariant) *text.GoTextFaceSource {
	if s := f[v]; s != nil {
		return s
	}
	return f[variantRegular]
}

type faceKey struct {
	src  *text.GoTextFaceSource
	size float64
}

// TextRenderer lays out and draws styled spans with TrueType fonts. The Go
// fonts are the default family; speaker fonts named by ThemeFontFamily are
// registered with RegisterFamily.
type TextRenderer struct {
	// Size is the base font size in pixels.
	Size float64
	// LineSpacing multiplies the font's natural line height.
	LineSpacing float64
	// Color is the default text color.
	Color Color

	base     fontFamily
	families map[string]fontFamily
	faces    map[faceKey]*text.GoTextFace
}

func parseFace(ttf []byte) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("novel: failed to parse font: %w", err)
	}
	return src, nil
}

// NewTextRenderer creates a renderer at the given base size using the Go
// font family.
func NewTextRenderer(size float64) (*TextRenderer, error) {
	r := &TextRenderer{
		Size:        size,
		LineSpacing: 1.55,
		Color:       messageTextColor,
		families:    make(map[string]fontFamily),
		faces:       make(map[faceKey]*text.GoTextFace),
	}
	for v, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
		src, err := parseFace(ttf)
		if err != nil {
			return nil, err
		}
		r.base[v] = src
	}
	return r, nil
}

// RegisterFamily makes a TTF/OTF font available under name. Only the
// regular variant is registered; bold and italic spans in that family use
// it as well.
func (r *TextRenderer) RegisterFamily(name string, ttf []byte) error {
	src, err := parseFace(ttf)
	if err != nil {
		return err
	}
	r.families[strings.ToLower(name)] = fontFamily{variantRegular: src}
	return nil
}

func (r *TextRenderer) face(family string, v fontVariant, size float64) *text.GoTextFace {
	fam := r.base
	if family != "" {
		if f, ok := r.families[strings.ToLower(family)]; ok {
			fam = f
		}
	}
	key := faceKey{src: fam.source(v), size: size}
	if f, ok := r.faces[key]; ok {
		return f
	}
	f := &text.GoTextFace{Source: key.src, Size: size}
	r.faces[key] = f
	return f
}

// LineHeight returns the distance between baselines at the base size.
func (r *TextRenderer) LineHeight() float64 {
	m := r.face("", variantRegular, r.Size).Metrics()
	return (m.HAscent + m.HDescent + m.HLineGap) * r.LineSpacing
}

// Measure returns the advance width of s at the base size.
func (r *TextRenderer) Measure(s string, bold bool) float64 {
	v := variantRegular
	if bold {
		v = variantBold
	}
	return text.Advance(s, r.face("", v, r.Size))
}

// DrawString draws a single unstyled line with its top-left at (x, y).
func (r *TextRenderer) DrawString(dst *ebiten.Image, s string, x, y float64, c Color, bold bool) {
	v := variantRegular
	if bold {
		v = variantBold
	}
	f := r.face("", v, r.Size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(dst, s, f, op)
}

// --- Styled layout ---

// textRun is a leaf of a span tree with its inherited style resolved.
type textRun struct {
	text      string
	face      *text.GoTextFace
	color     Color
	shadow    Color
	hasShadow bool
	underline bool
	strike    bool
	dy        float64 // baseline shift, positive is down
}

type runStyle struct {
	family    string
	bold      bool
	italic    bool
	scale     float64
	color     Color
	shadow    Color
	hasShadow bool
	underline bool
	strike    bool
	sub       bool
}

var headerScale = [...]float64{1, 2, 1.5, 1.25, 1.1, 1, 0.9}

// runs flattens a span tree into styled runs.
func (r *TextRenderer) runs(s Span) []textRun {
	var out []textRun
	var walk func(s Span, st runStyle)
	walk = func(s Span, st runStyle) {
		if s.Style.Color != "" {
			if c, ok := ParseHexColor(s.Style.Color); ok {
				st.color = c
			}
		}
		if s.Style.HasShadow {
			st.shadow, st.hasShadow = s.Style.Shadow, true
		}
		if s.Style.FontFamily != "" {
			st.family = s.Style.FontFamily
		}
		switch s.Kind {
		case SpanText:
			v := variantRegular
			switch {
			case st.bold && st.italic:
				v = variantBoldItalic
			case st.bold:
				v = variantBold
			case st.italic:
				v = variantItalic
			}
			size := r.Size * st.scale
			dy := 0.0
			if st.sub {
				size *= 0.75
				dy = r.Size * 0.3
			}
			out = append(out, textRun{
				text:      s.Text,
				face:      r.face(st.family, v, size),
				color:     st.color,
				shadow:    st.shadow,
				hasShadow: st.hasShadow,
				underline: st.underline,
				strike:    st.strike,
				dy:        dy,
			})
			return
		case SpanHeader:
			st.bold = true
			st.scale = headerScale[clampInt(s.Level, 1, 6)]
		case SpanSubscript:
			st.sub = true
		case SpanUnderline:
			st.underline = true
		case SpanStrike:
			st.strike = true
		case SpanBold:
			st.bold = true
		case SpanItalic:
			st.italic = true
		}
		for _, c := range s.Children {
			walk(c, st)
		}
	}
	walk(s, runStyle{scale: 1, color: r.Color})
	return out
}

// placedRun is a fragment of a run positioned on a line.
type placedRun struct {
	textRun
	x, width float64
	line     int
}

// layout wraps runs into lines no wider than width. It returns the fragments
// and the number of lines.
func (r *TextRenderer) layout(runs []textRun, width float64) ([]placedRun, int) {
	var out []placedRun
	x, line := 0.0, 0
	for _, run := range runs {
		for _, tok := range splitWords(run.text) {
			if tok == "\n" {
				x, line = 0, line+1
				continue
			}
			w := text.Advance(tok, run.face)
			blank := strings.TrimSpace(tok) == ""
			if x > 0 && x+w > width && !blank {
				x, line = 0, line+1
			}
			if blank && x == 0 && line > 0 {
				continue
			}
			out = append(out, placedRun{textRun: run, x: x, width: w, line: line})
			out[len(out)-1].text = tok
			x += w
		}
	}
	if len(out) == 0 {
		return nil, 0
	}
	return out, line + 1
}

// splitWords cuts s into words, runs of spaces and single newlines.
func splitWords(s string) []string {
	var out []string
	start := 0
	prevSpace := false
	for i, c := range s {
		if c == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			out = append(out, "\n")
			start = i + 1
			prevSpace = false
			continue
		}
		sp := unicode.IsSpace(c)
		if i > start && sp != prevSpace {
			out = append(out, s[start:i])
			start = i
		}
		prevSpace = sp
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// DrawSpan draws s wrapped to width with its top-left at (x, y) and returns
// the height used.
func (r *TextRenderer) DrawSpan(dst *ebiten.Image, s Span, x, y, width float64) float64 {
	placed, lines := r.layout(r.runs(s), width)
	lh := r.LineHeight()
	for _, p := range placed {
		px := x + p.x
		py := y + float64(p.line)*lh + p.dy
		if p.hasShadow {
			r.drawRun(dst, p, px+2, py+2, p.shadow)
		}
		r.drawRun(dst, p, px, py, p.color)
	}
	return float64(lines) * lh
}

// MeasureSpan returns the height s takes when wrapped to width.
func (r *TextRenderer) MeasureSpan(s Span, width float64) float64 {
	_, lines := r.layout(r.runs(s), width)
	return float64(lines) * r.LineHeight()
}

func (r *TextRenderer) drawRun(dst *ebiten.Image, p placedRun, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(dst, p.text, p.face, op)

	if !p.underline && !p.strike {
		return
	}
	m := p.face.Metrics()
	thick := max(1, p.face.Size/14)
	if p.underline {
		fillRect(dst, Rect{X: x, Y: y + m.HAscent + thick, Width: p.width, Height: thick}, c)
	}
	if p.strike {
		fillRect(dst, Rect{X: x, Y: y + m.HAscent*0.65, Width: p.width, Height: thick}, c)
	}
}

// fillRect fills r on dst with c, compositing over what is there.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 || c.A <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	dst.DrawImage(whitePixel(), &op)
}
