package novel

import (
	"reflect"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func newTestText(t *testing.T) *TextRenderer {
	t.Helper()
	r, err := NewTextRenderer(18)
	if err != nil {
		t.Fatalf("NewTextRenderer: %v", err)
	}
	return r
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"hello", []string{"hello"}},
		{"hello world", []string{"hello", " ", "world"}},
		{"  x", []string{"  ", "x"}},
		{"a\nb", []string{"a", "\n", "b"}},
		{"a \n\nb", []string{"a", " ", "\n", "\n", "b"}},
	}
	for _, tt := range tests {
		if got := splitWords(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func runByText(runs []textRun, s string) (textRun, bool) {
	for _, r := range runs {
		if r.text == s {
			return r, true
		}
	}
	return textRun{}, false
}

func TestRunsInlineStyles(t *testing.T) {
	r := newTestText(t)
	runs := r.runs(FormatInline("**bold** and *it* __u__ ~~gone~~"))

	bold, ok := runByText(runs, "bold")
	if !ok || bold.face.Source != r.base[variantBold] {
		t.Error("bold run not set in the bold face")
	}
	it, ok := runByText(runs, "it")
	if !ok || it.face.Source != r.base[variantItalic] {
		t.Error("italic run not set in the italic face")
	}
	plain, ok := runByText(runs, " and ")
	if !ok || plain.face.Source != r.base[variantRegular] || plain.color != r.Color {
		t.Error("plain run lost the default style")
	}
	if u, ok := runByText(runs, "u"); !ok || !u.underline {
		t.Error("underline flag missing")
	}
	if s, ok := runByText(runs, "gone"); !ok || !s.strike {
		t.Error("strike flag missing")
	}
}

func TestRunsHeaderAndSubscript(t *testing.T) {
	r := newTestText(t)
	runs := r.runs(FormatInline("## Title"))
	title, ok := runByText(runs, "Title")
	if !ok {
		t.Fatalf("runs = %+v", runs)
	}
	if title.face.Size != 18*1.5 || title.face.Source != r.base[variantBold] {
		t.Errorf("header face size=%v", title.face.Size)
	}

	runs = r.runs(FormatInline("H~2~O"))
	sub, ok := runByText(runs, "2")
	if !ok {
		t.Fatalf("runs = %+v", runs)
	}
	if sub.face.Size != 18*0.75 || sub.dy <= 0 {
		t.Errorf("subscript size=%v dy=%v", sub.face.Size, sub.dy)
	}
}

func TestRunsDialogueColor(t *testing.T) {
	r := newTestText(t)
	s := Span{Kind: SpanDialogue, Style: SpanStyle{Color: "#ff0000", HasShadow: true, Shadow: Color{A: 1}}, Children: []Span{TextSpan("hi")}}
	runs := r.runs(s)
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d", len(runs))
	}
	want, _ := ParseHexColor("#ff0000")
	if runs[0].color != want || !runs[0].hasShadow {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestMeasureSpan(t *testing.T) {
	r := newTestText(t)
	lh := r.LineHeight()
	if lh <= 0 {
		t.Fatalf("LineHeight() = %v", lh)
	}
	if got := r.MeasureSpan(Span{Kind: SpanGroup}, 500); got != 0 {
		t.Errorf("empty span height = %v, want 0", got)
	}
	if got := r.MeasureSpan(TextSpan("one line"), 500); got != lh {
		t.Errorf("one line height = %v, want %v", got, lh)
	}
	if got := r.MeasureSpan(TextSpan("a\nb"), 500); got != 2*lh {
		t.Errorf("two line height = %v, want %v", got, 2*lh)
	}
	long := TextSpan("the quick brown fox jumps over the lazy dog again and again")
	if got := r.MeasureSpan(long, 80); got < 3*lh {
		t.Errorf("wrapped height = %v, want at least three lines", got)
	}
}

func TestLayoutDropsLeadingSpaceOnWrap(t *testing.T) {
	r := newTestText(t)
	placed, _ := r.layout(r.runs(TextSpan("aaaa bbbb cccc dddd")), 60)
	for _, p := range placed {
		if p.x == 0 && p.line > 0 && p.text == " " {
			t.Errorf("line %d starts with a space", p.line)
		}
	}
}

func TestRegisterFamily(t *testing.T) {
	r := newTestText(t)
	if err := r.RegisterFamily("Mono", gomono.TTF); err != nil {
		t.Fatalf("RegisterFamily: %v", err)
	}
	f := r.face("mono", variantBold, 18)
	if f.Source != r.families["mono"][variantRegular] {
		t.Error("registered family not used (or bold did not fall back to regular)")
	}
	if r.face("mono", variantBold, 18) != f {
		t.Error("faces not cached")
	}
	if r.face("unknown", variantRegular, 18).Source != r.base[variantRegular] {
		t.Error("unknown family did not fall back to the base family")
	}
	if err := r.RegisterFamily("junk", []byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}
