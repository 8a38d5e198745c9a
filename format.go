package novel

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// SpanKind identifies how a Span is presented.
type SpanKind uint8

const (
	SpanText      SpanKind = iota // leaf run of plain text
	SpanGroup                     // structural wrapper with no styling of its own
	SpanHeader                    // "# title" line; Level holds 1-6
	SpanSubscript                 // ~text~
	SpanUnderline                 // __text__
	SpanStrike                    // ~~text~~
	SpanBold                      // **text**
	SpanItalic                    // *text* or _text_
	SpanDialogue                  // quoted speech, colored after the speaker
	SpanProse                     // narration between quotes
)

var spanKindNames = [...]string{
	SpanText:      "text",
	SpanGroup:     "group",
	SpanHeader:    "header",
	SpanSubscript: "sub",
	SpanUnderline: "underline",
	SpanStrike:    "strike",
	SpanBold:      "bold",
	SpanItalic:    "italic",
	SpanDialogue:  "dialogue",
	SpanProse:     "prose",
}

func (k SpanKind) String() string {
	if int(k) < len(spanKindNames) {
		return spanKindNames[k]
	}
	return "unknown"
}

// SpanStyle carries the visual treatment of dialogue and prose spans.
// Zero values mean "inherit".
type SpanStyle struct {
	Color      string // "#rrggbb"
	Shadow     Color
	HasShadow  bool
	FontFamily string
}

// Span is a node in a styled text tree. Leaves (Kind == SpanText) carry Text;
// every other kind wraps Children.
type Span struct {
	Kind     SpanKind
	Level    int
	Text     string
	Style    SpanStyle
	Children []Span
}

// TextSpan returns a plain text leaf.
func TextSpan(s string) Span { return Span{Kind: SpanText, Text: s} }

// IsEmpty reports whether the tree holds no text at all.
func (s Span) IsEmpty() bool { return s.Len() == 0 }

// PlainText flattens the tree into its visible characters.
func (s Span) PlainText() string {
	var b strings.Builder
	s.Walk(func(leaf Span) { b.WriteString(leaf.Text) })
	return b.String()
}

// Len returns the number of visible characters (runes) in the tree.
func (s Span) Len() int {
	n := 0
	s.Walk(func(leaf Span) { n += utf8.RuneCountInString(leaf.Text) })
	return n
}

// Walk calls fn for every text leaf in document order.
func (s Span) Walk(fn func(leaf Span)) {
	if s.Kind == SpanText {
		fn(s)
		return
	}
	for _, c := range s.Children {
		c.Walk(fn)
	}
}

// Truncate returns a copy of the tree holding only the first n characters.
// Wrappers on the path to the cut are kept; branches after it are dropped.
func (s Span) Truncate(n int) Span {
	out, _ := truncateSpan(s, n)
	return out
}

func truncateSpan(s Span, budget int) (Span, int) {
	if s.Kind == SpanText {
		l := utf8.RuneCountInString(s.Text)
		if l <= budget {
			return s, budget - l
		}
		return Span{Kind: SpanText, Text: string([]rune(s.Text)[:budget])}, 0
	}
	out := s
	out.Children = nil
	for _, c := range s.Children {
		if budget <= 0 {
			break
		}
		var tc Span
		tc, budget = truncateSpan(c, budget)
		out.Children = append(out.Children, tc)
	}
	return out, budget
}

// --- Inline markup ---

var (
	headerPattern    = regexp.MustCompile(`#{1,6} [^\n]+`)
	subscriptPattern = regexp.MustCompile(`~~[^~]+~~|~[^~]+~`)
	underlinePattern = regexp.MustCompile(`__[^_]+__`)
	strikePattern    = regexp.MustCompile(`~~[^~]+~~`)
	boldPattern      = regexp.MustCompile(`\*\*[^*]+\*\*`)
	italicPattern    = regexp.MustCompile(`\*[^*]+\*|_[^_]+_`)
)

// FormatInline converts markdown-like inline markup into a Span tree.
//
// Recognized markup, outermost first: "# header" lines (1-6 hashes),
// ~subscript~, __underline__, ~~strikethrough~~, **bold** and *italic* or
// _italic_. Each layer is applied to the content of the layer above it and to
// the plain text between its matches, so "**a _b_**" yields bold(a, italic(b)).
// Unmatched delimiters are left as literal text.
func FormatInline(text string) Span {
	root := Span{Kind: SpanGroup}
	if text == "" {
		return root
	}
	root.Children = formatHeaders(text)
	return root
}

type inlineLayer func(string) []Span

// splitLayer splits text by pattern. Matches for which wrap returns ok=true
// become wrapped spans; everything else is handed to next.
func splitLayer(text string, pattern *regexp.Regexp, wrap func(match string) (Span, bool), next inlineLayer) []Span {
	var out []Span
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		m := text[loc[0]:loc[1]]
		sp, ok := wrap(m)
		if !ok {
			continue
		}
		if pending := text[last:loc[0]]; pending != "" {
			out = append(out, next(pending)...)
		}
		out = append(out, sp)
		last = loc[1]
	}
	if rest := text[last:]; rest != "" {
		out = append(out, next(rest)...)
	}
	return out
}

func formatHeaders(text string) []Span {
	return splitLayer(text, headerPattern, func(m string) (Span, bool) {
		level := strings.IndexByte(m, ' ')
		return Span{Kind: SpanHeader, Level: level, Children: formatSubscript(m[level+1:])}, true
	}, formatSubscript)
}

func formatSubscript(text string) []Span {
	return splitLayer(text, subscriptPattern, func(m string) (Span, bool) {
		if strings.HasPrefix(m, "~~") {
			// Strikethrough belongs to an inner layer.
			return Span{}, false
		}
		return Span{Kind: SpanSubscript, Children: formatUnderline(m[1 : len(m)-1])}, true
	}, formatUnderline)
}

func formatUnderline(text string) []Span {
	return splitLayer(text, underlinePattern, func(m string) (Span, bool) {
		return Span{Kind: SpanUnderline, Children: formatStrike(m[2 : len(m)-2])}, true
	}, formatStrike)
}

func formatStrike(text string) []Span {
	return splitLayer(text, strikePattern, func(m string) (Span, bool) {
		return Span{Kind: SpanStrike, Children: formatBold(m[2 : len(m)-2])}, true
	}, formatBold)
}

func formatBold(text string) []Span {
	return splitLayer(text, boldPattern, func(m string) (Span, bool) {
		return Span{Kind: SpanBold, Children: formatItalic(m[2 : len(m)-2])}, true
	}, formatItalic)
}

func formatItalic(text string) []Span {
	return splitLayer(text, italicPattern, func(m string) (Span, bool) {
		return Span{Kind: SpanItalic, Children: []Span{TextSpan(m[1 : len(m)-1])}}, true
	}, func(s string) []Span { return []Span{TextSpan(s)} })
}
