package novel

import (
	"regexp"
	"strings"
)

// Default dialogue treatment when the speaker has no theme color.
const (
	DefaultDialogueColor = "#87CEEB"
	proseShadowAlpha     = 0.8
)

var (
	defaultDialogueShadow = Color{135.0 / 255, 206.0 / 255, 235.0 / 255, 0.5}
	proseShadow           = Color{0, 0, 0, proseShadowAlpha}

	dialoguePattern = regexp.MustCompile(`"[^"]*"`)
	quoteReplacer   = strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
)

// FormatMessage prepares an entry's message for display. Typographic quotes
// are normalized first, then the text is split into quoted dialogue and the
// prose around it. Dialogue takes a brightened version of the speaker's theme
// color, a darker shadow and the speaker's font; prose gets a plain drop
// shadow. Both run through FormatInline.
func FormatMessage(text string, speaker *Actor) Span {
	root := Span{Kind: SpanGroup}
	if text == "" {
		return root
	}
	text = quoteReplacer.Replace(text)

	dialogue := dialogueStyle(speaker)
	prose := SpanStyle{Shadow: proseShadow, HasShadow: true}

	last := 0
	for _, loc := range dialoguePattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			root.Children = append(root.Children, styledPart(SpanProse, prose, text[last:loc[0]]))
		}
		root.Children = append(root.Children, styledPart(SpanDialogue, dialogue, text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(text) {
		root.Children = append(root.Children, styledPart(SpanProse, prose, text[last:]))
	}
	return root
}

func styledPart(kind SpanKind, style SpanStyle, text string) Span {
	return Span{Kind: kind, Style: style, Children: FormatInline(text).Children}
}

func dialogueStyle(speaker *Actor) SpanStyle {
	st := SpanStyle{
		Color:     DefaultDialogueColor,
		Shadow:    defaultDialogueShadow,
		HasShadow: true,
	}
	if speaker == nil {
		return st
	}
	st.FontFamily = speaker.ThemeFontFamily
	if speaker.ThemeColor != "" {
		st.Color = AdjustColor(speaker.ThemeColor, 0.6)
		if c, ok := ParseHexColor(AdjustColor(speaker.ThemeColor, -0.25)); ok {
			st.Shadow = c
		}
	}
	return st
}
