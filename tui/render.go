// Package tui plays a novel scene in a terminal. It renders the same
// controller view the Ebitengine stage draws, as ANSI text.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/gookit/color"

	"github.com/phanxgames/novel"
)

var (
	styleChip        = color.Style{color.FgGreen, color.OpBold}
	styleNameplate   = color.Style{color.FgLightGreen, color.OpBold}
	styleSubtle      = color.Style{color.FgGray}
	styleHint        = color.Style{color.FgGray, color.OpFuzzy}
	styleAction      = color.Style{color.FgGreen}
	styleEnd         = color.Style{color.FgRed, color.OpBold}
	styleDisabled    = color.Style{color.FgDarkGray}
	styleDraft       = color.Style{color.FgYellow}
	styleTalking     = color.Style{color.FgWhite, color.OpBold}
	styleIdle        = color.Style{color.FgGray}
	styleGhost       = color.Style{color.FgDarkGray, color.OpItalic}
	styleHovered     = color.Style{color.FgCyan, color.OpUnderscore}
	styleErr         = color.Style{color.FgRed}
	headerOpts       = []color.Color{color.OpBold, color.OpUnderscore}
	defaultTextColor = color.Style{color.FgWhite}
)

// RenderSpan converts a styled span tree to ANSI text. Dialogue takes its
// speaker's theme color; markup maps to the closest terminal attribute.
func RenderSpan(s novel.Span) string {
	var b strings.Builder
	renderSpan(&b, s, nil, "")
	return b.String()
}

func renderSpan(b *strings.Builder, s novel.Span, opts []color.Color, hex string) {
	switch s.Kind {
	case novel.SpanText:
		if s.Text == "" {
			return
		}
		b.WriteString(paint(s.Text, opts, hex))
		return
	case novel.SpanHeader:
		opts = append(opts[:len(opts):len(opts)], headerOpts...)
	case novel.SpanBold:
		opts = append(opts[:len(opts):len(opts)], color.OpBold)
	case novel.SpanItalic:
		opts = append(opts[:len(opts):len(opts)], color.OpItalic)
	case novel.SpanUnderline:
		opts = append(opts[:len(opts):len(opts)], color.OpUnderscore)
	case novel.SpanStrike:
		opts = append(opts[:len(opts):len(opts)], color.OpStrikethrough)
	case novel.SpanSubscript:
		opts = append(opts[:len(opts):len(opts)], color.OpFuzzy)
	case novel.SpanDialogue, novel.SpanProse:
		if s.Style.Color != "" {
			hex = s.Style.Color
		}
	}
	for _, c := range s.Children {
		renderSpan(b, c, opts, hex)
	}
}

// paint applies attributes and an optional hex foreground to one run. Each
// run is reset on its own so wrapping never carries styles across lines.
func paint(s string, opts []color.Color, hex string) string {
	if hex != "" {
		return color.NewRGBStyle(color.HEX(hex)).AddOpts(opts...).Sprint(s)
	}
	if len(opts) == 0 {
		return defaultTextColor.Sprint(s)
	}
	return color.Style(opts).Sprint(s)
}

// Wrap word-wraps ANSI text to width columns, keeping escape sequences
// intact.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wordwrap(s, width, "-")
}

// Fit truncates s to width visible columns and pads it with spaces.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Frame renders one view as a block of lines width columns wide.
func Frame(v novel.View, width int, caret bool) []string {
	if width < 20 {
		width = 20
	}
	var lines []string
	rule := styleSubtle.Sprint(strings.Repeat("─", width))

	// Cast line.
	var cast []string
	for _, pt := range v.Portraits {
		if pt.Actor == nil || pt.Pose == novel.PoseAbsent {
			continue
		}
		name := pt.Actor.Name
		switch {
		case v.Hovered != nil && v.Hovered.ID == pt.Actor.ID:
			name = styleHovered.Sprint(name)
		case pt.Placement.Ghost:
			name = styleGhost.Sprint("(" + name + ")")
		case pt.Pose == novel.PoseTalking:
			marker := "▸ "
			if pt.Talking() {
				marker = "♪ "
			}
			name = styleTalking.Sprint(marker + name)
		default:
			name = styleIdle.Sprint(name)
		}
		cast = append(cast, name)
	}
	if v.Background != "" {
		cast = append(cast, styleHint.Sprint("@ "+v.Background))
	}
	lines = append(lines, Fit(strings.Join(cast, "  "), width), rule)

	// Header.
	progress := v.Progress
	if v.Loading {
		progress = novel.Label(novel.LabelProcessing)
	}
	header := styleChip.Sprint("[ "+progress+" ]") + "  " + styleNameplate.Sprint(v.Nameplate)
	if v.AudioPlaying {
		header += styleHint.Sprint("  ♪")
	}
	lines = append(lines, Fit(header, width), "")

	// Message or draft.
	var body string
	switch {
	case v.Editing:
		d := v.Draft
		if caret {
			d += "▏"
		}
		body = styleDraft.Sprint(d)
	default:
		body = RenderSpan(v.Visible)
	}
	lines = append(lines, strings.Split(Wrap(body, width), "\n")...)
	lines = append(lines, "", rule)

	// Input.
	if v.ShowInput {
		in := styleSubtle.Sprint(v.Placeholder)
		if v.Input != "" {
			in = v.Input
			if caret && !v.Editing {
				in += "▏"
			}
		}
		btn := styleAction
		if v.Button.Kind == novel.ButtonEnd {
			btn = styleEnd
		}
		if v.Loading {
			btn = styleDisabled
		}
		label := btn.Sprint("[" + v.Button.Label + "]")
		field := Fit("> "+in, width-ansi.StringWidth(label)-1)
		lines = append(lines, field+" "+label)
	}
	if v.HoverInfo != "" {
		for _, l := range strings.Split(Wrap(RenderSpan(novel.FormatInline(v.HoverInfo)), width), "\n") {
			lines = append(lines, styleHint.Sprint(l))
		}
	}
	return lines
}

// Hints returns the key help line for a view.
func Hints(v novel.View) string {
	var parts []string
	if v.Editing {
		parts = append(parts, "ctrl+s save", "esc cancel")
	} else {
		if v.CanRetreat || v.CanAdvance {
			parts = append(parts, "←/→ navigate")
		}
		parts = append(parts, "enter "+strings.ToLower(v.Button.Label))
		if v.CanEdit && v.ShowAction {
			parts = append(parts, "ctrl+e edit")
		}
		if v.CanReroll && v.ShowAction {
			parts = append(parts, "ctrl+r reroll")
		}
		if v.CanWrapUp {
			parts = append(parts, "ctrl+w wrap up")
		}
	}
	parts = append(parts, "ctrl+c quit")
	return styleHint.Sprint(strings.Join(parts, " · "))
}

func errLine(err error) string {
	return styleErr.Sprint(fmt.Sprintf("! %v", err))
}
