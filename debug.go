package novel

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugStats holds per-frame timing. Only populated when Stage.Debug is set.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	portraits  int
	timers     int
}

// debugLog prints timing and controller state to stderr, at most once per
// second.
func (st *Stage) debugLog(stats debugStats) {
	if !st.Debug {
		return
	}
	now := time.Now()
	if now.Sub(st.lastDebug) < time.Second {
		return
	}
	st.lastDebug = now
	c := st.ctrl
	_, _ = fmt.Fprintf(os.Stderr,
		"[novel] update: %v | draw: %v | portraits: %d | timers: %d\n",
		stats.updateTime, stats.drawTime, stats.portraits, stats.timers)
	_, _ = fmt.Fprintf(os.Stderr,
		"[novel] index: %d/%d | typed: %v | loading: %v | editing: %v | audio: %v\n",
		c.Index(), c.Script().Len(), c.TypingDone(), c.Loading(), c.Editing(), c.AudioPlaying())
}

// drawFPS draws the current FPS and TPS in the top-left corner.
func drawFPS(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(100, 32)
	op.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 128})
	screen.DrawImage(whitePixel(), &op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
