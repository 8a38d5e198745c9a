package novel

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// shotRequest is a screenshot waiting for the end of the frame. The scene
// and cursor are taken when the shot is asked for, so the file names the
// entry the test step was looking at.
type shotRequest struct {
	label string
	scene string
	index int
}

// Screenshot saves the next drawn frame as a PNG in ScreenshotDir, named
// <time>_<scene>_e<entry>_<label>.png. Safe to call from Update or Draw.
func (st *Stage) Screenshot(label string) {
	req := shotRequest{label: label}
	if st.ctrl != nil {
		req.scene = st.ctrl.Script().ID
		req.index = st.ctrl.Index()
	}
	st.shots = append(st.shots, req)
}

// captureShots reads the finished frame back once and writes it for every
// pending request. Failures are logged; the stage keeps running.
func (st *Stage) captureShots(screen *ebiten.Image) {
	if len(st.shots) == 0 {
		return
	}
	pending := st.shots
	st.shots = nil

	frame := readFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, req := range pending {
		path := filepath.Join(st.ScreenshotDir, req.fileName(stamp))
		if err := savePNG(path, frame); err != nil {
			logger.Warn("novel: screenshot", "label", req.label, "err", err)
			continue
		}
		logger.Debug("novel: screenshot", "path", path)
	}
}

func (r shotRequest) fileName(stamp string) string {
	parts := []string{stamp}
	if r.scene != "" {
		parts = append(parts, fileSafe(r.scene, "scene"))
	}
	parts = append(parts, fmt.Sprintf("e%03d", r.index+1), fileSafe(r.label, "unlabeled"))
	return strings.Join(parts, "_") + ".png"
}

// readFrame copies screen into a straight-alpha image. Ebitengine pixels
// are premultiplied; drawing into an NRGBA converts them.
func readFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(rgba.Pix)
	out := image.NewNRGBA(rgba.Rect)
	draw.Draw(out, out.Rect, rgba, image.Point{}, draw.Src)
	return out
}

// savePNG encodes img and writes it to path, creating the directory.
func savePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "screenshot dir")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0o644), "write %s", path)
}

// fileSafe keeps ASCII letters, digits, '-' and '.' and turns every other
// rune into '_'. Blank input gives fallback.
func fileSafe(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, s)
}
