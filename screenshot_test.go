package novel

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSafe(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-submit", "after-submit"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"café", "caf_"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		if got := fileSafe(tt.in, "unlabeled"); got != tt.want {
			t.Errorf("fileSafe(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShotFileName(t *testing.T) {
	tests := []struct {
		req  shotRequest
		want string
	}{
		{shotRequest{label: "after submit", scene: "harbor", index: 1}, "20260101_120000_harbor_e002_after_submit.png"},
		{shotRequest{label: "", scene: "a/b", index: 0}, "20260101_120000_a_b_e001_unlabeled.png"},
		{shotRequest{label: "x"}, "20260101_120000_e001_x.png"},
	}
	for _, tt := range tests {
		if got := tt.req.fileName("20260101_120000"); got != tt.want {
			t.Errorf("fileName(%+v) = %q, want %q", tt.req, got, tt.want)
		}
	}
}

func TestScreenshotRecordsCursor(t *testing.T) {
	c := newTestController(t, abcScript(), Options{})
	st := newTestStage(t, c, 1280, 720)
	st.Screenshot("a")
	c.ClickMessage()
	c.Advance()
	st.Screenshot("b")

	if len(st.shots) != 2 {
		t.Fatalf("len(shots) = %d, want 2", len(st.shots))
	}
	id := c.Script().ID
	if got := st.shots[0]; got.label != "a" || got.scene != id || got.index != 0 {
		t.Errorf("shots[0] = %+v", got)
	}
	if got := st.shots[1]; got.label != "b" || got.scene != id || got.index != 1 {
		t.Errorf("shots[1] = %+v", got)
	}
}

func TestScreenshotWithoutController(t *testing.T) {
	st := &Stage{}
	st.Screenshot("a")
	if len(st.shots) != 1 || st.shots[0].scene != "" {
		t.Errorf("shots = %+v", st.shots)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	c := newTestController(t, abcScript(), Options{})
	st, err := NewStage(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if st.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", st.ScreenshotDir, "screenshots")
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{R: 255, A: 128})
	path := filepath.Join(t.TempDir(), "nested", "shot.png")
	if err := savePNG(path, img); err != nil {
		t.Fatalf("savePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	r, _, _, a := got.At(1, 1).RGBA()
	if a>>8 != 128 || r == 0 {
		t.Errorf("pixel = r%d a%d", r>>8, a>>8)
	}
}
