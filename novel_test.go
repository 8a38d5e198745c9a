package novel

import (
	"log/slog"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ffffff", Color{1, 1, 1, 1}, true},
		{"000", Color{0, 0, 0, 1}, true},
		{"#ff000080", Color{1, 0, 0, 128.0 / 255}, true},
		{"#12", Color{}, false},
		{"#gggggg", Color{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseHexColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestColorHex(t *testing.T) {
	c, _ := ParseHexColor("#87ceeb")
	if got := c.Hex(); got != "#87ceeb" {
		t.Errorf("Hex = %q, want #87ceeb", got)
	}
}

func TestAdjustColor(t *testing.T) {
	tests := []struct {
		hex    string
		amount float64
		want   string
	}{
		{"#000000", 0.5, "#808080"},
		{"#808080", 0, "#808080"},
		{"#ffffff", 0.6, "#ffffff"},
		{"#000000", -0.25, "#000000"},
		{"#ff0000", -0.25, "#ff0000"},
		{"#336699", 0.6, "#adc2d6"},
		{"#804020", -0.25, "#601000"},
		{"oops", 0.5, "oops"},
	}
	for _, tt := range tests {
		if got := AdjustColor(tt.hex, tt.amount); got != tt.want {
			t.Errorf("AdjustColor(%q, %v) = %q, want %q", tt.hex, tt.amount, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	l := slog.New(slog.DiscardHandler)
	SetLogger(l)
	if logger != l {
		t.Fatal("SetLogger did not install logger")
	}
	SetLogger(nil)
	if logger != slog.Default() {
		t.Error("SetLogger(nil) did not restore slog.Default()")
	}
}
