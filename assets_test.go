package novel

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func fakeFetch(files map[string][]byte) func(string) ([]byte, error) {
	return func(url string) ([]byte, error) {
		if data, ok := files[url]; ok {
			return data, nil
		}
		return nil, fmt.Errorf("no such asset %q", url)
	}
}

func TestAssetCachePreload(t *testing.T) {
	a := NewAssetCache(fakeFetch(map[string][]byte{
		"a.png": pngBytes(t, 4, 8),
		"b.png": pngBytes(t, 2, 2),
		"junk":  []byte("not an image"),
	}), 0)

	if err := a.Preload(context.Background(), []string{"a.png", "b.png", "a.png", ""}); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if got := a.State("a.png"); got != AssetReady {
		t.Errorf("State(a.png) = %v, want ready", got)
	}
	if got := a.State("never"); got != AssetMissing {
		t.Errorf("State(never) = %v, want missing", got)
	}

	img := a.Image("a.png")
	if img == nil {
		t.Fatal("Image(a.png) = nil")
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 4x8", b)
	}
	if a.Image("a.png") != img {
		t.Error("Image should return the cached image")
	}
}

func TestAssetCacheFailures(t *testing.T) {
	a := NewAssetCache(fakeFetch(map[string][]byte{"junk": []byte("not an image")}), 0)

	if err := a.Preload(context.Background(), []string{"junk"}); err == nil {
		t.Error("Preload of an undecodable asset should fail")
	}
	if got := a.State("junk"); got != AssetFailed {
		t.Errorf("State(junk) = %v, want failed", got)
	}
	if a.Image("junk") != nil {
		t.Error("failed image should not be drawn")
	}
	if err := a.Preload(context.Background(), []string{"missing.png"}); err == nil {
		t.Error("Preload of a missing asset should fail")
	}
	if a.Image("") != nil {
		t.Error("Image(\"\") should be nil")
	}
}

func TestAssetCacheTinted(t *testing.T) {
	a := NewAssetCache(fakeFetch(map[string][]byte{"a.png": pngBytes(t, 2, 2)}), 1)
	if a.Tinted("a.png", Gray(225)) != nil {
		t.Error("Tinted before loading should be nil")
	}
	if err := a.Preload(context.Background(), []string{"a.png"}); err != nil {
		t.Fatal(err)
	}

	t1 := a.Tinted("a.png", Gray(225))
	if t1 == nil {
		t.Fatal("Tinted = nil")
	}
	if a.Tinted("a.png", Gray(225)) != t1 {
		t.Error("same tint should hit the cache")
	}
	t2 := a.Tinted("a.png", Gray(200))
	if t2 == t1 {
		t.Error("a different tint should build a new image")
	}
	// Capacity 1: the first tint was evicted.
	if a.Tinted("a.png", Gray(225)) == t1 {
		t.Error("evicted tint should be rebuilt")
	}
}

func TestReadAsset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadAsset(path)
	if err != nil || string(got) != "data" {
		t.Errorf("ReadAsset(path) = %q, %v", got, err)
	}
	if got, err := ReadAsset("file://" + path); err != nil || string(got) != "data" {
		t.Errorf("ReadAsset(file://) = %q, %v", got, err)
	}
	if _, err := ReadAsset(filepath.Join(t.TempDir(), "none.png")); err == nil {
		t.Error("ReadAsset of a missing file should fail")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/a.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()

	if got, err := ReadAsset(srv.URL + "/a.png"); err != nil || string(got) != "remote" {
		t.Errorf("ReadAsset(http) = %q, %v", got, err)
	}
	if _, err := ReadAsset(srv.URL + "/b.png"); err == nil {
		t.Error("ReadAsset of a 404 should fail")
	}
}
