package novel

import "testing"

func TestNewRenderTextureDimensions(t *testing.T) {
	rt := NewRenderTexture(128, 64)
	defer rt.Dispose()

	if rt.Width() != 128 {
		t.Errorf("Width = %d, want 128", rt.Width())
	}
	if rt.Height() != 64 {
		t.Errorf("Height = %d, want 64", rt.Height())
	}
	if rt.Image() == nil {
		t.Error("Image() should not be nil")
	}
}

func TestRenderTextureResize(t *testing.T) {
	rt := NewRenderTexture(16, 16)
	defer rt.Dispose()

	img := rt.Image()
	rt.Resize(16, 16)
	if rt.Image() != img {
		t.Error("same-size Resize replaced the image")
	}
	rt.Resize(32, 8)
	if rt.Width() != 32 || rt.Height() != 8 {
		t.Errorf("size = %dx%d, want 32x8", rt.Width(), rt.Height())
	}
	if b := rt.Image().Bounds(); b.Dx() != 32 || b.Dy() != 8 {
		t.Errorf("image bounds = %v", b)
	}
}

func TestRenderTextureDisposeTwice(t *testing.T) {
	rt := NewRenderTexture(4, 4)
	rt.Dispose()
	rt.Dispose()
	if rt.Image() != nil {
		t.Error("Image() should be nil after Dispose")
	}
}
