package novel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// BackgroundOptions controls the backdrop treatment. Zero fields take the
// defaults from DefaultBackgroundOptions.
type BackgroundOptions struct {
	Brightness float64       `toml:"brightness" json:"brightness,omitempty"`
	Contrast   float64       `toml:"contrast" json:"contrast,omitempty"`
	Blur       float64       `toml:"blur" json:"blur,omitempty"`
	Scale      float64       `toml:"scale" json:"scale,omitempty"`
	Overlay    string        `toml:"overlay" json:"overlay,omitempty"` // "#rrggbbaa", drawn over the image
	Transition time.Duration `toml:"transition" json:"transition,omitempty"`
}

// DefaultBackgroundOptions returns the stock backdrop: dimmed, slightly
// contrasted, blurred and scaled up so the blurred edges stay off screen.
func DefaultBackgroundOptions() BackgroundOptions {
	return BackgroundOptions{
		Brightness: 0.6,
		Contrast:   1.05,
		Blur:       6,
		Scale:      1.03,
		Transition: 600 * time.Millisecond,
	}
}

func (o BackgroundOptions) withDefaults() BackgroundOptions {
	d := DefaultBackgroundOptions()
	if o.Brightness == 0 {
		o.Brightness = d.Brightness
	}
	if o.Contrast == 0 {
		o.Contrast = d.Contrast
	}
	if o.Blur == 0 {
		o.Blur = d.Blur
	}
	if o.Scale == 0 {
		o.Scale = d.Scale
	}
	if o.Transition <= 0 {
		o.Transition = d.Transition
	}
	return o
}

// backgroundSwapDelay separates the start of a transition from the moment the
// new image takes the current slot.
const backgroundSwapDelay = 50 * time.Millisecond

// Background cross-fades between successive background URLs. It holds three
// slots: the previous URL (fading out), the current URL and whether a
// transition is pending.
type Background struct {
	opts  BackgroundOptions
	sched *Scheduler

	current       string
	previous      string
	pending       string
	transitioning bool

	fadeIn float64 // opacity of the current image over the previous one
	fade   *TweenGroup

	swapTimer  *Timer
	clearTimer *Timer

	overlay    Color
	hasOverlay bool
	filters    FilterChain
	processed  map[string]*ebiten.Image
}

// NewBackground creates a presenter showing url with no transition.
func NewBackground(sched *Scheduler, url string, opts BackgroundOptions) *Background {
	opts = opts.withDefaults()
	bg := &Background{opts: opts, sched: sched, current: url, fadeIn: 1, processed: make(map[string]*ebiten.Image)}
	if c, ok := ParseHexColor(opts.Overlay); ok && opts.Overlay != "" {
		bg.overlay, bg.hasOverlay = c, true
	}
	cm := NewColorMatrixFilter()
	cm.SetBrightnessContrast(opts.Brightness, opts.Contrast)
	bg.filters.Filters = []Filter{NewBlurFilter(opts.Blur), cm}
	return bg
}

// SetURL starts a transition to url. Setting the URL already shown (or
// already pending) is a no-op. A transition started while another is running
// cancels the other's timers first.
func (bg *Background) SetURL(url string) {
	target := bg.current
	if bg.transitioning {
		target = bg.pending
	}
	if url == target {
		return
	}
	bg.swapTimer.Stop()
	bg.clearTimer.Stop()

	if !bg.transitioning {
		bg.previous = bg.current
	}
	bg.pending = url
	bg.transitioning = true
	bg.swapTimer = bg.sched.AfterFunc(backgroundSwapDelay, bg.swap)
}

func (bg *Background) swap() {
	bg.current = bg.pending
	bg.pending = ""
	bg.transitioning = false
	bg.fadeIn = 0
	bg.fade = TweenFade(&bg.fadeIn, 1, float32(bg.opts.Transition.Seconds()), ease.InOutQuad)
	bg.clearTimer = bg.sched.AfterFunc(bg.opts.Transition, func() {
		bg.previous = ""
		bg.fadeIn = 1
		bg.fade = nil
	})
}

// Update advances the fade by dt seconds.
func (bg *Background) Update(dt float32) {
	bg.fade.Update(dt)
}

// Current returns the URL in the current slot.
func (bg *Background) Current() string { return bg.current }

// Previous returns the URL fading out, or "".
func (bg *Background) Previous() string { return bg.previous }

// Transitioning reports whether a swap is pending.
func (bg *Background) Transitioning() bool { return bg.transitioning }

// Opacity returns the opacity of the current image over the previous one.
func (bg *Background) Opacity() float64 { return bg.fadeIn }

// Stop cancels pending timers.
func (bg *Background) Stop() {
	bg.swapTimer.Stop()
	bg.clearTimer.Stop()
}

// Draw fills screen with the previous and current images, cover-fitted and
// scaled, then the overlay.
func (bg *Background) Draw(screen *ebiten.Image, assets *AssetCache) {
	if bg.previous != "" && bg.fadeIn < 1 {
		bg.drawImage(screen, assets, bg.previous, 1)
	}
	bg.drawImage(screen, assets, bg.current, bg.fadeIn)
	if bg.hasOverlay {
		var op ebiten.DrawImageOptions
		sb := screen.Bounds()
		op.GeoM.Scale(float64(sb.Dx()), float64(sb.Dy()))
		c := bg.overlay
		op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
		screen.DrawImage(whitePixel(), &op)
	}
}

func (bg *Background) drawImage(screen *ebiten.Image, assets *AssetCache, url string, alpha float64) {
	if url == "" || alpha <= 0 || assets == nil {
		return
	}
	img := bg.filtered(assets, url)
	if img == nil {
		return
	}
	sb, ib := screen.Bounds(), img.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())
	iw, ih := float64(ib.Dx()), float64(ib.Dy())
	s := max(sw/iw, sh/ih) * bg.opts.Scale

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(sw/2, sh/2)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &op)
}

// filtered returns url's image with blur and color treatment applied, built
// once per URL.
func (bg *Background) filtered(assets *AssetCache, url string) *ebiten.Image {
	if img, ok := bg.processed[url]; ok {
		return img
	}
	src := assets.Image(url)
	if src == nil {
		return nil
	}
	b := src.Bounds()
	dst := ebiten.NewImage(b.Dx(), b.Dy())
	bg.filters.Apply(src, dst)
	bg.processed[url] = dst
	if len(bg.processed) > 8 {
		for k := range bg.processed {
			if k != url && k != bg.current && k != bg.previous {
				delete(bg.processed, k)
			}
		}
	}
	return dst
}
