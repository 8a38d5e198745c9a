package novel

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg" // register decoders
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/zyedidia/generic/cache"
	"golang.org/x/sync/errgroup"
)

// AssetState describes where an image is in its load lifecycle.
type AssetState uint8

const (
	AssetMissing AssetState = iota // never requested
	AssetLoading
	AssetReady
	AssetFailed
)

var assetClient = &http.Client{Timeout: 30 * time.Second}

// ReadAsset loads raw bytes from an http(s) URL or a local path.
func ReadAsset(url string) ([]byte, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		resp, err := assetClient.Get(url)
		if err != nil {
			return nil, errors.Wrapf(err, "fetch %s", url)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("fetch %s: %s", url, resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		return data, errors.Wrapf(err, "read %s", url)
	}
	data, err := os.ReadFile(strings.TrimPrefix(url, "file://"))
	return data, errors.Wrapf(err, "read %s", url)
}

type tintKey struct {
	url  string
	tint Color
}

type assetEntry struct {
	state   AssetState
	decoded image.Image
	img     *ebiten.Image
}

// AssetCache loads portrait and background images off the game loop.
// Decoding happens on worker goroutines; the conversion to *ebiten.Image
// and all tinting happen on the caller's goroutine in Image and Tinted.
type AssetCache struct {
	fetch func(url string) ([]byte, error)

	mu      sync.Mutex
	entries map[string]*assetEntry

	tinted *cache.Cache[tintKey, *ebiten.Image]
}

// NewAssetCache creates a cache. fetch loads raw bytes (nil uses ReadAsset);
// tintCapacity bounds the number of processed portraits kept.
func NewAssetCache(fetch func(url string) ([]byte, error), tintCapacity int) *AssetCache {
	if fetch == nil {
		fetch = ReadAsset
	}
	if tintCapacity <= 0 {
		tintCapacity = 64
	}
	return &AssetCache{
		fetch:   fetch,
		entries: make(map[string]*assetEntry),
		tinted:  cache.New[tintKey, *ebiten.Image](tintCapacity),
	}
}

// Request starts loading url in the background if it is not already known.
func (a *AssetCache) Request(url string) {
	if url == "" {
		return
	}
	a.mu.Lock()
	if _, ok := a.entries[url]; ok {
		a.mu.Unlock()
		return
	}
	a.entries[url] = &assetEntry{state: AssetLoading}
	a.mu.Unlock()

	go func() { _ = a.load(url) }()
}

func (a *AssetCache) load(url string) error {
	data, err := a.fetch(url)
	var img image.Image
	if err == nil {
		img, _, err = image.Decode(bytes.NewReader(data))
		err = errors.Wrapf(err, "decode %s", url)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	e := a.entries[url]
	if e == nil {
		e = &assetEntry{}
		a.entries[url] = e
	}
	if err != nil {
		e.state = AssetFailed
		logger.Warn("novel: image load failed", "url", url, "err", err)
		return err
	}
	e.state = AssetReady
	e.decoded = img
	return nil
}

// Preload loads every url, at most four at a time, and returns the first
// error. Images that fail stay marked failed and are simply not drawn.
func (a *AssetCache) Preload(ctx context.Context, urls []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		a.mu.Lock()
		if e, ok := a.entries[u]; ok && e.state != AssetFailed {
			a.mu.Unlock()
			continue
		}
		a.entries[u] = &assetEntry{state: AssetLoading}
		a.mu.Unlock()

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.load(u)
		})
	}
	return g.Wait()
}

// State reports the load state of url.
func (a *AssetCache) State(url string) AssetState {
	a.mu.Lock()
	defer a.mu.Unlock()
	if e, ok := a.entries[url]; ok {
		return e.state
	}
	return AssetMissing
}

// Image returns the loaded image for url, requesting it if needed. It
// returns nil until the image is ready. Must be called from the game loop.
func (a *AssetCache) Image(url string) *ebiten.Image {
	if url == "" {
		return nil
	}
	a.mu.Lock()
	e, ok := a.entries[url]
	if !ok {
		a.mu.Unlock()
		a.Request(url)
		return nil
	}
	defer a.mu.Unlock()
	if e.state != AssetReady {
		return nil
	}
	if e.img == nil {
		e.img = ebiten.NewImageFromImage(e.decoded)
		e.decoded = nil
	}
	return e.img
}

// Tinted returns the image at url multiplied by tint, building and caching
// it on first use. Returns nil while the source is not loaded.
func (a *AssetCache) Tinted(url string, tint Color) *ebiten.Image {
	key := tintKey{url: url, tint: tint}
	if img, ok := a.tinted.Get(key); ok {
		return img
	}
	src := a.Image(url)
	if src == nil {
		return nil
	}
	img := TintImage(src, tint)
	a.tinted.Put(key, img)
	return img
}
