package novel

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioHandle is one playable speech clip.
type AudioHandle interface {
	Play() error
	Pause()
	// Rewind seeks back to the start.
	Rewind()
	IsPlaying() bool
	Close()
}

// AudioFactory opens the clip at url.
type AudioFactory func(url string) (AudioHandle, error)

// SpeechChannel plays at most one speech clip at a time. Every Switch tears
// down the previous clip (pause, rewind, close) before it even looks at the
// new URL, so two clips are never live together.
type SpeechChannel struct {
	factory AudioFactory
	enabled bool
	handle  AudioHandle
	playing bool
}

// NewSpeechChannel returns a channel that opens clips with factory. A nil
// factory disables audio.
func NewSpeechChannel(factory AudioFactory, enabled bool) *SpeechChannel {
	return &SpeechChannel{factory: factory, enabled: enabled && factory != nil}
}

// Switch stops the current clip and, when audio is enabled and url is not
// empty, starts the clip at url. Load and play failures are logged and leave
// the channel silent.
func (c *SpeechChannel) Switch(url string) {
	c.stop()
	if !c.enabled || url == "" {
		return
	}
	h, err := c.factory(url)
	if err != nil {
		logger.Warn("novel: speech load failed", "url", url, "err", err)
		return
	}
	c.handle = h
	if err := h.Play(); err != nil {
		logger.Warn("novel: speech play failed", "url", url, "err", err)
		c.playing = false
		return
	}
	c.playing = true
}

func (c *SpeechChannel) stop() {
	if c.handle != nil {
		c.handle.Pause()
		c.handle.Rewind()
		c.handle.Close()
		c.handle = nil
	}
	c.playing = false
}

// Poll refreshes the playing flag from the clip, catching natural ends.
func (c *SpeechChannel) Poll() {
	if c.handle == nil {
		c.playing = false
		return
	}
	c.playing = c.handle.IsPlaying()
}

// Playing reports whether a clip is currently audible.
func (c *SpeechChannel) Playing() bool { return c.playing }

// Enabled reports whether new clips will be started.
func (c *SpeechChannel) Enabled() bool { return c.enabled }

// SetEnabled turns speech on or off. Turning it off stops the current clip.
func (c *SpeechChannel) SetEnabled(on bool) {
	c.enabled = on && c.factory != nil
	if !c.enabled {
		c.stop()
	}
}

// Close releases the current clip.
func (c *SpeechChannel) Close() { c.stop() }

// --- Ebitengine backend ---

// DefaultSampleRate is used when no audio context exists yet.
const DefaultSampleRate = 44100

// EbitenAudio opens speech clips through Ebitengine's audio package. Clips
// are decoded by extension: .mp3, .wav and .ogg.
type EbitenAudio struct {
	ctx   *audio.Context
	fetch func(url string) ([]byte, error)
}

// NewEbitenAudio reuses the process-wide audio context or creates one.
// fetch loads raw bytes for a URL; nil uses ReadAsset.
func NewEbitenAudio(fetch func(url string) ([]byte, error)) *EbitenAudio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(DefaultSampleRate)
	}
	if fetch == nil {
		fetch = ReadAsset
	}
	return &EbitenAudio{ctx: ctx, fetch: fetch}
}

// Open implements AudioFactory.
func (e *EbitenAudio) Open(url string) (AudioHandle, error) {
	data, err := e.fetch(url)
	if err != nil {
		return nil, err
	}
	src := bytes.NewReader(data)
	rate := e.ctx.SampleRate()

	var p *audio.Player
	switch strings.ToLower(path.Ext(stripQuery(url))) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(rate, src)
		if err != nil {
			return nil, fmt.Errorf("novel: decode mp3 %s: %w", url, err)
		}
		p, err = e.ctx.NewPlayer(s)
		if err != nil {
			return nil, err
		}
	case ".wav":
		s, err := wav.DecodeWithSampleRate(rate, src)
		if err != nil {
			return nil, fmt.Errorf("novel: decode wav %s: %w", url, err)
		}
		p, err = e.ctx.NewPlayer(s)
		if err != nil {
			return nil, err
		}
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(rate, src)
		if err != nil {
			return nil, fmt.Errorf("novel: decode ogg %s: %w", url, err)
		}
		p, err = e.ctx.NewPlayer(s)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("novel: unsupported audio format %q", url)
	}
	return &ebitenHandle{p: p}, nil
}

type ebitenHandle struct {
	p *audio.Player
}

func (h *ebitenHandle) Play() error {
	h.p.Play()
	return nil
}

func (h *ebitenHandle) Pause()          { h.p.Pause() }
func (h *ebitenHandle) Rewind()         { _ = h.p.SetPosition(time.Duration(0)) }
func (h *ebitenHandle) IsPlaying() bool { return h.p.IsPlaying() }
func (h *ebitenHandle) Close()          { _ = h.p.Close() }

func stripQuery(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		return u[:i]
	}
	return u
}
