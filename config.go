package novel

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the feature toggles of a controller and the presentation
// settings of its stage. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	VerticalLayout    bool     `toml:"vertical_layout"`
	TypingSpeed       Duration `toml:"typing_speed"`
	AllowTypingSkip   bool     `toml:"allow_typing_skip"`
	HideInput         bool     `toml:"hide_input"`
	HideActionButtons bool     `toml:"hide_action_buttons"`
	GhostSpeakers     bool     `toml:"ghost_speakers"`
	Audio             bool     `toml:"audio"`
	TalkingAnimation  bool     `toml:"talking_animation"`
	EnableReroll      bool     `toml:"enable_reroll"`

	// PlayerID is the speaker ID of entries typed by the player.
	PlayerID string `toml:"player_id"`

	Background BackgroundOptions `toml:"background"`

	Window WindowConfig `toml:"window"`
}

// WindowConfig sizes the desktop window opened by Run.
type WindowConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	ShowFPS bool   `toml:"show_fps"`
}

// Duration is a time.Duration that decodes from TOML strings like "20ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the stock settings: horizontal layout, 20ms typing,
// skipping allowed, ghosts, audio and the talking animation on.
func DefaultConfig() Config {
	return Config{
		TypingSpeed:      Duration{DefaultTypingSpeed},
		AllowTypingSkip:  true,
		GhostSpeakers:    true,
		Audio:            true,
		TalkingAnimation: true,
		PlayerID:         "player",
		Background:       DefaultBackgroundOptions(),
		Window: WindowConfig{
			Title:  "novel",
			Width:  1280,
			Height: 720,
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys missing from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "novel: load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warn("novel: unknown config keys", "path", path, "keys", undecoded)
	}
	cfg.Background = cfg.Background.withDefaults()
	return cfg, nil
}

// DecodeConfig parses TOML text over DefaultConfig.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "novel: decode config")
	}
	cfg.Background = cfg.Background.withDefaults()
	return cfg, nil
}
