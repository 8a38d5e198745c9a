package novel

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// SceneFile is the on-disk form of a playable scene: the script, its cast and
// the backgrounds to show as the cursor moves. Both TOML and JSON are
// accepted; the format is picked from the file extension.
type SceneFile struct {
	Script
	Actors      []*Actor        `json:"actors" toml:"actors"`
	Background  string          `json:"background,omitempty" toml:"background"`
	Backgrounds []BackgroundCue `json:"backgrounds,omitempty" toml:"backgrounds"`
	// Replies feed the scripted continuation server; Closing ends the
	// scene when the player wraps up.
	Replies []ScriptEntry `json:"replies,omitempty" toml:"replies"`
	Closing ScriptEntry   `json:"closing,omitempty" toml:"closing"`
	// AssetDir is prepended to relative image and audio paths. LoadScene
	// defaults it to the scene file's directory.
	AssetDir string `json:"assetDir,omitempty" toml:"asset_dir"`
}

// BackgroundCue switches the background once the cursor reaches From.
type BackgroundCue struct {
	From int    `json:"from" toml:"from"`
	URL  string `json:"url" toml:"url"`
}

// LoadScene reads a scene from a .toml or .json file.
func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene %s", path)
	}
	var sf SceneFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &sf)
	default:
		_, err = toml.Decode(string(data), &sf)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode scene %s", path)
	}
	if sf.AssetDir == "" {
		sf.AssetDir = filepath.Dir(path)
	}
	if sf.ID == "" {
		sf.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	sort.SliceStable(sf.Backgrounds, func(i, j int) bool {
		return sf.Backgrounds[i].From < sf.Backgrounds[j].From
	})
	return &sf, nil
}

// ActorMap indexes the scene's cast.
func (sf *SceneFile) ActorMap() ActorMap {
	return NewActorMap(sf.Actors...)
}

// BackgroundAt returns the background in effect at index: the last cue whose
// From is at or before index, else the scene-wide Background.
func (sf *SceneFile) BackgroundAt(index int) string {
	url := sf.Background
	for _, cue := range sf.Backgrounds {
		if cue.From > index {
			break
		}
		url = cue.URL
	}
	return sf.Resolve(url)
}

// Resolve turns a relative asset path into one rooted at AssetDir. URLs with
// a scheme and absolute paths pass through.
func (sf *SceneFile) Resolve(p string) string {
	if p == "" || sf.AssetDir == "" || filepath.IsAbs(p) || strings.Contains(p, "://") {
		return p
	}
	return filepath.Join(sf.AssetDir, p)
}

// PlayableScript returns the script with speech paths resolved against
// AssetDir.
func (sf *SceneFile) PlayableScript() Script {
	s := sf.Script.Clone()
	for i := range s.Entries {
		s.Entries[i].SpeechURL = sf.Resolve(s.Entries[i].SpeechURL)
	}
	return s
}
