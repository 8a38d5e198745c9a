package novel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const harborTOML = `
background = "bg/dock.png"

[[actors]]
id = "mira"
name = "Mira"
theme_color = "#4fa3ff"
default_image_url = "img/mira.png"

[[actors]]
id = "oren"
name = "Oren"
default_image_url = "https://cdn.example/oren.png"

[[script]]
speaker_id = "mira"
message = "\"Tide's coming in.\""
speech_url = "audio/1.ogg"

[[script]]
speaker_id = "oren"
message = "He squints at the water."

[[script]]
message = "The bell rings."

[[backgrounds]]
from = 2
url = "bg/bell.png"

[[backgrounds]]
from = 1
url = "/abs/pier.png"

[[replies]]
speaker_id = "oren"
message = "Then we sail."

[closing]
speaker_id = "mira"
message = "Until tomorrow."
`

func writeScene(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSceneTOML(t *testing.T) {
	path := writeScene(t, "harbor.toml", harborTOML)
	sf, err := LoadScene(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, "harbor", sf.ID, "ID defaults to the file name")
	assert.Equal(t, dir, sf.AssetDir)
	require.Len(t, sf.Entries, 3)
	assert.Equal(t, "mira", sf.Entries[0].SpeakerID)
	require.Len(t, sf.Actors, 2)
	assert.Equal(t, "#4fa3ff", sf.Actors[0].ThemeColor)
	require.Len(t, sf.Replies, 1)
	assert.Equal(t, "Until tomorrow.", sf.Closing.Message)

	// Cues are sorted by From.
	require.Len(t, sf.Backgrounds, 2)
	assert.Equal(t, 1, sf.Backgrounds[0].From)

	m := sf.ActorMap()
	assert.Equal(t, "Oren", m["oren"].Name)
}

func TestSceneBackgroundAt(t *testing.T) {
	sf, err := LoadScene(writeScene(t, "harbor.toml", harborTOML))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(sf.AssetDir, "bg/dock.png"), sf.BackgroundAt(0))
	assert.Equal(t, "/abs/pier.png", sf.BackgroundAt(1))
	assert.Equal(t, filepath.Join(sf.AssetDir, "bg/bell.png"), sf.BackgroundAt(2))
	assert.Equal(t, filepath.Join(sf.AssetDir, "bg/bell.png"), sf.BackgroundAt(9))
}

func TestSceneResolve(t *testing.T) {
	sf := &SceneFile{AssetDir: "scenes"}
	assert.Equal(t, "", sf.Resolve(""))
	assert.Equal(t, filepath.Join("scenes", "a.png"), sf.Resolve("a.png"))
	assert.Equal(t, "https://x/a.png", sf.Resolve("https://x/a.png"))
	assert.Equal(t, "mem://a", sf.Resolve("mem://a"))
	assert.Equal(t, "/abs/a.png", sf.Resolve("/abs/a.png"))

	sf.AssetDir = ""
	assert.Equal(t, "a.png", sf.Resolve("a.png"))
}

func TestScenePlayableScript(t *testing.T) {
	sf, err := LoadScene(writeScene(t, "harbor.toml", harborTOML))
	require.NoError(t, err)

	s := sf.PlayableScript()
	assert.Equal(t, filepath.Join(sf.AssetDir, "audio/1.ogg"), s.Entries[0].SpeechURL)
	assert.Equal(t, "", s.Entries[1].SpeechURL)
	assert.Equal(t, "audio/1.ogg", sf.Entries[0].SpeechURL, "scene file left untouched")
}

func TestLoadSceneJSON(t *testing.T) {
	path := writeScene(t, "intro.json", `{
		"id": "intro",
		"actors": [{"id": "a", "name": "Ada", "defaultImageUrl": "a.png"}],
		"script": [{"speakerId": "a", "message": "Hello"}, {"message": "Fin", "endScene": true}],
		"assetDir": "/assets"
	}`)
	sf, err := LoadScene(path)
	require.NoError(t, err)
	assert.Equal(t, "intro", sf.ID)
	assert.Equal(t, "/assets", sf.AssetDir)
	require.Len(t, sf.Entries, 2)
	assert.True(t, sf.Entries[1].EndScene)
	assert.Equal(t, "a.png", sf.Actors[0].DefaultImageURL)
}

func TestLoadSceneErrors(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadScene(writeScene(t, "bad.json", `{"script": [`))
	assert.Error(t, err)

	_, err = LoadScene(writeScene(t, "bad.toml", `[[script]`))
	assert.Error(t, err)
}
