package novel

import "sort"

// Actor is a participant that can appear on stage and speak. Actors are
// looked up by ID from the mapping handed to the controller and compared by
// pointer identity, so callers must keep the same *Actor for the lifetime of
// a scene.
type Actor struct {
	ID              string `json:"id" toml:"id"`
	Name            string `json:"name" toml:"name"`
	ThemeColor      string `json:"themeColor,omitempty" toml:"theme_color"`
	ThemeFontFamily string `json:"themeFontFamily,omitempty" toml:"theme_font_family"`
	DefaultImageURL string `json:"defaultImageUrl,omitempty" toml:"default_image_url"`
}

// ScriptEntry is one line of a scene. An empty SpeakerID means narration.
type ScriptEntry struct {
	SpeakerID string `json:"speakerId,omitempty" toml:"speaker_id"`
	Message   string `json:"message,omitempty" toml:"message"`
	SpeechURL string `json:"speechUrl,omitempty" toml:"speech_url"`
	EndScene  bool   `json:"endScene,omitempty" toml:"end_scene"`
}

// Script is an ordered scene. ID identifies the scene: a continuation that
// returns a different ID starts a new scene instead of extending this one.
type Script struct {
	ID      string        `json:"id" toml:"id"`
	Entries []ScriptEntry `json:"script" toml:"script"`
}

// Len returns the number of entries.
func (s Script) Len() int { return len(s.Entries) }

// Entry returns the entry at i, or ok=false when i is out of range.
func (s Script) Entry(i int) (e ScriptEntry, ok bool) {
	if i < 0 || i >= len(s.Entries) {
		return ScriptEntry{}, false
	}
	return s.Entries[i], true
}

// Clone returns a copy that shares no backing array with s.
func (s Script) Clone() Script {
	out := Script{ID: s.ID}
	if s.Entries != nil {
		out.Entries = make([]ScriptEntry, len(s.Entries))
		copy(out.Entries, s.Entries)
	}
	return out
}

// Truncate returns a copy holding entries [0, n). n is clamped to [0, Len()].
func (s Script) Truncate(n int) Script {
	n = clampInt(n, 0, len(s.Entries))
	out := Script{ID: s.ID, Entries: make([]ScriptEntry, n)}
	copy(out.Entries, s.Entries[:n])
	return out
}

// ActorMap indexes actors by ID.
type ActorMap map[string]*Actor

// NewActorMap builds an ActorMap. Later actors with a duplicate ID win.
func NewActorMap(actors ...*Actor) ActorMap {
	m := make(ActorMap, len(actors))
	for _, a := range actors {
		if a != nil {
			m[a.ID] = a
		}
	}
	return m
}

func sortedActors(m ActorMap) []*Actor {
	out := make([]*Actor, 0, len(m))
	for _, a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
