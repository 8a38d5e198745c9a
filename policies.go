package novel

import "strings"

// SpeakerByID resolves the speaker of an entry by looking its SpeakerID up
// in actors. It is the controller's default speaker policy.
func SpeakerByID(actors ActorMap) func(s Script, index int) *Actor {
	return func(s Script, index int) *Actor {
		e, ok := s.Entry(index)
		if !ok || e.SpeakerID == "" {
			return nil
		}
		return actors[e.SpeakerID]
	}
}

// SpeakerByName resolves speakers for scripts whose SpeakerID holds a display
// name: an exact case-insensitive match first, then the first actor whose
// name contains it. Actors are scanned in ID order so ties are stable.
func SpeakerByName(actors ActorMap) func(s Script, index int) *Actor {
	ordered := sortedActors(actors)
	return func(s Script, index int) *Actor {
		e, ok := s.Entry(index)
		if !ok {
			return nil
		}
		return matchActorName(e.SpeakerID, ordered)
	}
}

func matchActorName(name string, actors []*Actor) *Actor {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return nil
	}
	for _, a := range actors {
		if strings.ToLower(strings.TrimSpace(a.Name)) == want {
			return a
		}
	}
	for _, a := range actors {
		if strings.Contains(strings.ToLower(a.Name), want) {
			return a
		}
	}
	return nil
}

// PresentSpeakers puts on stage every actor who has spoken at or before the
// current entry, in order of first appearance. playerID is never shown.
func PresentSpeakers(actors ActorMap, playerID string) func(s Script, index int) []*Actor {
	return func(s Script, index int) []*Actor {
		var out []*Actor
		seen := make(map[string]bool)
		for i := 0; i <= index && i < s.Len(); i++ {
			id := s.Entries[i].SpeakerID
			if id == "" || id == playerID || seen[id] {
				continue
			}
			seen[id] = true
			if a := actors[id]; a != nil {
				out = append(out, a)
			}
		}
		return out
	}
}

// DefaultActorImage resolves every actor to its DefaultImageURL.
func DefaultActorImage(a *Actor, _ Script, _ int) string {
	if a == nil {
		return ""
	}
	return a.DefaultImageURL
}

// StaticBackground always returns url.
func StaticBackground(url string) func(s Script, index int) string {
	return func(Script, int) string { return url }
}
