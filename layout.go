package novel

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Stage geometry, in viewport percentages.
const (
	HoverRange      = 10.0 // max horizontal distance between pointer and portrait
	SpeakerX        = 50   // speakers are pinned to the middle of the stage
	SpeakerZ        = 100  // speakers draw above everyone else
	GhostZ          = 45
	GhostLeftX      = 10
	GhostRightX     = 90
	idleHeightVH    = 80.0
	talkingHeightVH = 90.0
)

// ActorXPosition returns the horizontal slot (percent of stage width) of the
// i-th of total present actors. Even indices go left, odd go right; each side
// spreads its actors over a span that grows with the cast, centered at 30/70
// or, when someone is speaking, 25/75. A lone actor stands at 50.
func ActorXPosition(i, total int, anySpeaker bool) int {
	if total == 1 {
		return 50
	}
	half := float64(total-2) / 2
	leftRange := math.Min(40, math.Ceil(half)*20)
	rightRange := math.Min(40, math.Floor(half)*20)

	leftSide := i%2 == 0
	var indexOnSide, actorsOnSide int
	var span float64
	var center int
	if leftSide {
		indexOnSide = i / 2
		actorsOnSide = (total + 1) / 2
		span = leftRange
		center = 30
		if anySpeaker {
			center = 25
		}
	} else {
		indexOnSide = (i - 1) / 2
		actorsOnSide = total / 2
		span = rightRange
		center = 70
		if anySpeaker {
			center = 75
		}
	}
	increment := 0.5
	if actorsOnSide > 1 {
		increment = float64(indexOnSide) / float64(actorsOnSide-1)
	}
	return int(jsRound(increment*span)) + center - int(math.Floor(span/2))
}

// jsRound rounds half up, matching the convention used for slot positions
// (math.Round would send -0.5 away from zero).
func jsRound(v float64) float64 { return math.Floor(v + 0.5) }

// ZIndex orders idle portraits so the ones nearest the middle draw on top.
func ZIndex(x int) int {
	d := x - 50
	if d < 0 {
		d = -d
	}
	return 50 - d
}

// StageLayout holds the layout constants that depend on orientation.
type StageLayout struct {
	Vertical      bool
	PortraitY     float64 // bottom offset, vh
	MessageBoxTop float64 // top edge of the message box, vh
}

// NewStageLayout returns the layout for the given orientation.
func NewStageLayout(vertical bool) StageLayout {
	if vertical {
		return StageLayout{Vertical: true, PortraitY: 20, MessageBoxTop: 50}
	}
	return StageLayout{PortraitY: 0, MessageBoxTop: 60}
}

// HeightMultiplier scales portrait heights; vertical stages shrink idle
// actors more than the speaker. Ghosts are always a little smaller.
func (l StageLayout) HeightMultiplier(speaking, ghost bool) float64 {
	if ghost {
		if l.Vertical {
			return 0.65
		}
		return 0.85
	}
	if !l.Vertical {
		return 1
	}
	if speaking {
		return 0.9
	}
	return 0.7
}

// GhostSide is the screen edge a ghost speaker slides in from.
type GhostSide uint8

const (
	GhostLeft GhostSide = iota
	GhostRight
)

func (g GhostSide) String() string {
	if g == GhostRight {
		return "right"
	}
	return "left"
}

// X returns the on-stage position of a ghost on this side.
func (g GhostSide) X() int {
	if g == GhostRight {
		return GhostRightX
	}
	return GhostLeftX
}

// GhostSideFor picks the edge a ghost speaker enters from. It depends only
// on the actor's ID so the same actor always appears on the same side.
func GhostSideFor(a *Actor) GhostSide {
	if a == nil || a.ID == "" || a.ID[0]%2 == 0 {
		return GhostLeft
	}
	return GhostRight
}

// Placement is where one portrait sits this frame.
type Placement struct {
	Actor    *Actor
	X        int // slot position; the drawn position of a speaker is SpeakerX
	Z        int
	Speaking bool
	Ghost    bool
	Side     GhostSide
}

// EffectiveX returns the position used for drawing and hover tests.
func (p Placement) EffectiveX() int {
	switch {
	case p.Ghost:
		return p.Side.X()
	case p.Speaking:
		return SpeakerX
	default:
		return p.X
	}
}

// PlaceActors lays out the present actors and, when ghosts are enabled and
// the speaker is not among them, appends the speaker as a ghost.
func PlaceActors(present []*Actor, speaker *Actor, ghosts bool) []Placement {
	out := make([]Placement, 0, len(present)+1)
	members := mapset.New[*Actor]()
	for i, a := range present {
		members.Put(a)
		x := ActorXPosition(i, len(present), speaker != nil)
		p := Placement{Actor: a, X: x, Z: ZIndex(x), Speaking: a == speaker}
		if p.Speaking {
			p.Z = SpeakerZ
		}
		out = append(out, p)
	}
	if ghosts && speaker != nil && !members.Has(speaker) {
		side := GhostSideFor(speaker)
		out = append(out, Placement{
			Actor:    speaker,
			X:        side.X(),
			Z:        GhostZ,
			Speaking: true,
			Ghost:    true,
			Side:     side,
		})
	}
	return out
}

// HoverTarget returns the actor under the pointer, or nil. pointer is in
// viewport percentages; nil means the pointer is off the stage. Anything
// below boxTop (the message box) hovers nothing. Among placements within
// HoverRange of the pointer the closest wins; on a tie the earlier one.
func HoverTarget(pointer *Vec2, boxTop float64, placements []Placement) *Actor {
	if pointer == nil || pointer.Y > boxTop {
		return nil
	}
	var best *Actor
	bestDist := math.Inf(1)
	for _, p := range placements {
		d := math.Abs(pointer.X - float64(p.EffectiveX()))
		if d < bestDist && d <= HoverRange {
			bestDist = d
			best = p.Actor
		}
	}
	return best
}
