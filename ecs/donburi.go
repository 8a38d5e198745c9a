package ecs

import (
	"github.com/phanxgames/novel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventKind identifies a controller callback.
type SceneEventKind uint8

const (
	EventNavigate SceneEventKind = iota
	EventSubmit
	EventReroll
	EventWrapUp
	EventClose
)

func (k SceneEventKind) String() string {
	switch k {
	case EventNavigate:
		return "navigate"
	case EventSubmit:
		return "submit"
	case EventReroll:
		return "reroll"
	case EventWrapUp:
		return "wrapup"
	case EventClose:
		return "close"
	}
	return "unknown"
}

// SceneEvent is one controller callback. From and To are set for
// EventNavigate; Index for submit, reroll and wrap-up; Text and Script for
// EventSubmit.
type SceneEvent struct {
	Kind   SceneEventKind
	From   int
	To     int
	Index  int
	Text   string
	WrapUp bool
	Script novel.Script
}

// SceneEventType is the Donburi event type for scene events.
var SceneEventType = events.NewEventType[SceneEvent]()

// DonburiHooks publishes controller callbacks into a Donburi world.
type DonburiHooks struct {
	world donburi.World
}

// NewDonburiHooks creates hooks backed by world. Events are queued and
// delivered by ProcessEvents or events.ProcessAllEvents.
func NewDonburiHooks(world donburi.World) *DonburiHooks {
	return &DonburiHooks{world: world}
}

// Emit queues e.
func (h *DonburiHooks) Emit(e SceneEvent) {
	SceneEventType.Publish(h.world, e)
}

// Wire installs the hooks on opts. Callbacks already set keep running,
// before the event is queued. OnReroll and OnWrapUp are only wrapped when
// set, since setting them changes what the controller does.
func (h *DonburiHooks) Wire(opts *novel.Options) {
	onNavigate := opts.OnNavigate
	opts.OnNavigate = func(from, to int) {
		if onNavigate != nil {
			onNavigate(from, to)
		}
		h.Emit(SceneEvent{Kind: EventNavigate, From: from, To: to})
	}

	onSubmit := opts.OnSubmit
	opts.OnSubmit = func(text string, sc novel.SubmitContext) {
		if onSubmit != nil {
			onSubmit(text, sc)
		}
		h.Emit(SceneEvent{Kind: EventSubmit, Index: sc.Index, Text: text, WrapUp: sc.WrapUp, Script: sc.Script})
	}

	if onReroll := opts.OnReroll; onReroll != nil {
		opts.OnReroll = func(index int) {
			onReroll(index)
			h.Emit(SceneEvent{Kind: EventReroll, Index: index})
		}
	}
	if onWrapUp := opts.OnWrapUp; onWrapUp != nil {
		opts.OnWrapUp = func(index int) {
			onWrapUp(index)
			h.Emit(SceneEvent{Kind: EventWrapUp, Index: index, WrapUp: true})
		}
	}

	onClose := opts.OnClose
	opts.OnClose = func() {
		if onClose != nil {
			onClose()
		}
		h.Emit(SceneEvent{Kind: EventClose})
	}
}
