// Package novel is a visual-novel scene player for [Ebitengine].
//
// A scene is a [Script]: an ordered list of entries, each with a speaker,
// a message and optional speech audio. The player shows one entry at a time
// with a typewriter effect, a backdrop, portraits of the actors on stage and
// a text input that lets the player add lines and ask for more script.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	actors := novel.NewActorMap(alice, bob)
//	ctrl, err := novel.NewController(script, novel.Options{
//		Actors:        actors,
//		PresentActors: novel.PresentSpeakers(actors, "player"),
//		ActorImageURL: novel.DefaultActorImage,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	stage, err := novel.NewStage(ctrl, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	novel.Run(stage, novel.RunConfig{Title: "Scene", Width: 1280, Height: 720})
//
// # Controller and stage
//
// [Controller] is headless. It owns the cursor, the typewriter, the edit
// session, speech playback and continuation calls, and is driven one tick at
// a time by [Controller.Update]. Everything the widget shows for a frame is
// derived from a single snapshot and returned by [Controller.View], which
// makes the controller testable without a window.
//
// [Stage] implements [ebiten.Game] on top of a controller: it turns mouse and
// keyboard input into controller calls and draws the view.
//
// # Owning and controlled scripts
//
// By default the controller owns its script and applies edits and
// submissions itself. Setting [Options.Sink] hands those writes to the
// caller instead; the caller pushes the result back with
// [Controller.SetScript]. The choice is made once, in [NewController].
//
// # Continuations
//
// A [Continuation] produces more script after the player submits text or
// asks to reroll an entry. It runs on its own goroutine and its result is
// applied on the next Update. Only one call may be in flight; a second
// returns [ErrContinuationBusy]. See the remote package for a websocket
// client and a matching server.
//
// # Message markup
//
// Messages are formatted with [FormatMessage], which styles quoted dialogue
// in the speaker's theme color and runs inline markup through
// [FormatInline]: **bold**, *italic*, __underline__, ~~strike~~,
// ~subscript~ and #, ## or ### headers.
//
// [Ebitengine]: https://ebitengine.org
package novel
