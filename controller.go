package novel

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// SubmitContext accompanies a submission raised through Options.OnSubmit.
type SubmitContext struct {
	Index  int
	Entry  *ScriptEntry
	Script Script
	WrapUp bool
}

// ButtonKind is the action of the submit button.
type ButtonKind uint8

const (
	ButtonContinue ButtonKind = iota // advance, or ask for more with an empty input
	ButtonSend                       // submit the typed text
	ButtonEnd                        // close the finished scene
)

// SubmitButton is what the submit button shows.
type SubmitButton struct {
	Label string
	Kind  ButtonKind
}

// ButtonState is handed to Options.SubmitButton.
type ButtonState struct {
	Index      int
	SceneEnded bool
	InputEmpty bool
	Loading    bool
}

// Options wires a Controller to its caller. PresentActors and ActorImageURL
// are required; everything else is optional.
type Options struct {
	Actors ActorMap

	// PresentActors decides who is on stage at an entry.
	PresentActors func(s Script, index int) []*Actor
	// ActorImageURL picks the portrait for an actor at an entry.
	ActorImageURL func(a *Actor, s Script, index int) string
	// BackgroundURL picks the backdrop for an entry. When nil,
	// StaticBackgroundURL is used for every entry.
	BackgroundURL       func(s Script, index int) string
	StaticBackgroundURL string
	// ResolveSpeaker overrides the default lookup of entry.SpeakerID in
	// Actors. See SpeakerByID and SpeakerByName.
	ResolveSpeaker func(s Script, index int) *Actor

	// Continuation produces more script after a submission or reroll.
	Continuation Continuation
	// Context is passed to Continuation. Defaults to context.Background.
	Context context.Context
	// Sink switches the controller to controlled mode: edits and
	// submissions are forwarded to it and the caller pushes the resulting
	// script back with SetScript.
	Sink ScriptSink

	OnSubmit   func(text string, sc SubmitContext)
	OnReroll   func(index int)
	OnWrapUp   func(index int)
	OnClose    func()
	OnNavigate func(from, to int)

	// InputPlaceholder takes precedence over StaticPlaceholder.
	InputPlaceholder  func(index int, entry *ScriptEntry) string
	StaticPlaceholder string
	SubmitButton      func(ButtonState) SubmitButton
	Nameplate         func(speaker *Actor) string
	HoverInfo         func(hovered *Actor) string

	AudioFactory AudioFactory
	// Scheduler drives timers. A new one is created when nil.
	Scheduler *Scheduler

	Config Config
}

type editSession struct {
	active   bool
	draft    string
	original string
}

// Controller plays a script: it owns the cursor, the typewriter, speech
// audio, the edit session and the continuation calls, and derives everything
// the stage draws from one (script, index) snapshot.
//
// All methods must be called from one goroutine (the game loop). A running
// continuation only posts its result; Update applies it.
type Controller struct {
	opts   Options
	cfg    Config
	ctx    context.Context
	store  ScriptStore
	sched  *Scheduler
	typer  *TypeOut
	speech *SpeechChannel
	calls  *inflight
	layout StageLayout

	index      int
	generation int
	finished   bool
	edit       editSession
	input      string
	lastErr    error
	closed     bool

	pointer *Vec2
	hovered *Actor
	boxTop  float64

	portraits  map[string]*Portrait
	background *Background
}

// NewController builds a controller over s. The store variant is chosen
// here: controlled when opts.Sink is set, owning otherwise.
func NewController(s Script, opts Options) (*Controller, error) {
	if opts.PresentActors == nil {
		return nil, errors.New("novel: Options.PresentActors is required")
	}
	if opts.ActorImageURL == nil {
		return nil, errors.New("novel: Options.ActorImageURL is required")
	}
	if opts.Actors == nil {
		opts.Actors = ActorMap{}
	}
	if opts.ResolveSpeaker == nil {
		opts.ResolveSpeaker = SpeakerByID(opts.Actors)
	}
	if opts.BackgroundURL == nil {
		opts.BackgroundURL = StaticBackground(opts.StaticBackgroundURL)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewScheduler()
	}
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}

	c := &Controller{
		opts:      opts,
		cfg:       cfg,
		ctx:       opts.Context,
		sched:     opts.Scheduler,
		typer:     NewTypeOut(opts.Scheduler, cfg.TypingSpeed.Duration),
		speech:    NewSpeechChannel(opts.AudioFactory, cfg.Audio),
		calls:     newInflight(),
		layout:    NewStageLayout(cfg.VerticalLayout),
		portraits: make(map[string]*Portrait),
	}
	if opts.Sink != nil {
		c.store = NewDelegatingStore(s, opts.Sink)
	} else {
		c.store = NewOwningStore(s)
	}
	c.boxTop = c.layout.MessageBoxTop
	c.background = NewBackground(c.sched, opts.BackgroundURL(c.store.Script(), 0), cfg.Background)
	c.enter(0, true)
	return c, nil
}

// --- Snapshot ---

// scene is everything derived from one (script, index) pair.
type scene struct {
	script  Script
	index   int
	entry   *ScriptEntry
	present []*Actor
	speaker *Actor
	message Span
	ended   bool
}

func (c *Controller) snapshot() scene {
	s := c.store.Script()
	sc := scene{script: s, index: c.index}
	if e, ok := s.Entry(c.index); ok {
		sc.entry = &e
		sc.ended = e.EndScene
	}
	if s.Len() == 0 {
		sc.message = Span{Kind: SpanGroup}
		return sc
	}
	sc.present = c.opts.PresentActors(s, c.index)
	sc.speaker = c.opts.ResolveSpeaker(s, c.index)
	msg := ""
	if sc.entry != nil {
		msg = sc.entry.Message
	}
	sc.message = FormatMessage(msg, sc.speaker)
	return sc
}

// --- Cursor ---

// enter moves the cursor to i (clamped) and runs the per-entry side
// effects. force treats an unchanged index as a change, which happens when
// a new scene replaces the script.
func (c *Controller) enter(i int, force bool) {
	n := c.store.Script().Len()
	i = clampInt(i, 0, max(0, n-1))
	if i == c.index && !force {
		c.refresh()
		return
	}
	if c.edit.active {
		c.ConfirmEdit()
	}
	from := c.index
	c.index = i
	c.generation++
	c.finished = false
	logger.Debug("novel: cursor", "from", from, "to", i, "len", n)

	// Tear down the previous clip before looking at the new entry.
	url := ""
	if e, ok := c.store.Script().Entry(i); ok {
		url = e.SpeechURL
	}
	c.speech.Switch(url)

	if from != i && c.opts.OnNavigate != nil {
		c.opts.OnNavigate(from, i)
	}
	c.refresh()
}

// refresh re-derives the snapshot and pushes it to the typewriter, the
// portraits, the background and the hover target.
func (c *Controller) refresh() {
	sc := c.snapshot()
	if sc.script.Len() == 0 {
		c.typer.Clear()
		c.finished = true
	} else {
		c.typer.SetContent(sc.message, c.generation, c.typingDone)
		c.finished = c.typer.Done()
	}
	c.background.SetURL(c.opts.BackgroundURL(sc.script, sc.index))
	c.stagePortraits(sc)
}

func (c *Controller) typingDone() { c.finished = true }

// Index returns the cursor.
func (c *Controller) Index() int { return c.index }

// Script returns the script being played.
func (c *Controller) Script() Script { return c.store.Script() }

// Owning reports whether the controller owns its script (uncontrolled mode).
func (c *Controller) Owning() bool { return c.store.Owning() }

// Loading reports whether a continuation call is in flight.
func (c *Controller) Loading() bool { return c.calls.busy }

// TypingDone reports whether the current message is fully revealed.
func (c *Controller) TypingDone() bool { return c.finished }

// Err returns the error of the last failed continuation call, cleared by the
// next successful one.
func (c *Controller) Err() error { return c.lastErr }

// Advance finishes typing when the message is still being revealed (if
// skipping is allowed), and otherwise moves to the next entry. An open edit
// is confirmed first. Whether to move is decided by the typing state from
// before the edit, since confirming a changed draft restarts the reveal.
func (c *Controller) Advance() {
	done := c.finished
	if c.edit.active {
		c.ConfirmEdit()
	}
	if !done {
		if c.cfg.AllowTypingSkip {
			c.typer.Finish()
		}
		return
	}
	c.enter(c.index+1, false)
}

// Retreat confirms an open edit and moves to the previous entry.
func (c *Controller) Retreat() {
	if c.edit.active {
		c.ConfirmEdit()
	}
	c.enter(c.index-1, false)
}

// Seek confirms an open edit and moves the cursor to i.
func (c *Controller) Seek(i int) {
	if c.edit.active {
		c.ConfirmEdit()
	}
	c.enter(i, false)
}

// SetScript installs a script pushed by the caller. A script with a new ID
// restarts at the first entry; otherwise the cursor is kept (clamped).
func (c *Controller) SetScript(s Script) {
	if c.edit.active {
		c.ConfirmEdit()
	}
	newScene := s.ID != c.store.Script().ID
	c.store.SetScript(s)
	if newScene {
		c.enter(0, true)
		return
	}
	c.enter(c.index, false)
}

// --- Editing ---

// Editing reports whether an edit session is open.
func (c *Controller) Editing() bool { return c.edit.active }

// Draft returns the text of the open edit session.
func (c *Controller) Draft() string { return c.edit.draft }

// EnterEdit opens an edit session on the current entry. It does nothing
// while loading or when there is no entry.
func (c *Controller) EnterEdit() {
	if c.edit.active || c.calls.busy {
		return
	}
	e, ok := c.store.Script().Entry(c.index)
	if !ok {
		return
	}
	c.edit = editSession{active: true, draft: e.Message, original: e.Message}
}

// SetDraft replaces the draft of the open edit session.
func (c *Controller) SetDraft(text string) {
	if c.edit.active {
		c.edit.draft = text
	}
}

// ConfirmEdit closes the edit session, writing the draft back when it
// differs from the message it started from.
func (c *Controller) ConfirmEdit() {
	if !c.edit.active {
		return
	}
	sess := c.edit
	c.edit = editSession{}
	if sess.draft == sess.original {
		return
	}
	c.store.UpdateMessage(c.index, sess.draft)
	c.refresh()
}

// CancelEdit discards the draft.
func (c *Controller) CancelEdit() {
	c.edit = editSession{}
}

// --- Input and submission ---

// Input returns the text in the input box.
func (c *Controller) Input() string { return c.input }

// SetInput replaces the text in the input box.
func (c *Controller) SetInput(text string) { c.input = text }

// SubmitInput acts on the input box: on an ended scene with nothing typed
// it closes, otherwise it submits the typed text and clears the box.
func (c *Controller) SubmitInput() error {
	if c.calls.busy {
		return ErrContinuationBusy
	}
	if c.sceneEnded() && strings.TrimSpace(c.input) == "" {
		if c.opts.OnClose != nil {
			c.opts.OnClose()
		}
		return nil
	}
	return c.submitInput(false)
}

// WrapUp asks to bring the scene to a close: OnWrapUp when set, otherwise
// a submission of the input box flagged as a wrap-up.
func (c *Controller) WrapUp() error {
	if c.calls.busy {
		return ErrContinuationBusy
	}
	if c.opts.OnWrapUp != nil {
		c.opts.OnWrapUp(c.index)
		return nil
	}
	return c.submitInput(true)
}

func (c *Controller) submitInput(wrapUp bool) error {
	err := c.submit(c.input, wrapUp)
	if err == nil {
		c.input = ""
	}
	return err
}

// Submit plays the player's turn:
//
//  1. Blank text before the last entry just advances.
//  2. Non-blank text drops every entry after the cursor, appends the text
//     as a line of the player and moves onto it.
//  3. With a continuation configured, the script is sent off and the
//     result applied by a later Update.
//
// A rejected continuation leaves the script as it was after step 2.
func (c *Controller) Submit(text string) error {
	return c.submit(text, false)
}

func (c *Controller) submit(text string, wrapUp bool) error {
	if c.calls.busy {
		return ErrContinuationBusy
	}
	if c.edit.active {
		c.ConfirmEdit()
	}
	s := c.store.Script()
	blank := strings.TrimSpace(text) == ""
	if blank && c.index < s.Len()-1 {
		c.Advance()
		return nil
	}

	if c.opts.OnSubmit != nil {
		sc := SubmitContext{Index: c.index, Script: s.Clone(), WrapUp: wrapUp}
		if e, ok := s.Entry(c.index); ok {
			sc.Entry = &e
		}
		c.opts.OnSubmit(text, sc)
	}

	if !blank {
		next := s.Truncate(c.index + 1)
		next.Entries = append(next.Entries, ScriptEntry{SpeakerID: c.cfg.PlayerID, Message: text})
		c.store.Replace(next)
		c.enter(next.Len()-1, false)
	}

	if c.opts.Continuation == nil {
		return nil
	}
	s = c.store.Script()
	req := ContinuationRequest{Text: text, Script: s.Clone(), Index: c.index, WrapUp: wrapUp}
	if e, ok := s.Entry(c.index); ok {
		req.Entry = &e
	}
	c.calls.dispatch(c.ctx, c.opts.Continuation, req, continueSubmit)
	return nil
}

// Reroll regenerates the script from entry at onward. Entries from at on
// are dropped first, the same way Submit drops what follows the cursor, and
// the cursor is clamped onto what is left. The continuation gets the kept
// entries and the index at-1; its result replaces the script and the cursor
// lands on at. A rejected reroll leaves the script truncated.
func (c *Controller) Reroll(at int) error {
	if !c.cfg.EnableReroll {
		return ErrRerollDisabled
	}
	if c.calls.busy {
		return ErrContinuationBusy
	}
	if c.edit.active {
		c.ConfirmEdit()
	}
	if c.opts.OnReroll != nil {
		c.opts.OnReroll(at)
	}
	if c.opts.Continuation == nil {
		if c.opts.OnReroll != nil {
			return nil
		}
		return ErrNoContinuation
	}
	s := c.store.Script()
	at = clampInt(at, 0, s.Len())
	kept := s.Truncate(at)
	if kept.Len() < s.Len() {
		c.store.Replace(kept)
		c.enter(c.index, false)
	}
	req := ContinuationRequest{Script: kept.Clone(), Index: at - 1, Reroll: true}
	if e, ok := kept.Entry(at - 1); ok {
		req.Entry = &e
	}
	c.calls.dispatch(c.ctx, c.opts.Continuation, req, continueReroll)
	return nil
}

func (c *Controller) apply(r continuationResult) {
	if c.closed {
		return
	}
	if r.err != nil {
		c.lastErr = r.err
		logger.Warn("novel: continuation failed", "index", r.index, "reroll", r.kind == continueReroll, "err", r.err)
		return
	}
	c.lastErr = nil
	c.store.Replace(r.script)
	if r.script.ID != r.sentID {
		c.enter(0, true)
		return
	}
	// Both kinds land on the entry after the one continued from. A reroll
	// that produced the same entry count lands on a new line at the same
	// index, so the typewriter restarts.
	c.enter(r.index+1, r.kind == continueReroll)
}

// Settle blocks until an in-flight continuation finishes and applies its
// result. It returns at once when nothing is in flight.
func (c *Controller) Settle(ctx context.Context) error {
	if !c.calls.busy {
		return nil
	}
	r, ok := c.calls.wait(ctx)
	if !ok {
		return ctx.Err()
	}
	c.apply(r)
	return nil
}

// --- Pointer and keys ---

// ClickMessage handles a click on the message box: it finishes typing, or
// advances once typing is done and skipping is allowed.
func (c *Controller) ClickMessage() {
	if c.edit.active || c.calls.busy {
		return
	}
	if !c.finished {
		c.typer.Finish()
		return
	}
	if c.cfg.AllowTypingSkip {
		c.Advance()
	}
}

// HandleKey routes a key press. inputFocused tells whether the input box has
// keyboard focus. It reports whether the key was used.
func (c *Controller) HandleKey(k Key, mods KeyModifiers, inputFocused bool) bool {
	if c.edit.active {
		switch {
		case k == KeyEnter && mods&ModCtrl != 0:
			c.ConfirmEdit()
			return true
		case k == KeyEscape:
			c.CancelEdit()
			return true
		}
		return false
	}
	navigable := !inputFocused || strings.TrimSpace(c.input) == ""
	switch k {
	case KeyLeft:
		if !navigable || c.calls.busy {
			return false
		}
		c.Retreat()
		return true
	case KeyRight:
		if !navigable || c.calls.busy {
			return false
		}
		c.Advance()
		return true
	case KeyEnter:
		if !inputFocused || c.calls.busy {
			return false
		}
		if err := c.SubmitInput(); err != nil {
			logger.Warn("novel: submit", "err", err)
		}
		return true
	}
	return false
}

// PointerMove records the pointer in viewport percentages (0-100 on both
// axes) and recomputes the hover target.
func (c *Controller) PointerMove(x, y float64) {
	c.pointer = &Vec2{X: x, Y: y}
	c.stagePortraits(c.snapshot())
}

// PointerLeave clears the pointer and the hover target.
func (c *Controller) PointerLeave() {
	c.pointer = nil
	c.stagePortraits(c.snapshot())
}

// SetMessageBoxTop sets the measured top edge of the message box in vh.
// The pointer below it hovers nothing.
func (c *Controller) SetMessageBoxTop(vh float64) {
	if vh == c.boxTop {
		return
	}
	c.boxTop = vh
	c.stagePortraits(c.snapshot())
}

// Hovered returns the actor under the pointer, or nil.
func (c *Controller) Hovered() *Actor { return c.hovered }

// --- Portraits ---

// stagePortraits retargets every portrait for sc and recomputes the hover
// target. Portraits of actors that left are sent off stage and dropped by
// Update once they are gone.
func (c *Controller) stagePortraits(sc scene) {
	placements := PlaceActors(sc.present, sc.speaker, c.cfg.GhostSpeakers)
	c.hovered = HoverTarget(c.pointer, c.boxTop, placements)

	seen := make(map[string]bool, len(placements))
	for _, p := range placements {
		key := p.Actor.ID
		seen[key] = true
		pt := c.portraits[key]
		if pt == nil {
			pt = NewPortrait(key, p, c.layout)
			c.portraits[key] = pt
		}
		pose := PoseIdle
		if p.Speaking {
			pose = PoseTalking
		}
		pt.Actor = p.Actor
		pt.SetPose(pose, p, c.layout)

		tint := HighlightIdle
		switch {
		case p.Actor == c.hovered:
			tint = HighlightHovered
		case p.Ghost:
			tint = HighlightGhost
		}
		url := c.opts.ActorImageURL(p.Actor, sc.script, sc.index)
		if url == "" {
			url = p.Actor.DefaultImageURL
		}
		pt.SetImage(url, tint)
	}
	for key, pt := range c.portraits {
		if !seen[key] && pt.Pose != PoseAbsent {
			pt.SetPose(PoseAbsent, pt.Placement, c.layout)
			pt.SetTalking(false)
		}
	}
}

// Portraits returns the live portraits in draw order (lowest Z first).
func (c *Controller) Portraits() []*Portrait {
	out := make([]*Portrait, 0, len(c.portraits))
	for _, pt := range c.portraits {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Placement.Z != out[j].Placement.Z {
			return out[i].Placement.Z < out[j].Placement.Z
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Background returns the backdrop presenter.
func (c *Controller) Background() *Background { return c.background }

// Layout returns the stage layout in use.
func (c *Controller) Layout() StageLayout { return c.layout }

// Config returns the controller's configuration.
func (c *Controller) Config() Config { return c.cfg }

// --- Frame ---

// Update advances the controller by dt: continuation results are applied,
// timers fire, the speech flag is refreshed and animations step.
func (c *Controller) Update(dt time.Duration) {
	if c.closed {
		return
	}
	if r, ok := c.calls.poll(); ok {
		c.apply(r)
	}
	c.sched.Advance(dt)
	c.speech.Poll()

	talking := c.cfg.TalkingAnimation && c.speech.Playing()
	secs := float32(dt.Seconds())
	for key, pt := range c.portraits {
		pt.SetTalking(talking && pt.Pose == PoseTalking)
		pt.Update(secs)
		if pt.Gone() {
			delete(c.portraits, key)
		}
	}
	c.background.Update(secs)
}

// AudioPlaying reports whether a speech clip is playing.
func (c *Controller) AudioPlaying() bool { return c.speech.Playing() }

// Close releases timers and audio and discards an open edit. An in-flight
// continuation is left to finish; its result is dropped.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.edit = editSession{}
	c.typer.Stop()
	c.background.Stop()
	c.sched.StopAll()
	c.speech.Close()
}

// --- View ---

// View is the state of the widget for one frame.
type View struct {
	Index    int
	Length   int
	Progress string

	Speaker    *Actor
	Nameplate  string
	Message    Span
	Visible    Span
	TypingDone bool
	SceneEnded bool

	Loading bool
	Editing bool
	Draft   string

	Input       string
	Placeholder string
	Button      SubmitButton

	CanRetreat bool
	CanAdvance bool
	CanEdit    bool
	CanReroll  bool
	CanWrapUp  bool
	ShowInput  bool
	ShowAction bool

	Portraits  []*Portrait
	Hovered    *Actor
	HoverInfo  string
	Background string

	AudioPlaying bool
}

// View derives the widget state from the current snapshot.
func (c *Controller) View() View {
	sc := c.snapshot()
	n := sc.script.Len()
	loading := c.calls.busy
	v := View{
		Index:        c.index,
		Length:       n,
		Progress:     progressLabel(c.index, n),
		Speaker:      sc.speaker,
		Message:      sc.message,
		Visible:      c.typer.Visible(),
		TypingDone:   c.finished,
		SceneEnded:   sc.ended,
		Loading:      loading,
		Editing:      c.edit.active,
		Draft:        c.edit.draft,
		Input:        c.input,
		CanRetreat:   n > 0 && c.index > 0 && !loading,
		CanAdvance:   c.index < n-1 && !loading,
		CanEdit:      n > 0 && !loading && !c.edit.active,
		CanReroll:    c.cfg.EnableReroll && (c.opts.OnReroll != nil || c.opts.Continuation != nil) && !loading,
		CanWrapUp:    (c.opts.OnWrapUp != nil || c.opts.Continuation != nil) && !loading,
		ShowInput:    !c.cfg.HideInput,
		ShowAction:   !c.cfg.HideActionButtons,
		Portraits:    c.Portraits(),
		Hovered:      c.hovered,
		Background:   c.background.Current(),
		AudioPlaying: c.speech.Playing(),
	}

	if c.opts.Nameplate != nil {
		v.Nameplate = c.opts.Nameplate(sc.speaker)
	} else if sc.speaker != nil {
		v.Nameplate = sc.speaker.Name
	} else {
		v.Nameplate = label(LabelNarrator)
	}

	switch {
	case c.opts.InputPlaceholder != nil:
		v.Placeholder = c.opts.InputPlaceholder(c.index, sc.entry)
	case c.opts.StaticPlaceholder != "":
		v.Placeholder = c.opts.StaticPlaceholder
	case sc.ended:
		v.Placeholder = label(LabelSceneConcluded)
	case loading:
		v.Placeholder = label(LabelProcessing)
	default:
		v.Placeholder = label(LabelTypeAction)
	}

	bs := ButtonState{Index: c.index, SceneEnded: sc.ended, InputEmpty: strings.TrimSpace(c.input) == "", Loading: loading}
	if c.opts.SubmitButton != nil {
		v.Button = c.opts.SubmitButton(bs)
	} else {
		v.Button = defaultSubmitButton(bs)
	}

	if c.opts.HoverInfo != nil {
		v.HoverInfo = c.opts.HoverInfo(c.hovered)
	}
	return v
}

func (c *Controller) sceneEnded() bool {
	e, ok := c.store.Script().Entry(c.index)
	return ok && e.EndScene
}

func progressLabel(index, n int) string {
	if n == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", index+1, n)
}

func defaultSubmitButton(bs ButtonState) SubmitButton {
	switch {
	case bs.SceneEnded && bs.InputEmpty:
		return SubmitButton{Label: label(LabelEnd), Kind: ButtonEnd}
	case !bs.InputEmpty:
		return SubmitButton{Label: label(LabelSend), Kind: ButtonSend}
	default:
		return SubmitButton{Label: label(LabelContinue), Kind: ButtonContinue}
	}
}
