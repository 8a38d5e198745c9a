package novel

// injectKind is the type of a synthetic input event.
type injectKind uint8

const (
	injectMove injectKind = iota
	injectClick
	injectLeave
	injectKey
	injectText
)

// syntheticEvent is one injected input event. Screen coordinates are used
// (matching what a screenshot shows), identical to real mouse input.
type syntheticEvent struct {
	kind injectKind
	x, y float64
	key  Key
	mods KeyModifiers
	text string
}

// InjectMove queues a pointer move to the given screen coordinates. Events
// are consumed one per frame, in place of real input.
func (st *Stage) InjectMove(x, y float64) {
	st.injectQueue = append(st.injectQueue, syntheticEvent{kind: injectMove, x: x, y: y})
}

// InjectClick queues a move to (x, y) followed by a left click there.
// Consumes two frames.
func (st *Stage) InjectClick(x, y float64) {
	st.InjectMove(x, y)
	st.injectQueue = append(st.injectQueue, syntheticEvent{kind: injectClick, x: x, y: y})
}

// InjectLeave queues the pointer leaving the window.
func (st *Stage) InjectLeave() {
	st.injectQueue = append(st.injectQueue, syntheticEvent{kind: injectLeave})
}

// InjectKey queues a key press.
func (st *Stage) InjectKey(k Key, mods KeyModifiers) {
	st.injectQueue = append(st.injectQueue, syntheticEvent{kind: injectKey, key: k, mods: mods})
}

// InjectText queues typed text. The whole string arrives in one frame.
func (st *Stage) InjectText(s string) {
	st.injectQueue = append(st.injectQueue, syntheticEvent{kind: injectText, text: s})
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (st *Stage) processInjectedInput() bool {
	if len(st.injectQueue) == 0 {
		return false
	}
	evt := st.injectQueue[0]
	copy(st.injectQueue, st.injectQueue[1:])
	st.injectQueue = st.injectQueue[:len(st.injectQueue)-1]

	switch evt.kind {
	case injectMove:
		st.pointerAt(evt.x, evt.y)
	case injectClick:
		st.pointerAt(evt.x, evt.y)
		st.click(evt.x, evt.y)
	case injectLeave:
		st.ctrl.PointerLeave()
	case injectKey:
		st.key(evt.key, evt.mods)
	case injectText:
		for _, r := range evt.text {
			st.typeRune(r)
		}
	}
	return true
}
