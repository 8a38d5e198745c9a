package novel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a key the widget reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyBackspace:
		return "backspace"
	default:
		return "none"
	}
}

// ParseKey maps a key name ("left", "enter", ...) to a Key.
func ParseKey(name string) Key {
	for k := KeyLeft; k <= KeyBackspace; k++ {
		if k.String() == name {
			return k
		}
	}
	return KeyNone
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

var ebitenKeys = [...]struct {
	key Key
	eb  []ebiten.Key
}{
	{KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft}},
	{KeyRight, []ebiten.Key{ebiten.KeyArrowRight}},
	{KeyEnter, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{KeyEscape, []ebiten.Key{ebiten.KeyEscape}},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// repeatingKeyPressed reports a press on the first frame and then every few
// frames while the key is held.
func repeatingKeyPressed(k ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

// focusTarget is the text field receiving typed characters.
type focusTarget uint8

const (
	focusNone focusTarget = iota
	focusInput
	focusDraft
)

// --- Input processing ---

// processInput reads the mouse and keyboard for one frame. Injected events
// take the place of real input on frames where one is queued.
func (st *Stage) processInput() {
	if st.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	st.pointerAt(float64(mx), float64(my))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		st.click(float64(mx), float64(my))
	}

	mods := readModifiers()
	for _, r := range ebiten.AppendInputChars(st.chars[:0]) {
		st.typeRune(r)
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		st.key(KeyBackspace, mods)
	}
	for _, m := range ebitenKeys {
		for _, k := range m.eb {
			if inpututil.IsKeyJustPressed(k) {
				st.key(m.key, mods)
				break
			}
		}
	}
}

// pointerAt feeds a pointer position in screen pixels to the controller.
func (st *Stage) pointerAt(x, y float64) {
	if st.width == 0 || st.height == 0 || x < 0 || y < 0 || x >= float64(st.width) || y >= float64(st.height) {
		st.ctrl.PointerLeave()
		return
	}
	st.ctrl.PointerMove(x/float64(st.width)*100, y/float64(st.height)*100)
}

// click dispatches a left click at screen pixels (x, y).
func (st *Stage) click(x, y float64) {
	for _, b := range st.buttons {
		if b.r.Contains(x, y) {
			if b.enabled {
				st.press(b.id)
			}
			return
		}
	}
	switch {
	case st.inputBox.Contains(x, y) && !st.ctrl.Config().HideInput:
		st.focus = focusInput
	case st.messageBox.Contains(x, y):
		if st.ctrl.Editing() {
			st.focus = focusDraft
			return
		}
		st.focus = focusNone
		st.ctrl.ClickMessage()
	default:
		st.focus = focusNone
	}
}

// press runs the action of a stage button.
func (st *Stage) press(id buttonID) {
	c := st.ctrl
	var err error
	switch id {
	case buttonPrev:
		c.Retreat()
	case buttonNext:
		c.Advance()
	case buttonEdit:
		c.EnterEdit()
		if c.Editing() {
			st.focus = focusDraft
		}
	case buttonConfirm:
		c.ConfirmEdit()
	case buttonCancel:
		c.CancelEdit()
	case buttonReroll:
		err = c.Reroll(c.Index())
	case buttonSubmit:
		err = c.SubmitInput()
	case buttonWrapUp:
		err = c.WrapUp()
	}
	if err != nil {
		logger.Warn("novel: action failed", "button", id.String(), "err", err)
	}
	if st.focus == focusDraft && !c.Editing() {
		st.focus = focusNone
	}
}

// typeRune inserts a typed character into the focused field.
func (st *Stage) typeRune(r rune) {
	c := st.ctrl
	switch st.focus {
	case focusInput:
		if !c.Loading() {
			c.SetInput(c.Input() + string(r))
		}
	case focusDraft:
		if c.Editing() {
			c.SetDraft(c.Draft() + string(r))
		}
	}
}

// key routes a key press. Text editing keys stay with the focused field;
// everything else goes to the controller.
func (st *Stage) key(k Key, mods KeyModifiers) {
	c := st.ctrl
	switch k {
	case KeyBackspace:
		switch st.focus {
		case focusInput:
			c.SetInput(dropLastRune(c.Input()))
		case focusDraft:
			c.SetDraft(dropLastRune(c.Draft()))
		}
		return
	case KeyEnter:
		if st.focus == focusDraft && c.Editing() && mods&ModCtrl == 0 {
			c.SetDraft(c.Draft() + "\n")
			return
		}
	}
	c.HandleKey(k, mods, st.focus == focusInput)
	if st.focus == focusDraft && !c.Editing() {
		st.focus = focusNone
	}
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
