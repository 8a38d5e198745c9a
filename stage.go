package novel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Stage colors.
var (
	messageTextColor = mustColor("#e8fff0")
	nameplateColor   = mustColor("#bfffd0")
	placeholderColor = ColorWhite.WithAlpha(0.45)
	stageClearColor  = mustColor("#05080c")
	boxFill          = mustColor("#0a141ef2")
	boxBorder        = Color{0, 1, 136.0 / 255, 0.12}
	buttonFill       = ColorWhite.WithAlpha(0.04)
	buttonBorder     = ColorWhite.WithAlpha(0.08)
	buttonDisabled   = ColorWhite.WithAlpha(0.3)
	buttonText       = mustColor("#ccffee")
	actionColor      = mustColor("#00ff88")
	endColor         = mustColor("#ff5a3b")
	inputFill        = ColorWhite.WithAlpha(0.02)
	inputFocused     = actionColor.WithAlpha(0.4)
	draftFill        = ColorWhite.WithAlpha(0.05)
	hoverPanelFill   = mustColor("#0a141ed9")
)

func mustColor(hex string) Color {
	c, ok := ParseHexColor(hex)
	if !ok {
		panic("novel: bad color " + hex)
	}
	return c
}

// buttonID names a stage button.
type buttonID uint8

const (
	buttonPrev buttonID = iota
	buttonNext
	buttonEdit
	buttonConfirm
	buttonCancel
	buttonReroll
	buttonSubmit
	buttonWrapUp
)

var buttonNames = [...]string{"prev", "next", "edit", "confirm", "cancel", "reroll", "submit", "wrapup"}

func (b buttonID) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "unknown"
}

type stageButton struct {
	id      buttonID
	r       Rect
	label   string
	enabled bool
	color   Color
}

// Stage presents a Controller in an Ebitengine window. It implements
// ebiten.Game: Update turns mouse and keyboard input into controller calls
// and advances it by one tick, Draw renders the backdrop, the portraits
// and the message box.
type Stage struct {
	ctrl   *Controller
	assets *AssetCache
	text   *TextRenderer
	blur   *BlurFilter

	// ScreenshotDir is where Screenshot writes PNGs. Defaults to
	// "screenshots".
	ScreenshotDir string
	// Debug prints frame stats to stderr.
	Debug bool
	// ShowFPS draws an FPS counter.
	ShowFPS bool

	width, height int
	focus         focusTarget
	chars         []rune
	view          View

	box        Rect
	messageBox Rect
	inputBox   Rect
	hoverBox   Rect
	buttons    []stageButton

	injectQueue     []syntheticEvent
	shots           []shotRequest
	testRunner      *TestRunner
	lastDebug       time.Time
	stats           debugStats
	quit            bool
}

// NewStage creates a stage for c drawing images from assets. A nil assets
// creates a cache reading with ReadAsset.
func NewStage(c *Controller, assets *AssetCache) (*Stage, error) {
	tr, err := NewTextRenderer(18)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = NewAssetCache(nil, 0)
	}
	return &Stage{
		ctrl:          c,
		assets:        assets,
		text:          tr,
		blur:          NewBlurFilter(2.5),
		ScreenshotDir: "screenshots",
	}, nil
}

// Controller returns the controller the stage presents.
func (st *Stage) Controller() *Controller { return st.ctrl }

// Text returns the text renderer, for registering speaker fonts.
func (st *Stage) Text() *TextRenderer { return st.text }

// Quit ends Run after the current frame.
func (st *Stage) Quit() { st.quit = true }

// Update implements ebiten.Game.
func (st *Stage) Update() error {
	if st.quit {
		return ebiten.Termination
	}
	start := time.Now()
	if st.testRunner != nil {
		st.testRunner.step(st)
	}
	st.processInput()

	dt := time.Second / time.Duration(ebiten.TPS())
	st.ctrl.Update(dt)

	bg := st.ctrl.Background()
	for _, url := range []string{bg.Current(), bg.Previous()} {
		if url != "" {
			st.assets.Request(url)
		}
	}
	for _, pt := range st.ctrl.Portraits() {
		if url := pt.URL(); url != "" {
			st.assets.Request(url)
			pt.Resolve(st.assets, st.blur)
		}
	}

	st.relayout()

	if st.Debug {
		st.stats.updateTime = time.Since(start)
		st.stats.portraits = len(st.view.Portraits)
		st.stats.timers = st.ctrl.sched.Pending()
	}
	return nil
}

// Layout implements ebiten.Game.
func (st *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	st.width, st.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Draw implements ebiten.Game.
func (st *Stage) Draw(screen *ebiten.Image) {
	start := time.Now()
	screen.Fill(stageClearColor.toRGBA())

	st.ctrl.Background().Draw(screen, st.assets)
	for _, pt := range st.view.Portraits {
		pt.Draw(screen)
	}
	st.drawHoverInfo(screen)
	st.drawMessageBox(screen)

	if st.ShowFPS {
		drawFPS(screen)
	}
	st.captureShots(screen)
	if st.Debug {
		st.stats.drawTime = time.Since(start)
		st.debugLog(st.stats)
	}
}

// --- Message box layout ---

const (
	boxPadding   = 16.0
	rowHeight    = 30.0
	rowGap       = 8.0
	minMessageH  = 64.0
	iconButtonW  = 32.0
	chipW        = 72.0
	submitW      = 120.0
	buttonGap    = 8.0
	inputHeight  = 38.0
	borderWidth  = 2.0
	caretBlinkHz = 2
)

// relayout takes a fresh view from the controller and lays the box out for
// it.
func (st *Stage) relayout() {
	st.view = st.ctrl.View()
	st.layoutBox()
}

// layoutBox places the message box and its buttons for the current view
// and reports the box's top edge to the controller for hover cut-off.
func (st *Stage) layoutBox() {
	if st.width == 0 || st.height == 0 {
		return
	}
	v := st.view
	W, H := float64(st.width), float64(st.height)
	vertical := st.ctrl.Layout().Vertical
	marginX, marginBottom := 0.05*W, 0.04*H
	if vertical {
		marginX, marginBottom = 0.02*W, 0.01*H
	}
	innerW := W - 2*marginX - 2*boxPadding

	msgH := minMessageH
	if v.Editing {
		msgH = max(msgH, st.text.MeasureSpan(TextSpan(v.Draft+" "), innerW-8)+8)
	} else {
		msgH = max(msgH, st.text.MeasureSpan(v.Message, innerW))
	}
	boxH := 2*boxPadding + rowHeight + rowGap + msgH
	if v.ShowInput {
		boxH += rowGap + inputHeight
	}

	st.box = Rect{X: marginX, Y: H - marginBottom - boxH, Width: W - 2*marginX, Height: boxH}
	left, top := st.box.X+boxPadding, st.box.Y+boxPadding
	right := st.box.X + st.box.Width - boxPadding

	st.buttons = st.buttons[:0]
	add := func(id buttonID, x, w float64, y, h float64, label string, enabled bool, c Color) {
		st.buttons = append(st.buttons, stageButton{id: id, r: Rect{X: x, Y: y, Width: w, Height: h}, label: label, enabled: enabled, color: c})
	}

	add(buttonPrev, left, iconButtonW, top, rowHeight, "<", v.CanRetreat, buttonText)
	add(buttonNext, left+iconButtonW+chipW+2*buttonGap, iconButtonW, top, rowHeight, ">", v.CanAdvance, buttonText)

	if v.ShowAction {
		x := right
		if st.ctrl.cfg.EnableReroll {
			x -= iconButtonW
			add(buttonReroll, x, iconButtonW, top, rowHeight, "R", v.CanReroll, actionColor)
			x -= buttonGap
		}
		if v.Editing {
			x -= iconButtonW
			add(buttonCancel, x, iconButtonW, top, rowHeight, "x", true, endColor)
			x -= buttonGap + iconButtonW
			add(buttonConfirm, x, iconButtonW, top, rowHeight, "ok", true, actionColor)
		} else {
			x -= iconButtonW
			add(buttonEdit, x, iconButtonW, top, rowHeight, "E", v.CanEdit, actionColor)
		}
	}

	msgTop := top + rowHeight + rowGap
	st.messageBox = Rect{X: left, Y: msgTop, Width: innerW, Height: msgH}

	st.inputBox = Rect{}
	if v.ShowInput {
		y := msgTop + msgH + rowGap
		x := right - submitW
		c := actionColor
		if v.Button.Kind == ButtonEnd {
			c = endColor
		}
		if st.ctrl.opts.OnWrapUp != nil || st.ctrl.opts.Continuation != nil {
			x -= iconButtonW + buttonGap
			add(buttonWrapUp, right-iconButtonW, iconButtonW, y, inputHeight, "W", v.CanWrapUp, actionColor)
		}
		add(buttonSubmit, x, submitW, y, inputHeight, v.Button.Label, !v.Loading, c)
		st.inputBox = Rect{X: left, Y: y, Width: x - buttonGap - left, Height: inputHeight}
	}

	st.hoverBox = Rect{X: W * 0.8, Y: H * 0.05, Width: W * 0.15, Height: H * 0.3}
	if vertical {
		st.hoverBox = Rect{X: W * 0.63, Y: H * 0.02, Width: W * 0.35, Height: H * 0.3}
	}

	st.ctrl.SetMessageBoxTop(st.box.Y / H * 100)
}

// --- Drawing ---

func (st *Stage) drawMessageBox(screen *ebiten.Image) {
	if st.box.Width == 0 {
		return
	}
	v := st.view
	drawPanel(screen, st.box, boxFill, boxBorder)

	for _, b := range st.buttons {
		st.drawButton(screen, b)
	}

	// Progress chip and nameplate.
	top := st.box.Y + boxPadding
	chip := Rect{X: st.box.X + boxPadding + iconButtonW + buttonGap, Y: top, Width: chipW, Height: rowHeight}
	drawPanel(screen, chip, ColorWhite.WithAlpha(0.02), ColorWhite.WithAlpha(0.03))
	progress := v.Progress
	if v.Loading {
		progress = spinnerFrames[int(st.ctrl.sched.Now()/(100*time.Millisecond))%len(spinnerFrames)]
	}
	st.drawCentered(screen, chip, progress, nameplateColor, true)
	nameX := chip.X + chipW + 2*buttonGap + iconButtonW + 12
	st.text.DrawString(screen, v.Nameplate, nameX, top+(rowHeight-st.text.LineHeight()/st.text.LineSpacing)/2, nameplateColor, true)

	// Message.
	mb := st.messageBox
	if v.Editing {
		drawPanel(screen, mb, draftFill, actionColor.WithAlpha(0.3))
		draft := v.Draft
		if st.focus == focusDraft && st.caretOn() {
			draft += "|"
		}
		st.text.DrawSpan(screen, TextSpan(draft), mb.X+4, mb.Y+4, mb.Width-8)
	} else if v.Length > 0 {
		st.text.DrawSpan(screen, v.Visible, mb.X, mb.Y, mb.Width)
	}

	// Input.
	if v.ShowInput {
		ib := st.inputBox
		border := ColorWhite.WithAlpha(0.08)
		if st.focus == focusInput {
			border = inputFocused
		}
		drawPanel(screen, ib, inputFill, border)
		ty := ib.Y + (ib.Height-st.text.LineHeight()/st.text.LineSpacing)/2
		switch {
		case v.Input != "":
			s := v.Input
			if st.focus == focusInput && st.caretOn() {
				s += "|"
			}
			st.text.DrawString(screen, s, ib.X+10, ty, messageTextColor, false)
		default:
			st.text.DrawString(screen, v.Placeholder, ib.X+10, ty, placeholderColor, false)
		}
	}
}

var spinnerFrames = [...]string{"-", "\\", "|", "/"}

func (st *Stage) caretOn() bool {
	return int(st.ctrl.sched.Now()*caretBlinkHz/time.Second)%2 == 0
}

func (st *Stage) drawButton(screen *ebiten.Image, b stageButton) {
	fill, fg := buttonFill, b.color
	if b.id == buttonSubmit || b.id == buttonWrapUp {
		fill, fg = b.color.WithAlpha(0.85), mustColor("#06140e")
	}
	if !b.enabled {
		fill, fg = buttonFill, buttonDisabled
	}
	drawPanel(screen, b.r, fill, buttonBorder)
	st.drawCentered(screen, b.r, b.label, fg, b.id == buttonSubmit)
}

func (st *Stage) drawCentered(screen *ebiten.Image, r Rect, s string, c Color, bold bool) {
	w := st.text.Measure(s, bold)
	h := st.text.LineHeight() / st.text.LineSpacing
	st.text.DrawString(screen, s, r.X+(r.Width-w)/2, r.Y+(r.Height-h)/2, c, bold)
}

func (st *Stage) drawHoverInfo(screen *ebiten.Image) {
	info := st.view.HoverInfo
	if info == "" {
		return
	}
	drawPanel(screen, st.hoverBox, hoverPanelFill, boxBorder)
	r := st.hoverBox
	st.text.DrawSpan(screen, FormatInline(info), r.X+10, r.Y+10, r.Width-20)
}

// drawPanel fills r and outlines it.
func drawPanel(dst *ebiten.Image, r Rect, fill, border Color) {
	fillRect(dst, r, fill)
	if border.A <= 0 {
		return
	}
	b := borderWidth / 2
	fillRect(dst, Rect{X: r.X, Y: r.Y, Width: r.Width, Height: b}, border)
	fillRect(dst, Rect{X: r.X, Y: r.Y + r.Height - b, Width: r.Width, Height: b}, border)
	fillRect(dst, Rect{X: r.X, Y: r.Y + b, Width: b, Height: r.Height - 2*b}, border)
	fillRect(dst, Rect{X: r.X + r.Width - b, Y: r.Y + b, Width: b, Height: r.Height - 2*b}, border)
}

// --- Window ---

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowFPS   bool
	Resizable bool
}

// RunConfigFrom builds a RunConfig from the window section of a Config.
func RunConfigFrom(cfg Config) RunConfig {
	return RunConfig{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		ShowFPS:   cfg.Window.ShowFPS,
		Resizable: true,
	}
}

// Run opens a window and runs the stage until the window is closed. The
// controller is closed on return.
func Run(st *Stage, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	st.ShowFPS = st.ShowFPS || cfg.ShowFPS
	defer st.ctrl.Close()
	return ebiten.RunGame(st)
}
