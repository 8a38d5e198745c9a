package tui

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/phanxgames/novel"
)

const (
	DefaultWidth = 80
	DefaultTick  = time.Second / 30

	clearScreen = "\x1b[H\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// eventKind is a decoded terminal key.
type eventKind uint8

const (
	evRune eventKind = iota
	evLeft
	evRight
	evEnter
	evEscape
	evBackspace
	evCtrl
)

type event struct {
	kind eventKind
	r    rune // evRune: the character; evCtrl: the lower-case letter
}

// decodeKeys splits raw terminal input into key events. Unknown escape
// sequences are dropped.
func decodeKeys(buf []byte) []event {
	var out []event
	for len(buf) > 0 {
		b := buf[0]
		switch {
		case b == 0x1b:
			if len(buf) >= 3 && buf[1] == '[' {
				switch buf[2] {
				case 'C':
					out = append(out, event{kind: evRight})
				case 'D':
					out = append(out, event{kind: evLeft})
				}
				buf = buf[3:]
				continue
			}
			out = append(out, event{kind: evEscape})
			buf = buf[1:]
		case b == '\r' || b == '\n':
			out = append(out, event{kind: evEnter})
			buf = buf[1:]
		case b == 127 || b == 8:
			out = append(out, event{kind: evBackspace})
			buf = buf[1:]
		case b < 32:
			out = append(out, event{kind: evCtrl, r: rune('a' + b - 1)})
			buf = buf[1:]
		default:
			r, n := utf8.DecodeRune(buf)
			if r != utf8.RuneError {
				out = append(out, event{kind: evRune, r: r})
			}
			buf = buf[n:]
		}
	}
	return out
}

// Player runs a controller in a terminal: stdin drives it and each tick the
// view is redrawn on stdout.
type Player struct {
	ctrl *novel.Controller
	in   io.Reader
	out  io.Writer
	fd   int

	// Tick is the update interval. Defaults to DefaultTick.
	Tick time.Duration

	err      error
	last     string
	frames   int
	quit     chan struct{}
	quitOnce sync.Once
}

// NewPlayer creates a player on stdin and stdout.
func NewPlayer(c *novel.Controller) *Player {
	return NewPlayerIO(c, os.Stdin, os.Stdout, int(os.Stdin.Fd()))
}

// NewPlayerIO creates a player on arbitrary streams. fd is put in raw mode
// when it is a terminal; pass -1 otherwise.
func NewPlayerIO(c *novel.Controller, in io.Reader, out io.Writer, fd int) *Player {
	return &Player{ctrl: c, in: in, out: out, fd: fd, Tick: DefaultTick, quit: make(chan struct{})}
}

// Quit stops Run. Safe to call from Options.OnClose.
func (p *Player) Quit() {
	p.quitOnce.Do(func() { close(p.quit) })
}

// Run plays until ctx is done, Quit is called, input ends or the player
// presses ctrl+c. The terminal is restored on return.
func (p *Player) Run(ctx context.Context) error {
	if p.fd >= 0 && term.IsTerminal(p.fd) {
		old, err := term.MakeRaw(p.fd)
		if err != nil {
			return err
		}
		defer term.Restore(p.fd, old)
	}
	io.WriteString(p.out, hideCursor)
	defer io.WriteString(p.out, showCursor+"\r\n")

	events := make(chan []event)
	go func() {
		defer close(events)
		buf := make([]byte, 256)
		for {
			n, err := p.in.Read(buf)
			if n > 0 {
				select {
				case events <- decodeKeys(buf[:n]):
				case <-p.quit:
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	tick := p.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	p.render()
	for {
		select {
		case <-ctx.Done():
			p.Quit()
			return ctx.Err()
		case <-p.quit:
			return nil
		case evs, ok := <-events:
			if !ok {
				p.Quit()
				return nil
			}
			for _, ev := range evs {
				if !p.handle(ev) {
					p.Quit()
					return nil
				}
			}
			p.render()
		case <-ticker.C:
			p.ctrl.Update(tick)
			p.frames++
			p.render()
		}
	}
}

// handle applies one key and reports whether to keep running.
func (p *Player) handle(ev event) bool {
	c := p.ctrl
	if ev.kind == evCtrl && ev.r == 'c' {
		return false
	}
	p.err = nil

	if c.Editing() {
		switch ev.kind {
		case evRune:
			c.SetDraft(c.Draft() + string(ev.r))
		case evEnter:
			c.SetDraft(c.Draft() + "\n")
		case evBackspace:
			c.SetDraft(dropLastRune(c.Draft()))
		case evEscape:
			c.HandleKey(novel.KeyEscape, 0, false)
		case evCtrl:
			if ev.r == 's' {
				c.HandleKey(novel.KeyEnter, novel.ModCtrl, false)
			}
		}
		return true
	}

	switch ev.kind {
	case evRune:
		if !c.Loading() {
			c.SetInput(c.Input() + string(ev.r))
		}
	case evBackspace:
		c.SetInput(dropLastRune(c.Input()))
	case evLeft:
		c.HandleKey(novel.KeyLeft, 0, true)
	case evRight:
		c.HandleKey(novel.KeyRight, 0, true)
	case evEnter:
		if c.Loading() {
			break
		}
		if strings.TrimSpace(c.Input()) == "" && !c.TypingDone() {
			c.ClickMessage()
			break
		}
		p.err = c.SubmitInput()
	case evCtrl:
		switch ev.r {
		case 'e':
			c.EnterEdit()
		case 'r':
			p.err = c.Reroll(c.Index())
		case 'w':
			p.err = c.WrapUp()
		}
	}
	return true
}

func (p *Player) render() {
	width := DefaultWidth
	if p.fd >= 0 {
		if w, _, err := term.GetSize(p.fd); err == nil && w > 0 {
			width = w
		}
	}
	v := p.ctrl.View()
	caret := (p.frames/15)%2 == 0
	lines := Frame(v, width, caret)
	lines = append(lines, Hints(v))
	err := p.err
	if err == nil {
		err = p.ctrl.Err()
	}
	if err != nil {
		lines = append(lines, errLine(err))
	}
	s := strings.Join(lines, "\r\n")
	if s == p.last {
		return
	}
	p.last = s
	io.WriteString(p.out, clearScreen+s)
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, n := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-n]
}
