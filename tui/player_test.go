package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/novel"
)

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []event
	}{
		{"runes", "hé", []event{{kind: evRune, r: 'h'}, {kind: evRune, r: 'é'}}},
		{"arrows", "\x1b[D\x1b[C", []event{{kind: evLeft}, {kind: evRight}}},
		{"unknown csi dropped", "\x1b[Ax", []event{{kind: evRune, r: 'x'}}},
		{"escape", "\x1b", []event{{kind: evEscape}}},
		{"enter", "\r\n", []event{{kind: evEnter}, {kind: evEnter}}},
		{"backspace", "\x7f\x08", []event{{kind: evBackspace}, {kind: evBackspace}}},
		{"ctrl", "\x03\x05\x13", []event{{kind: evCtrl, r: 'c'}, {kind: evCtrl, r: 'e'}, {kind: evCtrl, r: 's'}}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeKeys([]byte(tt.in)))
		})
	}
}

func newTestPlayer(t *testing.T, opts novel.Options) (*Player, *novel.Controller, *bytes.Buffer) {
	t.Helper()
	c := newController(t, harbor(), opts)
	out := &bytes.Buffer{}
	return NewPlayerIO(c, strings.NewReader(""), out, -1), c, out
}

func feed(p *Player, in string) bool {
	for _, ev := range decodeKeys([]byte(in)) {
		if !p.handle(ev) {
			return false
		}
	}
	return true
}

func TestPlayerTypeAndSubmit(t *testing.T) {
	p, c, _ := newTestPlayer(t, novel.Options{})
	require.True(t, feed(p, "wavx\x7fe"))
	assert.Equal(t, "wave", c.Input())

	require.True(t, feed(p, "\r"))
	s := c.Script()
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "wave", s.Entries[1].Message)
	assert.Equal(t, "player", s.Entries[1].SpeakerID)
	assert.Equal(t, "", c.Input())
}

func TestPlayerEnterWithEmptyInputAdvances(t *testing.T) {
	p, c, _ := newTestPlayer(t, novel.Options{})
	feed(p, "\r")
	assert.True(t, c.TypingDone())
	assert.Equal(t, 0, c.Index())
	feed(p, "\r")
	assert.Equal(t, 1, c.Index())
	feed(p, "\x1b[D")
	assert.Equal(t, 0, c.Index())
}

func TestPlayerEdit(t *testing.T) {
	p, c, _ := newTestPlayer(t, novel.Options{})
	feed(p, "\x05")
	require.True(t, c.Editing())

	feed(p, "!\r\x7f")
	assert.Equal(t, harbor().Entries[0].Message+"!", c.Draft())
	feed(p, "\x13")
	assert.False(t, c.Editing())
	assert.Equal(t, harbor().Entries[0].Message+"!", c.Script().Entries[0].Message)

	feed(p, "\x05zz\x1b")
	assert.False(t, c.Editing())
	assert.Equal(t, harbor().Entries[0].Message+"!", c.Script().Entries[0].Message)
}

func TestPlayerRerollError(t *testing.T) {
	p, _, out := newTestPlayer(t, novel.Options{})
	feed(p, "\x12")
	assert.ErrorIs(t, p.err, novel.ErrRerollDisabled)
	p.render()
	assert.Contains(t, out.String(), novel.ErrRerollDisabled.Error())
}

func TestPlayerCtrlCQuits(t *testing.T) {
	p, _, _ := newTestPlayer(t, novel.Options{})
	assert.False(t, feed(p, "\x03"))
}

func TestPlayerRenderSkipsUnchanged(t *testing.T) {
	p, _, out := newTestPlayer(t, novel.Options{})
	p.render()
	n := out.Len()
	require.Greater(t, n, 0)
	p.render()
	assert.Equal(t, n, out.Len())
}

func TestPlayerRunUntilInputEnds(t *testing.T) {
	c := newController(t, harbor(), novel.Options{})
	out := &bytes.Buffer{}
	p := NewPlayerIO(c, strings.NewReader("ahoy\r"), out, -1)
	p.Tick = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Run(ctx))

	s := c.Script()
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "ahoy", s.Entries[1].Message)
	assert.True(t, strings.HasPrefix(out.String(), hideCursor))
	assert.True(t, strings.HasSuffix(out.String(), showCursor+"\r\n"))
}

func TestPlayerQuitFromOnClose(t *testing.T) {
	var p *Player
	s := harbor()
	s.Entries[0].EndScene = true
	c := newController(t, s, novel.Options{OnClose: func() { p.Quit() }})
	r, w := io.Pipe()
	defer w.Close()
	p = NewPlayerIO(c, r, &bytes.Buffer{}, -1)

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()
	// The first enter finishes typing, the second ends the scene.
	_, _ = w.Write([]byte("\r\r"))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the scene closed")
	}
}
