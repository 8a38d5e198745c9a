package remote

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/phanxgames/novel"
)

// ErrNoLines is returned by a Scripted generator with nothing to say.
var ErrNoLines = errors.New("remote: scripted generator has no lines")

// Scripted is a Generator that answers from a fixed list of entries, in
// turn, wrapping around at the end. It appends one entry to the script it
// is sent: the next line, or Closing (marked as the end of the scene) when
// the request asks to wrap up. Rerolls arrive already truncated, so they get
// the next line in place of the rejected one.
type Scripted struct {
	Lines   []novel.ScriptEntry
	Closing novel.ScriptEntry

	mu   sync.Mutex
	next int
}

// Generate implements Generator.
func (g *Scripted) Generate(ctx context.Context, req novel.ContinuationRequest) (novel.Script, error) {
	if err := ctx.Err(); err != nil {
		return novel.Script{}, err
	}
	s := req.Script.Clone()
	if req.WrapUp {
		e := g.Closing
		e.EndScene = true
		s.Entries = append(s.Entries, e)
		return s, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Lines) == 0 {
		return novel.Script{}, ErrNoLines
	}
	s.Entries = append(s.Entries, g.Lines[g.next%len(g.Lines)])
	g.next++
	return s, nil
}
