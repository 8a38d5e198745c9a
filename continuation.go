package novel

import (
	"context"
	"errors"
)

var (
	// ErrContinuationBusy is returned when a submission or reroll is
	// dispatched while another continuation call is still running.
	ErrContinuationBusy = errors.New("novel: continuation already in flight")
	// ErrNoContinuation is returned by Reroll when no continuation is set.
	ErrNoContinuation = errors.New("novel: no continuation configured")
	// ErrRerollDisabled is returned by Reroll when the feature is off.
	ErrRerollDisabled = errors.New("novel: reroll disabled")
)

// ContinuationRequest is what the controller sends to the content source.
type ContinuationRequest struct {
	Text   string       `json:"text"`
	Script Script       `json:"script"`
	Index  int          `json:"index"`
	Entry  *ScriptEntry `json:"entry,omitempty"`
	WrapUp bool         `json:"wrapUp,omitempty"`
	Reroll bool         `json:"reroll,omitempty"`
}

// Continuation extends or replaces a script. It runs on its own goroutine
// and may block; it must not touch the controller. Returning a script with a
// different ID starts a new scene.
type Continuation func(ctx context.Context, req ContinuationRequest) (Script, error)

type continuationKind uint8

const (
	continueSubmit continuationKind = iota
	continueReroll
)

// continuationResult is posted back to the game loop by the worker
// goroutine.
type continuationResult struct {
	kind   continuationKind
	sentID string
	index  int
	script Script
	err    error
}

// inflight tracks the single outstanding continuation call.
type inflight struct {
	results chan continuationResult
	busy    bool
}

func newInflight() *inflight {
	return &inflight{results: make(chan continuationResult, 1)}
}

// dispatch starts fn on a new goroutine. The caller must have checked busy.
func (f *inflight) dispatch(ctx context.Context, fn Continuation, req ContinuationRequest, kind continuationKind) {
	f.busy = true
	sentID := req.Script.ID
	index := req.Index
	go func() {
		s, err := fn(ctx, req)
		f.results <- continuationResult{kind: kind, sentID: sentID, index: index, script: s, err: err}
	}()
}

// poll returns a finished result without blocking.
func (f *inflight) poll() (continuationResult, bool) {
	if !f.busy {
		return continuationResult{}, false
	}
	select {
	case r := <-f.results:
		f.busy = false
		return r, true
	default:
		return continuationResult{}, false
	}
}

// wait blocks until the outstanding call finishes or ctx is done.
func (f *inflight) wait(ctx context.Context) (continuationResult, bool) {
	if !f.busy {
		return continuationResult{}, false
	}
	select {
	case r := <-f.results:
		f.busy = false
		return r, true
	case <-ctx.Done():
		return continuationResult{}, false
	}
}
