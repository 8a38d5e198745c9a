// Package remote serves and consumes novel continuations over the network.
//
// A [Server] wraps a [Generator] behind a gin router with a JSON endpoint and
// a websocket endpoint. A [Client] dials the websocket and implements
// novel.Continuation, so a controller can be pointed at a remote content
// source with
//
//	opts.Continuation = remote.NewClient("ws://localhost:8080/ws").Continue
package remote

import (
	"context"

	"github.com/phanxgames/novel"
)

// Message types.
const (
	TypeContinue = "continue"
	TypeResult   = "result"
	TypeError    = "error"
)

// Message is the websocket envelope. Requests carry Request; replies carry
// Script or Error and echo the request ID.
type Message struct {
	Type    string                     `json:"type"`
	ID      string                     `json:"id"`
	Request *novel.ContinuationRequest `json:"request,omitempty"`
	Script  *novel.Script              `json:"script,omitempty"`
	Error   string                     `json:"error,omitempty"`
}

// Generator produces the next script for a request. It has the same shape as
// novel.Continuation.
type Generator func(ctx context.Context, req novel.ContinuationRequest) (novel.Script, error)

// errorBody is the JSON error reply of the HTTP endpoint.
type errorBody struct {
	Error string `json:"error"`
}
