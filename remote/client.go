package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/phanxgames/novel"
)

// Client calls a remote Server over its websocket endpoint. A new
// connection is dialled per call; the controller only ever has one call in
// flight.
type Client struct {
	URL    string
	Dialer *websocket.Dialer
	Header http.Header

	seq atomic.Uint64
}

// NewClient creates a client for a ws:// or wss:// URL.
func NewClient(url string) *Client {
	return &Client{URL: url, Dialer: websocket.DefaultDialer}
}

// Continue implements novel.Continuation. Cancelling ctx closes the
// connection and returns ctx.Err().
func (cl *Client) Continue(ctx context.Context, req novel.ContinuationRequest) (novel.Script, error) {
	d := cl.Dialer
	if d == nil {
		d = websocket.DefaultDialer
	}
	conn, _, err := d.DialContext(ctx, cl.URL, cl.Header)
	if err != nil {
		return novel.Script{}, errors.Wrapf(err, "remote: dial %s", cl.URL)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	id := strconv.FormatUint(cl.seq.Add(1), 10)
	if err := conn.WriteJSON(Message{Type: TypeContinue, ID: id, Request: &req}); err != nil {
		return novel.Script{}, cl.failed(ctx, errors.Wrap(err, "remote: send"))
	}
	for {
		var m Message
		if err := conn.ReadJSON(&m); err != nil {
			return novel.Script{}, cl.failed(ctx, errors.Wrap(err, "remote: receive"))
		}
		if m.ID != id {
			continue
		}
		switch m.Type {
		case TypeResult:
			if m.Script == nil {
				return novel.Script{}, errors.New("remote: empty result")
			}
			return *m.Script, nil
		case TypeError:
			return novel.Script{}, errors.Errorf("remote: %s", m.Error)
		default:
			return novel.Script{}, errors.Errorf("remote: unexpected message %q", m.Type)
		}
	}
}

func (cl *Client) failed(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// HTTPContinuation returns a continuation that posts to a Server's
// /continue endpoint at base (e.g. "http://localhost:8080").
func HTTPContinuation(base string, hc *http.Client) novel.Continuation {
	if hc == nil {
		hc = http.DefaultClient
	}
	return func(ctx context.Context, req novel.ContinuationRequest) (novel.Script, error) {
		body, err := json.Marshal(req)
		if err != nil {
			return novel.Script{}, errors.Wrap(err, "remote: encode request")
		}
		hr, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/continue", bytes.NewReader(body))
		if err != nil {
			return novel.Script{}, errors.Wrap(err, "remote: build request")
		}
		hr.Header.Set("Content-Type", "application/json")
		resp, err := hc.Do(hr)
		if err != nil {
			return novel.Script{}, errors.Wrap(err, "remote: post")
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			var eb errorBody
			if json.NewDecoder(resp.Body).Decode(&eb) == nil && eb.Error != "" {
				return novel.Script{}, errors.Errorf("remote: %s", eb.Error)
			}
			return novel.Script{}, errors.Errorf("remote: status %s", resp.Status)
		}
		var s novel.Script
		if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
			return novel.Script{}, errors.Wrap(err, "remote: decode script")
		}
		return s, nil
	}
}
