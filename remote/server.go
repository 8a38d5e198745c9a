package remote

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/phanxgames/novel"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const (
	pingInterval = 30 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
)

// Server exposes a Generator over HTTP.
//
//	GET  /healthz   liveness
//	POST /continue  one ContinuationRequest in, one Script out
//	GET  /ws        websocket carrying Message envelopes
type Server struct {
	gen     Generator
	log     *slog.Logger
	timeout time.Duration
	engine  *gin.Engine
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the server logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) { s.log = l }
}

// WithTimeout bounds each generator call. Zero means no limit.
func WithTimeout(d time.Duration) ServerOption {
	return func(s *Server) { s.timeout = d }
}

// NewServer builds the router for gen.
func NewServer(gen Generator, opts ...ServerOption) *Server {
	s := &Server{gen: gen, log: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/continue", s.handleContinue)
	r.GET("/ws", s.handleWebSocket)
	s.engine = r
	return s
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("remote: listening", "addr", addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("remote: request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

func (s *Server) generate(ctx context.Context, req novel.ContinuationRequest) (novel.Script, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.gen(ctx, req)
}

func (s *Server) handleContinue(c *gin.Context) {
	var req novel.ContinuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	script, err := s.generate(c.Request.Context(), req)
	if err != nil {
		s.log.Warn("remote: generate", "err", err)
		c.JSON(http.StatusBadGateway, errorBody{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, script)
}

// handleWebSocket serves one connection. Requests on a connection are
// answered in order; the writer is shared with the pinger.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("remote: upgrade", "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	var writeMu sync.Mutex
	write := func(m Message) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(m)
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				writeMu.Lock()
				err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
				writeMu.Unlock()
				if err != nil {
					cancel()
					return
				}
			}
		}
	}()

	for {
		var m Message
		if err := conn.ReadJSON(&m); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("remote: read", "err", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
		if m.Type != TypeContinue || m.Request == nil {
			if err := write(Message{Type: TypeError, ID: m.ID, Error: "expected a continue request"}); err != nil {
				return
			}
			continue
		}
		reply := Message{Type: TypeResult, ID: m.ID}
		script, err := s.generate(ctx, *m.Request)
		if err != nil {
			reply = Message{Type: TypeError, ID: m.ID, Error: err.Error()}
		} else {
			reply.Script = &script
		}
		if err := write(reply); err != nil {
			s.log.Warn("remote: write", "err", err)
			return
		}
	}
}
