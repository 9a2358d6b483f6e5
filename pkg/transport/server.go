package transport

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/craftlink/craftlink-go/pkg/log"
)

// DefaultPort is the default controller listen port.
const DefaultPort = 5757

// DefaultPath is the default WebSocket endpoint path.
const DefaultPath = "/"

// ServerConfig configures a CraftLink server.
type ServerConfig struct {
	// Address to listen on (e.g., ":5757" or "127.0.0.1:5757").
	Address string

	// Path is the WebSocket endpoint path (default: "/").
	Path string

	// EvalTimeout is the default per-request timeout applied to Eval
	// calls whose context has no deadline.
	EvalTimeout time.Duration

	// EventBuffer is the per-tap event channel buffer size.
	EventBuffer int

	// Logger for protocol logging (optional).
	Logger log.Logger

	// OnConnect is called when a host connection is established.
	OnConnect func(conn *Conn)

	// OnDisconnect is called when a host connection is closed.
	OnDisconnect func(conn *Conn)
}

// Server accepts WebSocket connections from in-game hosts.
type Server struct {
	config   ServerConfig
	upgrader websocket.Upgrader

	listener net.Listener
	httpSrv  *http.Server

	connsMu sync.RWMutex
	conns   map[*Conn]struct{}

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewServer creates a new CraftLink server.
func NewServer(config ServerConfig) *Server {
	if config.Address == "" {
		config.Address = fmt.Sprintf(":%d", DefaultPort)
	}
	if config.Path == "" {
		config.Path = DefaultPath
	}
	if config.Logger == nil {
		config.Logger = log.NoopLogger{}
	}
	return &Server{
		config: config,
		upgrader: websocket.Upgrader{
			// The host is an embedded Lua client, not a browser;
			// origin checks don't apply.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*Conn]struct{}),
	}
}

// Start starts the server and begins accepting host connections.
func (s *Server) Start() error {
	if s.running.Load() {
		return ErrServerRunning
	}

	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.handleWS)
	s.httpSrv = &http.Server{Handler: mux}

	s.running.Store(true)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_ = s.httpSrv.Serve(listener)
	}()

	return nil
}

// Addr returns the server's listen address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop stops the server and closes all host connections.
func (s *Server) Stop() error {
	if !s.running.Load() {
		return ErrServerStopped
	}
	s.running.Store(false)

	_ = s.httpSrv.Close()

	s.connsMu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.conns = make(map[*Conn]struct{})
	s.connsMu.Unlock()

	s.wg.Wait()
	return nil
}

// Connections returns the currently connected hosts.
func (s *Server) Connections() []*Conn {
	s.connsMu.RLock()
	defer s.connsMu.RUnlock()
	out := make([]*Conn, 0, len(s.conns))
	for conn := range s.conns {
		out = append(out, conn)
	}
	return out
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.config.Logger.Log(log.Event{
			Timestamp: time.Now(),
			Category:  log.CategoryError,
			Err:       fmt.Errorf("upgrade failed: %w", err),
		})
		return
	}

	conn := newConn(ws, s.config.Logger, s.config.EvalTimeout, s.config.EventBuffer)

	s.connsMu.Lock()
	s.conns[conn] = struct{}{}
	s.connsMu.Unlock()

	s.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: conn.ID(),
		RemoteAddr:   conn.RemoteAddr(),
		Category:     log.CategoryState,
		State:        "connected",
	})
	if s.config.OnConnect != nil {
		s.config.OnConnect(conn)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		conn.readLoop()

		s.connsMu.Lock()
		delete(s.conns, conn)
		s.connsMu.Unlock()

		if s.config.OnDisconnect != nil {
			s.config.OnDisconnect(conn)
		}
	}()
}
