package transport

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/craftlink/craftlink-go/pkg/eval"
	"github.com/craftlink/craftlink-go/pkg/events"
	"github.com/craftlink/craftlink-go/pkg/log"
	"github.com/craftlink/craftlink-go/pkg/wire"
)

// DefaultEvalTimeout is the per-request timeout applied when the caller's
// context carries no deadline.
const DefaultEvalTimeout = 30 * time.Second

// Conn is one host connection.
//
// All methods are safe for concurrent use. Eval round-trips from multiple
// goroutines interleave on the single WebSocket; responses are matched back
// by message id.
type Conn struct {
	id         string
	ws         *websocket.Conn
	logger     log.Logger
	timeout    time.Duration
	remoteAddr string

	writeMu sync.Mutex

	nextMsgID atomic.Uint32

	pendingMu sync.Mutex
	pending   map[uint32]chan *wire.Response

	bus *events.Bus

	closed    atomic.Bool
	closeOnce sync.Once
	done      chan struct{}
}

func newConn(ws *websocket.Conn, logger log.Logger, timeout time.Duration, eventBuffer int) *Conn {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	if timeout <= 0 {
		timeout = DefaultEvalTimeout
	}
	return &Conn{
		id:         uuid.NewString(),
		ws:         ws,
		logger:     logger,
		timeout:    timeout,
		remoteAddr: ws.RemoteAddr().String(),
		pending:    make(map[uint32]chan *wire.Response),
		bus:        events.NewBusWithBuffer(eventBuffer),
		done:       make(chan struct{}),
	}
}

// ID returns the connection's unique identifier.
func (c *Conn) ID() string { return c.id }

// RemoteAddr returns the host's address.
func (c *Conn) RemoteAddr() string { return c.remoteAddr }

// Events returns the connection's inbound event bus.
func (c *Conn) Events() *events.Bus { return c.bus }

// CaptureEvents registers a tap for inbound game events with the given name.
// The caller must Close the tap when done.
func (c *Conn) CaptureEvents(name string) *events.Tap {
	return c.bus.Tap(name)
}

// Eval evaluates a source expression on the host with the given arguments
// and returns the evaluation's return vector for typed extraction.
//
// The round-trip fails with an error wrapping ErrEvalFailed when the
// evaluation raises remotely, ErrConnClosed when the link is gone, or the
// context's error on cancellation/deadline.
func (c *Conn) Eval(ctx context.Context, expr string, args ...any) (*eval.Result, error) {
	if c.closed.Load() {
		return nil, ErrConnClosed
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	id := c.nextMessageID()
	req := &wire.Request{MessageID: id, Expr: expr, Args: args}

	respCh := make(chan *wire.Response, 1)
	c.pendingMu.Lock()
	c.pending[id] = respCh
	c.pendingMu.Unlock()
	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
	}()

	data, err := wire.EncodeRequest(req)
	if err != nil {
		return nil, err
	}

	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.id,
		Direction:    log.DirectionOut,
		Category:     log.CategoryRequest,
		MessageID:    id,
		Expr:         expr,
	})

	if err := c.write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnClosed, err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, ErrConnClosed
	case resp, ok := <-respCh:
		if !ok {
			return nil, ErrConnClosed
		}
		if !resp.Status.IsSuccess() {
			return nil, fmt.Errorf("%w: %s", ErrEvalFailed, resp.Error)
		}
		return eval.NewResult(resp.Values), nil
	}
}

// nextMessageID generates the next message id, skipping the event id 0.
func (c *Conn) nextMessageID() uint32 {
	for {
		id := c.nextMsgID.Add(1)
		if id != wire.EventMessageID {
			return id
		}
	}
}

func (c *Conn) write(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteMessage(websocket.BinaryMessage, data)
}

// readLoop pumps inbound messages until the connection dies.
// It runs on the server's connection goroutine.
func (c *Conn) readLoop() {
	defer c.teardown()

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if !c.closed.Load() {
				c.logger.Log(log.Event{
					Timestamp:    time.Now(),
					ConnectionID: c.id,
					Direction:    log.DirectionIn,
					Category:     log.CategoryError,
					Err:          err,
				})
			}
			return
		}
		c.dispatch(data)
	}
}

func (c *Conn) dispatch(data []byte) {
	msgType, err := wire.PeekMessageType(data)
	if err != nil {
		c.logError(err)
		return
	}

	switch msgType {
	case wire.MessageTypeResponse:
		resp, err := wire.DecodeResponse(data)
		if err != nil {
			c.logError(err)
			return
		}
		c.logger.Log(log.Event{
			Timestamp:    time.Now(),
			ConnectionID: c.id,
			Direction:    log.DirectionIn,
			Category:     log.CategoryResponse,
			MessageID:    resp.MessageID,
		})
		c.routeResponse(resp)

	case wire.MessageTypeEvent:
		evt, err := wire.DecodeEvent(data)
		if err != nil {
			c.logError(err)
			return
		}
		c.logger.Log(log.Event{
			Timestamp:    time.Now(),
			ConnectionID: c.id,
			Direction:    log.DirectionIn,
			Category:     log.CategoryGameEvent,
			EventName:    evt.Name,
		})
		c.bus.Publish(events.Event{Name: evt.Name, Params: evt.Params})

	default:
		// Hosts never send requests to the controller.
		c.logError(fmt.Errorf("unexpected message type %d from host", msgType))
	}
}

func (c *Conn) routeResponse(resp *wire.Response) {
	c.pendingMu.Lock()
	ch, exists := c.pending[resp.MessageID]
	c.pendingMu.Unlock()

	if !exists {
		c.logError(fmt.Errorf("unmatched response id %d", resp.MessageID))
		return
	}
	select {
	case ch <- resp:
	default:
	}
}

func (c *Conn) logError(err error) {
	c.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.id,
		Direction:    log.DirectionIn,
		Category:     log.CategoryError,
		Err:          err,
	})
}

// Close tears the connection down: the WebSocket is closed, pending Eval
// calls fail with ErrConnClosed, and every event tap's channel is closed.
// Safe to call more than once.
func (c *Conn) Close() error {
	c.teardown()
	return nil
}

func (c *Conn) teardown() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.done)
		_ = c.ws.Close()

		c.pendingMu.Lock()
		for id, ch := range c.pending {
			close(ch)
			delete(c.pending, id)
		}
		c.pendingMu.Unlock()

		c.bus.Close()

		c.logger.Log(log.Event{
			Timestamp:    time.Now(),
			ConnectionID: c.id,
			Category:     log.CategoryState,
			State:        "closed",
		})
	})
}

// Compile-time interface satisfaction check.
var _ eval.Evaluator = (*Conn)(nil)
