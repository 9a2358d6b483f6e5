package peripheral

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/craftlink/craftlink-go/pkg/events"
)

// closeChannelTimeout bounds the close-channel call issued when a
// subscription ends; the subscription's own context may already be gone.
const closeChannelTimeout = 5 * time.Second

// ModemMessage is one message received on a reserved channel.
type ModemMessage struct {
	// ReplyChannel is the channel the sender advertised for answers.
	ReplyChannel int64

	// Payload is the transmitted value.
	Payload any

	// Distance is the sender's distance in blocks.
	Distance float64
}

// Receive reserves a channel on this modem and returns a subscription
// delivering the messages arriving on it.
//
// The channel must not already be open: a busy channel fails with
// ErrChannelBusy before any remote state is mutated. On success the channel
// is opened on the host and stays reserved until the subscription ends —
// normal exhaustion, Close, cancellation inside Next, or a dead host
// connection — at which point the close-channel call is issued exactly
// once. A subscription is not restartable; call Receive again.
func (m *modemOps) Receive(ctx context.Context, channel int) (*Subscription, error) {
	open, err := m.IsOpen(ctx, channel)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, fmt.Errorf("channel %d: %w", channel, ErrChannelBusy)
	}

	// Tap before opening so no forwarded event can fall in a gap.
	tap := m.sess.CaptureEvents(ModemMessageEvent)

	if err := m.Open(ctx, channel); err != nil {
		tap.Close()
		return nil, err
	}

	s := &Subscription{
		side:    m.side(),
		channel: channel,
		tap:     tap,
		msgs:    make(chan ModemMessage),
		done:    make(chan struct{}),
		closeChannel: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), closeChannelTimeout)
			defer cancel()
			return m.Close(ctx, channel)
		},
	}
	go s.pump()
	return s, nil
}

// Subscription is an active channel reservation: a filtered, lazily
// produced sequence of the messages arriving on one (side, channel) pair.
// It belongs to a single consumer.
type Subscription struct {
	side    any
	channel int
	tap     *events.Tap
	msgs    chan ModemMessage
	done    chan struct{}

	closeOnce    sync.Once
	closeErr     error
	closeChannel func() error
}

// Channel returns the reserved channel number.
func (s *Subscription) Channel() int {
	return s.channel
}

// Next blocks until the next matching message arrives and returns it.
//
// Cancelling ctx abandons the subscription: the reserved channel is closed
// on the host and Next returns the context's error. After the subscription
// has ended (Close called, or the host connection gone) Next fails with
// ErrSubscriptionClosed.
func (s *Subscription) Next(ctx context.Context) (ModemMessage, error) {
	select {
	case <-ctx.Done():
		_ = s.Close()
		return ModemMessage{}, ctx.Err()
	case msg, ok := <-s.msgs:
		if !ok {
			// Event stream ended underneath us (host connection
			// gone); still release the channel reservation.
			_ = s.Close()
			return ModemMessage{}, ErrSubscriptionClosed
		}
		return msg, nil
	}
}

// Close ends the subscription and releases the channel reservation.
// The close-channel call is issued exactly once no matter how often Close
// is called or how the subscription ended; repeat calls return the first
// call's error.
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.tap.Close()
		s.closeErr = s.closeChannel()
	})
	return s.closeErr
}

// pump filters the shared event stream down to this reservation.
func (s *Subscription) pump() {
	defer close(s.msgs)
	for evt := range s.tap.Events() {
		msg, ok := s.match(evt)
		if !ok {
			continue
		}
		select {
		case s.msgs <- msg:
		case <-s.done:
			return
		}
	}
}

// match keeps only events on this subscription's side and channel.
// Event parameters: side, channel, replyChannel, payload, distance.
func (s *Subscription) match(evt events.Event) (ModemMessage, bool) {
	if len(evt.Params) < 4 {
		return ModemMessage{}, false
	}
	if evt.Params[0] != s.side {
		return ModemMessage{}, false
	}
	ch, ok := intParam(evt.Params[1])
	if !ok || ch != int64(s.channel) {
		return ModemMessage{}, false
	}

	msg := ModemMessage{Payload: evt.Params[3]}
	if reply, ok := intParam(evt.Params[2]); ok {
		msg.ReplyChannel = reply
	}
	if len(evt.Params) >= 5 {
		if d, ok := floatParam(evt.Params[4]); ok {
			msg.Distance = d
		}
	}
	return msg, true
}

func intParam(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func floatParam(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
