package peripheral

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/craftlink/craftlink-go/pkg/events"
)

// modemHost scripts the remote side of a modem: isOpen answers from open,
// open and close succeed.
func modemHost(open bool) func(expr string, args []any) ([]any, error) {
	return func(expr string, args []any) ([]any, error) {
		switch args[1] {
		case "isOpen":
			return []any{open}, nil
		case "open", "close":
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected args %v", args)
	}
}

func modemMessage(side any, channel, reply, payload, distance any) events.Event {
	return events.Event{
		Name:   ModemMessageEvent,
		Params: []any{side, channel, reply, payload, distance},
	}
}

func nextTimeout(t *testing.T, sub *Subscription) (ModemMessage, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return sub.Next(ctx)
}

func TestReceiveBusyChannel(t *testing.T) {
	sess := newFakeSession(modemHost(true))
	modem := NewWirelessModem(sess, NewHandle(AccessorExpr, "left"))

	_, err := modem.Receive(context.Background(), 5)
	if !errors.Is(err, ErrChannelBusy) {
		t.Fatalf("Receive error = %v, want ErrChannelBusy", err)
	}

	// A busy channel must fail before any remote state changes.
	if n := sess.methodCount(1, "open"); n != 0 {
		t.Errorf("open calls = %d, want 0", n)
	}
	if n := sess.methodCount(1, "close"); n != 0 {
		t.Errorf("close calls = %d, want 0", n)
	}
	if n := sess.bus.TapCount(); n != 0 {
		t.Errorf("leaked taps = %d", n)
	}
}

func TestReceiveFiltersAndOrders(t *testing.T) {
	sess := newFakeSession(modemHost(false))
	modem := NewWirelessModem(sess, NewHandle(AccessorExpr, "left"))

	sub, err := modem.Receive(context.Background(), 5)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	defer sub.Close()

	if sub.Channel() != 5 {
		t.Errorf("Channel = %d, want 5", sub.Channel())
	}
	if n := sess.methodCount(1, "open"); n != 1 {
		t.Fatalf("open calls = %d, want 1", n)
	}

	// Non-matching traffic interleaved with two matches.
	sess.bus.Publish(modemMessage("right", 5, 1, "other side", 0.0))
	sess.bus.Publish(modemMessage("left", 9, 1, "other channel", 0.0))
	sess.bus.Publish(modemMessage("left", 5, 7, "first", 12.5))
	sess.bus.Publish(modemMessage("left", 5, 8, "second", 3.0))

	msg, err := nextTimeout(t, sub)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if msg.Payload != "first" || msg.ReplyChannel != 7 || msg.Distance != 12.5 {
		t.Errorf("first message = %+v", msg)
	}

	msg, err = nextTimeout(t, sub)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if msg.Payload != "second" || msg.ReplyChannel != 8 {
		t.Errorf("second message = %+v", msg)
	}
}

func TestReceiveCloseExactlyOnce(t *testing.T) {
	sess := newFakeSession(modemHost(false))
	modem := NewWirelessModem(sess, NewHandle(AccessorExpr, "left"))

	sub, err := modem.Receive(context.Background(), 5)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}

	if err := sub.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := sub.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if n := sess.methodCount(1, "close"); n != 1 {
		t.Errorf("close calls = %d, want exactly 1", n)
	}

	if _, err := nextTimeout(t, sub); !errors.Is(err, ErrSubscriptionClosed) {
		t.Errorf("Next after Close = %v, want ErrSubscriptionClosed", err)
	}
	// Still once.
	if n := sess.methodCount(1, "close"); n != 1 {
		t.Errorf("close calls = %d, want exactly 1", n)
	}
}

func TestReceiveContextCancelReleasesChannel(t *testing.T) {
	sess := newFakeSession(modemHost(false))
	modem := NewWirelessModem(sess, NewHandle(AccessorExpr, "left"))

	sub, err := modem.Receive(context.Background(), 5)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sub.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Next = %v, want context.Canceled", err)
	}

	if n := sess.methodCount(1, "close"); n != 1 {
		t.Errorf("close calls = %d, want 1 after abandonment", n)
	}
}

func TestReceiveEventStreamEnds(t *testing.T) {
	sess := newFakeSession(modemHost(false))
	modem := NewWirelessModem(sess, NewHandle(AccessorExpr, "left"))

	sub, err := modem.Receive(context.Background(), 5)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}

	// Connection teardown closes the event bus under the subscription.
	sess.bus.Close()

	if _, err := nextTimeout(t, sub); !errors.Is(err, ErrSubscriptionClosed) {
		t.Fatalf("Next = %v, want ErrSubscriptionClosed", err)
	}
	if n := sess.methodCount(1, "close"); n != 1 {
		t.Errorf("close calls = %d, want 1", n)
	}
}

func TestReceiveOpenFailureReleasesTap(t *testing.T) {
	wantErr := errors.New("modem detached")
	sess := newFakeSession(func(expr string, args []any) ([]any, error) {
		switch args[1] {
		case "isOpen":
			return []any{false}, nil
		case "open":
			return nil, wantErr
		}
		return nil, fmt.Errorf("unexpected args %v", args)
	})
	modem := NewWirelessModem(sess, NewHandle(AccessorExpr, "left"))

	_, err := modem.Receive(context.Background(), 5)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Receive error = %v, want %v", err, wantErr)
	}
	if n := sess.bus.TapCount(); n != 0 {
		t.Errorf("leaked taps = %d", n)
	}
	if n := sess.methodCount(1, "close"); n != 0 {
		t.Errorf("close calls = %d, want 0", n)
	}
}

func TestReceiveTwoSubscriptionsIndependent(t *testing.T) {
	sess := newFakeSession(modemHost(false))
	left := NewWirelessModem(sess, NewHandle(AccessorExpr, "left"))
	right := NewWirelessModem(sess, NewHandle(AccessorExpr, "right"))

	subLeft, err := left.Receive(context.Background(), 5)
	if err != nil {
		t.Fatalf("Receive(left): %v", err)
	}
	defer subLeft.Close()
	subRight, err := right.Receive(context.Background(), 5)
	if err != nil {
		t.Fatalf("Receive(right): %v", err)
	}
	defer subRight.Close()

	sess.bus.Publish(modemMessage("right", 5, 1, "for right", 0.0))
	sess.bus.Publish(modemMessage("left", 5, 2, "for left", 0.0))

	msg, err := nextTimeout(t, subLeft)
	if err != nil {
		t.Fatalf("Next(left): %v", err)
	}
	if msg.Payload != "for left" {
		t.Errorf("left message = %+v", msg)
	}

	msg, err = nextTimeout(t, subRight)
	if err != nil {
		t.Fatalf("Next(right): %v", err)
	}
	if msg.Payload != "for right" {
		t.Errorf("right message = %+v", msg)
	}
}
