package wire

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for CraftLink messages.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for CraftLink messages.
var decMode cbor.DecMode

func init() {
	var err error

	// Configure encoder for deterministic output
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Configure decoder to be lenient for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet, // last wins
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a new CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a new CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// EncodeRequest encodes a request message to CBOR bytes.
func EncodeRequest(req *Request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	return Marshal(req)
}

// DecodeRequest decodes CBOR bytes into a request message.
func DecodeRequest(data []byte) (*Request, error) {
	var req Request
	if err := Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	return &req, nil
}

// EncodeResponse encodes a response message to CBOR bytes.
func EncodeResponse(resp *Response) ([]byte, error) {
	return Marshal(resp)
}

// DecodeResponse decodes CBOR bytes into a response message.
func DecodeResponse(data []byte) (*Response, error) {
	var resp Response
	if err := Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// EncodeEvent encodes an event message to CBOR bytes.
// Events have messageId=0 which is handled automatically.
func EncodeEvent(evt *Event) ([]byte, error) {
	wireMsg := struct {
		MessageID uint32 `cbor:"1,keyasint"`
		Name      string `cbor:"7,keyasint"`
		Params    []any  `cbor:"8,keyasint,omitempty"`
	}{
		MessageID: EventMessageID,
		Name:      evt.Name,
		Params:    evt.Params,
	}
	return Marshal(wireMsg)
}

// DecodeEvent decodes CBOR bytes into an event message.
func DecodeEvent(data []byte) (*Event, error) {
	var wireMsg struct {
		MessageID uint32 `cbor:"1,keyasint"`
		Name      string `cbor:"7,keyasint"`
		Params    []any  `cbor:"8,keyasint,omitempty"`
	}
	if err := Unmarshal(data, &wireMsg); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}
	if wireMsg.MessageID != EventMessageID {
		return nil, fmt.Errorf("not an event message: messageId=%d", wireMsg.MessageID)
	}
	if wireMsg.Name == "" {
		return nil, fmt.Errorf("event has no name")
	}
	return &Event{
		Name:   wireMsg.Name,
		Params: wireMsg.Params,
	}, nil
}

// MessageType represents the type of a decoded message.
type MessageType int

const (
	MessageTypeUnknown MessageType = iota
	MessageTypeRequest
	MessageTypeResponse
	MessageTypeEvent
)

// PeekMessageType examines CBOR data to determine the message type
// without fully decoding it.
//
// Detection logic:
//   - Event: messageId (key 1) = 0
//   - Request: expr (key 2) present
//   - Response: default for other cases
func PeekMessageType(data []byte) (MessageType, error) {
	var peek struct {
		MessageID uint32 `cbor:"1,keyasint"`
		Expr      string `cbor:"2,keyasint,omitempty"`
	}
	if err := Unmarshal(data, &peek); err != nil {
		return MessageTypeUnknown, fmt.Errorf("failed to peek message: %w", err)
	}

	if peek.MessageID == EventMessageID {
		return MessageTypeEvent, nil
	}
	if peek.Expr != "" {
		return MessageTypeRequest, nil
	}
	return MessageTypeResponse, nil
}
