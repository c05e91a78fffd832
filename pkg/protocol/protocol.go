package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/vango-dev/ffui/internal/errors"
	"github.com/vango-dev/ffui/pkg/dom"
)

const (
	// MaxPathDepth limits how deep an event target path may reach.
	MaxPathDepth = 256

	// MaxEventSize is the largest accepted client message in bytes.
	MaxEventSize = 64 * 1024

	// MaxValueLength limits the value carried by an event.
	MaxValueLength = 16 * 1024
)

// Event types a client may send.
const (
	EventInput   = "input"
	EventChange  = "change"
	EventClick   = "click"
	EventSubmit  = "submit"
	EventKeyDown = "keydown"
)

var allowedEvents = map[string]bool{
	EventInput:   true,
	EventChange:  true,
	EventClick:   true,
	EventSubmit:  true,
	EventKeyDown: true,
}

// AllowedEvent reports whether clients may send events of type t.
func AllowedEvent(t string) bool {
	return allowedEvents[t]
}

// Event is a client to server message: an event of Type fired on the node at
// Path, with the target's current value for input-like events.
type Event struct {
	Path  []int  `json:"path"`
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// Validate checks the event's shape. It does not check that the path
// resolves.
func (e *Event) Validate() error {
	switch {
	case e == nil:
		return errors.New(errors.CodeInvalidMessage).WithDetail("event is nil")
	case !AllowedEvent(e.Type):
		return errors.New(errors.CodeInvalidMessage).WithDetailf("event type %q is not allowed", e.Type)
	case len(e.Path) > MaxPathDepth:
		return errors.New(errors.CodeInvalidMessage).WithDetailf("path depth %d exceeds %d", len(e.Path), MaxPathDepth)
	case len(e.Value) > MaxValueLength:
		return errors.New(errors.CodeInvalidMessage).WithDetailf("value length %d exceeds %d", len(e.Value), MaxValueLength)
	}
	for i, idx := range e.Path {
		if idx < 0 {
			return errors.New(errors.CodeInvalidMessage).WithDetailf("path[%d] is negative", i)
		}
	}
	return nil
}

// DecodeEvent parses and validates a client message.
func DecodeEvent(data []byte) (*Event, error) {
	if len(data) > MaxEventSize {
		return nil, errors.New(errors.CodeInvalidMessage).WithDetailf("message of %d bytes exceeds %d", len(data), MaxEventSize)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var e Event
	if err := dec.Decode(&e); err != nil {
		return nil, errors.New(errors.CodeInvalidMessage).WithDetail("malformed event").Wrap(err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// ErrorPayload reports a rejected event or failed refresh to the client.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Batch is a server to client message.
type Batch struct {
	Seq       uint64         `json:"seq"`
	Mutations []dom.Mutation `json:"mutations"`
	Error     *ErrorPayload  `json:"error,omitempty"`
}

// NewBatch returns a batch of mutations. A nil slice is sent as [].
func NewBatch(seq uint64, mutations []dom.Mutation) *Batch {
	if mutations == nil {
		mutations = []dom.Mutation{}
	}
	return &Batch{Seq: seq, Mutations: mutations}
}

// NewErrorBatch returns a batch with no mutations reporting err.
func NewErrorBatch(seq uint64, err error) *Batch {
	b := NewBatch(seq, nil)
	b.Error = &ErrorPayload{Code: errors.CodeOf(err), Message: err.Error()}
	if b.Error.Code == "" {
		b.Error.Code = "unknown"
	}
	return b
}

// Empty reports whether the batch carries nothing worth sending.
func (b *Batch) Empty() bool {
	return len(b.Mutations) == 0 && b.Error == nil
}
