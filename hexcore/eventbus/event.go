package eventbus

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hexforge/lib-hexcore/hexcore/internal/nilcheck"
)

// UnknownEventName is the shared identifier assigned to events that resolve
// to no usable name. Distinct anonymous event shapes collide on this channel.
const UnknownEventName = "unknown"

// Named is implemented by events that carry an explicit routing identifier.
// Supplying the identifier directly is the preferred way to publish; the
// reflective fallbacks in EventNameOf exist for plain values.
type Named interface {
	EventName() string
}

// EventNameOf resolves the routing identifier for an event or subscription
// descriptor.
//
// Resolution order: the explicit Named identifier if the value carries a
// non-empty one; the string itself for string descriptors; the value's type
// name; UnknownEventName when nothing usable remains.
func EventNameOf(value any) string {
	if nilcheck.Interface(value) {
		return UnknownEventName
	}

	if named, ok := value.(Named); ok {
		if name := strings.TrimSpace(named.EventName()); name != "" {
			return name
		}
	}

	if str, ok := value.(string); ok {
		if name := strings.TrimSpace(str); name != "" {
			return name
		}

		return UnknownEventName
	}

	typ := reflect.TypeOf(value)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if name := typ.Name(); name != "" {
		return name
	}

	return UnknownEventName
}

// Envelope is a ready-made named event carrier for callers that publish
// payloads without a dedicated event type.
type Envelope struct {
	ID         uuid.UUID
	Name       string
	OccurredAt time.Time
	Payload    any
}

var _ Named = (*Envelope)(nil)

// NewEnvelope creates an envelope for name wrapping payload, stamped with a
// fresh ID and the current UTC time.
func NewEnvelope(name string, payload any) (*Envelope, error) {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return nil, ErrEventNameRequired
	}

	return &Envelope{
		ID:         uuid.New(),
		Name:       normalized,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}, nil
}

// EventName returns the envelope's routing identifier.
func (e *Envelope) EventName() string {
	if e == nil {
		return UnknownEventName
	}

	return e.Name
}
