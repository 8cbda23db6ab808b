package eventbus

import "errors"

var (
	// ErrEventBusRequired indicates a nil event bus.
	ErrEventBusRequired = errors.New("event bus is required")
	// ErrEventRequired indicates a nil event passed to Publish.
	ErrEventRequired = errors.New("event is required")
	// ErrEventNameRequired indicates an envelope created without a name.
	ErrEventNameRequired = errors.New("event name is required")
)
