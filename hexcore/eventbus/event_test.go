//go:build unit

package eventbus

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type accountCreated struct {
	AccountID string
}

type namedEvent struct {
	name string
}

func (e namedEvent) EventName() string { return e.name }

func TestEventNameOf_ExplicitNameWins(t *testing.T) {
	t.Parallel()

	require.Equal(t, "account.created", EventNameOf(namedEvent{name: "account.created"}))
	require.Equal(t, "account.created", EventNameOf(namedEvent{name: "  account.created  "}))
}

func TestEventNameOf_EmptyNameFallsBackToType(t *testing.T) {
	t.Parallel()

	require.Equal(t, "namedEvent", EventNameOf(namedEvent{}))
}

func TestEventNameOf_TypeName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "accountCreated", EventNameOf(accountCreated{AccountID: "1"}))
	require.Equal(t, "accountCreated", EventNameOf(&accountCreated{AccountID: "1"}))
}

func TestEventNameOf_StringDescriptor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "account.created", EventNameOf("account.created"))
	require.Equal(t, UnknownEventName, EventNameOf("   "))
}

func TestEventNameOf_UnknownFallback(t *testing.T) {
	t.Parallel()

	require.Equal(t, UnknownEventName, EventNameOf(nil))
	require.Equal(t, UnknownEventName, EventNameOf(struct{ X int }{X: 1}))

	var typedNil *accountCreated

	require.Equal(t, UnknownEventName, EventNameOf(typedNil))
}

func TestEventNameOf_AnonymousShapesCollide(t *testing.T) {
	t.Parallel()

	first := struct{ A int }{A: 1}
	second := struct{ B string }{B: "x"}

	require.Equal(t, EventNameOf(first), EventNameOf(second))
}

func TestNewEnvelope(t *testing.T) {
	t.Parallel()

	envelope, err := NewEnvelope("  account.created ", map[string]string{"id": "1"})
	require.NoError(t, err)
	require.Equal(t, "account.created", envelope.EventName())
	require.NotEqual(t, uuid.Nil, envelope.ID)
	require.False(t, envelope.OccurredAt.IsZero())
	require.Equal(t, "account.created", EventNameOf(envelope))
}

func TestNewEnvelope_RequiresName(t *testing.T) {
	t.Parallel()

	_, err := NewEnvelope("   ", nil)
	require.ErrorIs(t, err, ErrEventNameRequired)
}

func TestEnvelope_NilReceiver(t *testing.T) {
	t.Parallel()

	var envelope *Envelope

	require.Equal(t, UnknownEventName, envelope.EventName())
}
