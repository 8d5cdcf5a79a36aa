package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/events"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var got []events.Event
	dispatcher.Subscribe(events.EventOrdersPlaced, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{ID: "e1", Type: events.EventOrdersPlaced})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(events.EventOrderDeleted, func(context.Context, events.Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventOrderDelivered}))
	assert.False(t, called)
}

func TestDispatcherContinuesPastHandlerError(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(events.EventOrderDelivered, func(context.Context, events.Event) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	dispatcher.Subscribe(events.EventOrderDelivered, func(context.Context, events.Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventOrderDelivered}))
	assert.Equal(t, []string{"first", "second"}, order)
}
