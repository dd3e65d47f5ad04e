package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyTheUser(t *testing.T) {
	h := NewHub()
	mine, cleanupMine := h.Subscribe("u1")
	defer cleanupMine()
	other, cleanupOther := h.Subscribe("u2")
	defer cleanupOther()

	delivered := h.Publish("u1", Event{UserID: "u1", Event: "leave.approved", Data: "x"})
	assert.Equal(t, 1, delivered)

	ev := <-mine
	assert.Equal(t, "leave.approved", ev.Event)
	assert.Len(t, other, 0)
}

func TestHub_FullBufferDropsEvents(t *testing.T) {
	h := NewHubWithBuffer(1)
	ch, cleanup := h.Subscribe("u1")
	defer cleanup()

	assert.Equal(t, 1, h.Publish("u1", Event{Event: "first"}))
	assert.Equal(t, 0, h.Publish("u1", Event{Event: "second"}))
	assert.Equal(t, "first", (<-ch).Event)
}

func TestHub_CleanupAndCounts(t *testing.T) {
	h := NewHub()
	_, c1 := h.Subscribe("u1")
	_, c2 := h.Subscribe("u1")
	_, c3 := h.Subscribe("u2")

	assert.Equal(t, 2, h.SubscriberCount("u1"))
	assert.Equal(t, 3, h.TotalSubscribers())

	c1()
	c1()
	assert.Equal(t, 1, h.SubscriberCount("u1"))

	c2()
	c3()
	assert.Zero(t, h.TotalSubscribers())
}

func TestHub_Close(t *testing.T) {
	h := NewHub()
	ch, cleanup := h.Subscribe("u1")

	h.Close()
	_, open := <-ch
	assert.False(t, open)
	cleanup()

	late, _ := h.Subscribe("u2")
	_, open = <-late
	require.False(t, open)
	assert.Zero(t, h.Publish("u2", Event{}))
}
