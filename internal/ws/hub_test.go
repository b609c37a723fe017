package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	c := &Client{id: "c1", hub: hub, send: make(chan []byte, 4)}
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Publish(EventApplicationRecorded, map[string]int64{"id": 3})

	select {
	case msg := <-c.send:
		var evt struct {
			Type string           `json:"type"`
			Data map[string]int64 `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, EventApplicationRecorded, evt.Type)
		assert.Equal(t, int64(3), evt.Data["id"])
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	hub.Unregister(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_NilIsSafe(t *testing.T) {
	var hub *Hub
	hub.Publish(EventJobsRanked, nil)
	hub.Broadcast([]byte("x"))
	assert.Zero(t, hub.ClientCount())
}
