package realtime

import (
	"encoding/json"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func receive(t *testing.T, c *Client) *Event {
	t.Helper()
	select {
	case data := <-c.send:
		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		return &event
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return nil
	}
}

func TestWantsTable(t *testing.T) {
	all := NewClient(nil, nil, nil)
	if !all.WantsTable("leads") || !all.WantsTable("tasks") {
		t.Error("an empty subscription should receive every table")
	}

	narrow := NewClient(nil, nil, []string{"leads", "", "kanban_statuses"})
	if !narrow.WantsTable("leads") || !narrow.WantsTable("kanban_statuses") {
		t.Error("subscribed tables not delivered")
	}
	if narrow.WantsTable("payments") {
		t.Error("unsubscribed table delivered")
	}
}

func TestHubDispatch(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Shutdown()

	everything := NewClient(hub, nil, nil)
	leadsOnly := NewClient(hub, nil, []string{"leads"})
	hub.Register(everything)
	hub.Register(leadsOnly)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Publish("leads", ActionUpdated, "l1", nil)

	event := receive(t, everything)
	if event.Table != "leads" || event.Action != ActionUpdated || event.RecordID != "l1" {
		t.Errorf("unexpected event: %+v", event)
	}
	receive(t, leadsOnly)

	hub.Publish("tasks", ActionCreated, "t1", nil)
	receive(t, everything)
	select {
	case <-leadsOnly.send:
		t.Error("leads-only client received a tasks event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Shutdown()

	client := NewClient(hub, nil, nil)
	hub.Register(client)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Unregister(client)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	if _, open := <-client.send; open {
		t.Error("send channel left open after unregister")
	}
}

func TestHubRegisterAfterShutdown(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Shutdown()

	done := make(chan struct{})
	go func() {
		client := NewClient(hub, nil, nil)
		hub.Register(client)
		hub.Unregister(client)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("register or unregister blocked after shutdown")
	}
	if hub.ClientCount() != 0 {
		t.Errorf("client count = %d after shutdown", hub.ClientCount())
	}
}
