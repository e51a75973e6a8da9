package live

import (
	"encoding/json"
	"testing"
	"time"

	"staymate/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
	}

	hub.register <- client

	listing := models.Listing{ListingID: "l1", Name: "Test PG", Rent: 7000}
	hub.BroadcastListing(listing)

	select {
	case got := <-client.Send:
		var ev event
		if err := json.Unmarshal(got, &ev); err != nil {
			t.Fatalf("unmarshal broadcast: %v", err)
		}
		if ev.Action != "listing_created" || ev.Listing.ListingID != "l1" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for broadcast")
	}

	hub.unregister <- client
}

func TestHubAddRemoveAfterStop(t *testing.T) {
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run()
		close(stopped)
	}()
	hub.Stop()
	<-stopped

	client := &Client{Send: make(chan []byte, 1)}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if hub.add(client) {
			t.Error("add succeeded on a stopped hub")
		}
		hub.remove(client)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("add/remove blocked on a stopped hub")
	}
}
