package notification

import (
	"context"
	"testing"
	"time"
)

func TestHubDeliversToEverySubscriber(t *testing.T) {
	hub := NewHub(nil)
	a, unsubA := hub.Subscribe()
	b, unsubB := hub.Subscribe()
	defer unsubA()
	defer unsubB()

	if err := hub.BroadcastChairsChanged(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, ch := range []<-chan Event{a, b} {
		select {
		case ev := <-ch:
			if ev.Name != EventChairUpdated {
				t.Fatalf("event = %q", ev.Name)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber got nothing")
		}
	}
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	hub := NewHub(nil)
	_, unsub := hub.Subscribe()
	defer unsub()

	delivered := 0
	for i := 0; i < defaultSubscriberBuffer+3; i++ {
		delivered += hub.Deliver(Event{Name: EventChairUpdated})
	}
	if delivered != defaultSubscriberBuffer {
		t.Fatalf("delivered = %d, want %d", delivered, defaultSubscriberBuffer)
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub(nil)
	ch, unsub := hub.Subscribe()
	if hub.Subscribers() != 1 {
		t.Fatalf("subscribers = %d", hub.Subscribers())
	}
	unsub()
	unsub()
	if hub.Subscribers() != 0 {
		t.Fatalf("subscribers after unsubscribe = %d", hub.Subscribers())
	}
	if _, ok := <-ch; ok {
		t.Fatal("channel still open")
	}
	if n := hub.Deliver(Event{Name: EventChairUpdated}); n != 0 {
		t.Fatalf("delivered to %d after unsubscribe", n)
	}
}
