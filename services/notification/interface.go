package notification

import (
	"context"
	"time"
)

// EventChairUpdated tells clients the chair list changed and should be re-read.
const EventChairUpdated = "chairUpdated"

// Event carries no data beyond its name; it is an invalidation hint.
type Event struct {
	Name string    `json:"name"`
	At   time.Time `json:"at"`
}

// Broadcaster sends the "chairs changed" hint to every connected client.
// Delivery is best effort: no replay, no acknowledgement.
type Broadcaster interface {
	BroadcastChairsChanged(ctx context.Context) error
}

// Relay is a fan-out backend that also feeds remote events into a local hub.
type Relay interface {
	Broadcaster
	Run(ctx context.Context) error
	Close() error
}
