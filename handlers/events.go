package handlers

import (
	"io"
	"time"

	"bookmychair/services/notification"

	"github.com/gin-gonic/gin"
)

const defaultHeartbeat = 25 * time.Second

// EventsHandler streams change notifications as Server-Sent Events.
type EventsHandler struct {
	Hub       *notification.Hub
	Heartbeat time.Duration
}

func NewEventsHandler(hub *notification.Hub) *EventsHandler {
	return &EventsHandler{Hub: hub, Heartbeat: defaultHeartbeat}
}

// StreamHandler handles GET /events. The client gets a "ready" event, then
// one event per broadcast and a "ping" on every heartbeat.
func (h *EventsHandler) StreamHandler(c *gin.Context) {
	events, unsubscribe := h.Hub.Subscribe()
	defer unsubscribe()

	heartbeat := h.Heartbeat
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("ready", gin.H{"at": time.Now().UTC()})
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev)
			return true
		case t := <-ticker.C:
			c.SSEvent("ping", gin.H{"at": t.UTC()})
			return true
		}
	})
}
