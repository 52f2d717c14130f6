package handler

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/dealerdesk/dealerdesk_backend/internal/api/http/middleware"
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
)

const eventsHeartbeat = 30 * time.Second

// EventsHandler relays the per-user Redis lifecycle channel to the browser
// as a server-sent event stream. Every open tab holds one stream; the
// registry's fan-out happens in Redis, not here.
type EventsHandler struct {
	rdb *redis.Client
	log *slog.Logger
}

func NewEventsHandler(rdb *redis.Client, log *slog.Logger) *EventsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &EventsHandler{rdb: rdb, log: log}
}

// GET /events
func (h *EventsHandler) Stream(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}
	userID := claims.UserID.String()

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// The fiber ctx is recycled once the handler returns, so the stream
	// subscribes on its own context and relies on write failures to learn
	// the client went away.
	sub := h.rdb.Subscribe(context.Background(), notify.EventChannel(userID))

	return c.SendStreamWriter(func(w *bufio.Writer) {
		defer sub.Close()

		ch := sub.Channel()
		heartbeat := time.NewTicker(eventsHeartbeat)
		defer heartbeat.Stop()

		for {
			select {
			case msg, open := <-ch:
				if !open {
					return
				}
				if _, err := fmt.Fprintf(w, "data: %s\n\n", msg.Payload); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			case <-heartbeat.C:
				if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
}
