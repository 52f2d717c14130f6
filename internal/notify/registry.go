package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Registry fans lifecycle envelopes out to every client context a user has
// open. Broadcasts are fire-and-forget and unordered: a slow consumer never
// blocks the others, and delivery is best effort.
type Registry interface {
	Broadcast(ctx context.Context, userID string, ev Envelope)
}

// ---------------------------------------------------------------------------
// In-memory registry
// ---------------------------------------------------------------------------

// subscriberBuffer bounds how far a consumer may lag before envelopes are
// dropped on the floor.
const subscriberBuffer = 16

// MemoryRegistry delivers envelopes to in-process subscribers. Used in tests
// and by in-process consumers such as the delivery metrics hook.
type MemoryRegistry struct {
	mu   sync.Mutex
	subs map[string][]chan Envelope
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{subs: make(map[string][]chan Envelope)}
}

// Subscribe registers a consumer for one user's envelopes. The returned
// cancel func must be called exactly once.
func (r *MemoryRegistry) Subscribe(userID string) (<-chan Envelope, func()) {
	ch := make(chan Envelope, subscriberBuffer)

	r.mu.Lock()
	r.subs[userID] = append(r.subs[userID], ch)
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		chans := r.subs[userID]
		for i, c := range chans {
			if c == ch {
				r.subs[userID] = append(chans[:i], chans[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

func (r *MemoryRegistry) Broadcast(_ context.Context, userID string, ev Envelope) {
	// Snapshot under lock; the subscriber set changes between events.
	r.mu.Lock()
	chans := make([]chan Envelope, len(r.subs[userID]))
	copy(chans, r.subs[userID])
	r.mu.Unlock()

	for _, ch := range chans {
		select {
		case ch <- ev:
		default:
			// Consumer is full; drop rather than block the rest.
		}
	}
}

// ---------------------------------------------------------------------------
// Redis pub/sub registry
// ---------------------------------------------------------------------------

const eventChannelPrefix = "notify:events:"

// RedisRegistry publishes envelopes to a per-user Redis channel. The web
// tier subscribes and relays them to open browser contexts, so in-page UI
// can update unread counts without a network round trip to the API.
type RedisRegistry struct {
	rdb *redis.Client
	log *slog.Logger
}

func NewRedisRegistry(rdb *redis.Client, log *slog.Logger) *RedisRegistry {
	if log == nil {
		log = slog.Default()
	}
	return &RedisRegistry{rdb: rdb, log: log}
}

// EventChannel returns the pub/sub channel name for a user.
func EventChannel(userID string) string {
	return eventChannelPrefix + userID
}

func (r *RedisRegistry) Broadcast(ctx context.Context, userID string, ev Envelope) {
	raw, err := json.Marshal(ev)
	if err != nil {
		r.log.Warn("registry: marshal envelope failed", "type", ev.Type, "err", err)
		return
	}
	if err := r.rdb.Publish(ctx, EventChannel(userID), raw).Err(); err != nil {
		// Best-effort signal, not required for correctness.
		r.log.Warn("registry: publish failed", "type", ev.Type, "user_id", userID, "err", err)
	}
}
