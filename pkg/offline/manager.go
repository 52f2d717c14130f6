package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
)

// Manager owns the versioned cache generations. Exactly one generation is
// active; installing a new version precaches the asset manifest into it,
// and activating drops every other generation before the new version is
// allowed to serve.
type Manager struct {
	store    Store
	fetch    Fetcher
	version  string
	precache []string
	log      *slog.Logger

	mu          sync.Mutex
	installed   bool
	controlling bool
}

func NewManager(store Store, fetch Fetcher, version string, precache []string, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		store:    store,
		fetch:    fetch,
		version:  version,
		precache: precache,
		log:      log,
	}
}

// Version returns the active generation name.
func (m *Manager) Version() string { return m.version }

// Controlling reports whether activation has completed and the manager may
// serve intercepted requests.
func (m *Manager) Controlling() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.controlling
}

// Generations lists every cache generation the store currently holds.
func (m *Manager) Generations(ctx context.Context) ([]string, error) {
	return m.store.Generations(ctx)
}

// Install precaches the fixed asset manifest into the current generation.
// Individual asset failures are logged and skipped; pre-caching is best
// effort and never blocks activation.
func (m *Manager) Install(ctx context.Context) error {
	for _, path := range m.precache {
		u, err := url.Parse(path)
		if err != nil {
			m.log.Warn("offline: bad precache path", "path", path, "err", err)
			continue
		}
		req := &Request{Method: "GET", URL: u}

		entry, err := m.fetch(ctx, req)
		if err != nil {
			m.log.Warn("offline: precache fetch failed", "path", path, "err", err)
			continue
		}
		// An error response must never become a generation's copy of the
		// asset; a 404ing offline page would otherwise be replayed as the
		// offline fallback until the next deploy.
		if entry.Status < 200 || entry.Status >= 300 {
			m.log.Warn("offline: precache asset returned error status", "path", path, "status", entry.Status)
			continue
		}
		if err := m.store.Put(ctx, m.version, req.Key(), entry); err != nil {
			m.log.Warn("offline: precache store failed", "path", path, "err", err)
		}
	}

	m.mu.Lock()
	m.installed = true
	m.mu.Unlock()

	m.log.Info("offline: installed", "generation", m.version, "assets", len(m.precache))
	return nil
}

// Activate enumerates all generations, drops every one other than the
// current version, and only then marks the manager as controlling.
// Serving must not begin until cleanup completes. Idempotent: a second
// activation finds nothing stale and leaves exactly one generation.
func (m *Manager) Activate(ctx context.Context) error {
	m.mu.Lock()
	if !m.installed {
		m.mu.Unlock()
		return fmt.Errorf("offline: activate before install")
	}
	m.mu.Unlock()

	names, err := m.store.Generations(ctx)
	if err != nil {
		return fmt.Errorf("offline: enumerate generations: %w", err)
	}
	for _, name := range names {
		if name == m.version {
			continue
		}
		if err := m.store.Drop(ctx, name); err != nil {
			return fmt.Errorf("offline: drop stale generation %q: %w", name, err)
		}
		m.log.Info("offline: dropped stale generation", "generation", name)
	}

	m.mu.Lock()
	m.controlling = true
	m.mu.Unlock()

	m.log.Info("offline: activated", "generation", m.version)
	return nil
}

// controlMessage is the inbound client → worker control shape.
type controlMessage struct {
	Type string `json:"type"`
}

// HandleMessage processes a client control message. SKIP_WAITING triggers
// immediate activation of a freshly installed version.
func (m *Manager) HandleMessage(ctx context.Context, raw []byte) error {
	var msg controlMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("offline: bad control message: %w", err)
	}
	if msg.Type == "SKIP_WAITING" {
		return m.Activate(ctx)
	}
	return nil
}
