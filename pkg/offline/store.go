package offline

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

// ErrMiss is returned by Store.Get when no entry exists for the key.
var ErrMiss = errors.New("offline: cache miss")

// Entry is one stored response. Bodies are plain byte slices, so unlike a
// live HTTP response an Entry can be read any number of times. The
// cacheable copy must still be taken before the caller gets the original,
// since callers may mutate what they receive.
type Entry struct {
	Status   int
	Header   http.Header
	Body     []byte
	StoredAt time.Time
}

// Clone returns a deep copy so cached bytes are never aliased to what a
// caller holds.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := &Entry{
		Status:   e.Status,
		StoredAt: e.StoredAt,
		Header:   make(http.Header, len(e.Header)),
		Body:     make([]byte, len(e.Body)),
	}
	copy(c.Body, e.Body)
	for k, vs := range e.Header {
		vals := make([]string, len(vs))
		copy(vals, vs)
		c.Header[k] = vals
	}
	return c
}

// Store is the cache bucket abstraction: generations of exact-request-keyed
// entries. Writes are append/overwrite only; no read-modify-write
// transactions exist, so implementations need no locking beyond their own
// internal consistency.
type Store interface {
	Get(ctx context.Context, generation, key string) (*Entry, error)
	Put(ctx context.Context, generation, key string, e *Entry) error
	Delete(ctx context.Context, generation, key string) error
	Keys(ctx context.Context, generation string) ([]string, error)
	Generations(ctx context.Context) ([]string, error)
	Drop(ctx context.Context, generation string) error
}

// MemoryStore is an in-process Store for tests and single-node setups.
type MemoryStore struct {
	mu   sync.RWMutex
	gens map[string]map[string]*Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{gens: make(map[string]map[string]*Entry)}
}

func (s *MemoryStore) Get(_ context.Context, generation, key string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gen, ok := s.gens[generation]
	if !ok {
		return nil, ErrMiss
	}
	e, ok := gen[key]
	if !ok {
		return nil, ErrMiss
	}
	return e.Clone(), nil
}

func (s *MemoryStore) Put(_ context.Context, generation, key string, e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	gen, ok := s.gens[generation]
	if !ok {
		gen = make(map[string]*Entry)
		s.gens[generation] = gen
	}
	gen[key] = e.Clone()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, generation, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen, ok := s.gens[generation]; ok {
		delete(gen, key)
	}
	return nil
}

func (s *MemoryStore) Keys(_ context.Context, generation string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gen, ok := s.gens[generation]
	if !ok {
		return nil, nil
	}
	keys := make([]string, 0, len(gen))
	for k := range gen {
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *MemoryStore) Generations(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.gens))
	for name := range s.gens {
		names = append(names, name)
	}
	return names, nil
}

func (s *MemoryStore) Drop(_ context.Context, generation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.gens, generation)
	return nil
}
