package offline

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Policy is the resolution strategy chosen for a request.
type Policy int

const (
	// PolicySkip passes the request straight to the network: wrong origin,
	// non-read method, or development tooling traffic.
	PolicySkip Policy = iota
	// PolicyNetworkFirst is for API calls: live data when the network is
	// up, cached or synthesized fallbacks when it is not.
	PolicyNetworkFirst
	// PolicyCacheFirst is for static assets: cached copy when present,
	// network with async write-through otherwise.
	PolicyCacheFirst
)

// Default development-tooling URL fragments that must never be cached or
// intercepted.
var defaultSkipPatterns = []string{
	"sockjs-node",
	"hot-update",
	"__webpack",
	"browser-sync",
}

const offlineJSONBody = `{"error":"You are offline"}`

// Interceptor classifies requests and resolves them through the cache with
// typed fallbacks. All resolution failures degrade to a response; nothing
// propagates to the caller as an error-shaped page break.
type Interceptor struct {
	store       Store
	fetch       Fetcher
	manager     *Manager
	origin      string
	apiPrefix   string
	offlinePage string
	skip        []string
	log         *slog.Logger

	// inflight tracks async write-through work so shutdown (and tests)
	// can wait for cache writes to settle instead of losing them when the
	// process is torn down mid-operation.
	inflight sync.WaitGroup
}

type InterceptorConfig struct {
	Origin       string
	APIPrefix    string
	OfflinePage  string
	SkipPatterns []string
}

func NewInterceptor(store Store, fetch Fetcher, manager *Manager, cfg InterceptorConfig, log *slog.Logger) *Interceptor {
	if log == nil {
		log = slog.Default()
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api/"
	}
	if cfg.OfflinePage == "" {
		cfg.OfflinePage = "/offline.html"
	}
	skip := cfg.SkipPatterns
	if len(skip) == 0 {
		skip = defaultSkipPatterns
	}
	return &Interceptor{
		store:       store,
		fetch:       fetch,
		manager:     manager,
		origin:      cfg.Origin,
		apiPrefix:   cfg.APIPrefix,
		offlinePage: cfg.OfflinePage,
		skip:        skip,
		log:         log,
	}
}

// Classify applies the three skip filters in order, then splits the rest
// into the two policies by URL pattern.
func (i *Interceptor) Classify(req *Request) Policy {
	if i.origin != "" && req.URL.Host != "" && req.URL.Host != i.origin {
		return PolicySkip
	}
	if req.Method != http.MethodGet {
		return PolicySkip
	}
	full := req.URL.String()
	for _, pat := range i.skip {
		if strings.Contains(full, pat) {
			return PolicySkip
		}
	}
	if strings.Contains(req.URL.Path, i.apiPrefix) {
		return PolicyNetworkFirst
	}
	return PolicyCacheFirst
}

// Resolve answers a request under its policy. The returned entry is always
// non-nil: failures become fallback responses, never errors.
func (i *Interceptor) Resolve(ctx context.Context, req *Request) *Entry {
	// Until activation completes the current generation may still be mid
	// precache and stale generations mid cleanup, so nothing is served from
	// or written to the cache.
	if !i.manager.Controlling() {
		return i.passthrough(ctx, req)
	}

	switch i.Classify(req) {
	case PolicyNetworkFirst:
		return i.networkFirst(ctx, req)
	case PolicyCacheFirst:
		return i.cacheFirst(ctx, req)
	default:
		return i.passthrough(ctx, req)
	}
}

// Flush waits for all in-flight cache writes to settle.
func (i *Interceptor) Flush() {
	i.inflight.Wait()
}

func (i *Interceptor) passthrough(ctx context.Context, req *Request) *Entry {
	entry, err := i.fetch(ctx, req)
	if err != nil {
		return emptyUnavailable()
	}
	return entry
}

// networkFirst: live response wins and is never written to cache. Offline,
// fall back to a previously cached response for the exact request, then to
// a typed offline body.
func (i *Interceptor) networkFirst(ctx context.Context, req *Request) *Entry {
	entry, err := i.fetch(ctx, req)
	if err == nil {
		return entry
	}

	cached, cerr := i.store.Get(ctx, i.manager.Version(), req.Key())
	if cerr == nil {
		return cached
	}

	if req.AcceptsJSON() {
		return &Entry{
			Status: http.StatusServiceUnavailable,
			Header: http.Header{"Content-Type": []string{"application/json"}},
			Body:   []byte(offlineJSONBody),
		}
	}
	return i.offlineFallback(ctx)
}

// cacheFirst: cached copy wins. On a miss, fetch live; successful
// responses are written through asynchronously from a copy taken before
// the caller can touch the original.
func (i *Interceptor) cacheFirst(ctx context.Context, req *Request) *Entry {
	cached, err := i.store.Get(ctx, i.manager.Version(), req.Key())
	if err == nil {
		return cached
	}

	entry, ferr := i.fetch(ctx, req)
	if ferr != nil {
		if req.Navigation {
			return i.offlineFallback(ctx)
		}
		return emptyUnavailable()
	}

	if entry.Status >= 200 && entry.Status < 300 {
		// Copy before the caller consumes the entry; the write must not
		// block the response. Concurrent fetches may race here and the
		// last writer wins, which is fine for idempotent representations
		// of the same URL.
		clone := entry.Clone()
		key := req.Key()
		i.inflight.Add(1)
		go func() {
			defer i.inflight.Done()
			wctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if perr := i.store.Put(wctx, i.manager.Version(), key, clone); perr != nil {
				i.log.Warn("offline: write-through failed", "key", key, "err", perr)
			}
		}()
	}

	return entry
}

// offlineFallback serves the precached offline page, degrading to an empty
// 503 if even that is missing.
func (i *Interceptor) offlineFallback(ctx context.Context) *Entry {
	page, err := i.store.Get(ctx, i.manager.Version(), "GET "+i.offlinePage)
	if err == nil {
		return page
	}
	i.log.Warn("offline: offline page missing from cache", "path", i.offlinePage)
	return emptyUnavailable()
}

func emptyUnavailable() *Entry {
	return &Entry{
		Status: http.StatusServiceUnavailable,
		Header: http.Header{},
	}
}
