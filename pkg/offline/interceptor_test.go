package offline

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
)

type countingFetcher struct {
	calls   atomic.Int64
	entries map[string]*Entry
	fail    bool
}

func (f *countingFetcher) fetch(_ context.Context, req *Request) (*Entry, error) {
	f.calls.Add(1)
	if f.fail {
		return nil, errors.New("network down")
	}
	if e, ok := f.entries[req.Key()]; ok {
		return e.Clone(), nil
	}
	return &Entry{Status: http.StatusNotFound, Header: http.Header{}}, nil
}

func getRequest(t *testing.T, rawURL string) *Request {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse %q: %v", rawURL, err)
	}
	return &Request{Method: http.MethodGet, URL: u}
}

func newTestInterceptor(t *testing.T, f *countingFetcher, cfg InterceptorConfig) (*Interceptor, *MemoryStore, *Manager) {
	t.Helper()
	store := NewMemoryStore()
	mgr := NewManager(store, f.fetch, "v1", nil, nil)
	if err := mgr.Install(context.Background()); err != nil {
		t.Fatalf("install: %v", err)
	}
	if err := mgr.Activate(context.Background()); err != nil {
		t.Fatalf("activate: %v", err)
	}
	return NewInterceptor(store, f.fetch, mgr, cfg, nil), store, mgr
}

func TestClassify(t *testing.T) {
	f := &countingFetcher{}
	itc, _, _ := newTestInterceptor(t, f, InterceptorConfig{Origin: "app.example.com"})

	tests := []struct {
		name   string
		method string
		url    string
		want   Policy
	}{
		{"static asset", "GET", "/static/js/main.js", PolicyCacheFirst},
		{"app shell", "GET", "/", PolicyCacheFirst},
		{"api call", "GET", "/api/v1/leads", PolicyNetworkFirst},
		{"post skipped", "POST", "/api/v1/leads", PolicySkip},
		{"cross origin skipped", "GET", "https://cdn.other.com/lib.js", PolicySkip},
		{"same origin absolute", "GET", "https://app.example.com/static/app.css", PolicyCacheFirst},
		{"dev tooling skipped", "GET", "/sockjs-node/info", PolicySkip},
		{"hot update skipped", "GET", "/main.abc123.hot-update.js", PolicySkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := itc.Classify(&Request{Method: tt.method, URL: u})
			if got != tt.want {
				t.Errorf("Classify(%s %s) = %v, want %v", tt.method, tt.url, got, tt.want)
			}
		})
	}
}

func TestCacheFirst_HitServesCachedBytesWithoutFetch(t *testing.T) {
	f := &countingFetcher{}
	itc, store, _ := newTestInterceptor(t, f, InterceptorConfig{})

	body := []byte("cached asset bytes")
	err := store.Put(context.Background(), "v1", "GET /static/app.css", &Entry{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{"text/css"}},
		Body:   body,
	})
	if err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	entry := itc.Resolve(context.Background(), getRequest(t, "/static/app.css"))

	if !bytes.Equal(entry.Body, body) {
		t.Errorf("cached body mismatch: got %q, want %q", entry.Body, body)
	}
	if entry.Status != http.StatusOK {
		t.Errorf("status = %d, want 200", entry.Status)
	}
	if n := f.calls.Load(); n != 0 {
		t.Errorf("fetcher called %d times on cache hit, want 0", n)
	}
}

func TestCacheFirst_MissFetchesAndWritesThrough(t *testing.T) {
	f := &countingFetcher{entries: map[string]*Entry{
		"GET /static/app.js": {
			Status: http.StatusOK,
			Header: http.Header{"Content-Type": []string{"application/javascript"}},
			Body:   []byte("console.log(1)"),
		},
	}}
	itc, store, _ := newTestInterceptor(t, f, InterceptorConfig{})

	entry := itc.Resolve(context.Background(), getRequest(t, "/static/app.js"))
	if entry.Status != http.StatusOK {
		t.Fatalf("status = %d, want 200", entry.Status)
	}

	itc.Flush()

	cached, err := store.Get(context.Background(), "v1", "GET /static/app.js")
	if err != nil {
		t.Fatalf("expected write-through entry, got %v", err)
	}
	if !bytes.Equal(cached.Body, []byte("console.log(1)")) {
		t.Errorf("write-through body mismatch: got %q", cached.Body)
	}
}

func TestCacheFirst_CallerMutationDoesNotReachCache(t *testing.T) {
	f := &countingFetcher{entries: map[string]*Entry{
		"GET /logo192.png": {
			Status: http.StatusOK,
			Header: http.Header{},
			Body:   []byte("png-bytes"),
		},
	}}
	itc, store, _ := newTestInterceptor(t, f, InterceptorConfig{})

	entry := itc.Resolve(context.Background(), getRequest(t, "/logo192.png"))

	// A caller scribbling on what it got back must not corrupt the cache.
	for i := range entry.Body {
		entry.Body[i] = 'X'
	}
	entry.Header.Set("Content-Type", "tampered")

	itc.Flush()

	cached, err := store.Get(context.Background(), "v1", "GET /logo192.png")
	if err != nil {
		t.Fatalf("expected cached entry, got %v", err)
	}
	if !bytes.Equal(cached.Body, []byte("png-bytes")) {
		t.Errorf("cache saw caller mutation: got %q", cached.Body)
	}
	if got := cached.Header.Get("Content-Type"); got == "tampered" {
		t.Error("cache saw caller header mutation")
	}
}

func TestCacheFirst_ErrorStatusNotCached(t *testing.T) {
	f := &countingFetcher{entries: map[string]*Entry{}}
	itc, store, _ := newTestInterceptor(t, f, InterceptorConfig{})

	entry := itc.Resolve(context.Background(), getRequest(t, "/missing.js"))
	if entry.Status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", entry.Status)
	}

	itc.Flush()

	if _, err := store.Get(context.Background(), "v1", "GET /missing.js"); !errors.Is(err, ErrMiss) {
		t.Errorf("non-2xx response was cached: err = %v", err)
	}
}

func TestCacheFirst_OfflineNavigationServesOfflinePage(t *testing.T) {
	f := &countingFetcher{fail: true}
	itc, store, _ := newTestInterceptor(t, f, InterceptorConfig{})

	page := []byte("<html>offline</html>")
	err := store.Put(context.Background(), "v1", "GET /offline.html", &Entry{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{"text/html"}},
		Body:   page,
	})
	if err != nil {
		t.Fatalf("seed offline page: %v", err)
	}

	req := getRequest(t, "/dashboard")
	req.Navigation = true

	entry := itc.Resolve(context.Background(), req)
	if !bytes.Equal(entry.Body, page) {
		t.Errorf("navigation fallback body = %q, want offline page", entry.Body)
	}
}

func TestCacheFirst_OfflineNonNavigationReturnsEmpty503(t *testing.T) {
	f := &countingFetcher{fail: true}
	itc, _, _ := newTestInterceptor(t, f, InterceptorConfig{})

	entry := itc.Resolve(context.Background(), getRequest(t, "/static/font.woff2"))
	if entry.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", entry.Status)
	}
	if len(entry.Body) != 0 {
		t.Errorf("body = %q, want empty", entry.Body)
	}
}

func TestNetworkFirst_LiveWinsAndIsNotCached(t *testing.T) {
	f := &countingFetcher{entries: map[string]*Entry{
		"GET /api/v1/leads": {
			Status: http.StatusOK,
			Header: http.Header{"Content-Type": []string{"application/json"}},
			Body:   []byte(`[{"id":"L1"}]`),
		},
	}}
	itc, store, _ := newTestInterceptor(t, f, InterceptorConfig{})

	entry := itc.Resolve(context.Background(), getRequest(t, "/api/v1/leads"))
	if !bytes.Equal(entry.Body, []byte(`[{"id":"L1"}]`)) {
		t.Errorf("live body mismatch: got %q", entry.Body)
	}

	itc.Flush()

	// API responses are deliberately excluded from the cache: a stale lead
	// list is worse than a clear offline signal.
	if _, err := store.Get(context.Background(), "v1", "GET /api/v1/leads"); !errors.Is(err, ErrMiss) {
		t.Errorf("API success response was cached: err = %v", err)
	}
}

func TestNetworkFirst_OfflineServesCachedCopy(t *testing.T) {
	f := &countingFetcher{fail: true}
	itc, store, _ := newTestInterceptor(t, f, InterceptorConfig{})

	stale := []byte(`[{"id":"L1","stale":true}]`)
	err := store.Put(context.Background(), "v1", "GET /api/v1/leads", &Entry{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   stale,
	})
	if err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	entry := itc.Resolve(context.Background(), getRequest(t, "/api/v1/leads"))
	if !bytes.Equal(entry.Body, stale) {
		t.Errorf("offline API body = %q, want cached copy", entry.Body)
	}
}

func TestNetworkFirst_OfflineJSONFallback(t *testing.T) {
	f := &countingFetcher{fail: true}
	itc, _, _ := newTestInterceptor(t, f, InterceptorConfig{})

	req := getRequest(t, "/api/v1/notifications")
	req.Accept = "application/json"

	entry := itc.Resolve(context.Background(), req)

	if entry.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", entry.Status)
	}
	if got := string(entry.Body); got != `{"error":"You are offline"}` {
		t.Errorf("offline JSON body = %q, want exact offline error shape", got)
	}
	if ct := entry.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}
}

func TestResolve_PassthroughUntilControlling(t *testing.T) {
	ctx := context.Background()
	f := &countingFetcher{entries: map[string]*Entry{
		"GET /static/app.css": {Status: http.StatusOK, Header: http.Header{}, Body: []byte("live")},
	}}
	store := NewMemoryStore()
	mgr := NewManager(store, f.fetch, "v1", nil, nil)
	if err := mgr.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	itc := NewInterceptor(store, f.fetch, mgr, InterceptorConfig{}, nil)

	seed := &Entry{Status: http.StatusOK, Header: http.Header{}, Body: []byte("cached")}
	if err := store.Put(ctx, "v1", "GET /static/app.css", seed); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	// Before activation every request bypasses the cache, even on a key
	// the store already holds.
	entry := itc.Resolve(ctx, getRequest(t, "/static/app.css"))
	if !bytes.Equal(entry.Body, []byte("live")) {
		t.Errorf("pre-activation body = %q, want live response", entry.Body)
	}
	if n := f.calls.Load(); n != 1 {
		t.Errorf("fetcher called %d times before activation, want 1", n)
	}

	if err := mgr.Activate(ctx); err != nil {
		t.Fatalf("activate: %v", err)
	}

	entry = itc.Resolve(ctx, getRequest(t, "/static/app.css"))
	if !bytes.Equal(entry.Body, []byte("cached")) {
		t.Errorf("post-activation body = %q, want cached copy", entry.Body)
	}
	if n := f.calls.Load(); n != 1 {
		t.Errorf("fetcher called %d times total, want cache hit after activation", n)
	}
}

func TestResolve_AlwaysReturnsEntry(t *testing.T) {
	f := &countingFetcher{fail: true}
	itc, _, _ := newTestInterceptor(t, f, InterceptorConfig{})

	urls := []string{"/", "/api/v1/x", "/static/x.js", "/sockjs-node/info"}
	for _, raw := range urls {
		if entry := itc.Resolve(context.Background(), getRequest(t, raw)); entry == nil {
			t.Errorf("Resolve(%q) returned nil entry", raw)
		}
	}
}
