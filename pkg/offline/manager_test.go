package offline

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestManager_InstallPrecachesManifest(t *testing.T) {
	f := &countingFetcher{entries: map[string]*Entry{
		"GET /":             {Status: http.StatusOK, Header: http.Header{}, Body: []byte("shell")},
		"GET /offline.html": {Status: http.StatusOK, Header: http.Header{}, Body: []byte("offline")},
	}}
	store := NewMemoryStore()
	mgr := NewManager(store, f.fetch, "v2", []string{"/", "/offline.html"}, nil)

	if err := mgr.Install(context.Background()); err != nil {
		t.Fatalf("install: %v", err)
	}

	for _, key := range []string{"GET /", "GET /offline.html"} {
		if _, err := store.Get(context.Background(), "v2", key); err != nil {
			t.Errorf("precached %q missing: %v", key, err)
		}
	}
}

func TestManager_InstallSurvivesFailedAssets(t *testing.T) {
	f := &countingFetcher{fail: true}
	store := NewMemoryStore()
	mgr := NewManager(store, f.fetch, "v2", []string{"/", "/broken.css"}, nil)

	if err := mgr.Install(context.Background()); err != nil {
		t.Fatalf("install must not fail on individual assets: %v", err)
	}

	if err := mgr.Activate(context.Background()); err != nil {
		t.Fatalf("activate after partial install: %v", err)
	}
	if !mgr.Controlling() {
		t.Error("manager should control after activation")
	}
}

func TestManager_InstallSkipsErrorStatusAssets(t *testing.T) {
	ctx := context.Background()

	// The fetcher 404s anything outside its entries map, so the offline
	// page here arrives as an error response at deploy time.
	f := &countingFetcher{entries: map[string]*Entry{
		"GET /": {Status: http.StatusOK, Header: http.Header{}, Body: []byte("shell")},
	}}
	store := NewMemoryStore()
	mgr := NewManager(store, f.fetch, "v1", []string{"/", "/offline.html"}, nil)

	if err := mgr.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	if err := mgr.Activate(ctx); err != nil {
		t.Fatalf("activate: %v", err)
	}

	if _, err := store.Get(ctx, "v1", "GET /"); err != nil {
		t.Errorf("healthy asset missing: %v", err)
	}
	if _, err := store.Get(ctx, "v1", "GET /offline.html"); !errors.Is(err, ErrMiss) {
		t.Errorf("error-status asset was precached: err = %v", err)
	}

	// With the poisoned page kept out of the cache, an offline navigation
	// degrades to the empty 503 instead of replaying the upstream 404 body.
	f.fail = true
	itc := NewInterceptor(store, f.fetch, mgr, InterceptorConfig{}, nil)
	req := getRequest(t, "/dashboard")
	req.Navigation = true

	entry := itc.Resolve(ctx, req)
	if entry.Status != http.StatusServiceUnavailable {
		t.Errorf("offline navigation status = %d, want 503", entry.Status)
	}
	if len(entry.Body) != 0 {
		t.Errorf("offline navigation body = %q, want empty", entry.Body)
	}
}

func TestManager_ActivateBeforeInstallFails(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), (&countingFetcher{}).fetch, "v1", nil, nil)

	if err := mgr.Activate(context.Background()); err == nil {
		t.Fatal("expected error activating before install")
	}
	if mgr.Controlling() {
		t.Error("manager must not control before install+activate")
	}
}

func TestManager_ActivateDropsStaleGenerations(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// Residue from two older deploys.
	seed := &Entry{Status: http.StatusOK, Header: http.Header{}, Body: []byte("old")}
	if err := store.Put(ctx, "v1", "GET /", seed); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "v2", "GET /", seed); err != nil {
		t.Fatal(err)
	}

	f := &countingFetcher{entries: map[string]*Entry{
		"GET /": {Status: http.StatusOK, Header: http.Header{}, Body: []byte("new")},
	}}
	mgr := NewManager(store, f.fetch, "v3", []string{"/"}, nil)

	if err := mgr.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	if err := mgr.Activate(ctx); err != nil {
		t.Fatalf("activate: %v", err)
	}

	names, err := store.Generations(ctx)
	if err != nil {
		t.Fatalf("generations: %v", err)
	}
	if len(names) != 1 || names[0] != "v3" {
		t.Errorf("generations after activate = %v, want [v3]", names)
	}

	if _, err := store.Get(ctx, "v1", "GET /"); !errors.Is(err, ErrMiss) {
		t.Errorf("stale v1 entry survived activation: err = %v", err)
	}

	// Second activation finds nothing stale and stays controlling.
	if err := mgr.Activate(ctx); err != nil {
		t.Fatalf("second activate: %v", err)
	}
	names, _ = store.Generations(ctx)
	if len(names) != 1 {
		t.Errorf("generations after re-activate = %v, want exactly one", names)
	}
}

func TestManager_HandleMessage(t *testing.T) {
	f := &countingFetcher{entries: map[string]*Entry{}}
	store := NewMemoryStore()
	mgr := NewManager(store, f.fetch, "v1", nil, nil)
	if err := mgr.Install(context.Background()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		raw         string
		wantErr     bool
		wantControl bool
	}{
		{"skip waiting activates", `{"type":"SKIP_WAITING"}`, false, true},
		{"unknown type ignored", `{"type":"PING"}`, false, true},
		{"malformed json rejected", `{not json`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mgr.HandleMessage(context.Background(), []byte(tt.raw))
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if mgr.Controlling() != tt.wantControl {
				t.Errorf("controlling = %v, want %v", mgr.Controlling(), tt.wantControl)
			}
		})
	}
}
