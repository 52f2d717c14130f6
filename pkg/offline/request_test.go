package offline

import (
	"net/url"
	"testing"
)

func TestRequestKey_ExactNoNormalization(t *testing.T) {
	tests := []struct {
		name   string
		method string
		rawURL string
		want   string
	}{
		{"plain path", "GET", "/static/app.js", "GET /static/app.js"},
		{"query preserved", "GET", "/api/v1/leads?page=2&per_page=20", "GET /api/v1/leads?page=2&per_page=20"},
		{"trailing slash distinct", "GET", "/dashboard/", "GET /dashboard/"},
		{"absolute url", "GET", "https://app.example.com/logo192.png", "GET https://app.example.com/logo192.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.rawURL)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			r := &Request{Method: tt.method, URL: u}
			if got := r.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}

	// Same path with and without a query are different cache slots.
	a, _ := url.Parse("/api/v1/leads")
	b, _ := url.Parse("/api/v1/leads?page=1")
	if (&Request{Method: "GET", URL: a}).Key() == (&Request{Method: "GET", URL: b}).Key() {
		t.Error("querystring variants must not share a cache key")
	}
}

func TestAcceptsJSON(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"application/json", true},
		{"application/json, text/plain, */*", true},
		{"text/html,application/xhtml+xml", false},
		{"", false},
	}

	for _, tt := range tests {
		r := &Request{Accept: tt.accept}
		if got := r.AcceptsJSON(); got != tt.want {
			t.Errorf("AcceptsJSON(%q) = %v, want %v", tt.accept, got, tt.want)
		}
	}
}
