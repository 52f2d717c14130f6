package offline

import (
	"context"
	"net/url"
	"strings"
)

// Request is the subset of an HTTP request the cache layer cares about.
type Request struct {
	Method string
	URL    *url.URL
	// Accept is the request's declared accept header; it picks the offline
	// fallback shape for API requests.
	Accept string
	// Navigation marks a top-level document request, which falls back to
	// the offline page instead of an empty error body.
	Navigation bool
}

// Key returns the exact cache key: method plus full URL, never normalized.
func (r *Request) Key() string {
	return r.Method + " " + r.URL.String()
}

// AcceptsJSON reports whether the declared accept type includes JSON.
func (r *Request) AcceptsJSON() bool {
	return strings.Contains(r.Accept, "application/json")
}

// Fetcher resolves a request against the live network.
type Fetcher func(ctx context.Context, req *Request) (*Entry, error)
