package offline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// NewHTTPFetcher builds a Fetcher that resolves relative request URLs
// against the upstream origin serving the real application assets.
func NewHTTPFetcher(upstream string, client *http.Client) Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	upstream = strings.TrimRight(upstream, "/")

	return func(ctx context.Context, req *Request) (*Entry, error) {
		target := req.URL.String()
		if !req.URL.IsAbs() {
			target = upstream + req.URL.RequestURI()
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, nil)
		if err != nil {
			return nil, fmt.Errorf("offline: build request: %w", err)
		}
		if req.Accept != "" {
			httpReq.Header.Set("Accept", req.Accept)
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return nil, fmt.Errorf("offline: fetch %s: %w", target, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("offline: read body: %w", err)
		}

		return &Entry{
			Status:   resp.StatusCode,
			Header:   resp.Header.Clone(),
			Body:     body,
			StoredAt: time.Now(),
		}, nil
	}
}
