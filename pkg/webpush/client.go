package webpush

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	wp "github.com/SherClockHolmes/webpush-go"

	"github.com/dealerdesk/dealerdesk_backend/config"
)

// ErrSubscriptionGone means the push service no longer recognizes the
// endpoint; the caller should delete the stored subscription.
var ErrSubscriptionGone = errors.New("push subscription gone")

// Subscription is the stored key material for one device.
type Subscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// Client sends VAPID-signed web push messages.
type Client struct {
	enabled    bool
	publicKey  string
	privateKey string
	subscriber string
	ttl        int
}

// NewFromConfig creates a push client from the application configuration.
// If push is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.PushConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}
	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return nil, fmt.Errorf("VAPID key pair required when push enabled")
	}

	ttl := cfg.TTLSeconds
	if ttl <= 0 {
		ttl = 3600
	}

	return &Client{
		enabled:    true,
		publicKey:  cfg.VAPIDPublicKey,
		privateKey: cfg.VAPIDPrivateKey,
		subscriber: cfg.Subscriber,
		ttl:        ttl,
	}, nil
}

// PublicKey returns the VAPID public key browsers need to subscribe.
func (c *Client) PublicKey() string {
	return c.publicKey
}

// IsEnabled returns whether push sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// Send pushes a payload to one device. When the push service reports the
// endpoint dead (404/410), Send returns ErrSubscriptionGone so the caller
// can clean up. If push is disabled, this is a no-op and returns nil.
func (c *Client) Send(ctx context.Context, sub Subscription, payload []byte) error {
	if !c.enabled {
		return nil
	}
	if sub.Endpoint == "" {
		return fmt.Errorf("subscription endpoint is required")
	}

	resp, err := wp.SendNotificationWithContext(ctx, payload, &wp.Subscription{
		Endpoint: sub.Endpoint,
		Keys: wp.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &wp.Options{
		Subscriber:      c.subscriber,
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
		TTL:             c.ttl,
	})
	if err != nil {
		return fmt.Errorf("push send failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	case resp.StatusCode >= 400:
		return fmt.Errorf("push service returned %d", resp.StatusCode)
	}
	return nil
}
