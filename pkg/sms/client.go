package sms

import (
	"context"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"
	"github.com/nyaruka/phonenumbers"

	"github.com/dealerdesk/dealerdesk_backend/config"
)

// Client provides SMS sending via sms.ir template sends.
type Client struct {
	client        *smsir.Client
	enabled       bool
	defaultRegion string
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	region := cfg.DefaultRegion
	if region == "" {
		region = "US"
	}

	if !cfg.Enabled {
		return &Client{enabled: false, defaultRegion: region}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:        client,
		enabled:       true,
		defaultRegion: region,
	}, nil
}

// Normalize parses a raw phone number and returns it in E.164 form,
// falling back to the configured default region for national numbers.
func (c *Client) Normalize(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, c.defaultRegion)
	if err != nil {
		return "", fmt.Errorf("parse phone %q: %w", raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number %q", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// SendTemplate sends a templated SMS to one recipient. Params map template
// parameter names to values. If SMS is disabled, this is a no-op.
func (c *Client) SendTemplate(ctx context.Context, phone, templateID string, params map[string]string) error {
	if !c.enabled {
		return nil
	}

	if phone == "" {
		return fmt.Errorf("phone number is required")
	}
	if templateID == "" {
		return fmt.Errorf("template ID is required")
	}

	normalized, err := c.Normalize(phone)
	if err != nil {
		return err
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     normalized,
		TemplateID: templateID,
	}
	for k, v := range params {
		req.Parameters = append(req.Parameters, smsir.UltraFastParameter{Key: k, Value: v})
	}

	if _, err := c.client.Verification.UltraFastSend(ctx, req); err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}
	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
