package webpush

import (
	"context"
	"testing"

	"github.com/dealerdesk/dealerdesk_backend/config"
)

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.PushConfig
		wantErr     bool
		wantEnabled bool
	}{
		{
			name:        "disabled yields no-op client",
			cfg:         config.PushConfig{Enabled: false},
			wantEnabled: false,
		},
		{
			name:    "enabled without public key",
			cfg:     config.PushConfig{Enabled: true, VAPIDPrivateKey: "priv"},
			wantErr: true,
		},
		{
			name:    "enabled without private key",
			cfg:     config.PushConfig{Enabled: true, VAPIDPublicKey: "pub"},
			wantErr: true,
		},
		{
			name: "enabled with key pair",
			cfg: config.PushConfig{
				Enabled:         true,
				VAPIDPublicKey:  "pub",
				VAPIDPrivateKey: "priv",
				Subscriber:      "mailto:ops@example.com",
			},
			wantEnabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewFromConfig(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.IsEnabled() != tt.wantEnabled {
				t.Errorf("IsEnabled() = %v, want %v", c.IsEnabled(), tt.wantEnabled)
			}
		})
	}
}

func TestNewFromConfig_TTLDefault(t *testing.T) {
	c, err := NewFromConfig(config.PushConfig{
		Enabled:         true,
		VAPIDPublicKey:  "pub",
		VAPIDPrivateKey: "priv",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ttl != 3600 {
		t.Errorf("ttl = %d, want 3600 default", c.ttl)
	}

	c, err = NewFromConfig(config.PushConfig{
		Enabled:         true,
		VAPIDPublicKey:  "pub",
		VAPIDPrivateKey: "priv",
		TTLSeconds:      60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ttl != 60 {
		t.Errorf("ttl = %d, want configured 60", c.ttl)
	}
}

func TestSend_DisabledIsNoOp(t *testing.T) {
	c, err := NewFromConfig(config.PushConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Send(context.Background(), Subscription{}, []byte("x")); err != nil {
		t.Errorf("disabled Send returned %v", err)
	}
}

func TestSend_RequiresEndpoint(t *testing.T) {
	c, err := NewFromConfig(config.PushConfig{
		Enabled:         true,
		VAPIDPublicKey:  "pub",
		VAPIDPrivateKey: "priv",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Send(context.Background(), Subscription{}, []byte("x")); err == nil {
		t.Error("expected error for empty endpoint")
	}
}
