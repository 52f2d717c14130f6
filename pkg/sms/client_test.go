package sms

import (
	"context"
	"testing"

	"github.com/dealerdesk/dealerdesk_backend/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: false,
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:     "",
			SecretKey:  "",
			TemplateID: "test-template",
		},
	}

	_, err := NewFromConfig(cfg)
	if err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestSendTemplate_DisabledClient(t *testing.T) {
	client := &Client{enabled: false, defaultRegion: "US"}

	err := client.SendTemplate(context.Background(), "+15551234567", "template-id", map[string]string{"title": "New lead"})
	if err != nil {
		t.Errorf("Expected no error for disabled client, got: %v", err)
	}
}

func TestSendTemplate_Validation(t *testing.T) {
	client := &Client{enabled: true, defaultRegion: "US"}

	tests := []struct {
		name        string
		phone       string
		templateID  string
		expectError bool
	}{
		{
			name:        "empty phone number",
			phone:       "",
			templateID:  "template-id",
			expectError: true,
		},
		{
			name:        "empty template ID",
			phone:       "+15551234567",
			templateID:  "",
			expectError: true,
		},
		{
			name:        "unparseable phone number",
			phone:       "not-a-phone",
			templateID:  "template-id",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.SendTemplate(context.Background(), tt.phone, tt.templateID, nil)
			if tt.expectError && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	client := &Client{defaultRegion: "US"}

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "national number with default region",
			raw:  "212 555 0123",
			want: "+12125550123",
		},
		{
			name: "already E.164",
			raw:  "+12125550123",
			want: "+12125550123",
		},
		{
			name:    "garbage",
			raw:     "hello",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.Normalize(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Normalize(%q) expected error, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
