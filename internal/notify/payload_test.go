package notify

import "testing"

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "valid json",
			raw:       `{"title":"New lead","body":"Jordan Smith","type":"lead"}`,
			wantTitle: "New lead",
			wantBody:  "Jordan Smith",
		},
		{
			name:      "malformed json degrades to text",
			raw:       `not json at all`,
			wantTitle: DefaultTitle,
			wantBody:  "not json at all",
		},
		{
			name:      "empty payload",
			raw:       ``,
			wantTitle: DefaultTitle,
			wantBody:  "You have a new notification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePayload([]byte(tt.raw))
			if p.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", p.Title, tt.wantTitle)
			}
			if p.Body != tt.wantBody {
				t.Errorf("body = %q, want %q", p.Body, tt.wantBody)
			}
		})
	}
}

func TestDataURL(t *testing.T) {
	tests := []struct {
		name string
		p    Payload
		want string
	}{
		{"nil data", Payload{}, ""},
		{"url present", Payload{Data: map[string]any{"url": "/leads/L1"}}, "/leads/L1"},
		{"whitespace trimmed", Payload{Data: map[string]any{"url": "  /x  "}}, "/x"},
		{"non-string url ignored", Payload{Data: map[string]any{"url": 42}}, ""},
		{"missing key", Payload{Data: map[string]any{"other": "v"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.DataURL(); got != tt.want {
				t.Errorf("DataURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
