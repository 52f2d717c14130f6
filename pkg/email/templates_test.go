package email

import (
	"strings"
	"testing"
)

func TestBuildNotificationEmail_Subject(t *testing.T) {
	tests := []struct {
		name string
		data NotificationEmailData
		want string
	}{
		{
			name: "lead subject prefix",
			data: NotificationEmailData{Type: "lead", Title: "John Smith assigned", AppName: "DealerDesk BDC"},
			want: "[DealerDesk BDC] New Lead: John Smith assigned",
		},
		{
			name: "appointment subject prefix",
			data: NotificationEmailData{Type: "appointment", Title: "Test drive at 3pm", AppName: "DealerDesk BDC"},
			want: "[DealerDesk BDC] Appointment: Test drive at 3pm",
		},
		{
			name: "unknown type gets generic prefix",
			data: NotificationEmailData{Type: "other", Title: "Hello", AppName: "DealerDesk BDC"},
			want: "[DealerDesk BDC] Notification: Hello",
		},
		{
			name: "urgent priority prepends marker",
			data: NotificationEmailData{Type: "appointment", Title: "Now", Priority: "urgent", AppName: "DealerDesk BDC"},
			want: "URGENT - [DealerDesk BDC] Appointment: Now",
		},
		{
			name: "empty app name falls back",
			data: NotificationEmailData{Type: "system", Title: "Maintenance window"},
			want: "[DealerDesk BDC] System Notice: Maintenance window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := BuildNotificationEmail(tt.data)
			if msg.Subject != tt.want {
				t.Errorf("subject = %q, want %q", msg.Subject, tt.want)
			}
		})
	}
}

func TestBuildNotificationEmail_LinkResolution(t *testing.T) {
	msg := BuildNotificationEmail(NotificationEmailData{
		Email:   "bdc@example.com",
		Type:    "lead",
		Title:   "New lead",
		Body:    "Check it out",
		Link:    "/leads/L1",
		BaseURL: "https://app.example.com/",
	})

	if !strings.Contains(msg.TextBody, "https://app.example.com/leads/L1") {
		t.Errorf("text body missing resolved link:\n%s", msg.TextBody)
	}
	if !strings.Contains(msg.HTMLBody, `href="https://app.example.com/leads/L1"`) {
		t.Error("html body missing resolved link")
	}
}

func TestBuildNotificationEmail_AbsoluteLinkUntouched(t *testing.T) {
	msg := BuildNotificationEmail(NotificationEmailData{
		Email:   "bdc@example.com",
		Type:    "system",
		Title:   "Status page",
		Link:    "https://status.example.com",
		BaseURL: "https://app.example.com",
	})

	if !strings.Contains(msg.TextBody, "https://status.example.com") {
		t.Error("absolute link should pass through unchanged")
	}
	if strings.Contains(msg.TextBody, "app.example.comhttps") {
		t.Error("absolute link was wrongly resolved against the base url")
	}
}

func TestBuildNotificationEmail_EscapesHTML(t *testing.T) {
	msg := BuildNotificationEmail(NotificationEmailData{
		Email: "bdc@example.com",
		Type:  "communication",
		Title: `<script>alert("x")</script>`,
		Body:  "a & b",
	})

	if strings.Contains(msg.HTMLBody, "<script>") {
		t.Error("title was not escaped in html body")
	}
	if !strings.Contains(msg.HTMLBody, "a &amp; b") {
		t.Error("body was not escaped in html body")
	}
}

func TestBuildNotificationEmail_Recipient(t *testing.T) {
	msg := BuildNotificationEmail(NotificationEmailData{Email: "bdc@example.com", Type: "lead", Title: "x"})
	if len(msg.To) != 1 || msg.To[0] != "bdc@example.com" {
		t.Errorf("recipients = %v", msg.To)
	}
}
