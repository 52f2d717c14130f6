package email

import (
	"fmt"
	"html"
	"strings"
)

// NotificationEmailData contains the data needed to render a notification email.
type NotificationEmailData struct {
	Email    string
	Title    string
	Body     string
	Link     string
	Type     string
	Priority string
	AppName  string
	BaseURL  string
}

var typeSubjectPrefix = map[string]string{
	"lead":          "New Lead",
	"appointment":   "Appointment",
	"vehicle":       "Inventory Match",
	"communication": "New Message",
	"system":        "System Notice",
}

// BuildNotificationEmail creates the email rendition of a dealership notification.
// The Link is resolved against BaseURL when it is a relative path.
func BuildNotificationEmail(data NotificationEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "DealerDesk BDC"
	}

	prefix := typeSubjectPrefix[data.Type]
	if prefix == "" {
		prefix = "Notification"
	}

	subject := fmt.Sprintf("[%s] %s: %s", appName, prefix, data.Title)
	if data.Priority == "urgent" {
		subject = "URGENT - " + subject
	}

	link := data.Link
	if link != "" && strings.HasPrefix(link, "/") && data.BaseURL != "" {
		link = strings.TrimRight(data.BaseURL, "/") + link
	}

	textLines := []string{data.Title, "", data.Body}
	if link != "" {
		textLines = append(textLines, "", "Open in "+appName+":", link)
	}
	textLines = append(textLines, "", "--", "You received this because browser notifications alone may be missed. Manage channels in your notification preferences.")
	textBody := strings.Join(textLines, "\n")

	linkHTML := ""
	if link != "" {
		linkHTML = fmt.Sprintf(`
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open in %s</a>
    </p>`, html.EscapeString(link), html.EscapeString(appName))
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">%s</h2>
    <p>%s</p>%s
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
        You received this because browser notifications alone may be missed.<br>
        Manage channels in your notification preferences.
    </p>
</body>
</html>`, html.EscapeString(data.Title), html.EscapeString(data.Body), linkHTML)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
