package notify

import (
	"encoding/json"
	"strings"
)

// Payload is the wire shape of a push message. It is produced by the
// delivery fan-out and consumed by the renderer/dispatcher on the other
// side, so both halves of the pipeline share this struct.
type Payload struct {
	ID                 string         `json:"id,omitempty"`
	Title              string         `json:"title,omitempty"`
	Body               string         `json:"body,omitempty"`
	Icon               string         `json:"icon,omitempty"`
	Badge              string         `json:"badge,omitempty"`
	Tag                string         `json:"tag,omitempty"`
	Data               map[string]any `json:"data,omitempty"`
	RequireInteraction bool           `json:"requireInteraction,omitempty"`
	Actions            []Action       `json:"actions,omitempty"`
	Vibrate            []int          `json:"vibrate,omitempty"`
	Image              string         `json:"image,omitempty"`
	Timestamp          int64          `json:"timestamp,omitempty"` // unix millis
	Type               string         `json:"type,omitempty"`
	Link               string         `json:"link,omitempty"`
	LeadID             string         `json:"leadId,omitempty"`
	AppointmentID      string         `json:"appointmentId,omitempty"`
	VehicleID          string         `json:"vehicleId,omitempty"`
	CommunicationID    string         `json:"communicationId,omitempty"`
}

// DataURL returns the explicit navigation URL from the data bag, if any.
func (p Payload) DataURL() string {
	if p.Data == nil {
		return ""
	}
	if s, ok := p.Data["url"].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// ParsePayload decodes raw push bytes. A payload that fails to parse as
// JSON never fails the pipeline: it degrades to a plain text notification
// built from the raw bytes.
func ParsePayload(raw []byte) Payload {
	var p Payload
	if err := json.Unmarshal(raw, &p); err == nil {
		return p
	}
	body := strings.TrimSpace(string(raw))
	if body == "" {
		body = "You have a new notification"
	}
	return Payload{
		Title: DefaultTitle,
		Body:  body,
	}
}
