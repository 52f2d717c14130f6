package notify

import (
	"context"
	"log/slog"
)

// Navigation paths for action routing.
const (
	pathRoot           = "/"
	pathNotifications  = "/notifications"
	pathLeads          = "/leads/"
	pathAppointments   = "/appointments/"
	pathVehicles       = "/vehicles/"
	pathCommunications = "/communications/"
)

// ClickResult is what the client layer does after a click: navigate to
// Target, preferring to focus an already-open context showing it.
type ClickResult struct {
	Target   string `json:"target,omitempty"`
	Navigate bool   `json:"navigate"`
}

// Dispatcher turns user interactions with a shown notification into
// navigation decisions and lifecycle broadcasts.
type Dispatcher struct {
	registry Registry
	log      *slog.Logger
}

func NewDispatcher(registry Registry, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{registry: registry, log: log}
}

// ResolveTarget picks the navigation destination for a click.
//
// Precedence: dismiss short-circuits; then an explicit data.url wins even
// when an action carries entity ids (matching long-standing client
// behavior); then action routing by entity id; then the generic link;
// then the root path.
func ResolveTarget(p Payload, action ActionID) ClickResult {
	if action == ActionDismiss {
		return ClickResult{Navigate: false}
	}

	if u := p.DataURL(); u != "" {
		return ClickResult{Target: u, Navigate: true}
	}

	switch action {
	case ActionViewLead:
		if p.LeadID != "" {
			return ClickResult{Target: pathLeads + p.LeadID, Navigate: true}
		}
	case ActionViewAppointment:
		if p.AppointmentID != "" {
			return ClickResult{Target: pathAppointments + p.AppointmentID, Navigate: true}
		}
	case ActionViewVehicle:
		if p.VehicleID != "" {
			return ClickResult{Target: pathVehicles + p.VehicleID, Navigate: true}
		}
	case ActionViewCommunication:
		if p.CommunicationID != "" {
			return ClickResult{Target: pathCommunications + p.CommunicationID, Navigate: true}
		}
	case ActionViewDetails:
		if p.Link != "" {
			return ClickResult{Target: p.Link, Navigate: true}
		}
		return ClickResult{Target: pathNotifications, Navigate: true}
	}

	if p.Link != "" {
		return ClickResult{Target: p.Link, Navigate: true}
	}
	return ClickResult{Target: pathRoot, Navigate: true}
}

// Displayed reports that a notification was shown and broadcasts the
// displayed event so in-page UI can bump unread counts immediately.
func (d *Dispatcher) Displayed(ctx context.Context, userID string, p Payload) {
	desc := Render(p)
	d.registry.Broadcast(ctx, userID, Envelope{
		Type: EventDisplayed,
		Notification: DisplayedNotification{
			ID:        p.ID,
			Title:     desc.Title,
			Body:      desc.Body,
			Timestamp: desc.Timestamp.UnixMilli(),
			Type:      p.Type,
		},
	})
}

// Clicked resolves the click's navigation target and broadcasts the clicked
// event. A click with no named action is reported as "default".
func (d *Dispatcher) Clicked(ctx context.Context, userID string, p Payload, action ActionID) ClickResult {
	if action == "" {
		action = ActionDefault
	}

	d.registry.Broadcast(ctx, userID, Envelope{
		Type: EventClicked,
		Notification: ClickedNotification{
			ID:     p.ID,
			Action: action,
		},
	})

	return ResolveTarget(p, action)
}

// Closed broadcasts the closed event, but only when the notification
// carried an id. This is an analytics signal, not required for
// correctness.
func (d *Dispatcher) Closed(ctx context.Context, userID string, p Payload) {
	if p.ID == "" {
		return
	}
	d.registry.Broadcast(ctx, userID, Envelope{
		Type:         EventClosed,
		Notification: ClosedNotification{ID: p.ID},
	})
}
