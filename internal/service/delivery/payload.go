package delivery

import (
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo"
)

// BuildPayload flattens a stored notification into the push wire shape.
// The renderer on the receiving side fills display defaults, so only what
// the row actually carries is set here.
func BuildPayload(n *repo.Notification) notify.Payload {
	p := notify.Payload{
		ID:        n.ID.String(),
		Title:     n.Title,
		Type:      string(n.Type),
		Tag:       string(n.Type),
		Data:      n.Data,
		Timestamp: n.CreatedAt.UnixMilli(),
	}

	if n.Body != nil {
		p.Body = *n.Body
	}
	if n.Link != nil {
		p.Link = *n.Link
	}

	// Urgent work should stay on screen until acted on.
	if n.Priority == "urgent" || n.Priority == "high" {
		p.RequireInteraction = true
	}

	if n.EntityID != nil {
		switch notify.Type(n.Type) {
		case notify.TypeLead:
			p.LeadID = *n.EntityID
		case notify.TypeAppointment:
			p.AppointmentID = *n.EntityID
		case notify.TypeVehicle:
			p.VehicleID = *n.EntityID
		case notify.TypeCommunication:
			p.CommunicationID = *n.EntityID
		}
	}

	return p
}
