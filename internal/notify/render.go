package notify

import (
	"time"
)

// Rendering defaults. Icon paths are relative to the web app shell.
const (
	DefaultTitle = "DealerDesk BDC"
	DefaultIcon  = "/logo192.png"
	DefaultBadge = "/badge-72.png"
	DefaultTag   = "default"
)

var defaultVibration = []int{200, 100, 200}

// ActionID names a notification action button. The dispatcher maps these
// to navigation targets.
type ActionID string

const (
	ActionViewLead          ActionID = "view_lead"
	ActionViewAppointment   ActionID = "view_appointment"
	ActionViewVehicle       ActionID = "view_vehicle"
	ActionViewCommunication ActionID = "view_communication"
	ActionViewDetails       ActionID = "view_details"
	ActionDismiss           ActionID = "dismiss"
	// ActionDefault stands in when the user clicked the notification body
	// rather than a named button.
	ActionDefault ActionID = "default"
)

type Action struct {
	Action ActionID `json:"action"`
	Title  string   `json:"title"`
	Icon   string   `json:"icon,omitempty"`
}

// ActionsFor derives the action button set from the notification type.
// The mapping is closed: an unrecognized or absent type yields no custom
// actions.
func ActionsFor(t Type) []Action {
	var view Action
	switch t {
	case TypeLead:
		view = Action{Action: ActionViewLead, Title: "View Lead"}
	case TypeAppointment:
		view = Action{Action: ActionViewAppointment, Title: "View Appointment"}
	case TypeVehicle:
		view = Action{Action: ActionViewVehicle, Title: "View Vehicle"}
	case TypeCommunication:
		view = Action{Action: ActionViewCommunication, Title: "View Message"}
	case TypeSystem:
		view = Action{Action: ActionViewDetails, Title: "View Details"}
	default:
		return nil
	}
	return []Action{view, {Action: ActionDismiss, Title: "Dismiss"}}
}

// Descriptor is everything needed to show one notification on screen.
type Descriptor struct {
	Title              string         `json:"title"`
	Body               string         `json:"body"`
	Icon               string         `json:"icon"`
	Badge              string         `json:"badge"`
	Tag                string         `json:"tag"`
	Data               map[string]any `json:"data"`
	RequireInteraction bool           `json:"requireInteraction"`
	Actions            []Action       `json:"actions,omitempty"`
	Vibrate            []int          `json:"vibrate"`
	Image              string         `json:"image,omitempty"`
	Timestamp          time.Time      `json:"timestamp"`
}

// Render turns a push payload into a displayable descriptor, filling
// defaults for every missing field so a sparse or degraded payload still
// produces a complete notification.
func Render(p Payload) Descriptor {
	d := Descriptor{
		Title:              p.Title,
		Body:               p.Body,
		Icon:               p.Icon,
		Badge:              p.Badge,
		Tag:                p.Tag,
		Data:               p.Data,
		RequireInteraction: p.RequireInteraction,
		Actions:            p.Actions,
		Vibrate:            p.Vibrate,
		Image:              p.Image,
	}

	if d.Title == "" {
		d.Title = DefaultTitle
	}
	if d.Icon == "" {
		d.Icon = DefaultIcon
	}
	if d.Badge == "" {
		d.Badge = DefaultBadge
	}
	// Same-tag notifications coalesce on screen, so an untagged payload
	// lands in the shared slot instead of stacking up.
	if d.Tag == "" {
		d.Tag = DefaultTag
	}
	if d.Data == nil {
		d.Data = map[string]any{}
	}
	if len(d.Actions) == 0 {
		d.Actions = ActionsFor(Type(p.Type))
	}
	if len(d.Vibrate) == 0 {
		d.Vibrate = defaultVibration
	}
	if p.Timestamp > 0 {
		d.Timestamp = time.UnixMilli(p.Timestamp)
	} else {
		d.Timestamp = time.Now()
	}

	return d
}
