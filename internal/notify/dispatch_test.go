package notify

import (
	"context"
	"testing"
)

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name         string
		p            Payload
		action       ActionID
		wantTarget   string
		wantNavigate bool
	}{
		{
			name:         "dismiss never navigates",
			p:            Payload{LeadID: "L1", Data: map[string]any{"url": "/leads/L1"}},
			action:       ActionDismiss,
			wantNavigate: false,
		},
		{
			name:         "data url beats action routing",
			p:            Payload{AppointmentID: "A1", Data: map[string]any{"url": "/custom/path"}},
			action:       ActionViewAppointment,
			wantTarget:   "/custom/path",
			wantNavigate: true,
		},
		{
			name:         "view lead routes by id",
			p:            Payload{LeadID: "L1"},
			action:       ActionViewLead,
			wantTarget:   "/leads/L1",
			wantNavigate: true,
		},
		{
			name:         "view appointment routes by id",
			p:            Payload{AppointmentID: "A1"},
			action:       ActionViewAppointment,
			wantTarget:   "/appointments/A1",
			wantNavigate: true,
		},
		{
			name:         "view vehicle routes by id",
			p:            Payload{VehicleID: "V1"},
			action:       ActionViewVehicle,
			wantTarget:   "/vehicles/V1",
			wantNavigate: true,
		},
		{
			name:         "view communication routes by id",
			p:            Payload{CommunicationID: "C1"},
			action:       ActionViewCommunication,
			wantTarget:   "/communications/C1",
			wantNavigate: true,
		},
		{
			name:         "view details uses link",
			p:            Payload{Link: "/reports/weekly"},
			action:       ActionViewDetails,
			wantTarget:   "/reports/weekly",
			wantNavigate: true,
		},
		{
			name:         "view details without link goes to inbox",
			p:            Payload{},
			action:       ActionViewDetails,
			wantTarget:   "/notifications",
			wantNavigate: true,
		},
		{
			name:         "default click uses link",
			p:            Payload{Link: "/leads/L9"},
			action:       ActionDefault,
			wantTarget:   "/leads/L9",
			wantNavigate: true,
		},
		{
			name:         "bare payload falls back to root",
			p:            Payload{},
			action:       ActionDefault,
			wantTarget:   "/",
			wantNavigate: true,
		},
		{
			name:         "action with missing entity id falls through to link",
			p:            Payload{Link: "/somewhere"},
			action:       ActionViewLead,
			wantTarget:   "/somewhere",
			wantNavigate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTarget(tt.p, tt.action)
			if got.Navigate != tt.wantNavigate {
				t.Errorf("navigate = %v, want %v", got.Navigate, tt.wantNavigate)
			}
			if got.Navigate && got.Target != tt.wantTarget {
				t.Errorf("target = %q, want %q", got.Target, tt.wantTarget)
			}
		})
	}
}

func drain(ch <-chan Envelope) []Envelope {
	var out []Envelope
	for {
		select {
		case ev := <-ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestDispatcher_Clicked(t *testing.T) {
	reg := NewMemoryRegistry()
	ch, cancel := reg.Subscribe("u1")
	defer cancel()

	d := NewDispatcher(reg, nil)
	p := Payload{ID: "n1", LeadID: "L1"}

	result := d.Clicked(context.Background(), "u1", p, ActionViewLead)
	if !result.Navigate || result.Target != "/leads/L1" {
		t.Errorf("click result = %+v, want navigate to /leads/L1", result)
	}

	events := drain(ch)
	if len(events) != 1 {
		t.Fatalf("broadcast %d events, want 1", len(events))
	}
	if events[0].Type != EventClicked {
		t.Errorf("event type = %s, want %s", events[0].Type, EventClicked)
	}
	clicked, ok := events[0].Notification.(ClickedNotification)
	if !ok {
		t.Fatalf("notification body has type %T", events[0].Notification)
	}
	if clicked.ID != "n1" || clicked.Action != ActionViewLead {
		t.Errorf("clicked body = %+v", clicked)
	}
}

func TestDispatcher_ClickedEmptyActionIsDefault(t *testing.T) {
	reg := NewMemoryRegistry()
	ch, cancel := reg.Subscribe("u1")
	defer cancel()

	d := NewDispatcher(reg, nil)
	d.Clicked(context.Background(), "u1", Payload{ID: "n1"}, "")

	events := drain(ch)
	if len(events) != 1 {
		t.Fatalf("broadcast %d events, want 1", len(events))
	}
	clicked := events[0].Notification.(ClickedNotification)
	if clicked.Action != ActionDefault {
		t.Errorf("empty action reported as %q, want %q", clicked.Action, ActionDefault)
	}
}

func TestDispatcher_ClosedSkipsAnonymousPayloads(t *testing.T) {
	reg := NewMemoryRegistry()
	ch, cancel := reg.Subscribe("u1")
	defer cancel()

	d := NewDispatcher(reg, nil)

	d.Closed(context.Background(), "u1", Payload{})
	if events := drain(ch); len(events) != 0 {
		t.Errorf("anonymous close broadcast %d events, want 0", len(events))
	}

	d.Closed(context.Background(), "u1", Payload{ID: "n1"})
	events := drain(ch)
	if len(events) != 1 || events[0].Type != EventClosed {
		t.Fatalf("identified close events = %+v, want one closed event", events)
	}
}

func TestDispatcher_Displayed(t *testing.T) {
	reg := NewMemoryRegistry()
	ch, cancel := reg.Subscribe("u1")
	defer cancel()

	d := NewDispatcher(reg, nil)
	d.Displayed(context.Background(), "u1", Payload{ID: "n1", Body: "hello"})

	events := drain(ch)
	if len(events) != 1 || events[0].Type != EventDisplayed {
		t.Fatalf("events = %+v, want one displayed event", events)
	}
	shown := events[0].Notification.(DisplayedNotification)
	if shown.ID != "n1" || shown.Body != "hello" {
		t.Errorf("displayed body = %+v", shown)
	}
	// Renderer defaults apply even to the broadcast copy.
	if shown.Title != DefaultTitle {
		t.Errorf("title = %q, want rendered default", shown.Title)
	}
}
