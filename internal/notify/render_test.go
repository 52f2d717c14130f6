package notify

import (
	"testing"
	"time"
)

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		wantView ActionID
	}{
		{"lead", TypeLead, ActionViewLead},
		{"appointment", TypeAppointment, ActionViewAppointment},
		{"vehicle", TypeVehicle, ActionViewVehicle},
		{"communication", TypeCommunication, ActionViewCommunication},
		{"system", TypeSystem, ActionViewDetails},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := ActionsFor(tt.typ)
			if len(actions) != 2 {
				t.Fatalf("ActionsFor(%s) returned %d actions, want 2", tt.typ, len(actions))
			}
			if actions[0].Action != tt.wantView {
				t.Errorf("view action = %s, want %s", actions[0].Action, tt.wantView)
			}
			if actions[1].Action != ActionDismiss {
				t.Errorf("second action = %s, want dismiss", actions[1].Action)
			}
		})
	}

	if got := ActionsFor(Type("unknown")); got != nil {
		t.Errorf("ActionsFor(unknown) = %v, want nil", got)
	}
	if got := ActionsFor(""); got != nil {
		t.Errorf("ActionsFor(empty) = %v, want nil", got)
	}
}

func TestRender_FillsDefaults(t *testing.T) {
	d := Render(Payload{})

	if d.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", d.Title, DefaultTitle)
	}
	if d.Icon != DefaultIcon {
		t.Errorf("icon = %q, want %q", d.Icon, DefaultIcon)
	}
	if d.Badge != DefaultBadge {
		t.Errorf("badge = %q, want %q", d.Badge, DefaultBadge)
	}
	if d.Tag != DefaultTag {
		t.Errorf("tag = %q, want %q", d.Tag, DefaultTag)
	}
	if d.Data == nil {
		t.Error("data must never be nil after render")
	}
	if len(d.Vibrate) == 0 {
		t.Error("vibration pattern must default")
	}
	if d.Timestamp.IsZero() {
		t.Error("timestamp must default to now")
	}
}

func TestRender_PreservesExplicitFields(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	p := Payload{
		Title:     "New lead assigned",
		Body:      "Jordan Smith (via website)",
		Icon:      "/icons/lead.png",
		Tag:       "lead-L1",
		Type:      string(TypeLead),
		Timestamp: ts.UnixMilli(),
	}

	d := Render(p)

	if d.Title != p.Title || d.Body != p.Body || d.Icon != p.Icon || d.Tag != p.Tag {
		t.Errorf("explicit fields overwritten: %+v", d)
	}
	if !d.Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", d.Timestamp, ts)
	}
	if len(d.Actions) != 2 || d.Actions[0].Action != ActionViewLead {
		t.Errorf("lead payload actions = %v, want view_lead+dismiss", d.Actions)
	}
}

func TestRender_ExplicitActionsWin(t *testing.T) {
	p := Payload{
		Type:    string(TypeLead),
		Actions: []Action{{Action: ActionViewDetails, Title: "Open"}},
	}
	d := Render(p)
	if len(d.Actions) != 1 || d.Actions[0].Action != ActionViewDetails {
		t.Errorf("explicit actions replaced by type derivation: %v", d.Actions)
	}
}
