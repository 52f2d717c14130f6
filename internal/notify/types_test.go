package notify

import "testing"

func TestMatrixAllows(t *testing.T) {
	m := Matrix{
		ChannelEmail: {TypeLead: false, TypeSystem: true},
	}

	tests := []struct {
		name string
		m    Matrix
		ch   Channel
		typ  Type
		want bool
	}{
		{"nil matrix allows everything", nil, ChannelPush, TypeLead, true},
		{"missing channel row allows", m, ChannelSMS, TypeLead, true},
		{"missing type cell allows", m, ChannelEmail, TypeVehicle, true},
		{"disabled cell blocks", m, ChannelEmail, TypeLead, false},
		{"enabled cell allows", m, ChannelEmail, TypeSystem, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Allows(tt.ch, tt.typ); got != tt.want {
				t.Errorf("Allows(%s, %s) = %v, want %v", tt.ch, tt.typ, got, tt.want)
			}
		})
	}
}

func TestMatrixSet(t *testing.T) {
	m := make(Matrix)

	m.Set(ChannelSound, TypeAppointment, false)
	if m.Allows(ChannelSound, TypeAppointment) {
		t.Error("cell still allowed after being disabled")
	}
	if !m.Allows(ChannelSound, TypeLead) {
		t.Error("untouched cell in the same row should stay allowed")
	}

	m.Set(ChannelSound, TypeAppointment, true)
	if !m.Allows(ChannelSound, TypeAppointment) {
		t.Error("cell still blocked after being re-enabled")
	}
}

func TestDefaultMatrixIsFullyMaterialized(t *testing.T) {
	m := DefaultMatrix()
	for _, ch := range Channels() {
		row, ok := m[ch]
		if !ok {
			t.Fatalf("channel %s missing from default matrix", ch)
		}
		for _, typ := range Types() {
			enabled, ok := row[typ]
			if !ok {
				t.Errorf("cell %s/%s missing from default matrix", ch, typ)
			}
			if !enabled {
				t.Errorf("cell %s/%s defaults to disabled", ch, typ)
			}
		}
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range Types() {
		if !typ.Valid() {
			t.Errorf("%s should be valid", typ)
		}
	}
	for _, typ := range []Type{"", "unknown", "Lead"} {
		if typ.Valid() {
			t.Errorf("%q should be invalid", typ)
		}
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	for _, p := range []Priority{"", "critical", "URGENT"} {
		if p.Valid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}
