package notify

// Type classifies a notification by the domain entity that produced it.
// The set is closed; anything else is rejected at creation time.
type Type string

const (
	TypeLead          Type = "lead"
	TypeAppointment   Type = "appointment"
	TypeVehicle       Type = "vehicle"
	TypeCommunication Type = "communication"
	TypeSystem        Type = "system"
)

func (t Type) Valid() bool {
	switch t {
	case TypeLead, TypeAppointment, TypeVehicle, TypeCommunication, TypeSystem:
		return true
	}
	return false
}

// Types returns the closed set, in a stable order.
func Types() []Type {
	return []Type{TypeLead, TypeAppointment, TypeVehicle, TypeCommunication, TypeSystem}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Channel is a delivery path for a notification.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelSMS     Channel = "sms"
	ChannelBrowser Channel = "browser"
	ChannelPush    Channel = "push"
	ChannelSound   Channel = "sound"
)

func Channels() []Channel {
	return []Channel{ChannelEmail, ChannelSMS, ChannelBrowser, ChannelPush, ChannelSound}
}

// Matrix is the per-user channel × type preference grid. A missing channel
// or type cell means the user never touched it, which counts as enabled.
type Matrix map[Channel]map[Type]bool

// Allows reports whether the given channel/type pair is enabled.
func (m Matrix) Allows(ch Channel, t Type) bool {
	if m == nil {
		return true
	}
	row, ok := m[ch]
	if !ok {
		return true
	}
	enabled, ok := row[t]
	if !ok {
		return true
	}
	return enabled
}

// Set flips a single cell, allocating rows as needed.
func (m Matrix) Set(ch Channel, t Type, enabled bool) {
	row, ok := m[ch]
	if !ok {
		row = make(map[Type]bool)
		m[ch] = row
	}
	row[t] = enabled
}

// DefaultMatrix returns a fully enabled grid, materialized so that updates
// from the settings UI always find every cell present.
func DefaultMatrix() Matrix {
	m := make(Matrix, len(Channels()))
	for _, ch := range Channels() {
		row := make(map[Type]bool, len(Types()))
		for _, t := range Types() {
			row[t] = true
		}
		m[ch] = row
	}
	return m
}
