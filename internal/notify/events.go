package notify

// EventType labels a lifecycle broadcast sent to every open client context.
type EventType string

const (
	EventDisplayed EventType = "NOTIFICATION_DISPLAYED"
	EventClicked   EventType = "NOTIFICATION_CLICKED"
	EventClosed    EventType = "NOTIFICATION_CLOSED"
)

// Envelope is the wire format of a lifecycle broadcast.
type Envelope struct {
	Type         EventType `json:"type"`
	Notification any       `json:"notification"`
}

// DisplayedNotification is the envelope body for EventDisplayed.
type DisplayedNotification struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
	Type      string `json:"type,omitempty"`
}

// ClickedNotification is the envelope body for EventClicked.
type ClickedNotification struct {
	ID     string   `json:"id,omitempty"`
	Action ActionID `json:"action"`
}

// ClosedNotification is the envelope body for EventClosed.
type ClosedNotification struct {
	ID string `json:"id"`
}
