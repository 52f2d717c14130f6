// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/pushsubscription"
	"github.com/google/uuid"
)

// PushSubscription is the model entity for the PushSubscription schema.
type PushSubscription struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Push service URL for this device
	Endpoint string `json:"endpoint,omitempty"`
	// Client ECDH public key
	P256dh string `json:"p256dh,omitempty"`
	// Client auth secret
	Auth string `json:"auth,omitempty"`
	// DeviceLabel holds the value of the "device_label" field.
	DeviceLabel *string `json:"device_label,omitempty"`
	// Expiry reported by the push service, if any
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Updated on every successful push send
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PushSubscription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pushsubscription.FieldEndpoint, pushsubscription.FieldP256dh, pushsubscription.FieldAuth, pushsubscription.FieldDeviceLabel:
			values[i] = new(sql.NullString)
		case pushsubscription.FieldCreatedAt, pushsubscription.FieldExpiresAt, pushsubscription.FieldLastUsedAt:
			values[i] = new(sql.NullTime)
		case pushsubscription.FieldID, pushsubscription.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PushSubscription fields.
func (_m *PushSubscription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pushsubscription.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pushsubscription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pushsubscription.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case pushsubscription.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case pushsubscription.FieldP256dh:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field p256dh", values[i])
			} else if value.Valid {
				_m.P256dh = value.String
			}
		case pushsubscription.FieldAuth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth", values[i])
			} else if value.Valid {
				_m.Auth = value.String
			}
		case pushsubscription.FieldDeviceLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_label", values[i])
			} else if value.Valid {
				_m.DeviceLabel = new(string)
				*_m.DeviceLabel = value.String
			}
		case pushsubscription.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case pushsubscription.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = new(time.Time)
				*_m.LastUsedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PushSubscription.
// This includes values selected through modifiers, order, etc.
func (_m *PushSubscription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PushSubscription.
// Note that you need to call PushSubscription.Unwrap() before calling this method if this PushSubscription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PushSubscription) Update() *PushSubscriptionUpdateOne {
	return NewPushSubscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PushSubscription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PushSubscription) Unwrap() *PushSubscription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PushSubscription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PushSubscription) String() string {
	var builder strings.Builder
	builder.WriteString("PushSubscription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("p256dh=")
	builder.WriteString(_m.P256dh)
	builder.WriteString(", ")
	builder.WriteString("auth=")
	builder.WriteString(_m.Auth)
	builder.WriteString(", ")
	if v := _m.DeviceLabel; v != nil {
		builder.WriteString("device_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastUsedAt; v != nil {
		builder.WriteString("last_used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PushSubscriptions is a parsable slice of PushSubscription.
type PushSubscriptions []*PushSubscription
