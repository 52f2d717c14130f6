// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/notificationpref"
	"github.com/google/uuid"
)

// NotificationPref is the model entity for the NotificationPref schema.
type NotificationPref struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// channel -> type -> enabled; missing cells count as enabled
	Matrix notify.Matrix `json:"matrix,omitempty"`
	// SoundVolume holds the value of the "sound_volume" field.
	SoundVolume float64 `json:"sound_volume,omitempty"`
	// Keep notifications on screen until acted on
	RequireInteraction bool `json:"require_interaction,omitempty"`
	// Suppress browser notifications while the tab is visible
	OnlyWhenHidden bool `json:"only_when_hidden,omitempty"`
	// Per-type custom sound asset key
	Sounds       map[string]string `json:"sounds,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationPref) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationpref.FieldMatrix, notificationpref.FieldSounds:
			values[i] = new([]byte)
		case notificationpref.FieldRequireInteraction, notificationpref.FieldOnlyWhenHidden:
			values[i] = new(sql.NullBool)
		case notificationpref.FieldSoundVolume:
			values[i] = new(sql.NullFloat64)
		case notificationpref.FieldCreatedAt, notificationpref.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case notificationpref.FieldID, notificationpref.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationPref fields.
func (_m *NotificationPref) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationpref.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case notificationpref.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationpref.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case notificationpref.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case notificationpref.FieldMatrix:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field matrix", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Matrix); err != nil {
					return fmt.Errorf("unmarshal field matrix: %w", err)
				}
			}
		case notificationpref.FieldSoundVolume:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sound_volume", values[i])
			} else if value.Valid {
				_m.SoundVolume = value.Float64
			}
		case notificationpref.FieldRequireInteraction:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field require_interaction", values[i])
			} else if value.Valid {
				_m.RequireInteraction = value.Bool
			}
		case notificationpref.FieldOnlyWhenHidden:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field only_when_hidden", values[i])
			} else if value.Valid {
				_m.OnlyWhenHidden = value.Bool
			}
		case notificationpref.FieldSounds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sounds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sounds); err != nil {
					return fmt.Errorf("unmarshal field sounds: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationPref.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationPref) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationPref.
// Note that you need to call NotificationPref.Unwrap() before calling this method if this NotificationPref
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationPref) Update() *NotificationPrefUpdateOne {
	return NewNotificationPrefClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationPref entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationPref) Unwrap() *NotificationPref {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: NotificationPref is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationPref) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationPref(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("matrix=")
	builder.WriteString(fmt.Sprintf("%v", _m.Matrix))
	builder.WriteString(", ")
	builder.WriteString("sound_volume=")
	builder.WriteString(fmt.Sprintf("%v", _m.SoundVolume))
	builder.WriteString(", ")
	builder.WriteString("require_interaction=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireInteraction))
	builder.WriteString(", ")
	builder.WriteString("only_when_hidden=")
	builder.WriteString(fmt.Sprintf("%v", _m.OnlyWhenHidden))
	builder.WriteString(", ")
	builder.WriteString("sounds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sounds))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationPrefs is a parsable slice of NotificationPref.
type NotificationPrefs []*NotificationPref
