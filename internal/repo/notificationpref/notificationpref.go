// Code generated by ent, DO NOT EDIT.

package notificationpref

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the notificationpref type in the database.
	Label = "notification_pref"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMatrix holds the string denoting the matrix field in the database.
	FieldMatrix = "matrix"
	// FieldSoundVolume holds the string denoting the sound_volume field in the database.
	FieldSoundVolume = "sound_volume"
	// FieldRequireInteraction holds the string denoting the require_interaction field in the database.
	FieldRequireInteraction = "require_interaction"
	// FieldOnlyWhenHidden holds the string denoting the only_when_hidden field in the database.
	FieldOnlyWhenHidden = "only_when_hidden"
	// FieldSounds holds the string denoting the sounds field in the database.
	FieldSounds = "sounds"
	// Table holds the table name of the notificationpref in the database.
	Table = "notification_prefs"
)

// Columns holds all SQL columns for notificationpref fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldMatrix,
	FieldSoundVolume,
	FieldRequireInteraction,
	FieldOnlyWhenHidden,
	FieldSounds,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultSoundVolume holds the default value on creation for the "sound_volume" field.
	DefaultSoundVolume float64
	// SoundVolumeValidator is a validator for the "sound_volume" field. It is called by the builders before save.
	SoundVolumeValidator func(float64) error
	// DefaultRequireInteraction holds the default value on creation for the "require_interaction" field.
	DefaultRequireInteraction bool
	// DefaultOnlyWhenHidden holds the default value on creation for the "only_when_hidden" field.
	DefaultOnlyWhenHidden bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the NotificationPref queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySoundVolume orders the results by the sound_volume field.
func BySoundVolume(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoundVolume, opts...).ToFunc()
}

// ByRequireInteraction orders the results by the require_interaction field.
func ByRequireInteraction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireInteraction, opts...).ToFunc()
}

// ByOnlyWhenHidden orders the results by the only_when_hidden field.
func ByOnlyWhenHidden(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnlyWhenHidden, opts...).ToFunc()
}
