// Code generated by ent, DO NOT EDIT.

package pushsubscription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pushsubscription type in the database.
	Label = "push_subscription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEndpoint holds the string denoting the endpoint field in the database.
	FieldEndpoint = "endpoint"
	// FieldP256dh holds the string denoting the p256dh field in the database.
	FieldP256dh = "p256dh"
	// FieldAuth holds the string denoting the auth field in the database.
	FieldAuth = "auth"
	// FieldDeviceLabel holds the string denoting the device_label field in the database.
	FieldDeviceLabel = "device_label"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldLastUsedAt holds the string denoting the last_used_at field in the database.
	FieldLastUsedAt = "last_used_at"
	// Table holds the table name of the pushsubscription in the database.
	Table = "push_subscriptions"
)

// Columns holds all SQL columns for pushsubscription fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUserID,
	FieldEndpoint,
	FieldP256dh,
	FieldAuth,
	FieldDeviceLabel,
	FieldExpiresAt,
	FieldLastUsedAt,
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
	// EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	EndpointValidator func(string) error
	// P256dhValidator is a validator for the "p256dh" field. It is called by the builders before save.
	P256dhValidator func(string) error
	// AuthValidator is a validator for the "auth" field. It is called by the builders before save.
	AuthValidator func(string) error
	// DeviceLabelValidator is a validator for the "device_label" field. It is called by the builders before save.
	DeviceLabelValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PushSubscription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByEndpoint orders the results by the endpoint field.
func ByEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpoint, opts...).ToFunc()
}

// ByP256dh orders the results by the p256dh field.
func ByP256dh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldP256dh, opts...).ToFunc()
}

// ByAuth orders the results by the auth field.
func ByAuth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuth, opts...).ToFunc()
}

// ByDeviceLabel orders the results by the device_label field.
func ByDeviceLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceLabel, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByLastUsedAt orders the results by the last_used_at field.
func ByLastUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedAt, opts...).ToFunc()
}
