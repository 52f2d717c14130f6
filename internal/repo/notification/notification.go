// Code generated by ent, DO NOT EDIT.

package notification

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the notification type in the database.
	Label = "notification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldLink holds the string denoting the link field in the database.
	FieldLink = "link"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldRead holds the string denoting the read field in the database.
	FieldRead = "read"
	// FieldReadAt holds the string denoting the read_at field in the database.
	FieldReadAt = "read_at"
	// FieldDeliveredEmail holds the string denoting the delivered_email field in the database.
	FieldDeliveredEmail = "delivered_email"
	// FieldDeliveredSms holds the string denoting the delivered_sms field in the database.
	FieldDeliveredSms = "delivered_sms"
	// FieldDeliveredBrowser holds the string denoting the delivered_browser field in the database.
	FieldDeliveredBrowser = "delivered_browser"
	// FieldDeliveredPush holds the string denoting the delivered_push field in the database.
	FieldDeliveredPush = "delivered_push"
	// FieldDeliveredSound holds the string denoting the delivered_sound field in the database.
	FieldDeliveredSound = "delivered_sound"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the notification in the database.
	Table = "notifications"
)

// Columns holds all SQL columns for notification fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUserID,
	FieldType,
	FieldPriority,
	FieldTitle,
	FieldBody,
	FieldLink,
	FieldEntityID,
	FieldData,
	FieldRead,
	FieldReadAt,
	FieldDeliveredEmail,
	FieldDeliveredSms,
	FieldDeliveredBrowser,
	FieldDeliveredPush,
	FieldDeliveredSound,
	FieldExpiresAt,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// LinkValidator is a validator for the "link" field. It is called by the builders before save.
	LinkValidator func(string) error
	// EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	EntityIDValidator func(string) error
	// DefaultRead holds the default value on creation for the "read" field.
	DefaultRead bool
	// DefaultDeliveredEmail holds the default value on creation for the "delivered_email" field.
	DefaultDeliveredEmail bool
	// DefaultDeliveredSms holds the default value on creation for the "delivered_sms" field.
	DefaultDeliveredSms bool
	// DefaultDeliveredBrowser holds the default value on creation for the "delivered_browser" field.
	DefaultDeliveredBrowser bool
	// DefaultDeliveredPush holds the default value on creation for the "delivered_push" field.
	DefaultDeliveredPush bool
	// DefaultDeliveredSound holds the default value on creation for the "delivered_sound" field.
	DefaultDeliveredSound bool
	// DefaultExpiresAt holds the default value on creation for the "expires_at" field.
	DefaultExpiresAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeLead          Type = "lead"
	TypeAppointment   Type = "appointment"
	TypeVehicle       Type = "vehicle"
	TypeCommunication Type = "communication"
	TypeSystem        Type = "system"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeLead, TypeAppointment, TypeVehicle, TypeCommunication, TypeSystem:
		return nil
	default:
		return fmt.Errorf("notification: invalid enum value for type field: %q", _type)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityNormal is the default value of the Priority enum.
const DefaultPriority = PriorityNormal

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("notification: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Notification queries.
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

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByLink orders the results by the link field.
func ByLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLink, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByRead orders the results by the read field.
func ByRead(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRead, opts...).ToFunc()
}

// ByReadAt orders the results by the read_at field.
func ByReadAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadAt, opts...).ToFunc()
}

// ByDeliveredEmail orders the results by the delivered_email field.
func ByDeliveredEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredEmail, opts...).ToFunc()
}

// ByDeliveredSms orders the results by the delivered_sms field.
func ByDeliveredSms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredSms, opts...).ToFunc()
}

// ByDeliveredBrowser orders the results by the delivered_browser field.
func ByDeliveredBrowser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredBrowser, opts...).ToFunc()
}

// ByDeliveredPush orders the results by the delivered_push field.
func ByDeliveredPush(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredPush, opts...).ToFunc()
}

// ByDeliveredSound orders the results by the delivered_sound field.
func ByDeliveredSound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredSound, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
