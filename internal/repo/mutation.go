// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/notification"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/notificationpref"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/predicate"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/pushsubscription"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeNotification     = "Notification"
	TypeNotificationPref = "NotificationPref"
	TypePushSubscription = "PushSubscription"
)

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	user_id           *uuid.UUID
	_type             *notification.Type
	priority          *notification.Priority
	title             *string
	body              *string
	link              *string
	entity_id         *string
	data              *map[string]interface{}
	read              *bool
	read_at           *time.Time
	delivered_email   *bool
	delivered_sms     *bool
	delivered_browser *bool
	delivered_push    *bool
	delivered_sound   *bool
	expires_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Notification, error)
	predicates        []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id uuid.UUID) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationMutation) ResetUserID() {
	m.user_id = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(n notification.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r notification.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v notification.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetPriority sets the "priority" field.
func (m *NotificationMutation) SetPriority(n notification.Priority) {
	m.priority = &n
}

// Priority returns the value of the "priority" field in the mutation.
func (m *NotificationMutation) Priority() (r notification.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldPriority(ctx context.Context) (v notification.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *NotificationMutation) ResetPriority() {
	m.priority = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *NotificationMutation) ClearBody() {
	m.body = nil
	m.clearedFields[notification.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *NotificationMutation) BodyCleared() bool {
	_, ok := m.clearedFields[notification.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, notification.FieldBody)
}

// SetLink sets the "link" field.
func (m *NotificationMutation) SetLink(s string) {
	m.link = &s
}

// Link returns the value of the "link" field in the mutation.
func (m *NotificationMutation) Link() (r string, exists bool) {
	v := m.link
	if v == nil {
		return
	}
	return *v, true
}

// OldLink returns the old "link" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldLink(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLink: %w", err)
	}
	return oldValue.Link, nil
}

// ClearLink clears the value of the "link" field.
func (m *NotificationMutation) ClearLink() {
	m.link = nil
	m.clearedFields[notification.FieldLink] = struct{}{}
}

// LinkCleared returns if the "link" field was cleared in this mutation.
func (m *NotificationMutation) LinkCleared() bool {
	_, ok := m.clearedFields[notification.FieldLink]
	return ok
}

// ResetLink resets all changes to the "link" field.
func (m *NotificationMutation) ResetLink() {
	m.link = nil
	delete(m.clearedFields, notification.FieldLink)
}

// SetEntityID sets the "entity_id" field.
func (m *NotificationMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *NotificationMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *NotificationMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[notification.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *NotificationMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *NotificationMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, notification.FieldEntityID)
}

// SetData sets the "data" field.
func (m *NotificationMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *NotificationMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *NotificationMutation) ClearData() {
	m.data = nil
	m.clearedFields[notification.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *NotificationMutation) DataCleared() bool {
	_, ok := m.clearedFields[notification.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *NotificationMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, notification.FieldData)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// SetDeliveredEmail sets the "delivered_email" field.
func (m *NotificationMutation) SetDeliveredEmail(b bool) {
	m.delivered_email = &b
}

// DeliveredEmail returns the value of the "delivered_email" field in the mutation.
func (m *NotificationMutation) DeliveredEmail() (r bool, exists bool) {
	v := m.delivered_email
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredEmail returns the old "delivered_email" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldDeliveredEmail(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredEmail: %w", err)
	}
	return oldValue.DeliveredEmail, nil
}

// ResetDeliveredEmail resets all changes to the "delivered_email" field.
func (m *NotificationMutation) ResetDeliveredEmail() {
	m.delivered_email = nil
}

// SetDeliveredSms sets the "delivered_sms" field.
func (m *NotificationMutation) SetDeliveredSms(b bool) {
	m.delivered_sms = &b
}

// DeliveredSms returns the value of the "delivered_sms" field in the mutation.
func (m *NotificationMutation) DeliveredSms() (r bool, exists bool) {
	v := m.delivered_sms
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredSms returns the old "delivered_sms" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldDeliveredSms(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredSms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredSms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredSms: %w", err)
	}
	return oldValue.DeliveredSms, nil
}

// ResetDeliveredSms resets all changes to the "delivered_sms" field.
func (m *NotificationMutation) ResetDeliveredSms() {
	m.delivered_sms = nil
}

// SetDeliveredBrowser sets the "delivered_browser" field.
func (m *NotificationMutation) SetDeliveredBrowser(b bool) {
	m.delivered_browser = &b
}

// DeliveredBrowser returns the value of the "delivered_browser" field in the mutation.
func (m *NotificationMutation) DeliveredBrowser() (r bool, exists bool) {
	v := m.delivered_browser
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredBrowser returns the old "delivered_browser" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldDeliveredBrowser(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredBrowser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredBrowser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredBrowser: %w", err)
	}
	return oldValue.DeliveredBrowser, nil
}

// ResetDeliveredBrowser resets all changes to the "delivered_browser" field.
func (m *NotificationMutation) ResetDeliveredBrowser() {
	m.delivered_browser = nil
}

// SetDeliveredPush sets the "delivered_push" field.
func (m *NotificationMutation) SetDeliveredPush(b bool) {
	m.delivered_push = &b
}

// DeliveredPush returns the value of the "delivered_push" field in the mutation.
func (m *NotificationMutation) DeliveredPush() (r bool, exists bool) {
	v := m.delivered_push
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredPush returns the old "delivered_push" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldDeliveredPush(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredPush is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredPush requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredPush: %w", err)
	}
	return oldValue.DeliveredPush, nil
}

// ResetDeliveredPush resets all changes to the "delivered_push" field.
func (m *NotificationMutation) ResetDeliveredPush() {
	m.delivered_push = nil
}

// SetDeliveredSound sets the "delivered_sound" field.
func (m *NotificationMutation) SetDeliveredSound(b bool) {
	m.delivered_sound = &b
}

// DeliveredSound returns the value of the "delivered_sound" field in the mutation.
func (m *NotificationMutation) DeliveredSound() (r bool, exists bool) {
	v := m.delivered_sound
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredSound returns the old "delivered_sound" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldDeliveredSound(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredSound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredSound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredSound: %w", err)
	}
	return oldValue.DeliveredSound, nil
}

// ResetDeliveredSound resets all changes to the "delivered_sound" field.
func (m *NotificationMutation) ResetDeliveredSound() {
	m.delivered_sound = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *NotificationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *NotificationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *NotificationMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.priority != nil {
		fields = append(fields, notification.FieldPriority)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.link != nil {
		fields = append(fields, notification.FieldLink)
	}
	if m.entity_id != nil {
		fields = append(fields, notification.FieldEntityID)
	}
	if m.data != nil {
		fields = append(fields, notification.FieldData)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	if m.delivered_email != nil {
		fields = append(fields, notification.FieldDeliveredEmail)
	}
	if m.delivered_sms != nil {
		fields = append(fields, notification.FieldDeliveredSms)
	}
	if m.delivered_browser != nil {
		fields = append(fields, notification.FieldDeliveredBrowser)
	}
	if m.delivered_push != nil {
		fields = append(fields, notification.FieldDeliveredPush)
	}
	if m.delivered_sound != nil {
		fields = append(fields, notification.FieldDeliveredSound)
	}
	if m.expires_at != nil {
		fields = append(fields, notification.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldUserID:
		return m.UserID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldPriority:
		return m.Priority()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldLink:
		return m.Link()
	case notification.FieldEntityID:
		return m.EntityID()
	case notification.FieldData:
		return m.Data()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldReadAt:
		return m.ReadAt()
	case notification.FieldDeliveredEmail:
		return m.DeliveredEmail()
	case notification.FieldDeliveredSms:
		return m.DeliveredSms()
	case notification.FieldDeliveredBrowser:
		return m.DeliveredBrowser()
	case notification.FieldDeliveredPush:
		return m.DeliveredPush()
	case notification.FieldDeliveredSound:
		return m.DeliveredSound()
	case notification.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldUserID:
		return m.OldUserID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldPriority:
		return m.OldPriority(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldLink:
		return m.OldLink(ctx)
	case notification.FieldEntityID:
		return m.OldEntityID(ctx)
	case notification.FieldData:
		return m.OldData(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	case notification.FieldDeliveredEmail:
		return m.OldDeliveredEmail(ctx)
	case notification.FieldDeliveredSms:
		return m.OldDeliveredSms(ctx)
	case notification.FieldDeliveredBrowser:
		return m.OldDeliveredBrowser(ctx)
	case notification.FieldDeliveredPush:
		return m.OldDeliveredPush(ctx)
	case notification.FieldDeliveredSound:
		return m.OldDeliveredSound(ctx)
	case notification.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(notification.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldPriority:
		v, ok := value.(notification.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLink(v)
		return nil
	case notification.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case notification.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	case notification.FieldDeliveredEmail:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredEmail(v)
		return nil
	case notification.FieldDeliveredSms:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredSms(v)
		return nil
	case notification.FieldDeliveredBrowser:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredBrowser(v)
		return nil
	case notification.FieldDeliveredPush:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredPush(v)
		return nil
	case notification.FieldDeliveredSound:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredSound(v)
		return nil
	case notification.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldBody) {
		fields = append(fields, notification.FieldBody)
	}
	if m.FieldCleared(notification.FieldLink) {
		fields = append(fields, notification.FieldLink)
	}
	if m.FieldCleared(notification.FieldEntityID) {
		fields = append(fields, notification.FieldEntityID)
	}
	if m.FieldCleared(notification.FieldData) {
		fields = append(fields, notification.FieldData)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldBody:
		m.ClearBody()
		return nil
	case notification.FieldLink:
		m.ClearLink()
		return nil
	case notification.FieldEntityID:
		m.ClearEntityID()
		return nil
	case notification.FieldData:
		m.ClearData()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldUserID:
		m.ResetUserID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldPriority:
		m.ResetPriority()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldLink:
		m.ResetLink()
		return nil
	case notification.FieldEntityID:
		m.ResetEntityID()
		return nil
	case notification.FieldData:
		m.ResetData()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	case notification.FieldDeliveredEmail:
		m.ResetDeliveredEmail()
		return nil
	case notification.FieldDeliveredSms:
		m.ResetDeliveredSms()
		return nil
	case notification.FieldDeliveredBrowser:
		m.ResetDeliveredBrowser()
		return nil
	case notification.FieldDeliveredPush:
		m.ResetDeliveredPush()
		return nil
	case notification.FieldDeliveredSound:
		m.ResetDeliveredSound()
		return nil
	case notification.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// NotificationPrefMutation represents an operation that mutates the NotificationPref nodes in the graph.
type NotificationPrefMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	user_id             *uuid.UUID
	matrix              *notify.Matrix
	sound_volume        *float64
	addsound_volume     *float64
	require_interaction *bool
	only_when_hidden    *bool
	sounds              *map[string]string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*NotificationPref, error)
	predicates          []predicate.NotificationPref
}

var _ ent.Mutation = (*NotificationPrefMutation)(nil)

// notificationprefOption allows management of the mutation configuration using functional options.
type notificationprefOption func(*NotificationPrefMutation)

// newNotificationPrefMutation creates new mutation for the NotificationPref entity.
func newNotificationPrefMutation(c config, op Op, opts ...notificationprefOption) *NotificationPrefMutation {
	m := &NotificationPrefMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationPref,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationPrefID sets the ID field of the mutation.
func withNotificationPrefID(id uuid.UUID) notificationprefOption {
	return func(m *NotificationPrefMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationPref
		)
		m.oldValue = func(ctx context.Context) (*NotificationPref, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationPref.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationPref sets the old NotificationPref of the mutation.
func withNotificationPref(node *NotificationPref) notificationprefOption {
	return func(m *NotificationPrefMutation) {
		m.oldValue = func(context.Context) (*NotificationPref, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationPrefMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationPrefMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationPref entities.
func (m *NotificationPrefMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationPrefMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationPrefMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationPref.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationPrefMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationPrefMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationPrefMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationPrefMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationPrefMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationPrefMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationPrefMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationPrefMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationPrefMutation) ResetUserID() {
	m.user_id = nil
}

// SetMatrix sets the "matrix" field.
func (m *NotificationPrefMutation) SetMatrix(n notify.Matrix) {
	m.matrix = &n
}

// Matrix returns the value of the "matrix" field in the mutation.
func (m *NotificationPrefMutation) Matrix() (r notify.Matrix, exists bool) {
	v := m.matrix
	if v == nil {
		return
	}
	return *v, true
}

// OldMatrix returns the old "matrix" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldMatrix(ctx context.Context) (v notify.Matrix, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatrix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatrix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatrix: %w", err)
	}
	return oldValue.Matrix, nil
}

// ResetMatrix resets all changes to the "matrix" field.
func (m *NotificationPrefMutation) ResetMatrix() {
	m.matrix = nil
}

// SetSoundVolume sets the "sound_volume" field.
func (m *NotificationPrefMutation) SetSoundVolume(f float64) {
	m.sound_volume = &f
	m.addsound_volume = nil
}

// SoundVolume returns the value of the "sound_volume" field in the mutation.
func (m *NotificationPrefMutation) SoundVolume() (r float64, exists bool) {
	v := m.sound_volume
	if v == nil {
		return
	}
	return *v, true
}

// OldSoundVolume returns the old "sound_volume" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldSoundVolume(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoundVolume is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoundVolume requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoundVolume: %w", err)
	}
	return oldValue.SoundVolume, nil
}

// AddSoundVolume adds f to the "sound_volume" field.
func (m *NotificationPrefMutation) AddSoundVolume(f float64) {
	if m.addsound_volume != nil {
		*m.addsound_volume += f
	} else {
		m.addsound_volume = &f
	}
}

// AddedSoundVolume returns the value that was added to the "sound_volume" field in this mutation.
func (m *NotificationPrefMutation) AddedSoundVolume() (r float64, exists bool) {
	v := m.addsound_volume
	if v == nil {
		return
	}
	return *v, true
}

// ResetSoundVolume resets all changes to the "sound_volume" field.
func (m *NotificationPrefMutation) ResetSoundVolume() {
	m.sound_volume = nil
	m.addsound_volume = nil
}

// SetRequireInteraction sets the "require_interaction" field.
func (m *NotificationPrefMutation) SetRequireInteraction(b bool) {
	m.require_interaction = &b
}

// RequireInteraction returns the value of the "require_interaction" field in the mutation.
func (m *NotificationPrefMutation) RequireInteraction() (r bool, exists bool) {
	v := m.require_interaction
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireInteraction returns the old "require_interaction" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldRequireInteraction(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireInteraction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireInteraction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireInteraction: %w", err)
	}
	return oldValue.RequireInteraction, nil
}

// ResetRequireInteraction resets all changes to the "require_interaction" field.
func (m *NotificationPrefMutation) ResetRequireInteraction() {
	m.require_interaction = nil
}

// SetOnlyWhenHidden sets the "only_when_hidden" field.
func (m *NotificationPrefMutation) SetOnlyWhenHidden(b bool) {
	m.only_when_hidden = &b
}

// OnlyWhenHidden returns the value of the "only_when_hidden" field in the mutation.
func (m *NotificationPrefMutation) OnlyWhenHidden() (r bool, exists bool) {
	v := m.only_when_hidden
	if v == nil {
		return
	}
	return *v, true
}

// OldOnlyWhenHidden returns the old "only_when_hidden" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldOnlyWhenHidden(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnlyWhenHidden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnlyWhenHidden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnlyWhenHidden: %w", err)
	}
	return oldValue.OnlyWhenHidden, nil
}

// ResetOnlyWhenHidden resets all changes to the "only_when_hidden" field.
func (m *NotificationPrefMutation) ResetOnlyWhenHidden() {
	m.only_when_hidden = nil
}

// SetSounds sets the "sounds" field.
func (m *NotificationPrefMutation) SetSounds(value map[string]string) {
	m.sounds = &value
}

// Sounds returns the value of the "sounds" field in the mutation.
func (m *NotificationPrefMutation) Sounds() (r map[string]string, exists bool) {
	v := m.sounds
	if v == nil {
		return
	}
	return *v, true
}

// OldSounds returns the old "sounds" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldSounds(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSounds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSounds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSounds: %w", err)
	}
	return oldValue.Sounds, nil
}

// ClearSounds clears the value of the "sounds" field.
func (m *NotificationPrefMutation) ClearSounds() {
	m.sounds = nil
	m.clearedFields[notificationpref.FieldSounds] = struct{}{}
}

// SoundsCleared returns if the "sounds" field was cleared in this mutation.
func (m *NotificationPrefMutation) SoundsCleared() bool {
	_, ok := m.clearedFields[notificationpref.FieldSounds]
	return ok
}

// ResetSounds resets all changes to the "sounds" field.
func (m *NotificationPrefMutation) ResetSounds() {
	m.sounds = nil
	delete(m.clearedFields, notificationpref.FieldSounds)
}

// Where appends a list predicates to the NotificationPrefMutation builder.
func (m *NotificationPrefMutation) Where(ps ...predicate.NotificationPref) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationPrefMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationPrefMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationPref, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationPrefMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationPrefMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationPref).
func (m *NotificationPrefMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationPrefMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, notificationpref.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notificationpref.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, notificationpref.FieldUserID)
	}
	if m.matrix != nil {
		fields = append(fields, notificationpref.FieldMatrix)
	}
	if m.sound_volume != nil {
		fields = append(fields, notificationpref.FieldSoundVolume)
	}
	if m.require_interaction != nil {
		fields = append(fields, notificationpref.FieldRequireInteraction)
	}
	if m.only_when_hidden != nil {
		fields = append(fields, notificationpref.FieldOnlyWhenHidden)
	}
	if m.sounds != nil {
		fields = append(fields, notificationpref.FieldSounds)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationPrefMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationpref.FieldCreatedAt:
		return m.CreatedAt()
	case notificationpref.FieldUpdatedAt:
		return m.UpdatedAt()
	case notificationpref.FieldUserID:
		return m.UserID()
	case notificationpref.FieldMatrix:
		return m.Matrix()
	case notificationpref.FieldSoundVolume:
		return m.SoundVolume()
	case notificationpref.FieldRequireInteraction:
		return m.RequireInteraction()
	case notificationpref.FieldOnlyWhenHidden:
		return m.OnlyWhenHidden()
	case notificationpref.FieldSounds:
		return m.Sounds()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationPrefMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationpref.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notificationpref.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case notificationpref.FieldUserID:
		return m.OldUserID(ctx)
	case notificationpref.FieldMatrix:
		return m.OldMatrix(ctx)
	case notificationpref.FieldSoundVolume:
		return m.OldSoundVolume(ctx)
	case notificationpref.FieldRequireInteraction:
		return m.OldRequireInteraction(ctx)
	case notificationpref.FieldOnlyWhenHidden:
		return m.OldOnlyWhenHidden(ctx)
	case notificationpref.FieldSounds:
		return m.OldSounds(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationPref field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPrefMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationpref.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notificationpref.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case notificationpref.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notificationpref.FieldMatrix:
		v, ok := value.(notify.Matrix)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatrix(v)
		return nil
	case notificationpref.FieldSoundVolume:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoundVolume(v)
		return nil
	case notificationpref.FieldRequireInteraction:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireInteraction(v)
		return nil
	case notificationpref.FieldOnlyWhenHidden:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnlyWhenHidden(v)
		return nil
	case notificationpref.FieldSounds:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSounds(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationPref field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationPrefMutation) AddedFields() []string {
	var fields []string
	if m.addsound_volume != nil {
		fields = append(fields, notificationpref.FieldSoundVolume)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationPrefMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case notificationpref.FieldSoundVolume:
		return m.AddedSoundVolume()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPrefMutation) AddField(name string, value ent.Value) error {
	switch name {
	case notificationpref.FieldSoundVolume:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSoundVolume(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationPref numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationPrefMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notificationpref.FieldSounds) {
		fields = append(fields, notificationpref.FieldSounds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationPrefMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationPrefMutation) ClearField(name string) error {
	switch name {
	case notificationpref.FieldSounds:
		m.ClearSounds()
		return nil
	}
	return fmt.Errorf("unknown NotificationPref nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationPrefMutation) ResetField(name string) error {
	switch name {
	case notificationpref.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notificationpref.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case notificationpref.FieldUserID:
		m.ResetUserID()
		return nil
	case notificationpref.FieldMatrix:
		m.ResetMatrix()
		return nil
	case notificationpref.FieldSoundVolume:
		m.ResetSoundVolume()
		return nil
	case notificationpref.FieldRequireInteraction:
		m.ResetRequireInteraction()
		return nil
	case notificationpref.FieldOnlyWhenHidden:
		m.ResetOnlyWhenHidden()
		return nil
	case notificationpref.FieldSounds:
		m.ResetSounds()
		return nil
	}
	return fmt.Errorf("unknown NotificationPref field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationPrefMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationPrefMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationPrefMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationPrefMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationPrefMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationPrefMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationPrefMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NotificationPref unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationPrefMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NotificationPref edge %s", name)
}

// PushSubscriptionMutation represents an operation that mutates the PushSubscription nodes in the graph.
type PushSubscriptionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	user_id       *uuid.UUID
	endpoint      *string
	p256dh        *string
	auth          *string
	device_label  *string
	expires_at    *time.Time
	last_used_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PushSubscription, error)
	predicates    []predicate.PushSubscription
}

var _ ent.Mutation = (*PushSubscriptionMutation)(nil)

// pushsubscriptionOption allows management of the mutation configuration using functional options.
type pushsubscriptionOption func(*PushSubscriptionMutation)

// newPushSubscriptionMutation creates new mutation for the PushSubscription entity.
func newPushSubscriptionMutation(c config, op Op, opts ...pushsubscriptionOption) *PushSubscriptionMutation {
	m := &PushSubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypePushSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPushSubscriptionID sets the ID field of the mutation.
func withPushSubscriptionID(id uuid.UUID) pushsubscriptionOption {
	return func(m *PushSubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *PushSubscription
		)
		m.oldValue = func(ctx context.Context) (*PushSubscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PushSubscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPushSubscription sets the old PushSubscription of the mutation.
func withPushSubscription(node *PushSubscription) pushsubscriptionOption {
	return func(m *PushSubscriptionMutation) {
		m.oldValue = func(context.Context) (*PushSubscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PushSubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PushSubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PushSubscription entities.
func (m *PushSubscriptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PushSubscriptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PushSubscriptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PushSubscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PushSubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PushSubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PushSubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *PushSubscriptionMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PushSubscriptionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PushSubscriptionMutation) ResetUserID() {
	m.user_id = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *PushSubscriptionMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *PushSubscriptionMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *PushSubscriptionMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetP256dh sets the "p256dh" field.
func (m *PushSubscriptionMutation) SetP256dh(s string) {
	m.p256dh = &s
}

// P256dh returns the value of the "p256dh" field in the mutation.
func (m *PushSubscriptionMutation) P256dh() (r string, exists bool) {
	v := m.p256dh
	if v == nil {
		return
	}
	return *v, true
}

// OldP256dh returns the old "p256dh" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldP256dh(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldP256dh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldP256dh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldP256dh: %w", err)
	}
	return oldValue.P256dh, nil
}

// ResetP256dh resets all changes to the "p256dh" field.
func (m *PushSubscriptionMutation) ResetP256dh() {
	m.p256dh = nil
}

// SetAuth sets the "auth" field.
func (m *PushSubscriptionMutation) SetAuth(s string) {
	m.auth = &s
}

// Auth returns the value of the "auth" field in the mutation.
func (m *PushSubscriptionMutation) Auth() (r string, exists bool) {
	v := m.auth
	if v == nil {
		return
	}
	return *v, true
}

// OldAuth returns the old "auth" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldAuth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuth: %w", err)
	}
	return oldValue.Auth, nil
}

// ResetAuth resets all changes to the "auth" field.
func (m *PushSubscriptionMutation) ResetAuth() {
	m.auth = nil
}

// SetDeviceLabel sets the "device_label" field.
func (m *PushSubscriptionMutation) SetDeviceLabel(s string) {
	m.device_label = &s
}

// DeviceLabel returns the value of the "device_label" field in the mutation.
func (m *PushSubscriptionMutation) DeviceLabel() (r string, exists bool) {
	v := m.device_label
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceLabel returns the old "device_label" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldDeviceLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceLabel: %w", err)
	}
	return oldValue.DeviceLabel, nil
}

// ClearDeviceLabel clears the value of the "device_label" field.
func (m *PushSubscriptionMutation) ClearDeviceLabel() {
	m.device_label = nil
	m.clearedFields[pushsubscription.FieldDeviceLabel] = struct{}{}
}

// DeviceLabelCleared returns if the "device_label" field was cleared in this mutation.
func (m *PushSubscriptionMutation) DeviceLabelCleared() bool {
	_, ok := m.clearedFields[pushsubscription.FieldDeviceLabel]
	return ok
}

// ResetDeviceLabel resets all changes to the "device_label" field.
func (m *PushSubscriptionMutation) ResetDeviceLabel() {
	m.device_label = nil
	delete(m.clearedFields, pushsubscription.FieldDeviceLabel)
}

// SetExpiresAt sets the "expires_at" field.
func (m *PushSubscriptionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *PushSubscriptionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *PushSubscriptionMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[pushsubscription.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *PushSubscriptionMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[pushsubscription.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *PushSubscriptionMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, pushsubscription.FieldExpiresAt)
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *PushSubscriptionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *PushSubscriptionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *PushSubscriptionMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[pushsubscription.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *PushSubscriptionMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[pushsubscription.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *PushSubscriptionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, pushsubscription.FieldLastUsedAt)
}

// Where appends a list predicates to the PushSubscriptionMutation builder.
func (m *PushSubscriptionMutation) Where(ps ...predicate.PushSubscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PushSubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PushSubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PushSubscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PushSubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PushSubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PushSubscription).
func (m *PushSubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PushSubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, pushsubscription.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, pushsubscription.FieldUserID)
	}
	if m.endpoint != nil {
		fields = append(fields, pushsubscription.FieldEndpoint)
	}
	if m.p256dh != nil {
		fields = append(fields, pushsubscription.FieldP256dh)
	}
	if m.auth != nil {
		fields = append(fields, pushsubscription.FieldAuth)
	}
	if m.device_label != nil {
		fields = append(fields, pushsubscription.FieldDeviceLabel)
	}
	if m.expires_at != nil {
		fields = append(fields, pushsubscription.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, pushsubscription.FieldLastUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PushSubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pushsubscription.FieldCreatedAt:
		return m.CreatedAt()
	case pushsubscription.FieldUserID:
		return m.UserID()
	case pushsubscription.FieldEndpoint:
		return m.Endpoint()
	case pushsubscription.FieldP256dh:
		return m.P256dh()
	case pushsubscription.FieldAuth:
		return m.Auth()
	case pushsubscription.FieldDeviceLabel:
		return m.DeviceLabel()
	case pushsubscription.FieldExpiresAt:
		return m.ExpiresAt()
	case pushsubscription.FieldLastUsedAt:
		return m.LastUsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PushSubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pushsubscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pushsubscription.FieldUserID:
		return m.OldUserID(ctx)
	case pushsubscription.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case pushsubscription.FieldP256dh:
		return m.OldP256dh(ctx)
	case pushsubscription.FieldAuth:
		return m.OldAuth(ctx)
	case pushsubscription.FieldDeviceLabel:
		return m.OldDeviceLabel(ctx)
	case pushsubscription.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case pushsubscription.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PushSubscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushSubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pushsubscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pushsubscription.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case pushsubscription.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case pushsubscription.FieldP256dh:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetP256dh(v)
		return nil
	case pushsubscription.FieldAuth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuth(v)
		return nil
	case pushsubscription.FieldDeviceLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceLabel(v)
		return nil
	case pushsubscription.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case pushsubscription.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PushSubscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PushSubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PushSubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushSubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PushSubscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PushSubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pushsubscription.FieldDeviceLabel) {
		fields = append(fields, pushsubscription.FieldDeviceLabel)
	}
	if m.FieldCleared(pushsubscription.FieldExpiresAt) {
		fields = append(fields, pushsubscription.FieldExpiresAt)
	}
	if m.FieldCleared(pushsubscription.FieldLastUsedAt) {
		fields = append(fields, pushsubscription.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PushSubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PushSubscriptionMutation) ClearField(name string) error {
	switch name {
	case pushsubscription.FieldDeviceLabel:
		m.ClearDeviceLabel()
		return nil
	case pushsubscription.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case pushsubscription.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PushSubscriptionMutation) ResetField(name string) error {
	switch name {
	case pushsubscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pushsubscription.FieldUserID:
		m.ResetUserID()
		return nil
	case pushsubscription.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case pushsubscription.FieldP256dh:
		m.ResetP256dh()
		return nil
	case pushsubscription.FieldAuth:
		m.ResetAuth()
		return nil
	case pushsubscription.FieldDeviceLabel:
		m.ResetDeviceLabel()
		return nil
	case pushsubscription.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case pushsubscription.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PushSubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PushSubscriptionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PushSubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PushSubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PushSubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PushSubscriptionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PushSubscriptionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PushSubscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PushSubscriptionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PushSubscription edge %s", name)
}
