// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/notification"
	"github.com/google/uuid"
)

// NotificationCreate is the builder for creating a Notification entity.
type NotificationCreate struct {
	config
	mutation *NotificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationCreate) SetCreatedAt(v time.Time) *NotificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableCreatedAt(v *time.Time) *NotificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *NotificationCreate) SetUserID(v uuid.UUID) *NotificationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *NotificationCreate) SetType(v notification.Type) *NotificationCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *NotificationCreate) SetPriority(v notification.Priority) *NotificationCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *NotificationCreate) SetNillablePriority(v *notification.Priority) *NotificationCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *NotificationCreate) SetTitle(v string) *NotificationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *NotificationCreate) SetBody(v string) *NotificationCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableBody(v *string) *NotificationCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetLink sets the "link" field.
func (_c *NotificationCreate) SetLink(v string) *NotificationCreate {
	_c.mutation.SetLink(v)
	return _c
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableLink(v *string) *NotificationCreate {
	if v != nil {
		_c.SetLink(*v)
	}
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *NotificationCreate) SetEntityID(v string) *NotificationCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableEntityID(v *string) *NotificationCreate {
	if v != nil {
		_c.SetEntityID(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *NotificationCreate) SetData(v map[string]interface{}) *NotificationCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetRead sets the "read" field.
func (_c *NotificationCreate) SetRead(v bool) *NotificationCreate {
	_c.mutation.SetRead(v)
	return _c
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableRead(v *bool) *NotificationCreate {
	if v != nil {
		_c.SetRead(*v)
	}
	return _c
}

// SetReadAt sets the "read_at" field.
func (_c *NotificationCreate) SetReadAt(v time.Time) *NotificationCreate {
	_c.mutation.SetReadAt(v)
	return _c
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableReadAt(v *time.Time) *NotificationCreate {
	if v != nil {
		_c.SetReadAt(*v)
	}
	return _c
}

// SetDeliveredEmail sets the "delivered_email" field.
func (_c *NotificationCreate) SetDeliveredEmail(v bool) *NotificationCreate {
	_c.mutation.SetDeliveredEmail(v)
	return _c
}

// SetNillableDeliveredEmail sets the "delivered_email" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableDeliveredEmail(v *bool) *NotificationCreate {
	if v != nil {
		_c.SetDeliveredEmail(*v)
	}
	return _c
}

// SetDeliveredSms sets the "delivered_sms" field.
func (_c *NotificationCreate) SetDeliveredSms(v bool) *NotificationCreate {
	_c.mutation.SetDeliveredSms(v)
	return _c
}

// SetNillableDeliveredSms sets the "delivered_sms" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableDeliveredSms(v *bool) *NotificationCreate {
	if v != nil {
		_c.SetDeliveredSms(*v)
	}
	return _c
}

// SetDeliveredBrowser sets the "delivered_browser" field.
func (_c *NotificationCreate) SetDeliveredBrowser(v bool) *NotificationCreate {
	_c.mutation.SetDeliveredBrowser(v)
	return _c
}

// SetNillableDeliveredBrowser sets the "delivered_browser" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableDeliveredBrowser(v *bool) *NotificationCreate {
	if v != nil {
		_c.SetDeliveredBrowser(*v)
	}
	return _c
}

// SetDeliveredPush sets the "delivered_push" field.
func (_c *NotificationCreate) SetDeliveredPush(v bool) *NotificationCreate {
	_c.mutation.SetDeliveredPush(v)
	return _c
}

// SetNillableDeliveredPush sets the "delivered_push" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableDeliveredPush(v *bool) *NotificationCreate {
	if v != nil {
		_c.SetDeliveredPush(*v)
	}
	return _c
}

// SetDeliveredSound sets the "delivered_sound" field.
func (_c *NotificationCreate) SetDeliveredSound(v bool) *NotificationCreate {
	_c.mutation.SetDeliveredSound(v)
	return _c
}

// SetNillableDeliveredSound sets the "delivered_sound" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableDeliveredSound(v *bool) *NotificationCreate {
	if v != nil {
		_c.SetDeliveredSound(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *NotificationCreate) SetExpiresAt(v time.Time) *NotificationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableExpiresAt(v *time.Time) *NotificationCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationCreate) SetID(v uuid.UUID) *NotificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableID(v *uuid.UUID) *NotificationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the NotificationMutation object of the builder.
func (_c *NotificationCreate) Mutation() *NotificationMutation {
	return _c.mutation
}

// Save creates the Notification in the database.
func (_c *NotificationCreate) Save(ctx context.Context) (*Notification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationCreate) SaveX(ctx context.Context) *Notification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := notification.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Read(); !ok {
		v := notification.DefaultRead
		_c.mutation.SetRead(v)
	}
	if _, ok := _c.mutation.DeliveredEmail(); !ok {
		v := notification.DefaultDeliveredEmail
		_c.mutation.SetDeliveredEmail(v)
	}
	if _, ok := _c.mutation.DeliveredSms(); !ok {
		v := notification.DefaultDeliveredSms
		_c.mutation.SetDeliveredSms(v)
	}
	if _, ok := _c.mutation.DeliveredBrowser(); !ok {
		v := notification.DefaultDeliveredBrowser
		_c.mutation.SetDeliveredBrowser(v)
	}
	if _, ok := _c.mutation.DeliveredPush(); !ok {
		v := notification.DefaultDeliveredPush
		_c.mutation.SetDeliveredPush(v)
	}
	if _, ok := _c.mutation.DeliveredSound(); !ok {
		v := notification.DefaultDeliveredSound
		_c.mutation.SetDeliveredSound(v)
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		v := notification.DefaultExpiresAt()
		_c.mutation.SetExpiresAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := notification.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Notification.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Notification.user_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "Notification.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := notification.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Notification.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`repo: missing required field "Notification.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := notification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Notification.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Notification.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := notification.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Notification.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Link(); ok {
		if err := notification.LinkValidator(v); err != nil {
			return &ValidationError{Name: "link", err: fmt.Errorf(`repo: validator failed for field "Notification.link": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := notification.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`repo: validator failed for field "Notification.entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Read(); !ok {
		return &ValidationError{Name: "read", err: errors.New(`repo: missing required field "Notification.read"`)}
	}
	if _, ok := _c.mutation.DeliveredEmail(); !ok {
		return &ValidationError{Name: "delivered_email", err: errors.New(`repo: missing required field "Notification.delivered_email"`)}
	}
	if _, ok := _c.mutation.DeliveredSms(); !ok {
		return &ValidationError{Name: "delivered_sms", err: errors.New(`repo: missing required field "Notification.delivered_sms"`)}
	}
	if _, ok := _c.mutation.DeliveredBrowser(); !ok {
		return &ValidationError{Name: "delivered_browser", err: errors.New(`repo: missing required field "Notification.delivered_browser"`)}
	}
	if _, ok := _c.mutation.DeliveredPush(); !ok {
		return &ValidationError{Name: "delivered_push", err: errors.New(`repo: missing required field "Notification.delivered_push"`)}
	}
	if _, ok := _c.mutation.DeliveredSound(); !ok {
		return &ValidationError{Name: "delivered_sound", err: errors.New(`repo: missing required field "Notification.delivered_sound"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`repo: missing required field "Notification.expires_at"`)}
	}
	return nil
}

func (_c *NotificationCreate) sqlSave(ctx context.Context) (*Notification, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationCreate) createSpec() (*Notification, *sqlgraph.CreateSpec) {
	var (
		_node = &Notification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notification.Table, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(notification.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(notification.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(notification.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(notification.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(notification.FieldBody, field.TypeString, value)
		_node.Body = &value
	}
	if value, ok := _c.mutation.Link(); ok {
		_spec.SetField(notification.FieldLink, field.TypeString, value)
		_node.Link = &value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(notification.FieldEntityID, field.TypeString, value)
		_node.EntityID = &value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(notification.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Read(); ok {
		_spec.SetField(notification.FieldRead, field.TypeBool, value)
		_node.Read = value
	}
	if value, ok := _c.mutation.ReadAt(); ok {
		_spec.SetField(notification.FieldReadAt, field.TypeTime, value)
		_node.ReadAt = &value
	}
	if value, ok := _c.mutation.DeliveredEmail(); ok {
		_spec.SetField(notification.FieldDeliveredEmail, field.TypeBool, value)
		_node.DeliveredEmail = value
	}
	if value, ok := _c.mutation.DeliveredSms(); ok {
		_spec.SetField(notification.FieldDeliveredSms, field.TypeBool, value)
		_node.DeliveredSms = value
	}
	if value, ok := _c.mutation.DeliveredBrowser(); ok {
		_spec.SetField(notification.FieldDeliveredBrowser, field.TypeBool, value)
		_node.DeliveredBrowser = value
	}
	if value, ok := _c.mutation.DeliveredPush(); ok {
		_spec.SetField(notification.FieldDeliveredPush, field.TypeBool, value)
		_node.DeliveredPush = value
	}
	if value, ok := _c.mutation.DeliveredSound(); ok {
		_spec.SetField(notification.FieldDeliveredSound, field.TypeBool, value)
		_node.DeliveredSound = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(notification.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Notification.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationCreate) OnConflict(opts ...sql.ConflictOption) *NotificationUpsertOne {
	_c.conflict = opts
	return &NotificationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationCreate) OnConflictColumns(columns ...string) *NotificationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationUpsertOne{
		create: _c,
	}
}

type (
	// NotificationUpsertOne is the builder for "upsert"-ing
	//  one Notification node.
	NotificationUpsertOne struct {
		create *NotificationCreate
	}

	// NotificationUpsert is the "OnConflict" setter.
	NotificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *NotificationUpsert) SetUserID(v uuid.UUID) *NotificationUpsert {
	u.Set(notification.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateUserID() *NotificationUpsert {
	u.SetExcluded(notification.FieldUserID)
	return u
}

// SetType sets the "type" field.
func (u *NotificationUpsert) SetType(v notification.Type) *NotificationUpsert {
	u.Set(notification.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateType() *NotificationUpsert {
	u.SetExcluded(notification.FieldType)
	return u
}

// SetPriority sets the "priority" field.
func (u *NotificationUpsert) SetPriority(v notification.Priority) *NotificationUpsert {
	u.Set(notification.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *NotificationUpsert) UpdatePriority() *NotificationUpsert {
	u.SetExcluded(notification.FieldPriority)
	return u
}

// SetTitle sets the "title" field.
func (u *NotificationUpsert) SetTitle(v string) *NotificationUpsert {
	u.Set(notification.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateTitle() *NotificationUpsert {
	u.SetExcluded(notification.FieldTitle)
	return u
}

// SetBody sets the "body" field.
func (u *NotificationUpsert) SetBody(v string) *NotificationUpsert {
	u.Set(notification.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateBody() *NotificationUpsert {
	u.SetExcluded(notification.FieldBody)
	return u
}

// ClearBody clears the value of the "body" field.
func (u *NotificationUpsert) ClearBody() *NotificationUpsert {
	u.SetNull(notification.FieldBody)
	return u
}

// SetLink sets the "link" field.
func (u *NotificationUpsert) SetLink(v string) *NotificationUpsert {
	u.Set(notification.FieldLink, v)
	return u
}

// UpdateLink sets the "link" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateLink() *NotificationUpsert {
	u.SetExcluded(notification.FieldLink)
	return u
}

// ClearLink clears the value of the "link" field.
func (u *NotificationUpsert) ClearLink() *NotificationUpsert {
	u.SetNull(notification.FieldLink)
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *NotificationUpsert) SetEntityID(v string) *NotificationUpsert {
	u.Set(notification.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateEntityID() *NotificationUpsert {
	u.SetExcluded(notification.FieldEntityID)
	return u
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *NotificationUpsert) ClearEntityID() *NotificationUpsert {
	u.SetNull(notification.FieldEntityID)
	return u
}

// SetData sets the "data" field.
func (u *NotificationUpsert) SetData(v map[string]interface{}) *NotificationUpsert {
	u.Set(notification.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateData() *NotificationUpsert {
	u.SetExcluded(notification.FieldData)
	return u
}

// ClearData clears the value of the "data" field.
func (u *NotificationUpsert) ClearData() *NotificationUpsert {
	u.SetNull(notification.FieldData)
	return u
}

// SetRead sets the "read" field.
func (u *NotificationUpsert) SetRead(v bool) *NotificationUpsert {
	u.Set(notification.FieldRead, v)
	return u
}

// UpdateRead sets the "read" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateRead() *NotificationUpsert {
	u.SetExcluded(notification.FieldRead)
	return u
}

// SetReadAt sets the "read_at" field.
func (u *NotificationUpsert) SetReadAt(v time.Time) *NotificationUpsert {
	u.Set(notification.FieldReadAt, v)
	return u
}

// UpdateReadAt sets the "read_at" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateReadAt() *NotificationUpsert {
	u.SetExcluded(notification.FieldReadAt)
	return u
}

// ClearReadAt clears the value of the "read_at" field.
func (u *NotificationUpsert) ClearReadAt() *NotificationUpsert {
	u.SetNull(notification.FieldReadAt)
	return u
}

// SetDeliveredEmail sets the "delivered_email" field.
func (u *NotificationUpsert) SetDeliveredEmail(v bool) *NotificationUpsert {
	u.Set(notification.FieldDeliveredEmail, v)
	return u
}

// UpdateDeliveredEmail sets the "delivered_email" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateDeliveredEmail() *NotificationUpsert {
	u.SetExcluded(notification.FieldDeliveredEmail)
	return u
}

// SetDeliveredSms sets the "delivered_sms" field.
func (u *NotificationUpsert) SetDeliveredSms(v bool) *NotificationUpsert {
	u.Set(notification.FieldDeliveredSms, v)
	return u
}

// UpdateDeliveredSms sets the "delivered_sms" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateDeliveredSms() *NotificationUpsert {
	u.SetExcluded(notification.FieldDeliveredSms)
	return u
}

// SetDeliveredBrowser sets the "delivered_browser" field.
func (u *NotificationUpsert) SetDeliveredBrowser(v bool) *NotificationUpsert {
	u.Set(notification.FieldDeliveredBrowser, v)
	return u
}

// UpdateDeliveredBrowser sets the "delivered_browser" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateDeliveredBrowser() *NotificationUpsert {
	u.SetExcluded(notification.FieldDeliveredBrowser)
	return u
}

// SetDeliveredPush sets the "delivered_push" field.
func (u *NotificationUpsert) SetDeliveredPush(v bool) *NotificationUpsert {
	u.Set(notification.FieldDeliveredPush, v)
	return u
}

// UpdateDeliveredPush sets the "delivered_push" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateDeliveredPush() *NotificationUpsert {
	u.SetExcluded(notification.FieldDeliveredPush)
	return u
}

// SetDeliveredSound sets the "delivered_sound" field.
func (u *NotificationUpsert) SetDeliveredSound(v bool) *NotificationUpsert {
	u.Set(notification.FieldDeliveredSound, v)
	return u
}

// UpdateDeliveredSound sets the "delivered_sound" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateDeliveredSound() *NotificationUpsert {
	u.SetExcluded(notification.FieldDeliveredSound)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *NotificationUpsert) SetExpiresAt(v time.Time) *NotificationUpsert {
	u.Set(notification.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateExpiresAt() *NotificationUpsert {
	u.SetExcluded(notification.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationUpsertOne) UpdateNewValues() *NotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(notification.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(notification.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Notification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *NotificationUpsertOne) Ignore() *NotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationUpsertOne) DoNothing() *NotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationCreate.OnConflict
// documentation for more info.
func (u *NotificationUpsertOne) Update(set func(*NotificationUpsert)) *NotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *NotificationUpsertOne) SetUserID(v uuid.UUID) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateUserID() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateUserID()
	})
}

// SetType sets the "type" field.
func (u *NotificationUpsertOne) SetType(v notification.Type) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateType() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateType()
	})
}

// SetPriority sets the "priority" field.
func (u *NotificationUpsertOne) SetPriority(v notification.Priority) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdatePriority() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdatePriority()
	})
}

// SetTitle sets the "title" field.
func (u *NotificationUpsertOne) SetTitle(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateTitle() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *NotificationUpsertOne) SetBody(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateBody() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateBody()
	})
}

// ClearBody clears the value of the "body" field.
func (u *NotificationUpsertOne) ClearBody() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearBody()
	})
}

// SetLink sets the "link" field.
func (u *NotificationUpsertOne) SetLink(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetLink(v)
	})
}

// UpdateLink sets the "link" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateLink() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateLink()
	})
}

// ClearLink clears the value of the "link" field.
func (u *NotificationUpsertOne) ClearLink() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearLink()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *NotificationUpsertOne) SetEntityID(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateEntityID() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *NotificationUpsertOne) ClearEntityID() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearEntityID()
	})
}

// SetData sets the "data" field.
func (u *NotificationUpsertOne) SetData(v map[string]interface{}) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateData() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *NotificationUpsertOne) ClearData() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearData()
	})
}

// SetRead sets the "read" field.
func (u *NotificationUpsertOne) SetRead(v bool) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetRead(v)
	})
}

// UpdateRead sets the "read" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateRead() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateRead()
	})
}

// SetReadAt sets the "read_at" field.
func (u *NotificationUpsertOne) SetReadAt(v time.Time) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetReadAt(v)
	})
}

// UpdateReadAt sets the "read_at" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateReadAt() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateReadAt()
	})
}

// ClearReadAt clears the value of the "read_at" field.
func (u *NotificationUpsertOne) ClearReadAt() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearReadAt()
	})
}

// SetDeliveredEmail sets the "delivered_email" field.
func (u *NotificationUpsertOne) SetDeliveredEmail(v bool) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredEmail(v)
	})
}

// UpdateDeliveredEmail sets the "delivered_email" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateDeliveredEmail() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredEmail()
	})
}

// SetDeliveredSms sets the "delivered_sms" field.
func (u *NotificationUpsertOne) SetDeliveredSms(v bool) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredSms(v)
	})
}

// UpdateDeliveredSms sets the "delivered_sms" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateDeliveredSms() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredSms()
	})
}

// SetDeliveredBrowser sets the "delivered_browser" field.
func (u *NotificationUpsertOne) SetDeliveredBrowser(v bool) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredBrowser(v)
	})
}

// UpdateDeliveredBrowser sets the "delivered_browser" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateDeliveredBrowser() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredBrowser()
	})
}

// SetDeliveredPush sets the "delivered_push" field.
func (u *NotificationUpsertOne) SetDeliveredPush(v bool) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredPush(v)
	})
}

// UpdateDeliveredPush sets the "delivered_push" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateDeliveredPush() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredPush()
	})
}

// SetDeliveredSound sets the "delivered_sound" field.
func (u *NotificationUpsertOne) SetDeliveredSound(v bool) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredSound(v)
	})
}

// UpdateDeliveredSound sets the "delivered_sound" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateDeliveredSound() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredSound()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *NotificationUpsertOne) SetExpiresAt(v time.Time) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateExpiresAt() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *NotificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for NotificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *NotificationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: NotificationUpsertOne.ID is not supported by MySQL driver. Use NotificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *NotificationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// NotificationCreateBulk is the builder for creating many Notification entities in bulk.
type NotificationCreateBulk struct {
	config
	err      error
	builders []*NotificationCreate
	conflict []sql.ConflictOption
}

// Save creates the Notification entities in the database.
func (_c *NotificationCreateBulk) Save(ctx context.Context) ([]*Notification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Notification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NotificationCreateBulk) SaveX(ctx context.Context) []*Notification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Notification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *NotificationUpsertBulk {
	_c.conflict = opts
	return &NotificationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationCreateBulk) OnConflictColumns(columns ...string) *NotificationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationUpsertBulk{
		create: _c,
	}
}

// NotificationUpsertBulk is the builder for "upsert"-ing
// a bulk of Notification nodes.
type NotificationUpsertBulk struct {
	create *NotificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationUpsertBulk) UpdateNewValues() *NotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(notification.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(notification.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *NotificationUpsertBulk) Ignore() *NotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationUpsertBulk) DoNothing() *NotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationCreateBulk.OnConflict
// documentation for more info.
func (u *NotificationUpsertBulk) Update(set func(*NotificationUpsert)) *NotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *NotificationUpsertBulk) SetUserID(v uuid.UUID) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateUserID() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateUserID()
	})
}

// SetType sets the "type" field.
func (u *NotificationUpsertBulk) SetType(v notification.Type) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateType() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateType()
	})
}

// SetPriority sets the "priority" field.
func (u *NotificationUpsertBulk) SetPriority(v notification.Priority) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdatePriority() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdatePriority()
	})
}

// SetTitle sets the "title" field.
func (u *NotificationUpsertBulk) SetTitle(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateTitle() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateTitle()
	})
}

// SetBody sets the "body" field.
func (u *NotificationUpsertBulk) SetBody(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateBody() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateBody()
	})
}

// ClearBody clears the value of the "body" field.
func (u *NotificationUpsertBulk) ClearBody() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearBody()
	})
}

// SetLink sets the "link" field.
func (u *NotificationUpsertBulk) SetLink(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetLink(v)
	})
}

// UpdateLink sets the "link" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateLink() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateLink()
	})
}

// ClearLink clears the value of the "link" field.
func (u *NotificationUpsertBulk) ClearLink() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearLink()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *NotificationUpsertBulk) SetEntityID(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateEntityID() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *NotificationUpsertBulk) ClearEntityID() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearEntityID()
	})
}

// SetData sets the "data" field.
func (u *NotificationUpsertBulk) SetData(v map[string]interface{}) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateData() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *NotificationUpsertBulk) ClearData() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearData()
	})
}

// SetRead sets the "read" field.
func (u *NotificationUpsertBulk) SetRead(v bool) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetRead(v)
	})
}

// UpdateRead sets the "read" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateRead() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateRead()
	})
}

// SetReadAt sets the "read_at" field.
func (u *NotificationUpsertBulk) SetReadAt(v time.Time) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetReadAt(v)
	})
}

// UpdateReadAt sets the "read_at" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateReadAt() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateReadAt()
	})
}

// ClearReadAt clears the value of the "read_at" field.
func (u *NotificationUpsertBulk) ClearReadAt() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearReadAt()
	})
}

// SetDeliveredEmail sets the "delivered_email" field.
func (u *NotificationUpsertBulk) SetDeliveredEmail(v bool) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredEmail(v)
	})
}

// UpdateDeliveredEmail sets the "delivered_email" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateDeliveredEmail() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredEmail()
	})
}

// SetDeliveredSms sets the "delivered_sms" field.
func (u *NotificationUpsertBulk) SetDeliveredSms(v bool) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredSms(v)
	})
}

// UpdateDeliveredSms sets the "delivered_sms" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateDeliveredSms() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredSms()
	})
}

// SetDeliveredBrowser sets the "delivered_browser" field.
func (u *NotificationUpsertBulk) SetDeliveredBrowser(v bool) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredBrowser(v)
	})
}

// UpdateDeliveredBrowser sets the "delivered_browser" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateDeliveredBrowser() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredBrowser()
	})
}

// SetDeliveredPush sets the "delivered_push" field.
func (u *NotificationUpsertBulk) SetDeliveredPush(v bool) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredPush(v)
	})
}

// UpdateDeliveredPush sets the "delivered_push" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateDeliveredPush() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredPush()
	})
}

// SetDeliveredSound sets the "delivered_sound" field.
func (u *NotificationUpsertBulk) SetDeliveredSound(v bool) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDeliveredSound(v)
	})
}

// UpdateDeliveredSound sets the "delivered_sound" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateDeliveredSound() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDeliveredSound()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *NotificationUpsertBulk) SetExpiresAt(v time.Time) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateExpiresAt() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *NotificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the NotificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for NotificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
