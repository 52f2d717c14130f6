// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/notificationpref"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// NotificationPrefUpdate is the builder for updating NotificationPref entities.
type NotificationPrefUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationPrefMutation
}

// Where appends a list predicates to the NotificationPrefUpdate builder.
func (_u *NotificationPrefUpdate) Where(ps ...predicate.NotificationPref) *NotificationPrefUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPrefUpdate) SetUpdatedAt(v time.Time) *NotificationPrefUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *NotificationPrefUpdate) SetUserID(v uuid.UUID) *NotificationPrefUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NotificationPrefUpdate) SetNillableUserID(v *uuid.UUID) *NotificationPrefUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMatrix sets the "matrix" field.
func (_u *NotificationPrefUpdate) SetMatrix(v notify.Matrix) *NotificationPrefUpdate {
	_u.mutation.SetMatrix(v)
	return _u
}

// SetSoundVolume sets the "sound_volume" field.
func (_u *NotificationPrefUpdate) SetSoundVolume(v float64) *NotificationPrefUpdate {
	_u.mutation.ResetSoundVolume()
	_u.mutation.SetSoundVolume(v)
	return _u
}

// SetNillableSoundVolume sets the "sound_volume" field if the given value is not nil.
func (_u *NotificationPrefUpdate) SetNillableSoundVolume(v *float64) *NotificationPrefUpdate {
	if v != nil {
		_u.SetSoundVolume(*v)
	}
	return _u
}

// AddSoundVolume adds value to the "sound_volume" field.
func (_u *NotificationPrefUpdate) AddSoundVolume(v float64) *NotificationPrefUpdate {
	_u.mutation.AddSoundVolume(v)
	return _u
}

// SetRequireInteraction sets the "require_interaction" field.
func (_u *NotificationPrefUpdate) SetRequireInteraction(v bool) *NotificationPrefUpdate {
	_u.mutation.SetRequireInteraction(v)
	return _u
}

// SetNillableRequireInteraction sets the "require_interaction" field if the given value is not nil.
func (_u *NotificationPrefUpdate) SetNillableRequireInteraction(v *bool) *NotificationPrefUpdate {
	if v != nil {
		_u.SetRequireInteraction(*v)
	}
	return _u
}

// SetOnlyWhenHidden sets the "only_when_hidden" field.
func (_u *NotificationPrefUpdate) SetOnlyWhenHidden(v bool) *NotificationPrefUpdate {
	_u.mutation.SetOnlyWhenHidden(v)
	return _u
}

// SetNillableOnlyWhenHidden sets the "only_when_hidden" field if the given value is not nil.
func (_u *NotificationPrefUpdate) SetNillableOnlyWhenHidden(v *bool) *NotificationPrefUpdate {
	if v != nil {
		_u.SetOnlyWhenHidden(*v)
	}
	return _u
}

// SetSounds sets the "sounds" field.
func (_u *NotificationPrefUpdate) SetSounds(v map[string]string) *NotificationPrefUpdate {
	_u.mutation.SetSounds(v)
	return _u
}

// ClearSounds clears the value of the "sounds" field.
func (_u *NotificationPrefUpdate) ClearSounds() *NotificationPrefUpdate {
	_u.mutation.ClearSounds()
	return _u
}

// Mutation returns the NotificationPrefMutation object of the builder.
func (_u *NotificationPrefUpdate) Mutation() *NotificationPrefMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationPrefUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPrefUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationPrefUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPrefUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPrefUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpref.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationPrefUpdate) check() error {
	if v, ok := _u.mutation.SoundVolume(); ok {
		if err := notificationpref.SoundVolumeValidator(v); err != nil {
			return &ValidationError{Name: "sound_volume", err: fmt.Errorf(`repo: validator failed for field "NotificationPref.sound_volume": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationPrefUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationpref.Table, notificationpref.Columns, sqlgraph.NewFieldSpec(notificationpref.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpref.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(notificationpref.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Matrix(); ok {
		_spec.SetField(notificationpref.FieldMatrix, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SoundVolume(); ok {
		_spec.SetField(notificationpref.FieldSoundVolume, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoundVolume(); ok {
		_spec.AddField(notificationpref.FieldSoundVolume, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequireInteraction(); ok {
		_spec.SetField(notificationpref.FieldRequireInteraction, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OnlyWhenHidden(); ok {
		_spec.SetField(notificationpref.FieldOnlyWhenHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sounds(); ok {
		_spec.SetField(notificationpref.FieldSounds, field.TypeJSON, value)
	}
	if _u.mutation.SoundsCleared() {
		_spec.ClearField(notificationpref.FieldSounds, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpref.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationPrefUpdateOne is the builder for updating a single NotificationPref entity.
type NotificationPrefUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationPrefMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPrefUpdateOne) SetUpdatedAt(v time.Time) *NotificationPrefUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *NotificationPrefUpdateOne) SetUserID(v uuid.UUID) *NotificationPrefUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NotificationPrefUpdateOne) SetNillableUserID(v *uuid.UUID) *NotificationPrefUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMatrix sets the "matrix" field.
func (_u *NotificationPrefUpdateOne) SetMatrix(v notify.Matrix) *NotificationPrefUpdateOne {
	_u.mutation.SetMatrix(v)
	return _u
}

// SetSoundVolume sets the "sound_volume" field.
func (_u *NotificationPrefUpdateOne) SetSoundVolume(v float64) *NotificationPrefUpdateOne {
	_u.mutation.ResetSoundVolume()
	_u.mutation.SetSoundVolume(v)
	return _u
}

// SetNillableSoundVolume sets the "sound_volume" field if the given value is not nil.
func (_u *NotificationPrefUpdateOne) SetNillableSoundVolume(v *float64) *NotificationPrefUpdateOne {
	if v != nil {
		_u.SetSoundVolume(*v)
	}
	return _u
}

// AddSoundVolume adds value to the "sound_volume" field.
func (_u *NotificationPrefUpdateOne) AddSoundVolume(v float64) *NotificationPrefUpdateOne {
	_u.mutation.AddSoundVolume(v)
	return _u
}

// SetRequireInteraction sets the "require_interaction" field.
func (_u *NotificationPrefUpdateOne) SetRequireInteraction(v bool) *NotificationPrefUpdateOne {
	_u.mutation.SetRequireInteraction(v)
	return _u
}

// SetNillableRequireInteraction sets the "require_interaction" field if the given value is not nil.
func (_u *NotificationPrefUpdateOne) SetNillableRequireInteraction(v *bool) *NotificationPrefUpdateOne {
	if v != nil {
		_u.SetRequireInteraction(*v)
	}
	return _u
}

// SetOnlyWhenHidden sets the "only_when_hidden" field.
func (_u *NotificationPrefUpdateOne) SetOnlyWhenHidden(v bool) *NotificationPrefUpdateOne {
	_u.mutation.SetOnlyWhenHidden(v)
	return _u
}

// SetNillableOnlyWhenHidden sets the "only_when_hidden" field if the given value is not nil.
func (_u *NotificationPrefUpdateOne) SetNillableOnlyWhenHidden(v *bool) *NotificationPrefUpdateOne {
	if v != nil {
		_u.SetOnlyWhenHidden(*v)
	}
	return _u
}

// SetSounds sets the "sounds" field.
func (_u *NotificationPrefUpdateOne) SetSounds(v map[string]string) *NotificationPrefUpdateOne {
	_u.mutation.SetSounds(v)
	return _u
}

// ClearSounds clears the value of the "sounds" field.
func (_u *NotificationPrefUpdateOne) ClearSounds() *NotificationPrefUpdateOne {
	_u.mutation.ClearSounds()
	return _u
}

// Mutation returns the NotificationPrefMutation object of the builder.
func (_u *NotificationPrefUpdateOne) Mutation() *NotificationPrefMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationPrefUpdate builder.
func (_u *NotificationPrefUpdateOne) Where(ps ...predicate.NotificationPref) *NotificationPrefUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationPrefUpdateOne) Select(field string, fields ...string) *NotificationPrefUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationPref entity.
func (_u *NotificationPrefUpdateOne) Save(ctx context.Context) (*NotificationPref, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPrefUpdateOne) SaveX(ctx context.Context) *NotificationPref {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationPrefUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPrefUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPrefUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpref.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationPrefUpdateOne) check() error {
	if v, ok := _u.mutation.SoundVolume(); ok {
		if err := notificationpref.SoundVolumeValidator(v); err != nil {
			return &ValidationError{Name: "sound_volume", err: fmt.Errorf(`repo: validator failed for field "NotificationPref.sound_volume": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationPrefUpdateOne) sqlSave(ctx context.Context) (_node *NotificationPref, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationpref.Table, notificationpref.Columns, sqlgraph.NewFieldSpec(notificationpref.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "NotificationPref.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationpref.FieldID)
		for _, f := range fields {
			if !notificationpref.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != notificationpref.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpref.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(notificationpref.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Matrix(); ok {
		_spec.SetField(notificationpref.FieldMatrix, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SoundVolume(); ok {
		_spec.SetField(notificationpref.FieldSoundVolume, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSoundVolume(); ok {
		_spec.AddField(notificationpref.FieldSoundVolume, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequireInteraction(); ok {
		_spec.SetField(notificationpref.FieldRequireInteraction, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OnlyWhenHidden(); ok {
		_spec.SetField(notificationpref.FieldOnlyWhenHidden, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sounds(); ok {
		_spec.SetField(notificationpref.FieldSounds, field.TypeJSON, value)
	}
	if _u.mutation.SoundsCleared() {
		_spec.ClearField(notificationpref.FieldSounds, field.TypeJSON)
	}
	_node = &NotificationPref{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpref.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
