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
	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/notificationpref"
	"github.com/google/uuid"
)

// NotificationPrefCreate is the builder for creating a NotificationPref entity.
type NotificationPrefCreate struct {
	config
	mutation *NotificationPrefMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationPrefCreate) SetCreatedAt(v time.Time) *NotificationPrefCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableCreatedAt(v *time.Time) *NotificationPrefCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NotificationPrefCreate) SetUpdatedAt(v time.Time) *NotificationPrefCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableUpdatedAt(v *time.Time) *NotificationPrefCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *NotificationPrefCreate) SetUserID(v uuid.UUID) *NotificationPrefCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMatrix sets the "matrix" field.
func (_c *NotificationPrefCreate) SetMatrix(v notify.Matrix) *NotificationPrefCreate {
	_c.mutation.SetMatrix(v)
	return _c
}

// SetSoundVolume sets the "sound_volume" field.
func (_c *NotificationPrefCreate) SetSoundVolume(v float64) *NotificationPrefCreate {
	_c.mutation.SetSoundVolume(v)
	return _c
}

// SetNillableSoundVolume sets the "sound_volume" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableSoundVolume(v *float64) *NotificationPrefCreate {
	if v != nil {
		_c.SetSoundVolume(*v)
	}
	return _c
}

// SetRequireInteraction sets the "require_interaction" field.
func (_c *NotificationPrefCreate) SetRequireInteraction(v bool) *NotificationPrefCreate {
	_c.mutation.SetRequireInteraction(v)
	return _c
}

// SetNillableRequireInteraction sets the "require_interaction" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableRequireInteraction(v *bool) *NotificationPrefCreate {
	if v != nil {
		_c.SetRequireInteraction(*v)
	}
	return _c
}

// SetOnlyWhenHidden sets the "only_when_hidden" field.
func (_c *NotificationPrefCreate) SetOnlyWhenHidden(v bool) *NotificationPrefCreate {
	_c.mutation.SetOnlyWhenHidden(v)
	return _c
}

// SetNillableOnlyWhenHidden sets the "only_when_hidden" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableOnlyWhenHidden(v *bool) *NotificationPrefCreate {
	if v != nil {
		_c.SetOnlyWhenHidden(*v)
	}
	return _c
}

// SetSounds sets the "sounds" field.
func (_c *NotificationPrefCreate) SetSounds(v map[string]string) *NotificationPrefCreate {
	_c.mutation.SetSounds(v)
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationPrefCreate) SetID(v uuid.UUID) *NotificationPrefCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NotificationPrefCreate) SetNillableID(v *uuid.UUID) *NotificationPrefCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the NotificationPrefMutation object of the builder.
func (_c *NotificationPrefCreate) Mutation() *NotificationPrefMutation {
	return _c.mutation
}

// Save creates the NotificationPref in the database.
func (_c *NotificationPrefCreate) Save(ctx context.Context) (*NotificationPref, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationPrefCreate) SaveX(ctx context.Context) *NotificationPref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPrefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPrefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationPrefCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationpref.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notificationpref.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SoundVolume(); !ok {
		v := notificationpref.DefaultSoundVolume
		_c.mutation.SetSoundVolume(v)
	}
	if _, ok := _c.mutation.RequireInteraction(); !ok {
		v := notificationpref.DefaultRequireInteraction
		_c.mutation.SetRequireInteraction(v)
	}
	if _, ok := _c.mutation.OnlyWhenHidden(); !ok {
		v := notificationpref.DefaultOnlyWhenHidden
		_c.mutation.SetOnlyWhenHidden(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := notificationpref.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationPrefCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "NotificationPref.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "NotificationPref.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "NotificationPref.user_id"`)}
	}
	if _, ok := _c.mutation.Matrix(); !ok {
		return &ValidationError{Name: "matrix", err: errors.New(`repo: missing required field "NotificationPref.matrix"`)}
	}
	if _, ok := _c.mutation.SoundVolume(); !ok {
		return &ValidationError{Name: "sound_volume", err: errors.New(`repo: missing required field "NotificationPref.sound_volume"`)}
	}
	if v, ok := _c.mutation.SoundVolume(); ok {
		if err := notificationpref.SoundVolumeValidator(v); err != nil {
			return &ValidationError{Name: "sound_volume", err: fmt.Errorf(`repo: validator failed for field "NotificationPref.sound_volume": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequireInteraction(); !ok {
		return &ValidationError{Name: "require_interaction", err: errors.New(`repo: missing required field "NotificationPref.require_interaction"`)}
	}
	if _, ok := _c.mutation.OnlyWhenHidden(); !ok {
		return &ValidationError{Name: "only_when_hidden", err: errors.New(`repo: missing required field "NotificationPref.only_when_hidden"`)}
	}
	return nil
}

func (_c *NotificationPrefCreate) sqlSave(ctx context.Context) (*NotificationPref, error) {
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

func (_c *NotificationPrefCreate) createSpec() (*NotificationPref, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationPref{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationpref.Table, sqlgraph.NewFieldSpec(notificationpref.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationpref.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpref.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(notificationpref.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Matrix(); ok {
		_spec.SetField(notificationpref.FieldMatrix, field.TypeJSON, value)
		_node.Matrix = value
	}
	if value, ok := _c.mutation.SoundVolume(); ok {
		_spec.SetField(notificationpref.FieldSoundVolume, field.TypeFloat64, value)
		_node.SoundVolume = value
	}
	if value, ok := _c.mutation.RequireInteraction(); ok {
		_spec.SetField(notificationpref.FieldRequireInteraction, field.TypeBool, value)
		_node.RequireInteraction = value
	}
	if value, ok := _c.mutation.OnlyWhenHidden(); ok {
		_spec.SetField(notificationpref.FieldOnlyWhenHidden, field.TypeBool, value)
		_node.OnlyWhenHidden = value
	}
	if value, ok := _c.mutation.Sounds(); ok {
		_spec.SetField(notificationpref.FieldSounds, field.TypeJSON, value)
		_node.Sounds = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NotificationPref.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationPrefUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationPrefCreate) OnConflict(opts ...sql.ConflictOption) *NotificationPrefUpsertOne {
	_c.conflict = opts
	return &NotificationPrefUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationPrefCreate) OnConflictColumns(columns ...string) *NotificationPrefUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationPrefUpsertOne{
		create: _c,
	}
}

type (
	// NotificationPrefUpsertOne is the builder for "upsert"-ing
	//  one NotificationPref node.
	NotificationPrefUpsertOne struct {
		create *NotificationPrefCreate
	}

	// NotificationPrefUpsert is the "OnConflict" setter.
	NotificationPrefUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *NotificationPrefUpsert) SetUpdatedAt(v time.Time) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateUpdatedAt() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *NotificationPrefUpsert) SetUserID(v uuid.UUID) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateUserID() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldUserID)
	return u
}

// SetMatrix sets the "matrix" field.
func (u *NotificationPrefUpsert) SetMatrix(v notify.Matrix) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldMatrix, v)
	return u
}

// UpdateMatrix sets the "matrix" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateMatrix() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldMatrix)
	return u
}

// SetSoundVolume sets the "sound_volume" field.
func (u *NotificationPrefUpsert) SetSoundVolume(v float64) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldSoundVolume, v)
	return u
}

// UpdateSoundVolume sets the "sound_volume" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateSoundVolume() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldSoundVolume)
	return u
}

// AddSoundVolume adds v to the "sound_volume" field.
func (u *NotificationPrefUpsert) AddSoundVolume(v float64) *NotificationPrefUpsert {
	u.Add(notificationpref.FieldSoundVolume, v)
	return u
}

// SetRequireInteraction sets the "require_interaction" field.
func (u *NotificationPrefUpsert) SetRequireInteraction(v bool) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldRequireInteraction, v)
	return u
}

// UpdateRequireInteraction sets the "require_interaction" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateRequireInteraction() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldRequireInteraction)
	return u
}

// SetOnlyWhenHidden sets the "only_when_hidden" field.
func (u *NotificationPrefUpsert) SetOnlyWhenHidden(v bool) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldOnlyWhenHidden, v)
	return u
}

// UpdateOnlyWhenHidden sets the "only_when_hidden" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateOnlyWhenHidden() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldOnlyWhenHidden)
	return u
}

// SetSounds sets the "sounds" field.
func (u *NotificationPrefUpsert) SetSounds(v map[string]string) *NotificationPrefUpsert {
	u.Set(notificationpref.FieldSounds, v)
	return u
}

// UpdateSounds sets the "sounds" field to the value that was provided on create.
func (u *NotificationPrefUpsert) UpdateSounds() *NotificationPrefUpsert {
	u.SetExcluded(notificationpref.FieldSounds)
	return u
}

// ClearSounds clears the value of the "sounds" field.
func (u *NotificationPrefUpsert) ClearSounds() *NotificationPrefUpsert {
	u.SetNull(notificationpref.FieldSounds)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notificationpref.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationPrefUpsertOne) UpdateNewValues() *NotificationPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(notificationpref.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(notificationpref.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *NotificationPrefUpsertOne) Ignore() *NotificationPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationPrefUpsertOne) DoNothing() *NotificationPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationPrefCreate.OnConflict
// documentation for more info.
func (u *NotificationPrefUpsertOne) Update(set func(*NotificationPrefUpsert)) *NotificationPrefUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationPrefUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *NotificationPrefUpsertOne) SetUpdatedAt(v time.Time) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateUpdatedAt() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *NotificationPrefUpsertOne) SetUserID(v uuid.UUID) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateUserID() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateUserID()
	})
}

// SetMatrix sets the "matrix" field.
func (u *NotificationPrefUpsertOne) SetMatrix(v notify.Matrix) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetMatrix(v)
	})
}

// UpdateMatrix sets the "matrix" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateMatrix() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateMatrix()
	})
}

// SetSoundVolume sets the "sound_volume" field.
func (u *NotificationPrefUpsertOne) SetSoundVolume(v float64) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetSoundVolume(v)
	})
}

// AddSoundVolume adds v to the "sound_volume" field.
func (u *NotificationPrefUpsertOne) AddSoundVolume(v float64) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.AddSoundVolume(v)
	})
}

// UpdateSoundVolume sets the "sound_volume" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateSoundVolume() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateSoundVolume()
	})
}

// SetRequireInteraction sets the "require_interaction" field.
func (u *NotificationPrefUpsertOne) SetRequireInteraction(v bool) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetRequireInteraction(v)
	})
}

// UpdateRequireInteraction sets the "require_interaction" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateRequireInteraction() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateRequireInteraction()
	})
}

// SetOnlyWhenHidden sets the "only_when_hidden" field.
func (u *NotificationPrefUpsertOne) SetOnlyWhenHidden(v bool) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetOnlyWhenHidden(v)
	})
}

// UpdateOnlyWhenHidden sets the "only_when_hidden" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateOnlyWhenHidden() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateOnlyWhenHidden()
	})
}

// SetSounds sets the "sounds" field.
func (u *NotificationPrefUpsertOne) SetSounds(v map[string]string) *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetSounds(v)
	})
}

// UpdateSounds sets the "sounds" field to the value that was provided on create.
func (u *NotificationPrefUpsertOne) UpdateSounds() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateSounds()
	})
}

// ClearSounds clears the value of the "sounds" field.
func (u *NotificationPrefUpsertOne) ClearSounds() *NotificationPrefUpsertOne {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.ClearSounds()
	})
}

// Exec executes the query.
func (u *NotificationPrefUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for NotificationPrefCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationPrefUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *NotificationPrefUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: NotificationPrefUpsertOne.ID is not supported by MySQL driver. Use NotificationPrefUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *NotificationPrefUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// NotificationPrefCreateBulk is the builder for creating many NotificationPref entities in bulk.
type NotificationPrefCreateBulk struct {
	config
	err      error
	builders []*NotificationPrefCreate
	conflict []sql.ConflictOption
}

// Save creates the NotificationPref entities in the database.
func (_c *NotificationPrefCreateBulk) Save(ctx context.Context) ([]*NotificationPref, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationPref, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationPrefMutation)
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
func (_c *NotificationPrefCreateBulk) SaveX(ctx context.Context) []*NotificationPref {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPrefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPrefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NotificationPref.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationPrefUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationPrefCreateBulk) OnConflict(opts ...sql.ConflictOption) *NotificationPrefUpsertBulk {
	_c.conflict = opts
	return &NotificationPrefUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationPrefCreateBulk) OnConflictColumns(columns ...string) *NotificationPrefUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationPrefUpsertBulk{
		create: _c,
	}
}

// NotificationPrefUpsertBulk is the builder for "upsert"-ing
// a bulk of NotificationPref nodes.
type NotificationPrefUpsertBulk struct {
	create *NotificationPrefCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notificationpref.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationPrefUpsertBulk) UpdateNewValues() *NotificationPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(notificationpref.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(notificationpref.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NotificationPref.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *NotificationPrefUpsertBulk) Ignore() *NotificationPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationPrefUpsertBulk) DoNothing() *NotificationPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationPrefCreateBulk.OnConflict
// documentation for more info.
func (u *NotificationPrefUpsertBulk) Update(set func(*NotificationPrefUpsert)) *NotificationPrefUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationPrefUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *NotificationPrefUpsertBulk) SetUpdatedAt(v time.Time) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateUpdatedAt() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *NotificationPrefUpsertBulk) SetUserID(v uuid.UUID) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateUserID() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateUserID()
	})
}

// SetMatrix sets the "matrix" field.
func (u *NotificationPrefUpsertBulk) SetMatrix(v notify.Matrix) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetMatrix(v)
	})
}

// UpdateMatrix sets the "matrix" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateMatrix() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateMatrix()
	})
}

// SetSoundVolume sets the "sound_volume" field.
func (u *NotificationPrefUpsertBulk) SetSoundVolume(v float64) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetSoundVolume(v)
	})
}

// AddSoundVolume adds v to the "sound_volume" field.
func (u *NotificationPrefUpsertBulk) AddSoundVolume(v float64) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.AddSoundVolume(v)
	})
}

// UpdateSoundVolume sets the "sound_volume" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateSoundVolume() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateSoundVolume()
	})
}

// SetRequireInteraction sets the "require_interaction" field.
func (u *NotificationPrefUpsertBulk) SetRequireInteraction(v bool) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetRequireInteraction(v)
	})
}

// UpdateRequireInteraction sets the "require_interaction" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateRequireInteraction() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateRequireInteraction()
	})
}

// SetOnlyWhenHidden sets the "only_when_hidden" field.
func (u *NotificationPrefUpsertBulk) SetOnlyWhenHidden(v bool) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetOnlyWhenHidden(v)
	})
}

// UpdateOnlyWhenHidden sets the "only_when_hidden" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateOnlyWhenHidden() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateOnlyWhenHidden()
	})
}

// SetSounds sets the "sounds" field.
func (u *NotificationPrefUpsertBulk) SetSounds(v map[string]string) *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.SetSounds(v)
	})
}

// UpdateSounds sets the "sounds" field to the value that was provided on create.
func (u *NotificationPrefUpsertBulk) UpdateSounds() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.UpdateSounds()
	})
}

// ClearSounds clears the value of the "sounds" field.
func (u *NotificationPrefUpsertBulk) ClearSounds() *NotificationPrefUpsertBulk {
	return u.Update(func(s *NotificationPrefUpsert) {
		s.ClearSounds()
	})
}

// Exec executes the query.
func (u *NotificationPrefUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the NotificationPrefCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for NotificationPrefCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationPrefUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
