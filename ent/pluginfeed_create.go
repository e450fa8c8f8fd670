// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shu-assistant/shu/ent/pluginfeed"
)

// PluginFeedCreate is the builder for creating a PluginFeed entity.
type PluginFeedCreate struct {
	config
	mutation *PluginFeedMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PluginFeedCreate) SetUserID(v string) *PluginFeedCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPluginName sets the "plugin_name" field.
func (_c *PluginFeedCreate) SetPluginName(v string) *PluginFeedCreate {
	_c.mutation.SetPluginName(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *PluginFeedCreate) SetParams(v map[string]interface{}) *PluginFeedCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *PluginFeedCreate) SetSchedule(v string) *PluginFeedCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *PluginFeedCreate) SetEnabled(v bool) *PluginFeedCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *PluginFeedCreate) SetNillableEnabled(v *bool) *PluginFeedCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *PluginFeedCreate) SetLastRunAt(v time.Time) *PluginFeedCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *PluginFeedCreate) SetNillableLastRunAt(v *time.Time) *PluginFeedCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PluginFeedCreate) SetCreatedAt(v time.Time) *PluginFeedCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PluginFeedCreate) SetNillableCreatedAt(v *time.Time) *PluginFeedCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PluginFeedCreate) SetUpdatedAt(v time.Time) *PluginFeedCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PluginFeedCreate) SetNillableUpdatedAt(v *time.Time) *PluginFeedCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PluginFeedCreate) SetID(v string) *PluginFeedCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PluginFeedMutation object of the builder.
func (_c *PluginFeedCreate) Mutation() *PluginFeedMutation {
	return _c.mutation
}

// Save creates the PluginFeed in the database.
func (_c *PluginFeedCreate) Save(ctx context.Context) (*PluginFeed, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PluginFeedCreate) SaveX(ctx context.Context) *PluginFeed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginFeedCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginFeedCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PluginFeedCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := pluginfeed.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pluginfeed.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pluginfeed.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PluginFeedCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PluginFeed.user_id"`)}
	}
	if _, ok := _c.mutation.PluginName(); !ok {
		return &ValidationError{Name: "plugin_name", err: errors.New(`ent: missing required field "PluginFeed.plugin_name"`)}
	}
	if _, ok := _c.mutation.Schedule(); !ok {
		return &ValidationError{Name: "schedule", err: errors.New(`ent: missing required field "PluginFeed.schedule"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "PluginFeed.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PluginFeed.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PluginFeed.updated_at"`)}
	}
	return nil
}

func (_c *PluginFeedCreate) sqlSave(ctx context.Context) (*PluginFeed, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PluginFeed.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PluginFeedCreate) createSpec() (*PluginFeed, *sqlgraph.CreateSpec) {
	var (
		_node = &PluginFeed{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pluginfeed.Table, sqlgraph.NewFieldSpec(pluginfeed.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pluginfeed.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PluginName(); ok {
		_spec.SetField(pluginfeed.FieldPluginName, field.TypeString, value)
		_node.PluginName = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(pluginfeed.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(pluginfeed.FieldSchedule, field.TypeString, value)
		_node.Schedule = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(pluginfeed.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(pluginfeed.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pluginfeed.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pluginfeed.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PluginFeedCreateBulk is the builder for creating many PluginFeed entities in bulk.
type PluginFeedCreateBulk struct {
	config
	err      error
	builders []*PluginFeedCreate
}

// Save creates the PluginFeed entities in the database.
func (_c *PluginFeedCreateBulk) Save(ctx context.Context) ([]*PluginFeed, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PluginFeed, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PluginFeedMutation)
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
func (_c *PluginFeedCreateBulk) SaveX(ctx context.Context) []*PluginFeed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginFeedCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginFeedCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
