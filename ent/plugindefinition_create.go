// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shu-assistant/shu/ent/plugindefinition"
)

// PluginDefinitionCreate is the builder for creating a PluginDefinition entity.
type PluginDefinitionCreate struct {
	config
	mutation *PluginDefinitionMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PluginDefinitionCreate) SetName(v string) *PluginDefinitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PluginDefinitionCreate) SetVersion(v string) *PluginDefinitionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *PluginDefinitionCreate) SetEnabled(v bool) *PluginDefinitionCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *PluginDefinitionCreate) SetNillableEnabled(v *bool) *PluginDefinitionCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetInputSchema sets the "input_schema" field.
func (_c *PluginDefinitionCreate) SetInputSchema(v map[string]interface{}) *PluginDefinitionCreate {
	_c.mutation.SetInputSchema(v)
	return _c
}

// SetOutputSchema sets the "output_schema" field.
func (_c *PluginDefinitionCreate) SetOutputSchema(v map[string]interface{}) *PluginDefinitionCreate {
	_c.mutation.SetOutputSchema(v)
	return _c
}

// SetLimits sets the "limits" field.
func (_c *PluginDefinitionCreate) SetLimits(v map[string]interface{}) *PluginDefinitionCreate {
	_c.mutation.SetLimits(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PluginDefinitionCreate) SetCreatedAt(v time.Time) *PluginDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PluginDefinitionCreate) SetNillableCreatedAt(v *time.Time) *PluginDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PluginDefinitionCreate) SetUpdatedAt(v time.Time) *PluginDefinitionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PluginDefinitionCreate) SetNillableUpdatedAt(v *time.Time) *PluginDefinitionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PluginDefinitionCreate) SetID(v string) *PluginDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PluginDefinitionMutation object of the builder.
func (_c *PluginDefinitionCreate) Mutation() *PluginDefinitionMutation {
	return _c.mutation
}

// Save creates the PluginDefinition in the database.
func (_c *PluginDefinitionCreate) Save(ctx context.Context) (*PluginDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PluginDefinitionCreate) SaveX(ctx context.Context) *PluginDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PluginDefinitionCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := plugindefinition.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plugindefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := plugindefinition.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PluginDefinitionCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PluginDefinition.name"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PluginDefinition.version"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "PluginDefinition.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PluginDefinition.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PluginDefinition.updated_at"`)}
	}
	return nil
}

func (_c *PluginDefinitionCreate) sqlSave(ctx context.Context) (*PluginDefinition, error) {
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
			return nil, fmt.Errorf("unexpected PluginDefinition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PluginDefinitionCreate) createSpec() (*PluginDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &PluginDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plugindefinition.Table, sqlgraph.NewFieldSpec(plugindefinition.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(plugindefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(plugindefinition.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(plugindefinition.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.InputSchema(); ok {
		_spec.SetField(plugindefinition.FieldInputSchema, field.TypeJSON, value)
		_node.InputSchema = value
	}
	if value, ok := _c.mutation.OutputSchema(); ok {
		_spec.SetField(plugindefinition.FieldOutputSchema, field.TypeJSON, value)
		_node.OutputSchema = value
	}
	if value, ok := _c.mutation.Limits(); ok {
		_spec.SetField(plugindefinition.FieldLimits, field.TypeJSON, value)
		_node.Limits = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plugindefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(plugindefinition.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PluginDefinitionCreateBulk is the builder for creating many PluginDefinition entities in bulk.
type PluginDefinitionCreateBulk struct {
	config
	err      error
	builders []*PluginDefinitionCreate
}

// Save creates the PluginDefinition entities in the database.
func (_c *PluginDefinitionCreateBulk) Save(ctx context.Context) ([]*PluginDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PluginDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PluginDefinitionMutation)
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
func (_c *PluginDefinitionCreateBulk) SaveX(ctx context.Context) []*PluginDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
