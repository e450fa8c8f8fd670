// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shu-assistant/shu/ent/plugindefinition"
	"github.com/shu-assistant/shu/ent/predicate"
)

// PluginDefinitionUpdate is the builder for updating PluginDefinition entities.
type PluginDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *PluginDefinitionMutation
}

// Where appends a list predicates to the PluginDefinitionUpdate builder.
func (_u *PluginDefinitionUpdate) Where(ps ...predicate.PluginDefinition) *PluginDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PluginDefinitionUpdate) SetName(v string) *PluginDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PluginDefinitionUpdate) SetNillableName(v *string) *PluginDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PluginDefinitionUpdate) SetVersion(v string) *PluginDefinitionUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PluginDefinitionUpdate) SetNillableVersion(v *string) *PluginDefinitionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PluginDefinitionUpdate) SetEnabled(v bool) *PluginDefinitionUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PluginDefinitionUpdate) SetNillableEnabled(v *bool) *PluginDefinitionUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetInputSchema sets the "input_schema" field.
func (_u *PluginDefinitionUpdate) SetInputSchema(v map[string]interface{}) *PluginDefinitionUpdate {
	_u.mutation.SetInputSchema(v)
	return _u
}

// ClearInputSchema clears the value of the "input_schema" field.
func (_u *PluginDefinitionUpdate) ClearInputSchema() *PluginDefinitionUpdate {
	_u.mutation.ClearInputSchema()
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *PluginDefinitionUpdate) SetOutputSchema(v map[string]interface{}) *PluginDefinitionUpdate {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// ClearOutputSchema clears the value of the "output_schema" field.
func (_u *PluginDefinitionUpdate) ClearOutputSchema() *PluginDefinitionUpdate {
	_u.mutation.ClearOutputSchema()
	return _u
}

// SetLimits sets the "limits" field.
func (_u *PluginDefinitionUpdate) SetLimits(v map[string]interface{}) *PluginDefinitionUpdate {
	_u.mutation.SetLimits(v)
	return _u
}

// ClearLimits clears the value of the "limits" field.
func (_u *PluginDefinitionUpdate) ClearLimits() *PluginDefinitionUpdate {
	_u.mutation.ClearLimits()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PluginDefinitionUpdate) SetCreatedAt(v time.Time) *PluginDefinitionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PluginDefinitionUpdate) SetNillableCreatedAt(v *time.Time) *PluginDefinitionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PluginDefinitionUpdate) SetUpdatedAt(v time.Time) *PluginDefinitionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PluginDefinitionMutation object of the builder.
func (_u *PluginDefinitionUpdate) Mutation() *PluginDefinitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PluginDefinitionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PluginDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PluginDefinitionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plugindefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PluginDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(plugindefinition.Table, plugindefinition.Columns, sqlgraph.NewFieldSpec(plugindefinition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plugindefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(plugindefinition.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(plugindefinition.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputSchema(); ok {
		_spec.SetField(plugindefinition.FieldInputSchema, field.TypeJSON, value)
	}
	if _u.mutation.InputSchemaCleared() {
		_spec.ClearField(plugindefinition.FieldInputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(plugindefinition.FieldOutputSchema, field.TypeJSON, value)
	}
	if _u.mutation.OutputSchemaCleared() {
		_spec.ClearField(plugindefinition.FieldOutputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Limits(); ok {
		_spec.SetField(plugindefinition.FieldLimits, field.TypeJSON, value)
	}
	if _u.mutation.LimitsCleared() {
		_spec.ClearField(plugindefinition.FieldLimits, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(plugindefinition.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plugindefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plugindefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PluginDefinitionUpdateOne is the builder for updating a single PluginDefinition entity.
type PluginDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PluginDefinitionMutation
}

// SetName sets the "name" field.
func (_u *PluginDefinitionUpdateOne) SetName(v string) *PluginDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PluginDefinitionUpdateOne) SetNillableName(v *string) *PluginDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PluginDefinitionUpdateOne) SetVersion(v string) *PluginDefinitionUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PluginDefinitionUpdateOne) SetNillableVersion(v *string) *PluginDefinitionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PluginDefinitionUpdateOne) SetEnabled(v bool) *PluginDefinitionUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PluginDefinitionUpdateOne) SetNillableEnabled(v *bool) *PluginDefinitionUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetInputSchema sets the "input_schema" field.
func (_u *PluginDefinitionUpdateOne) SetInputSchema(v map[string]interface{}) *PluginDefinitionUpdateOne {
	_u.mutation.SetInputSchema(v)
	return _u
}

// ClearInputSchema clears the value of the "input_schema" field.
func (_u *PluginDefinitionUpdateOne) ClearInputSchema() *PluginDefinitionUpdateOne {
	_u.mutation.ClearInputSchema()
	return _u
}

// SetOutputSchema sets the "output_schema" field.
func (_u *PluginDefinitionUpdateOne) SetOutputSchema(v map[string]interface{}) *PluginDefinitionUpdateOne {
	_u.mutation.SetOutputSchema(v)
	return _u
}

// ClearOutputSchema clears the value of the "output_schema" field.
func (_u *PluginDefinitionUpdateOne) ClearOutputSchema() *PluginDefinitionUpdateOne {
	_u.mutation.ClearOutputSchema()
	return _u
}

// SetLimits sets the "limits" field.
func (_u *PluginDefinitionUpdateOne) SetLimits(v map[string]interface{}) *PluginDefinitionUpdateOne {
	_u.mutation.SetLimits(v)
	return _u
}

// ClearLimits clears the value of the "limits" field.
func (_u *PluginDefinitionUpdateOne) ClearLimits() *PluginDefinitionUpdateOne {
	_u.mutation.ClearLimits()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PluginDefinitionUpdateOne) SetCreatedAt(v time.Time) *PluginDefinitionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PluginDefinitionUpdateOne) SetNillableCreatedAt(v *time.Time) *PluginDefinitionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PluginDefinitionUpdateOne) SetUpdatedAt(v time.Time) *PluginDefinitionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PluginDefinitionMutation object of the builder.
func (_u *PluginDefinitionUpdateOne) Mutation() *PluginDefinitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PluginDefinitionUpdate builder.
func (_u *PluginDefinitionUpdateOne) Where(ps ...predicate.PluginDefinition) *PluginDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PluginDefinitionUpdateOne) Select(field string, fields ...string) *PluginDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PluginDefinition entity.
func (_u *PluginDefinitionUpdateOne) Save(ctx context.Context) (*PluginDefinition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginDefinitionUpdateOne) SaveX(ctx context.Context) *PluginDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PluginDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PluginDefinitionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plugindefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PluginDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *PluginDefinition, err error) {
	_spec := sqlgraph.NewUpdateSpec(plugindefinition.Table, plugindefinition.Columns, sqlgraph.NewFieldSpec(plugindefinition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PluginDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plugindefinition.FieldID)
		for _, f := range fields {
			if !plugindefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plugindefinition.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plugindefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(plugindefinition.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(plugindefinition.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputSchema(); ok {
		_spec.SetField(plugindefinition.FieldInputSchema, field.TypeJSON, value)
	}
	if _u.mutation.InputSchemaCleared() {
		_spec.ClearField(plugindefinition.FieldInputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSchema(); ok {
		_spec.SetField(plugindefinition.FieldOutputSchema, field.TypeJSON, value)
	}
	if _u.mutation.OutputSchemaCleared() {
		_spec.ClearField(plugindefinition.FieldOutputSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Limits(); ok {
		_spec.SetField(plugindefinition.FieldLimits, field.TypeJSON, value)
	}
	if _u.mutation.LimitsCleared() {
		_spec.ClearField(plugindefinition.FieldLimits, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(plugindefinition.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plugindefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PluginDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plugindefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
