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
	"github.com/shu-assistant/shu/ent/pluginfeed"
	"github.com/shu-assistant/shu/ent/predicate"
)

// PluginFeedUpdate is the builder for updating PluginFeed entities.
type PluginFeedUpdate struct {
	config
	hooks    []Hook
	mutation *PluginFeedMutation
}

// Where appends a list predicates to the PluginFeedUpdate builder.
func (_u *PluginFeedUpdate) Where(ps ...predicate.PluginFeed) *PluginFeedUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PluginFeedUpdate) SetUserID(v string) *PluginFeedUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PluginFeedUpdate) SetNillableUserID(v *string) *PluginFeedUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPluginName sets the "plugin_name" field.
func (_u *PluginFeedUpdate) SetPluginName(v string) *PluginFeedUpdate {
	_u.mutation.SetPluginName(v)
	return _u
}

// SetNillablePluginName sets the "plugin_name" field if the given value is not nil.
func (_u *PluginFeedUpdate) SetNillablePluginName(v *string) *PluginFeedUpdate {
	if v != nil {
		_u.SetPluginName(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *PluginFeedUpdate) SetParams(v map[string]interface{}) *PluginFeedUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *PluginFeedUpdate) ClearParams() *PluginFeedUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *PluginFeedUpdate) SetSchedule(v string) *PluginFeedUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *PluginFeedUpdate) SetNillableSchedule(v *string) *PluginFeedUpdate {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PluginFeedUpdate) SetEnabled(v bool) *PluginFeedUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PluginFeedUpdate) SetNillableEnabled(v *bool) *PluginFeedUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *PluginFeedUpdate) SetLastRunAt(v time.Time) *PluginFeedUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *PluginFeedUpdate) SetNillableLastRunAt(v *time.Time) *PluginFeedUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *PluginFeedUpdate) ClearLastRunAt() *PluginFeedUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PluginFeedUpdate) SetCreatedAt(v time.Time) *PluginFeedUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PluginFeedUpdate) SetNillableCreatedAt(v *time.Time) *PluginFeedUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PluginFeedUpdate) SetUpdatedAt(v time.Time) *PluginFeedUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PluginFeedMutation object of the builder.
func (_u *PluginFeedUpdate) Mutation() *PluginFeedMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PluginFeedUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginFeedUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PluginFeedUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginFeedUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PluginFeedUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pluginfeed.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PluginFeedUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pluginfeed.Table, pluginfeed.Columns, sqlgraph.NewFieldSpec(pluginfeed.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pluginfeed.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PluginName(); ok {
		_spec.SetField(pluginfeed.FieldPluginName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(pluginfeed.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(pluginfeed.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(pluginfeed.FieldSchedule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(pluginfeed.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(pluginfeed.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(pluginfeed.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pluginfeed.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pluginfeed.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pluginfeed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PluginFeedUpdateOne is the builder for updating a single PluginFeed entity.
type PluginFeedUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PluginFeedMutation
}

// SetUserID sets the "user_id" field.
func (_u *PluginFeedUpdateOne) SetUserID(v string) *PluginFeedUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PluginFeedUpdateOne) SetNillableUserID(v *string) *PluginFeedUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPluginName sets the "plugin_name" field.
func (_u *PluginFeedUpdateOne) SetPluginName(v string) *PluginFeedUpdateOne {
	_u.mutation.SetPluginName(v)
	return _u
}

// SetNillablePluginName sets the "plugin_name" field if the given value is not nil.
func (_u *PluginFeedUpdateOne) SetNillablePluginName(v *string) *PluginFeedUpdateOne {
	if v != nil {
		_u.SetPluginName(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *PluginFeedUpdateOne) SetParams(v map[string]interface{}) *PluginFeedUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *PluginFeedUpdateOne) ClearParams() *PluginFeedUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *PluginFeedUpdateOne) SetSchedule(v string) *PluginFeedUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *PluginFeedUpdateOne) SetNillableSchedule(v *string) *PluginFeedUpdateOne {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PluginFeedUpdateOne) SetEnabled(v bool) *PluginFeedUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PluginFeedUpdateOne) SetNillableEnabled(v *bool) *PluginFeedUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *PluginFeedUpdateOne) SetLastRunAt(v time.Time) *PluginFeedUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *PluginFeedUpdateOne) SetNillableLastRunAt(v *time.Time) *PluginFeedUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *PluginFeedUpdateOne) ClearLastRunAt() *PluginFeedUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PluginFeedUpdateOne) SetCreatedAt(v time.Time) *PluginFeedUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PluginFeedUpdateOne) SetNillableCreatedAt(v *time.Time) *PluginFeedUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PluginFeedUpdateOne) SetUpdatedAt(v time.Time) *PluginFeedUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PluginFeedMutation object of the builder.
func (_u *PluginFeedUpdateOne) Mutation() *PluginFeedMutation {
	return _u.mutation
}

// Where appends a list predicates to the PluginFeedUpdate builder.
func (_u *PluginFeedUpdateOne) Where(ps ...predicate.PluginFeed) *PluginFeedUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PluginFeedUpdateOne) Select(field string, fields ...string) *PluginFeedUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PluginFeed entity.
func (_u *PluginFeedUpdateOne) Save(ctx context.Context) (*PluginFeed, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginFeedUpdateOne) SaveX(ctx context.Context) *PluginFeed {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PluginFeedUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginFeedUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PluginFeedUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pluginfeed.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PluginFeedUpdateOne) sqlSave(ctx context.Context) (_node *PluginFeed, err error) {
	_spec := sqlgraph.NewUpdateSpec(pluginfeed.Table, pluginfeed.Columns, sqlgraph.NewFieldSpec(pluginfeed.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PluginFeed.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pluginfeed.FieldID)
		for _, f := range fields {
			if !pluginfeed.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pluginfeed.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pluginfeed.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PluginName(); ok {
		_spec.SetField(pluginfeed.FieldPluginName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(pluginfeed.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(pluginfeed.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(pluginfeed.FieldSchedule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(pluginfeed.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(pluginfeed.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(pluginfeed.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pluginfeed.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pluginfeed.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PluginFeed{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pluginfeed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
