// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shu-assistant/shu/ent/pluginexecution"
)

// PluginExecutionCreate is the builder for creating a PluginExecution entity.
type PluginExecutionCreate struct {
	config
	mutation *PluginExecutionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PluginExecutionCreate) SetUserID(v string) *PluginExecutionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScheduleID sets the "schedule_id" field.
func (_c *PluginExecutionCreate) SetScheduleID(v string) *PluginExecutionCreate {
	_c.mutation.SetScheduleID(v)
	return _c
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_c *PluginExecutionCreate) SetNillableScheduleID(v *string) *PluginExecutionCreate {
	if v != nil {
		_c.SetScheduleID(*v)
	}
	return _c
}

// SetPluginName sets the "plugin_name" field.
func (_c *PluginExecutionCreate) SetPluginName(v string) *PluginExecutionCreate {
	_c.mutation.SetPluginName(v)
	return _c
}

// SetAgentKey sets the "agent_key" field.
func (_c *PluginExecutionCreate) SetAgentKey(v string) *PluginExecutionCreate {
	_c.mutation.SetAgentKey(v)
	return _c
}

// SetNillableAgentKey sets the "agent_key" field if the given value is not nil.
func (_c *PluginExecutionCreate) SetNillableAgentKey(v *string) *PluginExecutionCreate {
	if v != nil {
		_c.SetAgentKey(*v)
	}
	return _c
}

// SetParams sets the "params" field.
func (_c *PluginExecutionCreate) SetParams(v map[string]interface{}) *PluginExecutionCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PluginExecutionCreate) SetStatus(v pluginexecution.Status) *PluginExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PluginExecutionCreate) SetNillableStatus(v *pluginexecution.Status) *PluginExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *PluginExecutionCreate) SetResult(v map[string]interface{}) *PluginExecutionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetError sets the "error" field.
func (_c *PluginExecutionCreate) SetError(v string) *PluginExecutionCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *PluginExecutionCreate) SetNillableError(v *string) *PluginExecutionCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *PluginExecutionCreate) SetPodID(v string) *PluginExecutionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *PluginExecutionCreate) SetNillablePodID(v *string) *PluginExecutionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PluginExecutionCreate) SetCreatedAt(v time.Time) *PluginExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PluginExecutionCreate) SetNillableCreatedAt(v *time.Time) *PluginExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PluginExecutionCreate) SetStartedAt(v time.Time) *PluginExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PluginExecutionCreate) SetNillableStartedAt(v *time.Time) *PluginExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PluginExecutionCreate) SetCompletedAt(v time.Time) *PluginExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PluginExecutionCreate) SetNillableCompletedAt(v *time.Time) *PluginExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *PluginExecutionCreate) SetLastHeartbeatAt(v time.Time) *PluginExecutionCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *PluginExecutionCreate) SetNillableLastHeartbeatAt(v *time.Time) *PluginExecutionCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PluginExecutionCreate) SetID(v string) *PluginExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PluginExecutionMutation object of the builder.
func (_c *PluginExecutionCreate) Mutation() *PluginExecutionMutation {
	return _c.mutation
}

// Save creates the PluginExecution in the database.
func (_c *PluginExecutionCreate) Save(ctx context.Context) (*PluginExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PluginExecutionCreate) SaveX(ctx context.Context) *PluginExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PluginExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pluginexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pluginexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PluginExecutionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PluginExecution.user_id"`)}
	}
	if _, ok := _c.mutation.PluginName(); !ok {
		return &ValidationError{Name: "plugin_name", err: errors.New(`ent: missing required field "PluginExecution.plugin_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PluginExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pluginexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PluginExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PluginExecution.created_at"`)}
	}
	return nil
}

func (_c *PluginExecutionCreate) sqlSave(ctx context.Context) (*PluginExecution, error) {
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
			return nil, fmt.Errorf("unexpected PluginExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PluginExecutionCreate) createSpec() (*PluginExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &PluginExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pluginexecution.Table, sqlgraph.NewFieldSpec(pluginexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pluginexecution.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ScheduleID(); ok {
		_spec.SetField(pluginexecution.FieldScheduleID, field.TypeString, value)
		_node.ScheduleID = &value
	}
	if value, ok := _c.mutation.PluginName(); ok {
		_spec.SetField(pluginexecution.FieldPluginName, field.TypeString, value)
		_node.PluginName = value
	}
	if value, ok := _c.mutation.AgentKey(); ok {
		_spec.SetField(pluginexecution.FieldAgentKey, field.TypeString, value)
		_node.AgentKey = &value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(pluginexecution.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pluginexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(pluginexecution.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(pluginexecution.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(pluginexecution.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pluginexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pluginexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pluginexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(pluginexecution.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	return _node, _spec
}

// PluginExecutionCreateBulk is the builder for creating many PluginExecution entities in bulk.
type PluginExecutionCreateBulk struct {
	config
	err      error
	builders []*PluginExecutionCreate
}

// Save creates the PluginExecution entities in the database.
func (_c *PluginExecutionCreateBulk) Save(ctx context.Context) ([]*PluginExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PluginExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PluginExecutionMutation)
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
func (_c *PluginExecutionCreateBulk) SaveX(ctx context.Context) []*PluginExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
