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
	"github.com/shu-assistant/shu/ent/pluginexecution"
	"github.com/shu-assistant/shu/ent/predicate"
)

// PluginExecutionUpdate is the builder for updating PluginExecution entities.
type PluginExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *PluginExecutionMutation
}

// Where appends a list predicates to the PluginExecutionUpdate builder.
func (_u *PluginExecutionUpdate) Where(ps ...predicate.PluginExecution) *PluginExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PluginExecutionUpdate) SetUserID(v string) *PluginExecutionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillableUserID(v *string) *PluginExecutionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScheduleID sets the "schedule_id" field.
func (_u *PluginExecutionUpdate) SetScheduleID(v string) *PluginExecutionUpdate {
	_u.mutation.SetScheduleID(v)
	return _u
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillableScheduleID(v *string) *PluginExecutionUpdate {
	if v != nil {
		_u.SetScheduleID(*v)
	}
	return _u
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (_u *PluginExecutionUpdate) ClearScheduleID() *PluginExecutionUpdate {
	_u.mutation.ClearScheduleID()
	return _u
}

// SetPluginName sets the "plugin_name" field.
func (_u *PluginExecutionUpdate) SetPluginName(v string) *PluginExecutionUpdate {
	_u.mutation.SetPluginName(v)
	return _u
}

// SetNillablePluginName sets the "plugin_name" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillablePluginName(v *string) *PluginExecutionUpdate {
	if v != nil {
		_u.SetPluginName(*v)
	}
	return _u
}

// SetAgentKey sets the "agent_key" field.
func (_u *PluginExecutionUpdate) SetAgentKey(v string) *PluginExecutionUpdate {
	_u.mutation.SetAgentKey(v)
	return _u
}

// SetNillableAgentKey sets the "agent_key" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillableAgentKey(v *string) *PluginExecutionUpdate {
	if v != nil {
		_u.SetAgentKey(*v)
	}
	return _u
}

// ClearAgentKey clears the value of the "agent_key" field.
func (_u *PluginExecutionUpdate) ClearAgentKey() *PluginExecutionUpdate {
	_u.mutation.ClearAgentKey()
	return _u
}

// SetParams sets the "params" field.
func (_u *PluginExecutionUpdate) SetParams(v map[string]interface{}) *PluginExecutionUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *PluginExecutionUpdate) ClearParams() *PluginExecutionUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PluginExecutionUpdate) SetStatus(v pluginexecution.Status) *PluginExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillableStatus(v *pluginexecution.Status) *PluginExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *PluginExecutionUpdate) SetResult(v map[string]interface{}) *PluginExecutionUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PluginExecutionUpdate) ClearResult() *PluginExecutionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *PluginExecutionUpdate) SetError(v string) *PluginExecutionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillableError(v *string) *PluginExecutionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PluginExecutionUpdate) ClearError() *PluginExecutionUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PluginExecutionUpdate) SetPodID(v string) *PluginExecutionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillablePodID(v *string) *PluginExecutionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PluginExecutionUpdate) ClearPodID() *PluginExecutionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PluginExecutionUpdate) SetCreatedAt(v time.Time) *PluginExecutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillableCreatedAt(v *time.Time) *PluginExecutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PluginExecutionUpdate) SetStartedAt(v time.Time) *PluginExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillableStartedAt(v *time.Time) *PluginExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PluginExecutionUpdate) ClearStartedAt() *PluginExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PluginExecutionUpdate) SetCompletedAt(v time.Time) *PluginExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillableCompletedAt(v *time.Time) *PluginExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PluginExecutionUpdate) ClearCompletedAt() *PluginExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *PluginExecutionUpdate) SetLastHeartbeatAt(v time.Time) *PluginExecutionUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *PluginExecutionUpdate) SetNillableLastHeartbeatAt(v *time.Time) *PluginExecutionUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *PluginExecutionUpdate) ClearLastHeartbeatAt() *PluginExecutionUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// Mutation returns the PluginExecutionMutation object of the builder.
func (_u *PluginExecutionUpdate) Mutation() *PluginExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PluginExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PluginExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PluginExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pluginexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PluginExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PluginExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pluginexecution.Table, pluginexecution.Columns, sqlgraph.NewFieldSpec(pluginexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(pluginexecution.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleID(); ok {
		_spec.SetField(pluginexecution.FieldScheduleID, field.TypeString, value)
	}
	if _u.mutation.ScheduleIDCleared() {
		_spec.ClearField(pluginexecution.FieldScheduleID, field.TypeString)
	}
	if value, ok := _u.mutation.PluginName(); ok {
		_spec.SetField(pluginexecution.FieldPluginName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentKey(); ok {
		_spec.SetField(pluginexecution.FieldAgentKey, field.TypeString, value)
	}
	if _u.mutation.AgentKeyCleared() {
		_spec.ClearField(pluginexecution.FieldAgentKey, field.TypeString)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(pluginexecution.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(pluginexecution.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pluginexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(pluginexecution.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(pluginexecution.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(pluginexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(pluginexecution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pluginexecution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pluginexecution.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pluginexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pluginexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pluginexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pluginexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pluginexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(pluginexecution.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(pluginexecution.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pluginexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PluginExecutionUpdateOne is the builder for updating a single PluginExecution entity.
type PluginExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PluginExecutionMutation
}

// SetUserID sets the "user_id" field.
func (_u *PluginExecutionUpdateOne) SetUserID(v string) *PluginExecutionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillableUserID(v *string) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScheduleID sets the "schedule_id" field.
func (_u *PluginExecutionUpdateOne) SetScheduleID(v string) *PluginExecutionUpdateOne {
	_u.mutation.SetScheduleID(v)
	return _u
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillableScheduleID(v *string) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetScheduleID(*v)
	}
	return _u
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (_u *PluginExecutionUpdateOne) ClearScheduleID() *PluginExecutionUpdateOne {
	_u.mutation.ClearScheduleID()
	return _u
}

// SetPluginName sets the "plugin_name" field.
func (_u *PluginExecutionUpdateOne) SetPluginName(v string) *PluginExecutionUpdateOne {
	_u.mutation.SetPluginName(v)
	return _u
}

// SetNillablePluginName sets the "plugin_name" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillablePluginName(v *string) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetPluginName(*v)
	}
	return _u
}

// SetAgentKey sets the "agent_key" field.
func (_u *PluginExecutionUpdateOne) SetAgentKey(v string) *PluginExecutionUpdateOne {
	_u.mutation.SetAgentKey(v)
	return _u
}

// SetNillableAgentKey sets the "agent_key" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillableAgentKey(v *string) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetAgentKey(*v)
	}
	return _u
}

// ClearAgentKey clears the value of the "agent_key" field.
func (_u *PluginExecutionUpdateOne) ClearAgentKey() *PluginExecutionUpdateOne {
	_u.mutation.ClearAgentKey()
	return _u
}

// SetParams sets the "params" field.
func (_u *PluginExecutionUpdateOne) SetParams(v map[string]interface{}) *PluginExecutionUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *PluginExecutionUpdateOne) ClearParams() *PluginExecutionUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PluginExecutionUpdateOne) SetStatus(v pluginexecution.Status) *PluginExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillableStatus(v *pluginexecution.Status) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *PluginExecutionUpdateOne) SetResult(v map[string]interface{}) *PluginExecutionUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PluginExecutionUpdateOne) ClearResult() *PluginExecutionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *PluginExecutionUpdateOne) SetError(v string) *PluginExecutionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillableError(v *string) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PluginExecutionUpdateOne) ClearError() *PluginExecutionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PluginExecutionUpdateOne) SetPodID(v string) *PluginExecutionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillablePodID(v *string) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PluginExecutionUpdateOne) ClearPodID() *PluginExecutionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PluginExecutionUpdateOne) SetCreatedAt(v time.Time) *PluginExecutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillableCreatedAt(v *time.Time) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PluginExecutionUpdateOne) SetStartedAt(v time.Time) *PluginExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PluginExecutionUpdateOne) ClearStartedAt() *PluginExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PluginExecutionUpdateOne) SetCompletedAt(v time.Time) *PluginExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PluginExecutionUpdateOne) ClearCompletedAt() *PluginExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *PluginExecutionUpdateOne) SetLastHeartbeatAt(v time.Time) *PluginExecutionUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *PluginExecutionUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *PluginExecutionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *PluginExecutionUpdateOne) ClearLastHeartbeatAt() *PluginExecutionUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// Mutation returns the PluginExecutionMutation object of the builder.
func (_u *PluginExecutionUpdateOne) Mutation() *PluginExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PluginExecutionUpdate builder.
func (_u *PluginExecutionUpdateOne) Where(ps ...predicate.PluginExecution) *PluginExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PluginExecutionUpdateOne) Select(field string, fields ...string) *PluginExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PluginExecution entity.
func (_u *PluginExecutionUpdateOne) Save(ctx context.Context) (*PluginExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginExecutionUpdateOne) SaveX(ctx context.Context) *PluginExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PluginExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PluginExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pluginexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PluginExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PluginExecutionUpdateOne) sqlSave(ctx context.Context) (_node *PluginExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pluginexecution.Table, pluginexecution.Columns, sqlgraph.NewFieldSpec(pluginexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PluginExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pluginexecution.FieldID)
		for _, f := range fields {
			if !pluginexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pluginexecution.FieldID {
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
		_spec.SetField(pluginexecution.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleID(); ok {
		_spec.SetField(pluginexecution.FieldScheduleID, field.TypeString, value)
	}
	if _u.mutation.ScheduleIDCleared() {
		_spec.ClearField(pluginexecution.FieldScheduleID, field.TypeString)
	}
	if value, ok := _u.mutation.PluginName(); ok {
		_spec.SetField(pluginexecution.FieldPluginName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentKey(); ok {
		_spec.SetField(pluginexecution.FieldAgentKey, field.TypeString, value)
	}
	if _u.mutation.AgentKeyCleared() {
		_spec.ClearField(pluginexecution.FieldAgentKey, field.TypeString)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(pluginexecution.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(pluginexecution.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pluginexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(pluginexecution.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(pluginexecution.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(pluginexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(pluginexecution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pluginexecution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pluginexecution.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pluginexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pluginexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pluginexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pluginexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pluginexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(pluginexecution.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(pluginexecution.FieldLastHeartbeatAt, field.TypeTime)
	}
	_node = &PluginExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pluginexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
