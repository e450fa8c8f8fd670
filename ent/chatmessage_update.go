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
	"github.com/shu-assistant/shu/ent/chatmessage"
	"github.com/shu-assistant/shu/ent/predicate"
)

// ChatMessageUpdate is the builder for updating ChatMessage entities.
type ChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ChatMessageMutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdate) Where(ps ...predicate.ChatMessage) *ChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdate) SetRole(v string) *ChatMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableRole(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdate) SetContent(v string) *ChatMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableContent(v *string) *ChatMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ChatMessageUpdate) SetSequence(v int) *ChatMessageUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableSequence(v *int) *ChatMessageUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ChatMessageUpdate) AddSequence(v int) *ChatMessageUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *ChatMessageUpdate) SetTruncated(v bool) *ChatMessageUpdate {
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableTruncated(v *bool) *ChatMessageUpdate {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// SetUsage sets the "usage" field.
func (_u *ChatMessageUpdate) SetUsage(v map[string]interface{}) *ChatMessageUpdate {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *ChatMessageUpdate) ClearUsage() *ChatMessageUpdate {
	_u.mutation.ClearUsage()
	return _u
}

// SetToolCycles sets the "tool_cycles" field.
func (_u *ChatMessageUpdate) SetToolCycles(v int) *ChatMessageUpdate {
	_u.mutation.ResetToolCycles()
	_u.mutation.SetToolCycles(v)
	return _u
}

// SetNillableToolCycles sets the "tool_cycles" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableToolCycles(v *int) *ChatMessageUpdate {
	if v != nil {
		_u.SetToolCycles(*v)
	}
	return _u
}

// AddToolCycles adds value to the "tool_cycles" field.
func (_u *ChatMessageUpdate) AddToolCycles(v int) *ChatMessageUpdate {
	_u.mutation.AddToolCycles(v)
	return _u
}

// ClearToolCycles clears the value of the "tool_cycles" field.
func (_u *ChatMessageUpdate) ClearToolCycles() *ChatMessageUpdate {
	_u.mutation.ClearToolCycles()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChatMessageUpdate) SetCreatedAt(v time.Time) *ChatMessageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChatMessageUpdate) SetNillableCreatedAt(v *time.Time) *ChatMessageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdate) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdate) check() error {
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.conversation"`)
	}
	return nil
}

func (_u *ChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(chatmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(chatmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(chatmessage.FieldTruncated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(chatmessage.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(chatmessage.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCycles(); ok {
		_spec.SetField(chatmessage.FieldToolCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCycles(); ok {
		_spec.AddField(chatmessage.FieldToolCycles, field.TypeInt, value)
	}
	if _u.mutation.ToolCyclesCleared() {
		_spec.ClearField(chatmessage.FieldToolCycles, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(chatmessage.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatMessageUpdateOne is the builder for updating a single ChatMessage entity.
type ChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatMessageMutation
}

// SetRole sets the "role" field.
func (_u *ChatMessageUpdateOne) SetRole(v string) *ChatMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableRole(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatMessageUpdateOne) SetContent(v string) *ChatMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableContent(v *string) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ChatMessageUpdateOne) SetSequence(v int) *ChatMessageUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableSequence(v *int) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ChatMessageUpdateOne) AddSequence(v int) *ChatMessageUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *ChatMessageUpdateOne) SetTruncated(v bool) *ChatMessageUpdateOne {
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableTruncated(v *bool) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// SetUsage sets the "usage" field.
func (_u *ChatMessageUpdateOne) SetUsage(v map[string]interface{}) *ChatMessageUpdateOne {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *ChatMessageUpdateOne) ClearUsage() *ChatMessageUpdateOne {
	_u.mutation.ClearUsage()
	return _u
}

// SetToolCycles sets the "tool_cycles" field.
func (_u *ChatMessageUpdateOne) SetToolCycles(v int) *ChatMessageUpdateOne {
	_u.mutation.ResetToolCycles()
	_u.mutation.SetToolCycles(v)
	return _u
}

// SetNillableToolCycles sets the "tool_cycles" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableToolCycles(v *int) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetToolCycles(*v)
	}
	return _u
}

// AddToolCycles adds value to the "tool_cycles" field.
func (_u *ChatMessageUpdateOne) AddToolCycles(v int) *ChatMessageUpdateOne {
	_u.mutation.AddToolCycles(v)
	return _u
}

// ClearToolCycles clears the value of the "tool_cycles" field.
func (_u *ChatMessageUpdateOne) ClearToolCycles() *ChatMessageUpdateOne {
	_u.mutation.ClearToolCycles()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChatMessageUpdateOne) SetCreatedAt(v time.Time) *ChatMessageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChatMessageUpdateOne) SetNillableCreatedAt(v *time.Time) *ChatMessageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ChatMessageMutation object of the builder.
func (_u *ChatMessageUpdateOne) Mutation() *ChatMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatMessageUpdate builder.
func (_u *ChatMessageUpdateOne) Where(ps ...predicate.ChatMessage) *ChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatMessageUpdateOne) Select(field string, fields ...string) *ChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatMessage entity.
func (_u *ChatMessageUpdateOne) Save(ctx context.Context) (*ChatMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) SaveX(ctx context.Context) *ChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatMessageUpdateOne) check() error {
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChatMessage.conversation"`)
	}
	return nil
}

func (_u *ChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *ChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatmessage.Table, chatmessage.Columns, sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatmessage.FieldID)
		for _, f := range fields {
			if !chatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatmessage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatmessage.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(chatmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(chatmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(chatmessage.FieldTruncated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(chatmessage.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(chatmessage.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCycles(); ok {
		_spec.SetField(chatmessage.FieldToolCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolCycles(); ok {
		_spec.AddField(chatmessage.FieldToolCycles, field.TypeInt, value)
	}
	if _u.mutation.ToolCyclesCleared() {
		_spec.ClearField(chatmessage.FieldToolCycles, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(chatmessage.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
