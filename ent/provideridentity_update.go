// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/shu-assistant/shu/ent/predicate"
	"github.com/shu-assistant/shu/ent/provideridentity"
)

// ProviderIdentityUpdate is the builder for updating ProviderIdentity entities.
type ProviderIdentityUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderIdentityMutation
}

// Where appends a list predicates to the ProviderIdentityUpdate builder.
func (_u *ProviderIdentityUpdate) Where(ps ...predicate.ProviderIdentity) *ProviderIdentityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProviderIdentityUpdate) SetUserID(v string) *ProviderIdentityUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProviderIdentityUpdate) SetNillableUserID(v *string) *ProviderIdentityUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProviderIdentityUpdate) SetProvider(v string) *ProviderIdentityUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderIdentityUpdate) SetNillableProvider(v *string) *ProviderIdentityUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProviderIdentityUpdate) SetSubject(v string) *ProviderIdentityUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProviderIdentityUpdate) SetNillableSubject(v *string) *ProviderIdentityUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *ProviderIdentityUpdate) SetScopes(v []string) *ProviderIdentityUpdate {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *ProviderIdentityUpdate) AppendScopes(v []string) *ProviderIdentityUpdate {
	_u.mutation.AppendScopes(v)
	return _u
}

// ClearScopes clears the value of the "scopes" field.
func (_u *ProviderIdentityUpdate) ClearScopes() *ProviderIdentityUpdate {
	_u.mutation.ClearScopes()
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *ProviderIdentityUpdate) SetRefreshToken(v string) *ProviderIdentityUpdate {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *ProviderIdentityUpdate) SetNillableRefreshToken(v *string) *ProviderIdentityUpdate {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *ProviderIdentityUpdate) ClearRefreshToken() *ProviderIdentityUpdate {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProviderIdentityUpdate) SetCreatedAt(v time.Time) *ProviderIdentityUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProviderIdentityUpdate) SetNillableCreatedAt(v *time.Time) *ProviderIdentityUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderIdentityUpdate) SetUpdatedAt(v time.Time) *ProviderIdentityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderIdentityMutation object of the builder.
func (_u *ProviderIdentityUpdate) Mutation() *ProviderIdentityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderIdentityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderIdentityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderIdentityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderIdentityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderIdentityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provideridentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderIdentityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(provideridentity.Table, provideridentity.Columns, sqlgraph.NewFieldSpec(provideridentity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(provideridentity.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(provideridentity.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(provideridentity.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(provideridentity.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, provideridentity.FieldScopes, value)
		})
	}
	if _u.mutation.ScopesCleared() {
		_spec.ClearField(provideridentity.FieldScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(provideridentity.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(provideridentity.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(provideridentity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provideridentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provideridentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderIdentityUpdateOne is the builder for updating a single ProviderIdentity entity.
type ProviderIdentityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderIdentityMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProviderIdentityUpdateOne) SetUserID(v string) *ProviderIdentityUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProviderIdentityUpdateOne) SetNillableUserID(v *string) *ProviderIdentityUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProviderIdentityUpdateOne) SetProvider(v string) *ProviderIdentityUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderIdentityUpdateOne) SetNillableProvider(v *string) *ProviderIdentityUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProviderIdentityUpdateOne) SetSubject(v string) *ProviderIdentityUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProviderIdentityUpdateOne) SetNillableSubject(v *string) *ProviderIdentityUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *ProviderIdentityUpdateOne) SetScopes(v []string) *ProviderIdentityUpdateOne {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *ProviderIdentityUpdateOne) AppendScopes(v []string) *ProviderIdentityUpdateOne {
	_u.mutation.AppendScopes(v)
	return _u
}

// ClearScopes clears the value of the "scopes" field.
func (_u *ProviderIdentityUpdateOne) ClearScopes() *ProviderIdentityUpdateOne {
	_u.mutation.ClearScopes()
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *ProviderIdentityUpdateOne) SetRefreshToken(v string) *ProviderIdentityUpdateOne {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *ProviderIdentityUpdateOne) SetNillableRefreshToken(v *string) *ProviderIdentityUpdateOne {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (_u *ProviderIdentityUpdateOne) ClearRefreshToken() *ProviderIdentityUpdateOne {
	_u.mutation.ClearRefreshToken()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProviderIdentityUpdateOne) SetCreatedAt(v time.Time) *ProviderIdentityUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProviderIdentityUpdateOne) SetNillableCreatedAt(v *time.Time) *ProviderIdentityUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderIdentityUpdateOne) SetUpdatedAt(v time.Time) *ProviderIdentityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderIdentityMutation object of the builder.
func (_u *ProviderIdentityUpdateOne) Mutation() *ProviderIdentityMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderIdentityUpdate builder.
func (_u *ProviderIdentityUpdateOne) Where(ps ...predicate.ProviderIdentity) *ProviderIdentityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderIdentityUpdateOne) Select(field string, fields ...string) *ProviderIdentityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderIdentity entity.
func (_u *ProviderIdentityUpdateOne) Save(ctx context.Context) (*ProviderIdentity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderIdentityUpdateOne) SaveX(ctx context.Context) *ProviderIdentity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderIdentityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderIdentityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderIdentityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provideridentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderIdentityUpdateOne) sqlSave(ctx context.Context) (_node *ProviderIdentity, err error) {
	_spec := sqlgraph.NewUpdateSpec(provideridentity.Table, provideridentity.Columns, sqlgraph.NewFieldSpec(provideridentity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderIdentity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, provideridentity.FieldID)
		for _, f := range fields {
			if !provideridentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != provideridentity.FieldID {
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
		_spec.SetField(provideridentity.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(provideridentity.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(provideridentity.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(provideridentity.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, provideridentity.FieldScopes, value)
		})
	}
	if _u.mutation.ScopesCleared() {
		_spec.ClearField(provideridentity.FieldScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(provideridentity.FieldRefreshToken, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCleared() {
		_spec.ClearField(provideridentity.FieldRefreshToken, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(provideridentity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provideridentity.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProviderIdentity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provideridentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
