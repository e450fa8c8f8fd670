// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shu-assistant/shu/ent/provideridentity"
)

// ProviderIdentityCreate is the builder for creating a ProviderIdentity entity.
type ProviderIdentityCreate struct {
	config
	mutation *ProviderIdentityMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProviderIdentityCreate) SetUserID(v string) *ProviderIdentityCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ProviderIdentityCreate) SetProvider(v string) *ProviderIdentityCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ProviderIdentityCreate) SetSubject(v string) *ProviderIdentityCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetScopes sets the "scopes" field.
func (_c *ProviderIdentityCreate) SetScopes(v []string) *ProviderIdentityCreate {
	_c.mutation.SetScopes(v)
	return _c
}

// SetRefreshToken sets the "refresh_token" field.
func (_c *ProviderIdentityCreate) SetRefreshToken(v string) *ProviderIdentityCreate {
	_c.mutation.SetRefreshToken(v)
	return _c
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_c *ProviderIdentityCreate) SetNillableRefreshToken(v *string) *ProviderIdentityCreate {
	if v != nil {
		_c.SetRefreshToken(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProviderIdentityCreate) SetCreatedAt(v time.Time) *ProviderIdentityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProviderIdentityCreate) SetNillableCreatedAt(v *time.Time) *ProviderIdentityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProviderIdentityCreate) SetUpdatedAt(v time.Time) *ProviderIdentityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProviderIdentityCreate) SetNillableUpdatedAt(v *time.Time) *ProviderIdentityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderIdentityCreate) SetID(v string) *ProviderIdentityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProviderIdentityMutation object of the builder.
func (_c *ProviderIdentityCreate) Mutation() *ProviderIdentityMutation {
	return _c.mutation
}

// Save creates the ProviderIdentity in the database.
func (_c *ProviderIdentityCreate) Save(ctx context.Context) (*ProviderIdentity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderIdentityCreate) SaveX(ctx context.Context) *ProviderIdentity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderIdentityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderIdentityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderIdentityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := provideridentity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := provideridentity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderIdentityCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProviderIdentity.user_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ProviderIdentity.provider"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "ProviderIdentity.subject"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProviderIdentity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProviderIdentity.updated_at"`)}
	}
	return nil
}

func (_c *ProviderIdentityCreate) sqlSave(ctx context.Context) (*ProviderIdentity, error) {
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
			return nil, fmt.Errorf("unexpected ProviderIdentity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProviderIdentityCreate) createSpec() (*ProviderIdentity, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderIdentity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(provideridentity.Table, sqlgraph.NewFieldSpec(provideridentity.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(provideridentity.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(provideridentity.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(provideridentity.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Scopes(); ok {
		_spec.SetField(provideridentity.FieldScopes, field.TypeJSON, value)
		_node.Scopes = value
	}
	if value, ok := _c.mutation.RefreshToken(); ok {
		_spec.SetField(provideridentity.FieldRefreshToken, field.TypeString, value)
		_node.RefreshToken = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(provideridentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(provideridentity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProviderIdentityCreateBulk is the builder for creating many ProviderIdentity entities in bulk.
type ProviderIdentityCreateBulk struct {
	config
	err      error
	builders []*ProviderIdentityCreate
}

// Save creates the ProviderIdentity entities in the database.
func (_c *ProviderIdentityCreateBulk) Save(ctx context.Context) ([]*ProviderIdentity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderIdentity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderIdentityMutation)
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
func (_c *ProviderIdentityCreateBulk) SaveX(ctx context.Context) []*ProviderIdentity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderIdentityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderIdentityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
