// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/tokengrant"
)

// TokenGrantCreate is the builder for creating a TokenGrant entity.
type TokenGrantCreate struct {
	config
	mutation *TokenGrantMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *TokenGrantCreate) SetAccountID(v int) *TokenGrantCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *TokenGrantCreate) SetTokens(v int64) *TokenGrantCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetPool sets the "pool" field.
func (_c *TokenGrantCreate) SetPool(v tokengrant.Pool) *TokenGrantCreate {
	_c.mutation.SetPool(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *TokenGrantCreate) SetSource(v tokengrant.Source) *TokenGrantCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetExternalPaymentRef sets the "external_payment_ref" field.
func (_c *TokenGrantCreate) SetExternalPaymentRef(v string) *TokenGrantCreate {
	_c.mutation.SetExternalPaymentRef(v)
	return _c
}

// SetNillableExternalPaymentRef sets the "external_payment_ref" field if the given value is not nil.
func (_c *TokenGrantCreate) SetNillableExternalPaymentRef(v *string) *TokenGrantCreate {
	if v != nil {
		_c.SetExternalPaymentRef(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenGrantCreate) SetCreatedAt(v time.Time) *TokenGrantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenGrantCreate) SetNillableCreatedAt(v *time.Time) *TokenGrantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *TokenGrantCreate) SetAccount(v *Account) *TokenGrantCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the TokenGrantMutation object of the builder.
func (_c *TokenGrantCreate) Mutation() *TokenGrantMutation {
	return _c.mutation
}

// Save creates the TokenGrant in the database.
func (_c *TokenGrantCreate) Save(ctx context.Context) (*TokenGrant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenGrantCreate) SaveX(ctx context.Context) *TokenGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenGrantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenGrantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenGrantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokengrant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenGrantCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "TokenGrant.account_id"`)}
	}
	if v, ok := _c.mutation.AccountID(); ok {
		if err := tokengrant.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tokens(); !ok {
		return &ValidationError{Name: "tokens", err: errors.New(`ent: missing required field "TokenGrant.tokens"`)}
	}
	if v, ok := _c.mutation.Tokens(); ok {
		if err := tokengrant.TokensValidator(v); err != nil {
			return &ValidationError{Name: "tokens", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pool(); !ok {
		return &ValidationError{Name: "pool", err: errors.New(`ent: missing required field "TokenGrant.pool"`)}
	}
	if v, ok := _c.mutation.Pool(); ok {
		if err := tokengrant.PoolValidator(v); err != nil {
			return &ValidationError{Name: "pool", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.pool": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "TokenGrant.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := tokengrant.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenGrant.created_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "TokenGrant.account"`)}
	}
	return nil
}

func (_c *TokenGrantCreate) sqlSave(ctx context.Context) (*TokenGrant, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TokenGrantCreate) createSpec() (*TokenGrant, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenGrant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokengrant.Table, sqlgraph.NewFieldSpec(tokengrant.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(tokengrant.FieldTokens, field.TypeInt64, value)
		_node.Tokens = value
	}
	if value, ok := _c.mutation.Pool(); ok {
		_spec.SetField(tokengrant.FieldPool, field.TypeEnum, value)
		_node.Pool = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(tokengrant.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExternalPaymentRef(); ok {
		_spec.SetField(tokengrant.FieldExternalPaymentRef, field.TypeString, value)
		_node.ExternalPaymentRef = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokengrant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tokengrant.AccountTable,
			Columns: []string{tokengrant.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TokenGrantCreateBulk is the builder for creating many TokenGrant entities in bulk.
type TokenGrantCreateBulk struct {
	config
	err      error
	builders []*TokenGrantCreate
}

// Save creates the TokenGrant entities in the database.
func (_c *TokenGrantCreateBulk) Save(ctx context.Context) ([]*TokenGrant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenGrant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenGrantMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TokenGrantCreateBulk) SaveX(ctx context.Context) []*TokenGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenGrantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenGrantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
