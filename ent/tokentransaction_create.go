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
	"github.com/nexaai/nexa-backend/ent/tokentransaction"
)

// TokenTransactionCreate is the builder for creating a TokenTransaction entity.
type TokenTransactionCreate struct {
	config
	mutation *TokenTransactionMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *TokenTransactionCreate) SetAccountID(v int) *TokenTransactionCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *TokenTransactionCreate) SetModelID(v string) *TokenTransactionCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *TokenTransactionCreate) SetProvider(v string) *TokenTransactionCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *TokenTransactionCreate) SetNillableProvider(v *string) *TokenTransactionCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetTokensDeducted sets the "tokens_deducted" field.
func (_c *TokenTransactionCreate) SetTokensDeducted(v int64) *TokenTransactionCreate {
	_c.mutation.SetTokensDeducted(v)
	return _c
}

// SetDeductedFromPaid sets the "deducted_from_paid" field.
func (_c *TokenTransactionCreate) SetDeductedFromPaid(v int64) *TokenTransactionCreate {
	_c.mutation.SetDeductedFromPaid(v)
	return _c
}

// SetNillableDeductedFromPaid sets the "deducted_from_paid" field if the given value is not nil.
func (_c *TokenTransactionCreate) SetNillableDeductedFromPaid(v *int64) *TokenTransactionCreate {
	if v != nil {
		_c.SetDeductedFromPaid(*v)
	}
	return _c
}

// SetDeductedFromFree sets the "deducted_from_free" field.
func (_c *TokenTransactionCreate) SetDeductedFromFree(v int64) *TokenTransactionCreate {
	_c.mutation.SetDeductedFromFree(v)
	return _c
}

// SetNillableDeductedFromFree sets the "deducted_from_free" field if the given value is not nil.
func (_c *TokenTransactionCreate) SetNillableDeductedFromFree(v *int64) *TokenTransactionCreate {
	if v != nil {
		_c.SetDeductedFromFree(*v)
	}
	return _c
}

// SetProviderCostUsd sets the "provider_cost_usd" field.
func (_c *TokenTransactionCreate) SetProviderCostUsd(v float64) *TokenTransactionCreate {
	_c.mutation.SetProviderCostUsd(v)
	return _c
}

// SetNillableProviderCostUsd sets the "provider_cost_usd" field if the given value is not nil.
func (_c *TokenTransactionCreate) SetNillableProviderCostUsd(v *float64) *TokenTransactionCreate {
	if v != nil {
		_c.SetProviderCostUsd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenTransactionCreate) SetCreatedAt(v time.Time) *TokenTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenTransactionCreate) SetNillableCreatedAt(v *time.Time) *TokenTransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *TokenTransactionCreate) SetAccount(v *Account) *TokenTransactionCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the TokenTransactionMutation object of the builder.
func (_c *TokenTransactionCreate) Mutation() *TokenTransactionMutation {
	return _c.mutation
}

// Save creates the TokenTransaction in the database.
func (_c *TokenTransactionCreate) Save(ctx context.Context) (*TokenTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenTransactionCreate) SaveX(ctx context.Context) *TokenTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenTransactionCreate) defaults() {
	if _, ok := _c.mutation.DeductedFromPaid(); !ok {
		v := tokentransaction.DefaultDeductedFromPaid
		_c.mutation.SetDeductedFromPaid(v)
	}
	if _, ok := _c.mutation.DeductedFromFree(); !ok {
		v := tokentransaction.DefaultDeductedFromFree
		_c.mutation.SetDeductedFromFree(v)
	}
	if _, ok := _c.mutation.ProviderCostUsd(); !ok {
		v := tokentransaction.DefaultProviderCostUsd
		_c.mutation.SetProviderCostUsd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokentransaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenTransactionCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "TokenTransaction.account_id"`)}
	}
	if v, ok := _c.mutation.AccountID(); ok {
		if err := tokentransaction.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "TokenTransaction.model_id"`)}
	}
	if v, ok := _c.mutation.ModelID(); ok {
		if err := tokentransaction.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.model_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensDeducted(); !ok {
		return &ValidationError{Name: "tokens_deducted", err: errors.New(`ent: missing required field "TokenTransaction.tokens_deducted"`)}
	}
	if v, ok := _c.mutation.TokensDeducted(); ok {
		if err := tokentransaction.TokensDeductedValidator(v); err != nil {
			return &ValidationError{Name: "tokens_deducted", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.tokens_deducted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeductedFromPaid(); !ok {
		return &ValidationError{Name: "deducted_from_paid", err: errors.New(`ent: missing required field "TokenTransaction.deducted_from_paid"`)}
	}
	if v, ok := _c.mutation.DeductedFromPaid(); ok {
		if err := tokentransaction.DeductedFromPaidValidator(v); err != nil {
			return &ValidationError{Name: "deducted_from_paid", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.deducted_from_paid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeductedFromFree(); !ok {
		return &ValidationError{Name: "deducted_from_free", err: errors.New(`ent: missing required field "TokenTransaction.deducted_from_free"`)}
	}
	if v, ok := _c.mutation.DeductedFromFree(); ok {
		if err := tokentransaction.DeductedFromFreeValidator(v); err != nil {
			return &ValidationError{Name: "deducted_from_free", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.deducted_from_free": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProviderCostUsd(); !ok {
		return &ValidationError{Name: "provider_cost_usd", err: errors.New(`ent: missing required field "TokenTransaction.provider_cost_usd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenTransaction.created_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "TokenTransaction.account"`)}
	}
	return nil
}

func (_c *TokenTransactionCreate) sqlSave(ctx context.Context) (*TokenTransaction, error) {
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

func (_c *TokenTransactionCreate) createSpec() (*TokenTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokentransaction.Table, sqlgraph.NewFieldSpec(tokentransaction.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(tokentransaction.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(tokentransaction.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.TokensDeducted(); ok {
		_spec.SetField(tokentransaction.FieldTokensDeducted, field.TypeInt64, value)
		_node.TokensDeducted = value
	}
	if value, ok := _c.mutation.DeductedFromPaid(); ok {
		_spec.SetField(tokentransaction.FieldDeductedFromPaid, field.TypeInt64, value)
		_node.DeductedFromPaid = value
	}
	if value, ok := _c.mutation.DeductedFromFree(); ok {
		_spec.SetField(tokentransaction.FieldDeductedFromFree, field.TypeInt64, value)
		_node.DeductedFromFree = value
	}
	if value, ok := _c.mutation.ProviderCostUsd(); ok {
		_spec.SetField(tokentransaction.FieldProviderCostUsd, field.TypeFloat64, value)
		_node.ProviderCostUsd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokentransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tokentransaction.AccountTable,
			Columns: []string{tokentransaction.AccountColumn},
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

// TokenTransactionCreateBulk is the builder for creating many TokenTransaction entities in bulk.
type TokenTransactionCreateBulk struct {
	config
	err      error
	builders []*TokenTransactionCreate
}

// Save creates the TokenTransaction entities in the database.
func (_c *TokenTransactionCreateBulk) Save(ctx context.Context) ([]*TokenTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenTransactionMutation)
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
func (_c *TokenTransactionCreateBulk) SaveX(ctx context.Context) []*TokenTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
