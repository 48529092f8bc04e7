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
	"github.com/nexaai/nexa-backend/ent/tokentransaction"
)

// AccountCreate is the builder for creating a Account entity.
type AccountCreate struct {
	config
	mutation *AccountMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AccountCreate) SetUserID(v string) *AccountCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *AccountCreate) SetEmail(v string) *AccountCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *AccountCreate) SetNillableEmail(v *string) *AccountCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetFreeBalance sets the "free_balance" field.
func (_c *AccountCreate) SetFreeBalance(v int64) *AccountCreate {
	_c.mutation.SetFreeBalance(v)
	return _c
}

// SetNillableFreeBalance sets the "free_balance" field if the given value is not nil.
func (_c *AccountCreate) SetNillableFreeBalance(v *int64) *AccountCreate {
	if v != nil {
		_c.SetFreeBalance(*v)
	}
	return _c
}

// SetPaidBalance sets the "paid_balance" field.
func (_c *AccountCreate) SetPaidBalance(v int64) *AccountCreate {
	_c.mutation.SetPaidBalance(v)
	return _c
}

// SetNillablePaidBalance sets the "paid_balance" field if the given value is not nil.
func (_c *AccountCreate) SetNillablePaidBalance(v *int64) *AccountCreate {
	if v != nil {
		_c.SetPaidBalance(*v)
	}
	return _c
}

// SetDailyAllowance sets the "daily_allowance" field.
func (_c *AccountCreate) SetDailyAllowance(v int64) *AccountCreate {
	_c.mutation.SetDailyAllowance(v)
	return _c
}

// SetNillableDailyAllowance sets the "daily_allowance" field if the given value is not nil.
func (_c *AccountCreate) SetNillableDailyAllowance(v *int64) *AccountCreate {
	if v != nil {
		_c.SetDailyAllowance(*v)
	}
	return _c
}

// SetLastRefreshAt sets the "last_refresh_at" field.
func (_c *AccountCreate) SetLastRefreshAt(v time.Time) *AccountCreate {
	_c.mutation.SetLastRefreshAt(v)
	return _c
}

// SetNillableLastRefreshAt sets the "last_refresh_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableLastRefreshAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetLastRefreshAt(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *AccountCreate) SetTier(v account.Tier) *AccountCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *AccountCreate) SetNillableTier(v *account.Tier) *AccountCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetIsPremium sets the "is_premium" field.
func (_c *AccountCreate) SetIsPremium(v bool) *AccountCreate {
	_c.mutation.SetIsPremium(v)
	return _c
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_c *AccountCreate) SetNillableIsPremium(v *bool) *AccountCreate {
	if v != nil {
		_c.SetIsPremium(*v)
	}
	return _c
}

// SetIsPaid sets the "is_paid" field.
func (_c *AccountCreate) SetIsPaid(v bool) *AccountCreate {
	_c.mutation.SetIsPaid(v)
	return _c
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_c *AccountCreate) SetNillableIsPaid(v *bool) *AccountCreate {
	if v != nil {
		_c.SetIsPaid(*v)
	}
	return _c
}

// SetIsTokenUser sets the "is_token_user" field.
func (_c *AccountCreate) SetIsTokenUser(v bool) *AccountCreate {
	_c.mutation.SetIsTokenUser(v)
	return _c
}

// SetNillableIsTokenUser sets the "is_token_user" field if the given value is not nil.
func (_c *AccountCreate) SetNillableIsTokenUser(v *bool) *AccountCreate {
	if v != nil {
		_c.SetIsTokenUser(*v)
	}
	return _c
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_c *AccountCreate) SetStripeCustomerID(v string) *AccountCreate {
	_c.mutation.SetStripeCustomerID(v)
	return _c
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_c *AccountCreate) SetNillableStripeCustomerID(v *string) *AccountCreate {
	if v != nil {
		_c.SetStripeCustomerID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AccountCreate) SetCreatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableCreatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AccountCreate) SetUpdatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableUpdatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddTransactionIDs adds the "transactions" edge to the TokenTransaction entity by IDs.
func (_c *AccountCreate) AddTransactionIDs(ids ...int) *AccountCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the TokenTransaction entity.
func (_c *AccountCreate) AddTransactions(v ...*TokenTransaction) *AccountCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// AddGrantIDs adds the "grants" edge to the TokenGrant entity by IDs.
func (_c *AccountCreate) AddGrantIDs(ids ...int) *AccountCreate {
	_c.mutation.AddGrantIDs(ids...)
	return _c
}

// AddGrants adds the "grants" edges to the TokenGrant entity.
func (_c *AccountCreate) AddGrants(v ...*TokenGrant) *AccountCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGrantIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_c *AccountCreate) Mutation() *AccountMutation {
	return _c.mutation
}

// Save creates the Account in the database.
func (_c *AccountCreate) Save(ctx context.Context) (*Account, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccountCreate) SaveX(ctx context.Context) *Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccountCreate) defaults() {
	if _, ok := _c.mutation.FreeBalance(); !ok {
		v := account.DefaultFreeBalance
		_c.mutation.SetFreeBalance(v)
	}
	if _, ok := _c.mutation.PaidBalance(); !ok {
		v := account.DefaultPaidBalance
		_c.mutation.SetPaidBalance(v)
	}
	if _, ok := _c.mutation.DailyAllowance(); !ok {
		v := account.DefaultDailyAllowance
		_c.mutation.SetDailyAllowance(v)
	}
	if _, ok := _c.mutation.LastRefreshAt(); !ok {
		v := account.DefaultLastRefreshAt()
		_c.mutation.SetLastRefreshAt(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := account.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.IsPremium(); !ok {
		v := account.DefaultIsPremium
		_c.mutation.SetIsPremium(v)
	}
	if _, ok := _c.mutation.IsPaid(); !ok {
		v := account.DefaultIsPaid
		_c.mutation.SetIsPaid(v)
	}
	if _, ok := _c.mutation.IsTokenUser(); !ok {
		v := account.DefaultIsTokenUser
		_c.mutation.SetIsTokenUser(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := account.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := account.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccountCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Account.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := account.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Account.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FreeBalance(); !ok {
		return &ValidationError{Name: "free_balance", err: errors.New(`ent: missing required field "Account.free_balance"`)}
	}
	if v, ok := _c.mutation.FreeBalance(); ok {
		if err := account.FreeBalanceValidator(v); err != nil {
			return &ValidationError{Name: "free_balance", err: fmt.Errorf(`ent: validator failed for field "Account.free_balance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaidBalance(); !ok {
		return &ValidationError{Name: "paid_balance", err: errors.New(`ent: missing required field "Account.paid_balance"`)}
	}
	if v, ok := _c.mutation.PaidBalance(); ok {
		if err := account.PaidBalanceValidator(v); err != nil {
			return &ValidationError{Name: "paid_balance", err: fmt.Errorf(`ent: validator failed for field "Account.paid_balance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyAllowance(); !ok {
		return &ValidationError{Name: "daily_allowance", err: errors.New(`ent: missing required field "Account.daily_allowance"`)}
	}
	if v, ok := _c.mutation.DailyAllowance(); ok {
		if err := account.DailyAllowanceValidator(v); err != nil {
			return &ValidationError{Name: "daily_allowance", err: fmt.Errorf(`ent: validator failed for field "Account.daily_allowance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastRefreshAt(); !ok {
		return &ValidationError{Name: "last_refresh_at", err: errors.New(`ent: missing required field "Account.last_refresh_at"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Account.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := account.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Account.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPremium(); !ok {
		return &ValidationError{Name: "is_premium", err: errors.New(`ent: missing required field "Account.is_premium"`)}
	}
	if _, ok := _c.mutation.IsPaid(); !ok {
		return &ValidationError{Name: "is_paid", err: errors.New(`ent: missing required field "Account.is_paid"`)}
	}
	if _, ok := _c.mutation.IsTokenUser(); !ok {
		return &ValidationError{Name: "is_token_user", err: errors.New(`ent: missing required field "Account.is_token_user"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Account.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Account.updated_at"`)}
	}
	return nil
}

func (_c *AccountCreate) sqlSave(ctx context.Context) (*Account, error) {
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

func (_c *AccountCreate) createSpec() (*Account, *sqlgraph.CreateSpec) {
	var (
		_node = &Account{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(account.Table, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(account.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FreeBalance(); ok {
		_spec.SetField(account.FieldFreeBalance, field.TypeInt64, value)
		_node.FreeBalance = value
	}
	if value, ok := _c.mutation.PaidBalance(); ok {
		_spec.SetField(account.FieldPaidBalance, field.TypeInt64, value)
		_node.PaidBalance = value
	}
	if value, ok := _c.mutation.DailyAllowance(); ok {
		_spec.SetField(account.FieldDailyAllowance, field.TypeInt64, value)
		_node.DailyAllowance = value
	}
	if value, ok := _c.mutation.LastRefreshAt(); ok {
		_spec.SetField(account.FieldLastRefreshAt, field.TypeTime, value)
		_node.LastRefreshAt = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(account.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.IsPremium(); ok {
		_spec.SetField(account.FieldIsPremium, field.TypeBool, value)
		_node.IsPremium = value
	}
	if value, ok := _c.mutation.IsPaid(); ok {
		_spec.SetField(account.FieldIsPaid, field.TypeBool, value)
		_node.IsPaid = value
	}
	if value, ok := _c.mutation.IsTokenUser(); ok {
		_spec.SetField(account.FieldIsTokenUser, field.TypeBool, value)
		_node.IsTokenUser = value
	}
	if value, ok := _c.mutation.StripeCustomerID(); ok {
		_spec.SetField(account.FieldStripeCustomerID, field.TypeString, value)
		_node.StripeCustomerID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.TransactionsTable,
			Columns: []string{account.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokentransaction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.GrantsTable,
			Columns: []string{account.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokengrant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AccountCreateBulk is the builder for creating many Account entities in bulk.
type AccountCreateBulk struct {
	config
	err      error
	builders []*AccountCreate
}

// Save creates the Account entities in the database.
func (_c *AccountCreateBulk) Save(ctx context.Context) ([]*Account, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Account, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountMutation)
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
func (_c *AccountCreateBulk) SaveX(ctx context.Context) []*Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
