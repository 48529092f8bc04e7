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
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/predicate"
	"github.com/nexaai/nexa-backend/ent/tokengrant"
	"github.com/nexaai/nexa-backend/ent/tokentransaction"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *AccountUpdate) SetEmail(v string) *AccountUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableEmail(v *string) *AccountUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *AccountUpdate) ClearEmail() *AccountUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetFreeBalance sets the "free_balance" field.
func (_u *AccountUpdate) SetFreeBalance(v int64) *AccountUpdate {
	_u.mutation.ResetFreeBalance()
	_u.mutation.SetFreeBalance(v)
	return _u
}

// SetNillableFreeBalance sets the "free_balance" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableFreeBalance(v *int64) *AccountUpdate {
	if v != nil {
		_u.SetFreeBalance(*v)
	}
	return _u
}

// AddFreeBalance adds value to the "free_balance" field.
func (_u *AccountUpdate) AddFreeBalance(v int64) *AccountUpdate {
	_u.mutation.AddFreeBalance(v)
	return _u
}

// SetPaidBalance sets the "paid_balance" field.
func (_u *AccountUpdate) SetPaidBalance(v int64) *AccountUpdate {
	_u.mutation.ResetPaidBalance()
	_u.mutation.SetPaidBalance(v)
	return _u
}

// SetNillablePaidBalance sets the "paid_balance" field if the given value is not nil.
func (_u *AccountUpdate) SetNillablePaidBalance(v *int64) *AccountUpdate {
	if v != nil {
		_u.SetPaidBalance(*v)
	}
	return _u
}

// AddPaidBalance adds value to the "paid_balance" field.
func (_u *AccountUpdate) AddPaidBalance(v int64) *AccountUpdate {
	_u.mutation.AddPaidBalance(v)
	return _u
}

// SetDailyAllowance sets the "daily_allowance" field.
func (_u *AccountUpdate) SetDailyAllowance(v int64) *AccountUpdate {
	_u.mutation.ResetDailyAllowance()
	_u.mutation.SetDailyAllowance(v)
	return _u
}

// SetNillableDailyAllowance sets the "daily_allowance" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableDailyAllowance(v *int64) *AccountUpdate {
	if v != nil {
		_u.SetDailyAllowance(*v)
	}
	return _u
}

// AddDailyAllowance adds value to the "daily_allowance" field.
func (_u *AccountUpdate) AddDailyAllowance(v int64) *AccountUpdate {
	_u.mutation.AddDailyAllowance(v)
	return _u
}

// SetLastRefreshAt sets the "last_refresh_at" field.
func (_u *AccountUpdate) SetLastRefreshAt(v time.Time) *AccountUpdate {
	_u.mutation.SetLastRefreshAt(v)
	return _u
}

// SetNillableLastRefreshAt sets the "last_refresh_at" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableLastRefreshAt(v *time.Time) *AccountUpdate {
	if v != nil {
		_u.SetLastRefreshAt(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AccountUpdate) SetTier(v account.Tier) *AccountUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableTier(v *account.Tier) *AccountUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *AccountUpdate) SetIsPremium(v bool) *AccountUpdate {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableIsPremium(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetIsPaid sets the "is_paid" field.
func (_u *AccountUpdate) SetIsPaid(v bool) *AccountUpdate {
	_u.mutation.SetIsPaid(v)
	return _u
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableIsPaid(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetIsPaid(*v)
	}
	return _u
}

// SetIsTokenUser sets the "is_token_user" field.
func (_u *AccountUpdate) SetIsTokenUser(v bool) *AccountUpdate {
	_u.mutation.SetIsTokenUser(v)
	return _u
}

// SetNillableIsTokenUser sets the "is_token_user" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableIsTokenUser(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetIsTokenUser(*v)
	}
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *AccountUpdate) SetStripeCustomerID(v string) *AccountUpdate {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableStripeCustomerID(v *string) *AccountUpdate {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *AccountUpdate) ClearStripeCustomerID() *AccountUpdate {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdate) SetUpdatedAt(v time.Time) *AccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the TokenTransaction entity by IDs.
func (_u *AccountUpdate) AddTransactionIDs(ids ...int) *AccountUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the TokenTransaction entity.
func (_u *AccountUpdate) AddTransactions(v ...*TokenTransaction) *AccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// AddGrantIDs adds the "grants" edge to the TokenGrant entity by IDs.
func (_u *AccountUpdate) AddGrantIDs(ids ...int) *AccountUpdate {
	_u.mutation.AddGrantIDs(ids...)
	return _u
}

// AddGrants adds the "grants" edges to the TokenGrant entity.
func (_u *AccountUpdate) AddGrants(v ...*TokenGrant) *AccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrantIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the TokenTransaction entity.
func (_u *AccountUpdate) ClearTransactions() *AccountUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to TokenTransaction entities by IDs.
func (_u *AccountUpdate) RemoveTransactionIDs(ids ...int) *AccountUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to TokenTransaction entities.
func (_u *AccountUpdate) RemoveTransactions(v ...*TokenTransaction) *AccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// ClearGrants clears all "grants" edges to the TokenGrant entity.
func (_u *AccountUpdate) ClearGrants() *AccountUpdate {
	_u.mutation.ClearGrants()
	return _u
}

// RemoveGrantIDs removes the "grants" edge to TokenGrant entities by IDs.
func (_u *AccountUpdate) RemoveGrantIDs(ids ...int) *AccountUpdate {
	_u.mutation.RemoveGrantIDs(ids...)
	return _u
}

// RemoveGrants removes "grants" edges to TokenGrant entities.
func (_u *AccountUpdate) RemoveGrants(v ...*TokenGrant) *AccountUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdate) check() error {
	if v, ok := _u.mutation.FreeBalance(); ok {
		if err := account.FreeBalanceValidator(v); err != nil {
			return &ValidationError{Name: "free_balance", err: fmt.Errorf(`ent: validator failed for field "Account.free_balance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaidBalance(); ok {
		if err := account.PaidBalanceValidator(v); err != nil {
			return &ValidationError{Name: "paid_balance", err: fmt.Errorf(`ent: validator failed for field "Account.paid_balance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyAllowance(); ok {
		if err := account.DailyAllowanceValidator(v); err != nil {
			return &ValidationError{Name: "daily_allowance", err: fmt.Errorf(`ent: validator failed for field "Account.daily_allowance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := account.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Account.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(account.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.FreeBalance(); ok {
		_spec.SetField(account.FieldFreeBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFreeBalance(); ok {
		_spec.AddField(account.FieldFreeBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PaidBalance(); ok {
		_spec.SetField(account.FieldPaidBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPaidBalance(); ok {
		_spec.AddField(account.FieldPaidBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DailyAllowance(); ok {
		_spec.SetField(account.FieldDailyAllowance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDailyAllowance(); ok {
		_spec.AddField(account.FieldDailyAllowance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastRefreshAt(); ok {
		_spec.SetField(account.FieldLastRefreshAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(account.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(account.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsPaid(); ok {
		_spec.SetField(account.FieldIsPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsTokenUser(); ok {
		_spec.SetField(account.FieldIsTokenUser, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(account.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(account.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrantsIDs(); len(nodes) > 0 && !_u.mutation.GrantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetEmail sets the "email" field.
func (_u *AccountUpdateOne) SetEmail(v string) *AccountUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableEmail(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *AccountUpdateOne) ClearEmail() *AccountUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetFreeBalance sets the "free_balance" field.
func (_u *AccountUpdateOne) SetFreeBalance(v int64) *AccountUpdateOne {
	_u.mutation.ResetFreeBalance()
	_u.mutation.SetFreeBalance(v)
	return _u
}

// SetNillableFreeBalance sets the "free_balance" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableFreeBalance(v *int64) *AccountUpdateOne {
	if v != nil {
		_u.SetFreeBalance(*v)
	}
	return _u
}

// AddFreeBalance adds value to the "free_balance" field.
func (_u *AccountUpdateOne) AddFreeBalance(v int64) *AccountUpdateOne {
	_u.mutation.AddFreeBalance(v)
	return _u
}

// SetPaidBalance sets the "paid_balance" field.
func (_u *AccountUpdateOne) SetPaidBalance(v int64) *AccountUpdateOne {
	_u.mutation.ResetPaidBalance()
	_u.mutation.SetPaidBalance(v)
	return _u
}

// SetNillablePaidBalance sets the "paid_balance" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillablePaidBalance(v *int64) *AccountUpdateOne {
	if v != nil {
		_u.SetPaidBalance(*v)
	}
	return _u
}

// AddPaidBalance adds value to the "paid_balance" field.
func (_u *AccountUpdateOne) AddPaidBalance(v int64) *AccountUpdateOne {
	_u.mutation.AddPaidBalance(v)
	return _u
}

// SetDailyAllowance sets the "daily_allowance" field.
func (_u *AccountUpdateOne) SetDailyAllowance(v int64) *AccountUpdateOne {
	_u.mutation.ResetDailyAllowance()
	_u.mutation.SetDailyAllowance(v)
	return _u
}

// SetNillableDailyAllowance sets the "daily_allowance" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableDailyAllowance(v *int64) *AccountUpdateOne {
	if v != nil {
		_u.SetDailyAllowance(*v)
	}
	return _u
}

// AddDailyAllowance adds value to the "daily_allowance" field.
func (_u *AccountUpdateOne) AddDailyAllowance(v int64) *AccountUpdateOne {
	_u.mutation.AddDailyAllowance(v)
	return _u
}

// SetLastRefreshAt sets the "last_refresh_at" field.
func (_u *AccountUpdateOne) SetLastRefreshAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetLastRefreshAt(v)
	return _u
}

// SetNillableLastRefreshAt sets the "last_refresh_at" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableLastRefreshAt(v *time.Time) *AccountUpdateOne {
	if v != nil {
		_u.SetLastRefreshAt(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AccountUpdateOne) SetTier(v account.Tier) *AccountUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableTier(v *account.Tier) *AccountUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *AccountUpdateOne) SetIsPremium(v bool) *AccountUpdateOne {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableIsPremium(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetIsPaid sets the "is_paid" field.
func (_u *AccountUpdateOne) SetIsPaid(v bool) *AccountUpdateOne {
	_u.mutation.SetIsPaid(v)
	return _u
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableIsPaid(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetIsPaid(*v)
	}
	return _u
}

// SetIsTokenUser sets the "is_token_user" field.
func (_u *AccountUpdateOne) SetIsTokenUser(v bool) *AccountUpdateOne {
	_u.mutation.SetIsTokenUser(v)
	return _u
}

// SetNillableIsTokenUser sets the "is_token_user" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableIsTokenUser(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetIsTokenUser(*v)
	}
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *AccountUpdateOne) SetStripeCustomerID(v string) *AccountUpdateOne {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableStripeCustomerID(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *AccountUpdateOne) ClearStripeCustomerID() *AccountUpdateOne {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdateOne) SetUpdatedAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the TokenTransaction entity by IDs.
func (_u *AccountUpdateOne) AddTransactionIDs(ids ...int) *AccountUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the TokenTransaction entity.
func (_u *AccountUpdateOne) AddTransactions(v ...*TokenTransaction) *AccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// AddGrantIDs adds the "grants" edge to the TokenGrant entity by IDs.
func (_u *AccountUpdateOne) AddGrantIDs(ids ...int) *AccountUpdateOne {
	_u.mutation.AddGrantIDs(ids...)
	return _u
}

// AddGrants adds the "grants" edges to the TokenGrant entity.
func (_u *AccountUpdateOne) AddGrants(v ...*TokenGrant) *AccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrantIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the TokenTransaction entity.
func (_u *AccountUpdateOne) ClearTransactions() *AccountUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to TokenTransaction entities by IDs.
func (_u *AccountUpdateOne) RemoveTransactionIDs(ids ...int) *AccountUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to TokenTransaction entities.
func (_u *AccountUpdateOne) RemoveTransactions(v ...*TokenTransaction) *AccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// ClearGrants clears all "grants" edges to the TokenGrant entity.
func (_u *AccountUpdateOne) ClearGrants() *AccountUpdateOne {
	_u.mutation.ClearGrants()
	return _u
}

// RemoveGrantIDs removes the "grants" edge to TokenGrant entities by IDs.
func (_u *AccountUpdateOne) RemoveGrantIDs(ids ...int) *AccountUpdateOne {
	_u.mutation.RemoveGrantIDs(ids...)
	return _u
}

// RemoveGrants removes "grants" edges to TokenGrant entities.
func (_u *AccountUpdateOne) RemoveGrants(v ...*TokenGrant) *AccountUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrantIDs(ids...)
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdateOne) check() error {
	if v, ok := _u.mutation.FreeBalance(); ok {
		if err := account.FreeBalanceValidator(v); err != nil {
			return &ValidationError{Name: "free_balance", err: fmt.Errorf(`ent: validator failed for field "Account.free_balance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaidBalance(); ok {
		if err := account.PaidBalanceValidator(v); err != nil {
			return &ValidationError{Name: "paid_balance", err: fmt.Errorf(`ent: validator failed for field "Account.paid_balance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DailyAllowance(); ok {
		if err := account.DailyAllowanceValidator(v); err != nil {
			return &ValidationError{Name: "daily_allowance", err: fmt.Errorf(`ent: validator failed for field "Account.daily_allowance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := account.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Account.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(account.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.FreeBalance(); ok {
		_spec.SetField(account.FieldFreeBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFreeBalance(); ok {
		_spec.AddField(account.FieldFreeBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PaidBalance(); ok {
		_spec.SetField(account.FieldPaidBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPaidBalance(); ok {
		_spec.AddField(account.FieldPaidBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DailyAllowance(); ok {
		_spec.SetField(account.FieldDailyAllowance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDailyAllowance(); ok {
		_spec.AddField(account.FieldDailyAllowance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastRefreshAt(); ok {
		_spec.SetField(account.FieldLastRefreshAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(account.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(account.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsPaid(); ok {
		_spec.SetField(account.FieldIsPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsTokenUser(); ok {
		_spec.SetField(account.FieldIsTokenUser, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(account.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(account.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrantsIDs(); len(nodes) > 0 && !_u.mutation.GrantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
