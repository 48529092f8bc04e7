// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/predicate"
	"github.com/nexaai/nexa-backend/ent/tokentransaction"
)

// TokenTransactionUpdate is the builder for updating TokenTransaction entities.
type TokenTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TokenTransactionMutation
}

// Where appends a list predicates to the TokenTransactionUpdate builder.
func (_u *TokenTransactionUpdate) Where(ps ...predicate.TokenTransaction) *TokenTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *TokenTransactionUpdate) SetAccountID(v int) *TokenTransactionUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableAccountID(v *int) *TokenTransactionUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *TokenTransactionUpdate) SetModelID(v string) *TokenTransactionUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableModelID(v *string) *TokenTransactionUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *TokenTransactionUpdate) SetProvider(v string) *TokenTransactionUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableProvider(v *string) *TokenTransactionUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *TokenTransactionUpdate) ClearProvider() *TokenTransactionUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetTokensDeducted sets the "tokens_deducted" field.
func (_u *TokenTransactionUpdate) SetTokensDeducted(v int64) *TokenTransactionUpdate {
	_u.mutation.ResetTokensDeducted()
	_u.mutation.SetTokensDeducted(v)
	return _u
}

// SetNillableTokensDeducted sets the "tokens_deducted" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableTokensDeducted(v *int64) *TokenTransactionUpdate {
	if v != nil {
		_u.SetTokensDeducted(*v)
	}
	return _u
}

// AddTokensDeducted adds value to the "tokens_deducted" field.
func (_u *TokenTransactionUpdate) AddTokensDeducted(v int64) *TokenTransactionUpdate {
	_u.mutation.AddTokensDeducted(v)
	return _u
}

// SetDeductedFromPaid sets the "deducted_from_paid" field.
func (_u *TokenTransactionUpdate) SetDeductedFromPaid(v int64) *TokenTransactionUpdate {
	_u.mutation.ResetDeductedFromPaid()
	_u.mutation.SetDeductedFromPaid(v)
	return _u
}

// SetNillableDeductedFromPaid sets the "deducted_from_paid" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableDeductedFromPaid(v *int64) *TokenTransactionUpdate {
	if v != nil {
		_u.SetDeductedFromPaid(*v)
	}
	return _u
}

// AddDeductedFromPaid adds value to the "deducted_from_paid" field.
func (_u *TokenTransactionUpdate) AddDeductedFromPaid(v int64) *TokenTransactionUpdate {
	_u.mutation.AddDeductedFromPaid(v)
	return _u
}

// SetDeductedFromFree sets the "deducted_from_free" field.
func (_u *TokenTransactionUpdate) SetDeductedFromFree(v int64) *TokenTransactionUpdate {
	_u.mutation.ResetDeductedFromFree()
	_u.mutation.SetDeductedFromFree(v)
	return _u
}

// SetNillableDeductedFromFree sets the "deducted_from_free" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableDeductedFromFree(v *int64) *TokenTransactionUpdate {
	if v != nil {
		_u.SetDeductedFromFree(*v)
	}
	return _u
}

// AddDeductedFromFree adds value to the "deducted_from_free" field.
func (_u *TokenTransactionUpdate) AddDeductedFromFree(v int64) *TokenTransactionUpdate {
	_u.mutation.AddDeductedFromFree(v)
	return _u
}

// SetProviderCostUsd sets the "provider_cost_usd" field.
func (_u *TokenTransactionUpdate) SetProviderCostUsd(v float64) *TokenTransactionUpdate {
	_u.mutation.ResetProviderCostUsd()
	_u.mutation.SetProviderCostUsd(v)
	return _u
}

// SetNillableProviderCostUsd sets the "provider_cost_usd" field if the given value is not nil.
func (_u *TokenTransactionUpdate) SetNillableProviderCostUsd(v *float64) *TokenTransactionUpdate {
	if v != nil {
		_u.SetProviderCostUsd(*v)
	}
	return _u
}

// AddProviderCostUsd adds value to the "provider_cost_usd" field.
func (_u *TokenTransactionUpdate) AddProviderCostUsd(v float64) *TokenTransactionUpdate {
	_u.mutation.AddProviderCostUsd(v)
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *TokenTransactionUpdate) SetAccount(v *Account) *TokenTransactionUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the TokenTransactionMutation object of the builder.
func (_u *TokenTransactionUpdate) Mutation() *TokenTransactionMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *TokenTransactionUpdate) ClearAccount() *TokenTransactionUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenTransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenTransactionUpdate) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := tokentransaction.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelID(); ok {
		if err := tokentransaction.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.model_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensDeducted(); ok {
		if err := tokentransaction.TokensDeductedValidator(v); err != nil {
			return &ValidationError{Name: "tokens_deducted", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.tokens_deducted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeductedFromPaid(); ok {
		if err := tokentransaction.DeductedFromPaidValidator(v); err != nil {
			return &ValidationError{Name: "deducted_from_paid", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.deducted_from_paid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeductedFromFree(); ok {
		if err := tokentransaction.DeductedFromFreeValidator(v); err != nil {
			return &ValidationError{Name: "deducted_from_free", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.deducted_from_free": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenTransaction.account"`)
	}
	return nil
}

func (_u *TokenTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokentransaction.Table, tokentransaction.Columns, sqlgraph.NewFieldSpec(tokentransaction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(tokentransaction.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(tokentransaction.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(tokentransaction.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.TokensDeducted(); ok {
		_spec.SetField(tokentransaction.FieldTokensDeducted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensDeducted(); ok {
		_spec.AddField(tokentransaction.FieldTokensDeducted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DeductedFromPaid(); ok {
		_spec.SetField(tokentransaction.FieldDeductedFromPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeductedFromPaid(); ok {
		_spec.AddField(tokentransaction.FieldDeductedFromPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DeductedFromFree(); ok {
		_spec.SetField(tokentransaction.FieldDeductedFromFree, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeductedFromFree(); ok {
		_spec.AddField(tokentransaction.FieldDeductedFromFree, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProviderCostUsd(); ok {
		_spec.SetField(tokentransaction.FieldProviderCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProviderCostUsd(); ok {
		_spec.AddField(tokentransaction.FieldProviderCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokentransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenTransactionUpdateOne is the builder for updating a single TokenTransaction entity.
type TokenTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenTransactionMutation
}

// SetAccountID sets the "account_id" field.
func (_u *TokenTransactionUpdateOne) SetAccountID(v int) *TokenTransactionUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableAccountID(v *int) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *TokenTransactionUpdateOne) SetModelID(v string) *TokenTransactionUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableModelID(v *string) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *TokenTransactionUpdateOne) SetProvider(v string) *TokenTransactionUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableProvider(v *string) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *TokenTransactionUpdateOne) ClearProvider() *TokenTransactionUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetTokensDeducted sets the "tokens_deducted" field.
func (_u *TokenTransactionUpdateOne) SetTokensDeducted(v int64) *TokenTransactionUpdateOne {
	_u.mutation.ResetTokensDeducted()
	_u.mutation.SetTokensDeducted(v)
	return _u
}

// SetNillableTokensDeducted sets the "tokens_deducted" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableTokensDeducted(v *int64) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetTokensDeducted(*v)
	}
	return _u
}

// AddTokensDeducted adds value to the "tokens_deducted" field.
func (_u *TokenTransactionUpdateOne) AddTokensDeducted(v int64) *TokenTransactionUpdateOne {
	_u.mutation.AddTokensDeducted(v)
	return _u
}

// SetDeductedFromPaid sets the "deducted_from_paid" field.
func (_u *TokenTransactionUpdateOne) SetDeductedFromPaid(v int64) *TokenTransactionUpdateOne {
	_u.mutation.ResetDeductedFromPaid()
	_u.mutation.SetDeductedFromPaid(v)
	return _u
}

// SetNillableDeductedFromPaid sets the "deducted_from_paid" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableDeductedFromPaid(v *int64) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetDeductedFromPaid(*v)
	}
	return _u
}

// AddDeductedFromPaid adds value to the "deducted_from_paid" field.
func (_u *TokenTransactionUpdateOne) AddDeductedFromPaid(v int64) *TokenTransactionUpdateOne {
	_u.mutation.AddDeductedFromPaid(v)
	return _u
}

// SetDeductedFromFree sets the "deducted_from_free" field.
func (_u *TokenTransactionUpdateOne) SetDeductedFromFree(v int64) *TokenTransactionUpdateOne {
	_u.mutation.ResetDeductedFromFree()
	_u.mutation.SetDeductedFromFree(v)
	return _u
}

// SetNillableDeductedFromFree sets the "deducted_from_free" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableDeductedFromFree(v *int64) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetDeductedFromFree(*v)
	}
	return _u
}

// AddDeductedFromFree adds value to the "deducted_from_free" field.
func (_u *TokenTransactionUpdateOne) AddDeductedFromFree(v int64) *TokenTransactionUpdateOne {
	_u.mutation.AddDeductedFromFree(v)
	return _u
}

// SetProviderCostUsd sets the "provider_cost_usd" field.
func (_u *TokenTransactionUpdateOne) SetProviderCostUsd(v float64) *TokenTransactionUpdateOne {
	_u.mutation.ResetProviderCostUsd()
	_u.mutation.SetProviderCostUsd(v)
	return _u
}

// SetNillableProviderCostUsd sets the "provider_cost_usd" field if the given value is not nil.
func (_u *TokenTransactionUpdateOne) SetNillableProviderCostUsd(v *float64) *TokenTransactionUpdateOne {
	if v != nil {
		_u.SetProviderCostUsd(*v)
	}
	return _u
}

// AddProviderCostUsd adds value to the "provider_cost_usd" field.
func (_u *TokenTransactionUpdateOne) AddProviderCostUsd(v float64) *TokenTransactionUpdateOne {
	_u.mutation.AddProviderCostUsd(v)
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *TokenTransactionUpdateOne) SetAccount(v *Account) *TokenTransactionUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the TokenTransactionMutation object of the builder.
func (_u *TokenTransactionUpdateOne) Mutation() *TokenTransactionMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *TokenTransactionUpdateOne) ClearAccount() *TokenTransactionUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the TokenTransactionUpdate builder.
func (_u *TokenTransactionUpdateOne) Where(ps ...predicate.TokenTransaction) *TokenTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenTransactionUpdateOne) Select(field string, fields ...string) *TokenTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenTransaction entity.
func (_u *TokenTransactionUpdateOne) Save(ctx context.Context) (*TokenTransaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenTransactionUpdateOne) SaveX(ctx context.Context) *TokenTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := tokentransaction.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelID(); ok {
		if err := tokentransaction.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.model_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensDeducted(); ok {
		if err := tokentransaction.TokensDeductedValidator(v); err != nil {
			return &ValidationError{Name: "tokens_deducted", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.tokens_deducted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeductedFromPaid(); ok {
		if err := tokentransaction.DeductedFromPaidValidator(v); err != nil {
			return &ValidationError{Name: "deducted_from_paid", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.deducted_from_paid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeductedFromFree(); ok {
		if err := tokentransaction.DeductedFromFreeValidator(v); err != nil {
			return &ValidationError{Name: "deducted_from_free", err: fmt.Errorf(`ent: validator failed for field "TokenTransaction.deducted_from_free": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenTransaction.account"`)
	}
	return nil
}

func (_u *TokenTransactionUpdateOne) sqlSave(ctx context.Context) (_node *TokenTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokentransaction.Table, tokentransaction.Columns, sqlgraph.NewFieldSpec(tokentransaction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokentransaction.FieldID)
		for _, f := range fields {
			if !tokentransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokentransaction.FieldID {
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
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(tokentransaction.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(tokentransaction.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(tokentransaction.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.TokensDeducted(); ok {
		_spec.SetField(tokentransaction.FieldTokensDeducted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensDeducted(); ok {
		_spec.AddField(tokentransaction.FieldTokensDeducted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DeductedFromPaid(); ok {
		_spec.SetField(tokentransaction.FieldDeductedFromPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeductedFromPaid(); ok {
		_spec.AddField(tokentransaction.FieldDeductedFromPaid, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DeductedFromFree(); ok {
		_spec.SetField(tokentransaction.FieldDeductedFromFree, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeductedFromFree(); ok {
		_spec.AddField(tokentransaction.FieldDeductedFromFree, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProviderCostUsd(); ok {
		_spec.SetField(tokentransaction.FieldProviderCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProviderCostUsd(); ok {
		_spec.AddField(tokentransaction.FieldProviderCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TokenTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokentransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
