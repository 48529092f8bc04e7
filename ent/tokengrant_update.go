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
	"github.com/nexaai/nexa-backend/ent/tokengrant"
)

// TokenGrantUpdate is the builder for updating TokenGrant entities.
type TokenGrantUpdate struct {
	config
	hooks    []Hook
	mutation *TokenGrantMutation
}

// Where appends a list predicates to the TokenGrantUpdate builder.
func (_u *TokenGrantUpdate) Where(ps ...predicate.TokenGrant) *TokenGrantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *TokenGrantUpdate) SetAccountID(v int) *TokenGrantUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *TokenGrantUpdate) SetNillableAccountID(v *int) *TokenGrantUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *TokenGrantUpdate) SetTokens(v int64) *TokenGrantUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *TokenGrantUpdate) SetNillableTokens(v *int64) *TokenGrantUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *TokenGrantUpdate) AddTokens(v int64) *TokenGrantUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// SetPool sets the "pool" field.
func (_u *TokenGrantUpdate) SetPool(v tokengrant.Pool) *TokenGrantUpdate {
	_u.mutation.SetPool(v)
	return _u
}

// SetNillablePool sets the "pool" field if the given value is not nil.
func (_u *TokenGrantUpdate) SetNillablePool(v *tokengrant.Pool) *TokenGrantUpdate {
	if v != nil {
		_u.SetPool(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *TokenGrantUpdate) SetSource(v tokengrant.Source) *TokenGrantUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TokenGrantUpdate) SetNillableSource(v *tokengrant.Source) *TokenGrantUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExternalPaymentRef sets the "external_payment_ref" field.
func (_u *TokenGrantUpdate) SetExternalPaymentRef(v string) *TokenGrantUpdate {
	_u.mutation.SetExternalPaymentRef(v)
	return _u
}

// SetNillableExternalPaymentRef sets the "external_payment_ref" field if the given value is not nil.
func (_u *TokenGrantUpdate) SetNillableExternalPaymentRef(v *string) *TokenGrantUpdate {
	if v != nil {
		_u.SetExternalPaymentRef(*v)
	}
	return _u
}

// ClearExternalPaymentRef clears the value of the "external_payment_ref" field.
func (_u *TokenGrantUpdate) ClearExternalPaymentRef() *TokenGrantUpdate {
	_u.mutation.ClearExternalPaymentRef()
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *TokenGrantUpdate) SetAccount(v *Account) *TokenGrantUpdate {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the TokenGrantMutation object of the builder.
func (_u *TokenGrantUpdate) Mutation() *TokenGrantMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *TokenGrantUpdate) ClearAccount() *TokenGrantUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenGrantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenGrantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenGrantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenGrantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenGrantUpdate) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := tokengrant.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tokens(); ok {
		if err := tokengrant.TokensValidator(v); err != nil {
			return &ValidationError{Name: "tokens", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pool(); ok {
		if err := tokengrant.PoolValidator(v); err != nil {
			return &ValidationError{Name: "pool", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.pool": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := tokengrant.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.source": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenGrant.account"`)
	}
	return nil
}

func (_u *TokenGrantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokengrant.Table, tokengrant.Columns, sqlgraph.NewFieldSpec(tokengrant.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(tokengrant.FieldTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(tokengrant.FieldTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Pool(); ok {
		_spec.SetField(tokengrant.FieldPool, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(tokengrant.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalPaymentRef(); ok {
		_spec.SetField(tokengrant.FieldExternalPaymentRef, field.TypeString, value)
	}
	if _u.mutation.ExternalPaymentRefCleared() {
		_spec.ClearField(tokengrant.FieldExternalPaymentRef, field.TypeString)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokengrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenGrantUpdateOne is the builder for updating a single TokenGrant entity.
type TokenGrantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenGrantMutation
}

// SetAccountID sets the "account_id" field.
func (_u *TokenGrantUpdateOne) SetAccountID(v int) *TokenGrantUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *TokenGrantUpdateOne) SetNillableAccountID(v *int) *TokenGrantUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *TokenGrantUpdateOne) SetTokens(v int64) *TokenGrantUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *TokenGrantUpdateOne) SetNillableTokens(v *int64) *TokenGrantUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *TokenGrantUpdateOne) AddTokens(v int64) *TokenGrantUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// SetPool sets the "pool" field.
func (_u *TokenGrantUpdateOne) SetPool(v tokengrant.Pool) *TokenGrantUpdateOne {
	_u.mutation.SetPool(v)
	return _u
}

// SetNillablePool sets the "pool" field if the given value is not nil.
func (_u *TokenGrantUpdateOne) SetNillablePool(v *tokengrant.Pool) *TokenGrantUpdateOne {
	if v != nil {
		_u.SetPool(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *TokenGrantUpdateOne) SetSource(v tokengrant.Source) *TokenGrantUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TokenGrantUpdateOne) SetNillableSource(v *tokengrant.Source) *TokenGrantUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExternalPaymentRef sets the "external_payment_ref" field.
func (_u *TokenGrantUpdateOne) SetExternalPaymentRef(v string) *TokenGrantUpdateOne {
	_u.mutation.SetExternalPaymentRef(v)
	return _u
}

// SetNillableExternalPaymentRef sets the "external_payment_ref" field if the given value is not nil.
func (_u *TokenGrantUpdateOne) SetNillableExternalPaymentRef(v *string) *TokenGrantUpdateOne {
	if v != nil {
		_u.SetExternalPaymentRef(*v)
	}
	return _u
}

// ClearExternalPaymentRef clears the value of the "external_payment_ref" field.
func (_u *TokenGrantUpdateOne) ClearExternalPaymentRef() *TokenGrantUpdateOne {
	_u.mutation.ClearExternalPaymentRef()
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *TokenGrantUpdateOne) SetAccount(v *Account) *TokenGrantUpdateOne {
	return _u.SetAccountID(v.ID)
}

// Mutation returns the TokenGrantMutation object of the builder.
func (_u *TokenGrantUpdateOne) Mutation() *TokenGrantMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *TokenGrantUpdateOne) ClearAccount() *TokenGrantUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// Where appends a list predicates to the TokenGrantUpdate builder.
func (_u *TokenGrantUpdateOne) Where(ps ...predicate.TokenGrant) *TokenGrantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenGrantUpdateOne) Select(field string, fields ...string) *TokenGrantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenGrant entity.
func (_u *TokenGrantUpdateOne) Save(ctx context.Context) (*TokenGrant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenGrantUpdateOne) SaveX(ctx context.Context) *TokenGrant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenGrantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenGrantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenGrantUpdateOne) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := tokengrant.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tokens(); ok {
		if err := tokengrant.TokensValidator(v); err != nil {
			return &ValidationError{Name: "tokens", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pool(); ok {
		if err := tokengrant.PoolValidator(v); err != nil {
			return &ValidationError{Name: "pool", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.pool": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := tokengrant.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "TokenGrant.source": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenGrant.account"`)
	}
	return nil
}

func (_u *TokenGrantUpdateOne) sqlSave(ctx context.Context) (_node *TokenGrant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokengrant.Table, tokengrant.Columns, sqlgraph.NewFieldSpec(tokengrant.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenGrant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokengrant.FieldID)
		for _, f := range fields {
			if !tokengrant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokengrant.FieldID {
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
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(tokengrant.FieldTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(tokengrant.FieldTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Pool(); ok {
		_spec.SetField(tokengrant.FieldPool, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(tokengrant.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalPaymentRef(); ok {
		_spec.SetField(tokengrant.FieldExternalPaymentRef, field.TypeString, value)
	}
	if _u.mutation.ExternalPaymentRefCleared() {
		_spec.ClearField(tokengrant.FieldExternalPaymentRef, field.TypeString)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TokenGrant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokengrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
