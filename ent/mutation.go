// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/predicate"
	"github.com/nexaai/nexa-backend/ent/tokengrant"
	"github.com/nexaai/nexa-backend/ent/tokentransaction"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount          = "Account"
	TypeTokenGrant       = "TokenGrant"
	TypeTokenTransaction = "TokenTransaction"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *string
	email               *string
	free_balance        *int64
	addfree_balance     *int64
	paid_balance        *int64
	addpaid_balance     *int64
	daily_allowance     *int64
	adddaily_allowance  *int64
	last_refresh_at     *time.Time
	tier                *account.Tier
	is_premium          *bool
	is_paid             *bool
	is_token_user       *bool
	stripe_customer_id  *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	transactions        map[int]struct{}
	removedtransactions map[int]struct{}
	clearedtransactions bool
	grants              map[int]struct{}
	removedgrants       map[int]struct{}
	clearedgrants       bool
	done                bool
	oldValue            func(context.Context) (*Account, error)
	predicates          []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id int) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AccountMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AccountMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AccountMutation) ResetUserID() {
	m.user_id = nil
}

// SetEmail sets the "email" field.
func (m *AccountMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AccountMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *AccountMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[account.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *AccountMutation) EmailCleared() bool {
	_, ok := m.clearedFields[account.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *AccountMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, account.FieldEmail)
}

// SetFreeBalance sets the "free_balance" field.
func (m *AccountMutation) SetFreeBalance(i int64) {
	m.free_balance = &i
	m.addfree_balance = nil
}

// FreeBalance returns the value of the "free_balance" field in the mutation.
func (m *AccountMutation) FreeBalance() (r int64, exists bool) {
	v := m.free_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldFreeBalance returns the old "free_balance" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldFreeBalance(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreeBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreeBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreeBalance: %w", err)
	}
	return oldValue.FreeBalance, nil
}

// AddFreeBalance adds i to the "free_balance" field.
func (m *AccountMutation) AddFreeBalance(i int64) {
	if m.addfree_balance != nil {
		*m.addfree_balance += i
	} else {
		m.addfree_balance = &i
	}
}

// AddedFreeBalance returns the value that was added to the "free_balance" field in this mutation.
func (m *AccountMutation) AddedFreeBalance() (r int64, exists bool) {
	v := m.addfree_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetFreeBalance resets all changes to the "free_balance" field.
func (m *AccountMutation) ResetFreeBalance() {
	m.free_balance = nil
	m.addfree_balance = nil
}

// SetPaidBalance sets the "paid_balance" field.
func (m *AccountMutation) SetPaidBalance(i int64) {
	m.paid_balance = &i
	m.addpaid_balance = nil
}

// PaidBalance returns the value of the "paid_balance" field in the mutation.
func (m *AccountMutation) PaidBalance() (r int64, exists bool) {
	v := m.paid_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidBalance returns the old "paid_balance" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPaidBalance(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidBalance: %w", err)
	}
	return oldValue.PaidBalance, nil
}

// AddPaidBalance adds i to the "paid_balance" field.
func (m *AccountMutation) AddPaidBalance(i int64) {
	if m.addpaid_balance != nil {
		*m.addpaid_balance += i
	} else {
		m.addpaid_balance = &i
	}
}

// AddedPaidBalance returns the value that was added to the "paid_balance" field in this mutation.
func (m *AccountMutation) AddedPaidBalance() (r int64, exists bool) {
	v := m.addpaid_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetPaidBalance resets all changes to the "paid_balance" field.
func (m *AccountMutation) ResetPaidBalance() {
	m.paid_balance = nil
	m.addpaid_balance = nil
}

// SetDailyAllowance sets the "daily_allowance" field.
func (m *AccountMutation) SetDailyAllowance(i int64) {
	m.daily_allowance = &i
	m.adddaily_allowance = nil
}

// DailyAllowance returns the value of the "daily_allowance" field in the mutation.
func (m *AccountMutation) DailyAllowance() (r int64, exists bool) {
	v := m.daily_allowance
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyAllowance returns the old "daily_allowance" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldDailyAllowance(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyAllowance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyAllowance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyAllowance: %w", err)
	}
	return oldValue.DailyAllowance, nil
}

// AddDailyAllowance adds i to the "daily_allowance" field.
func (m *AccountMutation) AddDailyAllowance(i int64) {
	if m.adddaily_allowance != nil {
		*m.adddaily_allowance += i
	} else {
		m.adddaily_allowance = &i
	}
}

// AddedDailyAllowance returns the value that was added to the "daily_allowance" field in this mutation.
func (m *AccountMutation) AddedDailyAllowance() (r int64, exists bool) {
	v := m.adddaily_allowance
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyAllowance resets all changes to the "daily_allowance" field.
func (m *AccountMutation) ResetDailyAllowance() {
	m.daily_allowance = nil
	m.adddaily_allowance = nil
}

// SetLastRefreshAt sets the "last_refresh_at" field.
func (m *AccountMutation) SetLastRefreshAt(t time.Time) {
	m.last_refresh_at = &t
}

// LastRefreshAt returns the value of the "last_refresh_at" field in the mutation.
func (m *AccountMutation) LastRefreshAt() (r time.Time, exists bool) {
	v := m.last_refresh_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRefreshAt returns the old "last_refresh_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLastRefreshAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRefreshAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRefreshAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRefreshAt: %w", err)
	}
	return oldValue.LastRefreshAt, nil
}

// ResetLastRefreshAt resets all changes to the "last_refresh_at" field.
func (m *AccountMutation) ResetLastRefreshAt() {
	m.last_refresh_at = nil
}

// SetTier sets the "tier" field.
func (m *AccountMutation) SetTier(a account.Tier) {
	m.tier = &a
}

// Tier returns the value of the "tier" field in the mutation.
func (m *AccountMutation) Tier() (r account.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldTier(ctx context.Context) (v account.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *AccountMutation) ResetTier() {
	m.tier = nil
}

// SetIsPremium sets the "is_premium" field.
func (m *AccountMutation) SetIsPremium(b bool) {
	m.is_premium = &b
}

// IsPremium returns the value of the "is_premium" field in the mutation.
func (m *AccountMutation) IsPremium() (r bool, exists bool) {
	v := m.is_premium
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPremium returns the old "is_premium" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldIsPremium(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPremium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPremium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPremium: %w", err)
	}
	return oldValue.IsPremium, nil
}

// ResetIsPremium resets all changes to the "is_premium" field.
func (m *AccountMutation) ResetIsPremium() {
	m.is_premium = nil
}

// SetIsPaid sets the "is_paid" field.
func (m *AccountMutation) SetIsPaid(b bool) {
	m.is_paid = &b
}

// IsPaid returns the value of the "is_paid" field in the mutation.
func (m *AccountMutation) IsPaid() (r bool, exists bool) {
	v := m.is_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPaid returns the old "is_paid" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldIsPaid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPaid: %w", err)
	}
	return oldValue.IsPaid, nil
}

// ResetIsPaid resets all changes to the "is_paid" field.
func (m *AccountMutation) ResetIsPaid() {
	m.is_paid = nil
}

// SetIsTokenUser sets the "is_token_user" field.
func (m *AccountMutation) SetIsTokenUser(b bool) {
	m.is_token_user = &b
}

// IsTokenUser returns the value of the "is_token_user" field in the mutation.
func (m *AccountMutation) IsTokenUser() (r bool, exists bool) {
	v := m.is_token_user
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTokenUser returns the old "is_token_user" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldIsTokenUser(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTokenUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTokenUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTokenUser: %w", err)
	}
	return oldValue.IsTokenUser, nil
}

// ResetIsTokenUser resets all changes to the "is_token_user" field.
func (m *AccountMutation) ResetIsTokenUser() {
	m.is_token_user = nil
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (m *AccountMutation) SetStripeCustomerID(s string) {
	m.stripe_customer_id = &s
}

// StripeCustomerID returns the value of the "stripe_customer_id" field in the mutation.
func (m *AccountMutation) StripeCustomerID() (r string, exists bool) {
	v := m.stripe_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeCustomerID returns the old "stripe_customer_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldStripeCustomerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeCustomerID: %w", err)
	}
	return oldValue.StripeCustomerID, nil
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (m *AccountMutation) ClearStripeCustomerID() {
	m.stripe_customer_id = nil
	m.clearedFields[account.FieldStripeCustomerID] = struct{}{}
}

// StripeCustomerIDCleared returns if the "stripe_customer_id" field was cleared in this mutation.
func (m *AccountMutation) StripeCustomerIDCleared() bool {
	_, ok := m.clearedFields[account.FieldStripeCustomerID]
	return ok
}

// ResetStripeCustomerID resets all changes to the "stripe_customer_id" field.
func (m *AccountMutation) ResetStripeCustomerID() {
	m.stripe_customer_id = nil
	delete(m.clearedFields, account.FieldStripeCustomerID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTransactionIDs adds the "transactions" edge to the TokenTransaction entity by ids.
func (m *AccountMutation) AddTransactionIDs(ids ...int) {
	if m.transactions == nil {
		m.transactions = make(map[int]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the TokenTransaction entity.
func (m *AccountMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the TokenTransaction entity was cleared.
func (m *AccountMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the TokenTransaction entity by IDs.
func (m *AccountMutation) RemoveTransactionIDs(ids ...int) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the TokenTransaction entity.
func (m *AccountMutation) RemovedTransactionsIDs() (ids []int) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *AccountMutation) TransactionsIDs() (ids []int) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *AccountMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// AddGrantIDs adds the "grants" edge to the TokenGrant entity by ids.
func (m *AccountMutation) AddGrantIDs(ids ...int) {
	if m.grants == nil {
		m.grants = make(map[int]struct{})
	}
	for i := range ids {
		m.grants[ids[i]] = struct{}{}
	}
}

// ClearGrants clears the "grants" edge to the TokenGrant entity.
func (m *AccountMutation) ClearGrants() {
	m.clearedgrants = true
}

// GrantsCleared reports if the "grants" edge to the TokenGrant entity was cleared.
func (m *AccountMutation) GrantsCleared() bool {
	return m.clearedgrants
}

// RemoveGrantIDs removes the "grants" edge to the TokenGrant entity by IDs.
func (m *AccountMutation) RemoveGrantIDs(ids ...int) {
	if m.removedgrants == nil {
		m.removedgrants = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.grants, ids[i])
		m.removedgrants[ids[i]] = struct{}{}
	}
}

// RemovedGrants returns the removed IDs of the "grants" edge to the TokenGrant entity.
func (m *AccountMutation) RemovedGrantsIDs() (ids []int) {
	for id := range m.removedgrants {
		ids = append(ids, id)
	}
	return
}

// GrantsIDs returns the "grants" edge IDs in the mutation.
func (m *AccountMutation) GrantsIDs() (ids []int) {
	for id := range m.grants {
		ids = append(ids, id)
	}
	return
}

// ResetGrants resets all changes to the "grants" edge.
func (m *AccountMutation) ResetGrants() {
	m.grants = nil
	m.clearedgrants = false
	m.removedgrants = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, account.FieldUserID)
	}
	if m.email != nil {
		fields = append(fields, account.FieldEmail)
	}
	if m.free_balance != nil {
		fields = append(fields, account.FieldFreeBalance)
	}
	if m.paid_balance != nil {
		fields = append(fields, account.FieldPaidBalance)
	}
	if m.daily_allowance != nil {
		fields = append(fields, account.FieldDailyAllowance)
	}
	if m.last_refresh_at != nil {
		fields = append(fields, account.FieldLastRefreshAt)
	}
	if m.tier != nil {
		fields = append(fields, account.FieldTier)
	}
	if m.is_premium != nil {
		fields = append(fields, account.FieldIsPremium)
	}
	if m.is_paid != nil {
		fields = append(fields, account.FieldIsPaid)
	}
	if m.is_token_user != nil {
		fields = append(fields, account.FieldIsTokenUser)
	}
	if m.stripe_customer_id != nil {
		fields = append(fields, account.FieldStripeCustomerID)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldUserID:
		return m.UserID()
	case account.FieldEmail:
		return m.Email()
	case account.FieldFreeBalance:
		return m.FreeBalance()
	case account.FieldPaidBalance:
		return m.PaidBalance()
	case account.FieldDailyAllowance:
		return m.DailyAllowance()
	case account.FieldLastRefreshAt:
		return m.LastRefreshAt()
	case account.FieldTier:
		return m.Tier()
	case account.FieldIsPremium:
		return m.IsPremium()
	case account.FieldIsPaid:
		return m.IsPaid()
	case account.FieldIsTokenUser:
		return m.IsTokenUser()
	case account.FieldStripeCustomerID:
		return m.StripeCustomerID()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldUserID:
		return m.OldUserID(ctx)
	case account.FieldEmail:
		return m.OldEmail(ctx)
	case account.FieldFreeBalance:
		return m.OldFreeBalance(ctx)
	case account.FieldPaidBalance:
		return m.OldPaidBalance(ctx)
	case account.FieldDailyAllowance:
		return m.OldDailyAllowance(ctx)
	case account.FieldLastRefreshAt:
		return m.OldLastRefreshAt(ctx)
	case account.FieldTier:
		return m.OldTier(ctx)
	case account.FieldIsPremium:
		return m.OldIsPremium(ctx)
	case account.FieldIsPaid:
		return m.OldIsPaid(ctx)
	case account.FieldIsTokenUser:
		return m.OldIsTokenUser(ctx)
	case account.FieldStripeCustomerID:
		return m.OldStripeCustomerID(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case account.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case account.FieldFreeBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreeBalance(v)
		return nil
	case account.FieldPaidBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidBalance(v)
		return nil
	case account.FieldDailyAllowance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyAllowance(v)
		return nil
	case account.FieldLastRefreshAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRefreshAt(v)
		return nil
	case account.FieldTier:
		v, ok := value.(account.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case account.FieldIsPremium:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPremium(v)
		return nil
	case account.FieldIsPaid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPaid(v)
		return nil
	case account.FieldIsTokenUser:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTokenUser(v)
		return nil
	case account.FieldStripeCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeCustomerID(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	var fields []string
	if m.addfree_balance != nil {
		fields = append(fields, account.FieldFreeBalance)
	}
	if m.addpaid_balance != nil {
		fields = append(fields, account.FieldPaidBalance)
	}
	if m.adddaily_allowance != nil {
		fields = append(fields, account.FieldDailyAllowance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case account.FieldFreeBalance:
		return m.AddedFreeBalance()
	case account.FieldPaidBalance:
		return m.AddedPaidBalance()
	case account.FieldDailyAllowance:
		return m.AddedDailyAllowance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case account.FieldFreeBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFreeBalance(v)
		return nil
	case account.FieldPaidBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaidBalance(v)
		return nil
	case account.FieldDailyAllowance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyAllowance(v)
		return nil
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldEmail) {
		fields = append(fields, account.FieldEmail)
	}
	if m.FieldCleared(account.FieldStripeCustomerID) {
		fields = append(fields, account.FieldStripeCustomerID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldEmail:
		m.ClearEmail()
		return nil
	case account.FieldStripeCustomerID:
		m.ClearStripeCustomerID()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldUserID:
		m.ResetUserID()
		return nil
	case account.FieldEmail:
		m.ResetEmail()
		return nil
	case account.FieldFreeBalance:
		m.ResetFreeBalance()
		return nil
	case account.FieldPaidBalance:
		m.ResetPaidBalance()
		return nil
	case account.FieldDailyAllowance:
		m.ResetDailyAllowance()
		return nil
	case account.FieldLastRefreshAt:
		m.ResetLastRefreshAt()
		return nil
	case account.FieldTier:
		m.ResetTier()
		return nil
	case account.FieldIsPremium:
		m.ResetIsPremium()
		return nil
	case account.FieldIsPaid:
		m.ResetIsPaid()
		return nil
	case account.FieldIsTokenUser:
		m.ResetIsTokenUser()
		return nil
	case account.FieldStripeCustomerID:
		m.ResetStripeCustomerID()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.transactions != nil {
		edges = append(edges, account.EdgeTransactions)
	}
	if m.grants != nil {
		edges = append(edges, account.EdgeGrants)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeGrants:
		ids := make([]ent.Value, 0, len(m.grants))
		for id := range m.grants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtransactions != nil {
		edges = append(edges, account.EdgeTransactions)
	}
	if m.removedgrants != nil {
		edges = append(edges, account.EdgeGrants)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeGrants:
		ids := make([]ent.Value, 0, len(m.removedgrants))
		for id := range m.removedgrants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtransactions {
		edges = append(edges, account.EdgeTransactions)
	}
	if m.clearedgrants {
		edges = append(edges, account.EdgeGrants)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgeTransactions:
		return m.clearedtransactions
	case account.EdgeGrants:
		return m.clearedgrants
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgeTransactions:
		m.ResetTransactions()
		return nil
	case account.EdgeGrants:
		m.ResetGrants()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// TokenGrantMutation represents an operation that mutates the TokenGrant nodes in the graph.
type TokenGrantMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	tokens               *int64
	addtokens            *int64
	pool                 *tokengrant.Pool
	source               *tokengrant.Source
	external_payment_ref *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	account              *int
	clearedaccount       bool
	done                 bool
	oldValue             func(context.Context) (*TokenGrant, error)
	predicates           []predicate.TokenGrant
}

var _ ent.Mutation = (*TokenGrantMutation)(nil)

// tokengrantOption allows management of the mutation configuration using functional options.
type tokengrantOption func(*TokenGrantMutation)

// newTokenGrantMutation creates new mutation for the TokenGrant entity.
func newTokenGrantMutation(c config, op Op, opts ...tokengrantOption) *TokenGrantMutation {
	m := &TokenGrantMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenGrant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenGrantID sets the ID field of the mutation.
func withTokenGrantID(id int) tokengrantOption {
	return func(m *TokenGrantMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenGrant
		)
		m.oldValue = func(ctx context.Context) (*TokenGrant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenGrant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenGrant sets the old TokenGrant of the mutation.
func withTokenGrant(node *TokenGrant) tokengrantOption {
	return func(m *TokenGrantMutation) {
		m.oldValue = func(context.Context) (*TokenGrant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenGrantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenGrantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenGrantMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenGrantMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenGrant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *TokenGrantMutation) SetAccountID(i int) {
	m.account = &i
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *TokenGrantMutation) AccountID() (r int, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the TokenGrant entity.
// If the TokenGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenGrantMutation) OldAccountID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *TokenGrantMutation) ResetAccountID() {
	m.account = nil
}

// SetTokens sets the "tokens" field.
func (m *TokenGrantMutation) SetTokens(i int64) {
	m.tokens = &i
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *TokenGrantMutation) Tokens() (r int64, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the TokenGrant entity.
// If the TokenGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenGrantMutation) OldTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds i to the "tokens" field.
func (m *TokenGrantMutation) AddTokens(i int64) {
	if m.addtokens != nil {
		*m.addtokens += i
	} else {
		m.addtokens = &i
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *TokenGrantMutation) AddedTokens() (r int64, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokens resets all changes to the "tokens" field.
func (m *TokenGrantMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
}

// SetPool sets the "pool" field.
func (m *TokenGrantMutation) SetPool(t tokengrant.Pool) {
	m.pool = &t
}

// Pool returns the value of the "pool" field in the mutation.
func (m *TokenGrantMutation) Pool() (r tokengrant.Pool, exists bool) {
	v := m.pool
	if v == nil {
		return
	}
	return *v, true
}

// OldPool returns the old "pool" field's value of the TokenGrant entity.
// If the TokenGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenGrantMutation) OldPool(ctx context.Context) (v tokengrant.Pool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPool: %w", err)
	}
	return oldValue.Pool, nil
}

// ResetPool resets all changes to the "pool" field.
func (m *TokenGrantMutation) ResetPool() {
	m.pool = nil
}

// SetSource sets the "source" field.
func (m *TokenGrantMutation) SetSource(t tokengrant.Source) {
	m.source = &t
}

// Source returns the value of the "source" field in the mutation.
func (m *TokenGrantMutation) Source() (r tokengrant.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the TokenGrant entity.
// If the TokenGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenGrantMutation) OldSource(ctx context.Context) (v tokengrant.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *TokenGrantMutation) ResetSource() {
	m.source = nil
}

// SetExternalPaymentRef sets the "external_payment_ref" field.
func (m *TokenGrantMutation) SetExternalPaymentRef(s string) {
	m.external_payment_ref = &s
}

// ExternalPaymentRef returns the value of the "external_payment_ref" field in the mutation.
func (m *TokenGrantMutation) ExternalPaymentRef() (r string, exists bool) {
	v := m.external_payment_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalPaymentRef returns the old "external_payment_ref" field's value of the TokenGrant entity.
// If the TokenGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenGrantMutation) OldExternalPaymentRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalPaymentRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalPaymentRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalPaymentRef: %w", err)
	}
	return oldValue.ExternalPaymentRef, nil
}

// ClearExternalPaymentRef clears the value of the "external_payment_ref" field.
func (m *TokenGrantMutation) ClearExternalPaymentRef() {
	m.external_payment_ref = nil
	m.clearedFields[tokengrant.FieldExternalPaymentRef] = struct{}{}
}

// ExternalPaymentRefCleared returns if the "external_payment_ref" field was cleared in this mutation.
func (m *TokenGrantMutation) ExternalPaymentRefCleared() bool {
	_, ok := m.clearedFields[tokengrant.FieldExternalPaymentRef]
	return ok
}

// ResetExternalPaymentRef resets all changes to the "external_payment_ref" field.
func (m *TokenGrantMutation) ResetExternalPaymentRef() {
	m.external_payment_ref = nil
	delete(m.clearedFields, tokengrant.FieldExternalPaymentRef)
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenGrantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenGrantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenGrant entity.
// If the TokenGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenGrantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenGrantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *TokenGrantMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[tokengrant.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *TokenGrantMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *TokenGrantMutation) AccountIDs() (ids []int) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *TokenGrantMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the TokenGrantMutation builder.
func (m *TokenGrantMutation) Where(ps ...predicate.TokenGrant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenGrantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenGrantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenGrant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenGrantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenGrantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenGrant).
func (m *TokenGrantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenGrantMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.account != nil {
		fields = append(fields, tokengrant.FieldAccountID)
	}
	if m.tokens != nil {
		fields = append(fields, tokengrant.FieldTokens)
	}
	if m.pool != nil {
		fields = append(fields, tokengrant.FieldPool)
	}
	if m.source != nil {
		fields = append(fields, tokengrant.FieldSource)
	}
	if m.external_payment_ref != nil {
		fields = append(fields, tokengrant.FieldExternalPaymentRef)
	}
	if m.created_at != nil {
		fields = append(fields, tokengrant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenGrantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokengrant.FieldAccountID:
		return m.AccountID()
	case tokengrant.FieldTokens:
		return m.Tokens()
	case tokengrant.FieldPool:
		return m.Pool()
	case tokengrant.FieldSource:
		return m.Source()
	case tokengrant.FieldExternalPaymentRef:
		return m.ExternalPaymentRef()
	case tokengrant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenGrantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokengrant.FieldAccountID:
		return m.OldAccountID(ctx)
	case tokengrant.FieldTokens:
		return m.OldTokens(ctx)
	case tokengrant.FieldPool:
		return m.OldPool(ctx)
	case tokengrant.FieldSource:
		return m.OldSource(ctx)
	case tokengrant.FieldExternalPaymentRef:
		return m.OldExternalPaymentRef(ctx)
	case tokengrant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenGrant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenGrantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokengrant.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case tokengrant.FieldTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case tokengrant.FieldPool:
		v, ok := value.(tokengrant.Pool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPool(v)
		return nil
	case tokengrant.FieldSource:
		v, ok := value.(tokengrant.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case tokengrant.FieldExternalPaymentRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalPaymentRef(v)
		return nil
	case tokengrant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenGrant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenGrantMutation) AddedFields() []string {
	var fields []string
	if m.addtokens != nil {
		fields = append(fields, tokengrant.FieldTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenGrantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokengrant.FieldTokens:
		return m.AddedTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenGrantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokengrant.FieldTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	}
	return fmt.Errorf("unknown TokenGrant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenGrantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokengrant.FieldExternalPaymentRef) {
		fields = append(fields, tokengrant.FieldExternalPaymentRef)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenGrantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenGrantMutation) ClearField(name string) error {
	switch name {
	case tokengrant.FieldExternalPaymentRef:
		m.ClearExternalPaymentRef()
		return nil
	}
	return fmt.Errorf("unknown TokenGrant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenGrantMutation) ResetField(name string) error {
	switch name {
	case tokengrant.FieldAccountID:
		m.ResetAccountID()
		return nil
	case tokengrant.FieldTokens:
		m.ResetTokens()
		return nil
	case tokengrant.FieldPool:
		m.ResetPool()
		return nil
	case tokengrant.FieldSource:
		m.ResetSource()
		return nil
	case tokengrant.FieldExternalPaymentRef:
		m.ResetExternalPaymentRef()
		return nil
	case tokengrant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenGrant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenGrantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, tokengrant.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenGrantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tokengrant.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenGrantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenGrantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenGrantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, tokengrant.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenGrantMutation) EdgeCleared(name string) bool {
	switch name {
	case tokengrant.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenGrantMutation) ClearEdge(name string) error {
	switch name {
	case tokengrant.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown TokenGrant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenGrantMutation) ResetEdge(name string) error {
	switch name {
	case tokengrant.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown TokenGrant edge %s", name)
}

// TokenTransactionMutation represents an operation that mutates the TokenTransaction nodes in the graph.
type TokenTransactionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	model_id              *string
	provider              *string
	tokens_deducted       *int64
	addtokens_deducted    *int64
	deducted_from_paid    *int64
	adddeducted_from_paid *int64
	deducted_from_free    *int64
	adddeducted_from_free *int64
	provider_cost_usd     *float64
	addprovider_cost_usd  *float64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	account               *int
	clearedaccount        bool
	done                  bool
	oldValue              func(context.Context) (*TokenTransaction, error)
	predicates            []predicate.TokenTransaction
}

var _ ent.Mutation = (*TokenTransactionMutation)(nil)

// tokentransactionOption allows management of the mutation configuration using functional options.
type tokentransactionOption func(*TokenTransactionMutation)

// newTokenTransactionMutation creates new mutation for the TokenTransaction entity.
func newTokenTransactionMutation(c config, op Op, opts ...tokentransactionOption) *TokenTransactionMutation {
	m := &TokenTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenTransactionID sets the ID field of the mutation.
func withTokenTransactionID(id int) tokentransactionOption {
	return func(m *TokenTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenTransaction
		)
		m.oldValue = func(ctx context.Context) (*TokenTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenTransaction sets the old TokenTransaction of the mutation.
func withTokenTransaction(node *TokenTransaction) tokentransactionOption {
	return func(m *TokenTransactionMutation) {
		m.oldValue = func(context.Context) (*TokenTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenTransactionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenTransactionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *TokenTransactionMutation) SetAccountID(i int) {
	m.account = &i
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *TokenTransactionMutation) AccountID() (r int, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldAccountID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *TokenTransactionMutation) ResetAccountID() {
	m.account = nil
}

// SetModelID sets the "model_id" field.
func (m *TokenTransactionMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *TokenTransactionMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *TokenTransactionMutation) ResetModelID() {
	m.model_id = nil
}

// SetProvider sets the "provider" field.
func (m *TokenTransactionMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *TokenTransactionMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *TokenTransactionMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[tokentransaction.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *TokenTransactionMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[tokentransaction.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *TokenTransactionMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, tokentransaction.FieldProvider)
}

// SetTokensDeducted sets the "tokens_deducted" field.
func (m *TokenTransactionMutation) SetTokensDeducted(i int64) {
	m.tokens_deducted = &i
	m.addtokens_deducted = nil
}

// TokensDeducted returns the value of the "tokens_deducted" field in the mutation.
func (m *TokenTransactionMutation) TokensDeducted() (r int64, exists bool) {
	v := m.tokens_deducted
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensDeducted returns the old "tokens_deducted" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldTokensDeducted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensDeducted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensDeducted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensDeducted: %w", err)
	}
	return oldValue.TokensDeducted, nil
}

// AddTokensDeducted adds i to the "tokens_deducted" field.
func (m *TokenTransactionMutation) AddTokensDeducted(i int64) {
	if m.addtokens_deducted != nil {
		*m.addtokens_deducted += i
	} else {
		m.addtokens_deducted = &i
	}
}

// AddedTokensDeducted returns the value that was added to the "tokens_deducted" field in this mutation.
func (m *TokenTransactionMutation) AddedTokensDeducted() (r int64, exists bool) {
	v := m.addtokens_deducted
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensDeducted resets all changes to the "tokens_deducted" field.
func (m *TokenTransactionMutation) ResetTokensDeducted() {
	m.tokens_deducted = nil
	m.addtokens_deducted = nil
}

// SetDeductedFromPaid sets the "deducted_from_paid" field.
func (m *TokenTransactionMutation) SetDeductedFromPaid(i int64) {
	m.deducted_from_paid = &i
	m.adddeducted_from_paid = nil
}

// DeductedFromPaid returns the value of the "deducted_from_paid" field in the mutation.
func (m *TokenTransactionMutation) DeductedFromPaid() (r int64, exists bool) {
	v := m.deducted_from_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldDeductedFromPaid returns the old "deducted_from_paid" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldDeductedFromPaid(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeductedFromPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeductedFromPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeductedFromPaid: %w", err)
	}
	return oldValue.DeductedFromPaid, nil
}

// AddDeductedFromPaid adds i to the "deducted_from_paid" field.
func (m *TokenTransactionMutation) AddDeductedFromPaid(i int64) {
	if m.adddeducted_from_paid != nil {
		*m.adddeducted_from_paid += i
	} else {
		m.adddeducted_from_paid = &i
	}
}

// AddedDeductedFromPaid returns the value that was added to the "deducted_from_paid" field in this mutation.
func (m *TokenTransactionMutation) AddedDeductedFromPaid() (r int64, exists bool) {
	v := m.adddeducted_from_paid
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeductedFromPaid resets all changes to the "deducted_from_paid" field.
func (m *TokenTransactionMutation) ResetDeductedFromPaid() {
	m.deducted_from_paid = nil
	m.adddeducted_from_paid = nil
}

// SetDeductedFromFree sets the "deducted_from_free" field.
func (m *TokenTransactionMutation) SetDeductedFromFree(i int64) {
	m.deducted_from_free = &i
	m.adddeducted_from_free = nil
}

// DeductedFromFree returns the value of the "deducted_from_free" field in the mutation.
func (m *TokenTransactionMutation) DeductedFromFree() (r int64, exists bool) {
	v := m.deducted_from_free
	if v == nil {
		return
	}
	return *v, true
}

// OldDeductedFromFree returns the old "deducted_from_free" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldDeductedFromFree(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeductedFromFree is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeductedFromFree requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeductedFromFree: %w", err)
	}
	return oldValue.DeductedFromFree, nil
}

// AddDeductedFromFree adds i to the "deducted_from_free" field.
func (m *TokenTransactionMutation) AddDeductedFromFree(i int64) {
	if m.adddeducted_from_free != nil {
		*m.adddeducted_from_free += i
	} else {
		m.adddeducted_from_free = &i
	}
}

// AddedDeductedFromFree returns the value that was added to the "deducted_from_free" field in this mutation.
func (m *TokenTransactionMutation) AddedDeductedFromFree() (r int64, exists bool) {
	v := m.adddeducted_from_free
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeductedFromFree resets all changes to the "deducted_from_free" field.
func (m *TokenTransactionMutation) ResetDeductedFromFree() {
	m.deducted_from_free = nil
	m.adddeducted_from_free = nil
}

// SetProviderCostUsd sets the "provider_cost_usd" field.
func (m *TokenTransactionMutation) SetProviderCostUsd(f float64) {
	m.provider_cost_usd = &f
	m.addprovider_cost_usd = nil
}

// ProviderCostUsd returns the value of the "provider_cost_usd" field in the mutation.
func (m *TokenTransactionMutation) ProviderCostUsd() (r float64, exists bool) {
	v := m.provider_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderCostUsd returns the old "provider_cost_usd" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldProviderCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderCostUsd: %w", err)
	}
	return oldValue.ProviderCostUsd, nil
}

// AddProviderCostUsd adds f to the "provider_cost_usd" field.
func (m *TokenTransactionMutation) AddProviderCostUsd(f float64) {
	if m.addprovider_cost_usd != nil {
		*m.addprovider_cost_usd += f
	} else {
		m.addprovider_cost_usd = &f
	}
}

// AddedProviderCostUsd returns the value that was added to the "provider_cost_usd" field in this mutation.
func (m *TokenTransactionMutation) AddedProviderCostUsd() (r float64, exists bool) {
	v := m.addprovider_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetProviderCostUsd resets all changes to the "provider_cost_usd" field.
func (m *TokenTransactionMutation) ResetProviderCostUsd() {
	m.provider_cost_usd = nil
	m.addprovider_cost_usd = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenTransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenTransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenTransaction entity.
// If the TokenTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenTransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *TokenTransactionMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[tokentransaction.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *TokenTransactionMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *TokenTransactionMutation) AccountIDs() (ids []int) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *TokenTransactionMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the TokenTransactionMutation builder.
func (m *TokenTransactionMutation) Where(ps ...predicate.TokenTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenTransaction).
func (m *TokenTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenTransactionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.account != nil {
		fields = append(fields, tokentransaction.FieldAccountID)
	}
	if m.model_id != nil {
		fields = append(fields, tokentransaction.FieldModelID)
	}
	if m.provider != nil {
		fields = append(fields, tokentransaction.FieldProvider)
	}
	if m.tokens_deducted != nil {
		fields = append(fields, tokentransaction.FieldTokensDeducted)
	}
	if m.deducted_from_paid != nil {
		fields = append(fields, tokentransaction.FieldDeductedFromPaid)
	}
	if m.deducted_from_free != nil {
		fields = append(fields, tokentransaction.FieldDeductedFromFree)
	}
	if m.provider_cost_usd != nil {
		fields = append(fields, tokentransaction.FieldProviderCostUsd)
	}
	if m.created_at != nil {
		fields = append(fields, tokentransaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokentransaction.FieldAccountID:
		return m.AccountID()
	case tokentransaction.FieldModelID:
		return m.ModelID()
	case tokentransaction.FieldProvider:
		return m.Provider()
	case tokentransaction.FieldTokensDeducted:
		return m.TokensDeducted()
	case tokentransaction.FieldDeductedFromPaid:
		return m.DeductedFromPaid()
	case tokentransaction.FieldDeductedFromFree:
		return m.DeductedFromFree()
	case tokentransaction.FieldProviderCostUsd:
		return m.ProviderCostUsd()
	case tokentransaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokentransaction.FieldAccountID:
		return m.OldAccountID(ctx)
	case tokentransaction.FieldModelID:
		return m.OldModelID(ctx)
	case tokentransaction.FieldProvider:
		return m.OldProvider(ctx)
	case tokentransaction.FieldTokensDeducted:
		return m.OldTokensDeducted(ctx)
	case tokentransaction.FieldDeductedFromPaid:
		return m.OldDeductedFromPaid(ctx)
	case tokentransaction.FieldDeductedFromFree:
		return m.OldDeductedFromFree(ctx)
	case tokentransaction.FieldProviderCostUsd:
		return m.OldProviderCostUsd(ctx)
	case tokentransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokentransaction.FieldAccountID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case tokentransaction.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case tokentransaction.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case tokentransaction.FieldTokensDeducted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensDeducted(v)
		return nil
	case tokentransaction.FieldDeductedFromPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeductedFromPaid(v)
		return nil
	case tokentransaction.FieldDeductedFromFree:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeductedFromFree(v)
		return nil
	case tokentransaction.FieldProviderCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderCostUsd(v)
		return nil
	case tokentransaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_deducted != nil {
		fields = append(fields, tokentransaction.FieldTokensDeducted)
	}
	if m.adddeducted_from_paid != nil {
		fields = append(fields, tokentransaction.FieldDeductedFromPaid)
	}
	if m.adddeducted_from_free != nil {
		fields = append(fields, tokentransaction.FieldDeductedFromFree)
	}
	if m.addprovider_cost_usd != nil {
		fields = append(fields, tokentransaction.FieldProviderCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokentransaction.FieldTokensDeducted:
		return m.AddedTokensDeducted()
	case tokentransaction.FieldDeductedFromPaid:
		return m.AddedDeductedFromPaid()
	case tokentransaction.FieldDeductedFromFree:
		return m.AddedDeductedFromFree()
	case tokentransaction.FieldProviderCostUsd:
		return m.AddedProviderCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokentransaction.FieldTokensDeducted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensDeducted(v)
		return nil
	case tokentransaction.FieldDeductedFromPaid:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeductedFromPaid(v)
		return nil
	case tokentransaction.FieldDeductedFromFree:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeductedFromFree(v)
		return nil
	case tokentransaction.FieldProviderCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProviderCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokentransaction.FieldProvider) {
		fields = append(fields, tokentransaction.FieldProvider)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenTransactionMutation) ClearField(name string) error {
	switch name {
	case tokentransaction.FieldProvider:
		m.ClearProvider()
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenTransactionMutation) ResetField(name string) error {
	switch name {
	case tokentransaction.FieldAccountID:
		m.ResetAccountID()
		return nil
	case tokentransaction.FieldModelID:
		m.ResetModelID()
		return nil
	case tokentransaction.FieldProvider:
		m.ResetProvider()
		return nil
	case tokentransaction.FieldTokensDeducted:
		m.ResetTokensDeducted()
		return nil
	case tokentransaction.FieldDeductedFromPaid:
		m.ResetDeductedFromPaid()
		return nil
	case tokentransaction.FieldDeductedFromFree:
		m.ResetDeductedFromFree()
		return nil
	case tokentransaction.FieldProviderCostUsd:
		m.ResetProviderCostUsd()
		return nil
	case tokentransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, tokentransaction.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenTransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tokentransaction.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, tokentransaction.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenTransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case tokentransaction.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenTransactionMutation) ClearEdge(name string) error {
	switch name {
	case tokentransaction.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenTransactionMutation) ResetEdge(name string) error {
	switch name {
	case tokentransaction.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown TokenTransaction edge %s", name)
}
