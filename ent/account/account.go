// Code generated by ent, DO NOT EDIT.

package account

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the account type in the database.
	Label = "account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldFreeBalance holds the string denoting the free_balance field in the database.
	FieldFreeBalance = "free_balance"
	// FieldPaidBalance holds the string denoting the paid_balance field in the database.
	FieldPaidBalance = "paid_balance"
	// FieldDailyAllowance holds the string denoting the daily_allowance field in the database.
	FieldDailyAllowance = "daily_allowance"
	// FieldLastRefreshAt holds the string denoting the last_refresh_at field in the database.
	FieldLastRefreshAt = "last_refresh_at"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldIsPremium holds the string denoting the is_premium field in the database.
	FieldIsPremium = "is_premium"
	// FieldIsPaid holds the string denoting the is_paid field in the database.
	FieldIsPaid = "is_paid"
	// FieldIsTokenUser holds the string denoting the is_token_user field in the database.
	FieldIsTokenUser = "is_token_user"
	// FieldStripeCustomerID holds the string denoting the stripe_customer_id field in the database.
	FieldStripeCustomerID = "stripe_customer_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTransactions holds the string denoting the transactions edge name in mutations.
	EdgeTransactions = "transactions"
	// EdgeGrants holds the string denoting the grants edge name in mutations.
	EdgeGrants = "grants"
	// Table holds the table name of the account in the database.
	Table = "accounts"
	// TransactionsTable is the table that holds the transactions relation/edge.
	TransactionsTable = "token_transactions"
	// TransactionsInverseTable is the table name for the TokenTransaction entity.
	// It exists in this package in order to avoid circular dependency with the "tokentransaction" package.
	TransactionsInverseTable = "token_transactions"
	// TransactionsColumn is the table column denoting the transactions relation/edge.
	TransactionsColumn = "account_id"
	// GrantsTable is the table that holds the grants relation/edge.
	GrantsTable = "token_grants"
	// GrantsInverseTable is the table name for the TokenGrant entity.
	// It exists in this package in order to avoid circular dependency with the "tokengrant" package.
	GrantsInverseTable = "token_grants"
	// GrantsColumn is the table column denoting the grants relation/edge.
	GrantsColumn = "account_id"
)

// Columns holds all SQL columns for account fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldEmail,
	FieldFreeBalance,
	FieldPaidBalance,
	FieldDailyAllowance,
	FieldLastRefreshAt,
	FieldTier,
	FieldIsPremium,
	FieldIsPaid,
	FieldIsTokenUser,
	FieldStripeCustomerID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultFreeBalance holds the default value on creation for the "free_balance" field.
	DefaultFreeBalance int64
	// FreeBalanceValidator is a validator for the "free_balance" field. It is called by the builders before save.
	FreeBalanceValidator func(int64) error
	// DefaultPaidBalance holds the default value on creation for the "paid_balance" field.
	DefaultPaidBalance int64
	// PaidBalanceValidator is a validator for the "paid_balance" field. It is called by the builders before save.
	PaidBalanceValidator func(int64) error
	// DefaultDailyAllowance holds the default value on creation for the "daily_allowance" field.
	DefaultDailyAllowance int64
	// DailyAllowanceValidator is a validator for the "daily_allowance" field. It is called by the builders before save.
	DailyAllowanceValidator func(int64) error
	// DefaultLastRefreshAt holds the default value on creation for the "last_refresh_at" field.
	DefaultLastRefreshAt func() time.Time
	// DefaultIsPremium holds the default value on creation for the "is_premium" field.
	DefaultIsPremium bool
	// DefaultIsPaid holds the default value on creation for the "is_paid" field.
	DefaultIsPaid bool
	// DefaultIsTokenUser holds the default value on creation for the "is_token_user" field.
	DefaultIsTokenUser bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// TierFree is the default value of the Tier enum.
const DefaultTier = TierFree

// Tier values.
const (
	TierFree         Tier = "free"
	TierPremium      Tier = "premium"
	TierUltraPremium Tier = "ultra_premium"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierFree, TierPremium, TierUltraPremium:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the Account queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByFreeBalance orders the results by the free_balance field.
func ByFreeBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreeBalance, opts...).ToFunc()
}

// ByPaidBalance orders the results by the paid_balance field.
func ByPaidBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaidBalance, opts...).ToFunc()
}

// ByDailyAllowance orders the results by the daily_allowance field.
func ByDailyAllowance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyAllowance, opts...).ToFunc()
}

// ByLastRefreshAt orders the results by the last_refresh_at field.
func ByLastRefreshAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRefreshAt, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByIsPremium orders the results by the is_premium field.
func ByIsPremium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPremium, opts...).ToFunc()
}

// ByIsPaid orders the results by the is_paid field.
func ByIsPaid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPaid, opts...).ToFunc()
}

// ByIsTokenUser orders the results by the is_token_user field.
func ByIsTokenUser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTokenUser, opts...).ToFunc()
}

// ByStripeCustomerID orders the results by the stripe_customer_id field.
func ByStripeCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeCustomerID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTransactionsCount orders the results by transactions count.
func ByTransactionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTransactionsStep(), opts...)
	}
}

// ByTransactions orders the results by transactions terms.
func ByTransactions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransactionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGrantsCount orders the results by grants count.
func ByGrantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGrantsStep(), opts...)
	}
}

// ByGrants orders the results by grants terms.
func ByGrants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGrantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTransactionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransactionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
	)
}
func newGrantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GrantsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GrantsTable, GrantsColumn),
	)
}
