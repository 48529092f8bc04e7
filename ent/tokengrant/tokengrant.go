// Code generated by ent, DO NOT EDIT.

package tokengrant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tokengrant type in the database.
	Label = "token_grant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldTokens holds the string denoting the tokens field in the database.
	FieldTokens = "tokens"
	// FieldPool holds the string denoting the pool field in the database.
	FieldPool = "pool"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldExternalPaymentRef holds the string denoting the external_payment_ref field in the database.
	FieldExternalPaymentRef = "external_payment_ref"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// Table holds the table name of the tokengrant in the database.
	Table = "token_grants"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "token_grants"
	// AccountInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountInverseTable = "accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "account_id"
)

// Columns holds all SQL columns for tokengrant fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldTokens,
	FieldPool,
	FieldSource,
	FieldExternalPaymentRef,
	FieldCreatedAt,
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
	// AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	AccountIDValidator func(int) error
	// TokensValidator is a validator for the "tokens" field. It is called by the builders before save.
	TokensValidator func(int64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Pool defines the type for the "pool" enum field.
type Pool string

// Pool values.
const (
	PoolFree Pool = "free"
	PoolPaid Pool = "paid"
)

func (po Pool) String() string {
	return string(po)
}

// PoolValidator is a validator for the "pool" field enum values. It is called by the builders before save.
func PoolValidator(po Pool) error {
	switch po {
	case PoolFree, PoolPaid:
		return nil
	default:
		return fmt.Errorf("tokengrant: invalid enum value for pool field: %q", po)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceDailyRefresh Source = "daily_refresh"
	SourcePurchase     Source = "purchase"
	SourceSignup       Source = "signup"
	SourceAdmin        Source = "admin"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceDailyRefresh, SourcePurchase, SourceSignup, SourceAdmin:
		return nil
	default:
		return fmt.Errorf("tokengrant: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the TokenGrant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByTokens orders the results by the tokens field.
func ByTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokens, opts...).ToFunc()
}

// ByPool orders the results by the pool field.
func ByPool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPool, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByExternalPaymentRef orders the results by the external_payment_ref field.
func ByExternalPaymentRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalPaymentRef, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAccountField orders the results by account field.
func ByAccountField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountStep(), sql.OrderByField(field, opts...))
	}
}
func newAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
	)
}
