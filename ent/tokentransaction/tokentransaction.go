// Code generated by ent, DO NOT EDIT.

package tokentransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tokentransaction type in the database.
	Label = "token_transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldTokensDeducted holds the string denoting the tokens_deducted field in the database.
	FieldTokensDeducted = "tokens_deducted"
	// FieldDeductedFromPaid holds the string denoting the deducted_from_paid field in the database.
	FieldDeductedFromPaid = "deducted_from_paid"
	// FieldDeductedFromFree holds the string denoting the deducted_from_free field in the database.
	FieldDeductedFromFree = "deducted_from_free"
	// FieldProviderCostUsd holds the string denoting the provider_cost_usd field in the database.
	FieldProviderCostUsd = "provider_cost_usd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// Table holds the table name of the tokentransaction in the database.
	Table = "token_transactions"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "token_transactions"
	// AccountInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountInverseTable = "accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "account_id"
)

// Columns holds all SQL columns for tokentransaction fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldModelID,
	FieldProvider,
	FieldTokensDeducted,
	FieldDeductedFromPaid,
	FieldDeductedFromFree,
	FieldProviderCostUsd,
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
	// ModelIDValidator is a validator for the "model_id" field. It is called by the builders before save.
	ModelIDValidator func(string) error
	// TokensDeductedValidator is a validator for the "tokens_deducted" field. It is called by the builders before save.
	TokensDeductedValidator func(int64) error
	// DefaultDeductedFromPaid holds the default value on creation for the "deducted_from_paid" field.
	DefaultDeductedFromPaid int64
	// DeductedFromPaidValidator is a validator for the "deducted_from_paid" field. It is called by the builders before save.
	DeductedFromPaidValidator func(int64) error
	// DefaultDeductedFromFree holds the default value on creation for the "deducted_from_free" field.
	DefaultDeductedFromFree int64
	// DeductedFromFreeValidator is a validator for the "deducted_from_free" field. It is called by the builders before save.
	DeductedFromFreeValidator func(int64) error
	// DefaultProviderCostUsd holds the default value on creation for the "provider_cost_usd" field.
	DefaultProviderCostUsd float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TokenTransaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByTokensDeducted orders the results by the tokens_deducted field.
func ByTokensDeducted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensDeducted, opts...).ToFunc()
}

// ByDeductedFromPaid orders the results by the deducted_from_paid field.
func ByDeductedFromPaid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeductedFromPaid, opts...).ToFunc()
}

// ByDeductedFromFree orders the results by the deducted_from_free field.
func ByDeductedFromFree(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeductedFromFree, opts...).ToFunc()
}

// ByProviderCostUsd orders the results by the provider_cost_usd field.
func ByProviderCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderCostUsd, opts...).ToFunc()
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
