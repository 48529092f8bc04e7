// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/tokentransaction"
)

// TokenTransaction is the model entity for the TokenTransaction schema.
type TokenTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Account foreign key
	AccountID int `json:"account_id,omitempty"`
	// Model identifier the request was billed against
	ModelID string `json:"model_id,omitempty"`
	// Upstream AI provider that served the request
	Provider string `json:"provider,omitempty"`
	// Total tokens charged for the request
	TokensDeducted int64 `json:"tokens_deducted,omitempty"`
	// Portion charged to the paid pool
	DeductedFromPaid int64 `json:"deducted_from_paid,omitempty"`
	// Portion charged to the free pool
	DeductedFromFree int64 `json:"deducted_from_free,omitempty"`
	// Approximate upstream cost in USD, informational only
	ProviderCostUsd float64 `json:"provider_cost_usd,omitempty"`
	// Timestamp of the deduction
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TokenTransactionQuery when eager-loading is set.
	Edges        TokenTransactionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TokenTransactionEdges holds the relations/edges for other nodes in the graph.
type TokenTransactionEdges struct {
	// Account the deduction was charged to
	Account *Account `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TokenTransactionEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TokenTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tokentransaction.FieldProviderCostUsd:
			values[i] = new(sql.NullFloat64)
		case tokentransaction.FieldID, tokentransaction.FieldAccountID, tokentransaction.FieldTokensDeducted, tokentransaction.FieldDeductedFromPaid, tokentransaction.FieldDeductedFromFree:
			values[i] = new(sql.NullInt64)
		case tokentransaction.FieldModelID, tokentransaction.FieldProvider:
			values[i] = new(sql.NullString)
		case tokentransaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TokenTransaction fields.
func (_m *TokenTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tokentransaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tokentransaction.FieldAccountID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = int(value.Int64)
			}
		case tokentransaction.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = value.String
			}
		case tokentransaction.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case tokentransaction.FieldTokensDeducted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_deducted", values[i])
			} else if value.Valid {
				_m.TokensDeducted = value.Int64
			}
		case tokentransaction.FieldDeductedFromPaid:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deducted_from_paid", values[i])
			} else if value.Valid {
				_m.DeductedFromPaid = value.Int64
			}
		case tokentransaction.FieldDeductedFromFree:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deducted_from_free", values[i])
			} else if value.Valid {
				_m.DeductedFromFree = value.Int64
			}
		case tokentransaction.FieldProviderCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field provider_cost_usd", values[i])
			} else if value.Valid {
				_m.ProviderCostUsd = value.Float64
			}
		case tokentransaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TokenTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *TokenTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the TokenTransaction entity.
func (_m *TokenTransaction) QueryAccount() *AccountQuery {
	return NewTokenTransactionClient(_m.config).QueryAccount(_m)
}

// Update returns a builder for updating this TokenTransaction.
// Note that you need to call TokenTransaction.Unwrap() before calling this method if this TokenTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TokenTransaction) Update() *TokenTransactionUpdateOne {
	return NewTokenTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TokenTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TokenTransaction) Unwrap() *TokenTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TokenTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TokenTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("TokenTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountID))
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(_m.ModelID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("tokens_deducted=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensDeducted))
	builder.WriteString(", ")
	builder.WriteString("deducted_from_paid=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeductedFromPaid))
	builder.WriteString(", ")
	builder.WriteString("deducted_from_free=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeductedFromFree))
	builder.WriteString(", ")
	builder.WriteString("provider_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderCostUsd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TokenTransactions is a parsable slice of TokenTransaction.
type TokenTransactions []*TokenTransaction
