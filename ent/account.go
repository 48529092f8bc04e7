// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexaai/nexa-backend/ent/account"
)

// Account is the model entity for the Account schema.
type Account struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque user identifier from the external auth provider
	UserID string `json:"user_id,omitempty"`
	// Contact email for receipts and balance warnings
	Email string `json:"email,omitempty"`
	// Tokens granted by the daily allowance
	FreeBalance int64 `json:"free_balance,omitempty"`
	// Tokens acquired by purchase, spent before free balance
	PaidBalance int64 `json:"paid_balance,omitempty"`
	// Tokens granted per 24h refresh cycle
	DailyAllowance int64 `json:"daily_allowance,omitempty"`
	// Last time the daily allowance was granted
	LastRefreshAt time.Time `json:"last_refresh_at,omitempty"`
	// Denormalized entitlement tier, derivable from paid balance and purchases
	Tier account.Tier `json:"tier,omitempty"`
	// Denormalized premium flag; true whenever paid_balance > 0 or tier is not free
	IsPremium bool `json:"is_premium,omitempty"`
	// Denormalized flag set on first purchase
	IsPaid bool `json:"is_paid,omitempty"`
	// Whether the account participates in the daily free allowance
	IsTokenUser bool `json:"is_token_user,omitempty"`
	// Stripe customer ID
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AccountQuery when eager-loading is set.
	Edges        AccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AccountEdges holds the relations/edges for other nodes in the graph.
type AccountEdges struct {
	// Append-only deduction history
	Transactions []*TokenTransaction `json:"transactions,omitempty"`
	// Append-only credit history
	Grants []*TokenGrant `json:"grants,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) TransactionsOrErr() ([]*TokenTransaction, error) {
	if e.loadedTypes[0] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// GrantsOrErr returns the Grants value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) GrantsOrErr() ([]*TokenGrant, error) {
	if e.loadedTypes[1] {
		return e.Grants, nil
	}
	return nil, &NotLoadedError{edge: "grants"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Account) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case account.FieldIsPremium, account.FieldIsPaid, account.FieldIsTokenUser:
			values[i] = new(sql.NullBool)
		case account.FieldID, account.FieldFreeBalance, account.FieldPaidBalance, account.FieldDailyAllowance:
			values[i] = new(sql.NullInt64)
		case account.FieldUserID, account.FieldEmail, account.FieldTier, account.FieldStripeCustomerID:
			values[i] = new(sql.NullString)
		case account.FieldLastRefreshAt, account.FieldCreatedAt, account.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Account fields.
func (_m *Account) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case account.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case account.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case account.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case account.FieldFreeBalance:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field free_balance", values[i])
			} else if value.Valid {
				_m.FreeBalance = value.Int64
			}
		case account.FieldPaidBalance:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field paid_balance", values[i])
			} else if value.Valid {
				_m.PaidBalance = value.Int64
			}
		case account.FieldDailyAllowance:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_allowance", values[i])
			} else if value.Valid {
				_m.DailyAllowance = value.Int64
			}
		case account.FieldLastRefreshAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_refresh_at", values[i])
			} else if value.Valid {
				_m.LastRefreshAt = value.Time
			}
		case account.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = account.Tier(value.String)
			}
		case account.FieldIsPremium:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_premium", values[i])
			} else if value.Valid {
				_m.IsPremium = value.Bool
			}
		case account.FieldIsPaid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_paid", values[i])
			} else if value.Valid {
				_m.IsPaid = value.Bool
			}
		case account.FieldIsTokenUser:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_token_user", values[i])
			} else if value.Valid {
				_m.IsTokenUser = value.Bool
			}
		case account.FieldStripeCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_customer_id", values[i])
			} else if value.Valid {
				_m.StripeCustomerID = new(string)
				*_m.StripeCustomerID = value.String
			}
		case account.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case account.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Account.
// This includes values selected through modifiers, order, etc.
func (_m *Account) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTransactions queries the "transactions" edge of the Account entity.
func (_m *Account) QueryTransactions() *TokenTransactionQuery {
	return NewAccountClient(_m.config).QueryTransactions(_m)
}

// QueryGrants queries the "grants" edge of the Account entity.
func (_m *Account) QueryGrants() *TokenGrantQuery {
	return NewAccountClient(_m.config).QueryGrants(_m)
}

// Update returns a builder for updating this Account.
// Note that you need to call Account.Unwrap() before calling this method if this Account
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Account) Update() *AccountUpdateOne {
	return NewAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Account entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Account) Unwrap() *Account {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Account is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Account) String() string {
	var builder strings.Builder
	builder.WriteString("Account(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("free_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreeBalance))
	builder.WriteString(", ")
	builder.WriteString("paid_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaidBalance))
	builder.WriteString(", ")
	builder.WriteString("daily_allowance=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyAllowance))
	builder.WriteString(", ")
	builder.WriteString("last_refresh_at=")
	builder.WriteString(_m.LastRefreshAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("is_premium=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPremium))
	builder.WriteString(", ")
	builder.WriteString("is_paid=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPaid))
	builder.WriteString(", ")
	builder.WriteString("is_token_user=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTokenUser))
	builder.WriteString(", ")
	if v := _m.StripeCustomerID; v != nil {
		builder.WriteString("stripe_customer_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Accounts is a parsable slice of Account.
type Accounts []*Account
