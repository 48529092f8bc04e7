// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/tokengrant"
)

// TokenGrant is the model entity for the TokenGrant schema.
type TokenGrant struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Account foreign key
	AccountID int `json:"account_id,omitempty"`
	// Tokens credited
	Tokens int64 `json:"tokens,omitempty"`
	// Which balance pool received the credit
	Pool tokengrant.Pool `json:"pool,omitempty"`
	// What triggered the credit
	Source tokengrant.Source `json:"source,omitempty"`
	// Stripe payment reference for purchase grants
	ExternalPaymentRef string `json:"external_payment_ref,omitempty"`
	// Timestamp of the credit
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TokenGrantQuery when eager-loading is set.
	Edges        TokenGrantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TokenGrantEdges holds the relations/edges for other nodes in the graph.
type TokenGrantEdges struct {
	// Account the credit was applied to
	Account *Account `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TokenGrantEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TokenGrant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tokengrant.FieldID, tokengrant.FieldAccountID, tokengrant.FieldTokens:
			values[i] = new(sql.NullInt64)
		case tokengrant.FieldPool, tokengrant.FieldSource, tokengrant.FieldExternalPaymentRef:
			values[i] = new(sql.NullString)
		case tokengrant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TokenGrant fields.
func (_m *TokenGrant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tokengrant.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tokengrant.FieldAccountID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = int(value.Int64)
			}
		case tokengrant.FieldTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens", values[i])
			} else if value.Valid {
				_m.Tokens = value.Int64
			}
		case tokengrant.FieldPool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pool", values[i])
			} else if value.Valid {
				_m.Pool = tokengrant.Pool(value.String)
			}
		case tokengrant.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = tokengrant.Source(value.String)
			}
		case tokengrant.FieldExternalPaymentRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_payment_ref", values[i])
			} else if value.Valid {
				_m.ExternalPaymentRef = value.String
			}
		case tokengrant.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TokenGrant.
// This includes values selected through modifiers, order, etc.
func (_m *TokenGrant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the TokenGrant entity.
func (_m *TokenGrant) QueryAccount() *AccountQuery {
	return NewTokenGrantClient(_m.config).QueryAccount(_m)
}

// Update returns a builder for updating this TokenGrant.
// Note that you need to call TokenGrant.Unwrap() before calling this method if this TokenGrant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TokenGrant) Update() *TokenGrantUpdateOne {
	return NewTokenGrantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TokenGrant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TokenGrant) Unwrap() *TokenGrant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TokenGrant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TokenGrant) String() string {
	var builder strings.Builder
	builder.WriteString("TokenGrant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountID))
	builder.WriteString(", ")
	builder.WriteString("tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tokens))
	builder.WriteString(", ")
	builder.WriteString("pool=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pool))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("external_payment_ref=")
	builder.WriteString(_m.ExternalPaymentRef)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TokenGrants is a parsable slice of TokenGrant.
type TokenGrants []*TokenGrant
