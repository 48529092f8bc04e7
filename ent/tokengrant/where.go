// Code generated by ent, DO NOT EDIT.

package tokengrant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexaai/nexa-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldAccountID, v))
}

// Tokens applies equality check predicate on the "tokens" field. It's identical to TokensEQ.
func Tokens(v int64) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldTokens, v))
}

// ExternalPaymentRef applies equality check predicate on the "external_payment_ref" field. It's identical to ExternalPaymentRefEQ.
func ExternalPaymentRef(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldExternalPaymentRef, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...int) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNotIn(FieldAccountID, vs...))
}

// TokensEQ applies the EQ predicate on the "tokens" field.
func TokensEQ(v int64) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldTokens, v))
}

// TokensNEQ applies the NEQ predicate on the "tokens" field.
func TokensNEQ(v int64) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNEQ(FieldTokens, v))
}

// TokensIn applies the In predicate on the "tokens" field.
func TokensIn(vs ...int64) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldIn(FieldTokens, vs...))
}

// TokensNotIn applies the NotIn predicate on the "tokens" field.
func TokensNotIn(vs ...int64) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNotIn(FieldTokens, vs...))
}

// TokensGT applies the GT predicate on the "tokens" field.
func TokensGT(v int64) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldGT(FieldTokens, v))
}

// TokensGTE applies the GTE predicate on the "tokens" field.
func TokensGTE(v int64) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldGTE(FieldTokens, v))
}

// TokensLT applies the LT predicate on the "tokens" field.
func TokensLT(v int64) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldLT(FieldTokens, v))
}

// TokensLTE applies the LTE predicate on the "tokens" field.
func TokensLTE(v int64) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldLTE(FieldTokens, v))
}

// PoolEQ applies the EQ predicate on the "pool" field.
func PoolEQ(v Pool) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldPool, v))
}

// PoolNEQ applies the NEQ predicate on the "pool" field.
func PoolNEQ(v Pool) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNEQ(FieldPool, v))
}

// PoolIn applies the In predicate on the "pool" field.
func PoolIn(vs ...Pool) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldIn(FieldPool, vs...))
}

// PoolNotIn applies the NotIn predicate on the "pool" field.
func PoolNotIn(vs ...Pool) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNotIn(FieldPool, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNotIn(FieldSource, vs...))
}

// ExternalPaymentRefEQ applies the EQ predicate on the "external_payment_ref" field.
func ExternalPaymentRefEQ(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefNEQ applies the NEQ predicate on the "external_payment_ref" field.
func ExternalPaymentRefNEQ(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNEQ(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefIn applies the In predicate on the "external_payment_ref" field.
func ExternalPaymentRefIn(vs ...string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldIn(FieldExternalPaymentRef, vs...))
}

// ExternalPaymentRefNotIn applies the NotIn predicate on the "external_payment_ref" field.
func ExternalPaymentRefNotIn(vs ...string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNotIn(FieldExternalPaymentRef, vs...))
}

// ExternalPaymentRefGT applies the GT predicate on the "external_payment_ref" field.
func ExternalPaymentRefGT(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldGT(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefGTE applies the GTE predicate on the "external_payment_ref" field.
func ExternalPaymentRefGTE(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldGTE(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefLT applies the LT predicate on the "external_payment_ref" field.
func ExternalPaymentRefLT(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldLT(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefLTE applies the LTE predicate on the "external_payment_ref" field.
func ExternalPaymentRefLTE(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldLTE(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefContains applies the Contains predicate on the "external_payment_ref" field.
func ExternalPaymentRefContains(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldContains(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefHasPrefix applies the HasPrefix predicate on the "external_payment_ref" field.
func ExternalPaymentRefHasPrefix(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldHasPrefix(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefHasSuffix applies the HasSuffix predicate on the "external_payment_ref" field.
func ExternalPaymentRefHasSuffix(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldHasSuffix(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefIsNil applies the IsNil predicate on the "external_payment_ref" field.
func ExternalPaymentRefIsNil() predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldIsNull(FieldExternalPaymentRef))
}

// ExternalPaymentRefNotNil applies the NotNil predicate on the "external_payment_ref" field.
func ExternalPaymentRefNotNil() predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNotNull(FieldExternalPaymentRef))
}

// ExternalPaymentRefEqualFold applies the EqualFold predicate on the "external_payment_ref" field.
func ExternalPaymentRefEqualFold(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEqualFold(FieldExternalPaymentRef, v))
}

// ExternalPaymentRefContainsFold applies the ContainsFold predicate on the "external_payment_ref" field.
func ExternalPaymentRefContainsFold(v string) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldContainsFold(FieldExternalPaymentRef, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TokenGrant {
	return predicate.TokenGrant(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.TokenGrant {
	return predicate.TokenGrant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.TokenGrant {
	return predicate.TokenGrant(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenGrant) predicate.TokenGrant {
	return predicate.TokenGrant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenGrant) predicate.TokenGrant {
	return predicate.TokenGrant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenGrant) predicate.TokenGrant {
	return predicate.TokenGrant(sql.NotPredicates(p))
}
