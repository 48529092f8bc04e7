// Code generated by ent, DO NOT EDIT.

package tokentransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexaai/nexa-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldAccountID, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldModelID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldProvider, v))
}

// TokensDeducted applies equality check predicate on the "tokens_deducted" field. It's identical to TokensDeductedEQ.
func TokensDeducted(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldTokensDeducted, v))
}

// DeductedFromPaid applies equality check predicate on the "deducted_from_paid" field. It's identical to DeductedFromPaidEQ.
func DeductedFromPaid(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldDeductedFromPaid, v))
}

// DeductedFromFree applies equality check predicate on the "deducted_from_free" field. It's identical to DeductedFromFreeEQ.
func DeductedFromFree(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldDeductedFromFree, v))
}

// ProviderCostUsd applies equality check predicate on the "provider_cost_usd" field. It's identical to ProviderCostUsdEQ.
func ProviderCostUsd(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldProviderCostUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...int) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldAccountID, vs...))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContainsFold(FieldModelID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldContainsFold(FieldProvider, v))
}

// TokensDeductedEQ applies the EQ predicate on the "tokens_deducted" field.
func TokensDeductedEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldTokensDeducted, v))
}

// TokensDeductedNEQ applies the NEQ predicate on the "tokens_deducted" field.
func TokensDeductedNEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldTokensDeducted, v))
}

// TokensDeductedIn applies the In predicate on the "tokens_deducted" field.
func TokensDeductedIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldTokensDeducted, vs...))
}

// TokensDeductedNotIn applies the NotIn predicate on the "tokens_deducted" field.
func TokensDeductedNotIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldTokensDeducted, vs...))
}

// TokensDeductedGT applies the GT predicate on the "tokens_deducted" field.
func TokensDeductedGT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldTokensDeducted, v))
}

// TokensDeductedGTE applies the GTE predicate on the "tokens_deducted" field.
func TokensDeductedGTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldTokensDeducted, v))
}

// TokensDeductedLT applies the LT predicate on the "tokens_deducted" field.
func TokensDeductedLT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldTokensDeducted, v))
}

// TokensDeductedLTE applies the LTE predicate on the "tokens_deducted" field.
func TokensDeductedLTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldTokensDeducted, v))
}

// DeductedFromPaidEQ applies the EQ predicate on the "deducted_from_paid" field.
func DeductedFromPaidEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldDeductedFromPaid, v))
}

// DeductedFromPaidNEQ applies the NEQ predicate on the "deducted_from_paid" field.
func DeductedFromPaidNEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldDeductedFromPaid, v))
}

// DeductedFromPaidIn applies the In predicate on the "deducted_from_paid" field.
func DeductedFromPaidIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldDeductedFromPaid, vs...))
}

// DeductedFromPaidNotIn applies the NotIn predicate on the "deducted_from_paid" field.
func DeductedFromPaidNotIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldDeductedFromPaid, vs...))
}

// DeductedFromPaidGT applies the GT predicate on the "deducted_from_paid" field.
func DeductedFromPaidGT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldDeductedFromPaid, v))
}

// DeductedFromPaidGTE applies the GTE predicate on the "deducted_from_paid" field.
func DeductedFromPaidGTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldDeductedFromPaid, v))
}

// DeductedFromPaidLT applies the LT predicate on the "deducted_from_paid" field.
func DeductedFromPaidLT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldDeductedFromPaid, v))
}

// DeductedFromPaidLTE applies the LTE predicate on the "deducted_from_paid" field.
func DeductedFromPaidLTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldDeductedFromPaid, v))
}

// DeductedFromFreeEQ applies the EQ predicate on the "deducted_from_free" field.
func DeductedFromFreeEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldDeductedFromFree, v))
}

// DeductedFromFreeNEQ applies the NEQ predicate on the "deducted_from_free" field.
func DeductedFromFreeNEQ(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldDeductedFromFree, v))
}

// DeductedFromFreeIn applies the In predicate on the "deducted_from_free" field.
func DeductedFromFreeIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldDeductedFromFree, vs...))
}

// DeductedFromFreeNotIn applies the NotIn predicate on the "deducted_from_free" field.
func DeductedFromFreeNotIn(vs ...int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldDeductedFromFree, vs...))
}

// DeductedFromFreeGT applies the GT predicate on the "deducted_from_free" field.
func DeductedFromFreeGT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldDeductedFromFree, v))
}

// DeductedFromFreeGTE applies the GTE predicate on the "deducted_from_free" field.
func DeductedFromFreeGTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldDeductedFromFree, v))
}

// DeductedFromFreeLT applies the LT predicate on the "deducted_from_free" field.
func DeductedFromFreeLT(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldDeductedFromFree, v))
}

// DeductedFromFreeLTE applies the LTE predicate on the "deducted_from_free" field.
func DeductedFromFreeLTE(v int64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldDeductedFromFree, v))
}

// ProviderCostUsdEQ applies the EQ predicate on the "provider_cost_usd" field.
func ProviderCostUsdEQ(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldProviderCostUsd, v))
}

// ProviderCostUsdNEQ applies the NEQ predicate on the "provider_cost_usd" field.
func ProviderCostUsdNEQ(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldProviderCostUsd, v))
}

// ProviderCostUsdIn applies the In predicate on the "provider_cost_usd" field.
func ProviderCostUsdIn(vs ...float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldProviderCostUsd, vs...))
}

// ProviderCostUsdNotIn applies the NotIn predicate on the "provider_cost_usd" field.
func ProviderCostUsdNotIn(vs ...float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldProviderCostUsd, vs...))
}

// ProviderCostUsdGT applies the GT predicate on the "provider_cost_usd" field.
func ProviderCostUsdGT(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldProviderCostUsd, v))
}

// ProviderCostUsdGTE applies the GTE predicate on the "provider_cost_usd" field.
func ProviderCostUsdGTE(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldProviderCostUsd, v))
}

// ProviderCostUsdLT applies the LT predicate on the "provider_cost_usd" field.
func ProviderCostUsdLT(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldProviderCostUsd, v))
}

// ProviderCostUsdLTE applies the LTE predicate on the "provider_cost_usd" field.
func ProviderCostUsdLTE(v float64) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldProviderCostUsd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.TokenTransaction {
	return predicate.TokenTransaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.TokenTransaction {
	return predicate.TokenTransaction(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenTransaction) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenTransaction) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenTransaction) predicate.TokenTransaction {
	return predicate.TokenTransaction(sql.NotPredicates(p))
}
