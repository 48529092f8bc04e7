// Code generated by ent, DO NOT EDIT.

package account

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexaai/nexa-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUserID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEmail, v))
}

// FreeBalance applies equality check predicate on the "free_balance" field. It's identical to FreeBalanceEQ.
func FreeBalance(v int64) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldFreeBalance, v))
}

// PaidBalance applies equality check predicate on the "paid_balance" field. It's identical to PaidBalanceEQ.
func PaidBalance(v int64) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPaidBalance, v))
}

// DailyAllowance applies equality check predicate on the "daily_allowance" field. It's identical to DailyAllowanceEQ.
func DailyAllowance(v int64) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldDailyAllowance, v))
}

// LastRefreshAt applies equality check predicate on the "last_refresh_at" field. It's identical to LastRefreshAtEQ.
func LastRefreshAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastRefreshAt, v))
}

// IsPremium applies equality check predicate on the "is_premium" field. It's identical to IsPremiumEQ.
func IsPremium(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldIsPremium, v))
}

// IsPaid applies equality check predicate on the "is_paid" field. It's identical to IsPaidEQ.
func IsPaid(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldIsPaid, v))
}

// IsTokenUser applies equality check predicate on the "is_token_user" field. It's identical to IsTokenUserEQ.
func IsTokenUser(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldIsTokenUser, v))
}

// StripeCustomerID applies equality check predicate on the "stripe_customer_id" field. It's identical to StripeCustomerIDEQ.
func StripeCustomerID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeCustomerID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldUserID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldEmail, v))
}

// FreeBalanceEQ applies the EQ predicate on the "free_balance" field.
func FreeBalanceEQ(v int64) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldFreeBalance, v))
}

// FreeBalanceNEQ applies the NEQ predicate on the "free_balance" field.
func FreeBalanceNEQ(v int64) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldFreeBalance, v))
}

// FreeBalanceIn applies the In predicate on the "free_balance" field.
func FreeBalanceIn(vs ...int64) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldFreeBalance, vs...))
}

// FreeBalanceNotIn applies the NotIn predicate on the "free_balance" field.
func FreeBalanceNotIn(vs ...int64) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldFreeBalance, vs...))
}

// FreeBalanceGT applies the GT predicate on the "free_balance" field.
func FreeBalanceGT(v int64) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldFreeBalance, v))
}

// FreeBalanceGTE applies the GTE predicate on the "free_balance" field.
func FreeBalanceGTE(v int64) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldFreeBalance, v))
}

// FreeBalanceLT applies the LT predicate on the "free_balance" field.
func FreeBalanceLT(v int64) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldFreeBalance, v))
}

// FreeBalanceLTE applies the LTE predicate on the "free_balance" field.
func FreeBalanceLTE(v int64) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldFreeBalance, v))
}

// PaidBalanceEQ applies the EQ predicate on the "paid_balance" field.
func PaidBalanceEQ(v int64) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldPaidBalance, v))
}

// PaidBalanceNEQ applies the NEQ predicate on the "paid_balance" field.
func PaidBalanceNEQ(v int64) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldPaidBalance, v))
}

// PaidBalanceIn applies the In predicate on the "paid_balance" field.
func PaidBalanceIn(vs ...int64) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldPaidBalance, vs...))
}

// PaidBalanceNotIn applies the NotIn predicate on the "paid_balance" field.
func PaidBalanceNotIn(vs ...int64) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldPaidBalance, vs...))
}

// PaidBalanceGT applies the GT predicate on the "paid_balance" field.
func PaidBalanceGT(v int64) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldPaidBalance, v))
}

// PaidBalanceGTE applies the GTE predicate on the "paid_balance" field.
func PaidBalanceGTE(v int64) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldPaidBalance, v))
}

// PaidBalanceLT applies the LT predicate on the "paid_balance" field.
func PaidBalanceLT(v int64) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldPaidBalance, v))
}

// PaidBalanceLTE applies the LTE predicate on the "paid_balance" field.
func PaidBalanceLTE(v int64) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldPaidBalance, v))
}

// DailyAllowanceEQ applies the EQ predicate on the "daily_allowance" field.
func DailyAllowanceEQ(v int64) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldDailyAllowance, v))
}

// DailyAllowanceNEQ applies the NEQ predicate on the "daily_allowance" field.
func DailyAllowanceNEQ(v int64) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldDailyAllowance, v))
}

// DailyAllowanceIn applies the In predicate on the "daily_allowance" field.
func DailyAllowanceIn(vs ...int64) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldDailyAllowance, vs...))
}

// DailyAllowanceNotIn applies the NotIn predicate on the "daily_allowance" field.
func DailyAllowanceNotIn(vs ...int64) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldDailyAllowance, vs...))
}

// DailyAllowanceGT applies the GT predicate on the "daily_allowance" field.
func DailyAllowanceGT(v int64) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldDailyAllowance, v))
}

// DailyAllowanceGTE applies the GTE predicate on the "daily_allowance" field.
func DailyAllowanceGTE(v int64) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldDailyAllowance, v))
}

// DailyAllowanceLT applies the LT predicate on the "daily_allowance" field.
func DailyAllowanceLT(v int64) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldDailyAllowance, v))
}

// DailyAllowanceLTE applies the LTE predicate on the "daily_allowance" field.
func DailyAllowanceLTE(v int64) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldDailyAllowance, v))
}

// LastRefreshAtEQ applies the EQ predicate on the "last_refresh_at" field.
func LastRefreshAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastRefreshAt, v))
}

// LastRefreshAtNEQ applies the NEQ predicate on the "last_refresh_at" field.
func LastRefreshAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLastRefreshAt, v))
}

// LastRefreshAtIn applies the In predicate on the "last_refresh_at" field.
func LastRefreshAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLastRefreshAt, vs...))
}

// LastRefreshAtNotIn applies the NotIn predicate on the "last_refresh_at" field.
func LastRefreshAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLastRefreshAt, vs...))
}

// LastRefreshAtGT applies the GT predicate on the "last_refresh_at" field.
func LastRefreshAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLastRefreshAt, v))
}

// LastRefreshAtGTE applies the GTE predicate on the "last_refresh_at" field.
func LastRefreshAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLastRefreshAt, v))
}

// LastRefreshAtLT applies the LT predicate on the "last_refresh_at" field.
func LastRefreshAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLastRefreshAt, v))
}

// LastRefreshAtLTE applies the LTE predicate on the "last_refresh_at" field.
func LastRefreshAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLastRefreshAt, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldTier, vs...))
}

// IsPremiumEQ applies the EQ predicate on the "is_premium" field.
func IsPremiumEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldIsPremium, v))
}

// IsPremiumNEQ applies the NEQ predicate on the "is_premium" field.
func IsPremiumNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldIsPremium, v))
}

// IsPaidEQ applies the EQ predicate on the "is_paid" field.
func IsPaidEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldIsPaid, v))
}

// IsPaidNEQ applies the NEQ predicate on the "is_paid" field.
func IsPaidNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldIsPaid, v))
}

// IsTokenUserEQ applies the EQ predicate on the "is_token_user" field.
func IsTokenUserEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldIsTokenUser, v))
}

// IsTokenUserNEQ applies the NEQ predicate on the "is_token_user" field.
func IsTokenUserNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldIsTokenUser, v))
}

// StripeCustomerIDEQ applies the EQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDNEQ applies the NEQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDIn applies the In predicate on the "stripe_customer_id" field.
func StripeCustomerIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDNotIn applies the NotIn predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDGT applies the GT predicate on the "stripe_customer_id" field.
func StripeCustomerIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldStripeCustomerID, v))
}

// StripeCustomerIDGTE applies the GTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDLT applies the LT predicate on the "stripe_customer_id" field.
func StripeCustomerIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldStripeCustomerID, v))
}

// StripeCustomerIDLTE applies the LTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDContains applies the Contains predicate on the "stripe_customer_id" field.
func StripeCustomerIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasPrefix applies the HasPrefix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasSuffix applies the HasSuffix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldStripeCustomerID, v))
}

// StripeCustomerIDIsNil applies the IsNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldStripeCustomerID))
}

// StripeCustomerIDNotNil applies the NotNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldStripeCustomerID))
}

// StripeCustomerIDEqualFold applies the EqualFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldStripeCustomerID, v))
}

// StripeCustomerIDContainsFold applies the ContainsFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldStripeCustomerID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.TokenTransaction) predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGrants applies the HasEdge predicate on the "grants" edge.
func HasGrants() predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GrantsTable, GrantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGrantsWith applies the HasEdge predicate on the "grants" edge with a given conditions (other predicates).
func HasGrantsWith(preds ...predicate.TokenGrant) predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := newGrantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Account) predicate.Account {
	return predicate.Account(sql.NotPredicates(p))
}
