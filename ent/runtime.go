// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/schema"
	"github.com/nexaai/nexa-backend/ent/tokengrant"
	"github.com/nexaai/nexa-backend/ent/tokentransaction"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescUserID is the schema descriptor for user_id field.
	accountDescUserID := accountFields[0].Descriptor()
	// account.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	account.UserIDValidator = accountDescUserID.Validators[0].(func(string) error)
	// accountDescFreeBalance is the schema descriptor for free_balance field.
	accountDescFreeBalance := accountFields[2].Descriptor()
	// account.DefaultFreeBalance holds the default value on creation for the free_balance field.
	account.DefaultFreeBalance = accountDescFreeBalance.Default.(int64)
	// account.FreeBalanceValidator is a validator for the "free_balance" field. It is called by the builders before save.
	account.FreeBalanceValidator = accountDescFreeBalance.Validators[0].(func(int64) error)
	// accountDescPaidBalance is the schema descriptor for paid_balance field.
	accountDescPaidBalance := accountFields[3].Descriptor()
	// account.DefaultPaidBalance holds the default value on creation for the paid_balance field.
	account.DefaultPaidBalance = accountDescPaidBalance.Default.(int64)
	// account.PaidBalanceValidator is a validator for the "paid_balance" field. It is called by the builders before save.
	account.PaidBalanceValidator = accountDescPaidBalance.Validators[0].(func(int64) error)
	// accountDescDailyAllowance is the schema descriptor for daily_allowance field.
	accountDescDailyAllowance := accountFields[4].Descriptor()
	// account.DefaultDailyAllowance holds the default value on creation for the daily_allowance field.
	account.DefaultDailyAllowance = accountDescDailyAllowance.Default.(int64)
	// account.DailyAllowanceValidator is a validator for the "daily_allowance" field. It is called by the builders before save.
	account.DailyAllowanceValidator = accountDescDailyAllowance.Validators[0].(func(int64) error)
	// accountDescLastRefreshAt is the schema descriptor for last_refresh_at field.
	accountDescLastRefreshAt := accountFields[5].Descriptor()
	// account.DefaultLastRefreshAt holds the default value on creation for the last_refresh_at field.
	account.DefaultLastRefreshAt = accountDescLastRefreshAt.Default.(func() time.Time)
	// accountDescIsPremium is the schema descriptor for is_premium field.
	accountDescIsPremium := accountFields[7].Descriptor()
	// account.DefaultIsPremium holds the default value on creation for the is_premium field.
	account.DefaultIsPremium = accountDescIsPremium.Default.(bool)
	// accountDescIsPaid is the schema descriptor for is_paid field.
	accountDescIsPaid := accountFields[8].Descriptor()
	// account.DefaultIsPaid holds the default value on creation for the is_paid field.
	account.DefaultIsPaid = accountDescIsPaid.Default.(bool)
	// accountDescIsTokenUser is the schema descriptor for is_token_user field.
	accountDescIsTokenUser := accountFields[9].Descriptor()
	// account.DefaultIsTokenUser holds the default value on creation for the is_token_user field.
	account.DefaultIsTokenUser = accountDescIsTokenUser.Default.(bool)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[11].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[12].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	tokengrantFields := schema.TokenGrant{}.Fields()
	_ = tokengrantFields
	// tokengrantDescAccountID is the schema descriptor for account_id field.
	tokengrantDescAccountID := tokengrantFields[0].Descriptor()
	// tokengrant.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	tokengrant.AccountIDValidator = tokengrantDescAccountID.Validators[0].(func(int) error)
	// tokengrantDescTokens is the schema descriptor for tokens field.
	tokengrantDescTokens := tokengrantFields[1].Descriptor()
	// tokengrant.TokensValidator is a validator for the "tokens" field. It is called by the builders before save.
	tokengrant.TokensValidator = tokengrantDescTokens.Validators[0].(func(int64) error)
	// tokengrantDescCreatedAt is the schema descriptor for created_at field.
	tokengrantDescCreatedAt := tokengrantFields[5].Descriptor()
	// tokengrant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokengrant.DefaultCreatedAt = tokengrantDescCreatedAt.Default.(func() time.Time)
	tokentransactionFields := schema.TokenTransaction{}.Fields()
	_ = tokentransactionFields
	// tokentransactionDescAccountID is the schema descriptor for account_id field.
	tokentransactionDescAccountID := tokentransactionFields[0].Descriptor()
	// tokentransaction.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	tokentransaction.AccountIDValidator = tokentransactionDescAccountID.Validators[0].(func(int) error)
	// tokentransactionDescModelID is the schema descriptor for model_id field.
	tokentransactionDescModelID := tokentransactionFields[1].Descriptor()
	// tokentransaction.ModelIDValidator is a validator for the "model_id" field. It is called by the builders before save.
	tokentransaction.ModelIDValidator = tokentransactionDescModelID.Validators[0].(func(string) error)
	// tokentransactionDescTokensDeducted is the schema descriptor for tokens_deducted field.
	tokentransactionDescTokensDeducted := tokentransactionFields[3].Descriptor()
	// tokentransaction.TokensDeductedValidator is a validator for the "tokens_deducted" field. It is called by the builders before save.
	tokentransaction.TokensDeductedValidator = tokentransactionDescTokensDeducted.Validators[0].(func(int64) error)
	// tokentransactionDescDeductedFromPaid is the schema descriptor for deducted_from_paid field.
	tokentransactionDescDeductedFromPaid := tokentransactionFields[4].Descriptor()
	// tokentransaction.DefaultDeductedFromPaid holds the default value on creation for the deducted_from_paid field.
	tokentransaction.DefaultDeductedFromPaid = tokentransactionDescDeductedFromPaid.Default.(int64)
	// tokentransaction.DeductedFromPaidValidator is a validator for the "deducted_from_paid" field. It is called by the builders before save.
	tokentransaction.DeductedFromPaidValidator = tokentransactionDescDeductedFromPaid.Validators[0].(func(int64) error)
	// tokentransactionDescDeductedFromFree is the schema descriptor for deducted_from_free field.
	tokentransactionDescDeductedFromFree := tokentransactionFields[5].Descriptor()
	// tokentransaction.DefaultDeductedFromFree holds the default value on creation for the deducted_from_free field.
	tokentransaction.DefaultDeductedFromFree = tokentransactionDescDeductedFromFree.Default.(int64)
	// tokentransaction.DeductedFromFreeValidator is a validator for the "deducted_from_free" field. It is called by the builders before save.
	tokentransaction.DeductedFromFreeValidator = tokentransactionDescDeductedFromFree.Validators[0].(func(int64) error)
	// tokentransactionDescProviderCostUsd is the schema descriptor for provider_cost_usd field.
	tokentransactionDescProviderCostUsd := tokentransactionFields[6].Descriptor()
	// tokentransaction.DefaultProviderCostUsd holds the default value on creation for the provider_cost_usd field.
	tokentransaction.DefaultProviderCostUsd = tokentransactionDescProviderCostUsd.Default.(float64)
	// tokentransactionDescCreatedAt is the schema descriptor for created_at field.
	tokentransactionDescCreatedAt := tokentransactionFields[7].Descriptor()
	// tokentransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokentransaction.DefaultCreatedAt = tokentransactionDescCreatedAt.Default.(func() time.Time)
}
