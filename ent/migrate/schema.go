// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "free_balance", Type: field.TypeInt64, Default: 0},
		{Name: "paid_balance", Type: field.TypeInt64, Default: 0},
		{Name: "daily_allowance", Type: field.TypeInt64, Default: 50000},
		{Name: "last_refresh_at", Type: field.TypeTime},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"free", "premium", "ultra_premium"}, Default: "free"},
		{Name: "is_premium", Type: field.TypeBool, Default: false},
		{Name: "is_paid", Type: field.TypeBool, Default: false},
		{Name: "is_token_user", Type: field.TypeBool, Default: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_user_id",
				Unique:  true,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
			{
				Name:    "account_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[11]},
			},
			{
				Name:    "account_tier",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[7]},
			},
			{
				Name:    "account_last_refresh_at",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[6]},
			},
		},
	}
	// TokenGrantsColumns holds the columns for the "token_grants" table.
	TokenGrantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tokens", Type: field.TypeInt64},
		{Name: "pool", Type: field.TypeEnum, Enums: []string{"free", "paid"}},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"daily_refresh", "purchase", "signup", "admin"}},
		{Name: "external_payment_ref", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt},
	}
	// TokenGrantsTable holds the schema information for the "token_grants" table.
	TokenGrantsTable = &schema.Table{
		Name:       "token_grants",
		Columns:    TokenGrantsColumns,
		PrimaryKey: []*schema.Column{TokenGrantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "token_grants_accounts_grants",
				Columns:    []*schema.Column{TokenGrantsColumns[6]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tokengrant_account_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenGrantsColumns[6], TokenGrantsColumns[5]},
			},
			{
				Name:    "tokengrant_source",
				Unique:  false,
				Columns: []*schema.Column{TokenGrantsColumns[3]},
			},
			{
				Name:    "tokengrant_external_payment_ref",
				Unique:  false,
				Columns: []*schema.Column{TokenGrantsColumns[4]},
			},
		},
	}
	// TokenTransactionsColumns holds the columns for the "token_transactions" table.
	TokenTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "model_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "tokens_deducted", Type: field.TypeInt64},
		{Name: "deducted_from_paid", Type: field.TypeInt64, Default: 0},
		{Name: "deducted_from_free", Type: field.TypeInt64, Default: 0},
		{Name: "provider_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeInt},
	}
	// TokenTransactionsTable holds the schema information for the "token_transactions" table.
	TokenTransactionsTable = &schema.Table{
		Name:       "token_transactions",
		Columns:    TokenTransactionsColumns,
		PrimaryKey: []*schema.Column{TokenTransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "token_transactions_accounts_transactions",
				Columns:    []*schema.Column{TokenTransactionsColumns[8]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tokentransaction_account_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenTransactionsColumns[8], TokenTransactionsColumns[7]},
			},
			{
				Name:    "tokentransaction_model_id",
				Unique:  false,
				Columns: []*schema.Column{TokenTransactionsColumns[1]},
			},
			{
				Name:    "tokentransaction_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenTransactionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		TokenGrantsTable,
		TokenTransactionsTable,
	}
)

func init() {
	TokenGrantsTable.ForeignKeys[0].RefTable = AccountsTable
	TokenTransactionsTable.ForeignKeys[0].RefTable = AccountsTable
}
