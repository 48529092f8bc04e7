package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for the Account entity.
// One account exists per platform user and is the source of truth
// for token balances and tier entitlement.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Opaque user identifier from the external auth provider"),
		field.String("email").
			Optional().
			Comment("Contact email for receipts and balance warnings"),
		field.Int64("free_balance").
			Default(0).
			NonNegative().
			Comment("Tokens granted by the daily allowance"),
		field.Int64("paid_balance").
			Default(0).
			NonNegative().
			Comment("Tokens acquired by purchase, spent before free balance"),
		field.Int64("daily_allowance").
			Default(50000).
			NonNegative().
			Comment("Tokens granted per 24h refresh cycle"),
		field.Time("last_refresh_at").
			Default(time.Now).
			Comment("Last time the daily allowance was granted"),
		field.Enum("tier").
			Values("free", "premium", "ultra_premium").
			Default("free").
			Comment("Denormalized entitlement tier, derivable from paid balance and purchases"),
		field.Bool("is_premium").
			Default(false).
			Comment("Denormalized premium flag; true whenever paid_balance > 0 or tier is not free"),
		field.Bool("is_paid").
			Default(false).
			Comment("Denormalized flag set on first purchase"),
		field.Bool("is_token_user").
			Default(true).
			Comment("Whether the account participates in the daily free allowance"),
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			Comment("Stripe customer ID"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transactions", TokenTransaction.Type).
			Comment("Append-only deduction history"),
		edge.To("grants", TokenGrant.Type).
			Comment("Append-only credit history"),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("stripe_customer_id"),
		index.Fields("tier"),
		index.Fields("last_refresh_at"),
	}
}
