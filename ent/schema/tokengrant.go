package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenGrant holds the schema definition for the TokenGrant entity.
// One row per credit applied to an account: daily refreshes, purchases
// and manual adjustments.
type TokenGrant struct {
	ent.Schema
}

// Fields of the TokenGrant.
func (TokenGrant) Fields() []ent.Field {
	return []ent.Field{
		field.Int("account_id").
			Positive().
			Comment("Account foreign key"),
		field.Int64("tokens").
			Positive().
			Comment("Tokens credited"),
		field.Enum("pool").
			Values("free", "paid").
			Comment("Which balance pool received the credit"),
		field.Enum("source").
			Values("daily_refresh", "purchase", "signup", "admin").
			Comment("What triggered the credit"),
		field.String("external_payment_ref").
			Optional().
			Comment("Stripe payment reference for purchase grants"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Timestamp of the credit"),
	}
}

// Edges of the TokenGrant.
func (TokenGrant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("grants").
			Field("account_id").
			Unique().
			Required().
			Comment("Account the credit was applied to"),
	}
}

// Indexes of the TokenGrant.
func (TokenGrant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "created_at"),
		index.Fields("source"),
		index.Fields("external_payment_ref"),
	}
}
