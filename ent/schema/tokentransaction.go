package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenTransaction holds the schema definition for the TokenTransaction entity.
// Rows are append-only and exist for audit and display; balances are never
// recomputed from them.
type TokenTransaction struct {
	ent.Schema
}

// Fields of the TokenTransaction.
func (TokenTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("account_id").
			Positive().
			Comment("Account foreign key"),
		field.String("model_id").
			NotEmpty().
			Comment("Model identifier the request was billed against"),
		field.String("provider").
			Optional().
			Comment("Upstream AI provider that served the request"),
		field.Int64("tokens_deducted").
			Positive().
			Comment("Total tokens charged for the request"),
		field.Int64("deducted_from_paid").
			Default(0).
			NonNegative().
			Comment("Portion charged to the paid pool"),
		field.Int64("deducted_from_free").
			Default(0).
			NonNegative().
			Comment("Portion charged to the free pool"),
		field.Float("provider_cost_usd").
			Default(0).
			Comment("Approximate upstream cost in USD, informational only"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Timestamp of the deduction"),
	}
}

// Edges of the TokenTransaction.
func (TokenTransaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("transactions").
			Field("account_id").
			Unique().
			Required().
			Comment("Account the deduction was charged to"),
	}
}

// Indexes of the TokenTransaction.
func (TokenTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "created_at"),
		index.Fields("model_id"),
		index.Fields("created_at"),
	}
}
