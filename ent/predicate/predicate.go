// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// TokenGrant is the predicate function for tokengrant builders.
type TokenGrant func(*sql.Selector)

// TokenTransaction is the predicate function for tokentransaction builders.
type TokenTransaction func(*sql.Selector)
