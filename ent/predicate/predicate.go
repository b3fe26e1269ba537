// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Envelope is the predicate function for envelope builders.
type Envelope func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// TrackedEntity is the predicate function for trackedentity builders.
type TrackedEntity func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)

// VersionGroup is the predicate function for versiongroup builders.
type VersionGroup func(*sql.Selector)

// WorkBasket is the predicate function for workbasket builders.
type WorkBasket func(*sql.Selector)
