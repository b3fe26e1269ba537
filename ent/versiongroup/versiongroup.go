// Code generated by ent, DO NOT EDIT.

package versiongroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the versiongroup type in the database.
	Label = "version_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCurrentVersionID holds the string denoting the current_version_id field in the database.
	FieldCurrentVersionID = "current_version_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVersions holds the string denoting the versions edge name in mutations.
	EdgeVersions = "versions"
	// EdgeCurrentVersion holds the string denoting the current_version edge name in mutations.
	EdgeCurrentVersion = "current_version"
	// Table holds the table name of the versiongroup in the database.
	Table = "version_groups"
	// VersionsTable is the table that holds the versions relation/edge.
	VersionsTable = "tracked_entities"
	// VersionsInverseTable is the table name for the TrackedEntity entity.
	// It exists in this package in order to avoid circular dependency with the "trackedentity" package.
	VersionsInverseTable = "tracked_entities"
	// VersionsColumn is the table column denoting the versions relation/edge.
	VersionsColumn = "version_group_id"
	// CurrentVersionTable is the table that holds the current_version relation/edge.
	CurrentVersionTable = "version_groups"
	// CurrentVersionInverseTable is the table name for the TrackedEntity entity.
	// It exists in this package in order to avoid circular dependency with the "trackedentity" package.
	CurrentVersionInverseTable = "tracked_entities"
	// CurrentVersionColumn is the table column denoting the current_version relation/edge.
	CurrentVersionColumn = "current_version_id"
)

// Columns holds all SQL columns for versiongroup fields.
var Columns = []string{
	FieldID,
	FieldCurrentVersionID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the VersionGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCurrentVersionID orders the results by the current_version_id field.
func ByCurrentVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentVersionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVersionsCount orders the results by versions count.
func ByVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVersionsStep(), opts...)
	}
}

// ByVersions orders the results by versions terms.
func ByVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCurrentVersionField orders the results by current_version field.
func ByCurrentVersionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCurrentVersionStep(), sql.OrderByField(field, opts...))
	}
}
func newVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VersionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
	)
}
func newCurrentVersionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CurrentVersionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, CurrentVersionTable, CurrentVersionColumn),
	)
}
