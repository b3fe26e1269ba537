// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transaction type in the database.
	Label = "transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPartition holds the string denoting the partition field in the database.
	FieldPartition = "partition"
	// FieldOrder holds the string denoting the order field in the database.
	FieldOrder = "order"
	// FieldWorkbasketID holds the string denoting the workbasket_id field in the database.
	FieldWorkbasketID = "workbasket_id"
	// FieldCompositeKey holds the string denoting the composite_key field in the database.
	FieldCompositeKey = "composite_key"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkbasket holds the string denoting the workbasket edge name in mutations.
	EdgeWorkbasket = "workbasket"
	// EdgeEntities holds the string denoting the entities edge name in mutations.
	EdgeEntities = "entities"
	// Table holds the table name of the transaction in the database.
	Table = "transactions"
	// WorkbasketTable is the table that holds the workbasket relation/edge.
	WorkbasketTable = "transactions"
	// WorkbasketInverseTable is the table name for the WorkBasket entity.
	// It exists in this package in order to avoid circular dependency with the "workbasket" package.
	WorkbasketInverseTable = "work_baskets"
	// WorkbasketColumn is the table column denoting the workbasket relation/edge.
	WorkbasketColumn = "workbasket_id"
	// EntitiesTable is the table that holds the entities relation/edge.
	EntitiesTable = "tracked_entities"
	// EntitiesInverseTable is the table name for the TrackedEntity entity.
	// It exists in this package in order to avoid circular dependency with the "trackedentity" package.
	EntitiesInverseTable = "tracked_entities"
	// EntitiesColumn is the table column denoting the entities relation/edge.
	EntitiesColumn = "transaction_id"
)

// Columns holds all SQL columns for transaction fields.
var Columns = []string{
	FieldID,
	FieldPartition,
	FieldOrder,
	FieldWorkbasketID,
	FieldCompositeKey,
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

// OrderOption defines the ordering options for the Transaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPartition orders the results by the partition field.
func ByPartition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartition, opts...).ToFunc()
}

// ByOrder orders the results by the order field.
func ByOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrder, opts...).ToFunc()
}

// ByWorkbasketID orders the results by the workbasket_id field.
func ByWorkbasketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkbasketID, opts...).ToFunc()
}

// ByCompositeKey orders the results by the composite_key field.
func ByCompositeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompositeKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkbasketField orders the results by workbasket field.
func ByWorkbasketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkbasketStep(), sql.OrderByField(field, opts...))
	}
}

// ByEntitiesCount orders the results by entities count.
func ByEntitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntitiesStep(), opts...)
	}
}

// ByEntities orders the results by entities terms.
func ByEntities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkbasketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkbasketInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkbasketTable, WorkbasketColumn),
	)
}
func newEntitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntitiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntitiesTable, EntitiesColumn),
	)
}
