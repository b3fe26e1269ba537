// Code generated by ent, DO NOT EDIT.

package trackedentity

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the trackedentity type in the database.
	Label = "tracked_entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldVersionGroupID holds the string denoting the version_group_id field in the database.
	FieldVersionGroupID = "version_group_id"
	// FieldTransactionID holds the string denoting the transaction_id field in the database.
	FieldTransactionID = "transaction_id"
	// FieldUpdateType holds the string denoting the update_type field in the database.
	FieldUpdateType = "update_type"
	// FieldSid holds the string denoting the sid field in the database.
	FieldSid = "sid"
	// FieldTypeCode holds the string denoting the type_code field in the database.
	FieldTypeCode = "type_code"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldValidityStart holds the string denoting the validity_start field in the database.
	FieldValidityStart = "validity_start"
	// FieldValidityEnd holds the string denoting the validity_end field in the database.
	FieldValidityEnd = "validity_end"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldParentGroupID holds the string denoting the parent_group_id field in the database.
	FieldParentGroupID = "parent_group_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeGroup holds the string denoting the group edge name in mutations.
	EdgeGroup = "group"
	// EdgeTransaction holds the string denoting the transaction edge name in mutations.
	EdgeTransaction = "transaction"
	// Table holds the table name of the trackedentity in the database.
	Table = "tracked_entities"
	// GroupTable is the table that holds the group relation/edge.
	GroupTable = "tracked_entities"
	// GroupInverseTable is the table name for the VersionGroup entity.
	// It exists in this package in order to avoid circular dependency with the "versiongroup" package.
	GroupInverseTable = "version_groups"
	// GroupColumn is the table column denoting the group relation/edge.
	GroupColumn = "version_group_id"
	// TransactionTable is the table that holds the transaction relation/edge.
	TransactionTable = "tracked_entities"
	// TransactionInverseTable is the table name for the Transaction entity.
	// It exists in this package in order to avoid circular dependency with the "transaction" package.
	TransactionInverseTable = "transactions"
	// TransactionColumn is the table column denoting the transaction relation/edge.
	TransactionColumn = "transaction_id"
)

// Columns holds all SQL columns for trackedentity fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldVersionGroupID,
	FieldTransactionID,
	FieldUpdateType,
	FieldSid,
	FieldTypeCode,
	FieldCode,
	FieldValidityStart,
	FieldValidityEnd,
	FieldPayload,
	FieldParentGroupID,
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
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// UpdateType defines the type for the "update_type" enum field.
type UpdateType string

// UpdateType values.
const (
	UpdateTypeCreate UpdateType = "create"
	UpdateTypeUpdate UpdateType = "update"
	UpdateTypeDelete UpdateType = "delete"
)

func (ut UpdateType) String() string {
	return string(ut)
}

// UpdateTypeValidator is a validator for the "update_type" field enum values. It is called by the builders before save.
func UpdateTypeValidator(ut UpdateType) error {
	switch ut {
	case UpdateTypeCreate, UpdateTypeUpdate, UpdateTypeDelete:
		return nil
	default:
		return fmt.Errorf("trackedentity: invalid enum value for update_type field: %q", ut)
	}
}

// OrderOption defines the ordering options for the TrackedEntity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByVersionGroupID orders the results by the version_group_id field.
func ByVersionGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionGroupID, opts...).ToFunc()
}

// ByTransactionID orders the results by the transaction_id field.
func ByTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionID, opts...).ToFunc()
}

// ByUpdateType orders the results by the update_type field.
func ByUpdateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateType, opts...).ToFunc()
}

// BySid orders the results by the sid field.
func BySid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSid, opts...).ToFunc()
}

// ByTypeCode orders the results by the type_code field.
func ByTypeCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeCode, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByValidityStart orders the results by the validity_start field.
func ByValidityStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidityStart, opts...).ToFunc()
}

// ByValidityEnd orders the results by the validity_end field.
func ByValidityEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidityEnd, opts...).ToFunc()
}

// ByParentGroupID orders the results by the parent_group_id field.
func ByParentGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentGroupID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByGroupField orders the results by group field.
func ByGroupField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupStep(), sql.OrderByField(field, opts...))
	}
}

// ByTransactionField orders the results by transaction field.
func ByTransactionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransactionStep(), sql.OrderByField(field, opts...))
	}
}
func newGroupStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
	)
}
func newTransactionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransactionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TransactionTable, TransactionColumn),
	)
}
