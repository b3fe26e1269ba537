// Code generated by ent, DO NOT EDIT.

package envelope

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the envelope type in the database.
	Label = "envelope"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEnvelopeID holds the string denoting the envelope_id field in the database.
	FieldEnvelopeID = "envelope_id"
	// FieldXMLFile holds the string denoting the xml_file field in the database.
	FieldXMLFile = "xml_file"
	// FieldDeleted holds the string denoting the deleted field in the database.
	FieldDeleted = "deleted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the envelope in the database.
	Table = "envelopes"
)

// Columns holds all SQL columns for envelope fields.
var Columns = []string{
	FieldID,
	FieldEnvelopeID,
	FieldXMLFile,
	FieldDeleted,
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
	// EnvelopeIDValidator is a validator for the "envelope_id" field. It is called by the builders before save.
	EnvelopeIDValidator func(string) error
	// DefaultXMLFile holds the default value on creation for the "xml_file" field.
	DefaultXMLFile string
	// DefaultDeleted holds the default value on creation for the "deleted" field.
	DefaultDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Envelope queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEnvelopeID orders the results by the envelope_id field.
func ByEnvelopeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnvelopeID, opts...).ToFunc()
}

// ByXMLFile orders the results by the xml_file field.
func ByXMLFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXMLFile, opts...).ToFunc()
}

// ByDeleted orders the results by the deleted field.
func ByDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
