// Code generated by ent, DO NOT EDIT.

package envelope

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldID, id))
}

// EnvelopeID applies equality check predicate on the "envelope_id" field. It's identical to EnvelopeIDEQ.
func EnvelopeID(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldEnvelopeID, v))
}

// XMLFile applies equality check predicate on the "xml_file" field. It's identical to XMLFileEQ.
func XMLFile(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldXMLFile, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldCreatedAt, v))
}

// EnvelopeIDEQ applies the EQ predicate on the "envelope_id" field.
func EnvelopeIDEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldEnvelopeID, v))
}

// EnvelopeIDNEQ applies the NEQ predicate on the "envelope_id" field.
func EnvelopeIDNEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldEnvelopeID, v))
}

// EnvelopeIDIn applies the In predicate on the "envelope_id" field.
func EnvelopeIDIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldEnvelopeID, vs...))
}

// EnvelopeIDNotIn applies the NotIn predicate on the "envelope_id" field.
func EnvelopeIDNotIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldEnvelopeID, vs...))
}

// EnvelopeIDGT applies the GT predicate on the "envelope_id" field.
func EnvelopeIDGT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldEnvelopeID, v))
}

// EnvelopeIDGTE applies the GTE predicate on the "envelope_id" field.
func EnvelopeIDGTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldEnvelopeID, v))
}

// EnvelopeIDLT applies the LT predicate on the "envelope_id" field.
func EnvelopeIDLT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldEnvelopeID, v))
}

// EnvelopeIDLTE applies the LTE predicate on the "envelope_id" field.
func EnvelopeIDLTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldEnvelopeID, v))
}

// EnvelopeIDContains applies the Contains predicate on the "envelope_id" field.
func EnvelopeIDContains(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContains(FieldEnvelopeID, v))
}

// EnvelopeIDHasPrefix applies the HasPrefix predicate on the "envelope_id" field.
func EnvelopeIDHasPrefix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasPrefix(FieldEnvelopeID, v))
}

// EnvelopeIDHasSuffix applies the HasSuffix predicate on the "envelope_id" field.
func EnvelopeIDHasSuffix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasSuffix(FieldEnvelopeID, v))
}

// EnvelopeIDEqualFold applies the EqualFold predicate on the "envelope_id" field.
func EnvelopeIDEqualFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEqualFold(FieldEnvelopeID, v))
}

// EnvelopeIDContainsFold applies the ContainsFold predicate on the "envelope_id" field.
func EnvelopeIDContainsFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContainsFold(FieldEnvelopeID, v))
}

// XMLFileEQ applies the EQ predicate on the "xml_file" field.
func XMLFileEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldXMLFile, v))
}

// XMLFileNEQ applies the NEQ predicate on the "xml_file" field.
func XMLFileNEQ(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldXMLFile, v))
}

// XMLFileIn applies the In predicate on the "xml_file" field.
func XMLFileIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldXMLFile, vs...))
}

// XMLFileNotIn applies the NotIn predicate on the "xml_file" field.
func XMLFileNotIn(vs ...string) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldXMLFile, vs...))
}

// XMLFileGT applies the GT predicate on the "xml_file" field.
func XMLFileGT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldXMLFile, v))
}

// XMLFileGTE applies the GTE predicate on the "xml_file" field.
func XMLFileGTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldXMLFile, v))
}

// XMLFileLT applies the LT predicate on the "xml_file" field.
func XMLFileLT(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldXMLFile, v))
}

// XMLFileLTE applies the LTE predicate on the "xml_file" field.
func XMLFileLTE(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldXMLFile, v))
}

// XMLFileContains applies the Contains predicate on the "xml_file" field.
func XMLFileContains(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContains(FieldXMLFile, v))
}

// XMLFileHasPrefix applies the HasPrefix predicate on the "xml_file" field.
func XMLFileHasPrefix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasPrefix(FieldXMLFile, v))
}

// XMLFileHasSuffix applies the HasSuffix predicate on the "xml_file" field.
func XMLFileHasSuffix(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldHasSuffix(FieldXMLFile, v))
}

// XMLFileEqualFold applies the EqualFold predicate on the "xml_file" field.
func XMLFileEqualFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldEqualFold(FieldXMLFile, v))
}

// XMLFileContainsFold applies the ContainsFold predicate on the "xml_file" field.
func XMLFileContainsFold(v string) predicate.Envelope {
	return predicate.Envelope(sql.FieldContainsFold(FieldXMLFile, v))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Envelope {
	return predicate.Envelope(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Envelope) predicate.Envelope {
	return predicate.Envelope(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Envelope) predicate.Envelope {
	return predicate.Envelope(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Envelope) predicate.Envelope {
	return predicate.Envelope(sql.NotPredicates(p))
}
