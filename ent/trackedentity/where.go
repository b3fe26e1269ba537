// Code generated by ent, DO NOT EDIT.

package trackedentity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldKind, v))
}

// VersionGroupID applies equality check predicate on the "version_group_id" field. It's identical to VersionGroupIDEQ.
func VersionGroupID(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldVersionGroupID, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldTransactionID, v))
}

// Sid applies equality check predicate on the "sid" field. It's identical to SidEQ.
func Sid(v int) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldSid, v))
}

// TypeCode applies equality check predicate on the "type_code" field. It's identical to TypeCodeEQ.
func TypeCode(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldTypeCode, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldCode, v))
}

// ValidityStart applies equality check predicate on the "validity_start" field. It's identical to ValidityStartEQ.
func ValidityStart(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldValidityStart, v))
}

// ValidityEnd applies equality check predicate on the "validity_end" field. It's identical to ValidityEndEQ.
func ValidityEnd(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldValidityEnd, v))
}

// ParentGroupID applies equality check predicate on the "parent_group_id" field. It's identical to ParentGroupIDEQ.
func ParentGroupID(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldParentGroupID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldContainsFold(FieldKind, v))
}

// VersionGroupIDEQ applies the EQ predicate on the "version_group_id" field.
func VersionGroupIDEQ(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldVersionGroupID, v))
}

// VersionGroupIDNEQ applies the NEQ predicate on the "version_group_id" field.
func VersionGroupIDNEQ(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldVersionGroupID, v))
}

// VersionGroupIDIn applies the In predicate on the "version_group_id" field.
func VersionGroupIDIn(vs ...uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldVersionGroupID, vs...))
}

// VersionGroupIDNotIn applies the NotIn predicate on the "version_group_id" field.
func VersionGroupIDNotIn(vs ...uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldVersionGroupID, vs...))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldTransactionID, vs...))
}

// UpdateTypeEQ applies the EQ predicate on the "update_type" field.
func UpdateTypeEQ(v UpdateType) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldUpdateType, v))
}

// UpdateTypeNEQ applies the NEQ predicate on the "update_type" field.
func UpdateTypeNEQ(v UpdateType) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldUpdateType, v))
}

// UpdateTypeIn applies the In predicate on the "update_type" field.
func UpdateTypeIn(vs ...UpdateType) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldUpdateType, vs...))
}

// UpdateTypeNotIn applies the NotIn predicate on the "update_type" field.
func UpdateTypeNotIn(vs ...UpdateType) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldUpdateType, vs...))
}

// SidEQ applies the EQ predicate on the "sid" field.
func SidEQ(v int) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldSid, v))
}

// SidNEQ applies the NEQ predicate on the "sid" field.
func SidNEQ(v int) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldSid, v))
}

// SidIn applies the In predicate on the "sid" field.
func SidIn(vs ...int) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldSid, vs...))
}

// SidNotIn applies the NotIn predicate on the "sid" field.
func SidNotIn(vs ...int) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldSid, vs...))
}

// SidGT applies the GT predicate on the "sid" field.
func SidGT(v int) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGT(FieldSid, v))
}

// SidGTE applies the GTE predicate on the "sid" field.
func SidGTE(v int) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGTE(FieldSid, v))
}

// SidLT applies the LT predicate on the "sid" field.
func SidLT(v int) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLT(FieldSid, v))
}

// SidLTE applies the LTE predicate on the "sid" field.
func SidLTE(v int) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLTE(FieldSid, v))
}

// SidIsNil applies the IsNil predicate on the "sid" field.
func SidIsNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIsNull(FieldSid))
}

// SidNotNil applies the NotNil predicate on the "sid" field.
func SidNotNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotNull(FieldSid))
}

// TypeCodeEQ applies the EQ predicate on the "type_code" field.
func TypeCodeEQ(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldTypeCode, v))
}

// TypeCodeNEQ applies the NEQ predicate on the "type_code" field.
func TypeCodeNEQ(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldTypeCode, v))
}

// TypeCodeIn applies the In predicate on the "type_code" field.
func TypeCodeIn(vs ...string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldTypeCode, vs...))
}

// TypeCodeNotIn applies the NotIn predicate on the "type_code" field.
func TypeCodeNotIn(vs ...string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldTypeCode, vs...))
}

// TypeCodeGT applies the GT predicate on the "type_code" field.
func TypeCodeGT(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGT(FieldTypeCode, v))
}

// TypeCodeGTE applies the GTE predicate on the "type_code" field.
func TypeCodeGTE(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGTE(FieldTypeCode, v))
}

// TypeCodeLT applies the LT predicate on the "type_code" field.
func TypeCodeLT(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLT(FieldTypeCode, v))
}

// TypeCodeLTE applies the LTE predicate on the "type_code" field.
func TypeCodeLTE(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLTE(FieldTypeCode, v))
}

// TypeCodeContains applies the Contains predicate on the "type_code" field.
func TypeCodeContains(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldContains(FieldTypeCode, v))
}

// TypeCodeHasPrefix applies the HasPrefix predicate on the "type_code" field.
func TypeCodeHasPrefix(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldHasPrefix(FieldTypeCode, v))
}

// TypeCodeHasSuffix applies the HasSuffix predicate on the "type_code" field.
func TypeCodeHasSuffix(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldHasSuffix(FieldTypeCode, v))
}

// TypeCodeIsNil applies the IsNil predicate on the "type_code" field.
func TypeCodeIsNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIsNull(FieldTypeCode))
}

// TypeCodeNotNil applies the NotNil predicate on the "type_code" field.
func TypeCodeNotNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotNull(FieldTypeCode))
}

// TypeCodeEqualFold applies the EqualFold predicate on the "type_code" field.
func TypeCodeEqualFold(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEqualFold(FieldTypeCode, v))
}

// TypeCodeContainsFold applies the ContainsFold predicate on the "type_code" field.
func TypeCodeContainsFold(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldContainsFold(FieldTypeCode, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldHasSuffix(FieldCode, v))
}

// CodeIsNil applies the IsNil predicate on the "code" field.
func CodeIsNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIsNull(FieldCode))
}

// CodeNotNil applies the NotNil predicate on the "code" field.
func CodeNotNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotNull(FieldCode))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldContainsFold(FieldCode, v))
}

// ValidityStartEQ applies the EQ predicate on the "validity_start" field.
func ValidityStartEQ(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldValidityStart, v))
}

// ValidityStartNEQ applies the NEQ predicate on the "validity_start" field.
func ValidityStartNEQ(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldValidityStart, v))
}

// ValidityStartIn applies the In predicate on the "validity_start" field.
func ValidityStartIn(vs ...time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldValidityStart, vs...))
}

// ValidityStartNotIn applies the NotIn predicate on the "validity_start" field.
func ValidityStartNotIn(vs ...time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldValidityStart, vs...))
}

// ValidityStartGT applies the GT predicate on the "validity_start" field.
func ValidityStartGT(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGT(FieldValidityStart, v))
}

// ValidityStartGTE applies the GTE predicate on the "validity_start" field.
func ValidityStartGTE(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGTE(FieldValidityStart, v))
}

// ValidityStartLT applies the LT predicate on the "validity_start" field.
func ValidityStartLT(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLT(FieldValidityStart, v))
}

// ValidityStartLTE applies the LTE predicate on the "validity_start" field.
func ValidityStartLTE(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLTE(FieldValidityStart, v))
}

// ValidityEndEQ applies the EQ predicate on the "validity_end" field.
func ValidityEndEQ(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldValidityEnd, v))
}

// ValidityEndNEQ applies the NEQ predicate on the "validity_end" field.
func ValidityEndNEQ(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldValidityEnd, v))
}

// ValidityEndIn applies the In predicate on the "validity_end" field.
func ValidityEndIn(vs ...time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldValidityEnd, vs...))
}

// ValidityEndNotIn applies the NotIn predicate on the "validity_end" field.
func ValidityEndNotIn(vs ...time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldValidityEnd, vs...))
}

// ValidityEndGT applies the GT predicate on the "validity_end" field.
func ValidityEndGT(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGT(FieldValidityEnd, v))
}

// ValidityEndGTE applies the GTE predicate on the "validity_end" field.
func ValidityEndGTE(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGTE(FieldValidityEnd, v))
}

// ValidityEndLT applies the LT predicate on the "validity_end" field.
func ValidityEndLT(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLT(FieldValidityEnd, v))
}

// ValidityEndLTE applies the LTE predicate on the "validity_end" field.
func ValidityEndLTE(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLTE(FieldValidityEnd, v))
}

// ValidityEndIsNil applies the IsNil predicate on the "validity_end" field.
func ValidityEndIsNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIsNull(FieldValidityEnd))
}

// ValidityEndNotNil applies the NotNil predicate on the "validity_end" field.
func ValidityEndNotNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotNull(FieldValidityEnd))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotNull(FieldPayload))
}

// ParentGroupIDEQ applies the EQ predicate on the "parent_group_id" field.
func ParentGroupIDEQ(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldParentGroupID, v))
}

// ParentGroupIDNEQ applies the NEQ predicate on the "parent_group_id" field.
func ParentGroupIDNEQ(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldParentGroupID, v))
}

// ParentGroupIDIn applies the In predicate on the "parent_group_id" field.
func ParentGroupIDIn(vs ...uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldParentGroupID, vs...))
}

// ParentGroupIDNotIn applies the NotIn predicate on the "parent_group_id" field.
func ParentGroupIDNotIn(vs ...uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldParentGroupID, vs...))
}

// ParentGroupIDGT applies the GT predicate on the "parent_group_id" field.
func ParentGroupIDGT(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGT(FieldParentGroupID, v))
}

// ParentGroupIDGTE applies the GTE predicate on the "parent_group_id" field.
func ParentGroupIDGTE(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGTE(FieldParentGroupID, v))
}

// ParentGroupIDLT applies the LT predicate on the "parent_group_id" field.
func ParentGroupIDLT(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLT(FieldParentGroupID, v))
}

// ParentGroupIDLTE applies the LTE predicate on the "parent_group_id" field.
func ParentGroupIDLTE(v uint) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLTE(FieldParentGroupID, v))
}

// ParentGroupIDIsNil applies the IsNil predicate on the "parent_group_id" field.
func ParentGroupIDIsNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIsNull(FieldParentGroupID))
}

// ParentGroupIDNotNil applies the NotNil predicate on the "parent_group_id" field.
func ParentGroupIDNotNil() predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotNull(FieldParentGroupID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.FieldLTE(FieldCreatedAt, v))
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.TrackedEntity {
	return predicate.TrackedEntity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.VersionGroup) predicate.TrackedEntity {
	return predicate.TrackedEntity(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTransaction applies the HasEdge predicate on the "transaction" edge.
func HasTransaction() predicate.TrackedEntity {
	return predicate.TrackedEntity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TransactionTable, TransactionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionWith applies the HasEdge predicate on the "transaction" edge with a given conditions (other predicates).
func HasTransactionWith(preds ...predicate.Transaction) predicate.TrackedEntity {
	return predicate.TrackedEntity(func(s *sql.Selector) {
		step := newTransactionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrackedEntity) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrackedEntity) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrackedEntity) predicate.TrackedEntity {
	return predicate.TrackedEntity(sql.NotPredicates(p))
}
