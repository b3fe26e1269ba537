// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldID, id))
}

// Partition applies equality check predicate on the "partition" field. It's identical to PartitionEQ.
func Partition(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPartition, v))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldOrder, v))
}

// WorkbasketID applies equality check predicate on the "workbasket_id" field. It's identical to WorkbasketIDEQ.
func WorkbasketID(v uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldWorkbasketID, v))
}

// CompositeKey applies equality check predicate on the "composite_key" field. It's identical to CompositeKeyEQ.
func CompositeKey(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCompositeKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// PartitionEQ applies the EQ predicate on the "partition" field.
func PartitionEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPartition, v))
}

// PartitionNEQ applies the NEQ predicate on the "partition" field.
func PartitionNEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldPartition, v))
}

// PartitionIn applies the In predicate on the "partition" field.
func PartitionIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldPartition, vs...))
}

// PartitionNotIn applies the NotIn predicate on the "partition" field.
func PartitionNotIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldPartition, vs...))
}

// PartitionGT applies the GT predicate on the "partition" field.
func PartitionGT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldPartition, v))
}

// PartitionGTE applies the GTE predicate on the "partition" field.
func PartitionGTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldPartition, v))
}

// PartitionLT applies the LT predicate on the "partition" field.
func PartitionLT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldPartition, v))
}

// PartitionLTE applies the LTE predicate on the "partition" field.
func PartitionLTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldPartition, v))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...int) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v int) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldOrder, v))
}

// WorkbasketIDEQ applies the EQ predicate on the "workbasket_id" field.
func WorkbasketIDEQ(v uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldWorkbasketID, v))
}

// WorkbasketIDNEQ applies the NEQ predicate on the "workbasket_id" field.
func WorkbasketIDNEQ(v uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldWorkbasketID, v))
}

// WorkbasketIDIn applies the In predicate on the "workbasket_id" field.
func WorkbasketIDIn(vs ...uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldWorkbasketID, vs...))
}

// WorkbasketIDNotIn applies the NotIn predicate on the "workbasket_id" field.
func WorkbasketIDNotIn(vs ...uint) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldWorkbasketID, vs...))
}

// CompositeKeyEQ applies the EQ predicate on the "composite_key" field.
func CompositeKeyEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCompositeKey, v))
}

// CompositeKeyNEQ applies the NEQ predicate on the "composite_key" field.
func CompositeKeyNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCompositeKey, v))
}

// CompositeKeyIn applies the In predicate on the "composite_key" field.
func CompositeKeyIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCompositeKey, vs...))
}

// CompositeKeyNotIn applies the NotIn predicate on the "composite_key" field.
func CompositeKeyNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCompositeKey, vs...))
}

// CompositeKeyGT applies the GT predicate on the "composite_key" field.
func CompositeKeyGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCompositeKey, v))
}

// CompositeKeyGTE applies the GTE predicate on the "composite_key" field.
func CompositeKeyGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCompositeKey, v))
}

// CompositeKeyLT applies the LT predicate on the "composite_key" field.
func CompositeKeyLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCompositeKey, v))
}

// CompositeKeyLTE applies the LTE predicate on the "composite_key" field.
func CompositeKeyLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCompositeKey, v))
}

// CompositeKeyContains applies the Contains predicate on the "composite_key" field.
func CompositeKeyContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldCompositeKey, v))
}

// CompositeKeyHasPrefix applies the HasPrefix predicate on the "composite_key" field.
func CompositeKeyHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldCompositeKey, v))
}

// CompositeKeyHasSuffix applies the HasSuffix predicate on the "composite_key" field.
func CompositeKeyHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldCompositeKey, v))
}

// CompositeKeyEqualFold applies the EqualFold predicate on the "composite_key" field.
func CompositeKeyEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldCompositeKey, v))
}

// CompositeKeyContainsFold applies the ContainsFold predicate on the "composite_key" field.
func CompositeKeyContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldCompositeKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkbasket applies the HasEdge predicate on the "workbasket" edge.
func HasWorkbasket() predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkbasketTable, WorkbasketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkbasketWith applies the HasEdge predicate on the "workbasket" edge with a given conditions (other predicates).
func HasWorkbasketWith(preds ...predicate.WorkBasket) predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := newWorkbasketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntities applies the HasEdge predicate on the "entities" edge.
func HasEntities() predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntitiesTable, EntitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntitiesWith applies the HasEdge predicate on the "entities" edge with a given conditions (other predicates).
func HasEntitiesWith(preds ...predicate.TrackedEntity) predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := newEntitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.NotPredicates(p))
}
