// Code generated by ent, DO NOT EDIT.

package versiongroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldLTE(FieldID, id))
}

// CurrentVersionID applies equality check predicate on the "current_version_id" field. It's identical to CurrentVersionIDEQ.
func CurrentVersionID(v uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldEQ(FieldCurrentVersionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CurrentVersionIDEQ applies the EQ predicate on the "current_version_id" field.
func CurrentVersionIDEQ(v uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldEQ(FieldCurrentVersionID, v))
}

// CurrentVersionIDNEQ applies the NEQ predicate on the "current_version_id" field.
func CurrentVersionIDNEQ(v uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldNEQ(FieldCurrentVersionID, v))
}

// CurrentVersionIDIn applies the In predicate on the "current_version_id" field.
func CurrentVersionIDIn(vs ...uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldIn(FieldCurrentVersionID, vs...))
}

// CurrentVersionIDNotIn applies the NotIn predicate on the "current_version_id" field.
func CurrentVersionIDNotIn(vs ...uint) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldNotIn(FieldCurrentVersionID, vs...))
}

// CurrentVersionIDIsNil applies the IsNil predicate on the "current_version_id" field.
func CurrentVersionIDIsNil() predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldIsNull(FieldCurrentVersionID))
}

// CurrentVersionIDNotNil applies the NotNil predicate on the "current_version_id" field.
func CurrentVersionIDNotNil() predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldNotNull(FieldCurrentVersionID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VersionGroup {
	return predicate.VersionGroup(sql.FieldLTE(FieldCreatedAt, v))
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.VersionGroup {
	return predicate.VersionGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.TrackedEntity) predicate.VersionGroup {
	return predicate.VersionGroup(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCurrentVersion applies the HasEdge predicate on the "current_version" edge.
func HasCurrentVersion() predicate.VersionGroup {
	return predicate.VersionGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, CurrentVersionTable, CurrentVersionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCurrentVersionWith applies the HasEdge predicate on the "current_version" edge with a given conditions (other predicates).
func HasCurrentVersionWith(preds ...predicate.TrackedEntity) predicate.VersionGroup {
	return predicate.VersionGroup(func(s *sql.Selector) {
		step := newCurrentVersionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VersionGroup) predicate.VersionGroup {
	return predicate.VersionGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VersionGroup) predicate.VersionGroup {
	return predicate.VersionGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VersionGroup) predicate.VersionGroup {
	return predicate.VersionGroup(sql.NotPredicates(p))
}
