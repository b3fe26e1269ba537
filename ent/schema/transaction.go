/*
 * @Description: 事务表（全序的变更单元）
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:15:58
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Transaction holds the schema definition for the Transaction entity.
type Transaction struct {
	ent.Schema
}

// Annotations of the Transaction.
func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("事务表，(partition, order) 构成严格全序"),
	}
}

// Fields of the Transaction.
func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Int("partition").
			Comment("分区：1=seed_file 2=revision 3=draft，分区值编码时间先后"),
		field.Int("order").
			Comment("分区内的序号，由排序分配器串行分配"),
		field.Uint("workbasket_id").
			Comment("所属workbasket ID").
			Immutable(),
		field.String("composite_key").
			Comment("复合键 workbasketID-order，导入去重用").
			Unique(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Transaction.
func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workbasket", WorkBasket.Type).
			Ref("transactions").
			Field("workbasket_id").
			Unique().
			Required().
			Immutable(),
		edge.To("entities", TrackedEntity.Type),
	}
}

// Indexes of the Transaction.
func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("partition", "order").Unique(),
		index.Fields("workbasket_id"),
	}
}
