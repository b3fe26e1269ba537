/*
 * @Description: WorkBasket 表（审批工作流容器）
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:20:32
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

// WorkBasket holds the schema definition for the WorkBasket entity.
type WorkBasket struct {
	ent.Schema
}

// Annotations of the WorkBasket.
func (WorkBasket) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("workbasket表，聚合将同时生效的一组关税变更"),
	}
}

// Fields of the WorkBasket.
func (WorkBasket) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.String("title").
			Comment("简短名称").
			MaxLen(255).
			NotEmpty(),
		field.Text("reason").
			Comment("变更原因").
			Optional(),
		field.Enum("status").
			Comment("审批工作流状态").
			Values(
				"editing",
				"awaiting_approval",
				"approval_rejected",
				"ready_for_export",
				"sent",
				"published",
				"export_error",
				"archived",
			).
			Default("editing"),
		field.String("author").
			Comment("创建人").
			NotEmpty().
			Immutable(),
		field.String("approver").
			Comment("审批人，批准前为空").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorkBasket.
func (WorkBasket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transactions", Transaction.Type),
	}
}

// Indexes of the WorkBasket.
func (WorkBasket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
