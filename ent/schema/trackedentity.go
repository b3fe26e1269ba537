/*
 * @Description: 版本行表（所有实体种类共用的多态表）
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:09:36
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

// TrackedEntity holds the schema definition for the TrackedEntity entity.
type TrackedEntity struct {
	ent.Schema
}

// Annotations of the TrackedEntity.
func (TrackedEntity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("版本行表，一行即一个不可变版本"),
	}
}

// Fields of the TrackedEntity.
func (TrackedEntity) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.String("kind").
			Comment("实体种类判别字段").
			NotEmpty().
			Immutable(),
		field.Uint("version_group_id").
			Comment("所属版本组ID").
			Immutable(),
		field.Uint("transaction_id").
			Comment("引入该版本的事务ID").
			Immutable(),
		field.Enum("update_type").
			Comment("变更类型：首版本为create，之后为update，末版本可为delete").
			Values("create", "update", "delete").
			Immutable(),
		field.Int("sid").
			Comment("系统分配的业务SID，按种类取用").
			Optional().
			Immutable(),
		field.String("type_code").
			Comment("业务键的类型段，按种类取用").
			Optional().
			Immutable(),
		field.String("code").
			Comment("业务键的编码段，按种类取用").
			Optional().
			Immutable(),
		field.Time("validity_start").
			Comment("有效期起（含当天）").
			SchemaType(map[string]string{"mysql": "date", "postgres": "date", "sqlite3": "date"}).
			Immutable(),
		field.Time("validity_end").
			Comment("有效期止（含当天），空为无限期").
			SchemaType(map[string]string{"mysql": "date", "postgres": "date", "sqlite3": "date"}).
			Optional().
			Nillable().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Comment("种类特有的业务字段").
			Optional().
			Immutable(),
		field.Uint("parent_group_id").
			Comment("从属记录回指父实体版本组，顶层记录为空").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TrackedEntity.
func (TrackedEntity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", VersionGroup.Type).
			Ref("versions").
			Field("version_group_id").
			Unique().
			Required().
			Immutable(),
		edge.From("transaction", Transaction.Type).
			Ref("entities").
			Field("transaction_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TrackedEntity.
func (TrackedEntity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "version_group_id"),
		index.Fields("kind", "sid"),
		index.Fields("transaction_id"),
		index.Fields("parent_group_id"),
	}
}
