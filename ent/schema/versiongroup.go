/*
 * @Description: 版本组表（业务实体的逻辑身份）
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:02:11
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// VersionGroup holds the schema definition for the VersionGroup entity.
type VersionGroup struct {
	ent.Schema
}

// Annotations of the VersionGroup.
func (VersionGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("版本组表，一个逻辑实体跨版本的身份"),
	}
}

// Fields of the VersionGroup.
func (VersionGroup) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("current_version_id").
			Comment("当前权威版本的行ID，最新批准版本为删除时为空").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the VersionGroup.
func (VersionGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", TrackedEntity.Type).
			Comment("该逻辑实体的全部版本行"),
		edge.To("current_version", TrackedEntity.Type).
			Field("current_version_id").
			Unique(),
	}
}
