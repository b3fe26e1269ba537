/*
 * @Description: Envelope 档案表
 * @Author: 安知鱼
 * @Date: 2026-02-10 14:24:07
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Envelope holds the schema definition for the Envelope entity.
type Envelope struct {
	ent.Schema
}

// Annotations of the Envelope.
func (Envelope) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("已生成导出文件的档案表"),
	}
}

// Fields of the Envelope.
func (Envelope) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.String("envelope_id").
			Comment("YYNNNN：两位年份+当年四位序号").
			MaxLen(6).
			Unique().
			NotEmpty().
			Immutable(),
		field.String("xml_file").
			Comment("导出文件的存储路径").
			Default(""),
		field.Bool("deleted").
			Comment("删除标记，文件无法立即物理删除时置位").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Envelope.
func (Envelope) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("envelope_id"),
	}
}
