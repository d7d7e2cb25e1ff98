package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TestItem is one question of a test grid. Items are seeded reference
// data, identified for answer lookup by (part, domain, order).
type TestItem struct {
	ent.Schema
}

func (TestItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TestItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("test_id", uuid.UUID{}).
			Comment("FK → tests.id"),

		field.String("part").
			MaxLen(2),

		field.String("domain").
			MaxLen(4),

		field.Int("item_order").
			Positive().
			Comment("Display/identity order within (part, domain)"),

		field.Text("text"),

		field.Bool("counts_dg").
			Default(false).
			Comment("Item contributes to the general-development composite"),

		field.Int("age_min_months").
			Optional().
			Nillable(),

		field.Int("age_max_months").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (TestItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("test", Test.Type).
			Ref("items").
			Unique().
			Required().
			Field("test_id"),
	}
}

func (TestItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id", "part", "domain", "item_order").
			Unique(),
		index.Fields("test_id", "part"),
	}
}
