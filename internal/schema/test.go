package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Test is a screening questionnaire definition. Only one kind exists
// today (IDE); the kind discriminator keeps the door open without a
// subtype hierarchy.
type Test struct {
	ent.Schema
}

func (Test) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Test) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("kind").
			Values("IDE").
			Default("IDE"),

		field.String("name").
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("age_min_months").
			Default(15),

		field.Int("age_max_months").
			Default(72),

		field.Bool("is_active").
			Default(true),
	}
}

func (Test) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", TestItem.Type),
		edge.To("prescriptions", Prescription.Type),
	}
}
