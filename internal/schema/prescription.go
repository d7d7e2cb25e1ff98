package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Prescription is a practitioner's assignment of a test to a patient.
// It exclusively owns its passations and bilans.
type Prescription struct {
	ent.Schema
}

func (Prescription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Prescription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("practitioner_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("test_id", uuid.UUID{}).
			Comment("FK → tests.id"),

		field.Enum("status").
			Values("pending", "in_progress", "completed", "validated", "cancelled").
			Default("pending"),

		field.Bool("gdpr_consent").
			Default(false).
			Comment("Guardian consent; a passation cannot start without it"),

		field.Int("priority").
			Default(2).
			Min(1).
			Max(3).
			Comment("1 = urgent, 2 = normal, 3 = low"),

		field.Time("deadline").
			Optional().
			Nillable().
			Comment("Date by which the test should be taken"),

		field.Text("instructions").
			Optional().
			Nillable(),
	}
}

func (Prescription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("practitioner", User.Type).
			Ref("prescriptions").
			Unique().
			Required().
			Field("practitioner_id"),
		edge.From("patient", Patient.Type).
			Ref("prescriptions").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("test", Test.Type).
			Ref("prescriptions").
			Unique().
			Required().
			Field("test_id"),
		edge.To("passations", Passation.Type),
		edge.To("bilans", Bilan.Type),
	}
}

func (Prescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("practitioner_id"),
		index.Fields("patient_id"),
		index.Fields("status"),
	}
}
