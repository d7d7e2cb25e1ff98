package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/ortholab/depisto_backend/internal/ide"
)

// Passation is one attempt by a patient at completing a prescribed test.
// started/in_progress/suspended are the active states; finished and
// abandoned are terminal.
type Passation struct {
	ent.Schema
}

func (Passation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Passation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("prescription_id", uuid.UUID{}).
			Comment("FK → prescriptions.id"),

		field.Enum("status").
			Values("started", "in_progress", "suspended", "finished", "abandoned").
			Default("started"),

		field.JSON("answers", ide.AnswerSet{}).
			Optional().
			Default(ide.AnswerSet{}).
			Comment(`{"PART:DOMAIN:ORDER": "yes"|"no"}`),

		field.JSON("scores", ide.ScoreSet{}).
			Optional().
			Comment("Last computed score snapshot"),

		field.Int("progress").
			Default(0).
			Min(0).
			Max(100),

		field.String("current_part").
			Optional().
			Nillable().
			MaxLen(2),

		field.Int("chronological_age_months").
			NonNegative().
			Comment("Frozen at creation from birth_date vs started_at"),

		field.Time("birth_date"),

		field.Time("started_at"),

		field.Time("ended_at").
			Optional().
			Nillable(),

		field.Int("duration_minutes").
			Optional().
			Nillable(),

		field.Time("last_activity_at").
			Comment("Bumped on every answer write, used for idle reporting"),

		field.String("ip_address").
			Optional().
			Nillable().
			MaxLen(45),

		field.Text("user_agent").
			Optional().
			Nillable(),
	}
}

func (Passation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("prescription", Prescription.Type).
			Ref("passations").
			Unique().
			Required().
			Field("prescription_id"),
	}
}

func (Passation) Indexes() []ent.Index {
	return []ent.Index{
		// At most one non-terminal passation per prescription. The service
		// also checks before creating; this closes the check-then-create race.
		index.Fields("prescription_id").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('started', 'in_progress', 'suspended')")),
		index.Fields("status"),
	}
}
