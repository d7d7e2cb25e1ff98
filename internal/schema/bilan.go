package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/ortholab/depisto_backend/internal/ide"
)

// Bilan is the clinical report built from a finished passation. A
// prescription accumulates versioned bilans over time; a finalized bilan
// is immutable.
type Bilan struct {
	ent.Schema
}

func (Bilan) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Bilan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("prescription_id", uuid.UUID{}).
			Comment("FK → prescriptions.id"),

		field.Enum("status").
			Values("generated", "in_review", "validated", "finalized").
			Default("generated"),

		field.Int("version").
			Positive().
			Comment("Monotonic per prescription, starting at 1"),

		field.JSON("detailed_scores", ide.ScoreSet{}).
			Comment("Per-domain score, thresholds and risk tier"),

		field.Int("dg_score").
			NonNegative(),

		field.Enum("global_risk").
			Values("low", "moderate", "high", "very_high"),

		field.Int("developmental_age_months").
			NonNegative().
			Comment("min(dg_score, chronological age + 6); placeholder heuristic"),

		field.JSON("graphic_profile", []ide.ProfileEntry{}).
			Optional(),

		field.JSON("strengths", []ide.Finding{}).
			Optional(),

		field.JSON("watch_points", []ide.Finding{}).
			Optional(),

		field.Text("interpretation").
			Comment("Automatic narrative, consistency warnings appended"),

		field.Text("practitioner_comments").
			Optional().
			Nillable(),

		field.Text("recommendations").
			Optional().
			Nillable(),

		field.Time("generated_at"),

		field.Time("validated_at").
			Optional().
			Nillable().
			Comment("Set exactly once, on the first transition to validated"),

		field.String("pdf_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 object key of the exported PDF"),
	}
}

func (Bilan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("prescription", Prescription.Type).
			Ref("bilans").
			Unique().
			Required().
			Field("prescription_id"),
	}
}

func (Bilan) Indexes() []ent.Index {
	return []ent.Index{
		// Guards the next-version computation against concurrent generation.
		index.Fields("prescription_id", "version").
			Unique(),
		index.Fields("status"),
	}
}
