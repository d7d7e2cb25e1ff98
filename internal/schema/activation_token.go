package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ActivationToken is a single-use, time-limited token mailed to a
// patient's guardian so they can set a password and activate the account.
type ActivationToken struct {
	ent.Schema
}

func (ActivationToken) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ActivationToken) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("token_hash").
			Unique().
			MaxLen(64).
			Sensitive().
			Comment("SHA-256 hex of the raw token; the raw value is only ever emailed"),

		field.Time("expires_at"),

		field.Time("used_at").
			Optional().
			Nillable(),
	}
}

func (ActivationToken) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("activation_tokens").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (ActivationToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("expires_at"),
	}
}
