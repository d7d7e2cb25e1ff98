package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a child followed by a practitioner. The person answering the
// questionnaire is a parent/guardian using the patient's account.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("practitioner_id", uuid.UUID{}).
			Comment("FK → users.id (referring practitioner)"),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.Time("birth_date"),

		field.String("guardian_email").
			Unique().
			MaxLen(255).
			Comment("Login and notification address of the parent/guardian"),

		field.String("guardian_phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("social_security_encrypted").
			Optional().
			Nillable().
			Sensitive().
			Comment("AES-256-GCM, base64(nonce||ciphertext)"),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive().
			Comment("Set when the guardian activates the account"),

		field.Bool("activated").
			Default(false),

		field.Time("activated_at").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("practitioner", User.Type).
			Ref("patients").
			Unique().
			Required().
			Field("practitioner_id"),
		edge.To("prescriptions", Prescription.Type),
		edge.To("activation_tokens", ActivationToken.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("practitioner_id"),
	}
}
