// Code generated by ent, DO NOT EDIT.

package passation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldUpdatedAt, v))
}

// PrescriptionID applies equality check predicate on the "prescription_id" field. It's identical to PrescriptionIDEQ.
func PrescriptionID(v uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldPrescriptionID, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldProgress, v))
}

// CurrentPart applies equality check predicate on the "current_part" field. It's identical to CurrentPartEQ.
func CurrentPart(v string) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldCurrentPart, v))
}

// ChronologicalAgeMonths applies equality check predicate on the "chronological_age_months" field. It's identical to ChronologicalAgeMonthsEQ.
func ChronologicalAgeMonths(v int) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldChronologicalAgeMonths, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldBirthDate, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldEndedAt, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldDurationMinutes, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldLastActivityAt, v))
}

// IPAddress applies equality check predicate on the "ip_address" field. It's identical to IPAddressEQ.
func IPAddress(v string) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldIPAddress, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldUserAgent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldUpdatedAt, v))
}

// PrescriptionIDEQ applies the EQ predicate on the "prescription_id" field.
func PrescriptionIDEQ(v uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldPrescriptionID, v))
}

// PrescriptionIDNEQ applies the NEQ predicate on the "prescription_id" field.
func PrescriptionIDNEQ(v uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldPrescriptionID, v))
}

// PrescriptionIDIn applies the In predicate on the "prescription_id" field.
func PrescriptionIDIn(vs ...uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldPrescriptionID, vs...))
}

// PrescriptionIDNotIn applies the NotIn predicate on the "prescription_id" field.
func PrescriptionIDNotIn(vs ...uuid.UUID) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldPrescriptionID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldStatus, vs...))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.Passation {
	return predicate.Passation(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.Passation {
	return predicate.Passation(sql.FieldNotNull(FieldAnswers))
}

// ScoresIsNil applies the IsNil predicate on the "scores" field.
func ScoresIsNil() predicate.Passation {
	return predicate.Passation(sql.FieldIsNull(FieldScores))
}

// ScoresNotNil applies the NotNil predicate on the "scores" field.
func ScoresNotNil() predicate.Passation {
	return predicate.Passation(sql.FieldNotNull(FieldScores))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldProgress, v))
}

// CurrentPartEQ applies the EQ predicate on the "current_part" field.
func CurrentPartEQ(v string) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldCurrentPart, v))
}

// CurrentPartNEQ applies the NEQ predicate on the "current_part" field.
func CurrentPartNEQ(v string) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldCurrentPart, v))
}

// CurrentPartIn applies the In predicate on the "current_part" field.
func CurrentPartIn(vs ...string) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldCurrentPart, vs...))
}

// CurrentPartNotIn applies the NotIn predicate on the "current_part" field.
func CurrentPartNotIn(vs ...string) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldCurrentPart, vs...))
}

// CurrentPartGT applies the GT predicate on the "current_part" field.
func CurrentPartGT(v string) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldCurrentPart, v))
}

// CurrentPartGTE applies the GTE predicate on the "current_part" field.
func CurrentPartGTE(v string) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldCurrentPart, v))
}

// CurrentPartLT applies the LT predicate on the "current_part" field.
func CurrentPartLT(v string) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldCurrentPart, v))
}

// CurrentPartLTE applies the LTE predicate on the "current_part" field.
func CurrentPartLTE(v string) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldCurrentPart, v))
}

// CurrentPartContains applies the Contains predicate on the "current_part" field.
func CurrentPartContains(v string) predicate.Passation {
	return predicate.Passation(sql.FieldContains(FieldCurrentPart, v))
}

// CurrentPartHasPrefix applies the HasPrefix predicate on the "current_part" field.
func CurrentPartHasPrefix(v string) predicate.Passation {
	return predicate.Passation(sql.FieldHasPrefix(FieldCurrentPart, v))
}

// CurrentPartHasSuffix applies the HasSuffix predicate on the "current_part" field.
func CurrentPartHasSuffix(v string) predicate.Passation {
	return predicate.Passation(sql.FieldHasSuffix(FieldCurrentPart, v))
}

// CurrentPartIsNil applies the IsNil predicate on the "current_part" field.
func CurrentPartIsNil() predicate.Passation {
	return predicate.Passation(sql.FieldIsNull(FieldCurrentPart))
}

// CurrentPartNotNil applies the NotNil predicate on the "current_part" field.
func CurrentPartNotNil() predicate.Passation {
	return predicate.Passation(sql.FieldNotNull(FieldCurrentPart))
}

// CurrentPartEqualFold applies the EqualFold predicate on the "current_part" field.
func CurrentPartEqualFold(v string) predicate.Passation {
	return predicate.Passation(sql.FieldEqualFold(FieldCurrentPart, v))
}

// CurrentPartContainsFold applies the ContainsFold predicate on the "current_part" field.
func CurrentPartContainsFold(v string) predicate.Passation {
	return predicate.Passation(sql.FieldContainsFold(FieldCurrentPart, v))
}

// ChronologicalAgeMonthsEQ applies the EQ predicate on the "chronological_age_months" field.
func ChronologicalAgeMonthsEQ(v int) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldChronologicalAgeMonths, v))
}

// ChronologicalAgeMonthsNEQ applies the NEQ predicate on the "chronological_age_months" field.
func ChronologicalAgeMonthsNEQ(v int) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldChronologicalAgeMonths, v))
}

// ChronologicalAgeMonthsIn applies the In predicate on the "chronological_age_months" field.
func ChronologicalAgeMonthsIn(vs ...int) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldChronologicalAgeMonths, vs...))
}

// ChronologicalAgeMonthsNotIn applies the NotIn predicate on the "chronological_age_months" field.
func ChronologicalAgeMonthsNotIn(vs ...int) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldChronologicalAgeMonths, vs...))
}

// ChronologicalAgeMonthsGT applies the GT predicate on the "chronological_age_months" field.
func ChronologicalAgeMonthsGT(v int) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldChronologicalAgeMonths, v))
}

// ChronologicalAgeMonthsGTE applies the GTE predicate on the "chronological_age_months" field.
func ChronologicalAgeMonthsGTE(v int) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldChronologicalAgeMonths, v))
}

// ChronologicalAgeMonthsLT applies the LT predicate on the "chronological_age_months" field.
func ChronologicalAgeMonthsLT(v int) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldChronologicalAgeMonths, v))
}

// ChronologicalAgeMonthsLTE applies the LTE predicate on the "chronological_age_months" field.
func ChronologicalAgeMonthsLTE(v int) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldChronologicalAgeMonths, v))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldBirthDate, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Passation {
	return predicate.Passation(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Passation {
	return predicate.Passation(sql.FieldNotNull(FieldEndedAt))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldDurationMinutes, v))
}

// DurationMinutesIsNil applies the IsNil predicate on the "duration_minutes" field.
func DurationMinutesIsNil() predicate.Passation {
	return predicate.Passation(sql.FieldIsNull(FieldDurationMinutes))
}

// DurationMinutesNotNil applies the NotNil predicate on the "duration_minutes" field.
func DurationMinutesNotNil() predicate.Passation {
	return predicate.Passation(sql.FieldNotNull(FieldDurationMinutes))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldLastActivityAt, v))
}

// IPAddressEQ applies the EQ predicate on the "ip_address" field.
func IPAddressEQ(v string) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldIPAddress, v))
}

// IPAddressNEQ applies the NEQ predicate on the "ip_address" field.
func IPAddressNEQ(v string) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldIPAddress, v))
}

// IPAddressIn applies the In predicate on the "ip_address" field.
func IPAddressIn(vs ...string) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldIPAddress, vs...))
}

// IPAddressNotIn applies the NotIn predicate on the "ip_address" field.
func IPAddressNotIn(vs ...string) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldIPAddress, vs...))
}

// IPAddressGT applies the GT predicate on the "ip_address" field.
func IPAddressGT(v string) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldIPAddress, v))
}

// IPAddressGTE applies the GTE predicate on the "ip_address" field.
func IPAddressGTE(v string) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldIPAddress, v))
}

// IPAddressLT applies the LT predicate on the "ip_address" field.
func IPAddressLT(v string) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldIPAddress, v))
}

// IPAddressLTE applies the LTE predicate on the "ip_address" field.
func IPAddressLTE(v string) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldIPAddress, v))
}

// IPAddressContains applies the Contains predicate on the "ip_address" field.
func IPAddressContains(v string) predicate.Passation {
	return predicate.Passation(sql.FieldContains(FieldIPAddress, v))
}

// IPAddressHasPrefix applies the HasPrefix predicate on the "ip_address" field.
func IPAddressHasPrefix(v string) predicate.Passation {
	return predicate.Passation(sql.FieldHasPrefix(FieldIPAddress, v))
}

// IPAddressHasSuffix applies the HasSuffix predicate on the "ip_address" field.
func IPAddressHasSuffix(v string) predicate.Passation {
	return predicate.Passation(sql.FieldHasSuffix(FieldIPAddress, v))
}

// IPAddressIsNil applies the IsNil predicate on the "ip_address" field.
func IPAddressIsNil() predicate.Passation {
	return predicate.Passation(sql.FieldIsNull(FieldIPAddress))
}

// IPAddressNotNil applies the NotNil predicate on the "ip_address" field.
func IPAddressNotNil() predicate.Passation {
	return predicate.Passation(sql.FieldNotNull(FieldIPAddress))
}

// IPAddressEqualFold applies the EqualFold predicate on the "ip_address" field.
func IPAddressEqualFold(v string) predicate.Passation {
	return predicate.Passation(sql.FieldEqualFold(FieldIPAddress, v))
}

// IPAddressContainsFold applies the ContainsFold predicate on the "ip_address" field.
func IPAddressContainsFold(v string) predicate.Passation {
	return predicate.Passation(sql.FieldContainsFold(FieldIPAddress, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.Passation {
	return predicate.Passation(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.Passation {
	return predicate.Passation(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.Passation {
	return predicate.Passation(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.Passation {
	return predicate.Passation(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.Passation {
	return predicate.Passation(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.Passation {
	return predicate.Passation(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.Passation {
	return predicate.Passation(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.Passation {
	return predicate.Passation(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.Passation {
	return predicate.Passation(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.Passation {
	return predicate.Passation(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.Passation {
	return predicate.Passation(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.Passation {
	return predicate.Passation(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.Passation {
	return predicate.Passation(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.Passation {
	return predicate.Passation(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.Passation {
	return predicate.Passation(sql.FieldContainsFold(FieldUserAgent, v))
}

// HasPrescription applies the HasEdge predicate on the "prescription" edge.
func HasPrescription() predicate.Passation {
	return predicate.Passation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PrescriptionTable, PrescriptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrescriptionWith applies the HasEdge predicate on the "prescription" edge with a given conditions (other predicates).
func HasPrescriptionWith(preds ...predicate.Prescription) predicate.Passation {
	return predicate.Passation(func(s *sql.Selector) {
		step := newPrescriptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Passation) predicate.Passation {
	return predicate.Passation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Passation) predicate.Passation {
	return predicate.Passation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Passation) predicate.Passation {
	return predicate.Passation(sql.NotPredicates(p))
}
