// Code generated by ent, DO NOT EDIT.

package bilan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldUpdatedAt, v))
}

// PrescriptionID applies equality check predicate on the "prescription_id" field. It's identical to PrescriptionIDEQ.
func PrescriptionID(v uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldPrescriptionID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldVersion, v))
}

// DgScore applies equality check predicate on the "dg_score" field. It's identical to DgScoreEQ.
func DgScore(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldDgScore, v))
}

// DevelopmentalAgeMonths applies equality check predicate on the "developmental_age_months" field. It's identical to DevelopmentalAgeMonthsEQ.
func DevelopmentalAgeMonths(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldDevelopmentalAgeMonths, v))
}

// Interpretation applies equality check predicate on the "interpretation" field. It's identical to InterpretationEQ.
func Interpretation(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldInterpretation, v))
}

// PractitionerComments applies equality check predicate on the "practitioner_comments" field. It's identical to PractitionerCommentsEQ.
func PractitionerComments(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldPractitionerComments, v))
}

// Recommendations applies equality check predicate on the "recommendations" field. It's identical to RecommendationsEQ.
func Recommendations(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldRecommendations, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldGeneratedAt, v))
}

// ValidatedAt applies equality check predicate on the "validated_at" field. It's identical to ValidatedAtEQ.
func ValidatedAt(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldValidatedAt, v))
}

// PdfKey applies equality check predicate on the "pdf_key" field. It's identical to PdfKeyEQ.
func PdfKey(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldPdfKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldUpdatedAt, v))
}

// PrescriptionIDEQ applies the EQ predicate on the "prescription_id" field.
func PrescriptionIDEQ(v uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldPrescriptionID, v))
}

// PrescriptionIDNEQ applies the NEQ predicate on the "prescription_id" field.
func PrescriptionIDNEQ(v uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldPrescriptionID, v))
}

// PrescriptionIDIn applies the In predicate on the "prescription_id" field.
func PrescriptionIDIn(vs ...uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldPrescriptionID, vs...))
}

// PrescriptionIDNotIn applies the NotIn predicate on the "prescription_id" field.
func PrescriptionIDNotIn(vs ...uuid.UUID) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldPrescriptionID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldStatus, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldVersion, v))
}

// DgScoreEQ applies the EQ predicate on the "dg_score" field.
func DgScoreEQ(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldDgScore, v))
}

// DgScoreNEQ applies the NEQ predicate on the "dg_score" field.
func DgScoreNEQ(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldDgScore, v))
}

// DgScoreIn applies the In predicate on the "dg_score" field.
func DgScoreIn(vs ...int) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldDgScore, vs...))
}

// DgScoreNotIn applies the NotIn predicate on the "dg_score" field.
func DgScoreNotIn(vs ...int) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldDgScore, vs...))
}

// DgScoreGT applies the GT predicate on the "dg_score" field.
func DgScoreGT(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldDgScore, v))
}

// DgScoreGTE applies the GTE predicate on the "dg_score" field.
func DgScoreGTE(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldDgScore, v))
}

// DgScoreLT applies the LT predicate on the "dg_score" field.
func DgScoreLT(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldDgScore, v))
}

// DgScoreLTE applies the LTE predicate on the "dg_score" field.
func DgScoreLTE(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldDgScore, v))
}

// GlobalRiskEQ applies the EQ predicate on the "global_risk" field.
func GlobalRiskEQ(v GlobalRisk) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldGlobalRisk, v))
}

// GlobalRiskNEQ applies the NEQ predicate on the "global_risk" field.
func GlobalRiskNEQ(v GlobalRisk) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldGlobalRisk, v))
}

// GlobalRiskIn applies the In predicate on the "global_risk" field.
func GlobalRiskIn(vs ...GlobalRisk) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldGlobalRisk, vs...))
}

// GlobalRiskNotIn applies the NotIn predicate on the "global_risk" field.
func GlobalRiskNotIn(vs ...GlobalRisk) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldGlobalRisk, vs...))
}

// DevelopmentalAgeMonthsEQ applies the EQ predicate on the "developmental_age_months" field.
func DevelopmentalAgeMonthsEQ(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldDevelopmentalAgeMonths, v))
}

// DevelopmentalAgeMonthsNEQ applies the NEQ predicate on the "developmental_age_months" field.
func DevelopmentalAgeMonthsNEQ(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldDevelopmentalAgeMonths, v))
}

// DevelopmentalAgeMonthsIn applies the In predicate on the "developmental_age_months" field.
func DevelopmentalAgeMonthsIn(vs ...int) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldDevelopmentalAgeMonths, vs...))
}

// DevelopmentalAgeMonthsNotIn applies the NotIn predicate on the "developmental_age_months" field.
func DevelopmentalAgeMonthsNotIn(vs ...int) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldDevelopmentalAgeMonths, vs...))
}

// DevelopmentalAgeMonthsGT applies the GT predicate on the "developmental_age_months" field.
func DevelopmentalAgeMonthsGT(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldDevelopmentalAgeMonths, v))
}

// DevelopmentalAgeMonthsGTE applies the GTE predicate on the "developmental_age_months" field.
func DevelopmentalAgeMonthsGTE(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldDevelopmentalAgeMonths, v))
}

// DevelopmentalAgeMonthsLT applies the LT predicate on the "developmental_age_months" field.
func DevelopmentalAgeMonthsLT(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldDevelopmentalAgeMonths, v))
}

// DevelopmentalAgeMonthsLTE applies the LTE predicate on the "developmental_age_months" field.
func DevelopmentalAgeMonthsLTE(v int) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldDevelopmentalAgeMonths, v))
}

// GraphicProfileIsNil applies the IsNil predicate on the "graphic_profile" field.
func GraphicProfileIsNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldIsNull(FieldGraphicProfile))
}

// GraphicProfileNotNil applies the NotNil predicate on the "graphic_profile" field.
func GraphicProfileNotNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldNotNull(FieldGraphicProfile))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldNotNull(FieldStrengths))
}

// WatchPointsIsNil applies the IsNil predicate on the "watch_points" field.
func WatchPointsIsNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldIsNull(FieldWatchPoints))
}

// WatchPointsNotNil applies the NotNil predicate on the "watch_points" field.
func WatchPointsNotNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldNotNull(FieldWatchPoints))
}

// InterpretationEQ applies the EQ predicate on the "interpretation" field.
func InterpretationEQ(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldInterpretation, v))
}

// InterpretationNEQ applies the NEQ predicate on the "interpretation" field.
func InterpretationNEQ(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldInterpretation, v))
}

// InterpretationIn applies the In predicate on the "interpretation" field.
func InterpretationIn(vs ...string) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldInterpretation, vs...))
}

// InterpretationNotIn applies the NotIn predicate on the "interpretation" field.
func InterpretationNotIn(vs ...string) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldInterpretation, vs...))
}

// InterpretationGT applies the GT predicate on the "interpretation" field.
func InterpretationGT(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldInterpretation, v))
}

// InterpretationGTE applies the GTE predicate on the "interpretation" field.
func InterpretationGTE(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldInterpretation, v))
}

// InterpretationLT applies the LT predicate on the "interpretation" field.
func InterpretationLT(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldInterpretation, v))
}

// InterpretationLTE applies the LTE predicate on the "interpretation" field.
func InterpretationLTE(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldInterpretation, v))
}

// InterpretationContains applies the Contains predicate on the "interpretation" field.
func InterpretationContains(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldContains(FieldInterpretation, v))
}

// InterpretationHasPrefix applies the HasPrefix predicate on the "interpretation" field.
func InterpretationHasPrefix(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldHasPrefix(FieldInterpretation, v))
}

// InterpretationHasSuffix applies the HasSuffix predicate on the "interpretation" field.
func InterpretationHasSuffix(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldHasSuffix(FieldInterpretation, v))
}

// InterpretationEqualFold applies the EqualFold predicate on the "interpretation" field.
func InterpretationEqualFold(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEqualFold(FieldInterpretation, v))
}

// InterpretationContainsFold applies the ContainsFold predicate on the "interpretation" field.
func InterpretationContainsFold(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldContainsFold(FieldInterpretation, v))
}

// PractitionerCommentsEQ applies the EQ predicate on the "practitioner_comments" field.
func PractitionerCommentsEQ(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldPractitionerComments, v))
}

// PractitionerCommentsNEQ applies the NEQ predicate on the "practitioner_comments" field.
func PractitionerCommentsNEQ(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldPractitionerComments, v))
}

// PractitionerCommentsIn applies the In predicate on the "practitioner_comments" field.
func PractitionerCommentsIn(vs ...string) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldPractitionerComments, vs...))
}

// PractitionerCommentsNotIn applies the NotIn predicate on the "practitioner_comments" field.
func PractitionerCommentsNotIn(vs ...string) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldPractitionerComments, vs...))
}

// PractitionerCommentsGT applies the GT predicate on the "practitioner_comments" field.
func PractitionerCommentsGT(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldPractitionerComments, v))
}

// PractitionerCommentsGTE applies the GTE predicate on the "practitioner_comments" field.
func PractitionerCommentsGTE(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldPractitionerComments, v))
}

// PractitionerCommentsLT applies the LT predicate on the "practitioner_comments" field.
func PractitionerCommentsLT(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldPractitionerComments, v))
}

// PractitionerCommentsLTE applies the LTE predicate on the "practitioner_comments" field.
func PractitionerCommentsLTE(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldPractitionerComments, v))
}

// PractitionerCommentsContains applies the Contains predicate on the "practitioner_comments" field.
func PractitionerCommentsContains(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldContains(FieldPractitionerComments, v))
}

// PractitionerCommentsHasPrefix applies the HasPrefix predicate on the "practitioner_comments" field.
func PractitionerCommentsHasPrefix(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldHasPrefix(FieldPractitionerComments, v))
}

// PractitionerCommentsHasSuffix applies the HasSuffix predicate on the "practitioner_comments" field.
func PractitionerCommentsHasSuffix(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldHasSuffix(FieldPractitionerComments, v))
}

// PractitionerCommentsIsNil applies the IsNil predicate on the "practitioner_comments" field.
func PractitionerCommentsIsNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldIsNull(FieldPractitionerComments))
}

// PractitionerCommentsNotNil applies the NotNil predicate on the "practitioner_comments" field.
func PractitionerCommentsNotNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldNotNull(FieldPractitionerComments))
}

// PractitionerCommentsEqualFold applies the EqualFold predicate on the "practitioner_comments" field.
func PractitionerCommentsEqualFold(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEqualFold(FieldPractitionerComments, v))
}

// PractitionerCommentsContainsFold applies the ContainsFold predicate on the "practitioner_comments" field.
func PractitionerCommentsContainsFold(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldContainsFold(FieldPractitionerComments, v))
}

// RecommendationsEQ applies the EQ predicate on the "recommendations" field.
func RecommendationsEQ(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldRecommendations, v))
}

// RecommendationsNEQ applies the NEQ predicate on the "recommendations" field.
func RecommendationsNEQ(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldRecommendations, v))
}

// RecommendationsIn applies the In predicate on the "recommendations" field.
func RecommendationsIn(vs ...string) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldRecommendations, vs...))
}

// RecommendationsNotIn applies the NotIn predicate on the "recommendations" field.
func RecommendationsNotIn(vs ...string) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldRecommendations, vs...))
}

// RecommendationsGT applies the GT predicate on the "recommendations" field.
func RecommendationsGT(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldRecommendations, v))
}

// RecommendationsGTE applies the GTE predicate on the "recommendations" field.
func RecommendationsGTE(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldRecommendations, v))
}

// RecommendationsLT applies the LT predicate on the "recommendations" field.
func RecommendationsLT(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldRecommendations, v))
}

// RecommendationsLTE applies the LTE predicate on the "recommendations" field.
func RecommendationsLTE(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldRecommendations, v))
}

// RecommendationsContains applies the Contains predicate on the "recommendations" field.
func RecommendationsContains(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldContains(FieldRecommendations, v))
}

// RecommendationsHasPrefix applies the HasPrefix predicate on the "recommendations" field.
func RecommendationsHasPrefix(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldHasPrefix(FieldRecommendations, v))
}

// RecommendationsHasSuffix applies the HasSuffix predicate on the "recommendations" field.
func RecommendationsHasSuffix(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldHasSuffix(FieldRecommendations, v))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldNotNull(FieldRecommendations))
}

// RecommendationsEqualFold applies the EqualFold predicate on the "recommendations" field.
func RecommendationsEqualFold(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEqualFold(FieldRecommendations, v))
}

// RecommendationsContainsFold applies the ContainsFold predicate on the "recommendations" field.
func RecommendationsContainsFold(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldContainsFold(FieldRecommendations, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldGeneratedAt, v))
}

// ValidatedAtEQ applies the EQ predicate on the "validated_at" field.
func ValidatedAtEQ(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedAtNEQ applies the NEQ predicate on the "validated_at" field.
func ValidatedAtNEQ(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldValidatedAt, v))
}

// ValidatedAtIn applies the In predicate on the "validated_at" field.
func ValidatedAtIn(vs ...time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldValidatedAt, vs...))
}

// ValidatedAtNotIn applies the NotIn predicate on the "validated_at" field.
func ValidatedAtNotIn(vs ...time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldValidatedAt, vs...))
}

// ValidatedAtGT applies the GT predicate on the "validated_at" field.
func ValidatedAtGT(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldValidatedAt, v))
}

// ValidatedAtGTE applies the GTE predicate on the "validated_at" field.
func ValidatedAtGTE(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldValidatedAt, v))
}

// ValidatedAtLT applies the LT predicate on the "validated_at" field.
func ValidatedAtLT(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldValidatedAt, v))
}

// ValidatedAtLTE applies the LTE predicate on the "validated_at" field.
func ValidatedAtLTE(v time.Time) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldValidatedAt, v))
}

// ValidatedAtIsNil applies the IsNil predicate on the "validated_at" field.
func ValidatedAtIsNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldIsNull(FieldValidatedAt))
}

// ValidatedAtNotNil applies the NotNil predicate on the "validated_at" field.
func ValidatedAtNotNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldNotNull(FieldValidatedAt))
}

// PdfKeyEQ applies the EQ predicate on the "pdf_key" field.
func PdfKeyEQ(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEQ(FieldPdfKey, v))
}

// PdfKeyNEQ applies the NEQ predicate on the "pdf_key" field.
func PdfKeyNEQ(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldNEQ(FieldPdfKey, v))
}

// PdfKeyIn applies the In predicate on the "pdf_key" field.
func PdfKeyIn(vs ...string) predicate.Bilan {
	return predicate.Bilan(sql.FieldIn(FieldPdfKey, vs...))
}

// PdfKeyNotIn applies the NotIn predicate on the "pdf_key" field.
func PdfKeyNotIn(vs ...string) predicate.Bilan {
	return predicate.Bilan(sql.FieldNotIn(FieldPdfKey, vs...))
}

// PdfKeyGT applies the GT predicate on the "pdf_key" field.
func PdfKeyGT(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldGT(FieldPdfKey, v))
}

// PdfKeyGTE applies the GTE predicate on the "pdf_key" field.
func PdfKeyGTE(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldGTE(FieldPdfKey, v))
}

// PdfKeyLT applies the LT predicate on the "pdf_key" field.
func PdfKeyLT(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldLT(FieldPdfKey, v))
}

// PdfKeyLTE applies the LTE predicate on the "pdf_key" field.
func PdfKeyLTE(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldLTE(FieldPdfKey, v))
}

// PdfKeyContains applies the Contains predicate on the "pdf_key" field.
func PdfKeyContains(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldContains(FieldPdfKey, v))
}

// PdfKeyHasPrefix applies the HasPrefix predicate on the "pdf_key" field.
func PdfKeyHasPrefix(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldHasPrefix(FieldPdfKey, v))
}

// PdfKeyHasSuffix applies the HasSuffix predicate on the "pdf_key" field.
func PdfKeyHasSuffix(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldHasSuffix(FieldPdfKey, v))
}

// PdfKeyIsNil applies the IsNil predicate on the "pdf_key" field.
func PdfKeyIsNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldIsNull(FieldPdfKey))
}

// PdfKeyNotNil applies the NotNil predicate on the "pdf_key" field.
func PdfKeyNotNil() predicate.Bilan {
	return predicate.Bilan(sql.FieldNotNull(FieldPdfKey))
}

// PdfKeyEqualFold applies the EqualFold predicate on the "pdf_key" field.
func PdfKeyEqualFold(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldEqualFold(FieldPdfKey, v))
}

// PdfKeyContainsFold applies the ContainsFold predicate on the "pdf_key" field.
func PdfKeyContainsFold(v string) predicate.Bilan {
	return predicate.Bilan(sql.FieldContainsFold(FieldPdfKey, v))
}

// HasPrescription applies the HasEdge predicate on the "prescription" edge.
func HasPrescription() predicate.Bilan {
	return predicate.Bilan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PrescriptionTable, PrescriptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrescriptionWith applies the HasEdge predicate on the "prescription" edge with a given conditions (other predicates).
func HasPrescriptionWith(preds ...predicate.Prescription) predicate.Bilan {
	return predicate.Bilan(func(s *sql.Selector) {
		step := newPrescriptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bilan) predicate.Bilan {
	return predicate.Bilan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bilan) predicate.Bilan {
	return predicate.Bilan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bilan) predicate.Bilan {
	return predicate.Bilan(sql.NotPredicates(p))
}
