// Code generated by ent, DO NOT EDIT.

package bilan

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bilan type in the database.
	Label = "bilan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPrescriptionID holds the string denoting the prescription_id field in the database.
	FieldPrescriptionID = "prescription_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldDetailedScores holds the string denoting the detailed_scores field in the database.
	FieldDetailedScores = "detailed_scores"
	// FieldDgScore holds the string denoting the dg_score field in the database.
	FieldDgScore = "dg_score"
	// FieldGlobalRisk holds the string denoting the global_risk field in the database.
	FieldGlobalRisk = "global_risk"
	// FieldDevelopmentalAgeMonths holds the string denoting the developmental_age_months field in the database.
	FieldDevelopmentalAgeMonths = "developmental_age_months"
	// FieldGraphicProfile holds the string denoting the graphic_profile field in the database.
	FieldGraphicProfile = "graphic_profile"
	// FieldStrengths holds the string denoting the strengths field in the database.
	FieldStrengths = "strengths"
	// FieldWatchPoints holds the string denoting the watch_points field in the database.
	FieldWatchPoints = "watch_points"
	// FieldInterpretation holds the string denoting the interpretation field in the database.
	FieldInterpretation = "interpretation"
	// FieldPractitionerComments holds the string denoting the practitioner_comments field in the database.
	FieldPractitionerComments = "practitioner_comments"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// FieldValidatedAt holds the string denoting the validated_at field in the database.
	FieldValidatedAt = "validated_at"
	// FieldPdfKey holds the string denoting the pdf_key field in the database.
	FieldPdfKey = "pdf_key"
	// EdgePrescription holds the string denoting the prescription edge name in mutations.
	EdgePrescription = "prescription"
	// Table holds the table name of the bilan in the database.
	Table = "bilans"
	// PrescriptionTable is the table that holds the prescription relation/edge.
	PrescriptionTable = "bilans"
	// PrescriptionInverseTable is the table name for the Prescription entity.
	// It exists in this package in order to avoid circular dependency with the "prescription" package.
	PrescriptionInverseTable = "prescriptions"
	// PrescriptionColumn is the table column denoting the prescription relation/edge.
	PrescriptionColumn = "prescription_id"
)

// Columns holds all SQL columns for bilan fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPrescriptionID,
	FieldStatus,
	FieldVersion,
	FieldDetailedScores,
	FieldDgScore,
	FieldGlobalRisk,
	FieldDevelopmentalAgeMonths,
	FieldGraphicProfile,
	FieldStrengths,
	FieldWatchPoints,
	FieldInterpretation,
	FieldPractitionerComments,
	FieldRecommendations,
	FieldGeneratedAt,
	FieldValidatedAt,
	FieldPdfKey,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DgScoreValidator is a validator for the "dg_score" field. It is called by the builders before save.
	DgScoreValidator func(int) error
	// DevelopmentalAgeMonthsValidator is a validator for the "developmental_age_months" field. It is called by the builders before save.
	DevelopmentalAgeMonthsValidator func(int) error
	// PdfKeyValidator is a validator for the "pdf_key" field. It is called by the builders before save.
	PdfKeyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusGenerated is the default value of the Status enum.
const DefaultStatus = StatusGenerated

// Status values.
const (
	StatusGenerated Status = "generated"
	StatusInReview  Status = "in_review"
	StatusValidated Status = "validated"
	StatusFinalized Status = "finalized"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusGenerated, StatusInReview, StatusValidated, StatusFinalized:
		return nil
	default:
		return fmt.Errorf("bilan: invalid enum value for status field: %q", s)
	}
}

// GlobalRisk defines the type for the "global_risk" enum field.
type GlobalRisk string

// GlobalRisk values.
const (
	GlobalRiskLow      GlobalRisk = "low"
	GlobalRiskModerate GlobalRisk = "moderate"
	GlobalRiskHigh     GlobalRisk = "high"
	GlobalRiskVeryHigh GlobalRisk = "very_high"
)

func (gr GlobalRisk) String() string {
	return string(gr)
}

// GlobalRiskValidator is a validator for the "global_risk" field enum values. It is called by the builders before save.
func GlobalRiskValidator(gr GlobalRisk) error {
	switch gr {
	case GlobalRiskLow, GlobalRiskModerate, GlobalRiskHigh, GlobalRiskVeryHigh:
		return nil
	default:
		return fmt.Errorf("bilan: invalid enum value for global_risk field: %q", gr)
	}
}

// OrderOption defines the ordering options for the Bilan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPrescriptionID orders the results by the prescription_id field.
func ByPrescriptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrescriptionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByDgScore orders the results by the dg_score field.
func ByDgScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDgScore, opts...).ToFunc()
}

// ByGlobalRisk orders the results by the global_risk field.
func ByGlobalRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlobalRisk, opts...).ToFunc()
}

// ByDevelopmentalAgeMonths orders the results by the developmental_age_months field.
func ByDevelopmentalAgeMonths(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDevelopmentalAgeMonths, opts...).ToFunc()
}

// ByInterpretation orders the results by the interpretation field.
func ByInterpretation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterpretation, opts...).ToFunc()
}

// ByPractitionerComments orders the results by the practitioner_comments field.
func ByPractitionerComments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPractitionerComments, opts...).ToFunc()
}

// ByRecommendations orders the results by the recommendations field.
func ByRecommendations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendations, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// ByValidatedAt orders the results by the validated_at field.
func ByValidatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedAt, opts...).ToFunc()
}

// ByPdfKey orders the results by the pdf_key field.
func ByPdfKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfKey, opts...).ToFunc()
}

// ByPrescriptionField orders the results by prescription field.
func ByPrescriptionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPrescriptionStep(), sql.OrderByField(field, opts...))
	}
}
func newPrescriptionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PrescriptionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PrescriptionTable, PrescriptionColumn),
	)
}
