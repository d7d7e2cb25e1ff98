// Code generated by ent, DO NOT EDIT.

package prescription

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the prescription type in the database.
	Label = "prescription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPractitionerID holds the string denoting the practitioner_id field in the database.
	FieldPractitionerID = "practitioner_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldGdprConsent holds the string denoting the gdpr_consent field in the database.
	FieldGdprConsent = "gdpr_consent"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDeadline holds the string denoting the deadline field in the database.
	FieldDeadline = "deadline"
	// FieldInstructions holds the string denoting the instructions field in the database.
	FieldInstructions = "instructions"
	// EdgePractitioner holds the string denoting the practitioner edge name in mutations.
	EdgePractitioner = "practitioner"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeTest holds the string denoting the test edge name in mutations.
	EdgeTest = "test"
	// EdgePassations holds the string denoting the passations edge name in mutations.
	EdgePassations = "passations"
	// EdgeBilans holds the string denoting the bilans edge name in mutations.
	EdgeBilans = "bilans"
	// Table holds the table name of the prescription in the database.
	Table = "prescriptions"
	// PractitionerTable is the table that holds the practitioner relation/edge.
	PractitionerTable = "prescriptions"
	// PractitionerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	PractitionerInverseTable = "users"
	// PractitionerColumn is the table column denoting the practitioner relation/edge.
	PractitionerColumn = "practitioner_id"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "prescriptions"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// TestTable is the table that holds the test relation/edge.
	TestTable = "prescriptions"
	// TestInverseTable is the table name for the Test entity.
	// It exists in this package in order to avoid circular dependency with the "test" package.
	TestInverseTable = "tests"
	// TestColumn is the table column denoting the test relation/edge.
	TestColumn = "test_id"
	// PassationsTable is the table that holds the passations relation/edge.
	PassationsTable = "passations"
	// PassationsInverseTable is the table name for the Passation entity.
	// It exists in this package in order to avoid circular dependency with the "passation" package.
	PassationsInverseTable = "passations"
	// PassationsColumn is the table column denoting the passations relation/edge.
	PassationsColumn = "prescription_id"
	// BilansTable is the table that holds the bilans relation/edge.
	BilansTable = "bilans"
	// BilansInverseTable is the table name for the Bilan entity.
	// It exists in this package in order to avoid circular dependency with the "bilan" package.
	BilansInverseTable = "bilans"
	// BilansColumn is the table column denoting the bilans relation/edge.
	BilansColumn = "prescription_id"
)

// Columns holds all SQL columns for prescription fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPractitionerID,
	FieldPatientID,
	FieldTestID,
	FieldStatus,
	FieldGdprConsent,
	FieldPriority,
	FieldDeadline,
	FieldInstructions,
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
	// DefaultGdprConsent holds the default value on creation for the "gdpr_consent" field.
	DefaultGdprConsent bool
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusValidated  Status = "validated"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusValidated, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("prescription: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Prescription queries.
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

// ByPractitionerID orders the results by the practitioner_id field.
func ByPractitionerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPractitionerID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByGdprConsent orders the results by the gdpr_consent field.
func ByGdprConsent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGdprConsent, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByDeadline orders the results by the deadline field.
func ByDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadline, opts...).ToFunc()
}

// ByInstructions orders the results by the instructions field.
func ByInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructions, opts...).ToFunc()
}

// ByPractitionerField orders the results by practitioner field.
func ByPractitionerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPractitionerStep(), sql.OrderByField(field, opts...))
	}
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByTestField orders the results by test field.
func ByTestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestStep(), sql.OrderByField(field, opts...))
	}
}

// ByPassationsCount orders the results by passations count.
func ByPassationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPassationsStep(), opts...)
	}
}

// ByPassations orders the results by passations terms.
func ByPassations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPassationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBilansCount orders the results by bilans count.
func ByBilansCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBilansStep(), opts...)
	}
}

// ByBilans orders the results by bilans terms.
func ByBilans(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBilansStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPractitionerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PractitionerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PractitionerTable, PractitionerColumn),
	)
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newTestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TestTable, TestColumn),
	)
}
func newPassationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PassationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PassationsTable, PassationsColumn),
	)
}
func newBilansStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BilansInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BilansTable, BilansColumn),
	)
}
