// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldPractitionerID holds the string denoting the practitioner_id field in the database.
	FieldPractitionerID = "practitioner_id"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldBirthDate holds the string denoting the birth_date field in the database.
	FieldBirthDate = "birth_date"
	// FieldGuardianEmail holds the string denoting the guardian_email field in the database.
	FieldGuardianEmail = "guardian_email"
	// FieldGuardianPhone holds the string denoting the guardian_phone field in the database.
	FieldGuardianPhone = "guardian_phone"
	// FieldSocialSecurityEncrypted holds the string denoting the social_security_encrypted field in the database.
	FieldSocialSecurityEncrypted = "social_security_encrypted"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldActivated holds the string denoting the activated field in the database.
	FieldActivated = "activated"
	// FieldActivatedAt holds the string denoting the activated_at field in the database.
	FieldActivatedAt = "activated_at"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgePractitioner holds the string denoting the practitioner edge name in mutations.
	EdgePractitioner = "practitioner"
	// EdgePrescriptions holds the string denoting the prescriptions edge name in mutations.
	EdgePrescriptions = "prescriptions"
	// EdgeActivationTokens holds the string denoting the activation_tokens edge name in mutations.
	EdgeActivationTokens = "activation_tokens"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// PractitionerTable is the table that holds the practitioner relation/edge.
	PractitionerTable = "patients"
	// PractitionerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	PractitionerInverseTable = "users"
	// PractitionerColumn is the table column denoting the practitioner relation/edge.
	PractitionerColumn = "practitioner_id"
	// PrescriptionsTable is the table that holds the prescriptions relation/edge.
	PrescriptionsTable = "prescriptions"
	// PrescriptionsInverseTable is the table name for the Prescription entity.
	// It exists in this package in order to avoid circular dependency with the "prescription" package.
	PrescriptionsInverseTable = "prescriptions"
	// PrescriptionsColumn is the table column denoting the prescriptions relation/edge.
	PrescriptionsColumn = "patient_id"
	// ActivationTokensTable is the table that holds the activation_tokens relation/edge.
	ActivationTokensTable = "activation_tokens"
	// ActivationTokensInverseTable is the table name for the ActivationToken entity.
	// It exists in this package in order to avoid circular dependency with the "activationtoken" package.
	ActivationTokensInverseTable = "activation_tokens"
	// ActivationTokensColumn is the table column denoting the activation_tokens relation/edge.
	ActivationTokensColumn = "patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldPractitionerID,
	FieldFirstName,
	FieldLastName,
	FieldBirthDate,
	FieldGuardianEmail,
	FieldGuardianPhone,
	FieldSocialSecurityEncrypted,
	FieldPasswordHash,
	FieldActivated,
	FieldActivatedAt,
	FieldNotes,
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
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	LastNameValidator func(string) error
	// GuardianEmailValidator is a validator for the "guardian_email" field. It is called by the builders before save.
	GuardianEmailValidator func(string) error
	// GuardianPhoneValidator is a validator for the "guardian_phone" field. It is called by the builders before save.
	GuardianPhoneValidator func(string) error
	// DefaultActivated holds the default value on creation for the "activated" field.
	DefaultActivated bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Patient queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByPractitionerID orders the results by the practitioner_id field.
func ByPractitionerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPractitionerID, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByBirthDate orders the results by the birth_date field.
func ByBirthDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthDate, opts...).ToFunc()
}

// ByGuardianEmail orders the results by the guardian_email field.
func ByGuardianEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuardianEmail, opts...).ToFunc()
}

// ByGuardianPhone orders the results by the guardian_phone field.
func ByGuardianPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuardianPhone, opts...).ToFunc()
}

// BySocialSecurityEncrypted orders the results by the social_security_encrypted field.
func BySocialSecurityEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSocialSecurityEncrypted, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByActivated orders the results by the activated field.
func ByActivated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivated, opts...).ToFunc()
}

// ByActivatedAt orders the results by the activated_at field.
func ByActivatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivatedAt, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByPractitionerField orders the results by practitioner field.
func ByPractitionerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPractitionerStep(), sql.OrderByField(field, opts...))
	}
}

// ByPrescriptionsCount orders the results by prescriptions count.
func ByPrescriptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPrescriptionsStep(), opts...)
	}
}

// ByPrescriptions orders the results by prescriptions terms.
func ByPrescriptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPrescriptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByActivationTokensCount orders the results by activation_tokens count.
func ByActivationTokensCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActivationTokensStep(), opts...)
	}
}

// ByActivationTokens orders the results by activation_tokens terms.
func ByActivationTokens(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivationTokensStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPractitionerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PractitionerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PractitionerTable, PractitionerColumn),
	)
}
func newPrescriptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PrescriptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PrescriptionsTable, PrescriptionsColumn),
	)
}
func newActivationTokensStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivationTokensInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivationTokensTable, ActivationTokensColumn),
	)
}
