// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/repo/patient"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/repo/user"
)

// Prescription is the model entity for the Prescription schema.
type Prescription struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	PractitionerID uuid.UUID `json:"practitioner_id,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → tests.id
	TestID uuid.UUID `json:"test_id,omitempty"`
	// Status holds the value of the "status" field.
	Status prescription.Status `json:"status,omitempty"`
	// Guardian consent; a passation cannot start without it
	GdprConsent bool `json:"gdpr_consent,omitempty"`
	// 1 = urgent, 2 = normal, 3 = low
	Priority int `json:"priority,omitempty"`
	// Date by which the test should be taken
	Deadline *time.Time `json:"deadline,omitempty"`
	// Instructions holds the value of the "instructions" field.
	Instructions *string `json:"instructions,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PrescriptionQuery when eager-loading is set.
	Edges        PrescriptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PrescriptionEdges holds the relations/edges for other nodes in the graph.
type PrescriptionEdges struct {
	// Practitioner holds the value of the practitioner edge.
	Practitioner *User `json:"practitioner,omitempty"`
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Test holds the value of the test edge.
	Test *Test `json:"test,omitempty"`
	// Passations holds the value of the passations edge.
	Passations []*Passation `json:"passations,omitempty"`
	// Bilans holds the value of the bilans edge.
	Bilans []*Bilan `json:"bilans,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// PractitionerOrErr returns the Practitioner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PrescriptionEdges) PractitionerOrErr() (*User, error) {
	if e.Practitioner != nil {
		return e.Practitioner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "practitioner"}
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PrescriptionEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// TestOrErr returns the Test value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PrescriptionEdges) TestOrErr() (*Test, error) {
	if e.Test != nil {
		return e.Test, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: test.Label}
	}
	return nil, &NotLoadedError{edge: "test"}
}

// PassationsOrErr returns the Passations value or an error if the edge
// was not loaded in eager-loading.
func (e PrescriptionEdges) PassationsOrErr() ([]*Passation, error) {
	if e.loadedTypes[3] {
		return e.Passations, nil
	}
	return nil, &NotLoadedError{edge: "passations"}
}

// BilansOrErr returns the Bilans value or an error if the edge
// was not loaded in eager-loading.
func (e PrescriptionEdges) BilansOrErr() ([]*Bilan, error) {
	if e.loadedTypes[4] {
		return e.Bilans, nil
	}
	return nil, &NotLoadedError{edge: "bilans"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Prescription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prescription.FieldGdprConsent:
			values[i] = new(sql.NullBool)
		case prescription.FieldPriority:
			values[i] = new(sql.NullInt64)
		case prescription.FieldStatus, prescription.FieldInstructions:
			values[i] = new(sql.NullString)
		case prescription.FieldCreatedAt, prescription.FieldUpdatedAt, prescription.FieldDeadline:
			values[i] = new(sql.NullTime)
		case prescription.FieldID, prescription.FieldPractitionerID, prescription.FieldPatientID, prescription.FieldTestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Prescription fields.
func (_m *Prescription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prescription.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case prescription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prescription.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case prescription.FieldPractitionerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field practitioner_id", values[i])
			} else if value != nil {
				_m.PractitionerID = *value
			}
		case prescription.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case prescription.FieldTestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value != nil {
				_m.TestID = *value
			}
		case prescription.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = prescription.Status(value.String)
			}
		case prescription.FieldGdprConsent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field gdpr_consent", values[i])
			} else if value.Valid {
				_m.GdprConsent = value.Bool
			}
		case prescription.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case prescription.FieldDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline", values[i])
			} else if value.Valid {
				_m.Deadline = new(time.Time)
				*_m.Deadline = value.Time
			}
		case prescription.FieldInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructions", values[i])
			} else if value.Valid {
				_m.Instructions = new(string)
				*_m.Instructions = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Prescription.
// This includes values selected through modifiers, order, etc.
func (_m *Prescription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPractitioner queries the "practitioner" edge of the Prescription entity.
func (_m *Prescription) QueryPractitioner() *UserQuery {
	return NewPrescriptionClient(_m.config).QueryPractitioner(_m)
}

// QueryPatient queries the "patient" edge of the Prescription entity.
func (_m *Prescription) QueryPatient() *PatientQuery {
	return NewPrescriptionClient(_m.config).QueryPatient(_m)
}

// QueryTest queries the "test" edge of the Prescription entity.
func (_m *Prescription) QueryTest() *TestQuery {
	return NewPrescriptionClient(_m.config).QueryTest(_m)
}

// QueryPassations queries the "passations" edge of the Prescription entity.
func (_m *Prescription) QueryPassations() *PassationQuery {
	return NewPrescriptionClient(_m.config).QueryPassations(_m)
}

// QueryBilans queries the "bilans" edge of the Prescription entity.
func (_m *Prescription) QueryBilans() *BilanQuery {
	return NewPrescriptionClient(_m.config).QueryBilans(_m)
}

// Update returns a builder for updating this Prescription.
// Note that you need to call Prescription.Unwrap() before calling this method if this Prescription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Prescription) Update() *PrescriptionUpdateOne {
	return NewPrescriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Prescription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Prescription) Unwrap() *Prescription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Prescription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Prescription) String() string {
	var builder strings.Builder
	builder.WriteString("Prescription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("practitioner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PractitionerID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("gdpr_consent=")
	builder.WriteString(fmt.Sprintf("%v", _m.GdprConsent))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.Deadline; v != nil {
		builder.WriteString("deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Instructions; v != nil {
		builder.WriteString("instructions=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Prescriptions is a parsable slice of Prescription.
type Prescriptions []*Prescription
