// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo/bilan"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
)

// Bilan is the model entity for the Bilan schema.
type Bilan struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → prescriptions.id
	PrescriptionID uuid.UUID `json:"prescription_id,omitempty"`
	// Status holds the value of the "status" field.
	Status bilan.Status `json:"status,omitempty"`
	// Monotonic per prescription, starting at 1
	Version int `json:"version,omitempty"`
	// Per-domain score, thresholds and risk tier
	DetailedScores ide.ScoreSet `json:"detailed_scores,omitempty"`
	// DgScore holds the value of the "dg_score" field.
	DgScore int `json:"dg_score,omitempty"`
	// GlobalRisk holds the value of the "global_risk" field.
	GlobalRisk bilan.GlobalRisk `json:"global_risk,omitempty"`
	// min(dg_score, chronological age + 6); placeholder heuristic
	DevelopmentalAgeMonths int `json:"developmental_age_months,omitempty"`
	// GraphicProfile holds the value of the "graphic_profile" field.
	GraphicProfile []ide.ProfileEntry `json:"graphic_profile,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths []ide.Finding `json:"strengths,omitempty"`
	// WatchPoints holds the value of the "watch_points" field.
	WatchPoints []ide.Finding `json:"watch_points,omitempty"`
	// Automatic narrative, consistency warnings appended
	Interpretation string `json:"interpretation,omitempty"`
	// PractitionerComments holds the value of the "practitioner_comments" field.
	PractitionerComments *string `json:"practitioner_comments,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations *string `json:"recommendations,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// Set exactly once, on the first transition to validated
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	// S3 object key of the exported PDF
	PdfKey *string `json:"pdf_key,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BilanQuery when eager-loading is set.
	Edges        BilanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BilanEdges holds the relations/edges for other nodes in the graph.
type BilanEdges struct {
	// Prescription holds the value of the prescription edge.
	Prescription *Prescription `json:"prescription,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PrescriptionOrErr returns the Prescription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BilanEdges) PrescriptionOrErr() (*Prescription, error) {
	if e.Prescription != nil {
		return e.Prescription, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: prescription.Label}
	}
	return nil, &NotLoadedError{edge: "prescription"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Bilan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bilan.FieldDetailedScores, bilan.FieldGraphicProfile, bilan.FieldStrengths, bilan.FieldWatchPoints:
			values[i] = new([]byte)
		case bilan.FieldVersion, bilan.FieldDgScore, bilan.FieldDevelopmentalAgeMonths:
			values[i] = new(sql.NullInt64)
		case bilan.FieldStatus, bilan.FieldGlobalRisk, bilan.FieldInterpretation, bilan.FieldPractitionerComments, bilan.FieldRecommendations, bilan.FieldPdfKey:
			values[i] = new(sql.NullString)
		case bilan.FieldCreatedAt, bilan.FieldUpdatedAt, bilan.FieldGeneratedAt, bilan.FieldValidatedAt:
			values[i] = new(sql.NullTime)
		case bilan.FieldID, bilan.FieldPrescriptionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Bilan fields.
func (_m *Bilan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bilan.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bilan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bilan.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case bilan.FieldPrescriptionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field prescription_id", values[i])
			} else if value != nil {
				_m.PrescriptionID = *value
			}
		case bilan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = bilan.Status(value.String)
			}
		case bilan.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case bilan.FieldDetailedScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detailed_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetailedScores); err != nil {
					return fmt.Errorf("unmarshal field detailed_scores: %w", err)
				}
			}
		case bilan.FieldDgScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dg_score", values[i])
			} else if value.Valid {
				_m.DgScore = int(value.Int64)
			}
		case bilan.FieldGlobalRisk:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field global_risk", values[i])
			} else if value.Valid {
				_m.GlobalRisk = bilan.GlobalRisk(value.String)
			}
		case bilan.FieldDevelopmentalAgeMonths:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field developmental_age_months", values[i])
			} else if value.Valid {
				_m.DevelopmentalAgeMonths = int(value.Int64)
			}
		case bilan.FieldGraphicProfile:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field graphic_profile", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GraphicProfile); err != nil {
					return fmt.Errorf("unmarshal field graphic_profile: %w", err)
				}
			}
		case bilan.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case bilan.FieldWatchPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field watch_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WatchPoints); err != nil {
					return fmt.Errorf("unmarshal field watch_points: %w", err)
				}
			}
		case bilan.FieldInterpretation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interpretation", values[i])
			} else if value.Valid {
				_m.Interpretation = value.String
			}
		case bilan.FieldPractitionerComments:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field practitioner_comments", values[i])
			} else if value.Valid {
				_m.PractitionerComments = new(string)
				*_m.PractitionerComments = value.String
			}
		case bilan.FieldRecommendations:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value.Valid {
				_m.Recommendations = new(string)
				*_m.Recommendations = value.String
			}
		case bilan.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		case bilan.FieldValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validated_at", values[i])
			} else if value.Valid {
				_m.ValidatedAt = new(time.Time)
				*_m.ValidatedAt = value.Time
			}
		case bilan.FieldPdfKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_key", values[i])
			} else if value.Valid {
				_m.PdfKey = new(string)
				*_m.PdfKey = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Bilan.
// This includes values selected through modifiers, order, etc.
func (_m *Bilan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPrescription queries the "prescription" edge of the Bilan entity.
func (_m *Bilan) QueryPrescription() *PrescriptionQuery {
	return NewBilanClient(_m.config).QueryPrescription(_m)
}

// Update returns a builder for updating this Bilan.
// Note that you need to call Bilan.Unwrap() before calling this method if this Bilan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Bilan) Update() *BilanUpdateOne {
	return NewBilanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Bilan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Bilan) Unwrap() *Bilan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Bilan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Bilan) String() string {
	var builder strings.Builder
	builder.WriteString("Bilan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("prescription_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrescriptionID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("detailed_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetailedScores))
	builder.WriteString(", ")
	builder.WriteString("dg_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DgScore))
	builder.WriteString(", ")
	builder.WriteString("global_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.GlobalRisk))
	builder.WriteString(", ")
	builder.WriteString("developmental_age_months=")
	builder.WriteString(fmt.Sprintf("%v", _m.DevelopmentalAgeMonths))
	builder.WriteString(", ")
	builder.WriteString("graphic_profile=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraphicProfile))
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("watch_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.WatchPoints))
	builder.WriteString(", ")
	builder.WriteString("interpretation=")
	builder.WriteString(_m.Interpretation)
	builder.WriteString(", ")
	if v := _m.PractitionerComments; v != nil {
		builder.WriteString("practitioner_comments=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Recommendations; v != nil {
		builder.WriteString("recommendations=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ValidatedAt; v != nil {
		builder.WriteString("validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PdfKey; v != nil {
		builder.WriteString("pdf_key=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Bilans is a parsable slice of Bilan.
type Bilans []*Bilan
