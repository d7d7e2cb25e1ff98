// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/repo/testitem"
)

// TestItem is the model entity for the TestItem schema.
type TestItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → tests.id
	TestID uuid.UUID `json:"test_id,omitempty"`
	// Part holds the value of the "part" field.
	Part string `json:"part,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Display/identity order within (part, domain)
	ItemOrder int `json:"item_order,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Item contributes to the general-development composite
	CountsDg bool `json:"counts_dg,omitempty"`
	// AgeMinMonths holds the value of the "age_min_months" field.
	AgeMinMonths *int `json:"age_min_months,omitempty"`
	// AgeMaxMonths holds the value of the "age_max_months" field.
	AgeMaxMonths *int `json:"age_max_months,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TestItemQuery when eager-loading is set.
	Edges        TestItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TestItemEdges holds the relations/edges for other nodes in the graph.
type TestItemEdges struct {
	// Test holds the value of the test edge.
	Test *Test `json:"test,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TestOrErr returns the Test value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TestItemEdges) TestOrErr() (*Test, error) {
	if e.Test != nil {
		return e.Test, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: test.Label}
	}
	return nil, &NotLoadedError{edge: "test"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testitem.FieldCountsDg, testitem.FieldIsActive:
			values[i] = new(sql.NullBool)
		case testitem.FieldItemOrder, testitem.FieldAgeMinMonths, testitem.FieldAgeMaxMonths:
			values[i] = new(sql.NullInt64)
		case testitem.FieldPart, testitem.FieldDomain, testitem.FieldText:
			values[i] = new(sql.NullString)
		case testitem.FieldCreatedAt, testitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case testitem.FieldID, testitem.FieldTestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestItem fields.
func (_m *TestItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case testitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case testitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case testitem.FieldTestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value != nil {
				_m.TestID = *value
			}
		case testitem.FieldPart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field part", values[i])
			} else if value.Valid {
				_m.Part = value.String
			}
		case testitem.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case testitem.FieldItemOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_order", values[i])
			} else if value.Valid {
				_m.ItemOrder = int(value.Int64)
			}
		case testitem.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case testitem.FieldCountsDg:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field counts_dg", values[i])
			} else if value.Valid {
				_m.CountsDg = value.Bool
			}
		case testitem.FieldAgeMinMonths:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age_min_months", values[i])
			} else if value.Valid {
				_m.AgeMinMonths = new(int)
				*_m.AgeMinMonths = int(value.Int64)
			}
		case testitem.FieldAgeMaxMonths:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age_max_months", values[i])
			} else if value.Valid {
				_m.AgeMaxMonths = new(int)
				*_m.AgeMaxMonths = int(value.Int64)
			}
		case testitem.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestItem.
// This includes values selected through modifiers, order, etc.
func (_m *TestItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTest queries the "test" edge of the TestItem entity.
func (_m *TestItem) QueryTest() *TestQuery {
	return NewTestItemClient(_m.config).QueryTest(_m)
}

// Update returns a builder for updating this TestItem.
// Note that you need to call TestItem.Unwrap() before calling this method if this TestItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestItem) Update() *TestItemUpdateOne {
	return NewTestItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestItem) Unwrap() *TestItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TestItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestItem) String() string {
	var builder strings.Builder
	builder.WriteString("TestItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestID))
	builder.WriteString(", ")
	builder.WriteString("part=")
	builder.WriteString(_m.Part)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("item_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemOrder))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("counts_dg=")
	builder.WriteString(fmt.Sprintf("%v", _m.CountsDg))
	builder.WriteString(", ")
	if v := _m.AgeMinMonths; v != nil {
		builder.WriteString("age_min_months=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AgeMaxMonths; v != nil {
		builder.WriteString("age_max_months=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// TestItems is a parsable slice of TestItem.
type TestItems []*TestItem
