// Code generated by ent, DO NOT EDIT.

package testitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the testitem type in the database.
	Label = "test_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldPart holds the string denoting the part field in the database.
	FieldPart = "part"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldItemOrder holds the string denoting the item_order field in the database.
	FieldItemOrder = "item_order"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldCountsDg holds the string denoting the counts_dg field in the database.
	FieldCountsDg = "counts_dg"
	// FieldAgeMinMonths holds the string denoting the age_min_months field in the database.
	FieldAgeMinMonths = "age_min_months"
	// FieldAgeMaxMonths holds the string denoting the age_max_months field in the database.
	FieldAgeMaxMonths = "age_max_months"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgeTest holds the string denoting the test edge name in mutations.
	EdgeTest = "test"
	// Table holds the table name of the testitem in the database.
	Table = "test_items"
	// TestTable is the table that holds the test relation/edge.
	TestTable = "test_items"
	// TestInverseTable is the table name for the Test entity.
	// It exists in this package in order to avoid circular dependency with the "test" package.
	TestInverseTable = "tests"
	// TestColumn is the table column denoting the test relation/edge.
	TestColumn = "test_id"
)

// Columns holds all SQL columns for testitem fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTestID,
	FieldPart,
	FieldDomain,
	FieldItemOrder,
	FieldText,
	FieldCountsDg,
	FieldAgeMinMonths,
	FieldAgeMaxMonths,
	FieldIsActive,
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
	// PartValidator is a validator for the "part" field. It is called by the builders before save.
	PartValidator func(string) error
	// DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	DomainValidator func(string) error
	// ItemOrderValidator is a validator for the "item_order" field. It is called by the builders before save.
	ItemOrderValidator func(int) error
	// DefaultCountsDg holds the default value on creation for the "counts_dg" field.
	DefaultCountsDg bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TestItem queries.
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

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByPart orders the results by the part field.
func ByPart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPart, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByItemOrder orders the results by the item_order field.
func ByItemOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemOrder, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByCountsDg orders the results by the counts_dg field.
func ByCountsDg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountsDg, opts...).ToFunc()
}

// ByAgeMinMonths orders the results by the age_min_months field.
func ByAgeMinMonths(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgeMinMonths, opts...).ToFunc()
}

// ByAgeMaxMonths orders the results by the age_max_months field.
func ByAgeMaxMonths(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgeMaxMonths, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByTestField orders the results by test field.
func ByTestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestStep(), sql.OrderByField(field, opts...))
	}
}
func newTestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TestTable, TestColumn),
	)
}
