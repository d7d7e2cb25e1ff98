// Code generated by ent, DO NOT EDIT.

package testitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldTestID, v))
}

// Part applies equality check predicate on the "part" field. It's identical to PartEQ.
func Part(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldPart, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldDomain, v))
}

// ItemOrder applies equality check predicate on the "item_order" field. It's identical to ItemOrderEQ.
func ItemOrder(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldItemOrder, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldText, v))
}

// CountsDg applies equality check predicate on the "counts_dg" field. It's identical to CountsDgEQ.
func CountsDg(v bool) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldCountsDg, v))
}

// AgeMinMonths applies equality check predicate on the "age_min_months" field. It's identical to AgeMinMonthsEQ.
func AgeMinMonths(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldAgeMinMonths, v))
}

// AgeMaxMonths applies equality check predicate on the "age_max_months" field. It's identical to AgeMaxMonthsEQ.
func AgeMaxMonths(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldAgeMaxMonths, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TestItem {
	return predicate.TestItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...uuid.UUID) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldTestID, vs...))
}

// PartEQ applies the EQ predicate on the "part" field.
func PartEQ(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldPart, v))
}

// PartNEQ applies the NEQ predicate on the "part" field.
func PartNEQ(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldPart, v))
}

// PartIn applies the In predicate on the "part" field.
func PartIn(vs ...string) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldPart, vs...))
}

// PartNotIn applies the NotIn predicate on the "part" field.
func PartNotIn(vs ...string) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldPart, vs...))
}

// PartGT applies the GT predicate on the "part" field.
func PartGT(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldGT(FieldPart, v))
}

// PartGTE applies the GTE predicate on the "part" field.
func PartGTE(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldGTE(FieldPart, v))
}

// PartLT applies the LT predicate on the "part" field.
func PartLT(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldLT(FieldPart, v))
}

// PartLTE applies the LTE predicate on the "part" field.
func PartLTE(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldLTE(FieldPart, v))
}

// PartContains applies the Contains predicate on the "part" field.
func PartContains(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldContains(FieldPart, v))
}

// PartHasPrefix applies the HasPrefix predicate on the "part" field.
func PartHasPrefix(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldHasPrefix(FieldPart, v))
}

// PartHasSuffix applies the HasSuffix predicate on the "part" field.
func PartHasSuffix(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldHasSuffix(FieldPart, v))
}

// PartEqualFold applies the EqualFold predicate on the "part" field.
func PartEqualFold(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldEqualFold(FieldPart, v))
}

// PartContainsFold applies the ContainsFold predicate on the "part" field.
func PartContainsFold(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldContainsFold(FieldPart, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldContainsFold(FieldDomain, v))
}

// ItemOrderEQ applies the EQ predicate on the "item_order" field.
func ItemOrderEQ(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldItemOrder, v))
}

// ItemOrderNEQ applies the NEQ predicate on the "item_order" field.
func ItemOrderNEQ(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldItemOrder, v))
}

// ItemOrderIn applies the In predicate on the "item_order" field.
func ItemOrderIn(vs ...int) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldItemOrder, vs...))
}

// ItemOrderNotIn applies the NotIn predicate on the "item_order" field.
func ItemOrderNotIn(vs ...int) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldItemOrder, vs...))
}

// ItemOrderGT applies the GT predicate on the "item_order" field.
func ItemOrderGT(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldGT(FieldItemOrder, v))
}

// ItemOrderGTE applies the GTE predicate on the "item_order" field.
func ItemOrderGTE(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldGTE(FieldItemOrder, v))
}

// ItemOrderLT applies the LT predicate on the "item_order" field.
func ItemOrderLT(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldLT(FieldItemOrder, v))
}

// ItemOrderLTE applies the LTE predicate on the "item_order" field.
func ItemOrderLTE(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldLTE(FieldItemOrder, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.TestItem {
	return predicate.TestItem(sql.FieldContainsFold(FieldText, v))
}

// CountsDgEQ applies the EQ predicate on the "counts_dg" field.
func CountsDgEQ(v bool) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldCountsDg, v))
}

// CountsDgNEQ applies the NEQ predicate on the "counts_dg" field.
func CountsDgNEQ(v bool) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldCountsDg, v))
}

// AgeMinMonthsEQ applies the EQ predicate on the "age_min_months" field.
func AgeMinMonthsEQ(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldAgeMinMonths, v))
}

// AgeMinMonthsNEQ applies the NEQ predicate on the "age_min_months" field.
func AgeMinMonthsNEQ(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldAgeMinMonths, v))
}

// AgeMinMonthsIn applies the In predicate on the "age_min_months" field.
func AgeMinMonthsIn(vs ...int) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldAgeMinMonths, vs...))
}

// AgeMinMonthsNotIn applies the NotIn predicate on the "age_min_months" field.
func AgeMinMonthsNotIn(vs ...int) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldAgeMinMonths, vs...))
}

// AgeMinMonthsGT applies the GT predicate on the "age_min_months" field.
func AgeMinMonthsGT(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldGT(FieldAgeMinMonths, v))
}

// AgeMinMonthsGTE applies the GTE predicate on the "age_min_months" field.
func AgeMinMonthsGTE(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldGTE(FieldAgeMinMonths, v))
}

// AgeMinMonthsLT applies the LT predicate on the "age_min_months" field.
func AgeMinMonthsLT(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldLT(FieldAgeMinMonths, v))
}

// AgeMinMonthsLTE applies the LTE predicate on the "age_min_months" field.
func AgeMinMonthsLTE(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldLTE(FieldAgeMinMonths, v))
}

// AgeMinMonthsIsNil applies the IsNil predicate on the "age_min_months" field.
func AgeMinMonthsIsNil() predicate.TestItem {
	return predicate.TestItem(sql.FieldIsNull(FieldAgeMinMonths))
}

// AgeMinMonthsNotNil applies the NotNil predicate on the "age_min_months" field.
func AgeMinMonthsNotNil() predicate.TestItem {
	return predicate.TestItem(sql.FieldNotNull(FieldAgeMinMonths))
}

// AgeMaxMonthsEQ applies the EQ predicate on the "age_max_months" field.
func AgeMaxMonthsEQ(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldAgeMaxMonths, v))
}

// AgeMaxMonthsNEQ applies the NEQ predicate on the "age_max_months" field.
func AgeMaxMonthsNEQ(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldAgeMaxMonths, v))
}

// AgeMaxMonthsIn applies the In predicate on the "age_max_months" field.
func AgeMaxMonthsIn(vs ...int) predicate.TestItem {
	return predicate.TestItem(sql.FieldIn(FieldAgeMaxMonths, vs...))
}

// AgeMaxMonthsNotIn applies the NotIn predicate on the "age_max_months" field.
func AgeMaxMonthsNotIn(vs ...int) predicate.TestItem {
	return predicate.TestItem(sql.FieldNotIn(FieldAgeMaxMonths, vs...))
}

// AgeMaxMonthsGT applies the GT predicate on the "age_max_months" field.
func AgeMaxMonthsGT(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldGT(FieldAgeMaxMonths, v))
}

// AgeMaxMonthsGTE applies the GTE predicate on the "age_max_months" field.
func AgeMaxMonthsGTE(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldGTE(FieldAgeMaxMonths, v))
}

// AgeMaxMonthsLT applies the LT predicate on the "age_max_months" field.
func AgeMaxMonthsLT(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldLT(FieldAgeMaxMonths, v))
}

// AgeMaxMonthsLTE applies the LTE predicate on the "age_max_months" field.
func AgeMaxMonthsLTE(v int) predicate.TestItem {
	return predicate.TestItem(sql.FieldLTE(FieldAgeMaxMonths, v))
}

// AgeMaxMonthsIsNil applies the IsNil predicate on the "age_max_months" field.
func AgeMaxMonthsIsNil() predicate.TestItem {
	return predicate.TestItem(sql.FieldIsNull(FieldAgeMaxMonths))
}

// AgeMaxMonthsNotNil applies the NotNil predicate on the "age_max_months" field.
func AgeMaxMonthsNotNil() predicate.TestItem {
	return predicate.TestItem(sql.FieldNotNull(FieldAgeMaxMonths))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.TestItem {
	return predicate.TestItem(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.TestItem {
	return predicate.TestItem(sql.FieldNEQ(FieldIsActive, v))
}

// HasTest applies the HasEdge predicate on the "test" edge.
func HasTest() predicate.TestItem {
	return predicate.TestItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TestTable, TestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestWith applies the HasEdge predicate on the "test" edge with a given conditions (other predicates).
func HasTestWith(preds ...predicate.Test) predicate.TestItem {
	return predicate.TestItem(func(s *sql.Selector) {
		step := newTestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestItem) predicate.TestItem {
	return predicate.TestItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestItem) predicate.TestItem {
	return predicate.TestItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestItem) predicate.TestItem {
	return predicate.TestItem(sql.NotPredicates(p))
}
