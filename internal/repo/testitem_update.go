// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/repo/predicate"
	"github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/repo/testitem"
)

// TestItemUpdate is the builder for updating TestItem entities.
type TestItemUpdate struct {
	config
	hooks    []Hook
	mutation *TestItemMutation
}

// Where appends a list predicates to the TestItemUpdate builder.
func (_u *TestItemUpdate) Where(ps ...predicate.TestItem) *TestItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestItemUpdate) SetUpdatedAt(v time.Time) *TestItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *TestItemUpdate) SetTestID(v uuid.UUID) *TestItemUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestItemUpdate) SetNillableTestID(v *uuid.UUID) *TestItemUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetPart sets the "part" field.
func (_u *TestItemUpdate) SetPart(v string) *TestItemUpdate {
	_u.mutation.SetPart(v)
	return _u
}

// SetNillablePart sets the "part" field if the given value is not nil.
func (_u *TestItemUpdate) SetNillablePart(v *string) *TestItemUpdate {
	if v != nil {
		_u.SetPart(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *TestItemUpdate) SetDomain(v string) *TestItemUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *TestItemUpdate) SetNillableDomain(v *string) *TestItemUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetItemOrder sets the "item_order" field.
func (_u *TestItemUpdate) SetItemOrder(v int) *TestItemUpdate {
	_u.mutation.ResetItemOrder()
	_u.mutation.SetItemOrder(v)
	return _u
}

// SetNillableItemOrder sets the "item_order" field if the given value is not nil.
func (_u *TestItemUpdate) SetNillableItemOrder(v *int) *TestItemUpdate {
	if v != nil {
		_u.SetItemOrder(*v)
	}
	return _u
}

// AddItemOrder adds value to the "item_order" field.
func (_u *TestItemUpdate) AddItemOrder(v int) *TestItemUpdate {
	_u.mutation.AddItemOrder(v)
	return _u
}

// SetText sets the "text" field.
func (_u *TestItemUpdate) SetText(v string) *TestItemUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TestItemUpdate) SetNillableText(v *string) *TestItemUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCountsDg sets the "counts_dg" field.
func (_u *TestItemUpdate) SetCountsDg(v bool) *TestItemUpdate {
	_u.mutation.SetCountsDg(v)
	return _u
}

// SetNillableCountsDg sets the "counts_dg" field if the given value is not nil.
func (_u *TestItemUpdate) SetNillableCountsDg(v *bool) *TestItemUpdate {
	if v != nil {
		_u.SetCountsDg(*v)
	}
	return _u
}

// SetAgeMinMonths sets the "age_min_months" field.
func (_u *TestItemUpdate) SetAgeMinMonths(v int) *TestItemUpdate {
	_u.mutation.ResetAgeMinMonths()
	_u.mutation.SetAgeMinMonths(v)
	return _u
}

// SetNillableAgeMinMonths sets the "age_min_months" field if the given value is not nil.
func (_u *TestItemUpdate) SetNillableAgeMinMonths(v *int) *TestItemUpdate {
	if v != nil {
		_u.SetAgeMinMonths(*v)
	}
	return _u
}

// AddAgeMinMonths adds value to the "age_min_months" field.
func (_u *TestItemUpdate) AddAgeMinMonths(v int) *TestItemUpdate {
	_u.mutation.AddAgeMinMonths(v)
	return _u
}

// ClearAgeMinMonths clears the value of the "age_min_months" field.
func (_u *TestItemUpdate) ClearAgeMinMonths() *TestItemUpdate {
	_u.mutation.ClearAgeMinMonths()
	return _u
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (_u *TestItemUpdate) SetAgeMaxMonths(v int) *TestItemUpdate {
	_u.mutation.ResetAgeMaxMonths()
	_u.mutation.SetAgeMaxMonths(v)
	return _u
}

// SetNillableAgeMaxMonths sets the "age_max_months" field if the given value is not nil.
func (_u *TestItemUpdate) SetNillableAgeMaxMonths(v *int) *TestItemUpdate {
	if v != nil {
		_u.SetAgeMaxMonths(*v)
	}
	return _u
}

// AddAgeMaxMonths adds value to the "age_max_months" field.
func (_u *TestItemUpdate) AddAgeMaxMonths(v int) *TestItemUpdate {
	_u.mutation.AddAgeMaxMonths(v)
	return _u
}

// ClearAgeMaxMonths clears the value of the "age_max_months" field.
func (_u *TestItemUpdate) ClearAgeMaxMonths() *TestItemUpdate {
	_u.mutation.ClearAgeMaxMonths()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TestItemUpdate) SetIsActive(v bool) *TestItemUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TestItemUpdate) SetNillableIsActive(v *bool) *TestItemUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *TestItemUpdate) SetTest(v *Test) *TestItemUpdate {
	return _u.SetTestID(v.ID)
}

// Mutation returns the TestItemMutation object of the builder.
func (_u *TestItemUpdate) Mutation() *TestItemMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *TestItemUpdate) ClearTest() *TestItemUpdate {
	_u.mutation.ClearTest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestItemUpdate) check() error {
	if v, ok := _u.mutation.Part(); ok {
		if err := testitem.PartValidator(v); err != nil {
			return &ValidationError{Name: "part", err: fmt.Errorf(`repo: validator failed for field "TestItem.part": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := testitem.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`repo: validator failed for field "TestItem.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemOrder(); ok {
		if err := testitem.ItemOrderValidator(v); err != nil {
			return &ValidationError{Name: "item_order", err: fmt.Errorf(`repo: validator failed for field "TestItem.item_order": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TestItem.test"`)
	}
	return nil
}

func (_u *TestItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testitem.Table, testitem.Columns, sqlgraph.NewFieldSpec(testitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Part(); ok {
		_spec.SetField(testitem.FieldPart, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(testitem.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemOrder(); ok {
		_spec.SetField(testitem.FieldItemOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemOrder(); ok {
		_spec.AddField(testitem.FieldItemOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(testitem.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountsDg(); ok {
		_spec.SetField(testitem.FieldCountsDg, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgeMinMonths(); ok {
		_spec.SetField(testitem.FieldAgeMinMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeMinMonths(); ok {
		_spec.AddField(testitem.FieldAgeMinMonths, field.TypeInt, value)
	}
	if _u.mutation.AgeMinMonthsCleared() {
		_spec.ClearField(testitem.FieldAgeMinMonths, field.TypeInt)
	}
	if value, ok := _u.mutation.AgeMaxMonths(); ok {
		_spec.SetField(testitem.FieldAgeMaxMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeMaxMonths(); ok {
		_spec.AddField(testitem.FieldAgeMaxMonths, field.TypeInt, value)
	}
	if _u.mutation.AgeMaxMonthsCleared() {
		_spec.ClearField(testitem.FieldAgeMaxMonths, field.TypeInt)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(testitem.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testitem.TestTable,
			Columns: []string{testitem.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testitem.TestTable,
			Columns: []string{testitem.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestItemUpdateOne is the builder for updating a single TestItem entity.
type TestItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestItemUpdateOne) SetUpdatedAt(v time.Time) *TestItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *TestItemUpdateOne) SetTestID(v uuid.UUID) *TestItemUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestItemUpdateOne) SetNillableTestID(v *uuid.UUID) *TestItemUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetPart sets the "part" field.
func (_u *TestItemUpdateOne) SetPart(v string) *TestItemUpdateOne {
	_u.mutation.SetPart(v)
	return _u
}

// SetNillablePart sets the "part" field if the given value is not nil.
func (_u *TestItemUpdateOne) SetNillablePart(v *string) *TestItemUpdateOne {
	if v != nil {
		_u.SetPart(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *TestItemUpdateOne) SetDomain(v string) *TestItemUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *TestItemUpdateOne) SetNillableDomain(v *string) *TestItemUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetItemOrder sets the "item_order" field.
func (_u *TestItemUpdateOne) SetItemOrder(v int) *TestItemUpdateOne {
	_u.mutation.ResetItemOrder()
	_u.mutation.SetItemOrder(v)
	return _u
}

// SetNillableItemOrder sets the "item_order" field if the given value is not nil.
func (_u *TestItemUpdateOne) SetNillableItemOrder(v *int) *TestItemUpdateOne {
	if v != nil {
		_u.SetItemOrder(*v)
	}
	return _u
}

// AddItemOrder adds value to the "item_order" field.
func (_u *TestItemUpdateOne) AddItemOrder(v int) *TestItemUpdateOne {
	_u.mutation.AddItemOrder(v)
	return _u
}

// SetText sets the "text" field.
func (_u *TestItemUpdateOne) SetText(v string) *TestItemUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TestItemUpdateOne) SetNillableText(v *string) *TestItemUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCountsDg sets the "counts_dg" field.
func (_u *TestItemUpdateOne) SetCountsDg(v bool) *TestItemUpdateOne {
	_u.mutation.SetCountsDg(v)
	return _u
}

// SetNillableCountsDg sets the "counts_dg" field if the given value is not nil.
func (_u *TestItemUpdateOne) SetNillableCountsDg(v *bool) *TestItemUpdateOne {
	if v != nil {
		_u.SetCountsDg(*v)
	}
	return _u
}

// SetAgeMinMonths sets the "age_min_months" field.
func (_u *TestItemUpdateOne) SetAgeMinMonths(v int) *TestItemUpdateOne {
	_u.mutation.ResetAgeMinMonths()
	_u.mutation.SetAgeMinMonths(v)
	return _u
}

// SetNillableAgeMinMonths sets the "age_min_months" field if the given value is not nil.
func (_u *TestItemUpdateOne) SetNillableAgeMinMonths(v *int) *TestItemUpdateOne {
	if v != nil {
		_u.SetAgeMinMonths(*v)
	}
	return _u
}

// AddAgeMinMonths adds value to the "age_min_months" field.
func (_u *TestItemUpdateOne) AddAgeMinMonths(v int) *TestItemUpdateOne {
	_u.mutation.AddAgeMinMonths(v)
	return _u
}

// ClearAgeMinMonths clears the value of the "age_min_months" field.
func (_u *TestItemUpdateOne) ClearAgeMinMonths() *TestItemUpdateOne {
	_u.mutation.ClearAgeMinMonths()
	return _u
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (_u *TestItemUpdateOne) SetAgeMaxMonths(v int) *TestItemUpdateOne {
	_u.mutation.ResetAgeMaxMonths()
	_u.mutation.SetAgeMaxMonths(v)
	return _u
}

// SetNillableAgeMaxMonths sets the "age_max_months" field if the given value is not nil.
func (_u *TestItemUpdateOne) SetNillableAgeMaxMonths(v *int) *TestItemUpdateOne {
	if v != nil {
		_u.SetAgeMaxMonths(*v)
	}
	return _u
}

// AddAgeMaxMonths adds value to the "age_max_months" field.
func (_u *TestItemUpdateOne) AddAgeMaxMonths(v int) *TestItemUpdateOne {
	_u.mutation.AddAgeMaxMonths(v)
	return _u
}

// ClearAgeMaxMonths clears the value of the "age_max_months" field.
func (_u *TestItemUpdateOne) ClearAgeMaxMonths() *TestItemUpdateOne {
	_u.mutation.ClearAgeMaxMonths()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TestItemUpdateOne) SetIsActive(v bool) *TestItemUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TestItemUpdateOne) SetNillableIsActive(v *bool) *TestItemUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *TestItemUpdateOne) SetTest(v *Test) *TestItemUpdateOne {
	return _u.SetTestID(v.ID)
}

// Mutation returns the TestItemMutation object of the builder.
func (_u *TestItemUpdateOne) Mutation() *TestItemMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *TestItemUpdateOne) ClearTest() *TestItemUpdateOne {
	_u.mutation.ClearTest()
	return _u
}

// Where appends a list predicates to the TestItemUpdate builder.
func (_u *TestItemUpdateOne) Where(ps ...predicate.TestItem) *TestItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestItemUpdateOne) Select(field string, fields ...string) *TestItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestItem entity.
func (_u *TestItemUpdateOne) Save(ctx context.Context) (*TestItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestItemUpdateOne) SaveX(ctx context.Context) *TestItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestItemUpdateOne) check() error {
	if v, ok := _u.mutation.Part(); ok {
		if err := testitem.PartValidator(v); err != nil {
			return &ValidationError{Name: "part", err: fmt.Errorf(`repo: validator failed for field "TestItem.part": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := testitem.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`repo: validator failed for field "TestItem.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemOrder(); ok {
		if err := testitem.ItemOrderValidator(v); err != nil {
			return &ValidationError{Name: "item_order", err: fmt.Errorf(`repo: validator failed for field "TestItem.item_order": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TestItem.test"`)
	}
	return nil
}

func (_u *TestItemUpdateOne) sqlSave(ctx context.Context) (_node *TestItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testitem.Table, testitem.Columns, sqlgraph.NewFieldSpec(testitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TestItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testitem.FieldID)
		for _, f := range fields {
			if !testitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != testitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Part(); ok {
		_spec.SetField(testitem.FieldPart, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(testitem.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemOrder(); ok {
		_spec.SetField(testitem.FieldItemOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemOrder(); ok {
		_spec.AddField(testitem.FieldItemOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(testitem.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountsDg(); ok {
		_spec.SetField(testitem.FieldCountsDg, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgeMinMonths(); ok {
		_spec.SetField(testitem.FieldAgeMinMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeMinMonths(); ok {
		_spec.AddField(testitem.FieldAgeMinMonths, field.TypeInt, value)
	}
	if _u.mutation.AgeMinMonthsCleared() {
		_spec.ClearField(testitem.FieldAgeMinMonths, field.TypeInt)
	}
	if value, ok := _u.mutation.AgeMaxMonths(); ok {
		_spec.SetField(testitem.FieldAgeMaxMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeMaxMonths(); ok {
		_spec.AddField(testitem.FieldAgeMaxMonths, field.TypeInt, value)
	}
	if _u.mutation.AgeMaxMonthsCleared() {
		_spec.ClearField(testitem.FieldAgeMaxMonths, field.TypeInt)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(testitem.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testitem.TestTable,
			Columns: []string{testitem.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testitem.TestTable,
			Columns: []string{testitem.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TestItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
