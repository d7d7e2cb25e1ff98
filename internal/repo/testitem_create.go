// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/repo/testitem"
)

// TestItemCreate is the builder for creating a TestItem entity.
type TestItemCreate struct {
	config
	mutation *TestItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestItemCreate) SetCreatedAt(v time.Time) *TestItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestItemCreate) SetNillableCreatedAt(v *time.Time) *TestItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TestItemCreate) SetUpdatedAt(v time.Time) *TestItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TestItemCreate) SetNillableUpdatedAt(v *time.Time) *TestItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *TestItemCreate) SetTestID(v uuid.UUID) *TestItemCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetPart sets the "part" field.
func (_c *TestItemCreate) SetPart(v string) *TestItemCreate {
	_c.mutation.SetPart(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *TestItemCreate) SetDomain(v string) *TestItemCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetItemOrder sets the "item_order" field.
func (_c *TestItemCreate) SetItemOrder(v int) *TestItemCreate {
	_c.mutation.SetItemOrder(v)
	return _c
}

// SetText sets the "text" field.
func (_c *TestItemCreate) SetText(v string) *TestItemCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetCountsDg sets the "counts_dg" field.
func (_c *TestItemCreate) SetCountsDg(v bool) *TestItemCreate {
	_c.mutation.SetCountsDg(v)
	return _c
}

// SetNillableCountsDg sets the "counts_dg" field if the given value is not nil.
func (_c *TestItemCreate) SetNillableCountsDg(v *bool) *TestItemCreate {
	if v != nil {
		_c.SetCountsDg(*v)
	}
	return _c
}

// SetAgeMinMonths sets the "age_min_months" field.
func (_c *TestItemCreate) SetAgeMinMonths(v int) *TestItemCreate {
	_c.mutation.SetAgeMinMonths(v)
	return _c
}

// SetNillableAgeMinMonths sets the "age_min_months" field if the given value is not nil.
func (_c *TestItemCreate) SetNillableAgeMinMonths(v *int) *TestItemCreate {
	if v != nil {
		_c.SetAgeMinMonths(*v)
	}
	return _c
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (_c *TestItemCreate) SetAgeMaxMonths(v int) *TestItemCreate {
	_c.mutation.SetAgeMaxMonths(v)
	return _c
}

// SetNillableAgeMaxMonths sets the "age_max_months" field if the given value is not nil.
func (_c *TestItemCreate) SetNillableAgeMaxMonths(v *int) *TestItemCreate {
	if v != nil {
		_c.SetAgeMaxMonths(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TestItemCreate) SetIsActive(v bool) *TestItemCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TestItemCreate) SetNillableIsActive(v *bool) *TestItemCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestItemCreate) SetID(v uuid.UUID) *TestItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestItemCreate) SetNillableID(v *uuid.UUID) *TestItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTest sets the "test" edge to the Test entity.
func (_c *TestItemCreate) SetTest(v *Test) *TestItemCreate {
	return _c.SetTestID(v.ID)
}

// Mutation returns the TestItemMutation object of the builder.
func (_c *TestItemCreate) Mutation() *TestItemMutation {
	return _c.mutation
}

// Save creates the TestItem in the database.
func (_c *TestItemCreate) Save(ctx context.Context) (*TestItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestItemCreate) SaveX(ctx context.Context) *TestItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := testitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CountsDg(); !ok {
		v := testitem.DefaultCountsDg
		_c.mutation.SetCountsDg(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := testitem.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TestItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TestItem.updated_at"`)}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`repo: missing required field "TestItem.test_id"`)}
	}
	if _, ok := _c.mutation.Part(); !ok {
		return &ValidationError{Name: "part", err: errors.New(`repo: missing required field "TestItem.part"`)}
	}
	if v, ok := _c.mutation.Part(); ok {
		if err := testitem.PartValidator(v); err != nil {
			return &ValidationError{Name: "part", err: fmt.Errorf(`repo: validator failed for field "TestItem.part": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`repo: missing required field "TestItem.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := testitem.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`repo: validator failed for field "TestItem.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemOrder(); !ok {
		return &ValidationError{Name: "item_order", err: errors.New(`repo: missing required field "TestItem.item_order"`)}
	}
	if v, ok := _c.mutation.ItemOrder(); ok {
		if err := testitem.ItemOrderValidator(v); err != nil {
			return &ValidationError{Name: "item_order", err: fmt.Errorf(`repo: validator failed for field "TestItem.item_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`repo: missing required field "TestItem.text"`)}
	}
	if _, ok := _c.mutation.CountsDg(); !ok {
		return &ValidationError{Name: "counts_dg", err: errors.New(`repo: missing required field "TestItem.counts_dg"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "TestItem.is_active"`)}
	}
	if len(_c.mutation.TestIDs()) == 0 {
		return &ValidationError{Name: "test", err: errors.New(`repo: missing required edge "TestItem.test"`)}
	}
	return nil
}

func (_c *TestItemCreate) sqlSave(ctx context.Context) (*TestItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestItemCreate) createSpec() (*TestItem, *sqlgraph.CreateSpec) {
	var (
		_node = &TestItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testitem.Table, sqlgraph.NewFieldSpec(testitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(testitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Part(); ok {
		_spec.SetField(testitem.FieldPart, field.TypeString, value)
		_node.Part = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(testitem.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.ItemOrder(); ok {
		_spec.SetField(testitem.FieldItemOrder, field.TypeInt, value)
		_node.ItemOrder = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(testitem.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.CountsDg(); ok {
		_spec.SetField(testitem.FieldCountsDg, field.TypeBool, value)
		_node.CountsDg = value
	}
	if value, ok := _c.mutation.AgeMinMonths(); ok {
		_spec.SetField(testitem.FieldAgeMinMonths, field.TypeInt, value)
		_node.AgeMinMonths = &value
	}
	if value, ok := _c.mutation.AgeMaxMonths(); ok {
		_spec.SetField(testitem.FieldAgeMaxMonths, field.TypeInt, value)
		_node.AgeMaxMonths = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(testitem.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.TestIDs(); len(nodes) > 0 {
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
		_node.TestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TestItemCreate) OnConflict(opts ...sql.ConflictOption) *TestItemUpsertOne {
	_c.conflict = opts
	return &TestItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestItemCreate) OnConflictColumns(columns ...string) *TestItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestItemUpsertOne{
		create: _c,
	}
}

type (
	// TestItemUpsertOne is the builder for "upsert"-ing
	//  one TestItem node.
	TestItemUpsertOne struct {
		create *TestItemCreate
	}

	// TestItemUpsert is the "OnConflict" setter.
	TestItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TestItemUpsert) SetUpdatedAt(v time.Time) *TestItemUpsert {
	u.Set(testitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestItemUpsert) UpdateUpdatedAt() *TestItemUpsert {
	u.SetExcluded(testitem.FieldUpdatedAt)
	return u
}

// SetTestID sets the "test_id" field.
func (u *TestItemUpsert) SetTestID(v uuid.UUID) *TestItemUpsert {
	u.Set(testitem.FieldTestID, v)
	return u
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *TestItemUpsert) UpdateTestID() *TestItemUpsert {
	u.SetExcluded(testitem.FieldTestID)
	return u
}

// SetPart sets the "part" field.
func (u *TestItemUpsert) SetPart(v string) *TestItemUpsert {
	u.Set(testitem.FieldPart, v)
	return u
}

// UpdatePart sets the "part" field to the value that was provided on create.
func (u *TestItemUpsert) UpdatePart() *TestItemUpsert {
	u.SetExcluded(testitem.FieldPart)
	return u
}

// SetDomain sets the "domain" field.
func (u *TestItemUpsert) SetDomain(v string) *TestItemUpsert {
	u.Set(testitem.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *TestItemUpsert) UpdateDomain() *TestItemUpsert {
	u.SetExcluded(testitem.FieldDomain)
	return u
}

// SetItemOrder sets the "item_order" field.
func (u *TestItemUpsert) SetItemOrder(v int) *TestItemUpsert {
	u.Set(testitem.FieldItemOrder, v)
	return u
}

// UpdateItemOrder sets the "item_order" field to the value that was provided on create.
func (u *TestItemUpsert) UpdateItemOrder() *TestItemUpsert {
	u.SetExcluded(testitem.FieldItemOrder)
	return u
}

// AddItemOrder adds v to the "item_order" field.
func (u *TestItemUpsert) AddItemOrder(v int) *TestItemUpsert {
	u.Add(testitem.FieldItemOrder, v)
	return u
}

// SetText sets the "text" field.
func (u *TestItemUpsert) SetText(v string) *TestItemUpsert {
	u.Set(testitem.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *TestItemUpsert) UpdateText() *TestItemUpsert {
	u.SetExcluded(testitem.FieldText)
	return u
}

// SetCountsDg sets the "counts_dg" field.
func (u *TestItemUpsert) SetCountsDg(v bool) *TestItemUpsert {
	u.Set(testitem.FieldCountsDg, v)
	return u
}

// UpdateCountsDg sets the "counts_dg" field to the value that was provided on create.
func (u *TestItemUpsert) UpdateCountsDg() *TestItemUpsert {
	u.SetExcluded(testitem.FieldCountsDg)
	return u
}

// SetAgeMinMonths sets the "age_min_months" field.
func (u *TestItemUpsert) SetAgeMinMonths(v int) *TestItemUpsert {
	u.Set(testitem.FieldAgeMinMonths, v)
	return u
}

// UpdateAgeMinMonths sets the "age_min_months" field to the value that was provided on create.
func (u *TestItemUpsert) UpdateAgeMinMonths() *TestItemUpsert {
	u.SetExcluded(testitem.FieldAgeMinMonths)
	return u
}

// AddAgeMinMonths adds v to the "age_min_months" field.
func (u *TestItemUpsert) AddAgeMinMonths(v int) *TestItemUpsert {
	u.Add(testitem.FieldAgeMinMonths, v)
	return u
}

// ClearAgeMinMonths clears the value of the "age_min_months" field.
func (u *TestItemUpsert) ClearAgeMinMonths() *TestItemUpsert {
	u.SetNull(testitem.FieldAgeMinMonths)
	return u
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (u *TestItemUpsert) SetAgeMaxMonths(v int) *TestItemUpsert {
	u.Set(testitem.FieldAgeMaxMonths, v)
	return u
}

// UpdateAgeMaxMonths sets the "age_max_months" field to the value that was provided on create.
func (u *TestItemUpsert) UpdateAgeMaxMonths() *TestItemUpsert {
	u.SetExcluded(testitem.FieldAgeMaxMonths)
	return u
}

// AddAgeMaxMonths adds v to the "age_max_months" field.
func (u *TestItemUpsert) AddAgeMaxMonths(v int) *TestItemUpsert {
	u.Add(testitem.FieldAgeMaxMonths, v)
	return u
}

// ClearAgeMaxMonths clears the value of the "age_max_months" field.
func (u *TestItemUpsert) ClearAgeMaxMonths() *TestItemUpsert {
	u.SetNull(testitem.FieldAgeMaxMonths)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *TestItemUpsert) SetIsActive(v bool) *TestItemUpsert {
	u.Set(testitem.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TestItemUpsert) UpdateIsActive() *TestItemUpsert {
	u.SetExcluded(testitem.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TestItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestItemUpsertOne) UpdateNewValues() *TestItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(testitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(testitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TestItemUpsertOne) Ignore() *TestItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestItemUpsertOne) DoNothing() *TestItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestItemCreate.OnConflict
// documentation for more info.
func (u *TestItemUpsertOne) Update(set func(*TestItemUpsert)) *TestItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TestItemUpsertOne) SetUpdatedAt(v time.Time) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdateUpdatedAt() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTestID sets the "test_id" field.
func (u *TestItemUpsertOne) SetTestID(v uuid.UUID) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetTestID(v)
	})
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdateTestID() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateTestID()
	})
}

// SetPart sets the "part" field.
func (u *TestItemUpsertOne) SetPart(v string) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetPart(v)
	})
}

// UpdatePart sets the "part" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdatePart() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdatePart()
	})
}

// SetDomain sets the "domain" field.
func (u *TestItemUpsertOne) SetDomain(v string) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdateDomain() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateDomain()
	})
}

// SetItemOrder sets the "item_order" field.
func (u *TestItemUpsertOne) SetItemOrder(v int) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetItemOrder(v)
	})
}

// AddItemOrder adds v to the "item_order" field.
func (u *TestItemUpsertOne) AddItemOrder(v int) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.AddItemOrder(v)
	})
}

// UpdateItemOrder sets the "item_order" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdateItemOrder() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateItemOrder()
	})
}

// SetText sets the "text" field.
func (u *TestItemUpsertOne) SetText(v string) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdateText() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateText()
	})
}

// SetCountsDg sets the "counts_dg" field.
func (u *TestItemUpsertOne) SetCountsDg(v bool) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetCountsDg(v)
	})
}

// UpdateCountsDg sets the "counts_dg" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdateCountsDg() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateCountsDg()
	})
}

// SetAgeMinMonths sets the "age_min_months" field.
func (u *TestItemUpsertOne) SetAgeMinMonths(v int) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetAgeMinMonths(v)
	})
}

// AddAgeMinMonths adds v to the "age_min_months" field.
func (u *TestItemUpsertOne) AddAgeMinMonths(v int) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.AddAgeMinMonths(v)
	})
}

// UpdateAgeMinMonths sets the "age_min_months" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdateAgeMinMonths() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateAgeMinMonths()
	})
}

// ClearAgeMinMonths clears the value of the "age_min_months" field.
func (u *TestItemUpsertOne) ClearAgeMinMonths() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.ClearAgeMinMonths()
	})
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (u *TestItemUpsertOne) SetAgeMaxMonths(v int) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetAgeMaxMonths(v)
	})
}

// AddAgeMaxMonths adds v to the "age_max_months" field.
func (u *TestItemUpsertOne) AddAgeMaxMonths(v int) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.AddAgeMaxMonths(v)
	})
}

// UpdateAgeMaxMonths sets the "age_max_months" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdateAgeMaxMonths() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateAgeMaxMonths()
	})
}

// ClearAgeMaxMonths clears the value of the "age_max_months" field.
func (u *TestItemUpsertOne) ClearAgeMaxMonths() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.ClearAgeMaxMonths()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TestItemUpsertOne) SetIsActive(v bool) *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TestItemUpsertOne) UpdateIsActive() *TestItemUpsertOne {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *TestItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TestItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TestItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TestItemUpsertOne.ID is not supported by MySQL driver. Use TestItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TestItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TestItemCreateBulk is the builder for creating many TestItem entities in bulk.
type TestItemCreateBulk struct {
	config
	err      error
	builders []*TestItemCreate
	conflict []sql.ConflictOption
}

// Save creates the TestItem entities in the database.
func (_c *TestItemCreateBulk) Save(ctx context.Context) ([]*TestItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestItemCreateBulk) SaveX(ctx context.Context) []*TestItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TestItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *TestItemUpsertBulk {
	_c.conflict = opts
	return &TestItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestItemCreateBulk) OnConflictColumns(columns ...string) *TestItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestItemUpsertBulk{
		create: _c,
	}
}

// TestItemUpsertBulk is the builder for "upsert"-ing
// a bulk of TestItem nodes.
type TestItemUpsertBulk struct {
	create *TestItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TestItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestItemUpsertBulk) UpdateNewValues() *TestItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(testitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(testitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TestItemUpsertBulk) Ignore() *TestItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestItemUpsertBulk) DoNothing() *TestItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestItemCreateBulk.OnConflict
// documentation for more info.
func (u *TestItemUpsertBulk) Update(set func(*TestItemUpsert)) *TestItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TestItemUpsertBulk) SetUpdatedAt(v time.Time) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdateUpdatedAt() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTestID sets the "test_id" field.
func (u *TestItemUpsertBulk) SetTestID(v uuid.UUID) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetTestID(v)
	})
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdateTestID() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateTestID()
	})
}

// SetPart sets the "part" field.
func (u *TestItemUpsertBulk) SetPart(v string) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetPart(v)
	})
}

// UpdatePart sets the "part" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdatePart() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdatePart()
	})
}

// SetDomain sets the "domain" field.
func (u *TestItemUpsertBulk) SetDomain(v string) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdateDomain() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateDomain()
	})
}

// SetItemOrder sets the "item_order" field.
func (u *TestItemUpsertBulk) SetItemOrder(v int) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetItemOrder(v)
	})
}

// AddItemOrder adds v to the "item_order" field.
func (u *TestItemUpsertBulk) AddItemOrder(v int) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.AddItemOrder(v)
	})
}

// UpdateItemOrder sets the "item_order" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdateItemOrder() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateItemOrder()
	})
}

// SetText sets the "text" field.
func (u *TestItemUpsertBulk) SetText(v string) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdateText() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateText()
	})
}

// SetCountsDg sets the "counts_dg" field.
func (u *TestItemUpsertBulk) SetCountsDg(v bool) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetCountsDg(v)
	})
}

// UpdateCountsDg sets the "counts_dg" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdateCountsDg() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateCountsDg()
	})
}

// SetAgeMinMonths sets the "age_min_months" field.
func (u *TestItemUpsertBulk) SetAgeMinMonths(v int) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetAgeMinMonths(v)
	})
}

// AddAgeMinMonths adds v to the "age_min_months" field.
func (u *TestItemUpsertBulk) AddAgeMinMonths(v int) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.AddAgeMinMonths(v)
	})
}

// UpdateAgeMinMonths sets the "age_min_months" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdateAgeMinMonths() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateAgeMinMonths()
	})
}

// ClearAgeMinMonths clears the value of the "age_min_months" field.
func (u *TestItemUpsertBulk) ClearAgeMinMonths() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.ClearAgeMinMonths()
	})
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (u *TestItemUpsertBulk) SetAgeMaxMonths(v int) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetAgeMaxMonths(v)
	})
}

// AddAgeMaxMonths adds v to the "age_max_months" field.
func (u *TestItemUpsertBulk) AddAgeMaxMonths(v int) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.AddAgeMaxMonths(v)
	})
}

// UpdateAgeMaxMonths sets the "age_max_months" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdateAgeMaxMonths() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateAgeMaxMonths()
	})
}

// ClearAgeMaxMonths clears the value of the "age_max_months" field.
func (u *TestItemUpsertBulk) ClearAgeMaxMonths() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.ClearAgeMaxMonths()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TestItemUpsertBulk) SetIsActive(v bool) *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TestItemUpsertBulk) UpdateIsActive() *TestItemUpsertBulk {
	return u.Update(func(s *TestItemUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *TestItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TestItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TestItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
