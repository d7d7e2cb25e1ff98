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
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/repo/testitem"
)

// TestCreate is the builder for creating a Test entity.
type TestCreate struct {
	config
	mutation *TestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestCreate) SetCreatedAt(v time.Time) *TestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestCreate) SetNillableCreatedAt(v *time.Time) *TestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TestCreate) SetUpdatedAt(v time.Time) *TestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TestCreate) SetNillableUpdatedAt(v *time.Time) *TestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *TestCreate) SetKind(v test.Kind) *TestCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *TestCreate) SetNillableKind(v *test.Kind) *TestCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *TestCreate) SetName(v string) *TestCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TestCreate) SetDescription(v string) *TestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TestCreate) SetNillableDescription(v *string) *TestCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAgeMinMonths sets the "age_min_months" field.
func (_c *TestCreate) SetAgeMinMonths(v int) *TestCreate {
	_c.mutation.SetAgeMinMonths(v)
	return _c
}

// SetNillableAgeMinMonths sets the "age_min_months" field if the given value is not nil.
func (_c *TestCreate) SetNillableAgeMinMonths(v *int) *TestCreate {
	if v != nil {
		_c.SetAgeMinMonths(*v)
	}
	return _c
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (_c *TestCreate) SetAgeMaxMonths(v int) *TestCreate {
	_c.mutation.SetAgeMaxMonths(v)
	return _c
}

// SetNillableAgeMaxMonths sets the "age_max_months" field if the given value is not nil.
func (_c *TestCreate) SetNillableAgeMaxMonths(v *int) *TestCreate {
	if v != nil {
		_c.SetAgeMaxMonths(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TestCreate) SetIsActive(v bool) *TestCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TestCreate) SetNillableIsActive(v *bool) *TestCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestCreate) SetID(v uuid.UUID) *TestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestCreate) SetNillableID(v *uuid.UUID) *TestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the TestItem entity by IDs.
func (_c *TestCreate) AddItemIDs(ids ...uuid.UUID) *TestCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the TestItem entity.
func (_c *TestCreate) AddItems(v ...*TestItem) *TestCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_c *TestCreate) AddPrescriptionIDs(ids ...uuid.UUID) *TestCreate {
	_c.mutation.AddPrescriptionIDs(ids...)
	return _c
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_c *TestCreate) AddPrescriptions(v ...*Prescription) *TestCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPrescriptionIDs(ids...)
}

// Mutation returns the TestMutation object of the builder.
func (_c *TestCreate) Mutation() *TestMutation {
	return _c.mutation
}

// Save creates the Test in the database.
func (_c *TestCreate) Save(ctx context.Context) (*Test, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestCreate) SaveX(ctx context.Context) *Test {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := test.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := test.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := test.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.AgeMinMonths(); !ok {
		v := test.DefaultAgeMinMonths
		_c.mutation.SetAgeMinMonths(v)
	}
	if _, ok := _c.mutation.AgeMaxMonths(); !ok {
		v := test.DefaultAgeMaxMonths
		_c.mutation.SetAgeMaxMonths(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := test.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := test.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Test.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Test.updated_at"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "Test.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := test.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Test.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Test.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := test.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Test.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgeMinMonths(); !ok {
		return &ValidationError{Name: "age_min_months", err: errors.New(`repo: missing required field "Test.age_min_months"`)}
	}
	if _, ok := _c.mutation.AgeMaxMonths(); !ok {
		return &ValidationError{Name: "age_max_months", err: errors.New(`repo: missing required field "Test.age_max_months"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Test.is_active"`)}
	}
	return nil
}

func (_c *TestCreate) sqlSave(ctx context.Context) (*Test, error) {
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

func (_c *TestCreate) createSpec() (*Test, *sqlgraph.CreateSpec) {
	var (
		_node = &Test{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(test.Table, sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(test.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(test.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(test.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(test.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(test.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.AgeMinMonths(); ok {
		_spec.SetField(test.FieldAgeMinMonths, field.TypeInt, value)
		_node.AgeMinMonths = value
	}
	if value, ok := _c.mutation.AgeMaxMonths(); ok {
		_spec.SetField(test.FieldAgeMaxMonths, field.TypeInt, value)
		_node.AgeMaxMonths = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(test.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   test.ItemsTable,
			Columns: []string{test.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PrescriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   test.PrescriptionsTable,
			Columns: []string{test.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Test.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TestCreate) OnConflict(opts ...sql.ConflictOption) *TestUpsertOne {
	_c.conflict = opts
	return &TestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestCreate) OnConflictColumns(columns ...string) *TestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestUpsertOne{
		create: _c,
	}
}

type (
	// TestUpsertOne is the builder for "upsert"-ing
	//  one Test node.
	TestUpsertOne struct {
		create *TestCreate
	}

	// TestUpsert is the "OnConflict" setter.
	TestUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TestUpsert) SetUpdatedAt(v time.Time) *TestUpsert {
	u.Set(test.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestUpsert) UpdateUpdatedAt() *TestUpsert {
	u.SetExcluded(test.FieldUpdatedAt)
	return u
}

// SetKind sets the "kind" field.
func (u *TestUpsert) SetKind(v test.Kind) *TestUpsert {
	u.Set(test.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TestUpsert) UpdateKind() *TestUpsert {
	u.SetExcluded(test.FieldKind)
	return u
}

// SetName sets the "name" field.
func (u *TestUpsert) SetName(v string) *TestUpsert {
	u.Set(test.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TestUpsert) UpdateName() *TestUpsert {
	u.SetExcluded(test.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *TestUpsert) SetDescription(v string) *TestUpsert {
	u.Set(test.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TestUpsert) UpdateDescription() *TestUpsert {
	u.SetExcluded(test.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TestUpsert) ClearDescription() *TestUpsert {
	u.SetNull(test.FieldDescription)
	return u
}

// SetAgeMinMonths sets the "age_min_months" field.
func (u *TestUpsert) SetAgeMinMonths(v int) *TestUpsert {
	u.Set(test.FieldAgeMinMonths, v)
	return u
}

// UpdateAgeMinMonths sets the "age_min_months" field to the value that was provided on create.
func (u *TestUpsert) UpdateAgeMinMonths() *TestUpsert {
	u.SetExcluded(test.FieldAgeMinMonths)
	return u
}

// AddAgeMinMonths adds v to the "age_min_months" field.
func (u *TestUpsert) AddAgeMinMonths(v int) *TestUpsert {
	u.Add(test.FieldAgeMinMonths, v)
	return u
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (u *TestUpsert) SetAgeMaxMonths(v int) *TestUpsert {
	u.Set(test.FieldAgeMaxMonths, v)
	return u
}

// UpdateAgeMaxMonths sets the "age_max_months" field to the value that was provided on create.
func (u *TestUpsert) UpdateAgeMaxMonths() *TestUpsert {
	u.SetExcluded(test.FieldAgeMaxMonths)
	return u
}

// AddAgeMaxMonths adds v to the "age_max_months" field.
func (u *TestUpsert) AddAgeMaxMonths(v int) *TestUpsert {
	u.Add(test.FieldAgeMaxMonths, v)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *TestUpsert) SetIsActive(v bool) *TestUpsert {
	u.Set(test.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TestUpsert) UpdateIsActive() *TestUpsert {
	u.SetExcluded(test.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(test.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestUpsertOne) UpdateNewValues() *TestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(test.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(test.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Test.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TestUpsertOne) Ignore() *TestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestUpsertOne) DoNothing() *TestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestCreate.OnConflict
// documentation for more info.
func (u *TestUpsertOne) Update(set func(*TestUpsert)) *TestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TestUpsertOne) SetUpdatedAt(v time.Time) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateUpdatedAt() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetKind sets the "kind" field.
func (u *TestUpsertOne) SetKind(v test.Kind) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateKind() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateKind()
	})
}

// SetName sets the "name" field.
func (u *TestUpsertOne) SetName(v string) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateName() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *TestUpsertOne) SetDescription(v string) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateDescription() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TestUpsertOne) ClearDescription() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.ClearDescription()
	})
}

// SetAgeMinMonths sets the "age_min_months" field.
func (u *TestUpsertOne) SetAgeMinMonths(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetAgeMinMonths(v)
	})
}

// AddAgeMinMonths adds v to the "age_min_months" field.
func (u *TestUpsertOne) AddAgeMinMonths(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.AddAgeMinMonths(v)
	})
}

// UpdateAgeMinMonths sets the "age_min_months" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateAgeMinMonths() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateAgeMinMonths()
	})
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (u *TestUpsertOne) SetAgeMaxMonths(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetAgeMaxMonths(v)
	})
}

// AddAgeMaxMonths adds v to the "age_max_months" field.
func (u *TestUpsertOne) AddAgeMaxMonths(v int) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.AddAgeMaxMonths(v)
	})
}

// UpdateAgeMaxMonths sets the "age_max_months" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateAgeMaxMonths() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateAgeMaxMonths()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TestUpsertOne) SetIsActive(v bool) *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TestUpsertOne) UpdateIsActive() *TestUpsertOne {
	return u.Update(func(s *TestUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *TestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TestUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TestUpsertOne.ID is not supported by MySQL driver. Use TestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TestUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TestCreateBulk is the builder for creating many Test entities in bulk.
type TestCreateBulk struct {
	config
	err      error
	builders []*TestCreate
	conflict []sql.ConflictOption
}

// Save creates the Test entities in the database.
func (_c *TestCreateBulk) Save(ctx context.Context) ([]*Test, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Test, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestMutation)
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
func (_c *TestCreateBulk) SaveX(ctx context.Context) []*Test {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Test.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TestCreateBulk) OnConflict(opts ...sql.ConflictOption) *TestUpsertBulk {
	_c.conflict = opts
	return &TestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestCreateBulk) OnConflictColumns(columns ...string) *TestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestUpsertBulk{
		create: _c,
	}
}

// TestUpsertBulk is the builder for "upsert"-ing
// a bulk of Test nodes.
type TestUpsertBulk struct {
	create *TestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(test.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestUpsertBulk) UpdateNewValues() *TestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(test.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(test.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Test.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TestUpsertBulk) Ignore() *TestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestUpsertBulk) DoNothing() *TestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestCreateBulk.OnConflict
// documentation for more info.
func (u *TestUpsertBulk) Update(set func(*TestUpsert)) *TestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TestUpsertBulk) SetUpdatedAt(v time.Time) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateUpdatedAt() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetKind sets the "kind" field.
func (u *TestUpsertBulk) SetKind(v test.Kind) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateKind() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateKind()
	})
}

// SetName sets the "name" field.
func (u *TestUpsertBulk) SetName(v string) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateName() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *TestUpsertBulk) SetDescription(v string) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateDescription() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TestUpsertBulk) ClearDescription() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.ClearDescription()
	})
}

// SetAgeMinMonths sets the "age_min_months" field.
func (u *TestUpsertBulk) SetAgeMinMonths(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetAgeMinMonths(v)
	})
}

// AddAgeMinMonths adds v to the "age_min_months" field.
func (u *TestUpsertBulk) AddAgeMinMonths(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.AddAgeMinMonths(v)
	})
}

// UpdateAgeMinMonths sets the "age_min_months" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateAgeMinMonths() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateAgeMinMonths()
	})
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (u *TestUpsertBulk) SetAgeMaxMonths(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetAgeMaxMonths(v)
	})
}

// AddAgeMaxMonths adds v to the "age_max_months" field.
func (u *TestUpsertBulk) AddAgeMaxMonths(v int) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.AddAgeMaxMonths(v)
	})
}

// UpdateAgeMaxMonths sets the "age_max_months" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateAgeMaxMonths() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateAgeMaxMonths()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TestUpsertBulk) SetIsActive(v bool) *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TestUpsertBulk) UpdateIsActive() *TestUpsertBulk {
	return u.Update(func(s *TestUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *TestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
