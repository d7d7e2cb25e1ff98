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
	"github.com/ortholab/depisto_backend/internal/repo/bilan"
	"github.com/ortholab/depisto_backend/internal/repo/passation"
	"github.com/ortholab/depisto_backend/internal/repo/patient"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/repo/user"
)

// PrescriptionCreate is the builder for creating a Prescription entity.
type PrescriptionCreate struct {
	config
	mutation *PrescriptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PrescriptionCreate) SetCreatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableCreatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PrescriptionCreate) SetUpdatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableUpdatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPractitionerID sets the "practitioner_id" field.
func (_c *PrescriptionCreate) SetPractitionerID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetPractitionerID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PrescriptionCreate) SetPatientID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *PrescriptionCreate) SetTestID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PrescriptionCreate) SetStatus(v prescription.Status) *PrescriptionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableStatus(v *prescription.Status) *PrescriptionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGdprConsent sets the "gdpr_consent" field.
func (_c *PrescriptionCreate) SetGdprConsent(v bool) *PrescriptionCreate {
	_c.mutation.SetGdprConsent(v)
	return _c
}

// SetNillableGdprConsent sets the "gdpr_consent" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableGdprConsent(v *bool) *PrescriptionCreate {
	if v != nil {
		_c.SetGdprConsent(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *PrescriptionCreate) SetPriority(v int) *PrescriptionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillablePriority(v *int) *PrescriptionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *PrescriptionCreate) SetDeadline(v time.Time) *PrescriptionCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableDeadline(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetDeadline(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *PrescriptionCreate) SetInstructions(v string) *PrescriptionCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableInstructions(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PrescriptionCreate) SetID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableID(v *uuid.UUID) *PrescriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPractitioner sets the "practitioner" edge to the User entity.
func (_c *PrescriptionCreate) SetPractitioner(v *User) *PrescriptionCreate {
	return _c.SetPractitionerID(v.ID)
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PrescriptionCreate) SetPatient(v *Patient) *PrescriptionCreate {
	return _c.SetPatientID(v.ID)
}

// SetTest sets the "test" edge to the Test entity.
func (_c *PrescriptionCreate) SetTest(v *Test) *PrescriptionCreate {
	return _c.SetTestID(v.ID)
}

// AddPassationIDs adds the "passations" edge to the Passation entity by IDs.
func (_c *PrescriptionCreate) AddPassationIDs(ids ...uuid.UUID) *PrescriptionCreate {
	_c.mutation.AddPassationIDs(ids...)
	return _c
}

// AddPassations adds the "passations" edges to the Passation entity.
func (_c *PrescriptionCreate) AddPassations(v ...*Passation) *PrescriptionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPassationIDs(ids...)
}

// AddBilanIDs adds the "bilans" edge to the Bilan entity by IDs.
func (_c *PrescriptionCreate) AddBilanIDs(ids ...uuid.UUID) *PrescriptionCreate {
	_c.mutation.AddBilanIDs(ids...)
	return _c
}

// AddBilans adds the "bilans" edges to the Bilan entity.
func (_c *PrescriptionCreate) AddBilans(v ...*Bilan) *PrescriptionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBilanIDs(ids...)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_c *PrescriptionCreate) Mutation() *PrescriptionMutation {
	return _c.mutation
}

// Save creates the Prescription in the database.
func (_c *PrescriptionCreate) Save(ctx context.Context) (*Prescription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrescriptionCreate) SaveX(ctx context.Context) *Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrescriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prescription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prescription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := prescription.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.GdprConsent(); !ok {
		v := prescription.DefaultGdprConsent
		_c.mutation.SetGdprConsent(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := prescription.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prescription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrescriptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Prescription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Prescription.updated_at"`)}
	}
	if _, ok := _c.mutation.PractitionerID(); !ok {
		return &ValidationError{Name: "practitioner_id", err: errors.New(`repo: missing required field "Prescription.practitioner_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Prescription.patient_id"`)}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`repo: missing required field "Prescription.test_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Prescription.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := prescription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Prescription.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GdprConsent(); !ok {
		return &ValidationError{Name: "gdpr_consent", err: errors.New(`repo: missing required field "Prescription.gdpr_consent"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`repo: missing required field "Prescription.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := prescription.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Prescription.priority": %w`, err)}
		}
	}
	if len(_c.mutation.PractitionerIDs()) == 0 {
		return &ValidationError{Name: "practitioner", err: errors.New(`repo: missing required edge "Prescription.practitioner"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Prescription.patient"`)}
	}
	if len(_c.mutation.TestIDs()) == 0 {
		return &ValidationError{Name: "test", err: errors.New(`repo: missing required edge "Prescription.test"`)}
	}
	return nil
}

func (_c *PrescriptionCreate) sqlSave(ctx context.Context) (*Prescription, error) {
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

func (_c *PrescriptionCreate) createSpec() (*Prescription, *sqlgraph.CreateSpec) {
	var (
		_node = &Prescription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prescription.Table, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prescription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(prescription.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GdprConsent(); ok {
		_spec.SetField(prescription.FieldGdprConsent, field.TypeBool, value)
		_node.GdprConsent = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(prescription.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(prescription.FieldDeadline, field.TypeTime, value)
		_node.Deadline = &value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
		_node.Instructions = &value
	}
	if nodes := _c.mutation.PractitionerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.PractitionerTable,
			Columns: []string{prescription.PractitionerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PractitionerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.PatientTable,
			Columns: []string{prescription.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.TestTable,
			Columns: []string{prescription.TestColumn},
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
	if nodes := _c.mutation.PassationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prescription.PassationsTable,
			Columns: []string{prescription.PassationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BilansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   prescription.BilansTable,
			Columns: []string{prescription.BilansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bilan.FieldID, field.TypeUUID),
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
//	client.Prescription.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertOne {
	_c.conflict = opts
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflictColumns(columns ...string) *PrescriptionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

type (
	// PrescriptionUpsertOne is the builder for "upsert"-ing
	//  one Prescription node.
	PrescriptionUpsertOne struct {
		create *PrescriptionCreate
	}

	// PrescriptionUpsert is the "OnConflict" setter.
	PrescriptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsert) SetUpdatedAt(v time.Time) *PrescriptionUpsert {
	u.Set(prescription.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateUpdatedAt() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldUpdatedAt)
	return u
}

// SetPractitionerID sets the "practitioner_id" field.
func (u *PrescriptionUpsert) SetPractitionerID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldPractitionerID, v)
	return u
}

// UpdatePractitionerID sets the "practitioner_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePractitionerID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPractitionerID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsert) SetPatientID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePatientID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPatientID)
	return u
}

// SetTestID sets the "test_id" field.
func (u *PrescriptionUpsert) SetTestID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldTestID, v)
	return u
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateTestID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldTestID)
	return u
}

// SetStatus sets the "status" field.
func (u *PrescriptionUpsert) SetStatus(v prescription.Status) *PrescriptionUpsert {
	u.Set(prescription.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateStatus() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldStatus)
	return u
}

// SetGdprConsent sets the "gdpr_consent" field.
func (u *PrescriptionUpsert) SetGdprConsent(v bool) *PrescriptionUpsert {
	u.Set(prescription.FieldGdprConsent, v)
	return u
}

// UpdateGdprConsent sets the "gdpr_consent" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateGdprConsent() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldGdprConsent)
	return u
}

// SetPriority sets the "priority" field.
func (u *PrescriptionUpsert) SetPriority(v int) *PrescriptionUpsert {
	u.Set(prescription.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePriority() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *PrescriptionUpsert) AddPriority(v int) *PrescriptionUpsert {
	u.Add(prescription.FieldPriority, v)
	return u
}

// SetDeadline sets the "deadline" field.
func (u *PrescriptionUpsert) SetDeadline(v time.Time) *PrescriptionUpsert {
	u.Set(prescription.FieldDeadline, v)
	return u
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDeadline() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDeadline)
	return u
}

// ClearDeadline clears the value of the "deadline" field.
func (u *PrescriptionUpsert) ClearDeadline() *PrescriptionUpsert {
	u.SetNull(prescription.FieldDeadline)
	return u
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionUpsert) SetInstructions(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldInstructions, v)
	return u
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateInstructions() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldInstructions)
	return u
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PrescriptionUpsert) ClearInstructions() *PrescriptionUpsert {
	u.SetNull(prescription.FieldInstructions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertOne) UpdateNewValues() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prescription.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(prescription.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PrescriptionUpsertOne) Ignore() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertOne) DoNothing() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreate.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertOne) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsertOne) SetUpdatedAt(v time.Time) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateUpdatedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPractitionerID sets the "practitioner_id" field.
func (u *PrescriptionUpsertOne) SetPractitionerID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPractitionerID(v)
	})
}

// UpdatePractitionerID sets the "practitioner_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePractitionerID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePractitionerID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertOne) SetPatientID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePatientID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetTestID sets the "test_id" field.
func (u *PrescriptionUpsertOne) SetTestID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetTestID(v)
	})
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateTestID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateTestID()
	})
}

// SetStatus sets the "status" field.
func (u *PrescriptionUpsertOne) SetStatus(v prescription.Status) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateStatus() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateStatus()
	})
}

// SetGdprConsent sets the "gdpr_consent" field.
func (u *PrescriptionUpsertOne) SetGdprConsent(v bool) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetGdprConsent(v)
	})
}

// UpdateGdprConsent sets the "gdpr_consent" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateGdprConsent() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateGdprConsent()
	})
}

// SetPriority sets the "priority" field.
func (u *PrescriptionUpsertOne) SetPriority(v int) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *PrescriptionUpsertOne) AddPriority(v int) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePriority() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePriority()
	})
}

// SetDeadline sets the "deadline" field.
func (u *PrescriptionUpsertOne) SetDeadline(v time.Time) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDeadline() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *PrescriptionUpsertOne) ClearDeadline() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearDeadline()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionUpsertOne) SetInstructions(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateInstructions() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PrescriptionUpsertOne) ClearInstructions() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearInstructions()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PrescriptionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PrescriptionUpsertOne.ID is not supported by MySQL driver. Use PrescriptionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PrescriptionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PrescriptionCreateBulk is the builder for creating many Prescription entities in bulk.
type PrescriptionCreateBulk struct {
	config
	err      error
	builders []*PrescriptionCreate
	conflict []sql.ConflictOption
}

// Save creates the Prescription entities in the database.
func (_c *PrescriptionCreateBulk) Save(ctx context.Context) ([]*Prescription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prescription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrescriptionMutation)
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
func (_c *PrescriptionCreateBulk) SaveX(ctx context.Context) []*Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prescription.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertBulk {
	_c.conflict = opts
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflictColumns(columns ...string) *PrescriptionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// PrescriptionUpsertBulk is the builder for "upsert"-ing
// a bulk of Prescription nodes.
type PrescriptionUpsertBulk struct {
	create *PrescriptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) UpdateNewValues() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prescription.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(prescription.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) Ignore() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertBulk) DoNothing() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreateBulk.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertBulk) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsertBulk) SetUpdatedAt(v time.Time) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateUpdatedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPractitionerID sets the "practitioner_id" field.
func (u *PrescriptionUpsertBulk) SetPractitionerID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPractitionerID(v)
	})
}

// UpdatePractitionerID sets the "practitioner_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePractitionerID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePractitionerID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertBulk) SetPatientID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePatientID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetTestID sets the "test_id" field.
func (u *PrescriptionUpsertBulk) SetTestID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetTestID(v)
	})
}

// UpdateTestID sets the "test_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateTestID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateTestID()
	})
}

// SetStatus sets the "status" field.
func (u *PrescriptionUpsertBulk) SetStatus(v prescription.Status) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateStatus() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateStatus()
	})
}

// SetGdprConsent sets the "gdpr_consent" field.
func (u *PrescriptionUpsertBulk) SetGdprConsent(v bool) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetGdprConsent(v)
	})
}

// UpdateGdprConsent sets the "gdpr_consent" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateGdprConsent() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateGdprConsent()
	})
}

// SetPriority sets the "priority" field.
func (u *PrescriptionUpsertBulk) SetPriority(v int) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *PrescriptionUpsertBulk) AddPriority(v int) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePriority() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePriority()
	})
}

// SetDeadline sets the "deadline" field.
func (u *PrescriptionUpsertBulk) SetDeadline(v time.Time) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDeadline(v)
	})
}

// UpdateDeadline sets the "deadline" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDeadline() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDeadline()
	})
}

// ClearDeadline clears the value of the "deadline" field.
func (u *PrescriptionUpsertBulk) ClearDeadline() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearDeadline()
	})
}

// SetInstructions sets the "instructions" field.
func (u *PrescriptionUpsertBulk) SetInstructions(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetInstructions(v)
	})
}

// UpdateInstructions sets the "instructions" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateInstructions() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateInstructions()
	})
}

// ClearInstructions clears the value of the "instructions" field.
func (u *PrescriptionUpsertBulk) ClearInstructions() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearInstructions()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PrescriptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
