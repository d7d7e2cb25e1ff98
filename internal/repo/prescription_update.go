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
	"github.com/ortholab/depisto_backend/internal/repo/bilan"
	"github.com/ortholab/depisto_backend/internal/repo/passation"
	"github.com/ortholab/depisto_backend/internal/repo/patient"
	"github.com/ortholab/depisto_backend/internal/repo/predicate"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/repo/user"
)

// PrescriptionUpdate is the builder for updating Prescription entities.
type PrescriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PrescriptionMutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdate) Where(ps ...predicate.Prescription) *PrescriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdate) SetUpdatedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPractitionerID sets the "practitioner_id" field.
func (_u *PrescriptionUpdate) SetPractitionerID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetPractitionerID(v)
	return _u
}

// SetNillablePractitionerID sets the "practitioner_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePractitionerID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetPractitionerID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdate) SetPatientID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *PrescriptionUpdate) SetTestID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableTestID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PrescriptionUpdate) SetStatus(v prescription.Status) *PrescriptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableStatus(v *prescription.Status) *PrescriptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGdprConsent sets the "gdpr_consent" field.
func (_u *PrescriptionUpdate) SetGdprConsent(v bool) *PrescriptionUpdate {
	_u.mutation.SetGdprConsent(v)
	return _u
}

// SetNillableGdprConsent sets the "gdpr_consent" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableGdprConsent(v *bool) *PrescriptionUpdate {
	if v != nil {
		_u.SetGdprConsent(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PrescriptionUpdate) SetPriority(v int) *PrescriptionUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePriority(v *int) *PrescriptionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PrescriptionUpdate) AddPriority(v int) *PrescriptionUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *PrescriptionUpdate) SetDeadline(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDeadline(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *PrescriptionUpdate) ClearDeadline() *PrescriptionUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionUpdate) SetInstructions(v string) *PrescriptionUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableInstructions(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PrescriptionUpdate) ClearInstructions() *PrescriptionUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// SetPractitioner sets the "practitioner" edge to the User entity.
func (_u *PrescriptionUpdate) SetPractitioner(v *User) *PrescriptionUpdate {
	return _u.SetPractitionerID(v.ID)
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdate) SetPatient(v *Patient) *PrescriptionUpdate {
	return _u.SetPatientID(v.ID)
}

// SetTest sets the "test" edge to the Test entity.
func (_u *PrescriptionUpdate) SetTest(v *Test) *PrescriptionUpdate {
	return _u.SetTestID(v.ID)
}

// AddPassationIDs adds the "passations" edge to the Passation entity by IDs.
func (_u *PrescriptionUpdate) AddPassationIDs(ids ...uuid.UUID) *PrescriptionUpdate {
	_u.mutation.AddPassationIDs(ids...)
	return _u
}

// AddPassations adds the "passations" edges to the Passation entity.
func (_u *PrescriptionUpdate) AddPassations(v ...*Passation) *PrescriptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPassationIDs(ids...)
}

// AddBilanIDs adds the "bilans" edge to the Bilan entity by IDs.
func (_u *PrescriptionUpdate) AddBilanIDs(ids ...uuid.UUID) *PrescriptionUpdate {
	_u.mutation.AddBilanIDs(ids...)
	return _u
}

// AddBilans adds the "bilans" edges to the Bilan entity.
func (_u *PrescriptionUpdate) AddBilans(v ...*Bilan) *PrescriptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBilanIDs(ids...)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdate) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearPractitioner clears the "practitioner" edge to the User entity.
func (_u *PrescriptionUpdate) ClearPractitioner() *PrescriptionUpdate {
	_u.mutation.ClearPractitioner()
	return _u
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdate) ClearPatient() *PrescriptionUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *PrescriptionUpdate) ClearTest() *PrescriptionUpdate {
	_u.mutation.ClearTest()
	return _u
}

// ClearPassations clears all "passations" edges to the Passation entity.
func (_u *PrescriptionUpdate) ClearPassations() *PrescriptionUpdate {
	_u.mutation.ClearPassations()
	return _u
}

// RemovePassationIDs removes the "passations" edge to Passation entities by IDs.
func (_u *PrescriptionUpdate) RemovePassationIDs(ids ...uuid.UUID) *PrescriptionUpdate {
	_u.mutation.RemovePassationIDs(ids...)
	return _u
}

// RemovePassations removes "passations" edges to Passation entities.
func (_u *PrescriptionUpdate) RemovePassations(v ...*Passation) *PrescriptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePassationIDs(ids...)
}

// ClearBilans clears all "bilans" edges to the Bilan entity.
func (_u *PrescriptionUpdate) ClearBilans() *PrescriptionUpdate {
	_u.mutation.ClearBilans()
	return _u
}

// RemoveBilanIDs removes the "bilans" edge to Bilan entities by IDs.
func (_u *PrescriptionUpdate) RemoveBilanIDs(ids ...uuid.UUID) *PrescriptionUpdate {
	_u.mutation.RemoveBilanIDs(ids...)
	return _u
}

// RemoveBilans removes "bilans" edges to Bilan entities.
func (_u *PrescriptionUpdate) RemoveBilans(v ...*Bilan) *PrescriptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBilanIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrescriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrescriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := prescription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Prescription.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := prescription.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Prescription.priority": %w`, err)}
		}
	}
	if _u.mutation.PractitionerCleared() && len(_u.mutation.PractitionerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.practitioner"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.patient"`)
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.test"`)
	}
	return nil
}

func (_u *PrescriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prescription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GdprConsent(); ok {
		_spec.SetField(prescription.FieldGdprConsent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(prescription.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(prescription.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(prescription.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(prescription.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(prescription.FieldInstructions, field.TypeString)
	}
	if _u.mutation.PractitionerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PractitionerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PassationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPassationsIDs(); len(nodes) > 0 && !_u.mutation.PassationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BilansCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBilansIDs(); len(nodes) > 0 && !_u.mutation.BilansCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BilansIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrescriptionUpdateOne is the builder for updating a single Prescription entity.
type PrescriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrescriptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdateOne) SetUpdatedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPractitionerID sets the "practitioner_id" field.
func (_u *PrescriptionUpdateOne) SetPractitionerID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetPractitionerID(v)
	return _u
}

// SetNillablePractitionerID sets the "practitioner_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePractitionerID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPractitionerID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdateOne) SetPatientID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *PrescriptionUpdateOne) SetTestID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableTestID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PrescriptionUpdateOne) SetStatus(v prescription.Status) *PrescriptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableStatus(v *prescription.Status) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGdprConsent sets the "gdpr_consent" field.
func (_u *PrescriptionUpdateOne) SetGdprConsent(v bool) *PrescriptionUpdateOne {
	_u.mutation.SetGdprConsent(v)
	return _u
}

// SetNillableGdprConsent sets the "gdpr_consent" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableGdprConsent(v *bool) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetGdprConsent(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PrescriptionUpdateOne) SetPriority(v int) *PrescriptionUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePriority(v *int) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PrescriptionUpdateOne) AddPriority(v int) *PrescriptionUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *PrescriptionUpdateOne) SetDeadline(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDeadline(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *PrescriptionUpdateOne) ClearDeadline() *PrescriptionUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PrescriptionUpdateOne) SetInstructions(v string) *PrescriptionUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableInstructions(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PrescriptionUpdateOne) ClearInstructions() *PrescriptionUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// SetPractitioner sets the "practitioner" edge to the User entity.
func (_u *PrescriptionUpdateOne) SetPractitioner(v *User) *PrescriptionUpdateOne {
	return _u.SetPractitionerID(v.ID)
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdateOne) SetPatient(v *Patient) *PrescriptionUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetTest sets the "test" edge to the Test entity.
func (_u *PrescriptionUpdateOne) SetTest(v *Test) *PrescriptionUpdateOne {
	return _u.SetTestID(v.ID)
}

// AddPassationIDs adds the "passations" edge to the Passation entity by IDs.
func (_u *PrescriptionUpdateOne) AddPassationIDs(ids ...uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.AddPassationIDs(ids...)
	return _u
}

// AddPassations adds the "passations" edges to the Passation entity.
func (_u *PrescriptionUpdateOne) AddPassations(v ...*Passation) *PrescriptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPassationIDs(ids...)
}

// AddBilanIDs adds the "bilans" edge to the Bilan entity by IDs.
func (_u *PrescriptionUpdateOne) AddBilanIDs(ids ...uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.AddBilanIDs(ids...)
	return _u
}

// AddBilans adds the "bilans" edges to the Bilan entity.
func (_u *PrescriptionUpdateOne) AddBilans(v ...*Bilan) *PrescriptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBilanIDs(ids...)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdateOne) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearPractitioner clears the "practitioner" edge to the User entity.
func (_u *PrescriptionUpdateOne) ClearPractitioner() *PrescriptionUpdateOne {
	_u.mutation.ClearPractitioner()
	return _u
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdateOne) ClearPatient() *PrescriptionUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *PrescriptionUpdateOne) ClearTest() *PrescriptionUpdateOne {
	_u.mutation.ClearTest()
	return _u
}

// ClearPassations clears all "passations" edges to the Passation entity.
func (_u *PrescriptionUpdateOne) ClearPassations() *PrescriptionUpdateOne {
	_u.mutation.ClearPassations()
	return _u
}

// RemovePassationIDs removes the "passations" edge to Passation entities by IDs.
func (_u *PrescriptionUpdateOne) RemovePassationIDs(ids ...uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.RemovePassationIDs(ids...)
	return _u
}

// RemovePassations removes "passations" edges to Passation entities.
func (_u *PrescriptionUpdateOne) RemovePassations(v ...*Passation) *PrescriptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePassationIDs(ids...)
}

// ClearBilans clears all "bilans" edges to the Bilan entity.
func (_u *PrescriptionUpdateOne) ClearBilans() *PrescriptionUpdateOne {
	_u.mutation.ClearBilans()
	return _u
}

// RemoveBilanIDs removes the "bilans" edge to Bilan entities by IDs.
func (_u *PrescriptionUpdateOne) RemoveBilanIDs(ids ...uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.RemoveBilanIDs(ids...)
	return _u
}

// RemoveBilans removes "bilans" edges to Bilan entities.
func (_u *PrescriptionUpdateOne) RemoveBilans(v ...*Bilan) *PrescriptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBilanIDs(ids...)
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdateOne) Where(ps ...predicate.Prescription) *PrescriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrescriptionUpdateOne) Select(field string, fields ...string) *PrescriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prescription entity.
func (_u *PrescriptionUpdateOne) Save(ctx context.Context) (*Prescription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) SaveX(ctx context.Context) *Prescription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrescriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := prescription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Prescription.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := prescription.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Prescription.priority": %w`, err)}
		}
	}
	if _u.mutation.PractitionerCleared() && len(_u.mutation.PractitionerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.practitioner"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.patient"`)
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.test"`)
	}
	return nil
}

func (_u *PrescriptionUpdateOne) sqlSave(ctx context.Context) (_node *Prescription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Prescription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prescription.FieldID)
		for _, f := range fields {
			if !prescription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != prescription.FieldID {
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
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prescription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GdprConsent(); ok {
		_spec.SetField(prescription.FieldGdprConsent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(prescription.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(prescription.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(prescription.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(prescription.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(prescription.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(prescription.FieldInstructions, field.TypeString)
	}
	if _u.mutation.PractitionerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PractitionerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PassationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPassationsIDs(); len(nodes) > 0 && !_u.mutation.PassationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BilansCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBilansIDs(); len(nodes) > 0 && !_u.mutation.BilansCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BilansIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Prescription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
