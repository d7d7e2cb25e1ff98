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
	"github.com/ortholab/depisto_backend/internal/repo/activationtoken"
	"github.com/ortholab/depisto_backend/internal/repo/patient"
	"github.com/ortholab/depisto_backend/internal/repo/predicate"
)

// ActivationTokenUpdate is the builder for updating ActivationToken entities.
type ActivationTokenUpdate struct {
	config
	hooks    []Hook
	mutation *ActivationTokenMutation
}

// Where appends a list predicates to the ActivationTokenUpdate builder.
func (_u *ActivationTokenUpdate) Where(ps ...predicate.ActivationToken) *ActivationTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ActivationTokenUpdate) SetPatientID(v uuid.UUID) *ActivationTokenUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ActivationTokenUpdate) SetNillablePatientID(v *uuid.UUID) *ActivationTokenUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTokenHash sets the "token_hash" field.
func (_u *ActivationTokenUpdate) SetTokenHash(v string) *ActivationTokenUpdate {
	_u.mutation.SetTokenHash(v)
	return _u
}

// SetNillableTokenHash sets the "token_hash" field if the given value is not nil.
func (_u *ActivationTokenUpdate) SetNillableTokenHash(v *string) *ActivationTokenUpdate {
	if v != nil {
		_u.SetTokenHash(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ActivationTokenUpdate) SetExpiresAt(v time.Time) *ActivationTokenUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ActivationTokenUpdate) SetNillableExpiresAt(v *time.Time) *ActivationTokenUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *ActivationTokenUpdate) SetUsedAt(v time.Time) *ActivationTokenUpdate {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *ActivationTokenUpdate) SetNillableUsedAt(v *time.Time) *ActivationTokenUpdate {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *ActivationTokenUpdate) ClearUsedAt() *ActivationTokenUpdate {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *ActivationTokenUpdate) SetPatient(v *Patient) *ActivationTokenUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the ActivationTokenMutation object of the builder.
func (_u *ActivationTokenUpdate) Mutation() *ActivationTokenMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *ActivationTokenUpdate) ClearPatient() *ActivationTokenUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivationTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivationTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivationTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivationTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivationTokenUpdate) check() error {
	if v, ok := _u.mutation.TokenHash(); ok {
		if err := activationtoken.TokenHashValidator(v); err != nil {
			return &ValidationError{Name: "token_hash", err: fmt.Errorf(`repo: validator failed for field "ActivationToken.token_hash": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ActivationToken.patient"`)
	}
	return nil
}

func (_u *ActivationTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activationtoken.Table, activationtoken.Columns, sqlgraph.NewFieldSpec(activationtoken.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TokenHash(); ok {
		_spec.SetField(activationtoken.FieldTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(activationtoken.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(activationtoken.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(activationtoken.FieldUsedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activationtoken.PatientTable,
			Columns: []string{activationtoken.PatientColumn},
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
			Table:   activationtoken.PatientTable,
			Columns: []string{activationtoken.PatientColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activationtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivationTokenUpdateOne is the builder for updating a single ActivationToken entity.
type ActivationTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivationTokenMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *ActivationTokenUpdateOne) SetPatientID(v uuid.UUID) *ActivationTokenUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ActivationTokenUpdateOne) SetNillablePatientID(v *uuid.UUID) *ActivationTokenUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTokenHash sets the "token_hash" field.
func (_u *ActivationTokenUpdateOne) SetTokenHash(v string) *ActivationTokenUpdateOne {
	_u.mutation.SetTokenHash(v)
	return _u
}

// SetNillableTokenHash sets the "token_hash" field if the given value is not nil.
func (_u *ActivationTokenUpdateOne) SetNillableTokenHash(v *string) *ActivationTokenUpdateOne {
	if v != nil {
		_u.SetTokenHash(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ActivationTokenUpdateOne) SetExpiresAt(v time.Time) *ActivationTokenUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ActivationTokenUpdateOne) SetNillableExpiresAt(v *time.Time) *ActivationTokenUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *ActivationTokenUpdateOne) SetUsedAt(v time.Time) *ActivationTokenUpdateOne {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *ActivationTokenUpdateOne) SetNillableUsedAt(v *time.Time) *ActivationTokenUpdateOne {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *ActivationTokenUpdateOne) ClearUsedAt() *ActivationTokenUpdateOne {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *ActivationTokenUpdateOne) SetPatient(v *Patient) *ActivationTokenUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the ActivationTokenMutation object of the builder.
func (_u *ActivationTokenUpdateOne) Mutation() *ActivationTokenMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *ActivationTokenUpdateOne) ClearPatient() *ActivationTokenUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the ActivationTokenUpdate builder.
func (_u *ActivationTokenUpdateOne) Where(ps ...predicate.ActivationToken) *ActivationTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivationTokenUpdateOne) Select(field string, fields ...string) *ActivationTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivationToken entity.
func (_u *ActivationTokenUpdateOne) Save(ctx context.Context) (*ActivationToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivationTokenUpdateOne) SaveX(ctx context.Context) *ActivationToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivationTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivationTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivationTokenUpdateOne) check() error {
	if v, ok := _u.mutation.TokenHash(); ok {
		if err := activationtoken.TokenHashValidator(v); err != nil {
			return &ValidationError{Name: "token_hash", err: fmt.Errorf(`repo: validator failed for field "ActivationToken.token_hash": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ActivationToken.patient"`)
	}
	return nil
}

func (_u *ActivationTokenUpdateOne) sqlSave(ctx context.Context) (_node *ActivationToken, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activationtoken.Table, activationtoken.Columns, sqlgraph.NewFieldSpec(activationtoken.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ActivationToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activationtoken.FieldID)
		for _, f := range fields {
			if !activationtoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != activationtoken.FieldID {
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
	if value, ok := _u.mutation.TokenHash(); ok {
		_spec.SetField(activationtoken.FieldTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(activationtoken.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(activationtoken.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(activationtoken.FieldUsedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activationtoken.PatientTable,
			Columns: []string{activationtoken.PatientColumn},
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
			Table:   activationtoken.PatientTable,
			Columns: []string{activationtoken.PatientColumn},
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
	_node = &ActivationToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activationtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
