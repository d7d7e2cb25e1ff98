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
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/repo/user"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdate) SetDeletedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDeletedAt(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdate) ClearDeletedAt() *PatientUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPractitionerID sets the "practitioner_id" field.
func (_u *PatientUpdate) SetPractitionerID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetPractitionerID(v)
	return _u
}

// SetNillablePractitionerID sets the "practitioner_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePractitionerID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetPractitionerID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdate) SetFirstName(v string) *PatientUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFirstName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdate) SetLastName(v string) *PatientUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableLastName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdate) SetBirthDate(v time.Time) *PatientUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBirthDate(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// SetGuardianEmail sets the "guardian_email" field.
func (_u *PatientUpdate) SetGuardianEmail(v string) *PatientUpdate {
	_u.mutation.SetGuardianEmail(v)
	return _u
}

// SetNillableGuardianEmail sets the "guardian_email" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableGuardianEmail(v *string) *PatientUpdate {
	if v != nil {
		_u.SetGuardianEmail(*v)
	}
	return _u
}

// SetGuardianPhone sets the "guardian_phone" field.
func (_u *PatientUpdate) SetGuardianPhone(v string) *PatientUpdate {
	_u.mutation.SetGuardianPhone(v)
	return _u
}

// SetNillableGuardianPhone sets the "guardian_phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableGuardianPhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetGuardianPhone(*v)
	}
	return _u
}

// ClearGuardianPhone clears the value of the "guardian_phone" field.
func (_u *PatientUpdate) ClearGuardianPhone() *PatientUpdate {
	_u.mutation.ClearGuardianPhone()
	return _u
}

// SetSocialSecurityEncrypted sets the "social_security_encrypted" field.
func (_u *PatientUpdate) SetSocialSecurityEncrypted(v string) *PatientUpdate {
	_u.mutation.SetSocialSecurityEncrypted(v)
	return _u
}

// SetNillableSocialSecurityEncrypted sets the "social_security_encrypted" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableSocialSecurityEncrypted(v *string) *PatientUpdate {
	if v != nil {
		_u.SetSocialSecurityEncrypted(*v)
	}
	return _u
}

// ClearSocialSecurityEncrypted clears the value of the "social_security_encrypted" field.
func (_u *PatientUpdate) ClearSocialSecurityEncrypted() *PatientUpdate {
	_u.mutation.ClearSocialSecurityEncrypted()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *PatientUpdate) SetPasswordHash(v string) *PatientUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePasswordHash(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *PatientUpdate) ClearPasswordHash() *PatientUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetActivated sets the "activated" field.
func (_u *PatientUpdate) SetActivated(v bool) *PatientUpdate {
	_u.mutation.SetActivated(v)
	return _u
}

// SetNillableActivated sets the "activated" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableActivated(v *bool) *PatientUpdate {
	if v != nil {
		_u.SetActivated(*v)
	}
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *PatientUpdate) SetActivatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableActivatedAt(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *PatientUpdate) ClearActivatedAt() *PatientUpdate {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PatientUpdate) SetNotes(v string) *PatientUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableNotes(v *string) *PatientUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PatientUpdate) ClearNotes() *PatientUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPractitioner sets the "practitioner" edge to the User entity.
func (_u *PatientUpdate) SetPractitioner(v *User) *PatientUpdate {
	return _u.SetPractitionerID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *PatientUpdate) AddPrescriptionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdate) AddPrescriptions(v ...*Prescription) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// AddActivationTokenIDs adds the "activation_tokens" edge to the ActivationToken entity by IDs.
func (_u *PatientUpdate) AddActivationTokenIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddActivationTokenIDs(ids...)
	return _u
}

// AddActivationTokens adds the "activation_tokens" edges to the ActivationToken entity.
func (_u *PatientUpdate) AddActivationTokens(v ...*ActivationToken) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivationTokenIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearPractitioner clears the "practitioner" edge to the User entity.
func (_u *PatientUpdate) ClearPractitioner() *PatientUpdate {
	_u.mutation.ClearPractitioner()
	return _u
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdate) ClearPrescriptions() *PatientUpdate {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *PatientUpdate) RemovePrescriptionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *PatientUpdate) RemovePrescriptions(v ...*Prescription) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// ClearActivationTokens clears all "activation_tokens" edges to the ActivationToken entity.
func (_u *PatientUpdate) ClearActivationTokens() *PatientUpdate {
	_u.mutation.ClearActivationTokens()
	return _u
}

// RemoveActivationTokenIDs removes the "activation_tokens" edge to ActivationToken entities by IDs.
func (_u *PatientUpdate) RemoveActivationTokenIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveActivationTokenIDs(ids...)
	return _u
}

// RemoveActivationTokens removes "activation_tokens" edges to ActivationToken entities.
func (_u *PatientUpdate) RemoveActivationTokens(v ...*ActivationToken) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivationTokenIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GuardianEmail(); ok {
		if err := patient.GuardianEmailValidator(v); err != nil {
			return &ValidationError{Name: "guardian_email", err: fmt.Errorf(`repo: validator failed for field "Patient.guardian_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GuardianPhone(); ok {
		if err := patient.GuardianPhoneValidator(v); err != nil {
			return &ValidationError{Name: "guardian_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.guardian_phone": %w`, err)}
		}
	}
	if _u.mutation.PractitionerCleared() && len(_u.mutation.PractitionerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.practitioner"`)
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GuardianEmail(); ok {
		_spec.SetField(patient.FieldGuardianEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.GuardianPhone(); ok {
		_spec.SetField(patient.FieldGuardianPhone, field.TypeString, value)
	}
	if _u.mutation.GuardianPhoneCleared() {
		_spec.ClearField(patient.FieldGuardianPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SocialSecurityEncrypted(); ok {
		_spec.SetField(patient.FieldSocialSecurityEncrypted, field.TypeString, value)
	}
	if _u.mutation.SocialSecurityEncryptedCleared() {
		_spec.ClearField(patient.FieldSocialSecurityEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(patient.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(patient.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.Activated(); ok {
		_spec.SetField(patient.FieldActivated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(patient.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(patient.FieldActivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(patient.FieldNotes, field.TypeString)
	}
	if _u.mutation.PractitionerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.PractitionerTable,
			Columns: []string{patient.PractitionerColumn},
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
			Table:   patient.PractitionerTable,
			Columns: []string{patient.PractitionerColumn},
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
	if _u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrescriptionsIDs(); len(nodes) > 0 && !_u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivationTokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ActivationTokensTable,
			Columns: []string{patient.ActivationTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activationtoken.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivationTokensIDs(); len(nodes) > 0 && !_u.mutation.ActivationTokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ActivationTokensTable,
			Columns: []string{patient.ActivationTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activationtoken.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivationTokensIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ActivationTokensTable,
			Columns: []string{patient.ActivationTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activationtoken.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdateOne) SetDeletedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDeletedAt(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdateOne) ClearDeletedAt() *PatientUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPractitionerID sets the "practitioner_id" field.
func (_u *PatientUpdateOne) SetPractitionerID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetPractitionerID(v)
	return _u
}

// SetNillablePractitionerID sets the "practitioner_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePractitionerID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetPractitionerID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdateOne) SetFirstName(v string) *PatientUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFirstName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdateOne) SetLastName(v string) *PatientUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableLastName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdateOne) SetBirthDate(v time.Time) *PatientUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBirthDate(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// SetGuardianEmail sets the "guardian_email" field.
func (_u *PatientUpdateOne) SetGuardianEmail(v string) *PatientUpdateOne {
	_u.mutation.SetGuardianEmail(v)
	return _u
}

// SetNillableGuardianEmail sets the "guardian_email" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableGuardianEmail(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetGuardianEmail(*v)
	}
	return _u
}

// SetGuardianPhone sets the "guardian_phone" field.
func (_u *PatientUpdateOne) SetGuardianPhone(v string) *PatientUpdateOne {
	_u.mutation.SetGuardianPhone(v)
	return _u
}

// SetNillableGuardianPhone sets the "guardian_phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableGuardianPhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetGuardianPhone(*v)
	}
	return _u
}

// ClearGuardianPhone clears the value of the "guardian_phone" field.
func (_u *PatientUpdateOne) ClearGuardianPhone() *PatientUpdateOne {
	_u.mutation.ClearGuardianPhone()
	return _u
}

// SetSocialSecurityEncrypted sets the "social_security_encrypted" field.
func (_u *PatientUpdateOne) SetSocialSecurityEncrypted(v string) *PatientUpdateOne {
	_u.mutation.SetSocialSecurityEncrypted(v)
	return _u
}

// SetNillableSocialSecurityEncrypted sets the "social_security_encrypted" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableSocialSecurityEncrypted(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetSocialSecurityEncrypted(*v)
	}
	return _u
}

// ClearSocialSecurityEncrypted clears the value of the "social_security_encrypted" field.
func (_u *PatientUpdateOne) ClearSocialSecurityEncrypted() *PatientUpdateOne {
	_u.mutation.ClearSocialSecurityEncrypted()
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *PatientUpdateOne) SetPasswordHash(v string) *PatientUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePasswordHash(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *PatientUpdateOne) ClearPasswordHash() *PatientUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetActivated sets the "activated" field.
func (_u *PatientUpdateOne) SetActivated(v bool) *PatientUpdateOne {
	_u.mutation.SetActivated(v)
	return _u
}

// SetNillableActivated sets the "activated" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableActivated(v *bool) *PatientUpdateOne {
	if v != nil {
		_u.SetActivated(*v)
	}
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *PatientUpdateOne) SetActivatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableActivatedAt(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *PatientUpdateOne) ClearActivatedAt() *PatientUpdateOne {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PatientUpdateOne) SetNotes(v string) *PatientUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableNotes(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PatientUpdateOne) ClearNotes() *PatientUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPractitioner sets the "practitioner" edge to the User entity.
func (_u *PatientUpdateOne) SetPractitioner(v *User) *PatientUpdateOne {
	return _u.SetPractitionerID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *PatientUpdateOne) AddPrescriptionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdateOne) AddPrescriptions(v ...*Prescription) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// AddActivationTokenIDs adds the "activation_tokens" edge to the ActivationToken entity by IDs.
func (_u *PatientUpdateOne) AddActivationTokenIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddActivationTokenIDs(ids...)
	return _u
}

// AddActivationTokens adds the "activation_tokens" edges to the ActivationToken entity.
func (_u *PatientUpdateOne) AddActivationTokens(v ...*ActivationToken) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivationTokenIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearPractitioner clears the "practitioner" edge to the User entity.
func (_u *PatientUpdateOne) ClearPractitioner() *PatientUpdateOne {
	_u.mutation.ClearPractitioner()
	return _u
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdateOne) ClearPrescriptions() *PatientUpdateOne {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *PatientUpdateOne) RemovePrescriptionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *PatientUpdateOne) RemovePrescriptions(v ...*Prescription) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// ClearActivationTokens clears all "activation_tokens" edges to the ActivationToken entity.
func (_u *PatientUpdateOne) ClearActivationTokens() *PatientUpdateOne {
	_u.mutation.ClearActivationTokens()
	return _u
}

// RemoveActivationTokenIDs removes the "activation_tokens" edge to ActivationToken entities by IDs.
func (_u *PatientUpdateOne) RemoveActivationTokenIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveActivationTokenIDs(ids...)
	return _u
}

// RemoveActivationTokens removes "activation_tokens" edges to ActivationToken entities.
func (_u *PatientUpdateOne) RemoveActivationTokens(v ...*ActivationToken) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivationTokenIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GuardianEmail(); ok {
		if err := patient.GuardianEmailValidator(v); err != nil {
			return &ValidationError{Name: "guardian_email", err: fmt.Errorf(`repo: validator failed for field "Patient.guardian_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GuardianPhone(); ok {
		if err := patient.GuardianPhoneValidator(v); err != nil {
			return &ValidationError{Name: "guardian_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.guardian_phone": %w`, err)}
		}
	}
	if _u.mutation.PractitionerCleared() && len(_u.mutation.PractitionerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.practitioner"`)
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GuardianEmail(); ok {
		_spec.SetField(patient.FieldGuardianEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.GuardianPhone(); ok {
		_spec.SetField(patient.FieldGuardianPhone, field.TypeString, value)
	}
	if _u.mutation.GuardianPhoneCleared() {
		_spec.ClearField(patient.FieldGuardianPhone, field.TypeString)
	}
	if value, ok := _u.mutation.SocialSecurityEncrypted(); ok {
		_spec.SetField(patient.FieldSocialSecurityEncrypted, field.TypeString, value)
	}
	if _u.mutation.SocialSecurityEncryptedCleared() {
		_spec.ClearField(patient.FieldSocialSecurityEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(patient.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(patient.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.Activated(); ok {
		_spec.SetField(patient.FieldActivated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(patient.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(patient.FieldActivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(patient.FieldNotes, field.TypeString)
	}
	if _u.mutation.PractitionerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.PractitionerTable,
			Columns: []string{patient.PractitionerColumn},
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
			Table:   patient.PractitionerTable,
			Columns: []string{patient.PractitionerColumn},
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
	if _u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrescriptionsIDs(); len(nodes) > 0 && !_u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivationTokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ActivationTokensTable,
			Columns: []string{patient.ActivationTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activationtoken.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivationTokensIDs(); len(nodes) > 0 && !_u.mutation.ActivationTokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ActivationTokensTable,
			Columns: []string{patient.ActivationTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activationtoken.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivationTokensIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ActivationTokensTable,
			Columns: []string{patient.ActivationTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activationtoken.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
