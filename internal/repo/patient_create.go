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
	"github.com/ortholab/depisto_backend/internal/repo/activationtoken"
	"github.com/ortholab/depisto_backend/internal/repo/patient"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/repo/user"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientCreate) SetDeletedAt(v time.Time) *PatientCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDeletedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPractitionerID sets the "practitioner_id" field.
func (_c *PatientCreate) SetPractitionerID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetPractitionerID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PatientCreate) SetFirstName(v string) *PatientCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PatientCreate) SetLastName(v string) *PatientCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *PatientCreate) SetBirthDate(v time.Time) *PatientCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetGuardianEmail sets the "guardian_email" field.
func (_c *PatientCreate) SetGuardianEmail(v string) *PatientCreate {
	_c.mutation.SetGuardianEmail(v)
	return _c
}

// SetGuardianPhone sets the "guardian_phone" field.
func (_c *PatientCreate) SetGuardianPhone(v string) *PatientCreate {
	_c.mutation.SetGuardianPhone(v)
	return _c
}

// SetNillableGuardianPhone sets the "guardian_phone" field if the given value is not nil.
func (_c *PatientCreate) SetNillableGuardianPhone(v *string) *PatientCreate {
	if v != nil {
		_c.SetGuardianPhone(*v)
	}
	return _c
}

// SetSocialSecurityEncrypted sets the "social_security_encrypted" field.
func (_c *PatientCreate) SetSocialSecurityEncrypted(v string) *PatientCreate {
	_c.mutation.SetSocialSecurityEncrypted(v)
	return _c
}

// SetNillableSocialSecurityEncrypted sets the "social_security_encrypted" field if the given value is not nil.
func (_c *PatientCreate) SetNillableSocialSecurityEncrypted(v *string) *PatientCreate {
	if v != nil {
		_c.SetSocialSecurityEncrypted(*v)
	}
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *PatientCreate) SetPasswordHash(v string) *PatientCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePasswordHash(v *string) *PatientCreate {
	if v != nil {
		_c.SetPasswordHash(*v)
	}
	return _c
}

// SetActivated sets the "activated" field.
func (_c *PatientCreate) SetActivated(v bool) *PatientCreate {
	_c.mutation.SetActivated(v)
	return _c
}

// SetNillableActivated sets the "activated" field if the given value is not nil.
func (_c *PatientCreate) SetNillableActivated(v *bool) *PatientCreate {
	if v != nil {
		_c.SetActivated(*v)
	}
	return _c
}

// SetActivatedAt sets the "activated_at" field.
func (_c *PatientCreate) SetActivatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetActivatedAt(v)
	return _c
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableActivatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetActivatedAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PatientCreate) SetNotes(v string) *PatientCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PatientCreate) SetNillableNotes(v *string) *PatientCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPractitioner sets the "practitioner" edge to the User entity.
func (_c *PatientCreate) SetPractitioner(v *User) *PatientCreate {
	return _c.SetPractitionerID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_c *PatientCreate) AddPrescriptionIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddPrescriptionIDs(ids...)
	return _c
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_c *PatientCreate) AddPrescriptions(v ...*Prescription) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPrescriptionIDs(ids...)
}

// AddActivationTokenIDs adds the "activation_tokens" edge to the ActivationToken entity by IDs.
func (_c *PatientCreate) AddActivationTokenIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddActivationTokenIDs(ids...)
	return _c
}

// AddActivationTokens adds the "activation_tokens" edges to the ActivationToken entity.
func (_c *PatientCreate) AddActivationTokens(v ...*ActivationToken) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivationTokenIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Activated(); !ok {
		v := patient.DefaultActivated
		_c.mutation.SetActivated(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.PractitionerID(); !ok {
		return &ValidationError{Name: "practitioner_id", err: errors.New(`repo: missing required field "Patient.practitioner_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "Patient.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "Patient.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BirthDate(); !ok {
		return &ValidationError{Name: "birth_date", err: errors.New(`repo: missing required field "Patient.birth_date"`)}
	}
	if _, ok := _c.mutation.GuardianEmail(); !ok {
		return &ValidationError{Name: "guardian_email", err: errors.New(`repo: missing required field "Patient.guardian_email"`)}
	}
	if v, ok := _c.mutation.GuardianEmail(); ok {
		if err := patient.GuardianEmailValidator(v); err != nil {
			return &ValidationError{Name: "guardian_email", err: fmt.Errorf(`repo: validator failed for field "Patient.guardian_email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GuardianPhone(); ok {
		if err := patient.GuardianPhoneValidator(v); err != nil {
			return &ValidationError{Name: "guardian_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.guardian_phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Activated(); !ok {
		return &ValidationError{Name: "activated", err: errors.New(`repo: missing required field "Patient.activated"`)}
	}
	if len(_c.mutation.PractitionerIDs()) == 0 {
		return &ValidationError{Name: "practitioner", err: errors.New(`repo: missing required edge "Patient.practitioner"`)}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
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

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
		_node.BirthDate = value
	}
	if value, ok := _c.mutation.GuardianEmail(); ok {
		_spec.SetField(patient.FieldGuardianEmail, field.TypeString, value)
		_node.GuardianEmail = value
	}
	if value, ok := _c.mutation.GuardianPhone(); ok {
		_spec.SetField(patient.FieldGuardianPhone, field.TypeString, value)
		_node.GuardianPhone = &value
	}
	if value, ok := _c.mutation.SocialSecurityEncrypted(); ok {
		_spec.SetField(patient.FieldSocialSecurityEncrypted, field.TypeString, value)
		_node.SocialSecurityEncrypted = &value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(patient.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = &value
	}
	if value, ok := _c.mutation.Activated(); ok {
		_spec.SetField(patient.FieldActivated, field.TypeBool, value)
		_node.Activated = value
	}
	if value, ok := _c.mutation.ActivatedAt(); ok {
		_spec.SetField(patient.FieldActivatedAt, field.TypeTime, value)
		_node.ActivatedAt = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.PractitionerIDs(); len(nodes) > 0 {
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
		_node.PractitionerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PrescriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActivationTokensIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsert) SetDeletedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDeletedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsert) ClearDeletedAt() *PatientUpsert {
	u.SetNull(patient.FieldDeletedAt)
	return u
}

// SetPractitionerID sets the "practitioner_id" field.
func (u *PatientUpsert) SetPractitionerID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldPractitionerID, v)
	return u
}

// UpdatePractitionerID sets the "practitioner_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdatePractitionerID() *PatientUpsert {
	u.SetExcluded(patient.FieldPractitionerID)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsert) SetFirstName(v string) *PatientUpsert {
	u.Set(patient.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFirstName() *PatientUpsert {
	u.SetExcluded(patient.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsert) SetLastName(v string) *PatientUpsert {
	u.Set(patient.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateLastName() *PatientUpsert {
	u.SetExcluded(patient.FieldLastName)
	return u
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsert) SetBirthDate(v time.Time) *PatientUpsert {
	u.Set(patient.FieldBirthDate, v)
	return u
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsert) UpdateBirthDate() *PatientUpsert {
	u.SetExcluded(patient.FieldBirthDate)
	return u
}

// SetGuardianEmail sets the "guardian_email" field.
func (u *PatientUpsert) SetGuardianEmail(v string) *PatientUpsert {
	u.Set(patient.FieldGuardianEmail, v)
	return u
}

// UpdateGuardianEmail sets the "guardian_email" field to the value that was provided on create.
func (u *PatientUpsert) UpdateGuardianEmail() *PatientUpsert {
	u.SetExcluded(patient.FieldGuardianEmail)
	return u
}

// SetGuardianPhone sets the "guardian_phone" field.
func (u *PatientUpsert) SetGuardianPhone(v string) *PatientUpsert {
	u.Set(patient.FieldGuardianPhone, v)
	return u
}

// UpdateGuardianPhone sets the "guardian_phone" field to the value that was provided on create.
func (u *PatientUpsert) UpdateGuardianPhone() *PatientUpsert {
	u.SetExcluded(patient.FieldGuardianPhone)
	return u
}

// ClearGuardianPhone clears the value of the "guardian_phone" field.
func (u *PatientUpsert) ClearGuardianPhone() *PatientUpsert {
	u.SetNull(patient.FieldGuardianPhone)
	return u
}

// SetSocialSecurityEncrypted sets the "social_security_encrypted" field.
func (u *PatientUpsert) SetSocialSecurityEncrypted(v string) *PatientUpsert {
	u.Set(patient.FieldSocialSecurityEncrypted, v)
	return u
}

// UpdateSocialSecurityEncrypted sets the "social_security_encrypted" field to the value that was provided on create.
func (u *PatientUpsert) UpdateSocialSecurityEncrypted() *PatientUpsert {
	u.SetExcluded(patient.FieldSocialSecurityEncrypted)
	return u
}

// ClearSocialSecurityEncrypted clears the value of the "social_security_encrypted" field.
func (u *PatientUpsert) ClearSocialSecurityEncrypted() *PatientUpsert {
	u.SetNull(patient.FieldSocialSecurityEncrypted)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *PatientUpsert) SetPasswordHash(v string) *PatientUpsert {
	u.Set(patient.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *PatientUpsert) UpdatePasswordHash() *PatientUpsert {
	u.SetExcluded(patient.FieldPasswordHash)
	return u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *PatientUpsert) ClearPasswordHash() *PatientUpsert {
	u.SetNull(patient.FieldPasswordHash)
	return u
}

// SetActivated sets the "activated" field.
func (u *PatientUpsert) SetActivated(v bool) *PatientUpsert {
	u.Set(patient.FieldActivated, v)
	return u
}

// UpdateActivated sets the "activated" field to the value that was provided on create.
func (u *PatientUpsert) UpdateActivated() *PatientUpsert {
	u.SetExcluded(patient.FieldActivated)
	return u
}

// SetActivatedAt sets the "activated_at" field.
func (u *PatientUpsert) SetActivatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldActivatedAt, v)
	return u
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateActivatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldActivatedAt)
	return u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *PatientUpsert) ClearActivatedAt() *PatientUpsert {
	u.SetNull(patient.FieldActivatedAt)
	return u
}

// SetNotes sets the "notes" field.
func (u *PatientUpsert) SetNotes(v string) *PatientUpsert {
	u.Set(patient.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsert) UpdateNotes() *PatientUpsert {
	u.SetExcluded(patient.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsert) ClearNotes() *PatientUpsert {
	u.SetNull(patient.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertOne) SetDeletedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertOne) ClearDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPractitionerID sets the "practitioner_id" field.
func (u *PatientUpsertOne) SetPractitionerID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetPractitionerID(v)
	})
}

// UpdatePractitionerID sets the "practitioner_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdatePractitionerID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePractitionerID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsertOne) SetFirstName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFirstName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsertOne) SetLastName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateLastName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastName()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsertOne) SetBirthDate(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateBirthDate() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBirthDate()
	})
}

// SetGuardianEmail sets the "guardian_email" field.
func (u *PatientUpsertOne) SetGuardianEmail(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetGuardianEmail(v)
	})
}

// UpdateGuardianEmail sets the "guardian_email" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateGuardianEmail() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateGuardianEmail()
	})
}

// SetGuardianPhone sets the "guardian_phone" field.
func (u *PatientUpsertOne) SetGuardianPhone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetGuardianPhone(v)
	})
}

// UpdateGuardianPhone sets the "guardian_phone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateGuardianPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateGuardianPhone()
	})
}

// ClearGuardianPhone clears the value of the "guardian_phone" field.
func (u *PatientUpsertOne) ClearGuardianPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearGuardianPhone()
	})
}

// SetSocialSecurityEncrypted sets the "social_security_encrypted" field.
func (u *PatientUpsertOne) SetSocialSecurityEncrypted(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetSocialSecurityEncrypted(v)
	})
}

// UpdateSocialSecurityEncrypted sets the "social_security_encrypted" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateSocialSecurityEncrypted() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateSocialSecurityEncrypted()
	})
}

// ClearSocialSecurityEncrypted clears the value of the "social_security_encrypted" field.
func (u *PatientUpsertOne) ClearSocialSecurityEncrypted() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearSocialSecurityEncrypted()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *PatientUpsertOne) SetPasswordHash(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdatePasswordHash() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *PatientUpsertOne) ClearPasswordHash() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearPasswordHash()
	})
}

// SetActivated sets the "activated" field.
func (u *PatientUpsertOne) SetActivated(v bool) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetActivated(v)
	})
}

// UpdateActivated sets the "activated" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateActivated() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateActivated()
	})
}

// SetActivatedAt sets the "activated_at" field.
func (u *PatientUpsertOne) SetActivatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetActivatedAt(v)
	})
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateActivatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateActivatedAt()
	})
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *PatientUpsertOne) ClearActivatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearActivatedAt()
	})
}

// SetNotes sets the "notes" field.
func (u *PatientUpsertOne) SetNotes(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateNotes() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsertOne) ClearNotes() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
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
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertBulk) SetDeletedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertBulk) ClearDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPractitionerID sets the "practitioner_id" field.
func (u *PatientUpsertBulk) SetPractitionerID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetPractitionerID(v)
	})
}

// UpdatePractitionerID sets the "practitioner_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdatePractitionerID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePractitionerID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsertBulk) SetFirstName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFirstName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsertBulk) SetLastName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateLastName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastName()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsertBulk) SetBirthDate(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateBirthDate() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBirthDate()
	})
}

// SetGuardianEmail sets the "guardian_email" field.
func (u *PatientUpsertBulk) SetGuardianEmail(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetGuardianEmail(v)
	})
}

// UpdateGuardianEmail sets the "guardian_email" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateGuardianEmail() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateGuardianEmail()
	})
}

// SetGuardianPhone sets the "guardian_phone" field.
func (u *PatientUpsertBulk) SetGuardianPhone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetGuardianPhone(v)
	})
}

// UpdateGuardianPhone sets the "guardian_phone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateGuardianPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateGuardianPhone()
	})
}

// ClearGuardianPhone clears the value of the "guardian_phone" field.
func (u *PatientUpsertBulk) ClearGuardianPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearGuardianPhone()
	})
}

// SetSocialSecurityEncrypted sets the "social_security_encrypted" field.
func (u *PatientUpsertBulk) SetSocialSecurityEncrypted(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetSocialSecurityEncrypted(v)
	})
}

// UpdateSocialSecurityEncrypted sets the "social_security_encrypted" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateSocialSecurityEncrypted() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateSocialSecurityEncrypted()
	})
}

// ClearSocialSecurityEncrypted clears the value of the "social_security_encrypted" field.
func (u *PatientUpsertBulk) ClearSocialSecurityEncrypted() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearSocialSecurityEncrypted()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *PatientUpsertBulk) SetPasswordHash(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdatePasswordHash() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *PatientUpsertBulk) ClearPasswordHash() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearPasswordHash()
	})
}

// SetActivated sets the "activated" field.
func (u *PatientUpsertBulk) SetActivated(v bool) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetActivated(v)
	})
}

// UpdateActivated sets the "activated" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateActivated() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateActivated()
	})
}

// SetActivatedAt sets the "activated_at" field.
func (u *PatientUpsertBulk) SetActivatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetActivatedAt(v)
	})
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateActivatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateActivatedAt()
	})
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *PatientUpsertBulk) ClearActivatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearActivatedAt()
	})
}

// SetNotes sets the "notes" field.
func (u *PatientUpsertBulk) SetNotes(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateNotes() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsertBulk) ClearNotes() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
