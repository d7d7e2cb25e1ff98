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
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo/passation"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
)

// PassationCreate is the builder for creating a Passation entity.
type PassationCreate struct {
	config
	mutation *PassationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PassationCreate) SetCreatedAt(v time.Time) *PassationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PassationCreate) SetNillableCreatedAt(v *time.Time) *PassationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PassationCreate) SetUpdatedAt(v time.Time) *PassationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PassationCreate) SetNillableUpdatedAt(v *time.Time) *PassationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPrescriptionID sets the "prescription_id" field.
func (_c *PassationCreate) SetPrescriptionID(v uuid.UUID) *PassationCreate {
	_c.mutation.SetPrescriptionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PassationCreate) SetStatus(v passation.Status) *PassationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PassationCreate) SetNillableStatus(v *passation.Status) *PassationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *PassationCreate) SetAnswers(v ide.AnswerSet) *PassationCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *PassationCreate) SetScores(v ide.ScoreSet) *PassationCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *PassationCreate) SetProgress(v int) *PassationCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *PassationCreate) SetNillableProgress(v *int) *PassationCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCurrentPart sets the "current_part" field.
func (_c *PassationCreate) SetCurrentPart(v string) *PassationCreate {
	_c.mutation.SetCurrentPart(v)
	return _c
}

// SetNillableCurrentPart sets the "current_part" field if the given value is not nil.
func (_c *PassationCreate) SetNillableCurrentPart(v *string) *PassationCreate {
	if v != nil {
		_c.SetCurrentPart(*v)
	}
	return _c
}

// SetChronologicalAgeMonths sets the "chronological_age_months" field.
func (_c *PassationCreate) SetChronologicalAgeMonths(v int) *PassationCreate {
	_c.mutation.SetChronologicalAgeMonths(v)
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *PassationCreate) SetBirthDate(v time.Time) *PassationCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PassationCreate) SetStartedAt(v time.Time) *PassationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *PassationCreate) SetEndedAt(v time.Time) *PassationCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *PassationCreate) SetNillableEndedAt(v *time.Time) *PassationCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *PassationCreate) SetDurationMinutes(v int) *PassationCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *PassationCreate) SetNillableDurationMinutes(v *int) *PassationCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *PassationCreate) SetLastActivityAt(v time.Time) *PassationCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *PassationCreate) SetIPAddress(v string) *PassationCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_c *PassationCreate) SetNillableIPAddress(v *string) *PassationCreate {
	if v != nil {
		_c.SetIPAddress(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *PassationCreate) SetUserAgent(v string) *PassationCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *PassationCreate) SetNillableUserAgent(v *string) *PassationCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PassationCreate) SetID(v uuid.UUID) *PassationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PassationCreate) SetNillableID(v *uuid.UUID) *PassationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPrescription sets the "prescription" edge to the Prescription entity.
func (_c *PassationCreate) SetPrescription(v *Prescription) *PassationCreate {
	return _c.SetPrescriptionID(v.ID)
}

// Mutation returns the PassationMutation object of the builder.
func (_c *PassationCreate) Mutation() *PassationMutation {
	return _c.mutation
}

// Save creates the Passation in the database.
func (_c *PassationCreate) Save(ctx context.Context) (*Passation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PassationCreate) SaveX(ctx context.Context) *Passation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PassationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := passation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := passation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := passation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Answers(); !ok {
		v := passation.DefaultAnswers
		_c.mutation.SetAnswers(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := passation.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := passation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PassationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Passation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Passation.updated_at"`)}
	}
	if _, ok := _c.mutation.PrescriptionID(); !ok {
		return &ValidationError{Name: "prescription_id", err: errors.New(`repo: missing required field "Passation.prescription_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Passation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := passation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Passation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`repo: missing required field "Passation.progress"`)}
	}
	if v, ok := _c.mutation.Progress(); ok {
		if err := passation.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`repo: validator failed for field "Passation.progress": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CurrentPart(); ok {
		if err := passation.CurrentPartValidator(v); err != nil {
			return &ValidationError{Name: "current_part", err: fmt.Errorf(`repo: validator failed for field "Passation.current_part": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChronologicalAgeMonths(); !ok {
		return &ValidationError{Name: "chronological_age_months", err: errors.New(`repo: missing required field "Passation.chronological_age_months"`)}
	}
	if v, ok := _c.mutation.ChronologicalAgeMonths(); ok {
		if err := passation.ChronologicalAgeMonthsValidator(v); err != nil {
			return &ValidationError{Name: "chronological_age_months", err: fmt.Errorf(`repo: validator failed for field "Passation.chronological_age_months": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BirthDate(); !ok {
		return &ValidationError{Name: "birth_date", err: errors.New(`repo: missing required field "Passation.birth_date"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`repo: missing required field "Passation.started_at"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`repo: missing required field "Passation.last_activity_at"`)}
	}
	if v, ok := _c.mutation.IPAddress(); ok {
		if err := passation.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`repo: validator failed for field "Passation.ip_address": %w`, err)}
		}
	}
	if len(_c.mutation.PrescriptionIDs()) == 0 {
		return &ValidationError{Name: "prescription", err: errors.New(`repo: missing required edge "Passation.prescription"`)}
	}
	return nil
}

func (_c *PassationCreate) sqlSave(ctx context.Context) (*Passation, error) {
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

func (_c *PassationCreate) createSpec() (*Passation, *sqlgraph.CreateSpec) {
	var (
		_node = &Passation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(passation.Table, sqlgraph.NewFieldSpec(passation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(passation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(passation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(passation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(passation.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(passation.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(passation.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CurrentPart(); ok {
		_spec.SetField(passation.FieldCurrentPart, field.TypeString, value)
		_node.CurrentPart = &value
	}
	if value, ok := _c.mutation.ChronologicalAgeMonths(); ok {
		_spec.SetField(passation.FieldChronologicalAgeMonths, field.TypeInt, value)
		_node.ChronologicalAgeMonths = value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(passation.FieldBirthDate, field.TypeTime, value)
		_node.BirthDate = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(passation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(passation.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(passation.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = &value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(passation.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(passation.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = &value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(passation.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = &value
	}
	if nodes := _c.mutation.PrescriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   passation.PrescriptionTable,
			Columns: []string{passation.PrescriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PrescriptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Passation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PassationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PassationCreate) OnConflict(opts ...sql.ConflictOption) *PassationUpsertOne {
	_c.conflict = opts
	return &PassationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Passation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PassationCreate) OnConflictColumns(columns ...string) *PassationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PassationUpsertOne{
		create: _c,
	}
}

type (
	// PassationUpsertOne is the builder for "upsert"-ing
	//  one Passation node.
	PassationUpsertOne struct {
		create *PassationCreate
	}

	// PassationUpsert is the "OnConflict" setter.
	PassationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PassationUpsert) SetUpdatedAt(v time.Time) *PassationUpsert {
	u.Set(passation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PassationUpsert) UpdateUpdatedAt() *PassationUpsert {
	u.SetExcluded(passation.FieldUpdatedAt)
	return u
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *PassationUpsert) SetPrescriptionID(v uuid.UUID) *PassationUpsert {
	u.Set(passation.FieldPrescriptionID, v)
	return u
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *PassationUpsert) UpdatePrescriptionID() *PassationUpsert {
	u.SetExcluded(passation.FieldPrescriptionID)
	return u
}

// SetStatus sets the "status" field.
func (u *PassationUpsert) SetStatus(v passation.Status) *PassationUpsert {
	u.Set(passation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PassationUpsert) UpdateStatus() *PassationUpsert {
	u.SetExcluded(passation.FieldStatus)
	return u
}

// SetAnswers sets the "answers" field.
func (u *PassationUpsert) SetAnswers(v ide.AnswerSet) *PassationUpsert {
	u.Set(passation.FieldAnswers, v)
	return u
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *PassationUpsert) UpdateAnswers() *PassationUpsert {
	u.SetExcluded(passation.FieldAnswers)
	return u
}

// ClearAnswers clears the value of the "answers" field.
func (u *PassationUpsert) ClearAnswers() *PassationUpsert {
	u.SetNull(passation.FieldAnswers)
	return u
}

// SetScores sets the "scores" field.
func (u *PassationUpsert) SetScores(v ide.ScoreSet) *PassationUpsert {
	u.Set(passation.FieldScores, v)
	return u
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *PassationUpsert) UpdateScores() *PassationUpsert {
	u.SetExcluded(passation.FieldScores)
	return u
}

// ClearScores clears the value of the "scores" field.
func (u *PassationUpsert) ClearScores() *PassationUpsert {
	u.SetNull(passation.FieldScores)
	return u
}

// SetProgress sets the "progress" field.
func (u *PassationUpsert) SetProgress(v int) *PassationUpsert {
	u.Set(passation.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *PassationUpsert) UpdateProgress() *PassationUpsert {
	u.SetExcluded(passation.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *PassationUpsert) AddProgress(v int) *PassationUpsert {
	u.Add(passation.FieldProgress, v)
	return u
}

// SetCurrentPart sets the "current_part" field.
func (u *PassationUpsert) SetCurrentPart(v string) *PassationUpsert {
	u.Set(passation.FieldCurrentPart, v)
	return u
}

// UpdateCurrentPart sets the "current_part" field to the value that was provided on create.
func (u *PassationUpsert) UpdateCurrentPart() *PassationUpsert {
	u.SetExcluded(passation.FieldCurrentPart)
	return u
}

// ClearCurrentPart clears the value of the "current_part" field.
func (u *PassationUpsert) ClearCurrentPart() *PassationUpsert {
	u.SetNull(passation.FieldCurrentPart)
	return u
}

// SetChronologicalAgeMonths sets the "chronological_age_months" field.
func (u *PassationUpsert) SetChronologicalAgeMonths(v int) *PassationUpsert {
	u.Set(passation.FieldChronologicalAgeMonths, v)
	return u
}

// UpdateChronologicalAgeMonths sets the "chronological_age_months" field to the value that was provided on create.
func (u *PassationUpsert) UpdateChronologicalAgeMonths() *PassationUpsert {
	u.SetExcluded(passation.FieldChronologicalAgeMonths)
	return u
}

// AddChronologicalAgeMonths adds v to the "chronological_age_months" field.
func (u *PassationUpsert) AddChronologicalAgeMonths(v int) *PassationUpsert {
	u.Add(passation.FieldChronologicalAgeMonths, v)
	return u
}

// SetBirthDate sets the "birth_date" field.
func (u *PassationUpsert) SetBirthDate(v time.Time) *PassationUpsert {
	u.Set(passation.FieldBirthDate, v)
	return u
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PassationUpsert) UpdateBirthDate() *PassationUpsert {
	u.SetExcluded(passation.FieldBirthDate)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *PassationUpsert) SetStartedAt(v time.Time) *PassationUpsert {
	u.Set(passation.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PassationUpsert) UpdateStartedAt() *PassationUpsert {
	u.SetExcluded(passation.FieldStartedAt)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *PassationUpsert) SetEndedAt(v time.Time) *PassationUpsert {
	u.Set(passation.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *PassationUpsert) UpdateEndedAt() *PassationUpsert {
	u.SetExcluded(passation.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *PassationUpsert) ClearEndedAt() *PassationUpsert {
	u.SetNull(passation.FieldEndedAt)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *PassationUpsert) SetDurationMinutes(v int) *PassationUpsert {
	u.Set(passation.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *PassationUpsert) UpdateDurationMinutes() *PassationUpsert {
	u.SetExcluded(passation.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *PassationUpsert) AddDurationMinutes(v int) *PassationUpsert {
	u.Add(passation.FieldDurationMinutes, v)
	return u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (u *PassationUpsert) ClearDurationMinutes() *PassationUpsert {
	u.SetNull(passation.FieldDurationMinutes)
	return u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *PassationUpsert) SetLastActivityAt(v time.Time) *PassationUpsert {
	u.Set(passation.FieldLastActivityAt, v)
	return u
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *PassationUpsert) UpdateLastActivityAt() *PassationUpsert {
	u.SetExcluded(passation.FieldLastActivityAt)
	return u
}

// SetIPAddress sets the "ip_address" field.
func (u *PassationUpsert) SetIPAddress(v string) *PassationUpsert {
	u.Set(passation.FieldIPAddress, v)
	return u
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *PassationUpsert) UpdateIPAddress() *PassationUpsert {
	u.SetExcluded(passation.FieldIPAddress)
	return u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *PassationUpsert) ClearIPAddress() *PassationUpsert {
	u.SetNull(passation.FieldIPAddress)
	return u
}

// SetUserAgent sets the "user_agent" field.
func (u *PassationUpsert) SetUserAgent(v string) *PassationUpsert {
	u.Set(passation.FieldUserAgent, v)
	return u
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *PassationUpsert) UpdateUserAgent() *PassationUpsert {
	u.SetExcluded(passation.FieldUserAgent)
	return u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *PassationUpsert) ClearUserAgent() *PassationUpsert {
	u.SetNull(passation.FieldUserAgent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Passation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(passation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PassationUpsertOne) UpdateNewValues() *PassationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(passation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(passation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Passation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PassationUpsertOne) Ignore() *PassationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PassationUpsertOne) DoNothing() *PassationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PassationCreate.OnConflict
// documentation for more info.
func (u *PassationUpsertOne) Update(set func(*PassationUpsert)) *PassationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PassationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PassationUpsertOne) SetUpdatedAt(v time.Time) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateUpdatedAt() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *PassationUpsertOne) SetPrescriptionID(v uuid.UUID) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdatePrescriptionID() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdatePrescriptionID()
	})
}

// SetStatus sets the "status" field.
func (u *PassationUpsertOne) SetStatus(v passation.Status) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateStatus() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateStatus()
	})
}

// SetAnswers sets the "answers" field.
func (u *PassationUpsertOne) SetAnswers(v ide.AnswerSet) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateAnswers() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateAnswers()
	})
}

// ClearAnswers clears the value of the "answers" field.
func (u *PassationUpsertOne) ClearAnswers() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.ClearAnswers()
	})
}

// SetScores sets the "scores" field.
func (u *PassationUpsertOne) SetScores(v ide.ScoreSet) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetScores(v)
	})
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateScores() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateScores()
	})
}

// ClearScores clears the value of the "scores" field.
func (u *PassationUpsertOne) ClearScores() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.ClearScores()
	})
}

// SetProgress sets the "progress" field.
func (u *PassationUpsertOne) SetProgress(v int) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *PassationUpsertOne) AddProgress(v int) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateProgress() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateProgress()
	})
}

// SetCurrentPart sets the "current_part" field.
func (u *PassationUpsertOne) SetCurrentPart(v string) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetCurrentPart(v)
	})
}

// UpdateCurrentPart sets the "current_part" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateCurrentPart() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateCurrentPart()
	})
}

// ClearCurrentPart clears the value of the "current_part" field.
func (u *PassationUpsertOne) ClearCurrentPart() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.ClearCurrentPart()
	})
}

// SetChronologicalAgeMonths sets the "chronological_age_months" field.
func (u *PassationUpsertOne) SetChronologicalAgeMonths(v int) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetChronologicalAgeMonths(v)
	})
}

// AddChronologicalAgeMonths adds v to the "chronological_age_months" field.
func (u *PassationUpsertOne) AddChronologicalAgeMonths(v int) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.AddChronologicalAgeMonths(v)
	})
}

// UpdateChronologicalAgeMonths sets the "chronological_age_months" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateChronologicalAgeMonths() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateChronologicalAgeMonths()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PassationUpsertOne) SetBirthDate(v time.Time) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateBirthDate() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateBirthDate()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PassationUpsertOne) SetStartedAt(v time.Time) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateStartedAt() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *PassationUpsertOne) SetEndedAt(v time.Time) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateEndedAt() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *PassationUpsertOne) ClearEndedAt() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.ClearEndedAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *PassationUpsertOne) SetDurationMinutes(v int) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *PassationUpsertOne) AddDurationMinutes(v int) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateDurationMinutes() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateDurationMinutes()
	})
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (u *PassationUpsertOne) ClearDurationMinutes() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.ClearDurationMinutes()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *PassationUpsertOne) SetLastActivityAt(v time.Time) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateLastActivityAt() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateLastActivityAt()
	})
}

// SetIPAddress sets the "ip_address" field.
func (u *PassationUpsertOne) SetIPAddress(v string) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetIPAddress(v)
	})
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateIPAddress() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateIPAddress()
	})
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *PassationUpsertOne) ClearIPAddress() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.ClearIPAddress()
	})
}

// SetUserAgent sets the "user_agent" field.
func (u *PassationUpsertOne) SetUserAgent(v string) *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.SetUserAgent(v)
	})
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *PassationUpsertOne) UpdateUserAgent() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateUserAgent()
	})
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *PassationUpsertOne) ClearUserAgent() *PassationUpsertOne {
	return u.Update(func(s *PassationUpsert) {
		s.ClearUserAgent()
	})
}

// Exec executes the query.
func (u *PassationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PassationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PassationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PassationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PassationUpsertOne.ID is not supported by MySQL driver. Use PassationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PassationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PassationCreateBulk is the builder for creating many Passation entities in bulk.
type PassationCreateBulk struct {
	config
	err      error
	builders []*PassationCreate
	conflict []sql.ConflictOption
}

// Save creates the Passation entities in the database.
func (_c *PassationCreateBulk) Save(ctx context.Context) ([]*Passation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Passation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PassationMutation)
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
func (_c *PassationCreateBulk) SaveX(ctx context.Context) []*Passation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Passation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PassationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PassationCreateBulk) OnConflict(opts ...sql.ConflictOption) *PassationUpsertBulk {
	_c.conflict = opts
	return &PassationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Passation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PassationCreateBulk) OnConflictColumns(columns ...string) *PassationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PassationUpsertBulk{
		create: _c,
	}
}

// PassationUpsertBulk is the builder for "upsert"-ing
// a bulk of Passation nodes.
type PassationUpsertBulk struct {
	create *PassationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Passation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(passation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PassationUpsertBulk) UpdateNewValues() *PassationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(passation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(passation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Passation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PassationUpsertBulk) Ignore() *PassationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PassationUpsertBulk) DoNothing() *PassationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PassationCreateBulk.OnConflict
// documentation for more info.
func (u *PassationUpsertBulk) Update(set func(*PassationUpsert)) *PassationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PassationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PassationUpsertBulk) SetUpdatedAt(v time.Time) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateUpdatedAt() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *PassationUpsertBulk) SetPrescriptionID(v uuid.UUID) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdatePrescriptionID() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdatePrescriptionID()
	})
}

// SetStatus sets the "status" field.
func (u *PassationUpsertBulk) SetStatus(v passation.Status) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateStatus() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateStatus()
	})
}

// SetAnswers sets the "answers" field.
func (u *PassationUpsertBulk) SetAnswers(v ide.AnswerSet) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateAnswers() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateAnswers()
	})
}

// ClearAnswers clears the value of the "answers" field.
func (u *PassationUpsertBulk) ClearAnswers() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.ClearAnswers()
	})
}

// SetScores sets the "scores" field.
func (u *PassationUpsertBulk) SetScores(v ide.ScoreSet) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetScores(v)
	})
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateScores() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateScores()
	})
}

// ClearScores clears the value of the "scores" field.
func (u *PassationUpsertBulk) ClearScores() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.ClearScores()
	})
}

// SetProgress sets the "progress" field.
func (u *PassationUpsertBulk) SetProgress(v int) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *PassationUpsertBulk) AddProgress(v int) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateProgress() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateProgress()
	})
}

// SetCurrentPart sets the "current_part" field.
func (u *PassationUpsertBulk) SetCurrentPart(v string) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetCurrentPart(v)
	})
}

// UpdateCurrentPart sets the "current_part" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateCurrentPart() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateCurrentPart()
	})
}

// ClearCurrentPart clears the value of the "current_part" field.
func (u *PassationUpsertBulk) ClearCurrentPart() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.ClearCurrentPart()
	})
}

// SetChronologicalAgeMonths sets the "chronological_age_months" field.
func (u *PassationUpsertBulk) SetChronologicalAgeMonths(v int) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetChronologicalAgeMonths(v)
	})
}

// AddChronologicalAgeMonths adds v to the "chronological_age_months" field.
func (u *PassationUpsertBulk) AddChronologicalAgeMonths(v int) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.AddChronologicalAgeMonths(v)
	})
}

// UpdateChronologicalAgeMonths sets the "chronological_age_months" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateChronologicalAgeMonths() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateChronologicalAgeMonths()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PassationUpsertBulk) SetBirthDate(v time.Time) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateBirthDate() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateBirthDate()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PassationUpsertBulk) SetStartedAt(v time.Time) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateStartedAt() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateStartedAt()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *PassationUpsertBulk) SetEndedAt(v time.Time) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateEndedAt() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *PassationUpsertBulk) ClearEndedAt() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.ClearEndedAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *PassationUpsertBulk) SetDurationMinutes(v int) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *PassationUpsertBulk) AddDurationMinutes(v int) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateDurationMinutes() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateDurationMinutes()
	})
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (u *PassationUpsertBulk) ClearDurationMinutes() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.ClearDurationMinutes()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *PassationUpsertBulk) SetLastActivityAt(v time.Time) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateLastActivityAt() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateLastActivityAt()
	})
}

// SetIPAddress sets the "ip_address" field.
func (u *PassationUpsertBulk) SetIPAddress(v string) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetIPAddress(v)
	})
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateIPAddress() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateIPAddress()
	})
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *PassationUpsertBulk) ClearIPAddress() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.ClearIPAddress()
	})
}

// SetUserAgent sets the "user_agent" field.
func (u *PassationUpsertBulk) SetUserAgent(v string) *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.SetUserAgent(v)
	})
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *PassationUpsertBulk) UpdateUserAgent() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.UpdateUserAgent()
	})
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *PassationUpsertBulk) ClearUserAgent() *PassationUpsertBulk {
	return u.Update(func(s *PassationUpsert) {
		s.ClearUserAgent()
	})
}

// Exec executes the query.
func (u *PassationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PassationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PassationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PassationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
