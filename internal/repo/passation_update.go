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
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo/passation"
	"github.com/ortholab/depisto_backend/internal/repo/predicate"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
)

// PassationUpdate is the builder for updating Passation entities.
type PassationUpdate struct {
	config
	hooks    []Hook
	mutation *PassationMutation
}

// Where appends a list predicates to the PassationUpdate builder.
func (_u *PassationUpdate) Where(ps ...predicate.Passation) *PassationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PassationUpdate) SetUpdatedAt(v time.Time) *PassationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *PassationUpdate) SetPrescriptionID(v uuid.UUID) *PassationUpdate {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *PassationUpdate) SetNillablePrescriptionID(v *uuid.UUID) *PassationUpdate {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PassationUpdate) SetStatus(v passation.Status) *PassationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableStatus(v *passation.Status) *PassationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *PassationUpdate) SetAnswers(v ide.AnswerSet) *PassationUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *PassationUpdate) ClearAnswers() *PassationUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetScores sets the "scores" field.
func (_u *PassationUpdate) SetScores(v ide.ScoreSet) *PassationUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *PassationUpdate) ClearScores() *PassationUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *PassationUpdate) SetProgress(v int) *PassationUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableProgress(v *int) *PassationUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *PassationUpdate) AddProgress(v int) *PassationUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentPart sets the "current_part" field.
func (_u *PassationUpdate) SetCurrentPart(v string) *PassationUpdate {
	_u.mutation.SetCurrentPart(v)
	return _u
}

// SetNillableCurrentPart sets the "current_part" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableCurrentPart(v *string) *PassationUpdate {
	if v != nil {
		_u.SetCurrentPart(*v)
	}
	return _u
}

// ClearCurrentPart clears the value of the "current_part" field.
func (_u *PassationUpdate) ClearCurrentPart() *PassationUpdate {
	_u.mutation.ClearCurrentPart()
	return _u
}

// SetChronologicalAgeMonths sets the "chronological_age_months" field.
func (_u *PassationUpdate) SetChronologicalAgeMonths(v int) *PassationUpdate {
	_u.mutation.ResetChronologicalAgeMonths()
	_u.mutation.SetChronologicalAgeMonths(v)
	return _u
}

// SetNillableChronologicalAgeMonths sets the "chronological_age_months" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableChronologicalAgeMonths(v *int) *PassationUpdate {
	if v != nil {
		_u.SetChronologicalAgeMonths(*v)
	}
	return _u
}

// AddChronologicalAgeMonths adds value to the "chronological_age_months" field.
func (_u *PassationUpdate) AddChronologicalAgeMonths(v int) *PassationUpdate {
	_u.mutation.AddChronologicalAgeMonths(v)
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PassationUpdate) SetBirthDate(v time.Time) *PassationUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableBirthDate(v *time.Time) *PassationUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PassationUpdate) SetStartedAt(v time.Time) *PassationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableStartedAt(v *time.Time) *PassationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *PassationUpdate) SetEndedAt(v time.Time) *PassationUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableEndedAt(v *time.Time) *PassationUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PassationUpdate) ClearEndedAt() *PassationUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *PassationUpdate) SetDurationMinutes(v int) *PassationUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableDurationMinutes(v *int) *PassationUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *PassationUpdate) AddDurationMinutes(v int) *PassationUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *PassationUpdate) ClearDurationMinutes() *PassationUpdate {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *PassationUpdate) SetLastActivityAt(v time.Time) *PassationUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableLastActivityAt(v *time.Time) *PassationUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *PassationUpdate) SetIPAddress(v string) *PassationUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableIPAddress(v *string) *PassationUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *PassationUpdate) ClearIPAddress() *PassationUpdate {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *PassationUpdate) SetUserAgent(v string) *PassationUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *PassationUpdate) SetNillableUserAgent(v *string) *PassationUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *PassationUpdate) ClearUserAgent() *PassationUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetPrescription sets the "prescription" edge to the Prescription entity.
func (_u *PassationUpdate) SetPrescription(v *Prescription) *PassationUpdate {
	return _u.SetPrescriptionID(v.ID)
}

// Mutation returns the PassationMutation object of the builder.
func (_u *PassationUpdate) Mutation() *PassationMutation {
	return _u.mutation
}

// ClearPrescription clears the "prescription" edge to the Prescription entity.
func (_u *PassationUpdate) ClearPrescription() *PassationUpdate {
	_u.mutation.ClearPrescription()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PassationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PassationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PassationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := passation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Passation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := passation.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`repo: validator failed for field "Passation.progress": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentPart(); ok {
		if err := passation.CurrentPartValidator(v); err != nil {
			return &ValidationError{Name: "current_part", err: fmt.Errorf(`repo: validator failed for field "Passation.current_part": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChronologicalAgeMonths(); ok {
		if err := passation.ChronologicalAgeMonthsValidator(v); err != nil {
			return &ValidationError{Name: "chronological_age_months", err: fmt.Errorf(`repo: validator failed for field "Passation.chronological_age_months": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := passation.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`repo: validator failed for field "Passation.ip_address": %w`, err)}
		}
	}
	if _u.mutation.PrescriptionCleared() && len(_u.mutation.PrescriptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Passation.prescription"`)
	}
	return nil
}

func (_u *PassationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passation.Table, passation.Columns, sqlgraph.NewFieldSpec(passation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(passation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(passation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(passation.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(passation.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(passation.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(passation.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(passation.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(passation.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentPart(); ok {
		_spec.SetField(passation.FieldCurrentPart, field.TypeString, value)
	}
	if _u.mutation.CurrentPartCleared() {
		_spec.ClearField(passation.FieldCurrentPart, field.TypeString)
	}
	if value, ok := _u.mutation.ChronologicalAgeMonths(); ok {
		_spec.SetField(passation.FieldChronologicalAgeMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChronologicalAgeMonths(); ok {
		_spec.AddField(passation.FieldChronologicalAgeMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(passation.FieldBirthDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(passation.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(passation.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(passation.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(passation.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(passation.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(passation.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(passation.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(passation.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(passation.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(passation.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(passation.FieldUserAgent, field.TypeString)
	}
	if _u.mutation.PrescriptionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PassationUpdateOne is the builder for updating a single Passation entity.
type PassationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PassationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PassationUpdateOne) SetUpdatedAt(v time.Time) *PassationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *PassationUpdateOne) SetPrescriptionID(v uuid.UUID) *PassationUpdateOne {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillablePrescriptionID(v *uuid.UUID) *PassationUpdateOne {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PassationUpdateOne) SetStatus(v passation.Status) *PassationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableStatus(v *passation.Status) *PassationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *PassationUpdateOne) SetAnswers(v ide.AnswerSet) *PassationUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *PassationUpdateOne) ClearAnswers() *PassationUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetScores sets the "scores" field.
func (_u *PassationUpdateOne) SetScores(v ide.ScoreSet) *PassationUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *PassationUpdateOne) ClearScores() *PassationUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *PassationUpdateOne) SetProgress(v int) *PassationUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableProgress(v *int) *PassationUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *PassationUpdateOne) AddProgress(v int) *PassationUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentPart sets the "current_part" field.
func (_u *PassationUpdateOne) SetCurrentPart(v string) *PassationUpdateOne {
	_u.mutation.SetCurrentPart(v)
	return _u
}

// SetNillableCurrentPart sets the "current_part" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableCurrentPart(v *string) *PassationUpdateOne {
	if v != nil {
		_u.SetCurrentPart(*v)
	}
	return _u
}

// ClearCurrentPart clears the value of the "current_part" field.
func (_u *PassationUpdateOne) ClearCurrentPart() *PassationUpdateOne {
	_u.mutation.ClearCurrentPart()
	return _u
}

// SetChronologicalAgeMonths sets the "chronological_age_months" field.
func (_u *PassationUpdateOne) SetChronologicalAgeMonths(v int) *PassationUpdateOne {
	_u.mutation.ResetChronologicalAgeMonths()
	_u.mutation.SetChronologicalAgeMonths(v)
	return _u
}

// SetNillableChronologicalAgeMonths sets the "chronological_age_months" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableChronologicalAgeMonths(v *int) *PassationUpdateOne {
	if v != nil {
		_u.SetChronologicalAgeMonths(*v)
	}
	return _u
}

// AddChronologicalAgeMonths adds value to the "chronological_age_months" field.
func (_u *PassationUpdateOne) AddChronologicalAgeMonths(v int) *PassationUpdateOne {
	_u.mutation.AddChronologicalAgeMonths(v)
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PassationUpdateOne) SetBirthDate(v time.Time) *PassationUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableBirthDate(v *time.Time) *PassationUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PassationUpdateOne) SetStartedAt(v time.Time) *PassationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableStartedAt(v *time.Time) *PassationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *PassationUpdateOne) SetEndedAt(v time.Time) *PassationUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableEndedAt(v *time.Time) *PassationUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PassationUpdateOne) ClearEndedAt() *PassationUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *PassationUpdateOne) SetDurationMinutes(v int) *PassationUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableDurationMinutes(v *int) *PassationUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *PassationUpdateOne) AddDurationMinutes(v int) *PassationUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (_u *PassationUpdateOne) ClearDurationMinutes() *PassationUpdateOne {
	_u.mutation.ClearDurationMinutes()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *PassationUpdateOne) SetLastActivityAt(v time.Time) *PassationUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableLastActivityAt(v *time.Time) *PassationUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *PassationUpdateOne) SetIPAddress(v string) *PassationUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableIPAddress(v *string) *PassationUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *PassationUpdateOne) ClearIPAddress() *PassationUpdateOne {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *PassationUpdateOne) SetUserAgent(v string) *PassationUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *PassationUpdateOne) SetNillableUserAgent(v *string) *PassationUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *PassationUpdateOne) ClearUserAgent() *PassationUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetPrescription sets the "prescription" edge to the Prescription entity.
func (_u *PassationUpdateOne) SetPrescription(v *Prescription) *PassationUpdateOne {
	return _u.SetPrescriptionID(v.ID)
}

// Mutation returns the PassationMutation object of the builder.
func (_u *PassationUpdateOne) Mutation() *PassationMutation {
	return _u.mutation
}

// ClearPrescription clears the "prescription" edge to the Prescription entity.
func (_u *PassationUpdateOne) ClearPrescription() *PassationUpdateOne {
	_u.mutation.ClearPrescription()
	return _u
}

// Where appends a list predicates to the PassationUpdate builder.
func (_u *PassationUpdateOne) Where(ps ...predicate.Passation) *PassationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PassationUpdateOne) Select(field string, fields ...string) *PassationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Passation entity.
func (_u *PassationUpdateOne) Save(ctx context.Context) (*Passation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassationUpdateOne) SaveX(ctx context.Context) *Passation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PassationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PassationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := passation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Passation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := passation.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`repo: validator failed for field "Passation.progress": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentPart(); ok {
		if err := passation.CurrentPartValidator(v); err != nil {
			return &ValidationError{Name: "current_part", err: fmt.Errorf(`repo: validator failed for field "Passation.current_part": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChronologicalAgeMonths(); ok {
		if err := passation.ChronologicalAgeMonthsValidator(v); err != nil {
			return &ValidationError{Name: "chronological_age_months", err: fmt.Errorf(`repo: validator failed for field "Passation.chronological_age_months": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IPAddress(); ok {
		if err := passation.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`repo: validator failed for field "Passation.ip_address": %w`, err)}
		}
	}
	if _u.mutation.PrescriptionCleared() && len(_u.mutation.PrescriptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Passation.prescription"`)
	}
	return nil
}

func (_u *PassationUpdateOne) sqlSave(ctx context.Context) (_node *Passation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passation.Table, passation.Columns, sqlgraph.NewFieldSpec(passation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Passation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, passation.FieldID)
		for _, f := range fields {
			if !passation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != passation.FieldID {
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
		_spec.SetField(passation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(passation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(passation.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(passation.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(passation.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(passation.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(passation.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(passation.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentPart(); ok {
		_spec.SetField(passation.FieldCurrentPart, field.TypeString, value)
	}
	if _u.mutation.CurrentPartCleared() {
		_spec.ClearField(passation.FieldCurrentPart, field.TypeString)
	}
	if value, ok := _u.mutation.ChronologicalAgeMonths(); ok {
		_spec.SetField(passation.FieldChronologicalAgeMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChronologicalAgeMonths(); ok {
		_spec.AddField(passation.FieldChronologicalAgeMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(passation.FieldBirthDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(passation.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(passation.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(passation.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(passation.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(passation.FieldDurationMinutes, field.TypeInt, value)
	}
	if _u.mutation.DurationMinutesCleared() {
		_spec.ClearField(passation.FieldDurationMinutes, field.TypeInt)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(passation.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(passation.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(passation.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(passation.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(passation.FieldUserAgent, field.TypeString)
	}
	if _u.mutation.PrescriptionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Passation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
