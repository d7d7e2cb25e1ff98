// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo/bilan"
	"github.com/ortholab/depisto_backend/internal/repo/predicate"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
)

// BilanUpdate is the builder for updating Bilan entities.
type BilanUpdate struct {
	config
	hooks    []Hook
	mutation *BilanMutation
}

// Where appends a list predicates to the BilanUpdate builder.
func (_u *BilanUpdate) Where(ps ...predicate.Bilan) *BilanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BilanUpdate) SetUpdatedAt(v time.Time) *BilanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *BilanUpdate) SetPrescriptionID(v uuid.UUID) *BilanUpdate {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *BilanUpdate) SetNillablePrescriptionID(v *uuid.UUID) *BilanUpdate {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BilanUpdate) SetStatus(v bilan.Status) *BilanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BilanUpdate) SetNillableStatus(v *bilan.Status) *BilanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *BilanUpdate) SetVersion(v int) *BilanUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BilanUpdate) SetNillableVersion(v *int) *BilanUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BilanUpdate) AddVersion(v int) *BilanUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetDetailedScores sets the "detailed_scores" field.
func (_u *BilanUpdate) SetDetailedScores(v ide.ScoreSet) *BilanUpdate {
	_u.mutation.SetDetailedScores(v)
	return _u
}

// SetDgScore sets the "dg_score" field.
func (_u *BilanUpdate) SetDgScore(v int) *BilanUpdate {
	_u.mutation.ResetDgScore()
	_u.mutation.SetDgScore(v)
	return _u
}

// SetNillableDgScore sets the "dg_score" field if the given value is not nil.
func (_u *BilanUpdate) SetNillableDgScore(v *int) *BilanUpdate {
	if v != nil {
		_u.SetDgScore(*v)
	}
	return _u
}

// AddDgScore adds value to the "dg_score" field.
func (_u *BilanUpdate) AddDgScore(v int) *BilanUpdate {
	_u.mutation.AddDgScore(v)
	return _u
}

// SetGlobalRisk sets the "global_risk" field.
func (_u *BilanUpdate) SetGlobalRisk(v bilan.GlobalRisk) *BilanUpdate {
	_u.mutation.SetGlobalRisk(v)
	return _u
}

// SetNillableGlobalRisk sets the "global_risk" field if the given value is not nil.
func (_u *BilanUpdate) SetNillableGlobalRisk(v *bilan.GlobalRisk) *BilanUpdate {
	if v != nil {
		_u.SetGlobalRisk(*v)
	}
	return _u
}

// SetDevelopmentalAgeMonths sets the "developmental_age_months" field.
func (_u *BilanUpdate) SetDevelopmentalAgeMonths(v int) *BilanUpdate {
	_u.mutation.ResetDevelopmentalAgeMonths()
	_u.mutation.SetDevelopmentalAgeMonths(v)
	return _u
}

// SetNillableDevelopmentalAgeMonths sets the "developmental_age_months" field if the given value is not nil.
func (_u *BilanUpdate) SetNillableDevelopmentalAgeMonths(v *int) *BilanUpdate {
	if v != nil {
		_u.SetDevelopmentalAgeMonths(*v)
	}
	return _u
}

// AddDevelopmentalAgeMonths adds value to the "developmental_age_months" field.
func (_u *BilanUpdate) AddDevelopmentalAgeMonths(v int) *BilanUpdate {
	_u.mutation.AddDevelopmentalAgeMonths(v)
	return _u
}

// SetGraphicProfile sets the "graphic_profile" field.
func (_u *BilanUpdate) SetGraphicProfile(v []ide.ProfileEntry) *BilanUpdate {
	_u.mutation.SetGraphicProfile(v)
	return _u
}

// AppendGraphicProfile appends value to the "graphic_profile" field.
func (_u *BilanUpdate) AppendGraphicProfile(v []ide.ProfileEntry) *BilanUpdate {
	_u.mutation.AppendGraphicProfile(v)
	return _u
}

// ClearGraphicProfile clears the value of the "graphic_profile" field.
func (_u *BilanUpdate) ClearGraphicProfile() *BilanUpdate {
	_u.mutation.ClearGraphicProfile()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *BilanUpdate) SetStrengths(v []ide.Finding) *BilanUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *BilanUpdate) AppendStrengths(v []ide.Finding) *BilanUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *BilanUpdate) ClearStrengths() *BilanUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWatchPoints sets the "watch_points" field.
func (_u *BilanUpdate) SetWatchPoints(v []ide.Finding) *BilanUpdate {
	_u.mutation.SetWatchPoints(v)
	return _u
}

// AppendWatchPoints appends value to the "watch_points" field.
func (_u *BilanUpdate) AppendWatchPoints(v []ide.Finding) *BilanUpdate {
	_u.mutation.AppendWatchPoints(v)
	return _u
}

// ClearWatchPoints clears the value of the "watch_points" field.
func (_u *BilanUpdate) ClearWatchPoints() *BilanUpdate {
	_u.mutation.ClearWatchPoints()
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *BilanUpdate) SetInterpretation(v string) *BilanUpdate {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *BilanUpdate) SetNillableInterpretation(v *string) *BilanUpdate {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// SetPractitionerComments sets the "practitioner_comments" field.
func (_u *BilanUpdate) SetPractitionerComments(v string) *BilanUpdate {
	_u.mutation.SetPractitionerComments(v)
	return _u
}

// SetNillablePractitionerComments sets the "practitioner_comments" field if the given value is not nil.
func (_u *BilanUpdate) SetNillablePractitionerComments(v *string) *BilanUpdate {
	if v != nil {
		_u.SetPractitionerComments(*v)
	}
	return _u
}

// ClearPractitionerComments clears the value of the "practitioner_comments" field.
func (_u *BilanUpdate) ClearPractitionerComments() *BilanUpdate {
	_u.mutation.ClearPractitionerComments()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *BilanUpdate) SetRecommendations(v string) *BilanUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// SetNillableRecommendations sets the "recommendations" field if the given value is not nil.
func (_u *BilanUpdate) SetNillableRecommendations(v *string) *BilanUpdate {
	if v != nil {
		_u.SetRecommendations(*v)
	}
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *BilanUpdate) ClearRecommendations() *BilanUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *BilanUpdate) SetGeneratedAt(v time.Time) *BilanUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *BilanUpdate) SetNillableGeneratedAt(v *time.Time) *BilanUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *BilanUpdate) SetValidatedAt(v time.Time) *BilanUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *BilanUpdate) SetNillableValidatedAt(v *time.Time) *BilanUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *BilanUpdate) ClearValidatedAt() *BilanUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetPdfKey sets the "pdf_key" field.
func (_u *BilanUpdate) SetPdfKey(v string) *BilanUpdate {
	_u.mutation.SetPdfKey(v)
	return _u
}

// SetNillablePdfKey sets the "pdf_key" field if the given value is not nil.
func (_u *BilanUpdate) SetNillablePdfKey(v *string) *BilanUpdate {
	if v != nil {
		_u.SetPdfKey(*v)
	}
	return _u
}

// ClearPdfKey clears the value of the "pdf_key" field.
func (_u *BilanUpdate) ClearPdfKey() *BilanUpdate {
	_u.mutation.ClearPdfKey()
	return _u
}

// SetPrescription sets the "prescription" edge to the Prescription entity.
func (_u *BilanUpdate) SetPrescription(v *Prescription) *BilanUpdate {
	return _u.SetPrescriptionID(v.ID)
}

// Mutation returns the BilanMutation object of the builder.
func (_u *BilanUpdate) Mutation() *BilanMutation {
	return _u.mutation
}

// ClearPrescription clears the "prescription" edge to the Prescription entity.
func (_u *BilanUpdate) ClearPrescription() *BilanUpdate {
	_u.mutation.ClearPrescription()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BilanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BilanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BilanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BilanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BilanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bilan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BilanUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := bilan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Bilan.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := bilan.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Bilan.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DgScore(); ok {
		if err := bilan.DgScoreValidator(v); err != nil {
			return &ValidationError{Name: "dg_score", err: fmt.Errorf(`repo: validator failed for field "Bilan.dg_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GlobalRisk(); ok {
		if err := bilan.GlobalRiskValidator(v); err != nil {
			return &ValidationError{Name: "global_risk", err: fmt.Errorf(`repo: validator failed for field "Bilan.global_risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DevelopmentalAgeMonths(); ok {
		if err := bilan.DevelopmentalAgeMonthsValidator(v); err != nil {
			return &ValidationError{Name: "developmental_age_months", err: fmt.Errorf(`repo: validator failed for field "Bilan.developmental_age_months": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfKey(); ok {
		if err := bilan.PdfKeyValidator(v); err != nil {
			return &ValidationError{Name: "pdf_key", err: fmt.Errorf(`repo: validator failed for field "Bilan.pdf_key": %w`, err)}
		}
	}
	if _u.mutation.PrescriptionCleared() && len(_u.mutation.PrescriptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Bilan.prescription"`)
	}
	return nil
}

func (_u *BilanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bilan.Table, bilan.Columns, sqlgraph.NewFieldSpec(bilan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bilan.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bilan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(bilan.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(bilan.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DetailedScores(); ok {
		_spec.SetField(bilan.FieldDetailedScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DgScore(); ok {
		_spec.SetField(bilan.FieldDgScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDgScore(); ok {
		_spec.AddField(bilan.FieldDgScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GlobalRisk(); ok {
		_spec.SetField(bilan.FieldGlobalRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DevelopmentalAgeMonths(); ok {
		_spec.SetField(bilan.FieldDevelopmentalAgeMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDevelopmentalAgeMonths(); ok {
		_spec.AddField(bilan.FieldDevelopmentalAgeMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GraphicProfile(); ok {
		_spec.SetField(bilan.FieldGraphicProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGraphicProfile(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bilan.FieldGraphicProfile, value)
		})
	}
	if _u.mutation.GraphicProfileCleared() {
		_spec.ClearField(bilan.FieldGraphicProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(bilan.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bilan.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(bilan.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.WatchPoints(); ok {
		_spec.SetField(bilan.FieldWatchPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWatchPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bilan.FieldWatchPoints, value)
		})
	}
	if _u.mutation.WatchPointsCleared() {
		_spec.ClearField(bilan.FieldWatchPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(bilan.FieldInterpretation, field.TypeString, value)
	}
	if value, ok := _u.mutation.PractitionerComments(); ok {
		_spec.SetField(bilan.FieldPractitionerComments, field.TypeString, value)
	}
	if _u.mutation.PractitionerCommentsCleared() {
		_spec.ClearField(bilan.FieldPractitionerComments, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(bilan.FieldRecommendations, field.TypeString, value)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(bilan.FieldRecommendations, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(bilan.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(bilan.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(bilan.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PdfKey(); ok {
		_spec.SetField(bilan.FieldPdfKey, field.TypeString, value)
	}
	if _u.mutation.PdfKeyCleared() {
		_spec.ClearField(bilan.FieldPdfKey, field.TypeString)
	}
	if _u.mutation.PrescriptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bilan.PrescriptionTable,
			Columns: []string{bilan.PrescriptionColumn},
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
			Table:   bilan.PrescriptionTable,
			Columns: []string{bilan.PrescriptionColumn},
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
			err = &NotFoundError{bilan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BilanUpdateOne is the builder for updating a single Bilan entity.
type BilanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BilanMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BilanUpdateOne) SetUpdatedAt(v time.Time) *BilanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPrescriptionID sets the "prescription_id" field.
func (_u *BilanUpdateOne) SetPrescriptionID(v uuid.UUID) *BilanUpdateOne {
	_u.mutation.SetPrescriptionID(v)
	return _u
}

// SetNillablePrescriptionID sets the "prescription_id" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillablePrescriptionID(v *uuid.UUID) *BilanUpdateOne {
	if v != nil {
		_u.SetPrescriptionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BilanUpdateOne) SetStatus(v bilan.Status) *BilanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillableStatus(v *bilan.Status) *BilanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *BilanUpdateOne) SetVersion(v int) *BilanUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillableVersion(v *int) *BilanUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BilanUpdateOne) AddVersion(v int) *BilanUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetDetailedScores sets the "detailed_scores" field.
func (_u *BilanUpdateOne) SetDetailedScores(v ide.ScoreSet) *BilanUpdateOne {
	_u.mutation.SetDetailedScores(v)
	return _u
}

// SetDgScore sets the "dg_score" field.
func (_u *BilanUpdateOne) SetDgScore(v int) *BilanUpdateOne {
	_u.mutation.ResetDgScore()
	_u.mutation.SetDgScore(v)
	return _u
}

// SetNillableDgScore sets the "dg_score" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillableDgScore(v *int) *BilanUpdateOne {
	if v != nil {
		_u.SetDgScore(*v)
	}
	return _u
}

// AddDgScore adds value to the "dg_score" field.
func (_u *BilanUpdateOne) AddDgScore(v int) *BilanUpdateOne {
	_u.mutation.AddDgScore(v)
	return _u
}

// SetGlobalRisk sets the "global_risk" field.
func (_u *BilanUpdateOne) SetGlobalRisk(v bilan.GlobalRisk) *BilanUpdateOne {
	_u.mutation.SetGlobalRisk(v)
	return _u
}

// SetNillableGlobalRisk sets the "global_risk" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillableGlobalRisk(v *bilan.GlobalRisk) *BilanUpdateOne {
	if v != nil {
		_u.SetGlobalRisk(*v)
	}
	return _u
}

// SetDevelopmentalAgeMonths sets the "developmental_age_months" field.
func (_u *BilanUpdateOne) SetDevelopmentalAgeMonths(v int) *BilanUpdateOne {
	_u.mutation.ResetDevelopmentalAgeMonths()
	_u.mutation.SetDevelopmentalAgeMonths(v)
	return _u
}

// SetNillableDevelopmentalAgeMonths sets the "developmental_age_months" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillableDevelopmentalAgeMonths(v *int) *BilanUpdateOne {
	if v != nil {
		_u.SetDevelopmentalAgeMonths(*v)
	}
	return _u
}

// AddDevelopmentalAgeMonths adds value to the "developmental_age_months" field.
func (_u *BilanUpdateOne) AddDevelopmentalAgeMonths(v int) *BilanUpdateOne {
	_u.mutation.AddDevelopmentalAgeMonths(v)
	return _u
}

// SetGraphicProfile sets the "graphic_profile" field.
func (_u *BilanUpdateOne) SetGraphicProfile(v []ide.ProfileEntry) *BilanUpdateOne {
	_u.mutation.SetGraphicProfile(v)
	return _u
}

// AppendGraphicProfile appends value to the "graphic_profile" field.
func (_u *BilanUpdateOne) AppendGraphicProfile(v []ide.ProfileEntry) *BilanUpdateOne {
	_u.mutation.AppendGraphicProfile(v)
	return _u
}

// ClearGraphicProfile clears the value of the "graphic_profile" field.
func (_u *BilanUpdateOne) ClearGraphicProfile() *BilanUpdateOne {
	_u.mutation.ClearGraphicProfile()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *BilanUpdateOne) SetStrengths(v []ide.Finding) *BilanUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *BilanUpdateOne) AppendStrengths(v []ide.Finding) *BilanUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *BilanUpdateOne) ClearStrengths() *BilanUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWatchPoints sets the "watch_points" field.
func (_u *BilanUpdateOne) SetWatchPoints(v []ide.Finding) *BilanUpdateOne {
	_u.mutation.SetWatchPoints(v)
	return _u
}

// AppendWatchPoints appends value to the "watch_points" field.
func (_u *BilanUpdateOne) AppendWatchPoints(v []ide.Finding) *BilanUpdateOne {
	_u.mutation.AppendWatchPoints(v)
	return _u
}

// ClearWatchPoints clears the value of the "watch_points" field.
func (_u *BilanUpdateOne) ClearWatchPoints() *BilanUpdateOne {
	_u.mutation.ClearWatchPoints()
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *BilanUpdateOne) SetInterpretation(v string) *BilanUpdateOne {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillableInterpretation(v *string) *BilanUpdateOne {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// SetPractitionerComments sets the "practitioner_comments" field.
func (_u *BilanUpdateOne) SetPractitionerComments(v string) *BilanUpdateOne {
	_u.mutation.SetPractitionerComments(v)
	return _u
}

// SetNillablePractitionerComments sets the "practitioner_comments" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillablePractitionerComments(v *string) *BilanUpdateOne {
	if v != nil {
		_u.SetPractitionerComments(*v)
	}
	return _u
}

// ClearPractitionerComments clears the value of the "practitioner_comments" field.
func (_u *BilanUpdateOne) ClearPractitionerComments() *BilanUpdateOne {
	_u.mutation.ClearPractitionerComments()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *BilanUpdateOne) SetRecommendations(v string) *BilanUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// SetNillableRecommendations sets the "recommendations" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillableRecommendations(v *string) *BilanUpdateOne {
	if v != nil {
		_u.SetRecommendations(*v)
	}
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *BilanUpdateOne) ClearRecommendations() *BilanUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *BilanUpdateOne) SetGeneratedAt(v time.Time) *BilanUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillableGeneratedAt(v *time.Time) *BilanUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *BilanUpdateOne) SetValidatedAt(v time.Time) *BilanUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillableValidatedAt(v *time.Time) *BilanUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *BilanUpdateOne) ClearValidatedAt() *BilanUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetPdfKey sets the "pdf_key" field.
func (_u *BilanUpdateOne) SetPdfKey(v string) *BilanUpdateOne {
	_u.mutation.SetPdfKey(v)
	return _u
}

// SetNillablePdfKey sets the "pdf_key" field if the given value is not nil.
func (_u *BilanUpdateOne) SetNillablePdfKey(v *string) *BilanUpdateOne {
	if v != nil {
		_u.SetPdfKey(*v)
	}
	return _u
}

// ClearPdfKey clears the value of the "pdf_key" field.
func (_u *BilanUpdateOne) ClearPdfKey() *BilanUpdateOne {
	_u.mutation.ClearPdfKey()
	return _u
}

// SetPrescription sets the "prescription" edge to the Prescription entity.
func (_u *BilanUpdateOne) SetPrescription(v *Prescription) *BilanUpdateOne {
	return _u.SetPrescriptionID(v.ID)
}

// Mutation returns the BilanMutation object of the builder.
func (_u *BilanUpdateOne) Mutation() *BilanMutation {
	return _u.mutation
}

// ClearPrescription clears the "prescription" edge to the Prescription entity.
func (_u *BilanUpdateOne) ClearPrescription() *BilanUpdateOne {
	_u.mutation.ClearPrescription()
	return _u
}

// Where appends a list predicates to the BilanUpdate builder.
func (_u *BilanUpdateOne) Where(ps ...predicate.Bilan) *BilanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BilanUpdateOne) Select(field string, fields ...string) *BilanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bilan entity.
func (_u *BilanUpdateOne) Save(ctx context.Context) (*Bilan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BilanUpdateOne) SaveX(ctx context.Context) *Bilan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BilanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BilanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BilanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bilan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BilanUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := bilan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Bilan.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := bilan.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Bilan.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DgScore(); ok {
		if err := bilan.DgScoreValidator(v); err != nil {
			return &ValidationError{Name: "dg_score", err: fmt.Errorf(`repo: validator failed for field "Bilan.dg_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GlobalRisk(); ok {
		if err := bilan.GlobalRiskValidator(v); err != nil {
			return &ValidationError{Name: "global_risk", err: fmt.Errorf(`repo: validator failed for field "Bilan.global_risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DevelopmentalAgeMonths(); ok {
		if err := bilan.DevelopmentalAgeMonthsValidator(v); err != nil {
			return &ValidationError{Name: "developmental_age_months", err: fmt.Errorf(`repo: validator failed for field "Bilan.developmental_age_months": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PdfKey(); ok {
		if err := bilan.PdfKeyValidator(v); err != nil {
			return &ValidationError{Name: "pdf_key", err: fmt.Errorf(`repo: validator failed for field "Bilan.pdf_key": %w`, err)}
		}
	}
	if _u.mutation.PrescriptionCleared() && len(_u.mutation.PrescriptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Bilan.prescription"`)
	}
	return nil
}

func (_u *BilanUpdateOne) sqlSave(ctx context.Context) (_node *Bilan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bilan.Table, bilan.Columns, sqlgraph.NewFieldSpec(bilan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Bilan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bilan.FieldID)
		for _, f := range fields {
			if !bilan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != bilan.FieldID {
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
		_spec.SetField(bilan.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bilan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(bilan.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(bilan.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DetailedScores(); ok {
		_spec.SetField(bilan.FieldDetailedScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DgScore(); ok {
		_spec.SetField(bilan.FieldDgScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDgScore(); ok {
		_spec.AddField(bilan.FieldDgScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GlobalRisk(); ok {
		_spec.SetField(bilan.FieldGlobalRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DevelopmentalAgeMonths(); ok {
		_spec.SetField(bilan.FieldDevelopmentalAgeMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDevelopmentalAgeMonths(); ok {
		_spec.AddField(bilan.FieldDevelopmentalAgeMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GraphicProfile(); ok {
		_spec.SetField(bilan.FieldGraphicProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGraphicProfile(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bilan.FieldGraphicProfile, value)
		})
	}
	if _u.mutation.GraphicProfileCleared() {
		_spec.ClearField(bilan.FieldGraphicProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(bilan.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bilan.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(bilan.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.WatchPoints(); ok {
		_spec.SetField(bilan.FieldWatchPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWatchPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bilan.FieldWatchPoints, value)
		})
	}
	if _u.mutation.WatchPointsCleared() {
		_spec.ClearField(bilan.FieldWatchPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(bilan.FieldInterpretation, field.TypeString, value)
	}
	if value, ok := _u.mutation.PractitionerComments(); ok {
		_spec.SetField(bilan.FieldPractitionerComments, field.TypeString, value)
	}
	if _u.mutation.PractitionerCommentsCleared() {
		_spec.ClearField(bilan.FieldPractitionerComments, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(bilan.FieldRecommendations, field.TypeString, value)
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(bilan.FieldRecommendations, field.TypeString)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(bilan.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(bilan.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(bilan.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PdfKey(); ok {
		_spec.SetField(bilan.FieldPdfKey, field.TypeString, value)
	}
	if _u.mutation.PdfKeyCleared() {
		_spec.ClearField(bilan.FieldPdfKey, field.TypeString)
	}
	if _u.mutation.PrescriptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bilan.PrescriptionTable,
			Columns: []string{bilan.PrescriptionColumn},
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
			Table:   bilan.PrescriptionTable,
			Columns: []string{bilan.PrescriptionColumn},
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
	_node = &Bilan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bilan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
