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
	"github.com/ortholab/depisto_backend/internal/repo/bilan"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
)

// BilanCreate is the builder for creating a Bilan entity.
type BilanCreate struct {
	config
	mutation *BilanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BilanCreate) SetCreatedAt(v time.Time) *BilanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BilanCreate) SetNillableCreatedAt(v *time.Time) *BilanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BilanCreate) SetUpdatedAt(v time.Time) *BilanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BilanCreate) SetNillableUpdatedAt(v *time.Time) *BilanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPrescriptionID sets the "prescription_id" field.
func (_c *BilanCreate) SetPrescriptionID(v uuid.UUID) *BilanCreate {
	_c.mutation.SetPrescriptionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BilanCreate) SetStatus(v bilan.Status) *BilanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BilanCreate) SetNillableStatus(v *bilan.Status) *BilanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *BilanCreate) SetVersion(v int) *BilanCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetDetailedScores sets the "detailed_scores" field.
func (_c *BilanCreate) SetDetailedScores(v ide.ScoreSet) *BilanCreate {
	_c.mutation.SetDetailedScores(v)
	return _c
}

// SetDgScore sets the "dg_score" field.
func (_c *BilanCreate) SetDgScore(v int) *BilanCreate {
	_c.mutation.SetDgScore(v)
	return _c
}

// SetGlobalRisk sets the "global_risk" field.
func (_c *BilanCreate) SetGlobalRisk(v bilan.GlobalRisk) *BilanCreate {
	_c.mutation.SetGlobalRisk(v)
	return _c
}

// SetDevelopmentalAgeMonths sets the "developmental_age_months" field.
func (_c *BilanCreate) SetDevelopmentalAgeMonths(v int) *BilanCreate {
	_c.mutation.SetDevelopmentalAgeMonths(v)
	return _c
}

// SetGraphicProfile sets the "graphic_profile" field.
func (_c *BilanCreate) SetGraphicProfile(v []ide.ProfileEntry) *BilanCreate {
	_c.mutation.SetGraphicProfile(v)
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *BilanCreate) SetStrengths(v []ide.Finding) *BilanCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetWatchPoints sets the "watch_points" field.
func (_c *BilanCreate) SetWatchPoints(v []ide.Finding) *BilanCreate {
	_c.mutation.SetWatchPoints(v)
	return _c
}

// SetInterpretation sets the "interpretation" field.
func (_c *BilanCreate) SetInterpretation(v string) *BilanCreate {
	_c.mutation.SetInterpretation(v)
	return _c
}

// SetPractitionerComments sets the "practitioner_comments" field.
func (_c *BilanCreate) SetPractitionerComments(v string) *BilanCreate {
	_c.mutation.SetPractitionerComments(v)
	return _c
}

// SetNillablePractitionerComments sets the "practitioner_comments" field if the given value is not nil.
func (_c *BilanCreate) SetNillablePractitionerComments(v *string) *BilanCreate {
	if v != nil {
		_c.SetPractitionerComments(*v)
	}
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *BilanCreate) SetRecommendations(v string) *BilanCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetNillableRecommendations sets the "recommendations" field if the given value is not nil.
func (_c *BilanCreate) SetNillableRecommendations(v *string) *BilanCreate {
	if v != nil {
		_c.SetRecommendations(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *BilanCreate) SetGeneratedAt(v time.Time) *BilanCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *BilanCreate) SetValidatedAt(v time.Time) *BilanCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *BilanCreate) SetNillableValidatedAt(v *time.Time) *BilanCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetPdfKey sets the "pdf_key" field.
func (_c *BilanCreate) SetPdfKey(v string) *BilanCreate {
	_c.mutation.SetPdfKey(v)
	return _c
}

// SetNillablePdfKey sets the "pdf_key" field if the given value is not nil.
func (_c *BilanCreate) SetNillablePdfKey(v *string) *BilanCreate {
	if v != nil {
		_c.SetPdfKey(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BilanCreate) SetID(v uuid.UUID) *BilanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BilanCreate) SetNillableID(v *uuid.UUID) *BilanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPrescription sets the "prescription" edge to the Prescription entity.
func (_c *BilanCreate) SetPrescription(v *Prescription) *BilanCreate {
	return _c.SetPrescriptionID(v.ID)
}

// Mutation returns the BilanMutation object of the builder.
func (_c *BilanCreate) Mutation() *BilanMutation {
	return _c.mutation
}

// Save creates the Bilan in the database.
func (_c *BilanCreate) Save(ctx context.Context) (*Bilan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BilanCreate) SaveX(ctx context.Context) *Bilan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BilanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BilanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BilanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bilan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bilan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := bilan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bilan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BilanCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Bilan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Bilan.updated_at"`)}
	}
	if _, ok := _c.mutation.PrescriptionID(); !ok {
		return &ValidationError{Name: "prescription_id", err: errors.New(`repo: missing required field "Bilan.prescription_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Bilan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bilan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Bilan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`repo: missing required field "Bilan.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := bilan.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`repo: validator failed for field "Bilan.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetailedScores(); !ok {
		return &ValidationError{Name: "detailed_scores", err: errors.New(`repo: missing required field "Bilan.detailed_scores"`)}
	}
	if _, ok := _c.mutation.DgScore(); !ok {
		return &ValidationError{Name: "dg_score", err: errors.New(`repo: missing required field "Bilan.dg_score"`)}
	}
	if v, ok := _c.mutation.DgScore(); ok {
		if err := bilan.DgScoreValidator(v); err != nil {
			return &ValidationError{Name: "dg_score", err: fmt.Errorf(`repo: validator failed for field "Bilan.dg_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GlobalRisk(); !ok {
		return &ValidationError{Name: "global_risk", err: errors.New(`repo: missing required field "Bilan.global_risk"`)}
	}
	if v, ok := _c.mutation.GlobalRisk(); ok {
		if err := bilan.GlobalRiskValidator(v); err != nil {
			return &ValidationError{Name: "global_risk", err: fmt.Errorf(`repo: validator failed for field "Bilan.global_risk": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DevelopmentalAgeMonths(); !ok {
		return &ValidationError{Name: "developmental_age_months", err: errors.New(`repo: missing required field "Bilan.developmental_age_months"`)}
	}
	if v, ok := _c.mutation.DevelopmentalAgeMonths(); ok {
		if err := bilan.DevelopmentalAgeMonthsValidator(v); err != nil {
			return &ValidationError{Name: "developmental_age_months", err: fmt.Errorf(`repo: validator failed for field "Bilan.developmental_age_months": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Interpretation(); !ok {
		return &ValidationError{Name: "interpretation", err: errors.New(`repo: missing required field "Bilan.interpretation"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`repo: missing required field "Bilan.generated_at"`)}
	}
	if v, ok := _c.mutation.PdfKey(); ok {
		if err := bilan.PdfKeyValidator(v); err != nil {
			return &ValidationError{Name: "pdf_key", err: fmt.Errorf(`repo: validator failed for field "Bilan.pdf_key": %w`, err)}
		}
	}
	if len(_c.mutation.PrescriptionIDs()) == 0 {
		return &ValidationError{Name: "prescription", err: errors.New(`repo: missing required edge "Bilan.prescription"`)}
	}
	return nil
}

func (_c *BilanCreate) sqlSave(ctx context.Context) (*Bilan, error) {
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

func (_c *BilanCreate) createSpec() (*Bilan, *sqlgraph.CreateSpec) {
	var (
		_node = &Bilan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bilan.Table, sqlgraph.NewFieldSpec(bilan.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bilan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bilan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bilan.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(bilan.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.DetailedScores(); ok {
		_spec.SetField(bilan.FieldDetailedScores, field.TypeJSON, value)
		_node.DetailedScores = value
	}
	if value, ok := _c.mutation.DgScore(); ok {
		_spec.SetField(bilan.FieldDgScore, field.TypeInt, value)
		_node.DgScore = value
	}
	if value, ok := _c.mutation.GlobalRisk(); ok {
		_spec.SetField(bilan.FieldGlobalRisk, field.TypeEnum, value)
		_node.GlobalRisk = value
	}
	if value, ok := _c.mutation.DevelopmentalAgeMonths(); ok {
		_spec.SetField(bilan.FieldDevelopmentalAgeMonths, field.TypeInt, value)
		_node.DevelopmentalAgeMonths = value
	}
	if value, ok := _c.mutation.GraphicProfile(); ok {
		_spec.SetField(bilan.FieldGraphicProfile, field.TypeJSON, value)
		_node.GraphicProfile = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(bilan.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.WatchPoints(); ok {
		_spec.SetField(bilan.FieldWatchPoints, field.TypeJSON, value)
		_node.WatchPoints = value
	}
	if value, ok := _c.mutation.Interpretation(); ok {
		_spec.SetField(bilan.FieldInterpretation, field.TypeString, value)
		_node.Interpretation = value
	}
	if value, ok := _c.mutation.PractitionerComments(); ok {
		_spec.SetField(bilan.FieldPractitionerComments, field.TypeString, value)
		_node.PractitionerComments = &value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(bilan.FieldRecommendations, field.TypeString, value)
		_node.Recommendations = &value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(bilan.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(bilan.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if value, ok := _c.mutation.PdfKey(); ok {
		_spec.SetField(bilan.FieldPdfKey, field.TypeString, value)
		_node.PdfKey = &value
	}
	if nodes := _c.mutation.PrescriptionIDs(); len(nodes) > 0 {
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
		_node.PrescriptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Bilan.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BilanUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BilanCreate) OnConflict(opts ...sql.ConflictOption) *BilanUpsertOne {
	_c.conflict = opts
	return &BilanUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Bilan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BilanCreate) OnConflictColumns(columns ...string) *BilanUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BilanUpsertOne{
		create: _c,
	}
}

type (
	// BilanUpsertOne is the builder for "upsert"-ing
	//  one Bilan node.
	BilanUpsertOne struct {
		create *BilanCreate
	}

	// BilanUpsert is the "OnConflict" setter.
	BilanUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BilanUpsert) SetUpdatedAt(v time.Time) *BilanUpsert {
	u.Set(bilan.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BilanUpsert) UpdateUpdatedAt() *BilanUpsert {
	u.SetExcluded(bilan.FieldUpdatedAt)
	return u
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *BilanUpsert) SetPrescriptionID(v uuid.UUID) *BilanUpsert {
	u.Set(bilan.FieldPrescriptionID, v)
	return u
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *BilanUpsert) UpdatePrescriptionID() *BilanUpsert {
	u.SetExcluded(bilan.FieldPrescriptionID)
	return u
}

// SetStatus sets the "status" field.
func (u *BilanUpsert) SetStatus(v bilan.Status) *BilanUpsert {
	u.Set(bilan.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BilanUpsert) UpdateStatus() *BilanUpsert {
	u.SetExcluded(bilan.FieldStatus)
	return u
}

// SetVersion sets the "version" field.
func (u *BilanUpsert) SetVersion(v int) *BilanUpsert {
	u.Set(bilan.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BilanUpsert) UpdateVersion() *BilanUpsert {
	u.SetExcluded(bilan.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *BilanUpsert) AddVersion(v int) *BilanUpsert {
	u.Add(bilan.FieldVersion, v)
	return u
}

// SetDetailedScores sets the "detailed_scores" field.
func (u *BilanUpsert) SetDetailedScores(v ide.ScoreSet) *BilanUpsert {
	u.Set(bilan.FieldDetailedScores, v)
	return u
}

// UpdateDetailedScores sets the "detailed_scores" field to the value that was provided on create.
func (u *BilanUpsert) UpdateDetailedScores() *BilanUpsert {
	u.SetExcluded(bilan.FieldDetailedScores)
	return u
}

// SetDgScore sets the "dg_score" field.
func (u *BilanUpsert) SetDgScore(v int) *BilanUpsert {
	u.Set(bilan.FieldDgScore, v)
	return u
}

// UpdateDgScore sets the "dg_score" field to the value that was provided on create.
func (u *BilanUpsert) UpdateDgScore() *BilanUpsert {
	u.SetExcluded(bilan.FieldDgScore)
	return u
}

// AddDgScore adds v to the "dg_score" field.
func (u *BilanUpsert) AddDgScore(v int) *BilanUpsert {
	u.Add(bilan.FieldDgScore, v)
	return u
}

// SetGlobalRisk sets the "global_risk" field.
func (u *BilanUpsert) SetGlobalRisk(v bilan.GlobalRisk) *BilanUpsert {
	u.Set(bilan.FieldGlobalRisk, v)
	return u
}

// UpdateGlobalRisk sets the "global_risk" field to the value that was provided on create.
func (u *BilanUpsert) UpdateGlobalRisk() *BilanUpsert {
	u.SetExcluded(bilan.FieldGlobalRisk)
	return u
}

// SetDevelopmentalAgeMonths sets the "developmental_age_months" field.
func (u *BilanUpsert) SetDevelopmentalAgeMonths(v int) *BilanUpsert {
	u.Set(bilan.FieldDevelopmentalAgeMonths, v)
	return u
}

// UpdateDevelopmentalAgeMonths sets the "developmental_age_months" field to the value that was provided on create.
func (u *BilanUpsert) UpdateDevelopmentalAgeMonths() *BilanUpsert {
	u.SetExcluded(bilan.FieldDevelopmentalAgeMonths)
	return u
}

// AddDevelopmentalAgeMonths adds v to the "developmental_age_months" field.
func (u *BilanUpsert) AddDevelopmentalAgeMonths(v int) *BilanUpsert {
	u.Add(bilan.FieldDevelopmentalAgeMonths, v)
	return u
}

// SetGraphicProfile sets the "graphic_profile" field.
func (u *BilanUpsert) SetGraphicProfile(v []ide.ProfileEntry) *BilanUpsert {
	u.Set(bilan.FieldGraphicProfile, v)
	return u
}

// UpdateGraphicProfile sets the "graphic_profile" field to the value that was provided on create.
func (u *BilanUpsert) UpdateGraphicProfile() *BilanUpsert {
	u.SetExcluded(bilan.FieldGraphicProfile)
	return u
}

// ClearGraphicProfile clears the value of the "graphic_profile" field.
func (u *BilanUpsert) ClearGraphicProfile() *BilanUpsert {
	u.SetNull(bilan.FieldGraphicProfile)
	return u
}

// SetStrengths sets the "strengths" field.
func (u *BilanUpsert) SetStrengths(v []ide.Finding) *BilanUpsert {
	u.Set(bilan.FieldStrengths, v)
	return u
}

// UpdateStrengths sets the "strengths" field to the value that was provided on create.
func (u *BilanUpsert) UpdateStrengths() *BilanUpsert {
	u.SetExcluded(bilan.FieldStrengths)
	return u
}

// ClearStrengths clears the value of the "strengths" field.
func (u *BilanUpsert) ClearStrengths() *BilanUpsert {
	u.SetNull(bilan.FieldStrengths)
	return u
}

// SetWatchPoints sets the "watch_points" field.
func (u *BilanUpsert) SetWatchPoints(v []ide.Finding) *BilanUpsert {
	u.Set(bilan.FieldWatchPoints, v)
	return u
}

// UpdateWatchPoints sets the "watch_points" field to the value that was provided on create.
func (u *BilanUpsert) UpdateWatchPoints() *BilanUpsert {
	u.SetExcluded(bilan.FieldWatchPoints)
	return u
}

// ClearWatchPoints clears the value of the "watch_points" field.
func (u *BilanUpsert) ClearWatchPoints() *BilanUpsert {
	u.SetNull(bilan.FieldWatchPoints)
	return u
}

// SetInterpretation sets the "interpretation" field.
func (u *BilanUpsert) SetInterpretation(v string) *BilanUpsert {
	u.Set(bilan.FieldInterpretation, v)
	return u
}

// UpdateInterpretation sets the "interpretation" field to the value that was provided on create.
func (u *BilanUpsert) UpdateInterpretation() *BilanUpsert {
	u.SetExcluded(bilan.FieldInterpretation)
	return u
}

// SetPractitionerComments sets the "practitioner_comments" field.
func (u *BilanUpsert) SetPractitionerComments(v string) *BilanUpsert {
	u.Set(bilan.FieldPractitionerComments, v)
	return u
}

// UpdatePractitionerComments sets the "practitioner_comments" field to the value that was provided on create.
func (u *BilanUpsert) UpdatePractitionerComments() *BilanUpsert {
	u.SetExcluded(bilan.FieldPractitionerComments)
	return u
}

// ClearPractitionerComments clears the value of the "practitioner_comments" field.
func (u *BilanUpsert) ClearPractitionerComments() *BilanUpsert {
	u.SetNull(bilan.FieldPractitionerComments)
	return u
}

// SetRecommendations sets the "recommendations" field.
func (u *BilanUpsert) SetRecommendations(v string) *BilanUpsert {
	u.Set(bilan.FieldRecommendations, v)
	return u
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *BilanUpsert) UpdateRecommendations() *BilanUpsert {
	u.SetExcluded(bilan.FieldRecommendations)
	return u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *BilanUpsert) ClearRecommendations() *BilanUpsert {
	u.SetNull(bilan.FieldRecommendations)
	return u
}

// SetGeneratedAt sets the "generated_at" field.
func (u *BilanUpsert) SetGeneratedAt(v time.Time) *BilanUpsert {
	u.Set(bilan.FieldGeneratedAt, v)
	return u
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *BilanUpsert) UpdateGeneratedAt() *BilanUpsert {
	u.SetExcluded(bilan.FieldGeneratedAt)
	return u
}

// SetValidatedAt sets the "validated_at" field.
func (u *BilanUpsert) SetValidatedAt(v time.Time) *BilanUpsert {
	u.Set(bilan.FieldValidatedAt, v)
	return u
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *BilanUpsert) UpdateValidatedAt() *BilanUpsert {
	u.SetExcluded(bilan.FieldValidatedAt)
	return u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *BilanUpsert) ClearValidatedAt() *BilanUpsert {
	u.SetNull(bilan.FieldValidatedAt)
	return u
}

// SetPdfKey sets the "pdf_key" field.
func (u *BilanUpsert) SetPdfKey(v string) *BilanUpsert {
	u.Set(bilan.FieldPdfKey, v)
	return u
}

// UpdatePdfKey sets the "pdf_key" field to the value that was provided on create.
func (u *BilanUpsert) UpdatePdfKey() *BilanUpsert {
	u.SetExcluded(bilan.FieldPdfKey)
	return u
}

// ClearPdfKey clears the value of the "pdf_key" field.
func (u *BilanUpsert) ClearPdfKey() *BilanUpsert {
	u.SetNull(bilan.FieldPdfKey)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Bilan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bilan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BilanUpsertOne) UpdateNewValues() *BilanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(bilan.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(bilan.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Bilan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BilanUpsertOne) Ignore() *BilanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BilanUpsertOne) DoNothing() *BilanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BilanCreate.OnConflict
// documentation for more info.
func (u *BilanUpsertOne) Update(set func(*BilanUpsert)) *BilanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BilanUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BilanUpsertOne) SetUpdatedAt(v time.Time) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateUpdatedAt() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *BilanUpsertOne) SetPrescriptionID(v uuid.UUID) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdatePrescriptionID() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdatePrescriptionID()
	})
}

// SetStatus sets the "status" field.
func (u *BilanUpsertOne) SetStatus(v bilan.Status) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateStatus() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateStatus()
	})
}

// SetVersion sets the "version" field.
func (u *BilanUpsertOne) SetVersion(v int) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *BilanUpsertOne) AddVersion(v int) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateVersion() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateVersion()
	})
}

// SetDetailedScores sets the "detailed_scores" field.
func (u *BilanUpsertOne) SetDetailedScores(v ide.ScoreSet) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetDetailedScores(v)
	})
}

// UpdateDetailedScores sets the "detailed_scores" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateDetailedScores() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateDetailedScores()
	})
}

// SetDgScore sets the "dg_score" field.
func (u *BilanUpsertOne) SetDgScore(v int) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetDgScore(v)
	})
}

// AddDgScore adds v to the "dg_score" field.
func (u *BilanUpsertOne) AddDgScore(v int) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.AddDgScore(v)
	})
}

// UpdateDgScore sets the "dg_score" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateDgScore() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateDgScore()
	})
}

// SetGlobalRisk sets the "global_risk" field.
func (u *BilanUpsertOne) SetGlobalRisk(v bilan.GlobalRisk) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetGlobalRisk(v)
	})
}

// UpdateGlobalRisk sets the "global_risk" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateGlobalRisk() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateGlobalRisk()
	})
}

// SetDevelopmentalAgeMonths sets the "developmental_age_months" field.
func (u *BilanUpsertOne) SetDevelopmentalAgeMonths(v int) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetDevelopmentalAgeMonths(v)
	})
}

// AddDevelopmentalAgeMonths adds v to the "developmental_age_months" field.
func (u *BilanUpsertOne) AddDevelopmentalAgeMonths(v int) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.AddDevelopmentalAgeMonths(v)
	})
}

// UpdateDevelopmentalAgeMonths sets the "developmental_age_months" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateDevelopmentalAgeMonths() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateDevelopmentalAgeMonths()
	})
}

// SetGraphicProfile sets the "graphic_profile" field.
func (u *BilanUpsertOne) SetGraphicProfile(v []ide.ProfileEntry) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetGraphicProfile(v)
	})
}

// UpdateGraphicProfile sets the "graphic_profile" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateGraphicProfile() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateGraphicProfile()
	})
}

// ClearGraphicProfile clears the value of the "graphic_profile" field.
func (u *BilanUpsertOne) ClearGraphicProfile() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.ClearGraphicProfile()
	})
}

// SetStrengths sets the "strengths" field.
func (u *BilanUpsertOne) SetStrengths(v []ide.Finding) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetStrengths(v)
	})
}

// UpdateStrengths sets the "strengths" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateStrengths() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateStrengths()
	})
}

// ClearStrengths clears the value of the "strengths" field.
func (u *BilanUpsertOne) ClearStrengths() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.ClearStrengths()
	})
}

// SetWatchPoints sets the "watch_points" field.
func (u *BilanUpsertOne) SetWatchPoints(v []ide.Finding) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetWatchPoints(v)
	})
}

// UpdateWatchPoints sets the "watch_points" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateWatchPoints() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateWatchPoints()
	})
}

// ClearWatchPoints clears the value of the "watch_points" field.
func (u *BilanUpsertOne) ClearWatchPoints() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.ClearWatchPoints()
	})
}

// SetInterpretation sets the "interpretation" field.
func (u *BilanUpsertOne) SetInterpretation(v string) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetInterpretation(v)
	})
}

// UpdateInterpretation sets the "interpretation" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateInterpretation() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateInterpretation()
	})
}

// SetPractitionerComments sets the "practitioner_comments" field.
func (u *BilanUpsertOne) SetPractitionerComments(v string) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetPractitionerComments(v)
	})
}

// UpdatePractitionerComments sets the "practitioner_comments" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdatePractitionerComments() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdatePractitionerComments()
	})
}

// ClearPractitionerComments clears the value of the "practitioner_comments" field.
func (u *BilanUpsertOne) ClearPractitionerComments() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.ClearPractitionerComments()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *BilanUpsertOne) SetRecommendations(v string) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateRecommendations() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *BilanUpsertOne) ClearRecommendations() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.ClearRecommendations()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *BilanUpsertOne) SetGeneratedAt(v time.Time) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateGeneratedAt() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateGeneratedAt()
	})
}

// SetValidatedAt sets the "validated_at" field.
func (u *BilanUpsertOne) SetValidatedAt(v time.Time) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetValidatedAt(v)
	})
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdateValidatedAt() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateValidatedAt()
	})
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *BilanUpsertOne) ClearValidatedAt() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.ClearValidatedAt()
	})
}

// SetPdfKey sets the "pdf_key" field.
func (u *BilanUpsertOne) SetPdfKey(v string) *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.SetPdfKey(v)
	})
}

// UpdatePdfKey sets the "pdf_key" field to the value that was provided on create.
func (u *BilanUpsertOne) UpdatePdfKey() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.UpdatePdfKey()
	})
}

// ClearPdfKey clears the value of the "pdf_key" field.
func (u *BilanUpsertOne) ClearPdfKey() *BilanUpsertOne {
	return u.Update(func(s *BilanUpsert) {
		s.ClearPdfKey()
	})
}

// Exec executes the query.
func (u *BilanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BilanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BilanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BilanUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BilanUpsertOne.ID is not supported by MySQL driver. Use BilanUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BilanUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BilanCreateBulk is the builder for creating many Bilan entities in bulk.
type BilanCreateBulk struct {
	config
	err      error
	builders []*BilanCreate
	conflict []sql.ConflictOption
}

// Save creates the Bilan entities in the database.
func (_c *BilanCreateBulk) Save(ctx context.Context) ([]*Bilan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bilan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BilanMutation)
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
func (_c *BilanCreateBulk) SaveX(ctx context.Context) []*Bilan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BilanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BilanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Bilan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BilanUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BilanCreateBulk) OnConflict(opts ...sql.ConflictOption) *BilanUpsertBulk {
	_c.conflict = opts
	return &BilanUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Bilan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BilanCreateBulk) OnConflictColumns(columns ...string) *BilanUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BilanUpsertBulk{
		create: _c,
	}
}

// BilanUpsertBulk is the builder for "upsert"-ing
// a bulk of Bilan nodes.
type BilanUpsertBulk struct {
	create *BilanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Bilan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bilan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BilanUpsertBulk) UpdateNewValues() *BilanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(bilan.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(bilan.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Bilan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BilanUpsertBulk) Ignore() *BilanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BilanUpsertBulk) DoNothing() *BilanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BilanCreateBulk.OnConflict
// documentation for more info.
func (u *BilanUpsertBulk) Update(set func(*BilanUpsert)) *BilanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BilanUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BilanUpsertBulk) SetUpdatedAt(v time.Time) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateUpdatedAt() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPrescriptionID sets the "prescription_id" field.
func (u *BilanUpsertBulk) SetPrescriptionID(v uuid.UUID) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetPrescriptionID(v)
	})
}

// UpdatePrescriptionID sets the "prescription_id" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdatePrescriptionID() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdatePrescriptionID()
	})
}

// SetStatus sets the "status" field.
func (u *BilanUpsertBulk) SetStatus(v bilan.Status) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateStatus() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateStatus()
	})
}

// SetVersion sets the "version" field.
func (u *BilanUpsertBulk) SetVersion(v int) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *BilanUpsertBulk) AddVersion(v int) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateVersion() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateVersion()
	})
}

// SetDetailedScores sets the "detailed_scores" field.
func (u *BilanUpsertBulk) SetDetailedScores(v ide.ScoreSet) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetDetailedScores(v)
	})
}

// UpdateDetailedScores sets the "detailed_scores" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateDetailedScores() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateDetailedScores()
	})
}

// SetDgScore sets the "dg_score" field.
func (u *BilanUpsertBulk) SetDgScore(v int) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetDgScore(v)
	})
}

// AddDgScore adds v to the "dg_score" field.
func (u *BilanUpsertBulk) AddDgScore(v int) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.AddDgScore(v)
	})
}

// UpdateDgScore sets the "dg_score" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateDgScore() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateDgScore()
	})
}

// SetGlobalRisk sets the "global_risk" field.
func (u *BilanUpsertBulk) SetGlobalRisk(v bilan.GlobalRisk) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetGlobalRisk(v)
	})
}

// UpdateGlobalRisk sets the "global_risk" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateGlobalRisk() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateGlobalRisk()
	})
}

// SetDevelopmentalAgeMonths sets the "developmental_age_months" field.
func (u *BilanUpsertBulk) SetDevelopmentalAgeMonths(v int) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetDevelopmentalAgeMonths(v)
	})
}

// AddDevelopmentalAgeMonths adds v to the "developmental_age_months" field.
func (u *BilanUpsertBulk) AddDevelopmentalAgeMonths(v int) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.AddDevelopmentalAgeMonths(v)
	})
}

// UpdateDevelopmentalAgeMonths sets the "developmental_age_months" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateDevelopmentalAgeMonths() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateDevelopmentalAgeMonths()
	})
}

// SetGraphicProfile sets the "graphic_profile" field.
func (u *BilanUpsertBulk) SetGraphicProfile(v []ide.ProfileEntry) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetGraphicProfile(v)
	})
}

// UpdateGraphicProfile sets the "graphic_profile" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateGraphicProfile() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateGraphicProfile()
	})
}

// ClearGraphicProfile clears the value of the "graphic_profile" field.
func (u *BilanUpsertBulk) ClearGraphicProfile() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.ClearGraphicProfile()
	})
}

// SetStrengths sets the "strengths" field.
func (u *BilanUpsertBulk) SetStrengths(v []ide.Finding) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetStrengths(v)
	})
}

// UpdateStrengths sets the "strengths" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateStrengths() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateStrengths()
	})
}

// ClearStrengths clears the value of the "strengths" field.
func (u *BilanUpsertBulk) ClearStrengths() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.ClearStrengths()
	})
}

// SetWatchPoints sets the "watch_points" field.
func (u *BilanUpsertBulk) SetWatchPoints(v []ide.Finding) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetWatchPoints(v)
	})
}

// UpdateWatchPoints sets the "watch_points" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateWatchPoints() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateWatchPoints()
	})
}

// ClearWatchPoints clears the value of the "watch_points" field.
func (u *BilanUpsertBulk) ClearWatchPoints() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.ClearWatchPoints()
	})
}

// SetInterpretation sets the "interpretation" field.
func (u *BilanUpsertBulk) SetInterpretation(v string) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetInterpretation(v)
	})
}

// UpdateInterpretation sets the "interpretation" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateInterpretation() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateInterpretation()
	})
}

// SetPractitionerComments sets the "practitioner_comments" field.
func (u *BilanUpsertBulk) SetPractitionerComments(v string) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetPractitionerComments(v)
	})
}

// UpdatePractitionerComments sets the "practitioner_comments" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdatePractitionerComments() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdatePractitionerComments()
	})
}

// ClearPractitionerComments clears the value of the "practitioner_comments" field.
func (u *BilanUpsertBulk) ClearPractitionerComments() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.ClearPractitionerComments()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *BilanUpsertBulk) SetRecommendations(v string) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateRecommendations() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *BilanUpsertBulk) ClearRecommendations() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.ClearRecommendations()
	})
}

// SetGeneratedAt sets the "generated_at" field.
func (u *BilanUpsertBulk) SetGeneratedAt(v time.Time) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetGeneratedAt(v)
	})
}

// UpdateGeneratedAt sets the "generated_at" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateGeneratedAt() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateGeneratedAt()
	})
}

// SetValidatedAt sets the "validated_at" field.
func (u *BilanUpsertBulk) SetValidatedAt(v time.Time) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetValidatedAt(v)
	})
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdateValidatedAt() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdateValidatedAt()
	})
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *BilanUpsertBulk) ClearValidatedAt() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.ClearValidatedAt()
	})
}

// SetPdfKey sets the "pdf_key" field.
func (u *BilanUpsertBulk) SetPdfKey(v string) *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.SetPdfKey(v)
	})
}

// UpdatePdfKey sets the "pdf_key" field to the value that was provided on create.
func (u *BilanUpsertBulk) UpdatePdfKey() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.UpdatePdfKey()
	})
}

// ClearPdfKey clears the value of the "pdf_key" field.
func (u *BilanUpsertBulk) ClearPdfKey() *BilanUpsertBulk {
	return u.Update(func(s *BilanUpsert) {
		s.ClearPdfKey()
	})
}

// Exec executes the query.
func (u *BilanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BilanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BilanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BilanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
