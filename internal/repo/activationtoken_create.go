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
)

// ActivationTokenCreate is the builder for creating a ActivationToken entity.
type ActivationTokenCreate struct {
	config
	mutation *ActivationTokenMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivationTokenCreate) SetCreatedAt(v time.Time) *ActivationTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivationTokenCreate) SetNillableCreatedAt(v *time.Time) *ActivationTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *ActivationTokenCreate) SetPatientID(v uuid.UUID) *ActivationTokenCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTokenHash sets the "token_hash" field.
func (_c *ActivationTokenCreate) SetTokenHash(v string) *ActivationTokenCreate {
	_c.mutation.SetTokenHash(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ActivationTokenCreate) SetExpiresAt(v time.Time) *ActivationTokenCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *ActivationTokenCreate) SetUsedAt(v time.Time) *ActivationTokenCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_c *ActivationTokenCreate) SetNillableUsedAt(v *time.Time) *ActivationTokenCreate {
	if v != nil {
		_c.SetUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActivationTokenCreate) SetID(v uuid.UUID) *ActivationTokenCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ActivationTokenCreate) SetNillableID(v *uuid.UUID) *ActivationTokenCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *ActivationTokenCreate) SetPatient(v *Patient) *ActivationTokenCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the ActivationTokenMutation object of the builder.
func (_c *ActivationTokenCreate) Mutation() *ActivationTokenMutation {
	return _c.mutation
}

// Save creates the ActivationToken in the database.
func (_c *ActivationTokenCreate) Save(ctx context.Context) (*ActivationToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivationTokenCreate) SaveX(ctx context.Context) *ActivationToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivationTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivationTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivationTokenCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activationtoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := activationtoken.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivationTokenCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ActivationToken.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "ActivationToken.patient_id"`)}
	}
	if _, ok := _c.mutation.TokenHash(); !ok {
		return &ValidationError{Name: "token_hash", err: errors.New(`repo: missing required field "ActivationToken.token_hash"`)}
	}
	if v, ok := _c.mutation.TokenHash(); ok {
		if err := activationtoken.TokenHashValidator(v); err != nil {
			return &ValidationError{Name: "token_hash", err: fmt.Errorf(`repo: validator failed for field "ActivationToken.token_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`repo: missing required field "ActivationToken.expires_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "ActivationToken.patient"`)}
	}
	return nil
}

func (_c *ActivationTokenCreate) sqlSave(ctx context.Context) (*ActivationToken, error) {
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

func (_c *ActivationTokenCreate) createSpec() (*ActivationToken, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivationToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activationtoken.Table, sqlgraph.NewFieldSpec(activationtoken.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activationtoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TokenHash(); ok {
		_spec.SetField(activationtoken.FieldTokenHash, field.TypeString, value)
		_node.TokenHash = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(activationtoken.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(activationtoken.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivationToken.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivationTokenUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivationTokenCreate) OnConflict(opts ...sql.ConflictOption) *ActivationTokenUpsertOne {
	_c.conflict = opts
	return &ActivationTokenUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivationToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivationTokenCreate) OnConflictColumns(columns ...string) *ActivationTokenUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivationTokenUpsertOne{
		create: _c,
	}
}

type (
	// ActivationTokenUpsertOne is the builder for "upsert"-ing
	//  one ActivationToken node.
	ActivationTokenUpsertOne struct {
		create *ActivationTokenCreate
	}

	// ActivationTokenUpsert is the "OnConflict" setter.
	ActivationTokenUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *ActivationTokenUpsert) SetPatientID(v uuid.UUID) *ActivationTokenUpsert {
	u.Set(activationtoken.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ActivationTokenUpsert) UpdatePatientID() *ActivationTokenUpsert {
	u.SetExcluded(activationtoken.FieldPatientID)
	return u
}

// SetTokenHash sets the "token_hash" field.
func (u *ActivationTokenUpsert) SetTokenHash(v string) *ActivationTokenUpsert {
	u.Set(activationtoken.FieldTokenHash, v)
	return u
}

// UpdateTokenHash sets the "token_hash" field to the value that was provided on create.
func (u *ActivationTokenUpsert) UpdateTokenHash() *ActivationTokenUpsert {
	u.SetExcluded(activationtoken.FieldTokenHash)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ActivationTokenUpsert) SetExpiresAt(v time.Time) *ActivationTokenUpsert {
	u.Set(activationtoken.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ActivationTokenUpsert) UpdateExpiresAt() *ActivationTokenUpsert {
	u.SetExcluded(activationtoken.FieldExpiresAt)
	return u
}

// SetUsedAt sets the "used_at" field.
func (u *ActivationTokenUpsert) SetUsedAt(v time.Time) *ActivationTokenUpsert {
	u.Set(activationtoken.FieldUsedAt, v)
	return u
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *ActivationTokenUpsert) UpdateUsedAt() *ActivationTokenUpsert {
	u.SetExcluded(activationtoken.FieldUsedAt)
	return u
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *ActivationTokenUpsert) ClearUsedAt() *ActivationTokenUpsert {
	u.SetNull(activationtoken.FieldUsedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActivationToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activationtoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivationTokenUpsertOne) UpdateNewValues() *ActivationTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(activationtoken.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(activationtoken.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivationToken.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActivationTokenUpsertOne) Ignore() *ActivationTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivationTokenUpsertOne) DoNothing() *ActivationTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivationTokenCreate.OnConflict
// documentation for more info.
func (u *ActivationTokenUpsertOne) Update(set func(*ActivationTokenUpsert)) *ActivationTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivationTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ActivationTokenUpsertOne) SetPatientID(v uuid.UUID) *ActivationTokenUpsertOne {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ActivationTokenUpsertOne) UpdatePatientID() *ActivationTokenUpsertOne {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.UpdatePatientID()
	})
}

// SetTokenHash sets the "token_hash" field.
func (u *ActivationTokenUpsertOne) SetTokenHash(v string) *ActivationTokenUpsertOne {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.SetTokenHash(v)
	})
}

// UpdateTokenHash sets the "token_hash" field to the value that was provided on create.
func (u *ActivationTokenUpsertOne) UpdateTokenHash() *ActivationTokenUpsertOne {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.UpdateTokenHash()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ActivationTokenUpsertOne) SetExpiresAt(v time.Time) *ActivationTokenUpsertOne {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ActivationTokenUpsertOne) UpdateExpiresAt() *ActivationTokenUpsertOne {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *ActivationTokenUpsertOne) SetUsedAt(v time.Time) *ActivationTokenUpsertOne {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *ActivationTokenUpsertOne) UpdateUsedAt() *ActivationTokenUpsertOne {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.UpdateUsedAt()
	})
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *ActivationTokenUpsertOne) ClearUsedAt() *ActivationTokenUpsertOne {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.ClearUsedAt()
	})
}

// Exec executes the query.
func (u *ActivationTokenUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivationTokenCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivationTokenUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActivationTokenUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ActivationTokenUpsertOne.ID is not supported by MySQL driver. Use ActivationTokenUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActivationTokenUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActivationTokenCreateBulk is the builder for creating many ActivationToken entities in bulk.
type ActivationTokenCreateBulk struct {
	config
	err      error
	builders []*ActivationTokenCreate
	conflict []sql.ConflictOption
}

// Save creates the ActivationToken entities in the database.
func (_c *ActivationTokenCreateBulk) Save(ctx context.Context) ([]*ActivationToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivationToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivationTokenMutation)
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
func (_c *ActivationTokenCreateBulk) SaveX(ctx context.Context) []*ActivationToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivationTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivationTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivationToken.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivationTokenUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivationTokenCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActivationTokenUpsertBulk {
	_c.conflict = opts
	return &ActivationTokenUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivationToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivationTokenCreateBulk) OnConflictColumns(columns ...string) *ActivationTokenUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivationTokenUpsertBulk{
		create: _c,
	}
}

// ActivationTokenUpsertBulk is the builder for "upsert"-ing
// a bulk of ActivationToken nodes.
type ActivationTokenUpsertBulk struct {
	create *ActivationTokenCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActivationToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activationtoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivationTokenUpsertBulk) UpdateNewValues() *ActivationTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(activationtoken.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(activationtoken.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivationToken.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActivationTokenUpsertBulk) Ignore() *ActivationTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivationTokenUpsertBulk) DoNothing() *ActivationTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivationTokenCreateBulk.OnConflict
// documentation for more info.
func (u *ActivationTokenUpsertBulk) Update(set func(*ActivationTokenUpsert)) *ActivationTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivationTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ActivationTokenUpsertBulk) SetPatientID(v uuid.UUID) *ActivationTokenUpsertBulk {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ActivationTokenUpsertBulk) UpdatePatientID() *ActivationTokenUpsertBulk {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.UpdatePatientID()
	})
}

// SetTokenHash sets the "token_hash" field.
func (u *ActivationTokenUpsertBulk) SetTokenHash(v string) *ActivationTokenUpsertBulk {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.SetTokenHash(v)
	})
}

// UpdateTokenHash sets the "token_hash" field to the value that was provided on create.
func (u *ActivationTokenUpsertBulk) UpdateTokenHash() *ActivationTokenUpsertBulk {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.UpdateTokenHash()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ActivationTokenUpsertBulk) SetExpiresAt(v time.Time) *ActivationTokenUpsertBulk {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ActivationTokenUpsertBulk) UpdateExpiresAt() *ActivationTokenUpsertBulk {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *ActivationTokenUpsertBulk) SetUsedAt(v time.Time) *ActivationTokenUpsertBulk {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *ActivationTokenUpsertBulk) UpdateUsedAt() *ActivationTokenUpsertBulk {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.UpdateUsedAt()
	})
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *ActivationTokenUpsertBulk) ClearUsedAt() *ActivationTokenUpsertBulk {
	return u.Update(func(s *ActivationTokenUpsert) {
		s.ClearUsedAt()
	})
}

// Exec executes the query.
func (u *ActivationTokenUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ActivationTokenCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivationTokenCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivationTokenUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
