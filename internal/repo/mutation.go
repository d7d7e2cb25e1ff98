// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo/activationtoken"
	"github.com/ortholab/depisto_backend/internal/repo/bilan"
	"github.com/ortholab/depisto_backend/internal/repo/passation"
	"github.com/ortholab/depisto_backend/internal/repo/patient"
	"github.com/ortholab/depisto_backend/internal/repo/predicate"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/repo/testitem"
	"github.com/ortholab/depisto_backend/internal/repo/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivationToken = "ActivationToken"
	TypeBilan           = "Bilan"
	TypePassation       = "Passation"
	TypePatient         = "Patient"
	TypePrescription    = "Prescription"
	TypeTest            = "Test"
	TypeTestItem        = "TestItem"
	TypeUser            = "User"
)

// ActivationTokenMutation represents an operation that mutates the ActivationToken nodes in the graph.
type ActivationTokenMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	token_hash     *string
	expires_at     *time.Time
	used_at        *time.Time
	clearedFields  map[string]struct{}
	patient        *uuid.UUID
	clearedpatient bool
	done           bool
	oldValue       func(context.Context) (*ActivationToken, error)
	predicates     []predicate.ActivationToken
}

var _ ent.Mutation = (*ActivationTokenMutation)(nil)

// activationtokenOption allows management of the mutation configuration using functional options.
type activationtokenOption func(*ActivationTokenMutation)

// newActivationTokenMutation creates new mutation for the ActivationToken entity.
func newActivationTokenMutation(c config, op Op, opts ...activationtokenOption) *ActivationTokenMutation {
	m := &ActivationTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeActivationToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivationTokenID sets the ID field of the mutation.
func withActivationTokenID(id uuid.UUID) activationtokenOption {
	return func(m *ActivationTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivationToken
		)
		m.oldValue = func(ctx context.Context) (*ActivationToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivationToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivationToken sets the old ActivationToken of the mutation.
func withActivationToken(node *ActivationToken) activationtokenOption {
	return func(m *ActivationTokenMutation) {
		m.oldValue = func(context.Context) (*ActivationToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivationTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivationTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActivationToken entities.
func (m *ActivationTokenMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivationTokenMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivationTokenMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivationToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivationTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivationTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActivationToken entity.
// If the ActivationToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivationTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivationTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *ActivationTokenMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *ActivationTokenMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the ActivationToken entity.
// If the ActivationToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivationTokenMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *ActivationTokenMutation) ResetPatientID() {
	m.patient = nil
}

// SetTokenHash sets the "token_hash" field.
func (m *ActivationTokenMutation) SetTokenHash(s string) {
	m.token_hash = &s
}

// TokenHash returns the value of the "token_hash" field in the mutation.
func (m *ActivationTokenMutation) TokenHash() (r string, exists bool) {
	v := m.token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenHash returns the old "token_hash" field's value of the ActivationToken entity.
// If the ActivationToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivationTokenMutation) OldTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenHash: %w", err)
	}
	return oldValue.TokenHash, nil
}

// ResetTokenHash resets all changes to the "token_hash" field.
func (m *ActivationTokenMutation) ResetTokenHash() {
	m.token_hash = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ActivationTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ActivationTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ActivationToken entity.
// If the ActivationToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivationTokenMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ActivationTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetUsedAt sets the "used_at" field.
func (m *ActivationTokenMutation) SetUsedAt(t time.Time) {
	m.used_at = &t
}

// UsedAt returns the value of the "used_at" field in the mutation.
func (m *ActivationTokenMutation) UsedAt() (r time.Time, exists bool) {
	v := m.used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedAt returns the old "used_at" field's value of the ActivationToken entity.
// If the ActivationToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivationTokenMutation) OldUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedAt: %w", err)
	}
	return oldValue.UsedAt, nil
}

// ClearUsedAt clears the value of the "used_at" field.
func (m *ActivationTokenMutation) ClearUsedAt() {
	m.used_at = nil
	m.clearedFields[activationtoken.FieldUsedAt] = struct{}{}
}

// UsedAtCleared returns if the "used_at" field was cleared in this mutation.
func (m *ActivationTokenMutation) UsedAtCleared() bool {
	_, ok := m.clearedFields[activationtoken.FieldUsedAt]
	return ok
}

// ResetUsedAt resets all changes to the "used_at" field.
func (m *ActivationTokenMutation) ResetUsedAt() {
	m.used_at = nil
	delete(m.clearedFields, activationtoken.FieldUsedAt)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *ActivationTokenMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[activationtoken.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *ActivationTokenMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *ActivationTokenMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *ActivationTokenMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the ActivationTokenMutation builder.
func (m *ActivationTokenMutation) Where(ps ...predicate.ActivationToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivationTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivationTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivationToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivationTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivationTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivationToken).
func (m *ActivationTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivationTokenMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, activationtoken.FieldCreatedAt)
	}
	if m.patient != nil {
		fields = append(fields, activationtoken.FieldPatientID)
	}
	if m.token_hash != nil {
		fields = append(fields, activationtoken.FieldTokenHash)
	}
	if m.expires_at != nil {
		fields = append(fields, activationtoken.FieldExpiresAt)
	}
	if m.used_at != nil {
		fields = append(fields, activationtoken.FieldUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivationTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activationtoken.FieldCreatedAt:
		return m.CreatedAt()
	case activationtoken.FieldPatientID:
		return m.PatientID()
	case activationtoken.FieldTokenHash:
		return m.TokenHash()
	case activationtoken.FieldExpiresAt:
		return m.ExpiresAt()
	case activationtoken.FieldUsedAt:
		return m.UsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivationTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activationtoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case activationtoken.FieldPatientID:
		return m.OldPatientID(ctx)
	case activationtoken.FieldTokenHash:
		return m.OldTokenHash(ctx)
	case activationtoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case activationtoken.FieldUsedAt:
		return m.OldUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActivationToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivationTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activationtoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case activationtoken.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case activationtoken.FieldTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenHash(v)
		return nil
	case activationtoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case activationtoken.FieldUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActivationToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivationTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivationTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivationTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActivationToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivationTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activationtoken.FieldUsedAt) {
		fields = append(fields, activationtoken.FieldUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivationTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivationTokenMutation) ClearField(name string) error {
	switch name {
	case activationtoken.FieldUsedAt:
		m.ClearUsedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivationToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivationTokenMutation) ResetField(name string) error {
	switch name {
	case activationtoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case activationtoken.FieldPatientID:
		m.ResetPatientID()
		return nil
	case activationtoken.FieldTokenHash:
		m.ResetTokenHash()
		return nil
	case activationtoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case activationtoken.FieldUsedAt:
		m.ResetUsedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivationToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivationTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, activationtoken.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivationTokenMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case activationtoken.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivationTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivationTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivationTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, activationtoken.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivationTokenMutation) EdgeCleared(name string) bool {
	switch name {
	case activationtoken.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivationTokenMutation) ClearEdge(name string) error {
	switch name {
	case activationtoken.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown ActivationToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivationTokenMutation) ResetEdge(name string) error {
	switch name {
	case activationtoken.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown ActivationToken edge %s", name)
}

// BilanMutation represents an operation that mutates the Bilan nodes in the graph.
type BilanMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	updated_at                  *time.Time
	status                      *bilan.Status
	version                     *int
	addversion                  *int
	detailed_scores             *ide.ScoreSet
	dg_score                    *int
	adddg_score                 *int
	global_risk                 *bilan.GlobalRisk
	developmental_age_months    *int
	adddevelopmental_age_months *int
	graphic_profile             *[]ide.ProfileEntry
	appendgraphic_profile       []ide.ProfileEntry
	strengths                   *[]ide.Finding
	appendstrengths             []ide.Finding
	watch_points                *[]ide.Finding
	appendwatch_points          []ide.Finding
	interpretation              *string
	practitioner_comments       *string
	recommendations             *string
	generated_at                *time.Time
	validated_at                *time.Time
	pdf_key                     *string
	clearedFields               map[string]struct{}
	prescription                *uuid.UUID
	clearedprescription         bool
	done                        bool
	oldValue                    func(context.Context) (*Bilan, error)
	predicates                  []predicate.Bilan
}

var _ ent.Mutation = (*BilanMutation)(nil)

// bilanOption allows management of the mutation configuration using functional options.
type bilanOption func(*BilanMutation)

// newBilanMutation creates new mutation for the Bilan entity.
func newBilanMutation(c config, op Op, opts ...bilanOption) *BilanMutation {
	m := &BilanMutation{
		config:        c,
		op:            op,
		typ:           TypeBilan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBilanID sets the ID field of the mutation.
func withBilanID(id uuid.UUID) bilanOption {
	return func(m *BilanMutation) {
		var (
			err   error
			once  sync.Once
			value *Bilan
		)
		m.oldValue = func(ctx context.Context) (*Bilan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bilan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBilan sets the old Bilan of the mutation.
func withBilan(node *Bilan) bilanOption {
	return func(m *BilanMutation) {
		m.oldValue = func(context.Context) (*Bilan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BilanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BilanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bilan entities.
func (m *BilanMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BilanMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BilanMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bilan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BilanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BilanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BilanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BilanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BilanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BilanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPrescriptionID sets the "prescription_id" field.
func (m *BilanMutation) SetPrescriptionID(u uuid.UUID) {
	m.prescription = &u
}

// PrescriptionID returns the value of the "prescription_id" field in the mutation.
func (m *BilanMutation) PrescriptionID() (r uuid.UUID, exists bool) {
	v := m.prescription
	if v == nil {
		return
	}
	return *v, true
}

// OldPrescriptionID returns the old "prescription_id" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldPrescriptionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrescriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrescriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrescriptionID: %w", err)
	}
	return oldValue.PrescriptionID, nil
}

// ResetPrescriptionID resets all changes to the "prescription_id" field.
func (m *BilanMutation) ResetPrescriptionID() {
	m.prescription = nil
}

// SetStatus sets the "status" field.
func (m *BilanMutation) SetStatus(b bilan.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BilanMutation) Status() (r bilan.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldStatus(ctx context.Context) (v bilan.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BilanMutation) ResetStatus() {
	m.status = nil
}

// SetVersion sets the "version" field.
func (m *BilanMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *BilanMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *BilanMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *BilanMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *BilanMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetDetailedScores sets the "detailed_scores" field.
func (m *BilanMutation) SetDetailedScores(is ide.ScoreSet) {
	m.detailed_scores = &is
}

// DetailedScores returns the value of the "detailed_scores" field in the mutation.
func (m *BilanMutation) DetailedScores() (r ide.ScoreSet, exists bool) {
	v := m.detailed_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldDetailedScores returns the old "detailed_scores" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldDetailedScores(ctx context.Context) (v ide.ScoreSet, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetailedScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetailedScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetailedScores: %w", err)
	}
	return oldValue.DetailedScores, nil
}

// ResetDetailedScores resets all changes to the "detailed_scores" field.
func (m *BilanMutation) ResetDetailedScores() {
	m.detailed_scores = nil
}

// SetDgScore sets the "dg_score" field.
func (m *BilanMutation) SetDgScore(i int) {
	m.dg_score = &i
	m.adddg_score = nil
}

// DgScore returns the value of the "dg_score" field in the mutation.
func (m *BilanMutation) DgScore() (r int, exists bool) {
	v := m.dg_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDgScore returns the old "dg_score" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldDgScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDgScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDgScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDgScore: %w", err)
	}
	return oldValue.DgScore, nil
}

// AddDgScore adds i to the "dg_score" field.
func (m *BilanMutation) AddDgScore(i int) {
	if m.adddg_score != nil {
		*m.adddg_score += i
	} else {
		m.adddg_score = &i
	}
}

// AddedDgScore returns the value that was added to the "dg_score" field in this mutation.
func (m *BilanMutation) AddedDgScore() (r int, exists bool) {
	v := m.adddg_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetDgScore resets all changes to the "dg_score" field.
func (m *BilanMutation) ResetDgScore() {
	m.dg_score = nil
	m.adddg_score = nil
}

// SetGlobalRisk sets the "global_risk" field.
func (m *BilanMutation) SetGlobalRisk(br bilan.GlobalRisk) {
	m.global_risk = &br
}

// GlobalRisk returns the value of the "global_risk" field in the mutation.
func (m *BilanMutation) GlobalRisk() (r bilan.GlobalRisk, exists bool) {
	v := m.global_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldGlobalRisk returns the old "global_risk" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldGlobalRisk(ctx context.Context) (v bilan.GlobalRisk, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlobalRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlobalRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlobalRisk: %w", err)
	}
	return oldValue.GlobalRisk, nil
}

// ResetGlobalRisk resets all changes to the "global_risk" field.
func (m *BilanMutation) ResetGlobalRisk() {
	m.global_risk = nil
}

// SetDevelopmentalAgeMonths sets the "developmental_age_months" field.
func (m *BilanMutation) SetDevelopmentalAgeMonths(i int) {
	m.developmental_age_months = &i
	m.adddevelopmental_age_months = nil
}

// DevelopmentalAgeMonths returns the value of the "developmental_age_months" field in the mutation.
func (m *BilanMutation) DevelopmentalAgeMonths() (r int, exists bool) {
	v := m.developmental_age_months
	if v == nil {
		return
	}
	return *v, true
}

// OldDevelopmentalAgeMonths returns the old "developmental_age_months" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldDevelopmentalAgeMonths(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDevelopmentalAgeMonths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDevelopmentalAgeMonths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDevelopmentalAgeMonths: %w", err)
	}
	return oldValue.DevelopmentalAgeMonths, nil
}

// AddDevelopmentalAgeMonths adds i to the "developmental_age_months" field.
func (m *BilanMutation) AddDevelopmentalAgeMonths(i int) {
	if m.adddevelopmental_age_months != nil {
		*m.adddevelopmental_age_months += i
	} else {
		m.adddevelopmental_age_months = &i
	}
}

// AddedDevelopmentalAgeMonths returns the value that was added to the "developmental_age_months" field in this mutation.
func (m *BilanMutation) AddedDevelopmentalAgeMonths() (r int, exists bool) {
	v := m.adddevelopmental_age_months
	if v == nil {
		return
	}
	return *v, true
}

// ResetDevelopmentalAgeMonths resets all changes to the "developmental_age_months" field.
func (m *BilanMutation) ResetDevelopmentalAgeMonths() {
	m.developmental_age_months = nil
	m.adddevelopmental_age_months = nil
}

// SetGraphicProfile sets the "graphic_profile" field.
func (m *BilanMutation) SetGraphicProfile(ie []ide.ProfileEntry) {
	m.graphic_profile = &ie
	m.appendgraphic_profile = nil
}

// GraphicProfile returns the value of the "graphic_profile" field in the mutation.
func (m *BilanMutation) GraphicProfile() (r []ide.ProfileEntry, exists bool) {
	v := m.graphic_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphicProfile returns the old "graphic_profile" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldGraphicProfile(ctx context.Context) (v []ide.ProfileEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphicProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphicProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphicProfile: %w", err)
	}
	return oldValue.GraphicProfile, nil
}

// AppendGraphicProfile adds ie to the "graphic_profile" field.
func (m *BilanMutation) AppendGraphicProfile(ie []ide.ProfileEntry) {
	m.appendgraphic_profile = append(m.appendgraphic_profile, ie...)
}

// AppendedGraphicProfile returns the list of values that were appended to the "graphic_profile" field in this mutation.
func (m *BilanMutation) AppendedGraphicProfile() ([]ide.ProfileEntry, bool) {
	if len(m.appendgraphic_profile) == 0 {
		return nil, false
	}
	return m.appendgraphic_profile, true
}

// ClearGraphicProfile clears the value of the "graphic_profile" field.
func (m *BilanMutation) ClearGraphicProfile() {
	m.graphic_profile = nil
	m.appendgraphic_profile = nil
	m.clearedFields[bilan.FieldGraphicProfile] = struct{}{}
}

// GraphicProfileCleared returns if the "graphic_profile" field was cleared in this mutation.
func (m *BilanMutation) GraphicProfileCleared() bool {
	_, ok := m.clearedFields[bilan.FieldGraphicProfile]
	return ok
}

// ResetGraphicProfile resets all changes to the "graphic_profile" field.
func (m *BilanMutation) ResetGraphicProfile() {
	m.graphic_profile = nil
	m.appendgraphic_profile = nil
	delete(m.clearedFields, bilan.FieldGraphicProfile)
}

// SetStrengths sets the "strengths" field.
func (m *BilanMutation) SetStrengths(i []ide.Finding) {
	m.strengths = &i
	m.appendstrengths = nil
}

// Strengths returns the value of the "strengths" field in the mutation.
func (m *BilanMutation) Strengths() (r []ide.Finding, exists bool) {
	v := m.strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldStrengths returns the old "strengths" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldStrengths(ctx context.Context) (v []ide.Finding, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrengths: %w", err)
	}
	return oldValue.Strengths, nil
}

// AppendStrengths adds i to the "strengths" field.
func (m *BilanMutation) AppendStrengths(i []ide.Finding) {
	m.appendstrengths = append(m.appendstrengths, i...)
}

// AppendedStrengths returns the list of values that were appended to the "strengths" field in this mutation.
func (m *BilanMutation) AppendedStrengths() ([]ide.Finding, bool) {
	if len(m.appendstrengths) == 0 {
		return nil, false
	}
	return m.appendstrengths, true
}

// ClearStrengths clears the value of the "strengths" field.
func (m *BilanMutation) ClearStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	m.clearedFields[bilan.FieldStrengths] = struct{}{}
}

// StrengthsCleared returns if the "strengths" field was cleared in this mutation.
func (m *BilanMutation) StrengthsCleared() bool {
	_, ok := m.clearedFields[bilan.FieldStrengths]
	return ok
}

// ResetStrengths resets all changes to the "strengths" field.
func (m *BilanMutation) ResetStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	delete(m.clearedFields, bilan.FieldStrengths)
}

// SetWatchPoints sets the "watch_points" field.
func (m *BilanMutation) SetWatchPoints(i []ide.Finding) {
	m.watch_points = &i
	m.appendwatch_points = nil
}

// WatchPoints returns the value of the "watch_points" field in the mutation.
func (m *BilanMutation) WatchPoints() (r []ide.Finding, exists bool) {
	v := m.watch_points
	if v == nil {
		return
	}
	return *v, true
}

// OldWatchPoints returns the old "watch_points" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldWatchPoints(ctx context.Context) (v []ide.Finding, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWatchPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWatchPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWatchPoints: %w", err)
	}
	return oldValue.WatchPoints, nil
}

// AppendWatchPoints adds i to the "watch_points" field.
func (m *BilanMutation) AppendWatchPoints(i []ide.Finding) {
	m.appendwatch_points = append(m.appendwatch_points, i...)
}

// AppendedWatchPoints returns the list of values that were appended to the "watch_points" field in this mutation.
func (m *BilanMutation) AppendedWatchPoints() ([]ide.Finding, bool) {
	if len(m.appendwatch_points) == 0 {
		return nil, false
	}
	return m.appendwatch_points, true
}

// ClearWatchPoints clears the value of the "watch_points" field.
func (m *BilanMutation) ClearWatchPoints() {
	m.watch_points = nil
	m.appendwatch_points = nil
	m.clearedFields[bilan.FieldWatchPoints] = struct{}{}
}

// WatchPointsCleared returns if the "watch_points" field was cleared in this mutation.
func (m *BilanMutation) WatchPointsCleared() bool {
	_, ok := m.clearedFields[bilan.FieldWatchPoints]
	return ok
}

// ResetWatchPoints resets all changes to the "watch_points" field.
func (m *BilanMutation) ResetWatchPoints() {
	m.watch_points = nil
	m.appendwatch_points = nil
	delete(m.clearedFields, bilan.FieldWatchPoints)
}

// SetInterpretation sets the "interpretation" field.
func (m *BilanMutation) SetInterpretation(s string) {
	m.interpretation = &s
}

// Interpretation returns the value of the "interpretation" field in the mutation.
func (m *BilanMutation) Interpretation() (r string, exists bool) {
	v := m.interpretation
	if v == nil {
		return
	}
	return *v, true
}

// OldInterpretation returns the old "interpretation" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldInterpretation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterpretation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterpretation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterpretation: %w", err)
	}
	return oldValue.Interpretation, nil
}

// ResetInterpretation resets all changes to the "interpretation" field.
func (m *BilanMutation) ResetInterpretation() {
	m.interpretation = nil
}

// SetPractitionerComments sets the "practitioner_comments" field.
func (m *BilanMutation) SetPractitionerComments(s string) {
	m.practitioner_comments = &s
}

// PractitionerComments returns the value of the "practitioner_comments" field in the mutation.
func (m *BilanMutation) PractitionerComments() (r string, exists bool) {
	v := m.practitioner_comments
	if v == nil {
		return
	}
	return *v, true
}

// OldPractitionerComments returns the old "practitioner_comments" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldPractitionerComments(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPractitionerComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPractitionerComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPractitionerComments: %w", err)
	}
	return oldValue.PractitionerComments, nil
}

// ClearPractitionerComments clears the value of the "practitioner_comments" field.
func (m *BilanMutation) ClearPractitionerComments() {
	m.practitioner_comments = nil
	m.clearedFields[bilan.FieldPractitionerComments] = struct{}{}
}

// PractitionerCommentsCleared returns if the "practitioner_comments" field was cleared in this mutation.
func (m *BilanMutation) PractitionerCommentsCleared() bool {
	_, ok := m.clearedFields[bilan.FieldPractitionerComments]
	return ok
}

// ResetPractitionerComments resets all changes to the "practitioner_comments" field.
func (m *BilanMutation) ResetPractitionerComments() {
	m.practitioner_comments = nil
	delete(m.clearedFields, bilan.FieldPractitionerComments)
}

// SetRecommendations sets the "recommendations" field.
func (m *BilanMutation) SetRecommendations(s string) {
	m.recommendations = &s
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *BilanMutation) Recommendations() (r string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldRecommendations(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *BilanMutation) ClearRecommendations() {
	m.recommendations = nil
	m.clearedFields[bilan.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *BilanMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[bilan.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *BilanMutation) ResetRecommendations() {
	m.recommendations = nil
	delete(m.clearedFields, bilan.FieldRecommendations)
}

// SetGeneratedAt sets the "generated_at" field.
func (m *BilanMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *BilanMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *BilanMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// SetValidatedAt sets the "validated_at" field.
func (m *BilanMutation) SetValidatedAt(t time.Time) {
	m.validated_at = &t
}

// ValidatedAt returns the value of the "validated_at" field in the mutation.
func (m *BilanMutation) ValidatedAt() (r time.Time, exists bool) {
	v := m.validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedAt returns the old "validated_at" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedAt: %w", err)
	}
	return oldValue.ValidatedAt, nil
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (m *BilanMutation) ClearValidatedAt() {
	m.validated_at = nil
	m.clearedFields[bilan.FieldValidatedAt] = struct{}{}
}

// ValidatedAtCleared returns if the "validated_at" field was cleared in this mutation.
func (m *BilanMutation) ValidatedAtCleared() bool {
	_, ok := m.clearedFields[bilan.FieldValidatedAt]
	return ok
}

// ResetValidatedAt resets all changes to the "validated_at" field.
func (m *BilanMutation) ResetValidatedAt() {
	m.validated_at = nil
	delete(m.clearedFields, bilan.FieldValidatedAt)
}

// SetPdfKey sets the "pdf_key" field.
func (m *BilanMutation) SetPdfKey(s string) {
	m.pdf_key = &s
}

// PdfKey returns the value of the "pdf_key" field in the mutation.
func (m *BilanMutation) PdfKey() (r string, exists bool) {
	v := m.pdf_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfKey returns the old "pdf_key" field's value of the Bilan entity.
// If the Bilan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BilanMutation) OldPdfKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfKey: %w", err)
	}
	return oldValue.PdfKey, nil
}

// ClearPdfKey clears the value of the "pdf_key" field.
func (m *BilanMutation) ClearPdfKey() {
	m.pdf_key = nil
	m.clearedFields[bilan.FieldPdfKey] = struct{}{}
}

// PdfKeyCleared returns if the "pdf_key" field was cleared in this mutation.
func (m *BilanMutation) PdfKeyCleared() bool {
	_, ok := m.clearedFields[bilan.FieldPdfKey]
	return ok
}

// ResetPdfKey resets all changes to the "pdf_key" field.
func (m *BilanMutation) ResetPdfKey() {
	m.pdf_key = nil
	delete(m.clearedFields, bilan.FieldPdfKey)
}

// ClearPrescription clears the "prescription" edge to the Prescription entity.
func (m *BilanMutation) ClearPrescription() {
	m.clearedprescription = true
	m.clearedFields[bilan.FieldPrescriptionID] = struct{}{}
}

// PrescriptionCleared reports if the "prescription" edge to the Prescription entity was cleared.
func (m *BilanMutation) PrescriptionCleared() bool {
	return m.clearedprescription
}

// PrescriptionIDs returns the "prescription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PrescriptionID instead. It exists only for internal usage by the builders.
func (m *BilanMutation) PrescriptionIDs() (ids []uuid.UUID) {
	if id := m.prescription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPrescription resets all changes to the "prescription" edge.
func (m *BilanMutation) ResetPrescription() {
	m.prescription = nil
	m.clearedprescription = false
}

// Where appends a list predicates to the BilanMutation builder.
func (m *BilanMutation) Where(ps ...predicate.Bilan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BilanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BilanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bilan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BilanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BilanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bilan).
func (m *BilanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BilanMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, bilan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bilan.FieldUpdatedAt)
	}
	if m.prescription != nil {
		fields = append(fields, bilan.FieldPrescriptionID)
	}
	if m.status != nil {
		fields = append(fields, bilan.FieldStatus)
	}
	if m.version != nil {
		fields = append(fields, bilan.FieldVersion)
	}
	if m.detailed_scores != nil {
		fields = append(fields, bilan.FieldDetailedScores)
	}
	if m.dg_score != nil {
		fields = append(fields, bilan.FieldDgScore)
	}
	if m.global_risk != nil {
		fields = append(fields, bilan.FieldGlobalRisk)
	}
	if m.developmental_age_months != nil {
		fields = append(fields, bilan.FieldDevelopmentalAgeMonths)
	}
	if m.graphic_profile != nil {
		fields = append(fields, bilan.FieldGraphicProfile)
	}
	if m.strengths != nil {
		fields = append(fields, bilan.FieldStrengths)
	}
	if m.watch_points != nil {
		fields = append(fields, bilan.FieldWatchPoints)
	}
	if m.interpretation != nil {
		fields = append(fields, bilan.FieldInterpretation)
	}
	if m.practitioner_comments != nil {
		fields = append(fields, bilan.FieldPractitionerComments)
	}
	if m.recommendations != nil {
		fields = append(fields, bilan.FieldRecommendations)
	}
	if m.generated_at != nil {
		fields = append(fields, bilan.FieldGeneratedAt)
	}
	if m.validated_at != nil {
		fields = append(fields, bilan.FieldValidatedAt)
	}
	if m.pdf_key != nil {
		fields = append(fields, bilan.FieldPdfKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BilanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bilan.FieldCreatedAt:
		return m.CreatedAt()
	case bilan.FieldUpdatedAt:
		return m.UpdatedAt()
	case bilan.FieldPrescriptionID:
		return m.PrescriptionID()
	case bilan.FieldStatus:
		return m.Status()
	case bilan.FieldVersion:
		return m.Version()
	case bilan.FieldDetailedScores:
		return m.DetailedScores()
	case bilan.FieldDgScore:
		return m.DgScore()
	case bilan.FieldGlobalRisk:
		return m.GlobalRisk()
	case bilan.FieldDevelopmentalAgeMonths:
		return m.DevelopmentalAgeMonths()
	case bilan.FieldGraphicProfile:
		return m.GraphicProfile()
	case bilan.FieldStrengths:
		return m.Strengths()
	case bilan.FieldWatchPoints:
		return m.WatchPoints()
	case bilan.FieldInterpretation:
		return m.Interpretation()
	case bilan.FieldPractitionerComments:
		return m.PractitionerComments()
	case bilan.FieldRecommendations:
		return m.Recommendations()
	case bilan.FieldGeneratedAt:
		return m.GeneratedAt()
	case bilan.FieldValidatedAt:
		return m.ValidatedAt()
	case bilan.FieldPdfKey:
		return m.PdfKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BilanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bilan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bilan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case bilan.FieldPrescriptionID:
		return m.OldPrescriptionID(ctx)
	case bilan.FieldStatus:
		return m.OldStatus(ctx)
	case bilan.FieldVersion:
		return m.OldVersion(ctx)
	case bilan.FieldDetailedScores:
		return m.OldDetailedScores(ctx)
	case bilan.FieldDgScore:
		return m.OldDgScore(ctx)
	case bilan.FieldGlobalRisk:
		return m.OldGlobalRisk(ctx)
	case bilan.FieldDevelopmentalAgeMonths:
		return m.OldDevelopmentalAgeMonths(ctx)
	case bilan.FieldGraphicProfile:
		return m.OldGraphicProfile(ctx)
	case bilan.FieldStrengths:
		return m.OldStrengths(ctx)
	case bilan.FieldWatchPoints:
		return m.OldWatchPoints(ctx)
	case bilan.FieldInterpretation:
		return m.OldInterpretation(ctx)
	case bilan.FieldPractitionerComments:
		return m.OldPractitionerComments(ctx)
	case bilan.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case bilan.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	case bilan.FieldValidatedAt:
		return m.OldValidatedAt(ctx)
	case bilan.FieldPdfKey:
		return m.OldPdfKey(ctx)
	}
	return nil, fmt.Errorf("unknown Bilan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BilanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bilan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bilan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case bilan.FieldPrescriptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrescriptionID(v)
		return nil
	case bilan.FieldStatus:
		v, ok := value.(bilan.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bilan.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case bilan.FieldDetailedScores:
		v, ok := value.(ide.ScoreSet)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetailedScores(v)
		return nil
	case bilan.FieldDgScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDgScore(v)
		return nil
	case bilan.FieldGlobalRisk:
		v, ok := value.(bilan.GlobalRisk)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlobalRisk(v)
		return nil
	case bilan.FieldDevelopmentalAgeMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDevelopmentalAgeMonths(v)
		return nil
	case bilan.FieldGraphicProfile:
		v, ok := value.([]ide.ProfileEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphicProfile(v)
		return nil
	case bilan.FieldStrengths:
		v, ok := value.([]ide.Finding)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrengths(v)
		return nil
	case bilan.FieldWatchPoints:
		v, ok := value.([]ide.Finding)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWatchPoints(v)
		return nil
	case bilan.FieldInterpretation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterpretation(v)
		return nil
	case bilan.FieldPractitionerComments:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPractitionerComments(v)
		return nil
	case bilan.FieldRecommendations:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case bilan.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	case bilan.FieldValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedAt(v)
		return nil
	case bilan.FieldPdfKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfKey(v)
		return nil
	}
	return fmt.Errorf("unknown Bilan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BilanMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, bilan.FieldVersion)
	}
	if m.adddg_score != nil {
		fields = append(fields, bilan.FieldDgScore)
	}
	if m.adddevelopmental_age_months != nil {
		fields = append(fields, bilan.FieldDevelopmentalAgeMonths)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BilanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bilan.FieldVersion:
		return m.AddedVersion()
	case bilan.FieldDgScore:
		return m.AddedDgScore()
	case bilan.FieldDevelopmentalAgeMonths:
		return m.AddedDevelopmentalAgeMonths()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BilanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bilan.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case bilan.FieldDgScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDgScore(v)
		return nil
	case bilan.FieldDevelopmentalAgeMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDevelopmentalAgeMonths(v)
		return nil
	}
	return fmt.Errorf("unknown Bilan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BilanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bilan.FieldGraphicProfile) {
		fields = append(fields, bilan.FieldGraphicProfile)
	}
	if m.FieldCleared(bilan.FieldStrengths) {
		fields = append(fields, bilan.FieldStrengths)
	}
	if m.FieldCleared(bilan.FieldWatchPoints) {
		fields = append(fields, bilan.FieldWatchPoints)
	}
	if m.FieldCleared(bilan.FieldPractitionerComments) {
		fields = append(fields, bilan.FieldPractitionerComments)
	}
	if m.FieldCleared(bilan.FieldRecommendations) {
		fields = append(fields, bilan.FieldRecommendations)
	}
	if m.FieldCleared(bilan.FieldValidatedAt) {
		fields = append(fields, bilan.FieldValidatedAt)
	}
	if m.FieldCleared(bilan.FieldPdfKey) {
		fields = append(fields, bilan.FieldPdfKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BilanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BilanMutation) ClearField(name string) error {
	switch name {
	case bilan.FieldGraphicProfile:
		m.ClearGraphicProfile()
		return nil
	case bilan.FieldStrengths:
		m.ClearStrengths()
		return nil
	case bilan.FieldWatchPoints:
		m.ClearWatchPoints()
		return nil
	case bilan.FieldPractitionerComments:
		m.ClearPractitionerComments()
		return nil
	case bilan.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case bilan.FieldValidatedAt:
		m.ClearValidatedAt()
		return nil
	case bilan.FieldPdfKey:
		m.ClearPdfKey()
		return nil
	}
	return fmt.Errorf("unknown Bilan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BilanMutation) ResetField(name string) error {
	switch name {
	case bilan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bilan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case bilan.FieldPrescriptionID:
		m.ResetPrescriptionID()
		return nil
	case bilan.FieldStatus:
		m.ResetStatus()
		return nil
	case bilan.FieldVersion:
		m.ResetVersion()
		return nil
	case bilan.FieldDetailedScores:
		m.ResetDetailedScores()
		return nil
	case bilan.FieldDgScore:
		m.ResetDgScore()
		return nil
	case bilan.FieldGlobalRisk:
		m.ResetGlobalRisk()
		return nil
	case bilan.FieldDevelopmentalAgeMonths:
		m.ResetDevelopmentalAgeMonths()
		return nil
	case bilan.FieldGraphicProfile:
		m.ResetGraphicProfile()
		return nil
	case bilan.FieldStrengths:
		m.ResetStrengths()
		return nil
	case bilan.FieldWatchPoints:
		m.ResetWatchPoints()
		return nil
	case bilan.FieldInterpretation:
		m.ResetInterpretation()
		return nil
	case bilan.FieldPractitionerComments:
		m.ResetPractitionerComments()
		return nil
	case bilan.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case bilan.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	case bilan.FieldValidatedAt:
		m.ResetValidatedAt()
		return nil
	case bilan.FieldPdfKey:
		m.ResetPdfKey()
		return nil
	}
	return fmt.Errorf("unknown Bilan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BilanMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.prescription != nil {
		edges = append(edges, bilan.EdgePrescription)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BilanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bilan.EdgePrescription:
		if id := m.prescription; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BilanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BilanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BilanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprescription {
		edges = append(edges, bilan.EdgePrescription)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BilanMutation) EdgeCleared(name string) bool {
	switch name {
	case bilan.EdgePrescription:
		return m.clearedprescription
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BilanMutation) ClearEdge(name string) error {
	switch name {
	case bilan.EdgePrescription:
		m.ClearPrescription()
		return nil
	}
	return fmt.Errorf("unknown Bilan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BilanMutation) ResetEdge(name string) error {
	switch name {
	case bilan.EdgePrescription:
		m.ResetPrescription()
		return nil
	}
	return fmt.Errorf("unknown Bilan edge %s", name)
}

// PassationMutation represents an operation that mutates the Passation nodes in the graph.
type PassationMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	updated_at                  *time.Time
	status                      *passation.Status
	answers                     *ide.AnswerSet
	scores                      *ide.ScoreSet
	progress                    *int
	addprogress                 *int
	current_part                *string
	chronological_age_months    *int
	addchronological_age_months *int
	birth_date                  *time.Time
	started_at                  *time.Time
	ended_at                    *time.Time
	duration_minutes            *int
	addduration_minutes         *int
	last_activity_at            *time.Time
	ip_address                  *string
	user_agent                  *string
	clearedFields               map[string]struct{}
	prescription                *uuid.UUID
	clearedprescription         bool
	done                        bool
	oldValue                    func(context.Context) (*Passation, error)
	predicates                  []predicate.Passation
}

var _ ent.Mutation = (*PassationMutation)(nil)

// passationOption allows management of the mutation configuration using functional options.
type passationOption func(*PassationMutation)

// newPassationMutation creates new mutation for the Passation entity.
func newPassationMutation(c config, op Op, opts ...passationOption) *PassationMutation {
	m := &PassationMutation{
		config:        c,
		op:            op,
		typ:           TypePassation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPassationID sets the ID field of the mutation.
func withPassationID(id uuid.UUID) passationOption {
	return func(m *PassationMutation) {
		var (
			err   error
			once  sync.Once
			value *Passation
		)
		m.oldValue = func(ctx context.Context) (*Passation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Passation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPassation sets the old Passation of the mutation.
func withPassation(node *Passation) passationOption {
	return func(m *PassationMutation) {
		m.oldValue = func(context.Context) (*Passation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PassationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PassationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Passation entities.
func (m *PassationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PassationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PassationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Passation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PassationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PassationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PassationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PassationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PassationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PassationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPrescriptionID sets the "prescription_id" field.
func (m *PassationMutation) SetPrescriptionID(u uuid.UUID) {
	m.prescription = &u
}

// PrescriptionID returns the value of the "prescription_id" field in the mutation.
func (m *PassationMutation) PrescriptionID() (r uuid.UUID, exists bool) {
	v := m.prescription
	if v == nil {
		return
	}
	return *v, true
}

// OldPrescriptionID returns the old "prescription_id" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldPrescriptionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrescriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrescriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrescriptionID: %w", err)
	}
	return oldValue.PrescriptionID, nil
}

// ResetPrescriptionID resets all changes to the "prescription_id" field.
func (m *PassationMutation) ResetPrescriptionID() {
	m.prescription = nil
}

// SetStatus sets the "status" field.
func (m *PassationMutation) SetStatus(pa passation.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PassationMutation) Status() (r passation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldStatus(ctx context.Context) (v passation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PassationMutation) ResetStatus() {
	m.status = nil
}

// SetAnswers sets the "answers" field.
func (m *PassationMutation) SetAnswers(is ide.AnswerSet) {
	m.answers = &is
}

// Answers returns the value of the "answers" field in the mutation.
func (m *PassationMutation) Answers() (r ide.AnswerSet, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldAnswers(ctx context.Context) (v ide.AnswerSet, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// ClearAnswers clears the value of the "answers" field.
func (m *PassationMutation) ClearAnswers() {
	m.answers = nil
	m.clearedFields[passation.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *PassationMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[passation.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *PassationMutation) ResetAnswers() {
	m.answers = nil
	delete(m.clearedFields, passation.FieldAnswers)
}

// SetScores sets the "scores" field.
func (m *PassationMutation) SetScores(is ide.ScoreSet) {
	m.scores = &is
}

// Scores returns the value of the "scores" field in the mutation.
func (m *PassationMutation) Scores() (r ide.ScoreSet, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldScores(ctx context.Context) (v ide.ScoreSet, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ClearScores clears the value of the "scores" field.
func (m *PassationMutation) ClearScores() {
	m.scores = nil
	m.clearedFields[passation.FieldScores] = struct{}{}
}

// ScoresCleared returns if the "scores" field was cleared in this mutation.
func (m *PassationMutation) ScoresCleared() bool {
	_, ok := m.clearedFields[passation.FieldScores]
	return ok
}

// ResetScores resets all changes to the "scores" field.
func (m *PassationMutation) ResetScores() {
	m.scores = nil
	delete(m.clearedFields, passation.FieldScores)
}

// SetProgress sets the "progress" field.
func (m *PassationMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *PassationMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *PassationMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *PassationMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *PassationMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetCurrentPart sets the "current_part" field.
func (m *PassationMutation) SetCurrentPart(s string) {
	m.current_part = &s
}

// CurrentPart returns the value of the "current_part" field in the mutation.
func (m *PassationMutation) CurrentPart() (r string, exists bool) {
	v := m.current_part
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPart returns the old "current_part" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldCurrentPart(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPart: %w", err)
	}
	return oldValue.CurrentPart, nil
}

// ClearCurrentPart clears the value of the "current_part" field.
func (m *PassationMutation) ClearCurrentPart() {
	m.current_part = nil
	m.clearedFields[passation.FieldCurrentPart] = struct{}{}
}

// CurrentPartCleared returns if the "current_part" field was cleared in this mutation.
func (m *PassationMutation) CurrentPartCleared() bool {
	_, ok := m.clearedFields[passation.FieldCurrentPart]
	return ok
}

// ResetCurrentPart resets all changes to the "current_part" field.
func (m *PassationMutation) ResetCurrentPart() {
	m.current_part = nil
	delete(m.clearedFields, passation.FieldCurrentPart)
}

// SetChronologicalAgeMonths sets the "chronological_age_months" field.
func (m *PassationMutation) SetChronologicalAgeMonths(i int) {
	m.chronological_age_months = &i
	m.addchronological_age_months = nil
}

// ChronologicalAgeMonths returns the value of the "chronological_age_months" field in the mutation.
func (m *PassationMutation) ChronologicalAgeMonths() (r int, exists bool) {
	v := m.chronological_age_months
	if v == nil {
		return
	}
	return *v, true
}

// OldChronologicalAgeMonths returns the old "chronological_age_months" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldChronologicalAgeMonths(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChronologicalAgeMonths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChronologicalAgeMonths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChronologicalAgeMonths: %w", err)
	}
	return oldValue.ChronologicalAgeMonths, nil
}

// AddChronologicalAgeMonths adds i to the "chronological_age_months" field.
func (m *PassationMutation) AddChronologicalAgeMonths(i int) {
	if m.addchronological_age_months != nil {
		*m.addchronological_age_months += i
	} else {
		m.addchronological_age_months = &i
	}
}

// AddedChronologicalAgeMonths returns the value that was added to the "chronological_age_months" field in this mutation.
func (m *PassationMutation) AddedChronologicalAgeMonths() (r int, exists bool) {
	v := m.addchronological_age_months
	if v == nil {
		return
	}
	return *v, true
}

// ResetChronologicalAgeMonths resets all changes to the "chronological_age_months" field.
func (m *PassationMutation) ResetChronologicalAgeMonths() {
	m.chronological_age_months = nil
	m.addchronological_age_months = nil
}

// SetBirthDate sets the "birth_date" field.
func (m *PassationMutation) SetBirthDate(t time.Time) {
	m.birth_date = &t
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *PassationMutation) BirthDate() (r time.Time, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldBirthDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *PassationMutation) ResetBirthDate() {
	m.birth_date = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PassationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PassationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PassationMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *PassationMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *PassationMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *PassationMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[passation.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *PassationMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[passation.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *PassationMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, passation.FieldEndedAt)
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *PassationMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *PassationMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldDurationMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *PassationMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *PassationMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (m *PassationMutation) ClearDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	m.clearedFields[passation.FieldDurationMinutes] = struct{}{}
}

// DurationMinutesCleared returns if the "duration_minutes" field was cleared in this mutation.
func (m *PassationMutation) DurationMinutesCleared() bool {
	_, ok := m.clearedFields[passation.FieldDurationMinutes]
	return ok
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *PassationMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	delete(m.clearedFields, passation.FieldDurationMinutes)
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *PassationMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *PassationMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *PassationMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetIPAddress sets the "ip_address" field.
func (m *PassationMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *PassationMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *PassationMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[passation.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *PassationMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[passation.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *PassationMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, passation.FieldIPAddress)
}

// SetUserAgent sets the "user_agent" field.
func (m *PassationMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *PassationMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the Passation entity.
// If the Passation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassationMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *PassationMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[passation.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *PassationMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[passation.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *PassationMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, passation.FieldUserAgent)
}

// ClearPrescription clears the "prescription" edge to the Prescription entity.
func (m *PassationMutation) ClearPrescription() {
	m.clearedprescription = true
	m.clearedFields[passation.FieldPrescriptionID] = struct{}{}
}

// PrescriptionCleared reports if the "prescription" edge to the Prescription entity was cleared.
func (m *PassationMutation) PrescriptionCleared() bool {
	return m.clearedprescription
}

// PrescriptionIDs returns the "prescription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PrescriptionID instead. It exists only for internal usage by the builders.
func (m *PassationMutation) PrescriptionIDs() (ids []uuid.UUID) {
	if id := m.prescription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPrescription resets all changes to the "prescription" edge.
func (m *PassationMutation) ResetPrescription() {
	m.prescription = nil
	m.clearedprescription = false
}

// Where appends a list predicates to the PassationMutation builder.
func (m *PassationMutation) Where(ps ...predicate.Passation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PassationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PassationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Passation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PassationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PassationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Passation).
func (m *PassationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PassationMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, passation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, passation.FieldUpdatedAt)
	}
	if m.prescription != nil {
		fields = append(fields, passation.FieldPrescriptionID)
	}
	if m.status != nil {
		fields = append(fields, passation.FieldStatus)
	}
	if m.answers != nil {
		fields = append(fields, passation.FieldAnswers)
	}
	if m.scores != nil {
		fields = append(fields, passation.FieldScores)
	}
	if m.progress != nil {
		fields = append(fields, passation.FieldProgress)
	}
	if m.current_part != nil {
		fields = append(fields, passation.FieldCurrentPart)
	}
	if m.chronological_age_months != nil {
		fields = append(fields, passation.FieldChronologicalAgeMonths)
	}
	if m.birth_date != nil {
		fields = append(fields, passation.FieldBirthDate)
	}
	if m.started_at != nil {
		fields = append(fields, passation.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, passation.FieldEndedAt)
	}
	if m.duration_minutes != nil {
		fields = append(fields, passation.FieldDurationMinutes)
	}
	if m.last_activity_at != nil {
		fields = append(fields, passation.FieldLastActivityAt)
	}
	if m.ip_address != nil {
		fields = append(fields, passation.FieldIPAddress)
	}
	if m.user_agent != nil {
		fields = append(fields, passation.FieldUserAgent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PassationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case passation.FieldCreatedAt:
		return m.CreatedAt()
	case passation.FieldUpdatedAt:
		return m.UpdatedAt()
	case passation.FieldPrescriptionID:
		return m.PrescriptionID()
	case passation.FieldStatus:
		return m.Status()
	case passation.FieldAnswers:
		return m.Answers()
	case passation.FieldScores:
		return m.Scores()
	case passation.FieldProgress:
		return m.Progress()
	case passation.FieldCurrentPart:
		return m.CurrentPart()
	case passation.FieldChronologicalAgeMonths:
		return m.ChronologicalAgeMonths()
	case passation.FieldBirthDate:
		return m.BirthDate()
	case passation.FieldStartedAt:
		return m.StartedAt()
	case passation.FieldEndedAt:
		return m.EndedAt()
	case passation.FieldDurationMinutes:
		return m.DurationMinutes()
	case passation.FieldLastActivityAt:
		return m.LastActivityAt()
	case passation.FieldIPAddress:
		return m.IPAddress()
	case passation.FieldUserAgent:
		return m.UserAgent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PassationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case passation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case passation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case passation.FieldPrescriptionID:
		return m.OldPrescriptionID(ctx)
	case passation.FieldStatus:
		return m.OldStatus(ctx)
	case passation.FieldAnswers:
		return m.OldAnswers(ctx)
	case passation.FieldScores:
		return m.OldScores(ctx)
	case passation.FieldProgress:
		return m.OldProgress(ctx)
	case passation.FieldCurrentPart:
		return m.OldCurrentPart(ctx)
	case passation.FieldChronologicalAgeMonths:
		return m.OldChronologicalAgeMonths(ctx)
	case passation.FieldBirthDate:
		return m.OldBirthDate(ctx)
	case passation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case passation.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case passation.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case passation.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case passation.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case passation.FieldUserAgent:
		return m.OldUserAgent(ctx)
	}
	return nil, fmt.Errorf("unknown Passation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case passation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case passation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case passation.FieldPrescriptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrescriptionID(v)
		return nil
	case passation.FieldStatus:
		v, ok := value.(passation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case passation.FieldAnswers:
		v, ok := value.(ide.AnswerSet)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case passation.FieldScores:
		v, ok := value.(ide.ScoreSet)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case passation.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case passation.FieldCurrentPart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPart(v)
		return nil
	case passation.FieldChronologicalAgeMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChronologicalAgeMonths(v)
		return nil
	case passation.FieldBirthDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	case passation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case passation.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case passation.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case passation.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case passation.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case passation.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	}
	return fmt.Errorf("unknown Passation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PassationMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, passation.FieldProgress)
	}
	if m.addchronological_age_months != nil {
		fields = append(fields, passation.FieldChronologicalAgeMonths)
	}
	if m.addduration_minutes != nil {
		fields = append(fields, passation.FieldDurationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PassationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case passation.FieldProgress:
		return m.AddedProgress()
	case passation.FieldChronologicalAgeMonths:
		return m.AddedChronologicalAgeMonths()
	case passation.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case passation.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case passation.FieldChronologicalAgeMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChronologicalAgeMonths(v)
		return nil
	case passation.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Passation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PassationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(passation.FieldAnswers) {
		fields = append(fields, passation.FieldAnswers)
	}
	if m.FieldCleared(passation.FieldScores) {
		fields = append(fields, passation.FieldScores)
	}
	if m.FieldCleared(passation.FieldCurrentPart) {
		fields = append(fields, passation.FieldCurrentPart)
	}
	if m.FieldCleared(passation.FieldEndedAt) {
		fields = append(fields, passation.FieldEndedAt)
	}
	if m.FieldCleared(passation.FieldDurationMinutes) {
		fields = append(fields, passation.FieldDurationMinutes)
	}
	if m.FieldCleared(passation.FieldIPAddress) {
		fields = append(fields, passation.FieldIPAddress)
	}
	if m.FieldCleared(passation.FieldUserAgent) {
		fields = append(fields, passation.FieldUserAgent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PassationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PassationMutation) ClearField(name string) error {
	switch name {
	case passation.FieldAnswers:
		m.ClearAnswers()
		return nil
	case passation.FieldScores:
		m.ClearScores()
		return nil
	case passation.FieldCurrentPart:
		m.ClearCurrentPart()
		return nil
	case passation.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case passation.FieldDurationMinutes:
		m.ClearDurationMinutes()
		return nil
	case passation.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case passation.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	}
	return fmt.Errorf("unknown Passation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PassationMutation) ResetField(name string) error {
	switch name {
	case passation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case passation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case passation.FieldPrescriptionID:
		m.ResetPrescriptionID()
		return nil
	case passation.FieldStatus:
		m.ResetStatus()
		return nil
	case passation.FieldAnswers:
		m.ResetAnswers()
		return nil
	case passation.FieldScores:
		m.ResetScores()
		return nil
	case passation.FieldProgress:
		m.ResetProgress()
		return nil
	case passation.FieldCurrentPart:
		m.ResetCurrentPart()
		return nil
	case passation.FieldChronologicalAgeMonths:
		m.ResetChronologicalAgeMonths()
		return nil
	case passation.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	case passation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case passation.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case passation.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case passation.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case passation.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case passation.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	}
	return fmt.Errorf("unknown Passation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PassationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.prescription != nil {
		edges = append(edges, passation.EdgePrescription)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PassationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case passation.EdgePrescription:
		if id := m.prescription; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PassationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PassationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PassationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprescription {
		edges = append(edges, passation.EdgePrescription)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PassationMutation) EdgeCleared(name string) bool {
	switch name {
	case passation.EdgePrescription:
		return m.clearedprescription
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PassationMutation) ClearEdge(name string) error {
	switch name {
	case passation.EdgePrescription:
		m.ClearPrescription()
		return nil
	}
	return fmt.Errorf("unknown Passation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PassationMutation) ResetEdge(name string) error {
	switch name {
	case passation.EdgePrescription:
		m.ResetPrescription()
		return nil
	}
	return fmt.Errorf("unknown Passation edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	created_at                *time.Time
	updated_at                *time.Time
	deleted_at                *time.Time
	first_name                *string
	last_name                 *string
	birth_date                *time.Time
	guardian_email            *string
	guardian_phone            *string
	social_security_encrypted *string
	password_hash             *string
	activated                 *bool
	activated_at              *time.Time
	notes                     *string
	clearedFields             map[string]struct{}
	practitioner              *uuid.UUID
	clearedpractitioner       bool
	prescriptions             map[uuid.UUID]struct{}
	removedprescriptions      map[uuid.UUID]struct{}
	clearedprescriptions      bool
	activation_tokens         map[uuid.UUID]struct{}
	removedactivation_tokens  map[uuid.UUID]struct{}
	clearedactivation_tokens  bool
	done                      bool
	oldValue                  func(context.Context) (*Patient, error)
	predicates                []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PatientMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PatientMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PatientMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[patient.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PatientMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[patient.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PatientMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, patient.FieldDeletedAt)
}

// SetPractitionerID sets the "practitioner_id" field.
func (m *PatientMutation) SetPractitionerID(u uuid.UUID) {
	m.practitioner = &u
}

// PractitionerID returns the value of the "practitioner_id" field in the mutation.
func (m *PatientMutation) PractitionerID() (r uuid.UUID, exists bool) {
	v := m.practitioner
	if v == nil {
		return
	}
	return *v, true
}

// OldPractitionerID returns the old "practitioner_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPractitionerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPractitionerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPractitionerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPractitionerID: %w", err)
	}
	return oldValue.PractitionerID, nil
}

// ResetPractitionerID resets all changes to the "practitioner_id" field.
func (m *PatientMutation) ResetPractitionerID() {
	m.practitioner = nil
}

// SetFirstName sets the "first_name" field.
func (m *PatientMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PatientMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PatientMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *PatientMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PatientMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PatientMutation) ResetLastName() {
	m.last_name = nil
}

// SetBirthDate sets the "birth_date" field.
func (m *PatientMutation) SetBirthDate(t time.Time) {
	m.birth_date = &t
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *PatientMutation) BirthDate() (r time.Time, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldBirthDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *PatientMutation) ResetBirthDate() {
	m.birth_date = nil
}

// SetGuardianEmail sets the "guardian_email" field.
func (m *PatientMutation) SetGuardianEmail(s string) {
	m.guardian_email = &s
}

// GuardianEmail returns the value of the "guardian_email" field in the mutation.
func (m *PatientMutation) GuardianEmail() (r string, exists bool) {
	v := m.guardian_email
	if v == nil {
		return
	}
	return *v, true
}

// OldGuardianEmail returns the old "guardian_email" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldGuardianEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuardianEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuardianEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuardianEmail: %w", err)
	}
	return oldValue.GuardianEmail, nil
}

// ResetGuardianEmail resets all changes to the "guardian_email" field.
func (m *PatientMutation) ResetGuardianEmail() {
	m.guardian_email = nil
}

// SetGuardianPhone sets the "guardian_phone" field.
func (m *PatientMutation) SetGuardianPhone(s string) {
	m.guardian_phone = &s
}

// GuardianPhone returns the value of the "guardian_phone" field in the mutation.
func (m *PatientMutation) GuardianPhone() (r string, exists bool) {
	v := m.guardian_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldGuardianPhone returns the old "guardian_phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldGuardianPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuardianPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuardianPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuardianPhone: %w", err)
	}
	return oldValue.GuardianPhone, nil
}

// ClearGuardianPhone clears the value of the "guardian_phone" field.
func (m *PatientMutation) ClearGuardianPhone() {
	m.guardian_phone = nil
	m.clearedFields[patient.FieldGuardianPhone] = struct{}{}
}

// GuardianPhoneCleared returns if the "guardian_phone" field was cleared in this mutation.
func (m *PatientMutation) GuardianPhoneCleared() bool {
	_, ok := m.clearedFields[patient.FieldGuardianPhone]
	return ok
}

// ResetGuardianPhone resets all changes to the "guardian_phone" field.
func (m *PatientMutation) ResetGuardianPhone() {
	m.guardian_phone = nil
	delete(m.clearedFields, patient.FieldGuardianPhone)
}

// SetSocialSecurityEncrypted sets the "social_security_encrypted" field.
func (m *PatientMutation) SetSocialSecurityEncrypted(s string) {
	m.social_security_encrypted = &s
}

// SocialSecurityEncrypted returns the value of the "social_security_encrypted" field in the mutation.
func (m *PatientMutation) SocialSecurityEncrypted() (r string, exists bool) {
	v := m.social_security_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldSocialSecurityEncrypted returns the old "social_security_encrypted" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldSocialSecurityEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSocialSecurityEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSocialSecurityEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSocialSecurityEncrypted: %w", err)
	}
	return oldValue.SocialSecurityEncrypted, nil
}

// ClearSocialSecurityEncrypted clears the value of the "social_security_encrypted" field.
func (m *PatientMutation) ClearSocialSecurityEncrypted() {
	m.social_security_encrypted = nil
	m.clearedFields[patient.FieldSocialSecurityEncrypted] = struct{}{}
}

// SocialSecurityEncryptedCleared returns if the "social_security_encrypted" field was cleared in this mutation.
func (m *PatientMutation) SocialSecurityEncryptedCleared() bool {
	_, ok := m.clearedFields[patient.FieldSocialSecurityEncrypted]
	return ok
}

// ResetSocialSecurityEncrypted resets all changes to the "social_security_encrypted" field.
func (m *PatientMutation) ResetSocialSecurityEncrypted() {
	m.social_security_encrypted = nil
	delete(m.clearedFields, patient.FieldSocialSecurityEncrypted)
}

// SetPasswordHash sets the "password_hash" field.
func (m *PatientMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *PatientMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPasswordHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *PatientMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[patient.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *PatientMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[patient.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *PatientMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, patient.FieldPasswordHash)
}

// SetActivated sets the "activated" field.
func (m *PatientMutation) SetActivated(b bool) {
	m.activated = &b
}

// Activated returns the value of the "activated" field in the mutation.
func (m *PatientMutation) Activated() (r bool, exists bool) {
	v := m.activated
	if v == nil {
		return
	}
	return *v, true
}

// OldActivated returns the old "activated" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldActivated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivated: %w", err)
	}
	return oldValue.Activated, nil
}

// ResetActivated resets all changes to the "activated" field.
func (m *PatientMutation) ResetActivated() {
	m.activated = nil
}

// SetActivatedAt sets the "activated_at" field.
func (m *PatientMutation) SetActivatedAt(t time.Time) {
	m.activated_at = &t
}

// ActivatedAt returns the value of the "activated_at" field in the mutation.
func (m *PatientMutation) ActivatedAt() (r time.Time, exists bool) {
	v := m.activated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldActivatedAt returns the old "activated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldActivatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivatedAt: %w", err)
	}
	return oldValue.ActivatedAt, nil
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (m *PatientMutation) ClearActivatedAt() {
	m.activated_at = nil
	m.clearedFields[patient.FieldActivatedAt] = struct{}{}
}

// ActivatedAtCleared returns if the "activated_at" field was cleared in this mutation.
func (m *PatientMutation) ActivatedAtCleared() bool {
	_, ok := m.clearedFields[patient.FieldActivatedAt]
	return ok
}

// ResetActivatedAt resets all changes to the "activated_at" field.
func (m *PatientMutation) ResetActivatedAt() {
	m.activated_at = nil
	delete(m.clearedFields, patient.FieldActivatedAt)
}

// SetNotes sets the "notes" field.
func (m *PatientMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PatientMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PatientMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[patient.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PatientMutation) NotesCleared() bool {
	_, ok := m.clearedFields[patient.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PatientMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, patient.FieldNotes)
}

// ClearPractitioner clears the "practitioner" edge to the User entity.
func (m *PatientMutation) ClearPractitioner() {
	m.clearedpractitioner = true
	m.clearedFields[patient.FieldPractitionerID] = struct{}{}
}

// PractitionerCleared reports if the "practitioner" edge to the User entity was cleared.
func (m *PatientMutation) PractitionerCleared() bool {
	return m.clearedpractitioner
}

// PractitionerIDs returns the "practitioner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PractitionerID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) PractitionerIDs() (ids []uuid.UUID) {
	if id := m.practitioner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPractitioner resets all changes to the "practitioner" edge.
func (m *PatientMutation) ResetPractitioner() {
	m.practitioner = nil
	m.clearedpractitioner = false
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by ids.
func (m *PatientMutation) AddPrescriptionIDs(ids ...uuid.UUID) {
	if m.prescriptions == nil {
		m.prescriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.prescriptions[ids[i]] = struct{}{}
	}
}

// ClearPrescriptions clears the "prescriptions" edge to the Prescription entity.
func (m *PatientMutation) ClearPrescriptions() {
	m.clearedprescriptions = true
}

// PrescriptionsCleared reports if the "prescriptions" edge to the Prescription entity was cleared.
func (m *PatientMutation) PrescriptionsCleared() bool {
	return m.clearedprescriptions
}

// RemovePrescriptionIDs removes the "prescriptions" edge to the Prescription entity by IDs.
func (m *PatientMutation) RemovePrescriptionIDs(ids ...uuid.UUID) {
	if m.removedprescriptions == nil {
		m.removedprescriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.prescriptions, ids[i])
		m.removedprescriptions[ids[i]] = struct{}{}
	}
}

// RemovedPrescriptions returns the removed IDs of the "prescriptions" edge to the Prescription entity.
func (m *PatientMutation) RemovedPrescriptionsIDs() (ids []uuid.UUID) {
	for id := range m.removedprescriptions {
		ids = append(ids, id)
	}
	return
}

// PrescriptionsIDs returns the "prescriptions" edge IDs in the mutation.
func (m *PatientMutation) PrescriptionsIDs() (ids []uuid.UUID) {
	for id := range m.prescriptions {
		ids = append(ids, id)
	}
	return
}

// ResetPrescriptions resets all changes to the "prescriptions" edge.
func (m *PatientMutation) ResetPrescriptions() {
	m.prescriptions = nil
	m.clearedprescriptions = false
	m.removedprescriptions = nil
}

// AddActivationTokenIDs adds the "activation_tokens" edge to the ActivationToken entity by ids.
func (m *PatientMutation) AddActivationTokenIDs(ids ...uuid.UUID) {
	if m.activation_tokens == nil {
		m.activation_tokens = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.activation_tokens[ids[i]] = struct{}{}
	}
}

// ClearActivationTokens clears the "activation_tokens" edge to the ActivationToken entity.
func (m *PatientMutation) ClearActivationTokens() {
	m.clearedactivation_tokens = true
}

// ActivationTokensCleared reports if the "activation_tokens" edge to the ActivationToken entity was cleared.
func (m *PatientMutation) ActivationTokensCleared() bool {
	return m.clearedactivation_tokens
}

// RemoveActivationTokenIDs removes the "activation_tokens" edge to the ActivationToken entity by IDs.
func (m *PatientMutation) RemoveActivationTokenIDs(ids ...uuid.UUID) {
	if m.removedactivation_tokens == nil {
		m.removedactivation_tokens = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.activation_tokens, ids[i])
		m.removedactivation_tokens[ids[i]] = struct{}{}
	}
}

// RemovedActivationTokens returns the removed IDs of the "activation_tokens" edge to the ActivationToken entity.
func (m *PatientMutation) RemovedActivationTokensIDs() (ids []uuid.UUID) {
	for id := range m.removedactivation_tokens {
		ids = append(ids, id)
	}
	return
}

// ActivationTokensIDs returns the "activation_tokens" edge IDs in the mutation.
func (m *PatientMutation) ActivationTokensIDs() (ids []uuid.UUID) {
	for id := range m.activation_tokens {
		ids = append(ids, id)
	}
	return
}

// ResetActivationTokens resets all changes to the "activation_tokens" edge.
func (m *PatientMutation) ResetActivationTokens() {
	m.activation_tokens = nil
	m.clearedactivation_tokens = false
	m.removedactivation_tokens = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.practitioner != nil {
		fields = append(fields, patient.FieldPractitionerID)
	}
	if m.first_name != nil {
		fields = append(fields, patient.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, patient.FieldLastName)
	}
	if m.birth_date != nil {
		fields = append(fields, patient.FieldBirthDate)
	}
	if m.guardian_email != nil {
		fields = append(fields, patient.FieldGuardianEmail)
	}
	if m.guardian_phone != nil {
		fields = append(fields, patient.FieldGuardianPhone)
	}
	if m.social_security_encrypted != nil {
		fields = append(fields, patient.FieldSocialSecurityEncrypted)
	}
	if m.password_hash != nil {
		fields = append(fields, patient.FieldPasswordHash)
	}
	if m.activated != nil {
		fields = append(fields, patient.FieldActivated)
	}
	if m.activated_at != nil {
		fields = append(fields, patient.FieldActivatedAt)
	}
	if m.notes != nil {
		fields = append(fields, patient.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldDeletedAt:
		return m.DeletedAt()
	case patient.FieldPractitionerID:
		return m.PractitionerID()
	case patient.FieldFirstName:
		return m.FirstName()
	case patient.FieldLastName:
		return m.LastName()
	case patient.FieldBirthDate:
		return m.BirthDate()
	case patient.FieldGuardianEmail:
		return m.GuardianEmail()
	case patient.FieldGuardianPhone:
		return m.GuardianPhone()
	case patient.FieldSocialSecurityEncrypted:
		return m.SocialSecurityEncrypted()
	case patient.FieldPasswordHash:
		return m.PasswordHash()
	case patient.FieldActivated:
		return m.Activated()
	case patient.FieldActivatedAt:
		return m.ActivatedAt()
	case patient.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case patient.FieldPractitionerID:
		return m.OldPractitionerID(ctx)
	case patient.FieldFirstName:
		return m.OldFirstName(ctx)
	case patient.FieldLastName:
		return m.OldLastName(ctx)
	case patient.FieldBirthDate:
		return m.OldBirthDate(ctx)
	case patient.FieldGuardianEmail:
		return m.OldGuardianEmail(ctx)
	case patient.FieldGuardianPhone:
		return m.OldGuardianPhone(ctx)
	case patient.FieldSocialSecurityEncrypted:
		return m.OldSocialSecurityEncrypted(ctx)
	case patient.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case patient.FieldActivated:
		return m.OldActivated(ctx)
	case patient.FieldActivatedAt:
		return m.OldActivatedAt(ctx)
	case patient.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case patient.FieldPractitionerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPractitionerID(v)
		return nil
	case patient.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case patient.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case patient.FieldBirthDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	case patient.FieldGuardianEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuardianEmail(v)
		return nil
	case patient.FieldGuardianPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuardianPhone(v)
		return nil
	case patient.FieldSocialSecurityEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSocialSecurityEncrypted(v)
		return nil
	case patient.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case patient.FieldActivated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivated(v)
		return nil
	case patient.FieldActivatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivatedAt(v)
		return nil
	case patient.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldDeletedAt) {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.FieldCleared(patient.FieldGuardianPhone) {
		fields = append(fields, patient.FieldGuardianPhone)
	}
	if m.FieldCleared(patient.FieldSocialSecurityEncrypted) {
		fields = append(fields, patient.FieldSocialSecurityEncrypted)
	}
	if m.FieldCleared(patient.FieldPasswordHash) {
		fields = append(fields, patient.FieldPasswordHash)
	}
	if m.FieldCleared(patient.FieldActivatedAt) {
		fields = append(fields, patient.FieldActivatedAt)
	}
	if m.FieldCleared(patient.FieldNotes) {
		fields = append(fields, patient.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case patient.FieldGuardianPhone:
		m.ClearGuardianPhone()
		return nil
	case patient.FieldSocialSecurityEncrypted:
		m.ClearSocialSecurityEncrypted()
		return nil
	case patient.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case patient.FieldActivatedAt:
		m.ClearActivatedAt()
		return nil
	case patient.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case patient.FieldPractitionerID:
		m.ResetPractitionerID()
		return nil
	case patient.FieldFirstName:
		m.ResetFirstName()
		return nil
	case patient.FieldLastName:
		m.ResetLastName()
		return nil
	case patient.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	case patient.FieldGuardianEmail:
		m.ResetGuardianEmail()
		return nil
	case patient.FieldGuardianPhone:
		m.ResetGuardianPhone()
		return nil
	case patient.FieldSocialSecurityEncrypted:
		m.ResetSocialSecurityEncrypted()
		return nil
	case patient.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case patient.FieldActivated:
		m.ResetActivated()
		return nil
	case patient.FieldActivatedAt:
		m.ResetActivatedAt()
		return nil
	case patient.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.practitioner != nil {
		edges = append(edges, patient.EdgePractitioner)
	}
	if m.prescriptions != nil {
		edges = append(edges, patient.EdgePrescriptions)
	}
	if m.activation_tokens != nil {
		edges = append(edges, patient.EdgeActivationTokens)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgePractitioner:
		if id := m.practitioner; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgePrescriptions:
		ids := make([]ent.Value, 0, len(m.prescriptions))
		for id := range m.prescriptions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeActivationTokens:
		ids := make([]ent.Value, 0, len(m.activation_tokens))
		for id := range m.activation_tokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedprescriptions != nil {
		edges = append(edges, patient.EdgePrescriptions)
	}
	if m.removedactivation_tokens != nil {
		edges = append(edges, patient.EdgeActivationTokens)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgePrescriptions:
		ids := make([]ent.Value, 0, len(m.removedprescriptions))
		for id := range m.removedprescriptions {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeActivationTokens:
		ids := make([]ent.Value, 0, len(m.removedactivation_tokens))
		for id := range m.removedactivation_tokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpractitioner {
		edges = append(edges, patient.EdgePractitioner)
	}
	if m.clearedprescriptions {
		edges = append(edges, patient.EdgePrescriptions)
	}
	if m.clearedactivation_tokens {
		edges = append(edges, patient.EdgeActivationTokens)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgePractitioner:
		return m.clearedpractitioner
	case patient.EdgePrescriptions:
		return m.clearedprescriptions
	case patient.EdgeActivationTokens:
		return m.clearedactivation_tokens
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	case patient.EdgePractitioner:
		m.ClearPractitioner()
		return nil
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgePractitioner:
		m.ResetPractitioner()
		return nil
	case patient.EdgePrescriptions:
		m.ResetPrescriptions()
		return nil
	case patient.EdgeActivationTokens:
		m.ResetActivationTokens()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PrescriptionMutation represents an operation that mutates the Prescription nodes in the graph.
type PrescriptionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	status              *prescription.Status
	gdpr_consent        *bool
	priority            *int
	addpriority         *int
	deadline            *time.Time
	instructions        *string
	clearedFields       map[string]struct{}
	practitioner        *uuid.UUID
	clearedpractitioner bool
	patient             *uuid.UUID
	clearedpatient      bool
	test                *uuid.UUID
	clearedtest         bool
	passations          map[uuid.UUID]struct{}
	removedpassations   map[uuid.UUID]struct{}
	clearedpassations   bool
	bilans              map[uuid.UUID]struct{}
	removedbilans       map[uuid.UUID]struct{}
	clearedbilans       bool
	done                bool
	oldValue            func(context.Context) (*Prescription, error)
	predicates          []predicate.Prescription
}

var _ ent.Mutation = (*PrescriptionMutation)(nil)

// prescriptionOption allows management of the mutation configuration using functional options.
type prescriptionOption func(*PrescriptionMutation)

// newPrescriptionMutation creates new mutation for the Prescription entity.
func newPrescriptionMutation(c config, op Op, opts ...prescriptionOption) *PrescriptionMutation {
	m := &PrescriptionMutation{
		config:        c,
		op:            op,
		typ:           TypePrescription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPrescriptionID sets the ID field of the mutation.
func withPrescriptionID(id uuid.UUID) prescriptionOption {
	return func(m *PrescriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Prescription
		)
		m.oldValue = func(ctx context.Context) (*Prescription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prescription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrescription sets the old Prescription of the mutation.
func withPrescription(node *Prescription) prescriptionOption {
	return func(m *PrescriptionMutation) {
		m.oldValue = func(context.Context) (*Prescription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PrescriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PrescriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prescription entities.
func (m *PrescriptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PrescriptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PrescriptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prescription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PrescriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PrescriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PrescriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PrescriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PrescriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PrescriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPractitionerID sets the "practitioner_id" field.
func (m *PrescriptionMutation) SetPractitionerID(u uuid.UUID) {
	m.practitioner = &u
}

// PractitionerID returns the value of the "practitioner_id" field in the mutation.
func (m *PrescriptionMutation) PractitionerID() (r uuid.UUID, exists bool) {
	v := m.practitioner
	if v == nil {
		return
	}
	return *v, true
}

// OldPractitionerID returns the old "practitioner_id" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldPractitionerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPractitionerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPractitionerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPractitionerID: %w", err)
	}
	return oldValue.PractitionerID, nil
}

// ResetPractitionerID resets all changes to the "practitioner_id" field.
func (m *PrescriptionMutation) ResetPractitionerID() {
	m.practitioner = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PrescriptionMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PrescriptionMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PrescriptionMutation) ResetPatientID() {
	m.patient = nil
}

// SetTestID sets the "test_id" field.
func (m *PrescriptionMutation) SetTestID(u uuid.UUID) {
	m.test = &u
}

// TestID returns the value of the "test_id" field in the mutation.
func (m *PrescriptionMutation) TestID() (r uuid.UUID, exists bool) {
	v := m.test
	if v == nil {
		return
	}
	return *v, true
}

// OldTestID returns the old "test_id" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldTestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestID: %w", err)
	}
	return oldValue.TestID, nil
}

// ResetTestID resets all changes to the "test_id" field.
func (m *PrescriptionMutation) ResetTestID() {
	m.test = nil
}

// SetStatus sets the "status" field.
func (m *PrescriptionMutation) SetStatus(pr prescription.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *PrescriptionMutation) Status() (r prescription.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldStatus(ctx context.Context) (v prescription.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PrescriptionMutation) ResetStatus() {
	m.status = nil
}

// SetGdprConsent sets the "gdpr_consent" field.
func (m *PrescriptionMutation) SetGdprConsent(b bool) {
	m.gdpr_consent = &b
}

// GdprConsent returns the value of the "gdpr_consent" field in the mutation.
func (m *PrescriptionMutation) GdprConsent() (r bool, exists bool) {
	v := m.gdpr_consent
	if v == nil {
		return
	}
	return *v, true
}

// OldGdprConsent returns the old "gdpr_consent" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldGdprConsent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGdprConsent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGdprConsent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGdprConsent: %w", err)
	}
	return oldValue.GdprConsent, nil
}

// ResetGdprConsent resets all changes to the "gdpr_consent" field.
func (m *PrescriptionMutation) ResetGdprConsent() {
	m.gdpr_consent = nil
}

// SetPriority sets the "priority" field.
func (m *PrescriptionMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *PrescriptionMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *PrescriptionMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *PrescriptionMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *PrescriptionMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetDeadline sets the "deadline" field.
func (m *PrescriptionMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *PrescriptionMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *PrescriptionMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[prescription.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *PrescriptionMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[prescription.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *PrescriptionMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, prescription.FieldDeadline)
}

// SetInstructions sets the "instructions" field.
func (m *PrescriptionMutation) SetInstructions(s string) {
	m.instructions = &s
}

// Instructions returns the value of the "instructions" field in the mutation.
func (m *PrescriptionMutation) Instructions() (r string, exists bool) {
	v := m.instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructions returns the old "instructions" field's value of the Prescription entity.
// If the Prescription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrescriptionMutation) OldInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructions: %w", err)
	}
	return oldValue.Instructions, nil
}

// ClearInstructions clears the value of the "instructions" field.
func (m *PrescriptionMutation) ClearInstructions() {
	m.instructions = nil
	m.clearedFields[prescription.FieldInstructions] = struct{}{}
}

// InstructionsCleared returns if the "instructions" field was cleared in this mutation.
func (m *PrescriptionMutation) InstructionsCleared() bool {
	_, ok := m.clearedFields[prescription.FieldInstructions]
	return ok
}

// ResetInstructions resets all changes to the "instructions" field.
func (m *PrescriptionMutation) ResetInstructions() {
	m.instructions = nil
	delete(m.clearedFields, prescription.FieldInstructions)
}

// ClearPractitioner clears the "practitioner" edge to the User entity.
func (m *PrescriptionMutation) ClearPractitioner() {
	m.clearedpractitioner = true
	m.clearedFields[prescription.FieldPractitionerID] = struct{}{}
}

// PractitionerCleared reports if the "practitioner" edge to the User entity was cleared.
func (m *PrescriptionMutation) PractitionerCleared() bool {
	return m.clearedpractitioner
}

// PractitionerIDs returns the "practitioner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PractitionerID instead. It exists only for internal usage by the builders.
func (m *PrescriptionMutation) PractitionerIDs() (ids []uuid.UUID) {
	if id := m.practitioner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPractitioner resets all changes to the "practitioner" edge.
func (m *PrescriptionMutation) ResetPractitioner() {
	m.practitioner = nil
	m.clearedpractitioner = false
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *PrescriptionMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[prescription.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *PrescriptionMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *PrescriptionMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *PrescriptionMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearTest clears the "test" edge to the Test entity.
func (m *PrescriptionMutation) ClearTest() {
	m.clearedtest = true
	m.clearedFields[prescription.FieldTestID] = struct{}{}
}

// TestCleared reports if the "test" edge to the Test entity was cleared.
func (m *PrescriptionMutation) TestCleared() bool {
	return m.clearedtest
}

// TestIDs returns the "test" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TestID instead. It exists only for internal usage by the builders.
func (m *PrescriptionMutation) TestIDs() (ids []uuid.UUID) {
	if id := m.test; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTest resets all changes to the "test" edge.
func (m *PrescriptionMutation) ResetTest() {
	m.test = nil
	m.clearedtest = false
}

// AddPassationIDs adds the "passations" edge to the Passation entity by ids.
func (m *PrescriptionMutation) AddPassationIDs(ids ...uuid.UUID) {
	if m.passations == nil {
		m.passations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.passations[ids[i]] = struct{}{}
	}
}

// ClearPassations clears the "passations" edge to the Passation entity.
func (m *PrescriptionMutation) ClearPassations() {
	m.clearedpassations = true
}

// PassationsCleared reports if the "passations" edge to the Passation entity was cleared.
func (m *PrescriptionMutation) PassationsCleared() bool {
	return m.clearedpassations
}

// RemovePassationIDs removes the "passations" edge to the Passation entity by IDs.
func (m *PrescriptionMutation) RemovePassationIDs(ids ...uuid.UUID) {
	if m.removedpassations == nil {
		m.removedpassations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.passations, ids[i])
		m.removedpassations[ids[i]] = struct{}{}
	}
}

// RemovedPassations returns the removed IDs of the "passations" edge to the Passation entity.
func (m *PrescriptionMutation) RemovedPassationsIDs() (ids []uuid.UUID) {
	for id := range m.removedpassations {
		ids = append(ids, id)
	}
	return
}

// PassationsIDs returns the "passations" edge IDs in the mutation.
func (m *PrescriptionMutation) PassationsIDs() (ids []uuid.UUID) {
	for id := range m.passations {
		ids = append(ids, id)
	}
	return
}

// ResetPassations resets all changes to the "passations" edge.
func (m *PrescriptionMutation) ResetPassations() {
	m.passations = nil
	m.clearedpassations = false
	m.removedpassations = nil
}

// AddBilanIDs adds the "bilans" edge to the Bilan entity by ids.
func (m *PrescriptionMutation) AddBilanIDs(ids ...uuid.UUID) {
	if m.bilans == nil {
		m.bilans = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.bilans[ids[i]] = struct{}{}
	}
}

// ClearBilans clears the "bilans" edge to the Bilan entity.
func (m *PrescriptionMutation) ClearBilans() {
	m.clearedbilans = true
}

// BilansCleared reports if the "bilans" edge to the Bilan entity was cleared.
func (m *PrescriptionMutation) BilansCleared() bool {
	return m.clearedbilans
}

// RemoveBilanIDs removes the "bilans" edge to the Bilan entity by IDs.
func (m *PrescriptionMutation) RemoveBilanIDs(ids ...uuid.UUID) {
	if m.removedbilans == nil {
		m.removedbilans = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.bilans, ids[i])
		m.removedbilans[ids[i]] = struct{}{}
	}
}

// RemovedBilans returns the removed IDs of the "bilans" edge to the Bilan entity.
func (m *PrescriptionMutation) RemovedBilansIDs() (ids []uuid.UUID) {
	for id := range m.removedbilans {
		ids = append(ids, id)
	}
	return
}

// BilansIDs returns the "bilans" edge IDs in the mutation.
func (m *PrescriptionMutation) BilansIDs() (ids []uuid.UUID) {
	for id := range m.bilans {
		ids = append(ids, id)
	}
	return
}

// ResetBilans resets all changes to the "bilans" edge.
func (m *PrescriptionMutation) ResetBilans() {
	m.bilans = nil
	m.clearedbilans = false
	m.removedbilans = nil
}

// Where appends a list predicates to the PrescriptionMutation builder.
func (m *PrescriptionMutation) Where(ps ...predicate.Prescription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PrescriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PrescriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prescription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PrescriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PrescriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prescription).
func (m *PrescriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PrescriptionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, prescription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prescription.FieldUpdatedAt)
	}
	if m.practitioner != nil {
		fields = append(fields, prescription.FieldPractitionerID)
	}
	if m.patient != nil {
		fields = append(fields, prescription.FieldPatientID)
	}
	if m.test != nil {
		fields = append(fields, prescription.FieldTestID)
	}
	if m.status != nil {
		fields = append(fields, prescription.FieldStatus)
	}
	if m.gdpr_consent != nil {
		fields = append(fields, prescription.FieldGdprConsent)
	}
	if m.priority != nil {
		fields = append(fields, prescription.FieldPriority)
	}
	if m.deadline != nil {
		fields = append(fields, prescription.FieldDeadline)
	}
	if m.instructions != nil {
		fields = append(fields, prescription.FieldInstructions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PrescriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prescription.FieldCreatedAt:
		return m.CreatedAt()
	case prescription.FieldUpdatedAt:
		return m.UpdatedAt()
	case prescription.FieldPractitionerID:
		return m.PractitionerID()
	case prescription.FieldPatientID:
		return m.PatientID()
	case prescription.FieldTestID:
		return m.TestID()
	case prescription.FieldStatus:
		return m.Status()
	case prescription.FieldGdprConsent:
		return m.GdprConsent()
	case prescription.FieldPriority:
		return m.Priority()
	case prescription.FieldDeadline:
		return m.Deadline()
	case prescription.FieldInstructions:
		return m.Instructions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PrescriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prescription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prescription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case prescription.FieldPractitionerID:
		return m.OldPractitionerID(ctx)
	case prescription.FieldPatientID:
		return m.OldPatientID(ctx)
	case prescription.FieldTestID:
		return m.OldTestID(ctx)
	case prescription.FieldStatus:
		return m.OldStatus(ctx)
	case prescription.FieldGdprConsent:
		return m.OldGdprConsent(ctx)
	case prescription.FieldPriority:
		return m.OldPriority(ctx)
	case prescription.FieldDeadline:
		return m.OldDeadline(ctx)
	case prescription.FieldInstructions:
		return m.OldInstructions(ctx)
	}
	return nil, fmt.Errorf("unknown Prescription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrescriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prescription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prescription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case prescription.FieldPractitionerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPractitionerID(v)
		return nil
	case prescription.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case prescription.FieldTestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestID(v)
		return nil
	case prescription.FieldStatus:
		v, ok := value.(prescription.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case prescription.FieldGdprConsent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGdprConsent(v)
		return nil
	case prescription.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case prescription.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case prescription.FieldInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructions(v)
		return nil
	}
	return fmt.Errorf("unknown Prescription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PrescriptionMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, prescription.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PrescriptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prescription.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrescriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prescription.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Prescription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PrescriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prescription.FieldDeadline) {
		fields = append(fields, prescription.FieldDeadline)
	}
	if m.FieldCleared(prescription.FieldInstructions) {
		fields = append(fields, prescription.FieldInstructions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PrescriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PrescriptionMutation) ClearField(name string) error {
	switch name {
	case prescription.FieldDeadline:
		m.ClearDeadline()
		return nil
	case prescription.FieldInstructions:
		m.ClearInstructions()
		return nil
	}
	return fmt.Errorf("unknown Prescription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PrescriptionMutation) ResetField(name string) error {
	switch name {
	case prescription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prescription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case prescription.FieldPractitionerID:
		m.ResetPractitionerID()
		return nil
	case prescription.FieldPatientID:
		m.ResetPatientID()
		return nil
	case prescription.FieldTestID:
		m.ResetTestID()
		return nil
	case prescription.FieldStatus:
		m.ResetStatus()
		return nil
	case prescription.FieldGdprConsent:
		m.ResetGdprConsent()
		return nil
	case prescription.FieldPriority:
		m.ResetPriority()
		return nil
	case prescription.FieldDeadline:
		m.ResetDeadline()
		return nil
	case prescription.FieldInstructions:
		m.ResetInstructions()
		return nil
	}
	return fmt.Errorf("unknown Prescription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PrescriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.practitioner != nil {
		edges = append(edges, prescription.EdgePractitioner)
	}
	if m.patient != nil {
		edges = append(edges, prescription.EdgePatient)
	}
	if m.test != nil {
		edges = append(edges, prescription.EdgeTest)
	}
	if m.passations != nil {
		edges = append(edges, prescription.EdgePassations)
	}
	if m.bilans != nil {
		edges = append(edges, prescription.EdgeBilans)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PrescriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prescription.EdgePractitioner:
		if id := m.practitioner; id != nil {
			return []ent.Value{*id}
		}
	case prescription.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case prescription.EdgeTest:
		if id := m.test; id != nil {
			return []ent.Value{*id}
		}
	case prescription.EdgePassations:
		ids := make([]ent.Value, 0, len(m.passations))
		for id := range m.passations {
			ids = append(ids, id)
		}
		return ids
	case prescription.EdgeBilans:
		ids := make([]ent.Value, 0, len(m.bilans))
		for id := range m.bilans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PrescriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedpassations != nil {
		edges = append(edges, prescription.EdgePassations)
	}
	if m.removedbilans != nil {
		edges = append(edges, prescription.EdgeBilans)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PrescriptionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prescription.EdgePassations:
		ids := make([]ent.Value, 0, len(m.removedpassations))
		for id := range m.removedpassations {
			ids = append(ids, id)
		}
		return ids
	case prescription.EdgeBilans:
		ids := make([]ent.Value, 0, len(m.removedbilans))
		for id := range m.removedbilans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PrescriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedpractitioner {
		edges = append(edges, prescription.EdgePractitioner)
	}
	if m.clearedpatient {
		edges = append(edges, prescription.EdgePatient)
	}
	if m.clearedtest {
		edges = append(edges, prescription.EdgeTest)
	}
	if m.clearedpassations {
		edges = append(edges, prescription.EdgePassations)
	}
	if m.clearedbilans {
		edges = append(edges, prescription.EdgeBilans)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PrescriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case prescription.EdgePractitioner:
		return m.clearedpractitioner
	case prescription.EdgePatient:
		return m.clearedpatient
	case prescription.EdgeTest:
		return m.clearedtest
	case prescription.EdgePassations:
		return m.clearedpassations
	case prescription.EdgeBilans:
		return m.clearedbilans
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PrescriptionMutation) ClearEdge(name string) error {
	switch name {
	case prescription.EdgePractitioner:
		m.ClearPractitioner()
		return nil
	case prescription.EdgePatient:
		m.ClearPatient()
		return nil
	case prescription.EdgeTest:
		m.ClearTest()
		return nil
	}
	return fmt.Errorf("unknown Prescription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PrescriptionMutation) ResetEdge(name string) error {
	switch name {
	case prescription.EdgePractitioner:
		m.ResetPractitioner()
		return nil
	case prescription.EdgePatient:
		m.ResetPatient()
		return nil
	case prescription.EdgeTest:
		m.ResetTest()
		return nil
	case prescription.EdgePassations:
		m.ResetPassations()
		return nil
	case prescription.EdgeBilans:
		m.ResetBilans()
		return nil
	}
	return fmt.Errorf("unknown Prescription edge %s", name)
}

// TestMutation represents an operation that mutates the Test nodes in the graph.
type TestMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	kind                 *test.Kind
	name                 *string
	description          *string
	age_min_months       *int
	addage_min_months    *int
	age_max_months       *int
	addage_max_months    *int
	is_active            *bool
	clearedFields        map[string]struct{}
	items                map[uuid.UUID]struct{}
	removeditems         map[uuid.UUID]struct{}
	cleareditems         bool
	prescriptions        map[uuid.UUID]struct{}
	removedprescriptions map[uuid.UUID]struct{}
	clearedprescriptions bool
	done                 bool
	oldValue             func(context.Context) (*Test, error)
	predicates           []predicate.Test
}

var _ ent.Mutation = (*TestMutation)(nil)

// testOption allows management of the mutation configuration using functional options.
type testOption func(*TestMutation)

// newTestMutation creates new mutation for the Test entity.
func newTestMutation(c config, op Op, opts ...testOption) *TestMutation {
	m := &TestMutation{
		config:        c,
		op:            op,
		typ:           TypeTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestID sets the ID field of the mutation.
func withTestID(id uuid.UUID) testOption {
	return func(m *TestMutation) {
		var (
			err   error
			once  sync.Once
			value *Test
		)
		m.oldValue = func(ctx context.Context) (*Test, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Test.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTest sets the old Test of the mutation.
func withTest(node *Test) testOption {
	return func(m *TestMutation) {
		m.oldValue = func(context.Context) (*Test, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Test entities.
func (m *TestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Test.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetKind sets the "kind" field.
func (m *TestMutation) SetKind(t test.Kind) {
	m.kind = &t
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TestMutation) Kind() (r test.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldKind(ctx context.Context) (v test.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TestMutation) ResetKind() {
	m.kind = nil
}

// SetName sets the "name" field.
func (m *TestMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TestMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TestMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TestMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[test.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TestMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[test.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TestMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, test.FieldDescription)
}

// SetAgeMinMonths sets the "age_min_months" field.
func (m *TestMutation) SetAgeMinMonths(i int) {
	m.age_min_months = &i
	m.addage_min_months = nil
}

// AgeMinMonths returns the value of the "age_min_months" field in the mutation.
func (m *TestMutation) AgeMinMonths() (r int, exists bool) {
	v := m.age_min_months
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeMinMonths returns the old "age_min_months" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldAgeMinMonths(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeMinMonths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeMinMonths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeMinMonths: %w", err)
	}
	return oldValue.AgeMinMonths, nil
}

// AddAgeMinMonths adds i to the "age_min_months" field.
func (m *TestMutation) AddAgeMinMonths(i int) {
	if m.addage_min_months != nil {
		*m.addage_min_months += i
	} else {
		m.addage_min_months = &i
	}
}

// AddedAgeMinMonths returns the value that was added to the "age_min_months" field in this mutation.
func (m *TestMutation) AddedAgeMinMonths() (r int, exists bool) {
	v := m.addage_min_months
	if v == nil {
		return
	}
	return *v, true
}

// ResetAgeMinMonths resets all changes to the "age_min_months" field.
func (m *TestMutation) ResetAgeMinMonths() {
	m.age_min_months = nil
	m.addage_min_months = nil
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (m *TestMutation) SetAgeMaxMonths(i int) {
	m.age_max_months = &i
	m.addage_max_months = nil
}

// AgeMaxMonths returns the value of the "age_max_months" field in the mutation.
func (m *TestMutation) AgeMaxMonths() (r int, exists bool) {
	v := m.age_max_months
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeMaxMonths returns the old "age_max_months" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldAgeMaxMonths(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeMaxMonths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeMaxMonths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeMaxMonths: %w", err)
	}
	return oldValue.AgeMaxMonths, nil
}

// AddAgeMaxMonths adds i to the "age_max_months" field.
func (m *TestMutation) AddAgeMaxMonths(i int) {
	if m.addage_max_months != nil {
		*m.addage_max_months += i
	} else {
		m.addage_max_months = &i
	}
}

// AddedAgeMaxMonths returns the value that was added to the "age_max_months" field in this mutation.
func (m *TestMutation) AddedAgeMaxMonths() (r int, exists bool) {
	v := m.addage_max_months
	if v == nil {
		return
	}
	return *v, true
}

// ResetAgeMaxMonths resets all changes to the "age_max_months" field.
func (m *TestMutation) ResetAgeMaxMonths() {
	m.age_max_months = nil
	m.addage_max_months = nil
}

// SetIsActive sets the "is_active" field.
func (m *TestMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TestMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *TestMutation) ResetIsActive() {
	m.is_active = nil
}

// AddItemIDs adds the "items" edge to the TestItem entity by ids.
func (m *TestMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the TestItem entity.
func (m *TestMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the TestItem entity was cleared.
func (m *TestMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the TestItem entity by IDs.
func (m *TestMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the TestItem entity.
func (m *TestMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *TestMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *TestMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by ids.
func (m *TestMutation) AddPrescriptionIDs(ids ...uuid.UUID) {
	if m.prescriptions == nil {
		m.prescriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.prescriptions[ids[i]] = struct{}{}
	}
}

// ClearPrescriptions clears the "prescriptions" edge to the Prescription entity.
func (m *TestMutation) ClearPrescriptions() {
	m.clearedprescriptions = true
}

// PrescriptionsCleared reports if the "prescriptions" edge to the Prescription entity was cleared.
func (m *TestMutation) PrescriptionsCleared() bool {
	return m.clearedprescriptions
}

// RemovePrescriptionIDs removes the "prescriptions" edge to the Prescription entity by IDs.
func (m *TestMutation) RemovePrescriptionIDs(ids ...uuid.UUID) {
	if m.removedprescriptions == nil {
		m.removedprescriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.prescriptions, ids[i])
		m.removedprescriptions[ids[i]] = struct{}{}
	}
}

// RemovedPrescriptions returns the removed IDs of the "prescriptions" edge to the Prescription entity.
func (m *TestMutation) RemovedPrescriptionsIDs() (ids []uuid.UUID) {
	for id := range m.removedprescriptions {
		ids = append(ids, id)
	}
	return
}

// PrescriptionsIDs returns the "prescriptions" edge IDs in the mutation.
func (m *TestMutation) PrescriptionsIDs() (ids []uuid.UUID) {
	for id := range m.prescriptions {
		ids = append(ids, id)
	}
	return
}

// ResetPrescriptions resets all changes to the "prescriptions" edge.
func (m *TestMutation) ResetPrescriptions() {
	m.prescriptions = nil
	m.clearedprescriptions = false
	m.removedprescriptions = nil
}

// Where appends a list predicates to the TestMutation builder.
func (m *TestMutation) Where(ps ...predicate.Test) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Test, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Test).
func (m *TestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, test.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, test.FieldUpdatedAt)
	}
	if m.kind != nil {
		fields = append(fields, test.FieldKind)
	}
	if m.name != nil {
		fields = append(fields, test.FieldName)
	}
	if m.description != nil {
		fields = append(fields, test.FieldDescription)
	}
	if m.age_min_months != nil {
		fields = append(fields, test.FieldAgeMinMonths)
	}
	if m.age_max_months != nil {
		fields = append(fields, test.FieldAgeMaxMonths)
	}
	if m.is_active != nil {
		fields = append(fields, test.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case test.FieldCreatedAt:
		return m.CreatedAt()
	case test.FieldUpdatedAt:
		return m.UpdatedAt()
	case test.FieldKind:
		return m.Kind()
	case test.FieldName:
		return m.Name()
	case test.FieldDescription:
		return m.Description()
	case test.FieldAgeMinMonths:
		return m.AgeMinMonths()
	case test.FieldAgeMaxMonths:
		return m.AgeMaxMonths()
	case test.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case test.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case test.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case test.FieldKind:
		return m.OldKind(ctx)
	case test.FieldName:
		return m.OldName(ctx)
	case test.FieldDescription:
		return m.OldDescription(ctx)
	case test.FieldAgeMinMonths:
		return m.OldAgeMinMonths(ctx)
	case test.FieldAgeMaxMonths:
		return m.OldAgeMaxMonths(ctx)
	case test.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Test field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case test.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case test.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case test.FieldKind:
		v, ok := value.(test.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case test.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case test.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case test.FieldAgeMinMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeMinMonths(v)
		return nil
	case test.FieldAgeMaxMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeMaxMonths(v)
		return nil
	case test.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Test field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestMutation) AddedFields() []string {
	var fields []string
	if m.addage_min_months != nil {
		fields = append(fields, test.FieldAgeMinMonths)
	}
	if m.addage_max_months != nil {
		fields = append(fields, test.FieldAgeMaxMonths)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case test.FieldAgeMinMonths:
		return m.AddedAgeMinMonths()
	case test.FieldAgeMaxMonths:
		return m.AddedAgeMaxMonths()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case test.FieldAgeMinMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgeMinMonths(v)
		return nil
	case test.FieldAgeMaxMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgeMaxMonths(v)
		return nil
	}
	return fmt.Errorf("unknown Test numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(test.FieldDescription) {
		fields = append(fields, test.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestMutation) ClearField(name string) error {
	switch name {
	case test.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Test nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestMutation) ResetField(name string) error {
	switch name {
	case test.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case test.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case test.FieldKind:
		m.ResetKind()
		return nil
	case test.FieldName:
		m.ResetName()
		return nil
	case test.FieldDescription:
		m.ResetDescription()
		return nil
	case test.FieldAgeMinMonths:
		m.ResetAgeMinMonths()
		return nil
	case test.FieldAgeMaxMonths:
		m.ResetAgeMaxMonths()
		return nil
	case test.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Test field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.items != nil {
		edges = append(edges, test.EdgeItems)
	}
	if m.prescriptions != nil {
		edges = append(edges, test.EdgePrescriptions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case test.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case test.EdgePrescriptions:
		ids := make([]ent.Value, 0, len(m.prescriptions))
		for id := range m.prescriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, test.EdgeItems)
	}
	if m.removedprescriptions != nil {
		edges = append(edges, test.EdgePrescriptions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case test.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case test.EdgePrescriptions:
		ids := make([]ent.Value, 0, len(m.removedprescriptions))
		for id := range m.removedprescriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareditems {
		edges = append(edges, test.EdgeItems)
	}
	if m.clearedprescriptions {
		edges = append(edges, test.EdgePrescriptions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestMutation) EdgeCleared(name string) bool {
	switch name {
	case test.EdgeItems:
		return m.cleareditems
	case test.EdgePrescriptions:
		return m.clearedprescriptions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Test unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestMutation) ResetEdge(name string) error {
	switch name {
	case test.EdgeItems:
		m.ResetItems()
		return nil
	case test.EdgePrescriptions:
		m.ResetPrescriptions()
		return nil
	}
	return fmt.Errorf("unknown Test edge %s", name)
}

// TestItemMutation represents an operation that mutates the TestItem nodes in the graph.
type TestItemMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	part              *string
	domain            *string
	item_order        *int
	additem_order     *int
	text              *string
	counts_dg         *bool
	age_min_months    *int
	addage_min_months *int
	age_max_months    *int
	addage_max_months *int
	is_active         *bool
	clearedFields     map[string]struct{}
	test              *uuid.UUID
	clearedtest       bool
	done              bool
	oldValue          func(context.Context) (*TestItem, error)
	predicates        []predicate.TestItem
}

var _ ent.Mutation = (*TestItemMutation)(nil)

// testitemOption allows management of the mutation configuration using functional options.
type testitemOption func(*TestItemMutation)

// newTestItemMutation creates new mutation for the TestItem entity.
func newTestItemMutation(c config, op Op, opts ...testitemOption) *TestItemMutation {
	m := &TestItemMutation{
		config:        c,
		op:            op,
		typ:           TypeTestItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestItemID sets the ID field of the mutation.
func withTestItemID(id uuid.UUID) testitemOption {
	return func(m *TestItemMutation) {
		var (
			err   error
			once  sync.Once
			value *TestItem
		)
		m.oldValue = func(ctx context.Context) (*TestItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestItem sets the old TestItem of the mutation.
func withTestItem(node *TestItem) testitemOption {
	return func(m *TestItemMutation) {
		m.oldValue = func(context.Context) (*TestItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestItem entities.
func (m *TestItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TestItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TestItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TestItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TestItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTestID sets the "test_id" field.
func (m *TestItemMutation) SetTestID(u uuid.UUID) {
	m.test = &u
}

// TestID returns the value of the "test_id" field in the mutation.
func (m *TestItemMutation) TestID() (r uuid.UUID, exists bool) {
	v := m.test
	if v == nil {
		return
	}
	return *v, true
}

// OldTestID returns the old "test_id" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldTestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestID: %w", err)
	}
	return oldValue.TestID, nil
}

// ResetTestID resets all changes to the "test_id" field.
func (m *TestItemMutation) ResetTestID() {
	m.test = nil
}

// SetPart sets the "part" field.
func (m *TestItemMutation) SetPart(s string) {
	m.part = &s
}

// Part returns the value of the "part" field in the mutation.
func (m *TestItemMutation) Part() (r string, exists bool) {
	v := m.part
	if v == nil {
		return
	}
	return *v, true
}

// OldPart returns the old "part" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldPart(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPart: %w", err)
	}
	return oldValue.Part, nil
}

// ResetPart resets all changes to the "part" field.
func (m *TestItemMutation) ResetPart() {
	m.part = nil
}

// SetDomain sets the "domain" field.
func (m *TestItemMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *TestItemMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *TestItemMutation) ResetDomain() {
	m.domain = nil
}

// SetItemOrder sets the "item_order" field.
func (m *TestItemMutation) SetItemOrder(i int) {
	m.item_order = &i
	m.additem_order = nil
}

// ItemOrder returns the value of the "item_order" field in the mutation.
func (m *TestItemMutation) ItemOrder() (r int, exists bool) {
	v := m.item_order
	if v == nil {
		return
	}
	return *v, true
}

// OldItemOrder returns the old "item_order" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldItemOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemOrder: %w", err)
	}
	return oldValue.ItemOrder, nil
}

// AddItemOrder adds i to the "item_order" field.
func (m *TestItemMutation) AddItemOrder(i int) {
	if m.additem_order != nil {
		*m.additem_order += i
	} else {
		m.additem_order = &i
	}
}

// AddedItemOrder returns the value that was added to the "item_order" field in this mutation.
func (m *TestItemMutation) AddedItemOrder() (r int, exists bool) {
	v := m.additem_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemOrder resets all changes to the "item_order" field.
func (m *TestItemMutation) ResetItemOrder() {
	m.item_order = nil
	m.additem_order = nil
}

// SetText sets the "text" field.
func (m *TestItemMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *TestItemMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *TestItemMutation) ResetText() {
	m.text = nil
}

// SetCountsDg sets the "counts_dg" field.
func (m *TestItemMutation) SetCountsDg(b bool) {
	m.counts_dg = &b
}

// CountsDg returns the value of the "counts_dg" field in the mutation.
func (m *TestItemMutation) CountsDg() (r bool, exists bool) {
	v := m.counts_dg
	if v == nil {
		return
	}
	return *v, true
}

// OldCountsDg returns the old "counts_dg" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldCountsDg(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountsDg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountsDg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountsDg: %w", err)
	}
	return oldValue.CountsDg, nil
}

// ResetCountsDg resets all changes to the "counts_dg" field.
func (m *TestItemMutation) ResetCountsDg() {
	m.counts_dg = nil
}

// SetAgeMinMonths sets the "age_min_months" field.
func (m *TestItemMutation) SetAgeMinMonths(i int) {
	m.age_min_months = &i
	m.addage_min_months = nil
}

// AgeMinMonths returns the value of the "age_min_months" field in the mutation.
func (m *TestItemMutation) AgeMinMonths() (r int, exists bool) {
	v := m.age_min_months
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeMinMonths returns the old "age_min_months" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldAgeMinMonths(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeMinMonths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeMinMonths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeMinMonths: %w", err)
	}
	return oldValue.AgeMinMonths, nil
}

// AddAgeMinMonths adds i to the "age_min_months" field.
func (m *TestItemMutation) AddAgeMinMonths(i int) {
	if m.addage_min_months != nil {
		*m.addage_min_months += i
	} else {
		m.addage_min_months = &i
	}
}

// AddedAgeMinMonths returns the value that was added to the "age_min_months" field in this mutation.
func (m *TestItemMutation) AddedAgeMinMonths() (r int, exists bool) {
	v := m.addage_min_months
	if v == nil {
		return
	}
	return *v, true
}

// ClearAgeMinMonths clears the value of the "age_min_months" field.
func (m *TestItemMutation) ClearAgeMinMonths() {
	m.age_min_months = nil
	m.addage_min_months = nil
	m.clearedFields[testitem.FieldAgeMinMonths] = struct{}{}
}

// AgeMinMonthsCleared returns if the "age_min_months" field was cleared in this mutation.
func (m *TestItemMutation) AgeMinMonthsCleared() bool {
	_, ok := m.clearedFields[testitem.FieldAgeMinMonths]
	return ok
}

// ResetAgeMinMonths resets all changes to the "age_min_months" field.
func (m *TestItemMutation) ResetAgeMinMonths() {
	m.age_min_months = nil
	m.addage_min_months = nil
	delete(m.clearedFields, testitem.FieldAgeMinMonths)
}

// SetAgeMaxMonths sets the "age_max_months" field.
func (m *TestItemMutation) SetAgeMaxMonths(i int) {
	m.age_max_months = &i
	m.addage_max_months = nil
}

// AgeMaxMonths returns the value of the "age_max_months" field in the mutation.
func (m *TestItemMutation) AgeMaxMonths() (r int, exists bool) {
	v := m.age_max_months
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeMaxMonths returns the old "age_max_months" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldAgeMaxMonths(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeMaxMonths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeMaxMonths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeMaxMonths: %w", err)
	}
	return oldValue.AgeMaxMonths, nil
}

// AddAgeMaxMonths adds i to the "age_max_months" field.
func (m *TestItemMutation) AddAgeMaxMonths(i int) {
	if m.addage_max_months != nil {
		*m.addage_max_months += i
	} else {
		m.addage_max_months = &i
	}
}

// AddedAgeMaxMonths returns the value that was added to the "age_max_months" field in this mutation.
func (m *TestItemMutation) AddedAgeMaxMonths() (r int, exists bool) {
	v := m.addage_max_months
	if v == nil {
		return
	}
	return *v, true
}

// ClearAgeMaxMonths clears the value of the "age_max_months" field.
func (m *TestItemMutation) ClearAgeMaxMonths() {
	m.age_max_months = nil
	m.addage_max_months = nil
	m.clearedFields[testitem.FieldAgeMaxMonths] = struct{}{}
}

// AgeMaxMonthsCleared returns if the "age_max_months" field was cleared in this mutation.
func (m *TestItemMutation) AgeMaxMonthsCleared() bool {
	_, ok := m.clearedFields[testitem.FieldAgeMaxMonths]
	return ok
}

// ResetAgeMaxMonths resets all changes to the "age_max_months" field.
func (m *TestItemMutation) ResetAgeMaxMonths() {
	m.age_max_months = nil
	m.addage_max_months = nil
	delete(m.clearedFields, testitem.FieldAgeMaxMonths)
}

// SetIsActive sets the "is_active" field.
func (m *TestItemMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TestItemMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the TestItem entity.
// If the TestItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestItemMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *TestItemMutation) ResetIsActive() {
	m.is_active = nil
}

// ClearTest clears the "test" edge to the Test entity.
func (m *TestItemMutation) ClearTest() {
	m.clearedtest = true
	m.clearedFields[testitem.FieldTestID] = struct{}{}
}

// TestCleared reports if the "test" edge to the Test entity was cleared.
func (m *TestItemMutation) TestCleared() bool {
	return m.clearedtest
}

// TestIDs returns the "test" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TestID instead. It exists only for internal usage by the builders.
func (m *TestItemMutation) TestIDs() (ids []uuid.UUID) {
	if id := m.test; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTest resets all changes to the "test" edge.
func (m *TestItemMutation) ResetTest() {
	m.test = nil
	m.clearedtest = false
}

// Where appends a list predicates to the TestItemMutation builder.
func (m *TestItemMutation) Where(ps ...predicate.TestItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestItem).
func (m *TestItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestItemMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, testitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, testitem.FieldUpdatedAt)
	}
	if m.test != nil {
		fields = append(fields, testitem.FieldTestID)
	}
	if m.part != nil {
		fields = append(fields, testitem.FieldPart)
	}
	if m.domain != nil {
		fields = append(fields, testitem.FieldDomain)
	}
	if m.item_order != nil {
		fields = append(fields, testitem.FieldItemOrder)
	}
	if m.text != nil {
		fields = append(fields, testitem.FieldText)
	}
	if m.counts_dg != nil {
		fields = append(fields, testitem.FieldCountsDg)
	}
	if m.age_min_months != nil {
		fields = append(fields, testitem.FieldAgeMinMonths)
	}
	if m.age_max_months != nil {
		fields = append(fields, testitem.FieldAgeMaxMonths)
	}
	if m.is_active != nil {
		fields = append(fields, testitem.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testitem.FieldCreatedAt:
		return m.CreatedAt()
	case testitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case testitem.FieldTestID:
		return m.TestID()
	case testitem.FieldPart:
		return m.Part()
	case testitem.FieldDomain:
		return m.Domain()
	case testitem.FieldItemOrder:
		return m.ItemOrder()
	case testitem.FieldText:
		return m.Text()
	case testitem.FieldCountsDg:
		return m.CountsDg()
	case testitem.FieldAgeMinMonths:
		return m.AgeMinMonths()
	case testitem.FieldAgeMaxMonths:
		return m.AgeMaxMonths()
	case testitem.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case testitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case testitem.FieldTestID:
		return m.OldTestID(ctx)
	case testitem.FieldPart:
		return m.OldPart(ctx)
	case testitem.FieldDomain:
		return m.OldDomain(ctx)
	case testitem.FieldItemOrder:
		return m.OldItemOrder(ctx)
	case testitem.FieldText:
		return m.OldText(ctx)
	case testitem.FieldCountsDg:
		return m.OldCountsDg(ctx)
	case testitem.FieldAgeMinMonths:
		return m.OldAgeMinMonths(ctx)
	case testitem.FieldAgeMaxMonths:
		return m.OldAgeMaxMonths(ctx)
	case testitem.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown TestItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case testitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case testitem.FieldTestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestID(v)
		return nil
	case testitem.FieldPart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPart(v)
		return nil
	case testitem.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case testitem.FieldItemOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemOrder(v)
		return nil
	case testitem.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case testitem.FieldCountsDg:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountsDg(v)
		return nil
	case testitem.FieldAgeMinMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeMinMonths(v)
		return nil
	case testitem.FieldAgeMaxMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeMaxMonths(v)
		return nil
	case testitem.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown TestItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestItemMutation) AddedFields() []string {
	var fields []string
	if m.additem_order != nil {
		fields = append(fields, testitem.FieldItemOrder)
	}
	if m.addage_min_months != nil {
		fields = append(fields, testitem.FieldAgeMinMonths)
	}
	if m.addage_max_months != nil {
		fields = append(fields, testitem.FieldAgeMaxMonths)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testitem.FieldItemOrder:
		return m.AddedItemOrder()
	case testitem.FieldAgeMinMonths:
		return m.AddedAgeMinMonths()
	case testitem.FieldAgeMaxMonths:
		return m.AddedAgeMaxMonths()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testitem.FieldItemOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemOrder(v)
		return nil
	case testitem.FieldAgeMinMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgeMinMonths(v)
		return nil
	case testitem.FieldAgeMaxMonths:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgeMaxMonths(v)
		return nil
	}
	return fmt.Errorf("unknown TestItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testitem.FieldAgeMinMonths) {
		fields = append(fields, testitem.FieldAgeMinMonths)
	}
	if m.FieldCleared(testitem.FieldAgeMaxMonths) {
		fields = append(fields, testitem.FieldAgeMaxMonths)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestItemMutation) ClearField(name string) error {
	switch name {
	case testitem.FieldAgeMinMonths:
		m.ClearAgeMinMonths()
		return nil
	case testitem.FieldAgeMaxMonths:
		m.ClearAgeMaxMonths()
		return nil
	}
	return fmt.Errorf("unknown TestItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestItemMutation) ResetField(name string) error {
	switch name {
	case testitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case testitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case testitem.FieldTestID:
		m.ResetTestID()
		return nil
	case testitem.FieldPart:
		m.ResetPart()
		return nil
	case testitem.FieldDomain:
		m.ResetDomain()
		return nil
	case testitem.FieldItemOrder:
		m.ResetItemOrder()
		return nil
	case testitem.FieldText:
		m.ResetText()
		return nil
	case testitem.FieldCountsDg:
		m.ResetCountsDg()
		return nil
	case testitem.FieldAgeMinMonths:
		m.ResetAgeMinMonths()
		return nil
	case testitem.FieldAgeMaxMonths:
		m.ResetAgeMaxMonths()
		return nil
	case testitem.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown TestItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.test != nil {
		edges = append(edges, testitem.EdgeTest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testitem.EdgeTest:
		if id := m.test; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtest {
		edges = append(edges, testitem.EdgeTest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestItemMutation) EdgeCleared(name string) bool {
	switch name {
	case testitem.EdgeTest:
		return m.clearedtest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestItemMutation) ClearEdge(name string) error {
	switch name {
	case testitem.EdgeTest:
		m.ClearTest()
		return nil
	}
	return fmt.Errorf("unknown TestItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestItemMutation) ResetEdge(name string) error {
	switch name {
	case testitem.EdgeTest:
		m.ResetTest()
		return nil
	}
	return fmt.Errorf("unknown TestItem edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	first_name           *string
	last_name            *string
	email                *string
	phone                *string
	password_hash        *string
	role                 *user.Role
	rpps_number          *string
	status               *user.Status
	last_login_at        *time.Time
	clearedFields        map[string]struct{}
	patients             map[uuid.UUID]struct{}
	removedpatients      map[uuid.UUID]struct{}
	clearedpatients      bool
	prescriptions        map[uuid.UUID]struct{}
	removedprescriptions map[uuid.UUID]struct{}
	clearedprescriptions bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetRppsNumber sets the "rpps_number" field.
func (m *UserMutation) SetRppsNumber(s string) {
	m.rpps_number = &s
}

// RppsNumber returns the value of the "rpps_number" field in the mutation.
func (m *UserMutation) RppsNumber() (r string, exists bool) {
	v := m.rpps_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRppsNumber returns the old "rpps_number" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRppsNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRppsNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRppsNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRppsNumber: %w", err)
	}
	return oldValue.RppsNumber, nil
}

// ClearRppsNumber clears the value of the "rpps_number" field.
func (m *UserMutation) ClearRppsNumber() {
	m.rpps_number = nil
	m.clearedFields[user.FieldRppsNumber] = struct{}{}
}

// RppsNumberCleared returns if the "rpps_number" field was cleared in this mutation.
func (m *UserMutation) RppsNumberCleared() bool {
	_, ok := m.clearedFields[user.FieldRppsNumber]
	return ok
}

// ResetRppsNumber resets all changes to the "rpps_number" field.
func (m *UserMutation) ResetRppsNumber() {
	m.rpps_number = nil
	delete(m.clearedFields, user.FieldRppsNumber)
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// AddPatientIDs adds the "patients" edge to the Patient entity by ids.
func (m *UserMutation) AddPatientIDs(ids ...uuid.UUID) {
	if m.patients == nil {
		m.patients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.patients[ids[i]] = struct{}{}
	}
}

// ClearPatients clears the "patients" edge to the Patient entity.
func (m *UserMutation) ClearPatients() {
	m.clearedpatients = true
}

// PatientsCleared reports if the "patients" edge to the Patient entity was cleared.
func (m *UserMutation) PatientsCleared() bool {
	return m.clearedpatients
}

// RemovePatientIDs removes the "patients" edge to the Patient entity by IDs.
func (m *UserMutation) RemovePatientIDs(ids ...uuid.UUID) {
	if m.removedpatients == nil {
		m.removedpatients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.patients, ids[i])
		m.removedpatients[ids[i]] = struct{}{}
	}
}

// RemovedPatients returns the removed IDs of the "patients" edge to the Patient entity.
func (m *UserMutation) RemovedPatientsIDs() (ids []uuid.UUID) {
	for id := range m.removedpatients {
		ids = append(ids, id)
	}
	return
}

// PatientsIDs returns the "patients" edge IDs in the mutation.
func (m *UserMutation) PatientsIDs() (ids []uuid.UUID) {
	for id := range m.patients {
		ids = append(ids, id)
	}
	return
}

// ResetPatients resets all changes to the "patients" edge.
func (m *UserMutation) ResetPatients() {
	m.patients = nil
	m.clearedpatients = false
	m.removedpatients = nil
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by ids.
func (m *UserMutation) AddPrescriptionIDs(ids ...uuid.UUID) {
	if m.prescriptions == nil {
		m.prescriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.prescriptions[ids[i]] = struct{}{}
	}
}

// ClearPrescriptions clears the "prescriptions" edge to the Prescription entity.
func (m *UserMutation) ClearPrescriptions() {
	m.clearedprescriptions = true
}

// PrescriptionsCleared reports if the "prescriptions" edge to the Prescription entity was cleared.
func (m *UserMutation) PrescriptionsCleared() bool {
	return m.clearedprescriptions
}

// RemovePrescriptionIDs removes the "prescriptions" edge to the Prescription entity by IDs.
func (m *UserMutation) RemovePrescriptionIDs(ids ...uuid.UUID) {
	if m.removedprescriptions == nil {
		m.removedprescriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.prescriptions, ids[i])
		m.removedprescriptions[ids[i]] = struct{}{}
	}
}

// RemovedPrescriptions returns the removed IDs of the "prescriptions" edge to the Prescription entity.
func (m *UserMutation) RemovedPrescriptionsIDs() (ids []uuid.UUID) {
	for id := range m.removedprescriptions {
		ids = append(ids, id)
	}
	return
}

// PrescriptionsIDs returns the "prescriptions" edge IDs in the mutation.
func (m *UserMutation) PrescriptionsIDs() (ids []uuid.UUID) {
	for id := range m.prescriptions {
		ids = append(ids, id)
	}
	return
}

// ResetPrescriptions resets all changes to the "prescriptions" edge.
func (m *UserMutation) ResetPrescriptions() {
	m.prescriptions = nil
	m.clearedprescriptions = false
	m.removedprescriptions = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.rpps_number != nil {
		fields = append(fields, user.FieldRppsNumber)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldRppsNumber:
		return m.RppsNumber()
	case user.FieldStatus:
		return m.Status()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldRppsNumber:
		return m.OldRppsNumber(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldRppsNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRppsNumber(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldRppsNumber) {
		fields = append(fields, user.FieldRppsNumber)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldRppsNumber:
		m.ClearRppsNumber()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldRppsNumber:
		m.ResetRppsNumber()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patients != nil {
		edges = append(edges, user.EdgePatients)
	}
	if m.prescriptions != nil {
		edges = append(edges, user.EdgePrescriptions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePatients:
		ids := make([]ent.Value, 0, len(m.patients))
		for id := range m.patients {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePrescriptions:
		ids := make([]ent.Value, 0, len(m.prescriptions))
		for id := range m.prescriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpatients != nil {
		edges = append(edges, user.EdgePatients)
	}
	if m.removedprescriptions != nil {
		edges = append(edges, user.EdgePrescriptions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePatients:
		ids := make([]ent.Value, 0, len(m.removedpatients))
		for id := range m.removedpatients {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePrescriptions:
		ids := make([]ent.Value, 0, len(m.removedprescriptions))
		for id := range m.removedprescriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatients {
		edges = append(edges, user.EdgePatients)
	}
	if m.clearedprescriptions {
		edges = append(edges, user.EdgePrescriptions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgePatients:
		return m.clearedpatients
	case user.EdgePrescriptions:
		return m.clearedprescriptions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgePatients:
		m.ResetPatients()
		return nil
	case user.EdgePrescriptions:
		m.ResetPrescriptions()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
