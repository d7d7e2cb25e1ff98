// Package prescription manages the assignment of screening tests to
// patients. A prescription is the aggregate root owning passations and
// bilans; its status mirrors the screening cycle.
package prescription

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"

	"github.com/ortholab/depisto_backend/internal/events"
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
	entpatient "github.com/ortholab/depisto_backend/internal/repo/patient"
	entpresc "github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	PatientID    uuid.UUID
	TestID       uuid.UUID
	GdprConsent  bool
	Priority     int // 1 = urgent, 2 = normal, 3 = low; 0 defaults to 2
	Deadline     *time.Time
	Instructions *string
}

type UpdateRequest struct {
	GdprConsent  *bool
	Priority     *int
	Deadline     *time.Time
	Instructions *string
}

type ListRequest struct {
	Status    *string
	PatientID *uuid.UUID
	Page      int
	PerPage   int
}

// Stats aggregates prescription figures for the practitioner dashboard.
type Stats struct {
	ByStatus map[string]int `json:"by_status"`
	Overdue  int            `json:"overdue"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, practitionerID uuid.UUID, req CreateRequest) (*repo.Prescription, error)
	Get(ctx context.Context, id, practitionerID uuid.UUID) (*repo.Prescription, error)

	// Update edits the assignment terms; only pending prescriptions are
	// editable.
	Update(ctx context.Context, id, practitionerID uuid.UUID, req UpdateRequest) (*repo.Prescription, error)
	Cancel(ctx context.Context, id, practitionerID uuid.UUID) error

	List(ctx context.Context, practitionerID uuid.UUID, req ListRequest) ([]*repo.Prescription, error)
	ForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Prescription, error)
	// Overdue lists open prescriptions whose deadline has passed.
	Overdue(ctx context.Context, practitionerID uuid.UUID) ([]*repo.Prescription, error)

	Stats(ctx context.Context, practitionerID uuid.UUID) (*Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db      *repo.Client
	catalog catalog.Service
	clock   clockwork.Clock
	nc      *nats.Conn
}

func New(db *repo.Client, cat catalog.Service, clock clockwork.Clock, nc *nats.Conn) Service {
	return &service{db: db, catalog: cat, clock: clock, nc: nc}
}

func (s *service) Create(ctx context.Context, practitionerID uuid.UUID, req CreateRequest) (*repo.Prescription, error) {
	patient, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if patient.PractitionerID != practitionerID {
		return nil, ErrPatientNotOwned
	}

	t, err := s.catalog.GetTest(ctx, req.TestID)
	if err != nil {
		if err == catalog.ErrTestNotFound {
			return nil, ErrTestNotFound
		}
		return nil, err
	}

	age := ide.AgeInMonths(patient.BirthDate, s.clock.Now())
	if age < t.AgeMinMonths || age > t.AgeMaxMonths {
		return nil, fmt.Errorf("%w: %d months, test covers %d-%d",
			ErrAgeOutOfRange, age, t.AgeMinMonths, t.AgeMaxMonths)
	}

	priority := req.Priority
	if priority == 0 {
		priority = 2
	}

	p, err := s.db.Prescription.Create().
		SetPractitionerID(practitionerID).
		SetPatientID(req.PatientID).
		SetTestID(req.TestID).
		SetGdprConsent(req.GdprConsent).
		SetPriority(priority).
		SetNillableDeadline(req.Deadline).
		SetNillableInstructions(req.Instructions).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}

	events.Publish(s.nc, events.SubjectPrescriptionCreated, req.PatientID.String(), []byte(p.ID.String()))

	return p, nil
}

func (s *service) Get(ctx context.Context, id, practitionerID uuid.UUID) (*repo.Prescription, error) {
	p, err := s.db.Prescription.Query().
		Where(entpresc.ID(id)).
		WithPatient().
		WithTest().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	if p.PractitionerID != practitionerID {
		return nil, ErrAccessDenied
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, id, practitionerID uuid.UUID, req UpdateRequest) (*repo.Prescription, error) {
	p, err := s.Get(ctx, id, practitionerID)
	if err != nil {
		return nil, err
	}
	if p.Status != entpresc.StatusPending {
		return nil, ErrNotEditable
	}

	update := s.db.Prescription.UpdateOne(p).
		SetNillableGdprConsent(req.GdprConsent).
		SetNillablePriority(req.Priority).
		SetNillableDeadline(req.Deadline).
		SetNillableInstructions(req.Instructions)

	p, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update prescription: %w", err)
	}
	return p, nil
}

func (s *service) Cancel(ctx context.Context, id, practitionerID uuid.UUID) error {
	p, err := s.Get(ctx, id, practitionerID)
	if err != nil {
		return err
	}
	if p.Status == entpresc.StatusValidated {
		return ErrNotCancellable
	}
	if p.Status == entpresc.StatusCancelled {
		return nil
	}

	if _, err := s.db.Prescription.UpdateOne(p).
		SetStatus(entpresc.StatusCancelled).
		Save(ctx); err != nil {
		return fmt.Errorf("cancel prescription: %w", err)
	}
	return nil
}

func (s *service) List(ctx context.Context, practitionerID uuid.UUID, req ListRequest) ([]*repo.Prescription, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Prescription.Query().
		Where(entpresc.PractitionerID(practitionerID))

	if req.Status != nil {
		q = q.Where(entpresc.StatusEQ(entpresc.Status(*req.Status)))
	}
	if req.PatientID != nil {
		q = q.Where(entpresc.PatientID(*req.PatientID))
	}

	rows, err := q.
		WithPatient().
		Order(entpresc.ByPriority(sql.OrderAsc()), entpresc.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return rows, nil
}

func (s *service) ForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Prescription, error) {
	rows, err := s.db.Prescription.Query().
		Where(entpresc.PatientID(patientID)).
		WithTest().
		Order(entpresc.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions for patient: %w", err)
	}
	return rows, nil
}

func (s *service) Overdue(ctx context.Context, practitionerID uuid.UUID) ([]*repo.Prescription, error) {
	rows, err := s.db.Prescription.Query().
		Where(
			entpresc.PractitionerID(practitionerID),
			entpresc.StatusIn(entpresc.StatusPending, entpresc.StatusInProgress),
			entpresc.DeadlineNotNil(),
			entpresc.DeadlineLT(s.clock.Now()),
		).
		WithPatient().
		Order(entpresc.ByDeadline(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overdue prescriptions: %w", err)
	}
	return rows, nil
}

func (s *service) Stats(ctx context.Context, practitionerID uuid.UUID) (*Stats, error) {
	var byStatus []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := s.db.Prescription.Query().
		Where(entpresc.PractitionerID(practitionerID)).
		GroupBy(entpresc.FieldStatus).
		Aggregate(repo.Count()).
		Scan(ctx, &byStatus); err != nil {
		return nil, fmt.Errorf("aggregate prescription statuses: %w", err)
	}

	overdue, err := s.db.Prescription.Query().
		Where(
			entpresc.PractitionerID(practitionerID),
			entpresc.StatusIn(entpresc.StatusPending, entpresc.StatusInProgress),
			entpresc.DeadlineNotNil(),
			entpresc.DeadlineLT(s.clock.Now()),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count overdue prescriptions: %w", err)
	}

	stats := &Stats{ByStatus: make(map[string]int, len(byStatus)), Overdue: overdue}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}
	return stats, nil
}
