// Package patient manages the children followed by a practitioner. All
// reads and writes are scoped to the owning practitioner; the social
// security number is encrypted at rest.
package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nyaruka/phonenumbers"

	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
	entpatient "github.com/ortholab/depisto_backend/internal/repo/patient"
	"github.com/ortholab/depisto_backend/pkg/crypto"
)

// defaultPhoneRegion resolves national numbers; guardians may still enter
// full E.164 numbers from any region.
const defaultPhoneRegion = "FR"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type CreateRequest struct {
	FirstName      string
	LastName       string
	BirthDate      time.Time
	GuardianEmail  string
	GuardianPhone  *string
	SocialSecurity *string
	Notes          *string
}

type UpdateRequest struct {
	FirstName      *string
	LastName       *string
	BirthDate      *time.Time
	GuardianEmail  *string
	GuardianPhone  *string
	SocialSecurity *string
	Notes          *string
}

type ListRequest struct {
	Page      int
	PerPage   int
	Activated *bool
	// AgeMinMonths/AgeMaxMonths filter on the age at query time.
	AgeMinMonths *int
	AgeMaxMonths *int
	Order        string // asc | desc on created_at
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, practitionerID uuid.UUID, req CreateRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, practitionerID, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, practitionerID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, practitionerID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
	// Delete soft-deletes; the row is kept for the legal retention period.
	Delete(ctx context.Context, practitionerID, patientID uuid.UUID) error

	// SocialSecurity decrypts the stored number for display.
	SocialSecurity(ctx context.Context, practitionerID, patientID uuid.UUID) (string, error)
	// AgeMonths returns the patient's current chronological age.
	AgeMonths(ctx context.Context, practitionerID, patientID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	clock  clockwork.Clock
	aesKey []byte
}

func New(db *repo.Client, clock clockwork.Clock, aesKey []byte) Service {
	return &patientService{db: db, clock: clock, aesKey: aesKey}
}

func (s *patientService) Create(ctx context.Context, practitionerID uuid.UUID, req CreateRequest) (*repo.Patient, error) {
	if !req.BirthDate.Before(s.clock.Now()) {
		return nil, ErrInvalidBirthDate
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.GuardianEmail(req.GuardianEmail), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check guardian email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	c := s.db.Patient.Create().
		SetPractitionerID(practitionerID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetBirthDate(req.BirthDate).
		SetGuardianEmail(req.GuardianEmail).
		SetNillableNotes(req.Notes)

	if req.GuardianPhone != nil {
		normalized, err := normalizePhone(*req.GuardianPhone)
		if err != nil {
			return nil, err
		}
		c = c.SetGuardianPhone(normalized)
	}
	if req.SocialSecurity != nil {
		encrypted, err := crypto.Encrypt(s.aesKey, *req.SocialSecurity)
		if err != nil {
			return nil, fmt.Errorf("encrypt social security number: %w", err)
		}
		c = c.SetSocialSecurityEncrypted(encrypted)
	}

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, practitionerID, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if p.PractitionerID != practitionerID {
		return nil, ErrAccessDenied
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, practitionerID uuid.UUID, req ListRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.PractitionerID(practitionerID), entpatient.DeletedAtIsNil())

	if req.Activated != nil {
		q = q.Where(entpatient.Activated(*req.Activated))
	}

	// Age filters translate to birth-date bounds.
	now := s.clock.Now()
	if req.AgeMinMonths != nil {
		q = q.Where(entpatient.BirthDateLTE(now.AddDate(0, -*req.AgeMinMonths, 0)))
	}
	if req.AgeMaxMonths != nil {
		q = q.Where(entpatient.BirthDateGTE(now.AddDate(0, -*req.AgeMaxMonths-1, 0)))
	}

	if req.Order == "asc" {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderAsc()))
	} else {
		q = q.Order(entpatient.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, practitionerID, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, practitionerID, patientID)
	if err != nil {
		return nil, err
	}

	u := s.db.Patient.UpdateOne(p)

	if req.FirstName != nil {
		u = u.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		u = u.SetLastName(*req.LastName)
	}
	if req.BirthDate != nil {
		if !req.BirthDate.Before(s.clock.Now()) {
			return nil, ErrInvalidBirthDate
		}
		u = u.SetBirthDate(*req.BirthDate)
	}
	if req.GuardianEmail != nil {
		u = u.SetGuardianEmail(*req.GuardianEmail)
	}
	if req.GuardianPhone != nil {
		normalized, err := normalizePhone(*req.GuardianPhone)
		if err != nil {
			return nil, err
		}
		u = u.SetGuardianPhone(normalized)
	}
	if req.SocialSecurity != nil {
		encrypted, err := crypto.Encrypt(s.aesKey, *req.SocialSecurity)
		if err != nil {
			return nil, fmt.Errorf("encrypt social security number: %w", err)
		}
		u = u.SetSocialSecurityEncrypted(encrypted)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	p, err = u.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Delete(ctx context.Context, practitionerID, patientID uuid.UUID) error {
	p, err := s.GetByID(ctx, practitionerID, patientID)
	if err != nil {
		return err
	}
	if _, err := s.db.Patient.UpdateOne(p).
		SetDeletedAt(s.clock.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("soft-delete patient: %w", err)
	}
	return nil
}

func (s *patientService) SocialSecurity(ctx context.Context, practitionerID, patientID uuid.UUID) (string, error) {
	p, err := s.GetByID(ctx, practitionerID, patientID)
	if err != nil {
		return "", err
	}
	if p.SocialSecurityEncrypted == nil || *p.SocialSecurityEncrypted == "" {
		return "", nil
	}
	plain, err := crypto.Decrypt(s.aesKey, *p.SocialSecurityEncrypted)
	if err != nil {
		return "", fmt.Errorf("decrypt social security number: %w", err)
	}
	return plain, nil
}

func (s *patientService) AgeMonths(ctx context.Context, practitionerID, patientID uuid.UUID) (int, error) {
	p, err := s.GetByID(ctx, practitionerID, patientID)
	if err != nil {
		return 0, err
	}
	return ide.AgeInMonths(p.BirthDate, s.clock.Now()), nil
}

func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
