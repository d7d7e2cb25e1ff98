// Package user manages practitioner profiles. Credentials and sessions are
// the auth service's concern.
package user

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nyaruka/phonenumbers"

	"github.com/ortholab/depisto_backend/internal/repo"
	entuser "github.com/ortholab/depisto_backend/internal/repo/user"
)

const defaultPhoneRegion = "FR"

type PaginatedResult[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

type UpdateProfileRequest struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	RPPSNumber *string
}

type ListRequest struct {
	Status  *string
	Search  *string // matches first name, last name or email
	Page    int
	PerPage int
}

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error)

	// Admin operations.
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.User], error)
	Suspend(ctx context.Context, id uuid.UUID) error
	Reinstate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	db    *repo.Client
	clock clockwork.Clock
}

func New(db *repo.Client, clock clockwork.Clock) Service {
	return &userService{db: db, clock: clock}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := s.db.User.UpdateOne(u).
		SetNillableFirstName(req.FirstName).
		SetNillableLastName(req.LastName).
		SetNillableRppsNumber(req.RPPSNumber)

	if req.Phone != nil {
		if *req.Phone == "" {
			update = update.ClearPhone()
		} else {
			num, err := phonenumbers.Parse(*req.Phone, defaultPhoneRegion)
			if err != nil || !phonenumbers.IsValidNumber(num) {
				return nil, ErrInvalidPhone
			}
			update = update.SetPhone(phonenumbers.Format(num, phonenumbers.E164))
		}
	}

	u, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.User], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.User.Query().
		Where(entuser.DeletedAtIsNil())

	if req.Status != nil {
		q = q.Where(entuser.StatusEQ(entuser.Status(*req.Status)))
	}
	if req.Search != nil && *req.Search != "" {
		term := strings.TrimSpace(*req.Search)
		q = q.Where(entuser.Or(
			entuser.FirstNameContainsFold(term),
			entuser.LastNameContainsFold(term),
			entuser.EmailContainsFold(term),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	items, err := q.
		Order(entuser.ByLastName(sql.OrderAsc()), entuser.ByFirstName(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &PaginatedResult[*repo.User]{
		Items:   items,
		Total:   total,
		Page:    req.Page,
		PerPage: req.PerPage,
	}, nil
}

func (s *userService) Suspend(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, entuser.StatusSUSPENDED)
}

func (s *userService) Reinstate(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, entuser.StatusACTIVE)
}

func (s *userService) setStatus(ctx context.Context, id uuid.UUID, status entuser.Status) error {
	n, err := s.db.User.Update().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set user status: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.db.User.UpdateOne(u).
		SetDeletedAt(s.clock.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("soft delete user: %w", err)
	}
	return nil
}
