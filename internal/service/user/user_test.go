package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ortholab/depisto_backend/internal/repo"
	"github.com/ortholab/depisto_backend/internal/repo/enttest"
	entuser "github.com/ortholab/depisto_backend/internal/repo/user"
)

type fixture struct {
	client *repo.Client
	svc    Service
	clock  *clockwork.FakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	clock := clockwork.NewFakeClockAt(time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC))

	return &fixture{
		client: client,
		svc:    New(client, clock),
		clock:  clock,
	}
}

func (f *fixture) create(t *testing.T, firstName, lastName, email string) *repo.User {
	t.Helper()
	u, err := f.client.User.Create().
		SetFirstName(firstName).
		SetLastName(lastName).
		SetEmail(email).
		SetPasswordHash("x").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.create(t, "Claire", "Moreau", "claire.moreau@example.fr")

	got, err := f.svc.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Email != u.Email {
		t.Errorf("email = %q, want %q", got.Email, u.Email)
	}

	if _, err := f.svc.GetByID(ctx, uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID(unknown) error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.create(t, "Claire", "Moreau", "claire.moreau@example.fr")

	firstName := "Clara"
	phone := "06 12 34 56 78"
	rpps := "10101010101"
	got, err := f.svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{
		FirstName:  &firstName,
		Phone:      &phone,
		RPPSNumber: &rpps,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if got.FirstName != "Clara" {
		t.Errorf("first name = %q, want Clara", got.FirstName)
	}
	if got.Phone == nil || *got.Phone != "+33612345678" {
		t.Errorf("phone = %v, want +33612345678 (E.164)", got.Phone)
	}
	if got.RppsNumber == nil || *got.RppsNumber != rpps {
		t.Errorf("rpps = %v, want %q", got.RppsNumber, rpps)
	}

	// An empty phone clears the field.
	empty := ""
	got, err = f.svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{Phone: &empty})
	if err != nil {
		t.Fatalf("UpdateProfile(clear phone) error = %v", err)
	}
	if got.Phone != nil {
		t.Errorf("phone = %v, want cleared", got.Phone)
	}

	bad := "12"
	if _, err := f.svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{Phone: &bad}); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("UpdateProfile(bad phone) error = %v, want ErrInvalidPhone", err)
	}

	if _, err := f.svc.UpdateProfile(ctx, uuid.New(), UpdateProfileRequest{FirstName: &firstName}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateProfile(unknown) error = %v, want ErrUserNotFound", err)
	}
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.create(t, "Claire", "Moreau", "claire.moreau@example.fr")
	f.create(t, "Antoine", "Bernard", "antoine.bernard@example.fr")
	f.create(t, "Sophie", "Duval", "sophie.duval@example.fr")

	res, err := f.svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 3 || len(res.Items) != 3 {
		t.Fatalf("total = %d, rows = %d, want 3 each", res.Total, len(res.Items))
	}
	// Alphabetical by last name.
	if res.Items[0].LastName != "Bernard" || res.Items[2].LastName != "Moreau" {
		t.Errorf("order = [%s %s %s], want Bernard..Moreau", res.Items[0].LastName, res.Items[1].LastName, res.Items[2].LastName)
	}

	res, err = f.svc.List(ctx, ListRequest{Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("List(paged) error = %v", err)
	}
	if res.Total != 3 || len(res.Items) != 1 {
		t.Errorf("paged result = total %d, rows %d, want 3/1", res.Total, len(res.Items))
	}

	search := "duval"
	res, err = f.svc.List(ctx, ListRequest{Search: &search})
	if err != nil {
		t.Fatalf("List(search) error = %v", err)
	}
	if res.Total != 1 || res.Items[0].LastName != "Duval" {
		t.Errorf("search result = total %d, want the Duval account", res.Total)
	}

	status := "SUSPENDED"
	res, err = f.svc.List(ctx, ListRequest{Status: &status})
	if err != nil {
		t.Fatalf("List(status) error = %v", err)
	}
	if res.Total != 0 {
		t.Errorf("suspended total = %d, want 0", res.Total)
	}
}

func TestSuspendReinstate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.create(t, "Claire", "Moreau", "claire.moreau@example.fr")

	if err := f.svc.Suspend(ctx, u.ID); err != nil {
		t.Fatalf("Suspend() error = %v", err)
	}
	got, _ := f.svc.GetByID(ctx, u.ID)
	if got.Status != entuser.StatusSUSPENDED {
		t.Errorf("status = %s, want SUSPENDED", got.Status)
	}

	if err := f.svc.Reinstate(ctx, u.ID); err != nil {
		t.Fatalf("Reinstate() error = %v", err)
	}
	got, _ = f.svc.GetByID(ctx, u.ID)
	if got.Status != entuser.StatusACTIVE {
		t.Errorf("status = %s, want ACTIVE", got.Status)
	}

	if err := f.svc.Suspend(ctx, uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Suspend(unknown) error = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteIsSoft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.create(t, "Claire", "Moreau", "claire.moreau@example.fr")

	if err := f.svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := f.svc.GetByID(ctx, u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID(deleted) error = %v, want ErrUserNotFound", err)
	}

	res, err := f.svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 0 {
		t.Errorf("total after delete = %d, want 0", res.Total)
	}

	// The row itself is retained.
	row, err := f.client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("raw get: %v", err)
	}
	if row.DeletedAt == nil {
		t.Error("deleted_at not set")
	}
}
