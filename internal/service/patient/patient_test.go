package patient

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
)

// testKey is a throwaway AES-256 key; real deployments load it from config.
var testKey = []byte("0123456789abcdef0123456789abcdef")

type fixture struct {
	client       *repo.Client
	svc          Service
	clock        *clockwork.FakeClock
	practitioner *repo.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC))

	practitioner, err := client.User.Create().
		SetFirstName("Claire").
		SetLastName("Moreau").
		SetEmail("claire.moreau@example.fr").
		SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create practitioner: %v", err)
	}

	return &fixture{
		client:       client,
		svc:          New(client, clock, testKey),
		clock:        clock,
		practitioner: practitioner,
	}
}

func (f *fixture) create(t *testing.T, email string) *repo.Patient {
	t.Helper()
	p, err := f.svc.Create(context.Background(), f.practitioner.ID, CreateRequest{
		FirstName:     "Léo",
		LastName:      "Moreau",
		BirthDate:     time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC),
		GuardianEmail: email,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return p
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phone := "06 12 34 56 78"
	ssn := "1 21 12 75 123 456 78"
	notes := "Suivi depuis janvier."
	p, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		FirstName:      "Léo",
		LastName:       "Moreau",
		BirthDate:      time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC),
		GuardianEmail:  "parent@example.fr",
		GuardianPhone:  &phone,
		SocialSecurity: &ssn,
		Notes:          &notes,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if p.GuardianPhone == nil || *p.GuardianPhone != "+33612345678" {
		t.Errorf("phone = %v, want +33612345678 (E.164)", p.GuardianPhone)
	}
	if p.Activated {
		t.Error("new patient must not be activated")
	}

	// Never stored in clear.
	if p.SocialSecurityEncrypted == nil || *p.SocialSecurityEncrypted == ssn {
		t.Error("social security number stored unencrypted")
	}

	plain, err := f.svc.SocialSecurity(ctx, f.practitioner.ID, p.ID)
	if err != nil {
		t.Fatalf("SocialSecurity() error = %v", err)
	}
	if plain != ssn {
		t.Errorf("decrypted = %q, want %q", plain, ssn)
	}
}

func TestCreateValidations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("future birth date", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
			FirstName:     "Léo",
			LastName:      "Moreau",
			BirthDate:     f.clock.Now().AddDate(0, 1, 0),
			GuardianEmail: "futur@example.fr",
		})
		if !errors.Is(err, ErrInvalidBirthDate) {
			t.Errorf("error = %v, want ErrInvalidBirthDate", err)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		phone := "12"
		_, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
			FirstName:     "Léo",
			LastName:      "Moreau",
			BirthDate:     time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC),
			GuardianEmail: "tel@example.fr",
			GuardianPhone: &phone,
		})
		if !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("error = %v, want ErrInvalidPhone", err)
		}
	})

	t.Run("duplicate guardian email", func(t *testing.T) {
		f.create(t, "dup@example.fr")
		_, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
			FirstName:     "Emma",
			LastName:      "Petit",
			BirthDate:     time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
			GuardianEmail: "dup@example.fr",
		})
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("error = %v, want ErrEmailTaken", err)
		}
	})
}

func TestGetOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.create(t, "parent@example.fr")

	if _, err := f.svc.GetByID(ctx, f.practitioner.ID, p.ID); err != nil {
		t.Errorf("GetByID() error = %v", err)
	}
	if _, err := f.svc.GetByID(ctx, uuid.New(), p.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("GetByID(stranger) error = %v, want ErrAccessDenied", err)
	}
	if _, err := f.svc.GetByID(ctx, f.practitioner.ID, uuid.New()); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("GetByID(unknown) error = %v, want ErrPatientNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.create(t, "parent@example.fr")

	firstName := "Léon"
	ssn := "2 19 05 33 789 012 34"
	p, err := f.svc.Update(ctx, f.practitioner.ID, p.ID, UpdateRequest{
		FirstName:      &firstName,
		SocialSecurity: &ssn,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if p.FirstName != "Léon" {
		t.Errorf("first name = %q, want Léon", p.FirstName)
	}

	plain, err := f.svc.SocialSecurity(ctx, f.practitioner.ID, p.ID)
	if err != nil {
		t.Fatalf("SocialSecurity() error = %v", err)
	}
	if plain != ssn {
		t.Errorf("decrypted = %q, want %q", plain, ssn)
	}

	// Unowned updates are rejected before any write.
	if _, err := f.svc.Update(ctx, uuid.New(), p.ID, UpdateRequest{FirstName: &firstName}); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Update(stranger) error = %v, want ErrAccessDenied", err)
	}
}

func TestSocialSecurityEmpty(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, "parent@example.fr")

	plain, err := f.svc.SocialSecurity(context.Background(), f.practitioner.ID, p.ID)
	if err != nil {
		t.Fatalf("SocialSecurity() error = %v", err)
	}
	if plain != "" {
		t.Errorf("decrypted = %q, want empty for a patient without one", plain)
	}
}

func TestDeleteIsSoft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.create(t, "parent@example.fr")

	if err := f.svc.Delete(ctx, f.practitioner.ID, p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Hidden from the service...
	if _, err := f.svc.GetByID(ctx, f.practitioner.ID, p.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("GetByID(deleted) error = %v, want ErrPatientNotFound", err)
	}

	// ...but the row is retained.
	row, err := f.client.Patient.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("raw get: %v", err)
	}
	if row.DeletedAt == nil {
		t.Error("deleted_at not set")
	}
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.create(t, "parent1@example.fr")
	f.create(t, "parent2@example.fr")

	res, err := f.svc.List(ctx, f.practitioner.ID, ListRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 2 || len(res.Data) != 2 {
		t.Fatalf("total = %d, rows = %d, want 2 each", res.Total, len(res.Data))
	}

	res, err = f.svc.List(ctx, f.practitioner.ID, ListRequest{Page: 1, PerPage: 1})
	if err != nil {
		t.Fatalf("List(paged) error = %v", err)
	}
	if res.Total != 2 || len(res.Data) != 1 || res.TotalPages != 2 {
		t.Errorf("paged result = total %d, rows %d, pages %d", res.Total, len(res.Data), res.TotalPages)
	}

	activated := true
	res, err = f.svc.List(ctx, f.practitioner.ID, ListRequest{Activated: &activated})
	if err != nil {
		t.Fatalf("List(activated) error = %v", err)
	}
	if res.Total != 0 {
		t.Errorf("activated filter total = %d, want 0", res.Total)
	}

	// Deleted patients drop out of listings.
	if err := f.svc.Delete(ctx, f.practitioner.ID, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	res, err = f.svc.List(ctx, f.practitioner.ID, ListRequest{})
	if err != nil {
		t.Fatalf("List(after delete) error = %v", err)
	}
	if res.Total != 1 {
		t.Errorf("total after delete = %d, want 1", res.Total)
	}

	// Practitioners only see their own caseload.
	res, err = f.svc.List(ctx, uuid.New(), ListRequest{})
	if err != nil {
		t.Fatalf("List(stranger) error = %v", err)
	}
	if res.Total != 0 {
		t.Errorf("stranger total = %d, want 0", res.Total)
	}
}

func TestAgeMonths(t *testing.T) {
	f := newFixture(t)
	p := f.create(t, "parent@example.fr") // born 2021-12-01, clock at 2024-06-01

	age, err := f.svc.AgeMonths(context.Background(), f.practitioner.ID, p.ID)
	if err != nil {
		t.Fatalf("AgeMonths() error = %v", err)
	}
	if age != 30 {
		t.Errorf("age = %d months, want 30", age)
	}
}
