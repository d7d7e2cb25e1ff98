package prescription

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
	entpresc "github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
)

type fixture struct {
	client       *repo.Client
	svc          Service
	clock        *clockwork.FakeClock
	practitioner *repo.User
	patient      *repo.Patient
	test         *repo.Test
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

	patient, err := client.Patient.Create().
		SetPractitionerID(practitioner.ID).
		SetFirstName("Léo").
		SetLastName("Moreau").
		SetBirthDate(time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC)). // 30 months
		SetGuardianEmail("parent@example.fr").
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	test, err := client.Test.Create().
		SetName("Inventaire du Développement de l'Enfant").
		Save(ctx)
	if err != nil {
		t.Fatalf("create test: %v", err)
	}

	return &fixture{
		client:       client,
		svc:          New(client, catalog.New(client, nil), clock, nil),
		clock:        clock,
		practitioner: practitioner,
		patient:      patient,
		test:         test,
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	deadline := f.clock.Now().Add(14 * 24 * time.Hour)
	p, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID:   f.patient.ID,
		TestID:      f.test.ID,
		GdprConsent: true,
		Priority:    1,
		Deadline:    &deadline,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.Status != entpresc.StatusPending {
		t.Errorf("status = %s, want pending", p.Status)
	}
	if p.Priority != 1 {
		t.Errorf("priority = %d, want 1", p.Priority)
	}
	if !p.GdprConsent {
		t.Error("gdpr consent not stored")
	}
}

func TestCreateDefaultsPriority(t *testing.T) {
	f := newFixture(t)

	p, err := f.svc.Create(context.Background(), f.practitioner.ID, CreateRequest{
		PatientID: f.patient.ID,
		TestID:    f.test.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.Priority != 2 {
		t.Errorf("priority = %d, want default 2", p.Priority)
	}
}

func TestCreateValidations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("unknown patient", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
			PatientID: uuid.New(),
			TestID:    f.test.ID,
		})
		if !errors.Is(err, ErrPatientNotFound) {
			t.Errorf("error = %v, want ErrPatientNotFound", err)
		}
	})

	t.Run("patient of another practitioner", func(t *testing.T) {
		_, err := f.svc.Create(ctx, uuid.New(), CreateRequest{
			PatientID: f.patient.ID,
			TestID:    f.test.ID,
		})
		if !errors.Is(err, ErrPatientNotOwned) {
			t.Errorf("error = %v, want ErrPatientNotOwned", err)
		}
	})

	t.Run("unknown test", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
			PatientID: f.patient.ID,
			TestID:    uuid.New(),
		})
		if !errors.Is(err, ErrTestNotFound) {
			t.Errorf("error = %v, want ErrTestNotFound", err)
		}
	})
}

func TestCreateAgeWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A newborn is below the test's 15-month floor.
	baby, err := f.client.Patient.Create().
		SetPractitionerID(f.practitioner.ID).
		SetFirstName("Nina").
		SetLastName("Moreau").
		SetBirthDate(f.clock.Now().AddDate(0, -3, 0)).
		SetGuardianEmail("nina.parent@example.fr").
		Save(ctx)
	if err != nil {
		t.Fatalf("create baby: %v", err)
	}

	_, err = f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: baby.ID,
		TestID:    f.test.ID,
	})
	if !errors.Is(err, ErrAgeOutOfRange) {
		t.Errorf("Create() error = %v, want ErrAgeOutOfRange", err)
	}

	// And an eight-year-old is above the 72-month ceiling.
	older, err := f.client.Patient.Create().
		SetPractitionerID(f.practitioner.ID).
		SetFirstName("Tom").
		SetLastName("Moreau").
		SetBirthDate(f.clock.Now().AddDate(-8, 0, 0)).
		SetGuardianEmail("tom.parent@example.fr").
		Save(ctx)
	if err != nil {
		t.Fatalf("create older child: %v", err)
	}

	_, err = f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: older.ID,
		TestID:    f.test.ID,
	})
	if !errors.Is(err, ErrAgeOutOfRange) {
		t.Errorf("Create() error = %v, want ErrAgeOutOfRange", err)
	}
}

func TestGetOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: f.patient.ID,
		TestID:    f.test.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := f.svc.Get(ctx, p.ID, f.practitioner.ID); err != nil {
		t.Errorf("Get() error = %v", err)
	}
	if _, err := f.svc.Get(ctx, p.ID, uuid.New()); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Get(stranger) error = %v, want ErrAccessDenied", err)
	}
	if _, err := f.svc.Get(ctx, uuid.New(), f.practitioner.ID); !errors.Is(err, ErrPrescriptionNotFound) {
		t.Errorf("Get(unknown) error = %v, want ErrPrescriptionNotFound", err)
	}
}

func TestUpdateOnlyPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: f.patient.ID,
		TestID:    f.test.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	consent := true
	priority := 1
	p, err = f.svc.Update(ctx, p.ID, f.practitioner.ID, UpdateRequest{
		GdprConsent: &consent,
		Priority:    &priority,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !p.GdprConsent || p.Priority != 1 {
		t.Errorf("update not applied: consent=%v priority=%d", p.GdprConsent, p.Priority)
	}

	if _, err := f.client.Prescription.UpdateOneID(p.ID).
		SetStatus(entpresc.StatusInProgress).
		Save(ctx); err != nil {
		t.Fatalf("advance status: %v", err)
	}

	if _, err := f.svc.Update(ctx, p.ID, f.practitioner.ID, UpdateRequest{Priority: &priority}); !errors.Is(err, ErrNotEditable) {
		t.Errorf("Update(in_progress) error = %v, want ErrNotEditable", err)
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: f.patient.ID,
		TestID:    f.test.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := f.svc.Cancel(ctx, p.ID, f.practitioner.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	// Cancelling twice is a no-op.
	if err := f.svc.Cancel(ctx, p.ID, f.practitioner.ID); err != nil {
		t.Errorf("second Cancel() error = %v", err)
	}

	reloaded, err := f.client.Prescription.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != entpresc.StatusCancelled {
		t.Errorf("status = %s, want cancelled", reloaded.Status)
	}
}

func TestCancelValidatedRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: f.patient.ID,
		TestID:    f.test.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.client.Prescription.UpdateOneID(p.ID).
		SetStatus(entpresc.StatusValidated).
		Save(ctx); err != nil {
		t.Fatalf("advance status: %v", err)
	}

	if err := f.svc.Cancel(ctx, p.ID, f.practitioner.ID); !errors.Is(err, ErrNotCancellable) {
		t.Errorf("Cancel(validated) error = %v, want ErrNotCancellable", err)
	}
}

func TestListFiltersAndOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	urgent, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: f.patient.ID,
		TestID:    f.test.ID,
		Priority:  1,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: f.patient.ID,
		TestID:    f.test.ID,
		Priority:  3,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rows, err := f.svc.List(ctx, f.practitioner.ID, ListRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ID != urgent.ID {
		t.Error("urgent prescription must list first")
	}

	status := "pending"
	rows, err = f.svc.List(ctx, f.practitioner.ID, ListRequest{Status: &status})
	if err != nil {
		t.Fatalf("List(status) error = %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("status filter got %d rows, want 2", len(rows))
	}

	rows, err = f.svc.List(ctx, uuid.New(), ListRequest{})
	if err != nil {
		t.Fatalf("List(stranger) error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("stranger sees %d rows, want 0", len(rows))
	}
}

func TestOverdueAndStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	past := f.clock.Now().Add(-24 * time.Hour)
	future := f.clock.Now().Add(14 * 24 * time.Hour)

	if _, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: f.patient.ID,
		TestID:    f.test.ID,
		Deadline:  &past,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.svc.Create(ctx, f.practitioner.ID, CreateRequest{
		PatientID: f.patient.ID,
		TestID:    f.test.ID,
		Deadline:  &future,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	overdue, err := f.svc.Overdue(ctx, f.practitioner.ID)
	if err != nil {
		t.Fatalf("Overdue() error = %v", err)
	}
	if len(overdue) != 1 {
		t.Errorf("got %d overdue, want 1", len(overdue))
	}

	stats, err := f.svc.Stats(ctx, f.practitioner.ID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.ByStatus["pending"] != 2 {
		t.Errorf("pending count = %d, want 2", stats.ByStatus["pending"])
	}
	if stats.Overdue != 1 {
		t.Errorf("overdue count = %d, want 1", stats.Overdue)
	}
}
