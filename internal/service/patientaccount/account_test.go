package patientaccount

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ortholab/depisto_backend/config"
	"github.com/ortholab/depisto_backend/internal/repo"
	"github.com/ortholab/depisto_backend/internal/repo/enttest"
	"github.com/ortholab/depisto_backend/pkg/crypto"
	"github.com/ortholab/depisto_backend/pkg/email"
)

type fixture struct {
	client       *repo.Client
	svc          Service
	clock        *clockwork.FakeClock
	practitioner *repo.User
	patient      *repo.Patient
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
		SetBirthDate(time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC)).
		SetGuardianEmail("parent@example.fr").
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	// A disabled mail client: Send returns ErrDisabled, which the service
	// only logs, so no SMTP traffic happens in tests.
	mail, err := email.New(email.Config{})
	if err != nil {
		t.Fatalf("create mail client: %v", err)
	}

	cfg := &config.Config{}
	cfg.Authentication.ActivationTTLHours = 72

	return &fixture{
		client:       client,
		svc:          New(client, nil, mail, nil, nil, clock, nil, cfg),
		clock:        clock,
		practitioner: practitioner,
		patient:      patient,
	}
}

// storeToken inserts an activation token row the way IssueActivation does
// and returns the raw value a guardian would receive by email.
func (f *fixture) storeToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	raw := "t-" + uuid.NewString()
	if _, err := f.client.ActivationToken.Create().
		SetPatientID(f.patient.ID).
		SetTokenHash(crypto.Hash(raw)).
		SetExpiresAt(expiresAt).
		Save(context.Background()); err != nil {
		t.Fatalf("store token: %v", err)
	}
	return raw
}

func TestIssueActivation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.IssueActivation(ctx, f.practitioner.ID, f.patient.ID); err != nil {
		t.Fatalf("IssueActivation() error = %v", err)
	}

	n, err := f.client.ActivationToken.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count tokens: %v", err)
	}
	if n != 1 {
		t.Errorf("token count = %d, want 1", n)
	}

	// Reissuing simply adds another valid token.
	if err := f.svc.IssueActivation(ctx, f.practitioner.ID, f.patient.ID); err != nil {
		t.Fatalf("second IssueActivation() error = %v", err)
	}
	n, _ = f.client.ActivationToken.Query().Count(ctx)
	if n != 2 {
		t.Errorf("token count = %d, want 2", n)
	}
}

func TestIssueActivationGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.svc.IssueActivation(ctx, uuid.New(), f.patient.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("IssueActivation(stranger) error = %v, want ErrAccessDenied", err)
	}
	if err := f.svc.IssueActivation(ctx, f.practitioner.ID, uuid.New()); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("IssueActivation(unknown patient) error = %v, want ErrPatientNotFound", err)
	}

	if _, err := f.client.Patient.UpdateOneID(f.patient.ID).
		SetActivated(true).
		Save(ctx); err != nil {
		t.Fatalf("activate patient: %v", err)
	}
	if err := f.svc.IssueActivation(ctx, f.practitioner.ID, f.patient.ID); !errors.Is(err, ErrAlreadyActivated) {
		t.Errorf("IssueActivation(activated) error = %v, want ErrAlreadyActivated", err)
	}
}

func TestActivate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	raw := f.storeToken(t, f.clock.Now().Add(72*time.Hour))

	p, err := f.svc.Activate(ctx, ActivateRequest{Token: raw, Password: "tr0ubadour-lilas"})
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if !p.Activated {
		t.Error("patient not activated")
	}
	if p.ActivatedAt == nil {
		t.Error("activated_at not set")
	}
	if p.PasswordHash == nil || *p.PasswordHash == "tr0ubadour-lilas" {
		t.Error("password stored unhashed or missing")
	}

	// Single use: the same link cannot set a second password.
	if _, err := f.svc.Activate(ctx, ActivateRequest{Token: raw, Password: "autre-mot-de-passe"}); !errors.Is(err, ErrTokenUsed) {
		t.Errorf("second Activate() error = %v, want ErrTokenUsed", err)
	}
}

func TestActivateValidations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("short password", func(t *testing.T) {
		raw := f.storeToken(t, f.clock.Now().Add(time.Hour))
		if _, err := f.svc.Activate(ctx, ActivateRequest{Token: raw, Password: "court"}); !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("error = %v, want ErrPasswordTooShort", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		if _, err := f.svc.Activate(ctx, ActivateRequest{Token: "nonsense", Password: "mot-de-passe"}); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("error = %v, want ErrTokenInvalid", err)
		}
	})

	t.Run("blank token", func(t *testing.T) {
		if _, err := f.svc.Activate(ctx, ActivateRequest{Token: "  ", Password: "mot-de-passe"}); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("error = %v, want ErrTokenInvalid", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		raw := f.storeToken(t, f.clock.Now().Add(time.Hour))
		f.clock.Advance(2 * time.Hour)
		if _, err := f.svc.Activate(ctx, ActivateRequest{Token: raw, Password: "mot-de-passe"}); !errors.Is(err, ErrTokenExpired) {
			t.Errorf("error = %v, want ErrTokenExpired", err)
		}
	})
}

func TestPurgeExpiredTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.storeToken(t, f.clock.Now().Add(time.Hour))
	f.storeToken(t, f.clock.Now().Add(72*time.Hour))

	f.clock.Advance(24 * time.Hour)
	n, err := f.svc.PurgeExpiredTokens(ctx)
	if err != nil {
		t.Fatalf("PurgeExpiredTokens() error = %v", err)
	}
	if n != 1 {
		t.Errorf("purged %d tokens, want 1", n)
	}

	remaining, err := f.client.ActivationToken.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count tokens: %v", err)
	}
	if remaining != 1 {
		t.Errorf("remaining tokens = %d, want 1", remaining)
	}
}
