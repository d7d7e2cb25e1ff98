package auth

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
	"github.com/ortholab/depisto_backend/pkg/util/password"
)

// Login, RefreshTokens and Logout need a live redis session store; these
// tests cover the paths that live entirely in postgres.

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
	cfg := &config.Config{}

	return &fixture{
		client: client,
		svc:    New(client, nil, nil, nil, clock, cfg),
		clock:  clock,
	}
}

func (f *fixture) register(t *testing.T, email, pw string) *repo.User {
	t.Helper()
	u, err := f.svc.Register(context.Background(), RegisterRequest{
		FirstName: "Claire",
		LastName:  "Moreau",
		Email:     email,
		Password:  pw,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return u
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	phone := "06 12 34 56 78"
	rpps := "10101010101"
	u, err := f.svc.Register(ctx, RegisterRequest{
		FirstName:  "  Claire ",
		LastName:   "Moreau",
		Email:      " Claire.Moreau@Example.FR ",
		Password:   "tr0ubadour-lilas",
		Phone:      &phone,
		RPPSNumber: &rpps,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if u.Email != "claire.moreau@example.fr" {
		t.Errorf("email = %q, want lowercased and trimmed", u.Email)
	}
	if u.FirstName != "Claire" {
		t.Errorf("first name = %q, want trimmed", u.FirstName)
	}
	if u.Phone == nil || *u.Phone != "+33612345678" {
		t.Errorf("phone = %v, want +33612345678 (E.164)", u.Phone)
	}

	row, err := f.client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("raw get: %v", err)
	}
	if row.PasswordHash == "tr0ubadour-lilas" {
		t.Error("password stored unhashed")
	}
	if err := password.Verify(row.PasswordHash, "tr0ubadour-lilas"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterValidations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("short password", func(t *testing.T) {
		_, err := f.svc.Register(ctx, RegisterRequest{
			FirstName: "Claire",
			LastName:  "Moreau",
			Email:     "court@example.fr",
			Password:  "court",
		})
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("error = %v, want ErrPasswordTooShort", err)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		phone := "12"
		_, err := f.svc.Register(ctx, RegisterRequest{
			FirstName: "Claire",
			LastName:  "Moreau",
			Email:     "tel@example.fr",
			Password:  "tr0ubadour-lilas",
			Phone:     &phone,
		})
		if !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("error = %v, want ErrInvalidPhone", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		f.register(t, "dup@example.fr", "tr0ubadour-lilas")
		_, err := f.svc.Register(ctx, RegisterRequest{
			FirstName: "Emma",
			LastName:  "Petit",
			Email:     "DUP@example.fr", // uniqueness is case-insensitive
			Password:  "autre-mot-de-passe",
		})
		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "claire.moreau@example.fr", "tr0ubadour-lilas")

	if err := f.svc.ChangePassword(ctx, u.ID, "tr0ubadour-lilas", "nouveau-sesame"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	row, err := f.client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("raw get: %v", err)
	}
	if err := password.Verify(row.PasswordHash, "nouveau-sesame"); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}
	if err := password.Verify(row.PasswordHash, "tr0ubadour-lilas"); err == nil {
		t.Error("old password still verifies")
	}
}

func TestChangePasswordValidations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "claire.moreau@example.fr", "tr0ubadour-lilas")

	if err := f.svc.ChangePassword(ctx, u.ID, "mauvais-sesame", "nouveau-sesame"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("ChangePassword(wrong current) error = %v, want ErrWrongPassword", err)
	}
	if err := f.svc.ChangePassword(ctx, u.ID, "tr0ubadour-lilas", "court"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("ChangePassword(short) error = %v, want ErrPasswordTooShort", err)
	}
	if err := f.svc.ChangePassword(ctx, uuid.New(), "tr0ubadour-lilas", "nouveau-sesame"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ChangePassword(unknown) error = %v, want ErrUserNotFound", err)
	}
}
