// Package patientaccount handles the guardian side of a patient record:
// activation links, password setup and login. Practitioner accounts are
// the auth service's concern.
package patientaccount

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/ortholab/depisto_backend/config"
	"github.com/ortholab/depisto_backend/internal/events"
	"github.com/ortholab/depisto_backend/internal/repo"
	enttoken "github.com/ortholab/depisto_backend/internal/repo/activationtoken"
	entpatient "github.com/ortholab/depisto_backend/internal/repo/patient"
	"github.com/ortholab/depisto_backend/pkg/authorize"
	"github.com/ortholab/depisto_backend/pkg/crypto"
	"github.com/ortholab/depisto_backend/pkg/email"
	pasetotoken "github.com/ortholab/depisto_backend/pkg/paseto"
	"github.com/ortholab/depisto_backend/pkg/util/codes"
	"github.com/ortholab/depisto_backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	loginLockMins    = 15

	// activationTokenBytes yields a 43-char URL-safe token.
	activationTokenBytes = 32
)

func redisKeyLoginAttempts(email string) string { return "patient:login:attempts:" + email }
func redisKeySession(sessionID string) string   { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ActivateRequest struct {
	Token    string
	Password string
}

type LoginRequest struct {
	GuardianEmail string
	Password      string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// IssueActivation creates a single-use activation link and mails it to
	// the guardian. Reissuing invalidates nothing: the newest valid token
	// wins, older ones simply expire.
	IssueActivation(ctx context.Context, practitionerID, patientID uuid.UUID) error
	// Activate consumes a token and sets the guardian's password.
	Activate(ctx context.Context, req ActivateRequest) (*repo.Patient, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)

	// PurgeExpiredTokens removes activation tokens past their expiry.
	PurgeExpiredTokens(ctx context.Context) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type accountService struct {
	db     *repo.Client
	rdb    *redis.Client
	mail   *email.Client
	paseto *pasetotoken.Manager
	authz  authorize.IAuthorization
	clock  clockwork.Clock
	nc     *nats.Conn
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	clock clockwork.Clock,
	nc *nats.Conn,
	cfg *config.Config,
) Service {
	return &accountService{
		db:     db,
		rdb:    rdb,
		mail:   mail,
		paseto: paseto,
		authz:  authz,
		clock:  clock,
		nc:     nc,
		cfg:    cfg,
	}
}

func (s *accountService) IssueActivation(ctx context.Context, practitionerID, patientID uuid.UUID) error {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("get patient: %w", err)
	}
	if p.PractitionerID != practitionerID {
		return ErrAccessDenied
	}
	if p.Activated {
		return ErrAlreadyActivated
	}

	raw, err := codes.GenerateURLSafeToken(activationTokenBytes)
	if err != nil {
		return fmt.Errorf("generate activation token: %w", err)
	}

	ttl := time.Duration(s.cfg.Authentication.ActivationTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}

	if _, err := s.db.ActivationToken.Create().
		SetPatientID(p.ID).
		SetTokenHash(crypto.Hash(raw)).
		SetExpiresAt(s.clock.Now().Add(ttl)).
		Save(ctx); err != nil {
		return fmt.Errorf("store activation token: %w", err)
	}

	activationURL := fmt.Sprintf("https://%s/activation?token=%s", s.cfg.Server.Domain, raw)
	msg := email.BuildActivationEmail(email.ActivationEmailData{
		GuardianEmail: p.GuardianEmail,
		PatientName:   p.FirstName + " " + p.LastName,
		ActivationURL: activationURL,
		TTLHours:      int(ttl.Hours()),
	})
	if err := s.mail.Send(ctx, msg); err != nil {
		// The token stays valid; the practitioner can trigger a resend.
		slog.Warn("activation email failed", "patient_id", p.ID, "err", err)
	}

	events.Publish(s.nc, events.SubjectActivationIssued, p.ID.String(), []byte("issued"))

	return nil
}

func (s *accountService) Activate(ctx context.Context, req ActivateRequest) (*repo.Patient, error) {
	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		return nil, ErrTokenInvalid
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	t, err := s.db.ActivationToken.Query().
		Where(enttoken.TokenHash(crypto.Hash(req.Token))).
		WithPatient().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("find activation token: %w", err)
	}

	now := s.clock.Now()
	if t.UsedAt != nil {
		return nil, ErrTokenUsed
	}
	if now.After(t.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	p, err := tx.Patient.UpdateOneID(t.PatientID).
		SetPasswordHash(hash).
		SetActivated(true).
		SetActivatedAt(now).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("activate patient: %w", err)
	}

	if _, err := tx.ActivationToken.UpdateOneID(t.ID).
		SetUsedAt(now).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("mark token used: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit activation: %w", err)
	}

	if s.authz != nil {
		if err := authorize.AssignGuardianRole(ctx, s.authz, p.ID.String()); err != nil {
			slog.Error("assign guardian role failed", "patient_id", p.ID, "err", err)
		}
	}

	events.Publish(s.nc, events.SubjectPatientActivated, p.ID.String(), []byte(p.ID.String()))

	return p, nil
}

func (s *accountService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.GuardianEmail = strings.ToLower(strings.TrimSpace(req.GuardianEmail))

	attempts, _ := s.rdb.Get(ctx, redisKeyLoginAttempts(req.GuardianEmail)).Int()
	if attempts >= maxLoginAttempts {
		return nil, ErrAccountLocked
	}

	p, err := s.db.Patient.Query().
		Where(entpatient.GuardianEmail(req.GuardianEmail), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	if !p.Activated || p.PasswordHash == nil {
		return nil, ErrNotActivated
	}

	if err := password.Verify(*p.PasswordHash, req.Password); err != nil {
		s.rdb.Incr(ctx, redisKeyLoginAttempts(req.GuardianEmail))
		s.rdb.Expire(ctx, redisKeyLoginAttempts(req.GuardianEmail), loginLockMins*time.Minute)
		return nil, ErrInvalidCredentials
	}
	s.rdb.Del(ctx, redisKeyLoginAttempts(req.GuardianEmail))

	return s.createSession(ctx, p.ID)
}

func (s *accountService) PurgeExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.db.ActivationToken.Delete().
		Where(enttoken.ExpiresAtLT(s.clock.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge expired activation tokens: %w", err)
	}
	return n, nil
}

func (s *accountService) createSession(ctx context.Context, patientID uuid.UUID) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, patientID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(patientID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(patientID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
