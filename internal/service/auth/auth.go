// Package auth handles practitioner accounts: registration, email+password
// login, token refresh and logout. Guardian access lives in the
// patientaccount service.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nyaruka/phonenumbers"
	"github.com/redis/go-redis/v9"

	"github.com/ortholab/depisto_backend/config"
	"github.com/ortholab/depisto_backend/internal/repo"
	entuser "github.com/ortholab/depisto_backend/internal/repo/user"
	"github.com/ortholab/depisto_backend/pkg/authorize"
	pasetotoken "github.com/ortholab/depisto_backend/pkg/paseto"
	"github.com/ortholab/depisto_backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	accountLockMins  = 15

	defaultPhoneRegion = "FR"
)

func redisKeyLoginAttempts(email string) string { return "user:login:attempts:" + email }
func redisKeySession(sessionID string) string   { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Phone      *string
	RPPSNumber *string
}

type LoginRequest struct {
	Email    string
	Password string
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
	Register(ctx context.Context, req RegisterRequest) (*repo.User, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)

	// RefreshTokens exchanges a valid refresh token for a new access token.
	// The refresh token itself is returned unchanged; rotation happens only
	// at login.
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	authz  authorize.IAuthorization
	clock  clockwork.Clock
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	clock clockwork.Clock,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		authz:  authz,
		clock:  clock,
		cfg:    cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*repo.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(req.Email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	var phone *string
	if req.Phone != nil && *req.Phone != "" {
		normalized, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		phone = &normalized
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.User.Create().
		SetFirstName(strings.TrimSpace(req.FirstName)).
		SetLastName(strings.TrimSpace(req.LastName)).
		SetEmail(req.Email).
		SetPasswordHash(hash).
		SetNillablePhone(phone).
		SetNillableRppsNumber(req.RPPSNumber).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Role grants are not part of the user row; a failure here leaves an
	// account that can log in but do nothing, which support can repair.
	if s.authz != nil {
		if err := authorize.AssignPractitionerRole(ctx, s.authz, u.ID.String()); err != nil {
			slog.Error("assign practitioner role failed", "user_id", u.ID, "err", err)
		}
		if err := authorize.AssignUserSelfRole(ctx, s.authz, u.ID.String()); err != nil {
			slog.Error("assign self role failed", "user_id", u.ID, "err", err)
		}
	}

	return u, nil
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	attempts, _ := s.rdb.Get(ctx, redisKeyLoginAttempts(req.Email)).Int()
	if attempts >= maxLoginAttempts {
		return nil, ErrAccountLocked
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u.Status == entuser.StatusSUSPENDED {
		return nil, ErrAccountSuspended
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.rdb.Incr(ctx, redisKeyLoginAttempts(req.Email))
		s.rdb.Expire(ctx, redisKeyLoginAttempts(req.Email), accountLockMins*time.Minute)
		return nil, ErrInvalidCredentials
	}
	s.rdb.Del(ctx, redisKeyLoginAttempts(req.Email))

	if _, err := s.db.User.UpdateOne(u).
		SetLastLoginAt(s.clock.Now()).
		Save(ctx); err != nil {
		slog.Warn("record last login failed", "user_id", u.ID, "err", err)
	}

	return s.createSession(ctx, u.ID)
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh || claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())
	stored, err := s.rdb.Get(ctx, sessionKey).Result()
	if err != nil || stored != claims.UserID.String() {
		return nil, ErrSessionNotFound
	}

	// Sliding session: each refresh pushes the session expiry out again.
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	access, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, current); err != nil {
		return ErrWrongPassword
	}

	hash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.db.User.UpdateOne(u).
		SetPasswordHash(hash).
		Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	if err := s.rdb.Set(ctx, redisKeySession(sessionID.String()), userID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(userID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(userID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number")
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
