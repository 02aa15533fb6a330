// Package auth implements cookie-session authentication: bcrypt credential
// checks with a lockout counter, a session row per login, and a signed token
// carried in the session cookie.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/session"
	"tracklite.io/tracklite/ent/user"
	"tracklite.io/tracklite/internal/config"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/pkg/logger"
)

const (
	maxFailedAttempts = 5
	lockoutDuration   = 15 * time.Minute
)

// SessionClaims are the signed contents of a session cookie. The token only
// identifies the session row; validity is decided by the row itself, so a
// logout revokes the cookie immediately.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Service authenticates users and manages session rows.
type Service struct {
	client *ent.Client
	cfg    config.SessionConfig
	secret []byte
}

// NewService creates a new auth Service.
func NewService(client *ent.Client, cfg config.SessionConfig, secret string) *Service {
	return &Service{client: client, cfg: cfg, secret: []byte(secret)}
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	User      *ent.User
	Token     string
	ExpiresAt time.Time
}

// Login verifies credentials and opens a session. Failed attempts count
// toward a temporary lockout; the lockout error is returned before the
// password is checked so a locked account leaks nothing about the password.
func (s *Service) Login(ctx context.Context, soeid, password string) (*LoginResult, error) {
	u, err := s.client.User.Query().
		Where(user.SoeidEQ(soeid), user.IsActiveEQ(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.Unauthorized(apperrors.CodeAuthFailed, "invalid credentials")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	now := time.Now().UTC()
	if u.LockedUntil != nil && u.LockedUntil.After(now) {
		return nil, apperrors.Unauthorized(apperrors.CodeAccountLocked,
			"account temporarily locked, try again later")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.recordFailure(ctx, u)
		return nil, apperrors.Unauthorized(apperrors.CodeAuthFailed, "invalid credentials")
	}

	expiresAt := now.Add(s.cfg.Lifetime)
	sessionID := newID()
	_, err = s.client.Session.Create().
		SetID(sessionID).
		SetUserID(u.ID).
		SetExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err := s.client.User.UpdateOneID(u.ID).
		SetFailedAttempts(0).
		ClearLockedUntil().
		SetLastLoginAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("update login state: %w", err)
	}

	token, err := s.signToken(sessionID, u.ID, now, expiresAt)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		zap.String("user_id", u.ID),
		zap.String("soeid", u.Soeid),
	)
	return &LoginResult{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session. Revoking an already revoked or unknown session
// is a no-op.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	n, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.RevokedAtIsNil()).
		SetRevokedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if n > 0 {
		logger.Info("Session revoked", zap.String("session_id", sessionID))
	}
	return nil
}

// Validate parses a session token and returns the session's user. The
// session row must exist, be unrevoked and unexpired, and belong to an
// active user.
func (s *Service) Validate(ctx context.Context, token string) (*ent.User, *ent.Session, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, nil, apperrors.Unauthorized(apperrors.CodeSessionExpired, "session expired")
		}
		return nil, nil, apperrors.Unauthorized(apperrors.CodeSessionInvalid, "invalid session token")
	}
	if !parsed.Valid || claims.SessionID == "" {
		return nil, nil, apperrors.Unauthorized(apperrors.CodeSessionInvalid, "invalid session token")
	}

	sess, err := s.client.Session.Query().
		Where(session.IDEQ(claims.SessionID), session.RevokedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.Unauthorized(apperrors.CodeSessionInvalid, "session not found")
		}
		return nil, nil, fmt.Errorf("load session: %w", err)
	}
	if sess.ExpiresAt.Before(time.Now().UTC()) {
		return nil, nil, apperrors.Unauthorized(apperrors.CodeSessionExpired, "session expired")
	}

	u, err := s.client.User.Query().
		Where(user.IDEQ(sess.UserID), user.IsActiveEQ(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.Unauthorized(apperrors.CodeSessionInvalid, "user inactive")
		}
		return nil, nil, fmt.Errorf("load session user: %w", err)
	}
	return u, sess, nil
}

// DeleteExpired hard-deletes sessions that expired or were revoked before
// the cutoff. Session rows are bookkeeping, not audit data, so they do not
// accumulate forever.
func (s *Service) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.Session.Delete().
		Where(
			session.Or(
				session.ExpiresAtLT(before),
				session.RevokedAtLT(before),
			),
		).Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return n, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *Service) signToken(sessionID, userID string, now, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "tracklite",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// recordFailure bumps the failed-attempt counter and locks the account after
// too many misses. Errors here are logged, not returned: the caller already
// holds the authoritative "invalid credentials" outcome.
func (s *Service) recordFailure(ctx context.Context, u *ent.User) {
	attempts := u.FailedAttempts + 1
	upd := s.client.User.UpdateOneID(u.ID).SetFailedAttempts(attempts)
	if attempts >= maxFailedAttempts {
		upd.SetLockedUntil(time.Now().UTC().Add(lockoutDuration))
	}
	if err := upd.Exec(ctx); err != nil {
		logger.Error("Failed to record login failure",
			zap.String("user_id", u.ID),
			zap.Error(err),
		)
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
