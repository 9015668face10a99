package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
	pkghash "github.com/hyeonbin/boardhub/pkg/hash"
	"github.com/hyeonbin/boardhub/pkg/logging"
	"github.com/hyeonbin/boardhub/pkg/tokens"
)

// UserDirectory is everything the auth pipeline needs from user storage.
// GormRepo and MemoryDirectory both implement it.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u *models.User) error
}

type AuthService struct {
	Directory UserDirectory
	JWTSecret []byte
	TokenTTL  time.Duration
}

// SignUp registers a new account. The role is always "user"; nothing the
// client sends can elevate it.
func (s *AuthService) SignUp(ctx context.Context, username, password, email string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if username == "" || password == "" || email == "" {
		return nil, domain.ErrValidation
	}

	exists, err := s.Directory.ExistsByEmail(ctx, email)
	if err != nil {
		l.Error("signup_failed", "status", 500, "reason", "directory lookup failed", "error", err)
		return nil, err
	}
	if exists {
		l.Warn("signup_failed", "status", 409, "reason", "email already registered")
		return nil, domain.ErrEmailTaken
	}

	pwHash, err := pkghash.HashPassword(password)
	if err != nil {
		l.Error("signup_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
		Role:         domain.RoleUser,
	}
	if err := s.Directory.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			// Lost the race against a concurrent signup with the same email.
			l.Warn("signup_failed", "status", 409, "reason", "email already registered")
			return nil, domain.ErrEmailTaken
		}
		l.Error("signup_failed", "status", 500, "error", err)
		return nil, err
	}

	l.Info("signup_successful", "user_id", user.ID)
	return &user, nil
}

// SignIn verifies the credentials and issues an access token. An unknown
// email and a wrong password come back as the same error, so callers cannot
// probe which addresses are registered.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signin")

	if email == "" || password == "" {
		return "", domain.ErrValidation
	}

	user, err := s.Directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			l.Warn("signin_failed", "status", 401, "reason", "unknown email")
			return "", domain.ErrInvalidCredentials
		}
		l.Error("signin_failed", "status", 500, "error", err)
		return "", err
	}

	ok, err := pkghash.CheckPassword(user.PasswordHash, password)
	if err != nil {
		l.Error("signin_failed", "status", 500, "reason", "corrupt password hash", "user_id", user.ID, "error", err)
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		l.Warn("signin_failed", "status", 401, "reason", "wrong password")
		return "", domain.ErrInvalidCredentials
	}

	token, err := tokens.Sign(user.ID, user.Username, user.Email, user.Role, s.JWTSecret, s.TokenTTL)
	if err != nil {
		l.Error("signin_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return "", err
	}

	l.Info("signin_successful", "user_id", user.ID)
	return token, nil
}
