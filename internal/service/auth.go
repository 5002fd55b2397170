package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/algoroadmap/roadmap-server/internal/logger"
	"github.com/algoroadmap/roadmap-server/internal/model"
)

const (
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes, so longer passwords are
	// rejected instead of silently truncated.
	maxPasswordLength = 72
)

type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	tokens    model.TokenManager
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// CanonicalEmail normalizes an email address so that lookups and the unique
// index agree on equality.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegisterParams(params model.RegisterParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return fmt.Errorf("name is required: %w", model.ErrInvalidInput)
	}
	email := CanonicalEmail(params.Email)
	if email == "" {
		return fmt.Errorf("email is required: %w", model.ErrInvalidInput)
	}
	// Reject display-name forms like "Ada <ada@example.com>" so only the
	// bare address is ever stored.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email is malformed: %w", model.ErrInvalidInput)
	}
	if len(params.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, model.ErrInvalidInput)
	}
	if len(params.Password) > maxPasswordLength {
		return fmt.Errorf("password must be at most %d bytes: %w", maxPasswordLength, model.ErrInvalidInput)
	}
	return nil
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.Session, error) {
	a.logger.Debug("Auth service: registering user",
		"email", params.Email)

	if err := validateRegisterParams(params); err != nil {
		return model.Session{}, err
	}

	email := CanonicalEmail(params.Email)

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered",
			"email", email)
		return model.Session{}, model.ErrEmailTaken
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(params.Name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent registration may win the unique index race.
		if errors.Is(err, model.ErrEmailTaken) {
			return model.Session{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID)

	return model.Session{User: user, Token: token}, nil
}

func (a *Auth) Login(ctx context.Context, params model.LoginParams) (model.Session, error) {
	a.logger.Debug("Auth service: logging in user",
		"email", params.Email)

	email := CanonicalEmail(params.Email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(params.Password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.Session{}, model.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return model.Session{User: user, Token: token}, nil
}
