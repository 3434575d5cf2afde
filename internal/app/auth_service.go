package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"boardhub/internal/model"
	"boardhub/internal/pkg/jwtutil"
	"boardhub/internal/repository"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidCredential = errors.New("incorrect email or password")
	ErrSessionStore      = errors.New("session store unavailable")
)

// TokenStore tracks the last issued token per user. The store is
// authoritative for session liveness: ResolveIdentity rejects any token
// without a matching record, so Delete revokes a session immediately even
// though the JWT itself stays cryptographically valid until its expiry.
type TokenStore interface {
	Save(ctx context.Context, userID uint, token string, ttl time.Duration) error
	Get(ctx context.Context, userID uint) (string, bool, error)
	Delete(ctx context.Context, userID uint) error
}

type AuthService struct {
	users     *repository.UserRepository
	tokens    TokenStore
	jwtSecret string
	tokenTTL  time.Duration
}

type SignupInput struct {
	Fullname string
	Email    string
	Password string
}

func NewAuthService(users *repository.UserRepository, tokens TokenStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) Signup(input SignupInput) (*model.User, error) {
	fullname := strings.TrimSpace(input.Fullname)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if fullname == "" || email == "" || len(password) < 6 {
		return nil, ErrInvalidInput
	}

	// Pre-check is an optimization only; the unique index on email is the
	// source of truth and a concurrent insert converges on the same error.
	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Fullname:     fullname,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials, issues a token and records it in the token
// store. Issuance has no partial-success state: if the store write fails the
// caller gets an error and no token is considered valid.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", ErrInvalidInput
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.tokenTTL, user.ID)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Save(ctx, user.ID, token, s.tokenTTL); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSessionStore, err)
	}
	if err := s.users.SetLoggedIn(user.ID, true); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	if err := s.tokens.Delete(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionStore, err)
	}
	return s.users.SetLoggedIn(userID, false)
}

// ResolveIdentity verifies the bearer token and returns the caller's user
// id. Signature mismatch, expiry, a malformed subject and a missing or
// stale session record are all reported as the same ErrInvalidCredential.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (uint, error) {
	userID, err := jwtutil.ParseToken(s.jwtSecret, token)
	if err != nil {
		return 0, ErrInvalidCredential
	}

	stored, found, err := s.tokens.Get(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSessionStore, err)
	}
	if !found || stored != token {
		return 0, ErrInvalidCredential
	}
	return userID, nil
}
