// Package identity handles user registration and credential sign-in.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"example.com/planner/internal/auth"
)

var (
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for unknown email or bad password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingCredentials is returned when email or password is blank.
	ErrMissingCredentials = errors.New("email and password are required")
)

// User is a registered account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserStore captures user persistence operations.
type UserStore interface {
	// CreateUser stores a new user, returning ErrEmailTaken on duplicates.
	CreateUser(ctx context.Context, user User) error
	// UserByEmail returns the user for the email, or nil when absent.
	UserByEmail(ctx context.Context, email string) (*User, error)
}

// Service signs users up and in, issuing bearer tokens on success.
type Service struct {
	store    UserStore
	tokens   auth.Config
	tokenTTL time.Duration
}

// NewService constructs a Service.
func NewService(store UserStore, tokens auth.Config, tokenTTL time.Duration) *Service {
	return &Service{store: store, tokens: tokens, tokenTTL: tokenTTL}
}

// Session is the result of a successful sign-up or sign-in.
type Session struct {
	UserID string
	Token  string
}

var grantedScopes = []string{auth.ScopeEntriesRead, auth.ScopeEntriesWrite}

// SignUp registers a new account and returns an authenticated session.
func (s *Service) SignUp(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.session(user.ID)
}

// SignIn checks the credentials and returns an authenticated session.
// Sign-out has no server side: tokens are stateless and the client discards
// its copy.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.session(user.ID)
}

func (s *Service) session(userID string) (*Session, error) {
	token, err := auth.Sign(s.tokens, userID, grantedScopes, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &Session{UserID: userID, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
