// Package service holds the business logic that sits between the HTTP
// handlers and the repositories.  Handlers translate transport concerns,
// repositories translate storage concerns; everything with an invariant
// worth testing lives here.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pitchside/turf-booking/internal/model"
	"github.com/pitchside/turf-booking/internal/repository"
	"github.com/pitchside/turf-booking/internal/utils"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password.  Login failures are deliberately indistinguishable so a caller
// cannot probe which addresses are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDuplicateUser is returned when registration hits an email that is
// already taken.
var ErrDuplicateUser = errors.New("user already exists")

// ErrUserNotFound is returned by Profile when a valid token references an
// account that no longer exists.
var ErrUserNotFound = errors.New("user not found")

// ErrValidation is returned for malformed registration or login input
// (missing fields, bad email, unknown role).  The wrapped message names
// the offending field.
var ErrValidation = errors.New("validation failed")

// UserStore is the persistence boundary the auth service depends on.  It
// is satisfied by *repository.UserRepo and by in-memory fakes in tests.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (uint64, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uint64) (*model.User, error)
}

// AuthService orchestrates registration, login and profile lookup over the
// password hasher, the token issuer and the user store.  It holds no
// mutable state of its own; every field is read-only after construction.
type AuthService struct {
	store      UserStore
	jwtSecret  string
	ttlHours   int
	bcryptCost int
}

func NewAuthService(store UserStore, jwtSecret string, ttlHours, bcryptCost int) *AuthService {
	return &AuthService{store: store, jwtSecret: jwtSecret, ttlHours: ttlHours, bcryptCost: bcryptCost}
}

// RegisterInput is the shape the register endpoint binds into.  Role is
// optional and defaults to "user"; only the enumerated roles are accepted.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// Register creates a new user and issues a token for it.  The display name
// is the trimmed concatenation of first and last name with a single space.
// A duplicate email fails with ErrDuplicateUser; the decision is made by
// the store's unique index, not by a pre-check, so concurrent same-email
// registrations cannot both succeed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (model.UserView, utils.AccessToken, error) {
	name := strings.TrimSpace(strings.TrimSpace(in.FirstName) + " " + strings.TrimSpace(in.LastName))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" {
		return model.UserView{}, utils.AccessToken{}, validationErr("firstName/lastName required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return model.UserView{}, utils.AccessToken{}, validationErr("valid email required")
	}
	if in.Password == "" {
		return model.UserView{}, utils.AccessToken{}, validationErr("password required")
	}
	role := strings.ToLower(strings.TrimSpace(in.Role))
	switch role {
	case "":
		role = model.RoleUser
	case model.RoleUser, model.RoleAdmin:
	default:
		return model.UserView{}, utils.AccessToken{}, validationErr("role must be user or admin")
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return model.UserView{}, utils.AccessToken{}, err
	}
	id, err := s.store.Create(ctx, name, email, hash, role)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return model.UserView{}, utils.AccessToken{}, ErrDuplicateUser
		}
		return model.UserView{}, utils.AccessToken{}, err
	}
	tok, err := utils.NewAccessToken(s.jwtSecret, id, role, s.ttlHours)
	if err != nil {
		return model.UserView{}, utils.AccessToken{}, err
	}
	return model.UserView{ID: id, Name: name, Email: email, Role: role}, tok, nil
}

// Login verifies credentials and issues a fresh token.  Both "no such
// email" and "wrong password" collapse into ErrInvalidCredentials.  The
// store is never mutated.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.UserView, utils.AccessToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return model.UserView{}, utils.AccessToken{}, validationErr("email/password required")
	}
	u, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserView{}, utils.AccessToken{}, ErrInvalidCredentials
		}
		return model.UserView{}, utils.AccessToken{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.UserView{}, utils.AccessToken{}, ErrInvalidCredentials
	}
	tok, err := utils.NewAccessToken(s.jwtSecret, u.ID, u.Role, s.ttlHours)
	if err != nil {
		return model.UserView{}, utils.AccessToken{}, err
	}
	return u.View(), tok, nil
}

// Profile returns the user view for an id that was extracted from a
// previously verified token.  A valid token whose account has since been
// removed yields ErrUserNotFound.
func (s *AuthService) Profile(ctx context.Context, userID uint64) (model.UserView, error) {
	u, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserView{}, ErrUserNotFound
		}
		return model.UserView{}, err
	}
	return u.View(), nil
}

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
