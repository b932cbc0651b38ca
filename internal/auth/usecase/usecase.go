package usecase

import (
	"errors"

	authdomain "todo-backend/internal/auth/domain"
	authdto "todo-backend/internal/auth/dto"
)

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password
	// so a caller cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned for tokens that fail signature
	// verification or are no longer in the user's active token list.
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation is returned for malformed registration input.
	ErrValidation = errors.New("invalid email or password format")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new user and issues its first auth token
	Register(req *authdto.RegisterRequest) (*authdomain.User, string, error)

	// Login verifies credentials and issues a new auth token,
	// leaving tokens from other sessions intact
	Login(req *authdto.LoginRequest) (*authdomain.User, string, error)

	// ValidateToken resolves a bearer token to its user; the token must
	// carry a valid signature and still be stored on the user
	ValidateToken(token string) (*authdomain.User, error)

	// Logout revokes exactly the given token for the given user
	Logout(userID, token string) error
}
