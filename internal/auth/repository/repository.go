package repository

import authdomain "todo-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user; the email must be unique
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email, (nil, nil) if absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by id, (nil, nil) if absent
	FindByID(id string) (*authdomain.User, error)

	// Update persists changes to an existing user, re-hashing the
	// password field if it was replaced with a new plaintext value
	Update(user *authdomain.User) error

	// Delete removes a user record
	Delete(id string) error

	// AddToken appends a token to the user's active token list
	AddToken(userID, token string) error

	// FindToken returns the stored token entry, (nil, nil) if the token
	// is not in the user's active list
	FindToken(userID, token string) (*authdomain.AuthToken, error)

	// RemoveToken removes exactly one token from the user's active list
	RemoveToken(userID, token string) error
}
