// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"scribe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Shape validation (well-formed email, required fields) happens at the
// delivery layer before the input reaches the service.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the affected user (password hash stripped) together
// with a human-readable confirmation message.
type AuthOutput struct {
	User    *entity.User
	Message string
}

// UserUsecase defines the interface for credential-handling operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account after checking email/username uniqueness.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies a username/password pair. Unknown username and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Pure lookups. Absence surfaces as repository.ErrUserNotFound and is a
	// normal outcome for the caller to interpret.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)
}
