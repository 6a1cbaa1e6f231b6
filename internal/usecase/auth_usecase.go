// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register the account.
type RegisterInput struct {
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the registered account's identifier.
type RegisterOutput struct {
	Email string `json:"email"`
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}

// ProfileOutput returns the display values derived from the stored account.
type ProfileOutput struct {
	Username    string `json:"username"`
	MaskedEmail string `json:"masked_email"`
}

// AuthUsecase defines the interface for credential-gate operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register validates the input and writes the account to the secure
	// store, overwriting any previous account.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login checks the credentials against the stored account and issues
	// an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Profile derives the display username and masked email from the
	// stored account.
	Profile(ctx context.Context) (*ProfileOutput, error)
}
