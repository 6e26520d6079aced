// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// ConfirmInput defines the data required to confirm an email address.
type ConfirmInput struct {
	Email            string
	ConfirmationCode string
}

// LoginInput defines the data required for a user to log in.
// Identifier matches either the email or the derived username.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// RegisterOutput returns the new account and its session token.
type RegisterOutput struct {
	UserID   int64
	Username string
	Token    string
}

// LoginOutput returns the token issued for a successful login.
type LoginOutput struct {
	UserID int64
	Token  string
}

// AccountUsecase defines the account operations the delivery layer depends on.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Confirm(ctx context.Context, input ConfirmInput) error
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
