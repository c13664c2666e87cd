// Package service defines interfaces for the collaborators of the session engine.
// Concrete implementations live under internal/infra.
package service

import (
	"context"

	"portal/internal/domain/entity"
)

// AuthPayload is the body of a successful login, refresh or register call.
type AuthPayload struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
	Message      string
}

// AuthGateway is the upstream authentication API.
//
// Non-2xx answers are returned as *domainerrors.UpstreamError; transport
// failures wrap domainerrors.ErrNetworkFailure.
type AuthGateway interface {
	// Login exchanges credentials for tokens.
	Login(ctx context.Context, credentials entity.Credentials) (*AuthPayload, error)

	// Verify returns the user the access token belongs to.
	Verify(ctx context.Context, accessToken string) (*entity.User, error)

	// Refresh exchanges a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthPayload, error)

	// Logout notifies the server. The answer carries no information.
	Logout(ctx context.Context, accessToken string) error

	// Register creates an account. Tokens are only present when the server signs the user in directly.
	Register(ctx context.Context, registration entity.Registration) (*AuthPayload, error)

	// ResendVerification asks the server to send the verification email again.
	ResendVerification(ctx context.Context, userID string) (message string, err error)
}
