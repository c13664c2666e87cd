package api

import (
	"context"
	"net/http"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"
)

// authGateway implements service.AuthGateway over the upstream API.
type authGateway struct {
	client *Client
}

// NewAuthGateway creates the authentication gateway
func NewAuthGateway(client *Client) service.AuthGateway {
	return &authGateway{client: client}
}

type authResponse struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	Message      string       `json:"message"`
}

func (r *authResponse) toPayload() *service.AuthPayload {
	return &service.AuthPayload{
		User:         r.User,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		Message:      r.Message,
	}
}

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
	RememberMe      bool   `json:"rememberMe"`
}

// Login exchanges credentials for tokens
func (g *authGateway) Login(ctx context.Context, credentials entity.Credentials) (*service.AuthPayload, error) {
	var resp authResponse
	err := g.client.do(ctx, http.MethodPost, "/login", "", loginRequest{
		EmailOrUsername: credentials.EmailOrUsername,
		Password:        credentials.Password,
		RememberMe:      credentials.RememberMe,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp.toPayload(), nil
}

// Verify returns the user the access token belongs to
func (g *authGateway) Verify(ctx context.Context, accessToken string) (*entity.User, error) {
	var resp authResponse
	if err := g.client.do(ctx, http.MethodGet, "/verify", accessToken, nil, &resp); err != nil {
		return nil, err
	}

	return resp.User, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh exchanges a refresh token for a new token pair
func (g *authGateway) Refresh(ctx context.Context, refreshToken string) (*service.AuthPayload, error) {
	var resp authResponse
	if err := g.client.do(ctx, http.MethodPost, "/refresh", "", refreshRequest{RefreshToken: refreshToken}, &resp); err != nil {
		return nil, err
	}

	return resp.toPayload(), nil
}

// Logout notifies the server; the answer body is ignored
func (g *authGateway) Logout(ctx context.Context, accessToken string) error {
	return g.client.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account
func (g *authGateway) Register(ctx context.Context, registration entity.Registration) (*service.AuthPayload, error) {
	var resp authResponse
	err := g.client.do(ctx, http.MethodPost, "/register", "", registerRequest(registration), &resp)
	if err != nil {
		return nil, err
	}

	return resp.toPayload(), nil
}

type resendRequest struct {
	UserID string `json:"userId"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// ResendVerification asks the server to send the verification email again
func (g *authGateway) ResendVerification(ctx context.Context, userID string) (string, error) {
	var resp messageResponse
	if err := g.client.do(ctx, http.MethodPost, "/resend-verification", "", resendRequest{UserID: userID}, &resp); err != nil {
		return "", err
	}

	return resp.Message, nil
}
