package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// AuthHandler exposes the session store actions.
type AuthHandler struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		session: params.Session,
		logger:  params.Logger,
	}
}

// LoginRequest is the login form. Presence is checked by the session store.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"max=254"`
	Password        string `json:"password" validate:"max=256"`
	RememberMe      bool   `json:"rememberMe"`
	Next            string `json:"next" validate:"max=2048"`
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Name     string `json:"name" validate:"max=256"`
	Username string `json:"username" validate:"max=256"`
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password" validate:"max=256"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result := h.session.Login(c.Request().Context(), entity.Credentials{
		EmailOrUsername: req.EmailOrUsername,
		Password:        req.Password,
		RememberMe:      req.RememberMe,
	})

	if !result.Success {
		// Verification is a sub-flow of login, not a failure.
		if result.Code == domainerrors.CodeEmailNotVerified {
			modal, _ := result.Data.(entity.EmailVerificationModal)

			return response.SuccessWithMessage(c, http.StatusAccepted, LoginResponse{
				VerificationRequired: true,
				VerificationModal:    &modal,
			}, result.Error)
		}

		return response.Error(c, response.StatusForCode(result.Code, http.StatusUnauthorized), result.Code, result.Error, nil)
	}

	next := c.QueryParam("next")
	if next == "" {
		next = req.Next
	}
	redirectTo, ok := safeNext(next)
	if !ok {
		redirectTo = h.session.GetDefaultDashboard()
	}

	user, _ := result.Data.(*entity.User)

	return response.Success(c, http.StatusOK, LoginResponse{User: user, RedirectTo: redirectTo})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result := h.session.Register(c.Request().Context(), entity.Registration{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if !result.Success {
		return response.Error(c, response.StatusForCode(result.Code, http.StatusUnprocessableEntity), result.Code, result.Error, nil)
	}

	if message, ok := result.Data.(string); ok {
		return response.SuccessWithMessage(c, http.StatusCreated, nil, message)
	}

	user, _ := result.Data.(*entity.User)

	return response.Success(c, http.StatusCreated, LoginResponse{
		User:       user,
		RedirectTo: h.session.GetDefaultDashboard(),
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, LoginResponse{RedirectTo: h.session.GetDefaultDashboard()})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	if !h.session.RefreshAccessToken(c.Request().Context()) {
		return response.Unauthorized(c, domainerrors.CodeSessionExpired, domainerrors.ErrSessionExpired.Message())
	}

	return h.Session(c)
}

// Session handles GET /auth/session
func (h *AuthHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, newSessionView(h.session.Snapshot(), h.session.GetDefaultDashboard()))
}

// EntityStatus handles GET /auth/entity-status. ?refresh=true bypasses the in-flight lookup.
func (h *AuthHandler) EntityStatus(c echo.Context) error {
	if !h.session.Snapshot().IsAuthenticated {
		return response.Unauthorized(c, domainerrors.CodeUnauthorized, domainerrors.ErrUnauthorized.Message())
	}

	force, _ := strconv.ParseBool(c.QueryParam("refresh"))
	status, err := h.session.CheckEntityStatus(c.Request().Context(), force)

	view := EntityStatusView{EntityStatus: status}
	if err != nil {
		view.Error = domainerrors.ErrEntityStatusUnavailable.Message()
	}

	return response.Success(c, http.StatusOK, view)
}

// ResendVerification handles POST /auth/verification/resend
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	result := h.session.ResendVerification(c.Request().Context())
	cooldown := ResendResponse{CooldownSeconds: ceilSeconds(result.CooldownRemaining)}

	if !result.Success {
		if result.Code == domainerrors.CodeResendCooldown {
			c.Response().Header().Set("Retry-After", strconv.Itoa(cooldown.CooldownSeconds))
		}

		return response.Error(c, response.StatusForCode(result.Code, http.StatusBadGateway), result.Code, result.Error, cooldown)
	}

	return response.SuccessWithMessage(c, http.StatusOK, cooldown, result.Message)
}

// CloseVerification handles DELETE /auth/verification
func (h *AuthHandler) CloseVerification(c echo.Context) error {
	h.session.CloseVerificationModal(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(math.Ceil(d.Seconds()))
}
