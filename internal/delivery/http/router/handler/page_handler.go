package handler

import (
	"net/http"
	"strings"

	"portal/config"
	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	Session usecase.SessionUsecase
	Config  *config.Config
}

// PageHandler serves the page payloads the frontend renders.
type PageHandler struct {
	session    usecase.SessionUsecase
	loginRoute string
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		session:    params.Session,
		loginRoute: params.Config.Guard.LoginRoute,
	}
}

// LoginPage is the payload of the login route.
type LoginPage struct {
	Next              string                        `json:"next,omitempty"`
	Error             string                        `json:"error,omitempty"`
	VerificationModal entity.EmailVerificationModal `json:"verificationModal"`
}

// RestrictedPage explains why access was denied.
type RestrictedPage struct {
	Reason          string            `json:"reason"`
	Code            string            `json:"code"`
	EntityType      entity.EntityType `json:"entityType,omitempty"`
	EntityName      string            `json:"entityName,omitempty"`
	EffectiveStatus entity.Status     `json:"effectiveStatus,omitempty"`
	StatusMessage   string            `json:"statusMessage,omitempty"`
	AdminContact    string            `json:"adminContact,omitempty"`
	// SignInRoute is set when the visitor is not signed in.
	SignInRoute string `json:"signInRoute,omitempty"`
}

// ProtectedPage is the placeholder payload of a guarded page.
type ProtectedPage struct {
	Path         string              `json:"path"`
	User         *entity.User        `json:"user"`
	EntityStatus entity.EntityStatus `json:"entityStatus"`
	Features     map[string]bool     `json:"features"`
}

// HealthStatus is the liveness payload.
type HealthStatus struct {
	Status      string `json:"status"`
	Initialized bool   `json:"initialized"`
}

// Login handles GET /login. A signed-in visitor is sent on to next or the dashboard.
func (h *PageHandler) Login(c echo.Context) error {
	snapshot := h.session.Snapshot()
	next, _ := safeNext(c.QueryParam("next"))

	if snapshot.IsInitialized && snapshot.IsAuthenticated {
		if next == "" {
			next = h.session.GetDefaultDashboard()
		}

		return c.Redirect(http.StatusSeeOther, next)
	}

	return response.Success(c, http.StatusOK, LoginPage{
		Next:              next,
		Error:             snapshot.Error,
		VerificationModal: snapshot.VerificationModal,
	})
}

// AccessRestricted handles GET /access-restricted
func (h *PageHandler) AccessRestricted(c echo.Context) error {
	snapshot := h.session.Snapshot()
	status := snapshot.EntityStatus

	page := RestrictedPage{
		Reason:          c.QueryParam("reason"),
		Code:            c.QueryParam("code"),
		EntityType:      status.EntityType,
		EntityName:      status.EntityName,
		EffectiveStatus: status.EffectiveStatus,
		StatusMessage:   status.StatusMessage,
		AdminContact:    status.AdminContact,
	}
	if page.Reason == "" {
		page.Reason = domainerrors.ErrAccessRestricted.Message()
	}
	if page.Code == "" {
		page.Code = domainerrors.CodeAccessRestricted
	}
	if !snapshot.IsAuthenticated {
		page.SignInRoute = h.loginRoute
	}

	return response.Success(c, http.StatusOK, page)
}

// Dashboard handles GET /dashboard by sending the identity to its own landing page.
func (h *PageHandler) Dashboard(c echo.Context) error {
	target := h.session.GetDefaultDashboard()
	if target == c.Request().URL.Path {
		return h.Protected(c)
	}

	return c.Redirect(http.StatusSeeOther, target)
}

// Protected serves any guarded page the guard allowed.
func (h *PageHandler) Protected(c echo.Context) error {
	snapshot := h.session.Snapshot()

	features := make(map[string]bool, len(entity.AllFeatures()))
	for _, feature := range entity.AllFeatures() {
		features[feature] = h.session.CanAccessFeature(feature)
	}

	return response.Success(c, http.StatusOK, ProtectedPage{
		Path:         strings.TrimSuffix(c.Request().URL.Path, "/"),
		User:         snapshot.User,
		EntityStatus: snapshot.EntityStatus,
		Features:     features,
	})
}

// Health handles GET /health
func (h *PageHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{
		Status:      "ok",
		Initialized: h.session.Snapshot().IsInitialized,
	})
}
