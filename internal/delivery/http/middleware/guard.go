package middleware

import (
	"context"
	"net/http"
	"strconv"

	"portal/internal/delivery/http/response"
	"portal/internal/domain/service"
	"portal/internal/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CodeSessionInitializing marks the 503 served while the session is still being restored.
const CodeSessionInitializing = "SESSION_INITIALIZING"

// retryAfterSeconds is how long clients wait before asking again during initialization.
const retryAfterSeconds = 1

// GuardMiddleware gates protected pages through the route guard
type GuardMiddleware struct {
	guard usecase.GuardUsecase
}

// NewGuardMiddleware creates the guard middleware
func NewGuardMiddleware(guard usecase.GuardUsecase) *GuardMiddleware {
	return &GuardMiddleware{guard: guard}
}

// Protect renders the page only when the guard allows it. Loading becomes a
// 503 with Retry-After; a redirect is written as 303 See Other.
func (m *GuardMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		decision := m.guard.Check(req.Context(), usecase.RouteRequest{
			Path:        req.URL.Path,
			OriginalURL: req.URL.RequestURI(),
		})

		switch decision.Kind {
		case usecase.DecisionAllow:
			return next(c)
		case usecase.DecisionLoading:
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))

			return response.Error(c, http.StatusServiceUnavailable, CodeSessionInitializing, "Session is initializing", nil)
		default:
			return m.guard.Enforce(req.Context(), decision, &responseNavigator{c: c})
		}
	}
}

// responseNavigator navigates by answering the request with a redirect.
type responseNavigator struct {
	c echo.Context
}

// redirectDetails tells API clients where they were sent and why.
type redirectDetails struct {
	Location string `json:"location"`
}

func (n *responseNavigator) Navigate(_ context.Context, intent service.NavigationIntent) error {
	if n.c.Response().Committed {
		return errors.New("response already committed")
	}

	n.c.Response().Header().Set(echo.HeaderLocation, intent.Target)

	return response.Error(n.c, http.StatusSeeOther, intent.Code, intent.Reason, redirectDetails{Location: intent.Target})
}

func (n *responseNavigator) CurrentLocation() string {
	if n.c.Response().Committed {
		if location := n.c.Response().Header().Get(echo.HeaderLocation); location != "" {
			return location
		}
	}

	return n.c.Request().URL.RequestURI()
}

func (n *responseNavigator) Replace(_ context.Context, target string) error {
	if n.c.Response().Committed {
		return errors.Errorf("cannot replace location with %s after the response was written", target)
	}

	return n.c.Redirect(http.StatusSeeOther, target)
}
