package impl

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"go.uber.org/fx"
)

// maxStatusJoins bounds how often Check joins a newer in-flight status lookup.
const maxStatusJoins = 3

type guardedRoute struct {
	prefix       string
	allowedRoles []entity.RoleCode
}

// routeGuard implements the GuardUsecase interface.
type routeGuard struct {
	session         usecase.SessionUsecase
	metrics         service.SessionMetrics
	loginRoute      string
	restrictedRoute string
	exemptRoutes    []string
	routes          []guardedRoute
	initWait        time.Duration
	verifyDelay     time.Duration
	logger          *slog.Logger
}

// RouteGuardParams holds dependencies for the route guard, injected by Fx.
type RouteGuardParams struct {
	fx.In

	Session usecase.SessionUsecase
	Metrics service.SessionMetrics `optional:"true"`
	Config  *config.Config
	Logger  *slog.Logger
}

// NewRouteGuard is the constructor for routeGuard.
func NewRouteGuard(params RouteGuardParams) usecase.GuardUsecase {
	cfg := params.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.ApplyDefaults()

	metrics := params.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	routes := make([]guardedRoute, 0, len(cfg.Guard.Routes))
	for _, r := range cfg.Guard.Routes {
		roles := entity.RoleCodesFromStrings(r.AllowedRoles)
		routes = append(routes, guardedRoute{prefix: r.Prefix, allowedRoles: roles})
	}
	// Longest prefix wins.
	slices.SortStableFunc(routes, func(a, b guardedRoute) int {
		return len(b.prefix) - len(a.prefix)
	})

	return &routeGuard{
		session:         params.Session,
		metrics:         metrics,
		loginRoute:      cfg.Guard.LoginRoute,
		restrictedRoute: cfg.Guard.RestrictedRoute,
		exemptRoutes:    slices.Clone(cfg.Guard.ExemptRoutes),
		routes:          routes,
		initWait:        cfg.Guard.InitWaitTimeout,
		verifyDelay:     cfg.Guard.RedirectVerifyDelay,
		logger:          params.Logger,
	}
}

func (g *routeGuard) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Check evaluates req against the current session.
// Until initialization completes the verdict is Loading, never a redirect.
func (g *routeGuard) Check(ctx context.Context, req usecase.RouteRequest) usecase.Decision {
	decision := g.check(ctx, req)
	g.metrics.ObserveGuardDecision(string(decision.Kind), decision.Intent.Reason)

	if decision.Kind == usecase.DecisionRedirect {
		g.log(ctx).Info("Route guard redirect",
			slog.String("path", req.Path),
			slog.String("target", decision.Intent.Target),
			slog.String("reason", decision.Intent.Reason))
	}

	return decision
}

func (g *routeGuard) check(ctx context.Context, req usecase.RouteRequest) usecase.Decision {
	// 1. Wait for initialization.
	waitCtx, cancel := context.WithTimeout(ctx, g.initWait)
	err := g.session.AwaitInitialized(waitCtx)
	cancel()
	if err != nil {
		return usecase.Decision{Kind: usecase.DecisionLoading}
	}

	// 2. Exempt routes never redirect, which also breaks redirect loops.
	if g.isExempt(req.Path) {
		return usecase.Decision{Kind: usecase.DecisionAllow}
	}

	// 3. Authentication.
	session := g.session.Snapshot()
	if !session.IsAuthenticated {
		return g.redirectToLogin(req)
	}

	// 4. Entity status, always re-read on entry to a protected route.
	status, err := g.session.CheckEntityStatus(ctx, true)
	for i := 0; err == nil && status.IsStatusLoading && i < maxStatusJoins; i++ {
		status, err = g.session.CheckEntityStatus(ctx, false)
	}
	if err != nil {
		return g.restricted(usecase.ReasonStatusUnavailable, domainerrors.CodeEntityStatusUnavailable)
	}
	if status.IsStatusLoading {
		return usecase.Decision{Kind: usecase.DecisionLoading}
	}

	// The status check may have signed the session out meanwhile.
	session = g.session.Snapshot()
	if !session.IsAuthenticated {
		return g.redirectToLogin(req)
	}

	// 5. Roles.
	if route, ok := g.match(req.Path); ok && len(route.allowedRoles) > 0 {
		if !session.Roles().ContainsAny(route.allowedRoles...) {
			return g.restricted(usecase.ReasonInsufficientRole, domainerrors.CodeAccessRestricted)
		}
	}

	// 6. Entity status gate, bypassed by system identities.
	if !status.RoleCategory.IsSystem() {
		switch status.EffectiveStatus {
		case entity.StatusActive:
		case entity.StatusInactive:
			return g.restricted(usecase.ReasonEntityInactive, domainerrors.CodeAccessRestricted)
		case entity.StatusTerminated:
			return g.restricted(usecase.ReasonEntityTerminated, domainerrors.CodeAccessRestricted)
		default:
			return g.restricted(usecase.ReasonEntityUnknown, domainerrors.CodeAccessRestricted)
		}
	}
	if !status.CanAccess {
		return g.restricted(usecase.ReasonStatusUnavailable, domainerrors.CodeEntityStatusUnavailable)
	}

	// 7. Allow.
	return usecase.Decision{Kind: usecase.DecisionAllow}
}

func (g *routeGuard) isExempt(path string) bool {
	return slices.ContainsFunc(g.exemptRoutes, func(route string) bool {
		return matchesPrefix(path, route)
	})
}

func (g *routeGuard) match(path string) (guardedRoute, bool) {
	for _, route := range g.routes {
		if matchesPrefix(path, route.prefix) {
			return route, true
		}
	}

	return guardedRoute{}, false
}

// matchesPrefix matches whole path segments: /company matches /company/x but not /companyx.
func matchesPrefix(path, prefix string) bool {
	if prefix == "" || prefix == "/" {
		return path == "/" || prefix == "/"
	}
	prefix = strings.TrimSuffix(prefix, "/")

	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func (g *routeGuard) redirectToLogin(req usecase.RouteRequest) usecase.Decision {
	target := g.loginRoute
	if next := req.OriginalURL; next != "" && next != "/" {
		target += "?" + url.Values{"next": {next}}.Encode()
	}

	return usecase.Decision{
		Kind: usecase.DecisionRedirect,
		Intent: service.NavigationIntent{
			Target: target,
			Reason: usecase.ReasonAuthenticationRequired,
			Code:   domainerrors.CodeUnauthorized,
		},
	}
}

func (g *routeGuard) restricted(reason, code string) usecase.Decision {
	query := url.Values{"reason": {reason}, "code": {code}}

	return usecase.Decision{
		Kind: usecase.DecisionRedirect,
		Intent: service.NavigationIntent{
			Target: g.restrictedRoute + "?" + query.Encode(),
			Reason: reason,
			Code:   code,
		},
	}
}
