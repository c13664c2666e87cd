package usecase

import (
	"context"

	"portal/internal/domain/service"
)

// DecisionKind is the verdict of the route guard.
type DecisionKind string

const (
	DecisionAllow    DecisionKind = "allow"
	DecisionRedirect DecisionKind = "redirect"
	// DecisionLoading means initialization has not completed; nothing may be rendered or redirected yet.
	DecisionLoading DecisionKind = "loading"
)

// Redirect reasons shown on the access restricted page.
const (
	ReasonAuthenticationRequired = "Authentication required"
	ReasonStatusUnavailable      = "Unable to verify entity status"
	ReasonInsufficientRole       = "Insufficient role"
	ReasonEntityInactive         = "Entity is inactive"
	ReasonEntityTerminated       = "Entity is terminated"
	ReasonEntityUnknown          = "Entity status is unknown"
)

// RouteRequest is a navigation attempt to a route.
type RouteRequest struct {
	// Path is the route path without query.
	Path string
	// OriginalURL is what the user asked for, preserved for the post-login redirect.
	OriginalURL string
}

// Decision is the guard verdict. Intent is set only for DecisionRedirect.
type Decision struct {
	Kind   DecisionKind
	Intent service.NavigationIntent
}

// GuardUsecase gates routes on authentication, role and entity status.
type GuardUsecase interface {
	// Check evaluates the request against the current session.
	Check(ctx context.Context, req RouteRequest) Decision

	// Enforce carries out a redirect decision through nav exactly once,
	// then verifies the navigation landed and replaces the location if it did not.
	Enforce(ctx context.Context, decision Decision, nav service.Navigator) error
}
