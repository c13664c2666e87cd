package impl

import (
	"context"
	"log/slog"
	"time"

	"portal/internal/domain/service"
	"portal/internal/usecase"
)

// Enforce carries out a redirect decision. It navigates once, then runs a
// single delayed health check that replaces the location only if the
// navigation did not land.
func (g *routeGuard) Enforce(ctx context.Context, decision usecase.Decision, nav service.Navigator) error {
	if decision.Kind != usecase.DecisionRedirect {
		return nil
	}
	target := decision.Intent.Target

	// 1. Already there: nothing to do.
	if nav.CurrentLocation() == target {
		return nil
	}

	// 2. Regular navigation.
	if err := nav.Navigate(ctx, decision.Intent); err != nil {
		g.log(ctx).Warn("Navigation failed, replacing location",
			slog.String("target", target), slog.Any("error", err))

		return nav.Replace(ctx, target)
	}
	if nav.CurrentLocation() == target {
		return nil
	}

	// 3. One health check after the verify delay.
	timer := time.NewTimer(g.verifyDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-timer.C:
	}

	if nav.CurrentLocation() == target {
		return nil
	}

	g.log(ctx).Warn("Navigation did not land, replacing location",
		slog.String("target", target), slog.String("location", nav.CurrentLocation()))

	return nav.Replace(ctx, target)
}
