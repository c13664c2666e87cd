package service

import "context"

// NavigationIntent is the single authoritative redirect decision of the route guard.
type NavigationIntent struct {
	Target string
	Reason string
	Code   string
}

// Navigator moves the host to another location.
type Navigator interface {
	// Navigate performs the regular in-app navigation.
	Navigate(ctx context.Context, intent NavigationIntent) error

	// CurrentLocation reports where the host currently is.
	CurrentLocation() string

	// Replace forces the location, bypassing the regular navigation path.
	Replace(ctx context.Context, target string) error
}
