package api

import "go.uber.org/fx"

// Module provides the upstream API FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewAuthGateway,
		NewStatusLookup,
	),
)
