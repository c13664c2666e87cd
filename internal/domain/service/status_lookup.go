package service

import (
	"context"

	"portal/internal/domain/entity"
)

// StatusLookupResult is the raw answer of the entity status lookup.
type StatusLookupResult struct {
	EntityType         entity.EntityType
	EntityID           string
	EntityName         string
	EntityStatus       entity.Status
	EffectiveStatus    entity.Status
	RoleCategory       entity.RoleCategory
	RoleCode           entity.RoleCode
	RestrictedFeatures []string
	Message            string
	AdminContact       string
}

// StatusLookup resolves the hierarchical status of the entity a user belongs to.
type StatusLookup interface {
	LookupStatus(ctx context.Context, userID, accessToken string) (*StatusLookupResult, error)
}
