package api

import (
	"context"
	"net/http"
	"net/url"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"
)

// statusLookup implements service.StatusLookup over the upstream API.
type statusLookup struct {
	client *Client
}

// NewStatusLookup creates the entity status lookup
func NewStatusLookup(client *Client) service.StatusLookup {
	return &statusLookup{client: client}
}

type entityStatusResponse struct {
	EntityType         entity.EntityType   `json:"entityType"`
	EntityID           string              `json:"entityId"`
	EntityName         string              `json:"entityName"`
	EntityStatus       entity.Status       `json:"entityStatus"`
	EffectiveStatus    entity.Status       `json:"effectiveStatus"`
	RoleCategory       entity.RoleCategory `json:"roleCategory"`
	RoleCode           entity.RoleCode     `json:"roleCode"`
	RestrictedFeatures []string            `json:"restrictedFeatures"`
	Message            string              `json:"message"`
	AdminContact       string              `json:"adminContact"`
}

// LookupStatus resolves the hierarchical status of the entity userID belongs to
func (l *statusLookup) LookupStatus(ctx context.Context, userID, accessToken string) (*service.StatusLookupResult, error) {
	var resp entityStatusResponse
	path := "/entity-status/" + url.PathEscape(userID)
	if err := l.client.do(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, err
	}

	return &service.StatusLookupResult{
		EntityType:         resp.EntityType,
		EntityID:           resp.EntityID,
		EntityName:         resp.EntityName,
		EntityStatus:       resp.EntityStatus,
		EffectiveStatus:    resp.EffectiveStatus,
		RoleCategory:       resp.RoleCategory,
		RoleCode:           resp.RoleCode,
		RestrictedFeatures: resp.RestrictedFeatures,
		Message:            resp.Message,
		AdminContact:       resp.AdminContact,
	}, nil
}
