package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorst(t *testing.T) {
	assert.Equal(t, StatusActive, Worst(StatusActive, StatusActive))
	assert.Equal(t, StatusInactive, Worst(StatusActive, StatusInactive))
	assert.Equal(t, StatusTerminated, Worst(StatusTerminated, StatusInactive))
	assert.Equal(t, StatusInactive, Worst(StatusActive, Status("")))
	assert.Equal(t, StatusInactive, Status("suspended").Normalize())
}

func TestEntityNode_EffectiveStatus(t *testing.T) {
	office := &EntityNode{Type: EntityTypeLaborOffice, ID: "office-1", Status: StatusInactive}
	company := &EntityNode{Type: EntityTypeCompany, ID: "company-1", Status: StatusActive, Parent: office}
	worker := &EntityNode{Type: EntityTypeWorker, ID: "worker-1", Status: StatusActive, Parent: company}

	assert.Equal(t, StatusInactive, worker.EffectiveStatus(RoleCategoryWorker))
	assert.Equal(t, StatusInactive, company.EffectiveStatus(RoleCategoryCompany))
	assert.Equal(t, StatusActive, worker.EffectiveStatus(RoleCategorySystem))

	office.Status = StatusActive
	assert.Equal(t, StatusActive, worker.EffectiveStatus(RoleCategoryWorker))

	var missing *EntityNode
	assert.Equal(t, StatusInactive, missing.EffectiveStatus(RoleCategoryCompany))
}

func TestEntityStatus_CanAccessFeature(t *testing.T) {
	status := EntityStatus{
		EffectiveStatus:    StatusActive,
		RoleCategory:       RoleCategoryCompany,
		RestrictedFeatures: []string{FeaturePayroll},
		CanAccess:          true,
	}

	assert.True(t, status.CanAccessFeature(FeatureReports))
	assert.False(t, status.CanAccessFeature(FeaturePayroll))

	status.EffectiveStatus = StatusInactive
	assert.False(t, status.CanAccessFeature(FeatureReports))

	system := EntityStatus{RoleCategory: RoleCategorySystem, CanAccess: true, RestrictedFeatures: []string{FeaturePayroll}}
	assert.True(t, system.CanAccessFeature(FeaturePayroll))

	system.CanAccess = false
	assert.False(t, system.CanAccessFeature(FeaturePayroll))
}

func TestFailClosedStatus(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	previous := EntityStatus{
		EntityType:      EntityTypeCompany,
		EntityID:        "company-1",
		EntityName:      "Acme",
		EffectiveStatus: StatusActive,
		RoleCategory:    RoleCategorySystem,
		CanAccess:       true,
		AdminContact:    "ops@acme.test",
	}

	status := FailClosedStatus(previous, now, "Unable to verify")

	assert.False(t, status.CanAccess)
	assert.False(t, status.IsActive())
	assert.Equal(t, StatusInactive, status.EntityStatus)
	assert.Equal(t, StatusInactive, status.EffectiveStatus)
	assert.Equal(t, RoleCategoryUnknown, status.RoleCategory)
	assert.Equal(t, "company-1", status.EntityID)
	assert.Equal(t, "ops@acme.test", status.AdminContact)
	assert.Equal(t, now, status.LastStatusCheck)
	assert.ElementsMatch(t, AllFeatures(), status.RestrictedFeatures)
	for _, feature := range AllFeatures() {
		assert.False(t, status.CanAccessFeature(feature), feature)
	}
}

func TestEntityStatus_CloneIsDeep(t *testing.T) {
	status := EntityStatus{RestrictedFeatures: []string{FeaturePayroll}}

	cloned := status.Clone()
	cloned.RestrictedFeatures[0] = FeatureReports

	assert.Equal(t, FeaturePayroll, status.RestrictedFeatures[0])
	assert.False(t, status.Checked())
}
