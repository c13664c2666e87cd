package entity

import (
	"slices"
	"time"
)

// Status is the enable/disable state of an organizational entity.
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

// IsValid checks if the Status is one of the three known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusTerminated:
		return true
	default:
		return false
	}
}

// severity orders statuses from most to least permissive.
func (s Status) severity() int {
	switch s {
	case StatusActive:
		return 0
	case StatusInactive:
		return 1
	default:
		return 2
	}
}

// Normalize maps unknown values to inactive.
func (s Status) Normalize() Status {
	if s.IsValid() {
		return s
	}

	return StatusInactive
}

// Worst returns the more restrictive of a and b. Unknown values count as inactive.
func Worst(a, b Status) Status {
	a, b = a.Normalize(), b.Normalize()
	if b.severity() > a.severity() {
		return b
	}

	return a
}

// EntityType is the kind of organizational unit a role is scoped to.
type EntityType string

const (
	EntityTypeSystem      EntityType = "system"
	EntityTypeLaborOffice EntityType = "labor_office"
	EntityTypeCompany     EntityType = "company"
	EntityTypeWorker      EntityType = "worker"
)

// EntityNode is one link of an ownership chain, e.g. worker -> company -> labor office.
type EntityNode struct {
	Type   EntityType
	ID     string
	Name   string
	Status Status
	Parent *EntityNode
}

// EffectiveStatus walks the chain and returns the most restrictive status on it.
// System-category identities are always active.
func (n *EntityNode) EffectiveStatus(category RoleCategory) Status {
	if category.IsSystem() {
		return StatusActive
	}
	if n == nil {
		return StatusInactive
	}

	effective := n.Status.Normalize()
	for parent := n.Parent; parent != nil; parent = parent.Parent {
		effective = Worst(effective, parent.Status)
	}

	return effective
}

// Feature keys gated by entity status.
const (
	FeatureEmployeeManagement    = "employee_management"
	FeatureInsuranceRegistration = "insurance_registration"
	FeatureContributionReporting = "contribution_reporting"
	FeaturePayroll               = "payroll"
	FeatureReports               = "reports"
	FeatureDocumentUpload        = "document_upload"
	FeatureUserManagement        = "user_management"
	FeatureSettings              = "settings"
)

// AllFeatures is the restricted set applied when access fails closed.
func AllFeatures() []string {
	return []string{
		FeatureEmployeeManagement,
		FeatureInsuranceRegistration,
		FeatureContributionReporting,
		FeaturePayroll,
		FeatureReports,
		FeatureDocumentUpload,
		FeatureUserManagement,
		FeatureSettings,
	}
}

// EntityStatus is the access-governing status snapshot of the signed-in identity.
type EntityStatus struct {
	EntityType         EntityType   `json:"entityType,omitempty"`
	EntityStatus       Status       `json:"entityStatus,omitempty"`
	EffectiveStatus    Status       `json:"effectiveStatus,omitempty"`
	EntityID           string       `json:"entityId,omitempty"`
	EntityName         string       `json:"entityName,omitempty"`
	RoleCategory       RoleCategory `json:"roleCategory,omitempty"`
	RoleCode           RoleCode     `json:"roleCode,omitempty"`
	RestrictedFeatures []string     `json:"restrictedFeatures,omitempty"`
	CanAccess          bool         `json:"canAccess"`
	StatusMessage      string       `json:"statusMessage,omitempty"`
	AdminContact       string       `json:"adminContact,omitempty"`
	LastStatusCheck    time.Time    `json:"lastStatusCheck"`
	IsStatusLoading    bool         `json:"-"`
}

// Checked reports whether a status has ever been resolved.
func (s EntityStatus) Checked() bool {
	return !s.LastStatusCheck.IsZero()
}

// IsActive reports whether the identity may use the application at all.
func (s EntityStatus) IsActive() bool {
	return s.RoleCategory.IsSystem() || s.EffectiveStatus == StatusActive
}

// CanAccessFeature reports whether feature is usable under this status.
func (s EntityStatus) CanAccessFeature(feature string) bool {
	if !s.CanAccess {
		return false
	}
	if s.RoleCategory.IsSystem() {
		return true
	}
	if !s.IsActive() {
		return false
	}

	return !slices.Contains(s.RestrictedFeatures, feature)
}

// Clone returns a deep copy.
func (s EntityStatus) Clone() EntityStatus {
	s.RestrictedFeatures = slices.Clone(s.RestrictedFeatures)

	return s
}

// FailClosedStatus is the conservative status applied when the lookup fails.
// The role category is dropped so that no bypass rule can reopen access.
func FailClosedStatus(previous EntityStatus, now time.Time, message string) EntityStatus {
	return EntityStatus{
		EntityType:         previous.EntityType,
		EntityStatus:       StatusInactive,
		EffectiveStatus:    StatusInactive,
		EntityID:           previous.EntityID,
		EntityName:         previous.EntityName,
		RestrictedFeatures: AllFeatures(),
		CanAccess:          false,
		StatusMessage:      message,
		AdminContact:       previous.AdminContact,
		LastStatusCheck:    now,
	}
}

// StatusChange is emitted when the direct entity status of the signed-in identity changes.
type StatusChange struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	EntityType      EntityType `json:"entityType"`
	EntityID        string     `json:"entityId"`
	OldStatus       Status     `json:"oldStatus"`
	NewStatus       Status     `json:"newStatus"`
	EffectiveStatus Status     `json:"effectiveStatus"`
	OccurredAt      time.Time  `json:"occurredAt"`
}
