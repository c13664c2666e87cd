// Package entity contains the core business objects of the project.
package entity

import "slices"

// RoleCode identifies a role granted to a user.
type RoleCode string

const (
	// RoleSystemAdmin administers the whole platform.
	RoleSystemAdmin RoleCode = "SYSTEM_ADMIN"
	// RoleLaborOfficeAdmin administers one labor office.
	RoleLaborOfficeAdmin RoleCode = "LABOR_OFFICE_ADMIN"
	// RoleLaborOfficeOfficer works inside one labor office.
	RoleLaborOfficeOfficer RoleCode = "LABOR_OFFICE_OFFICER"
	// RoleCompanyAdmin administers one company.
	RoleCompanyAdmin RoleCode = "COMPANY_ADMIN"
	// RoleCompanyHR manages employees of one company.
	RoleCompanyHR RoleCode = "COMPANY_HR"
	// RoleWorker is an insured worker.
	RoleWorker RoleCode = "WORKER"
)

// String returns the string representation of the RoleCode.
func (c RoleCode) String() string {
	return string(c)
}

// Category returns the organizational tier the role belongs to.
func (c RoleCode) Category() RoleCategory {
	switch c {
	case RoleSystemAdmin:
		return RoleCategorySystem
	case RoleLaborOfficeAdmin, RoleLaborOfficeOfficer:
		return RoleCategoryLaborOffice
	case RoleCompanyAdmin, RoleCompanyHR:
		return RoleCategoryCompany
	case RoleWorker:
		return RoleCategoryWorker
	default:
		return RoleCategoryUnknown
	}
}

// RoleCategory groups role codes by organizational tier.
type RoleCategory string

const (
	RoleCategorySystem      RoleCategory = "system"
	RoleCategoryLaborOffice RoleCategory = "labor_office"
	RoleCategoryCompany     RoleCategory = "company"
	RoleCategoryWorker      RoleCategory = "worker"
	RoleCategoryUnknown     RoleCategory = ""
)

// IsSystem reports whether identities of this category bypass entity status checks.
func (c RoleCategory) IsSystem() bool {
	return c == RoleCategorySystem
}

// DefaultDashboard is the landing route of the category.
func (c RoleCategory) DefaultDashboard() string {
	switch c {
	case RoleCategorySystem:
		return "/admin/dashboard"
	case RoleCategoryLaborOffice:
		return "/labor-office/dashboard"
	case RoleCategoryCompany:
		return "/company/dashboard"
	case RoleCategoryWorker:
		return "/worker/dashboard"
	default:
		return "/dashboard"
	}
}

// RoleScope identifies the entity a role applies to. A global scope has an empty EntityID.
type RoleScope struct {
	Type     EntityType `json:"type"`
	EntityID string     `json:"entityId,omitempty"`
}

// Role is a role assignment carried on the user profile.
type Role struct {
	Code  RoleCode  `json:"code"`
	Name  string    `json:"name"`
	Scope RoleScope `json:"scope"`
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role code.
func (rs Roles) Contains(code RoleCode) bool {
	return slices.ContainsFunc(rs, func(r Role) bool { return r.Code == code })
}

// ContainsAny checks if at least one of codes is held.
func (rs Roles) ContainsAny(codes ...RoleCode) bool {
	return slices.ContainsFunc(codes, rs.Contains)
}

// Codes returns the role codes as strings.
func (rs Roles) Codes() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.Code.String()
	}

	return result
}

// rolePriority orders categories for landing-route selection, most privileged first.
var rolePriority = []RoleCategory{
	RoleCategorySystem,
	RoleCategoryLaborOffice,
	RoleCategoryCompany,
	RoleCategoryWorker,
}

// PrimaryCategory returns the most privileged category held.
func (rs Roles) PrimaryCategory() RoleCategory {
	for _, category := range rolePriority {
		for _, r := range rs {
			if r.Code.Category() == category {
				return category
			}
		}
	}

	return RoleCategoryUnknown
}

// RoleCodesFromStrings converts []string to role codes, dropping blanks.
func RoleCodesFromStrings(ss []string) []RoleCode {
	result := make([]RoleCode, 0, len(ss))
	for _, s := range ss {
		if s == "" {
			continue
		}
		result = append(result, RoleCode(s))
	}

	return result
}
