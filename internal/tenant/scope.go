package tenant

import "gorm.io/gorm"

// RoleSuper is the cross-company administrative role. Every other role is
// confined to its own company.
const RoleSuper = "SUPER"

// Scope restricts a query to one company.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// VisibleScope is the role-aware variant: SUPER actors get an unfiltered
// query, everyone else is pinned to their own company.
func VisibleScope(role, ownCompanyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if role == RoleSuper {
			return db
		}
		return db.Where("company_id = ?", ownCompanyID)
	}
}

// VisibleCompanies reports which companies the actor may touch. The second
// return is true when the actor sees every company (no filter applies).
func VisibleCompanies(role, ownCompanyID string) ([]string, bool) {
	if role == RoleSuper {
		return nil, true
	}
	return []string{ownCompanyID}, false
}

// ResolveCompanyID decides which company a written record is assigned to.
// SUPER actors may target any company; for everyone else a requested foreign
// company id is silently overridden to their own, mirroring the back-office
// form that renders company_id as a hidden input.
func ResolveCompanyID(role, ownCompanyID, requested string) string {
	if role == RoleSuper && requested != "" {
		return requested
	}
	return ownCompanyID
}
