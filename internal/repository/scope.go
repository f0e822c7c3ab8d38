package repository

import (
	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/models"
)

// Scope narrows list queries to the rows a caller may see. Admins bypass
// campus filtering entirely; other roles see their own campus only.
type Scope struct {
	Role   models.Role
	Campus models.Campus
}

// ScopeFor derives a query scope from an authenticated identity.
func ScopeFor(identity models.Identity) Scope {
	return Scope{Role: identity.Role, Campus: identity.Campus}
}

func scopeByCampus(db *gorm.DB, scope Scope) *gorm.DB {
	if scope.Role == models.RoleAdmin {
		return db
	}
	return db.Where("campus = ?", scope.Campus)
}

// scopeByCampusOrAll additionally admits rows tagged for every campus, which
// only announcements use.
func scopeByCampusOrAll(db *gorm.DB, scope Scope) *gorm.DB {
	if scope.Role == models.RoleAdmin {
		return db
	}
	return db.Where("campus IN ?", []models.Campus{scope.Campus, models.CampusAll})
}
