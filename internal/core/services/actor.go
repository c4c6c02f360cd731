package services

import "prenderia/internal/core/domain"

// Actor is the authenticated caller of a service operation
type Actor struct {
	ID   uint
	Role domain.Role
}

// IsAdmin reports whether the actor has the ADMIN role
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}
