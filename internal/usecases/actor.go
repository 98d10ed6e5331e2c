package usecases

import (
	"github.com/google/uuid"
	"startup-nexus.backend/internal/domain/entities"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  entities.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == entities.UserRoleAdmin
}

// canManage reports whether the actor owns the resource or is an admin.
func (a Actor) canManage(ownerID uuid.UUID) bool {
	return a.IsAdmin() || (a.ID != uuid.Nil && a.ID == ownerID)
}
