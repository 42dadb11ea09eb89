package entities

import (
	"time"

	"github.com/google/uuid"
)

// Role domains.
const (
	RoleDomainUser  = "USER"
	RoleDomainAdmin = "ADMIN"
)

// Role scopes. A SITE role applies only to the sites it is attached to; the
// DEFAULT role of a domain applies to every site without an override.
const (
	RoleScopeSite    = "SITE"
	RoleScopeDefault = "DEFAULT"
)

type Role struct {
	ID        uuid.UUID
	Name      string
	Domain    string
	Scope     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
