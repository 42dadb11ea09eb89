package entities

import (
	"time"

	"github.com/google/uuid"
)

// EcoLocation is a project location. Country and state are stored as
// two-letter codes.
type EcoLocation struct {
	ID        uuid.UUID
	SiteID    uuid.UUID
	Location  string
	CN        string
	ST        string
	IsDelete  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
