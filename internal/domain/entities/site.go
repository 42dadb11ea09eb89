package entities

import (
	"time"

	"github.com/google/uuid"
)

// Site is a tenant of the platform. Every user, location and project belongs
// to exactly one site. The URL columns let the public app resolve the site
// serving a given request host.
type Site struct {
	ID        uuid.UUID
	SiteName  string
	ProdURL   string
	StageURL  string
	DevURL    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
