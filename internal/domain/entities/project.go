package entities

import (
	"time"

	"github.com/google/uuid"
)

// EcoProject is a conservation project shown on the public app. FundReceived
// keeps the historical "fundRecieved" spelling on the wire for compatibility
// with existing frontends.
type EcoProject struct {
	ID           uuid.UUID
	SiteID       uuid.UUID
	LocationID   *uuid.UUID
	Location     *EcoLocation
	Title        string
	Identifier   string
	Intro        string
	Status       string
	FundAmount   float64
	FundReceived float64
	ListImage    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
