package postgres

import (
	"time"

	"github.com/google/uuid"
)

type SiteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SiteName  string
	ProdURL   string    `gorm:"index"`
	StageURL  string    `gorm:"index"`
	DevURL    string    `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SiteModel) TableName() string { return "sites" }

type RoleModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name      string
	Domain    string      `gorm:"index"`
	Scope     string      `gorm:"index"`
	Sites     []SiteModel `gorm:"many2many:role_sites;joinForeignKey:RoleID;joinReferences:SiteID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RoleModel) TableName() string { return "roles" }

// UserModel enforces the tenant-scoped uniqueness invariants: the same
// username or email may exist on two different sites, never twice on one.
type UserModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SiteID    uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_users_site_username,priority:1;uniqueIndex:idx_users_site_email,priority:1"`
	RoleID    uuid.UUID  `gorm:"type:uuid"`
	Role      *RoleModel `gorm:"foreignKey:RoleID"`
	FirstName string
	LastName  string
	Email     string     `gorm:"uniqueIndex:idx_users_site_email,priority:2"`
	Username  string     `gorm:"uniqueIndex:idx_users_site_username,priority:2"`
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string { return "users" }

type AdminUserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Email     string    `gorm:"uniqueIndex"`
	Username  string    `gorm:"uniqueIndex"`
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AdminUserModel) TableName() string { return "admin_users" }

type EcoLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SiteID    uuid.UUID `gorm:"type:uuid;index"`
	Location  string
	CN        string    `gorm:"column:cn"`
	ST        string    `gorm:"column:st"`
	IsDelete  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EcoLocationModel) TableName() string { return "eco_locations" }

type EcoProjectModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	SiteID       uuid.UUID         `gorm:"type:uuid;index"`
	LocationID   *uuid.UUID        `gorm:"type:uuid"`
	Location     *EcoLocationModel `gorm:"foreignKey:LocationID"`
	Title        string
	Identifier   string            `gorm:"index"`
	Intro        string
	Status       string
	FundAmount   float64
	FundReceived float64
	ListImage    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (EcoProjectModel) TableName() string { return "eco_projects" }
