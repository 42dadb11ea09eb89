package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecotoken/platform-api/internal/domain/entities"
)

// JSON views. Password hashes never leave this layer; fundRecieved keeps its
// historical spelling on the wire.

type roleResponse struct {
	RoleID uuid.UUID `json:"roleID"`
	Role   string    `json:"role"`
	Domain string    `json:"domain"`
	Scope  string    `json:"scope"`
}

type userResponse struct {
	UserID    uuid.UUID     `json:"userID"`
	SiteID    uuid.UUID     `json:"siteID"`
	RoleID    uuid.UUID     `json:"roleID"`
	Role      *roleResponse `json:"role,omitempty"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Username  string        `json:"username"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func newUserResponse(u *entities.User) userResponse {
	resp := userResponse{
		UserID:    u.ID,
		SiteID:    u.SiteID,
		RoleID:    u.RoleID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Role != nil {
		resp.Role = &roleResponse{
			RoleID: u.Role.ID,
			Role:   u.Role.Name,
			Domain: u.Role.Domain,
			Scope:  u.Role.Scope,
		}
	}
	return resp
}

type userListResponse struct {
	Users      []userResponse `json:"users"`
	NextCursor *uuid.UUID     `json:"nextCursor,omitempty"`
}

type siteResponse struct {
	SiteID   uuid.UUID `json:"siteID"`
	SiteName string    `json:"siteName"`
	ProdURL  string    `json:"prodUrl"`
	StageURL string    `json:"stageUrl"`
	DevURL   string    `json:"devUrl"`
}

func newSiteResponse(s *entities.Site) siteResponse {
	return siteResponse{
		SiteID:   s.ID,
		SiteName: s.SiteName,
		ProdURL:  s.ProdURL,
		StageURL: s.StageURL,
		DevURL:   s.DevURL,
	}
}

type siteListResponse struct {
	Sites      []siteResponse `json:"sites"`
	NextCursor *uuid.UUID     `json:"nextCursor,omitempty"`
}

type locationResponse struct {
	LocationID uuid.UUID `json:"locationID"`
	SiteID     uuid.UUID `json:"siteID"`
	Location   string    `json:"location"`
	CN         string    `json:"cn"`
	ST         string    `json:"st"`
}

func newLocationResponse(l *entities.EcoLocation) locationResponse {
	return locationResponse{
		LocationID: l.ID,
		SiteID:     l.SiteID,
		Location:   l.Location,
		CN:         l.CN,
		ST:         l.ST,
	}
}

type locationListResponse struct {
	Locations  []locationResponse `json:"locations"`
	NextCursor *uuid.UUID         `json:"nextCursor,omitempty"`
}

type projectResponse struct {
	ProjectID    uuid.UUID         `json:"projectID"`
	SiteID       uuid.UUID         `json:"siteID"`
	Title        string            `json:"title"`
	Identifier   string            `json:"identifier"`
	Intro        string            `json:"intro,omitempty"`
	Status       string            `json:"status"`
	FundAmount   float64           `json:"fundAmount"`
	FundReceived float64           `json:"fundRecieved"`
	ListImage    string            `json:"listImage,omitempty"`
	Location     *locationResponse `json:"location,omitempty"`
}

func newProjectResponse(p *entities.EcoProject) projectResponse {
	resp := projectResponse{
		ProjectID:    p.ID,
		SiteID:       p.SiteID,
		Title:        p.Title,
		Identifier:   p.Identifier,
		Intro:        p.Intro,
		Status:       p.Status,
		FundAmount:   p.FundAmount,
		FundReceived: p.FundReceived,
		ListImage:    p.ListImage,
	}
	if p.Location != nil {
		loc := newLocationResponse(p.Location)
		resp.Location = &loc
	}
	return resp
}

type projectListResponse struct {
	Projects   []projectResponse `json:"projects"`
	NextCursor *uuid.UUID        `json:"nextCursor,omitempty"`
}

type adminResponse struct {
	AdminID   uuid.UUID `json:"adminID"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
}

func newAdminResponse(a *entities.AdminUser) adminResponse {
	return adminResponse{
		AdminID:   a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Username:  a.Username,
	}
}
