package entities

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is an end-user account. Users are always scoped to exactly one site;
// the (Username, SiteID) pair is unique across the platform.
type User struct {
	ID        uuid.UUID
	SiteID    uuid.UUID
	RoleID    uuid.UUID
	Role      *Role
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUser(siteID, roleID uuid.UUID, firstName, lastName, email, username, password string) *User {
	now := time.Now()
	return &User{
		ID:        uuid.New(),
		SiteID:    siteID,
		RoleID:    roleID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Username:  username,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
