package entities

import (
	"time"

	"github.com/google/uuid"
)

// Realm is one of the two independent identity spaces carried on a request.
type Realm string

const (
	RealmAdmin Realm = "admin"
	RealmUser  Realm = "user"
)

// Session is a resolved, non-expired identity for one realm. An absent
// session is represented by a nil *Session, never by a zero value.
type Session struct {
	Realm     Realm
	Subject   uuid.UUID
	ExpiresAt time.Time
}
