package domain

import (
	"errors"
	"time"
)

// Role is the authorization level attached to an identity.
type Role string

const (
	RoleSuperUser  Role = "super_user"
	RoleNormalUser Role = "normal_user"
	RoleVisitor    Role = "visitor"
)

// roleRank encodes the strict hierarchy super_user > normal_user > visitor.
var roleRank = map[Role]int{
	RoleVisitor:    0,
	RoleNormalUser: 1,
	RoleSuperUser:  2,
}

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrSessionNotFound = errors.New("session not found")
var ErrCourseNotFound = errors.New("course not found")

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Satisfies reports whether an identity holding role r meets the required
// role. The hierarchy is a total order, so a super_user satisfies every
// requirement and a visitor requirement is satisfied by everyone.
func (r Role) Satisfies(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

// User models an identity driving authorization decisions. A visitor
// identity is synthesized on demand and never stored.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Credential pairs a stored account with its bcrypt password hash.
type Credential struct {
	User         User
	PasswordHash string
}

// VisitorUser returns a fresh anonymous identity. Each call constructs a
// new value; visitors are never persisted or looked up by email.
func VisitorUser() User {
	return User{
		ID:        "visitor",
		Email:     "",
		Name:      "Visitor",
		Role:      RoleVisitor,
		CreatedAt: time.Now().UTC(),
	}
}
