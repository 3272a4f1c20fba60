package domain

import (
	"errors"
	"time"
)

// Role is the authority level of a staff identity.
type Role string

const (
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// roleRank orders roles by authority. Admin satisfies every moderator-gated
// operation; the reverse does not hold.
var roleRank = map[Role]int{
	RoleModerator: 1,
	RoleAdmin:     2,
}

// Meets reports whether the role carries at least the authority of required.
func (r Role) Meets(required Role) bool {
	return roleRank[r] >= roleRank[required] && roleRank[r] > 0
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return roleRank[r] > 0
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrIdentityNotFound = errors.New("identity not found")

// Identity models an authenticated staff member. Provisioned out of band;
// the back-office only reads identities.
type Identity struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
