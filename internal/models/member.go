package models

import "time"

// Role is a member's permission level in the fund.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Member represents a participant in the fund.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// Name is the display name of the member.
	Name string `json:"name"`

	// Email is the member's contact address.
	Email string `json:"email"`

	// Role is either admin or member.
	Role Role `json:"role"`

	// JoinDate is when the member was created. Set once, never edited.
	JoinDate time.Time `json:"joinDate"`

	// ImageURL is an optional avatar location. Empty means none.
	ImageURL string `json:"imageUrl,omitempty"`
}

// MemberFields holds the caller-editable fields of a member.
type MemberFields struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	ImageURL string `json:"imageUrl,omitempty"`
}
