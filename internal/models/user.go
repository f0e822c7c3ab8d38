package models

import "time"

// User represents a console account. Passwords are stored in plaintext; this
// is a demo backend and hardening authentication is explicitly out of scope.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      Role      `gorm:"size:32;index;not null" json:"role"`
	Campus    Campus    `gorm:"size:64;index;not null" json:"campus"`
	AvatarURL string    `gorm:"size:512" json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the authenticated caller extracted from a session token.
type Identity struct {
	ID     uint
	Name   string
	Role   Role
	Campus Campus
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
