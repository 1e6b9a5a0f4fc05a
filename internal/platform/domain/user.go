package domain

import "time"

// Role is the single role attached to a user account. The invite that
// provisioned the account is authoritative for which role it holds.
type Role string

const (
	RoleCadre      Role = "CADRE"
	RoleLeader     Role = "LEADER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCadre, RoleLeader, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether r carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID           string
	Name         string
	Mobile       string // 10-digit login handle, unique and immutable
	PasswordHash string // bcrypt encoded
	Role         Role
	State        string // optional, free text copied from registration
	District     string
	Constituency string
	IsActive     bool
	CanPost      bool
	UsedInviteID string // invite that provisioned this account, if any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the projection safe to return to callers. The password
// hash never leaves the service layer.
type PublicUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Role   Role   `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Mobile: u.Mobile, Role: u.Role}
}
