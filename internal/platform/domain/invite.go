package domain

import "time"

// Invite is a single-use authorization token binding a role grant to a
// registration. Once Used flips to true it can never be consumed again
// or deleted.
type Invite struct {
	ID        string
	Code      string // short uppercase code, globally unique
	Role      Role   // role granted to the consuming account
	CreatedBy string
	Used      bool
	UsedBy    string     // account that consumed the invite, empty until used
	ExpiresAt *time.Time // nil means no expiry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invite has a past expiry at the given time.
func (i Invite) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && !i.ExpiresAt.After(now)
}
