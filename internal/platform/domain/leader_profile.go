package domain

import "time"

// LeaderProfile is the public-facing profile attached one-to-one to a
// LEADER-role account. The slug is the URL path segment and is globally
// unique across all profiles.
type LeaderProfile struct {
	ID           string
	UserID       string
	Slug         string
	Designation  string
	Constituency string
	Bio          string
	PhotoURL     string
	SocialLinks  map[string]string // platform name -> URL
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LeaderListing joins a profile with the owning account's display data
// for the public leader directory.
type LeaderListing struct {
	Profile LeaderProfile
	Name    string
	State   string
}
