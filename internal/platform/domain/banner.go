package domain

import "time"

// Banner is an admin-managed homepage carousel image. Position orders
// the carousel; inactive banners stay stored but are never served on
// the public listing.
type Banner struct {
	ID        string
	ImageURL  string
	Title     string
	Link      string
	Position  int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
