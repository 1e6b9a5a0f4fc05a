package domain

import "time"

// Comment belongs to exactly one of an event or a media byte.
type Comment struct {
	ID          string
	UserID      string
	AuthorName  string // joined from users for listings
	EventID     string // empty when attached to a media byte
	MediaByteID string // empty when attached to an event
	Content     string
	CreatedAt   time.Time
}
