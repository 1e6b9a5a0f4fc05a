package domain

import "time"

type VideoType string

const (
	VideoYouTube VideoType = "youtube"
	VideoUpload  VideoType = "upload"
)

// MediaByte is a short video message posted by a leader, either a
// YouTube link or an uploaded file URL.
type MediaByte struct {
	ID         string
	UserID     string
	AuthorName string // joined from users for listings
	LeaderSlug string // joined from leader_profiles, empty if none
	VideoURL   string
	VideoType  VideoType
	Message    string
	Language   string
	ViewCount  int64
	CreatedAt  time.Time
}
