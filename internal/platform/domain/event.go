package domain

import "time"

type EventCategory string

const (
	CategoryOutreach      EventCategory = "OUTREACH"
	CategoryWelfare       EventCategory = "WELFARE"
	CategoryMeeting       EventCategory = "MEETING"
	CategoryProtest       EventCategory = "PROTEST"
	CategorySocialService EventCategory = "SOCIAL_SERVICE"
)

func (c EventCategory) Valid() bool {
	switch c {
	case CategoryOutreach, CategoryWelfare, CategoryMeeting, CategoryProtest, CategorySocialService:
		return true
	}
	return false
}

type ContentStatus string

const (
	StatusPending  ContentStatus = "PENDING"
	StatusApproved ContentStatus = "APPROVED"
	StatusRejected ContentStatus = "REJECTED"
)

func (s ContentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type SocialPlatform string

const (
	PlatformYouTube   SocialPlatform = "YOUTUBE"
	PlatformTwitter   SocialPlatform = "TWITTER"
	PlatformFacebook  SocialPlatform = "FACEBOOK"
	PlatformInstagram SocialPlatform = "INSTAGRAM"
)

func (p SocialPlatform) Valid() bool {
	switch p {
	case PlatformYouTube, PlatformTwitter, PlatformFacebook, PlatformInstagram:
		return true
	}
	return false
}

// Event is a cadre-submitted field activity report. Events enter the
// public feed only once an admin approves them (or auto-approval is on).
type Event struct {
	ID           string
	UserID       string
	AuthorName   string // joined from users for listings
	Title        string
	Category     EventCategory
	Description  string
	State        string
	District     string
	Constituency string
	Language     string
	Status       ContentStatus
	Images       []EventImage
	SocialLinks  []SocialLink
	CommentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type EventImage struct {
	ID       string
	EventID  string
	URL      string
	Position int
}

type SocialLink struct {
	ID           string
	EventID      string
	Platform     SocialPlatform
	URL          string
	ThumbnailURL string
}
