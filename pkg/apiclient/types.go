// Package apiclient provides a typed Go client for the Prajasetu HTTP
// API, along with the request/response types shared with the server.
package apiclient

import "time"

// ErrorResponse is the flat error envelope every failing endpoint
// returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// User is the public projection of an account.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
}

// RegisterRequest is the invite-gated signup payload. The role is not a
// field: it comes from the invite.
type RegisterRequest struct {
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	Password     string `json:"password"`
	InviteCode   string `json:"inviteCode"`
	State        string `json:"state,omitempty"`
	District     string `json:"district,omitempty"`
	Constituency string `json:"constituency,omitempty"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

type LoginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// EventRequest is a cadre's event report submission.
type EventRequest struct {
	Title        string              `json:"title"`
	Category     string              `json:"category"`
	Description  string              `json:"description"`
	State        string              `json:"state"`
	District     string              `json:"district"`
	Constituency string              `json:"constituency,omitempty"`
	Language     string              `json:"language,omitempty"`
	ImageURLs    []string            `json:"imageUrls,omitempty"`
	SocialLinks  []SocialLinkRequest `json:"socialLinks,omitempty"`
}

type SocialLinkRequest struct {
	Platform     string `json:"platform"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

type Event struct {
	ID           string       `json:"id"`
	AuthorName   string       `json:"authorName"`
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	Description  string       `json:"description"`
	State        string       `json:"state"`
	District     string       `json:"district"`
	Constituency string       `json:"constituency,omitempty"`
	Language     string       `json:"language"`
	Status       string       `json:"status"`
	ImageURLs    []string     `json:"imageUrls,omitempty"`
	SocialLinks  []SocialLink `json:"socialLinks,omitempty"`
	CommentCount int          `json:"commentCount"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type SocialLink struct {
	Platform     string `json:"platform"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

type EventListResponse struct {
	Events   []Event `json:"events"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// ModerateRequest carries the moderation verdict: APPROVED or REJECTED.
type ModerateRequest struct {
	Status string `json:"status"`
}

type MediaByteRequest struct {
	VideoURL  string `json:"videoUrl"`
	VideoType string `json:"videoType"`
	Message   string `json:"message,omitempty"`
	Language  string `json:"language,omitempty"`
}

type MediaByte struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	LeaderSlug string    `json:"leaderSlug,omitempty"`
	VideoURL   string    `json:"videoUrl"`
	VideoType  string    `json:"videoType"`
	Message    string    `json:"message,omitempty"`
	Language   string    `json:"language"`
	ViewCount  int64     `json:"viewCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type MediaByteListResponse struct {
	MediaBytes []MediaByte `json:"mediaBytes"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type Comment struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CommentListResponse struct {
	Comments []Comment `json:"comments"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

// Leader is one row of the public leader directory.
type Leader struct {
	Slug         string            `json:"slug"`
	Name         string            `json:"name"`
	Designation  string            `json:"designation"`
	Constituency string            `json:"constituency,omitempty"`
	State        string            `json:"state,omitempty"`
	Bio          string            `json:"bio,omitempty"`
	PhotoURL     string            `json:"photoUrl,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
	Verified     bool              `json:"verified"`
}

type LeaderListResponse struct {
	Leaders  []Leader `json:"leaders"`
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}

// LeaderPageResponse is a leader's public profile page with their
// recent media bytes.
type LeaderPageResponse struct {
	Leader     Leader      `json:"leader"`
	MediaBytes []MediaByte `json:"mediaBytes"`
}

// BannerRequest is an admin's new homepage banner. The image is an
// already-hosted URL.
type BannerRequest struct {
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title,omitempty"`
	Link     string `json:"link,omitempty"`
	Position int    `json:"position,omitempty"`
}

// BannerUpdateRequest patches a banner; nil fields are left unchanged.
type BannerUpdateRequest struct {
	Title    *string `json:"title,omitempty"`
	Link     *string `json:"link,omitempty"`
	Position *int    `json:"position,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type Banner struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	Title     string    `json:"title,omitempty"`
	Link      string    `json:"link,omitempty"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type BannerListResponse struct {
	Banners []Banner `json:"banners"`
}

type InviteMintRequest struct {
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type Invite struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	Role          string     `json:"role"`
	Used          bool       `json:"used"`
	CreatedByName string     `json:"createdByName,omitempty"`
	UsedByName    string     `json:"usedByName,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type InviteListResponse struct {
	Invites  []Invite `json:"invites"`
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}

// AdminUser decorates an account with content totals for the admin
// listing.
type AdminUser struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Mobile         string    `json:"mobile"`
	Role           string    `json:"role"`
	State          string    `json:"state,omitempty"`
	District       string    `json:"district,omitempty"`
	Constituency   string    `json:"constituency,omitempty"`
	IsActive       bool      `json:"isActive"`
	CanPost        bool      `json:"canPost"`
	EventCount     int64     `json:"eventCount"`
	MediaByteCount int64     `json:"mediaByteCount"`
	CommentCount   int64     `json:"commentCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type UserListResponse struct {
	Users    []AdminUser `json:"users"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// UserFlagsRequest toggles account flags; a nil field leaves the flag
// unchanged.
type UserFlagsRequest struct {
	IsActive *bool `json:"isActive,omitempty"`
	CanPost  *bool `json:"canPost,omitempty"`
}

type SettingUpdateRequest struct {
	Value string `json:"value"`
}

type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

type State struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameTE string `json:"nameTe,omitempty"`
}

type District struct {
	ID      string `json:"id"`
	StateID string `json:"stateId"`
	Name    string `json:"name"`
	NameTE  string `json:"nameTe,omitempty"`
}

type Constituency struct {
	ID         string `json:"id"`
	DistrictID string `json:"districtId"`
	Name       string `json:"name"`
}

// HealthChecks reports per-dependency status on the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
