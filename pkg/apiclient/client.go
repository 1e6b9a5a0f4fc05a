package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is returned when the server answers with a non-success
// status. Message carries the server's error envelope text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client is a typed client for the Prajasetu HTTP API. The zero token
// makes unauthenticated calls; WithToken derives an authenticated one.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that sends the given bearer
// token on every request.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// do sends a JSON request and decodes the response into out (which may
// be nil for endpoints without a body of interest).
func (c *Client) do(ctx context.Context, method, path string, body, out any, wantStatus int) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var envelope ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// Register performs the invite-gated signup.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges mobile/password for an access token.
func (c *Client) Login(ctx context.Context, mobile, password string) (*LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Mobile: mobile, Password: password}
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventFeedOptions narrows the public feed.
type EventFeedOptions struct {
	State        string
	District     string
	Constituency string
	Category     string
	Page         int
	PageSize     int
}

// Feed lists approved events.
func (c *Client) Feed(ctx context.Context, opts EventFeedOptions) (*EventListResponse, error) {
	q := pageQuery(opts.Page, opts.PageSize)
	if opts.State != "" {
		q.Set("state", opts.State)
	}
	if opts.District != "" {
		q.Set("district", opts.District)
	}
	if opts.Constituency != "" {
		q.Set("constituency", opts.Constituency)
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}

	var out EventListResponse
	if err := c.do(ctx, http.MethodGet, withQuery("/v1/events", q), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEvent submits an event report.
func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodPost, "/v1/events", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEvent fetches one event by id.
func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodGet, "/v1/events/"+id, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/events/"+id, nil, nil, http.StatusNoContent)
}

// ModerationQueue lists events for review, optionally by status.
func (c *Client) ModerationQueue(ctx context.Context, status string, page, pageSize int) (*EventListResponse, error) {
	q := pageQuery(page, pageSize)
	if status != "" {
		q.Set("status", status)
	}

	var out EventListResponse
	if err := c.do(ctx, http.MethodGet, withQuery("/v1/admin/events", q), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ModerateEvent approves or rejects a pending event.
func (c *Client) ModerateEvent(ctx context.Context, id, status string) error {
	req := ModerateRequest{Status: status}
	return c.do(ctx, http.MethodPost, "/v1/admin/events/"+id+"/moderate", req, nil, http.StatusNoContent)
}

// CreateMediaByte publishes a leader's short video message.
func (c *Client) CreateMediaByte(ctx context.Context, req MediaByteRequest) (*MediaByte, error) {
	var out MediaByte
	if err := c.do(ctx, http.MethodPost, "/v1/media-bytes", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMediaBytes lists media bytes newest first.
func (c *Client) ListMediaBytes(ctx context.Context, page, pageSize int) (*MediaByteListResponse, error) {
	var out MediaByteListResponse
	path := withQuery("/v1/media-bytes", pageQuery(page, pageSize))
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMediaByte fetches one media byte and counts the view.
func (c *Client) GetMediaByte(ctx context.Context, id string) (*MediaByte, error) {
	var out MediaByte
	if err := c.do(ctx, http.MethodGet, "/v1/media-bytes/"+id, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMediaByte removes a media byte.
func (c *Client) DeleteMediaByte(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/media-bytes/"+id, nil, nil, http.StatusNoContent)
}

// CommentOnEvent attaches a comment to an approved event.
func (c *Client) CommentOnEvent(ctx context.Context, eventID, content string) (*Comment, error) {
	var out Comment
	req := CommentRequest{Content: content}
	if err := c.do(ctx, http.MethodPost, "/v1/events/"+eventID+"/comments", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommentOnMediaByte attaches a comment to a media byte.
func (c *Client) CommentOnMediaByte(ctx context.Context, mediaByteID, content string) (*Comment, error) {
	var out Comment
	req := CommentRequest{Content: content}
	if err := c.do(ctx, http.MethodPost, "/v1/media-bytes/"+mediaByteID+"/comments", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventComments lists comments on an event, newest first.
func (c *Client) EventComments(ctx context.Context, eventID string, page, pageSize int) (*CommentListResponse, error) {
	var out CommentListResponse
	path := withQuery("/v1/events/"+eventID+"/comments", pageQuery(page, pageSize))
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// MediaByteComments lists comments on a media byte, newest first.
func (c *Client) MediaByteComments(ctx context.Context, mediaByteID string, page, pageSize int) (*CommentListResponse, error) {
	var out CommentListResponse
	path := withQuery("/v1/media-bytes/"+mediaByteID+"/comments", pageQuery(page, pageSize))
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListLeaders returns the public leader directory.
func (c *Client) ListLeaders(ctx context.Context, page, pageSize int) (*LeaderListResponse, error) {
	var out LeaderListResponse
	path := withQuery("/v1/leaders", pageQuery(page, pageSize))
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLeader resolves a leader's public page by slug.
func (c *Client) GetLeader(ctx context.Context, slug string) (*LeaderPageResponse, error) {
	var out LeaderPageResponse
	if err := c.do(ctx, http.MethodGet, "/v1/leaders/"+slug, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// States lists the seeded states.
func (c *Client) States(ctx context.Context) ([]State, error) {
	var out []State
	if err := c.do(ctx, http.MethodGet, "/v1/locations/states", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Districts lists the districts of a state.
func (c *Client) Districts(ctx context.Context, stateID string) ([]District, error) {
	var out []District
	if err := c.do(ctx, http.MethodGet, "/v1/locations/states/"+stateID+"/districts", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Constituencies lists the constituencies of a district.
func (c *Client) Constituencies(ctx context.Context, districtID string) ([]Constituency, error) {
	var out []Constituency
	if err := c.do(ctx, http.MethodGet, "/v1/locations/districts/"+districtID+"/constituencies", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Banners lists the active homepage banners in carousel order.
func (c *Client) Banners(ctx context.Context) (*BannerListResponse, error) {
	var out BannerListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/banners", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBanner adds a homepage banner (admin only).
func (c *Client) CreateBanner(ctx context.Context, req BannerRequest) (*Banner, error) {
	var out Banner
	if err := c.do(ctx, http.MethodPost, "/v1/admin/banners", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminBanners lists every banner, hidden ones included (admin only).
func (c *Client) AdminBanners(ctx context.Context) (*BannerListResponse, error) {
	var out BannerListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/admin/banners", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBanner patches a banner's title, link, position or active flag
// (admin only).
func (c *Client) UpdateBanner(ctx context.Context, id string, req BannerUpdateRequest) error {
	return c.do(ctx, http.MethodPatch, "/v1/admin/banners/"+id, req, nil, http.StatusNoContent)
}

// DeleteBanner removes a banner (admin only).
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/admin/banners/"+id, nil, nil, http.StatusNoContent)
}

// MintInvite creates a new single-use invite code.
func (c *Client) MintInvite(ctx context.Context, req InviteMintRequest) (*Invite, error) {
	var out Invite
	if err := c.do(ctx, http.MethodPost, "/v1/admin/invites", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvites lists invites; used=nil matches all.
func (c *Client) ListInvites(ctx context.Context, used *bool, page, pageSize int) (*InviteListResponse, error) {
	q := pageQuery(page, pageSize)
	if used != nil {
		q.Set("used", strconv.FormatBool(*used))
	}

	var out InviteListResponse
	if err := c.do(ctx, http.MethodGet, withQuery("/v1/admin/invites", q), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvite removes an unused invite.
func (c *Client) DeleteInvite(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/admin/invites/"+id, nil, nil, http.StatusNoContent)
}

// UserListOptions narrows the admin user listing.
type UserListOptions struct {
	Role     string
	Search   string
	Page     int
	PageSize int
}

// ListUsers returns the admin user listing.
func (c *Client) ListUsers(ctx context.Context, opts UserListOptions) (*UserListResponse, error) {
	q := pageQuery(opts.Page, opts.PageSize)
	if opts.Role != "" {
		q.Set("role", opts.Role)
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}

	var out UserListResponse
	if err := c.do(ctx, http.MethodGet, withQuery("/v1/admin/users", q), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUserFlags toggles is_active / can_post on an account.
func (c *Client) SetUserFlags(ctx context.Context, userID string, req UserFlagsRequest) error {
	return c.do(ctx, http.MethodPatch, "/v1/admin/users/"+userID+"/flags", req, nil, http.StatusNoContent)
}

// Settings returns every platform setting.
func (c *Client) Settings(ctx context.Context) (*SettingsResponse, error) {
	var out SettingsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/admin/settings", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetSetting upserts one setting key.
func (c *Client) SetSetting(ctx context.Context, key, value string) error {
	req := SettingUpdateRequest{Value: value}
	return c.do(ctx, http.MethodPut, "/v1/admin/settings/"+key, req, nil, http.StatusNoContent)
}

// Analytics returns the admin dashboard summary. The shape is left
// loose so dashboard additions don't break older clients.
func (c *Client) Analytics(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, "/v1/admin/analytics", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// TopConstituencies returns the public constituency leaderboard.
func (c *Client) TopConstituencies(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.do(ctx, http.MethodGet, "/v1/analytics/top-constituencies", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Livez checks that the service is alive.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz checks that the service and its dependencies are ready.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
