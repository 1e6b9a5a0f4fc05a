package store

import (
	"context"
	"errors"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrNoRowsAffected reports that a conditional update matched no
	// rows. Callers use it to detect a lost compare-and-set race, e.g.
	// an invite consumed by a concurrent registration.
	ErrNoRowsAffected = errors.New("store: no rows affected")
)

// Page is the common limit/offset window for list queries.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page to sane defaults.
func (p Page) Normalize(defaultSize int) Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultSize
	}
	return p
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// Store is the root data access interface. Concrete drivers implement
// this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Invites() Invites
	LeaderProfiles() LeaderProfiles
	Events() Events
	MediaBytes() MediaBytes
	Comments() Comments
	Locations() Locations
	Banners() Banners
	Settings() Settings
	Analytics() Analytics

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error
	// the transaction is rolled back, otherwise it is committed. This
	// is the recommended way to run multi-step writes that must be
	// atomic (e.g. registration: account + invite + profile).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role     domain.Role // empty matches all
	IsActive *bool
	Search   string // matches name (case-insensitive) or mobile
}

// UserWithCounts decorates a user with per-content totals for the admin
// listing.
type UserWithCounts struct {
	domain.User
	EventCount     int64
	MediaByteCount int64
	CommentCount   int64
}

type Users interface {
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByMobile is used during login and the duplicate-mobile check.
	GetByMobile(ctx context.Context, mobile string) (domain.User, error)

	// Create inserts a new user (id is provided by the app via ULID).
	Create(ctx context.Context, u domain.User) error

	List(ctx context.Context, f UserFilter, p Page) ([]UserWithCounts, int64, error)

	// UpdateFlags mutates is_active / can_post; nil leaves a flag unchanged.
	UpdateFlags(ctx context.Context, userID string, isActive, canPost *bool) error

	// IsEmpty returns true if there are no users (bootstrap check).
	IsEmpty(ctx context.Context) (bool, error)
}

// InviteListing decorates an invite with creator/consumer names for the
// admin listing.
type InviteListing struct {
	domain.Invite
	CreatedByName string
	UsedByName    string
}

type Invites interface {
	Create(ctx context.Context, inv domain.Invite) error

	// GetByCode returns the invite regardless of used/expired state; the
	// workflow decides which failure to surface.
	GetByCode(ctx context.Context, code string) (domain.Invite, error)

	GetByID(ctx context.Context, id string) (domain.Invite, error)

	// MarkUsedIfUnused atomically flips used=true and records the
	// consumer, succeeding for exactly one caller. Returns
	// ErrNoRowsAffected when the invite was already consumed.
	MarkUsedIfUnused(ctx context.Context, inviteID, usedByUserID string) error

	// List returns invites newest first; used=nil matches all.
	List(ctx context.Context, used *bool, p Page) ([]InviteListing, int64, error)

	// Delete removes an invite. Used invites are never deleted; the
	// driver enforces this and reports ErrNoRowsAffected.
	Delete(ctx context.Context, inviteID string) error

	// DeleteExpiredUnused is housekeeping for stale invites.
	DeleteExpiredUnused(ctx context.Context) error
}

type LeaderProfiles interface {
	Create(ctx context.Context, p domain.LeaderProfile) error
	GetBySlug(ctx context.Context, slug string) (domain.LeaderProfile, error)
	GetByUserID(ctx context.Context, userID string) (domain.LeaderProfile, error)

	// SlugExists checks live rows only, so slugs freed by deletion are
	// reusable by design.
	SlugExists(ctx context.Context, slug string) (bool, error)

	List(ctx context.Context, p Page) ([]domain.LeaderListing, int64, error)

	// Delete removes a profile, freeing its slug for reallocation.
	Delete(ctx context.Context, id string) error
}

// EventFilter narrows public event listings. Empty fields match all.
type EventFilter struct {
	State        string
	District     string
	Constituency string
	Category     domain.EventCategory
	Status       domain.ContentStatus
}

type Events interface {
	// Create inserts the event along with its images and social links.
	Create(ctx context.Context, e domain.Event) error

	// GetByID returns the event with images and social links attached.
	GetByID(ctx context.Context, id string) (domain.Event, error)

	List(ctx context.Context, f EventFilter, p Page) ([]domain.Event, int64, error)

	UpdateStatus(ctx context.Context, id string, status domain.ContentStatus) error

	// Delete cascades to images, social links and comments (per schema).
	Delete(ctx context.Context, id string) error
}

type MediaBytes interface {
	Create(ctx context.Context, mb domain.MediaByte) error
	GetByID(ctx context.Context, id string) (domain.MediaByte, error)

	// List returns media bytes newest first; userID empty matches all.
	List(ctx context.Context, userID string, p Page) ([]domain.MediaByte, int64, error)

	IncrementViews(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// CommentFilter selects the parent; exactly one field is set.
type CommentFilter struct {
	EventID     string
	MediaByteID string
}

type Comments interface {
	Create(ctx context.Context, c domain.Comment) error
	List(ctx context.Context, f CommentFilter, p Page) ([]domain.Comment, int64, error)
}

type Locations interface {
	ListStates(ctx context.Context) ([]domain.State, error)
	ListDistricts(ctx context.Context, stateID string) ([]domain.District, error)
	ListConstituencies(ctx context.Context, districtID string) ([]domain.Constituency, error)

	CreateState(ctx context.Context, s domain.State) error
	CreateDistrict(ctx context.Context, d domain.District) error
	CreateConstituency(ctx context.Context, c domain.Constituency) error

	// IsEmpty returns true if no states exist (bootstrap check).
	IsEmpty(ctx context.Context) (bool, error)
}

// BannerUpdate mutates only the non-nil fields.
type BannerUpdate struct {
	Title    *string
	Link     *string
	Position *int
	IsActive *bool
}

type Banners interface {
	Create(ctx context.Context, b domain.Banner) error

	// ListActive returns live banners in carousel order.
	ListActive(ctx context.Context) ([]domain.Banner, error)

	// ListAll includes hidden banners for the admin console.
	ListAll(ctx context.Context) ([]domain.Banner, error)

	Update(ctx context.Context, id string, upd BannerUpdate) error
	Delete(ctx context.Context, id string) error
}

type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	All(ctx context.Context) (map[string]string, error)

	// Set upserts a key.
	Set(ctx context.Context, key, value string) error
}

type Analytics interface {
	// ApprovedEventCount counts approved events created at or after
	// since; a zero time counts all.
	ApprovedEventCount(ctx context.Context, since time.Time) (int64, error)

	EventsByState(ctx context.Context) ([]domain.GroupCount, error)
	EventsByDistrict(ctx context.Context, limit int) ([]domain.GroupCount, error)
	EventsByCategory(ctx context.Context) ([]domain.GroupCount, error)
	TopConstituencies(ctx context.Context, limit int) ([]domain.GroupCount, error)
	TopCadres(ctx context.Context, limit int) ([]domain.CadreActivity, error)
	TotalMediaByteViews(ctx context.Context) (int64, error)
	EventsPerDay(ctx context.Context, since time.Time) ([]domain.DayCount, error)
}
