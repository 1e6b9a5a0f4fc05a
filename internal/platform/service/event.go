package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/idx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

var (
	ErrEventInvalid    = errors.New("invalid event submission")
	ErrEventNotFound   = errors.New("event not found")
	ErrPostingDisabled = errors.New("posting is disabled for this account")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrTooManyImages   = errors.New("too many images")
)

// MaxEventImages caps the gallery attached to one event report.
const MaxEventImages = 5

// MaxEventDescription caps the report body length.
const MaxEventDescription = 500

type EventService struct {
	Store    store.Store
	Settings *SettingsService
}

// EventInput is a cadre's event report submission.
type EventInput struct {
	Title        string
	Category     domain.EventCategory
	Description  string
	State        string
	District     string
	Constituency string
	Language     string
	ImageURLs    []string
	SocialLinks  []SocialLinkInput
}

type SocialLinkInput struct {
	Platform     domain.SocialPlatform
	URL          string
	ThumbnailURL string
}

// CreateEvent records an event report. New events start PENDING unless
// the auto-approve setting is on.
func (s *EventService) CreateEvent(ctx context.Context, userID string, in EventInput) (domain.Event, error) {
	log := slogx.FromContext(ctx)

	// 1. The author must exist and be allowed to post.
	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		return domain.Event{}, err
	}
	if !user.IsActive || !user.CanPost {
		return domain.Event{}, ErrPostingDisabled
	}

	// 2. Validate the submission.
	if in.Title == "" || in.Description == "" || in.State == "" || in.District == "" {
		return domain.Event{}, ErrEventInvalid
	}
	if len(in.Description) > MaxEventDescription {
		return domain.Event{}, ErrEventInvalid
	}
	if !in.Category.Valid() {
		return domain.Event{}, ErrEventInvalid
	}
	if len(in.ImageURLs) > MaxEventImages {
		return domain.Event{}, ErrTooManyImages
	}
	for _, link := range in.SocialLinks {
		if !link.Platform.Valid() || link.URL == "" {
			return domain.Event{}, ErrEventInvalid
		}
	}

	// 3. Moderation mode decides the initial status.
	status := domain.StatusPending
	autoApprove, err := s.Settings.AutoApprovePosts(ctx)
	if err != nil {
		log.Error("failed to read auto-approve setting", slog.Any("error", err))
		return domain.Event{}, err
	}
	if autoApprove {
		status = domain.StatusApproved
	}

	language := in.Language
	if language == "" {
		language = "te"
	}

	event := domain.Event{
		ID:           idx.New().String(),
		UserID:       userID,
		AuthorName:   user.Name,
		Title:        in.Title,
		Category:     in.Category,
		Description:  in.Description,
		State:        in.State,
		District:     in.District,
		Constituency: in.Constituency,
		Language:     language,
		Status:       status,
	}
	for i, url := range in.ImageURLs {
		event.Images = append(event.Images, domain.EventImage{
			ID:       idx.New().String(),
			EventID:  event.ID,
			URL:      url,
			Position: i,
		})
	}
	for _, link := range in.SocialLinks {
		event.SocialLinks = append(event.SocialLinks, domain.SocialLink{
			ID:           idx.New().String(),
			EventID:      event.ID,
			Platform:     link.Platform,
			URL:          link.URL,
			ThumbnailURL: link.ThumbnailURL,
		})
	}

	// The event row and its images/links land together or not at all.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Events().Create(ctx, event)
	})
	if err != nil {
		log.Error("failed to create event", slog.Any("error", err))
		return domain.Event{}, err
	}

	log.Info("event created",
		slog.String("event_id", event.ID),
		slog.String("status", string(event.Status)),
	)
	return event, nil
}

// PublicFeed lists approved events, optionally narrowed by region and
// category. The status filter is forced server-side.
func (s *EventService) PublicFeed(ctx context.Context, f store.EventFilter, page store.Page) ([]domain.Event, int64, error) {
	f.Status = domain.StatusApproved
	return s.Store.Events().List(ctx, f, page.Normalize(DefaultPageSize))
}

// GetEvent returns one event. Non-approved events are only visible to
// their author and to admins.
func (s *EventService) GetEvent(ctx context.Context, id, viewerID string, viewerRole domain.Role) (domain.Event, error) {
	event, err := s.Store.Events().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}
		return domain.Event{}, err
	}

	if event.Status != domain.StatusApproved &&
		event.UserID != viewerID && !viewerRole.IsAdmin() {
		return domain.Event{}, ErrEventNotFound
	}
	return event, nil
}

// ListForModeration lists events of any status for the admin queue.
func (s *EventService) ListForModeration(ctx context.Context, f store.EventFilter, page store.Page) ([]domain.Event, int64, error) {
	return s.Store.Events().List(ctx, f, page.Normalize(DefaultPageSize))
}

// Moderate approves or rejects a pending event.
func (s *EventService) Moderate(ctx context.Context, id string, status domain.ContentStatus) error {
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return ErrEventInvalid
	}

	if err := s.Store.Events().UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("event moderated",
		slog.String("event_id", id),
		slog.String("status", string(status)),
	)
	return nil
}

// DeleteEvent removes an event. Authors may delete their own; admins may
// delete any.
func (s *EventService) DeleteEvent(ctx context.Context, id, callerID string, callerRole domain.Role) error {
	event, err := s.Store.Events().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if event.UserID != callerID && !callerRole.IsAdmin() {
		return ErrNotAuthorized
	}

	if err := s.Store.Events().Delete(ctx, id); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("event deleted", slog.String("event_id", id))
	return nil
}
