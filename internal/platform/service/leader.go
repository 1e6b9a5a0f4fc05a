package service

import (
	"context"
	"errors"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

var ErrLeaderNotFound = errors.New("leader not found")

type LeaderService struct {
	Store store.Store
}

// LeaderPage bundles a leader's public profile with their recent media
// bytes for the profile page.
type LeaderPage struct {
	Profile    domain.LeaderProfile
	Name       string
	State      string
	MediaBytes []domain.MediaByte
}

// ListLeaders returns the public leader directory, verified profiles
// first.
func (s *LeaderService) ListLeaders(ctx context.Context, page store.Page) ([]domain.LeaderListing, int64, error) {
	return s.Store.LeaderProfiles().List(ctx, page.Normalize(DefaultPageSize))
}

// GetBySlug resolves one leader's public page by slug.
func (s *LeaderService) GetBySlug(ctx context.Context, slug string) (LeaderPage, error) {
	profile, err := s.Store.LeaderProfiles().GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LeaderPage{}, ErrLeaderNotFound
		}
		return LeaderPage{}, err
	}

	user, err := s.Store.Users().GetByID(ctx, profile.UserID)
	if err != nil {
		return LeaderPage{}, err
	}
	if !user.IsActive {
		return LeaderPage{}, ErrLeaderNotFound
	}

	bytes, _, err := s.Store.MediaBytes().List(ctx, profile.UserID,
		store.Page{Number: 1, Size: DefaultPageSize})
	if err != nil {
		return LeaderPage{}, err
	}

	return LeaderPage{
		Profile:    profile,
		Name:       user.Name,
		State:      user.State,
		MediaBytes: bytes,
	}, nil
}
