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
	ErrBannerInvalid  = errors.New("invalid banner")
	ErrBannerNotFound = errors.New("banner not found")
)

// BannerService manages the homepage carousel. Banners are created and
// curated by admins; the public endpoint only ever sees active ones.
type BannerService struct {
	Store store.Store
}

// BannerInput is an admin's new banner submission. The image is an
// already-hosted URL, like event gallery images.
type BannerInput struct {
	ImageURL string
	Title    string
	Link     string
	Position int
}

// CreateBanner stores a new banner. New banners start active.
func (s *BannerService) CreateBanner(ctx context.Context, in BannerInput) (domain.Banner, error) {
	if in.ImageURL == "" {
		return domain.Banner{}, ErrBannerInvalid
	}

	banner := domain.Banner{
		ID:       idx.New().String(),
		ImageURL: in.ImageURL,
		Title:    in.Title,
		Link:     in.Link,
		Position: in.Position,
		IsActive: true,
	}

	if err := s.Store.Banners().Create(ctx, banner); err != nil {
		slogx.FromContext(ctx).Error("failed to create banner", slog.Any("error", err))
		return domain.Banner{}, err
	}

	slogx.FromContext(ctx).Info("banner created", slog.String("banner_id", banner.ID))
	return banner, nil
}

// ActiveBanners lists the live carousel in display order.
func (s *BannerService) ActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	return s.Store.Banners().ListActive(ctx)
}

// AllBanners lists every banner, hidden ones included, for the admin
// console.
func (s *BannerService) AllBanners(ctx context.Context) ([]domain.Banner, error) {
	return s.Store.Banners().ListAll(ctx)
}

// UpdateBanner applies a partial update (title, link, position, active
// flag). Nil fields are left unchanged.
func (s *BannerService) UpdateBanner(ctx context.Context, id string, upd store.BannerUpdate) error {
	if err := s.Store.Banners().Update(ctx, id, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBannerNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("banner updated", slog.String("banner_id", id))
	return nil
}

// DeleteBanner removes a banner outright.
func (s *BannerService) DeleteBanner(ctx context.Context, id string) error {
	if err := s.Store.Banners().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBannerNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("banner deleted", slog.String("banner_id", id))
	return nil
}
