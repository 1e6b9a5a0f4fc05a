package service

import (
	"context"
	"testing"

	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/stretchr/testify/require"
)

func TestBannerLifecycle(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &BannerService{Store: st}
	ctx := context.Background()

	_, err := svc.CreateBanner(ctx, BannerInput{Title: "No image"})
	require.ErrorIs(t, err, ErrBannerInvalid)

	second, err := svc.CreateBanner(ctx, BannerInput{
		ImageURL: "https://cdn.example.org/banners/b.jpg",
		Title:    "Membership drive",
		Position: 2,
	})
	require.NoError(t, err)
	require.True(t, second.IsActive)

	first, err := svc.CreateBanner(ctx, BannerInput{
		ImageURL: "https://cdn.example.org/banners/a.jpg",
		Link:     "https://example.org/rally",
		Position: 1,
	})
	require.NoError(t, err)

	// The public carousel comes back in position order.
	banners, err := svc.ActiveBanners(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 2)
	require.Equal(t, first.ID, banners[0].ID)
	require.Equal(t, second.ID, banners[1].ID)

	// Hiding a banner removes it from the public list but not from the
	// admin one.
	hidden := false
	require.NoError(t, svc.UpdateBanner(ctx, second.ID, store.BannerUpdate{IsActive: &hidden}))

	banners, err = svc.ActiveBanners(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 1)
	require.Equal(t, first.ID, banners[0].ID)

	all, err := svc.AllBanners(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Reordering moves a banner to the front.
	front, visible := 0, true
	require.NoError(t, svc.UpdateBanner(ctx, second.ID,
		store.BannerUpdate{Position: &front, IsActive: &visible}))
	banners, err = svc.ActiveBanners(ctx)
	require.NoError(t, err)
	require.Equal(t, second.ID, banners[0].ID)

	require.NoError(t, svc.DeleteBanner(ctx, second.ID))
	require.ErrorIs(t, svc.DeleteBanner(ctx, second.ID), ErrBannerNotFound)
	require.ErrorIs(t, svc.UpdateBanner(ctx, second.ID, store.BannerUpdate{}), ErrBannerNotFound)
}
