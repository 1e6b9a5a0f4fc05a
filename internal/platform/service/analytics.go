package service

import (
	"context"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

// analyticsTopN caps the "top" listings in the summary.
const analyticsTopN = 10

type AnalyticsService struct {
	Store store.Store
}

// Summary aggregates the admin dashboard numbers in one call.
func (s *AnalyticsService) Summary(ctx context.Context) (domain.AnalyticsSummary, error) {
	var (
		summary domain.AnalyticsSummary
		err     error
	)
	now := time.Now().UTC()

	repo := s.Store.Analytics()

	if summary.TotalEvents, err = repo.ApprovedEventCount(ctx, time.Time{}); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.EventsLast7Days, err = repo.ApprovedEventCount(ctx, now.AddDate(0, 0, -7)); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.EventsLast30Days, err = repo.ApprovedEventCount(ctx, now.AddDate(0, 0, -30)); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.EventsByState, err = repo.EventsByState(ctx); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.EventsByDistrict, err = repo.EventsByDistrict(ctx, analyticsTopN); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.EventsByCategory, err = repo.EventsByCategory(ctx); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.TopConstituencies, err = repo.TopConstituencies(ctx, analyticsTopN); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.TopCadres, err = repo.TopCadres(ctx, analyticsTopN); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.TotalMediaByteViews, err = repo.TotalMediaByteViews(ctx); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.EventsOverTime, err = repo.EventsPerDay(ctx, now.AddDate(0, 0, -30)); err != nil {
		return domain.AnalyticsSummary{}, err
	}

	return summary, nil
}

// TopConstituencies is the public leaderboard of constituencies by
// approved event count.
func (s *AnalyticsService) TopConstituencies(ctx context.Context) ([]domain.GroupCount, error) {
	return s.Store.Analytics().TopConstituencies(ctx, analyticsTopN)
}
