package service

import (
	"context"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

// LocationService serves the state/district/constituency directory used
// by registration and event forms.
type LocationService struct {
	Store store.Store
}

func (s *LocationService) States(ctx context.Context) ([]domain.State, error) {
	return s.Store.Locations().ListStates(ctx)
}

func (s *LocationService) Districts(ctx context.Context, stateID string) ([]domain.District, error) {
	return s.Store.Locations().ListDistricts(ctx, stateID)
}

func (s *LocationService) Constituencies(ctx context.Context, districtID string) ([]domain.Constituency, error) {
	return s.Store.Locations().ListConstituencies(ctx, districtID)
}
