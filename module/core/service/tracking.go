package service

import (
	"context"

	"github.com/Aravinth1228/safehaven/module/core/domain"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/database"
)

type TrackingService struct {
	locations database.LocationRepository
	tourists  database.TouristRepository
}

func NewTrackingService(locations database.LocationRepository, tourists database.TouristRepository) *TrackingService {
	return &TrackingService{locations: locations, tourists: tourists}
}

func (s *TrackingService) SaveSample(ctx context.Context, tl *domain.TouristLocation) error {
	return s.locations.Insert(ctx, tl)
}

func (s *TrackingService) GetLatest(ctx context.Context, touristID string) (*domain.TouristLocation, error) {
	return s.locations.GetLatest(ctx, touristID)
}

func (s *TrackingService) GetHistory(ctx context.Context, query *domain.HistoryQuery) ([]domain.TouristLocation, error) {
	return s.locations.GetHistory(ctx, query)
}

func (s *TrackingService) ListTourists(ctx context.Context) ([]domain.Tourist, error) {
	return s.tourists.List(ctx)
}
