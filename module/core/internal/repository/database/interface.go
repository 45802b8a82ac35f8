package database

import (
	"context"

	"github.com/Aravinth1228/safehaven/module/core/domain"
)

type LocationRepository interface {
	Insert(ctx context.Context, loc *domain.TouristLocation) error
	GetLatest(ctx context.Context, touristID string) (*domain.TouristLocation, error)
	GetHistory(ctx context.Context, query *domain.HistoryQuery) ([]domain.TouristLocation, error)
}

type ZoneRepository interface {
	Create(ctx context.Context, z *domain.Zone) error
	Update(ctx context.Context, z *domain.Zone) error
	Deactivate(ctx context.Context, zoneID string) error
	ListActive(ctx context.Context) ([]domain.Zone, error)
	ListAll(ctx context.Context) ([]domain.Zone, error)
	Count(ctx context.Context) (int, error)
}

type TouristRepository interface {
	List(ctx context.Context) ([]domain.Tourist, error)
	GetStatus(ctx context.Context, touristID string) (domain.Status, error)
	SetStatus(ctx context.Context, touristID string, status domain.Status) error
}
