package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Aravinth1228/safehaven/module/core/domain"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/database"
)

type ZoneService struct {
	repo database.ZoneRepository
}

func NewZoneService(repo database.ZoneRepository) *ZoneService {
	return &ZoneService{repo: repo}
}

func validateZone(z *domain.Zone) error {
	if z.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if z.Lat < -90 || z.Lat > 90 {
		return &domain.ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if z.Lon < -180 || z.Lon > 180 {
		return &domain.ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	if z.RadiusMeters <= 0 {
		return &domain.ValidationError{Field: "radius_meters", Reason: "must be positive"}
	}
	if !z.Severity.Valid() {
		return &domain.ValidationError{Field: "severity", Reason: "must be low, medium, high or critical"}
	}
	return nil
}

func (s *ZoneService) Create(ctx context.Context, z *domain.Zone) error {
	if z.Severity == "" {
		z.Severity = domain.SeverityMedium
	}
	if err := validateZone(z); err != nil {
		return err
	}
	if z.ID == "" {
		z.ID = uuid.NewString()
	}
	z.Active = true
	return s.repo.Create(ctx, z)
}

func (s *ZoneService) Update(ctx context.Context, z *domain.Zone) error {
	if err := validateZone(z); err != nil {
		return err
	}
	return s.repo.Update(ctx, z)
}

// Deactivate soft-deletes a zone: it leaves evaluation snapshots but
// stays in the table for audit.
func (s *ZoneService) Deactivate(ctx context.Context, zoneID string) error {
	return s.repo.Deactivate(ctx, zoneID)
}

func (s *ZoneService) ListActive(ctx context.Context) ([]domain.Zone, error) {
	return s.repo.ListActive(ctx)
}

func (s *ZoneService) ListAll(ctx context.Context) ([]domain.Zone, error) {
	return s.repo.ListAll(ctx)
}

// Seed loads an initial zone set, but only into an empty registry so a
// restart never clobbers admin edits.
func (s *ZoneService) Seed(ctx context.Context, zones []domain.Zone) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := range zones {
		if err := s.Create(ctx, &zones[i]); err != nil {
			return err
		}
	}
	return nil
}
