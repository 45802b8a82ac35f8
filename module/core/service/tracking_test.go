package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aravinth1228/safehaven/module/core/domain"
)

type mockLocationRepo struct {
	insertFn     func(ctx context.Context, loc *domain.TouristLocation) error
	getLatestFn  func(ctx context.Context, touristID string) (*domain.TouristLocation, error)
	getHistoryFn func(ctx context.Context, query *domain.HistoryQuery) ([]domain.TouristLocation, error)
}

func (m *mockLocationRepo) Insert(ctx context.Context, loc *domain.TouristLocation) error {
	return m.insertFn(ctx, loc)
}

func (m *mockLocationRepo) GetLatest(ctx context.Context, touristID string) (*domain.TouristLocation, error) {
	return m.getLatestFn(ctx, touristID)
}

func (m *mockLocationRepo) GetHistory(ctx context.Context, query *domain.HistoryQuery) ([]domain.TouristLocation, error) {
	return m.getHistoryFn(ctx, query)
}

func TestSaveSample_Success(t *testing.T) {
	var inserted *domain.TouristLocation
	repo := &mockLocationRepo{
		insertFn: func(_ context.Context, loc *domain.TouristLocation) error {
			inserted = loc
			return nil
		},
	}

	svc := NewTrackingService(repo, &mockTouristRepo{})
	tl := &domain.TouristLocation{
		TouristID: "T-000123",
		Location: domain.Location{
			Lat:       15.2993,
			Lon:       74.1240,
			Timestamp: time.Unix(1715003456, 0),
		},
	}

	err := svc.SaveSample(context.Background(), tl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted == nil {
		t.Fatal("expected Insert to be called")
	}
	if inserted.TouristID != "T-000123" {
		t.Errorf("expected T-000123, got %s", inserted.TouristID)
	}
}

func TestSaveSample_RepoError(t *testing.T) {
	repo := &mockLocationRepo{
		insertFn: func(_ context.Context, _ *domain.TouristLocation) error {
			return errors.New("db error")
		},
	}

	svc := NewTrackingService(repo, &mockTouristRepo{})
	err := svc.SaveSample(context.Background(), &domain.TouristLocation{TouristID: "X"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetLatest_Success(t *testing.T) {
	ts := time.Unix(1715003456, 0)
	repo := &mockLocationRepo{
		getLatestFn: func(_ context.Context, touristID string) (*domain.TouristLocation, error) {
			return &domain.TouristLocation{
				TouristID: touristID,
				Location:  domain.Location{Lat: 15.2993, Lon: 74.1240, Timestamp: ts},
			}, nil
		},
	}

	svc := NewTrackingService(repo, &mockTouristRepo{})
	result, err := svc.GetLatest(context.Background(), "T-000123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TouristID != "T-000123" {
		t.Errorf("expected T-000123, got %s", result.TouristID)
	}
	if result.Location.Lat != 15.2993 {
		t.Errorf("expected 15.2993, got %f", result.Location.Lat)
	}
}

func TestGetLatest_NotFound(t *testing.T) {
	repo := &mockLocationRepo{
		getLatestFn: func(_ context.Context, _ string) (*domain.TouristLocation, error) {
			return nil, errors.New("not found")
		},
	}

	svc := NewTrackingService(repo, &mockTouristRepo{})
	_, err := svc.GetLatest(context.Background(), "UNKNOWN")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetHistory_Success(t *testing.T) {
	ts1 := time.Unix(1715000000, 0)
	ts2 := time.Unix(1715005000, 0)
	repo := &mockLocationRepo{
		getHistoryFn: func(_ context.Context, query *domain.HistoryQuery) ([]domain.TouristLocation, error) {
			return []domain.TouristLocation{
				{TouristID: query.TouristID, Location: domain.Location{Lat: 15.29, Lon: 74.12, Timestamp: ts1}},
				{TouristID: query.TouristID, Location: domain.Location{Lat: 15.30, Lon: 74.13, Timestamp: ts2}},
			}, nil
		},
	}

	svc := NewTrackingService(repo, &mockTouristRepo{})
	query := &domain.HistoryQuery{
		TouristID: "T-000123",
		Start:     time.Unix(1715000000, 0),
		End:       time.Unix(1715009999, 0),
	}

	results, err := svc.GetHistory(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestListTourists_Success(t *testing.T) {
	tourists := &mockTouristRepo{
		listFn: func(_ context.Context) ([]domain.Tourist, error) {
			return []domain.Tourist{
				{TouristID: "T-000123", Status: domain.StatusSafe},
				{TouristID: "T-000456", Status: domain.StatusAlert},
			}, nil
		},
	}

	svc := NewTrackingService(&mockLocationRepo{}, tourists)
	results, err := svc.ListTourists(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 tourists, got %d", len(results))
	}
	if results[1].Status != domain.StatusAlert {
		t.Errorf("expected alert, got %s", results[1].Status)
	}
}
