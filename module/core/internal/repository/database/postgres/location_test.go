package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Aravinth1228/safehaven/module/core/domain"
)

func TestInsert_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectExec(`INSERT INTO tourist_locations`).
		WithArgs("T-000123", 15.2993, 74.1240, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewLocationRepo(db)
	err = repo.Insert(context.Background(), &domain.TouristLocation{
		TouristID: "T-000123",
		Location:  domain.Location{Lat: 15.2993, Lon: 74.1240, Timestamp: ts},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestInsert_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectExec(`INSERT INTO tourist_locations`).
		WithArgs("T-000123", 15.2993, 74.1240, ts).
		WillReturnError(sqlmock.ErrCancelled)

	repo := NewLocationRepo(db)
	err = repo.Insert(context.Background(), &domain.TouristLocation{
		TouristID: "T-000123",
		Location:  domain.Location{Lat: 15.2993, Lon: 74.1240, Timestamp: ts},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetLatest_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	rows := sqlmock.NewRows([]string{"tourist_id", "latitude", "longitude", "timestamp"}).
		AddRow("T-000123", 15.2993, 74.1240, ts)

	mock.ExpectQuery(`SELECT tourist_id, latitude, longitude, timestamp FROM tourist_locations WHERE tourist_id = (.+) ORDER BY timestamp DESC LIMIT 1`).
		WithArgs("T-000123").
		WillReturnRows(rows)

	repo := NewLocationRepo(db)
	tl, err := repo.GetLatest(context.Background(), "T-000123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tl.TouristID != "T-000123" {
		t.Errorf("expected T-000123, got %s", tl.TouristID)
	}
	if tl.Location.Lat != 15.2993 {
		t.Errorf("expected 15.2993, got %f", tl.Location.Lat)
	}
	if !tl.Location.Timestamp.Equal(ts) {
		t.Errorf("expected %v, got %v", ts, tl.Location.Timestamp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetLatest_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"tourist_id", "latitude", "longitude", "timestamp"})
	mock.ExpectQuery(`SELECT tourist_id, latitude, longitude, timestamp FROM tourist_locations WHERE tourist_id = (.+)`).
		WithArgs("UNKNOWN").
		WillReturnRows(rows)

	repo := NewLocationRepo(db)
	_, err = repo.GetLatest(context.Background(), "UNKNOWN")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetHistory_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts1 := time.Unix(1715000000, 0)
	ts2 := time.Unix(1715005000, 0)
	start := time.Unix(1715000000, 0)
	end := time.Unix(1715009999, 0)

	rows := sqlmock.NewRows([]string{"tourist_id", "latitude", "longitude", "timestamp"}).
		AddRow("T-000123", 15.29, 74.12, ts1).
		AddRow("T-000123", 15.30, 74.13, ts2)

	mock.ExpectQuery(`SELECT tourist_id, latitude, longitude, timestamp FROM tourist_locations WHERE tourist_id = (.+) AND timestamp >= (.+) AND timestamp <= (.+) ORDER BY timestamp ASC`).
		WithArgs("T-000123", start, end).
		WillReturnRows(rows)

	repo := NewLocationRepo(db)
	results, err := repo.GetHistory(context.Background(), &domain.HistoryQuery{
		TouristID: "T-000123",
		Start:     start,
		End:       end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Location.Lat != 15.29 {
		t.Errorf("expected 15.29, got %f", results[0].Location.Lat)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetHistory_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	start := time.Unix(1715000000, 0)
	end := time.Unix(1715009999, 0)
	rows := sqlmock.NewRows([]string{"tourist_id", "latitude", "longitude", "timestamp"})

	mock.ExpectQuery(`SELECT tourist_id, latitude, longitude, timestamp FROM tourist_locations`).
		WithArgs("T-000123", start, end).
		WillReturnRows(rows)

	repo := NewLocationRepo(db)
	results, err := repo.GetHistory(context.Background(), &domain.HistoryQuery{
		TouristID: "T-000123",
		Start:     start,
		End:       end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}
