package postgres

import (
	"context"
	"database/sql"

	"github.com/Aravinth1228/safehaven/module/core/domain"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/database"
)

var _ database.LocationRepository = (*LocationRepo)(nil)

type LocationRepo struct {
	db *sql.DB
}

func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

func (r *LocationRepo) Insert(ctx context.Context, loc *domain.TouristLocation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tourist_locations (tourist_id, latitude, longitude, timestamp) VALUES ($1, $2, $3, $4)`,
		loc.TouristID, loc.Location.Lat, loc.Location.Lon, loc.Location.Timestamp,
	)
	return err
}

func (r *LocationRepo) GetLatest(ctx context.Context, touristID string) (*domain.TouristLocation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT tourist_id, latitude, longitude, timestamp FROM tourist_locations WHERE tourist_id = $1 ORDER BY timestamp DESC LIMIT 1`,
		touristID,
	)

	var tl domain.TouristLocation
	if err := row.Scan(&tl.TouristID, &tl.Location.Lat, &tl.Location.Lon, &tl.Location.Timestamp); err != nil {
		return nil, err
	}
	return &tl, nil
}

func (r *LocationRepo) GetHistory(ctx context.Context, query *domain.HistoryQuery) ([]domain.TouristLocation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tourist_id, latitude, longitude, timestamp FROM tourist_locations WHERE tourist_id = $1 AND timestamp >= $2 AND timestamp <= $3 ORDER BY timestamp ASC`,
		query.TouristID, query.Start, query.End,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.TouristLocation
	for rows.Next() {
		var tl domain.TouristLocation
		if err := rows.Scan(&tl.TouristID, &tl.Location.Lat, &tl.Location.Lon, &tl.Location.Timestamp); err != nil {
			return nil, err
		}
		results = append(results, tl)
	}
	return results, rows.Err()
}
