package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Aravinth1228/safehaven/module/core/domain"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/database"
)

var _ database.TouristRepository = (*TouristRepo)(nil)

type TouristRepo struct {
	db *sql.DB
}

func NewTouristRepo(db *sql.DB) *TouristRepo {
	return &TouristRepo{db: db}
}

// List returns every tourist that ever reported a position. Tourists
// without a status row are reported as safe.
func (r *TouristRepo) List(ctx context.Context) ([]domain.Tourist, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT l.tourist_id, COALESCE(t.status, 'safe') FROM (SELECT DISTINCT tourist_id FROM tourist_locations) l LEFT JOIN tourists t ON t.tourist_id = l.tourist_id ORDER BY l.tourist_id`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Tourist
	for rows.Next() {
		var t domain.Tourist
		if err := rows.Scan(&t.TouristID, &t.Status); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// GetStatus defaults to safe for tourists with no status row: first
// contact is always legal.
func (r *TouristRepo) GetStatus(ctx context.Context, touristID string) (domain.Status, error) {
	var status domain.Status
	err := r.db.QueryRowContext(ctx,
		`SELECT status FROM tourists WHERE tourist_id = $1`,
		touristID,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StatusSafe, nil
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

func (r *TouristRepo) SetStatus(ctx context.Context, touristID string, status domain.Status) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tourists (tourist_id, status) VALUES ($1, $2) ON CONFLICT (tourist_id) DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()`,
		touristID, status,
	)
	return err
}
