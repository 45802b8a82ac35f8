package postgres

import (
	"context"
	"database/sql"

	"github.com/Aravinth1228/safehaven/module/core/domain"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/database"
)

var _ database.ZoneRepository = (*ZoneRepo)(nil)

type ZoneRepo struct {
	db *sql.DB
}

func NewZoneRepo(db *sql.DB) *ZoneRepo {
	return &ZoneRepo{db: db}
}

func (r *ZoneRepo) Create(ctx context.Context, z *domain.Zone) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO zones (zone_id, name, latitude, longitude, radius_meters, severity, active) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		z.ID, z.Name, z.Lat, z.Lon, z.RadiusMeters, z.Severity, z.Active,
	)
	return err
}

func (r *ZoneRepo) Update(ctx context.Context, z *domain.Zone) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE zones SET name = $2, latitude = $3, longitude = $4, radius_meters = $5, severity = $6, active = $7, updated_at = NOW() WHERE zone_id = $1`,
		z.ID, z.Name, z.Lat, z.Lon, z.RadiusMeters, z.Severity, z.Active,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ZoneRepo) Deactivate(ctx context.Context, zoneID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE zones SET active = FALSE, updated_at = NOW() WHERE zone_id = $1`,
		zoneID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ZoneRepo) ListActive(ctx context.Context) ([]domain.Zone, error) {
	return r.list(ctx,
		`SELECT zone_id, name, latitude, longitude, radius_meters, severity, active FROM zones WHERE active = TRUE ORDER BY zone_id`,
	)
}

func (r *ZoneRepo) ListAll(ctx context.Context) ([]domain.Zone, error) {
	return r.list(ctx,
		`SELECT zone_id, name, latitude, longitude, radius_meters, severity, active FROM zones ORDER BY zone_id`,
	)
}

func (r *ZoneRepo) list(ctx context.Context, query string) ([]domain.Zone, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Zone
	for rows.Next() {
		var z domain.Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Lat, &z.Lon, &z.RadiusMeters, &z.Severity, &z.Active); err != nil {
			return nil, err
		}
		results = append(results, z)
	}
	return results, rows.Err()
}

func (r *ZoneRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM zones`).Scan(&count)
	return count, err
}
