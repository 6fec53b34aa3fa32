package repository

import (
	"context"
	"errors"
	"fmt"

	"location-agent/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NearbyRadiusMeters bounds FindNearestPlace.
const NearbyRadiusMeters float64 = 10000

// Schema creates the gazetteer table and its indexes. It is idempotent.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS places (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		address VARCHAR(512) NOT NULL DEFAULT '',
		name_tsvector TSVECTOR GENERATED ALWAYS AS (
			to_tsvector('simple', name || ' ' || address)
		) STORED,
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS places_geom_idx ON places USING GIST (geom);
	CREATE INDEX IF NOT EXISTS places_name_tsvector_idx ON places USING GIN (name_tsvector);
`

// stagingSchema holds raw rows for InsertPlaces; it lives until the transaction ends.
const stagingSchema = `
	CREATE TEMP TABLE places_staging (
		name VARCHAR(255) NOT NULL,
		address VARCHAR(512) NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	) ON COMMIT DROP
`

// Repository is the PostgreSQL gazetteer of named places
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// SearchPlaces performs a full-text search on place names and addresses, best match first
func (r *Repository) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	sql := `
		SELECT
			id,
			name,
			address,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM places
		WHERE name_tsvector @@ plainto_tsquery('simple', $1)
		ORDER BY ts_rank(name_tsvector, plainto_tsquery('simple', $1)) DESC, id
		LIMIT 10
	`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		var p models.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Latitude, &p.Longitude); err != nil {
			return nil, fmt.Errorf("repository: failed to scan place: %w", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return places, nil
}

// FindNearestPlace returns the closest place within NearbyRadiusMeters, or nil when there is none
func (r *Repository) FindNearestPlace(ctx context.Context, lat, lon float64) (*models.Place, error) {
	sql := `
		SELECT
			id,
			name,
			address,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM places
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var p models.Place
	err := r.db.QueryRow(ctx, sql, lat, lon, NearbyRadiusMeters).Scan(
		&p.ID,
		&p.Name,
		&p.Address,
		&p.Latitude,
		&p.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	return &p, nil
}

// EnsureSchema creates the places table when it does not exist yet
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// InsertPlaces copies places into a staging table and moves them into the gazetteer in one transaction.
// It returns how many rows were written.
func (r *Repository) InsertPlaces(ctx context.Context, places []models.Place) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, stagingSchema); err != nil {
		return 0, fmt.Errorf("repository: failed to create staging table: %w", err)
	}

	rows := make([][]interface{}, len(places))
	for i, p := range places {
		rows[i] = []interface{}{p.Name, p.Address, p.Latitude, p.Longitude}
	}

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"places_staging"},
		[]string{"name", "address", "lat", "lon"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]interface{}, error) {
			return rows[i], nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy places: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO places (name, address, geom)
		SELECT name, address, ST_SetSRID(ST_MakePoint(lon, lat), 4326)::geography
		FROM places_staging
	`)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert places: %w", err)
	}
	if tag.RowsAffected() != copied {
		return 0, fmt.Errorf("repository: copied %d places but inserted %d", copied, tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit import: %w", err)
	}

	return tag.RowsAffected(), nil
}

// CountPlaces returns the number of rows in the gazetteer
func (r *Repository) CountPlaces(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM places").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count places: %w", err)
	}
	return count, nil
}
