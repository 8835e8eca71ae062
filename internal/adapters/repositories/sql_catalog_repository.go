package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"travel-locator-service/internal/domain"
)

// SQL-backed implementation of the CatalogRepository port.
// The same query runs on SQLite and Postgres.
type SQLCatalogRepository struct{ DB *sql.DB }

func NewSQLCatalogRepository(db *sql.DB) *SQLCatalogRepository {
	return &SQLCatalogRepository{DB: db}
}

// Return all catalog entries in seed order.
func (s *SQLCatalogRepository) ListPlaces(ctx context.Context) ([]domain.PlaceSuggestion, error) {
	if s.DB == nil {
		return nil, errors.New("sql catalog repository: DB is nil")
	}

	query := `
	SELECT
		place_id,
		description,
		primary_label,
		secondary_label,
		type_tags
	FROM place_catalog
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query place_catalog table: %w", err)
	}
	defer rows.Close()

	places := make([]domain.PlaceSuggestion, 0, 64)
	for rows.Next() {
		var p domain.PlaceSuggestion
		var tags string
		if err := rows.Scan(&p.ID, &p.Description, &p.PrimaryLabel, &p.SecondaryLabel, &tags); err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}
		p.TypeTags = splitTags(tags)
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}
