package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"travel-locator-service/internal/domain"
)

type CatalogSeed struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	PrimaryLabel   string   `json:"primary_label"`
	SecondaryLabel string   `json:"secondary_label"`
	Types          []string `json:"types"`
}

// Populate place_catalog from a JSON array, keeping file order as display order.
func SeedCatalogFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalog: read %q: %w", jsonPath, err)
	}

	var data []CatalogSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed catalog: parse json: %w", err)
	}

	places := make([]domain.PlaceSuggestion, 0, len(data))
	for _, item := range data {
		places = append(places, domain.PlaceSuggestion{
			ID:             item.ID,
			Description:    item.Description,
			PrimaryLabel:   item.PrimaryLabel,
			SecondaryLabel: item.SecondaryLabel,
			TypeTags:       item.Types,
		})
	}

	if err := SeedCatalog(ctx, db, dialect, places); err != nil {
		return fmt.Errorf("seed catalog from %q: %w", jsonPath, err)
	}
	return nil
}

// Replace the stored catalog with places.
func SeedCatalog(ctx context.Context, db *sql.DB, dialect Dialect, places []domain.PlaceSuggestion) error {
	rows := make([]domain.PlaceSuggestion, 0, len(places))
	seen := make(map[string]struct{}, len(places))
	for i, p := range places {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return fmt.Errorf("seed catalog: item at index %d: id cannot be empty", i+1)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("seed catalog: item at index %d: duplicate id %q", i+1, id)
		}
		seen[id] = struct{}{}

		p.ID = id
		p.Description = strings.TrimSpace(p.Description)
		p.PrimaryLabel = strings.TrimSpace(p.PrimaryLabel)
		if p.Description == "" || p.PrimaryLabel == "" {
			return fmt.Errorf("seed catalog: item %q: description and primary_label are required", id)
		}
		rows = append(rows, p)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM place_catalog;`); err != nil {
		return fmt.Errorf("seed catalog: clear table: %w", err)
	}

	query := `
	INSERT INTO place_catalog (
		place_id,
		position,
		description,
		primary_label,
		secondary_label,
		type_tags
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	if dialect == DialectPostgres {
		query = `
	INSERT INTO place_catalog (place_id, position, description, primary_label, secondary_label, type_tags)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range rows {
		if _, err := stmt.ExecContext(ctx, p.ID, i, p.Description, p.PrimaryLabel, p.SecondaryLabel, joinTags(p.TypeTags)); err != nil {
			return fmt.Errorf("seed catalog: insert place_id=%q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}

// Tags are stored comma-separated; provider tags never contain commas.
func joinTags(tags []string) string { return strings.Join(tags, ",") }

func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
