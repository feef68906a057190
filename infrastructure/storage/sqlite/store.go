// ABOUTME: SQLite-backed catalog store for model records and their enrichment fields
// ABOUTME: Enrichment payloads are JSON columns; each one is written independently

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"mlcatalog-api/core/domain"
	coreerrors "mlcatalog-api/core/errors"
)

// Store implements the CatalogStore interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore opens (or creates) the catalog database at filePath.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "catalog.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the models table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS models (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			model_type TEXT NOT NULL DEFAULT '',
			parameters TEXT NOT NULL DEFAULT '',
			capabilities TEXT NOT NULL DEFAULT '[]',
			github_url TEXT NOT NULL DEFAULT '',
			modelhub_url TEXT NOT NULL DEFAULT '',
			repository_stats TEXT,
			community_stats TEXT,
			derived_profile TEXT,
			enriched_at INTEGER,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_models_enriched_at ON models(enriched_at);
	`

	_, err := s.db.Exec(query)
	return err
}

const modelColumns = `id, name, description, model_type, parameters, capabilities,
	github_url, modelhub_url, repository_stats, community_stats, derived_profile,
	enriched_at, created_at`

// GetModel retrieves a model by ID
func (s *Store) GetModel(ctx context.Context, id string) (*domain.Model, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "model ID cannot be empty"}
	}

	query := fmt.Sprintf("SELECT %s FROM models WHERE id = ?", modelColumns)
	row := s.db.QueryRowContext(ctx, query, id)

	model, err := scanModel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &coreerrors.NotFoundError{Resource: "model", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get model: %w", err)
	}
	return model, nil
}

// CreateModel inserts a new model record
func (s *Store) CreateModel(ctx context.Context, model *domain.Model) error {
	if err := model.Validate(); err != nil {
		return &coreerrors.ValidationError{Field: "model", Message: err.Error()}
	}

	capabilities, err := json.Marshal(model.Capabilities)
	if err != nil {
		return fmt.Errorf("failed to encode capabilities: %w", err)
	}

	createdAt := model.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO models (id, name, description, model_type, parameters,
			capabilities, github_url, modelhub_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		model.ID, model.Name, model.Description, model.ModelType,
		model.Parameters, string(capabilities), model.GitHubURL,
		model.ModelHubURL, createdAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}
	return nil
}

// ListModels returns a page of models ordered by creation time
func (s *Store) ListModels(ctx context.Context, offset, limit int) ([]*domain.Model, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf("SELECT %s FROM models ORDER BY created_at DESC, id LIMIT ? OFFSET ?", modelColumns)
	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer rows.Close()

	var models []*domain.Model
	for rows.Next() {
		model, err := scanModel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		models = append(models, model)
	}
	return models, rows.Err()
}

// ListStaleModels returns IDs of models whose enrichment is missing or older
// than maxAge, never-enriched first then oldest first, capped at limit.
func (s *Store) ListStaleModels(ctx context.Context, maxAge time.Duration, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	cutoff := time.Now().Add(-maxAge).Unix()
	query := `
		SELECT id FROM models
		WHERE enriched_at IS NULL OR enriched_at < ?
		ORDER BY (enriched_at IS NOT NULL), enriched_at ASC, id
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale models: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan model ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SaveRepositoryStats persists repository enrichment for a model
func (s *Store) SaveRepositoryStats(ctx context.Context, id string, stats *domain.RepositoryStats) error {
	return s.saveEnrichment(ctx, id, "repository_stats", stats)
}

// SaveCommunityStats persists community enrichment for a model
func (s *Store) SaveCommunityStats(ctx context.Context, id string, stats *domain.CommunityStats) error {
	return s.saveEnrichment(ctx, id, "community_stats", stats)
}

// SaveDerivedProfile persists heuristic enrichment for a model
func (s *Store) SaveDerivedProfile(ctx context.Context, id string, profile *domain.DerivedProfile) error {
	return s.saveEnrichment(ctx, id, "derived_profile", profile)
}

// saveEnrichment writes one enrichment column and bumps enriched_at. Each
// column is independent; a failed write never touches the others.
func (s *Store) saveEnrichment(ctx context.Context, id, column string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", column, err)
	}

	// column is one of three fixed names, never user input.
	query := fmt.Sprintf("UPDATE models SET %s = ?, enriched_at = ? WHERE id = ?", column)
	result, err := s.db.ExecContext(ctx, query, string(data), time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", column, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", column, err)
	}
	if affected == 0 {
		return &coreerrors.NotFoundError{Resource: "model", ID: id}
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// scanner abstracts sql.Row and sql.Rows for scanModel.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanModel reads one model row including its JSON enrichment columns.
func scanModel(row scanner) (*domain.Model, error) {
	var (
		model        domain.Model
		capabilities string
		repoStats    sql.NullString
		commStats    sql.NullString
		profile      sql.NullString
		enrichedAt   sql.NullInt64
		createdAt    int64
	)

	err := row.Scan(
		&model.ID, &model.Name, &model.Description, &model.ModelType,
		&model.Parameters, &capabilities, &model.GitHubURL, &model.ModelHubURL,
		&repoStats, &commStats, &profile, &enrichedAt, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(capabilities), &model.Capabilities); err != nil {
		return nil, fmt.Errorf("failed to decode capabilities: %w", err)
	}

	if repoStats.Valid {
		var stats domain.RepositoryStats
		if err := json.Unmarshal([]byte(repoStats.String), &stats); err != nil {
			return nil, fmt.Errorf("failed to decode repository stats: %w", err)
		}
		model.RepositoryStats = &stats
	}
	if commStats.Valid {
		var stats domain.CommunityStats
		if err := json.Unmarshal([]byte(commStats.String), &stats); err != nil {
			return nil, fmt.Errorf("failed to decode community stats: %w", err)
		}
		model.CommunityStats = &stats
	}
	if profile.Valid {
		var derived domain.DerivedProfile
		if err := json.Unmarshal([]byte(profile.String), &derived); err != nil {
			return nil, fmt.Errorf("failed to decode derived profile: %w", err)
		}
		model.DerivedProfile = &derived
	}
	if enrichedAt.Valid {
		t := time.Unix(enrichedAt.Int64, 0)
		model.EnrichedAt = &t
	}
	model.CreatedAt = time.Unix(createdAt, 0)

	return &model, nil
}
