package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"propertychat/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PostgresRepository handles database operations for the catalog and the event log
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the tables this service needs when they are missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context, embeddingDim int) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS properties (
			id             TEXT PRIMARY KEY,
			title          TEXT NOT NULL,
			price          DOUBLE PRECISION NOT NULL,
			price_per_sqft DOUBLE PRECISION NOT NULL DEFAULT 0,
			location       JSONB NOT NULL,
			details        JSONB NOT NULL,
			images         JSONB NOT NULL DEFAULT '[]',
			features       JSONB NOT NULL DEFAULT '[]',
			description    TEXT NOT NULL DEFAULT '',
			match_score    DOUBLE PRECISION NOT NULL DEFAULT 0,
			ai_ranking     JSONB,
			listing        JSONB,
			embedding      vector(%d),
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, embeddingDim),
		`CREATE TABLE IF NOT EXISTS search_logs (
			id                    BIGSERIAL PRIMARY KEY,
			session_id            TEXT NOT NULL,
			query                 TEXT NOT NULL,
			criteria              JSONB,
			result_count          INT NOT NULL,
			returned_property_ids JSONB,
			response_time_ms      INT NOT NULL,
			created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS property_feedback (
			id          BIGSERIAL PRIMARY KEY,
			session_id  TEXT NOT NULL DEFAULT '',
			property_id TEXT NOT NULL,
			action      TEXT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// SeedIfEmpty loads properties when the catalog table has no rows
func (r *PostgresRepository) SeedIfEmpty(ctx context.Context, properties []model.Property) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM properties`); err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	for _, p := range properties {
		if err := r.SaveListing(ctx, p); err != nil {
			return 0, err
		}
	}
	return len(properties), nil
}

// propertyRow is the properties table shape
type propertyRow struct {
	ID           string                              `db:"id"`
	Title        string                              `db:"title"`
	Price        float64                             `db:"price"`
	PricePerSqft float64                             `db:"price_per_sqft"`
	Location     model.JSONB[model.PropertyLocation] `db:"location"`
	Details      model.JSONB[model.PropertyDetails]  `db:"details"`
	Images       model.JSONArray                     `db:"images"`
	Features     model.JSONArray                     `db:"features"`
	Description  string                              `db:"description"`
	MatchScore   float64                             `db:"match_score"`
	AIRanking    model.JSONB[*model.AIRanking]       `db:"ai_ranking"`
	Listing      model.JSONB[*model.ListingInfo]     `db:"listing"`
}

const propertyColumns = `id, title, price, price_per_sqft, location, details, images, features,
	description, match_score, ai_ranking, listing`

func (row propertyRow) toModel() model.Property {
	return model.Property{
		ID:           row.ID,
		Title:        row.Title,
		Price:        row.Price,
		PricePerSqft: row.PricePerSqft,
		Location:     row.Location.Data,
		Details:      row.Details.Data,
		Images:       []string(row.Images),
		Features:     []string(row.Features),
		Description:  row.Description,
		MatchScore:   row.MatchScore,
		AIRanking:    row.AIRanking.Data,
		Listing:      row.Listing.Data,
	}
}

func rowsToModels(rows []propertyRow) []model.Property {
	out := make([]model.Property, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out
}

// List returns the whole catalog, best match score first
func (r *PostgresRepository) List(ctx context.Context) ([]model.Property, error) {
	var rows []propertyRow
	query := fmt.Sprintf(`SELECT %s FROM properties ORDER BY match_score DESC, id`, propertyColumns)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return rowsToModels(rows), nil
}

// Get retrieves a single property by its ID
func (r *PostgresRepository) Get(ctx context.Context, id string) (*model.Property, error) {
	var row propertyRow
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	p := row.toModel()
	return &p, nil
}

// Similar orders by embedding distance to id. Without an embedding it falls back to
// properties of the same type closest in price.
func (r *PostgresRepository) Similar(ctx context.Context, id string, limit int) ([]model.Property, error) {
	var rows []propertyRow
	query := fmt.Sprintf(`
		SELECT %s FROM properties
		WHERE id <> $1 AND embedding IS NOT NULL
		  AND (SELECT embedding FROM properties WHERE id = $1) IS NOT NULL
		ORDER BY embedding <-> (SELECT embedding FROM properties WHERE id = $1)
		LIMIT $2
	`, propertyColumns)
	if err := r.db.SelectContext(ctx, &rows, query, id, limit); err != nil {
		return nil, fmt.Errorf("failed to run vector search: %w", err)
	}
	if len(rows) > 0 {
		return rowsToModels(rows), nil
	}

	query = fmt.Sprintf(`
		SELECT %s FROM properties p
		WHERE p.id <> $1
		  AND lower(p.details->>'type') = (SELECT lower(details->>'type') FROM properties WHERE id = $1)
		ORDER BY ABS(p.price - (SELECT price FROM properties WHERE id = $1)), p.id
		LIMIT $2
	`, propertyColumns)
	if err := r.db.SelectContext(ctx, &rows, query, id, limit); err != nil {
		return nil, fmt.Errorf("failed to find similar properties: %w", err)
	}
	return rowsToModels(rows), nil
}

// UpdateEmbeddings updates embeddings for multiple properties in one transaction
func (r *PostgresRepository) UpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string) {
	success := 0
	var errs []string

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		errs = append(errs, fmt.Sprintf("failed to start transaction: %v", err))
		return success, errs
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `UPDATE properties SET embedding = $1, updated_at = NOW() WHERE id = $2`)
	if err != nil {
		errs = append(errs, fmt.Sprintf("failed to prepare statement: %v", err))
		return success, errs
	}
	defer stmt.Close()

	for _, item := range items {
		vec := pgvector.NewVector(item.Embedding)
		res, err := stmt.ExecContext(ctx, vec, item.PropertyID)
		if err != nil {
			errs = append(errs, fmt.Sprintf("property_id %s: %v", item.PropertyID, err))
			continue
		}
		if n, _ := res.RowsAffected(); n == 0 {
			errs = append(errs, fmt.Sprintf("property_id %s: not found", item.PropertyID))
			continue
		}
		success++
	}

	if err := tx.Commit(); err != nil {
		errs = append(errs, fmt.Sprintf("failed to commit transaction: %v", err))
		return 0, errs
	}

	return success, errs
}

// SaveListing inserts or replaces a property
func (r *PostgresRepository) SaveListing(ctx context.Context, p model.Property) error {
	row := propertyRow{
		ID:           p.ID,
		Title:        p.Title,
		Price:        p.Price,
		PricePerSqft: p.PricePerSqft,
		Location:     model.JSONB[model.PropertyLocation]{Data: p.Location},
		Details:      model.JSONB[model.PropertyDetails]{Data: p.Details},
		Images:       model.JSONArray(nonNil(p.Images)),
		Features:     model.JSONArray(nonNil(p.Features)),
		Description:  p.Description,
		MatchScore:   p.MatchScore,
		AIRanking:    model.JSONB[*model.AIRanking]{Data: p.AIRanking},
		Listing:      model.JSONB[*model.ListingInfo]{Data: p.Listing},
	}

	query := `
		INSERT INTO properties (id, title, price, price_per_sqft, location, details, images, features,
			description, match_score, ai_ranking, listing)
		VALUES (:id, :title, :price, :price_per_sqft, :location, :details, :images, :features,
			:description, :match_score, :ai_ranking, :listing)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, price = EXCLUDED.price, price_per_sqft = EXCLUDED.price_per_sqft,
			location = EXCLUDED.location, details = EXCLUDED.details, images = EXCLUDED.images,
			features = EXCLUDED.features, description = EXCLUDED.description,
			match_score = EXCLUDED.match_score, ai_ranking = EXCLUDED.ai_ranking,
			listing = EXCLUDED.listing, updated_at = NOW()
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save property %s: %w", p.ID, err)
	}
	return nil
}

// LogSearch logs a chat-driven search
func (r *PostgresRepository) LogSearch(ctx context.Context, e SearchLogEntry) error {
	query := `
		INSERT INTO search_logs (session_id, query, criteria, result_count, returned_property_ids, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.SessionID, e.Query, model.JSONB[model.SearchCriteria]{Data: e.Criteria},
		e.ResultCount, model.JSONArray(nonNil(e.PropertyIDs)), e.ResponseTimeMs)
	if err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}

// LogFeedback logs user feedback/action
func (r *PostgresRepository) LogFeedback(ctx context.Context, sessionID, propertyID, action string) error {
	query := `INSERT INTO property_feedback (session_id, property_id, action) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, sessionID, propertyID, action); err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
