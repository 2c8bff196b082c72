package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"stays/internal/model"
	"stays/internal/query"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

const listingColumns = `
	id, title, description, location, city, country, price_per_night,
	max_guests, bedrooms, bathrooms, property_type, category, amenities,
	images, latitude, longitude, rating, review_count, host_id`

// Schema creates the listings table. position preserves catalog order.
var Schema = []string{
	`CREATE EXTENSION IF NOT EXISTS vector`,
	fmt.Sprintf(`CREATE TABLE IF NOT EXISTS listings (
		id              TEXT PRIMARY KEY,
		position        INTEGER NOT NULL UNIQUE,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		location        TEXT NOT NULL,
		city            TEXT NOT NULL,
		country         TEXT NOT NULL,
		price_per_night DOUBLE PRECISION NOT NULL,
		max_guests      INTEGER NOT NULL,
		bedrooms        INTEGER NOT NULL,
		bathrooms       INTEGER NOT NULL,
		property_type   TEXT NOT NULL,
		category        TEXT NOT NULL,
		amenities       JSONB NOT NULL DEFAULT '[]',
		images          JSONB NOT NULL DEFAULT '[]',
		latitude        DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude       DOUBLE PRECISION NOT NULL DEFAULT 0,
		rating          DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count    INTEGER NOT NULL DEFAULT 0,
		host_id         TEXT NOT NULL DEFAULT '',
		embedding       vector(%d)
	)`, query.EmbeddingDimensions),
	`CREATE INDEX IF NOT EXISTS listings_category_idx ON listings (category)`,
}

// PostgresRepository handles database operations
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
	db.SetConnMaxLifetime(5 * time.Minute) // Shorter lifetime to avoid stale connections
	db.SetConnMaxIdleTime(2 * time.Minute) // Close idle connections sooner

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Ping checks the connection
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// EnsureSchema creates the listings table if missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range Schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// Seed replaces the table contents with listings, keeping their order
func (r *PostgresRepository) Seed(ctx context.Context, listings []model.Listing) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM listings`); err != nil {
		return 0, fmt.Errorf("failed to clear listings: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO listings (
			id, position, title, description, location, city, country,
			price_per_night, max_guests, bedrooms, bathrooms, property_type,
			category, amenities, images, latitude, longitude, rating,
			review_count, host_id, embedding
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, l := range listings {
		vec := pgvector.NewVector(query.FeatureVector(l))
		_, err := stmt.ExecContext(ctx,
			l.ID, i, l.Title, l.Description, l.Location, l.City, l.Country,
			l.PricePerNight, l.MaxGuests, l.Bedrooms, l.Bathrooms, l.PropertyType,
			l.Category, l.Amenities, l.Images, l.Latitude, l.Longitude, l.Rating,
			l.ReviewCount, l.HostID, vec,
		)
		if err != nil {
			return 0, fmt.Errorf("listing %s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(listings), nil
}

// FetchAll returns every listing in catalog order
func (r *PostgresRepository) FetchAll(ctx context.Context) ([]model.Listing, error) {
	listings := []model.Listing{}
	q := fmt.Sprintf(`SELECT %s FROM listings ORDER BY position`, listingColumns)
	if err := r.db.SelectContext(ctx, &listings, q); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

// FetchByID retrieves a single listing by its ID
func (r *PostgresRepository) FetchByID(ctx context.Context, id string) (*model.Listing, error) {
	var listing model.Listing
	q := fmt.Sprintf(`SELECT %s FROM listings WHERE id = $1`, listingColumns)
	err := r.db.GetContext(ctx, &listing, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// Search performs a filtered search. Amenity matching needs alias
// expansion, so it runs on the rows SQL already narrowed.
func (r *PostgresRepository) Search(ctx context.Context, spec *model.FilterSpec) ([]model.Listing, error) {
	whereClause, args := buildWhere(spec)

	q := fmt.Sprintf(`SELECT %s FROM listings WHERE %s ORDER BY position`, listingColumns, whereClause)

	listings := []model.Listing{}
	if err := r.db.SelectContext(ctx, &listings, q, args...); err != nil {
		return nil, fmt.Errorf("failed to search listings: %w", err)
	}

	if spec != nil && len(spec.Amenities) > 0 {
		listings = query.Filter(listings, &model.FilterSpec{Amenities: spec.Amenities})
	}
	return listings, nil
}

// Categories returns distinct categories in first-occurrence order
func (r *PostgresRepository) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

// Cities returns distinct cities in first-occurrence order
func (r *PostgresRepository) Cities(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "city")
}

func (r *PostgresRepository) distinct(ctx context.Context, column string) ([]string, error) {
	out := []string{}
	q := fmt.Sprintf(`SELECT %[1]s FROM listings GROUP BY %[1]s ORDER BY MIN(position)`, column)
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("failed to list %s values: %w", column, err)
	}
	return out, nil
}

// Similar ranks listings by L2 distance between their embeddings
func (r *PostgresRepository) Similar(ctx context.Context, id string, limit int) ([]model.Listing, error) {
	var target pgvector.Vector
	err := r.db.GetContext(ctx, &target, `SELECT embedding FROM listings WHERE id = $1 AND embedding IS NOT NULL`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []model.Listing{}, nil
		}
		return nil, fmt.Errorf("failed to get embedding: %w", err)
	}

	q := fmt.Sprintf(`
		SELECT %s FROM listings
		WHERE id <> $1 AND embedding IS NOT NULL
		ORDER BY embedding <-> $2, position`, listingColumns)
	args := []interface{}{id, target}
	if limit > 0 {
		q += ` LIMIT $3`
		args = append(args, limit)
	}

	listings := []model.Listing{}
	if err := r.db.SelectContext(ctx, &listings, q, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch similar listings: %w", err)
	}
	return listings, nil
}

// buildWhere translates spec into a SQL condition with positional args
func buildWhere(spec *model.FilterSpec) (string, []interface{}) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if spec == nil {
		return strings.Join(whereClauses, " AND "), args
	}

	if spec.Location != nil && *spec.Location != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(city ILIKE $%[1]d OR country ILIKE $%[1]d OR location ILIKE $%[1]d)", argIndex))
		args = append(args, "%"+escapeLike(*spec.Location)+"%")
		argIndex++
	}
	if spec.Guests != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("max_guests >= $%d", argIndex))
		args = append(args, *spec.Guests)
		argIndex++
	}
	if spec.MinPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price_per_night >= $%d", argIndex))
		args = append(args, *spec.MinPrice)
		argIndex++
	}
	if spec.MaxPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price_per_night <= $%d", argIndex))
		args = append(args, *spec.MaxPrice)
		argIndex++
	}
	if spec.PropertyType != nil && *spec.PropertyType != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("LOWER(property_type) = LOWER($%d)", argIndex))
		args = append(args, *spec.PropertyType)
		argIndex++
	}
	if spec.Category != nil && *spec.Category != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, *spec.Category)
	}

	return strings.Join(whereClauses, " AND "), args
}

// escapeLike makes s match literally inside an ILIKE pattern
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
