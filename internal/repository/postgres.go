package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"immosearch/internal/model"
	"immosearch/internal/query"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository handles database operations over the consolidated
// listings table
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

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

const propertyColumns = `
	id, source, url, title, price, city, adresse, property_type,
	bedrooms, bathrooms, surface_area, statut, description,
	latitude, longitude, scraped_at`

// SearchProperties runs the translated predicates plus an optional
// keyword search over the listings. Returns one page of matches and the
// total match count.
func (r *PostgresRepository) SearchProperties(
	ctx context.Context,
	preds []query.Predicate,
	keywords []string,
	limit, offset int,
) ([]model.Property, int, error) {
	whereClauses := []string{"price IS NOT NULL"}
	args := []interface{}{}
	argIndex := 1

	predClauses, predArgs, argIndex := query.BuildWhere(preds, argIndex)
	whereClauses = append(whereClauses, predClauses...)
	args = append(args, predArgs...)

	// Free-text keywords match title, description or city
	for _, kw := range keywords {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR city ILIKE $%d)",
			argIndex, argIndex, argIndex))
		args = append(args, "%"+kw+"%")
		argIndex++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM proprietes_consolidees WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count results: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM proprietes_consolidees
		WHERE %s
		ORDER BY scraped_at DESC NULLS LAST
		LIMIT $%d OFFSET $%d
	`, propertyColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, selectQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch properties: %w", err)
	}

	return properties, total, nil
}

// GetPropertyByID retrieves a single listing by its ID
func (r *PostgresRepository) GetPropertyByID(ctx context.Context, id string) (*model.Property, error) {
	var property model.Property
	q := fmt.Sprintf("SELECT %s FROM proprietes_consolidees WHERE id = $1", propertyColumns)
	err := r.db.GetContext(ctx, &property, q, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// GlobalStats aggregates listing counts and the average price
func (r *PostgresRepository) GlobalStats(ctx context.Context) (*model.GlobalStats, error) {
	stats := &model.GlobalStats{
		SourceCounts: map[string]int{},
		TypeCounts:   map[string]int{},
	}

	type countRow struct {
		Key   string `db:"key"`
		Count int    `db:"count"`
	}

	var bySource []countRow
	err := r.db.SelectContext(ctx, &bySource,
		`SELECT source AS key, COUNT(*) AS count FROM proprietes_consolidees GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("failed to count by source: %w", err)
	}
	for _, row := range bySource {
		stats.SourceCounts[row.Key] = row.Count
		stats.TotalProperties += row.Count
	}

	var byType []countRow
	err = r.db.SelectContext(ctx, &byType,
		`SELECT property_type AS key, COUNT(*) AS count
		 FROM proprietes_consolidees
		 WHERE property_type IS NOT NULL
		 GROUP BY property_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to count by type: %w", err)
	}
	for _, row := range byType {
		stats.TypeCounts[row.Key] = row.Count
	}

	var avg sql.NullFloat64
	err = r.db.GetContext(ctx, &avg,
		`SELECT AVG(price) FROM proprietes_consolidees WHERE price > 0`)
	if err != nil {
		return nil, fmt.Errorf("failed to average prices: %w", err)
	}
	if avg.Valid {
		stats.AveragePrice = avg.Float64
	}

	return stats, nil
}

// CityAggregates groups listings per city for the map view. City names
// are lowered and trimmed the way the ingestion pipeline stores them.
func (r *PostgresRepository) CityAggregates(ctx context.Context) ([]model.CityAggregate, error) {
	var aggregates []model.CityAggregate
	err := r.db.SelectContext(ctx, &aggregates, `
		SELECT
			LOWER(TRIM(SPLIT_PART(city, ',', 1))) AS city,
			COUNT(*) AS count,
			AVG(price) AS average_price,
			MIN(price) AS min_price,
			MAX(price) AS max_price
		FROM proprietes_consolidees
		WHERE city IS NOT NULL AND price > 0
		GROUP BY LOWER(TRIM(SPLIT_PART(city, ',', 1)))
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate cities: %w", err)
	}
	return aggregates, nil
}

// LogSearch records a search for analytics. Filter and keywords are
// stored as jsonb.
func (r *PostgresRepository) LogSearch(
	ctx context.Context,
	searchID, rawQuery string,
	filter *model.StructuredFilter,
	keywords []string,
	resultCount int,
	responseTimeMs int,
) error {
	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return fmt.Errorf("failed to encode filter: %w", err)
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	logQuery := `
		INSERT INTO search_logs (search_id, query, filter, keywords, result_count, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, logQuery, searchID, rawQuery, filterJSON, keywordsJSON, resultCount, responseTimeMs)
	if err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}

// LogFeedback records a user action on a search result
func (r *PostgresRepository) LogFeedback(ctx context.Context, searchID, propertyID, action string) error {
	q := `
		UPDATE search_logs
		SET clicked_property_id = $2, action = $3
		WHERE search_id = $1
	`
	_, err := r.db.ExecContext(ctx, q, searchID, propertyID, action)
	if err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}
