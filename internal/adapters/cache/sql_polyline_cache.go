package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLPolylineCache is a Postgres-backed PolylineStore (pgx stdlib driver).
type SQLPolylineCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLPolylineCache(db *sql.DB, ttl time.Duration) *SQLPolylineCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SQLPolylineCache{DB: db, TTL: ttl}
}

func (s *SQLPolylineCache) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("polyline cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return "", false, errors.New("get polyline cache: key must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, cacheQueryTimeout)
	defer cancel()

	q := `
	SELECT points
    FROM polyline_cache
    WHERE chunk_key = $1
        AND expires_at > NOW();
	`

	var points string
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&points)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get polyline cache: query polyline_cache table: %w", err)
	}

	return points, true, nil
}

func (s *SQLPolylineCache) Put(ctx context.Context, key string, points string) error {
	if s.DB == nil {
		return errors.New("polyline cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert polyline cache: key must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, cacheQueryTimeout)
	defer cancel()

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO polyline_cache (chunk_key, points, expires_at)
    VALUES ($1, $2, $3)
	ON CONFLICT (chunk_key) DO UPDATE
	SET points = EXCLUDED.points,
		expires_at = EXCLUDED.expires_at;
	`, key, points, time.Now().Add(s.TTL))
	if err != nil {
		return fmt.Errorf("insert polyline cache key=%q: %w", key, err)
	}

	return nil
}
