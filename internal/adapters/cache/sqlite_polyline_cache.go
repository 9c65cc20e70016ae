package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLite backed PolylineStore. Expiry is stored as unix seconds.
type SqlitePolylineCache struct {
	DB  *sql.DB
	TTL time.Duration
	now func() time.Time
}

func NewSqlitePolylineCache(db *sql.DB, ttl time.Duration) *SqlitePolylineCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SqlitePolylineCache{DB: db, TTL: ttl, now: time.Now}
}

func (s *SqlitePolylineCache) Get(ctx context.Context, key string) (string, bool, error) {
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
    WHERE chunk_key = ?
        AND expires_at > ?;
	`

	var points string
	err := s.DB.QueryRowContext(ctx, q, key, s.now().Unix()).Scan(&points)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get polyline cache: query polyline_cache table: %w", err)
	}

	return points, true, nil
}

func (s *SqlitePolylineCache) Put(ctx context.Context, key string, points string) error {
	if s.DB == nil {
		return errors.New("polyline cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert polyline cache: key must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, cacheQueryTimeout)
	defer cancel()

	_, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO polyline_cache (
        chunk_key,
        points,
        expires_at
    )
    VALUES (?, ?, ?)
	`, key, points, s.now().Add(s.TTL).Unix())
	if err != nil {
		return fmt.Errorf("insert polyline cache key=%q: %w", key, err)
	}

	return nil
}
