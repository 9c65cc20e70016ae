package repositories

import (
	"context"
	"database/sql"
	"directions-route-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
)

// SQL-backed implementation of the RouteRepository port. The dialect only
// changes the placeholder style.
type SQLRouteRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSqliteRouteRepository(db *sql.DB) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db, Dialect: Sqlite}
}

func NewPostgresRouteRepository(db *sql.DB) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db, Dialect: Postgres}
}

// Return all saved routes ordered by name.
func (s *SQLRouteRepository) ListRoutes(ctx context.Context) ([]ports.SavedRoute, error) {
	if s.DB == nil {
		return nil, errors.New("route repository: DB is nil")
	}

	query := `
	SELECT
		name,
		waypoints
	FROM saved_routes
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query saved_routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]ports.SavedRoute, 0, 16)
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		r, err := decodeSavedRoute(name, raw)
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

func (s *SQLRouteRepository) GetRoute(ctx context.Context, name string) (ports.SavedRoute, error) {
	if s.DB == nil {
		return ports.SavedRoute{}, errors.New("route repository: DB is nil")
	}

	query := `SELECT waypoints FROM saved_routes WHERE name = ?;`
	if s.Dialect == Postgres {
		query = `SELECT waypoints FROM saved_routes WHERE name = $1;`
	}

	var raw string
	err := s.DB.QueryRowContext(ctx, query, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.SavedRoute{}, fmt.Errorf("get route %q: %w", name, ports.ErrRouteNotFound)
	}
	if err != nil {
		return ports.SavedRoute{}, fmt.Errorf("get route %q: %w", name, err)
	}

	return decodeSavedRoute(name, raw)
}

func decodeSavedRoute(name, raw string) (ports.SavedRoute, error) {
	var waypoints []string
	if err := json.Unmarshal([]byte(raw), &waypoints); err != nil {
		return ports.SavedRoute{}, fmt.Errorf("decode waypoints of %q: %w", name, err)
	}
	return ports.SavedRoute{Name: name, Waypoints: waypoints}, nil
}
