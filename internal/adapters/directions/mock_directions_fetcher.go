package directions

import (
	"context"
	"directions-route-service/internal/domain"
	"fmt"
	"sync"
)

// MockLeg maps a chunk, identified by its origin and destination, to a
// polyline or an error.
type MockLeg struct {
	From, To domain.Coordinate
	Polyline string
	Err      error
}

// MockDirectionsFetcher is an in-memory ports.DirectionsFetcher. Legs without
// an explicit entry get Fallback when it is set. Every call is recorded.
type MockDirectionsFetcher struct {
	mu       sync.Mutex
	m        map[string]MockLeg
	Fallback string
	calls    []domain.Chunk
}

func NewMockDirectionsFetcher(legs []MockLeg) *MockDirectionsFetcher {
	m := make(map[string]MockLeg, len(legs))
	for _, l := range legs {
		m[legKey(l.From, l.To)] = l
	}
	return &MockDirectionsFetcher{m: m}
}

func (f *MockDirectionsFetcher) FetchPolyline(ctx context.Context, chunk domain.Chunk) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, chunk)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("mock directions: %w: %w", domain.ErrTransport, err)
	}

	l, ok := f.m[legKey(chunk.Origin, chunk.Destination)]
	if !ok {
		if f.Fallback != "" {
			return f.Fallback, nil
		}
		return "", fmt.Errorf("mock directions: %w: %w: missing leg %s -> %s",
			domain.ErrUnexpectedStatus, domain.ErrZeroResults, chunk.Origin, chunk.Destination)
	}
	if l.Err != nil {
		return "", l.Err
	}

	return l.Polyline, nil
}

// Calls returns the chunks requested so far.
func (f *MockDirectionsFetcher) Calls() []domain.Chunk {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Chunk(nil), f.calls...)
}

func legKey(from, to domain.Coordinate) string {
	return from.String() + "|" + to.String()
}
