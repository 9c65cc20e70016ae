package cache

import (
	"context"
	"directions-route-service/internal/domain"
	"directions-route-service/internal/ports"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/mmcloughlin/geohash"
	"go.uber.org/zap"
)

const (
	// DefaultTTL is how long a cached polyline stays valid.
	DefaultTTL = 24 * time.Hour

	// geohashPrecision 12 is a cell of a few centimetres, so distinct input
	// coordinates practically never share a key.
	geohashPrecision = 12

	cacheQueryTimeout = 5 * time.Second
)

// PolylineStore persists encoded polylines by chunk key.
type PolylineStore interface {
	// Get returns ok=false when there is no valid entry.
	Get(ctx context.Context, key string) (points string, ok bool, err error)
	Put(ctx context.Context, key string, points string) error
}

// ChunkKey identifies a chunk by the geohash cells of all its points, in order.
func ChunkKey(chunk domain.Chunk) string {
	var b strings.Builder
	for i, p := range chunk.Points() {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(geohash.EncodeWithPrecision(p.Latitude(), p.Longitude(), geohashPrecision))
	}
	return "chunk:" + strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}

// CachedDirectionsFetcher wraps another fetcher with a cache-aside layer.
// Cache read failures fall through to the inner fetcher; write failures are logged.
type CachedDirectionsFetcher struct {
	inner ports.DirectionsFetcher
	store PolylineStore
	log   *zap.Logger
}

func NewCachedDirectionsFetcher(inner ports.DirectionsFetcher, store PolylineStore, log *zap.Logger) *CachedDirectionsFetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedDirectionsFetcher{inner: inner, store: store, log: log}
}

func (c *CachedDirectionsFetcher) FetchPolyline(ctx context.Context, chunk domain.Chunk) (string, error) {
	key := ChunkKey(chunk)

	points, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("polyline cache read failed", zap.String("key", key), zap.Error(err))
	}
	if ok {
		return points, nil
	}

	points, err = c.inner.FetchPolyline(ctx, chunk)
	if err != nil {
		return "", err
	}

	if err := c.store.Put(ctx, key, points); err != nil {
		c.log.Warn("polyline cache write failed", zap.String("key", key), zap.Error(err))
	}

	return points, nil
}
