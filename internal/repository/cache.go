package repository

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"stays/internal/model"
	"stays/internal/obs"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

// cacheData is what both cache tiers store
type cacheData struct {
	Listings []model.Listing `json:"listings,omitempty"`
	Values   []string        `json:"values,omitempty"`
}

// CachedRepository decorates a Repository with a local ccache tier and an
// optional memcached tier. Only read results are cached, never errors.
type CachedRepository struct {
	next            Repository
	localCache      *ccache.Cache[*cacheData]
	memcachedClient *memcache.Client
	ttl             time.Duration
	metrics         *obs.Metrics
	logger          *slog.Logger
}

// CacheOptions configures NewCachedRepository
type CacheOptions struct {
	TTL           time.Duration
	LocalMaxSize  int64
	MemcachedHost string // empty disables the memcached tier
	Metrics       *obs.Metrics
	Logger        *slog.Logger
}

// NewCachedRepository wraps next with a two-tier cache
func NewCachedRepository(next Repository, opts CacheOptions) *CachedRepository {
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}
	if opts.LocalMaxSize <= 0 {
		opts.LocalMaxSize = 1000
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	r := &CachedRepository{
		next:       next,
		localCache: ccache.New(ccache.Configure[*cacheData]().MaxSize(opts.LocalMaxSize)),
		ttl:        opts.TTL,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
	}
	if opts.MemcachedHost != "" {
		r.memcachedClient = memcache.New(opts.MemcachedHost)
		r.logger.Info("cache repository initialized with memcached", "host", opts.MemcachedHost)
	}
	return r
}

// Stop releases the local cache worker
func (r *CachedRepository) Stop() {
	r.localCache.Stop()
}

// FetchAll returns the home feed, cached under a fixed key
func (r *CachedRepository) FetchAll(ctx context.Context) ([]model.Listing, error) {
	data, err := r.load(ctx, cacheKey("all", nil), func() (*cacheData, error) {
		listings, err := r.next.FetchAll(ctx)
		return &cacheData{Listings: listings}, err
	})
	if err != nil {
		return nil, err
	}
	return cloneListings(data.Listings), nil
}

// FetchByID is not cached; single-row lookups are cheap in both backends
func (r *CachedRepository) FetchByID(ctx context.Context, id string) (*model.Listing, error) {
	return r.next.FetchByID(ctx, id)
}

// Search returns the listings matching spec, cached per spec
func (r *CachedRepository) Search(ctx context.Context, spec *model.FilterSpec) ([]model.Listing, error) {
	data, err := r.load(ctx, cacheKey("search", spec), func() (*cacheData, error) {
		listings, err := r.next.Search(ctx, spec)
		return &cacheData{Listings: listings}, err
	})
	if err != nil {
		return nil, err
	}
	return cloneListings(data.Listings), nil
}

// Categories returns the distinct categories, cached
func (r *CachedRepository) Categories(ctx context.Context) ([]string, error) {
	data, err := r.load(ctx, cacheKey("categories", nil), func() (*cacheData, error) {
		values, err := r.next.Categories(ctx)
		return &cacheData{Values: values}, err
	})
	if err != nil {
		return nil, err
	}
	return append([]string{}, data.Values...), nil
}

// Cities returns the distinct cities, cached
func (r *CachedRepository) Cities(ctx context.Context) ([]string, error) {
	data, err := r.load(ctx, cacheKey("cities", nil), func() (*cacheData, error) {
		values, err := r.next.Cities(ctx)
		return &cacheData{Values: values}, err
	})
	if err != nil {
		return nil, err
	}
	return append([]string{}, data.Values...), nil
}

// Similar is not cached; it passes through to the wrapped repository
func (r *CachedRepository) Similar(ctx context.Context, id string, limit int) ([]model.Listing, error) {
	return r.next.Similar(ctx, id, limit)
}

// load checks the local cache, then memcached, then calls fetch
func (r *CachedRepository) load(ctx context.Context, key string, fetch func() (*cacheData, error)) (*cacheData, error) {
	// 1. Local cache
	if item := r.localCache.Get(key); item != nil && !item.Expired() {
		r.metrics.IncCacheHit("local")
		return item.Value(), nil
	}

	// 2. Memcached
	if data, ok := r.getRemote(key); ok {
		r.metrics.IncCacheHit("memcached")
		r.localCache.Set(key, data, r.ttl)
		return data, nil
	}

	// 3. Source
	r.metrics.IncCacheMiss()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fetch()
	if err != nil {
		return nil, err
	}
	r.localCache.Set(key, data, r.ttl)
	r.setRemote(key, data)
	return data, nil
}

func (r *CachedRepository) getRemote(key string) (*cacheData, bool) {
	if r.memcachedClient == nil {
		return nil, false
	}
	item, err := r.memcachedClient.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			r.logger.Warn("memcached get failed", "key", key, "error", err)
		}
		return nil, false
	}

	var data cacheData
	if err := json.Unmarshal(item.Value, &data); err != nil {
		r.logger.Warn("memcached value unreadable", "key", key, "error", err)
		return nil, false
	}
	return &data, true
}

func (r *CachedRepository) setRemote(key string, data *cacheData) {
	if r.memcachedClient == nil {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		r.logger.Warn("cache value not serializable", "key", key, "error", err)
		return
	}
	item := &memcache.Item{
		Key:        key,
		Value:      payload,
		Expiration: memcachedExpiration(r.ttl),
	}
	if err := r.memcachedClient.Set(item); err != nil {
		r.logger.Warn("memcached set failed", "key", key, "error", err)
	}
}

// maxMemcachedTTL is the longest relative expiration memcached accepts.
// Larger values are read as a Unix timestamp.
const maxMemcachedTTL = 30 * 24 * time.Hour

// memcachedExpiration converts ttl to whole seconds within [1, maxMemcachedTTL].
// Zero would mean "never expire", so sub-second TTLs round up to one second.
func memcachedExpiration(ttl time.Duration) int32 {
	if ttl > maxMemcachedTTL {
		ttl = maxMemcachedTTL
	}
	if secs := int32(ttl / time.Second); secs > 0 {
		return secs
	}
	return 1
}

// cacheKey derives a memcached-safe key from an operation and its arguments
func cacheKey(op string, args interface{}) string {
	payload, _ := json.Marshal(args)
	sum := md5.Sum(payload)
	return "stays:" + op + ":" + hex.EncodeToString(sum[:])
}

func cloneListings(listings []model.Listing) []model.Listing {
	out := make([]model.Listing, len(listings))
	for i, l := range listings {
		out[i] = l.Clone()
	}
	return out
}
