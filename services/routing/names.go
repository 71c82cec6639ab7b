package routing

import (
	"context"
	"sync"
	"time"

	"vetly/upstream/pims"
	"vetly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// NameResolver resolves doctor display names by PIMS id. It is an explicitly
// scoped cache object, not a module singleton: an in-memory map for the hot
// path, an optional redis layer shared across instances, and a singleflight
// group guaranteeing at most one outstanding upstream lookup per id.
type NameResolver struct {
	Pims        pims.Repository
	CacheClient *redis.Client
	CacheTTL    time.Duration

	mu    sync.RWMutex
	names map[string]string
	group singleflight.Group
}

func NewNameResolver(repo pims.Repository, cacheClient *redis.Client, ttl time.Duration) *NameResolver {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &NameResolver{
		Pims:        repo,
		CacheClient: cacheClient,
		CacheTTL:    ttl,
		names:       make(map[string]string),
	}
}

// Resolve returns the display name for a doctor id. Concurrent callers for
// the same id share one in-flight lookup.
func (r *NameResolver) Resolve(ctx context.Context, doctorPimsID string) (string, error) {
	if doctorPimsID == "" {
		return "", nil
	}

	r.mu.RLock()
	name, ok := r.names[doctorPimsID]
	r.mu.RUnlock()
	if ok {
		return name, nil
	}

	v, err, _ := r.group.Do(doctorPimsID, func() (any, error) {
		return r.lookup(ctx, doctorPimsID)
	})
	if err != nil {
		return "", err
	}

	name = v.(string)
	r.mu.Lock()
	r.names[doctorPimsID] = name
	r.mu.Unlock()
	return name, nil
}

func (r *NameResolver) lookup(ctx context.Context, doctorPimsID string) (string, error) {
	logger := utils.GetLogger()
	cacheKey := "doctor-name:" + doctorPimsID

	if r.CacheClient != nil {
		if cached, err := r.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	name, err := r.Pims.DoctorName(ctx, doctorPimsID)
	if err != nil {
		return "", err
	}

	if r.CacheClient != nil && name != "" {
		if err := r.CacheClient.Set(ctx, cacheKey, name, r.CacheTTL).Err(); err != nil {
			logger.Warn("doctor name cache write failed", zap.String("doctorPimsID", doctorPimsID), zap.Error(err))
		}
	}
	return name, nil
}
