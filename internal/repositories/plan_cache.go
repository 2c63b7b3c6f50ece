package repositories

import (
	"context"
	"time"

	"globetrotter/internal/composer"
	mem "globetrotter/pkg/memcache"
)

// CachedPlan is a composed set of itinerary options kept so a user can come
// back to pick, export or book one tier.
type CachedPlan struct {
	PlanID    string                     `json:"plan_id"`
	Request   composer.PlanRequest       `json:"request"`
	Options   []composer.ItineraryOption `json:"options"`
	CreatedAt int64                      `json:"created_at"`
}

// PlanCache stores plans with a fixed time to live. Get returns nil, nil for
// missing or expired plans.
type PlanCache interface {
	Put(ctx context.Context, plan *CachedPlan) error
	Get(ctx context.Context, planID string) (*CachedPlan, error)
}

type memoryPlanCache struct {
	store *mem.TTLStore[CachedPlan]
	ttl   time.Duration
}

func NewMemoryPlanCache(store *mem.TTLStore[CachedPlan], ttl time.Duration) PlanCache {
	return &memoryPlanCache{store: store, ttl: ttl}
}

func (c *memoryPlanCache) Put(_ context.Context, plan *CachedPlan) error {
	c.store.Set(plan.PlanID, *plan, c.ttl)
	return nil
}

func (c *memoryPlanCache) Get(_ context.Context, planID string) (*CachedPlan, error) {
	plan, ok := c.store.Get(planID)
	if !ok {
		return nil, nil
	}
	return &plan, nil
}
