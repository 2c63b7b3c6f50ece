package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const planKeyPrefix = "plan:"

type redisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) PlanCache {
	return &redisPlanCache{client: client, ttl: ttl}
}

func (c *redisPlanCache) Put(ctx context.Context, plan *CachedPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan %s: %w", plan.PlanID, err)
	}
	if err := c.client.Set(ctx, planKeyPrefix+plan.PlanID, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache plan %s: %w", plan.PlanID, err)
	}
	return nil
}

func (c *redisPlanCache) Get(ctx context.Context, planID string) (*CachedPlan, error) {
	payload, err := c.client.Get(ctx, planKeyPrefix+planID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read plan %s: %w", planID, err)
	}

	var plan CachedPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan %s: %w", planID, err)
	}
	return &plan, nil
}
