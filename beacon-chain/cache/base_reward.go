// Package cache includes the caches used by epoch processing.
package cache

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prysmaticlabs/prysm-rewards/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/prysm-rewards/config/params"
)

const (
	// maxBaseRewardCacheSize bounds the number of distinct base rewards kept. Effective
	// balances move in increments, so a registry yields few distinct keys per epoch.
	maxBaseRewardCacheSize = 1024
)

var (
	baseRewardCacheHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "base_reward_cache_hit",
		Help: "The total number of cache hits on the base reward cache.",
	})
	baseRewardCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "base_reward_cache_miss",
		Help: "The total number of cache misses on the base reward cache.",
	})
)

// ErrCacheCannotBeNil is returned when the underlying lru could not be created.
var ErrCacheCannotBeNil = errors.New("cache cannot be nil")

type baseRewardKey struct {
	effectiveBalance       uint64
	sqrtTotalActiveBalance uint64
	baseRewardFactor       uint64
	baseRewardsPerEpoch    uint64
}

// BaseRewardCache memoizes base rewards by effective balance and the square root of the
// total active balance. It is safe for concurrent use.
type BaseRewardCache struct {
	lru *lru.Cache
}

// NewBaseRewardCache creates a base reward cache holding up to size entries.
func NewBaseRewardCache(size int) (*BaseRewardCache, error) {
	if size <= 0 {
		size = maxBaseRewardCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, ErrCacheCannotBeNil
	}
	return &BaseRewardCache{lru: c}, nil
}

// BaseReward returns the cached base reward, computing and storing it on a miss.
// Errors are not cached.
func (c *BaseRewardCache) BaseReward(effectiveBalance, sqrtTotalActiveBalance uint64, cfg *params.BeaconChainConfig) (uint64, error) {
	key := baseRewardKey{
		effectiveBalance:       effectiveBalance,
		sqrtTotalActiveBalance: sqrtTotalActiveBalance,
		baseRewardFactor:       cfg.BaseRewardFactor,
		baseRewardsPerEpoch:    cfg.BaseRewardsPerEpoch,
	}
	if v, ok := c.lru.Get(key); ok {
		baseRewardCacheHit.Inc()
		return v.(uint64), nil
	}
	baseRewardCacheMiss.Inc()
	br, err := helpers.BaseReward(effectiveBalance, sqrtTotalActiveBalance, cfg)
	if err != nil {
		return 0, err
	}
	c.lru.Add(key, br)
	return br, nil
}

// Len is the number of cached base rewards.
func (c *BaseRewardCache) Len() int {
	return c.lru.Len()
}
