package score

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FamilyKey identifies a decomposable-score family (x, parents),
// parents held pre-sorted ascending so equal parent sets compare
// equal regardless of insertion order.
type FamilyKey struct {
	X       int
	Parents string // sorted, comma-joined parent indices
}

// NewFamilyKey builds a FamilyKey for x given parents in any order.
func NewFamilyKey(x int, parents []int) FamilyKey {
	sorted := append([]int(nil), parents...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = strconv.Itoa(p)
	}
	return FamilyKey{X: x, Parents: strings.Join(parts, ",")}
}

// Cache is the two-phase memoization layer of spec.md §4.3: Query
// looks up or computes a value WITHOUT inserting it, returning an
// owned key for the caller to batch-insert later via Extend or
// ParExtend. This avoids lock contention on a shared mutable map
// during parallel fan-out (spec.md §9 "Shared-cache concurrency").
type Cache[K comparable] struct {
	mu      sync.RWMutex
	values  map[K]float64
	compute func(K) (float64, error)
}

// NewCache builds an empty Cache backed by compute for cache misses.
func NewCache[K comparable](compute func(K) (float64, error)) *Cache[K] {
	return &Cache[K]{values: make(map[K]float64), compute: compute}
}

// Query returns (nil, value, nil) if key is already cached, or
// computes the value via compute and returns (&key, value, nil)
// without inserting it.
func (c *Cache[K]) Query(key K) (*K, float64, error) {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return nil, v, nil
	}
	v, err := c.compute(key)
	if err != nil {
		return nil, 0, err
	}
	return &key, v, nil
}

// Pair is a (key, value) fragment produced by Query, ready for bulk insertion.
type Pair[K comparable] struct {
	Key   K
	Value float64
}

// Extend bulk-inserts pairs under a single write lock.
func (c *Cache[K]) Extend(pairs []Pair[K]) {
	if len(pairs) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range pairs {
		c.values[p.Key] = p.Value
	}
}

// Len returns the number of cached entries.
func (c *Cache[K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// ParExtend resolves every key in keys concurrently via errgroup (one
// goroutine per GOMAXPROCS-bounded worker slot is left to the Go
// runtime's scheduler; the fan-out itself is unbounded per spec.md §5
// "data-parallelism over independent candidate items"), collects the
// newly computed (key, value) fragments, merges them into the cache
// in one bulk Extend, and returns every requested key's value.
func (c *Cache[K]) ParExtend(ctx context.Context, keys []K) (map[K]float64, error) {
	results := make([]float64, len(keys))
	var mu sync.Mutex
	var fresh []Pair[K]

	g, _ := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			ownedKey, value, err := c.Query(key)
			if err != nil {
				return err
			}
			results[i] = value
			if ownedKey != nil {
				mu.Lock()
				fresh = append(fresh, Pair[K]{Key: *ownedKey, Value: value})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	c.Extend(fresh)

	out := make(map[K]float64, len(keys))
	for i, key := range keys {
		out[key] = results[i]
	}
	return out, nil
}

// DecomposableCache specializes Cache to FamilyKey, backed by a
// DecomposableScoringCriterion.
type DecomposableCache struct {
	*Cache[FamilyKey]
	crit DecomposableScoringCriterion
}

// NewDecomposableCache builds a DecomposableCache over crit.
func NewDecomposableCache(crit DecomposableScoringCriterion) *DecomposableCache {
	dc := &DecomposableCache{crit: crit}
	dc.Cache = NewCache(func(k FamilyKey) (float64, error) {
		return crit.Call(k.X, parseParents(k.Parents))
	})
	return dc
}

func parseParents(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, _ := strconv.Atoi(p)
		out[i] = n
	}
	return out
}

// GraphCache specializes Cache to a serialized graph hash, backed by
// a NonDecomposableScoringCriterion (spec.md §4.3 "hashed by label
// set + adjacency matrix"); HashGraph lives in graphhash.go.
type GraphCache struct {
	*Cache[string]
}

// NewGraphCache builds a GraphCache whose misses are scored by compute. Callers compute the
// hash key via HashGraph before calling Query/ParExtend, pairing it
// with a lookup function that re-derives the *graph.Graph to score —
// the cache itself never needs the graph, only its hash and a way to
// recompute the score for a miss, both provided by compute.
func NewGraphCache(compute func(key string) (float64, error)) *GraphCache {
	return &GraphCache{Cache: NewCache(compute)}
}
