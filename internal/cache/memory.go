package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is used when a non-positive capacity is configured
const DefaultCapacity = 1000

type memoryCache struct {
	entries *lru.Cache[string, string]
}

// NewMemory creates an in-process cache that evicts the least recently used entry
// once capacity is reached
func NewMemory(capacity int) (*memoryCache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	entries, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}

	return &memoryCache{entries: entries}, nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool) {
	return c.entries.Get(key)
}

func (c *memoryCache) Set(_ context.Context, key, value string) {
	c.entries.Add(key, value)
}

func (c *memoryCache) Len() int {
	return c.entries.Len()
}
