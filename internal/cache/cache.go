// Package cache stores external API responses keyed by their semantic inputs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Cache is a string key/value store for previously computed responses.
// Implementations are safe for concurrent use; concurrent writers of the same key
// leave one of the written values.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Len() int
}

// Key builds a cache key from a namespace and the inputs that determine the cached value.
// Parts are length-prefixed before hashing so that ("ab", "c") and ("a", "bc") differ.
func Key(namespace string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		var size [8]byte
		n := len(p)
		for i := range size {
			size[i] = byte(n >> (8 * i))
		}
		h.Write(size[:])
		h.Write([]byte(p))
	}
	return strings.ToLower(namespace) + ":" + hex.EncodeToString(h.Sum(nil))
}

// Noop is a Cache that never stores anything
type Noop struct{}

func (Noop) Get(context.Context, string) (string, bool) { return "", false }
func (Noop) Set(context.Context, string, string)        {}
func (Noop) Len() int                                    { return 0 }
