// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package charsets

import (
	"sync"
	"sync/atomic"

	"golang.org/x/text/encoding"
)

// CacheMetrics tracks resolution cache performance and usage.
type CacheMetrics struct {
	Size      int64 // Current number of cached encodings
	Hits      int64 // Number of cache hits
	Misses    int64 // Number of cache misses
	Evictions int64 // Number of evictions after reaching the size limit
}

// cacheMaxSize bounds the resolution cache. Encodings are tiny shared values,
// so the bound exists to cap pathological alias churn, not memory pressure.
const cacheMaxSize = 64

// encodingCache maps normalized charset names to resolved encodings.
var encodingCache = make(map[string]encoding.Encoding)
var encodingCacheMutex sync.RWMutex
var encodingCacheOrder []string // Maintains insertion order for eviction
var encodingCacheMetrics CacheMetrics

// cachedEncoding retrieves a previously resolved encoding.
func cachedEncoding(key string) (encoding.Encoding, bool) {
	encodingCacheMutex.RLock()
	enc, ok := encodingCache[key]
	encodingCacheMutex.RUnlock()

	if !ok {
		atomic.AddInt64(&encodingCacheMetrics.Misses, 1)
		return nil, false
	}
	atomic.AddInt64(&encodingCacheMetrics.Hits, 1)
	return enc, true
}

// storeEncoding records a resolved encoding, evicting the oldest entry once
// the cache is full.
func storeEncoding(key string, enc encoding.Encoding) {
	encodingCacheMutex.Lock()
	defer encodingCacheMutex.Unlock()

	if _, exists := encodingCache[key]; exists {
		return
	}

	for len(encodingCache) >= cacheMaxSize && len(encodingCacheOrder) > 0 {
		oldest := encodingCacheOrder[0]
		delete(encodingCache, oldest)
		encodingCacheOrder = encodingCacheOrder[1:]
		atomic.AddInt64(&encodingCacheMetrics.Evictions, 1)
	}

	encodingCache[key] = enc
	encodingCacheOrder = append(encodingCacheOrder, key)
}

// GetCacheMetrics returns current cache metrics.
func GetCacheMetrics() CacheMetrics {
	encodingCacheMutex.RLock()
	defer encodingCacheMutex.RUnlock()

	metrics := CacheMetrics{
		Size:      int64(len(encodingCache)),
		Hits:      atomic.LoadInt64(&encodingCacheMetrics.Hits),
		Misses:    atomic.LoadInt64(&encodingCacheMetrics.Misses),
		Evictions: atomic.LoadInt64(&encodingCacheMetrics.Evictions),
	}
	return metrics
}

// ClearCache clears all cached encodings and resets metrics (useful for
// testing).
func ClearCache() {
	encodingCacheMutex.Lock()
	defer encodingCacheMutex.Unlock()

	encodingCache = make(map[string]encoding.Encoding)
	encodingCacheOrder = nil

	atomic.StoreInt64(&encodingCacheMetrics.Hits, 0)
	atomic.StoreInt64(&encodingCacheMetrics.Misses, 0)
	atomic.StoreInt64(&encodingCacheMetrics.Evictions, 0)
}
