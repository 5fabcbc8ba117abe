package server

import (
	"path/filepath"
	"sync"
)

// ResultsCache remembers flags per file name.
// Only results with DoCache are stored: that's the contract with a resolver.
// It's dropped as a whole when the resolver changes (config reloaded) or on request.
type ResultsCache struct {
	mu    sync.RWMutex
	table map[string][]string
}

func MakeResultsCache() *ResultsCache {
	return &ResultsCache{
		table: make(map[string][]string, 64),
	}
}

func cacheKey(fileName string) string {
	return filepath.Clean(fileName)
}

func (cache *ResultsCache) Lookup(fileName string) ([]string, bool) {
	cache.mu.RLock()
	cached, exists := cache.table[cacheKey(fileName)]
	cache.mu.RUnlock()

	if !exists {
		return nil, false
	}
	return append(make([]string, 0, len(cached)), cached...), true
}

func (cache *ResultsCache) Store(fileName string, flags []string) {
	stored := append(make([]string, 0, len(flags)), flags...)

	cache.mu.Lock()
	cache.table[cacheKey(fileName)] = stored
	cache.mu.Unlock()
}

func (cache *ResultsCache) Count() int64 {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return int64(len(cache.table))
}

func (cache *ResultsCache) Clear() {
	cache.mu.Lock()
	cache.table = make(map[string][]string, 64)
	cache.mu.Unlock()
}
