package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsCache(t *testing.T) {
	cache := MakeResultsCache()

	_, exists := cache.Lookup("a.cpp")
	assert.False(t, exists)

	stored := []string{"-Wall", "-I", "/p"}
	cache.Store("src/../a.cpp", stored)
	stored[0] = "-mutated"

	cached, exists := cache.Lookup("a.cpp")
	require.True(t, exists)
	assert.Equal(t, []string{"-Wall", "-I", "/p"}, cached)
	cached[0] = "-mutated"

	cached, _ = cache.Lookup("./a.cpp")
	assert.Equal(t, "-Wall", cached[0])
	assert.Equal(t, int64(1), cache.Count())

	cache.Clear()
	assert.Equal(t, int64(0), cache.Count())
	_, exists = cache.Lookup("a.cpp")
	assert.False(t, exists)
}
