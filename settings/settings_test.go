package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morse_translator/codec"
)

func TestDefault(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, codec.DefaultConfig(), s.Codec())
	assert.Equal(t, DefaultAddr, s.Server.Addr)

	fields := s.LogrusFieldsWithAction("start")
	assert.Equal(t, "start", fields["action"])
	assert.Equal(t, "/", fields["sentence_delimiter"])
}

func TestValidate(t *testing.T) {
	s := Default()
	s.Direction = "up"
	require.Error(t, s.Validate())

	s = Default()
	s.Server.CacheTTL = -time.Second
	require.Error(t, s.Validate())

	s = Default()
	s.Server.MaxBody = 0
	require.Error(t, s.Validate())

	s = Default()
	s.Server.CacheMaxEntries = -1
	require.Error(t, s.Validate())

	s = Default()
	s.Server.CacheMaxInput = -1
	require.Error(t, s.Validate())

	// ambiguous tokens are accepted
	s = Default()
	s.SentenceDelimiter = ".-"
	s.WordBoundary = ".-"
	s.Unknown = ""
	require.NoError(t, s.Validate())
}

func TestCache(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Minute, 16, 64)
	c.now = func() time.Time { return now }

	key := CacheKey{Config: codec.DefaultConfig(), Direction: codec.DirectionEncode, Input: "SOS"}
	_, ok := c.Probe(key)
	assert.False(t, ok)

	c.Save(key, "... --- ...", codec.DirectionEncode)
	entry, ok := c.Probe(key)
	require.True(t, ok)
	assert.Equal(t, "... --- ...", entry.Output)

	other := key
	other.Config.Unknown = "X"
	_, ok = c.Probe(other)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Probe(key)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheSweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Minute, 16, 64)
	c.now = func() time.Time { return now }

	c.Save(CacheKey{Input: "A"}, ".-", codec.DirectionEncode)
	now = now.Add(30 * time.Second)
	c.Save(CacheKey{Input: "B"}, "-...", codec.DirectionEncode)
	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 1, c.Len())
}

func TestCacheDisabled(t *testing.T) {
	c := NewCache(0, 16, 64)
	assert.False(t, c.Enabled())
	assert.False(t, c.Save(CacheKey{Input: "A"}, ".-", codec.DirectionEncode))
	_, ok := c.Probe(CacheKey{Input: "A"})
	assert.False(t, ok)

	c = NewCache(time.Minute, 0, 64)
	assert.False(t, c.Enabled())
	assert.False(t, c.Save(CacheKey{Input: "A"}, ".-", codec.DirectionEncode))

	var nilCache *Cache
	assert.False(t, nilCache.Enabled())
	assert.Equal(t, 0, nilCache.Len())
}

func TestCacheEvictsOldest(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache(time.Hour, 3, 64)
	c.now = func() time.Time { return now }

	for _, in := range []string{"A", "B", "C", "D", "E"} {
		require.True(t, c.Save(CacheKey{Input: in}, in, codec.DirectionEncode))
		now = now.Add(time.Second)
	}
	assert.Equal(t, 3, c.Len())

	for _, in := range []string{"A", "B"} {
		_, ok := c.Probe(CacheKey{Input: in})
		assert.False(t, ok, in)
	}
	for _, in := range []string{"C", "D", "E"} {
		_, ok := c.Probe(CacheKey{Input: in})
		assert.True(t, ok, in)
	}

	// overwriting a kept key does not evict another one
	require.True(t, c.Save(CacheKey{Input: "C"}, "C2", codec.DirectionEncode))
	assert.Equal(t, 3, c.Len())
	entry, ok := c.Probe(CacheKey{Input: "D"})
	require.True(t, ok)
	assert.Equal(t, "D", entry.Output)
}

func TestCacheSkipsLargeInput(t *testing.T) {
	c := NewCache(time.Hour, 16, 8)

	assert.False(t, c.Save(CacheKey{Input: "longer than eight"}, "x", codec.DirectionEncode))
	assert.True(t, c.Save(CacheKey{Input: "eight..."}, "x", codec.DirectionEncode))
	assert.Equal(t, 1, c.Len())
}
