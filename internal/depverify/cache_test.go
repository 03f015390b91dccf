package depverify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskCache_RoundTrip(t *testing.T) {
	c, err := newDiskCache(t.TempDir(), 24, true)
	require.NoError(t, err)

	_, ok := c.get(registryPyPI, "requests")
	assert.False(t, ok, "expected miss before any put")

	require.NoError(t, c.put(registryPyPI, "requests", outcomeExists))

	o, ok := c.get(registryPyPI, "requests")
	require.True(t, ok)
	assert.Equal(t, outcomeExists, o)
}

func TestDiskCache_ExpiredEntryMisses(t *testing.T) {
	c, err := newDiskCache(t.TempDir(), 0, true)
	require.NoError(t, err)

	c.ttl = -1 * time.Second
	require.NoError(t, c.put(registryNPM, "left-pad", outcomeNotFound))

	_, ok := c.get(registryNPM, "left-pad")
	assert.False(t, ok, "expected expired entry to miss")
}

func TestDiskCache_Disabled(t *testing.T) {
	c, err := newDiskCache(t.TempDir(), 24, false)
	require.NoError(t, err)

	assert.NoError(t, c.put(registryCrates, "serde", outcomeExists), "put on disabled cache should no-op")

	_, ok := c.get(registryCrates, "serde")
	assert.False(t, ok, "disabled cache must never hit")
}
