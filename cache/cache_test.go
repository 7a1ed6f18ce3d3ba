package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_OrderIndependent(t *testing.T) {
	url := "https://example.com/policy.pdf"
	a := Fingerprint(url, []string{"What is the grace period?", "What is the waiting period?"})
	b := Fingerprint(url, []string{"What is the waiting period?", "What is the grace period?"})
	assert.Equal(t, a, b)
}

func TestFingerprint_SensitiveToWording(t *testing.T) {
	url := "https://example.com/policy.pdf"
	a := Fingerprint(url, []string{"What is the grace period?"})
	b := Fingerprint(url, []string{"What is the grace period"})
	assert.NotEqual(t, a, b)
}

func TestFingerprint_SensitiveToURL(t *testing.T) {
	questions := []string{"What is the grace period?"}
	a := Fingerprint("https://example.com/a.pdf", questions)
	b := Fingerprint("https://example.com/b.pdf", questions)
	assert.NotEqual(t, a, b)
}

func TestCache_StoreAndLookup(t *testing.T) {
	c := New(time.Hour, 10)
	fp := Fingerprint("https://example.com/doc.pdf", []string{"q1", "q2"})

	_, ok := c.Lookup(fp)
	assert.False(t, ok)

	c.Store(fp, []string{"a1", "a2"})
	answers, ok := c.Lookup(fp)
	require.True(t, ok)
	assert.Equal(t, []string{"a1", "a2"}, answers)
	assert.Equal(t, 1, c.Size())
}

func TestCache_LookupReturnsCopy(t *testing.T) {
	c := New(time.Hour, 10)
	c.Store("fp", []string{"a1"})

	answers, ok := c.Lookup("fp")
	require.True(t, ok)
	answers[0] = "mutated"

	again, ok := c.Lookup("fp")
	require.True(t, ok)
	assert.Equal(t, "a1", again[0])
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New(time.Hour, 10)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Store("fp", []string{"a1"})

	now = now.Add(59 * time.Minute)
	_, ok := c.Lookup("fp")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Lookup("fp")
	assert.False(t, ok)
}

func TestCache_ExpiredEntriesRemovedOnStore(t *testing.T) {
	c := New(time.Hour, 10)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Store("old", []string{"a"})
	now = now.Add(2 * time.Hour)
	c.Store("new", []string{"b"})

	assert.Equal(t, 1, c.Size())
	_, ok := c.Lookup("new")
	assert.True(t, ok)
}

func TestCache_EvictsOldestOverCapacity(t *testing.T) {
	const maxEntries = 5
	c := New(time.Hour, maxEntries)
	now := time.Now()
	c.now = func() time.Time { return now }

	for i := 0; i < maxEntries+1; i++ {
		c.Store(fmt.Sprintf("fp-%d", i), []string{"answer"})
		now = now.Add(time.Second)
	}

	assert.Equal(t, maxEntries, c.Size())
	_, ok := c.Lookup("fp-0")
	assert.False(t, ok, "oldest entry should be evicted")
	for i := 1; i <= maxEntries; i++ {
		_, ok := c.Lookup(fmt.Sprintf("fp-%d", i))
		assert.True(t, ok)
	}
}

func TestCache_EvictionTieBreaksByKey(t *testing.T) {
	c := New(time.Hour, 2)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Store("b", []string{"1"})
	c.Store("a", []string{"2"})
	c.Store("c", []string{"3"})

	assert.Equal(t, 2, c.Size())
	_, ok := c.Lookup("a")
	assert.False(t, ok, "smallest key among oldest should be evicted")
	_, ok = c.Lookup("b")
	assert.True(t, ok)
	_, ok = c.Lookup("c")
	assert.True(t, ok)
}

func TestCache_StoreOverwrites(t *testing.T) {
	c := New(time.Hour, 10)
	c.Store("fp", []string{"old"})
	c.Store("fp", []string{"new"})

	answers, ok := c.Lookup("fp")
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, answers)
	assert.Equal(t, 1, c.Size())
}
