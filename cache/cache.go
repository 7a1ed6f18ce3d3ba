package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"sync"
	"time"
)

// ResponseCache keeps computed answer lists keyed by a document/question-set
// fingerprint. Entries expire after a TTL and the globally-oldest entry is
// evicted when the cache grows past its configured maximum. State lives only
// for the process lifetime.
type ResponseCache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

type entry struct {
	answers   []string
	createdAt time.Time
}

func New(ttl time.Duration, maxEntries int) *ResponseCache {
	return &ResponseCache{
		entries:    make(map[string]*entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Fingerprint derives the cache key from the document URL and the question
// texts. Questions are sorted first, so the same set in any order produces
// the same key, while any wording change in one question changes it.
func Fingerprint(documentURL string, questions []string) string {
	sorted := make([]string, len(questions))
	copy(sorted, questions)
	sort.Strings(sorted)

	h := sha256.New()
	h.Write([]byte(documentURL))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(sorted, "\n")))
	return hex.EncodeToString(h.Sum(nil))
}

// Lookup returns the cached answers for the fingerprint. An entry older than
// the TTL is reported as absent; removing it is deferred to the next Store.
func (c *ResponseCache) Lookup(fingerprint string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[fingerprint]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.createdAt) > c.ttl {
		return nil, false
	}
	answers := make([]string, len(e.answers))
	copy(answers, e.answers)
	return answers, true
}

// Store inserts or overwrites the entry for the fingerprint with the current
// timestamp, dropping expired entries and then the oldest entry if the cache
// is still over capacity.
func (c *ResponseCache) Store(fingerprint string, answers []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]string, len(answers))
	copy(stored, answers)
	c.entries[fingerprint] = &entry{answers: stored, createdAt: c.now()}

	for key, e := range c.entries {
		if c.now().Sub(e.createdAt) > c.ttl {
			delete(c.entries, key)
		}
	}

	for c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		c.evictOldest()
	}
}

// Size returns the current entry count, expired entries included.
func (c *ResponseCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest removes the entry with the smallest createdAt, breaking ties by
// the smaller key so eviction stays deterministic. Caller holds the lock.
func (c *ResponseCache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true
	for key, e := range c.entries {
		if first || e.createdAt.Before(oldest) || (e.createdAt.Equal(oldest) && key < oldestKey) {
			oldestKey = key
			oldest = e.createdAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
