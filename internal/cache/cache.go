// Package cache provides the engine's result memoization: a TTL+LRU
// in-process store by default, with an optional Redis-backed drop-in
// for multi-instance deployments.
package cache

import (
	"container/list"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
)

// Store is the memoization contract shared by the memory and Redis
// backends. Payloads are replaced wholesale, never mutated in place.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Invalidate(key string)
	InvalidatePattern(pattern *regexp.Regexp) int
}

// Key builds the canonical cache key for an operation and its
// parameters: "op:k=v|k=v" with parameter names sorted. Keys stay
// human readable so InvalidatePattern regexes are meaningful.
func Key(op string, params map[string]string) string {
	if len(params) == 0 {
		return op
	}
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(op)
	b.WriteByte(':')
	for i, k := range names {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

type entry struct {
	key       string
	value     any
	createdAt time.Time
	expiresAt time.Time
}

// Memory is the in-process Store: TTL expiry checked lazily on Get,
// LRU eviction once capacity is exceeded.
type Memory struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = most recently used
	now      func() time.Time
}

// NewMemory builds a memory cache holding at most capacity entries.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = 128
	}
	return &Memory{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		now:      time.Now,
	}
}

// Get returns the cached payload when present and unexpired. An
// expired entry is treated as absent and removed.
func (m *Memory) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.items[key]
	if !ok {
		return nil, false
	}
	e := el.Value.(*entry)
	if m.now().After(e.expiresAt) {
		m.removeLocked(el)
		return nil, false
	}
	m.order.MoveToFront(el)
	return e.value, true
}

// Set stores a payload, evicting the least-recently-accessed entry
// first when at capacity. Existing entries are overwritten wholesale.
func (m *Memory) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if el, ok := m.items[key]; ok {
		el.Value = &entry{key: key, value: value, createdAt: now, expiresAt: now.Add(ttl)}
		m.order.MoveToFront(el)
		return
	}

	if m.order.Len() >= m.capacity {
		if oldest := m.order.Back(); oldest != nil {
			m.removeLocked(oldest)
		}
	}
	el := m.order.PushFront(&entry{key: key, value: value, createdAt: now, expiresAt: now.Add(ttl)})
	m.items[key] = el
}

// Invalidate drops one entry.
func (m *Memory) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if el, ok := m.items[key]; ok {
		m.removeLocked(el)
	}
}

// InvalidatePattern drops every entry whose key matches the regex and
// returns how many were removed.
func (m *Memory) InvalidatePattern(pattern *regexp.Regexp) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, el := range m.items {
		if pattern.MatchString(key) {
			m.removeLocked(el)
			removed++
		}
	}
	return removed
}

// Len reports the live entry count (expired entries still pending lazy
// removal included).
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

func (m *Memory) removeLocked(el *list.Element) {
	e := el.Value.(*entry)
	m.order.Remove(el)
	delete(m.items, e.key)
}
