package cache

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"

	"dataquality/internal/domain"
)

type memoryEntry struct {
	key     string
	value   []byte
	expires time.Time
}

// MemoryStore is a bounded in-process LRU with per-entry expiry. When full, the least
// recently used entry is evicted.
type MemoryStore struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
	now      func() time.Time
}

// NewMemoryStore creates a MemoryStore holding at most capacity entries.
// The capacity must be positive, otherwise it panics.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		panic("memory cache capacity must be positive")
	}
	return &MemoryStore{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	entry := elem.Value.(*memoryEntry)
	if !entry.expires.IsZero() && !m.now().Before(entry.expires) {
		m.removeElement(elem)
		return nil, false, nil
	}
	m.eviction.MoveToFront(elem)
	return entry.value, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expires time.Time
	if ttl > 0 {
		expires = m.now().Add(ttl)
	}

	if elem, ok := m.items[key]; ok {
		m.eviction.MoveToFront(elem)
		entry := elem.Value.(*memoryEntry)
		entry.value = value
		entry.expires = expires
		return nil
	}

	m.items[key] = m.eviction.PushFront(&memoryEntry{key: key, value: value, expires: expires})
	if m.eviction.Len() > m.capacity {
		m.removeElement(m.eviction.Back())
	}
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, prefix string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, elem := range m.items {
		if strings.HasPrefix(key, prefix) {
			m.removeElement(elem)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of entries, expired ones included until they are next touched.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eviction.Len()
}

func (m *MemoryStore) Stats(_ context.Context) domain.CacheStats {
	return domain.CacheStats{
		Backend:   "memory",
		Available: true,
		Keys:      m.Len(),
		Capacity:  m.capacity,
	}
}

// Must be called with lock held.
func (m *MemoryStore) removeElement(elem *list.Element) {
	m.eviction.Remove(elem)
	delete(m.items, elem.Value.(*memoryEntry).key)
}
