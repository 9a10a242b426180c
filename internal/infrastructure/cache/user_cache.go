package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/rs/zerolog"

	userentities "github.com/hm-yang2/board-share/internal/domain/user/entities"
)

// CacheRecorder receives hit/miss observations
type CacheRecorder interface {
	RecordUserCache(hit bool)
}

// UserCache keeps recently authenticated users by email.
// Entries expire after ttl and the least recently used entry is evicted at capacity.
type UserCache struct {
	entries  map[string]*list.Element
	order    *list.List // most recently used at front
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	recorder CacheRecorder
	logger   zerolog.Logger
}

type cacheEntry struct {
	email     string
	user      userentities.User
	expiresAt time.Time
}

// NewUserCache creates a new UserCache instance
func NewUserCache(capacity int, ttl time.Duration, recorder CacheRecorder, logger zerolog.Logger) *UserCache {
	if capacity <= 0 {
		capacity = 1024
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &UserCache{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		recorder: recorder,
		logger:   logger.With().Str("component", "user_cache").Logger(),
	}
}

// Get returns a copy of the cached user for email
func (c *UserCache) Get(email string) (*userentities.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[email]
	if !ok {
		c.record(false)
		return nil, false
	}

	entry := elem.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.removeElement(elem)
		c.record(false)
		return nil, false
	}

	c.order.MoveToFront(elem)
	c.record(true)
	user := entry.user
	return &user, true
}

// Set stores a copy of user under its email
func (c *UserCache) Set(user *userentities.User) {
	if user == nil || user.Email == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[user.Email]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.user = *user
		entry.expiresAt = c.now().Add(c.ttl)
		c.order.MoveToFront(elem)
		return
	}

	elem := c.order.PushFront(&cacheEntry{
		email:     user.Email,
		user:      *user,
		expiresAt: c.now().Add(c.ttl),
	})
	c.entries[user.Email] = elem

	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
	}
}

// Invalidate drops the entry for email
func (c *UserCache) Invalidate(email string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[email]; ok {
		c.removeElement(elem)
		c.logger.Debug().Str("email", email).Msg("user cache entry invalidated")
	}
}

// Len returns the number of cached entries, expired ones included
func (c *UserCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *UserCache) removeElement(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	delete(c.entries, entry.email)
	c.order.Remove(elem)
}

func (c *UserCache) record(hit bool) {
	if c.recorder != nil {
		c.recorder.RecordUserCache(hit)
	}
}
