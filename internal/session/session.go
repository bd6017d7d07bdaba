package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/lootbox"
	"github.com/osse101/LootDrop_Go/internal/lootpool"
	"github.com/osse101/LootDrop_Go/internal/metrics"
	"github.com/osse101/LootDrop_Go/internal/stats"
)

// Session is one simulator user's roller and running statistics.
// Each session owns its roller, so the roll counter counts only its draws.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Roller    *lootbox.Roller
	Stats     *stats.Tracker
}

// Manager keeps live sessions in an expirable LRU cache.
type Manager struct {
	mu       sync.RWMutex
	catalog  *lootpool.Catalog
	poolName string
	opts     []lootbox.Option

	lru *expirable.LRU[uuid.UUID, *Session]
}

// NewManager creates a session manager.
// size: maximum number of live sessions
// ttl: idle lifetime of a session
func NewManager(cat *lootpool.Catalog, poolName string, size int, ttl time.Duration, opts ...lootbox.Option) (*Manager, error) {
	if _, err := cat.Pool(poolName); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultCacheSize
	}

	onEvict := func(_ uuid.UUID, _ *Session) {
		metrics.SessionsActive.Dec()
	}

	return &Manager{
		catalog:  cat,
		poolName: poolName,
		opts:     opts,
		lru:      expirable.NewLRU[uuid.UUID, *Session](size, onEvict, ttl),
	}, nil
}

// Create starts a new session with a fresh roller and empty statistics.
func (m *Manager) Create() (*Session, error) {
	s, err := m.build(uuid.New(), time.Now())
	if err != nil {
		return nil, err
	}
	m.lru.Add(s.ID, s)
	metrics.SessionsActive.Inc()
	return s, nil
}

// Get returns the live session with id.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	s, ok := m.lru.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return s, nil
}

// Reset discards the session's roller and statistics and replaces them with
// fresh ones, which is how the roll counter returns to zero.
func (m *Manager) Reset(id uuid.UUID) (*Session, error) {
	old, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	s, err := m.build(old.ID, old.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.lru.Add(s.ID, s)
	return s, nil
}

// Delete ends a session. Deleting an unknown session is not an error.
func (m *Manager) Delete(id uuid.UUID) {
	m.lru.Remove(id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.lru.Len()
}

// Catalog returns the catalog new sessions are built from.
func (m *Manager) Catalog() *lootpool.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}

// PoolName returns the name of the pool sessions roll against.
func (m *Manager) PoolName() string {
	return m.poolName
}

// SetCatalog swaps the catalog and pushes its pool and chests into every live
// session. Roll counters and statistics are kept.
func (m *Manager) SetCatalog(cat *lootpool.Catalog) error {
	pool, err := cat.Pool(m.poolName)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.catalog = cat
	m.mu.Unlock()

	chests := cat.Chests()
	for _, s := range m.lru.Values() {
		if err := s.Roller.SetPool(pool); err != nil {
			return err
		}
		s.Roller.SetChests(chests)
	}
	return nil
}

func (m *Manager) build(id uuid.UUID, createdAt time.Time) (*Session, error) {
	cat := m.Catalog()

	roller, err := lootbox.NewRollerFromCatalog(cat, m.poolName, m.opts...)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        id,
		CreatedAt: createdAt,
		Roller:    roller,
		Stats:     stats.NewTracker(roller.Pool()),
	}, nil
}
