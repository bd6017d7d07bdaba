package stats

import (
	"sync"

	"github.com/osse101/LootDrop_Go/internal/domain"
)

// Snapshot is a point-in-time copy of a session's running statistics.
type Snapshot struct {
	Opens        int            `json:"opens"`
	EmptyOpens   int            `json:"empty_opens"`
	ItemsDropped int            `json:"items_dropped"`
	RollCount    int64          `json:"roll_count"`
	ByRarity     map[string]int `json:"by_rarity"`
	ByChest      map[string]int `json:"by_chest"`
	BestDrop     string         `json:"best_drop,omitempty"`
	LastDrops    []string       `json:"last_drops"`
}

// Tracker aggregates drops for one session. It is safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	pool     domain.LootPool
	opens    int
	empty    int
	items    int
	byRarity map[string]int
	byChest  map[string]int
	best     string
	recent   []string
}

// NewTracker returns an empty tracker. pool ranks drops: an entry later in
// the pool is rarer, which decides BestDrop.
func NewTracker(pool domain.LootPool) *Tracker {
	return &Tracker{
		pool:     pool.Clone(),
		byRarity: make(map[string]int),
		byChest:  make(map[string]int),
	}
}

// Record adds the outcome of one chest opening.
func (t *Tracker) Record(chestType string, drops []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.opens++
	t.byChest[chestType]++
	if len(drops) == 0 {
		t.empty++
		return
	}

	for _, d := range drops {
		t.items++
		t.byRarity[d]++
		if t.best == "" || t.pool.RankOf(d) > t.pool.RankOf(t.best) {
			t.best = d
		}
	}

	t.recent = append(t.recent, drops...)
	if over := len(t.recent) - RecentDropsLimit; over > 0 {
		t.recent = append([]string(nil), t.recent[over:]...)
	}
}

// Snapshot returns a copy of the current statistics.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		Opens:        t.opens,
		EmptyOpens:   t.empty,
		ItemsDropped: t.items,
		ByRarity:     make(map[string]int, len(t.byRarity)),
		ByChest:      make(map[string]int, len(t.byChest)),
		BestDrop:     t.best,
		LastDrops:    append([]string{}, t.recent...),
	}
	for k, v := range t.byRarity {
		s.ByRarity[k] = v
	}
	for k, v := range t.byChest {
		s.ByChest[k] = v
	}
	return s
}

// Reset clears all statistics.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.opens, t.empty, t.items = 0, 0, 0
	t.byRarity = make(map[string]int)
	t.byChest = make(map[string]int)
	t.best = ""
	t.recent = nil
}
