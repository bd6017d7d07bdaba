package lootbox

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/lootpool"
	"github.com/osse101/LootDrop_Go/internal/utils"
)

// Roller performs weighted draws against one loot pool.
//
// The pool and chest table are replaced wholesale, never mutated, so draws only
// hold a read lock while building their weighted table. The roll counter is an
// atomic so a Roller may be shared by concurrent callers.
type Roller struct {
	mu      sync.RWMutex
	pool    domain.LootPool
	poolSum int
	chests  map[string]domain.ChestConfig

	rnd   RandomSource
	rolls atomic.Int64
}

// Option configures a Roller.
type Option func(*Roller)

// WithSource sets the random source used for draws.
func WithSource(src RandomSource) Option {
	return func(r *Roller) {
		if src != nil {
			r.rnd = src
		}
	}
}

// LootsOptions configures a batch draw. Zero values mean "use the default".
type LootsOptions struct {
	// Max overrides the chest's roll-count ceiling when non-nil.
	Max         *int
	ChestType   string
	Multiplier  float64
	RarityBoost float64
}

// Batch is the outcome of one batch draw.
type Batch struct {
	Items    []string
	Draws    int
	MaxRolls int
}

// weightedEntry is one eligible entry after filtering, overrides and boost.
type weightedEntry struct {
	name   string
	weight int
}

// NewRoller builds a Roller over pool. Chest types missing from chests fall
// back to the normal chest. It fails with domain.ErrConfiguration when the
// pool's weights exceed domain.BaseWeight.
func NewRoller(pool domain.LootPool, chests map[string]domain.ChestConfig, opts ...Option) (*Roller, error) {
	r := &Roller{
		rnd:    DefaultSource(),
		chests: make(map[string]domain.ChestConfig, len(chests)),
	}
	for name, c := range chests {
		r.chests[name] = c.Clone()
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.SetPool(pool); err != nil {
		return nil, err
	}
	return r, nil
}

// NewRollerFromCatalog builds a Roller over the named pool of cat.
func NewRollerFromCatalog(cat *lootpool.Catalog, poolName string, opts ...Option) (*Roller, error) {
	pool, err := cat.Pool(poolName)
	if err != nil {
		return nil, err
	}
	return NewRoller(pool, cat.Chests(), opts...)
}

// SetPool validates pool and makes it the active pool. On error the previous
// pool stays active.
func (r *Roller) SetPool(pool domain.LootPool) error {
	sum, err := poolSum(pool)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.pool = pool.Clone()
	r.poolSum = sum
	r.mu.Unlock()
	return nil
}

// SetChests replaces the chest table.
func (r *Roller) SetChests(chests map[string]domain.ChestConfig) {
	next := make(map[string]domain.ChestConfig, len(chests))
	for name, c := range chests {
		next[name] = c.Clone()
	}

	r.mu.Lock()
	r.chests = next
	r.mu.Unlock()
}

// Pool returns a copy of the active pool.
func (r *Roller) Pool() domain.LootPool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pool.Clone()
}

func poolSum(pool domain.LootPool) (int, error) {
	sum := 0
	for _, e := range pool.Entries {
		if e.Weight < 0 {
			return 0, fmt.Errorf("%w: %s: %q in pool %q", domain.ErrConfiguration, ErrContextNegativeWeight, e.Name, pool.Name)
		}
		sum += e.Weight
	}
	if sum > domain.BaseWeight {
		return 0, fmt.Errorf("%w: %s: pool %q sums to %d (base %d)", domain.ErrConfiguration, ErrContextPoolOverBase, pool.Name, sum, domain.BaseWeight)
	}
	return sum, nil
}

// GetLootChances returns each entry's share of the unfiltered pool as a
// percentage rounded to two decimals. Chest filtering never applies here.
func (r *Roller) GetLootChances() map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chances := make(map[string]float64, len(r.pool.Entries))
	for _, e := range r.pool.Entries {
		chances[e.Name] = utils.RoundTo(utils.Percent(float64(e.Weight), float64(r.poolSum)), ChancePrecision)
	}
	return chances
}

// ChestChances returns the odds of a single draw from chestType after
// filtering, overrides and boost, as percentages rounded to two decimals.
// An empty map means the chest cannot drop anything.
func (r *Roller) ChestChances(chestType string, rarityBoost float64) map[string]float64 {
	table, sum := r.weightedTable(r.resolveChest(chestType), rarityBoost)

	chances := make(map[string]float64, len(table))
	if sum <= 0 {
		return chances
	}
	for _, e := range table {
		chances[e.name] = utils.RoundTo(utils.Percent(float64(e.weight), float64(sum)), ChancePrecision)
	}
	return chances
}

// GetLoot performs one weighted draw. It returns ("", false) when the chest
// leaves no eligible entries or their weights sum to zero; that is an empty
// result, not an error. Each successful draw increments the roll counter.
func (r *Roller) GetLoot(chestType string, rarityBoost float64) (string, bool) {
	table, sum := r.weightedTable(r.resolveChest(chestType), rarityBoost)
	return r.draw(table, sum)
}

// GetLoots performs a batch draw and returns the non-empty results in draw order.
func (r *Roller) GetLoots(opts LootsOptions) []string {
	return r.OpenChest(opts).Items
}

// OpenChest performs a batch draw and reports how many draws were attempted.
//
// The ceiling is opts.Max when set, else the chest's MaxRolls; a ceiling <= 0
// returns an empty batch without drawing. The base count is uniform in
// [1, ceiling], scaled by the multiplier and capped at twice the ceiling.
func (r *Roller) OpenChest(opts LootsOptions) Batch {
	chest := r.resolveChest(opts.ChestType)

	maxRolls := chest.MaxRolls
	if opts.Max != nil {
		maxRolls = *opts.Max
	}
	batch := Batch{Items: []string{}, MaxRolls: maxRolls}
	if maxRolls <= 0 {
		return batch
	}

	multiplier := opts.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}

	baseCount := 1 + r.rnd.IntN(maxRolls)
	finalCount := batchCount(baseCount, multiplier, maxRolls*BatchMultiplierCeiling)

	table, sum := r.weightedTable(chest, opts.RarityBoost)
	for i := 0; i < finalCount; i++ {
		batch.Draws++
		if name, ok := r.draw(table, sum); ok {
			batch.Items = append(batch.Items, name)
		}
	}
	return batch
}

// batchCount returns min(round(baseCount*multiplier), ceiling). The bound is
// applied in float so huge or NaN multipliers land on the ceiling instead of
// overflowing int.
func batchCount(baseCount int, multiplier float64, ceiling int) int {
	scaled := math.Round(float64(baseCount) * multiplier)
	switch {
	case scaled <= 0:
		return 0
	case scaled < float64(ceiling):
		return int(scaled)
	default:
		return ceiling
	}
}

// GetRollCount returns the number of successful single draws so far.
func (r *Roller) GetRollCount() int64 {
	return r.rolls.Load()
}

// ResetRollCount sets the roll counter back to zero. Only external callers
// reset; the Roller itself never does.
func (r *Roller) ResetRollCount() {
	r.rolls.Store(0)
}

// resolveChest returns the configuration for chestType, falling back to the
// normal chest for "" or unknown types.
func (r *Roller) resolveChest(chestType string) domain.ChestConfig {
	if chestType == "" {
		chestType = domain.DefaultChestType
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.chests[chestType]; ok {
		return c
	}
	if c, ok := r.chests[domain.DefaultChestType]; ok {
		return c
	}
	return lootpool.DefaultChest()
}

// HasChest reports whether chestType is configured.
func (r *Roller) HasChest(chestType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.chests[chestType]
	return ok
}

// weightedTable filters, overrides and boosts the active pool for one chest.
func (r *Roller) weightedTable(chest domain.ChestConfig, rarityBoost float64) ([]weightedEntry, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table := make([]weightedEntry, 0, len(r.pool.Entries))
	sum := 0
	for _, e := range r.pool.Entries {
		if chest.Excludes(e.Name) {
			continue
		}

		w := e.Weight
		if o, ok := chest.Override(e.Name); ok {
			w = o
		}
		if rarityBoost > 1 && domain.IsBoostable(e.Name) {
			w = boostWeight(w, rarityBoost)
		}

		table = append(table, weightedEntry{name: e.Name, weight: w})
		sum += w
	}
	return table, sum
}

// boostWeight scales w by boost, saturating at MaxBoostedWeight.
func boostWeight(w int, boost float64) int {
	scaled := math.Round(float64(w) * boost)
	if scaled >= MaxBoostedWeight {
		return MaxBoostedWeight
	}
	return int(scaled)
}

// draw picks from table with inclusive-upper-bound cumulative selection: the
// first entry whose running total is >= the roll wins, so earlier entries take
// a roll that lands exactly on a boundary. Zero-weight entries never win.
func (r *Roller) draw(table []weightedEntry, sum int) (string, bool) {
	if len(table) == 0 || sum <= 0 {
		return "", false
	}

	roll := r.rnd.Float64() * float64(sum)
	cumulative := 0
	picked := ""
	for _, e := range table {
		if e.weight <= 0 {
			continue
		}
		cumulative += e.weight
		picked = e.name
		if float64(cumulative) >= roll {
			break
		}
	}

	r.rolls.Add(1)
	return picked, true
}
