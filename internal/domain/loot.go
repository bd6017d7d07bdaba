package domain

import (
	"time"

	"github.com/google/uuid"
)

// LootEntry is one possible drop outcome and its relative likelihood.
type LootEntry struct {
	Name   string `json:"name" yaml:"name"`
	Weight int    `json:"weight" yaml:"weight"`
}

// LootPool is a named, ordered list of weighted entries.
// Entry order is the tie-break order during weighted selection.
type LootPool struct {
	Name    string      `json:"name" yaml:"name"`
	Entries []LootEntry `json:"entries" yaml:"entries"`
}

// TotalWeight returns the sum of all entry weights.
func (p LootPool) TotalWeight() int {
	total := 0
	for _, e := range p.Entries {
		total += e.Weight
	}
	return total
}

// Clone returns a deep copy of the pool.
func (p LootPool) Clone() LootPool {
	entries := make([]LootEntry, len(p.Entries))
	copy(entries, p.Entries)
	return LootPool{Name: p.Name, Entries: entries}
}

// RankOf returns the position of name in the pool, or -1 when absent.
// Later entries are rarer in every shipped pool.
func (p LootPool) RankOf(name string) int {
	for i, e := range p.Entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// ChestConfig is a named variant of the roll policy.
type ChestConfig struct {
	ExcludeRarities map[string]bool `json:"exclude_rarities" yaml:"exclude_rarities"`
	MaxRolls        int             `json:"max_rolls" yaml:"max_rolls"`
	WeightOverrides map[string]int  `json:"weight_overrides,omitempty" yaml:"weight_overrides,omitempty"`
}

// Excludes reports whether the chest filters out the named entry.
func (c ChestConfig) Excludes(name string) bool {
	return c.ExcludeRarities[name]
}

// Override returns the replacement weight for name, if the chest defines one.
func (c ChestConfig) Override(name string) (int, bool) {
	if c.WeightOverrides == nil {
		return 0, false
	}
	w, ok := c.WeightOverrides[name]
	return w, ok
}

// Clone returns a deep copy of the chest configuration.
func (c ChestConfig) Clone() ChestConfig {
	out := ChestConfig{MaxRolls: c.MaxRolls}
	if c.ExcludeRarities != nil {
		out.ExcludeRarities = make(map[string]bool, len(c.ExcludeRarities))
		for k, v := range c.ExcludeRarities {
			out.ExcludeRarities[k] = v
		}
	}
	if c.WeightOverrides != nil {
		out.WeightOverrides = make(map[string]int, len(c.WeightOverrides))
		for k, v := range c.WeightOverrides {
			out.WeightOverrides[k] = v
		}
	}
	return out
}

// ChestOpening is the record of one batch draw made for a session.
type ChestOpening struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	ChestType   string    `json:"chest_type"`
	Items       []string  `json:"items"`
	Multiplier  float64   `json:"multiplier"`
	RarityBoost float64   `json:"rarity_boost"`
	RollCount   int64     `json:"roll_count"`
	OpenedAt    time.Time `json:"opened_at"`
}

// RarityCount is an aggregated count of one rarity in a session's history.
type RarityCount struct {
	Rarity string `json:"rarity"`
	Count  int    `json:"count"`
}
