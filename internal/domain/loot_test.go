package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLootPool_TotalWeight(t *testing.T) {
	pool := LootPool{Name: "p", Entries: []LootEntry{{"a", 10}, {"b", 0}, {"c", 25}}}
	assert.Equal(t, 35, pool.TotalWeight())
	assert.Zero(t, LootPool{}.TotalWeight())
}

func TestLootPool_CloneIsIndependent(t *testing.T) {
	pool := LootPool{Name: "p", Entries: []LootEntry{{"a", 10}}}
	clone := pool.Clone()
	clone.Entries[0].Weight = 99

	assert.Equal(t, 10, pool.Entries[0].Weight)
}

func TestLootPool_RankOf(t *testing.T) {
	pool := LootPool{Entries: []LootEntry{{RarityCommon, 1}, {RarityMythic, 1}}}

	assert.Equal(t, 0, pool.RankOf(RarityCommon))
	assert.Equal(t, 1, pool.RankOf(RarityMythic))
	assert.Equal(t, -1, pool.RankOf("missing"))
}

func TestChestConfig(t *testing.T) {
	chest := ChestConfig{
		ExcludeRarities: map[string]bool{RarityCommon: true},
		MaxRolls:        3,
		WeightOverrides: map[string]int{RarityMythic: 30},
	}

	assert.True(t, chest.Excludes(RarityCommon))
	assert.False(t, chest.Excludes(RarityRare))

	w, ok := chest.Override(RarityMythic)
	assert.True(t, ok)
	assert.Equal(t, 30, w)
	_, ok = chest.Override(RarityRare)
	assert.False(t, ok)

	_, ok = ChestConfig{}.Override(RarityMythic)
	assert.False(t, ok, "Nil override map means no overrides")
	assert.False(t, ChestConfig{}.Excludes(RarityCommon))
}

func TestChestConfig_CloneIsIndependent(t *testing.T) {
	chest := ChestConfig{
		ExcludeRarities: map[string]bool{RarityCommon: true},
		WeightOverrides: map[string]int{RarityMythic: 30},
	}
	clone := chest.Clone()
	clone.ExcludeRarities[RarityRare] = true
	clone.WeightOverrides[RarityMythic] = 1

	assert.False(t, chest.Excludes(RarityRare))
	assert.Equal(t, 30, chest.WeightOverrides[RarityMythic])
	assert.Nil(t, ChestConfig{}.Clone().WeightOverrides)
}

func TestIsBoostable(t *testing.T) {
	for _, name := range []string{RarityRare, RarityEpic, RarityLegendary, RarityMythic} {
		assert.True(t, IsBoostable(name), name)
	}
	assert.False(t, IsBoostable(RarityCommon))
	assert.False(t, IsBoostable(RarityUncommon))
}
