package lootpool

import "github.com/osse101/LootDrop_Go/internal/domain"

// RarityPool returns the compiled-in rarity pool. Weights sum to domain.BaseWeight.
func RarityPool() domain.LootPool {
	return domain.LootPool{
		Name: domain.PoolRarity,
		Entries: []domain.LootEntry{
			{Name: domain.RarityCommon, Weight: 6000},
			{Name: domain.RarityUncommon, Weight: 2500},
			{Name: domain.RarityRare, Weight: 1000},
			{Name: domain.RarityEpic, Weight: 400},
			{Name: domain.RarityLegendary, Weight: 90},
			{Name: domain.RarityMythic, Weight: 10},
		},
	}
}

// DefaultChest is the normal chest: nothing excluded, base maximum roll count.
func DefaultChest() domain.ChestConfig {
	return domain.ChestConfig{
		ExcludeRarities: map[string]bool{},
		MaxRolls:        domain.DefaultMaxRolls,
	}
}

// DefaultChests returns the compiled-in chest table.
func DefaultChests() map[string]domain.ChestConfig {
	return map[string]domain.ChestConfig{
		domain.ChestNormal: DefaultChest(),
		domain.ChestRare: {
			ExcludeRarities: map[string]bool{domain.RarityCommon: true},
			MaxRolls:        4,
		},
		domain.ChestEpic: {
			ExcludeRarities: map[string]bool{
				domain.RarityCommon:   true,
				domain.RarityUncommon: true,
				domain.RarityRare:     true,
			},
			MaxRolls: 3,
			WeightOverrides: map[string]int{
				domain.RarityLegendary: 150,
				domain.RarityMythic:    30,
			},
		},
		domain.ChestMythic: {
			ExcludeRarities: map[string]bool{
				domain.RarityCommon:   true,
				domain.RarityUncommon: true,
				domain.RarityRare:     true,
				domain.RarityEpic:     true,
			},
			MaxRolls: 1,
		},
	}
}

// DefaultCatalog returns the compiled-in catalog. It panics only if the
// compiled-in data itself breaks the weight invariant.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]domain.LootPool{RarityPool()}, DefaultChests())
	if err != nil {
		panic("lootpool: compiled-in catalog is invalid: " + err.Error())
	}
	return c
}
