package domain

// BaseWeight is the fixed weight budget every loot pool must fit into.
// Weight left over below BaseWeight is implicit "no drop" probability.
const BaseWeight = 10000

// Rarity names of the default rarity pool, ordered from most to least common.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
	RarityMythic    = "mythic"
)

// PoolRarity is the name of the default pool.
const PoolRarity = "rarity"

// Chest type constants
const (
	ChestNormal = "normal"
	ChestRare   = "rare"
	ChestEpic   = "epic"
	ChestMythic = "mythic"
)

// DefaultChestType is used when a caller does not name a chest.
const DefaultChestType = ChestNormal

// DefaultMaxRolls is the batch ceiling of the normal chest.
const DefaultMaxRolls = 5

// BoostableRarities are the "rare-or-above" entries a rarity boost multiplies.
var BoostableRarities = map[string]bool{
	RarityRare:      true,
	RarityEpic:      true,
	RarityLegendary: true,
	RarityMythic:    true,
}

// IsBoostable reports whether a rarity boost applies to the named entry.
func IsBoostable(name string) bool {
	return BoostableRarities[name]
}
