package lootbox

import "math"

// ChancePrecision is the number of decimal places GetLootChances rounds to.
const ChancePrecision = 2

// BatchMultiplierCeiling bounds a multiplied batch to this many times the chest's max rolls.
const BatchMultiplierCeiling = 2

// MaxBoostedWeight caps a single boosted weight so the summed table stays in int range.
const MaxBoostedWeight = math.MaxInt32

// Error context messages for wrapped errors
const (
	ErrContextPoolOverBase   = "pool weight exceeds base weight"
	ErrContextNegativeWeight = "pool has a negative weight"
)
