package lootpool

import (
	"fmt"
	"sort"

	"github.com/osse101/LootDrop_Go/internal/domain"
)

// Catalog is the immutable set of loot pools and chest configurations.
// All accessors return copies; a Catalog never changes after NewCatalog.
type Catalog struct {
	pools     map[string]domain.LootPool
	poolOrder []string
	chests    map[string]domain.ChestConfig
}

// NewCatalog validates pools and chests and builds a Catalog.
// A pool whose weights exceed domain.BaseWeight yields an error wrapping
// domain.ErrConfiguration. A missing normal chest is filled in with the default.
func NewCatalog(pools []domain.LootPool, chests map[string]domain.ChestConfig) (*Catalog, error) {
	c := &Catalog{
		pools:  make(map[string]domain.LootPool, len(pools)),
		chests: make(map[string]domain.ChestConfig, len(chests)+1),
	}

	for _, p := range pools {
		if err := ValidatePool(p); err != nil {
			return nil, err
		}
		if _, dup := c.pools[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate pool %q", domain.ErrConfiguration, p.Name)
		}
		c.pools[p.Name] = p.Clone()
		c.poolOrder = append(c.poolOrder, p.Name)
	}

	for name, chest := range chests {
		if err := ValidateChest(name, chest); err != nil {
			return nil, err
		}
		c.chests[name] = chest.Clone()
	}

	if _, ok := c.chests[domain.DefaultChestType]; !ok {
		c.chests[domain.DefaultChestType] = DefaultChest()
	}

	return c, nil
}

// ValidatePool checks the BaseWeight invariant and entry sanity of a pool.
func ValidatePool(p domain.LootPool) error {
	if p.Name == "" {
		return fmt.Errorf("%w: pool name is empty", domain.ErrConfiguration)
	}

	seen := make(map[string]bool, len(p.Entries))
	sum := 0
	for _, e := range p.Entries {
		if e.Name == "" {
			return fmt.Errorf("%w: pool %q has an entry with no name", domain.ErrConfiguration, p.Name)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: pool %q entry %q has negative weight %d", domain.ErrConfiguration, p.Name, e.Name, e.Weight)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: pool %q has duplicate entry %q", domain.ErrConfiguration, p.Name, e.Name)
		}
		seen[e.Name] = true
		sum += e.Weight
	}

	if sum > domain.BaseWeight {
		return fmt.Errorf("%w: pool %q weight %d exceeds base weight %d", domain.ErrConfiguration, p.Name, sum, domain.BaseWeight)
	}
	return nil
}

// ValidateChest checks that a chest configuration is usable.
func ValidateChest(name string, c domain.ChestConfig) error {
	if name == "" {
		return fmt.Errorf("%w: chest type is empty", domain.ErrConfiguration)
	}
	if c.MaxRolls < 0 {
		return fmt.Errorf("%w: chest %q has negative max rolls %d", domain.ErrConfiguration, name, c.MaxRolls)
	}
	for entry, w := range c.WeightOverrides {
		if w < 0 {
			return fmt.Errorf("%w: chest %q override for %q is negative", domain.ErrConfiguration, name, entry)
		}
	}
	return nil
}

// Pool returns a copy of the named pool.
func (c *Catalog) Pool(name string) (domain.LootPool, error) {
	p, ok := c.pools[name]
	if !ok {
		return domain.LootPool{}, fmt.Errorf("%w: %s", domain.ErrPoolNotFound, name)
	}
	return p.Clone(), nil
}

// PoolNames returns pool names in declaration order.
func (c *Catalog) PoolNames() []string {
	out := make([]string, len(c.poolOrder))
	copy(out, c.poolOrder)
	return out
}

// Chest returns a copy of the named chest configuration.
func (c *Catalog) Chest(chestType string) (domain.ChestConfig, bool) {
	chest, ok := c.chests[chestType]
	if !ok {
		return domain.ChestConfig{}, false
	}
	return chest.Clone(), true
}

// Chests returns a copy of every chest configuration keyed by type.
func (c *Catalog) Chests() map[string]domain.ChestConfig {
	out := make(map[string]domain.ChestConfig, len(c.chests))
	for name, chest := range c.chests {
		out[name] = chest.Clone()
	}
	return out
}

// ChestTypes returns the sorted chest type names.
func (c *Catalog) ChestTypes() []string {
	out := make([]string, 0, len(c.chests))
	for name := range c.chests {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
