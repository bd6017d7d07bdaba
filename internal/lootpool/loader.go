package lootpool

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/logger"
	"github.com/osse101/LootDrop_Go/internal/validation"
)

//go:embed schemas/loot_tables.schema.json
var lootTablesSchema []byte

// catalogFile is the on-disk catalog layout shared by JSON and YAML files.
type catalogFile struct {
	Version string               `json:"version"`
	Pools   []domain.LootPool    `json:"pools"`
	Chests  map[string]chestFile `json:"chests"`
}

type chestFile struct {
	ExcludeRarities []string       `json:"exclude_rarities"`
	MaxRolls        int            `json:"max_rolls"`
	WeightOverrides map[string]int `json:"weight_overrides"`
}

// RegisterSchema registers the embedded catalog schema with v.
func RegisterSchema(v validation.SchemaValidator) error {
	return v.RegisterSchema(LootTablesSchemaName, lootTablesSchema)
}

// LoadFile reads a catalog from a .json, .yaml or .yml file. The document is
// schema-validated, then every pool is checked against domain.BaseWeight.
func LoadFile(path string, v validation.SchemaValidator) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCatalog, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCatalog, err)
		}
	default:
		return nil, fmt.Errorf("%s: %s", ErrContextUnsupportedFormat, path)
	}

	cat, err := Parse(data, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info(LogMsgCatalogLoaded, LogFieldPath, path, LogFieldPools, cat.PoolNames())
	return cat, nil
}

// Parse builds a Catalog from a JSON catalog document.
func Parse(data []byte, v validation.SchemaValidator) (*Catalog, error) {
	if err := RegisterSchema(v); err != nil {
		return nil, err
	}
	if err := v.ValidateBytes(data, LootTablesSchemaName); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCatalog, err)
	}

	known := make(map[string]bool)
	for _, p := range file.Pools {
		for _, e := range p.Entries {
			known[e.Name] = true
		}
	}

	chests := make(map[string]domain.ChestConfig, len(file.Chests))
	for name, cf := range file.Chests {
		chest := domain.ChestConfig{
			ExcludeRarities: make(map[string]bool, len(cf.ExcludeRarities)),
			MaxRolls:        cf.MaxRolls,
			WeightOverrides: cf.WeightOverrides,
		}
		for _, r := range cf.ExcludeRarities {
			chest.ExcludeRarities[r] = true
		}
		for entry := range cf.WeightOverrides {
			if !known[entry] {
				logger.Warn(LogMsgUnknownOverrideName, LogFieldChest, name, LogFieldEntry, entry)
			}
		}
		chests[name] = chest
	}
	if _, ok := chests[domain.DefaultChestType]; !ok {
		logger.Debug(LogMsgDefaultChestAdded)
	}

	return NewCatalog(file.Pools, chests)
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share one
// schema and one decoder.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	normalized, err := normalizeYAML(doc)
	if err != nil {
		return nil, err
	}
	return json.Marshal(normalized)
}

// normalizeYAML converts map[interface{}]interface{} nodes, which encoding/json
// cannot marshal, into map[string]interface{}.
func normalizeYAML(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			n, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", k)
			}
			n, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []interface{}:
		for i, val := range t {
			n, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}
