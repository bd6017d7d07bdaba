// Command simulate runs an offline Monte-Carlo loot simulation and prints
// observed against configured odds.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/lootbox"
	"github.com/osse101/LootDrop_Go/internal/lootpool"
	"github.com/osse101/LootDrop_Go/internal/utils"
	"github.com/osse101/LootDrop_Go/internal/validation"
)

func main() {
	var (
		chest       = flag.String("chest", domain.DefaultChestType, "Chest type to open")
		opens       = flag.Int("opens", 10000, "Number of chests to open")
		boost       = flag.Float64("boost", 1, "Rarity boost (1 = none)")
		multiplier  = flag.Float64("multiplier", 1, "Roll count multiplier")
		seed        = flag.Uint64("seed", 0, "Random seed (0 = nondeterministic)")
		catalogPath = flag.String("catalog", "", "Loot tables file (.json, .yaml); compiled-in tables when empty")
		outPath     = flag.String("out", "", "Write the report as JSON to this file")
		comparePath = flag.String("compare", "", "Previous JSON report to compare against")
		pool        = flag.String("pool", domain.PoolRarity, "Pool to draw from")
	)
	flag.Parse()

	if err := run(*catalogPath, *pool, *outPath, *comparePath, runParams{
		chest:       *chest,
		opens:       *opens,
		seed:        *seed,
		multiplier:  *multiplier,
		rarityBoost: *boost,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run(catalogPath, pool, outPath, comparePath string, p runParams) error {
	if p.opens <= 0 {
		return fmt.Errorf("%w: -opens must be positive", domain.ErrInvalidInput)
	}
	if p.multiplier < 0 || p.rarityBoost < 0 {
		return fmt.Errorf("%w: -multiplier and -boost must not be negative", domain.ErrInvalidInput)
	}

	cat := lootpool.DefaultCatalog()
	if catalogPath != "" {
		var err error
		if cat, err = lootpool.LoadFile(catalogPath, validation.NewSchemaValidator()); err != nil {
			return err
		}
	}

	var opts []lootbox.Option
	if p.seed != 0 {
		opts = append(opts, lootbox.WithSource(lootbox.NewSeededSource(p.seed)))
	}
	roller, err := lootbox.NewRollerFromCatalog(cat, pool, opts...)
	if err != nil {
		return err
	}

	rep := simulate(roller, p)
	printer := message.NewPrinter(language.English)
	printReport(os.Stdout, printer, rep)

	if comparePath != "" {
		prev, err := utils.ReadJSON[Report](comparePath)
		if err != nil {
			return fmt.Errorf("failed to load previous report: %w", err)
		}
		fmt.Fprintln(os.Stdout)
		printDrift(os.Stdout, printer, compare(prev, rep))
	}

	if outPath != "" {
		if err := utils.WriteJSON(outPath, rep); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
