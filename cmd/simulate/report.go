package main

import (
	"fmt"
	"io"
	"slices"

	"golang.org/x/text/message"

	"github.com/osse101/LootDrop_Go/internal/lootbox"
	"github.com/osse101/LootDrop_Go/internal/utils"
)

// Report summarizes one Monte-Carlo run. It is also the JSON format written
// by -out and read by -compare.
type Report struct {
	Chest       string             `json:"chest"`
	Opens       int                `json:"opens"`
	Seed        uint64             `json:"seed"`
	Multiplier  float64            `json:"multiplier"`
	RarityBoost float64            `json:"rarity_boost"`
	Draws       int                `json:"draws"`
	Items       int                `json:"items"`
	EmptyDraws  int                `json:"empty_draws"`
	Rarities    []string           `json:"rarities"`
	Counts      map[string]int     `json:"counts"`
	Observed    map[string]float64 `json:"observed"`
	Expected    map[string]float64 `json:"expected"`
}

// Drift is the per-rarity change in observed odds between two reports.
type Drift struct {
	Rarity   string
	Previous float64
	Current  float64
	Delta    float64
}

type runParams struct {
	chest       string
	opens       int
	seed        uint64
	multiplier  float64
	rarityBoost float64
}

// simulate opens p.opens chests on roller and tallies the drops.
func simulate(roller *lootbox.Roller, p runParams) Report {
	rep := Report{
		Chest:       p.chest,
		Opens:       p.opens,
		Seed:        p.seed,
		Multiplier:  p.multiplier,
		RarityBoost: p.rarityBoost,
		Counts:      make(map[string]int),
		Observed:    make(map[string]float64),
		Expected:    roller.ChestChances(p.chest, p.rarityBoost),
	}

	for _, e := range roller.Pool().Entries {
		rep.Rarities = append(rep.Rarities, e.Name)
	}

	opts := lootbox.LootsOptions{ChestType: p.chest, Multiplier: p.multiplier, RarityBoost: p.rarityBoost}
	for i := 0; i < p.opens; i++ {
		batch := roller.OpenChest(opts)
		rep.Draws += batch.Draws
		rep.Items += len(batch.Items)
		for _, item := range batch.Items {
			rep.Counts[item]++
		}
	}
	rep.EmptyDraws = rep.Draws - rep.Items

	for _, name := range rep.Rarities {
		rep.Observed[name] = utils.RoundTo(utils.Percent(float64(rep.Counts[name]), float64(rep.Items)), 2)
	}
	return rep
}

// compare returns the drift of every rarity present in either report, in
// current pool order followed by rarities only the previous run had.
func compare(prev, cur Report) []Drift {
	names := slices.Clone(cur.Rarities)
	for _, name := range prev.Rarities {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	drifts := make([]Drift, 0, len(names))
	for _, name := range names {
		drifts = append(drifts, Drift{
			Rarity:   name,
			Previous: prev.Observed[name],
			Current:  cur.Observed[name],
			Delta:    utils.RoundTo(cur.Observed[name]-prev.Observed[name], 2),
		})
	}
	return drifts
}

func printReport(w io.Writer, p *message.Printer, rep Report) {
	fmt.Fprint(w, p.Sprintf("Chest %q: %d opens, %d draws, %d items, %d empty\n",
		rep.Chest, rep.Opens, rep.Draws, rep.Items, rep.EmptyDraws))
	fmt.Fprint(w, p.Sprintf("%-12s %10s %10s %10s\n", "rarity", "count", "observed", "expected"))
	for _, name := range rep.Rarities {
		expected, eligible := rep.Expected[name]
		if !eligible && rep.Counts[name] == 0 {
			continue
		}
		fmt.Fprint(w, p.Sprintf("%-12s %10d %9.2f%% %9.2f%%\n", name, rep.Counts[name], rep.Observed[name], expected))
	}
}

func printDrift(w io.Writer, p *message.Printer, drifts []Drift) {
	fmt.Fprint(w, p.Sprintf("%-12s %10s %10s %10s\n", "rarity", "previous", "current", "delta"))
	for _, d := range drifts {
		fmt.Fprint(w, p.Sprintf("%-12s %9.2f%% %9.2f%% %+9.2f\n", d.Rarity, d.Previous, d.Current, d.Delta))
	}
}
