// Command score evaluates a character sheet JSON file offline and prints its
// combat profile.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/osse101/aion2-tracker/internal/combat"
	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/utils"
)

func main() {
	sheetPath := flag.String("sheet", "", "path to a character sheet JSON file (required)")
	tablePath := flag.String("tables", "", "stat table YAML (default: embedded)")
	asJSON := flag.Bool("json", false, "print the full profile as JSON")
	outPath := flag.String("out", "", "also write the full profile as JSON to this file")
	flag.Parse()

	if *sheetPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*sheetPath, *tablePath, *outPath, *asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "score: %v\n", err)
		os.Exit(1)
	}
}

func run(sheetPath, tablePath, outPath string, asJSON bool) error {
	tables, err := combat.LoadTablesFile(tablePath)
	if err != nil {
		return err
	}

	var sheet domain.CharacterSheet
	if err := utils.LoadJSON(sheetPath, &sheet); err != nil {
		return err
	}

	profile := tables.Evaluate(sheet)

	if outPath != "" {
		if err := utils.SaveJSON(outPath, profile); err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}
	return printProfile(profile)
}

func printProfile(p domain.Profile) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Score\t%d\t(%s)\n", p.Score.TotalScore, p.Score.Grade)
	for _, b := range domain.AllBuckets {
		fmt.Fprintf(w, "%s\t%.0f\n", b, p.Buckets.Totals[b])
	}

	if len(p.Caps) > 0 {
		fmt.Fprintln(w, "\nStat\tRaw\tEffective\tCap")
		names := make([]string, 0, len(p.Caps))
		for name := range p.Caps {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			c := p.Caps[name]
			state := "-"
			switch {
			case c.IsHardCapped:
				state = "hard"
			case c.IsSoftCapped:
				state = "soft"
			}
			fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%s\n", name, c.Raw, c.Value, state)
		}
	}

	fmt.Fprintf(w, "\nItems\t%d\n", p.Equipment.Items)
	fmt.Fprintf(w, "Avg enhancement\t%.1f\n", p.Equipment.AverageEnhancement)
	return w.Flush()
}
