package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fuzzyfind "github.com/Vedant9500/fuzzyfind"
)

var searchCmd = &cobra.Command{
	Use:   "search <index.json|corpus.yaml> <query...>",
	Short: "Search an index snapshot (or build one on the fly from a YAML corpus)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, query := args[0], strings.Join(args[1:], " ")

		languages, _ := cmd.Flags().GetStringSlice("languages")
		performance, _ := cmd.Flags().GetString("performance")
		limit, _ := cmd.Flags().GetInt("limit")
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		cfg := fuzzyfind.DefaultConfig()
		cfg.Languages = languages
		cfg.Performance = performance

		eng, err := openEngine(path, cfg)
		if err != nil {
			return err
		}

		opts := fuzzyfind.SearchOptions{MaxResults: limit, FuzzyThreshold: threshold}
		results := eng.Search(query, opts)
		if len(results) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for i, r := range results {
			fmt.Printf("%2d. %-30s  score=%.3f  type=%-9s  lang=%s\n", i+1, r.Display, r.Score, r.MatchType, r.Language)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("limit", 10, "maximum results to return")
	searchCmd.Flags().Float64("threshold", 0, "override the fuzzy score threshold (0 = use config default)")
}

// openEngine loads path as a snapshot if it carries a .json extension,
// otherwise treats it as a YAML corpus and builds a fresh in-memory
// index from it.
func openEngine(path string, cfg fuzzyfind.Config) (*fuzzyfind.Engine, error) {
	if strings.HasSuffix(path, ".json") {
		eng, err := fuzzyfind.Load(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		return eng, nil
	}

	entries, err := loadCorpus(path)
	if err != nil {
		return nil, err
	}
	items, fields := toItems(entries)
	eng, err := fuzzyfind.Build(cfg, fields, items)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	return eng, nil
}
