package main

import (
	"fmt"

	"github.com/spf13/cobra"

	fuzzyfind "github.com/Vedant9500/fuzzyfind"
)

var buildCmd = &cobra.Command{
	Use:   "build <corpus.yaml> <index.json>",
	Short: "Build an index from a YAML corpus and save it as a snapshot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		corpusPath, outPath := args[0], args[1]

		entries, err := loadCorpus(corpusPath)
		if err != nil {
			return err
		}
		items, fields := toItems(entries)

		languages, _ := cmd.Flags().GetStringSlice("languages")
		performance, _ := cmd.Flags().GetString("performance")

		cfg := fuzzyfind.DefaultConfig()
		cfg.Languages = languages
		cfg.Performance = performance

		eng, err := fuzzyfind.Build(cfg, fields, items)
		if err != nil {
			return fmt.Errorf("build index: %w", err)
		}

		if err := eng.Save(outPath); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}

		fmt.Printf("indexed %d documents from %s into %s\n", eng.DocCount(), corpusPath, outPath)
		return nil
	},
}
