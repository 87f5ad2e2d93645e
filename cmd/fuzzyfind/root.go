package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fuzzyfind",
	Short: "fuzzyfind is a demo CLI over the fuzzyfind fuzzy-search engine",
	Long: `fuzzyfind builds an in-memory fuzzy-search index from a YAML corpus
and runs ranked, typo-tolerant queries against it.

  fuzzyfind build corpus.yaml index.json
  fuzzyfind search index.json "query terms"`,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(searchCmd)

	rootCmd.PersistentFlags().StringSlice("languages", []string{"en"}, "language tags to build/search with")
	rootCmd.PersistentFlags().String("performance", "balanced", "performance preset: fast|balanced|comprehensive")
}
