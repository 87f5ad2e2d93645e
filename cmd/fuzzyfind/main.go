// Command fuzzyfind is a small demo CLI over the fuzzyfind engine: it
// builds an index from a YAML corpus, saves/loads it as a snapshot, and
// runs one-shot searches against either.
//
// Usage:
//
//	fuzzyfind build corpus.yaml index.json
//	fuzzyfind search index.json "query terms"
//	fuzzyfind search corpus.yaml "query terms"
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
