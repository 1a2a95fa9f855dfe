// darija-bench evaluates the chat-alphabet normalizer against a parallel
// corpus of raw/expected line pairs.
package main

import (
	"flag"
	"fmt"
	"os"

	darija "github.com/jamesainslie/go-darija"
	"github.com/jamesainslie/go-darija/internal/bench"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "testdata/corpus", "Directory containing corpus .tsv files")
		ablate    = flag.Bool("ablate", false, "Also evaluate with each substitution pass disabled")
	)
	flag.Parse()

	sets, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}

	total := 0
	for _, set := range sets {
		total += len(set.Pairs)
	}
	fmt.Printf("Loaded %d sets (%d pairs) from %s\n\n", len(sets), total, *corpusDir)

	if *ablate {
		runAblation(sets)
		return
	}
	runSingle(sets)
}

func runSingle(sets []*bench.Set) {
	var per []bench.Metrics
	for _, set := range sets {
		m := bench.Evaluate(set.Pairs, darija.Normalize)
		per = append(per, m)
		printMetrics(set.ID, m)
	}
	fmt.Println()
	printMetrics("TOTAL", bench.Combine(per))
}

func runAblation(sets []*bench.Set) {
	results, err := bench.Ablate(sets, darija.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running ablation: %v\n", err)
		os.Exit(1)
	}
	for _, r := range results {
		printMetrics(r.Variant, r.Metrics)
	}
}

func printMetrics(name string, m bench.Metrics) {
	fmt.Printf("%-16s exact %4d/%-4d (%.1f%%)  CER %.3f\n",
		name, m.ExactMatch, m.Total, 100*m.ExactRate, m.CharErrRate)
}
