package bench

import (
	"fmt"

	darija "github.com/jamesainslie/go-darija"
)

// AblationResult holds metrics for one table variant.
type AblationResult struct {
	Variant string
	Metrics Metrics
}

// Ablate evaluates the corpus with the full table and with each substitution
// pass disabled in turn. Comparing the variants shows how much of the score
// each pass contributes, and surfaces ordering bugs: with digraphs disabled,
// digit substitution corrupts every digraph that embeds a digit token.
func Ablate(sets []*Set, table *darija.Table) ([]AblationResult, error) {
	var multi, single []darija.Entry
	for _, e := range table.Entries() {
		if len(e.Token) > 1 {
			multi = append(multi, e)
		} else {
			single = append(single, e)
		}
	}

	multiOnly, err := darija.NewTable(multi)
	if err != nil {
		return nil, fmt.Errorf("building digraph-only table: %w", err)
	}
	singleOnly, err := darija.NewTable(single)
	if err != nil {
		return nil, fmt.Errorf("building digit-only table: %w", err)
	}

	variants := []struct {
		name string
		t    *darija.Table
	}{
		{"full", table},
		{"digraphs-only", multiOnly},
		{"digits-only", singleOnly},
	}

	var results []AblationResult
	for _, v := range variants {
		var per []Metrics
		for _, set := range sets {
			per = append(per, Evaluate(set.Pairs, v.t.Normalize))
		}
		results = append(results, AblationResult{
			Variant: v.name,
			Metrics: Combine(per),
		})
	}

	return results, nil
}
