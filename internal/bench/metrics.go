package bench

// Metrics holds evaluation results for a normalizer over a set of pairs.
type Metrics struct {
	Total       int
	ExactMatch  int
	CharErrors  int
	CharTotal   int
	ExactRate   float64
	CharErrRate float64
}

// Evaluate runs normalize over each pair and compares against the expected
// output. Character error rate is edit distance over total expected runes.
func Evaluate(pairs []Pair, normalize func(string) string) Metrics {
	var m Metrics

	for _, p := range pairs {
		got := normalize(p.Raw)
		want := p.Want

		m.Total++
		if got == want {
			m.ExactMatch++
		}
		m.CharErrors += editDistance([]rune(got), []rune(want))
		m.CharTotal += len([]rune(want))
	}

	if m.Total > 0 {
		m.ExactRate = float64(m.ExactMatch) / float64(m.Total)
	}
	if m.CharTotal > 0 {
		m.CharErrRate = float64(m.CharErrors) / float64(m.CharTotal)
	}
	return m
}

// Combine aggregates metrics from several sets.
func Combine(all []Metrics) Metrics {
	var m Metrics
	for _, x := range all {
		m.Total += x.Total
		m.ExactMatch += x.ExactMatch
		m.CharErrors += x.CharErrors
		m.CharTotal += x.CharTotal
	}
	if m.Total > 0 {
		m.ExactRate = float64(m.ExactMatch) / float64(m.Total)
	}
	if m.CharTotal > 0 {
		m.CharErrRate = float64(m.CharErrors) / float64(m.CharTotal)
	}
	return m
}

// editDistance computes the Levenshtein distance between two rune slices
// using a two-row dynamic program.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
