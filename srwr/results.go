package srwr

import "sort"

// Result is the final score of one node.
// Score is PRank - NRank
type Result struct {
	Node  int
	Score float64
	PRank float64
	NRank float64
}

// SortResults orders results by score, highest first.
// equal scores are ordered by node index
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Node < results[j].Node
	})
}

func processResults(s State) []Result {
	results := make([]Result, s.Size())
	for i := range results {
		results[i] = Result{
			Node:  i,
			Score: s.Net[i],
			PRank: s.P[i],
			NRank: s.N[i],
		}
	}
	SortResults(results)
	return results
}
