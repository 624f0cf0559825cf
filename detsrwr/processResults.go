package detsrwr

import (
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Result is the final fixed point score of one node
type Result struct {
	Node  int
	Score sdk.Dec
	PRank sdk.Dec
	NRank sdk.Dec
}

// SortResults orders by score, highest first, then by node index
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if !results[i].Score.Equal(results[j].Score) {
			return results[i].Score.GT(results[j].Score)
		}
		return results[i].Node < results[j].Node
	})
}

func processResults(s State) []Result {
	results := make([]Result, len(s.P))
	for i := range results {
		results[i] = Result{Node: i, Score: s.Net[i], PRank: s.P[i], NRank: s.N[i]}
	}
	SortResults(results)
	return results
}
