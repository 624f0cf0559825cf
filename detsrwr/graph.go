// Package detsrwr is a deterministic implementation of signed random walk with restart.
// scores are fixed point decimals with 18 digits of precision, so a run gives
// the same bits on every platform
// can be used where rankings must be reproduced, eg. on chain
// the rules and modes are the same as in package srwr
package detsrwr

import (
	"math"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/relevant-community/signedrank/srwr"
)

// Decimals is the precision used in computation
const Decimals = sdk.Precision

// Edge is an outgoing link with a fixed point weight
type Edge struct {
	Target int
	Weight sdk.Dec
}

// Graph is the read-only adjacency source, ok == false marks a dangling node
type Graph interface {
	Size() int
	Outlinks(i int) (edges []Edge, ok bool)
}

type decGraph struct {
	links    [][]Edge
	dangling []bool
}

func (graph *decGraph) Size() int {
	return len(graph.links)
}

func (graph *decGraph) Outlinks(i int) ([]Edge, bool) {
	if graph.dangling[i] {
		return nil, false
	}
	return graph.links[i], true
}

// FromGraph converts a float graph, rounding weights down to Decimals digits
func FromGraph(g srwr.Graph) (Graph, error) {
	size := g.Size()
	graph := &decGraph{
		links:    make([][]Edge, size),
		dangling: make([]bool, size),
	}
	for i := 0; i < size; i++ {
		links, ok := g.Outlinks(i)
		if !ok {
			graph.dangling[i] = true
			continue
		}
		graph.links[i] = make([]Edge, len(links))
		for k, e := range links {
			w, err := decFromFloat(e.Weight)
			if err != nil {
				return nil, errors.Wrapf(srwr.ErrInvalidWeight, "link %d -> %d: %v", i, e.Target, err)
			}
			graph.links[i][k] = Edge{Target: e.Target, Weight: w}
		}
	}
	return graph, nil
}

// decFromFloat uses the shortest decimal form of f, cut at Decimals digits
func decFromFloat(f float64) (sdk.Dec, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return sdk.Dec{}, errors.Errorf("cannot represent %v as a decimal", f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > Decimals {
		s = s[:dot+1+Decimals]
	}
	return sdk.NewDecFromStr(s)
}
