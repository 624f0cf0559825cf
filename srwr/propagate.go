package srwr

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// spread holds what one range of source nodes sends out during a round
type spread struct {
	ptmp, ntmp           []float64
	pdangling, ndangling float64
}

func newSpread(size int) *spread {
	return &spread{
		ptmp: make([]float64, size),
		ntmp: make([]float64, size),
	}
}

// run pushes the scores of nodes [from, to) along their links.
// dangling nodes record their share in pself/nself, which only this range writes
func (acc *spread) run(graph Graph, s State, p Params, from, to int, pself, nself []float64) {
	others := float64(s.Size() - 1)
	for i := from; i < to; i++ {
		links, ok := graph.Outlinks(i)

		// dangling node: spread over the whole network
		if !ok {
			sp := s.P[i] / others
			sn := s.N[i] / others
			pself[i] = sp
			nself[i] = sn
			acc.pdangling += sp
			acc.ndangling += sn
			continue
		}

		var sum float64
		for _, e := range links {
			sum += math.Abs(e.Weight)
		}
		// links that all cancelled out carry nothing
		if sum == 0 {
			continue
		}

		for _, e := range links {
			switch {
			case e.Weight > 0:
				frac := e.Weight / sum
				acc.ptmp[e.Target] += s.P[i] * frac
				acc.ptmp[e.Target] += (1 - p.Gamma) * (s.N[i] * frac)
				acc.ntmp[e.Target] += p.Gamma * (s.N[i] * frac)
			case e.Weight < 0:
				frac := -e.Weight / sum
				acc.ptmp[e.Target] += p.Beta * (s.N[i] * frac)
				acc.ntmp[e.Target] += s.P[i] * frac
				acc.ntmp[e.Target] += (1 - p.Beta) * (s.N[i] * frac)
			}
		}
	}
}

// merge adds other into acc
func (acc *spread) merge(other *spread) {
	for i := range acc.ptmp {
		acc.ptmp[i] += other.ptmp[i]
		acc.ntmp[i] += other.ntmp[i]
	}
	acc.pdangling += other.pdangling
	acc.ndangling += other.ndangling
}

// Propagate computes one round of signed random walk with restart.
// It does not modify s; the returned state shares s.Restart.
// The residual is the sum of squared changes of the net scores.
//
// s must be sized to graph and hold at least two nodes.
// With p.Workers > 1, graph.Outlinks is called from several goroutines.
func Propagate(graph Graph, s State, p Params) (State, float64) {
	size := s.Size()
	pself := make([]float64, size)
	nself := make([]float64, size)
	acc := spreadRound(graph, s, p, pself, nself)

	next := State{
		P:       make([]float64, size),
		N:       make([]float64, size),
		Net:     make([]float64, size),
		Restart: s.Restart,
	}

	var residual float64
	for i := 0; i < size; i++ {
		// a node does not get back what it spread as a dangling node
		pRank := ((acc.ptmp[i] + acc.pdangling - pself[i]) * p.Damping) + (s.Restart[i] * (1 - p.Damping))
		// restart never adds distrust
		nRank := (acc.ntmp[i] + acc.ndangling - nself[i]) * p.Damping
		net := pRank - nRank

		d := s.Net[i] - net
		residual += d * d

		next.P[i] = pRank
		next.N[i] = nRank
		next.Net[i] = net
	}
	return next, residual
}

// spreadRound runs the edge pass, split into contiguous node ranges when
// p.Workers > 1. partial results are merged in range order after all
// workers finish, so a fixed worker count always gives the same sums
func spreadRound(graph Graph, s State, p Params, pself, nself []float64) *spread {
	size := s.Size()
	workers := p.Workers
	if workers > size {
		workers = size
	}
	if workers <= 1 {
		acc := newSpread(size)
		acc.run(graph, s, p, 0, size, pself, nself)
		return acc
	}

	chunk := (size + workers - 1) / workers
	parts := make([]*spread, 0, workers)
	var eg errgroup.Group
	for from := 0; from < size; from += chunk {
		from, to := from, min(from+chunk, size)
		part := newSpread(size)
		parts = append(parts, part)
		eg.Go(func() error {
			part.run(graph, s, p, from, to, pself, nself)
			return nil
		})
	}
	// workers never fail, Wait only joins them
	_ = eg.Wait()

	acc := parts[0]
	for _, part := range parts[1:] {
		acc.merge(part)
	}
	return acc
}
