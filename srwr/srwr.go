// Package srwr is a signed random walk with restart:
// a personalized ranking over an undirected graph with trust and distrust links.
// all scores stem from the seed node, so nodes cannot raise their own rank
// without trust from the seed's neighbourhood
// can be used for recommendation, reputation, voting
// notes:
// dangling nodes spread their score over every other node through one global total,
// each node gets that total back minus its own share
package srwr

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Ranker drives the propagation rounds of one ranking run.
// A Ranker is not safe for concurrent use and can only Run once.
type Ranker struct {
	// Logger receives per-round residuals at debug level, nil disables logging
	Logger *slog.Logger

	graph    Graph
	params   Params
	state    State
	rounds   int
	residual float64
	done     bool
}

// Stats describes the progress of a run.
type Stats struct {
	Rounds       int
	Residual     float64 // residual of the last round
	PositiveMass float64
	NegativeMass float64
}

// New returns a ranker that runs DefaultIterations rounds.
// damping is the probability the walker follows a link, usually 0.85.
func New(graph Graph, damping float64, seed int, beta, gamma float64) (*Ranker, error) {
	return NewWithTolerance(graph, damping, seed, -1, beta, gamma)
}

// NewWithTolerance returns a ranker that runs until the residual is at most
// tolerance. tolerance <= 0 runs DefaultIterations rounds instead.
func NewWithTolerance(graph Graph, damping float64, seed int, tolerance, beta, gamma float64) (*Ranker, error) {
	params := DefaultParams()
	params.Damping = damping
	params.Tolerance = tolerance
	params.Beta = beta
	params.Gamma = gamma
	return NewWithParams(graph, seed, params)
}

// NewWithParams returns a ranker seeded from a single node.
func NewWithParams(graph Graph, seed int, params Params) (*Ranker, error) {
	if err := checkGraph(graph); err != nil {
		return nil, err
	}
	state, err := NewState(graph.Size(), seed)
	if err != nil {
		return nil, err
	}
	return newRanker(graph, state, params)
}

// NewPersonalized returns a ranker that restarts to several nodes,
// in proportion to the given weights.
func NewPersonalized(graph Graph, restart map[int]float64, params Params) (*Ranker, error) {
	if err := checkGraph(graph); err != nil {
		return nil, err
	}
	state, err := NewPersonalizedState(graph.Size(), restart)
	if err != nil {
		return nil, err
	}
	return newRanker(graph, state, params)
}

func newRanker(graph Graph, state State, params Params) (*Ranker, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Ranker{
		graph:  graph,
		params: params,
		state:  state,
	}, nil
}

func checkGraph(graph Graph) error {
	if graph == nil {
		return errors.Wrap(ErrDegenerateGraph, "nil graph")
	}
	if n := graph.Size(); n <= 1 {
		return errors.Wrapf(ErrDegenerateGraph, "graph size %d", n)
	}
	for i := 0; i < graph.Size(); i++ {
		links, _ := graph.Outlinks(i)
		var sum float64
		for _, e := range links {
			if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
				return errors.Wrapf(ErrInvalidWeight, "link %d -> %d has weight %v", i, e.Target, e.Weight)
			}
			sum += math.Abs(e.Weight)
		}
		if math.IsInf(sum, 0) {
			return errors.Wrapf(ErrInvalidWeight, "links of node %d overflow", i)
		}
	}
	return nil
}

// Run computes the ranking and returns every node sorted by net score.
// In threshold mode a run that hits MaxIterations returns the ranking of the
// last round together with an error wrapping ErrNotConverged.
func (r *Ranker) Run() ([]Result, error) {
	if r.done {
		return nil, ErrAlreadyRun
	}
	r.done = true

	var err error
	if r.params.Threshold() {
		err = r.untilConverged()
	} else {
		for i := 0; i < r.params.Iterations; i++ {
			r.step()
		}
	}
	return processResults(r.state), err
}

// Rank runs the ranking and hands each node to callback, highest score first.
func (r *Ranker) Rank(callback func(node int, score float64)) error {
	results, err := r.Run()
	if errors.Is(err, ErrAlreadyRun) {
		return err
	}
	for _, res := range results {
		callback(res.Node, res.Score)
	}
	return err
}

// State returns a copy of the current scores.
func (r *Ranker) State() State {
	return r.state.Clone()
}

// Stats returns the round count, last residual and total score mass.
func (r *Ranker) Stats() Stats {
	return Stats{
		Rounds:       r.rounds,
		Residual:     r.residual,
		PositiveMass: floats.Sum(r.state.P),
		NegativeMass: floats.Sum(r.state.N),
	}
}

func (r *Ranker) step() {
	r.state, r.residual = Propagate(r.graph, r.state, r.params)
	r.rounds++
	if r.Logger != nil {
		r.Logger.Debug("srwr round", "iteration", r.rounds, "residual", r.residual)
	}
}

func (r *Ranker) untilConverged() error {
	r.residual = math.MaxFloat64
	for r.residual > r.params.Tolerance {
		if r.rounds >= r.params.MaxIterations {
			if r.Logger != nil {
				r.Logger.Warn("srwr did not converge",
					"rounds", r.rounds, "residual", r.residual, "tolerance", r.params.Tolerance)
			}
			return errors.Wrapf(ErrNotConverged, "residual %g after %d rounds, tolerance %g",
				r.residual, r.rounds, r.params.Tolerance)
		}
		r.step()
	}
	return nil
}
