package detsrwr

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/relevant-community/signedrank/srwr"
)

// State holds fixed point positive, negative and net scores
type State struct {
	P       []sdk.Dec
	N       []sdk.Dec
	Net     []sdk.Dec
	Restart []sdk.Dec
}

// NewState puts all restart and positive mass on the seed node
func NewState(size, seed int) (State, error) {
	if seed < 0 || seed >= size {
		return State{}, errors.Wrapf(srwr.ErrSeedOutOfRange, "seed %d, graph size %d", seed, size)
	}
	s := State{
		P:       zeros(size),
		N:       zeros(size),
		Net:     zeros(size),
		Restart: zeros(size),
	}
	s.P[seed] = sdk.OneDec()
	s.Net[seed] = sdk.OneDec()
	s.Restart[seed] = sdk.OneDec()
	return s, nil
}

func zeros(size int) []sdk.Dec {
	v := make([]sdk.Dec, size)
	for i := range v {
		v[i] = sdk.ZeroDec()
	}
	return v
}

// Propagate computes one round, see srwr.Propagate.
// sdk.Dec operations allocate new values, so s is never modified.
func Propagate(graph Graph, s State, p Params) (State, sdk.Dec) {
	size := len(s.P)
	others := int64(size - 1)
	one := sdk.OneDec()

	ptmp, ntmp := zeros(size), zeros(size)
	pself, nself := zeros(size), zeros(size)
	pdangling, ndangling := sdk.ZeroDec(), sdk.ZeroDec()

	for i := 0; i < size; i++ {
		links, ok := graph.Outlinks(i)
		if !ok {
			pself[i] = s.P[i].QuoInt64(others)
			nself[i] = s.N[i].QuoInt64(others)
			pdangling = pdangling.Add(pself[i])
			ndangling = ndangling.Add(nself[i])
			continue
		}

		sum := sdk.ZeroDec()
		for _, e := range links {
			sum = sum.Add(e.Weight.Abs())
		}
		if sum.IsZero() {
			continue
		}

		for _, e := range links {
			if e.Weight.IsZero() {
				continue
			}
			frac := e.Weight.Abs().Quo(sum)
			pShare := s.P[i].Mul(frac)
			nShare := s.N[i].Mul(frac)
			if e.Weight.IsPositive() {
				ptmp[e.Target] = ptmp[e.Target].Add(pShare).Add(one.Sub(p.Gamma).Mul(nShare))
				ntmp[e.Target] = ntmp[e.Target].Add(p.Gamma.Mul(nShare))
			} else {
				ptmp[e.Target] = ptmp[e.Target].Add(p.Beta.Mul(nShare))
				ntmp[e.Target] = ntmp[e.Target].Add(pShare).Add(one.Sub(p.Beta).Mul(nShare))
			}
		}
	}

	next := State{
		P:       make([]sdk.Dec, size),
		N:       make([]sdk.Dec, size),
		Net:     make([]sdk.Dec, size),
		Restart: s.Restart,
	}
	residual := sdk.ZeroDec()
	restartShare := one.Sub(p.Damping)
	for i := 0; i < size; i++ {
		next.P[i] = ptmp[i].Add(pdangling).Sub(pself[i]).Mul(p.Damping).Add(s.Restart[i].Mul(restartShare))
		next.N[i] = ntmp[i].Add(ndangling).Sub(nself[i]).Mul(p.Damping)
		next.Net[i] = next.P[i].Sub(next.N[i])

		d := s.Net[i].Sub(next.Net[i])
		residual = residual.Add(d.Mul(d))
	}
	return next, residual
}

// Ranker drives the rounds of one fixed point ranking run
type Ranker struct {
	graph    Graph
	params   Params
	state    State
	rounds   int
	residual sdk.Dec
	done     bool
}

// New returns a ranker that runs srwr.DefaultIterations rounds
func New(graph Graph, damping sdk.Dec, seed int, beta, gamma sdk.Dec) (*Ranker, error) {
	return NewWithTolerance(graph, damping, seed, sdk.NewDec(-1), beta, gamma)
}

// NewWithTolerance returns a ranker that runs until the residual is at most tolerance
func NewWithTolerance(graph Graph, damping sdk.Dec, seed int, tolerance, beta, gamma sdk.Dec) (*Ranker, error) {
	params := DefaultParams()
	params.Damping = damping
	params.Tolerance = tolerance
	params.Beta = beta
	params.Gamma = gamma
	return NewWithParams(graph, seed, params)
}

// NewWithParams returns a ranker seeded from a single node
func NewWithParams(graph Graph, seed int, params Params) (*Ranker, error) {
	if graph == nil || graph.Size() <= 1 {
		size := 0
		if graph != nil {
			size = graph.Size()
		}
		return nil, errors.Wrapf(srwr.ErrDegenerateGraph, "graph size %d", size)
	}
	state, err := NewState(graph.Size(), seed)
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Ranker{
		graph:    graph,
		params:   params,
		state:    state,
		residual: sdk.ZeroDec(),
	}, nil
}

// Run computes the ranking, see srwr.Ranker.Run
func (r *Ranker) Run() ([]Result, error) {
	if r.done {
		return nil, srwr.ErrAlreadyRun
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

// State returns the current scores
func (r *Ranker) State() State {
	return State{
		P:       append([]sdk.Dec(nil), r.state.P...),
		N:       append([]sdk.Dec(nil), r.state.N...),
		Net:     append([]sdk.Dec(nil), r.state.Net...),
		Restart: append([]sdk.Dec(nil), r.state.Restart...),
	}
}

// Rounds returns the number of rounds run and the last residual
func (r *Ranker) Rounds() (int, sdk.Dec) {
	return r.rounds, r.residual
}

func (r *Ranker) step() {
	r.state, r.residual = Propagate(r.graph, r.state, r.params)
	r.rounds++
}

func (r *Ranker) untilConverged() error {
	for {
		if r.rounds >= r.params.MaxIterations {
			return errors.Wrapf(srwr.ErrNotConverged, "residual %s after %d rounds, tolerance %s",
				r.residual, r.rounds, r.params.Tolerance)
		}
		r.step()
		if r.residual.LTE(r.params.Tolerance) {
			return nil
		}
	}
}
