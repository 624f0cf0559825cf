package srwr

import (
	"math"

	"github.com/pkg/errors"
)

// State holds the positive and negative score of every node.
// Net[i] is always P[i] - N[i]. Restart is never modified after construction.
type State struct {
	P       []float64
	N       []float64
	Net     []float64
	Restart []float64
}

// NewState puts all restart and positive mass on the seed node.
func NewState(size, seed int) (State, error) {
	if seed < 0 || seed >= size {
		return State{}, errors.Wrapf(ErrSeedOutOfRange, "seed %d, graph size %d", seed, size)
	}
	return NewPersonalizedState(size, map[int]float64{seed: 1})
}

// NewPersonalizedState initializes a state from a restart vector given as node -> weight.
// Weights are not normalized; the walker restarts to each node in proportion
// to its weight and every listed node starts with that much positive score.
func NewPersonalizedState(size int, restart map[int]float64) (State, error) {
	s := State{
		P:       make([]float64, size),
		N:       make([]float64, size),
		Net:     make([]float64, size),
		Restart: make([]float64, size),
	}
	var total float64
	for i, w := range restart {
		if i < 0 || i >= size {
			return State{}, errors.Wrapf(ErrSeedOutOfRange, "seed %d, graph size %d", i, size)
		}
		if !(w >= 0) || math.IsInf(w, 0) {
			return State{}, errors.Wrapf(ErrInvalidParams, "restart weight %v for node %d", w, i)
		}
		s.P[i] = w
		s.Net[i] = w
		s.Restart[i] = w
		total += w
	}
	if total == 0 {
		return State{}, errors.Wrap(ErrInvalidParams, "restart vector has no mass")
	}
	return s, nil
}

// Size returns the number of nodes.
func (s State) Size() int {
	return len(s.P)
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		P:       append([]float64(nil), s.P...),
		N:       append([]float64(nil), s.N...),
		Net:     append([]float64(nil), s.Net...),
		Restart: append([]float64(nil), s.Restart...),
	}
}
