package srwr

import "github.com/pkg/errors"

var (
	// ErrSeedOutOfRange is returned when a seed index is outside [0, N)
	ErrSeedOutOfRange = errors.New("seed node out of range")
	// ErrDegenerateGraph is returned for graphs with fewer than two nodes,
	// where dangling mass has nowhere to go
	ErrDegenerateGraph = errors.New("graph needs at least two nodes")
	// ErrInvalidWeight is returned when a graph has a NaN or infinite link weight,
	// or a node whose link weights add up to infinity
	ErrInvalidWeight = errors.New("invalid link weight")
	// ErrInvalidParams is returned for damping, beta, gamma or iteration settings out of range
	ErrInvalidParams = errors.New("invalid ranking parameters")
	// ErrNotConverged is returned when threshold mode hits MaxIterations.
	// The ranking returned alongside it is built from the last round.
	ErrNotConverged = errors.New("ranking did not converge")
	// ErrAlreadyRun is returned by a second call to Run
	ErrAlreadyRun = errors.New("ranker has already run")
)
