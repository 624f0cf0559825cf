package detsrwr

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FtoD converts a float64 to a Dec, panics on NaN and infinities
func FtoD(n float64) sdk.Dec {
	d, err := decFromFloat(n)
	if err != nil {
		panic(err)
	}
	return d
}

// DtoF converts a Dec back to the nearest float64, for display
func DtoF(d sdk.Dec) float64 {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// NewHelper is a helper that allows use of floats
func NewHelper(graph Graph, damping float64, seed int, beta, gamma float64) (*Ranker, error) {
	return New(graph, FtoD(damping), seed, FtoD(beta), FtoD(gamma))
}
