package engine

import (
	"math"

	"github.com/gaffertool/gaffer/internal/roles"
	"github.com/gaffertool/gaffer/internal/squad"
)

// AssignmentScore computes the weighted mean of a player's ratings over the
// role's ability profile. The function is pure and total: missing ratings read
// as zero, and aggregation saturates at the float64 maximum instead of
// overflowing to +Inf. Abilities are folded in vocabulary order so repeated
// calls are bit-identical.
func AssignmentScore(p squad.Player, role roles.Role) float64 {
	var weighted, totalWeight float64
	for _, ability := range squad.Abilities() {
		weight, ok := role.Weights[ability]
		if !ok {
			continue
		}
		weighted = saturatingAdd(weighted, weight*p.Rating(ability))
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight
}

// saturatingAdd adds two non-negative values, clamping at the float64 maximum
func saturatingAdd(a, b float64) float64 {
	sum := a + b
	if math.IsInf(sum, 1) {
		return math.MaxFloat64
	}
	return sum
}

// saturatingMul multiplies two non-negative values, clamping at the float64 maximum
func saturatingMul(a, b float64) float64 {
	prod := a * b
	if math.IsInf(prod, 1) {
		return math.MaxFloat64
	}
	return prod
}
