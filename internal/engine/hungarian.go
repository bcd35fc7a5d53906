package engine

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// minCostAssignment solves the rectangular assignment problem over a cost
// matrix with rows <= cols, returning for each row the column it is matched
// to. This is the O(rows²·cols) Hungarian method with row/column potentials
// and shortest augmenting paths; given the same matrix it always produces the
// same matching, which gives the solver its deterministic tie-breaking.
func minCostAssignment(cost *mat.Dense) []int {
	n, m := cost.Dims()

	u := make([]float64, n+1)
	v := make([]float64, m+1)
	match := make([]int, m+1) // match[j] = row occupying column j, 0 = free
	way := make([]int, m+1)

	for i := 1; i <= n; i++ {
		match[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0 := match[j0]
			delta := math.Inf(1)
			j1 := 0

			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= m; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if match[j0] == 0 {
				break
			}
		}

		// Augment along the alternating path back to the free column
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	result := make([]int, n)
	for j := 1; j <= m; j++ {
		if match[j] > 0 {
			result[match[j]-1] = j - 1
		}
	}
	return result
}
