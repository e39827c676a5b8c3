package centrality

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sybilscope/sybilscope/graph"
)

// eigenIterations is the fixed sweep count: 20 iterations of v ← A·v
// followed by L2 normalization.
const eigenIterations = 20

// Eigenvector computes normalized eigenvector centrality over the
// undirected projection of g, starting from the all-ones vector. It never
// fails: a graph with zero nodes yields an empty map, and a degenerate
// all-zero iterate (an edgeless graph) leaves every score at 0.
func Eigenvector(g *graph.Graph) map[graph.NodeIndex]float64 {
	n := g.NumNodes()
	scores := make(map[graph.NodeIndex]float64, n)
	if n == 0 {
		return scores
	}

	adj := g.UndirectedAdjacency()

	// Stage 1: initialize v to all-ones, the design-mandated starting vector.
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}

	// Stage 2: iterate v ← A·v, then L2-normalize.
	next := make([]float64, n)
	for iter := 0; iter < eigenIterations; iter++ {
		for i := 0; i < n; i++ {
			next[i] = 0
		}
		for i := 0; i < n; i++ {
			for nb := range adj[graph.NodeIndex(i)] {
				next[i] += v[nb]
			}
		}
		norm := floats.Norm(next, 2)
		if norm == 0 {
			// Degenerate: no edges reachable from the current iterate.
			// Leave v as-is (all zero stays zero) and stop early.
			v, next = next, v
			break
		}
		floats.Scale(1.0/norm, next)
		v, next = next, v
	}

	// Stage 3: publish per-node scores.
	for i := 0; i < n; i++ {
		scores[graph.NodeIndex(i)] = v[i]
	}
	return scores
}
