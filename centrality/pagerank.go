package centrality

import "github.com/sybilscope/sybilscope/graph"

const (
	pageRankIterations = 20
	pageRankDamping    = 0.85
)

// PageRank computes directed PageRank over g's positive-action edges with
// dangling-mass redistribution: 20 iterations, damping 0.85, uniform
// teleport (1-d)/N, and dangling mass d·Σ_sinks r(v)/N spread uniformly
// over every node (design doc §4.4).
func PageRank(g *graph.Graph) map[graph.NodeIndex]float64 {
	n := g.NumNodes()
	scores := make(map[graph.NodeIndex]float64, n)
	if n == 0 {
		return scores
	}

	outDegree := make([]int, n)
	for i := 0; i < n; i++ {
		outDegree[i] = len(g.Out(graph.NodeIndex(i)))
	}

	r := make([]float64, n)
	for i := range r {
		r[i] = 1.0 / float64(n)
	}

	teleport := (1 - pageRankDamping) / float64(n)
	next := make([]float64, n)

	for iter := 0; iter < pageRankIterations; iter++ {
		var danglingMass float64
		for i := 0; i < n; i++ {
			if outDegree[i] == 0 {
				danglingMass += r[i]
			}
		}
		danglingShare := pageRankDamping * danglingMass / float64(n)

		for i := 0; i < n; i++ {
			next[i] = teleport + danglingShare
		}
		for i := 0; i < n; i++ {
			if outDegree[i] == 0 {
				continue
			}
			share := pageRankDamping * r[i] / float64(outDegree[i])
			for _, to := range g.Out(graph.NodeIndex(i)) {
				next[to] += share
			}
		}
		r, next = next, r
	}

	for i := 0; i < n; i++ {
		scores[graph.NodeIndex(i)] = r[i]
	}
	return scores
}
