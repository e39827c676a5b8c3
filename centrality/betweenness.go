package centrality

import (
	"hash/fnv"
	"sort"

	"github.com/sybilscope/sybilscope/graph"
)

// maxBetweennessSamples caps the source set Brandes runs from; full Brandes
// is O(|V|·|E|) and the design explicitly trades exactness for a bounded,
// deterministic sample (design doc §4.4, §9 "Betweenness scalability").
const maxBetweennessSamples = 50

// Betweenness computes Brandes betweenness centrality over the undirected
// projection of g, from a deterministic sample of up to
// min(50, |V|) source nodes chosen by sorting all nodes by the 32-bit
// FNV-1a hash of their string identifier and taking the prefix — stable
// across runs regardless of node-discovery order (design doc §4.4). Raw
// accumulations are scaled by 1/|sample| and then max-normalized to [0,1];
// if the maximum is 0 every score stays 0.
func Betweenness(g *graph.Graph) map[graph.NodeIndex]float64 {
	n := g.NumNodes()
	scores := make(map[graph.NodeIndex]float64, n)
	if n == 0 {
		return scores
	}
	adj := g.UndirectedAdjacency()

	sources := sampleSources(g, n)
	raw := make([]float64, n)

	for _, s := range sources {
		brandesAccumulate(adj, s, raw)
	}

	scale := 1.0 / float64(len(sources))
	max := 0.0
	for i := range raw {
		raw[i] *= scale
		if raw[i] > max {
			max = raw[i]
		}
	}
	for i := 0; i < n; i++ {
		if max > 0 {
			scores[graph.NodeIndex(i)] = raw[i] / max
		} else {
			scores[graph.NodeIndex(i)] = 0
		}
	}
	return scores
}

// sampleSources picks min(50, |V|) nodes by ascending FNV-1a hash of their
// string identifier, breaking ties by identifier to stay fully deterministic.
func sampleSources(g *graph.Graph, n int) []graph.NodeIndex {
	type hashed struct {
		idx  graph.NodeIndex
		hash uint32
		id   string
	}
	all := make([]hashed, n)
	for i := 0; i < n; i++ {
		h := fnv.New32a()
		_, _ = h.Write([]byte(g.ID(graph.NodeIndex(i))))
		all[i] = hashed{idx: graph.NodeIndex(i), hash: h.Sum32(), id: g.ID(graph.NodeIndex(i))}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].hash != all[j].hash {
			return all[i].hash < all[j].hash
		}
		return all[i].id < all[j].id
	})

	k := maxBetweennessSamples
	if k > n {
		k = n
	}
	out := make([]graph.NodeIndex, k)
	for i := 0; i < k; i++ {
		out[i] = all[i].idx
	}
	return out
}

// brandesAccumulate runs one Brandes single-source pass from s over the
// undirected adjacency adj and adds its contribution into acc.
func brandesAccumulate(adj []map[graph.NodeIndex]struct{}, s graph.NodeIndex, acc []float64) {
	n := len(adj)

	sigma := make([]float64, n)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	var predecessors [][]graph.NodeIndex = make([][]graph.NodeIndex, n)

	sigma[s] = 1
	dist[s] = 0

	queue := make([]graph.NodeIndex, 0, n)
	queue = append(queue, s)
	var stack []graph.NodeIndex

	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		stack = append(stack, v)
		for w := range adj[v] {
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				predecessors[w] = append(predecessors[w], v)
			}
		}
	}

	delta := make([]float64, n)
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range predecessors[w] {
			delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
		}
		if w != s {
			acc[w] += delta[w]
		}
	}
}
