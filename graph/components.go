package graph

import (
	"sort"

	"github.com/sybilscope/sybilscope/model"
)

// undirectedAdjacency collapses the directed, multigraph-valued edge set to
// simple undirected adjacency: each unordered pair of nodes contributes at
// most one neighbor relation in each direction, regardless of how many
// positive-action edges or which direction produced it (design doc §4.3).
func (g *Graph) undirectedAdjacency() []map[NodeIndex]struct{} {
	adj := make([]map[NodeIndex]struct{}, g.NumNodes())
	for i := range adj {
		adj[i] = make(map[NodeIndex]struct{})
	}
	link := func(a, b NodeIndex) {
		if a == b {
			return
		}
		adj[a][b] = struct{}{}
		adj[b][a] = struct{}{}
	}
	for from := range g.out {
		for _, to := range g.out[from] {
			link(NodeIndex(from), to)
		}
	}
	return adj
}

// Components discovers the connected components of the undirected
// projection of the positive-action graph: a BFS flood fill from every
// unvisited node. Components smaller than minClusterSize are dropped.
// Remaining components receive monotonically increasing ClusterIDs in
// discovery order.
func (g *Graph) Components(minClusterSize int) []model.Cluster {
	adj := g.undirectedAdjacency()
	visited := make([]bool, g.NumNodes())
	var clusters []model.Cluster
	var nextID model.ClusterID

	for start := 0; start < g.NumNodes(); start++ {
		if visited[start] {
			continue
		}
		// BFS collects one component's member set.
		queue := []NodeIndex{NodeIndex(start)}
		visited[start] = true
		var members []NodeIndex
		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			members = append(members, cur)
			for nb := range adj[cur] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}

		if len(members) < minClusterSize {
			continue
		}

		clusters = append(clusters, g.buildCluster(nextID, members, adj))
		nextID++
	}

	return clusters
}

// buildCluster computes density, conductance, and external/internal edge
// counts for one component (design doc §4.3).
func (g *Graph) buildCluster(id model.ClusterID, members []NodeIndex, adj []map[NodeIndex]struct{}) model.Cluster {
	inSet := make(map[NodeIndex]struct{}, len(members))
	for _, m := range members {
		inSet[m] = struct{}{}
	}

	internalDegreeSum, external := 0, 0
	for _, m := range members {
		for nb := range adj[m] {
			if _, ok := inSet[nb]; ok {
				internalDegreeSum++
			} else {
				external++
			}
		}
	}
	internal := internalDegreeSum / 2

	n := len(members)
	var density float64
	if pairs := n * (n - 1) / 2; pairs > 0 {
		density = float64(internal) / float64(pairs)
	}

	var conductance float64
	if denom := internal + external; denom > 0 {
		conductance = float64(external) / float64(denom)
	}

	names := make([]string, n)
	for i, m := range members {
		names[i] = g.ID(m)
	}
	sort.Strings(names)

	return model.Cluster{
		ID:            id,
		Members:       names,
		Density:       density,
		Conductance:   conductance,
		ExternalEdges: external,
		InternalEdges: internal,
	}
}

// Degree returns the undirected degree of idx within adj, used by the
// scorer's clusterIsolationScore (design doc §4.7).
func Degree(adj []map[NodeIndex]struct{}, idx NodeIndex) int { return len(adj[idx]) }

// UndirectedAdjacency exposes undirectedAdjacency for callers outside this
// package (the scorer needs per-actor degree within its cluster).
func (g *Graph) UndirectedAdjacency() []map[NodeIndex]struct{} { return g.undirectedAdjacency() }
