package graph

// NodeIndex is a dense, zero-based vertex identifier assigned in
// first-sighting order as the event log is scanned once (design doc §4.2
// ordering invariant). It stands in for the string actor/target ID inside
// every structural algorithm in this package and in centrality.
type NodeIndex int32

// Graph is the positive-action interaction graph: nodes are every actor and
// target seen in the log, directed edges are the occurrences of an action
// in Settings.PositiveActions. Multiple occurrences of the same
// (actor, action, target) triple are kept — Graph is a multigraph — but
// every structural algorithm in this package collapses them to simple
// undirected adjacency first (design doc §4.2, §4.3).
type Graph struct {
	// idOf interns a node's string identifier to its NodeIndex; ids is the
	// inverse mapping, indexed by NodeIndex, so iteration order matches
	// discovery order.
	idOf map[string]NodeIndex
	ids  []string

	// out[i] lists, in insertion order, every directed positive-action edge
	// leaving node i. in[i] is the symmetric incoming list. Both may repeat
	// a target (multigraph).
	out [][]NodeIndex
	in  [][]NodeIndex

	// edgeActions[i] parallels out[i]: the action label of that edge, kept
	// so Elements() can reproduce one edge record per positive action.
	edgeActions [][]string
}

// NumNodes returns the number of interned nodes.
func (g *Graph) NumNodes() int { return len(g.ids) }

// ID returns the string identifier for a NodeIndex.
func (g *Graph) ID(idx NodeIndex) string { return g.ids[idx] }

// IndexOf returns the NodeIndex for a string identifier and whether it was
// found.
func (g *Graph) IndexOf(id string) (NodeIndex, bool) {
	idx, ok := g.idOf[id]
	return idx, ok
}

// Out returns the directed out-neighbors of idx (one entry per edge;
// targets may repeat).
func (g *Graph) Out(idx NodeIndex) []NodeIndex { return g.out[idx] }

// In returns the directed in-neighbors of idx (one entry per edge; sources
// may repeat).
func (g *Graph) In(idx NodeIndex) []NodeIndex { return g.in[idx] }

// NumEdges returns the total number of directed positive-action edges.
func (g *Graph) NumEdges() int {
	n := 0
	for _, o := range g.out {
		n += len(o)
	}
	return n
}
