package graph

import (
	"github.com/sybilscope/sybilscope/model"
)

// Build traverses logs once, interning every actor and target as a node and
// recording a directed edge for each event whose action is a positive
// action. Node insertion order follows first sighting in logs, which is
// what makes cluster numbering deterministic given input order (design doc §4.2,
// §9, §5 Determinism).
func Build(logs []model.Event, settings model.Settings) *Graph {
	g := &Graph{
		idOf: make(map[string]NodeIndex, len(logs)),
	}

	intern := func(id string) NodeIndex {
		if idx, ok := g.idOf[id]; ok {
			return idx
		}
		idx := NodeIndex(len(g.ids))
		g.idOf[id] = idx
		g.ids = append(g.ids, id)
		g.out = append(g.out, nil)
		g.in = append(g.in, nil)
		g.edgeActions = append(g.edgeActions, nil)
		return idx
	}

	for _, ev := range logs {
		a := intern(ev.Actor)
		t := intern(ev.Target)
		if !settings.IsPositiveAction(ev.Action) {
			continue
		}
		g.out[a] = append(g.out[a], t)
		g.in[t] = append(g.in[t], a)
		g.edgeActions[a] = append(g.edgeActions[a], ev.Action)
	}

	return g
}

// Elements renders the caller-facing visualization view: one node per
// interned actor/target, one edge record per positive-action occurrence
// (design doc §3, §4.2; invariant "len(elements.edges) = count(logs with action
// in positiveActions)").
func (g *Graph) Elements() model.Elements {
	nodes := make([]model.Node, len(g.ids))
	for i, id := range g.ids {
		nodes[i] = model.Node{ID: id, Label: id}
	}

	var edges []model.Edge
	for from := range g.out {
		for k, to := range g.out[from] {
			edges = append(edges, model.Edge{
				From:   g.ids[from],
				To:     g.ids[to],
				Action: g.edgeActions[from][k],
			})
		}
	}

	return model.Elements{Nodes: nodes, Edges: edges}
}
