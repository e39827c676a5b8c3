// Package graph builds the directed positive-action interaction graph from
// an event log and discovers its undirected structure.
//
// The graph is built once, from a fixed event vector, inside a
// single-threaded pure transformation — no concurrent mutation, no
// incremental updates across goroutines. Vertex identity is carried as a
// dense int32 index behind an interning table from actor/target string to
// index, rather than as string-keyed nested maps: adjacency is
// actorIndex → []actorIndex. That shape is what makes Components cheap to
// run once per analyze() call.
//
// The Builder stage (builder.go) interns nodes and records positive-action
// edges in discovery order, which is what makes node iteration, and in turn
// cluster numbering, deterministic given input order. The Components stage
// (components.go) collapses the directed edge multiset to simple
// undirected adjacency and floods connected components with a BFS from
// every unvisited node.
package graph
