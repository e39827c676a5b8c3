// Package scoring implements the Scorer (design doc §4.7): it fuses the graph,
// centrality, temporal, and behavioral signals already computed by the
// rest of the engine into one model.Scorecard per actor, with a clamped
// composite sybilScore and an ordered, human-readable reasons list.
//
// Score takes every upstream collaborator's output by value — it never
// recomputes them — and is itself a pure function, mirroring the
// reference habit of keeping the assembly step free of algorithmic logic.
package scoring
