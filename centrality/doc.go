// Package centrality computes the three graph-centrality measures that feed
// a scorecard's pagerank, eigenCentrality, and betweenness fields: directed
// PageRank with dangling-mass redistribution, undirected power-iteration
// eigenvector centrality, and a Brandes betweenness computed from a
// deterministic hash-sampled source set.
//
// The eigenvector solver uses an iterate-then-normalize power iteration
// down to the single dominant eigenvector rather than a full symmetric
// eigendecomposition; vector arithmetic (dot product, L2 norm) is
// delegated to gonum.org/v1/gonum/floats rather than hand-rolled.
package centrality
