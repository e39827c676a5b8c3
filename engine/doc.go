// Package engine wires the Profile Aggregator, Graph Builder, Component
// Analyzer, Centrality Pack, Temporal Detectors, Behavioral Detectors, and
// Scorer into one pure transformation:
// analyze(logs, settings) -> {elements, clusters, waves, scorecards}.
//
// Analyze performs no I/O and holds no state across calls; its only
// side-channel is the optional onProgress callback.
package engine
