// Package model defines the data model shared by every sybilscope package:
// the Event input record, the Settings configuration, and the AnalysisResult
// output produced by engine.Analyze.
//
// All types here are plain data — no method on a model type performs I/O,
// and none retains a reference back to the logs it was derived from. Every
// detector package (profile, graph, centrality, temporal, behavior, scoring)
// derives its own result type from []Event, Settings, or an upstream
// package's result; engine assembles those into the final AnalysisResult.
package model
