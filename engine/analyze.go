package engine

import (
	"github.com/google/uuid"

	"github.com/sybilscope/sybilscope/behavior"
	"github.com/sybilscope/sybilscope/centrality"
	"github.com/sybilscope/sybilscope/graph"
	"github.com/sybilscope/sybilscope/model"
	"github.com/sybilscope/sybilscope/profile"
	"github.com/sybilscope/sybilscope/scoring"
	"github.com/sybilscope/sybilscope/temporal"
)

// Stage names reported to an onProgress callback (design doc §5).
const (
	StageStart      = "start"
	StageProfiles   = "profiles"
	StageGraph      = "graph"
	StageClusters   = "clusters"
	StageWaves      = "waves"
	StageScorecards = "scorecards"
	StageDone       = "done"
)

// ProgressFunc reports staged progress. Implementations must not block;
// the engine invokes it synchronously, in-thread, between stages (design doc §5).
type ProgressFunc func(stage string, pct int)

// Analyze runs the complete pipeline over logs and returns one
// self-contained model.AnalysisResult (design doc §1, §2). onProgress may be nil.
// Analyze is deterministic and allocates no state that outlives the call;
// two calls with identical (logs, settings) produce byte-identical output
// up to floating-point reproducibility (design doc §5 Determinism), except
// for RunID, which is a fresh random UUID on every call.
func Analyze(logs []model.Event, settings model.Settings, onProgress ProgressFunc) model.AnalysisResult {
	report := func(stage string, pct int) {
		if onProgress != nil {
			onProgress(stage, pct)
		}
	}

	report(StageStart, 0)

	profiles := profile.Aggregate(logs)
	report(StageProfiles, 15)

	g := graph.Build(logs, settings)
	elements := g.Elements()
	report(StageGraph, 30)

	clusters := g.Components(settings.MinClusterSize)
	report(StageClusters, 45)

	pageRank := centrality.PageRank(g)
	eigen := centrality.Eigenvector(g)
	betweenness := centrality.Betweenness(g)

	temporalResult := temporal.Detect(logs, settings)
	report(StageWaves, 65)

	signals := behavior.Detect(logs, settings, profiles)

	scorecards := scoring.Score(logs, settings, g, clusters, temporalResult, signals, pageRank, eigen, betweenness)
	report(StageScorecards, 90)

	result := model.AnalysisResult{
		RunID:      uuid.New(),
		Elements:   elements,
		Clusters:   clusters,
		Waves:      temporalResult.Waves,
		Scorecards: scorecards,
	}

	report(StageDone, 100)
	return result
}
