package scoring

import (
	"sort"

	"github.com/sybilscope/sybilscope/behavior"
	"github.com/sybilscope/sybilscope/graph"
	"github.com/sybilscope/sybilscope/model"
	"github.com/sybilscope/sybilscope/temporal"
)

// Score builds one model.Scorecard per actor named in signals, combining
// g's structural degree/cluster membership, clusters, temporal's burst and
// velocity signals, and signals' behavioral output (design doc §4.7). logs
// supplies churnScore, the one scorer-level signal no upstream collaborator
// already derives.
func Score(logs []model.Event, settings model.Settings, g *graph.Graph, clusters []model.Cluster, temporalResult temporal.Result, signals behavior.Result, pageRank, eigen, betweenness map[graph.NodeIndex]float64) []model.Scorecard {
	clusterOf := make(map[string][]model.Cluster)
	for _, c := range clusters {
		for _, member := range c.Members {
			clusterOf[member] = append(clusterOf[member], c)
		}
	}
	adj := g.UndirectedAdjacency()

	churnCounts := make(map[string]int)
	for _, ev := range logs {
		if settings.IsChurnAction(ev.Action) {
			churnCounts[ev.Actor]++
		}
	}

	actors := make([]string, 0, len(signals))
	for actor := range signals {
		actors = append(actors, actor)
	}
	sort.Strings(actors)

	cards := make([]model.Scorecard, 0, len(actors))
	for _, actor := range actors {
		cards = append(cards, score(actor, settings, g, clusterOf[actor], adj, temporalResult, signals[actor], churnCounts[actor], pageRank, eigen, betweenness))
	}
	return cards
}

func score(actor string, settings model.Settings, g *graph.Graph, memberClusters []model.Cluster, adj []map[graph.NodeIndex]struct{}, tr temporal.Result, sig *behavior.Signals, churnScore int, pageRank, eigen, betweenness map[graph.NodeIndex]float64) model.Scorecard {
	sc := model.Scorecard{
		Actor:        actor,
		ChurnScore:   churnScore,
		TotalActions: sig.TotalActions,
		UniqueTargets: sig.UniqueTargets,

		TargetEntropy: sig.TargetEntropy,
		ActiveHours:   sig.ActiveHours,
		HourEntropy:   sig.HourEntropy,

		TopActionNgramCount: sig.TopActionNgramCount,

		SessionCount:      sig.SessionCount,
		AvgSessionMinutes: sig.AvgSessionMinutes,
		AvgGapMinutes:     sig.AvgGapMinutes,
		MaxGapMinutes:     sig.MaxGapMinutes,

		ReciprocalRate: sig.ReciprocalRate,

		Links:           sig.Links,
		SuspiciousLinks: sig.SuspiciousLinks,
		SharedLinks:     sig.SharedLinks,

		SharedWallets:     sig.SharedWallets,
		CrossAppPlatforms: sig.CrossAppPlatforms,

		ProfileAnomalyScore: sig.ProfileAnomalyScore,
		NewAccountScore:     sig.NewAccountScore,
		CircadianScore:      sig.CircadianScore,
		SharedWalletScore:   sig.SharedWalletScore,
		CrossAppScore:       sig.CrossAppScore,
		BottySessionScore:   sig.BottySessionScore,
		FraudTxScore:        sig.FraudTxScore,
		ActionSequenceRepeatScore: sig.RepeatScore,

		BioSimilarityScore: sig.BioSimilarityScore,
		HandlePatternScore: sig.HandlePatternScore,
		PhishingLinkScore:  sig.PhishingLinkScore,
		LinkDiversity:      sig.LinkDiversity,
	}

	sc.BurstActions = tr.BurstActionsByActor[actor]
	sc.MaxActionsPerMinute = tr.MaxActionsPerMinute[actor]
	sc.MaxActionsPerVelocityWindow = tr.MaxActionsPerVelocityWindow[actor]
	sc.MaxPerSecond = tr.MaxPerSecond[actor]

	if idx, ok := g.IndexOf(actor); ok {
		sc.PageRank = pageRank[idx]
		sc.EigenCentrality = eigen[idx]
		sc.Betweenness = betweenness[idx]

		if len(memberClusters) > 0 {
			degree := graph.Degree(adj, idx)
			for _, c := range memberClusters {
				sc.ClusterIDs = append(sc.ClusterIDs, c.ID)
				if n := len(c.Members); n > 0 {
					sc.ClusterIsolationScore = float64(n-degree) / float64(n)
				}
			}
		}
	}

	sc.CoordinationScore = ratio(float64(sc.BurstActions), float64(sc.TotalActions))
	sc.LowDiversityScore = 1 - ratio(float64(sc.UniqueTargets), float64(sc.TotalActions))
	if sc.TotalActions == 0 {
		sc.LowDiversityScore = 0
	}

	if sc.TotalActions >= settings.EntropyMinTotalActions {
		sc.LowEntropyScore = sig.LowEntropyScore
	}

	sc.RapidActionScore = rateScore(float64(sc.MaxActionsPerMinute), float64(settings.RapidActionsPerMinuteThreshold))
	sc.VelocityScore = rateScore(float64(sc.MaxActionsPerVelocityWindow), float64(settings.VelocityMaxActionsInWindow))

	base := 0.30*sc.CoordinationScore +
		0.20*clamp(float64(sc.ChurnScore)/10, 0, 1) +
		0.15*sc.ClusterIsolationScore +
		0.10*sc.NewAccountScore +
		0.10*sc.LowDiversityScore +
		0.15*sc.ProfileAnomalyScore

	sc.SybilScore = clamp(base+
		0.10*sc.RapidActionScore+
		0.05*sc.LowEntropyScore+
		0.05*sc.VelocityScore+
		0.03*sc.ActionSequenceRepeatScore+
		0.03*sc.CircadianScore+
		0.05*sc.SharedWalletScore+
		0.05*sc.CrossAppScore+
		0.05*sc.BottySessionScore+
		0.05*sc.FraudTxScore,
		0, 1)

	sc.Reasons = reasons(sc, settings)
	return sc
}

// ratio is a/b, 0 if b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// rateScore is clamp((observed-limit)/limit, 0, 1), 0 if limit is 0.
func rateScore(observed, limit float64) float64 {
	if limit == 0 {
		return 0
	}
	return clamp((observed-limit)/limit, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
