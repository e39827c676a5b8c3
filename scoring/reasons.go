package scoring

import (
	"fmt"

	"github.com/sybilscope/sybilscope/model"
)

// reasons builds the ordered, human-readable clause list for sc. Clauses
// are appended in a fixed order; a threshold-crossing actor always carries
// the threshold clause first.
func reasons(sc model.Scorecard, settings model.Settings) []string {
	var out []string

	if sc.SybilScore > settings.Threshold {
		out = append(out, fmt.Sprintf("SybilScore %.2f exceeds threshold %.2f", sc.SybilScore, settings.Threshold))
	}
	if sc.CoordinationScore >= 0.5 {
		out = append(out, "High coordination with bursty activity")
	}
	if sc.ChurnScore >= 5 {
		out = append(out, fmt.Sprintf("High churn (%d reversal actions)", sc.ChurnScore))
	}
	if sc.ClusterIsolationScore >= 0.5 && len(sc.ClusterIDs) > 0 {
		out = append(out, "Isolated within a dense cluster")
	}
	if sc.LowDiversityScore >= 0.7 {
		out = append(out, "Low target diversity")
	}
	if len(sc.SuspiciousLinks) > 0 {
		out = append(out, fmt.Sprintf("Suspicious link domains (%d)", len(sc.SuspiciousLinks)))
	}
	if sc.PhishingLinkScore > 0 {
		out = append(out, "Likely phishing links present")
	}
	if len(sc.SharedLinks) > 0 {
		out = append(out, fmt.Sprintf("Shared links with others (%d)", len(sc.SharedLinks)))
	}
	if sc.BioSimilarityScore >= 0.4 {
		out = append(out, "Bio shared with other actors")
	}
	if sc.HandlePatternScore >= 0.4 {
		out = append(out, "Handle matches a farm naming pattern")
	}
	if sc.NewAccountScore > 0 {
		out = append(out, "Newly created account")
	}
	if sc.PageRank > 0.01 {
		out = append(out, fmt.Sprintf("High PageRank (%.3f)", sc.PageRank))
	}
	if sc.Betweenness > 0.05 {
		out = append(out, fmt.Sprintf("High betweenness centrality (%.3f)", sc.Betweenness))
	}
	if sc.MaxActionsPerMinute >= settings.RapidActionsPerMinuteThreshold {
		out = append(out, fmt.Sprintf("Rapid actions (%d/min)", sc.MaxActionsPerMinute))
	}
	if sc.VelocityScore >= 0.7 {
		out = append(out, "High action velocity")
	}
	if sc.ActionSequenceRepeatScore >= 0.7 {
		out = append(out, "Repetitive action sequence")
	}
	if sc.CircadianScore >= 0.8 {
		out = append(out, "Anomalous circadian pattern")
	}
	if sc.LowEntropyScore >= 0.7 && sc.TotalActions >= settings.EntropyMinTotalActions {
		out = append(out, "Low target entropy")
	}
	if len(sc.SharedWallets) > 0 {
		out = append(out, "Shared funders present")
	}
	if len(sc.CrossAppPlatforms) > 0 {
		out = append(out, "Cross-app activity present")
	}
	if sc.SessionCount > 5 {
		out = append(out, fmt.Sprintf("High session count (%d)", sc.SessionCount))
	}
	if sc.FraudTxScore > 0.5 {
		out = append(out, "Anomalous transaction amounts")
	}

	return out
}
