package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sybilscope/sybilscope/behavior"
	"github.com/sybilscope/sybilscope/centrality"
	"github.com/sybilscope/sybilscope/graph"
	"github.com/sybilscope/sybilscope/model"
	"github.com/sybilscope/sybilscope/profile"
	"github.com/sybilscope/sybilscope/scoring"
	"github.com/sybilscope/sybilscope/temporal"
)

func ev(actor, target string, ts time.Time) model.Event {
	return model.Event{Timestamp: ts, Actor: actor, Action: "follow", Target: target, TimeValid: true}
}

func runScoring(logs []model.Event, settings model.Settings) []model.Scorecard {
	g := graph.Build(logs, settings)
	clusters := g.Components(settings.MinClusterSize)
	tr := temporal.Detect(logs, settings)
	p := profile.Aggregate(logs)
	sig := behavior.Detect(logs, settings, p)
	pr := centrality.PageRank(g)
	eig := centrality.Eigenvector(g)
	bw := centrality.Betweenness(g)
	return scoring.Score(logs, settings, g, clusters, tr, sig, pr, eig, bw)
}

// TestScore_PureIsolationClusterScore covers 5 mutually-following actors:
// clusterIsolationScore = 1 - 4/5 = 0.2 for every member.
func TestScore_PureIsolationClusterScore(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	actors := []string{"a", "b", "c", "d", "e"}
	var logs []model.Event
	for _, a := range actors {
		for _, b := range actors {
			if a != b {
				logs = append(logs, ev(a, b, base))
			}
		}
	}

	settings := model.DefaultSettings()
	settings.MinClusterSize = 3
	cards := runScoring(logs, settings)

	if len(cards) != 5 {
		t.Fatalf("len(cards) = %d; want 5", len(cards))
	}
	for _, sc := range cards {
		if sc.ClusterIsolationScore != 0.2 {
			t.Errorf("ClusterIsolationScore[%s] = %v; want 0.2", sc.Actor, sc.ClusterIsolationScore)
		}
	}
}

// TestScore_SharedPhishingLinkReasons covers three actors sharing a
// bit.ly link in their bio, plus enough benign actions to keep totals
// nonzero.
func TestScore_SharedPhishingLinkReasons(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var logs []model.Event
	for i, actor := range []string{"x", "y", "z"} {
		logs = append(logs, model.Event{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Actor:     actor, Action: "like", Target: "post1", TimeValid: true,
			Bio: "hi join https://bit.ly/x", HasBio: true,
		})
	}

	settings := model.DefaultSettings()
	cards := runScoring(logs, settings)

	for _, sc := range cards {
		foundSuspicious, foundShared := false, false
		for _, r := range sc.Reasons {
			if r == "Suspicious link domains (1)" {
				foundSuspicious = true
			}
			if r == "Shared links with others (1)" {
				foundShared = true
			}
		}
		if !foundSuspicious {
			t.Errorf("actor %s: reasons %v missing suspicious-link clause", sc.Actor, sc.Reasons)
		}
		if !foundShared {
			t.Errorf("actor %s: reasons %v missing shared-link clause", sc.Actor, sc.Reasons)
		}
		assert.GreaterOrEqual(t, sc.ProfileAnomalyScore, 0.5, "actor %s", sc.Actor)
	}
}
