package engine_test

import (
	"sort"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/sybilscope/sybilscope/engine"
	"github.com/sybilscope/sybilscope/model"
)

// genLogs draws a random, small event log mixing positive and non-positive
// actions: every actor and
// target is one of a handful of fixed identifiers, which keeps the graph
// dense enough to exercise clustering without rapid.Check needing to
// synthesize huge inputs.
func genLogs(t *rapid.T) []model.Event {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	actorPool := []string{"a0", "a1", "a2", "a3", "a4", "a5"}
	actionPool := []string{"follow", "like", "unfollow"}

	n := rapid.IntRange(0, 40).Draw(t, "n")
	logs := make([]model.Event, n)
	for i := 0; i < n; i++ {
		actor := rapid.SampledFrom(actorPool).Draw(t, "actor")
		target := rapid.SampledFrom(actorPool).Draw(t, "target")
		action := rapid.SampledFrom(actionPool).Draw(t, "action")
		logs[i] = model.Event{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Actor:     actor, Target: target, Action: action,
			TimeValid: true,
		}
	}
	return logs
}

// TestProperty_SybilScoreInUnitInterval checks design doc §8's universal
// invariant that every scorecard's sybilScore lies in [0,1].
func TestProperty_SybilScoreInUnitInterval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logs := genLogs(t)
		result := engine.Analyze(logs, model.DefaultSettings(), nil)
		for _, sc := range result.Scorecards {
			if sc.SybilScore < 0 || sc.SybilScore > 1 {
				t.Fatalf("actor %s: sybilScore = %v out of [0,1]", sc.Actor, sc.SybilScore)
			}
		}
	})
}

// TestProperty_FlaggedImpliesReasons checks design doc §8: sybilScore > threshold
// implies reasons is non-empty.
func TestProperty_FlaggedImpliesReasons(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logs := genLogs(t)
		settings := model.DefaultSettings()
		result := engine.Analyze(logs, settings, nil)
		for _, sc := range result.Scorecards {
			if sc.SybilScore > settings.Threshold && len(sc.Reasons) == 0 {
				t.Fatalf("actor %s: sybilScore %v > threshold but reasons is empty", sc.Actor, sc.SybilScore)
			}
		}
	})
}

// TestProperty_PermutationStableClusterMembership checks design doc §8: shuffling
// logs (ties aside, all timestamps here are already distinct) leaves
// component membership sets unchanged.
func TestProperty_PermutationStableClusterMembership(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logs := genLogs(t)
		settings := model.DefaultSettings()

		// Build a random permutation from rapid-drawn sort keys rather than a
		// dedicated permutation combinator, since a sort-by-random-key is
		// just as uniform and keeps this to primitives rapid is known to
		// expose (IntRange, SampledFrom).
		keys := make([]int, len(logs))
		for i := range keys {
			keys[i] = rapid.IntRange(0, 1<<30).Draw(t, "key")
		}
		perm := make([]int, len(logs))
		for i := range perm {
			perm[i] = i
		}
		sort.SliceStable(perm, func(i, j int) bool {
			return keys[perm[i]] < keys[perm[j]]
		})
		shuffled := make([]model.Event, len(logs))
		for i, p := range perm {
			shuffled[i] = logs[p]
		}

		want := membershipSets(engine.Analyze(logs, settings, nil).Clusters)
		got := membershipSets(engine.Analyze(shuffled, settings, nil).Clusters)

		if len(want) != len(got) {
			t.Fatalf("cluster count differs: %d vs %d", len(want), len(got))
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("membership set %d differs: %q vs %q", i, want[i], got[i])
			}
		}
	})
}

func membershipSets(clusters []model.Cluster) []string {
	sets := make([]string, len(clusters))
	for i, c := range clusters {
		members := append([]string(nil), c.Members...)
		sort.Strings(members)
		var joined string
		for _, m := range members {
			joined += m + ","
		}
		sets[i] = joined
	}
	sort.Strings(sets)
	return sets
}
