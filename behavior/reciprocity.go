package behavior

import "github.com/sybilscope/sybilscope/model"

// reciprocityStats computes, for every actor with at least one positive-
// action edge, mutualPositive (the count of its positive-action targets
// that also positively act back on it) and the resulting reciprocalRate =
// mutualPositive / |positiveOut[a]| (design doc §4.6).
func reciprocityStats(logs []model.Event, settings model.Settings) map[string]float64 {
	positiveOut := make(map[string]map[string]struct{})
	var order []string

	for _, ev := range logs {
		if !settings.IsPositiveAction(ev.Action) {
			continue
		}
		if _, ok := positiveOut[ev.Actor]; !ok {
			order = append(order, ev.Actor)
			positiveOut[ev.Actor] = make(map[string]struct{})
		}
		positiveOut[ev.Actor][ev.Target] = struct{}{}
	}

	out := make(map[string]float64, len(order))
	for _, actor := range order {
		targets := positiveOut[actor]
		if len(targets) == 0 {
			continue
		}
		mutual := 0
		for target := range targets {
			if back, ok := positiveOut[target]; ok {
				if _, reciprocal := back[actor]; reciprocal {
					mutual++
				}
			}
		}
		out[actor] = float64(mutual) / float64(len(targets))
	}
	return out
}
