package behavior

import (
	"sort"

	"github.com/sybilscope/sybilscope/model"
)

// DetectCrossAppLinking returns, for every actor active on two or more
// distinct platforms, the sorted list of those platforms — one of the
// auxiliary pure helpers of design doc §6 and §4.6.
func DetectCrossAppLinking(logs []model.Event) map[string][]string {
	platforms := make(map[string]map[string]struct{})
	var order []string

	for _, ev := range logs {
		if ev.Platform == "" {
			continue
		}
		if _, ok := platforms[ev.Actor]; !ok {
			order = append(order, ev.Actor)
			platforms[ev.Actor] = make(map[string]struct{})
		}
		platforms[ev.Actor][ev.Platform] = struct{}{}
	}

	out := make(map[string][]string)
	for _, actor := range order {
		set := platforms[actor]
		if len(set) < 2 {
			continue
		}
		list := make([]string, 0, len(set))
		for p := range set {
			list = append(list, p)
		}
		sort.Strings(list)
		out[actor] = list
	}
	return out
}
