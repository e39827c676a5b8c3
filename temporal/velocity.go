package temporal

import (
	"sort"

	"github.com/sybilscope/sybilscope/model"
)

// computeVelocityAndRapidRate fills in the per-actor velocity and
// rapid-rate maps (design doc §4.5). Velocity slides a window of
// velocityWindowSeconds over each actor's own timeline and keeps the
// maximum population M; rapid rate is the maximum count over any
// integer-minute bucket.
func computeVelocityAndRapidRate(logs []model.Event, settings model.Settings, res *Result) {
	byActor := make(map[string][]int64)
	var order []string
	for _, ev := range logs {
		if !ev.TimeValid {
			continue
		}
		if _, ok := byActor[ev.Actor]; !ok {
			order = append(order, ev.Actor)
		}
		byActor[ev.Actor] = append(byActor[ev.Actor], ev.Timestamp.Unix())
	}

	windowSeconds := int64(settings.VelocityWindowSeconds)
	if windowSeconds <= 0 {
		windowSeconds = 1
	}

	for _, actor := range order {
		times := byActor[actor]
		sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

		// Sliding-window max population within velocityWindowSeconds.
		maxPop, left := 0, 0
		for right := 0; right < len(times); right++ {
			for times[right]-times[left] > windowSeconds {
				left++
			}
			if pop := right - left + 1; pop > maxPop {
				maxPop = pop
			}
		}
		res.MaxActionsPerVelocityWindow[actor] = maxPop
		res.MaxPerSecond[actor] = float64(maxPop) / float64(settings.VelocityWindowSeconds)

		// Per-minute bucket max.
		buckets := make(map[int64]int)
		maxPerMinute := 0
		for _, ts := range times {
			bucket := ts / 60
			buckets[bucket]++
			if buckets[bucket] > maxPerMinute {
				maxPerMinute = buckets[bucket]
			}
		}
		res.MaxActionsPerMinute[actor] = maxPerMinute
	}
}

