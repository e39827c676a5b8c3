package temporal

import (
	"fmt"
	"math"
	"sort"

	"github.com/sybilscope/sybilscope/model"
)

const zScoreThreshold = 2.5
const maxWindowBursts = 250

type keyedEvent struct {
	ts    int64 // unix seconds
	actor string
}

// detectWindowBursts implements the sliding-window burst detector. For
// every (action,target) key with at least burstMinCount
// time-valid events, it slides a window of width burstWindowSeconds across
// the key's sorted timeline, keeps the single best candidate surviving
// burstMinCount/burstMinActors, and rejects it unless its Poisson z-score
// against the key's dataset-wide rate clears 2.5. Surviving bursts are
// sorted by z and truncated to the global top 250.
func detectWindowBursts(logs []model.Event, settings model.Settings) ([]model.Wave, map[string]map[string]struct{}) {
	byKey := make(map[string][]keyedEvent)
	var order []string
	var minTS, maxTS int64
	first := true

	for _, ev := range logs {
		if !ev.TimeValid {
			continue
		}
		ts := ev.Timestamp.Unix()
		if first || ts < minTS {
			minTS = ts
		}
		if first || ts > maxTS {
			maxTS = ts
		}
		first = false

		key := ev.Action + "\x00" + ev.Target
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], keyedEvent{ts: ts, actor: ev.Actor})
	}

	datasetSpanMs := float64(maxTS-minTS) * 1000
	if datasetSpanMs <= 0 {
		datasetSpanMs = 1
	}
	windowSeconds := int64(settings.BurstWindowSeconds)
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	windowMs := float64(windowSeconds) * 1000

	type candidate struct {
		action, target string
		start          int64
		count          int
		actors         []string
		z              float64
	}
	var candidates []candidate

	for _, key := range order {
		events := byKey[key]
		if len(events) < settings.BurstMinCount {
			continue
		}
		sort.Slice(events, func(i, j int) bool { return events[i].ts < events[j].ts })

		var action, target string
		if idx := indexOfNull(key); idx >= 0 {
			action, target = key[:idx], key[idx+1:]
		}

		rate := float64(len(events)) / datasetSpanMs
		expected := rate * windowMs

		actorCounts := make(map[string]int)
		left := 0
		var best *candidate

		for right := 0; right < len(events); right++ {
			actorCounts[events[right].actor]++
			for events[right].ts-events[left].ts > windowSeconds {
				actorCounts[events[left].actor]--
				if actorCounts[events[left].actor] == 0 {
					delete(actorCounts, events[left].actor)
				}
				left++
			}

			count := right - left + 1
			if count < settings.BurstMinCount || len(actorCounts) < settings.BurstMinActors {
				continue
			}

			z := (float64(count) - expected) / math.Sqrt(math.Max(1e-9, expected))
			if best == nil || z > best.z {
				actors := make([]string, 0, len(actorCounts))
				for a := range actorCounts {
					actors = append(actors, a)
				}
				sort.Strings(actors)
				best = &candidate{action: action, target: target, start: events[left].ts, count: count, actors: actors, z: z}
			}
		}

		if best != nil && best.z >= zScoreThreshold {
			candidates = append(candidates, *best)
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].z > candidates[j].z })
	if len(candidates) > maxWindowBursts {
		candidates = candidates[:maxWindowBursts]
	}

	keysByActor := make(map[string]map[string]struct{})
	waves := make([]model.Wave, 0, len(candidates))
	for _, c := range candidates {
		waves = append(waves, model.Wave{
			WindowStart: c.start,
			WindowEnd:   c.start + windowSeconds,
			Action:      c.action,
			Target:      c.target,
			Actors:      c.actors,
			ZScore:      c.z,
			Method:      model.WaveMethodWindow,
		})

		waveKey := fmt.Sprintf("%d:%s:%s:window", c.start, c.action, c.target)
		for _, a := range c.actors {
			if keysByActor[a] == nil {
				keysByActor[a] = make(map[string]struct{})
			}
			keysByActor[a][waveKey] = struct{}{}
		}
	}

	return waves, keysByActor
}

func indexOfNull(key string) int {
	for i := 0; i < len(key); i++ {
		if key[i] == 0 {
			return i
		}
	}
	return -1
}
