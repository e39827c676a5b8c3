package temporal

import (
	"fmt"
	"sort"

	"github.com/sybilscope/sybilscope/model"
)

type binCell struct {
	binStart int64
	action   string
	target   string
	count    int
	actors   map[string]struct{}
}

// detectBinWaves implements the fixed-bin wave detector (design doc §4.5): bins
// are epoch-aligned, width timeBinMinutes·60s; a wave fires when its count
// and unique-actor count both clear the configured minimums.
func detectBinWaves(logs []model.Event, settings model.Settings) ([]model.Wave, map[string]map[string]struct{}) {
	width := int64(settings.TimeBinMinutes) * 60
	if width <= 0 {
		width = 1
	}

	cells := make(map[string]*binCell)
	var order []string

	for _, ev := range logs {
		if !ev.TimeValid {
			continue
		}
		binStart := (ev.Timestamp.Unix() / width) * width
		key := fmt.Sprintf("%d\x00%s\x00%s", binStart, ev.Action, ev.Target)
		c, ok := cells[key]
		if !ok {
			c = &binCell{binStart: binStart, action: ev.Action, target: ev.Target, actors: make(map[string]struct{})}
			cells[key] = c
			order = append(order, key)
		}
		c.count++
		c.actors[ev.Actor] = struct{}{}
	}

	keysByActor := make(map[string]map[string]struct{})
	var waves []model.Wave

	for _, key := range order {
		c := cells[key]
		if c.count < settings.WaveMinCount || len(c.actors) < settings.WaveMinActors {
			continue
		}

		actors := make([]string, 0, len(c.actors))
		for a := range c.actors {
			actors = append(actors, a)
		}
		sort.Strings(actors)

		denom := settings.WaveMinCount
		if denom < 1 {
			denom = 1
		}

		waves = append(waves, model.Wave{
			WindowStart: c.binStart,
			WindowEnd:   c.binStart + width,
			Action:      c.action,
			Target:      c.target,
			Actors:      actors,
			ZScore:      float64(c.count) / float64(denom),
			Method:      model.WaveMethodBin,
		})

		waveKey := fmt.Sprintf("%d:%s:%s", c.binStart, c.action, c.target)
		for _, a := range actors {
			if keysByActor[a] == nil {
				keysByActor[a] = make(map[string]struct{})
			}
			keysByActor[a][waveKey] = struct{}{}
		}
	}

	return waves, keysByActor
}
