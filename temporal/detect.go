package temporal

import "github.com/sybilscope/sybilscope/model"

// Detect runs every temporal detector over logs and merges their output
// into one Result (design doc §4.5). Bin waves and window bursts are computed
// independently, then combined: burstActionsByActor is the size of the
// union of an actor's bin-wave keys and window-burst keys, kept in a
// common namespace per the "legacy fixed-bin waves coexist with
// sliding-window bursts" design note (design doc §9).
func Detect(logs []model.Event, settings model.Settings) Result {
	res := newResult()

	binWaves, binKeys := detectBinWaves(logs, settings)
	windowBursts, windowKeys := detectWindowBursts(logs, settings)

	res.Waves = append(res.Waves, binWaves...)
	res.Waves = append(res.Waves, windowBursts...)

	merged := make(map[string]map[string]struct{})
	mergeKeys := func(src map[string]map[string]struct{}) {
		for actor, keys := range src {
			if merged[actor] == nil {
				merged[actor] = make(map[string]struct{}, len(keys))
			}
			for k := range keys {
				merged[actor][k] = struct{}{}
			}
		}
	}
	mergeKeys(binKeys)
	mergeKeys(windowKeys)

	for actor, keys := range merged {
		res.BurstActionsByActor[actor] = len(keys)
	}

	computeVelocityAndRapidRate(logs, settings, &res)

	return res
}
