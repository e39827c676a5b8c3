package temporal

import "github.com/sybilscope/sybilscope/model"

// Result is everything the temporal detectors derive from one event log.
type Result struct {
	// Waves holds both fixed-bin waves and sliding-window bursts, combined
	// (design doc §9: "legacy fixed-bin waves coexist with sliding-window
	// bursts"). Window bursts are truncated to the global top 250 by
	// z-score before being appended here.
	Waves []model.Wave

	// BurstActionsByActor is the size of each actor's distinct wave/burst
	// key set — bin keys and window keys share one namespace per actor
	// (design doc §4.5, §9).
	BurstActionsByActor map[string]int

	MaxActionsPerMinute         map[string]int
	MaxActionsPerVelocityWindow map[string]int
	MaxPerSecond                map[string]float64
}

func newResult() Result {
	return Result{
		BurstActionsByActor:         make(map[string]int),
		MaxActionsPerMinute:         make(map[string]int),
		MaxActionsPerVelocityWindow: make(map[string]int),
		MaxPerSecond:                make(map[string]float64),
	}
}
