package behavior

import "math"

// targetEntropy computes H = -Σ p·ln p over an actor's target distribution
// (p_target = actor's action count against that target / actor's total
// action count), normalized by ln(k) where k is the actor's unique target
// count. Actors with fewer than 2 unique targets score 0 (design doc §4.6).
func targetEntropy(targetCounts map[string]int, total int) float64 {
	k := len(targetCounts)
	if k < 2 || total == 0 {
		return 0
	}
	var h float64
	for _, c := range targetCounts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log(p)
	}
	return h / math.Log(float64(k))
}

// circadianScore implements the two-case rule of design doc §4.6: a wide,
// around-the-clock cadence (activeHours >= 20, total >= 200) scores the
// full 1.0 "automation" signal; a narrow, few-hours cadence (activeHours
// <= 2, total >= 100) scores 0.8 "coordination" signal; otherwise 0. The
// two cases take the maximum (they are mutually exclusive in practice, but
// the design states the rule as a max, not an either/or).
func circadianScore(activeHours, total int) float64 {
	wide := 0.0
	if activeHours >= 20 && total >= 200 {
		wide = 1.0
	}
	narrow := 0.0
	if activeHours <= 2 && total >= 100 {
		narrow = 0.8
	}
	return math.Max(wide, narrow)
}

// hourEntropy computes the normalized Shannon entropy of an hourly (UTC)
// activity histogram, H/ln(24).
func hourEntropy(hourly [24]int) float64 {
	var total int
	for _, c := range hourly {
		total += c
	}
	if total == 0 {
		return 0
	}
	var h float64
	for _, c := range hourly {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log(p)
	}
	return h / math.Log(24)
}
