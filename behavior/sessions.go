package behavior

import (
	"sort"

	"github.com/sybilscope/sybilscope/model"
)

// SessionMetrics is one actor's session-structure summary (design doc §4.6).
type SessionMetrics struct {
	SessionCount      int
	AvgSessionMinutes float64
	AvgGapMinutes     float64
	MaxGapMinutes     float64
}

// DetectSessionMetrics segments each actor's time-valid timeline into
// sessions split at gaps exceeding sessionGapMs, and is exported directly
// off []model.Event as one of the auxiliary pure helpers named in design doc §6.
func DetectSessionMetrics(logs []model.Event, sessionGapMs int64) map[string]SessionMetrics {
	byActor := make(map[string][]int64)
	var order []string
	for _, ev := range logs {
		if !ev.TimeValid {
			continue
		}
		if _, ok := byActor[ev.Actor]; !ok {
			order = append(order, ev.Actor)
		}
		byActor[ev.Actor] = append(byActor[ev.Actor], ev.Timestamp.UnixMilli())
	}

	gapThresholdMs := sessionGapMs

	out := make(map[string]SessionMetrics, len(order))
	for _, actor := range order {
		times := byActor[actor]
		sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
		out[actor] = sessionMetricsFor(times, gapThresholdMs)
	}
	return out
}

func sessionMetricsFor(times []int64, gapThresholdMs int64) SessionMetrics {
	if len(times) == 0 {
		return SessionMetrics{}
	}

	var sessionStart, sessionEnd int64 = times[0], times[0]
	var sessionDurations []int64
	var gaps []int64

	flush := func() {
		sessionDurations = append(sessionDurations, sessionEnd-sessionStart)
	}

	for i := 1; i < len(times); i++ {
		gap := times[i] - times[i-1]
		gaps = append(gaps, gap)
		if gap > gapThresholdMs {
			flush()
			sessionStart = times[i]
		}
		sessionEnd = times[i]
	}
	flush()

	var sumSession, maxGap, sumGap int64
	for _, d := range sessionDurations {
		sumSession += d
	}
	for _, g := range gaps {
		sumGap += g
		if g > maxGap {
			maxGap = g
		}
	}

	metrics := SessionMetrics{SessionCount: len(sessionDurations)}
	if len(sessionDurations) > 0 {
		metrics.AvgSessionMinutes = float64(sumSession) / float64(len(sessionDurations)) / 60000.0
	}
	if len(gaps) > 0 {
		metrics.AvgGapMinutes = float64(sumGap) / float64(len(gaps)) / 60000.0
		metrics.MaxGapMinutes = float64(maxGap) / 60000.0
	}
	return metrics
}

// bottySessionScore implements the §4.6 composite: shortSessions (1.0 if
// avg session <= 1 min, 0.5 if <= 5 min, else 0) times manySessions
// (min(sessionCount/10, 1)).
func bottySessionScore(m SessionMetrics) float64 {
	var shortSessions float64
	switch {
	case m.AvgSessionMinutes <= 1:
		shortSessions = 1
	case m.AvgSessionMinutes <= 5:
		shortSessions = 0.5
	}
	manySessions := clamp(float64(m.SessionCount)/10, 0, 1)
	return shortSessions * manySessions
}
