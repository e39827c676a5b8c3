package behavior

import "time"

// newAccountScore implements design doc §4.6's account-novelty rule:
// ageDays = (firstSeenOfActorInLogs - actorCreatedAt) / 86400, score 1 if
// 0 <= ageDays < 7, else 0. An actor without an actorCreatedAt value never
// scores.
func newAccountScore(firstSeen, actorCreatedAt time.Time, hasActorCreatedAt bool) float64 {
	if !hasActorCreatedAt {
		return 0
	}
	ageDays := firstSeen.Sub(actorCreatedAt).Hours() / 24
	if ageDays >= 0 && ageDays < 7 {
		return 1
	}
	return 0
}
