package behavior

import (
	"sort"
	"time"

	"github.com/sybilscope/sybilscope/model"
	"github.com/sybilscope/sybilscope/profile"
)

// actorAccumulator holds the raw, order-preserving per-actor state Detect
// needs before it can derive Signals.
type actorAccumulator struct {
	totalActions  int
	targetCounts  map[string]int
	actionsByTime []timedAction
	hourly        [24]int
	firstSeen     timeOrZero
}

type timedAction struct {
	unixMs int64
	action string
}

// timeOrZero tracks whether a timestamp has been observed at all, since
// model.Event's zero time.Time is a valid (if unlikely) timestamp.
type timeOrZero struct {
	t   int64
	set bool
}

// Detect runs every behavioral detector over logs and returns one Signals
// per actor (design doc §4.6). profiles is the already-computed profile.Result
// from the Profile Aggregator, reused here for links, bio, and follower
// ratios rather than re-deriving them from logs.
func Detect(logs []model.Event, settings model.Settings, profiles profile.Result) Result {
	acc := make(map[string]*actorAccumulator)
	var order []string

	get := func(actor string) *actorAccumulator {
		a, ok := acc[actor]
		if !ok {
			a = &actorAccumulator{targetCounts: make(map[string]int)}
			acc[actor] = a
			order = append(order, actor)
		}
		return a
	}

	for _, ev := range logs {
		if ev.Actor == "" {
			continue
		}
		a := get(ev.Actor)
		a.totalActions++
		a.targetCounts[ev.Target]++

		if ev.TimeValid {
			ms := ev.Timestamp.UnixMilli()
			a.actionsByTime = append(a.actionsByTime, timedAction{unixMs: ms, action: ev.Action})
			a.hourly[ev.Timestamp.UTC().Hour()]++
			if !a.firstSeen.set || ms < a.firstSeen.t {
				a.firstSeen = timeOrZero{t: ms, set: true}
			}
		}
	}

	sharedWallets := DetectSharedWallets(logs)
	crossApp := DetectCrossAppLinking(logs)
	fraudScores := DetectFraudulentTransactions(logs)
	reciprocal := reciprocityStats(logs, settings)
	sessionMetrics := DetectSessionMetrics(logs, int64(settings.SessionGapMinutes)*60*1000)

	actorNames := make([]string, len(order))
	copy(actorNames, order)
	handlePattern := handlePatternStats(actorNames)

	result := make(Result, len(order))

	for _, actorName := range order {
		a := acc[actorName]
		s := result.get(actorName)

		s.TotalActions = a.totalActions
		s.UniqueTargets = len(a.targetCounts)

		s.TargetEntropy = targetEntropy(a.targetCounts, a.totalActions)
		s.LowEntropyScore = 1 - s.TargetEntropy

		activeHours := 0
		for _, c := range a.hourly {
			if c > 0 {
				activeHours++
			}
		}
		s.ActiveHours = activeHours
		s.HourEntropy = hourEntropy(a.hourly)
		s.CircadianScore = circadianScore(activeHours, a.totalActions)

		sort.Slice(a.actionsByTime, func(i, j int) bool { return a.actionsByTime[i].unixMs < a.actionsByTime[j].unixMs })
		actions := make([]string, len(a.actionsByTime))
		for i, ta := range a.actionsByTime {
			actions[i] = ta.action
		}
		topCount, totalNgrams := actionNgramStats(actions, settings.ActionNgramSize)
		s.TopActionNgramCount = topCount
		s.RepeatScore = repeatScore(topCount, totalNgrams)

		sm := sessionMetrics[actorName]
		s.SessionCount = sm.SessionCount
		s.AvgSessionMinutes = sm.AvgSessionMinutes
		s.AvgGapMinutes = sm.AvgGapMinutes
		s.MaxGapMinutes = sm.MaxGapMinutes
		s.BottySessionScore = bottySessionScore(sm)

		if wallets, ok := sharedWallets[actorName]; ok && len(wallets) > 0 {
			s.SharedWallets = wallets
			s.SharedWalletScore = 1
		}

		if platforms, ok := crossApp[actorName]; ok {
			s.CrossAppPlatforms = platforms
			if len(platforms) > 1 {
				s.CrossAppScore = 0.5
			}
		}

		s.FraudTxScore = fraudScores[actorName]
		s.ReciprocalRate = reciprocal[actorName]
		s.BioSimilarityScore = bioSimilarityScore(actorName, profiles)
		s.HandlePatternScore = handlePattern[actorName]

		links := profiles.LinksByActor[actorName]
		s.Links = links
		s.SharedLinks = profiles.SharedLinksByActor[actorName]

		var suspicious []string
		var phishingCount int
		for _, link := range links {
			if isSuspiciousDomain(link, settings.SuspiciousDomains) {
				suspicious = append(suspicious, link)
			}
			if isLikelyPhishingUrl(link, settings.TyposquatBrands) {
				phishingCount++
			}
		}
		s.SuspiciousLinks = suspicious
		s.LinkDiversity = linkDiversity(links)
		s.PhishingLinkScore = clamp(float64(phishingCount)/2, 0, 1)

		p := profiles.Profiles[actorName]
		s.ProfileAnomalyScore = profileAnomalyScoreFor(
			p.FollowerCount, p.FollowingCount, p.HasFollowingCount,
			len(suspicious) > 0, s.LinkDiversity, len(links),
		)

		if p.HasActorCreatedAt && a.firstSeen.set {
			firstSeen := time.UnixMilli(a.firstSeen.t).UTC()
			s.NewAccountScore = newAccountScore(firstSeen, p.ActorCreatedAt, true)
		}
	}

	return result
}
