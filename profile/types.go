package profile

import "time"

// Profile is one actor's folded profile: every optional field from the
// log, last-write-wins, except Links which is unioned across every event
// that carried any (design doc §4.1).
type Profile struct {
	Actor string

	Bio string

	Links []string

	FollowerCount    int64
	HasFollowerCount bool
	FollowingCount   int64
	HasFollowingCount bool

	ActorCreatedAt    time.Time
	HasActorCreatedAt bool

	Verified    bool
	HasVerified bool

	Location    string
	HasLocation bool
}

// Result is everything the aggregator derives from one event log.
type Result struct {
	Profiles map[string]*Profile

	// LinksByActor is Profiles[actor].Links, exposed directly so callers
	// that only need links skip the Profiles indirection.
	LinksByActor map[string][]string

	// SharedLinksByActor holds, for each actor, the sublist of its own
	// links (order preserved) that also appear in at least one other
	// actor's link list.
	SharedLinksByActor map[string][]string

	// NormalizedBioByActor holds each actor's lowercased,
	// whitespace-collapsed bio (empty string if the actor never carried a
	// bio).
	NormalizedBioByActor map[string]string

	// BioCount maps a normalized bio to the number of actors who share it
	// exactly.
	BioCount map[string]int
}
