package profile

import "github.com/sybilscope/sybilscope/model"

// Aggregate folds logs into one Profile per actor, then derives the
// link/bio indexes the behavioral detectors need (design doc §4.1). Profile
// fields are last-write-wins in log order; Links is unioned across every
// event the actor appears in as actor.
func Aggregate(logs []model.Event) Result {
	profiles := make(map[string]*Profile)
	order := make([]string, 0)

	get := func(actor string) *Profile {
		if p, ok := profiles[actor]; ok {
			return p
		}
		p := &Profile{Actor: actor}
		profiles[actor] = p
		order = append(order, actor)
		return p
	}

	rawLinks := make(map[string][]string)
	bios := make(map[string]string)

	for _, ev := range logs {
		if ev.Actor == "" {
			continue
		}
		p := get(ev.Actor)

		if ev.HasBio {
			bios[ev.Actor] = ev.Bio
		}
		if len(ev.Links) > 0 {
			rawLinks[ev.Actor] = append(rawLinks[ev.Actor], ev.Links...)
		}
		if ev.HasFollowerCount {
			p.FollowerCount, p.HasFollowerCount = ev.FollowerCount, true
		}
		if ev.HasFollowingCount {
			p.FollowingCount, p.HasFollowingCount = ev.FollowingCount, true
		}
		if ev.HasActorCreatedAt {
			p.ActorCreatedAt, p.HasActorCreatedAt = ev.ActorCreatedAt, true
		}
		if ev.HasVerified {
			p.Verified, p.HasVerified = ev.Verified, true
		}
		if ev.HasLocation {
			p.Location, p.HasLocation = ev.Location, true
		}
	}

	linksByActor := make(map[string][]string, len(order))
	normalizedBioByActor := make(map[string]string, len(order))
	bioCount := make(map[string]int)

	for _, actor := range order {
		p := profiles[actor]
		p.Bio = bios[actor]
		p.Links = unionLinks(rawLinks[actor], p.Bio)
		linksByActor[actor] = p.Links

		norm := normalizeBio(p.Bio)
		normalizedBioByActor[actor] = norm
		if norm != "" {
			bioCount[norm]++
		}
	}

	sharedLinksByActor := buildSharedLinks(order, linksByActor)

	return Result{
		Profiles:             profiles,
		LinksByActor:         linksByActor,
		SharedLinksByActor:   sharedLinksByActor,
		NormalizedBioByActor: normalizedBioByActor,
		BioCount:             bioCount,
	}
}

// buildSharedLinks inverts linksByActor to find, for each actor, which of
// its own links also belong to at least one other actor (design doc §4.1).
func buildSharedLinks(order []string, linksByActor map[string][]string) map[string][]string {
	owners := make(map[string][]string) // link -> actors that have it, in first-seen order
	for _, actor := range order {
		for _, link := range linksByActor[actor] {
			owners[link] = append(owners[link], actor)
		}
	}

	shared := make(map[string][]string, len(order))
	for _, actor := range order {
		for _, link := range linksByActor[actor] {
			if len(owners[link]) > 1 {
				shared[actor] = append(shared[actor], link)
			}
		}
	}
	return shared
}
