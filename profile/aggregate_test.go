package profile_test

import (
	"testing"
	"time"

	"github.com/sybilscope/sybilscope/model"
	"github.com/sybilscope/sybilscope/profile"
)

func ev(actor string, opts ...func(*model.Event)) model.Event {
	e := model.Event{Timestamp: time.Unix(0, 0), Actor: actor, Action: "post", Target: "t"}
	for _, o := range opts {
		o(&e)
	}
	return e
}

func withBio(bio string) func(*model.Event) {
	return func(e *model.Event) { e.Bio, e.HasBio = bio, true }
}

func withLinks(links ...string) func(*model.Event) {
	return func(e *model.Event) { e.Links = links }
}

// TestAggregate_SharedPhishingLink covers 3 actors whose bio carries the
// same shortener link; all three must show it in SharedLinksByActor.
func TestAggregate_SharedPhishingLink(t *testing.T) {
	logs := []model.Event{
		ev("a1", withBio("hi join https://bit.ly/x")),
		ev("a2", withBio("hi join https://bit.ly/x")),
		ev("a3", withBio("hi join https://bit.ly/x")),
	}
	res := profile.Aggregate(logs)

	for _, actor := range []string{"a1", "a2", "a3"} {
		shared := res.SharedLinksByActor[actor]
		if len(shared) != 1 || shared[0] != "https://bit.ly/x" {
			t.Errorf("SharedLinksByActor[%s] = %v; want [https://bit.ly/x]", actor, shared)
		}
	}
}

func TestAggregate_MalformedLinkDropped(t *testing.T) {
	logs := []model.Event{ev("a", withLinks("ftp://bad.example", "not a url", "https://ok.example/path"))}
	res := profile.Aggregate(logs)
	links := res.LinksByActor["a"]
	if len(links) != 1 || links[0] != "https://ok.example/path" {
		t.Errorf("links = %v; want only the https link", links)
	}
}

func TestAggregate_BioCountAcrossActors(t *testing.T) {
	logs := []model.Event{
		ev("a", withBio("Buy Now!!  Click Here")),
		ev("b", withBio("buy now!! click here")),
		ev("c", withBio("totally different")),
	}
	res := profile.Aggregate(logs)
	norm := res.NormalizedBioByActor["a"]
	if res.BioCount[norm] != 2 {
		t.Errorf("BioCount[%q] = %d; want 2", norm, res.BioCount[norm])
	}
}

func TestAggregate_LastWriteWinsOnScalarFields(t *testing.T) {
	e1 := ev("a")
	e1.HasFollowerCount, e1.FollowerCount = true, 10
	e2 := ev("a")
	e2.HasFollowerCount, e2.FollowerCount = true, 20

	res := profile.Aggregate([]model.Event{e1, e2})
	if got := res.Profiles["a"].FollowerCount; got != 20 {
		t.Errorf("FollowerCount = %d; want 20 (last write wins)", got)
	}
}
