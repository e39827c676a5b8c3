package model

import "time"

// Event is one immutable interaction record. Timestamp, Platform, Action,
// Actor, and Target are required by every collaborator that produces a log;
// everything else is optional and queried through the Has* predicates below
// rather than by reflection, per the dynamic-record-shape design note.
type Event struct {
	Timestamp time.Time
	Platform  string
	Action    string
	Actor     string
	Target    string

	// TimeValid is false when the source record's timestamp could not be
	// parsed. Such events still carry structural weight (nodes, edges,
	// totals) but are skipped by every temporal detector.
	TimeValid bool

	Bio             string
	HasBio          bool
	Links           []string
	FollowerCount   int64
	HasFollowerCount bool
	FollowingCount  int64
	HasFollowingCount bool
	ActorCreatedAt  time.Time
	HasActorCreatedAt bool
	Verified        bool
	HasVerified     bool
	Location        string
	HasLocation     bool
	Amount          float64
	HasAmount       bool
	TxHash          string
	BlockNumber     int64
	HasBlockNumber  bool
	Meta            map[string]any
	TargetType      string
	HasTargetType   bool
}

// HasLinks reports whether the event carries any explicit link.
func (e Event) HasLinks() bool { return len(e.Links) > 0 }
