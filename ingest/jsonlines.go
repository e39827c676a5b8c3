package ingest

import (
	"bufio"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/sybilscope/sybilscope/model"
)

// jsonEvent mirrors model.Event's wire shape: every optional field is a
// pointer so absence and zero-value are distinguishable, matching the §3
// "optional field" record shape directly instead of reusing model.Event's
// Has*-flag pairs in JSON (which would force every producer to emit the
// flag explicitly).
type jsonEvent struct {
	Timestamp       string   `json:"timestamp"`
	Platform        string   `json:"platform"`
	Action          string   `json:"action"`
	Actor           string   `json:"actor"`
	Target          string   `json:"target"`
	Bio             *string  `json:"bio"`
	Links           []string `json:"links"`
	FollowerCount   *int64   `json:"followerCount"`
	FollowingCount  *int64   `json:"followingCount"`
	ActorCreatedAt  *string  `json:"actorCreatedAt"`
	Verified        *bool    `json:"verified"`
	Location        *string  `json:"location"`
	Amount          *float64 `json:"amount"`
	TxHash          string   `json:"txHash"`
	BlockNumber     *int64   `json:"blockNumber"`
	Meta            map[string]any `json:"meta"`
	TargetType      *string  `json:"targetType"`
}

// ParseJSONLines reads one JSON object per line (design doc §6's self-describing
// exchange format). A malformed line is skipped and recorded as a
// RowError; a malformed timestamp keeps the row but marks it time-invalid,
// same as ParseCSV.
func ParseJSONLines(r io.Reader) ([]model.Event, []RowError) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var events []model.Event
	var errs []RowError
	row := 0
	for scanner.Scan() {
		row++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var je jsonEvent
		if err := json.Unmarshal([]byte(line), &je); err != nil {
			errs = append(errs, RowError{Row: row, Reason: err.Error()})
			continue
		}
		if je.Actor == "" || je.Target == "" {
			errs = append(errs, RowError{Row: row, Reason: "missing required actor or target"})
			continue
		}

		ev := model.Event{
			Platform: je.Platform,
			Action:   je.Action,
			Actor:    je.Actor,
			Target:   je.Target,
			TxHash:   je.TxHash,
			Links:    je.Links,
			Meta:     je.Meta,
		}

		if ts, ok := parseTimestamp(je.Timestamp); ok {
			ev.Timestamp, ev.TimeValid = ts, true
		} else {
			errs = append(errs, RowError{Row: row, Reason: "unparseable timestamp"})
		}
		if je.Bio != nil {
			ev.Bio, ev.HasBio = *je.Bio, true
		}
		if je.FollowerCount != nil {
			ev.FollowerCount, ev.HasFollowerCount = *je.FollowerCount, true
		}
		if je.FollowingCount != nil {
			ev.FollowingCount, ev.HasFollowingCount = *je.FollowingCount, true
		}
		if je.ActorCreatedAt != nil {
			if ts, ok := parseTimestamp(*je.ActorCreatedAt); ok {
				ev.ActorCreatedAt, ev.HasActorCreatedAt = ts, true
			}
		}
		if je.Verified != nil {
			ev.Verified, ev.HasVerified = *je.Verified, true
		}
		if je.Location != nil {
			ev.Location, ev.HasLocation = *je.Location, true
		}
		if je.Amount != nil {
			ev.Amount, ev.HasAmount = *je.Amount, true
		}
		if je.BlockNumber != nil {
			ev.BlockNumber, ev.HasBlockNumber = *je.BlockNumber, true
		}
		if je.TargetType != nil {
			ev.TargetType, ev.HasTargetType = *je.TargetType, true
		}

		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, RowError{Row: row + 1, Reason: err.Error()})
	}

	return events, errs
}
