package ingest

import (
	"encoding/csv"
	"io"

	"github.com/sybilscope/sybilscope/model"
)

// CanonicalCSVColumns is the reference ingestor's column order (design doc §6),
// exposed so a caller writing CSV can match ParseCSV's header expectations.
var CanonicalCSVColumns = []string{
	"timestamp", "platform", "action", "actor", "target", "amount", "txHash",
	"blockNumber", "meta", "actorCreatedAt", "followerCount", "followingCount",
	"bio", "location", "verified", "links", "targetType",
}

// ParseCSV reads a header row followed by data rows in the canonical
// column order (design doc §6). The header is matched by name, not position, so
// a caller may omit trailing optional columns. A malformed optional field
// is dropped silently and the rest of the record is kept; a row missing
// its actor or target, or one the CSV reader cannot read, is dropped and
// recorded as a RowError.
//
// A malformed timestamp does NOT drop the row: the event is kept with
// TimeValid=false, per §6/§7 ("non-parseable timestamps flag the event as
// time-invalid" — they still count structurally).
func ParseCSV(r io.Reader) ([]model.Event, []RowError) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, []RowError{{Row: 0, Reason: "empty or unreadable input: " + err.Error()}}
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	get := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var events []model.Event
	var errs []RowError
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			errs = append(errs, RowError{Row: row, Reason: err.Error()})
			continue
		}

		actor, target := get(record, "actor"), get(record, "target")
		if actor == "" || target == "" {
			errs = append(errs, RowError{Row: row, Reason: "missing required actor or target"})
			continue
		}

		ev := model.Event{
			Platform: get(record, "platform"),
			Action:   get(record, "action"),
			Actor:    actor,
			Target:   target,
		}

		if ts, ok := parseTimestamp(get(record, "timestamp")); ok {
			ev.Timestamp, ev.TimeValid = ts, true
		} else {
			errs = append(errs, RowError{Row: row, Reason: "unparseable timestamp"})
		}

		if bio := get(record, "bio"); bio != "" {
			ev.Bio, ev.HasBio = bio, true
		}
		ev.Links = parseLinks(get(record, "links"))
		if v, ok := parseInt64(get(record, "followerCount")); ok {
			ev.FollowerCount, ev.HasFollowerCount = v, true
		}
		if v, ok := parseInt64(get(record, "followingCount")); ok {
			ev.FollowingCount, ev.HasFollowingCount = v, true
		}
		if ts, ok := parseTimestamp(get(record, "actorCreatedAt")); ok {
			ev.ActorCreatedAt, ev.HasActorCreatedAt = ts, true
		}
		if v, ok := coerceBool(get(record, "verified")); ok {
			ev.Verified, ev.HasVerified = v, true
		}
		if loc := get(record, "location"); loc != "" {
			ev.Location, ev.HasLocation = loc, true
		}
		if v, ok := parseFloat64(get(record, "amount")); ok {
			ev.Amount, ev.HasAmount = v, true
		}
		ev.TxHash = get(record, "txHash")
		if v, ok := parseInt64(get(record, "blockNumber")); ok {
			ev.BlockNumber, ev.HasBlockNumber = v, true
		}
		ev.Meta = parseMeta(get(record, "meta"))
		if tt := get(record, "targetType"); tt != "" {
			ev.TargetType, ev.HasTargetType = tt, true
		}

		events = append(events, ev)
	}

	return events, errs
}
