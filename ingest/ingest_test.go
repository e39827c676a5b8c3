package ingest_test

import (
	"strings"
	"testing"

	"github.com/sybilscope/sybilscope/ingest"
)

func TestParseCSV_CanonicalColumns(t *testing.T) {
	doc := strings.Join(ingest.CanonicalCSVColumns, ",") + "\n" +
		"2026-01-01T00:00:00Z,appA,follow,alice,bob,,,,,,,,,,,,\n"

	events, errs := ingest.ParseCSV(strings.NewReader(doc))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d; want 1", len(events))
	}
	ev := events[0]
	if ev.Actor != "alice" || ev.Target != "bob" || ev.Action != "follow" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if !ev.TimeValid {
		t.Error("TimeValid = false; want true")
	}
}

func TestParseCSV_MalformedTimestampKeepsRowStructurally(t *testing.T) {
	doc := "timestamp,platform,action,actor,target\n" +
		"not-a-time,appA,follow,alice,bob\n"

	events, errs := ingest.ParseCSV(strings.NewReader(doc))
	if len(errs) != 1 {
		t.Fatalf("errs = %v; want 1 row error", errs)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d; want 1", len(events))
	}
	if events[0].TimeValid {
		t.Error("TimeValid = true; want false")
	}
}

func TestParseCSV_MissingActorDropsRow(t *testing.T) {
	doc := "timestamp,platform,action,actor,target\n" +
		"2026-01-01T00:00:00Z,appA,follow,,bob\n"

	events, errs := ingest.ParseCSV(strings.NewReader(doc))
	if len(events) != 0 {
		t.Errorf("len(events) = %d; want 0", len(events))
	}
	if len(errs) != 1 {
		t.Errorf("errs = %v; want 1", errs)
	}
}

func TestParseJSONLines_Basic(t *testing.T) {
	doc := `{"timestamp":"2026-01-01T00:00:00Z","action":"follow","actor":"a","target":"b","links":["https://example.com"]}
{"timestamp":"bad","action":"follow","actor":"c","target":"d"}
`
	events, errs := ingest.ParseJSONLines(strings.NewReader(doc))
	if len(events) != 2 {
		t.Fatalf("len(events) = %d; want 2", len(events))
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v; want 1", errs)
	}
	if events[0].Links[0] != "https://example.com" {
		t.Errorf("Links = %v", events[0].Links)
	}
	if events[1].TimeValid {
		t.Error("second event TimeValid = true; want false")
	}
}
