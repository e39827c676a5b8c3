package engine_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/sybilscope/sybilscope/engine"
	"github.com/sybilscope/sybilscope/model"
)

func followEvent(actor, target string, ts time.Time) model.Event {
	return model.Event{Timestamp: ts, Actor: actor, Action: "follow", Target: target, TimeValid: true}
}

func TestAnalyze_Idempotent(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var logs []model.Event
	for i := 0; i < 20; i++ {
		logs = append(logs, followEvent("a", "b", base.Add(time.Duration(i)*time.Second)))
	}
	settings := model.DefaultSettings()

	first := engine.Analyze(logs, settings, nil)
	second := engine.Analyze(logs, settings, nil)

	first.RunID, second.RunID = [16]byte{}, [16]byte{}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Analyze is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestAnalyze_JSONRoundTrip(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	logs := []model.Event{
		followEvent("a", "b", base),
		followEvent("b", "a", base.Add(time.Minute)),
	}
	result := engine.Analyze(logs, model.DefaultSettings(), nil)

	encoded, err := model.EncodeJSON(result, false)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	decoded, err := model.DecodeJSON(encoded)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if !reflect.DeepEqual(result, decoded) {
		t.Fatalf("round-trip mismatch:\nwant %+v\ngot  %+v", result, decoded)
	}
}

func TestAnalyze_ThresholdMonotonicity(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var logs []model.Event
	members := []string{"f1", "f2", "f3", "f4", "f5"}
	for _, a := range members {
		for _, b := range members {
			if a != b {
				logs = append(logs, followEvent(a, b, base))
			}
		}
	}

	low := model.DefaultSettings()
	low.Threshold = 0.05
	high := model.DefaultSettings()
	high.Threshold = 0.9

	flagged := func(settings model.Settings) map[string]bool {
		result := engine.Analyze(logs, settings, nil)
		out := make(map[string]bool)
		for _, sc := range result.Scorecards {
			if sc.SybilScore > settings.Threshold {
				out[sc.Actor] = true
			}
		}
		return out
	}

	lowFlagged := flagged(low)
	highFlagged := flagged(high)
	for actor := range highFlagged {
		if !lowFlagged[actor] {
			t.Errorf("actor %s flagged at high threshold but not low threshold", actor)
		}
	}
}

func TestAnalyze_ProgressCallbackReachesDone(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	logs := []model.Event{followEvent("a", "b", base)}

	var stages []string
	engine.Analyze(logs, model.DefaultSettings(), func(stage string, pct int) {
		stages = append(stages, stage)
	})

	if len(stages) == 0 || stages[len(stages)-1] != engine.StageDone {
		t.Fatalf("stages = %v; want last stage %q", stages, engine.StageDone)
	}
}
