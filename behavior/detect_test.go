package behavior_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sybilscope/sybilscope/behavior"
	"github.com/sybilscope/sybilscope/model"
	"github.com/sybilscope/sybilscope/profile"
)

func txEvent(actor, target string, ts time.Time) model.Event {
	return model.Event{Timestamp: ts, Actor: actor, Action: "transfer", Target: target, TimeValid: true}
}

// TestDetect_SharedFunderGrouping covers one funder (A) sending to three
// recipients and no recipient funding anyone else, so only the recipients
// carry a shared-wallet signal and A's own is empty. Detect only emits
// Signals for actors, so each recipient also acts once.
func TestDetect_SharedFunderGrouping(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	logs := []model.Event{
		txEvent("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "0x1111111111111111111111111111111111111111", base),
		txEvent("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "0x2222222222222222222222222222222222222222", base.Add(time.Minute)),
		txEvent("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "0x3333333333333333333333333333333333333333", base.Add(2*time.Minute)),
	}
	for i, recipient := range []string{
		"0x1111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222",
		"0x3333333333333333333333333333333333333333",
	} {
		logs = append(logs, model.Event{
			Timestamp: base.Add(time.Duration(10+i) * time.Minute),
			Actor:     recipient, Action: "like", Target: "post1", TimeValid: true,
		})
	}

	result := behavior.Detect(logs, model.DefaultSettings(), profile.Aggregate(logs))

	for _, recipient := range []string{
		"0x1111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222",
		"0x3333333333333333333333333333333333333333",
	} {
		sig := result[recipient]
		require.NotNil(t, sig, "recipient %s", recipient)
		assert.Equal(t, []string{"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}, sig.SharedWallets, "SharedWallets[%s]", recipient)
		assert.Equal(t, 1.0, sig.SharedWalletScore, "SharedWalletScore[%s]", recipient)
	}

	funder := result["0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"]
	require.NotNil(t, funder)
	assert.Empty(t, funder.SharedWallets)
}

// TestDetect_CircadianWideAndLowEntropy covers one actor active every hour
// of the day, all 300 events targeting the same target.
func TestDetect_CircadianWideAndLowEntropy(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var logs []model.Event
	for i := 0; i < 300; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		logs = append(logs, model.Event{
			Timestamp: ts, Actor: "bot", Action: "like", Target: "targetX", TimeValid: true,
		})
	}

	result := behavior.Detect(logs, model.DefaultSettings(), profile.Aggregate(logs))
	sig := result["bot"]
	require.NotNil(t, sig)
	assert.Equal(t, 24, sig.ActiveHours)
	assert.Equal(t, 1.0, sig.CircadianScore)
	// A single target means targetEntropy's k < 2, scoring 0, so
	// lowEntropyScore is the maximal 1.
	assert.Equal(t, 1.0, sig.LowEntropyScore)
}

func TestHandlePatternScore_NumericSuffixFarm(t *testing.T) {
	var logs []model.Event
	actors := []string{"user001", "user002", "user003", "solo"}
	for _, a := range actors {
		logs = append(logs, model.Event{
			Timestamp: time.Unix(0, 0), Actor: a, Action: "follow", Target: "t", TimeValid: true,
		})
	}

	result := behavior.Detect(logs, model.DefaultSettings(), profile.Aggregate(logs))
	for _, a := range []string{"user001", "user002", "user003"} {
		assert.Greater(t, result[a].HandlePatternScore, 0.0, "HandlePatternScore[%s]", a)
	}
	assert.Equal(t, 0.0, result["solo"].HandlePatternScore)
}
