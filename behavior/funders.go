package behavior

import (
	"regexp"
	"sort"

	"github.com/sybilscope/sybilscope/model"
)

// walletPattern matches a 20-byte hex wallet address, case-insensitively
// (design doc §4.6).
var walletPattern = regexp.MustCompile(`(?i)^0x[0-9a-f]{40}$`)

// DetectSharedWallets groups transfer senders ("funders") with at least two
// distinct recipients and marks each such recipient as sharing that funder
// — one of the auxiliary pure helpers of design doc §6. Despite the field name,
// the semantics are "shared funder," not "same wallet": a funder with a
// single recipient contributes nothing, and a funder itself never appears
// in its own recipients' lists (design doc §9 "semantic drift" note, §4.6, S6).
func DetectSharedWallets(logs []model.Event) map[string][]string {
	recipientsByFunder := make(map[string]map[string]struct{})
	var funderOrder []string

	for _, ev := range logs {
		if ev.Action != "transfer" {
			continue
		}
		if !walletPattern.MatchString(ev.Actor) || !walletPattern.MatchString(ev.Target) {
			continue
		}
		if _, ok := recipientsByFunder[ev.Actor]; !ok {
			funderOrder = append(funderOrder, ev.Actor)
			recipientsByFunder[ev.Actor] = make(map[string]struct{})
		}
		recipientsByFunder[ev.Actor][ev.Target] = struct{}{}
	}

	shared := make(map[string][]string)
	for _, funder := range funderOrder {
		recipients := recipientsByFunder[funder]
		if len(recipients) < 2 {
			continue
		}
		names := make([]string, 0, len(recipients))
		for r := range recipients {
			names = append(names, r)
		}
		sort.Strings(names)
		for _, r := range names {
			shared[r] = append(shared[r], funder)
		}
	}
	return shared
}
