package behavior

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sybilscope/sybilscope/model"
)

// DetectFraudulentTransactions computes the transaction-amount fraud score
// per actor with at least two amount-bearing events: σ/(μ+1), clamped to
// [0,1] — one of the auxiliary pure helpers of design doc §6 and §4.6. The "+1"
// stabilizer in the denominator is preserved for parity with the reference
// implementation (design doc §9 open question) rather than replaced with a
// coefficient-of-variation that blows up for near-zero means.
//
// Mean and standard deviation are computed with gonum.org/v1/gonum/stat
// rather than by hand.
func DetectFraudulentTransactions(logs []model.Event) map[string]float64 {
	amounts := make(map[string][]float64)
	var order []string

	for _, ev := range logs {
		if !ev.HasAmount {
			continue
		}
		if _, ok := amounts[ev.Actor]; !ok {
			order = append(order, ev.Actor)
		}
		amounts[ev.Actor] = append(amounts[ev.Actor], ev.Amount)
	}

	out := make(map[string]float64, len(order))
	for _, actor := range order {
		values := amounts[actor]
		if len(values) < 2 {
			continue
		}
		mean, std := stat.MeanStdDev(values, nil)
		out[actor] = clamp(std/(mean+1), 0, 1)
	}
	return out
}
