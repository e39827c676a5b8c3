package behavior

import "github.com/sybilscope/sybilscope/profile"

// bioSimilarityScore scores an actor by how many other actors share its
// exact normalized bio: clamp((k-1)/5, 0, 1) where k is the number of
// actors sharing that bio (design doc §4.6).
func bioSimilarityScore(actor string, p profile.Result) float64 {
	norm, ok := p.NormalizedBioByActor[actor]
	if !ok || norm == "" {
		return 0
	}
	k := p.BioCount[norm]
	return clamp(float64(k-1)/5, 0, 1)
}
