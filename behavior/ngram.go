package behavior

import "strings"

// actionNgramStats extracts sliding n-grams of size n over a time-sorted
// sequence of action names, returning the most frequent gram's count and
// the total number of n-grams. Actors with fewer than n+2 actions score 0
// (design doc §4.6).
func actionNgramStats(actions []string, n int) (topCount, totalNgrams int) {
	if n < 1 || len(actions) < n+2 {
		return 0, 0
	}

	counts := make(map[string]int)
	for i := 0; i+n <= len(actions); i++ {
		gram := strings.Join(actions[i:i+n], "\x00")
		counts[gram]++
		totalNgrams++
	}
	for _, c := range counts {
		if c > topCount {
			topCount = c
		}
	}
	return topCount, totalNgrams
}

// repeatScore clamps topCount/totalNgrams to [0,1].
func repeatScore(topCount, totalNgrams int) float64 {
	if totalNgrams == 0 {
		return 0
	}
	s := float64(topCount) / float64(totalNgrams)
	return clamp(s, 0, 1)
}
