package behavior

import (
	"regexp"
	"strings"
)

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)
var trailingDigitsPattern = regexp.MustCompile(`[0-9]+$`)
var threeOrMoreTrailingDigits = regexp.MustCompile(`[0-9]{3,}$`)

// normalizeHandle lowercases and trims a raw actor identifier.
func normalizeHandle(raw string) string { return strings.TrimSpace(strings.ToLower(raw)) }

// handleStem strips non-alphanumeric characters, then any trailing digit
// run, from a normalized handle (design doc §4.6).
func handleStem(normalized string) string {
	alnum := nonAlnumPattern.ReplaceAllString(normalized, "")
	return trailingDigitsPattern.ReplaceAllString(alnum, "")
}

// handleShape replaces every letter with 'a', every digit with 'd', and
// collapses every other run of characters to a single '_' (design doc §4.6).
func handleShape(normalized string) string {
	var b strings.Builder
	inOther := false
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteByte('a')
			inOther = false
		case r >= '0' && r <= '9':
			b.WriteByte('d')
			inOther = false
		default:
			if !inOther {
				b.WriteByte('_')
				inOther = true
			}
		}
	}
	return b.String()
}

// handlePatternStats computes, for every actor, the stem-frequency,
// shape-frequency, and numeric-suffix signals that combine into
// handlePatternScore (design doc §4.6): 0.5·stemScore + 0.3·shapeScore +
// numericSuffixScore, clamped to [0,1].
func handlePatternStats(actors []string) map[string]float64 {
	stemCounts := make(map[string]int)
	shapeCounts := make(map[string]int)
	stemOf := make(map[string]string, len(actors))
	shapeOf := make(map[string]string, len(actors))
	normOf := make(map[string]string, len(actors))

	for _, actor := range actors {
		norm := normalizeHandle(actor)
		normOf[actor] = norm
		stem := handleStem(norm)
		shape := handleShape(norm)
		stemOf[actor] = stem
		shapeOf[actor] = shape
		stemCounts[stem]++
		shapeCounts[shape]++
	}

	out := make(map[string]float64, len(actors))
	for _, actor := range actors {
		stemScore := clamp(float64(stemCounts[stemOf[actor]]-1)/10, 0, 1)
		shapeScore := clamp(float64(shapeCounts[shapeOf[actor]]-1)/20, 0, 1)

		var numericSuffixScore float64
		alnum := nonAlnumPattern.ReplaceAllString(normOf[actor], "")
		if threeOrMoreTrailingDigits.MatchString(alnum) {
			numericSuffixScore = 0.4
		}

		out[actor] = clamp(0.5*stemScore+0.3*shapeScore+numericSuffixScore, 0, 1)
	}
	return out
}
