package profile

import (
	"net/url"
	"regexp"
	"strings"
)

// bioLinkPattern matches bare URLs embedded in free-text bios (design doc §4.1:
// "links found in the bio text (regex https?://[^\s]+) are merged with the
// explicit list").
var bioLinkPattern = regexp.MustCompile(`https?://[^\s]+`)

// normalizeLink trims trailing punctuation, rejects non-HTTP(S) schemes,
// and returns ("", false) for anything unparsable — the "malformed link
// strings are silently dropped" failure semantic (design doc §4.1).
func normalizeLink(raw string) (string, bool) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), ".,;:!?)\"'")
	if trimmed == "" {
		return "", false
	}
	u, err := url.Parse(trimmed)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return u.String(), true
}

// unionLinks merges explicit links with any URLs embedded in bio text,
// deduping while preserving first-occurrence order.
func unionLinks(explicit []string, bio string) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(raw string) {
		link, ok := normalizeLink(raw)
		if !ok {
			return
		}
		if _, dup := seen[link]; dup {
			return
		}
		seen[link] = struct{}{}
		out = append(out, link)
	}

	for _, l := range explicit {
		add(l)
	}
	for _, m := range bioLinkPattern.FindAllString(bio, -1) {
		add(m)
	}

	return out
}

// normalizeBio lowercases and whitespace-collapses a bio for deduplication.
func normalizeBio(bio string) string {
	return strings.Join(strings.Fields(strings.ToLower(bio)), " ")
}
